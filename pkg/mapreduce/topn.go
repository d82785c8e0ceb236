package mapreduce

import (
	"fmt"
	"sort"
)

type kv struct {
	Key   string
	Value int
}

func ranked(counts map[string]int) []kv {
	ss := make([]kv, 0, len(counts))
	for k, v := range counts {
		ss = append(ss, kv{k, v})
	}

	// Sort by count (descending), then alphabetically for stable output
	sort.Slice(ss, func(i, j int) bool {
		if ss[i].Value != ss[j].Value {
			return ss[i].Value > ss[j].Value
		}
		return ss[i].Key < ss[j].Key
	})
	return ss
}

// TopPhrases returns the top N phrases from aggregated counts as formatted strings.
// Each string is formatted as "phrase:count" (e.g., "trump:1153").
// A non-positive n returns every phrase.
func TopPhrases(counts map[string]int, n int) []string {
	ss := ranked(counts)

	limit := n
	if limit <= 0 || len(ss) < limit {
		limit = len(ss)
	}

	phrases := make([]string, limit)
	for i := 0; i < limit; i++ {
		phrases[i] = fmt.Sprintf("%s:%d", ss[i].Key, ss[i].Value)
	}

	return phrases
}
