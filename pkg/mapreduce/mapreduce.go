package mapreduce

import (
	"strings"

	"github.com/dtnitsch/tweetstats/models"
)

// Map generates the phrase contributions of a single record.
// Every phrase maps to 1 if the record's text contains it (case-insensitive), else 0.
// Repeated occurrences in the same text still contribute 1, and a phrase
// listed twice shares one key.
func Map(record models.Record, phrases []string) map[string]int {
	text := strings.ToLower(record.TextOrEmpty())
	contributions := make(map[string]int, len(phrases))

	for _, p := range phrases {
		if strings.Contains(text, strings.ToLower(p)) {
			contributions[p] = 1
		} else {
			contributions[p] = 0
		}
	}

	return contributions
}

// Reduce aggregates a slice of contribution maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for phrase, count := range counts {
			finalResults[phrase] += count
		}
	}

	return finalResults
}
