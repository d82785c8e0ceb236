package analytics

import (
	"github.com/dtnitsch/tweetstats/models"
	"github.com/dtnitsch/tweetstats/pkg/mapreduce"
)

// CountPhrases returns, for each phrase, the number of records whose text contains it.
// Every phrase has an entry, starting at zero. A record adds at most 1 per phrase.
func CountPhrases(corpus *models.Corpus, phrases []string) models.CountTable {
	counts := make(models.CountTable, len(phrases))
	for _, p := range phrases {
		counts[p] = 0
	}
	if corpus == nil {
		return counts
	}

	intermediate := make([]map[string]int, 0, len(corpus.Records))
	for _, r := range corpus.Records {
		intermediate = append(intermediate, mapreduce.Map(r, phrases))
	}

	for p, n := range mapreduce.Reduce(intermediate) {
		counts[p] = n
	}
	return counts
}

// Percentages derives each phrase's share of total, in percent. No rounding is applied.
func Percentages(counts models.CountTable, total int) (models.PercentTable, error) {
	if total < 1 {
		return nil, models.ErrEmptyCorpus
	}

	percents := make(models.PercentTable, len(counts))
	for p, n := range counts {
		percents[p] = 100.0 * float64(n) / float64(total)
	}
	return percents, nil
}
