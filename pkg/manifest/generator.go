package manifest

import (
	"fmt"
	"time"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/dtnitsch/tweetstats/pkg/mapreduce"
	"github.com/dtnitsch/tweetstats/pkg/report"
	"github.com/dtnitsch/tweetstats/pkg/storage"
	"gopkg.in/yaml.v3"
)

// topPhraseLimit caps the ranked phrase list in the manifest.
const topPhraseLimit = 25

// Input gathers the results of one run. Counts, Percents and Hours are optional.
type Input struct {
	Scheme   string
	Corpus   *models.Corpus
	Phrases  []string
	Counts   models.CountTable
	Percents models.PercentTable
	Hours    *models.HourHistogram
	Charts   []string
}

// Build assembles the summary manifest. Phrase rows follow the table order.
func Build(in Input, now time.Time) SummaryManifest {
	m := SummaryManifest{
		GeneratedAt:  now.Format(time.RFC3339),
		Scheme:       in.Scheme,
		TotalRecords: in.Corpus.Len(),
		Charts:       in.Charts,
	}
	if in.Corpus != nil {
		m.Files = in.Corpus.Files
	}

	if in.Counts != nil {
		seen := make(map[string]struct{}, len(in.Phrases))
		for _, p := range report.SortedPhrases(in.Phrases) {
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			m.Phrases = append(m.Phrases, PhraseSummary{
				Phrase:  p,
				Count:   in.Counts[p],
				Percent: in.Percents[p],
				Display: report.FormatPercent(in.Percents[p]),
			})
		}
		m.TopPhrases = mapreduce.TopPhrases(in.Counts, topPhraseLimit)
	}

	if in.Hours != nil {
		hist := *in.Hours
		m.TimestampedRecords = hist.Total()
		m.Hours = make([]HourSummary, 0, len(hist))
		for hour, n := range hist {
			m.Hours = append(m.Hours, HourSummary{Hour: hour, Count: n})
		}
	}

	return m
}

// Save writes the manifest as YAML to path.
func Save(m SummaryManifest, path string, s *storage.Storage) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("error marshalling manifest: %w", err)
	}

	if err := s.SaveFile(path, data); err != nil {
		return fmt.Errorf("error saving manifest: %w", err)
	}

	return nil
}
