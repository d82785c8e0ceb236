package manifest

// SummaryManifest represents the structure of the summary YAML file.
// It records what a run read and what it computed, so results can be
// compared across runs without re-reading the corpus.
type SummaryManifest struct {
	GeneratedAt        string          `yaml:"generated_at"`
	Scheme             string          `yaml:"scheme"`
	Files              []string        `yaml:"files"`
	TotalRecords       int             `yaml:"total_records"`
	TimestampedRecords int             `yaml:"timestamped_records,omitempty"`
	Phrases            []PhraseSummary `yaml:"phrases,omitempty"`
	TopPhrases         []string        `yaml:"top_phrases,omitempty"`
	Hours              []HourSummary   `yaml:"hours,omitempty"`
	Charts             []string        `yaml:"charts,omitempty"`
}

// PhraseSummary is one row of the phrase table.
type PhraseSummary struct {
	Phrase  string  `yaml:"phrase"`
	Count   int     `yaml:"count"`
	Percent float64 `yaml:"percent"`
	Display string  `yaml:"display"` // fixed-width rendering, e.g. "00.17"
}

// HourSummary is one bucket of the hour-of-day histogram.
type HourSummary struct {
	Hour  int `yaml:"hour"`
	Count int `yaml:"count"`
}
