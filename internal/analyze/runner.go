package analyze

import (
	"fmt"
	"io"
	"time"

	"github.com/dtnitsch/tweetstats/models"
	"github.com/dtnitsch/tweetstats/pkg/analytics"
	"github.com/dtnitsch/tweetstats/pkg/chart"
	"github.com/dtnitsch/tweetstats/pkg/config"
	"github.com/dtnitsch/tweetstats/pkg/loader"
	"github.com/dtnitsch/tweetstats/pkg/manifest"
	"github.com/dtnitsch/tweetstats/pkg/mapreduce"
	"github.com/dtnitsch/tweetstats/pkg/report"
	"github.com/dtnitsch/tweetstats/pkg/storage"
	"github.com/dtnitsch/tweetstats/pkg/temporal"
	"github.com/dustin/go-humanize"
	"go.uber.org/zap"
)

// Mode selects which aggregates a run computes.
type Mode int

const (
	ModeAll Mode = iota
	ModePhrases
	ModeHours
)

func (m Mode) phrases() bool { return m == ModeAll || m == ModePhrases }
func (m Mode) hours() bool   { return m == ModeAll || m == ModeHours }

// Runner executes one batch pass: load, aggregate, then print and render.
type Runner struct {
	Config *config.Config
	Logger *zap.Logger
	Store  *storage.Storage
	Out    io.Writer
	Now    func() time.Time
}

type results struct {
	corpus   *models.Corpus
	counts   models.CountTable
	percents models.PercentTable
	hours    *models.HourHistogram
}

// Run computes every aggregate before writing anything, so a failure leaves no partial output.
func (r *Runner) Run(mode Mode) error {
	res, err := r.compute(mode)
	if err != nil {
		return err
	}

	r.print(mode, res)

	charts, err := r.render(mode, res)
	if err != nil {
		return err
	}

	if path := r.Config.Output.Summary; path != "" {
		m := manifest.Build(manifest.Input{
			Scheme:   r.Config.Input.Scheme,
			Corpus:   res.corpus,
			Phrases:  r.Config.Phrases,
			Counts:   res.counts,
			Percents: res.percents,
			Hours:    res.hours,
			Charts:   charts,
		}, r.now())
		if err := manifest.Save(m, path, r.Store); err != nil {
			return err
		}
		fmt.Fprintf(r.Out, "Saved summary as %s\n", path)
	}

	return nil
}

func (r *Runner) compute(mode Mode) (*results, error) {
	patterns := r.Config.Patterns()
	r.Logger.Debug("Discovering input files", zap.Strings("patterns", patterns))

	corpus, err := loader.New(r.Store).Load(patterns)
	if err != nil {
		return nil, err
	}
	r.logFiles(corpus)

	if corpus.Len() == 0 {
		return nil, models.ErrEmptyCorpus
	}
	r.Logger.Info("Loaded corpus", zap.Int("files", len(corpus.Files)), zap.Int("records", corpus.Len()))

	res := &results{corpus: corpus}

	if mode.phrases() {
		res.counts = analytics.CountPhrases(corpus, r.Config.Phrases)
		res.percents, err = analytics.Percentages(res.counts, corpus.Len())
		if err != nil {
			return nil, err
		}
		r.Logger.Debug("Counted phrases", zap.Strings("top", mapreduce.TopPhrases(res.counts, 5)))
	}

	if mode.hours() {
		hist, err := temporal.Histogram(corpus)
		if err != nil {
			return nil, err
		}
		res.hours = &hist
		r.Logger.Debug("Built hour histogram",
			zap.Int("timestamped", hist.Total()),
			zap.Int("skipped", corpus.Len()-hist.Total()))
	}

	return res, nil
}

func (r *Runner) logFiles(corpus *models.Corpus) {
	if !r.Logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	for _, fn := range corpus.Files {
		stats, err := r.Store.GetFileStats(fn)
		if err != nil {
			r.Logger.Warn("Failed to stat input file", zap.String("path", fn), zap.Error(err))
			continue
		}
		r.Logger.Debug("Loaded file", zap.String("path", fn), zap.String("size", humanize.Bytes(uint64(stats.SizeBytes))))
	}
}

func (r *Runner) print(mode Mode, res *results) {
	fmt.Fprintf(r.Out, "len(tweets)= %d\n", res.corpus.Len())

	if mode.phrases() {
		fmt.Fprintf(r.Out, "counts= %s\n", report.CountsLine(res.counts, r.Config.Phrases))
		fmt.Fprint(r.Out, report.MarkdownTable(res.percents, r.Config.Phrases))
	}

	if mode.hours() {
		fmt.Fprintf(r.Out, "tweets with timestamps= %d\n", res.hours.Total())
		for hour, n := range *res.hours {
			fmt.Fprintf(r.Out, "%02d: %d\n", hour, n)
		}
	}
}

func (r *Runner) render(mode Mode, res *results) ([]string, error) {
	renderer := chart.NewRenderer(r.Store)
	var charts []string

	if path := r.Config.Output.PhraseChart; mode.phrases() && path != "" {
		labels := report.SortedPhrases(r.Config.Phrases)
		values := make([]float64, len(labels))
		for i, p := range labels {
			values[i] = res.percents[p]
		}
		if err := renderer.PhraseBars(labels, values, path); err != nil {
			return nil, err
		}
		fmt.Fprintf(r.Out, "Saved plot as %s\n", path)
		charts = append(charts, path)
	}

	if path := r.Config.Output.HourChart; mode.hours() && path != "" {
		if err := renderer.HourBars(*res.hours, path); err != nil {
			return nil, err
		}
		fmt.Fprintf(r.Out, "Saved plot as %s\n", path)
		charts = append(charts, path)
	}

	return charts, nil
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}
