package analyze

import (
	"fmt"
	"os"
	"time"

	"github.com/dtnitsch/tweetstats/internal/common"
	"github.com/dtnitsch/tweetstats/pkg/config"
	"github.com/dtnitsch/tweetstats/pkg/storage"
	"github.com/urfave/cli/v2"
)

// AnalyzeAction runs the phrase table, the hour histogram and both charts.
func AnalyzeAction(c *cli.Context) error {
	return run(c, ModeAll)
}

// PhrasesAction runs only the phrase counts, table and phrase chart.
func PhrasesAction(c *cli.Context) error {
	return run(c, ModePhrases)
}

// HoursAction runs only the hour histogram and hour chart.
func HoursAction(c *cli.Context) error {
	return run(c, ModeHours)
}

func run(c *cli.Context, mode Mode) error {
	cfg, err := LoadConfig(c)
	if err != nil {
		return err
	}

	logger, err := common.NewLogger(cfg.Logging.Level, c.Bool("quiet"), c.Bool("verbose"))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	out := c.App.Writer
	if out == nil {
		out = os.Stdout
	}

	r := &Runner{
		Config: cfg,
		Logger: logger,
		Store:  &storage.Storage{},
		Out:    out,
		Now:    time.Now,
	}
	return r.Run(mode)
}

// LoadConfig reads the config file and applies command-line overrides.
// The default config path may be absent; an explicit --config must exist.
func LoadConfig(c *cli.Context) (*config.Config, error) {
	path := c.String("config")
	cfg, err := config.Load(path, c.IsSet("config"))
	if err != nil {
		return nil, err
	}

	if c.IsSet("scheme") {
		cfg.Input.Scheme = c.String("scheme")
	}
	if c.IsSet("dir") {
		cfg.Input.Dir = c.String("dir")
	}
	if c.IsSet("pattern") {
		cfg.Input.Patterns = c.StringSlice("pattern")
	}
	if c.IsSet("phrases") {
		cfg.Phrases = common.SplitList(c.String("phrases"))
	}
	if c.IsSet("phrase-chart") {
		cfg.Output.PhraseChart = c.String("phrase-chart")
	}
	if c.IsSet("hour-chart") {
		cfg.Output.HourChart = c.String("hour-chart")
	}
	if c.IsSet("summary") {
		cfg.Output.Summary = c.String("summary")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Flags are the input and output flags shared by every analysis command.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "scheme",
			Usage: "input naming scheme: condensed (condensed_*.json) or master (master_*.json)",
		},
		&cli.StringSliceFlag{
			Name:    "pattern",
			Aliases: []string{"p"},
			Usage:   "glob pattern for input files, overrides the scheme (repeatable)",
		},
		&cli.StringFlag{
			Name:  "dir",
			Usage: "directory holding the input files",
		},
		&cli.StringFlag{
			Name:  "phrases",
			Usage: "comma-separated phrases to count, e.g. \"obama,fake news\"",
		},
		&cli.StringFlag{
			Name:  "phrase-chart",
			Usage: "output path for the phrase chart (empty to skip)",
		},
		&cli.StringFlag{
			Name:  "hour-chart",
			Usage: "output path for the hour-of-day chart (empty to skip)",
		},
		&cli.StringFlag{
			Name:  "summary",
			Usage: "write a YAML summary of the run to this path",
		},
	}
}
