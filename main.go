package main

import (
	"fmt"
	"io"
	"os"

	"github.com/dtnitsch/tweetstats/internal/analyze"
	"github.com/dtnitsch/tweetstats/internal/common"
	"github.com/dtnitsch/tweetstats/pkg/config"
	"github.com/dtnitsch/tweetstats/pkg/help"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logError(os.Stderr, err)
		os.Exit(1)
	}
}

// logError reports a failed run at the process boundary.
func logError(w io.Writer, err error) {
	logger := common.NewErrorLogger(w)
	logger.Error("tweetstats failed", zap.Error(err))
	_ = logger.Sync()
}

func newApp() *cli.App {
	return &cli.App{
		Name:           "tweetstats",
		Usage:          "phrase and posting-hour statistics over a tweet archive",
		DefaultCommand: "analyze",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   config.DefaultPath,
				Usage:   "path to the YAML config file",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "only log errors",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug details (files, sizes, top phrases)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "analyze",
				Usage:  "print the phrase table and write both charts",
				Flags:  analyze.Flags(),
				Action: analyze.AnalyzeAction,
			},
			{
				Name:   "phrases",
				Usage:  "print phrase counts and the markdown table",
				Flags:  analyze.Flags(),
				Action: analyze.PhrasesAction,
			},
			{
				Name:   "hours",
				Usage:  "print the tweets-per-hour histogram",
				Flags:  analyze.Flags(),
				Action: analyze.HoursAction,
			},
			{
				Name:  "coldstart",
				Usage: "print a quick-start guide as YAML",
				Action: func(c *cli.Context) error {
					fmt.Fprint(c.App.Writer, help.ColdstartYAML)
					return nil
				},
			},
		},
	}
}
