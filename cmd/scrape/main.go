package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Freeeeeet/lectures_bot/internal/app"
	"github.com/Freeeeeet/lectures_bot/internal/config"
	"github.com/Freeeeeet/lectures_bot/internal/repository"
	"github.com/Freeeeeet/lectures_bot/internal/scraper"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
	"go.uber.org/zap"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:      "scrape",
		Usage:     "downloads group timetables and writes the schedule document",
		UsageText: "scrape [--output schedule.json] [--source URL] [group...]",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "output, o",
				Usage:  "schedule document path",
				EnvVar: "SCHEDULE_FILE",
				Value:  "schedule.json",
			},
			cli.StringFlag{
				Name:   "source, s",
				Usage:  "timetable site base URL",
				EnvVar: "SCHEDULE_SOURCE_URL",
				Value:  "https://raspisanie.madi.ru",
			},
			cli.BoolFlag{
				Name:  "list, l",
				Usage: "only print available groups",
			},
		},
		Action: scrape,
	}
}

func scrape(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := app.NewLogger(cfg.Environment, cfg.LogLevel)
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fetcher := scraper.NewFetcher(c.String("source"), nil, logger)

	if c.Bool("list") {
		groups, err := fetcher.Groups(ctx)
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Printf("%s\t%s\n", g.ID, g.Name)
		}
		return nil
	}

	groups := []string(c.Args())
	if len(groups) == 0 {
		groups = cfg.Groups
	}

	rows, err := fetcher.Fetch(ctx, groups)
	if err != nil {
		return err
	}

	doc := scraper.Build(logger, rows)
	if len(doc) == 0 {
		return fmt.Errorf("no schedule entries scraped for groups %v", groups)
	}

	output := c.String("output")
	if err := repository.NewFileRepository(afero.NewOsFs(), output).Save(ctx, doc); err != nil {
		return err
	}

	logger.Info("Schedule document written",
		zap.String("path", output),
		zap.Int("groups", len(rows)),
		zap.Int("weekdays", len(doc)))
	return nil
}
