package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/mploader/mploader/internal/config"
	"github.com/mploader/mploader/internal/download"
	ioutils "github.com/mploader/mploader/internal/io"
	"github.com/mploader/mploader/internal/report"
)

func main() {
	app := &cli.Command{
		Name:    "mploader",
		Usage:   "Download YouTube playlists as tagged MP3s",
		Version: "1.2.0",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output directory (overrides config)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of tracks processed concurrently (overrides config)",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "init",
				Usage: "Write an annotated config file and exit",
			},
		},
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name:      "url",
				UsageText: "Playlist or video URL",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, context.Canceled) {
			// Conventional exit status for SIGINT
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true})
	if cmd.Bool("verbose") {
		logger.SetLevel(log.DebugLevel)
		logger.SetReportCaller(true)
	}

	configPath := cmd.String("config")
	if cmd.Bool("init") {
		if err := config.WriteExample(configPath); err != nil {
			return err
		}
		logger.Info("Wrote config file", "path", configPath)
		return nil
	}

	url := cmd.StringArg("url")
	if url == "" {
		cli.ShowAppHelp(cmd)
		return errors.New("missing playlist or video URL")
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if out := cmd.String("output"); out != "" {
		settings.OutputDir = out
	}
	if workers := int(cmd.Int("workers")); workers > 0 {
		settings.Workers = workers
	}
	if cmd.Bool("verbose") {
		settings.Verbose = true
	}

	if err := ioutils.EnsureDir(settings.OutputDir); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// SIGINT stops new work; tracks already in the pipeline finish
	// and the summary still accounts for every track.
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	manager := download.Build(settings, logger)
	stats, runErr := manager.ProcessURL(ctx, url)
	if stats != nil {
		fmt.Print(report.Build(stats))
	}
	return runErr
}
