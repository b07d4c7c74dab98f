package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gstoney/advance"
	"github.com/gstoney/advance/internal/layout"
	"github.com/urfave/cli/v2"
)

var (
	ErrTrailingData = errors.New("trailing data after last record")
	ErrEmptyRecord  = errors.New("layout consumed no bytes")
	ErrUsage        = errors.New("expected exactly one FILE argument")
)

func newApp() *cli.App {
	return &cli.App{
		Name:      "advdump",
		Usage:     "decode a binary file with a TOML layout",
		ArgsUsage: "FILE",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Usage:   "read the record layout from `FILE`",
			},
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "load ADVDUMP_* defaults from `FILE` instead of .env",
			},
			&cli.BoolFlag{
				Name:    "repeat",
				Aliases: []string{"r"},
				Usage:   "decode records until the input is exhausted",
			},
			&cli.BoolFlag{
				Name:  "allow-trailing",
				Usage: "ignore bytes left after the last record",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log progress to stderr",
			},
		},
		Before: loadEnv,
		Action: run,
	}
}

func newLogger(c *cli.Context, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{Level: level}))
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return ErrUsage
	}

	cfg, err := configFromContext(c)
	if err != nil {
		return err
	}
	logger := newLogger(c, cfg.Verbose)

	lay, err := layout.Load(cfg.LayoutPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded layout", "path", cfg.LayoutPath, "fields", len(lay.Fields))

	path := c.Args().First()
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	logger.Debug("read input", "path", path, "bytes", len(data))

	rest := data
	for record := 0; ; record++ {
		values, next, err := lay.Decode(rest)
		if err != nil {
			var nerr *advance.NotEnoughDataError
			if errors.As(err, &nerr) {
				logger.Error("short read",
					"record", record,
					"needed", nerr.Needed,
					"remaining", nerr.Remaining,
				)
			}
			return fmt.Errorf("record %d: %w", record, err)
		}
		if len(next) == len(rest) {
			return ErrEmptyRecord
		}

		if cfg.Repeat {
			fmt.Fprintf(c.App.Writer, "# record %d\n", record)
		}
		for _, v := range values {
			fmt.Fprintf(c.App.Writer, "%s = %s\n", v.Name, v)
		}

		logger.Debug("decoded record", "record", record, "bytes", len(rest)-len(next))
		rest = next
		if !cfg.Repeat || len(rest) == 0 {
			break
		}
	}

	if len(rest) > 0 {
		if !cfg.AllowTrailing {
			return fmt.Errorf("%w: %d bytes", ErrTrailingData, len(rest))
		}
		logger.Info("ignoring trailing data", "bytes", len(rest))
	}
	return nil
}
