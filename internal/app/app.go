// Package app wires the loader, filter and writer into one explicit
// pipeline. Nothing runs at package init; callers construct an App and
// invoke Run.
package app

import (
	"context"
	"log/slog"
	"path/filepath"

	"sjcli/internal/aggregate"
	"sjcli/internal/config"
	apperrors "sjcli/internal/errors"
	"sjcli/internal/journal"
	"sjcli/internal/report"
	"sjcli/internal/resolver"
)

// Options carries the per-run parameters supplied on the command line.
// Empty fields fall back to the interactive resolver.
type Options struct {
	InputPath  string
	OutputPath string
}

// App is the aggregation pipeline with its collaborators injected.
type App struct {
	cfg      *config.Config
	resolver resolver.PathResolver
	logger   *slog.Logger
}

// New creates the application with the given configuration, path resolver
// and logger.
func New(cfg *config.Config, res resolver.PathResolver, logger *slog.Logger) *App {
	if logger == nil {
		logger = slog.Default()
	}
	return &App{cfg: cfg, resolver: res, logger: logger}
}

// Run executes one aggregation batch: load journals, filter units, write
// the report. A cancelled save step is not an error; every other failure
// aborts the batch and surfaces to the caller.
func (a *App) Run(ctx context.Context, opts Options) error {
	input := opts.InputPath
	if input == "" {
		var err error
		if input, err = a.resolver.ResolveInput(); err != nil {
			return err
		}
		if input == "" {
			return apperrors.NewAppError(apperrors.ErrTypeInvalidPath, "no file or folder selected", nil)
		}
	}

	a.logger.InfoContext(ctx, "loading sales journals", slog.String("path", input))
	tables, err := journal.Load(input)
	if err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "journals loaded", slog.Int("count", len(tables)))

	filtered, err := aggregate.FilterUnits(tables)
	if err != nil {
		return err
	}

	output := opts.OutputPath
	if output == "" {
		defaultPath := report.DefaultFilename()
		if a.cfg.Report.OutputDir != "" {
			defaultPath = filepath.Join(a.cfg.Report.OutputDir, defaultPath)
		}
		if output, err = a.resolver.ResolveOutput(defaultPath); err != nil {
			return err
		}
		if output == "" {
			a.logger.InfoContext(ctx, "no destination selected, report not saved")
			return nil
		}
	}

	if err := report.Write(output, filtered); err != nil {
		return err
	}
	a.logger.InfoContext(ctx, "report written",
		slog.String("path", output),
		slog.Int("sheets", len(filtered)))
	return nil
}
