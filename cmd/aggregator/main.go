package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"sjcli/internal/app"
	"sjcli/internal/config"
	"sjcli/internal/infrastructure"
	"sjcli/internal/resolver"
	"sjcli/pkg/contracts"
)

func main() {
	inPath := flag.String("in", "", "input .xlsx/.xls file or a directory of 'Sales Journal for ...' files (prompts when omitted)")
	outPath := flag.String("out", "", "report destination (defaults to '<today> unit aggregation report.xlsx', prompts when omitted)")
	configFile := flag.String("config", "", "optional YAML config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(contracts.GetVersionString())
		return
	}

	_ = godotenv.Load()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.WithRunID(context.Background())
	logger.InfoContext(ctx, "starting sales journal aggregation",
		slog.String("version", contracts.Version),
		slog.String("input", *inPath),
		slog.String("output", *outPath))

	a := app.New(cfg, resolver.NewPromptResolver(), logger)
	if err := a.Run(ctx, app.Options{InputPath: *inPath, OutputPath: *outPath}); err != nil {
		logger.ErrorContext(ctx, "aggregation failed", "error", err)
		os.Exit(1)
	}
}
