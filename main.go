package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"LocalPaint/internal/config"
	applog "LocalPaint/internal/log"
	"LocalPaint/internal/state"
	"LocalPaint/internal/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultFile, "path to a TOML settings file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error (overrides the config file)")
	flag.Parse()

	cfg, cfgErr := config.Load(*configPath)

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	logger := applog.Init(level, os.Stderr)

	switch {
	case cfgErr == nil:
		logger.Info("config loaded", slog.String("path", *configPath))
	case errors.Is(cfgErr, os.ErrNotExist):
		logger.Debug("no config file, using defaults", slog.String("path", *configPath))
	default:
		logger.Warn("config ignored, using defaults", slog.Any("err", cfgErr))
	}

	scene, err := state.NewScene()
	if err != nil {
		logger.Error("build scene", slog.Any("err", err))
		os.Exit(1)
	}

	ui.RunApp(cfg, scene)
}
