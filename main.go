package main

import (
	"flag"
	"log/slog"
	"time"

	"github.com/soocke/imagecrop-go/app"
	"github.com/soocke/imagecrop-go/config"
	"github.com/soocke/imagecrop-go/debug"
)

func main() {
	cfgPath := flag.String("config", "config.json", "path to the JSON settings file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and memory stats")
	flag.Parse()

	// Base config from file, then .env / environment, then flags
	cfg, cfgErr := config.Load(*cfgPath)
	envErr := cfg.ApplyEnv()
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", cfgErr)
	}
	if envErr != nil {
		logger.Warn("dotenv load failed", "error", envErr)
	}
	if cfg.Debug {
		debug.StartMemLogger(30*time.Second, logger)
	}

	application := app.NewApp("Image Cropping Application", cfg, logger)
	application.Start()
}
