package main

import (
	"flag"
	"log/slog"

	"github.com/soocke/pixel-crop-go/app"
	"github.com/soocke/pixel-crop-go/config"
)

func main() {
	cfgPath := flag.String("config", "pixel-crop.json", "path to the JSON config file")
	imagePath := flag.String("image", "", "image to open at startup (defaults to the bundled sample)")
	debugFlag := flag.Bool("debug", false, "verbose logging and runtime diagnostics")
	flag.Parse()

	enableDPIAwareness()

	cfg, err := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	application := app.NewApp("Pixel Crop", cfg, *cfgPath, *imagePath, logger)
	application.Start()
}
