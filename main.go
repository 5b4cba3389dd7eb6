package main

import (
	"log"
	"log/slog"
	"os"

	"LocalSketch/internal/config"
	"LocalSketch/internal/engine"
	"LocalSketch/internal/ui"

	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "path to config.toml (default: user config dir)")
	pflag.Parse()

	path := *configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			log.Printf("[CONFIG] No user config dir, using defaults: %v", err)
		}
		path = p
	}

	cfg := config.Default()
	if path != "" {
		c, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = c
		log.Printf("[CONFIG] Using %s", path)
	}

	engine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Log.SlogLevel(),
	})))

	ui.RunApp(cfg, path)
}
