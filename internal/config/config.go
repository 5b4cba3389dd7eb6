// Package config loads the drawing board's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"LocalSketch/internal/state"

	"github.com/BurntSushi/toml"
)

const (
	appDir     = "localsketch"
	configFile = "config.toml"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is the complete application configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Brush  BrushConfig  `toml:"brush"`
	Export ExportConfig `toml:"export"`
	Log    LogConfig    `toml:"log"`
}

// CanvasConfig sets the fixed drawing surface.
type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// BrushConfig sets the brush used for new strokes and the choices offered
// by the toolbar.
type BrushConfig struct {
	Color    string   `toml:"color"`
	Width    float64  `toml:"width"`
	MinWidth float64  `toml:"min_width"`
	MaxWidth float64  `toml:"max_width"`
	Palette  []string `toml:"palette"`
}

type ExportConfig struct {
	DefaultName string `toml:"default_name"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{Width: 1024, Height: 640, Background: "#ffffff"},
		Brush: BrushConfig{
			Color:    "#000000",
			Width:    1,
			MinWidth: 1,
			MaxWidth: 10,
			Palette:  []string{"#000000", "#ff0000", "#00ff00", "#0000ff", "#ffff00"},
		},
		Export: ExportConfig{DefaultName: "paint.png"},
		Log:    LogConfig{Level: "info"},
	}
}

// DefaultPath returns ~/.config/localsketch/config.toml or the platform's
// equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine config directory: %w", err)
	}
	return filepath.Join(dir, appDir, configFile), nil
}

// Load reads the file at path on top of the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to read %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Printf("[CONFIG] Unknown key %q in %s", key.String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("%w: canvas.background: %w", ErrInvalid, err)
	}
	if err := c.Brush.Validate(); err != nil {
		return err
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
	}
	return nil
}

// Validate checks the brush section on its own; the watcher reloads only
// this part.
func (b BrushConfig) Validate() error {
	if !state.ValidWidth(b.MinWidth) || !state.ValidWidth(b.MaxWidth) || b.MaxWidth < b.MinWidth {
		return fmt.Errorf("%w: brush width range [%v, %v]", ErrInvalid, b.MinWidth, b.MaxWidth)
	}
	if !state.ValidWidth(b.Width) || b.Width < b.MinWidth || b.Width > b.MaxWidth {
		return fmt.Errorf("%w: brush width %v outside [%v, %v]", ErrInvalid, b.Width, b.MinWidth, b.MaxWidth)
	}
	if _, err := ParseColor(b.Color); err != nil {
		return fmt.Errorf("%w: brush.color: %w", ErrInvalid, err)
	}
	for _, s := range b.Palette {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%w: brush.palette: %w", ErrInvalid, err)
		}
	}
	return nil
}

// BrushColor returns the parsed brush color, black if it does not parse.
func (b BrushConfig) BrushColor() color.NRGBA {
	c, err := ParseColor(b.Color)
	if err != nil {
		return color.NRGBA{A: 255}
	}
	return c
}

// Colors returns the parsed palette, skipping entries that do not parse.
func (b BrushConfig) Colors() []color.NRGBA {
	out := make([]color.NRGBA, 0, len(b.Palette))
	for _, s := range b.Palette {
		if c, err := ParseColor(s); err == nil {
			out = append(out, c)
		}
	}
	return out
}

// BackgroundColor returns the parsed canvas background, white if it does
// not parse.
func (c CanvasConfig) BackgroundColor() color.NRGBA {
	bg, err := ParseColor(c.Background)
	if err != nil {
		return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	}
	return bg
}

// SlogLevel returns the configured level, info if unset or unknown.
func (l LogConfig) SlogLevel() slog.Level {
	lvl, err := parseLevel(l.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if s == "" {
		return slog.LevelInfo, nil
	}
	err := lvl.UnmarshalText([]byte(strings.ToUpper(s)))
	return lvl, err
}

// ParseColor parses a hex color such as "#000" or "#ff8000".
func ParseColor(s string) (color.NRGBA, error) {
	return state.ParseColor(s)
}
