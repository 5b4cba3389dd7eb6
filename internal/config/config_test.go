package config

import (
	"context"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"LocalSketch/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, color.NRGBA{A: 255}, cfg.Brush.BrushColor())
	assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, cfg.Canvas.BackgroundColor())
	assert.Len(t, cfg.Brush.Colors(), 5)
	assert.Equal(t, "paint.png", cfg.Export.DefaultName)
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, `
[canvas]
width = 800
background = "#102030"

[brush]
color = "#f00"
width = 4

[log]
level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 640, cfg.Canvas.Height)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}, cfg.Canvas.BackgroundColor())
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, cfg.Brush.BrushColor())
	assert.Equal(t, 4.0, cfg.Brush.Width)
	assert.Equal(t, 10.0, cfg.Brush.MaxWidth)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"size":       "[canvas]\nwidth = 0\n",
		"background": "[canvas]\nbackground = \"white\"\n",
		"range":      "[brush]\nmin_width = 5\nmax_width = 2\nwidth = 3\n",
		"width":      "[brush]\nwidth = 20\n",
		"color":      "[brush]\ncolor = \"#zzzzzz\"\n",
		"palette":    "[brush]\npalette = [\"#000\", \"nope\"]\n",
		"level":      "[log]\nlevel = \"loud\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			writeFile(t, path, body)
			cfg, err := Load(path)
			assert.ErrorIs(t, err, ErrInvalid)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestValidateKeepsCause(t *testing.T) {
	cfg := Default()
	cfg.Brush.Color = "#zzzzzz"
	err := cfg.Validate()
	assert.ErrorIs(t, err, ErrInvalid)
	assert.ErrorIs(t, err, state.ErrInvalidColor)

	cfg = Default()
	cfg.Brush.Palette = []string{"#000", "nope"}
	assert.ErrorIs(t, cfg.Validate(), state.ErrInvalidColor)

	cfg = Default()
	cfg.Brush.MaxWidth = math.Inf(1)
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	writeFile(t, path, "[canvas\nwidth = ")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestColorRoundTrip(t *testing.T) {
	c, err := ParseColor(" #1a2B3c ")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 255}, c)
	assert.Equal(t, "#1a2b3c", state.FormatColor(c))

	_, err = ParseColor("red")
	assert.Error(t, err)
}

func TestSlogLevelFallsBackToInfo(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, LogConfig{}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, LogConfig{Level: "chatty"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, LogConfig{Level: "warn"}.SlogLevel())
}

func TestWatchReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	writeFile(t, path, "[brush]\nwidth = 2\n")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Config, 16)
	require.NoError(t, Watch(ctx, path, func(c Config) {
		select {
		case got <- c:
		default:
		}
	}))

	writeFile(t, path, "[brush]\nwidth = 6\ncolor = \"#00f\"\n")
	// A truncating write may be seen half-done first; wait for the final state.
	timeout := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-got:
			if cfg.Brush.Width != 6 {
				continue
			}
			assert.Equal(t, color.NRGBA{B: 255, A: 255}, cfg.Brush.BrushColor())
			return
		case <-timeout:
			t.Fatal("no reload after write")
		}
	}
}

func TestWatchFailsForMissingDirectory(t *testing.T) {
	err := Watch(context.Background(), filepath.Join(t.TempDir(), "missing", "config.toml"), func(Config) {})
	assert.Error(t, err)
}
