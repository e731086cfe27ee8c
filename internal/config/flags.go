package config

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"cloudview/internal/colorspace"
)

const envPrefix = "CLOUDVIEW_"

func env(name string) []string {
	return []string{envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))}
}

// Flags returns the flags FromContext reads, defaulted from Default.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Usage: "image whose pixels become points", EnvVars: env("image")},
		&cli.StringFlag{Name: "space", Value: d.Space, Usage: "colour space: " + strings.Join(colorspace.Names(), ", "), EnvVars: env("space")},
		&cli.BoolFlag{Name: "colored", Value: d.Colored, Usage: "draw each point in its pixel colour", EnvVars: env("colored")},
		&cli.IntFlag{Name: "max-dim", Value: d.MaxDim, Usage: "shrink the image to fit this size first (0 keeps it)", EnvVars: env("max-dim")},
		&cli.StringFlag{Name: "log-level", Value: d.LogLevel, EnvVars: env("log-level")},
		&cli.IntFlag{Name: "x", Value: d.WindowX, Usage: "window left edge"},
		&cli.IntFlag{Name: "y", Value: d.WindowY, Usage: "window top edge"},
		&cli.IntFlag{Name: "width", Value: d.Width, EnvVars: env("width")},
		&cli.IntFlag{Name: "height", Value: d.Height, EnvVars: env("height")},
		&cli.BoolFlag{Name: "resizable", Value: d.Resizable},
		&cli.StringFlag{Name: "title", Value: d.Title},
		&cli.Float64Flag{Name: "distance", Value: d.Distance, Usage: "camera distance from the cloud centre"},
		&cli.Float64Flag{Name: "zoom", Value: d.Zoom},
		&cli.Float64Flag{Name: "drag-speed", Value: d.DragSpeed, Usage: "radians per pixel of mouse drag"},
		&cli.Float64Flag{Name: "wheel-step", Value: d.WheelStep, Usage: "zoom change per wheel notch"},
		&cli.Float64Flag{Name: "key-step", Value: d.KeyStep, Usage: "radians per frame while an arrow key is held"},
		&cli.IntFlag{Name: "point-size", Value: d.PointSize},
		&cli.BoolFlag{Name: "bounds", Value: d.Bounds, Usage: "draw the bounding box"},
		&cli.StringFlag{Name: "background", Value: fmt.Sprintf("0x%08x", uint32(d.Background))},
		&cli.StringFlag{Name: "foreground", Value: fmt.Sprintf("0x%08x", uint32(d.Foreground))},
	}
}

// FromContext builds a validated Config from parsed flags.
func FromContext(c *cli.Context) (Config, error) {
	cfg := Config{
		Image:     c.String("image"),
		Space:     c.String("space"),
		Colored:   c.Bool("colored"),
		MaxDim:    c.Int("max-dim"),
		LogLevel:  c.String("log-level"),
		WindowX:   c.Int("x"),
		WindowY:   c.Int("y"),
		Width:     c.Int("width"),
		Height:    c.Int("height"),
		Resizable: c.Bool("resizable"),
		Title:     c.String("title"),
		Distance:  c.Float64("distance"),
		Zoom:      c.Float64("zoom"),
		DragSpeed: c.Float64("drag-speed"),
		WheelStep: c.Float64("wheel-step"),
		KeyStep:   c.Float64("key-step"),
		PointSize: c.Int("point-size"),
		Bounds:    c.Bool("bounds"),
	}
	var err error
	if cfg.Background, err = ParseColor(c.String("background")); err != nil {
		return Config{}, errors.Wrap(err, "background")
	}
	if cfg.Foreground, err = ParseColor(c.String("foreground")); err != nil {
		return Config{}, errors.Wrap(err, "foreground")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}
