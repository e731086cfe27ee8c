// Package config holds the viewer settings and their command-line flags.
package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"

	"cloudview/internal/bitmap"
	"cloudview/internal/colorspace"
)

// Config is everything needed to build and show a cloud.
type Config struct {
	Image    string
	Space    string
	Colored  bool
	MaxDim   int
	LogLevel string

	WindowX, WindowY int
	Width, Height    int
	Resizable        bool
	Title            string

	Distance  float64
	Zoom      float64
	DragSpeed float64
	WheelStep float64
	KeyStep   float64

	PointSize  int
	Bounds     bool
	Background bitmap.Color
	Foreground bitmap.Color
}

// Default returns the settings of the classic colour-cube viewer.
func Default() Config {
	return Config{
		Space:      "ycbcr",
		Colored:    true,
		MaxDim:     256,
		LogLevel:   "info",
		WindowX:    500,
		WindowY:    50,
		Width:      1000,
		Height:     1000,
		Resizable:  true,
		Title:      "3d plot",
		Distance:   430,
		Zoom:       1200,
		DragSpeed:  0.01,
		WheelStep:  0.05,
		KeyStep:    0.03,
		PointSize:  1,
		Bounds:     true,
		Background: bitmap.White,
		Foreground: bitmap.Black,
	}
}

// Validate checks the settings that would otherwise fail later or render
// nothing.
func (c Config) Validate() error {
	if c.Image == "" {
		return errors.New("an image path is required")
	}
	if _, err := colorspace.Lookup(c.Space); err != nil {
		return err
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Distance <= 0 {
		return errors.Errorf("distance must be positive, got %v", c.Distance)
	}
	if c.Zoom <= 0 {
		return errors.Errorf("zoom must be positive, got %v", c.Zoom)
	}
	if c.MaxDim < 0 {
		return errors.Errorf("max image dimension cannot be negative, got %d", c.MaxDim)
	}
	if c.PointSize < 1 {
		return errors.Errorf("point size must be at least 1, got %d", c.PointSize)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "log level")
	}
	return nil
}

// ParseColor accepts 0xAARRGGBB, #RRGGBB or #AARRGGBB.
func ParseColor(s string) (bitmap.Color, error) {
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, errors.Errorf("colour %q must have 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, errors.Wrapf(err, "parsing colour %q", s)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return bitmap.Color(v), nil
}
