package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"cloudview/internal/bitmap"
	"cloudview/internal/colorspace"
	"cloudview/internal/config"
	"cloudview/internal/graph3d"
	"cloudview/internal/imagecloud"
	"cloudview/internal/logging"
	"cloudview/internal/viewer"
	"cloudview/internal/window"
)

const (
	fontName = "mono"
	fontSize = 11
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "cloudview:", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "cloudview",
		Usage:     "plot the colours of an image as a 3D point cloud",
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			{
				Name:   "view",
				Usage:  "open an interactive window; drag to rotate, wheel to zoom, Esc to quit",
				Flags:  config.Flags(),
				Action: viewAction,
			},
			{
				Name:  "render",
				Usage: "render a single frame to an image file",
				Flags: append(config.Flags(),
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Value: "cloud.png", Usage: "output file; format from extension"},
					&cli.Float64Flag{Name: "rot-x", Usage: "tilt in radians"},
					&cli.Float64Flag{Name: "rot-z", Usage: "spin in radians"},
				),
				Action: renderAction,
			},
			{
				Name:  "spaces",
				Usage: "list colour spaces",
				Action: func(c *cli.Context) error {
					for _, name := range colorspace.Names() {
						fmt.Fprintln(c.App.Writer, name)
					}
					return nil
				},
			},
		},
	}
}

// setup parses the configuration and builds the cloud shared by every
// command.
func setup(c *cli.Context) (config.Config, logging.Logger, *graph3d.Cloud, error) {
	cfg, err := config.FromContext(c)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	logger, err := logging.NewLogger("cloudview", cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	space, err := colorspace.Lookup(cfg.Space)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	img, err := imagecloud.Load(cfg.Image, cfg.MaxDim)
	if err != nil {
		return config.Config{}, nil, nil, err
	}
	b := img.Bounds()
	cloud := imagecloud.Build(img, space, cfg.Colored)
	logger.Infow("cloud built", "image", cfg.Image, "width", b.Dx(), "height", b.Dy(),
		"space", space.Name(), "points", cloud.Len())
	return cfg, logger, cloud, nil
}

func viewAction(c *cli.Context) error {
	cfg, logger, cloud, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	font, err := bitmap.NewTextRenderer(fontName, fontSize)
	if err != nil {
		return err
	}
	win, err := window.CreateWin(cfg.WindowX, cfg.WindowY, cfg.Width, cfg.Height, cfg.Resizable, cfg.Title, logger)
	if err != nil {
		return err
	}
	defer win.Close()

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
	defer stop()

	err = viewer.Run(ctx, win, viewer.NewScene(cloud, font, cfg), logger)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	logger.Info("viewer closed")
	return err
}

func renderAction(c *cli.Context) error {
	cfg, logger, cloud, err := setup(c)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	scene := viewer.NewScene(cloud, nil, cfg)
	scene.Camera.RotX = c.Float64("rot-x")
	scene.Camera.RotZ = c.Float64("rot-z")

	bmp := bitmap.New(cfg.Width, cfg.Height)
	scene.Draw(bmp)

	out := c.String("out")
	if err := imaging.Save(bmp.Image(), out); err != nil {
		return errors.Wrapf(err, "saving %q", out)
	}
	logger.Infow("frame written", "path", out)
	return nil
}
