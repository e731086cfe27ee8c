// Package viewer runs the interactive point cloud view: per-frame camera
// update, world render and overlay, on top of any window Host.
package viewer

import (
	"context"
	"strconv"

	"cloudview/internal/bitmap"
	"cloudview/internal/config"
	"cloudview/internal/graph3d"
	"cloudview/internal/input"
	"cloudview/internal/logging"
)

// Host is a window that hands out one frame buffer per iteration.
type Host interface {
	// Advance presents the previous frame, polls input and returns the
	// buffer to draw the next frame into.
	Advance() (*bitmap.Bitmap, input.State)
	Closed() bool
	FPS() int
}

var helpLines = []string{
	"Hold left mouse to rotate",
	"Mouse wheel to zoom",
}

const (
	helpBoxWidth  = 230
	helpBoxHeight = 40
)

// Scene is the world state drawn each frame.
type Scene struct {
	Cloud    *graph3d.Cloud
	Font     *bitmap.TextRenderer
	Controls Controls
	Camera   graph3d.Camera

	Background bitmap.Color
	Foreground bitmap.Color
	PointSize  int
	Bounds     bool

	renderer graph3d.Renderer
}

// NewScene sets up a scene for cloud from cfg. font may be nil to skip the
// overlay.
func NewScene(cloud *graph3d.Cloud, font *bitmap.TextRenderer, cfg config.Config) *Scene {
	home := graph3d.Camera{Distance: cfg.Distance, Zoom: cfg.Zoom}
	return &Scene{
		Cloud: cloud,
		Font:  font,
		Controls: Controls{
			DragSpeed: cfg.DragSpeed,
			WheelStep: cfg.WheelStep,
			KeyStep:   cfg.KeyStep,
			Home:      home,
		},
		Camera:     home,
		Background: cfg.Background,
		Foreground: cfg.Foreground,
		PointSize:  cfg.PointSize,
		Bounds:     cfg.Bounds,
	}
}

// Frame advances the camera by in and draws one frame into bmp.
func (s *Scene) Frame(bmp *bitmap.Bitmap, in input.State, fps int) {
	s.Camera = Update(s.Camera, in, s.Controls)
	s.Draw(bmp)
	s.drawOverlay(bmp, fps)
}

// Draw clears bmp and renders the cloud with the current camera.
func (s *Scene) Draw(bmp *bitmap.Bitmap) {
	bmp.Clear(s.Background)
	s.renderer.Render(s.Cloud, bmp, graph3d.Params{
		CX:     float64(bmp.Width()) / 2,
		CY:     float64(bmp.Height()) / 2,
		Camera: s.Camera,
		Color:  s.Foreground,
		Size:   s.PointSize,
		Bounds: s.Bounds,
	})
}

func (s *Scene) drawOverlay(bmp *bitmap.Bitmap, fps int) {
	if s.Font == nil {
		return
	}
	w, h := bmp.Width(), bmp.Height()
	s.Font.DrawTextSimple(s.Foreground, bmp, w-100, 5, strconv.Itoa(fps))
	bmp.RectFill(0, h-helpBoxHeight, helpBoxWidth, helpBoxHeight, s.Background)
	for i, line := range helpLines {
		s.Font.DrawTextSimple(s.Foreground, bmp, 10, h-35+15*i, line)
	}
}

// Run drives host until its window closes, Esc is pressed or ctx is done.
func Run(ctx context.Context, host Host, scene *Scene, logger logging.Logger) error {
	frames := 0
	for {
		if err := ctx.Err(); err != nil {
			logger.Debugw("view cancelled", "frames", frames)
			return err
		}
		bmp, in := host.Advance()
		if host.Closed() || in.KeyDown(input.KeyEsc) {
			logger.Debugw("view closed", "frames", frames)
			return nil
		}
		scene.Frame(bmp, in, host.FPS())
		frames++
	}
}
