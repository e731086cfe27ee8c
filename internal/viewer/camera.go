package viewer

import (
	"cloudview/internal/graph3d"
	"cloudview/internal/input"
)

// Controls maps input to camera movement.
type Controls struct {
	// DragSpeed is radians of rotation per pixel of mouse movement while the
	// left button is held.
	DragSpeed float64
	// WheelStep is the fractional zoom change per wheel notch.
	WheelStep float64
	// KeyStep is radians of rotation per frame while an arrow key is held.
	KeyStep float64
	MinZoom float64
	// Home is restored when R is pressed.
	Home graph3d.Camera
}

const defaultMinZoom = 1

// Update returns the camera for the next frame given this frame's input.
func Update(cam graph3d.Camera, in input.State, ctl Controls) graph3d.Camera {
	if in.KeyPressed(input.Key('R')) {
		return ctl.Home
	}

	if in.LMB {
		cam.RotZ += float64(in.MouseVelX) * ctl.DragSpeed
		cam.RotX -= float64(in.MouseVelY) * ctl.DragSpeed
	}
	if in.KeyDown(input.KeyLeft) {
		cam.RotZ -= ctl.KeyStep
	}
	if in.KeyDown(input.KeyRight) {
		cam.RotZ += ctl.KeyStep
	}
	if in.KeyDown(input.KeyUp) {
		cam.RotX -= ctl.KeyStep
	}
	if in.KeyDown(input.KeyDown) {
		cam.RotX += ctl.KeyStep
	}

	cam.Zoom *= 1 + float64(in.MouseVelZ)*ctl.WheelStep
	if in.KeyPressed(input.KeyPlusPad) || in.KeyPressed(input.KeyEquals) {
		cam.Zoom *= 1 + ctl.WheelStep
	}
	if in.KeyPressed(input.KeyMinusPad) || in.KeyPressed(input.KeyMinus) {
		cam.Zoom *= 1 - ctl.WheelStep
	}

	minZoom := ctl.MinZoom
	if minZoom <= 0 {
		minZoom = defaultMinZoom
	}
	if !(cam.Zoom >= minZoom) {
		cam.Zoom = minZoom
	}
	return cam
}
