package graph3d

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is the per-frame view state. Object space is Z-up; RotZ spins the
// cloud about that vertical axis and RotX then tilts it towards the viewer.
type Camera struct {
	RotX, RotZ float64
	Distance   float64
	Zoom       float64
}

// Rotation returns Rx(RotX)·Rz(RotZ).
func (c Camera) Rotation() mgl64.Mat3 {
	return mgl64.Rotate3DX(c.RotX).Mul3(mgl64.Rotate3DZ(c.RotZ))
}

// Projector returns a projector for this camera centred on (cx, cy).
func (c Camera) Projector(cx, cy float64) Projector {
	return Projector{
		rot:  c.Rotation(),
		cx:   cx,
		cy:   cy,
		dist: c.Distance,
		zoom: c.Zoom,
	}
}

// Projector maps object-space points to screen coordinates.
type Projector struct {
	rot    mgl64.Mat3
	cx, cy float64
	dist   float64
	zoom   float64
}

// Rotate applies the camera rotation only.
func (p Projector) Rotate(v mgl64.Vec3) mgl64.Vec3 {
	return p.rot.Mul3x1(v)
}

// Project rotates v and applies the perspective divide. After rotation Y is
// depth (larger is further away), X is screen right and Z is screen up.
// ok is false when the point sits at or behind the eye, in which case the
// other results are meaningless.
func (p Projector) Project(v mgl64.Vec3) (x, y, depth float64, ok bool) {
	r := p.rot.Mul3x1(v)
	return p.ProjectRotated(r)
}

// ProjectRotated is Project for a point that has already been rotated.
func (p Projector) ProjectRotated(r mgl64.Vec3) (x, y, depth float64, ok bool) {
	depth = r.Y()
	denom := p.dist + depth
	if !(denom > 0) {
		return 0, 0, depth, false
	}
	factor := p.zoom / denom
	x = p.cx + r.X()*factor
	y = p.cy - r.Z()*factor
	return x, y, depth, true
}
