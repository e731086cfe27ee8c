// Package graph3d accumulates coloured 3D points and draws them into a
// bitmap with a rotating perspective camera.
package graph3d

import (
	"github.com/go-gl/mathgl/mgl64"

	"cloudview/internal/bitmap"
)

// Point is one sample in object space.
type Point struct {
	Pos   mgl64.Vec3
	Color bitmap.Color
}

// Cloud is an insertion-ordered list of points. Points are never modified
// once added.
type Cloud struct {
	points  []Point
	colored bool

	min, max mgl64.Vec3
}

// New returns an empty cloud whose points are all drawn in the colour passed
// to Render.
func New() *Cloud {
	return &Cloud{}
}

// NewColored returns an empty cloud whose points are drawn in their own
// colour.
func NewColored() *Cloud {
	return &Cloud{colored: true}
}

// NewWithPrealloc is New with capacity reserved for size points.
func NewWithPrealloc(size int, colored bool) *Cloud {
	return &Cloud{points: make([]Point, 0, size), colored: colored}
}

// AddPoint appends a point with no colour of its own.
func (c *Cloud) AddPoint(x, y, z float64) {
	c.add(Point{Pos: mgl64.Vec3{x, y, z}})
}

// AddColoredPoint appends a point carrying col. The colour is stored as is.
func (c *Cloud) AddColoredPoint(x, y, z float64, col bitmap.Color) {
	c.add(Point{Pos: mgl64.Vec3{x, y, z}, Color: col})
}

func (c *Cloud) add(p Point) {
	if len(c.points) == 0 {
		c.min, c.max = p.Pos, p.Pos
	} else {
		for i := 0; i < 3; i++ {
			c.min[i] = min(c.min[i], p.Pos[i])
			c.max[i] = max(c.max[i], p.Pos[i])
		}
	}
	c.points = append(c.points, p)
}

// Len is the number of points added so far.
func (c *Cloud) Len() int {
	return len(c.points)
}

// Colored reports whether points are drawn in their own colour.
func (c *Cloud) Colored() bool {
	return c.colored
}

// At returns the i'th point in insertion order.
func (c *Cloud) At(i int) Point {
	return c.points[i]
}

// Bounds returns the per-axis minimum and maximum over all points. ok is
// false for an empty cloud.
func (c *Cloud) Bounds() (lo, hi mgl64.Vec3, ok bool) {
	if len(c.points) == 0 {
		return mgl64.Vec3{}, mgl64.Vec3{}, false
	}
	return c.min, c.max, true
}

// Each calls fn for every point in insertion order until fn returns false.
func (c *Cloud) Each(fn func(i int, p Point) bool) {
	for i, p := range c.points {
		if !fn(i, p) {
			return
		}
	}
}
