// Package bitmap provides the software frame buffer the point cloud is drawn
// into, with clipped pixel, rectangle and line primitives.
package bitmap

import (
	"image"
	"math"
)

// Bitmap is an RGBA frame buffer. Every draw call clips to its bounds.
type Bitmap struct {
	img *image.RGBA
}

// New allocates a w×h bitmap. Negative sizes are treated as zero.
func New(w, h int) *Bitmap {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Bitmap{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Wrap uses img as the backing store. img must have a zero origin.
func Wrap(img *image.RGBA) *Bitmap {
	return &Bitmap{img: img}
}

func (b *Bitmap) Width() int  { return b.img.Rect.Dx() }
func (b *Bitmap) Height() int { return b.img.Rect.Dy() }

// Image returns the backing image.
func (b *Bitmap) Image() *image.RGBA { return b.img }

// Clear fills the whole bitmap with c.
func (b *Bitmap) Clear(c Color) {
	b.RectFill(0, 0, b.Width(), b.Height(), c)
}

// RectFill fills the w×h rectangle whose top-left corner is (x, y).
func (b *Bitmap) RectFill(x, y, w, h int, c Color) {
	r := image.Rect(x, y, x+w, y+h).Intersect(b.img.Rect)
	if r.Empty() {
		return
	}
	px := [4]uint8{c.R(), c.G(), c.B(), c.A()}
	for iy := r.Min.Y; iy < r.Max.Y; iy++ {
		off := b.img.PixOffset(r.Min.X, iy)
		row := b.img.Pix[off : off+4*r.Dx()]
		for i := 0; i < len(row); i += 4 {
			copy(row[i:i+4], px[:])
		}
	}
}

// Plot sets a single pixel. Coordinates outside the bitmap are ignored.
func (b *Bitmap) Plot(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return
	}
	offset := b.img.PixOffset(x, y)
	b.img.Pix[offset] = c.R()
	b.img.Pix[offset+1] = c.G()
	b.img.Pix[offset+2] = c.B()
	b.img.Pix[offset+3] = c.A()
}

// At returns the pixel at (x, y), or 0 outside the bitmap.
func (b *Bitmap) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.Width() || y >= b.Height() {
		return 0
	}
	offset := b.img.PixOffset(x, y)
	p := b.img.Pix[offset : offset+4]
	return RGBA(p[0], p[1], p[2], p[3])
}

// DrawLine draws a line from (x1, y1) to (x2, y2) inclusive with a DDA walk.
// Pixels falling outside the bitmap are skipped.
func (b *Bitmap) DrawLine(x1, y1, x2, y2 int, c Color) {
	dx := float64(x2 - x1)
	dy := float64(y2 - y1)
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		b.Plot(x1, y1, c)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := float64(x1)
	y := float64(y1)

	for i := 0; i <= int(steps); i++ {
		b.Plot(int(math.Round(x)), int(math.Round(y)), c)
		x += xInc
		y += yInc
	}
}

// DrawLineF draws a line between float coordinates, skipping it entirely if
// either end is not a finite number.
func (b *Bitmap) DrawLineF(x1, y1, x2, y2 float64, c Color) {
	for _, v := range [...]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) || math.Abs(v) > maxCoord {
			return
		}
	}
	b.DrawLine(int(math.Floor(x1)), int(math.Floor(y1)), int(math.Floor(x2)), int(math.Floor(y2)), c)
}

// maxCoord bounds line endpoints so a near-degenerate projection cannot turn
// into a walk over billions of off-screen pixels.
const maxCoord = 1 << 16
