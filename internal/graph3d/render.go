package graph3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"cloudview/internal/bitmap"
)

const numDepthBins = 16

// boxEdges indexes the corners produced by boxCorner: bit 0 selects max X,
// bit 1 max Y and bit 2 max Z.
var boxEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Params describes one draw pass.
type Params struct {
	// CX, CY is the screen position of the object-space origin.
	CX, CY float64
	Camera Camera
	// Color is used for every point of a monochrome cloud and for the
	// bounding box.
	Color bitmap.Color
	// Size is the marker edge length in pixels; values below 2 plot single
	// pixels.
	Size int
	// Bounds draws the rotated bounding box of the cloud.
	Bounds bool
}

type projected struct {
	x, y, depth float64
	idx         int
}

// Renderer keeps scratch buffers between frames. The zero value is ready to
// use. A Renderer must not be shared between goroutines.
type Renderer struct {
	proj  []projected
	order []int
}

// Render draws cloud into bmp using a throwaway Renderer.
func Render(cloud *Cloud, bmp *bitmap.Bitmap, params Params) {
	var r Renderer
	r.Render(cloud, bmp, params)
}

// Render projects every point of cloud and draws it into bmp, furthest
// first. Points that cannot be projected or land outside bmp are skipped.
// The cloud is only read.
func (r *Renderer) Render(cloud *Cloud, bmp *bitmap.Bitmap, params Params) {
	if cloud.Len() == 0 {
		return
	}
	pr := params.Camera.Projector(params.CX, params.CY)

	r.proj = r.proj[:0]
	minDepth, maxDepth := math.Inf(1), math.Inf(-1)
	for i, p := range cloud.points {
		x, y, depth, ok := pr.Project(p.Pos)
		if !ok {
			continue
		}
		r.proj = append(r.proj, projected{x: x, y: y, depth: depth, idx: i})
		minDepth = math.Min(minDepth, depth)
		maxDepth = math.Max(maxDepth, depth)
	}

	for _, i := range r.depthOrder(minDepth, maxDepth) {
		pp := r.proj[i]
		col := params.Color
		if cloud.colored {
			col = cloud.points[pp.idx].Color
		}
		plotMarker(bmp, pp.x, pp.y, params.Size, col)
	}

	if params.Bounds {
		drawBox(bmp, pr, cloud.min, cloud.max, params.Color)
	}
}

// depthOrder buckets r.proj into numDepthBins slices by depth and returns
// indices into r.proj ordered far bin to near bin. Order within a bin is
// insertion order.
func (r *Renderer) depthOrder(minDepth, maxDepth float64) []int {
	n := len(r.proj)
	if cap(r.order) < n {
		r.order = make([]int, n)
	}
	r.order = r.order[:n]

	span := maxDepth - minDepth
	bin := func(d float64) int {
		if !(span > 0) {
			return 0
		}
		b := int((maxDepth - d) / span * (numDepthBins - 1))
		return min(max(b, 0), numDepthBins-1)
	}

	var starts [numDepthBins + 1]int
	for _, p := range r.proj {
		starts[bin(p.depth)+1]++
	}
	for i := 1; i <= numDepthBins; i++ {
		starts[i] += starts[i-1]
	}
	for i, p := range r.proj {
		b := bin(p.depth)
		r.order[starts[b]] = i
		starts[b]++
	}
	return r.order
}

func plotMarker(bmp *bitmap.Bitmap, x, y float64, size int, col bitmap.Color) {
	fx, fy := math.Floor(x), math.Floor(y)
	half := float64(size / 2)
	if fx+half < 0 || fy+half < 0 || fx-half >= float64(bmp.Width()) || fy-half >= float64(bmp.Height()) {
		return
	}
	ix, iy := int(fx), int(fy)
	if size < 2 {
		bmp.Plot(ix, iy, col)
		return
	}
	bmp.RectFill(ix-size/2, iy-size/2, size, size, col)
}

func boxCorner(lo, hi mgl64.Vec3, i int) mgl64.Vec3 {
	c := lo
	for axis := 0; axis < 3; axis++ {
		if i&(1<<axis) != 0 {
			c[axis] = hi[axis]
		}
	}
	return c
}

func drawBox(bmp *bitmap.Bitmap, pr Projector, lo, hi mgl64.Vec3, col bitmap.Color) {
	type corner struct {
		x, y float64
		ok   bool
	}
	var corners [8]corner
	for i := range corners {
		x, y, _, ok := pr.Project(boxCorner(lo, hi, i))
		corners[i] = corner{x, y, ok}
	}
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		if !a.ok || !b.ok {
			continue
		}
		bmp.DrawLineF(a.x, a.y, b.x, b.y, col)
	}
}
