package graph3d

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"go.viam.com/test"

	"cloudview/internal/bitmap"
)

func TestCloud(t *testing.T) {
	c := New()
	test.That(t, c.Len(), test.ShouldEqual, 0)
	test.That(t, c.Colored(), test.ShouldBeFalse)
	_, _, ok := c.Bounds()
	test.That(t, ok, test.ShouldBeFalse)

	c.AddPoint(-5, -2, -3)
	c.AddPoint(-1, -7, -9)
	c.AddPoint(-5, -2, -3)
	test.That(t, c.Len(), test.ShouldEqual, 3)

	lo, hi, ok := c.Bounds()
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, lo, test.ShouldResemble, mgl64.Vec3{-5, -7, -9})
	test.That(t, hi, test.ShouldResemble, mgl64.Vec3{-1, -2, -3})

	var seen []mgl64.Vec3
	c.Each(func(i int, p Point) bool {
		seen = append(seen, p.Pos)
		return i < 1
	})
	test.That(t, seen, test.ShouldResemble, []mgl64.Vec3{{-5, -2, -3}, {-1, -7, -9}})
	test.That(t, c.At(2).Pos, test.ShouldResemble, mgl64.Vec3{-5, -2, -3})

	cc := NewColored()
	cc.AddColoredPoint(1, 2, 3, 0x12345678)
	test.That(t, cc.Colored(), test.ShouldBeTrue)
	test.That(t, cc.At(0).Color, test.ShouldEqual, bitmap.Color(0x12345678))

	pre := NewWithPrealloc(10, true)
	test.That(t, pre.Len(), test.ShouldEqual, 0)
	test.That(t, pre.Colored(), test.ShouldBeTrue)
}

func TestProject(t *testing.T) {
	cam := Camera{Distance: 100, Zoom: 100}
	pr := cam.Projector(50, 50)

	x, y, depth, ok := pr.Project(mgl64.Vec3{10, 0, 0})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, x, test.ShouldAlmostEqual, 60, 1e-9)
	test.That(t, y, test.ShouldAlmostEqual, 50, 1e-9)
	test.That(t, depth, test.ShouldAlmostEqual, 0, 1e-9)

	// Z is up on screen
	_, y, _, ok = pr.Project(mgl64.Vec3{0, 0, 10})
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, y, test.ShouldAlmostEqual, 40, 1e-9)

	x, _, depth, _ = pr.Project(mgl64.Vec3{10, 100, 0})
	test.That(t, depth, test.ShouldAlmostEqual, 100, 1e-9)
	test.That(t, x, test.ShouldAlmostEqual, 55, 1e-9)

	t.Run("further is smaller", func(t *testing.T) {
		far, _, _, ok := pr.Project(mgl64.Vec3{10, 50, 0})
		test.That(t, ok, test.ShouldBeTrue)
		near, _, _, ok := pr.Project(mgl64.Vec3{10, -50, 0})
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, near-50, test.ShouldBeGreaterThan, far-50)
	})

	t.Run("non-positive denominator", func(t *testing.T) {
		pr := Camera{Distance: 10, Zoom: 100}.Projector(0, 0)
		_, _, _, ok := pr.Project(mgl64.Vec3{0, -10, 0})
		test.That(t, ok, test.ShouldBeFalse)
		_, _, _, ok = pr.Project(mgl64.Vec3{0, -20, 0})
		test.That(t, ok, test.ShouldBeFalse)
		_, _, _, ok = pr.Project(mgl64.Vec3{0, -9, 0})
		test.That(t, ok, test.ShouldBeTrue)
	})
}

func TestRotation(t *testing.T) {
	t.Run("z spin turns x into depth", func(t *testing.T) {
		pr := Camera{RotZ: math.Pi / 2, Distance: 100, Zoom: 100}.Projector(0, 0)
		r := pr.Rotate(mgl64.Vec3{10, 0, 0})
		test.That(t, r.X(), test.ShouldAlmostEqual, 0, 1e-9)
		test.That(t, r.Y(), test.ShouldAlmostEqual, 10, 1e-9)
		test.That(t, r.Z(), test.ShouldAlmostEqual, 0, 1e-9)

		x, _, depth, ok := pr.Project(mgl64.Vec3{10, 0, 0})
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, x, test.ShouldAlmostEqual, 0, 1e-9)
		test.That(t, depth, test.ShouldAlmostEqual, 10, 1e-9)
	})

	t.Run("x tilt turns depth into up", func(t *testing.T) {
		pr := Camera{RotX: math.Pi / 2, Distance: 100, Zoom: 100}.Projector(0, 0)
		_, y, depth, ok := pr.Project(mgl64.Vec3{0, 10, 0})
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, depth, test.ShouldAlmostEqual, 0, 1e-9)
		test.That(t, y, test.ShouldAlmostEqual, -10, 1e-9)
	})

	t.Run("z applied before x", func(t *testing.T) {
		cam := Camera{RotX: 0.3, RotZ: 1.1}
		v := mgl64.Vec3{3, -4, 5}
		want := mgl64.Rotate3DX(0.3).Mul3x1(mgl64.Rotate3DZ(1.1).Mul3x1(v))
		got := cam.Projector(0, 0).Rotate(v)
		test.That(t, got.ApproxEqualThreshold(want, 1e-12), test.ShouldBeTrue)
		// rotation preserves length
		test.That(t, got.Len(), test.ShouldAlmostEqual, v.Len(), 1e-9)
	})
}

func TestProjectionConvergesToCentre(t *testing.T) {
	pr := Camera{RotX: 0.4, RotZ: -1.2, Distance: 1e12, Zoom: 1200}.Projector(500, 300)
	for _, v := range []mgl64.Vec3{{-128, -128, -128}, {128, 128, 128}, {128, -128, 64}, {0, 0, 0}} {
		x, y, _, ok := pr.Project(v)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, math.Abs(x-500), test.ShouldBeLessThan, 1e-6)
		test.That(t, math.Abs(y-300), test.ShouldBeLessThan, 1e-6)
	}
}

func assertUniform(t *testing.T, bmp *bitmap.Bitmap, c bitmap.Color) {
	t.Helper()
	for y := 0; y < bmp.Height(); y++ {
		for x := 0; x < bmp.Width(); x++ {
			if bmp.At(x, y) != c {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, uint32(bmp.At(x, y)), uint32(c))
			}
		}
	}
}

func TestRenderEmptyCloud(t *testing.T) {
	bmp := bitmap.New(20, 20)
	bmp.Clear(bitmap.White)
	Render(New(), bmp, Params{CX: 10, CY: 10, Camera: Camera{Distance: 430, Zoom: 1200}, Color: bitmap.Black, Bounds: true})
	assertUniform(t, bmp, bitmap.White)
}

func TestRenderPoints(t *testing.T) {
	cam := Camera{Distance: 100, Zoom: 100}

	t.Run("monochrome uses params colour", func(t *testing.T) {
		c := New()
		c.AddPoint(0, 0, 0)
		bmp := bitmap.New(10, 10)
		bmp.Clear(bitmap.White)
		Render(c, bmp, Params{CX: 5, CY: 5, Camera: cam, Color: bitmap.Black})
		test.That(t, bmp.At(5, 5), test.ShouldEqual, bitmap.Black)
		test.That(t, bmp.At(4, 5), test.ShouldEqual, bitmap.White)
	})

	t.Run("colored uses point colour", func(t *testing.T) {
		red := bitmap.RGB(255, 0, 0)
		c := NewColored()
		c.AddColoredPoint(0, 0, 0, red)
		bmp := bitmap.New(10, 10)
		Render(c, bmp, Params{CX: 5, CY: 5, Camera: cam, Color: bitmap.Black})
		test.That(t, bmp.At(5, 5), test.ShouldEqual, red)
	})

	t.Run("marker size", func(t *testing.T) {
		c := New()
		c.AddPoint(0, 0, 0)
		bmp := bitmap.New(10, 10)
		bmp.Clear(bitmap.White)
		Render(c, bmp, Params{CX: 5, CY: 5, Camera: cam, Color: bitmap.Black, Size: 3})
		for y := 4; y <= 6; y++ {
			for x := 4; x <= 6; x++ {
				test.That(t, bmp.At(x, y), test.ShouldEqual, bitmap.Black)
			}
		}
		test.That(t, bmp.At(3, 5), test.ShouldEqual, bitmap.White)
		test.That(t, bmp.At(7, 5), test.ShouldEqual, bitmap.White)
	})

	t.Run("out of bounds is skipped", func(t *testing.T) {
		c := New()
		c.AddPoint(1000, 0, 0)
		c.AddPoint(0, 0, -1000)
		c.AddPoint(0, -500, 0) // behind the eye
		bmp := bitmap.New(10, 10)
		bmp.Clear(bitmap.White)
		Render(c, bmp, Params{CX: 5, CY: 5, Camera: cam, Color: bitmap.Black, Size: 2})
		assertUniform(t, bmp, bitmap.White)
	})

	t.Run("near points drawn over far ones", func(t *testing.T) {
		near, far := bitmap.RGB(255, 0, 0), bitmap.RGB(0, 0, 255)
		c := NewColored()
		c.AddColoredPoint(0, -50, 0, near)
		c.AddColoredPoint(0, 50, 0, far)
		bmp := bitmap.New(10, 10)
		Render(c, bmp, Params{CX: 5.5, CY: 5.5, Camera: cam})
		test.That(t, bmp.At(5, 5), test.ShouldEqual, near)

		// turned half way round the far point is in front
		bmp.Clear(bitmap.White)
		Render(c, bmp, Params{CX: 5.5, CY: 5.5, Camera: Camera{RotZ: math.Pi, Distance: 100, Zoom: 100}})
		test.That(t, bmp.At(5, 5), test.ShouldEqual, far)
	})
}

func TestRenderBounds(t *testing.T) {
	c := New()
	c.AddPoint(-1, -1, -1)
	c.AddPoint(1, 1, 1)
	params := Params{CX: 20, CY: 20, Camera: Camera{Distance: 10, Zoom: 10}, Color: bitmap.Black}

	bmp := bitmap.New(40, 40)
	bmp.Clear(bitmap.White)
	Render(c, bmp, params)
	test.That(t, bmp.At(20, 21), test.ShouldEqual, bitmap.White)

	params.Bounds = true
	Render(c, bmp, params)
	// bottom edge of the front face
	test.That(t, bmp.At(20, 21), test.ShouldEqual, bitmap.Black)
	test.That(t, bmp.At(0, 0), test.ShouldEqual, bitmap.White)
}

func TestRenderDoesNotMutate(t *testing.T) {
	c := NewColored()
	for i := 0; i < 50; i++ {
		f := float64(i)
		c.AddColoredPoint(f, -f, f*2, bitmap.Color(i))
	}
	lo, hi, _ := c.Bounds()
	before := make([]Point, c.Len())
	copy(before, c.points)

	var r Renderer
	bmp := bitmap.New(64, 64)
	for _, rot := range []float64{0, 0.5, 2.5} {
		r.Render(c, bmp, Params{CX: 32, CY: 32, Camera: Camera{RotX: rot, RotZ: rot, Distance: 430, Zoom: 300}, Bounds: true})
	}

	test.That(t, c.points, test.ShouldResemble, before)
	lo2, hi2, _ := c.Bounds()
	test.That(t, lo2, test.ShouldResemble, lo)
	test.That(t, hi2, test.ShouldResemble, hi)
}

func TestDepthOrderSingleDepth(t *testing.T) {
	r := Renderer{proj: []projected{{depth: 3}, {depth: 3}, {depth: 3}}}
	test.That(t, r.depthOrder(3, 3), test.ShouldResemble, []int{0, 1, 2})

	r.proj = []projected{{depth: 0}, {depth: 10}, {depth: 5}}
	test.That(t, r.depthOrder(0, 10), test.ShouldResemble, []int{1, 2, 0})
}
