package colorspace

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// HalfExtent is half the edge length of the cube every Space maps into.
const HalfExtent = 128

// Space places an RGB colour in 3D.
type Space interface {
	Name() string
	// Point maps r, g, b into [-HalfExtent, HalfExtent]^3.
	Point(r, g, b uint8) mgl64.Vec3
}

var spaces = map[string]Space{}

func register(s Space) {
	spaces[s.Name()] = s
}

func init() {
	register(ycbcrSpace{})
	register(rgbSpace{})
	register(hsvSpace{})
	register(labSpace{})
}

// Lookup returns the space registered under name.
func Lookup(name string) (Space, error) {
	s, ok := spaces[name]
	if !ok {
		return nil, errors.Errorf("unknown colour space %q (have %v)", name, Names())
	}
	return s, nil
}

// Names lists the registered spaces in sorted order.
func Names() []string {
	names := make([]string, 0, len(spaces))
	for n := range spaces {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ycbcrSpace puts luma on X, Cr on Y and Cb on Z.
type ycbcrSpace struct{}

func (ycbcrSpace) Name() string { return "ycbcr" }

func (ycbcrSpace) Point(r, g, b uint8) mgl64.Vec3 {
	y, cb, cr := ToYCbCr(r, g, b)
	return mgl64.Vec3{y - 128, cr - 128, cb - 128}
}

type rgbSpace struct{}

func (rgbSpace) Name() string { return "rgb" }

func (rgbSpace) Point(r, g, b uint8) mgl64.Vec3 {
	return mgl64.Vec3{float64(r) - 128, float64(g) - 128, float64(b) - 128}
}

// hsvSpace is the HSV cone: hue is the angle about Z, saturation the radius
// and value the height.
type hsvSpace struct{}

func (hsvSpace) Name() string { return "hsv" }

func (hsvSpace) Point(r, g, b uint8) mgl64.Vec3 {
	h, s, v := toColorful(r, g, b).Hsv()
	rad := mgl64.DegToRad(h)
	radius := s * v * HalfExtent
	return mgl64.Vec3{
		radius * math.Cos(rad),
		radius * math.Sin(rad),
		v*2*HalfExtent - HalfExtent,
	}
}

// labSpace is CIE L*a*b* (D65). a* and b* go on X and Y, lightness on Z.
type labSpace struct{}

func (labSpace) Name() string { return "lab" }

func (labSpace) Point(r, g, b uint8) mgl64.Vec3 {
	l, a, bb := toColorful(r, g, b).Lab()
	// L is [0, 1]; a and b stay within about ±1 for sRGB input.
	return mgl64.Vec3{
		clamp(a * HalfExtent),
		clamp(bb * HalfExtent),
		clamp(l*2*HalfExtent - HalfExtent),
	}
}

func toColorful(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func clamp(v float64) float64 {
	return mgl64.Clamp(v, -HalfExtent, HalfExtent)
}
