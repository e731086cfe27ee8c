// Package imagecloud turns the pixels of an image into a point cloud.
package imagecloud

import (
	"image"
	"image/color"
	_ "image/gif"  // register gif
	_ "image/jpeg" // register jpeg
	_ "image/png"  // register png

	"github.com/disintegration/imaging"
	_ "github.com/lmittmann/ppm" // register ppm
	"github.com/pkg/errors"
	_ "github.com/xfmoulet/qoi" // register qoi
	_ "golang.org/x/image/bmp"  // register bmp
	_ "golang.org/x/image/tiff" // register tiff
	_ "golang.org/x/image/webp" // register webp

	"cloudview/internal/bitmap"
	"cloudview/internal/colorspace"
	"cloudview/internal/graph3d"
)

// Load decodes the image at path, honouring EXIF orientation, and shrinks it
// to fit within maxDim×maxDim. maxDim <= 0 keeps the original size.
func Load(path string, maxDim int) (image.Image, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, errors.Wrapf(err, "loading image %q", path)
	}
	b := img.Bounds()
	if maxDim > 0 && (b.Dx() > maxDim || b.Dy() > maxDim) {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Box)
	}
	return img, nil
}

// Build adds one point per pixel of img, in row-major order, placed by
// space. If colored is set the cloud draws each point in its pixel's colour.
// Two extra points mark opposite corners of the colour cube so the bounding
// box always spans the whole space.
func Build(img image.Image, space colorspace.Space, colored bool) *graph3d.Cloud {
	b := img.Bounds()
	cloud := graph3d.NewWithPrealloc(b.Dx()*b.Dy()+2, colored)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			p := space.Point(c.R, c.G, c.B)
			cloud.AddColoredPoint(p.X(), p.Y(), p.Z(), bitmap.RGB(c.R, c.G, c.B))
		}
	}
	const h = colorspace.HalfExtent
	cloud.AddColoredPoint(-h, -h, -h, bitmap.White)
	cloud.AddColoredPoint(h, h, h, bitmap.White)
	return cloud
}
