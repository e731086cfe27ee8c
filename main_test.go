package main

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"go.viam.com/test"

	"cloudview/internal/bitmap"
)

func solidImage(t *testing.T, c color.NRGBA) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	path := filepath.Join(t.TempDir(), "small.png")
	test.That(t, imaging.Save(img, path), test.ShouldBeNil)
	return path
}

func TestRenderCommand(t *testing.T) {
	in := solidImage(t, color.NRGBA{R: 255, A: 255})
	out := filepath.Join(t.TempDir(), "frame.png")

	var buf bytes.Buffer
	err := newApp(&buf).Run([]string{
		"cloudview", "render",
		"-i", in, "-o", out,
		"--width", "64", "--height", "64",
		"--zoom", "50",
		"--log-level", "error",
	})
	test.That(t, err, test.ShouldBeNil)

	img, err := imaging.Open(out)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, img.Bounds().Dx(), test.ShouldEqual, 64)
	test.That(t, img.Bounds().Dy(), test.ShouldEqual, 64)

	test.That(t, bitmap.FromColor(img.At(0, 0)), test.ShouldEqual, bitmap.White)
	// every pixel of the image is the same red, so they share one point
	test.That(t, bitmap.FromColor(img.At(27, 35)), test.ShouldEqual, bitmap.RGB(255, 0, 0))
}

func TestRenderCommandErrors(t *testing.T) {
	var buf bytes.Buffer
	err := newApp(&buf).Run([]string{"cloudview", "render", "-i", filepath.Join(t.TempDir(), "missing.png"), "--log-level", "error"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "missing.png")

	in := solidImage(t, color.NRGBA{G: 255, A: 255})
	err = newApp(&buf).Run([]string{"cloudview", "render", "-i", in, "--space", "cmyk"})
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cmyk")
}

func TestSpacesCommand(t *testing.T) {
	var buf bytes.Buffer
	test.That(t, newApp(&buf).Run([]string{"cloudview", "spaces"}), test.ShouldBeNil)
	test.That(t, strings.Fields(buf.String()), test.ShouldResemble, []string{"hsv", "lab", "rgb", "ycbcr"})
}
