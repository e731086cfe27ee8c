package bitmap

import (
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// TextRenderer draws single-line strings with a fixed face.
type TextRenderer struct {
	face font.Face
}

// NewTextRenderer parses one of the bundled Go fonts at the given point size.
// name selects "mono" or "regular"; anything else falls back to regular.
func NewTextRenderer(name string, size float64) (*TextRenderer, error) {
	if size <= 0 {
		return nil, errors.Errorf("font size must be positive, got %v", size)
	}
	ttf := goregular.TTF
	if name == "mono" {
		ttf = gomono.TTF
	}
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing font %q", name)
	}
	return &TextRenderer{face: truetype.NewFace(f, &truetype.Options{Size: size})}, nil
}

// DrawTextSimple draws text with its top-left corner at (x, y).
func (t *TextRenderer) DrawTextSimple(c Color, bmp *Bitmap, x, y int, text string) {
	t.draw(c, bmp, x, y, 0, text)
}

// DrawTextCentre draws text horizontally centred on x, top edge at y.
func (t *TextRenderer) DrawTextCentre(c Color, bmp *Bitmap, x, y int, text string) {
	t.draw(c, bmp, x, y, 0.5, text)
}

// Width reports the advance of text in pixels.
func (t *TextRenderer) Width(text string) int {
	return font.MeasureString(t.face, text).Ceil()
}

func (t *TextRenderer) draw(c Color, bmp *Bitmap, x, y int, ax float64, text string) {
	if text == "" || bmp.Width() == 0 || bmp.Height() == 0 {
		return
	}
	dc := gg.NewContextForRGBA(bmp.Image())
	dc.SetFontFace(t.face)
	dc.SetColor(c)
	dc.DrawStringAnchored(text, float64(x), float64(y), ax, 1)
}
