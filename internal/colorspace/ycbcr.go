// Package colorspace maps RGB pixels to points in a cube centred on the
// origin, one axis per channel of the chosen colour space.
package colorspace

// ToYCbCr converts 8-bit RGB to full-range (JFIF) YCbCr. Chroma is offset by
// 128 so every channel lies in [0, 255].
func ToYCbCr(r, g, b uint8) (y, cb, cr float64) {
	fr, fg, fb := float64(r), float64(g), float64(b)
	y = 0.299*fr + 0.587*fg + 0.114*fb
	cb = 128 - 0.168736*fr - 0.331264*fg + 0.5*fb
	cr = 128 + 0.5*fr - 0.418688*fg - 0.081312*fb
	return y, cb, cr
}

// FromYCbCr is the inverse of ToYCbCr. The result is not rounded or clamped.
func FromYCbCr(y, cb, cr float64) (r, g, b float64) {
	cb -= 128
	cr -= 128
	r = y + 1.402*cr
	g = y - 0.344136*cb - 0.714136*cr
	b = y + 1.772*cb
	return r, g, b
}
