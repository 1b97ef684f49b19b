package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/blend"
	"github.com/anthonynsimon/bild/fcolor"
	"github.com/disintegration/imaging"
)

// Opacity fades the image to percent (0-100) of its current opacity and
// switches the format to PNG.
//
// Pixels whose colour is pure black, whatever their alpha, end up fully
// transparent. Each call works on the current
// image: two calls at 50 leave a quarter of the original opacity.
func (h *Handle) Opacity(percent int) *Handle {
	percent = min(100, max(0, percent))
	h.apply("opacity", func(src image.Image) (image.Image, error) {
		b := src.Bounds()
		canvas := imaging.New(b.Dx(), b.Dy(), transparent)
		p := float64(percent) / 100

		fg := imaging.Clone(src)
		keyBlack(fg)

		// blend works on premultiplied colour, so scaling every channel
		// scales the alpha and keeps the colour.
		merged := blend.Blend(canvas, fg, func(_, c fcolor.RGBAF64) fcolor.RGBAF64 {
			return fcolor.RGBAF64{R: c.R * p, G: c.G * p, B: c.B * p, A: c.A * p}
		})
		return imaging.Clone(merged), nil
	})
	if h.err == nil {
		h.format = PNG
	}
	return h
}

// keyBlack makes pixels whose unpremultiplied colour is pure black fully
// transparent.
func keyBlack(img *image.NRGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] == 0 && img.Pix[i+1] == 0 && img.Pix[i+2] == 0 {
			img.Pix[i+3] = 0
		}
	}
}
