package imaging

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// DefaultReflectionStrength is the default fade range of a reflection. On the
// 0 (opaque) to 127 (transparent) scale the first reflected row starts at
// 127-strength and the fade ends fully transparent.
const DefaultReflectionStrength = 120

// maxAlpha7 is the fully transparent value on the 7-bit alpha scale that
// reflection strengths are expressed in.
const maxAlpha7 = 127

// Reflection appends a mirrored, fading copy of the bottom of the image below
// it, separated by gap transparent rows, and switches the format to PNG.
//
// Row y of the reflection (0 nearest the image) mirrors source row
// H-1-y and gets a constant alpha of (127-strength) + strength*y/height on
// the 7-bit scale, added to the source pixel's own transparency.
func (h *Handle) Reflection(height, gap, strength int) *Handle {
	gap = max(0, gap)
	strength = min(maxAlpha7, max(0, strength))
	h.apply("reflection", func(src image.Image) (image.Image, error) {
		if height < 1 || height > MaxDimension || gap > MaxDimension {
			return nil, fmt.Errorf("%w: reflection height %d, gap %d", ErrInvalidArgument, height, gap)
		}
		b := src.Bounds()
		w, ht := b.Dx(), b.Dy()
		if err := checkSize(w, ht+gap+height); err != nil {
			return nil, err
		}

		canvas := imaging.New(w, ht+gap+height, color.NRGBA{255, 255, 255, 0})
		canvas = imaging.Paste(canvas, src, image.Pt(0, 0))

		strip := imaging.FlipV(imaging.Crop(src, image.Rect(b.Min.X, b.Max.Y-height, b.Max.X, b.Max.Y)))
		rows := strip.Bounds().Dy()
		for y := 0; y < rows; y++ {
			t := float64(maxAlpha7-strength) + float64(strength)*float64(y)/float64(height)
			line := strip.Pix[y*strip.Stride : y*strip.Stride+w*4]
			for i := 3; i < len(line); i += 4 {
				line[i] = fadeAlpha(line[i], t)
			}
		}
		return imaging.Paste(canvas, strip, image.Pt(0, ht+gap)), nil
	})
	if h.err == nil {
		h.format = PNG
	}
	return h
}

// fadeAlpha adds t to the 7-bit transparency of an 8-bit alpha value.
func fadeAlpha(a uint8, t float64) uint8 {
	a7 := float64(255-a) * maxAlpha7 / 255
	a7 = math.Min(maxAlpha7, a7+t)
	return uint8(math.Round((maxAlpha7 - a7) * 255 / maxAlpha7))
}
