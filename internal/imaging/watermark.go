package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// DefaultWatermarkOpacity is the mark opacity used by DefaultWatermarkOptions.
const DefaultWatermarkOpacity = 70

// WatermarkOptions controls where and how a watermark is drawn.
type WatermarkOptions struct {
	// X is the horizontal position. Tokens: "left", "right", "center".
	// Pixels(n) places the mark n pixels in from the right edge.
	X Offset

	// Y is the vertical position. Tokens: "left" (top), "right" (bottom),
	// "center". Pixels(n) places the mark n pixels up from the bottom edge.
	Y Offset

	// Opacity of the mark in percent (0-100).
	Opacity int

	// Width and Height resize the mark. With both set the mark is resized
	// to exactly that size; with one set it is scaled down to it keeping
	// its aspect ratio; zero leaves it as is.
	Width  int
	Height int
}

// DefaultWatermarkOptions places the mark in the bottom-right corner at 70%
// opacity.
func DefaultWatermarkOptions() WatermarkOptions {
	return WatermarkOptions{
		X:       Pixels(0),
		Y:       Pixels(0),
		Opacity: DefaultWatermarkOpacity,
	}
}

// Watermark draws the image at path over the current image.
//
// The mark is loaded into a temporary handle, resized and faded according to
// opt, composited, and released. The base image keeps its format.
//
// Token offsets and pixel offsets are measured differently: tokens and
// numeric strings count from the top-left, while Pixels counts inward from
// the right and bottom edges. The Y axis uses "left" and "right" for top and
// bottom.
func (h *Handle) Watermark(path string, opt WatermarkOptions) *Handle {
	if err := h.ready(); err != nil {
		return h.fail("watermark", err)
	}

	mark := Open(path, h.optionList()...)
	defer func() {
		if mark.state == stateLoaded {
			mark.Release()
		}
	}()

	switch {
	case opt.Width > 0 && opt.Height > 0:
		mark.Resize(opt.Width, opt.Height)
	case opt.Width > 0:
		mark.ResizeToWidth(opt.Width, false)
	case opt.Height > 0:
		mark.ResizeToHeight(opt.Height, false)
	}
	mark.Opacity(opt.Opacity)

	markImg, err := mark.Image()
	if err != nil {
		return h.fail("watermark", fmt.Errorf("mark %s: %w", path, err))
	}

	return h.apply("watermark", func(src image.Image) (image.Image, error) {
		pos := watermarkOrigin(src.Bounds().Size(), markImg.Bounds().Size(), opt.X, opt.Y)
		return imaging.Overlay(src, markImg, pos, 1.0), nil
	})
}

// watermarkOrigin resolves watermark offsets for a base of size base and a
// mark of size mark.
func watermarkOrigin(base, mark image.Point, x, y Offset) image.Point {
	xs := map[string]int{
		"left":   0,
		"right":  base.X - mark.X,
		"center": (base.X - mark.X) / 2,
	}
	ys := map[string]int{
		"left":   0,
		"right":  base.Y - mark.Y,
		"center": (base.Y - mark.Y) / 2,
	}
	fromRight := func(n int) int { return base.X - mark.X - n }
	fromBottom := func(n int) int { return base.Y - mark.Y - n }
	return image.Pt(x.resolve(xs, fromRight), y.resolve(ys, fromBottom))
}

// optionList rebuilds the options the handle was created with.
func (h *Handle) optionList() []Option {
	o := h.opts
	return []Option{func(dst *options) { *dst = o }}
}
