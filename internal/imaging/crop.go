package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

var (
	transparent = color.NRGBA{0, 0, 0, 0}
	blackOpaque = color.NRGBA{0, 0, 0, 255}
)

// Crop replaces the image with a width x height region copied 1:1 from it.
//
// x accepts the tokens "left", "right" and "center"; y accepts "top",
// "bottom" and "center". Pixel offsets and other strings are measured from
// the top-left corner. Parts of the region that fall outside the image are
// left transparent for GIF and PNG, black for JPEG.
func (h *Handle) Crop(width, height int, x, y Offset) *Handle {
	return h.apply("crop", func(src image.Image) (image.Image, error) {
		if err := checkSize(width, height); err != nil {
			return nil, err
		}
		pos := cropOrigin(src.Bounds().Size(), width, height, x, y)
		canvas := imaging.New(width, height, h.background())
		return imaging.Paste(canvas, src, pos.Mul(-1)), nil
	})
}

// cropOrigin resolves crop offsets for an image of the given size.
func cropOrigin(size image.Point, width, height int, x, y Offset) image.Point {
	xs := map[string]int{
		"left":   0,
		"right":  size.X - width,
		"center": (size.X - width) / 2,
	}
	ys := map[string]int{
		"top":    0,
		"bottom": size.Y - height,
		"center": (size.Y - height) / 2,
	}
	return image.Pt(x.resolve(xs, identity), y.resolve(ys, identity))
}

// background is the fill for canvas areas not covered by the source.
func (h *Handle) background() color.Color {
	if h.format.hasAlpha() {
		return transparent
	}
	return blackOpaque
}
