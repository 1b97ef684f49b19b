package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Rotate turns the image counter-clockwise by angle degrees. The image grows
// to the rotated bounding box and the uncovered corners are filled with
// background; nil means opaque black.
func (h *Handle) Rotate(angle float64, background color.Color) *Handle {
	if background == nil {
		background = blackOpaque
	}
	return h.apply("rotate", func(src image.Image) (image.Image, error) {
		return imaging.Rotate(src, angle, background), nil
	})
}
