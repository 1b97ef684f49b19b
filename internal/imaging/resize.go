package imaging

import (
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"
)

// MaxDimension is the largest width or height a transform may produce.
const MaxDimension = 1 << 16

// maxPixels bounds the area of a transform's output.
const maxPixels = 1 << 28

// checkSize reports an ErrInvalidArgument for output sizes that are empty or
// too large to allocate.
func checkSize(width, height int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%w: size %dx%d", ErrInvalidArgument, width, height)
	}
	if width > MaxDimension || height > MaxDimension || int64(width)*int64(height) > maxPixels {
		return fmt.Errorf("%w: size %dx%d exceeds %d pixels per side or %d in total",
			ErrInvalidArgument, width, height, MaxDimension, maxPixels)
	}
	return nil
}

// Resize resamples the image to exactly width x height using the handle's
// filter. The aspect ratio is not preserved. Transparent regions of GIF and
// PNG images stay transparent.
func (h *Handle) Resize(width, height int) *Handle {
	return h.apply("resize", func(src image.Image) (image.Image, error) {
		if err := checkSize(width, height); err != nil {
			return nil, err
		}
		return imaging.Resize(src, width, height, h.opts.filter), nil
	})
}

// ResizeToWidth scales the image to the given width keeping its aspect ratio.
// Images already narrower than width are left alone unless allowUpscale is set.
func (h *Handle) ResizeToWidth(width int, allowUpscale bool) *Handle {
	w, ht, err := h.Dimensions()
	if err != nil {
		return h.fail("resize to width", err)
	}
	if width > MaxDimension {
		return h.fail("resize to width", fmt.Errorf("%w: width %d", ErrInvalidArgument, width))
	}
	if w > width || allowUpscale {
		height := int(math.Round(float64(ht) * float64(width) / float64(w)))
		return h.Resize(width, height)
	}
	return h
}

// ResizeToHeight scales the image to the given height keeping its aspect
// ratio. Images already shorter than height are left alone unless
// allowUpscale is set.
func (h *Handle) ResizeToHeight(height int, allowUpscale bool) *Handle {
	w, ht, err := h.Dimensions()
	if err != nil {
		return h.fail("resize to height", err)
	}
	if height > MaxDimension {
		return h.fail("resize to height", fmt.Errorf("%w: height %d", ErrInvalidArgument, height))
	}
	if ht > height || allowUpscale {
		width := int(math.Round(float64(w) * float64(height) / float64(ht)))
		return h.Resize(width, height)
	}
	return h
}

// ResizeToCover scales the image, keeping its aspect ratio, so that it covers
// a width x height box: when scaling to width would leave the image taller
// than height it resizes to width, otherwise to height. Like ResizeToWidth and
// ResizeToHeight it never upscales.
func (h *Handle) ResizeToCover(width, height int) *Handle {
	w, ht, err := h.Dimensions()
	if err != nil {
		return h.fail("resize to cover", err)
	}
	if float64(width)/float64(w)*float64(ht) > float64(height) {
		return h.ResizeToWidth(width, false)
	}
	return h.ResizeToHeight(height, false)
}

// Scale resizes both axes to percent of the current size.
func (h *Handle) Scale(percent float64) *Handle {
	w, ht, err := h.Dimensions()
	if err != nil {
		return h.fail("scale", err)
	}
	if percent <= 0 {
		return h.fail("scale", fmt.Errorf("%w: percent %v", ErrInvalidArgument, percent))
	}
	fw, fh := float64(w)*percent/100, float64(ht)*percent/100
	if fw > MaxDimension || fh > MaxDimension {
		return h.fail("scale", fmt.Errorf("%w: percent %v gives %.0fx%.0f", ErrInvalidArgument, percent, fw, fh))
	}
	return h.Resize(max(1, int(fw)), max(1, int(fh)))
}
