package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"io/fs"
	"os"

	"github.com/disintegration/imaging"
)

type state int

const (
	stateEmpty state = iota
	stateLoaded
	stateReleased
)

// Handle owns one decoded image and applies transforms to it in place.
//
// Transforms return the same *Handle so calls can be chained:
//
//	h := imaging.Open("/photos/cat.png").
//	    ResizeToWidth(800, false).
//	    Crop(600, 400, imaging.Token("center"), imaging.Token("center")).
//	    Reflection(60, 4, imaging.DefaultReflectionStrength)
//	if err := h.Err(); err != nil {
//	    return err
//	}
//	res, err := h.Save("", imaging.SaveOptions{})
//
// # Errors
//
// The first failing operation records its error and every later transform
// becomes a no-op; Err reports it. A failing transform never replaces the
// image or changes the format, so the handle still holds the last good
// result. ClearErr drops the recorded error.
//
// # Lifecycle
//
// A handle starts empty, becomes loaded after a successful Load and ends
// released after Release. Operations on an empty handle fail with
// ErrNotLoaded; on a released handle with ErrUseAfterRelease.
//
// A Handle is not safe for concurrent use.
type Handle struct {
	img        image.Image
	format     Format
	sourcePath string
	state      state
	err        error
	opts       options
}

// New creates an empty handle.
func New(opts ...Option) *Handle {
	h := &Handle{opts: defaultOptions()}
	for _, opt := range opts {
		opt(&h.opts)
	}
	return h
}

// Open creates a handle and loads path into it.
func Open(path string, opts ...Option) *Handle {
	return New(opts...).Load(path)
}

// Load decodes the image at path into the handle, replacing any image it
// already holds.
//
// The format is detected from the file content, not its extension. Load fails
// with ErrNotFound when the path does not exist and with ErrUnsupportedFormat
// when the content is not a JPEG, GIF or PNG image.
func (h *Handle) Load(path string) *Handle {
	if h.err != nil {
		return h
	}
	if h.state == stateReleased {
		return h.fail("load", ErrUseAfterRelease)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return h.fail("load", fmt.Errorf("%w: %s", ErrNotFound, path))
		}
		return h.fail("load", fmt.Errorf("failed to open image: %w", err))
	}

	_, name, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return h.fail("load", fmt.Errorf("%w: %s: %v", ErrUnsupportedFormat, path, err))
	}
	format, ok := formatFromDecoder(name)
	if !ok {
		return h.fail("load", fmt.Errorf("%w: %s is %s", ErrUnsupportedFormat, path, name))
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(h.opts.autoOrient))
	if err != nil {
		return h.fail("load", fmt.Errorf("%w: failed to decode %s: %v", ErrUnsupportedFormat, path, err))
	}

	h.img = img
	h.format = format
	h.sourcePath = path
	h.state = stateLoaded
	return h
}

// Release drops the image. The handle cannot be used afterwards.
func (h *Handle) Release() *Handle {
	switch h.state {
	case stateEmpty:
		return h.fail("release", ErrNotLoaded)
	case stateReleased:
		return h.fail("release", ErrUseAfterRelease)
	}
	h.img = nil
	h.state = stateReleased
	return h
}

// Err returns the first error recorded on the handle.
func (h *Handle) Err() error {
	return h.err
}

// ClearErr forgets the recorded error. The image is the one that was current
// before the failing call.
func (h *Handle) ClearErr() {
	h.err = nil
}

// Format returns the current image format.
func (h *Handle) Format() Format {
	return h.format
}

// SourcePath returns the path the image was loaded from.
func (h *Handle) SourcePath() string {
	return h.sourcePath
}

// Image returns the current bitmap. The handle keeps ownership of it.
func (h *Handle) Image() (image.Image, error) {
	if err := h.ready(); err != nil {
		return nil, err
	}
	return h.img, nil
}

// Dimensions returns the width and height of the current image.
func (h *Handle) Dimensions() (width, height int, err error) {
	if err := h.ready(); err != nil {
		return 0, 0, err
	}
	b := h.img.Bounds()
	return b.Dx(), b.Dy(), nil
}

// Info describes the image currently held by a handle.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "jpeg", "gif" or "png". It may differ from the format of the
	// source file after Opacity or Reflection.
	Format string `json:"format"`

	// HasAlpha is true unless every pixel is fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// SourcePath is the path the image was loaded from.
	SourcePath string `json:"source_path"`

	// Filter is the resampling filter used by resize operations.
	Filter string `json:"filter"`
}

// Info returns metadata about the current image.
func (h *Handle) Info() (*Info, error) {
	w, ht, err := h.Dimensions()
	if err != nil {
		return nil, err
	}

	hasAlpha := true
	if o, ok := h.img.(interface{ Opaque() bool }); ok {
		hasAlpha = !o.Opaque()
	}

	return &Info{
		Width:      w,
		Height:     ht,
		Format:     h.format.String(),
		HasAlpha:   hasAlpha,
		SourcePath: h.sourcePath,
		Filter:     h.opts.filterName,
	}, nil
}

// ready reports why the handle cannot be operated on, if it cannot.
func (h *Handle) ready() error {
	if h.err != nil {
		return h.err
	}
	switch h.state {
	case stateEmpty:
		return ErrNotLoaded
	case stateReleased:
		return ErrUseAfterRelease
	}
	return nil
}

// apply runs a transform and swaps in its result. The image is replaced only
// when fn succeeds.
func (h *Handle) apply(op string, fn func(src image.Image) (image.Image, error)) *Handle {
	if err := h.ready(); err != nil {
		if h.err != nil {
			return h
		}
		return h.fail(op, err)
	}
	dst, err := fn(h.img)
	if err != nil {
		return h.fail(op, err)
	}
	h.img = dst
	return h
}

func (h *Handle) fail(op string, err error) *Handle {
	if h.err == nil {
		h.err = fmt.Errorf("%s: %w", op, err)
	}
	return h
}
