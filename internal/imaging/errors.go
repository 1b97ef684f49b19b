package imaging

import (
	"errors"
	"fmt"
)

// Errors reported by Handle operations. Use errors.Is to match them; the
// returned errors usually wrap one of these with the failing operation's name.
var (
	// ErrNotFound is returned by Load when the path does not exist.
	ErrNotFound = errors.New("image not found")

	// ErrUnsupportedFormat is returned when the input is not a decodable
	// JPEG, GIF or PNG, or when an output format is not one of those three.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrNotLoaded is returned by any operation on a handle with no image.
	ErrNotLoaded = errors.New("no image loaded")

	// ErrUseAfterRelease is returned by operations on a released handle.
	// It wraps ErrNotLoaded.
	ErrUseAfterRelease = fmt.Errorf("%w: handle was released", ErrNotLoaded)

	// ErrInvalidArgument is returned for out-of-range dimensions and similar.
	ErrInvalidArgument = errors.New("invalid argument")
)
