// Package imaging provides an image handle for loading, transforming and
// saving JPEG, GIF and PNG files.
//
// A Handle owns one decoded image. Its transforms (Resize, Crop, Rotate,
// Opacity, Watermark, Reflection and friends) replace that image in place and
// return the handle, so calls chain. Decoding, encoding, resampling and
// compositing are done by github.com/disintegration/imaging; the alpha merge
// behind Opacity uses github.com/anthonynsimon/bild.
//
// # Coordinate System
//
// Pixel coordinates are 0-based with (0,0) at the top-left corner, X
// increasing rightward and Y increasing downward.
//
// # Offsets
//
// Crop and Watermark take Offset values, which are either pixel counts
// (Pixels) or strings (Token) such as "center". Each operation resolves them
// with its own table; see their documentation.
//
// # Formats
//
// The format of a loaded image is detected from its content. Opacity and
// Reflection switch the handle to PNG because their output needs alpha.
// Save and Output can write any of the three formats.
//
// # Error Handling
//
// Errors wrap one of ErrNotFound, ErrUnsupportedFormat, ErrNotLoaded,
// ErrUseAfterRelease or ErrInvalidArgument; match them with errors.Is.
// Transforms record the first error on the handle instead of returning it;
// check Handle.Err after a chain.
//
// # Thread Safety
//
// Handles are not safe for concurrent use. Registry, which stores handles by
// id, is.
package imaging
