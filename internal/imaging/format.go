package imaging

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// Format identifies one of the supported raster formats.
type Format int

// Supported formats. The zero value means "not set" and is resolved to the
// handle's current format wherever a Format is optional.
const (
	FormatUnknown Format = iota
	JPEG
	GIF
	PNG
)

// ParseFormat converts a format name ("jpeg", "jpg", "gif", "png") into a
// Format. Matching is case-insensitive and a leading dot is ignored.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "jpeg", "jpg":
		return JPEG, nil
	case "gif":
		return GIF, nil
	case "png":
		return PNG, nil
	}
	return FormatUnknown, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// formatFromDecoder maps the name reported by image.DecodeConfig.
func formatFromDecoder(name string) (Format, bool) {
	switch name {
	case "jpeg":
		return JPEG, true
	case "gif":
		return GIF, true
	case "png":
		return PNG, true
	}
	return FormatUnknown, false
}

// Valid reports whether f is one of JPEG, GIF or PNG.
func (f Format) Valid() bool {
	return f == JPEG || f == GIF || f == PNG
}

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case GIF:
		return "gif"
	case PNG:
		return "png"
	}
	return "unknown"
}

// MimeType returns the Content-Type value for the format.
func (f Format) MimeType() string {
	switch f {
	case JPEG:
		return "image/jpeg"
	case GIF:
		return "image/gif"
	case PNG:
		return "image/png"
	}
	return "application/octet-stream"
}

// Extension returns the canonical file extension, including the dot.
func (f Format) Extension() string {
	switch f {
	case JPEG:
		return ".jpeg"
	case GIF:
		return ".gif"
	case PNG:
		return ".png"
	}
	return ""
}

// hasAlpha reports whether the format can carry transparency.
func (f Format) hasAlpha() bool {
	return f == GIF || f == PNG
}

func (f Format) codec() (imaging.Format, error) {
	switch f {
	case JPEG:
		return imaging.JPEG, nil
	case GIF:
		return imaging.GIF, nil
	case PNG:
		return imaging.PNG, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}
