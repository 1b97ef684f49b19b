package imaging

import (
	"fmt"
	"os"

	"github.com/rwcarlsen/goexif/exif"
)

// ExifInfo holds the EXIF fields reported alongside a loaded image.
type ExifInfo struct {
	// Orientation is the EXIF orientation tag (1-8), 0 when absent.
	Orientation int `json:"orientation,omitempty"`

	// Make and Model identify the camera, empty when absent.
	Make  string `json:"make,omitempty"`
	Model string `json:"model,omitempty"`
}

// ReadExif reads EXIF metadata from the file at path. It returns nil and no
// error when the file carries no EXIF block, which is the case for GIF, PNG
// and most generated JPEGs.
func ReadExif(path string) (*ExifInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	x, err := exif.Decode(f)
	if err != nil {
		return nil, nil
	}

	info := &ExifInfo{}
	if tag, err := x.Get(exif.Orientation); err == nil {
		if v, err := tag.Int(0); err == nil {
			info.Orientation = v
		}
	}
	if tag, err := x.Get(exif.Make); err == nil {
		info.Make, _ = tag.StringVal()
	}
	if tag, err := x.Get(exif.Model); err == nil {
		info.Model, _ = tag.StringVal()
	}
	return info, nil
}
