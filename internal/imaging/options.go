package imaging

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// DefaultJPEGQuality is the JPEG quality used by Save when none is given.
const DefaultJPEGQuality = 90

type options struct {
	filter     imaging.ResampleFilter
	filterName string
	quality    int
	autoOrient bool
}

func defaultOptions() options {
	return options{
		filter:     imaging.Box,
		filterName: "box",
		quality:    DefaultJPEGQuality,
	}
}

// Option configures a Handle.
type Option func(*options)

// WithFilter sets the resampling filter used by the resize family.
// The default is imaging.Box, an area-weighted average.
func WithFilter(name string) Option {
	return func(o *options) {
		if f, err := ParseFilter(name); err == nil {
			o.filter = f
			o.filterName = strings.ToLower(name)
		}
	}
}

// WithJPEGQuality sets the default JPEG quality (1-100) used by Save and Output.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		if q >= 1 && q <= 100 {
			o.quality = q
		}
	}
}

// WithAutoOrientation makes Load apply the EXIF orientation tag.
func WithAutoOrientation(enabled bool) Option {
	return func(o *options) {
		o.autoOrient = enabled
	}
}

// ParseFilter maps a filter name to an imaging resample filter.
//
// Recognized names: "box", "linear", "catmullrom", "lanczos", "nearest".
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	switch strings.ToLower(name) {
	case "box":
		return imaging.Box, nil
	case "linear":
		return imaging.Linear, nil
	case "catmullrom":
		return imaging.CatmullRom, nil
	case "lanczos":
		return imaging.Lanczos, nil
	case "nearest":
		return imaging.NearestNeighbor, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("%w: unknown resample filter %q", ErrInvalidArgument, name)
}
