package imaging

import (
	"bytes"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/disintegration/imaging"
)

// SaveOptions controls encoding in Save.
type SaveOptions struct {
	// Format to write. FormatUnknown keeps the handle's current format.
	Format Format

	// Quality is the JPEG quality (1-100). Zero uses the handle's default.
	Quality int
}

// SaveResult reports where Save wrote the image.
type SaveResult struct {
	// Handle is the handle that was saved, for further chaining.
	Handle *Handle

	// Path is the file that was written.
	Path string

	// Generated is true when Path was chosen by Save because none was given.
	Generated bool
}

// Save encodes the image to path.
//
// When path is empty a name is generated next to the source file from an
// MD5 of the current time and the source file name, with the extension of
// the output format; the result then has Generated set.
//
// Save does not record its error on the handle.
func (h *Handle) Save(path string, opt SaveOptions) (SaveResult, error) {
	if err := h.ready(); err != nil {
		return SaveResult{}, fmt.Errorf("save: %w", err)
	}
	format := opt.Format
	if format == FormatUnknown {
		format = h.format
	}
	if !format.Valid() {
		return SaveResult{}, fmt.Errorf("save: %w: %s", ErrUnsupportedFormat, format)
	}

	generated := false
	if path == "" {
		path = generatedPath(h.sourcePath, format, time.Now())
		generated = true
	}

	data, err := h.encode(format, opt.Quality)
	if err != nil {
		return SaveResult{}, fmt.Errorf("save: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return SaveResult{}, fmt.Errorf("save: failed to write image: %w", err)
	}

	return SaveResult{Handle: h, Path: path, Generated: generated}, nil
}

// generatedPath names an output file in the source file's directory.
func generatedPath(source string, format Format, now time.Time) string {
	base := filepath.Base(source)
	sum := md5.Sum([]byte(strconv.FormatInt(now.UnixMicro(), 10) + base))
	return filepath.Join(filepath.Dir(source), hex.EncodeToString(sum[:])+format.Extension())
}

// Encode returns the image encoded as format. FormatUnknown keeps the
// current format.
func (h *Handle) Encode(format Format) ([]byte, error) {
	if err := h.ready(); err != nil {
		return nil, err
	}
	if format == FormatUnknown {
		format = h.format
	}
	return h.encode(format, 0)
}

func (h *Handle) encode(format Format, quality int) ([]byte, error) {
	codec, err := format.codec()
	if err != nil {
		return nil, err
	}
	if quality == 0 {
		quality = h.opts.quality
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, h.img, codec, imaging.JPEGQuality(quality)); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", format, err)
	}
	return buf.Bytes(), nil
}

// Output writes the encoded image to w. FormatUnknown keeps the current
// format. When emitHeaders is set and w carries HTTP headers (such as an
// http.ResponseWriter), the Content-Type header is set first.
func (h *Handle) Output(w io.Writer, format Format, emitHeaders bool) *Handle {
	data, err := h.Encode(format)
	if err != nil {
		return h.fail("output", err)
	}
	if format == FormatUnknown {
		format = h.format
	}
	if hw, ok := w.(interface{ Header() http.Header }); ok && emitHeaders {
		hw.Header().Set("Content-Type", format.MimeType())
	}
	if _, err := w.Write(data); err != nil {
		return h.fail("output", fmt.Errorf("failed to write image: %w", err))
	}
	return h
}
