package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/image-edit-mcp/internal/imaging"
	"github.com/ironsheep/image-edit-mcp/internal/logger"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_load", "image_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

var errMissingID = errors.New("id is required")

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		logger.Info.Printf("%s failed: %v", params.Name, err)
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Looks up the handle by id
//  4. Calls the handle operation
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	switch name {
	// Handle Lifecycle
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)
	case "image_release":
		return s.handleImageRelease(args)

	// Resize Operations
	case "image_resize":
		return s.handleImageResize(args)
	case "image_resize_to_width":
		return s.handleImageResizeToWidth(args)
	case "image_resize_to_height":
		return s.handleImageResizeToHeight(args)
	case "image_resize_to_cover":
		return s.handleImageResizeToCover(args)
	case "image_scale":
		return s.handleImageScale(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_rotate":
		return s.handleImageRotate(args)

	// Compositing Operations
	case "image_opacity":
		return s.handleImageOpacity(args)
	case "image_watermark":
		return s.handleImageWatermark(args)
	case "image_reflection":
		return s.handleImageReflection(args)

	// Inspection
	case "image_sample_color":
		return s.handleImageSampleColor(args)

	// Output
	case "image_save":
		return s.handleImageSave(args)
	case "image_output":
		return s.handleImageOutput(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// handleResult is returned by every tool that changes a handle.
type handleResult struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Format string `json:"format"`
}

// lookup returns the handle named by id.
func (s *Server) lookup(id string) (*imaging.Handle, error) {
	if id == "" {
		return nil, errMissingID
	}
	return s.handles.Get(id)
}

// transform runs fn on the handle named by id. When fn leaves an error on the
// handle it is reported and cleared, so the handle stays usable with the
// image it held before the call.
func (s *Server) transform(id string, fn func(h *imaging.Handle) *imaging.Handle) (interface{}, error) {
	h, err := s.lookup(id)
	if err != nil {
		return nil, err
	}
	if err := fn(h).Err(); err != nil {
		h.ClearErr()
		return nil, err
	}
	return describe(id, h)
}

func describe(id string, h *imaging.Handle) (*handleResult, error) {
	w, ht, err := h.Dimensions()
	if err != nil {
		return nil, err
	}
	return &handleResult{ID: id, Width: w, Height: ht, Format: h.Format().String()}, nil
}

// === Handle Lifecycle Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

type imageLoadResult struct {
	ID string `json:"id"`
	*imaging.Info
	Exif *imaging.ExifInfo `json:"exif,omitempty"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	h := imaging.Open(a.Path, s.opts...)
	if err := h.Err(); err != nil {
		return nil, err
	}
	info, err := h.Info()
	if err != nil {
		return nil, err
	}

	exif, err := imaging.ReadExif(a.Path)
	if err != nil {
		logger.Warn.Printf("Failed to read EXIF from %s: %v", a.Path, err)
	}

	id := s.handles.Add(h)
	logger.Debug.Printf("Loaded %s as %s (%dx%d %s)", a.Path, id, info.Width, info.Height, info.Format)
	return &imageLoadResult{ID: id, Info: info, Exif: exif}, nil
}

type imageIDArgs struct {
	ID string `json:"id"`
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	h, err := s.lookup(a.ID)
	if err != nil {
		return nil, err
	}
	return describe(a.ID, h)
}

func (s *Server) handleImageRelease(args json.RawMessage) (interface{}, error) {
	var a imageIDArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.ID == "" {
		return nil, errMissingID
	}
	if err := s.handles.Release(a.ID); err != nil {
		return nil, err
	}
	logger.Debug.Printf("Released %s", a.ID)
	return map[string]interface{}{
		"id":       a.ID,
		"released": true,
	}, nil
}

// === Resize Operation Handlers ===

type imageSizeArgs struct {
	ID           string `json:"id"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	AllowUpscale bool   `json:"allow_upscale"`
}

func (s *Server) handleImageResize(args json.RawMessage) (interface{}, error) {
	var a imageSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.Resize(a.Width, a.Height)
	})
}

func (s *Server) handleImageResizeToWidth(args json.RawMessage) (interface{}, error) {
	var a imageSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width < 1 {
		return nil, fmt.Errorf("%w: width %d", imaging.ErrInvalidArgument, a.Width)
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.ResizeToWidth(a.Width, a.AllowUpscale)
	})
}

func (s *Server) handleImageResizeToHeight(args json.RawMessage) (interface{}, error) {
	var a imageSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Height < 1 {
		return nil, fmt.Errorf("%w: height %d", imaging.ErrInvalidArgument, a.Height)
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.ResizeToHeight(a.Height, a.AllowUpscale)
	})
}

func (s *Server) handleImageResizeToCover(args json.RawMessage) (interface{}, error) {
	var a imageSizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Width < 1 || a.Height < 1 {
		return nil, fmt.Errorf("%w: size %dx%d", imaging.ErrInvalidArgument, a.Width, a.Height)
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.ResizeToCover(a.Width, a.Height)
	})
}

type imageScaleArgs struct {
	ID      string  `json:"id"`
	Percent float64 `json:"percent"`
}

func (s *Server) handleImageScale(args json.RawMessage) (interface{}, error) {
	var a imageScaleArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.Scale(a.Percent)
	})
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	ID      string         `json:"id"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
	XOffset imaging.Offset `json:"x_offset"`
	YOffset imaging.Offset `json:"y_offset"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.Crop(a.Width, a.Height, a.XOffset, a.YOffset)
	})
}

type imageRotateArgs struct {
	ID         string  `json:"id"`
	Angle      float64 `json:"angle"`
	Background string  `json:"background"`
}

func (s *Server) handleImageRotate(args json.RawMessage) (interface{}, error) {
	var a imageRotateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Background == "" {
		a.Background = "#000000"
	}
	bg, err := imaging.ParseColor(a.Background)
	if err != nil {
		return nil, err
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.Rotate(a.Angle, bg)
	})
}

// === Compositing Operation Handlers ===

type imageOpacityArgs struct {
	ID      string `json:"id"`
	Percent int    `json:"percent"`
}

func (s *Server) handleImageOpacity(args json.RawMessage) (interface{}, error) {
	var a imageOpacityArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.Opacity(a.Percent)
	})
}

type imageWatermarkArgs struct {
	ID      string         `json:"id"`
	Path    string         `json:"path"`
	XOffset imaging.Offset `json:"x_offset"`
	YOffset imaging.Offset `json:"y_offset"`
	Opacity *int           `json:"opacity"`
	Width   int            `json:"width"`
	Height  int            `json:"height"`
}

func (s *Server) handleImageWatermark(args json.RawMessage) (interface{}, error) {
	var a imageWatermarkArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errors.New("path is required")
	}

	opt := imaging.DefaultWatermarkOptions()
	opt.X = a.XOffset
	opt.Y = a.YOffset
	if a.Opacity != nil {
		opt.Opacity = *a.Opacity
	}
	opt.Width = a.Width
	opt.Height = a.Height

	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.Watermark(a.Path, opt)
	})
}

type imageReflectionArgs struct {
	ID       string `json:"id"`
	Height   int    `json:"height"`
	Gap      int    `json:"gap"`
	Strength *int   `json:"strength"`
}

func (s *Server) handleImageReflection(args json.RawMessage) (interface{}, error) {
	var a imageReflectionArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	strength := imaging.DefaultReflectionStrength
	if a.Strength != nil {
		strength = *a.Strength
	}
	return s.transform(a.ID, func(h *imaging.Handle) *imaging.Handle {
		return h.Reflection(a.Height, a.Gap, strength)
	})
}

// === Inspection Handlers ===

type imageSampleColorArgs struct {
	ID string `json:"id"`
	X  int    `json:"x"`
	Y  int    `json:"y"`
}

func (s *Server) handleImageSampleColor(args json.RawMessage) (interface{}, error) {
	var a imageSampleColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	h, err := s.lookup(a.ID)
	if err != nil {
		return nil, err
	}
	return h.ColorAt(a.X, a.Y)
}

// === Output Handlers ===

type imageSaveArgs struct {
	ID      string `json:"id"`
	Path    string `json:"path"`
	Format  string `json:"format"`
	Quality int    `json:"quality"`
}

type imageSaveResult struct {
	ID        string `json:"id"`
	Path      string `json:"path"`
	Generated bool   `json:"generated"`
	Format    string `json:"format"`
}

// parseFormatArg converts an optional format argument. An empty name keeps
// the handle's current format.
func parseFormatArg(name string) (imaging.Format, error) {
	if name == "" {
		return imaging.FormatUnknown, nil
	}
	return imaging.ParseFormat(name)
}

func (s *Server) handleImageSave(args json.RawMessage) (interface{}, error) {
	var a imageSaveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	format, err := parseFormatArg(a.Format)
	if err != nil {
		return nil, err
	}
	if a.Quality < 0 || a.Quality > 100 {
		return nil, fmt.Errorf("%w: quality %d", imaging.ErrInvalidArgument, a.Quality)
	}
	h, err := s.lookup(a.ID)
	if err != nil {
		return nil, err
	}

	res, err := h.Save(a.Path, imaging.SaveOptions{Format: format, Quality: a.Quality})
	if err != nil {
		return nil, err
	}
	if format == imaging.FormatUnknown {
		format = h.Format()
	}
	logger.Debug.Printf("Saved %s to %s", a.ID, res.Path)
	return &imageSaveResult{
		ID:        a.ID,
		Path:      res.Path,
		Generated: res.Generated,
		Format:    format.String(),
	}, nil
}

type imageOutputArgs struct {
	ID     string `json:"id"`
	Format string `json:"format"`
}

type imageOutputResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

func (s *Server) handleImageOutput(args json.RawMessage) (interface{}, error) {
	var a imageOutputArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	format, err := parseFormatArg(a.Format)
	if err != nil {
		return nil, err
	}
	h, err := s.lookup(a.ID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := h.Output(&buf, format, false).Err(); err != nil {
		h.ClearErr()
		return nil, err
	}
	if format == imaging.FormatUnknown {
		format = h.Format()
	}
	w, ht, err := h.Dimensions()
	if err != nil {
		return nil, err
	}
	return &imageOutputResult{
		Width:       w,
		Height:      ht,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    format.MimeType(),
	}, nil
}
