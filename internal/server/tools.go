package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func idProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Handle id returned by image_load",
	}
}

func intProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

func offsetProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        []string{"integer", "string"},
		"description": description,
		"default":     0,
	}
}

func formatProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        []string{"jpeg", "gif", "png"},
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Handle Lifecycle
		{
			Name:        "image_load",
			Description: "Load a JPEG, GIF or PNG file into a new image handle. Returns the handle id used by every other tool, plus dimensions, format and EXIF data when present.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the current width, height and format of an image handle.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "image_release",
			Description: "Release an image handle and free its memory. The id cannot be used afterwards.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
				},
				"required": []string{"id"},
			},
		},

		// Resize Operations
		{
			Name:        "image_resize",
			Description: "Resize the image to exactly width x height. Does not preserve aspect ratio.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":     idProperty(),
					"width":  intProperty("New width in pixels"),
					"height": intProperty("New height in pixels"),
				},
				"required": []string{"id", "width", "height"},
			},
		},
		{
			Name:        "image_resize_to_width",
			Description: "Resize to a width keeping the aspect ratio. Images already narrower are left alone unless allow_upscale is true.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":    idProperty(),
					"width": intProperty("Target width in pixels"),
					"allow_upscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Allow enlarging images narrower than width. Default false",
						"default":     false,
					},
				},
				"required": []string{"id", "width"},
			},
		},
		{
			Name:        "image_resize_to_height",
			Description: "Resize to a height keeping the aspect ratio. Images already shorter are left alone unless allow_upscale is true.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":     idProperty(),
					"height": intProperty("Target height in pixels"),
					"allow_upscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Allow enlarging images shorter than height. Default false",
						"default":     false,
					},
				},
				"required": []string{"id", "height"},
			},
		},
		{
			Name:        "image_resize_to_cover",
			Description: "Shrink the image, keeping its aspect ratio, so that it still covers a width x height box. Never enlarges.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":     idProperty(),
					"width":  intProperty("Box width in pixels"),
					"height": intProperty("Box height in pixels"),
				},
				"required": []string{"id", "width", "height"},
			},
		},
		{
			Name:        "image_scale",
			Description: "Scale both dimensions to a percentage of the current size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
					"percent": map[string]interface{}{
						"type":        "number",
						"description": "Percentage of the current size (e.g., 50 halves the image)",
					},
				},
				"required": []string{"id", "percent"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a width x height region copied 1:1 from the image. Offsets are pixels from the top-left, or tokens: x 'left', 'right', 'center'; y 'top', 'bottom', 'center'.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":       idProperty(),
					"width":    intProperty("Crop width in pixels"),
					"height":   intProperty("Crop height in pixels"),
					"x_offset": offsetProperty("Left edge in pixels, or 'left', 'right', 'center'"),
					"y_offset": offsetProperty("Top edge in pixels, or 'top', 'bottom', 'center'"),
				},
				"required": []string{"id", "width", "height"},
			},
		},
		{
			Name:        "image_rotate",
			Description: "Rotate the image counter-clockwise. The canvas grows to fit and exposed corners are filled with the background color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
					"angle": map[string]interface{}{
						"type":        "number",
						"description": "Rotation angle in degrees, counter-clockwise",
					},
					"background": map[string]interface{}{
						"type":        "string",
						"description": "Fill color as hex (e.g., '#FFFFFF'). Default '#000000'",
						"default":     "#000000",
					},
				},
				"required": []string{"id", "angle"},
			},
		},

		// Compositing Operations
		{
			Name:        "image_opacity",
			Description: "Fade the image to a percentage of its current opacity. Switches the format to PNG. Pure black pixels become transparent.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":      idProperty(),
					"percent": intProperty("Opacity percentage (0-100)"),
				},
				"required": []string{"id", "percent"},
			},
		},
		{
			Name:        "image_watermark",
			Description: "Draw another image file over this one. Integer offsets are measured inward from the right and bottom edges; string offsets are 'left', 'right', 'center' (on both axes) or pixels from the top-left.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the watermark image",
					},
					"x_offset": offsetProperty("Pixels from the right edge, or 'left', 'right', 'center'"),
					"y_offset": offsetProperty("Pixels from the bottom edge, or 'left' (top), 'right' (bottom), 'center'"),
					"opacity": map[string]interface{}{
						"type":        "integer",
						"description": "Watermark opacity percentage (0-100). Default 70",
						"default":     70,
					},
					"width":  intProperty("Optional watermark width; with height resizes exactly, alone keeps aspect ratio"),
					"height": intProperty("Optional watermark height; with width resizes exactly, alone keeps aspect ratio"),
				},
				"required": []string{"id", "path"},
			},
		},
		{
			Name:        "image_reflection",
			Description: "Append a fading mirrored reflection below the image. Switches the format to PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":     idProperty(),
					"height": intProperty("Reflection height in pixels"),
					"gap":    intProperty("Transparent rows between image and reflection. Default 0"),
					"strength": map[string]interface{}{
						"type":        "integer",
						"description": "Fade range on the 0-127 alpha scale; the reflection starts at 127-strength transparency. Default 120",
						"default":     120,
					},
				},
				"required": []string{"id", "height"},
			},
		},

		// Inspection
		{
			Name:        "image_sample_color",
			Description: "Get the exact color value at a specific pixel coordinate of the current image.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
					"x":  intProperty("X coordinate (0-based, from left)"),
					"y":  intProperty("Y coordinate (0-based, from top)"),
				},
				"required": []string{"id", "x", "y"},
			},
		},

		// Output
		{
			Name:        "image_save",
			Description: "Write the image to a file. Without a path a unique name is generated next to the source file and returned.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id": idProperty(),
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Output path. Optional",
					},
					"format":  formatProperty("Output format. Default: the image's current format"),
					"quality": intProperty("JPEG quality (1-100). Default 90"),
				},
				"required": []string{"id"},
			},
		},
		{
			Name:        "image_output",
			Description: "Return the encoded image as base64 with its MIME type.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"id":     idProperty(),
					"format": formatProperty("Output format. Default: the image's current format"),
				},
				"required": []string{"id"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
