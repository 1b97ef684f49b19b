// Package server implements the MCP (Model Context Protocol) server for image editing tools.
//
// This package provides a JSON-RPC 2.0 server that exposes image handles
// through the MCP protocol. A client loads a file into a handle, applies
// edits to it across several calls, then saves or outputs the result.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Handle Lifecycle:
//   - image_load: Load a file into a new handle and get metadata
//   - image_dimensions: Get width, height and format
//   - image_release: Free a handle
//
// Resize Operations:
//   - image_resize, image_resize_to_width, image_resize_to_height
//   - image_resize_to_cover, image_scale
//
// Region Operations:
//   - image_crop: Copy a region addressed by pixels or by name
//   - image_rotate: Rotate counter-clockwise over a background color
//
// Compositing Operations:
//   - image_opacity: Fade the image (output becomes PNG)
//   - image_watermark: Draw another image file over the handle
//   - image_reflection: Append a fading mirror image (output becomes PNG)
//
// Inspection and Output:
//   - image_sample_color: Get color at pixel
//   - image_save: Write to a file, generating a name if none is given
//   - image_output: Return the encoded image as base64
//
// # Handles
//
// Handles live in an imaging.Registry keyed by random ids and persist until
// image_release or the end of the input stream. A tool that fails leaves the
// handle holding the image it had before the call.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure), -32602 (malformed params)
//     or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// # Usage
//
//	srv := server.New(cfg.HandleOptions()...)
//	if err := srv.Run(); err != nil {
//	    logger.Error.Fatal(err)
//	}
package server
