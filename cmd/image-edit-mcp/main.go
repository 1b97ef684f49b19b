package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/image-edit-mcp/internal/config"
	"github.com/ironsheep/image-edit-mcp/internal/logger"
	"github.com/ironsheep/image-edit-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("image-edit-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("image-edit-mcp - MCP server for image editing")
			fmt.Println()
			fmt.Println("Usage: image-edit-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s=info        error, warn, info or debug\n", config.EnvLogLevel)
			fmt.Printf("  %s=box           box, linear, catmullrom, lanczos or nearest\n", config.EnvResample)
			fmt.Printf("  %s=90       JPEG quality for saves (1-100)\n", config.EnvJPEGQuality)
			fmt.Printf("  %s=false      Apply EXIF orientation on load\n", config.EnvAutoOrient)
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error.Fatalf("Invalid configuration: %v", err)
	}

	// stdout is for MCP protocol
	logger.Initialize(cfg.LogLevel, os.Stderr)
	logger.Debug.Printf("Image Edit MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	logger.Debug.Printf("Config: log=%s resample=%s quality=%d auto_orient=%v",
		cfg.LogLevel, cfg.Resample, cfg.JPEGQuality, cfg.AutoOrient)

	srv := server.New(cfg.HandleOptions()...)
	if err := srv.Run(); err != nil {
		logger.Error.Fatalf("Server error: %v", err)
	}
}
