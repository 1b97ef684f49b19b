// Package logger provides level-gated loggers writing to stderr.
//
// stdout is reserved for the MCP protocol, so every level goes to the same
// writer. Levels below the configured one are discarded.
package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
)

// LogLevel orders log levels from least to most verbose.
type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
)

const flags = log.Ldate | log.Ltime | log.Lshortfile

var (
	Error = log.New(os.Stderr, "ERROR: ", flags)
	Warn  = log.New(os.Stderr, "WARN:  ", flags)
	Info  = log.New(os.Stderr, "INFO:  ", flags)
	Debug = log.New(io.Discard, "DEBUG: ", flags)
)

// ParseLevel converts a level name ("error", "warn", "info", "debug").
func ParseLevel(value string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "error":
		return ERROR, nil
	case "warn", "warning":
		return WARN, nil
	case "info", "":
		return INFO, nil
	case "debug":
		return DEBUG, nil
	}
	return INFO, fmt.Errorf("invalid log level %q", value)
}

func (l LogLevel) String() string {
	switch l {
	case ERROR:
		return "error"
	case WARN:
		return "warn"
	case INFO:
		return "info"
	case DEBUG:
		return "debug"
	}
	return "unknown"
}

// Initialize routes levels up to level to w and discards the rest.
func Initialize(level LogLevel, w io.Writer) {
	writer := func(l LogLevel) io.Writer {
		if level >= l {
			return w
		}
		return io.Discard
	}
	Error.SetOutput(writer(ERROR))
	Warn.SetOutput(writer(WARN))
	Info.SetOutput(writer(INFO))
	Debug.SetOutput(writer(DEBUG))
}
