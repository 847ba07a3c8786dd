package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Format is the log output format.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"
	// FormatJSON outputs JSON records.
	FormatJSON Format = "json"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unknown log format: %q", s)
	}
}

// Options configures the logger factory.
type Options struct {
	// CLISpec is the log spec from a command line flag; it overrides
	// ConfigSpec.
	CLISpec string
	// ConfigSpec is the log spec from the config file.
	ConfigSpec string
	// Format is the output format (text or json).
	Format Format
	// Output is the log destination. Defaults to os.Stderr.
	Output io.Writer
}

// New creates an slog.Logger with component-level filtering.
func New(opts Options) (*slog.Logger, error) {
	specStr := opts.ConfigSpec
	if opts.CLISpec != "" {
		specStr = opts.CLISpec
	}

	spec, err := ParseSpec(specStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log spec: %w", err)
	}

	output := opts.Output
	if output == nil {
		output = os.Stderr
	}

	// The inner handler passes everything; the filtering handler is
	// the single point of level control.
	handlerOpts := &slog.HandlerOptions{Level: LevelTrace.ToSlog()}

	var inner slog.Handler
	switch opts.Format {
	case FormatJSON:
		inner = slog.NewJSONHandler(output, handlerOpts)
	default:
		inner = slog.NewTextHandler(output, handlerOpts)
	}

	return slog.New(NewFilteringHandler(inner, &spec)), nil
}

// Default creates a logger with default settings: info level, text
// format, stderr.
func Default() *slog.Logger {
	logger, _ := New(Options{})
	return logger
}
