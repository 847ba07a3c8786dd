package logging_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frobware/go-networkd/logging"
)

func newTestHandler(buf *bytes.Buffer, specStr string, t *testing.T) slog.Handler {
	t.Helper()
	spec, err := logging.ParseSpec(specStr)
	require.NoError(t, err)
	inner := slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: logging.LevelTrace.ToSlog(),
	})
	return logging.NewFilteringHandler(inner, &spec)
}

func TestFilteringHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	handler := newTestHandler(&buf, "warn,monitor=debug", t)

	ctx := context.Background()

	// No component: base level applies.
	assert.False(t, handler.Enabled(ctx, slog.LevelInfo))
	assert.True(t, handler.Enabled(ctx, slog.LevelWarn))

	// The monitor component is opened up to debug.
	monitor := handler.WithAttrs([]slog.Attr{slog.String("component", "monitor")})
	assert.True(t, monitor.Enabled(ctx, slog.LevelDebug))
	assert.False(t, monitor.Enabled(ctx, logging.LevelTrace.ToSlog()))
}

func TestFilteringHandlerOutput(t *testing.T) {
	var buf bytes.Buffer
	handler := newTestHandler(&buf, "warn,monitor=debug", t)
	logger := slog.New(handler)

	logger.Info("suppressed")
	logger.Warn("base warning")

	monitor := logger.With(slog.String("component", "monitor"))
	monitor.Debug("monitor detail")

	out := buf.String()
	assert.NotContains(t, out, "suppressed")
	assert.Contains(t, out, "base warning")
	assert.Contains(t, out, "monitor detail")
}

func TestNewFormats(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.New(logging.Options{
		CLISpec: "info",
		Format:  logging.FormatJSON,
		Output:  &buf,
	})
	require.NoError(t, err)

	logger.Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"), "expected JSON output")
}

func TestNewRejectsBadSpec(t *testing.T) {
	_, err := logging.New(logging.Options{CLISpec: "nope"})
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	f, err := logging.ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatText, f)

	f, err = logging.ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, logging.FormatJSON, f)

	_, err = logging.ParseFormat("yaml")
	assert.Error(t, err)
}
