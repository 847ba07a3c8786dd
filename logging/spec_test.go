package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{" error ", LevelError},
		{"err", LevelError},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestParseSpec(t *testing.T) {
	spec, err := ParseSpec("warn,monitor=debug,store=trace")
	require.NoError(t, err)

	assert.Equal(t, LevelWarn, spec.BaseLevel)
	assert.Equal(t, LevelDebug, spec.LevelFor("monitor"))
	assert.Equal(t, LevelTrace, spec.LevelFor("store"))
	assert.Equal(t, LevelWarn, spec.LevelFor("other"))
}

func TestParseSpecEmpty(t *testing.T) {
	spec, err := ParseSpec("")
	require.NoError(t, err)
	assert.Equal(t, LevelInfo, spec.BaseLevel)
	assert.Empty(t, spec.Components)
}

func TestParseSpecErrors(t *testing.T) {
	_, err := ParseSpec("monitor=debug,info")
	assert.Error(t, err, "bare level after components")

	_, err = ParseSpec("=debug")
	assert.Error(t, err, "empty component")

	_, err = ParseSpec("monitor=verbose")
	assert.Error(t, err, "unknown level")
}
