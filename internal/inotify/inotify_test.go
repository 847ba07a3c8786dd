package inotify

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestInstanceLifecycle(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, in.Fd(), 0)

	require.NoError(t, in.Close())
	assert.NoError(t, in.Close(), "double close must be a no-op")
	assert.Equal(t, -1, in.Fd())
}

func TestAddWatchMissingPath(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	err = in.AddWatch(filepath.Join(t.TempDir(), "missing"), unix.IN_CREATE)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestAddWatchIdempotent(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	dir := t.TempDir()
	require.NoError(t, in.AddWatch(dir, unix.IN_CREATE|unix.IN_DELETE))
	assert.NoError(t, in.AddWatch(dir, unix.IN_CREATE|unix.IN_DELETE))
}

func TestDrainEmptiesQueue(t *testing.T) {
	in, err := New()
	require.NoError(t, err)
	defer in.Close()

	dir := t.TempDir()
	require.NoError(t, in.AddWatch(dir, unix.IN_CREATE|unix.IN_CLOSE_WRITE))

	// Nothing pending: drain is a no-op.
	require.NoError(t, in.Drain())

	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o644))

	// The queue now holds events; drain discards them all.
	require.NoError(t, in.Drain())

	fds := []unix.PollFd{{Fd: int32(in.Fd()), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	require.NoError(t, err)
	assert.Zero(t, n, "queue should be empty after drain")
}
