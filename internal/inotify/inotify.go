// Package inotify is the operating-system boundary for filesystem
// change notification. It owns a single inotify instance and the
// translation from errno to the error kinds the rest of the module
// reports; no other package inspects raw system error numbers.
package inotify

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Error kinds produced by errno translation. The root package aliases
// these so callers never need to import an internal package.
var (
	// ErrPermissionDenied indicates the watched path is not accessible.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrResourceExhausted indicates the kernel watch table or queue
	// limit was hit (fs.inotify.* sysctls) or memory ran out.
	ErrResourceExhausted = errors.New("watch resources exhausted")
)

// Instance wraps one kernel inotify instance. It is not safe for
// concurrent use; callers serialise access.
type Instance struct {
	fd      int
	watches map[string]int
}

// New creates a nonblocking, close-on-exec inotify instance.
func New() (*Instance, error) {
	fd, err := unix.InotifyInit1(unix.IN_NONBLOCK | unix.IN_CLOEXEC)
	if err != nil {
		return nil, fmt.Errorf("inotify_init1: %w", translate(err))
	}
	return &Instance{fd: fd, watches: make(map[string]int)}, nil
}

// Fd returns the pollable descriptor. Ownership stays with the
// Instance; callers must not close it.
func (i *Instance) Fd() int {
	return i.fd
}

// AddWatch arms a watch on path for the given event mask. Adding a
// watch for a path that is already watched updates the existing kernel
// watch in place, so AddWatch is safe to call repeatedly with the same
// arguments.
func (i *Instance) AddWatch(path string, mask uint32) error {
	wd, err := unix.InotifyAddWatch(i.fd, path, mask)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, translate(err))
	}
	i.watches[path] = wd
	return nil
}

// Drain reads and discards all queued events. It returns once the
// queue is empty and never blocks. Event content is deliberately not
// interpreted: the kernel coalesces and drops events under load, so
// the only reliable contract is "something changed".
func (i *Instance) Drain() error {
	// Large enough for a batch of events with NAME_MAX names.
	buf := make([]byte, 8192)
	for {
		n, err := unix.Read(i.fd, buf)
		switch {
		case errors.Is(err, unix.EAGAIN):
			return nil
		case errors.Is(err, unix.EINTR):
			continue
		case err != nil:
			return fmt.Errorf("drain inotify queue: %w", translate(err))
		case n == 0:
			return nil
		}
	}
}

// Close releases the instance and every watch armed on it in one step.
// The kernel drops all watch descriptors when the instance closes, so
// no per-watch teardown is needed.
func (i *Instance) Close() error {
	if i.fd < 0 {
		return nil
	}
	err := unix.Close(i.fd)
	i.fd = -1
	i.watches = nil
	if err != nil {
		return fmt.Errorf("close inotify instance: %w", err)
	}
	return nil
}

// translate maps errno values onto the module's error kinds. Unmapped
// errors pass through for %w wrapping by the caller.
func translate(err error) error {
	switch {
	case errors.Is(err, unix.EACCES), errors.Is(err, unix.EPERM):
		return ErrPermissionDenied
	case errors.Is(err, unix.EMFILE), errors.Is(err, unix.ENFILE),
		errors.Is(err, unix.ENOSPC), errors.Is(err, unix.ENOMEM):
		return ErrResourceExhausted
	case errors.Is(err, unix.ENOENT):
		return os.ErrNotExist
	default:
		return err
	}
}
