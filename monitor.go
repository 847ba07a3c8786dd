package networkd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"github.com/frobware/go-networkd/config"
	"github.com/frobware/go-networkd/internal/inotify"
)

// Category selects which part of the runtime state tree a Monitor
// observes.
type Category string

const (
	// CategoryAll observes links, leases and the global state file.
	CategoryAll Category = "all"
	// CategoryLinks observes per-link state, including link
	// appearance and removal.
	CategoryLinks Category = "links"
	// CategoryLeases observes per-link lease state.
	CategoryLeases Category = "leases"
)

// ParseCategory parses a string into a Category. The empty string
// selects CategoryAll. Returns the Category and true if valid.
func ParseCategory(s string) (Category, bool) {
	switch s {
	case "", "all":
		return CategoryAll, true
	case "links":
		return CategoryLinks, true
	case "leases":
		return CategoryLeases, true
	default:
		return "", false
	}
}

// The writer replaces state files atomically (write-new-then-rename)
// or truncates in place, and links/leases appear and vanish as whole
// files, so these events cover every state change we can observe.
const watchMask = unix.IN_CREATE | unix.IN_MOVED_TO | unix.IN_MOVED_FROM |
	unix.IN_DELETE | unix.IN_CLOSE_WRITE

// Monitor aggregates change notification for a runtime state tree into
// one pollable descriptor. One inotify instance is armed with a watch
// per target directory, so many logically distinct sources surface as
// a single handle for the caller's own event loop.
//
// A Monitor never blocks and owns no goroutine: all waiting happens in
// the caller's polling primitive using Descriptor, Events and Timeout.
// When the descriptor becomes readable the caller calls Flush and then
// re-queries whatever state it cares about; the kernel coalesces and
// drops events under load, so the wake signal only ever means
// "something changed". A Monitor is single-owner: descriptor access
// and Flush must not race.
type Monitor struct {
	in       *inotify.Instance
	dirs     config.RuntimeDirs
	category Category
	logger   *slog.Logger
	closed   bool
}

// NewMonitor creates a Monitor observing the given category. The
// monitored instance is selected the same way as for New: by
// WithNamespace or WithRuntimeDirs.
//
// Construction fails with InvalidCategoryError for an unknown
// category, ErrPermissionDenied when the runtime tree is inaccessible,
// and ErrResourceExhausted when the kernel watch limit is hit.
// Failures are reported once and never retried internally; a caller
// that cannot get a monitor falls back to its own polling cadence.
func NewMonitor(category Category, opts ...Option) (*Monitor, error) {
	if _, ok := ParseCategory(string(category)); !ok {
		return nil, InvalidCategoryError{Category: category}
	}
	if category == "" {
		category = CategoryAll
	}

	o := newOptions(opts)
	in, err := inotify.New()
	if err != nil {
		return nil, err
	}

	m := &Monitor{
		in:       in,
		dirs:     o.dirs,
		category: category,
		logger:   o.logger.With(slog.String("component", "monitor")),
	}
	if err := m.arm(true); err != nil {
		in.Close()
		return nil, err
	}
	return m, nil
}

// targets returns the directories to watch for the monitor's category.
// The runtime root itself is watched alongside the links subtree so
// that link files appearing before the subtree exists, and changes to
// the global state file, are not missed.
func (m *Monitor) targets() []string {
	switch m.category {
	case CategoryLinks:
		return []string{m.dirs.Base(), m.dirs.Links()}
	case CategoryLeases:
		return []string{m.dirs.Base(), m.dirs.Leases()}
	default:
		return []string{m.dirs.Base(), m.dirs.Links(), m.dirs.Leases()}
	}
}

// arm adds watches for every target. In strict mode (construction) a
// missing runtime root is an error. Subtrees the daemon has not
// created yet are tolerated in either mode: the watch on the root
// observes their creation and the next Flush arms them.
func (m *Monitor) arm(strict bool) error {
	for i, target := range m.targets() {
		err := m.in.AddWatch(target, watchMask)
		if err == nil {
			continue
		}
		// The first target is the runtime root.
		if errors.Is(err, os.ErrNotExist) && (i > 0 || !strict) {
			m.logger.Debug("watch target missing, deferring", slog.String("path", target))
			continue
		}
		return err
	}
	return nil
}

// Descriptor returns the pollable handle. Ownership stays with the
// monitor; callers must not read from or close it. Returns -1 on a
// closed monitor.
func (m *Monitor) Descriptor() int {
	if m == nil || m.closed {
		return -1
	}
	return m.in.Fd()
}

// Events returns the poll interest mask for the descriptor. The
// monitor is only ever interested in readability.
func (m *Monitor) Events() int16 {
	return unix.POLLIN
}

// Timeout returns the poll timeout the caller should use, and whether
// one is needed. This monitor never needs a periodic wake; the method
// exists for symmetry with monitors that do.
func (m *Monitor) Timeout() (time.Duration, bool) {
	return 0, false
}

// Flush drains all pending notifications without interpreting them and
// re-arms watches on any subtree that has appeared since the last arm.
// Calling Flush with nothing pending is a successful no-op. After
// Flush the caller re-queries current state.
func (m *Monitor) Flush() error {
	if m == nil || m.closed {
		return fmt.Errorf("flush: %w", ErrMonitorClosed)
	}
	if err := m.in.Drain(); err != nil {
		return err
	}
	return m.arm(false)
}

// Close releases the inotify instance and every watch armed on it in
// one atomic step. It is idempotent and safe on a nil monitor.
func (m *Monitor) Close() error {
	if m == nil || m.closed {
		return nil
	}
	m.closed = true
	return m.in.Close()
}
