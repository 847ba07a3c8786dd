package networkd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/frobware/go-networkd/config"
)

// options holds shared construction settings for Client and Monitor.
type options struct {
	dirs        config.RuntimeDirs
	logger      *slog.Logger
	onMalformed func(path, line string)
}

// Option configures a Client or Monitor.
type Option func(*options)

func newOptions(opts []Option) options {
	o := options{
		dirs:   config.DefaultRuntimeDirs(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, apply := range opts {
		apply(&o)
	}
	return o
}

// WithNamespace selects the networkd instance running in the named
// network namespace. The empty namespace selects the default instance.
func WithNamespace(namespace string) Option {
	return func(o *options) {
		o.dirs = config.DirsForNamespace(namespace)
	}
}

// WithRuntimeDirs overrides the runtime state tree entirely. Mainly
// useful for tests running against a scratch directory.
func WithRuntimeDirs(dirs config.RuntimeDirs) Option {
	return func(o *options) {
		o.dirs = dirs
	}
}

// WithLogger sets the logger. If not specified, logging is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithOnMalformed sets a callback invoked for each state file line
// that cannot be parsed. Malformed lines are always skipped; the
// callback only observes them.
func WithOnMalformed(f func(path, line string)) Option {
	return func(o *options) {
		o.onMalformed = f
	}
}

// Client reads networkd runtime state. It is stateless between calls:
// every query re-reads the backing file, so results always reflect
// current daemon state and a Client is safe for concurrent use.
type Client struct {
	opts options
}

// New creates a Client for the default namespace unless overridden by
// options. Construction performs no I/O and cannot fail.
func New(opts ...Option) *Client {
	return &Client{opts: newOptions(opts)}
}

// Dirs returns the runtime state tree the client reads from.
func (c *Client) Dirs() config.RuntimeDirs {
	return c.opts.dirs
}

// Links enumerates the ifindexes the daemon currently publishes state
// for, in ascending order. An absent links directory yields an empty
// result, not an error: the daemon simply has no links yet. Entries
// that are not decimal ifindexes are skipped and reported via the
// OnMalformed callback.
func (c *Client) Links() ([]int, error) {
	return c.scanIndexDir(c.opts.dirs.Links())
}

// Leases enumerates the ifindexes with a published lease record, in
// ascending order.
func (c *Client) Leases() ([]int, error) {
	return c.scanIndexDir(c.opts.dirs.Leases())
}

func (c *Client) scanIndexDir(dir string) ([]int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, nil
		case errors.Is(err, os.ErrPermission):
			return nil, fmt.Errorf("%s: %w", dir, ErrPermissionDenied)
		default:
			return nil, fmt.Errorf("read state directory %s: %w", dir, err)
		}
	}

	indexes := make([]int, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		n, err := strconv.Atoi(entry.Name())
		if err != nil || n <= 0 {
			if c.opts.onMalformed != nil {
				c.opts.onMalformed(filepath.Join(dir, entry.Name()), entry.Name())
			}
			continue
		}
		indexes = append(indexes, n)
	}
	sort.Ints(indexes)
	return indexes, nil
}

// StateRecord reads the global state record. Returns ErrNoRecord when
// the daemon has not published global state.
func (c *Client) StateRecord() (*Record, error) {
	return readRecord(c.opts.dirs.StateFile(), c.opts.onMalformed)
}

// LeaseRecord reads the lease record for a link. Returns ErrNoRecord
// when the daemon holds no lease for that ifindex.
func (c *Client) LeaseRecord(ifindex int) (*Record, error) {
	if ifindex <= 0 {
		return nil, InvalidIfindexError{Ifindex: ifindex}
	}
	return readRecord(c.opts.dirs.LeaseFile(ifindex), c.opts.onMalformed)
}
