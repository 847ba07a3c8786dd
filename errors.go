package networkd

import (
	"errors"
	"fmt"

	"github.com/frobware/go-networkd/internal/inotify"
)

var (
	// ErrNoRecord is returned when the daemon has published no record
	// for the requested scope: no global state file, or no file for
	// the given ifindex. It means "networkd is not aware of this",
	// which callers must distinguish from a known link with an unset
	// field (ErrFieldAbsent).
	ErrNoRecord = errors.New("no state record")

	// ErrFieldAbsent is returned when the record exists but does not
	// carry the requested field, or carries it with an empty value.
	ErrFieldAbsent = errors.New("field absent from state record")

	// ErrMonitorClosed is returned by operations on a Monitor after
	// Close.
	ErrMonitorClosed = errors.New("monitor is closed")

	// ErrPermissionDenied indicates the runtime directory or a watch
	// target is not accessible.
	ErrPermissionDenied = inotify.ErrPermissionDenied

	// ErrResourceExhausted indicates the kernel refused another watch;
	// see the fs.inotify sysctls.
	ErrResourceExhausted = inotify.ErrResourceExhausted
)

// InvalidIfindexError is returned when a per-link or per-lease
// operation is given a non-positive interface index. It is reported
// before any storage access.
type InvalidIfindexError struct {
	Ifindex int
}

func (e InvalidIfindexError) Error() string {
	return fmt.Sprintf("invalid ifindex %d: must be positive", e.Ifindex)
}

// InvalidCategoryError is returned by NewMonitor for a category
// outside {all, links, leases}.
type InvalidCategoryError struct {
	Category Category
}

func (e InvalidCategoryError) Error() string {
	return fmt.Sprintf("invalid watch category %q", string(e.Category))
}

// IsAbsent reports whether err means there is nothing to show for the
// query: either the scope has no record at all or the record lacks the
// field. List accessors document this merged view; scalar callers that
// need the distinction check the two sentinels directly.
func IsAbsent(err error) bool {
	return errors.Is(err, ErrNoRecord) || errors.Is(err, ErrFieldAbsent)
}
