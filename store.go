package networkd

import (
	"errors"
	"fmt"
	"os"
)

// readRecord reads and parses one state file. A missing file is
// ErrNoRecord: the daemon is not aware of that scope. The writer
// replaces files atomically, so any content we do read parses as a
// complete record modulo skipped malformed lines.
func readRecord(path string, onMalformed func(path, line string)) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		switch {
		case errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("%s: %w", path, ErrNoRecord)
		case errors.Is(err, os.ErrPermission):
			return nil, fmt.Errorf("%s: %w", path, ErrPermissionDenied)
		default:
			return nil, fmt.Errorf("read state record %s: %w", path, err)
		}
	}
	var hook func(string)
	if onMalformed != nil {
		hook = func(line string) { onMalformed(path, line) }
	}
	return parseRecord(data, hook), nil
}
