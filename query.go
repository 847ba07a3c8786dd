package networkd

import (
	"fmt"
	"strconv"
)

// Tristate is the result of a boolean-shaped query. Unknown covers
// both "no record" and "field absent": the daemon has not answered the
// question either way.
type Tristate int

const (
	TristateUnknown Tristate = iota
	TristateNo
	TristateYes
)

// String returns "yes", "no" or "unknown".
func (t Tristate) String() string {
	switch t {
	case TristateYes:
		return "yes"
	case TristateNo:
		return "no"
	default:
		return "unknown"
	}
}

// Bool returns the boolean value and whether it is known.
func (t Tristate) Bool() (value, known bool) {
	switch t {
	case TristateYes:
		return true, true
	case TristateNo:
		return false, true
	default:
		return false, false
	}
}

// getScalar reads one string field. Absence is two distinct outcomes:
// ErrNoRecord when the file is missing, ErrFieldAbsent when the record
// exists but the key is missing or empty. Values outside a documented
// vocabulary are passed through unchanged; newer daemons may publish
// states this package does not know about yet.
func (c *Client) getScalar(path, key string) (string, error) {
	r, err := readRecord(path, c.opts.onMalformed)
	if err != nil {
		return "", err
	}
	v, ok := r.Get(key)
	if !ok || v == "" {
		return "", fmt.Errorf("%s: %s: %w", path, key, ErrFieldAbsent)
	}
	return v, nil
}

// getList reads a multi-value field as its ordered tokens. The
// returned slice is freshly allocated and owned by the caller. Absence
// is never an empty slice.
func (c *Client) getList(path, key string) ([]string, error) {
	r, err := readRecord(path, c.opts.onMalformed)
	if err != nil {
		return nil, err
	}
	tokens, ok := r.Values(key)
	if !ok {
		return nil, fmt.Errorf("%s: %s: %w", path, key, ErrFieldAbsent)
	}
	return tokens, nil
}

// getIndexList reads a multi-value field of decimal interface indexes.
// The writer only emits valid ifindexes here, so an unparseable or
// non-positive token is a real inconsistency and fails the query
// rather than being skipped.
func (c *Client) getIndexList(path, key string) ([]int, error) {
	tokens, err := c.getList(path, key)
	if err != nil {
		return nil, err
	}
	indexes := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		n, err := strconv.Atoi(tok)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s: %s: malformed ifindex %q", path, key, tok)
		}
		indexes = append(indexes, n)
	}
	return indexes, nil
}

// getTristate reads a boolean-shaped field. A missing record or field
// yields TristateUnknown with a nil error; only a value the writer
// should never produce is an error.
func (c *Client) getTristate(path, key string) (Tristate, error) {
	v, err := c.getScalar(path, key)
	if err != nil {
		if IsAbsent(err) {
			return TristateUnknown, nil
		}
		return TristateUnknown, err
	}
	t, ok := parseTristate(v)
	if !ok {
		return TristateUnknown, fmt.Errorf("%s: %s: malformed boolean %q", path, key, v)
	}
	return t, nil
}

func parseTristate(s string) (Tristate, bool) {
	switch s {
	case "1", "yes", "y", "true", "t", "on":
		return TristateYes, true
	case "0", "no", "n", "false", "f", "off":
		return TristateNo, true
	default:
		return TristateUnknown, false
	}
}
