package networkd

import (
	"sort"
	"strings"
)

// Record is one parsed state record: the key/value content of a single
// global, per-link, or per-lease state file. A Record is an ephemeral
// read result owned entirely by the caller; it holds no reference back
// to the store and is never updated in place.
type Record struct {
	fields map[string]string
}

// parseRecord parses newline-delimited KEY=VALUE content. Parsing is
// best-effort: the file may be read while the writer is replacing it,
// so a malformed line is skipped (and reported via onMalformed when
// set) rather than failing the whole record. Duplicate keys keep the
// last value. Lines starting with '#' are ignored.
func parseRecord(data []byte, onMalformed func(line string)) *Record {
	r := &Record{fields: make(map[string]string)}
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" || line[0] == '#' {
			continue
		}
		eq := strings.IndexByte(line, '=')
		if eq <= 0 {
			if onMalformed != nil {
				onMalformed(line)
			}
			continue
		}
		r.fields[line[:eq]] = line[eq+1:]
	}
	return r
}

// Get returns the raw value for key and whether the record carries it.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.fields[key]
	return v, ok
}

// Values splits a multi-value field into its whitespace-separated
// tokens, order preserved. It returns (nil, false) when the key is
// missing or holds no tokens: an empty list never stands in for
// absence.
func (r *Record) Values(key string) ([]string, bool) {
	v, ok := r.fields[key]
	if !ok {
		return nil, false
	}
	tokens := strings.Fields(v)
	if len(tokens) == 0 {
		return nil, false
	}
	return tokens, true
}

// Keys returns the record's keys in sorted order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	return len(r.fields)
}
