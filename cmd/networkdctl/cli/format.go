package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	networkd "github.com/frobware/go-networkd"
)

// fieldWriter prints aligned "name: value" rows, rendering the
// absence outcomes of the query layer as "n/a" instead of failing.
type fieldWriter struct {
	tw  *tabwriter.Writer
	err error
}

func newFieldWriter(w io.Writer) *fieldWriter {
	return &fieldWriter{tw: tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)}
}

func (f *fieldWriter) scalar(name string, value string, err error) {
	f.row(name, value, err)
}

func (f *fieldWriter) list(name string, values []string, err error) {
	f.row(name, strings.Join(values, " "), err)
}

func (f *fieldWriter) indexes(name string, values []int, err error) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%d", v)
	}
	f.row(name, strings.Join(parts, " "), err)
}

func (f *fieldWriter) tristate(name string, value networkd.Tristate, err error) {
	f.row(name, value.String(), err)
}

func (f *fieldWriter) row(name, value string, err error) {
	if f.err != nil {
		return
	}
	switch {
	case networkd.IsAbsent(err):
		value = "n/a"
	case err != nil:
		f.err = err
		return
	}
	fmt.Fprintf(f.tw, "%s:\t%s\n", name, value)
}

func (f *fieldWriter) flush() error {
	if f.err != nil {
		return f.err
	}
	return f.tw.Flush()
}
