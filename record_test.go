package networkd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	data := []byte("OPER_STATE=routable\n" +
		"DNS=1.1.1.1 8.8.8.8\n" +
		"# comment line\n" +
		"\n" +
		"EMPTY=\n")

	r := parseRecord(data, nil)

	v, ok := r.Get("OPER_STATE")
	require.True(t, ok)
	assert.Equal(t, "routable", v)

	v, ok = r.Get("EMPTY")
	require.True(t, ok)
	assert.Equal(t, "", v)

	_, ok = r.Get("MISSING")
	assert.False(t, ok)

	assert.Equal(t, 3, r.Len())
	assert.Equal(t, []string{"DNS", "EMPTY", "OPER_STATE"}, r.Keys())
}

func TestParseRecordSkipsMalformedLines(t *testing.T) {
	var malformed []string
	data := []byte("no-equals-sign\n" +
		"=value-without-key\n" +
		"GOOD=yes\n")

	r := parseRecord(data, func(line string) {
		malformed = append(malformed, line)
	})

	v, ok := r.Get("GOOD")
	require.True(t, ok)
	assert.Equal(t, "yes", v)
	assert.Equal(t, []string{"no-equals-sign", "=value-without-key"}, malformed)
	assert.Equal(t, 1, r.Len())
}

func TestParseRecordDuplicateKeyKeepsLast(t *testing.T) {
	r := parseRecord([]byte("OPER_STATE=carrier\nOPER_STATE=routable\n"), nil)

	v, ok := r.Get("OPER_STATE")
	require.True(t, ok)
	assert.Equal(t, "routable", v)
}

func TestRecordValues(t *testing.T) {
	r := parseRecord([]byte("DNS=1.1.1.1  8.8.8.8\nBLANK=   \n"), nil)

	// Order is preserved and repeated separators collapse.
	values, ok := r.Values("DNS")
	require.True(t, ok)
	assert.Equal(t, []string{"1.1.1.1", "8.8.8.8"}, values)

	// A field with no tokens is absence, never an empty list.
	values, ok = r.Values("BLANK")
	assert.False(t, ok)
	assert.Nil(t, values)

	values, ok = r.Values("MISSING")
	assert.False(t, ok)
	assert.Nil(t, values)
}

func TestParseTristate(t *testing.T) {
	for _, s := range []string{"1", "yes", "y", "true", "t", "on"} {
		v, ok := parseTristate(s)
		assert.True(t, ok, s)
		assert.Equal(t, TristateYes, v, s)
	}
	for _, s := range []string{"0", "no", "n", "false", "f", "off"} {
		v, ok := parseTristate(s)
		assert.True(t, ok, s)
		assert.Equal(t, TristateNo, v, s)
	}
	_, ok := parseTristate("maybe")
	assert.False(t, ok)
}

func TestTristateAccessors(t *testing.T) {
	value, known := TristateYes.Bool()
	assert.True(t, value)
	assert.True(t, known)

	value, known = TristateNo.Bool()
	assert.False(t, value)
	assert.True(t, known)

	_, known = TristateUnknown.Bool()
	assert.False(t, known)

	assert.Equal(t, "yes", TristateYes.String())
	assert.Equal(t, "no", TristateNo.String())
	assert.Equal(t, "unknown", TristateUnknown.String())
}
