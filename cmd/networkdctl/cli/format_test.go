package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	networkd "github.com/frobware/go-networkd"
)

func TestFieldWriterRendersAbsenceAsNA(t *testing.T) {
	var buf bytes.Buffer
	f := newFieldWriter(&buf)

	f.scalar("Operational state", "routable", nil)
	f.scalar("Online state", "", networkd.ErrFieldAbsent)
	f.list("DNS", []string{"1.1.1.1", "8.8.8.8"}, nil)
	f.list("NTP", nil, networkd.ErrNoRecord)
	f.indexes("Carrier bound to", []int{3, 7}, nil)
	f.tristate("Required for online", networkd.TristateYes, nil)
	require.NoError(t, f.flush())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)

	row := func(line string) (string, string) {
		name, value, found := strings.Cut(line, ":")
		require.True(t, found, line)
		return name, strings.TrimSpace(value)
	}

	name, value := row(lines[0])
	assert.Equal(t, "Operational state", name)
	assert.Equal(t, "routable", value)

	_, value = row(lines[1])
	assert.Equal(t, "n/a", value)

	_, value = row(lines[2])
	assert.Equal(t, "1.1.1.1 8.8.8.8", value)

	_, value = row(lines[3])
	assert.Equal(t, "n/a", value)

	_, value = row(lines[4])
	assert.Equal(t, "3 7", value)

	_, value = row(lines[5])
	assert.Equal(t, "yes", value)
}

func TestFieldWriterStopsOnRealError(t *testing.T) {
	var buf bytes.Buffer
	f := newFieldWriter(&buf)

	broken := errors.New("disk on fire")
	f.scalar("Operational state", "", broken)
	f.scalar("Carrier state", "carrier", nil)

	err := f.flush()
	assert.ErrorIs(t, err, broken)
	assert.NotContains(t, buf.String(), "carrier")
}

func TestClientOptionsPrecedence(t *testing.T) {
	root := t.TempDir()

	c := &CLI{
		Namespace: "vpn",
		Root:      root,
		Config:    filepath.Join(root, "no-such-config.toml"),
	}

	client, _, _, err := c.Client()
	require.NoError(t, err)

	// --root overrides the namespace-derived tree.
	assert.Equal(t, root, client.Dirs().Base())

	c.Root = ""
	client, _, _, err = c.Client()
	require.NoError(t, err)
	assert.Equal(t, "/run/systemd/netif.vpn", client.Dirs().Base())
}
