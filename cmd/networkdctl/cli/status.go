package cli

import (
	"errors"
	"fmt"
	"os"

	networkd "github.com/frobware/go-networkd"
)

// StatusCmd shows the daemon-wide state record.
type StatusCmd struct{}

// Run executes the status command.
func (cmd *StatusCmd) Run(cli *CLI) error {
	client, _, _, err := cli.Client()
	if err != nil {
		return err
	}

	// Probe the record once so "daemon not running" is a clear
	// message rather than a page of n/a rows.
	if _, err := client.StateRecord(); errors.Is(err, networkd.ErrNoRecord) {
		return fmt.Errorf("no global state published under %s: is networkd running?",
			client.Dirs().Base())
	}

	f := newFieldWriter(os.Stdout)

	state, err := client.OperationalState()
	f.scalar("Operational state", state, err)
	state, err = client.CarrierState()
	f.scalar("Carrier state", state, err)
	state, err = client.AddressState()
	f.scalar("Address state", state, err)
	state, err = client.IPv4AddressState()
	f.scalar("IPv4 address state", state, err)
	state, err = client.IPv6AddressState()
	f.scalar("IPv6 address state", state, err)
	state, err = client.OnlineState()
	f.scalar("Online state", state, err)

	list, err := client.DNS()
	f.list("DNS", list, err)
	list, err = client.NTP()
	f.list("NTP", list, err)
	list, err = client.SearchDomains()
	f.list("Search domains", list, err)
	list, err = client.RouteDomains()
	f.list("Route domains", list, err)

	return f.flush()
}
