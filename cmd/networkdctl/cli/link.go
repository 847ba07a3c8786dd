package cli

import (
	"errors"
	"fmt"
	"os"

	networkd "github.com/frobware/go-networkd"
)

// LinkCmd shows per-link state.
type LinkCmd struct {
	Ifindex int  `arg:"" help:"Interface index of the link."`
	Lease   bool `help:"Show the link's raw DHCP lease record instead."`
}

// Run executes the link command.
func (cmd *LinkCmd) Run(cli *CLI) error {
	client, _, _, err := cli.Client()
	if err != nil {
		return err
	}

	link := client.Link(cmd.Ifindex)

	if cmd.Lease {
		return printRecord(link.Lease())
	}

	if _, err := link.Record(); errors.Is(err, networkd.ErrNoRecord) {
		return fmt.Errorf("networkd is not aware of link %d", cmd.Ifindex)
	}

	f := newFieldWriter(os.Stdout)

	state, err := link.SetupState()
	f.scalar("Setup state", state, err)
	state, err = link.OperationalState()
	f.scalar("Operational state", state, err)
	state, err = link.CarrierState()
	f.scalar("Carrier state", state, err)
	state, err = link.AddressState()
	f.scalar("Address state", state, err)
	state, err = link.OnlineState()
	f.scalar("Online state", state, err)

	ts, err := link.RequiredForOnline()
	f.tristate("Required for online", ts, err)
	state, err = link.RequiredOperStateForOnline()
	f.scalar("Required operstate", state, err)
	state, err = link.ActivationPolicy()
	f.scalar("Activation policy", state, err)
	state, err = link.NetworkFile()
	f.scalar("Network file", state, err)

	list, err := link.DNS()
	f.list("DNS", list, err)
	list, err = link.NTP()
	f.list("NTP", list, err)
	list, err = link.SearchDomains()
	f.list("Search domains", list, err)
	list, err = link.RouteDomains()
	f.list("Route domains", list, err)
	ts, err = link.DNSDefaultRoute()
	f.tristate("DNS default route", ts, err)

	state, err = link.LLMNR()
	f.scalar("LLMNR", state, err)
	state, err = link.MulticastDNS()
	f.scalar("MulticastDNS", state, err)
	state, err = link.DNSOverTLS()
	f.scalar("DNS over TLS", state, err)
	state, err = link.DNSSEC()
	f.scalar("DNSSEC", state, err)
	list, err = link.DNSSECNegativeTrustAnchors()
	f.list("DNSSEC NTA", list, err)

	idx, err := link.CarrierBoundTo()
	f.indexes("Carrier bound to", idx, err)
	idx, err = link.CarrierBoundBy()
	f.indexes("Carrier bound by", idx, err)

	return f.flush()
}

// printRecord dumps a raw record in KEY=VALUE form, keys sorted.
func printRecord(r *networkd.Record, err error) error {
	if err != nil {
		return err
	}
	for _, key := range r.Keys() {
		value, _ := r.Get(key)
		fmt.Printf("%s=%s\n", key, value)
	}
	return nil
}
