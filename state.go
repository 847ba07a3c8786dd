package networkd

// Global accessors read the daemon-wide state record, which aggregates
// over all managed links. Each returns ErrNoRecord when networkd is
// not aware of any links yet (or is not running), and ErrFieldAbsent
// when the record exists without that field.

// OperationalState returns the overall operational state.
// Documented values: down, up, dormant, carrier, degraded, routable.
func (c *Client) OperationalState() (string, error) {
	return c.getScalar(c.opts.dirs.StateFile(), keyOperState)
}

// CarrierState returns the overall carrier state.
func (c *Client) CarrierState() (string, error) {
	return c.getScalar(c.opts.dirs.StateFile(), keyCarrierState)
}

// AddressState returns the overall address state.
func (c *Client) AddressState() (string, error) {
	return c.getScalar(c.opts.dirs.StateFile(), keyAddressState)
}

// IPv4AddressState returns the overall IPv4 address state.
func (c *Client) IPv4AddressState() (string, error) {
	return c.getScalar(c.opts.dirs.StateFile(), keyIPv4AddressState)
}

// IPv6AddressState returns the overall IPv6 address state.
func (c *Client) IPv6AddressState() (string, error) {
	return c.getScalar(c.opts.dirs.StateFile(), keyIPv6AddressState)
}

// OnlineState returns the overall online state.
func (c *Client) OnlineState() (string, error) {
	return c.getScalar(c.opts.dirs.StateFile(), keyOnlineState)
}

// DNS returns the DNS servers across all links, as textual IP
// addresses in publication order.
func (c *Client) DNS() ([]string, error) {
	return c.getList(c.opts.dirs.StateFile(), keyDNS)
}

// NTP returns the NTP servers across all links: domain names or
// textual IP addresses.
func (c *Client) NTP() ([]string, error) {
	return c.getList(c.opts.dirs.StateFile(), keyNTP)
}

// SearchDomains returns the DNS search domains across all links.
func (c *Client) SearchDomains() ([]string, error) {
	return c.getList(c.opts.dirs.StateFile(), keyDomains)
}

// RouteDomains returns the DNS route-only domains across all links.
func (c *Client) RouteDomains() ([]string, error) {
	return c.getList(c.opts.dirs.StateFile(), keyRouteDomains)
}
