package networkd

// Link is a per-link view over the client's runtime state tree. It is
// a value: constructing one performs no I/O, and every accessor
// re-reads the link's state file. The ifindex is validated before any
// storage access; a Link with ifindex ≤ 0 reports InvalidIfindexError
// from every accessor.
type Link struct {
	c       *Client
	ifindex int
}

// Link returns a per-link view for the given interface index.
func (c *Client) Link(ifindex int) Link {
	return Link{c: c, ifindex: ifindex}
}

// Ifindex returns the interface index this view queries.
func (l Link) Ifindex() int {
	return l.ifindex
}

func (l Link) path() (string, error) {
	if l.ifindex <= 0 {
		return "", InvalidIfindexError{Ifindex: l.ifindex}
	}
	return l.c.opts.dirs.LinkFile(l.ifindex), nil
}

func (l Link) scalar(key string) (string, error) {
	path, err := l.path()
	if err != nil {
		return "", err
	}
	return l.c.getScalar(path, key)
}

func (l Link) list(key string) ([]string, error) {
	path, err := l.path()
	if err != nil {
		return nil, err
	}
	return l.c.getList(path, key)
}

func (l Link) indexList(key string) ([]int, error) {
	path, err := l.path()
	if err != nil {
		return nil, err
	}
	return l.c.getIndexList(path, key)
}

func (l Link) tristate(key string) (Tristate, error) {
	path, err := l.path()
	if err != nil {
		return TristateUnknown, err
	}
	return l.c.getTristate(path, key)
}

// Record reads the link's raw state record.
func (l Link) Record() (*Record, error) {
	path, err := l.path()
	if err != nil {
		return nil, err
	}
	return readRecord(path, l.c.opts.onMalformed)
}

// Lease reads the link's DHCP lease record.
func (l Link) Lease() (*Record, error) {
	if l.ifindex <= 0 {
		return nil, InvalidIfindexError{Ifindex: l.ifindex}
	}
	return readRecord(l.c.opts.dirs.LeaseFile(l.ifindex), l.c.opts.onMalformed)
}

// SetupState returns the daemon's configuration state for the link.
// Documented values: pending, failed, configuring, configured,
// unmanaged, linger.
func (l Link) SetupState() (string, error) {
	return l.scalar(keyAdminState)
}

// OperationalState returns the link's operational state. Documented
// values: off, no-carrier, dormant, carrier, degraded, routable.
func (l Link) OperationalState() (string, error) {
	return l.scalar(keyOperState)
}

// CarrierState returns the link's carrier state.
func (l Link) CarrierState() (string, error) {
	return l.scalar(keyCarrierState)
}

// AddressState returns the link's address state.
func (l Link) AddressState() (string, error) {
	return l.scalar(keyAddressState)
}

// IPv4AddressState returns the link's IPv4 address state.
func (l Link) IPv4AddressState() (string, error) {
	return l.scalar(keyIPv4AddressState)
}

// IPv6AddressState returns the link's IPv6 address state.
func (l Link) IPv6AddressState() (string, error) {
	return l.scalar(keyIPv6AddressState)
}

// OnlineState returns the link's online state.
func (l Link) OnlineState() (string, error) {
	return l.scalar(keyOnlineState)
}

// RequiredForOnline reports whether the link must be up for the system
// to be considered online.
func (l Link) RequiredForOnline() (Tristate, error) {
	return l.tristate(keyRequiredForOnline)
}

// RequiredOperStateForOnline returns the operational state (or range)
// the link must reach to count as online.
func (l Link) RequiredOperStateForOnline() (string, error) {
	return l.scalar(keyRequiredOperStateForOnline)
}

// RequiredFamilyForOnline returns the address family the link must
// configure to count as online.
func (l Link) RequiredFamilyForOnline() (string, error) {
	return l.scalar(keyRequiredFamilyForOnline)
}

// ActivationPolicy returns the link's activation policy.
func (l Link) ActivationPolicy() (string, error) {
	return l.scalar(keyActivationPolicy)
}

// NetworkFile returns the path of the .network file applied to the
// link.
func (l Link) NetworkFile() (string, error) {
	return l.scalar(keyNetworkFile)
}

// DNS returns the link's DNS servers as textual IP addresses.
func (l Link) DNS() ([]string, error) {
	return l.list(keyDNS)
}

// NTP returns the link's NTP servers: domain names or textual IP
// addresses.
func (l Link) NTP() ([]string, error) {
	return l.list(keyNTP)
}

// SIP returns the link's SIP servers as textual IP addresses.
func (l Link) SIP() ([]string, error) {
	return l.list(keySIP)
}

// SearchDomains returns the link's DNS search domains.
func (l Link) SearchDomains() ([]string, error) {
	return l.list(keyDomains)
}

// RouteDomains returns the link's DNS route-only domains.
func (l Link) RouteDomains() ([]string, error) {
	return l.list(keyRouteDomains)
}

// DNSDefaultRoute reports whether the link is used as the default
// route for DNS queries.
func (l Link) DNSDefaultRoute() (Tristate, error) {
	return l.tristate(keyDNSDefaultRoute)
}

// LLMNR returns the link's LLMNR support level. Documented values:
// yes, no, resolve.
func (l Link) LLMNR() (string, error) {
	return l.scalar(keyLLMNR)
}

// MulticastDNS returns the link's MulticastDNS support level.
// Documented values: yes, no, resolve.
func (l Link) MulticastDNS() (string, error) {
	return l.scalar(keyMDNS)
}

// DNSOverTLS returns the link's DNS-over-TLS support level.
// Documented values: yes, no, opportunistic.
func (l Link) DNSOverTLS() (string, error) {
	return l.scalar(keyDNSOverTLS)
}

// DNSSEC returns the link's DNSSEC support level. Documented values:
// yes, no, allow-downgrade.
func (l Link) DNSSEC() (string, error) {
	return l.scalar(keyDNSSEC)
}

// DNSSECNegativeTrustAnchors returns the link's DNSSEC negative trust
// anchor domains.
func (l Link) DNSSECNegativeTrustAnchors() ([]string, error) {
	return l.list(keyDNSSECNTA)
}

// CarrierBoundTo returns the ifindexes of the links whose carrier this
// link is bound to.
func (l Link) CarrierBoundTo() ([]int, error) {
	return l.indexList(keyCarrierBoundTo)
}

// CarrierBoundBy returns the ifindexes of the links bound to this
// link's carrier.
func (l Link) CarrierBoundBy() ([]int, error) {
	return l.indexList(keyCarrierBoundBy)
}

// DHCP6ClientIAID returns the link's DHCPv6 client IAID.
func (l Link) DHCP6ClientIAID() (string, error) {
	return l.scalar(keyDHCP6ClientIAID)
}

// DHCP6ClientDUID returns the link's DHCPv6 client DUID.
func (l Link) DHCP6ClientDUID() (string, error) {
	return l.scalar(keyDHCP6ClientDUID)
}
