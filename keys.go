package networkd

// Field keys written by the daemon. The vocabulary is fixed by the
// writer; values are plain ASCII and need no unescaping.
const (
	keyAdminState       = "ADMIN_STATE"
	keyOperState        = "OPER_STATE"
	keyCarrierState     = "CARRIER_STATE"
	keyAddressState     = "ADDRESS_STATE"
	keyIPv4AddressState = "IPV4_ADDRESS_STATE"
	keyIPv6AddressState = "IPV6_ADDRESS_STATE"
	keyOnlineState      = "ONLINE_STATE"

	keyRequiredForOnline          = "REQUIRED_FOR_ONLINE"
	keyRequiredOperStateForOnline = "REQUIRED_OPER_STATE_FOR_ONLINE"
	keyRequiredFamilyForOnline    = "REQUIRED_FAMILY_FOR_ONLINE"
	keyActivationPolicy           = "ACTIVATION_POLICY"
	keyNetworkFile                = "NETWORK_FILE"

	keyDNS             = "DNS"
	keyNTP             = "NTP"
	keySIP             = "SIP"
	keyDomains         = "DOMAINS"
	keyRouteDomains    = "ROUTE_DOMAINS"
	keyDNSDefaultRoute = "DNS_DEFAULT_ROUTE"

	keyLLMNR      = "LLMNR"
	keyMDNS       = "MDNS"
	keyDNSOverTLS = "DNS_OVER_TLS"
	keyDNSSEC     = "DNSSEC"
	keyDNSSECNTA  = "DNSSEC_NTA"

	keyCarrierBoundTo = "CARRIER_BOUND_TO"
	keyCarrierBoundBy = "CARRIER_BOUND_BY"

	keyDHCP6ClientIAID = "DHCP6_CLIENT_IAID"
	keyDHCP6ClientDUID = "DHCP6_CLIENT_DUID"
)
