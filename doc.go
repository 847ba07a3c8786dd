// Package networkd provides read-only access to the runtime state
// published by systemd-networkd under /run/systemd/netif.
//
// The daemon writes newline-delimited KEY=VALUE records into a runtime
// directory: one file for global state, one file per link keyed by
// ifindex, and one DHCP lease file per link. This package reads those
// records on demand and reports per-field results; it never writes,
// caches, or otherwise owns any of that state. The runtime directory
// lives on a memory-backed filesystem, so re-reading on every query is
// cheap by design.
//
// Queries distinguish three outcomes: a value, ErrFieldAbsent (the
// daemon knows the link but has not published that field), and
// ErrNoRecord (the daemon has no record for that scope at all).
// Callers that only care about "nothing to show" can use IsAbsent.
//
//	c := networkd.New()
//	state, err := c.OperationalState()
//	if networkd.IsAbsent(err) {
//		// networkd is not running or has no links yet
//	}
//
// A Monitor aggregates inotify watches over the runtime directory into
// a single pollable descriptor for integration with a caller-owned
// event loop. The notification contract is level-triggered: a readable
// descriptor means "something changed", after which the caller calls
// Flush and re-queries whatever state it cares about. Watch wraps the
// same mechanism in a channel for callers without their own poll loop.
package networkd
