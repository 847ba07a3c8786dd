package config

import (
	"fmt"
	"path/filepath"
	"strconv"
)

// DefaultRoot is the runtime directory systemd-networkd publishes its
// state under when it runs in the default network namespace.
const DefaultRoot = "/run/systemd/netif"

// RuntimeDirs holds the paths of a networkd runtime state tree:
//
//	{base}/state        - global key/value state
//	{base}/links/{N}    - per-link state, keyed by decimal ifindex
//	{base}/leases/{N}   - per-link DHCP lease state
//
// RuntimeDirs is immutable after construction and performs no I/O;
// it is pure path derivation. Use NewRuntimeDirs or DirsForNamespace
// to create one.
type RuntimeDirs struct {
	base   string
	state  string
	links  string
	leases string
}

// DefaultRuntimeDirs returns RuntimeDirs rooted at DefaultRoot.
func DefaultRuntimeDirs() RuntimeDirs {
	dirs, err := NewRuntimeDirs(DefaultRoot)
	if err != nil {
		panic(fmt.Sprintf("DefaultRuntimeDirs: %v", err))
	}
	return dirs
}

// DirsForNamespace returns the runtime tree for a networkd instance
// running in the named network namespace. The empty namespace selects
// the default root; a non-empty namespace qualifies the root so that
// isolated daemon instances do not collide.
func DirsForNamespace(namespace string) RuntimeDirs {
	if namespace == "" {
		return DefaultRuntimeDirs()
	}
	dirs, err := NewRuntimeDirs(DefaultRoot + "." + namespace)
	if err != nil {
		panic(fmt.Sprintf("DirsForNamespace(%q): %v", namespace, err))
	}
	return dirs
}

// NewRuntimeDirs creates RuntimeDirs rooted at the given base path.
// All paths are derived from the base. Returns an error if base is
// empty or not absolute.
func NewRuntimeDirs(base string) (RuntimeDirs, error) {
	if base == "" {
		return RuntimeDirs{}, fmt.Errorf("base path cannot be empty")
	}
	if !filepath.IsAbs(base) {
		return RuntimeDirs{}, fmt.Errorf("base path must be absolute, got %q", base)
	}
	return RuntimeDirs{
		base:   base,
		state:  filepath.Join(base, "state"),
		links:  filepath.Join(base, "links"),
		leases: filepath.Join(base, "leases"),
	}, nil
}

// Base returns the runtime root path.
func (d RuntimeDirs) Base() string { return d.base }

// StateFile returns the path of the global state file.
func (d RuntimeDirs) StateFile() string { return d.state }

// Links returns the per-link state directory.
func (d RuntimeDirs) Links() string { return d.links }

// Leases returns the per-link lease directory.
func (d RuntimeDirs) Leases() string { return d.leases }

// LinkFile returns the state file path for an ifindex.
func (d RuntimeDirs) LinkFile(ifindex int) string {
	return filepath.Join(d.links, strconv.Itoa(ifindex))
}

// LeaseFile returns the lease file path for an ifindex.
func (d RuntimeDirs) LeaseFile(ifindex int) string {
	return filepath.Join(d.leases, strconv.Itoa(ifindex))
}
