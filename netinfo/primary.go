// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"fmt"
	"io"
	"net"

	"github.com/evonode/evod/chaincfg"
)

// primarySerializeSize is the fixed wire size of a PrimaryRegistry: a 16-byte
// IPv4-mapped address followed by a big-endian port.  The layout is identical
// to a bare socket address from earlier schema generations, which is what
// keeps the legacy format backward compatible.
const primarySerializeSize = 18

// PrimaryRegistry is the legacy single-slot registry.  It holds exactly one
// mandatory IPv4 core P2P address, or nothing.  The zero value (with network
// parameters attached through NewPrimaryRegistry) is an empty registry.
type PrimaryRegistry struct {
	params *chaincfg.Params
	policy Policy
	addr   AddressEntry
}

// Enforce PrimaryRegistry satisfying the Registry interface.
var _ Registry = (*PrimaryRegistry)(nil)

// NewPrimaryRegistry creates an empty legacy registry for the given network
// with the default policy.
func NewPrimaryRegistry(params *chaincfg.Params) *PrimaryRegistry {
	return NewPrimaryRegistryWithPolicy(params, DefaultPolicy())
}

// NewPrimaryRegistryWithPolicy creates an empty legacy registry with an
// explicit policy.
func NewPrimaryRegistryWithPolicy(params *chaincfg.Params, policy Policy) *PrimaryRegistry {
	return &PrimaryRegistry{params: params, policy: policy}
}

// validateService applies the legacy address rules to a candidate entry: it
// must be a valid, routable (when the network demands it) IPv4 address, and
// its port must honor the network port rule.  On mainnet the canonical
// mainnet port is mandatory; on every other network the mainnet port is
// forbidden, which prevents accidental cross-network registrations.
func (r *PrimaryRegistry) validateService(entry *AddressEntry) error {
	const op = "PrimaryRegistry.validateService"
	if !isValidAddr(entry) {
		return makeError(op, ErrBadInput, "invalid network address")
	}
	if entry.Type != IPv4Address {
		return makeError(op, ErrBadInput, "legacy registry only stores IPv4 addresses")
	}
	if r.params.RequireRoutableExternalIP && !isRoutable(entry) {
		return makeError(op, ErrBadInput, "address is not externally routable")
	}

	if entry.Port == 0 && !r.policy.AllowZeroPort {
		return makeError(op, ErrBadPort, "port must not be zero")
	}
	mainNetPort := chaincfg.MainNetParams.DefaultPort
	if r.params.IsMainNet() {
		if entry.Port != mainNetPort {
			str := fmt.Sprintf("mainnet requires port %d, got %d", mainNetPort,
				entry.Port)
			return makeError(op, ErrBadPort, str)
		}
	} else if entry.Port == mainNetPort {
		str := fmt.Sprintf("port %d is reserved for mainnet", mainNetPort)
		return makeError(op, ErrBadPort, str)
	}

	return nil
}

// AddEntry resolves the raw text token into a literal socket address (DNS
// lookup is never performed), validates it under the legacy rules, and stores
// it.  Only CorePurposeP2P is supported; every other purpose has zero
// capacity and fails with ErrMaxLimit, as does adding when the single slot is
// already occupied.
func (r *PrimaryRegistry) AddEntry(purpose Purpose, text string) error {
	const op = "PrimaryRegistry.AddEntry"
	if purpose != CorePurposeP2P {
		str := fmt.Sprintf("legacy registry has no capacity for purpose %v", purpose)
		return makeError(op, ErrMaxLimit, str)
	}
	if !r.IsEmpty() {
		return makeError(op, ErrMaxLimit, "legacy registry slot is already occupied")
	}

	host, port, err := splitServiceText(text, r.params.DefaultPort)
	if err != nil {
		return err
	}
	entry, err := NewAddressEntryFromHost(host, port)
	if err != nil {
		return err
	}
	if err := r.validateService(&entry); err != nil {
		return err
	}

	r.addr = entry
	return nil
}

// RemoveEntry removes the stored address when it matches the given token by
// value.  It fails with ErrNotFound when the registry is empty or the token
// names a different endpoint.
func (r *PrimaryRegistry) RemoveEntry(purpose Purpose, text string) error {
	const op = "PrimaryRegistry.RemoveEntry"
	if purpose != CorePurposeP2P || r.IsEmpty() {
		return makeError(op, ErrNotFound, "no matching entry")
	}
	host, port, err := splitServiceText(text, r.params.DefaultPort)
	if err != nil {
		return err
	}
	entry, err := NewAddressEntryFromHost(host, port)
	if err != nil {
		return err
	}
	if !entry.Equal(&r.addr) {
		return makeError(op, ErrNotFound, "no matching entry")
	}
	r.addr = AddressEntry{}
	return nil
}

// GetEntries returns the stored address as a single-element list for the core
// P2P purpose.  Other purposes, and the empty registry, return nil.
func (r *PrimaryRegistry) GetEntries(purpose Purpose) []AddressEntry {
	if purpose != CorePurposeP2P || r.IsEmpty() {
		return nil
	}
	return []AddressEntry{r.addr.clone()}
}

// HasEntries returns whether an address is stored for the purpose.
func (r *PrimaryRegistry) HasEntries(purpose Purpose) bool {
	return purpose == CorePurposeP2P && !r.IsEmpty()
}

// GetPrimary returns a copy of the stored address, or the canonical empty
// sentinel when none is set.
func (r *PrimaryRegistry) GetPrimary() AddressEntry {
	return r.addr.clone()
}

// Validate re-runs the legacy address rules against the stored value.  An
// empty registry is malformed, not valid-but-empty: every masternode must
// have a reachable core address.
func (r *PrimaryRegistry) Validate() error {
	const op = "PrimaryRegistry.Validate"
	if r.IsEmpty() {
		return makeError(op, ErrMalformed, "legacy registry is empty")
	}
	return r.validateService(&r.addr)
}

// IsEmpty returns whether the registry holds no address.
func (r *PrimaryRegistry) IsEmpty() bool {
	return r.addr.IsEmpty()
}

// Clear resets the registry to the empty state.
func (r *PrimaryRegistry) Clear() {
	r.addr = AddressEntry{}
}

// Key returns the canonical byte key of the stored address for use in index
// maps.  It is the registry's own serialization.
func (r *PrimaryRegistry) Key() []byte {
	key := make([]byte, 0, primarySerializeSize)
	key = append(key, ipv4Mapped(&r.addr)...)
	key = append(key, byte(r.addr.Port>>8), byte(r.addr.Port))
	return key
}

// ipv4Mapped returns the entry's address bytes as a 16-byte IPv4-mapped
// slice.  The empty entry maps to all zeroes.
func ipv4Mapped(entry *AddressEntry) []byte {
	if len(entry.Addr) == 0 {
		return make([]byte, 16)
	}
	return net.IP(entry.Addr).To16()
}

// Serialize writes the registry to w as exactly the encoding of one socket
// address with no extra framing, preserving byte compatibility with a bare
// address field from earlier schema generations.
func (r *PrimaryRegistry) Serialize(w io.Writer) error {
	if _, err := w.Write(ipv4Mapped(&r.addr)); err != nil {
		return err
	}
	return writePort(w, r.addr.Port)
}

// Deserialize reads a registry from r.  An all-zero buffer decodes to the
// empty registry.  The stored kind is re-derived from the address bytes, so a
// non-IPv4 payload decodes but is rejected by Validate rather than trusted.
func (r *PrimaryRegistry) Deserialize(rd io.Reader) error {
	var buf [16]byte
	if _, err := io.ReadFull(rd, buf[:]); err != nil {
		return err
	}
	port, err := readPort(rd)
	if err != nil {
		return err
	}

	ip := net.IP(buf[:])
	if ip.IsUnspecified() && port == 0 {
		r.addr = AddressEntry{}
		return nil
	}
	addrType := deriveAddressType(UnknownAddressType, buf[:])
	addr := buf[:]
	if addrType == IPv4Address {
		addr = ip.To4()
	}
	r.addr = AddressEntry{Type: addrType, Addr: addr, Port: port}
	return nil
}

// String returns a multi-line human-readable dump of the registry.  The
// output fakes the purpose segmentation of the extended format so dumps stay
// consistent across generations.
func (r *PrimaryRegistry) String() string {
	return fmt.Sprintf("PrimaryRegistry()\n"+
		"    Entries(purpose=%v)\n"+
		"      %s\n", CorePurposeP2P, r.addr.String())
}
