// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/decred/dcrd/wire"
	"github.com/evonode/evod/chaincfg"
)

const (
	// ExtendedFormatVersion is the format version written by this software.
	// The version covers the wire layout and the validation rules together:
	// any change to the entry encoding, the purpose codes, or the extension
	// tags requires incrementing it.
	ExtendedFormatVersion uint8 = 1

	// MaxExtendedFormatVersion is the highest format version this software
	// understands.  Records at higher versions are carried opaquely: their
	// version survives a round trip but their payload is not parsed.
	MaxExtendedFormatVersion uint8 = 1
)

// ExtendedRegistry is the versioned multi-purpose registry.  It maps each
// purpose to an ordered list of entries; insertion order is significant
// because the first core P2P entry is the masternode's primary address.
type ExtendedRegistry struct {
	params  *chaincfg.Params
	policy  Policy
	version uint8
	entries map[Purpose][]AddressEntry
}

// Enforce ExtendedRegistry satisfying the Registry interface.
var _ Registry = (*ExtendedRegistry)(nil)

// NewExtendedRegistry creates an empty extended registry at the current
// format version for the given network with the default policy.
func NewExtendedRegistry(params *chaincfg.Params) *ExtendedRegistry {
	return NewExtendedRegistryWithPolicy(params, DefaultPolicy())
}

// NewExtendedRegistryWithPolicy creates an empty extended registry with an
// explicit policy.
func NewExtendedRegistryWithPolicy(params *chaincfg.Params, policy Policy) *ExtendedRegistry {
	return &ExtendedRegistry{
		params:  params,
		policy:  policy,
		version: ExtendedFormatVersion,
		entries: make(map[Purpose][]AddressEntry),
	}
}

// Version returns the registry's format version.
func (r *ExtendedRegistry) Version() uint8 {
	return r.version
}

// purposeKeys returns the purposes present in the registry in canonical
// (ascending code) order, which is also the serialization order.
func (r *ExtendedRegistry) purposeKeys() []Purpose {
	keys := make([]Purpose, 0, len(r.entries))
	for purpose := range r.entries {
		keys = append(keys, purpose)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// findDuplicate reports whether an equal entry exists anywhere in the
// registry, across all purposes.
func (r *ExtendedRegistry) findDuplicate(candidate *AddressEntry) bool {
	for _, entries := range r.entries {
		for i := range entries {
			if entries[i].Equal(candidate) {
				return true
			}
		}
	}
	return false
}

// validateSocketEntry applies the kind- and port-level business rules shared
// by AddEntry and Validate to a socket-address entry.
func (r *ExtendedRegistry) validateSocketEntry(entry *AddressEntry) error {
	const op = "ExtendedRegistry.validateSocketEntry"
	if !isValidAddr(entry) {
		return makeError(op, ErrBadInput, "invalid network address")
	}
	if r.params.RequireRoutableExternalIP && !isRoutable(entry) {
		return makeError(op, ErrBadInput, "address is not externally routable")
	}
	if entry.Port == 0 || isBadPort(entry.Port) {
		str := fmt.Sprintf("port %d is disallowed", entry.Port)
		return makeError(op, ErrBadPort, str)
	}
	return nil
}

// validateDomainEntry applies the domain rules to a domain entry, translating
// the specific domain failure kinds into the closed AddEntry status set:
// syntax and TLD violations surface as ErrBadInput, port policy violations as
// ErrBadPort.  The specific reason stays available via errors.Is on the
// wrapped kind.
func (r *ExtendedRegistry) validateDomainEntry(entry *AddressEntry) error {
	const op = "ExtendedRegistry.validateDomainEntry"
	endpoint := DomainEndpoint{Host: entry.Host, Port: entry.Port}
	err := endpoint.Validate(&r.policy)
	if err == nil {
		return nil
	}
	kind := ErrBadInput
	if errors.Is(err, ErrDomainBadPort) {
		kind = ErrBadPort
	}
	return RegistryError{
		Func:        op,
		Err:         fmt.Errorf("%w: %w", kind, err),
		Description: err.Error(),
	}
}

// classify builds a candidate entry from a host and port, trying the literal
// socket-address interpretation first and falling back to a domain entry when
// the host at least looks like a domain.
func classify(host string, port uint16) (AddressEntry, error) {
	const op = "ExtendedRegistry.AddEntry"
	if entry, err := NewAddressEntryFromHost(host, port); err == nil {
		return entry, nil
	}
	if !isDomainCandidate(host) {
		str := fmt.Sprintf("%q is neither a literal address nor a domain", host)
		return AddressEntry{}, makeError(op, ErrBadInput, str)
	}
	return NewAddressEntryFromDomain(host, port)
}

// AddEntry resolves the raw text token into a candidate entry for the given
// purpose, validates it, and appends it to the purpose's list.  Domain
// entries are only permitted under PlatformPurposeHTTP, duplicates are
// rejected anywhere across the whole structure, and the first entry of a
// primary-requiring purpose must be IPv4.
func (r *ExtendedRegistry) AddEntry(purpose Purpose, text string) error {
	const op = "ExtendedRegistry.AddEntry"
	if !isKnownPurpose(purpose) {
		// Unknown purposes have zero capacity, mirroring the legacy
		// registry's treatment of unsupported purposes.
		str := fmt.Sprintf("no capacity for purpose %v", purpose)
		return makeError(op, ErrMaxLimit, str)
	}

	host, port, err := splitServiceText(text, r.params.DefaultPort)
	if err != nil {
		return err
	}
	entry, err := classify(host, port)
	if err != nil {
		return err
	}

	switch entry.Type {
	case DomainAddress:
		if purpose != PlatformPurposeHTTP {
			str := fmt.Sprintf("domain entries are not permitted for purpose %v",
				purpose)
			return makeError(op, ErrBadInput, str)
		}
		if err := r.validateDomainEntry(&entry); err != nil {
			return err
		}
	default:
		if err := r.validateSocketEntry(&entry); err != nil {
			return err
		}
	}

	if r.findDuplicate(&entry) {
		str := fmt.Sprintf("entry %s is already present", entry.String())
		return makeError(op, ErrDuplicate, str)
	}
	existing := r.entries[purpose]
	if len(existing) >= r.policy.MaxEntriesPerPurpose {
		str := fmt.Sprintf("purpose %v is full [max %d]", purpose,
			r.policy.MaxEntriesPerPurpose)
		return makeError(op, ErrMaxLimit, str)
	}
	if len(existing) == 0 && requiresPrimary(purpose) && entry.Type != IPv4Address {
		str := fmt.Sprintf("first entry for purpose %v must be IPv4", purpose)
		return makeError(op, ErrBadInput, str)
	}

	if r.entries == nil {
		r.entries = make(map[Purpose][]AddressEntry)
	}
	r.entries[purpose] = append(existing, entry)
	return nil
}

// RemoveEntry removes the entry matching the raw text token by value from the
// given purpose's list.  When the removal empties the list the purpose key is
// dropped entirely, since a present-but-empty list is a structural
// malformation.
func (r *ExtendedRegistry) RemoveEntry(purpose Purpose, text string) error {
	const op = "ExtendedRegistry.RemoveEntry"
	entries, ok := r.entries[purpose]
	if !ok {
		return makeError(op, ErrNotFound, "no matching entry")
	}

	host, port, err := splitServiceText(text, r.params.DefaultPort)
	if err != nil {
		return err
	}
	candidate, err := classify(host, port)
	if err != nil {
		return err
	}

	for i := range entries {
		if !entries[i].Equal(&candidate) {
			continue
		}
		entries = append(entries[:i], entries[i+1:]...)
		if len(entries) == 0 {
			delete(r.entries, purpose)
		} else {
			r.entries[purpose] = entries
		}
		return nil
	}
	return makeError(op, ErrNotFound, "no matching entry")
}

// GetEntries returns a copy of the purpose's entries in insertion order, or
// nil for purposes without entries.
func (r *ExtendedRegistry) GetEntries(purpose Purpose) []AddressEntry {
	entries, ok := r.entries[purpose]
	if !ok {
		return nil
	}
	out := make([]AddressEntry, len(entries))
	for i := range entries {
		out[i] = entries[i].clone()
	}
	return out
}

// GetSocketEntries returns the purpose's socket-address entries, skipping
// domain entries.
func (r *ExtendedRegistry) GetSocketEntries(purpose Purpose) []AddressEntry {
	var out []AddressEntry
	for i := range r.entries[purpose] {
		if r.entries[purpose][i].Type != DomainAddress {
			out = append(out, r.entries[purpose][i].clone())
		}
	}
	return out
}

// GetDomainEndpoints returns the purpose's domain entries as
// DomainEndpoints, skipping socket-address entries.
func (r *ExtendedRegistry) GetDomainEndpoints(purpose Purpose) []DomainEndpoint {
	var out []DomainEndpoint
	for _, entry := range r.entries[purpose] {
		if entry.Type == DomainAddress {
			out = append(out, DomainEndpoint{Host: entry.Host, Port: entry.Port})
		}
	}
	return out
}

// HasEntries returns whether the purpose has any entries.  Unknown purposes
// report false.
func (r *ExtendedRegistry) HasEntries(purpose Purpose) bool {
	return len(r.entries[purpose]) > 0
}

// GetPrimary returns the first core P2P entry when it is a socket address,
// or the canonical empty sentinel.
func (r *ExtendedRegistry) GetPrimary() AddressEntry {
	entries := r.entries[CorePurposeP2P]
	if len(entries) == 0 || entries[0].Type == DomainAddress {
		return AddressEntry{}
	}
	return entries[0].clone()
}

// Validate checks every structural invariant of the registry: a known
// non-zero format version, no emptiness, no present-but-empty purpose lists,
// no duplicates anywhere, trivially valid entries, IPv4-first for the
// primary-requiring purposes, and the per-kind business rules for each entry.
// Callers deserializing untrusted bytes must treat any failure as a rejected
// record.
func (r *ExtendedRegistry) Validate() error {
	const op = "ExtendedRegistry.Validate"
	if r.version == 0 || r.version > MaxExtendedFormatVersion {
		str := fmt.Sprintf("unsupported format version %d", r.version)
		return makeError(op, ErrMalformed, str)
	}
	if len(r.entries) == 0 {
		return makeError(op, ErrMalformed, "registry is empty")
	}

	seen := make(map[string]struct{})
	for _, purpose := range r.purposeKeys() {
		entries := r.entries[purpose]
		if len(entries) == 0 {
			str := fmt.Sprintf("purpose %v has a present-but-empty entry list",
				purpose)
			return makeError(op, ErrMalformed, str)
		}
		if !isKnownPurpose(purpose) {
			str := fmt.Sprintf("unknown purpose code %d", uint8(purpose))
			return makeError(op, ErrMalformed, str)
		}
		if len(entries) > r.policy.MaxEntriesPerPurpose {
			str := fmt.Sprintf("purpose %v exceeds the entry limit [max %d]",
				purpose, r.policy.MaxEntriesPerPurpose)
			return makeError(op, ErrMalformed, str)
		}
		if requiresPrimary(purpose) && entries[0].Type != IPv4Address {
			str := fmt.Sprintf("first entry for purpose %v must be IPv4", purpose)
			return makeError(op, ErrMalformed, str)
		}

		for i := range entries {
			entry := &entries[i]
			if !entry.TriviallyValid() {
				str := fmt.Sprintf("entry %d for purpose %v fails structural "+
					"validation", i, purpose)
				return makeError(op, ErrMalformed, str)
			}

			key := fmt.Sprintf("%d|%x|%d", entry.Type, entry.payloadBytes(),
				entry.Port)
			if _, ok := seen[key]; ok {
				str := fmt.Sprintf("entry %s appears more than once", entry.String())
				return makeError(op, ErrDuplicate, str)
			}
			seen[key] = struct{}{}

			var err error
			if entry.Type == DomainAddress {
				if purpose != PlatformPurposeHTTP {
					str := fmt.Sprintf("domain entry under purpose %v", purpose)
					return makeError(op, ErrMalformed, str)
				}
				err = r.validateDomainEntry(entry)
			} else {
				err = r.validateSocketEntry(entry)
			}
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// IsEmpty returns whether the registry has no entries at all.
func (r *ExtendedRegistry) IsEmpty() bool {
	return len(r.entries) == 0
}

// Clear resets the registry to a freshly constructed empty state at the
// current format version.
func (r *ExtendedRegistry) Clear() {
	r.version = ExtendedFormatVersion
	r.entries = make(map[Purpose][]AddressEntry)
}

// Serialize writes the registry to w: the format version byte followed, for
// known versions, by the purpose map encoded as a varint purpose count and,
// per purpose in ascending code order, the purpose code, a varint entry
// count, and the entries in insertion order.  An unknown-version registry
// re-emits only its version byte since its payload was never parsed.
func (r *ExtendedRegistry) Serialize(w io.Writer) error {
	if _, err := w.Write([]byte{r.version}); err != nil {
		return err
	}
	if r.version == 0 || r.version > MaxExtendedFormatVersion {
		return nil
	}

	keys := r.purposeKeys()
	if err := wire.WriteVarInt(w, 0, uint64(len(keys))); err != nil {
		return err
	}
	for _, purpose := range keys {
		if _, err := w.Write([]byte{byte(purpose)}); err != nil {
			return err
		}
		entries := r.entries[purpose]
		if err := wire.WriteVarInt(w, 0, uint64(len(entries))); err != nil {
			return err
		}
		for i := range entries {
			if err := entries[i].Serialize(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Deserialize reads a registry from r.  Unknown format versions are accepted
// for storage but their payload is skipped, so older software can carry
// newer records without crashing; Validate reports such records as
// malformed.  Counts read from the wire are bounded before allocation.
func (r *ExtendedRegistry) Deserialize(rd io.Reader) error {
	const op = "ExtendedRegistry.Deserialize"

	var version [1]byte
	if _, err := io.ReadFull(rd, version[:]); err != nil {
		return err
	}
	r.version = version[0]
	r.entries = make(map[Purpose][]AddressEntry)
	if r.version == 0 || r.version > MaxExtendedFormatVersion {
		log.Debugf("netinfo: not parsing payload for unknown format version %d",
			r.version)
		return nil
	}

	purposeCount, err := wire.ReadVarInt(rd, 0)
	if err != nil {
		return err
	}
	if purposeCount > uint64(len(allPurposes)) {
		str := fmt.Sprintf("too many purposes [count %d, max %d]", purposeCount,
			len(allPurposes))
		return makeError(op, ErrMalformed, str)
	}

	for i := uint64(0); i < purposeCount; i++ {
		var code [1]byte
		if _, err := io.ReadFull(rd, code[:]); err != nil {
			return err
		}
		purpose := Purpose(code[0])
		if !isKnownPurpose(purpose) {
			str := fmt.Sprintf("unknown purpose code %d", code[0])
			return makeError(op, ErrMalformed, str)
		}
		if _, ok := r.entries[purpose]; ok {
			str := fmt.Sprintf("purpose %v appears more than once", purpose)
			return makeError(op, ErrMalformed, str)
		}

		entryCount, err := wire.ReadVarInt(rd, 0)
		if err != nil {
			return err
		}
		if entryCount > uint64(r.policy.MaxEntriesPerPurpose) {
			str := fmt.Sprintf("too many entries for purpose %v [count %d, max %d]",
				purpose, entryCount, r.policy.MaxEntriesPerPurpose)
			return makeError(op, ErrMalformed, str)
		}

		entries := make([]AddressEntry, entryCount)
		for j := uint64(0); j < entryCount; j++ {
			if err := entries[j].Deserialize(rd); err != nil {
				return err
			}
		}
		r.entries[purpose] = entries
	}
	return nil
}

// String returns a multi-line human-readable dump of the registry grouped by
// purpose.
func (r *ExtendedRegistry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ExtendedRegistry(version=%d)\n", r.version)
	for _, purpose := range r.purposeKeys() {
		fmt.Fprintf(&b, "    Entries(purpose=%v)\n", purpose)
		for i := range r.entries[purpose] {
			entry := &r.entries[purpose][i]
			fmt.Fprintf(&b, "      %v %s\n", entry.Type, entry.String())
		}
	}
	return b.String()
}
