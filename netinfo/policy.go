// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

// Policy bundles the validation knobs that are deployment decisions rather
// than wire-format constants.  Changing a policy value does not require a
// format version bump: the bytes on the wire stay the same, only what the
// local node accepts changes.
type Policy struct {
	// MaxEntriesPerPurpose bounds the entry list of each purpose.  This is a
	// denial-of-service control since registries appear inside broadcast
	// transactions.
	MaxEntriesPerPurpose int

	// BlockedTLDs lists domain suffixes that must not appear in domain
	// entries.  The .onion and .i2p suffixes are included because those
	// endpoints must be expressed as their proper address kinds.
	BlockedTLDs []string

	// AllowedPlainPorts lists ports that are acceptable for domain entries
	// even though they are on the disallowed port list or below the
	// privileged threshold.
	AllowedPlainPorts []uint16

	// AllowZeroPort permits port zero on the legacy single-slot registry.
	// Historical deployments disagreed on this; the current default rejects
	// it.
	AllowZeroPort bool
}

// DefaultPolicy returns the policy enforced by current deployments: at most
// 32 entries per purpose, the union of the historical TLD blocklists, and
// the standard HTTP(S) ports allow-listed for domains.
func DefaultPolicy() Policy {
	return Policy{
		MaxEntriesPerPurpose: 32,
		BlockedTLDs: []string{
			".local",
			".intranet",
			".internal",
			".private",
			".corp",
			".home",
			".lan",
			".home.arpa",
			".onion",
			".i2p",
		},
		AllowedPlainPorts: []uint16{80, 443},
		AllowZeroPort:     false,
	}
}

// isAllowedPlainPort returns whether the port is on the explicit allow-list
// for domain entries.
func (p *Policy) isAllowedPlainPort(port uint16) bool {
	for _, allowed := range p.AllowedPlainPorts {
		if port == allowed {
			return true
		}
	}
	return false
}
