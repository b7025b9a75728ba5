// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import "fmt"

// Purpose classifies why an address is published.  The integer encoding of
// these values is part of the wire format and must never be renumbered
// without a format version bump.
type Purpose uint8

const (
	// CorePurposeP2P is the core P2P identity address.  Mandatory on all
	// masternodes.
	CorePurposeP2P Purpose = 0

	// PlatformPurposeP2P is the platform P2P address.  Mandatory on evo
	// nodes.
	PlatformPurposeP2P Purpose = 1

	// PlatformPurposeHTTP is the platform HTTP API endpoint.  Optional, and
	// the only purpose that may carry domain entries.
	PlatformPurposeHTTP Purpose = 2
)

// allPurposes lists every known purpose in canonical (wire) order.
var allPurposes = []Purpose{CorePurposeP2P, PlatformPurposeP2P, PlatformPurposeHTTP}

// isKnownPurpose returns whether the purpose is one of the recognized codes.
func isKnownPurpose(purpose Purpose) bool {
	switch purpose {
	case CorePurposeP2P, PlatformPurposeP2P, PlatformPurposeHTTP:
		return true
	}
	return false
}

// requiresPrimary returns whether the first entry stored for the purpose must
// be an IPv4 socket address.
func requiresPrimary(purpose Purpose) bool {
	return purpose == CorePurposeP2P || purpose == PlatformPurposeP2P
}

// String returns the Purpose as a human-readable name.
func (p Purpose) String() string {
	switch p {
	case CorePurposeP2P:
		return "CORE_P2P"
	case PlatformPurposeP2P:
		return "PLATFORM_P2P"
	case PlatformPurposeHTTP:
		return "PLATFORM_HTTP"
	}
	return fmt.Sprintf("UNKNOWN_PURPOSE_%d", uint8(p))
}
