// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"fmt"
	"strings"
)

const (
	// minDomainLen and maxDomainLen bound the total length of a domain name
	// in bytes, per RFC1035 with the conventional 253-byte presentation
	// limit.
	minDomainLen = 4
	maxDomainLen = 253

	// maxLabelLen bounds each dot-separated label, per RFC1035.
	maxLabelLen = 63
)

// domainSafeChars is the character set permitted in a domain name after case
// folding.
const domainSafeChars = "abcdefghijklmnopqrstuvwxyz0123456789.-"

// DomainEndpoint is the domain-name-and-port payload of a domain-kind address
// entry.  The host is stored lower-cased so equality is case-insensitive
// without needing case-insensitive comparators downstream.
type DomainEndpoint struct {
	Host string
	Port uint16
}

// NewDomainEndpoint creates a DomainEndpoint, lower-casing the host.  It does
// not validate; callers validate explicitly with the policy in effect.
func NewDomainEndpoint(host string, port uint16) DomainEndpoint {
	return DomainEndpoint{Host: strings.ToLower(host), Port: port}
}

// validateDomainHost checks the structural RFC1035-derived rules for a
// lower-cased domain name: total length, character set, dot placement, label
// count, label length, and label hyphen placement.  Policy rules (the TLD
// blocklist and the port policy) are layered on top by Validate.
func validateDomainHost(host string) error {
	const op = "validateDomainHost"
	if len(host) < minDomainLen || len(host) > maxDomainLen {
		str := fmt.Sprintf("domain length %d outside [%d, %d]", len(host),
			minDomainLen, maxDomainLen)
		return makeError(op, ErrDomainLength, str)
	}
	for i := 0; i < len(host); i++ {
		if !strings.ContainsRune(domainSafeChars, rune(host[i])) {
			str := fmt.Sprintf("prohibited character %q in domain", host[i])
			return makeError(op, ErrDomainChar, str)
		}
	}
	if host[0] == '.' || host[len(host)-1] == '.' {
		return makeError(op, ErrDomainCharPos, "domain starts or ends with a dot")
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return makeError(op, ErrDomainDotless, "domain has fewer than two labels")
	}
	for _, label := range labels {
		if len(label) == 0 || len(label) > maxLabelLen {
			str := fmt.Sprintf("label length %d outside [1, %d]", len(label),
				maxLabelLen)
			return makeError(op, ErrDomainLabelLength, str)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			str := fmt.Sprintf("label %q starts or ends with a hyphen", label)
			return makeError(op, ErrDomainLabelCharPos, str)
		}
	}
	return nil
}

// hasBlockedTLD returns whether the host ends in one of the blocklisted
// suffixes.
func hasBlockedTLD(host string, blocklist []string) bool {
	for _, tld := range blocklist {
		if strings.HasSuffix(host, tld) {
			return true
		}
	}
	return false
}

// Validate checks the endpoint against the structural domain rules and the
// given policy.  A stored host that is not already lower-case fails with
// ErrDomainChar since direct field mutation bypassed the constructor.  The
// port must be non-zero and either off the disallowed port list or on the
// policy's explicit allow-list.
func (d *DomainEndpoint) Validate(policy *Policy) error {
	const op = "DomainEndpoint.Validate"
	if d.Host != strings.ToLower(d.Host) {
		return makeError(op, ErrDomainChar, "stored domain is not lower-case")
	}
	if err := validateDomainHost(d.Host); err != nil {
		return err
	}
	if hasBlockedTLD(d.Host, policy.BlockedTLDs) {
		str := fmt.Sprintf("domain %q ends in a blocklisted suffix", d.Host)
		return makeError(op, ErrDomainBadTLD, str)
	}
	if d.Port == 0 {
		return makeError(op, ErrDomainBadPort, "domain port must not be zero")
	}
	if isBadPort(d.Port) && !policy.isAllowedPlainPort(d.Port) {
		str := fmt.Sprintf("domain port %d is disallowed", d.Port)
		return makeError(op, ErrDomainBadPort, str)
	}
	return nil
}

// String returns the endpoint in host:port form.
func (d *DomainEndpoint) String() string {
	return fmt.Sprintf("%s:%d", d.Host, d.Port)
}
