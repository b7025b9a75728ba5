// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// splitServiceText splits a raw "host[:port]" token into its host and port
// parts without any DNS resolution.  When the port is omitted the provided
// default is used.  IPv6 literals may be wrapped in brackets whether or not a
// port is present.
func splitServiceText(text string, defaultPort uint16) (string, uint16, error) {
	const op = "splitServiceText"

	host, portStr, err := net.SplitHostPort(text)
	if err != nil {
		// No port part.  Accept a bare host, including a bracketed IPv6
		// literal.
		host = strings.TrimPrefix(strings.TrimSuffix(text, "]"), "[")
		if host == "" {
			return "", 0, makeError(op, ErrBadInput, "empty network address")
		}
		return host, defaultPort, nil
	}
	if host == "" {
		return "", 0, makeError(op, ErrBadInput, "missing host in network address")
	}
	port, err := strconv.ParseUint(portStr, 10, 16)
	if err != nil {
		str := fmt.Sprintf("invalid port in network address %q", text)
		return "", 0, makeError(op, ErrBadInput, str)
	}
	return host, uint16(port), nil
}

// isDomainCandidate returns whether the host only contains characters that
// can appear in a domain name.  Like isLiteralIPCandidate this is a cheap
// filter; hosts passing it still go through full domain validation.
func isDomainCandidate(host string) bool {
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '.' || c == '-':
		default:
			return false
		}
	}
	return len(host) > 0
}

// isValidAddr returns whether a socket-address entry passes the minimal
// validity check for its kind: IP-based kinds must not be the unspecified or
// broadcast address, and fixed payload lengths must hold.
func isValidAddr(entry *AddressEntry) bool {
	if !entry.TriviallyValid() {
		return false
	}
	switch entry.Type {
	case IPv4Address, IPv6Address, CJDNSAddress:
		netIP := net.IP(entry.Addr)
		return !netIP.IsUnspecified() && !netIP.Equal(net.IPv4bcast)
	}
	return true
}
