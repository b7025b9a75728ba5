// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"bytes"
	"encoding/base32"
	"fmt"
	"net"
	"strings"

	"golang.org/x/crypto/sha3"
)

const (
	// torV3HostLen is the length of a Tor v3 hostname without the .onion
	// suffix: 35 bytes (public key, checksum, version) in base32.
	torV3HostLen = 56

	// torV3VersionByte is the version byte embedded in Tor v3 hostnames.
	torV3VersionByte = 0x03

	// i2pHostLen is the length of an I2P b32 hostname without the .b32.i2p
	// suffix: a 32-byte hash in unpadded base32.
	i2pHostLen = 52
)

// i2pEncoding is the unpadded base32 alphabet used by I2P b32 hostnames.
var i2pEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// calcTorV3Checksum computes the checksum embedded in a Tor v3 hostname from
// the service's ed25519 public key.
func calcTorV3Checksum(publicKey [32]byte) [2]byte {
	h := sha3.New256()
	h.Write([]byte(".onion checksum"))
	h.Write(publicKey[:])
	h.Write([]byte{torV3VersionByte})
	var checksum [2]byte
	copy(checksum[:], h.Sum(nil)[:2])
	return checksum
}

// isLiteralIPCandidate returns whether the host only contains characters that
// can appear in an IPv4 or IPv6 literal.  It is a cheap filter, not a parse:
// hosts passing it still go through full literal parsing.
func isLiteralIPCandidate(host string) bool {
	for i := 0; i < len(host); i++ {
		c := host[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		case c == '.' || c == ':' || c == '%':
		default:
			return false
		}
	}
	return len(host) > 0
}

// encodeHost converts a literal host string into its address type and raw
// address bytes without performing any DNS resolution.  Tor v3 and I2P
// hostnames are recognized by their well-known suffixes and decoded; anything
// else must be an IP literal.  UnknownAddressType is returned for hosts that
// are not expressible as a literal socket address.
func encodeHost(host string) (AddressType, []byte) {
	if strings.HasSuffix(host, ".onion") {
		base := strings.TrimSuffix(host, ".onion")
		if len(base) != torV3HostLen {
			return UnknownAddressType, nil
		}
		decoded, err := base32.StdEncoding.DecodeString(strings.ToUpper(base))
		if err != nil || len(decoded) != 35 {
			return UnknownAddressType, nil
		}
		if decoded[34] != torV3VersionByte {
			return UnknownAddressType, nil
		}
		var publicKey [32]byte
		copy(publicKey[:], decoded[:32])
		checksum := calcTorV3Checksum(publicKey)
		if !bytes.Equal(checksum[:], decoded[32:34]) {
			return UnknownAddressType, nil
		}
		return TorV3Address, decoded[:32]
	}

	if strings.HasSuffix(host, ".b32.i2p") {
		base := strings.TrimSuffix(host, ".b32.i2p")
		if len(base) != i2pHostLen {
			return UnknownAddressType, nil
		}
		decoded, err := i2pEncoding.DecodeString(strings.ToUpper(base))
		if err != nil || len(decoded) != 32 {
			return UnknownAddressType, nil
		}
		return I2PAddress, decoded
	}

	if !isLiteralIPCandidate(host) {
		return UnknownAddressType, nil
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return UnknownAddressType, nil
	}
	if ip4 := ip.To4(); ip4 != nil {
		return IPv4Address, ip4
	}
	ip = ip.To16()
	if ip[0] == 0xfc {
		return CJDNSAddress, ip
	}
	return IPv6Address, ip
}

// hostString renders the raw address bytes of the given type back into the
// textual host form accepted by encodeHost.
func hostString(addrType AddressType, addr []byte) string {
	switch addrType {
	case IPv4Address, IPv6Address, CJDNSAddress:
		return net.IP(addr).String()
	case TorV3Address:
		var publicKey [32]byte
		copy(publicKey[:], addr)
		checksum := calcTorV3Checksum(publicKey)
		var torAddressBytes [35]byte
		copy(torAddressBytes[:32], publicKey[:])
		copy(torAddressBytes[32:34], checksum[:])
		torAddressBytes[34] = torV3VersionByte
		return strings.ToLower(base32.StdEncoding.EncodeToString(torAddressBytes[:])) + ".onion"
	case I2PAddress:
		return strings.ToLower(i2pEncoding.EncodeToString(addr)) + ".b32.i2p"
	}
	return fmt.Sprintf("unsupported address type %d, %x", addrType, addr)
}
