// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"bytes"
	"fmt"
	"io"
	"net"
	"strings"

	"github.com/decred/dcrd/wire"
)

// AddressType identifies the network an address entry belongs to.  The socket
// kinds use the BIP155 network IDs so serialized entries stay compatible with
// addrv2-style consumers.  Extension kinds start at 0xd0 to avoid colliding
// with future BIP155 assignments.
type AddressType uint8

const (
	// UnknownAddressType is the zero value and marks an entry whose kind
	// could not be determined.  Entries of this type are never valid.
	UnknownAddressType AddressType = 0x00

	// IPv4Address is a plain IPv4 socket address.
	IPv4Address AddressType = 0x01

	// IPv6Address is a plain IPv6 socket address that is not part of an
	// overlay network range.
	IPv6Address AddressType = 0x02

	// TorV3Address is a Tor v3 hidden service, stored as the 32-byte ed25519
	// public key of the service.
	TorV3Address AddressType = 0x04

	// I2PAddress is an I2P endpoint, stored as the 32-byte SHA-256 hash of
	// its base64 destination.
	I2PAddress AddressType = 0x05

	// CJDNSAddress is a CJDNS overlay address: an IPv6 address in fc00::/8.
	CJDNSAddress AddressType = 0x06

	// DomainAddress is a domain name and port.  Domains are an extension to
	// the BIP155 kinds and are only permitted for the platform HTTP API
	// purpose.
	DomainAddress AddressType = 0xd0
)

// addressPayloadLen returns the fixed payload length for socket-address kinds
// and false for kinds whose payloads are not fixed length (domains) or not
// recognized.
func addressPayloadLen(addrType AddressType) (int, bool) {
	switch addrType {
	case IPv4Address:
		return 4, true
	case IPv6Address, CJDNSAddress:
		return 16, true
	case TorV3Address, I2PAddress:
		return 32, true
	}
	return 0, false
}

// String returns the AddressType as a human-readable name.
func (t AddressType) String() string {
	switch t {
	case UnknownAddressType:
		return "unknown"
	case IPv4Address:
		return "ipv4"
	case IPv6Address:
		return "ipv6"
	case TorV3Address:
		return "torv3"
	case I2PAddress:
		return "i2p"
	case CJDNSAddress:
		return "cjdns"
	case DomainAddress:
		return "domain"
	}
	return fmt.Sprintf("addresstype%d", uint8(t))
}

// AddressEntry is one network endpoint of a masternode: either a socket
// address typed by network family or a domain name with a port.  The zero
// value is the canonical empty (invalid) entry.
//
// The Type tag is only authoritative for entries built through the
// constructors.  Entries rebuilt from untrusted bytes must pass
// TriviallyValid, which re-derives the kind from the payload, before being
// trusted.
type AddressEntry struct {
	// Type tags which payload variant is populated.
	Type AddressType

	// Addr holds the raw address bytes for socket-address kinds.  Its length
	// is fixed by the type.  Empty for domain entries.
	Addr []byte

	// Host holds the lower-cased domain name for domain entries.  Empty for
	// socket-address kinds.
	Host string

	// Port is the TCP port of the endpoint.
	Port uint16
}

// deriveAddressType determines the address type from raw payload bytes.  The
// claimed type is only used as a hint to disambiguate payload lengths shared
// by multiple kinds; it is never trusted on its own.
func deriveAddressType(claimed AddressType, addr []byte) AddressType {
	switch len(addr) {
	case 4:
		return IPv4Address
	case 16:
		if ip4 := net.IP(addr).To4(); ip4 != nil {
			return IPv4Address
		}
		if addr[0] == 0xfc {
			return CJDNSAddress
		}
		return IPv6Address
	case 32:
		if claimed == TorV3Address || claimed == I2PAddress {
			return claimed
		}
	}
	return UnknownAddressType
}

// NewAddressEntryFromHost creates an entry from a literal host and port,
// deriving the kind from the host itself.  No DNS resolution is performed.
// An error with kind ErrBadInput is returned when the host is not expressible
// as a literal socket address.
func NewAddressEntryFromHost(host string, port uint16) (AddressEntry, error) {
	const op = "NewAddressEntryFromHost"
	addrType, addr := encodeHost(host)
	if addrType == UnknownAddressType {
		str := fmt.Sprintf("host %q is not a literal socket address", host)
		return AddressEntry{}, makeError(op, ErrBadInput, str)
	}
	return AddressEntry{Type: addrType, Addr: addr, Port: port}, nil
}

// NewAddressEntryFromDomain creates a domain entry from a host and port.  The
// host is lower-cased so equality is case-insensitive downstream.  The domain
// character rules are not enforced here; that is DomainEndpoint's job during
// validation.  The port, however, must never be zero for a domain entry.
func NewAddressEntryFromDomain(host string, port uint16) (AddressEntry, error) {
	const op = "NewAddressEntryFromDomain"
	if port == 0 {
		return AddressEntry{}, makeError(op, ErrBadPort, "domain entries require a non-zero port")
	}
	return AddressEntry{Type: DomainAddress, Host: strings.ToLower(host), Port: port}, nil
}

// IsEmpty returns whether the entry is the canonical empty sentinel.
func (e *AddressEntry) IsEmpty() bool {
	return e.Type == UnknownAddressType && len(e.Addr) == 0 && e.Host == "" &&
		e.Port == 0
}

// TriviallyValid returns whether the entry's tag truthfully describes its
// payload and the payload passes its own minimal validity check.  This is a
// structural check only: it does not enforce business rules such as
// routability or the port policy, which are the owning registry's job.
func (e *AddressEntry) TriviallyValid() bool {
	switch e.Type {
	case DomainAddress:
		if len(e.Addr) != 0 || e.Port == 0 {
			return false
		}
		if e.Host != strings.ToLower(e.Host) {
			return false
		}
		return validateDomainHost(e.Host) == nil

	case IPv4Address, IPv6Address, TorV3Address, I2PAddress, CJDNSAddress:
		if e.Host != "" {
			return false
		}
		wantLen, ok := addressPayloadLen(e.Type)
		if !ok || len(e.Addr) != wantLen {
			return false
		}
		// Never trust the stored tag: it must match the type derived from
		// the payload bytes themselves.
		return deriveAddressType(e.Type, e.Addr) == e.Type
	}
	return false
}

// clone returns a copy of the entry whose address bytes do not alias the
// original.  Accessors hand out clones so callers cannot mutate validated
// state through the returned slices.
func (e *AddressEntry) clone() AddressEntry {
	out := *e
	if len(e.Addr) > 0 {
		out.Addr = append([]byte(nil), e.Addr...)
	}
	return out
}

// payloadBytes returns the payload in the form used for ordering: the raw
// address bytes for socket kinds or the domain text for domain entries.
func (e *AddressEntry) payloadBytes() []byte {
	if e.Type == DomainAddress {
		return []byte(e.Host)
	}
	return e.Addr
}

// Compare defines a total order over entries as (type, payload, port)
// lexicographic.  It returns -1, 0, or 1 depending on whether the entry sorts
// before, equal to, or after the other entry.  This order is what duplicate
// detection and canonical storage order are built on.
func (e *AddressEntry) Compare(other *AddressEntry) int {
	switch {
	case e.Type < other.Type:
		return -1
	case e.Type > other.Type:
		return 1
	}
	if c := bytes.Compare(e.payloadBytes(), other.payloadBytes()); c != 0 {
		return c
	}
	switch {
	case e.Port < other.Port:
		return -1
	case e.Port > other.Port:
		return 1
	}
	return 0
}

// Equal returns whether both entries have the same kind and payload.
func (e *AddressEntry) Equal(other *AddressEntry) bool {
	return e.Compare(other) == 0
}

// String returns the entry in host:port form.  Domain hosts render as-is and
// socket kinds render in their canonical literal form.
func (e *AddressEntry) String() string {
	if e.IsEmpty() {
		return "(empty)"
	}
	host := e.Host
	if e.Type != DomainAddress {
		host = hostString(e.Type, e.Addr)
	}
	return net.JoinHostPort(host, fmt.Sprintf("%d", e.Port))
}

// writePort serializes a port as an unsigned 16-bit big-endian integer, the
// network byte order used for ports throughout the format.
func writePort(w io.Writer, port uint16) error {
	_, err := w.Write([]byte{byte(port >> 8), byte(port)})
	return err
}

// readPort deserializes a big-endian 16-bit port.
func readPort(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return uint16(buf[0])<<8 | uint16(buf[1]), nil
}

// Serialize writes the entry to w: a one-byte kind tag followed by the
// kind-specific payload encoding and the port.  An entry whose kind is not
// recognized serializes as the bare tag with no payload, mirroring how
// deserialization consumes nothing after an unrecognized tag.
func (e *AddressEntry) Serialize(w io.Writer) error {
	const op = "AddressEntry.Serialize"
	if _, err := w.Write([]byte{byte(e.Type)}); err != nil {
		return err
	}

	switch e.Type {
	case DomainAddress:
		if len(e.Host) > maxDomainLen {
			str := fmt.Sprintf("invalid domain length: %d", len(e.Host))
			return makeError(op, ErrMalformed, str)
		}
		err := wire.WriteVarString(w, 0, e.Host)
		if err != nil {
			return err
		}

	case IPv4Address, IPv6Address, TorV3Address, I2PAddress, CJDNSAddress:
		wantLen, _ := addressPayloadLen(e.Type)
		if len(e.Addr) != wantLen {
			str := fmt.Sprintf("invalid %v address length: %d", e.Type, len(e.Addr))
			return makeError(op, ErrMalformed, str)
		}
		if _, err := w.Write(e.Addr); err != nil {
			return err
		}

	default:
		// Unrecognized kinds carry no payload.
		return nil
	}

	return writePort(w, e.Port)
}

// Deserialize reads an entry from r.  An unrecognized tag byte resets the
// entry to the empty state and consumes no further bytes so malformed or
// from-the-future records can be skipped gracefully by validation rather than
// aborting the whole parse.
func (e *AddressEntry) Deserialize(r io.Reader) error {
	*e = AddressEntry{}

	var tag [1]byte
	if _, err := io.ReadFull(r, tag[:]); err != nil {
		return err
	}
	addrType := AddressType(tag[0])

	switch addrType {
	case DomainAddress:
		host, err := wire.ReadAsciiVarString(r, 0, maxDomainLen)
		if err != nil {
			return err
		}
		e.Host = host

	case IPv4Address, IPv6Address, TorV3Address, I2PAddress, CJDNSAddress:
		wantLen, _ := addressPayloadLen(addrType)
		addr := make([]byte, wantLen)
		if _, err := io.ReadFull(r, addr); err != nil {
			return err
		}
		e.Addr = addr

	default:
		log.Debugf("netinfo: skipping entry with unknown address type %#x", tag[0])
		return nil
	}

	port, err := readPort(r)
	if err != nil {
		return err
	}
	e.Type = addrType
	e.Port = port
	return nil
}

// SerializeSize returns the number of bytes Serialize would produce for the
// entry.
func (e *AddressEntry) SerializeSize() int {
	switch e.Type {
	case DomainAddress:
		return 1 + wire.VarIntSerializeSize(uint64(len(e.Host))) + len(e.Host) + 2
	case IPv4Address, IPv6Address, TorV3Address, I2PAddress, CJDNSAddress:
		payloadLen, _ := addressPayloadLen(e.Type)
		return 1 + payloadLen + 2
	}
	return 1
}
