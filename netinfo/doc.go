// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package netinfo implements the masternode network-address registry.

A masternode publishes the network endpoints it is reachable through as part
of its on-chain registration.  Each endpoint is tagged with a purpose (core
P2P, platform P2P, or the platform HTTP API) and is either a literal socket
address (IPv4, IPv6, Tor v3, I2P, or CJDNS) or, for the HTTP API only, a
domain name and port.

Two registry generations exist and both are provided here behind the Registry
interface.  PrimaryRegistry is the legacy single-slot format that stores
exactly one IPv4 core P2P address and is byte-compatible on the wire with a
bare socket address.  ExtendedRegistry is the versioned multi-entry format
that maps purposes to ordered entry lists.  SelectRegistry picks the
implementation that governs a given record version so callers do not need to
know which generation is in effect.

All types in this package are pure in-memory value types.  They perform no
socket I/O and never resolve DNS: hostnames embedded in consensus-relevant
data must not trigger lookups during validation.  Domain entries are stored,
not resolved; resolution is the networking layer's concern at connection
time.  The types provide no internal synchronization, so concurrent mutation
of a single registry instance must be serialized by the owner.

Deserialization of untrusted bytes never trusts the stored tag to describe
the payload.  Callers are expected to invoke Validate after deserializing and
reject the carrying record on failure rather than relying on decode errors
alone; unknown entry tags and unknown format versions intentionally decode to
empty values so from-the-future records degrade gracefully instead of
aborting the parse.
*/
package netinfo
