// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"io"

	"github.com/evonode/evod/chaincfg"
)

// Record versions of the containing masternode registration record and the
// registry generation each one selects.  Version zero is the unconstructed
// sentinel and never a valid runtime input.
const (
	// PrimaryRecordVersion is the last record version governed by the legacy
	// single-slot registry.
	PrimaryRecordVersion uint16 = 1

	// ExtendedRecordVersion is the first record version governed by the
	// extended multi-entry registry.
	ExtendedRecordVersion uint16 = 2
)

// Registry is the polymorphic surface shared by both registry generations.
// Callers such as transaction processors and RPC handlers manipulate this
// interface regardless of which on-disk generation is in effect.
type Registry interface {
	// AddEntry validates the raw text token for the purpose and stores it.
	AddEntry(purpose Purpose, text string) error

	// RemoveEntry removes the entry matching the token by value and purpose.
	RemoveEntry(purpose Purpose, text string) error

	// GetEntries returns the purpose's entries in insertion order.
	GetEntries(purpose Purpose) []AddressEntry

	// HasEntries returns whether the purpose has any entries.
	HasEntries(purpose Purpose) bool

	// GetPrimary returns the masternode's primary address or the empty
	// sentinel.
	GetPrimary() AddressEntry

	// Validate re-checks every invariant of the stored state.  It must be
	// called after deserializing untrusted bytes.
	Validate() error

	// IsEmpty returns whether nothing is stored.
	IsEmpty() bool

	// Clear resets to the freshly constructed empty state.
	Clear()

	// Serialize and Deserialize implement the wire/disk format.
	Serialize(w io.Writer) error
	Deserialize(r io.Reader) error

	// String returns a human-readable multi-line dump.  Not part of the wire
	// format.
	String() string

	// ToJSON returns a purpose-segmented JSON rendering.  Not part of the
	// wire format.
	ToJSON() ([]byte, error)
}

// SelectRegistry returns an empty registry of the generation that governs the
// given record version.  Version zero indicates an unconstructed record and
// is a programming-contract violation, so it panics rather than returning an
// error.  Record versions beyond the extended generation select the extended
// registry, which degrades gracefully on formats it does not understand.
func SelectRegistry(params *chaincfg.Params, recordVersion uint16) Registry {
	if recordVersion == 0 {
		panic("netinfo: record version zero is an unconstructed sentinel")
	}
	if recordVersion < ExtendedRecordVersion {
		return NewPrimaryRegistry(params)
	}
	return NewExtendedRegistry(params)
}
