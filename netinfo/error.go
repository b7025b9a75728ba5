// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific RegistryError.
const (
	// ErrBadInput is returned when an address is unparseable or its kind is
	// not permitted for the requested purpose.
	ErrBadInput = ErrorKind("ErrBadInput")

	// ErrBadPort is returned when a port is zero, disallowed by the port
	// policy, or mismatched against the active network's canonical port.
	ErrBadPort = ErrorKind("ErrBadPort")

	// ErrMalformed is returned when a structural invariant is violated, such
	// as an empty registry, an unknown format version, a tag that does not
	// match its payload, or a present-but-empty purpose list.
	ErrMalformed = ErrorKind("ErrMalformed")

	// ErrDuplicate is returned when the entry being added is already present
	// anywhere in the registry.
	ErrDuplicate = ErrorKind("ErrDuplicate")

	// ErrMaxLimit is returned when a purpose has no remaining capacity,
	// either because its entry list is full or because the registry
	// generation does not support the purpose at all.
	ErrMaxLimit = ErrorKind("ErrMaxLimit")

	// ErrNotFound is returned when the entry being removed is not present.
	ErrNotFound = ErrorKind("ErrNotFound")

	// ErrDomainLength is returned when a domain name is shorter than 4 or
	// longer than 253 bytes.
	ErrDomainLength = ErrorKind("ErrDomainLength")

	// ErrDomainChar is returned when a domain name contains a character
	// outside [a-z0-9.-] after case folding.
	ErrDomainChar = ErrorKind("ErrDomainChar")

	// ErrDomainCharPos is returned when a domain name starts or ends with a
	// dot.
	ErrDomainCharPos = ErrorKind("ErrDomainCharPos")

	// ErrDomainDotless is returned when a domain name has fewer than two
	// labels.
	ErrDomainDotless = ErrorKind("ErrDomainDotless")

	// ErrDomainLabelLength is returned when any label of a domain name is
	// empty or longer than 63 bytes.
	ErrDomainLabelLength = ErrorKind("ErrDomainLabelLength")

	// ErrDomainLabelCharPos is returned when any label of a domain name
	// starts or ends with a hyphen.
	ErrDomainLabelCharPos = ErrorKind("ErrDomainLabelCharPos")

	// ErrDomainBadTLD is returned when a domain name ends in a blocklisted
	// suffix such as .local or .onion.  Tor and I2P endpoints must be
	// expressed as their proper address kinds, not as domains.
	ErrDomainBadTLD = ErrorKind("ErrDomainBadTLD")

	// ErrDomainBadPort is returned when a domain entry uses port zero or a
	// disallowed port that is not on the explicit allow-list.
	ErrDomainBadPort = ErrorKind("ErrDomainBadPort")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// RegistryError identifies an error related to a network-address registry.
// It has full support for errors.Is and errors.As, so the caller can
// ascertain the specific reason for the error by checking the underlying
// error.
type RegistryError struct {
	Func        string
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e RegistryError) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e RegistryError) Unwrap() error {
	return e.Err
}

// makeError creates a RegistryError given a set of arguments.
func makeError(fn string, kind ErrorKind, desc string) RegistryError {
	return RegistryError{Func: fn, Err: kind, Description: desc}
}
