// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"errors"
	"testing"
)

// isErrorKind returns whether the error chain contains the given kind.
func isErrorKind(err error, kind ErrorKind) bool {
	return errors.Is(err, kind)
}

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrBadInput, "ErrBadInput"},
		{ErrBadPort, "ErrBadPort"},
		{ErrMalformed, "ErrMalformed"},
		{ErrDuplicate, "ErrDuplicate"},
		{ErrMaxLimit, "ErrMaxLimit"},
		{ErrNotFound, "ErrNotFound"},
	}

	for _, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("%#v: got %q, want %q", test.in, result, test.want)
		}
	}
}

// TestRegistryError tests the error output and unwrapping for the
// RegistryError type.
func TestRegistryError(t *testing.T) {
	err := makeError("TestFunc", ErrDuplicate, "entry is already present")
	if err.Error() != "entry is already present" {
		t.Errorf("wrong error string: %q", err.Error())
	}
	if !errors.Is(err, ErrDuplicate) {
		t.Error("errors.Is failed to match the wrapped kind")
	}
	if errors.Is(err, ErrBadInput) {
		t.Error("errors.Is matched an unrelated kind")
	}

	var kind ErrorKind
	if !errors.As(err, &kind) || kind != ErrDuplicate {
		t.Errorf("errors.As got kind %v, want %v", kind, ErrDuplicate)
	}
}
