// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"testing"

	"github.com/evonode/evod/chaincfg"
)

// TestSelectRegistry verifies the record version to registry generation
// mapping, including future record versions falling back to the extended
// generation.
func TestSelectRegistry(t *testing.T) {
	tests := []struct {
		name          string
		recordVersion uint16
		wantExtended  bool
	}{{
		name:          "legacy record version",
		recordVersion: PrimaryRecordVersion,
		wantExtended:  false,
	}, {
		name:          "extended record version",
		recordVersion: ExtendedRecordVersion,
		wantExtended:  true,
	}, {
		name:          "future record version",
		recordVersion: 100,
		wantExtended:  true,
	}}

	for _, test := range tests {
		registry := SelectRegistry(&chaincfg.TestNetParams, test.recordVersion)
		_, isExtended := registry.(*ExtendedRegistry)
		if isExtended != test.wantExtended {
			t.Errorf("%s: got extended=%v, want %v", test.name, isExtended,
				test.wantExtended)
		}
		if !registry.IsEmpty() {
			t.Errorf("%s: selected registry is not empty", test.name)
		}
	}
}

// TestSelectRegistryZeroVersion verifies the sentinel record version is
// treated as a programming error.
func TestSelectRegistryZeroVersion(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("no panic for record version zero")
		}
	}()
	SelectRegistry(&chaincfg.TestNetParams, 0)
}
