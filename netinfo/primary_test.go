// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"bytes"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/evonode/evod/chaincfg"
)

// TestPrimaryRegistryAddEntryMainNet verifies the AddEntry rules on the main
// network, where the canonical port is mandatory and addresses must be
// routable.
func TestPrimaryRegistryAddEntryMainNet(t *testing.T) {
	tests := []struct {
		name string
		text string
		want ErrorKind // zero value means success
	}{{
		name: "address and port specified",
		text: "1.1.1.1:9999",
	}, {
		name: "port defaults to the network p2p port",
		text: "1.1.1.1",
	}, {
		name: "non-mainnet port on mainnet",
		text: "1.1.1.1:9998",
		want: ErrBadPort,
	}, {
		name: "internal addresses not allowed on mainnet",
		text: "127.0.0.1:9999",
		want: ErrBadInput,
	}, {
		name: "valid formatting but unspecified address",
		text: "0.0.0.0:9999",
		want: ErrBadInput,
	}, {
		name: "port greater than uint16 max",
		text: "1.1.1.1:99999",
		want: ErrBadInput,
	}, {
		name: "only ipv4 allowed",
		text: "[2606:4700:4700::1111]:9999",
		want: ErrBadInput,
	}, {
		name: "domains are not allowed",
		text: "example.com:9999",
		want: ErrBadInput,
	}, {
		name: "incorrect ipv4 address",
		text: "1.1.1.256:9999",
		want: ErrBadInput,
	}, {
		name: "missing address",
		text: ":9999",
		want: ErrBadInput,
	}}

	for _, test := range tests {
		registry := NewPrimaryRegistry(&chaincfg.MainNetParams)
		err := registry.AddEntry(CorePurposeP2P, test.text)
		if test.want == ErrorKind("") {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", test.name, err)
				continue
			}
			// Everything AddEntry accepts must validate cleanly.
			if err := registry.Validate(); err != nil {
				t.Errorf("%s: Validate after successful add: %v", test.name, err)
			}
			if got := len(registry.GetEntries(CorePurposeP2P)); got != 1 {
				t.Errorf("%s: wrong entry count - got %d, want 1", test.name, got)
			}
			continue
		}
		if !isErrorKind(err, test.want) {
			t.Errorf("%s: got %v, want kind %v", test.name, err, test.want)
		}
		if !registry.IsEmpty() {
			t.Errorf("%s: registry not empty after rejected add", test.name)
		}
		if !isErrorKind(registry.Validate(), ErrMalformed) {
			t.Errorf("%s: empty registry should validate as malformed", test.name)
		}
	}
}

// TestPrimaryRegistryAddEntryTestNet verifies the inverted port rule off
// mainnet: any sane port except mainnet's canonical one.
func TestPrimaryRegistryAddEntryTestNet(t *testing.T) {
	registry := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := registry.AddEntry(CorePurposeP2P, "1.1.1.1:8888"); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	registry = NewPrimaryRegistry(&chaincfg.TestNetParams)
	err := registry.AddEntry(CorePurposeP2P, "1.1.1.1:9999")
	if !isErrorKind(err, ErrBadPort) {
		t.Fatalf("mainnet port off mainnet: got %v, want kind %v", err, ErrBadPort)
	}
}

// TestPrimaryRegistrySingleSlot verifies the registry never overwrites an
// occupied slot and rejects purposes it has no capacity for.
func TestPrimaryRegistrySingleSlot(t *testing.T) {
	registry := NewPrimaryRegistry(&chaincfg.TestNetParams)

	err := registry.AddEntry(PlatformPurposeP2P, "1.1.1.1:8888")
	if !isErrorKind(err, ErrMaxLimit) {
		t.Fatalf("unsupported purpose: got %v, want kind %v", err, ErrMaxLimit)
	}
	err = registry.AddEntry(PlatformPurposeHTTP, "example.com:443")
	if !isErrorKind(err, ErrMaxLimit) {
		t.Fatalf("unsupported purpose: got %v, want kind %v", err, ErrMaxLimit)
	}

	if err := registry.AddEntry(CorePurposeP2P, "1.1.1.1:8888"); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	err = registry.AddEntry(CorePurposeP2P, "2.2.2.2:8888")
	if !isErrorKind(err, ErrMaxLimit) {
		t.Fatalf("occupied slot: got %v, want kind %v", err, ErrMaxLimit)
	}

	want := mustEntryFromHost(t, "1.1.1.1", 8888)
	if got := registry.GetPrimary(); !got.Equal(&want) {
		t.Fatalf("GetPrimary changed by failed add: %s", spew.Sdump(got))
	}
}

// TestPrimaryRegistryAccessorCopies verifies the accessors hand out copies
// whose address bytes do not alias the stored entry.
func TestPrimaryRegistryAccessorCopies(t *testing.T) {
	registry := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := registry.AddEntry(CorePurposeP2P, "1.1.1.1:8888"); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	entries := registry.GetEntries(CorePurposeP2P)
	entries[0].Addr[0] = 127
	if got := registry.GetPrimary(); got.String() != "1.1.1.1:8888" {
		t.Fatalf("GetEntries leaked internal state: %s", got.String())
	}
	primary := registry.GetPrimary()
	primary.Addr[0] = 127
	if got := registry.GetPrimary(); got.String() != "1.1.1.1:8888" {
		t.Fatalf("GetPrimary leaked internal state: %s", got.String())
	}
	if err := registry.Validate(); err != nil {
		t.Fatalf("Validate after caller-side mutation: %v", err)
	}
}

// TestPrimaryRegistryClear verifies Clear is idempotent and yields the same
// state as a freshly constructed registry.
func TestPrimaryRegistryClear(t *testing.T) {
	registry := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := registry.AddEntry(CorePurposeP2P, "1.1.1.1:8888"); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	registry.Clear()
	registry.Clear()
	if !registry.IsEmpty() {
		t.Fatal("registry not empty after Clear")
	}
	if registry.HasEntries(CorePurposeP2P) {
		t.Fatal("HasEntries true after Clear")
	}

	fresh := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if got, want := registry.GetPrimary(), fresh.GetPrimary(); !got.Equal(&want) {
		t.Fatal("cleared registry differs from a fresh one")
	}
}

// TestPrimaryRegistryRemoveEntry verifies removal matches by value.
func TestPrimaryRegistryRemoveEntry(t *testing.T) {
	registry := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := registry.AddEntry(CorePurposeP2P, "1.1.1.1:8888"); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	err := registry.RemoveEntry(CorePurposeP2P, "2.2.2.2:8888")
	if !isErrorKind(err, ErrNotFound) {
		t.Fatalf("mismatched value: got %v, want kind %v", err, ErrNotFound)
	}
	err = registry.RemoveEntry(PlatformPurposeP2P, "1.1.1.1:8888")
	if !isErrorKind(err, ErrNotFound) {
		t.Fatalf("mismatched purpose: got %v, want kind %v", err, ErrNotFound)
	}

	if err := registry.RemoveEntry(CorePurposeP2P, "1.1.1.1:8888"); err != nil {
		t.Fatalf("RemoveEntry: %v", err)
	}
	if !registry.IsEmpty() {
		t.Fatal("registry not empty after removal")
	}
	err = registry.RemoveEntry(CorePurposeP2P, "1.1.1.1:8888")
	if !isErrorKind(err, ErrNotFound) {
		t.Fatalf("second removal: got %v, want kind %v", err, ErrNotFound)
	}
}

// TestPrimaryRegistrySerializeRoundTrip verifies the fixed 18-byte wire form
// and that deserialized state matches the original.
func TestPrimaryRegistrySerializeRoundTrip(t *testing.T) {
	registry := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := registry.AddEntry(CorePurposeP2P, "1.2.3.4:8888"); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	var buf bytes.Buffer
	if err := registry.Serialize(&buf); err != nil {
		t.Fatalf("Serialize: %v", err)
	}
	want := []byte{
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // IPv4-mapped address
		0x00, 0x00, 0xff, 0xff, 0x01, 0x02, 0x03, 0x04,
		0x22, 0xb8, // Port 8888 (big-endian)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("wrong bytes\ngot:  %x\nwant: %x", buf.Bytes(), want)
	}
	if !bytes.Equal(registry.Key(), want) {
		t.Fatal("Key differs from the serialized form")
	}

	decoded := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := decoded.Deserialize(&buf); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	wantEntry := registry.GetPrimary()
	if got := decoded.GetPrimary(); !got.Equal(&wantEntry) {
		t.Fatalf("round trip mismatch: %s", spew.Sdump(got))
	}
	if err := decoded.Validate(); err != nil {
		t.Fatalf("Validate after round trip: %v", err)
	}

	// An all-zero buffer decodes to the empty registry, which is malformed.
	empty := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := empty.Deserialize(bytes.NewReader(make([]byte, 18))); err != nil {
		t.Fatalf("Deserialize zero buffer: %v", err)
	}
	if !empty.IsEmpty() {
		t.Fatal("zero buffer did not decode to the empty registry")
	}
	if !isErrorKind(empty.Validate(), ErrMalformed) {
		t.Fatal("empty registry should validate as malformed")
	}
}

// TestPrimaryRegistryDeserializeUntrusted verifies a non-IPv4 payload decodes
// without error but is rejected by validation, never trusted.
func TestPrimaryRegistryDeserializeUntrusted(t *testing.T) {
	serialized := []byte{
		0x26, 0x06, 0x47, 0x00, 0x47, 0x00, 0x00, 0x00, // IPv6 address
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x11, 0x11,
		0x22, 0xb8, // Port 8888 (big-endian)
	}
	registry := NewPrimaryRegistry(&chaincfg.TestNetParams)
	if err := registry.Deserialize(bytes.NewReader(serialized)); err != nil {
		t.Fatalf("Deserialize: %v", err)
	}
	if registry.IsEmpty() {
		t.Fatal("registry unexpectedly empty")
	}
	if !isErrorKind(registry.Validate(), ErrBadInput) {
		t.Fatalf("non-IPv4 payload should fail validation, got %v",
			registry.Validate())
	}
}
