// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import (
	"strings"
	"testing"
)

// TestDomainEndpointValidate verifies each RFC1035-derived rule and policy
// rule fails with its specific reason.
func TestDomainEndpointValidate(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name string
		host string
		port uint16
		want ErrorKind // zero value means success
	}{{
		name: "plain domain",
		host: "example.com",
		port: 8888,
	}, {
		name: "multi-label domain",
		host: "api.node-7.example.com",
		port: 443,
	}, {
		name: "allow-listed http port",
		host: "example.com",
		port: 80,
	}, {
		name: "too short",
		host: "a.b",
		port: 8888,
		want: ErrDomainLength,
	}, {
		name: "too long",
		host: strings.Repeat("a", 250) + ".com",
		port: 8888,
		want: ErrDomainLength,
	}, {
		name: "prohibited character",
		host: "exam_ple.com",
		port: 8888,
		want: ErrDomainChar,
	}, {
		name: "not lower-cased in storage",
		host: "Example.com",
		port: 8888,
		want: ErrDomainChar,
	}, {
		name: "leading dot",
		host: ".example.com",
		port: 8888,
		want: ErrDomainCharPos,
	}, {
		name: "trailing dot",
		host: "example.com.",
		port: 8888,
		want: ErrDomainCharPos,
	}, {
		name: "dotless",
		host: "localhost",
		port: 8888,
		want: ErrDomainDotless,
	}, {
		name: "empty label",
		host: "a..example.com",
		port: 8888,
		want: ErrDomainLabelLength,
	}, {
		name: "label too long",
		host: strings.Repeat("a", 64) + ".com",
		port: 8888,
		want: ErrDomainLabelLength,
	}, {
		name: "label starts with hyphen",
		host: "-example.com",
		port: 8888,
		want: ErrDomainLabelCharPos,
	}, {
		name: "label ends with hyphen",
		host: "example-.com",
		port: 8888,
		want: ErrDomainLabelCharPos,
	}, {
		name: "blocklisted tld",
		host: "meows-macbook-pro.local",
		port: 7777,
		want: ErrDomainBadTLD,
	}, {
		name: "blocklisted onion tld",
		host: "example.onion",
		port: 8888,
		want: ErrDomainBadTLD,
	}, {
		name: "blocklisted i2p tld",
		host: "example.i2p",
		port: 8888,
		want: ErrDomainBadTLD,
	}, {
		name: "blocklisted compound tld",
		host: "router.home.arpa",
		port: 8888,
		want: ErrDomainBadTLD,
	}, {
		name: "zero port",
		host: "example.com",
		port: 0,
		want: ErrDomainBadPort,
	}, {
		name: "disallowed service port",
		host: "example.com",
		port: 25,
		want: ErrDomainBadPort,
	}}

	for _, test := range tests {
		endpoint := DomainEndpoint{Host: test.host, Port: test.port}
		err := endpoint.Validate(&policy)
		if test.want == ErrorKind("") {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", test.name, err)
			}
			continue
		}
		if !isErrorKind(err, test.want) {
			t.Errorf("%s: got %v, want kind %v", test.name, err, test.want)
		}
	}
}

// TestNewDomainEndpointFoldsCase verifies hosts are lower-cased at
// construction so stored endpoints compare case-insensitively.
func TestNewDomainEndpointFoldsCase(t *testing.T) {
	endpoint := NewDomainEndpoint("API.Example.COM", 443)
	if endpoint.Host != "api.example.com" {
		t.Fatalf("host not folded: %q", endpoint.Host)
	}

	policy := DefaultPolicy()
	if err := endpoint.Validate(&policy); err != nil {
		t.Fatalf("folded endpoint unexpectedly invalid: %v", err)
	}
	if endpoint.String() != "api.example.com:443" {
		t.Fatalf("wrong string form: %q", endpoint.String())
	}
}
