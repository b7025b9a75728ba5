// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network parameters consumed by the masternode
// subsystems.  Callers receive a concrete *Params through construction rather
// than reading process-wide state, so multiple networks can coexist in one
// process (notably in tests).
package chaincfg

// CurrencyNet represents the magic bytes used to identify a network.
type CurrencyNet uint32

const (
	// MainNet represents the main network.
	MainNet CurrencyNet = 0xc6e57d4a

	// TestNet represents the public test network.
	TestNet CurrencyNet = 0x4ad1707b

	// SimNet represents the simulation test network.
	SimNet CurrencyNet = 0x12141c16

	// RegNet represents the regression test network.
	RegNet CurrencyNet = 0x1e2d853f
)

// Params defines a network by its parameters.  These parameters may be used
// by applications to differentiate networks as well as addresses and keys for
// one network from those intended for use on another network.
type Params struct {
	// Name defines a human-readable identifier for the network.
	Name string

	// Net defines the magic bytes used to identify the network.
	Net CurrencyNet

	// DefaultPort defines the default peer-to-peer port for the network.
	DefaultPort uint16

	// RequireRoutableExternalIP indicates whether masternodes on this
	// network must publish externally-routable addresses.  Local test
	// networks disable this so loopback addresses can be registered.
	RequireRoutableExternalIP bool
}

// IsMainNet returns whether these parameters describe the main network.
func (p *Params) IsMainNet() bool {
	return p.Net == MainNet
}
