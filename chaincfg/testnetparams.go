// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:                      "testnet",
	Net:                       TestNet,
	DefaultPort:               19999,
	RequireRoutableExternalIP: true,
}
