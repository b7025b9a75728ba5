// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:                      "mainnet",
	Net:                       MainNet,
	DefaultPort:               9999,
	RequireRoutableExternalIP: true,
}
