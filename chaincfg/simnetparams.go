// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// SimNetParams defines the network parameters for the simulation test
// network.  It is used primarily by tests and has no seeds or real peers.
var SimNetParams = Params{
	Name:                      "simnet",
	Net:                       SimNet,
	DefaultPort:               19799,
	RequireRoutableExternalIP: false,
}
