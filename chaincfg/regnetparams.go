// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// RegNetParams defines the network parameters for the regression test
// network.
var RegNetParams = Params{
	Name:                      "regnet",
	Net:                       RegNet,
	DefaultPort:               19899,
	RequireRoutableExternalIP: false,
}
