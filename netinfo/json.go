// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package netinfo

import "encoding/json"

// entryJSON is the JSON rendering of one entry.
type entryJSON struct {
	Type    string `json:"type"`
	Address string `json:"address"`
}

// registryJSON segments entries by purpose under their owning service so the
// layout stays extensible as purposes are added.
type registryJSON struct {
	Core     *coreJSON     `json:"core,omitempty"`
	Platform *platformJSON `json:"platform,omitempty"`
}

type coreJSON struct {
	P2P []entryJSON `json:"p2p,omitempty"`
}

type platformJSON struct {
	P2P  []entryJSON `json:"p2p,omitempty"`
	HTTP []entryJSON `json:"http,omitempty"`
}

func entriesToJSON(entries []AddressEntry) []entryJSON {
	out := make([]entryJSON, 0, len(entries))
	for i := range entries {
		out = append(out, entryJSON{
			Type:    entries[i].Type.String(),
			Address: entries[i].String(),
		})
	}
	return out
}

// toJSON builds the purpose-segmented rendering shared by both registry
// generations.
func toJSON(r Registry) ([]byte, error) {
	var obj registryJSON
	if core := r.GetEntries(CorePurposeP2P); len(core) > 0 {
		obj.Core = &coreJSON{P2P: entriesToJSON(core)}
	}
	p2p := r.GetEntries(PlatformPurposeP2P)
	http := r.GetEntries(PlatformPurposeHTTP)
	if len(p2p) > 0 || len(http) > 0 {
		obj.Platform = &platformJSON{
			P2P:  entriesToJSON(p2p),
			HTTP: entriesToJSON(http),
		}
	}
	return json.MarshalIndent(&obj, "", "  ")
}

// ToJSON returns the registry as a purpose-segmented JSON object.  This is a
// human-readable dump for presentation layers, not part of the wire format.
func (r *PrimaryRegistry) ToJSON() ([]byte, error) {
	return toJSON(r)
}

// ToJSON returns the registry as a purpose-segmented JSON object.  This is a
// human-readable dump for presentation layers, not part of the wire format.
func (r *ExtendedRegistry) ToJSON() ([]byte, error) {
	return toJSON(r)
}
