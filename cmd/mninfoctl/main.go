// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// mninfoctl is an offline inspector for serialized masternode network-address
// registries.  It decodes a hex-encoded registry of either generation, runs
// full validation against the selected network's rules, and prints a
// human-readable or JSON dump.  It performs no networking and no DNS
// resolution.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/decred/slog"
	"github.com/evonode/evod/netinfo"
)

func run() error {
	cfg, args, err := loadConfig()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("expected exactly one hex-encoded registry argument, "+
			"got %d", len(args))
	}

	if cfg.Debug {
		backend := slog.NewBackend(os.Stderr)
		logger := backend.Logger("MNNI")
		logger.SetLevel(slog.LevelDebug)
		netinfo.UseLogger(logger)
	}

	serialized, err := hex.DecodeString(args[0])
	if err != nil {
		return fmt.Errorf("invalid hex input: %v", err)
	}

	registry := netinfo.SelectRegistry(cfg.netParams, cfg.RecordVersion)
	if err := registry.Deserialize(bytes.NewReader(serialized)); err != nil {
		return fmt.Errorf("unable to deserialize registry: %v", err)
	}

	if cfg.JSON {
		out, err := registry.ToJSON()
		if err != nil {
			return err
		}
		fmt.Printf("%s\n", out)
	} else {
		fmt.Print(registry.String())
	}

	if err := registry.Validate(); err != nil {
		return fmt.Errorf("registry is invalid: %v", err)
	}
	fmt.Println("registry is valid")
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
