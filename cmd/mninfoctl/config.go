// Copyright (c) 2025 The Evonode developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/dcrd/dcrutil/v4"
	"github.com/evonode/evod/chaincfg"
	flags "github.com/jessevdk/go-flags"
)

const (
	appName               = "mninfoctl"
	defaultConfigFilename = appName + ".conf"
)

var (
	// Default configuration options.
	defaultHomeDir    = dcrutil.AppDataDir(appName, false)
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// config defines the configuration options for mninfoctl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	TestNet       bool   `long:"testnet" description:"Use the test network"`
	SimNet        bool   `long:"simnet" description:"Use the simulation test network"`
	RegNet        bool   `long:"regnet" description:"Use the regression test network"`
	RecordVersion uint16 `long:"recordversion" description:"Record version governing the registry generation" default:"2"`
	JSON          bool   `long:"json" description:"Print the registry as JSON instead of the text dump"`
	Debug         bool   `long:"debug" description:"Enable debug logging to stderr"`

	netParams *chaincfg.Params
}

// loadConfig initializes and parses the config using a config file and
// command line options.
func loadConfig() (*config, []string, error) {
	cfg := config{}

	parser := flags.NewParser(&cfg, flags.Default)
	err := flags.NewIniParser(parser).ParseFile(defaultConfigFile)
	if err != nil {
		var e *os.PathError
		if !errors.As(err, &e) {
			fmt.Fprintf(os.Stderr, "Error parsing config file: %v\n", err)
			return nil, nil, err
		}
	}

	remaining, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			os.Exit(0)
		}
		return nil, nil, err
	}

	numNets := 0
	cfg.netParams = &chaincfg.MainNetParams
	if cfg.TestNet {
		numNets++
		cfg.netParams = &chaincfg.TestNetParams
	}
	if cfg.SimNet {
		numNets++
		cfg.netParams = &chaincfg.SimNetParams
	}
	if cfg.RegNet {
		numNets++
		cfg.netParams = &chaincfg.RegNetParams
	}
	if numNets > 1 {
		err := errors.New("the testnet, simnet, and regnet options may not be " +
			"used together")
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	if cfg.RecordVersion == 0 {
		err := errors.New("recordversion must be non-zero")
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	return &cfg, remaining, nil
}
