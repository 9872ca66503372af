// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/btcsuite/altcoinaddr/netparams"
)

// config defines the configuration options for addrconv.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Address string `short:"a" long:"address" description:"Bech32 segwit address to decode"`
	Script  string `short:"s" long:"script" description:"Hex-encoded scriptPubKey to decode for the network selected by --hrp"`
	Program string `short:"p" long:"program" description:"Hex-encoded witness program to encode for the network selected by --hrp"`
	Version uint8  `short:"v" long:"version" description:"Witness version used with --program"`
	HRP     string `long:"hrp" default:"bc" description:"Human-readable prefix selecting the target network for --script and --program"`
}

// loadConfig initializes and parses the config using command line options.
func loadConfig() (*config, error) {
	cfg := config{}
	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, err
	}

	// Exactly one conversion per invocation.
	numModes := 0
	for _, set := range []bool{
		cfg.Address != "", cfg.Script != "", cfg.Program != "",
	} {
		if set {
			numModes++
		}
	}
	if numModes != 1 {
		str := "%s: exactly one of --address, --script or --program " +
			"must be specified"
		err := fmt.Errorf(str, "loadConfig")
		fmt.Fprintln(os.Stderr, err)
		parser.WriteHelp(os.Stderr)
		return nil, err
	}

	// The script and program modes bind their result to the network
	// selected by the prefix.
	if cfg.Address == "" {
		if _, ok := netparams.Classify(cfg.HRP); !ok {
			str := "%s: unknown human-readable prefix %q"
			err := fmt.Errorf(str, "loadConfig", cfg.HRP)
			fmt.Fprintln(os.Stderr, err)
			return nil, err
		}
	}

	return &cfg, nil
}
