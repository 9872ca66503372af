// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/btcsuite/btclog"

	"github.com/btcsuite/altcoinaddr"
	"github.com/btcsuite/altcoinaddr/netparams"
)

var (
	cfg *config
	log btclog.Logger
)

// printProgram writes every form of the witness program to stdout.
func printProgram(wp *altcoinaddr.WitnessProgram) {
	fmt.Println("Network:", wp.Network())
	fmt.Println("Version:", wp.Version())
	fmt.Println("Program:", hex.EncodeToString(wp.Program()))
	fmt.Println("ScriptPubKey:", hex.EncodeToString(wp.ScriptPubKey()))
	fmt.Println("Address:", wp.EncodeAddress())
}

// realMain is the real main function for the utility.  It is necessary to
// work around the fact that deferred functions do not run when os.Exit()
// is called.
func realMain() error {
	// Load configuration and parse command line.
	tcfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg = tcfg

	// Setup logging.
	backendLogger := btclog.NewBackend(os.Stderr)
	defer os.Stderr.Sync()
	log = backendLogger.Logger("MAIN")

	switch {
	case cfg.Address != "":
		wp, err := altcoinaddr.DecodeAddress(cfg.Address)
		if err != nil {
			log.Errorf("Failed to decode address %q: %v",
				cfg.Address, err)
			return err
		}
		printProgram(wp)

	case cfg.Script != "":
		pkScript, err := hex.DecodeString(cfg.Script)
		if err != nil {
			log.Errorf("Failed to parse scriptPubKey hex: %v", err)
			return err
		}

		// The prefix was checked by loadConfig.
		net, _ := netparams.Classify(cfg.HRP)
		wp, err := altcoinaddr.ParseScriptPubKey(pkScript, net)
		if err != nil {
			log.Errorf("Failed to extract witness program: %v", err)
			return err
		}
		printProgram(wp)

	case cfg.Program != "":
		program, err := hex.DecodeString(cfg.Program)
		if err != nil {
			log.Errorf("Failed to parse program hex: %v", err)
			return err
		}

		net, _ := netparams.Classify(cfg.HRP)
		wp, err := altcoinaddr.NewWitnessProgram(
			cfg.Version, program, net,
		)
		if err != nil {
			log.Errorf("Failed to build witness program: %v", err)
			return err
		}
		printProgram(wp)
	}

	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
