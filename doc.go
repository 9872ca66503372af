// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package altcoinaddr converts between the three forms of a segregated
witness output across the SLIP-0173 family of networks: the bech32 text
address, the witness program it encodes, and the scriptPubKey that
commits to it on chain.

A WitnessProgram holds the witness version, the raw program bytes and the
target network.  It can only be obtained through one of the validated
construction paths, so every live instance satisfies the BIP-141 rules:
the version is at most 16, the program is between 2 and 40 bytes, and a
version 0 program is exactly 20 or 32 bytes.  Instances are immutable and
safe for concurrent use.

The bech32 address string is computed once when the program is built or
decoded and cached, so EncodeAddress always returns exactly the string
that was validated.

Checksum and character-set handling is provided by the
github.com/btcsuite/btcd/btcutil/bech32 package; its errors are returned
unwrapped, so callers can discriminate a bad checksum from, say, an
unknown network prefix.
*/
package altcoinaddr
