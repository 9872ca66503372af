// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package netparams defines the networks with a registered segwit address
prefix and the mapping between each network and its human-readable part.

The authoritative list of human-readable parts for bech32 addresses is
maintained in SLIP-0173
(https://github.com/satoshilabs/slips/blob/master/slip-0173.md).
*/
package netparams
