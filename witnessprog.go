// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package altcoinaddr

import (
	"github.com/btcsuite/btcd/btcutil/bech32"

	"github.com/btcsuite/altcoinaddr/netparams"
)

const (
	// maxDataLength is the maximum number of 5-bit groups in the data
	// portion of an address: one version group plus the 64 groups the
	// 40 byte maximum program expands to.
	maxDataLength = 65

	// smallNumberOpOffset is the distance between a witness version of 1
	// through 16 and the small-number push opcode (OP_1 through OP_16)
	// that carries it in a scriptPubKey.  Version 0 uses OP_0 directly.
	smallNumberOpOffset = 0x50
)

// WitnessProgram is the witness version, program and target network of a
// segwit output, together with its bech32 address form.  Instances are
// immutable once constructed and have already passed Validate.
type WitnessProgram struct {
	version byte
	program []byte
	network netparams.Network

	// address caches the bech32 encoding computed when the program was
	// constructed or decoded, so re-encoding can never drift from the
	// string that was validated.
	address string
}

// NewWitnessProgram assembles a witness program from its constituent
// version, program bytes and network, computes its bech32 address and
// validates the result.  The program slice is copied, so the caller
// remains free to reuse its buffer.
//
// On failure the candidate is discarded and the first violated rule is
// returned, either one of this package's errors or a typed error from the
// bech32 codec.
func NewWitnessProgram(version byte, program []byte,
	net netparams.Network) (*WitnessProgram, error) {

	regrouped, err := bech32.ConvertBits(program, 8, 5, true)
	if err != nil {
		return nil, err
	}

	data := make([]byte, 0, len(regrouped)+1)
	data = append(data, version)
	data = append(data, regrouped...)

	address, err := bech32.Encode(net.HRP(), data)
	if err != nil {
		return nil, err
	}

	wp := &WitnessProgram{
		version: version,
		program: append([]byte(nil), program...),
		network: net,
		address: address,
	}
	if err := wp.Validate(); err != nil {
		return nil, err
	}

	return wp, nil
}

// DecodeAddress decodes a bech32 segwit address into its witness program.
//
// The human-readable part must be registered in the netparams package; an
// unknown prefix is reported as ErrUnknownHumanReadablePart, distinct
// from the codec's checksum and format errors.  The input string is
// retained verbatim as the address form of the result, preserving its
// casing, and the decoded program is validated before it is returned.
func DecodeAddress(addr string) (*WitnessProgram, error) {
	hrp, data, err := bech32.Decode(addr)
	if err != nil {
		return nil, err
	}

	network, ok := netparams.Classify(hrp)
	if !ok {
		return nil, ErrUnknownHumanReadablePart
	}

	// One version group plus at most 64 program groups.
	if len(data) == 0 || len(data) > maxDataLength {
		return nil, bech32.ErrInvalidLength(len(data))
	}

	program, err := bech32.ConvertBits(data[1:], 5, 8, false)
	if err != nil {
		return nil, err
	}

	wp := &WitnessProgram{
		version: data[0],
		program: program,
		network: network,
		address: addr,
	}
	if err := wp.Validate(); err != nil {
		return nil, err
	}

	return wp, nil
}

// ParseScriptPubKey extracts the witness program committed to by a segwit
// scriptPubKey.  The script must consist of exactly a version opcode, a
// length byte matching the remaining byte count, and the program itself.
// The extracted parts go through NewWitnessProgram, so the result is
// subject to the same validation as any other construction path.
func ParseScriptPubKey(pkScript []byte,
	net netparams.Network) (*WitnessProgram, error) {

	if len(pkScript) < 4 {
		return nil, ErrScriptPubKeyTooShort
	}
	if int(pkScript[1]) != len(pkScript)-2 {
		return nil, ErrScriptPubKeyLengthMismatch
	}

	version := pkScript[0]
	if version > smallNumberOpOffset {
		version -= smallNumberOpOffset
	}

	return NewWitnessProgram(version, pkScript[2:], net)
}

// ScriptPubKey returns the scriptPubKey encoding of the witness program:
// the version opcode, the program length and the raw program bytes.  The
// program length always fits a single byte for a valid instance, so this
// cannot fail.
func (wp *WitnessProgram) ScriptPubKey() []byte {
	version := wp.version
	if version > 0 {
		version += smallNumberOpOffset
	}

	script := make([]byte, 0, len(wp.program)+2)
	script = append(script, version, byte(len(wp.program)))
	return append(script, wp.program...)
}

// Validate checks the witness version and program length rules from
// BIP-141.  The checks run in a fixed order, so the version range error
// takes precedence when several rules are broken at once.
func (wp *WitnessProgram) Validate() error {
	if wp.version > 16 {
		return ErrInvalidScriptVersion
	}
	if len(wp.program) < 2 || len(wp.program) > 40 {
		return ErrInvalidProgramLength
	}
	if wp.version == 0 && len(wp.program) != 20 && len(wp.program) != 32 {
		return ErrInvalidVersionLength
	}
	return nil
}

// EncodeAddress returns the bech32 address form of the witness program.
// The string was computed when the program was constructed or decoded and
// is returned as is.
func (wp *WitnessProgram) EncodeAddress() string {
	return wp.address
}

// String returns the same address string as EncodeAddress.  It implements
// the fmt.Stringer interface.
func (wp *WitnessProgram) String() string {
	return wp.address
}

// Version returns the witness version.
func (wp *WitnessProgram) Version() byte {
	return wp.version
}

// Program returns a copy of the witness program bytes.
func (wp *WitnessProgram) Program() []byte {
	return append([]byte(nil), wp.program...)
}

// Network returns the network the witness program is intended for.
func (wp *WitnessProgram) Network() netparams.Network {
	return wp.network
}
