// Copyright (c) 2026 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package altcoinaddr

import "errors"

// These errors cover every rule the witness program model enforces
// itself.  Failures detected by the bech32 codec (bad checksum, invalid
// character, mixed case, bad padding, string length) are returned as the
// typed errors of the btcutil/bech32 package instead.  None of the
// conditions are transient; callers should treat every error as permanent
// for the given input.
var (
	// ErrUnknownHumanReadablePart describes an address whose
	// human-readable part is not registered for any supported network.
	ErrUnknownHumanReadablePart = errors.New("unknown human-readable part")

	// ErrScriptPubKeyTooShort describes a scriptPubKey with fewer than
	// the four bytes needed for a version opcode, a length byte and the
	// two byte minimum program.
	ErrScriptPubKeyTooShort = errors.New("scriptpubkey too short")

	// ErrScriptPubKeyLengthMismatch describes a scriptPubKey whose
	// declared program length does not match the number of bytes that
	// follow it.
	ErrScriptPubKeyLengthMismatch = errors.New("scriptpubkey length mismatch")

	// ErrInvalidScriptVersion describes a witness version outside the
	// valid range of 0 through 16.
	ErrInvalidScriptVersion = errors.New("invalid script version")

	// ErrInvalidProgramLength describes a witness program that is not
	// between 2 and 40 bytes.
	ErrInvalidProgramLength = errors.New("invalid witness program length")

	// ErrInvalidVersionLength describes a version 0 witness program that
	// is not exactly 20 or 32 bytes.
	ErrInvalidVersionLength = errors.New("program length incompatible with witness version")
)
