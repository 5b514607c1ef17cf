package types

import (
	errorsmod "cosmossdk.io/errors"
)

// abidecoder sentinel errors
var (
	// ErrRegistrationType is returned when schema entries are not supplied as a sequence.
	ErrRegistrationType = errorsmod.Register(ModuleName, 1, "schema entries must be an array")
	// ErrCodec wraps failures of the ABI codec and malformed payloads.
	ErrCodec = errorsmod.Register(ModuleName, 2, "abi decoding failed")
	// ErrNumericParse is returned when a numeric value cannot be canonicalized.
	ErrNumericParse = errorsmod.Register(ModuleName, 3, "malformed numeric value")
	// ErrInvalidConfig is returned by configuration validation.
	ErrInvalidConfig = errorsmod.Register(ModuleName, 4, "invalid configuration")
)
