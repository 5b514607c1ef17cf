package codec

import (
	"bytes"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

var (
	errorSelector = crypto.Keccak256([]byte("Error(string)"))[:4]
	panicSelector = crypto.Keccak256([]byte("Panic(uint256)"))[:4]
)

// RevertReasonBytes ABI-encodes reason as Error(string) revert data.
func RevertReasonBytes(reason string) ([]byte, error) {
	packed, err := EncodeParameters([]types.TypeDescriptor{{Type: "string"}}, reason)
	if err != nil {
		return nil, err
	}
	bz := make([]byte, 0, len(errorSelector)+len(packed))
	bz = append(bz, errorSelector...)
	bz = append(bz, packed...)
	return bz, nil
}

// IsRevertData reports whether data starts with the Error(string) or
// Panic(uint256) selector.
func IsRevertData(data []byte) bool {
	if len(data) < len(errorSelector) {
		return false
	}
	return bytes.Equal(data[:4], errorSelector) || bytes.Equal(data[:4], panicSelector)
}

// DecodeRevert returns the reason carried by Error(string) or
// Panic(uint256) revert data. Panic codes are rendered as their compiler
// description.
func DecodeRevert(data []byte) (string, error) {
	if !IsRevertData(data) {
		return "", errorsmod.Wrap(types.ErrCodec, "not revert data")
	}
	reason, err := abi.UnpackRevert(data)
	if err != nil {
		return "", errorsmod.Wrapf(types.ErrCodec, "unpack revert: %s", err)
	}
	return reason, nil
}
