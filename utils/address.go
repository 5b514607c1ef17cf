package utils

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"github.com/cosmos/abidecoder/types"
)

// LowerAddress returns the canonical lowercase form of a hex address string.
// Checksummed (EIP-55) and lowercase inputs map to the same value.
func LowerAddress(s string) string {
	return strings.ToLower(s)
}

// TrimTopicPadding shortens a zero-padded 32-byte topic holding an address
// to "0x" followed by 40 hex characters, by removing the excess characters
// right after the prefix. Strings of canonical length or shorter are
// returned unchanged.
func TrimTopicPadding(s string) string {
	excess := len(s) - types.AddressHexLength
	if excess <= 0 {
		return s
	}
	return s[:len(types.HexPrefix)] + s[len(types.HexPrefix)+excess:]
}

// CanonicalTopicAddress lowercases an address that may come from an indexed
// topic and drops its padding.
func CanonicalTopicAddress(s string) string {
	return TrimTopicPadding(LowerAddress(s))
}

// IsHexAddress reports whether s is a valid hex encoded address, with or
// without the "0x" prefix.
func IsHexAddress(s string) bool {
	return common.IsHexAddress(s)
}

// ChecksumAddress returns the EIP-55 form of a hex address string.
func ChecksumAddress(s string) string {
	return common.HexToAddress(s).Hex()
}
