package decoder

import (
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	"github.com/cosmos/abidecoder/types"
	"github.com/cosmos/abidecoder/utils"

	errorsmod "cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

// Category is the normalization class of a declared parameter type.
type Category uint8

const (
	CategoryOther Category = iota
	CategoryUnsigned
	CategorySigned
	CategoryAddress
)

func (c Category) String() string {
	switch c {
	case CategoryUnsigned:
		return "unsigned"
	case CategorySigned:
		return "signed"
	case CategoryAddress:
		return "address"
	default:
		return "other"
	}
}

// Normalizer transforms one scalar raw value.
type Normalizer func(string) (string, error)

// Call data and logs use different dispatch tables. Call parameters are
// classified by type prefix, so arrays such as "uint256[]" or "address[]" are
// normalized element-wise. Log parameters are classified by exact type name
// and addresses may carry topic padding.
var (
	callNormalizers = map[Category]Normalizer{
		CategoryUnsigned: canonicalUnsigned,
		CategorySigned:   canonicalSigned,
		CategoryAddress:  lowerAddress,
	}

	logNormalizers = map[Category]Normalizer{
		CategoryUnsigned: canonicalUnsigned,
		CategorySigned:   canonicalSigned,
		CategoryAddress:  topicAddress,
	}
)

// classifyCallType classifies a call parameter type by prefix.
func classifyCallType(t string) Category {
	switch {
	case strings.HasPrefix(t, "uint"):
		return CategoryUnsigned
	case strings.HasPrefix(t, "int"):
		return CategorySigned
	case strings.HasPrefix(t, "address"):
		return CategoryAddress
	default:
		return CategoryOther
	}
}

// classifyLogType classifies an event parameter type by exact name. Only
// "uint256", "uint8" and "int" are numeric here.
func classifyLogType(t string) Category {
	switch t {
	case "address":
		return CategoryAddress
	case "uint256", "uint8":
		return CategoryUnsigned
	case "int":
		return CategorySigned
	default:
		return CategoryOther
	}
}

// normalize applies the table entry for category to a scalar, or element-wise
// to a list. Values of unmapped categories pass through.
func normalize(table map[Category]Normalizer, category Category, v types.Value) (types.Value, error) {
	fn, ok := table[category]
	if !ok {
		return v, nil
	}
	return v.Map(fn)
}

func lowerAddress(s string) (string, error) {
	return utils.LowerAddress(s), nil
}

func topicAddress(s string) (string, error) {
	return utils.CanonicalTopicAddress(s), nil
}

// canonicalUnsigned renders an unsigned integer given in base 16 ("0x"
// prefixed) or base 10 as a base-10 string.
func canonicalUnsigned(s string) (string, error) {
	if digits, ok := strings.CutPrefix(s, types.HexPrefix); ok {
		if digits == "" {
			return "", errorsmod.Wrapf(types.ErrNumericParse, "empty hex number %q", s)
		}
		// uint256 rejects leading zeros, topics are always zero-padded
		trimmed := strings.TrimLeft(digits, "0")
		if trimmed == "" {
			return "0", nil
		}
		u, err := uint256.FromHex(types.HexPrefix + trimmed)
		if err != nil {
			return "", errorsmod.Wrapf(types.ErrNumericParse, "%q: %s", s, err)
		}
		return u.Dec(), nil
	}

	u, err := uint256.FromDecimal(s)
	if err != nil {
		return "", errorsmod.Wrapf(types.ErrNumericParse, "%q: %s", s, err)
	}
	return u.Dec(), nil
}

// canonicalSigned renders a signed integer as a base-10 string. Hex input is
// read as an unsigned magnitude.
func canonicalSigned(s string) (string, error) {
	if digits, ok := strings.CutPrefix(s, types.HexPrefix); ok {
		bi, ok := new(big.Int).SetString(digits, 16)
		if !ok {
			return "", errorsmod.Wrapf(types.ErrNumericParse, "invalid hex number %q", s)
		}
		if bi.BitLen() > sdkmath.MaxBitLen {
			return "", errorsmod.Wrapf(types.ErrNumericParse, "%q exceeds %d bits", s, sdkmath.MaxBitLen)
		}
		return sdkmath.NewIntFromBigInt(bi).String(), nil
	}

	i, ok := sdkmath.NewIntFromString(s)
	if !ok {
		return "", errorsmod.Wrapf(types.ErrNumericParse, "invalid decimal number %q", s)
	}
	return i.String(), nil
}
