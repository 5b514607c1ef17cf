package codec

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/cosmos/abidecoder/types"

	errorsmod "cosmossdk.io/errors"
)

// Codec decodes ABI encoded parameters into raw values, ordered like the
// declared parameters.
type Codec interface {
	DecodeParameters(params []types.TypeDescriptor, data []byte) ([]types.Value, error)
}

// EthCodec implements Codec on top of the go-ethereum ABI packer.
//
// Raw values are rendered the way JSON clients expect them: integers as
// base-10 strings, addresses as EIP-55 checksummed hex, byte strings as
// "0x"-prefixed hex, arrays and tuples as lists.
type EthCodec struct{}

var _ Codec = EthCodec{}

// DecodeParameters unpacks data against params.
func (EthCodec) DecodeParameters(params []types.TypeDescriptor, data []byte) ([]types.Value, error) {
	args, err := NewArguments(params)
	if err != nil {
		return nil, err
	}

	unpacked, err := args.Unpack(data)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrCodec, err.Error())
	}
	if len(unpacked) != len(args) {
		return nil, errorsmod.Wrapf(types.ErrCodec, "expected %d values, got %d", len(args), len(unpacked))
	}

	values := make([]types.Value, len(unpacked))
	for i, raw := range unpacked {
		if values[i], err = toValue(args[i].Type, reflect.ValueOf(raw)); err != nil {
			return nil, err
		}
	}
	return values, nil
}

// EncodeParameters packs Go values against params. Values must use the Go
// types go-ethereum maps the ABI types to (*big.Int, common.Address, ...).
func EncodeParameters(params []types.TypeDescriptor, values ...interface{}) ([]byte, error) {
	args, err := NewArguments(params)
	if err != nil {
		return nil, err
	}
	packed, err := args.Pack(values...)
	if err != nil {
		return nil, errorsmod.Wrap(types.ErrCodec, err.Error())
	}
	return packed, nil
}

// NewArguments builds non-indexed go-ethereum arguments from descriptors.
func NewArguments(params []types.TypeDescriptor) (abi.Arguments, error) {
	args := make(abi.Arguments, len(params))
	for i, p := range params {
		typ, err := abi.NewType(canonicalType(p.Type), p.InternalType, toMarshaling(p.Components))
		if err != nil {
			return nil, errorsmod.Wrapf(types.ErrCodec, "parameter %d (%s): %s", i, p.Type, err)
		}
		args[i] = abi.Argument{Name: p.Name, Type: typ}
	}
	return args, nil
}

// DecodeHex decodes an unprefixed hex payload.
func DecodeHex(s string) ([]byte, error) {
	bz, err := hexutil.Decode(types.HexPrefix + s)
	if err != nil {
		return nil, errorsmod.Wrapf(types.ErrCodec, "invalid hex payload: %s", err)
	}
	return bz, nil
}

// canonicalType expands the int/uint/byte aliases, keeping any array suffix.
func canonicalType(t string) string {
	base, suffix := t, ""
	if i := strings.IndexByte(t, '['); i >= 0 {
		base, suffix = t[:i], t[i:]
	}
	switch base {
	case "int":
		base = "int256"
	case "uint":
		base = "uint256"
	case "byte":
		base = "bytes1"
	}
	return base + suffix
}

// toMarshaling converts tuple components. go-ethereum derives struct field
// names from component names, so anonymous components get a positional name.
func toMarshaling(components []types.TypeDescriptor) []abi.ArgumentMarshaling {
	if len(components) == 0 {
		return nil
	}
	out := make([]abi.ArgumentMarshaling, len(components))
	for i, c := range components {
		name := c.Name
		if abi.ToCamelCase(name) == "" {
			name = fmt.Sprintf("field%d", i)
		}
		out[i] = abi.ArgumentMarshaling{
			Name:         name,
			Type:         canonicalType(c.Type),
			InternalType: c.InternalType,
			Components:   toMarshaling(c.Components),
			Indexed:      c.Indexed,
		}
	}
	return out
}

func toValue(t abi.Type, v reflect.Value) (types.Value, error) {
	if v.Kind() == reflect.Ptr && t.T != abi.IntTy && t.T != abi.UintTy {
		v = v.Elem()
	}

	switch t.T {
	case abi.TupleTy:
		items := make([]types.Value, len(t.TupleElems))
		for i, elem := range t.TupleElems {
			item, err := toValue(*elem, v.Field(i))
			if err != nil {
				return types.Value{}, err
			}
			items[i] = item
		}
		return types.NewList(items...), nil

	case abi.SliceTy, abi.ArrayTy:
		items := make([]types.Value, v.Len())
		for i := range items {
			item, err := toValue(*t.Elem, v.Index(i))
			if err != nil {
				return types.Value{}, err
			}
			items[i] = item
		}
		return types.NewList(items...), nil

	case abi.IntTy, abi.UintTy:
		return integerValue(v)

	case abi.AddressTy:
		addr, ok := v.Interface().(common.Address)
		if !ok {
			return types.Value{}, errorsmod.Wrapf(types.ErrCodec, "unexpected address value %T", v.Interface())
		}
		return types.NewScalar(addr.Hex()), nil

	case abi.BoolTy:
		return types.NewScalar(strconv.FormatBool(v.Bool())), nil

	case abi.StringTy:
		return types.NewScalar(v.String()), nil

	case abi.BytesTy:
		return types.NewScalar(hexutil.Encode(v.Bytes())), nil

	case abi.FixedBytesTy, abi.FunctionTy, abi.HashTy:
		bz := make([]byte, v.Len())
		for i := range bz {
			bz[i] = byte(v.Index(i).Uint())
		}
		return types.NewScalar(hexutil.Encode(bz)), nil

	default:
		return types.NewScalar(fmt.Sprint(v.Interface())), nil
	}
}

func integerValue(v reflect.Value) (types.Value, error) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return types.NewScalar(strconv.FormatInt(v.Int(), 10)), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return types.NewScalar(strconv.FormatUint(v.Uint(), 10)), nil
	}
	bi, ok := v.Interface().(*big.Int)
	if !ok || bi == nil {
		return types.Value{}, errorsmod.Wrapf(types.ErrCodec, "unexpected integer value %T", v.Interface())
	}
	return types.NewScalar(bi.String()), nil
}
