package codec_test

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	"github.com/cosmos/abidecoder/codec"
	"github.com/cosmos/abidecoder/types"
)

var (
	fromAddr = common.HexToAddress("0x5e10753c2dee7bab38cfcd319f3bd7dbdfd979dc")
	toAddr   = common.HexToAddress("0x93997b4dd49add584bc5da80f3fcfc8bcd4d89e6")
)

func TestDecodeParameters(t *testing.T) {
	ercInfo := []types.TypeDescriptor{
		{Name: "chain", Type: "uint256"},
		{Name: "addr", Type: "address"},
	}

	testCases := []struct {
		name   string
		params []types.TypeDescriptor
		values []interface{}
		exp    []types.Value
	}{
		{
			"address and uint256",
			[]types.TypeDescriptor{{Name: "to", Type: "address"}, {Name: "amount", Type: "uint256"}},
			[]interface{}{toAddr, big.NewInt(20)},
			[]types.Value{types.NewScalar(toAddr.Hex()), types.NewScalar("20")},
		},
		{
			"small and signed integers",
			[]types.TypeDescriptor{{Type: "uint8"}, {Type: "int64"}, {Type: "int"}},
			[]interface{}{uint8(7), int64(-3), big.NewInt(-42)},
			[]types.Value{types.NewScalar("7"), types.NewScalar("-3"), types.NewScalar("-42")},
		},
		{
			"bool string and bytes",
			[]types.TypeDescriptor{{Type: "bool"}, {Type: "string"}, {Type: "bytes"}, {Type: "bytes4"}},
			[]interface{}{true, "hello", []byte{0xff, 0x01}, [4]byte{0xde, 0xad, 0xbe, 0xef}},
			[]types.Value{
				types.NewScalar("true"),
				types.NewScalar("hello"),
				types.NewScalar("0xff01"),
				types.NewScalar("0xdeadbeef"),
			},
		},
		{
			"arrays",
			[]types.TypeDescriptor{{Type: "address[]"}, {Type: "uint256[2]"}},
			[]interface{}{
				[]common.Address{fromAddr, toAddr},
				[2]*big.Int{big.NewInt(1), big.NewInt(2)},
			},
			[]types.Value{
				types.NewStringList(fromAddr.Hex(), toAddr.Hex()),
				types.NewStringList("1", "2"),
			},
		},
		{
			"tuple",
			[]types.TypeDescriptor{
				{Name: "from", Type: "tuple", Components: ercInfo},
				{Name: "ercType", Type: "uint8"},
			},
			[]interface{}{
				struct {
					Chain *big.Int
					Addr  common.Address
				}{big.NewInt(1), fromAddr},
				uint8(2),
			},
			[]types.Value{
				types.NewList(types.NewScalar("1"), types.NewScalar(fromAddr.Hex())),
				types.NewScalar("2"),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := codec.EncodeParameters(tc.params, tc.values...)
			require.NoError(t, err)

			values, err := codec.EthCodec{}.DecodeParameters(tc.params, data)
			require.NoError(t, err)
			require.Len(t, values, len(tc.exp))
			for i := range tc.exp {
				require.True(t, tc.exp[i].Equal(values[i]), "param %d: expected %s, got %s", i, tc.exp[i], values[i])
			}
		})
	}
}

func TestDecodeParametersAnonymousTupleComponents(t *testing.T) {
	params := []types.TypeDescriptor{
		{Type: "tuple", Components: []types.TypeDescriptor{{Type: "uint256"}, {Type: "bool"}}},
	}
	data, err := codec.EncodeParameters(params, struct {
		Field0 *big.Int
		Field1 bool
	}{big.NewInt(9), true})
	require.NoError(t, err)

	values, err := codec.EthCodec{}.DecodeParameters(params, data)
	require.NoError(t, err)
	require.True(t, types.NewStringList("9", "true").Equal(values[0]))
}

func TestDecodeParametersErrors(t *testing.T) {
	testCases := []struct {
		name   string
		params []types.TypeDescriptor
		data   []byte
	}{
		{"unknown type", []types.TypeDescriptor{{Type: "foo"}}, make([]byte, 32)},
		{"short payload", []types.TypeDescriptor{{Type: "uint256"}, {Type: "address"}}, make([]byte, 32)},
		{"empty payload", []types.TypeDescriptor{{Type: "uint256"}}, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := codec.EthCodec{}.DecodeParameters(tc.params, tc.data)
			require.ErrorIs(t, err, types.ErrCodec)
		})
	}
}

func TestDecodeParametersNoParams(t *testing.T) {
	values, err := codec.EthCodec{}.DecodeParameters(nil, nil)
	require.NoError(t, err)
	require.Empty(t, values)
}

func TestDecodeHex(t *testing.T) {
	bz, err := codec.DecodeHex("0a0b")
	require.NoError(t, err)
	require.Equal(t, []byte{0x0a, 0x0b}, bz)

	bz, err = codec.DecodeHex("")
	require.NoError(t, err)
	require.Empty(t, bz)

	_, err = codec.DecodeHex("zz")
	require.ErrorIs(t, err, types.ErrCodec)

	_, err = codec.DecodeHex("abc")
	require.ErrorIs(t, err, types.ErrCodec)
}
