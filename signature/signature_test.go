package signature_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/abidecoder/signature"
	"github.com/cosmos/abidecoder/types"
)

type nilHasher struct{}

func (nilHasher) Hash(string) (string, bool) { return "", false }

func transferEntry() types.SchemaEntry {
	return types.SchemaEntry{
		Name: "transfer",
		Type: types.TypeFunction,
		Inputs: []types.TypeDescriptor{
			{Name: "to", Type: "address"},
			{Name: "amount", Type: "uint256"},
		},
	}
}

func transferEventEntry() types.SchemaEntry {
	return types.SchemaEntry{
		Name: "Transfer",
		Type: types.TypeEvent,
		Inputs: []types.TypeDescriptor{
			{Name: "from", Type: "address", Indexed: true},
			{Name: "to", Type: "address", Indexed: true},
			{Name: "value", Type: "uint256"},
		},
	}
}

func TestString(t *testing.T) {
	testCases := []struct {
		name  string
		entry types.SchemaEntry
		exp   string
	}{
		{
			"no inputs",
			types.SchemaEntry{Name: "totalSupply", Type: types.TypeFunction},
			"totalSupply()",
		},
		{
			"flat inputs",
			transferEntry(),
			"transfer(address,uint256)",
		},
		{
			"tuple input",
			types.SchemaEntry{
				Name: "createMap",
				Inputs: []types.TypeDescriptor{
					{Name: "from", Type: "tuple", Components: []types.TypeDescriptor{
						{Name: "chain", Type: "uint256"},
						{Name: "addr", Type: "address"},
					}},
					{Name: "ercType", Type: "uint8"},
				},
			},
			"createMap((uint256,address),uint8)",
		},
		{
			"tuple nested two levels",
			types.SchemaEntry{
				Name: "name",
				Inputs: []types.TypeDescriptor{
					{Type: "tuple", Components: []types.TypeDescriptor{
						{Type: "tuple", Components: []types.TypeDescriptor{
							{Type: "inner"},
							{Type: "inner2"},
						}},
					}},
				},
			},
			"name(((inner,inner2)))",
		},
		{
			"tuple array kept verbatim",
			types.SchemaEntry{
				Name: "listMappingsOf",
				Inputs: []types.TypeDescriptor{
					{Name: "maps", Type: "tuple[]", Components: []types.TypeDescriptor{{Type: "uint256"}}},
				},
			},
			"listMappingsOf(tuple[])",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.exp, signature.String(tc.entry))
			// deterministic
			require.Equal(t, signature.String(tc.entry), signature.String(tc.entry))
		})
	}
}

func TestKey(t *testing.T) {
	c := signature.NewComputer(nil)

	key, ok := c.Key(transferEntry())
	require.True(t, ok)
	require.Equal(t, "a9059cbb", key)

	key, ok = c.Key(transferEventEntry())
	require.True(t, ok)
	require.Equal(t, "ddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", key)

	// entries that are neither function nor event hash like functions
	other := transferEntry()
	other.Type = "constructor"
	key, ok = c.Key(other)
	require.True(t, ok)
	require.Equal(t, "a9059cbb", key)
}

func TestKeyNoDigest(t *testing.T) {
	c := signature.NewComputer(nilHasher{})
	_, ok := c.Key(transferEntry())
	require.False(t, ok)
	_, ok = c.Selector(transferEntry())
	require.False(t, ok)
	_, ok = c.Topic(transferEventEntry())
	require.False(t, ok)
}

func TestSelectorAndTopic(t *testing.T) {
	c := signature.NewComputer(signature.Keccak256Hasher{})

	sel, ok := c.Selector(transferEntry())
	require.True(t, ok)
	require.Equal(t, "0xa9059cbb", sel)

	topic, ok := c.Topic(transferEventEntry())
	require.True(t, ok)
	require.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", topic)
}

func TestKeccak256HasherEmpty(t *testing.T) {
	_, ok := signature.Keccak256Hasher{}.Hash("")
	require.False(t, ok)
}
