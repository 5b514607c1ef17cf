package signature

import (
	"strings"

	"github.com/ethereum/go-ethereum/crypto"

	"github.com/cosmos/abidecoder/types"
)

// Hasher is the hashing primitive used to derive selectors and topics. It
// returns a "0x"-prefixed hex digest, or false when it yields no result.
type Hasher interface {
	Hash(s string) (string, bool)
}

// Keccak256Hasher hashes with legacy Keccak-256.
type Keccak256Hasher struct{}

var _ Hasher = Keccak256Hasher{}

// Hash returns the Keccak-256 digest of s. Empty input yields no result.
func (Keccak256Hasher) Hash(s string) (string, bool) {
	if s == "" {
		return "", false
	}
	return crypto.Keccak256Hash([]byte(s)).Hex(), true
}

// Computer derives canonical signature strings and registry keys from schema
// entries.
type Computer struct {
	hasher Hasher
}

// NewComputer returns a Computer using the given hasher. A nil hasher falls
// back to Keccak-256.
func NewComputer(hasher Hasher) Computer {
	if hasher == nil {
		hasher = Keccak256Hasher{}
	}
	return Computer{hasher: hasher}
}

// String renders the canonical signature `name(type1,type2,...)`.
func String(entry types.SchemaEntry) string {
	return entry.Name + "(" + joinTypes(entry.Inputs) + ")"
}

// TypeString renders a single parameter type. Plain tuples are rendered as a
// parenthesized list of their components; every other type name is kept
// verbatim.
func TypeString(d types.TypeDescriptor) string {
	if d.IsTuple() {
		return "(" + joinTypes(d.Components) + ")"
	}
	return d.Type
}

func joinTypes(ds []types.TypeDescriptor) string {
	parts := make([]string, len(ds))
	for i, d := range ds {
		parts[i] = TypeString(d)
	}
	return strings.Join(parts, ",")
}

// Key returns the registry key of the entry: the full topic hash for events
// and the 4-byte selector otherwise, as lowercase hex without prefix. It
// returns false when the hasher yields no digest.
func (c Computer) Key(entry types.SchemaEntry) (string, bool) {
	digest, ok := c.hasher.Hash(String(entry))
	if !ok {
		return "", false
	}
	digest = strings.ToLower(strings.TrimPrefix(digest, types.HexPrefix))
	if entry.Kind() == types.KindEvent {
		if len(digest) < types.TopicHexLength {
			return "", false
		}
		return digest[:types.TopicHexLength], true
	}
	if len(digest) < types.SelectorHexLength {
		return "", false
	}
	return digest[:types.SelectorHexLength], true
}

// Selector returns the "0x"-prefixed 4-byte selector of a function entry.
func (c Computer) Selector(entry types.SchemaEntry) (string, bool) {
	digest, ok := c.hasher.Hash(String(entry))
	if !ok || len(digest) < len(types.HexPrefix)+types.SelectorHexLength {
		return "", false
	}
	return strings.ToLower(digest[:len(types.HexPrefix)+types.SelectorHexLength]), true
}

// Topic returns the "0x"-prefixed topic hash of an event entry.
func (c Computer) Topic(entry types.SchemaEntry) (string, bool) {
	digest, ok := c.hasher.Hash(String(entry))
	if !ok {
		return "", false
	}
	return strings.ToLower(digest), true
}
