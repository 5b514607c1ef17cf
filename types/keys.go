package types

const (
	// ModuleName is the codespace used for the decoder's registered errors
	ModuleName = "abidecoder"

	// HexPrefix is the textual prefix of every hex string handled by the decoder
	HexPrefix = "0x"

	// SelectorHexLength is the number of hex characters of a function selector (4 bytes)
	SelectorHexLength = 8
	// TopicHexLength is the number of hex characters of an event topic (32 bytes)
	TopicHexLength = 64
	// AddressHexLength is the canonical length of a "0x"-prefixed address string
	AddressHexLength = 42
)
