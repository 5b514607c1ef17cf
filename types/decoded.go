package types

// DecodedParam is a single named, typed and normalized parameter.
type DecodedParam struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value Value  `json:"value"`
}

// DecodedMethod is the result of decoding function call data.
type DecodedMethod struct {
	Name   string         `json:"name"`
	Params []DecodedParam `json:"params"`
}

// DecodedEvent is the result of decoding a single event log. Events follow the
// declaration order of the schema inputs, not the physical topic/data order.
type DecodedEvent struct {
	Name    string         `json:"name"`
	Events  []DecodedParam `json:"events"`
	Address string         `json:"address"`
}

// Param returns the decoded parameter with the given name.
func (m *DecodedMethod) Param(name string) (DecodedParam, bool) {
	return findParam(m.Params, name)
}

// Param returns the decoded parameter with the given name.
func (e *DecodedEvent) Param(name string) (DecodedParam, bool) {
	return findParam(e.Events, name)
}

func findParam(params []DecodedParam, name string) (DecodedParam, bool) {
	for _, p := range params {
		if p.Name == name {
			return p, true
		}
	}
	return DecodedParam{}, false
}

// Log is an already-retrieved event log record, with hex string fields as
// returned by the JSON-RPC API.
type Log struct {
	Address string   `json:"address"`
	Topics  []string `json:"topics"`
	Data    string   `json:"data"`

	// metadata carried through from the source, unused by decoding
	BlockNumber uint64 `json:"blockNumber,omitempty"`
	TxHash      string `json:"transactionHash,omitempty"`
	LogIndex    uint64 `json:"logIndex,omitempty"`
}
