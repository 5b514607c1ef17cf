package types

const (
	// TypeFunction is the ABI JSON "type" of a function entry.
	TypeFunction = "function"
	// TypeEvent is the ABI JSON "type" of an event entry.
	TypeEvent = "event"
	// TypeTuple is the literal type name of a structured parameter.
	TypeTuple = "tuple"
)

// EntryKind classifies a schema entry for key derivation.
type EntryKind uint8

const (
	// KindOther covers constructors, fallbacks, errors and untyped entries.
	KindOther EntryKind = iota
	KindFunction
	KindEvent
)

func (k EntryKind) String() string {
	switch k {
	case KindFunction:
		return TypeFunction
	case KindEvent:
		return TypeEvent
	default:
		return "other"
	}
}

// TypeDescriptor describes the declared type of a single ABI parameter.
type TypeDescriptor struct {
	Name         string           `json:"name"`
	Type         string           `json:"type"`
	InternalType string           `json:"internalType,omitempty"`
	Indexed      bool             `json:"indexed,omitempty"`
	Components   []TypeDescriptor `json:"components,omitempty"`
}

// IsTuple reports whether the descriptor is a plain (non-array) tuple.
func (d TypeDescriptor) IsTuple() bool {
	return d.Type == TypeTuple
}

// SchemaEntry is one function or event of a contract ABI as found in the
// Solidity ABI JSON format.
type SchemaEntry struct {
	Name            string           `json:"name,omitempty"`
	Type            string           `json:"type,omitempty"`
	Inputs          []TypeDescriptor `json:"inputs"`
	Outputs         []TypeDescriptor `json:"outputs,omitempty"`
	StateMutability string           `json:"stateMutability,omitempty"`
	Anonymous       bool             `json:"anonymous,omitempty"`
}

// Kind returns the entry kind derived from the ABI "type" field.
func (e SchemaEntry) Kind() EntryKind {
	switch e.Type {
	case TypeEvent:
		return KindEvent
	case TypeFunction:
		return KindFunction
	default:
		return KindOther
	}
}

// NonIndexedInputs returns the inputs carried in a log's data payload, in
// declaration order.
func (e SchemaEntry) NonIndexedInputs() []TypeDescriptor {
	inputs := make([]TypeDescriptor, 0, len(e.Inputs))
	for _, in := range e.Inputs {
		if !in.Indexed {
			inputs = append(inputs, in)
		}
	}
	return inputs
}
