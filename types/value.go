package types

import (
	"encoding/json"
	"strings"
)

// Value is a decoded parameter value. It is either a scalar string or an
// ordered list of values (arrays and tuples).
type Value struct {
	scalar string
	items  []Value
	list   bool
}

// NewScalar returns a scalar value.
func NewScalar(s string) Value {
	return Value{scalar: s}
}

// NewList returns a list value holding the given items in order.
func NewList(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{items: items, list: true}
}

// NewStringList is a shorthand for a list of scalar values.
func NewStringList(ss ...string) Value {
	items := make([]Value, len(ss))
	for i, s := range ss {
		items[i] = NewScalar(s)
	}
	return NewList(items...)
}

// IsList reports whether the value is a list.
func (v Value) IsList() bool {
	return v.list
}

// Scalar returns the scalar string. It is empty for lists.
func (v Value) Scalar() string {
	return v.scalar
}

// Items returns the list items. It is nil for scalars.
func (v Value) Items() []Value {
	return v.items
}

// Map applies fn to a scalar value, or element-wise to every scalar of a list.
func (v Value) Map(fn func(string) (string, error)) (Value, error) {
	if !v.list {
		s, err := fn(v.scalar)
		if err != nil {
			return Value{}, err
		}
		return NewScalar(s), nil
	}
	items := make([]Value, len(v.items))
	for i, item := range v.items {
		mapped, err := item.Map(fn)
		if err != nil {
			return Value{}, err
		}
		items[i] = mapped
	}
	return NewList(items...), nil
}

// Equal reports whether two values hold the same content.
func (v Value) Equal(o Value) bool {
	if v.list != o.list {
		return false
	}
	if !v.list {
		return v.scalar == o.scalar
	}
	if len(v.items) != len(o.items) {
		return false
	}
	for i := range v.items {
		if !v.items[i].Equal(o.items[i]) {
			return false
		}
	}
	return true
}

func (v Value) String() string {
	if !v.list {
		return v.scalar
	}
	parts := make([]string, len(v.items))
	for i, item := range v.items {
		parts[i] = item.String()
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// MarshalJSON encodes a scalar as a JSON string and a list as a JSON array.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.list {
		return json.Marshal(v.items)
	}
	return json.Marshal(v.scalar)
}

// UnmarshalJSON accepts a JSON string or a (nested) array of strings.
func (v *Value) UnmarshalJSON(bz []byte) error {
	var items []Value
	if err := json.Unmarshal(bz, &items); err == nil {
		*v = NewList(items...)
		return nil
	}
	var s string
	if err := json.Unmarshal(bz, &s); err != nil {
		return err
	}
	*v = NewScalar(s)
	return nil
}
