package core

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Kind enumerates the closed set of value variants a query result cell can hold.
type Kind int

const (
	// KindNull is the absent / null variant.
	KindNull Kind = iota
	// KindBool is a boolean.
	KindBool
	// KindNumber is a float64-backed number.
	KindNumber
	// KindString is a UTF-8 string.
	KindString
	// KindSequence is an ordered list of values.
	KindSequence
	// KindMapping is a string-keyed map of values.
	KindMapping
)

// String returns the lowercase variant name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "unknown"
	}
}

// Value is an explicit tagged variant over the shapes a graph query can
// return: null, boolean, number, string, sequence or mapping. Both the
// executor and the persistence path convert to and from Value so the rest of
// the system never probes driver-native record types.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	seq  []Value
	m    map[string]Value
}

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a float64.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Sequence wraps an ordered list of values.
func Sequence(vals ...Value) Value {
	seq := make([]Value, len(vals))
	copy(seq, vals)
	return Value{kind: KindSequence, seq: seq}
}

// Mapping wraps a string-keyed map of values.
func Mapping(m map[string]Value) Value {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Value{kind: KindMapping, m: cp}
}

// Kind reports the variant held by the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is the null variant.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload; ok is false for other variants.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the numeric payload; ok is false for other variants.
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsString returns the string payload; ok is false for other variants.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsSequence returns a copy of the sequence payload; ok is false for other variants.
func (v Value) AsSequence() ([]Value, bool) {
	if v.kind != KindSequence {
		return nil, false
	}
	seq := make([]Value, len(v.seq))
	copy(seq, v.seq)
	return seq, true
}

// AsMapping returns a copy of the mapping payload; ok is false for other variants.
func (v Value) AsMapping() (map[string]Value, bool) {
	if v.kind != KindMapping {
		return nil, false
	}
	m := make(map[string]Value, len(v.m))
	for k, val := range v.m {
		m[k] = val
	}
	return m, true
}

// ValueOf converts an arbitrary Go value into a Value. Supported inputs are
// nil, booleans, all integer and float types, strings, []any, map[string]any
// and nested Values; anything else is stringified.
func ValueOf(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null()
	case Value:
		return t
	case bool:
		return Bool(t)
	case int:
		return Number(float64(t))
	case int8:
		return Number(float64(t))
	case int16:
		return Number(float64(t))
	case int32:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint:
		return Number(float64(t))
	case uint8:
		return Number(float64(t))
	case uint16:
		return Number(float64(t))
	case uint32:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case float32:
		return Number(float64(t))
	case float64:
		return Number(t)
	case string:
		return String(t)
	case []any:
		seq := make([]Value, len(t))
		for i, item := range t {
			seq[i] = ValueOf(item)
		}
		return Value{kind: KindSequence, seq: seq}
	case map[string]any:
		m := make(map[string]Value, len(t))
		for k, item := range t {
			m[k] = ValueOf(item)
		}
		return Value{kind: KindMapping, m: m}
	case []Value:
		return Sequence(t...)
	case map[string]Value:
		return Mapping(t)
	default:
		return String(fmt.Sprintf("%v", t))
	}
}

// Interface converts the value back into plain Go types (nil, bool, float64,
// string, []any, map[string]any), the shape encoding/json produces.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindString:
		return v.s
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, item := range v.seq {
			out[i] = item.Interface()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, item := range v.m {
			out[k] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON encodes the value as its natural JSON shape.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// UnmarshalJSON decodes any JSON shape into the matching variant.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*v = ValueOf(raw)
	return nil
}

// Record is one row of a query result. Keys are query-defined, not fixed
// schema. Rows are ordered within a result; keys within a row are not.
type Record map[string]Value

// Keys returns the record's keys in sorted order, for deterministic output.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
