package tweaks

import (
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"
)

// ValueType indicates which kind of value a Value contains.
type ValueType int

const (
	// BoolType means the value is a boolean.
	BoolType ValueType = iota
	// StringType means the value is a string.
	StringType
	// NumberType means the value is a number. Numbers are always represented
	// internally as float64, as in JSON.
	NumberType
)

// String returns the name of the value type.
func (t ValueType) String() string {
	switch t {
	case BoolType:
		return "bool"
	case StringType:
		return "string"
	case NumberType:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a typed tweak value: a closed tagged union over the three types a
// tweak can have (boolean, string, or number). Exactly one variant is active.
// The zero value is the boolean false.
//
// Unlike ldvalue.Value, a Value never contains arrays, objects, or null, so
// the closed set is enforced once at construction rather than checked at
// every read site. Value contains no reference types and can be compared
// with ==.
type Value struct {
	valueType   ValueType
	boolValue   bool
	stringValue string
	numberValue float64
}

// Bool creates a boolean Value.
func Bool(value bool) Value {
	return Value{valueType: BoolType, boolValue: value}
}

// String creates a string Value.
func String(value string) Value {
	return Value{valueType: StringType, stringValue: value}
}

// Int creates a numeric Value from an integer.
//
// Note that all numbers are represented internally as float64, so Int(2) is
// exactly equal to Float64(2).
func Int(value int) Value {
	return Float64(float64(value))
}

// Float64 creates a numeric Value from a float64.
func Float64(value float64) Value {
	return Value{valueType: NumberType, numberValue: value}
}

// ValueFromArbitrary converts an arbitrary stored value into a Value. It
// returns (Value{}, false) for anything outside the closed set of tweak
// types: nil, slices, maps, structs, and so on. This is the single conversion
// point between an untyped backing store and the typed tweak model.
func ValueFromArbitrary(raw interface{}) (Value, bool) {
	switch v := raw.(type) {
	case Value:
		return v, true
	case ldvalue.Value:
		return ValueFromLDValue(v)
	case string:
		return String(v), true
	case bool:
		return Bool(v), true
	case int:
		return Float64(float64(v)), true
	case int8:
		return Float64(float64(v)), true
	case int16:
		return Float64(float64(v)), true
	case int32:
		return Float64(float64(v)), true
	case int64:
		return Float64(float64(v)), true
	case uint:
		return Float64(float64(v)), true
	case uint8:
		return Float64(float64(v)), true
	case uint16:
		return Float64(float64(v)), true
	case uint32:
		return Float64(float64(v)), true
	case uint64:
		return Float64(float64(v)), true
	case float32:
		return Float64(float64(v)), true
	case float64:
		return Float64(v), true
	default:
		return Value{}, false
	}
}

// ValueFromLDValue converts an ldvalue.Value into a Value, returning
// (Value{}, false) if it is not a boolean, string, or number.
func ValueFromLDValue(value ldvalue.Value) (Value, bool) {
	switch value.Type() {
	case ldvalue.BoolType:
		return Bool(value.BoolValue()), true
	case ldvalue.StringType:
		return String(value.StringValue()), true
	case ldvalue.NumberType:
		return Float64(value.Float64Value()), true
	default:
		return Value{}, false
	}
}

// Type returns the ValueType of the Value.
func (v Value) Type() ValueType {
	return v.valueType
}

// BoolValue returns the Value as a boolean, or false if it is not a boolean.
func (v Value) BoolValue() bool {
	return v.valueType == BoolType && v.boolValue
}

// StringValue returns the Value as a string, or "" if it is not a string.
func (v Value) StringValue() string {
	if v.valueType == StringType {
		return v.stringValue
	}
	return ""
}

// Float64Value returns the Value as a float64, or 0 if it is not a number.
func (v Value) Float64Value() float64 {
	if v.valueType == NumberType {
		return v.numberValue
	}
	return 0
}

// IntValue returns the Value as an int, truncating toward zero, or 0 if it
// is not a number.
func (v Value) IntValue() int {
	return int(v.Float64Value())
}

// IsInt returns true if the Value is a number with no fractional component.
func (v Value) IsInt() bool {
	return v.valueType == NumberType && v.numberValue == float64(int(v.numberValue))
}

// AsLDValue returns the equivalent ldvalue.Value, which is how values are
// serialized for persisted stores.
func (v Value) AsLDValue() ldvalue.Value {
	switch v.valueType {
	case StringType:
		return ldvalue.String(v.stringValue)
	case NumberType:
		return ldvalue.Float64(v.numberValue)
	default:
		return ldvalue.Bool(v.boolValue)
	}
}

// AsArbitrary returns the value as a plain bool, string, or float64. This is
// the inverse of ValueFromArbitrary for values written back into an untyped
// backing store.
func (v Value) AsArbitrary() interface{} {
	switch v.valueType {
	case StringType:
		return v.stringValue
	case NumberType:
		return v.numberValue
	default:
		return v.boolValue
	}
}

// String returns the JSON representation of the value. This is for
// descriptive purposes only; for serialization use AsLDValue.
func (v Value) String() string {
	return v.AsLDValue().JSONString()
}
