package btype

import (
	"encoding/hex"
	"fmt"
)

// ToJSON returns the canonical JSON projection of a value: enumerations as
// hyphenated names, octet strings as hexadecimal, bit strings as boolean
// lists, and constructed values as maps and lists. FromJSON reverses the
// projection through the Type's Cast.
func ToJSON(v Value) any {
	switch v := v.(type) {
	case Null:
		return nil
	case nil, bool, uint64, int64, float32, float64, string:
		return v
	case []byte:
		return hex.EncodeToString(v)
	case BitString:
		bools := make([]any, v.Len())
		for i := range bools {
			bools[i] = v.Bit(i)
		}
		return bools
	case ObjectID:
		return v.String()
	case Date:
		return v.String()
	case Time:
		return v.String()
	case DateTime:
		return v.String()
	case TimeStamp:
		return v.String()
	case StatusFlags:
		return []any{v.InAlarm, v.Fault, v.Overridden, v.OutOfService}
	case EventTransitionBits:
		return []any{v.ToOffnormal, v.ToFault, v.ToNormal}
	case LimitEnable:
		return []any{v.LowLimitEnable, v.HighLimitEnable}
	case DaysOfWeek:
		days := make([]any, 7)
		for i := range days {
			days[i] = v.Day(i + 1)
		}
		return days
	case Sequence:
		m := make(map[string]any, len(v))
		for name, f := range v {
			m[KebabOf(name)] = ToJSON(f)
		}
		return m
	case []Value:
		elems := make([]any, len(v))
		for i := range v {
			elems[i] = ToJSON(v[i])
		}
		return elems
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FromJSON applies the datatype's Cast to a decoded JSON value, after
// normalising the unmarshaller's generic forms.
func FromJSON(t Type, v any) (Value, error) {
	if s, ok := v.(string); ok && t == OctetStringType {
		octets, err := hex.DecodeString(s)
		if err != nil {
			return nil, ErrInvalidDataType
		}
		return octets, nil
	}
	return t.Cast(normalizeJSON(v))
}

func normalizeJSON(v any) any {
	switch v := v.(type) {
	case []any:
		if bools, ok := asBools(v); ok {
			return bools
		}
		return v
	default:
		return v
	}
}

func asBools(elems []any) ([]bool, bool) {
	if len(elems) == 0 {
		return nil, false
	}
	bools := make([]bool, len(elems))
	for i, e := range elems {
		b, ok := e.(bool)
		if !ok {
			return nil, false
		}
		bools[i] = b
	}
	return bools, true
}
