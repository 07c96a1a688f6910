package btype

import (
	"fmt"
	"strconv"
	"strings"
)

// KebabOf converts a camel-cased attribute name into the hyphenated form of
// the standard, e.g. "highLimit" becomes "high-limit". The conversion is
// injective together with CamelOf.
func KebabOf(camel string) string {
	var b strings.Builder
	for _, r := range camel {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(byte(r) + 'a' - 'A')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CamelOf converts a hyphenated name into the camel-cased attribute form,
// e.g. "high-limit" becomes "highLimit".
func CamelOf(kebab string) string {
	var b strings.Builder
	up := false
	for _, r := range kebab {
		switch {
		case r == '-':
			up = true
		case up && r >= 'a' && r <= 'z':
			b.WriteByte(byte(r) + 'A' - 'a')
			up = false
		default:
			b.WriteRune(r)
			up = false
		}
	}
	return b.String()
}

// An EnumType describes one enumeration: a vendor-extensible numeric with
// named constants. Values beyond the named range still encode and decode.
// Lookup works by number, by camel-cased name, and by hyphenated name.
type EnumType[E ~uint32] struct {
	name   string
	names  map[E]string
	byName map[string]E
}

// NewEnum returns a descriptor over the given camel-cased constant names.
// Duplicate names across values are a schema error and panic at start-up.
func NewEnum[E ~uint32](name string, names map[E]string) *EnumType[E] {
	t := &EnumType[E]{
		name:   name,
		names:  names,
		byName: make(map[string]E, 2*len(names)),
	}
	for v, n := range names {
		if _, ok := t.byName[n]; ok {
			panic("bacstack: duplicate name " + n + " in enumeration " + name)
		}
		t.byName[n] = v
		t.byName[KebabOf(n)] = v
	}
	return t
}

// Name implements the Type interface.
func (t *EnumType[E]) Name() string { return t.name }

// NameOf returns the camel-cased constant name, or the decimal number for
// values without one.
func (t *EnumType[E]) NameOf(v E) string {
	if n, ok := t.names[v]; ok {
		return n
	}
	return strconv.FormatUint(uint64(v), 10)
}

// ValueOf resolves a camel-cased or hyphenated constant name.
func (t *EnumType[E]) ValueOf(name string) (E, bool) {
	v, ok := t.byName[name]
	return v, ok
}

func (t *EnumType[E]) appTag() uint8 { return TagEnumerated }

func (t *EnumType[E]) content(v Value) ([]byte, error) {
	e, ok := v.(E)
	if !ok {
		return nil, ErrInvalidDataType
	}
	return appendUintContent(nil, uint64(e)), nil
}

func (t *EnumType[E]) fromContent(data []byte) (Value, error) {
	n, err := uintFromContent(data)
	if err != nil {
		return nil, err
	}
	if n > 1<<32-1 {
		return nil, ErrValueOutOfRange
	}
	return E(n), nil
}

// Cast implements the Type interface. Strings resolve by constant name first
// and fall back to a decimal reading.
func (t *EnumType[E]) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case E:
		return v, nil
	case string:
		if e, ok := t.byName[v]; ok {
			return e, nil
		}
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("bacstack: %q is not a %s constant", v, t.name)
		}
		return E(n), nil
	default:
		n, err := castUint(v)
		if err != nil {
			return nil, err
		}
		if n > 1<<32-1 {
			return nil, ErrValueOutOfRange
		}
		return E(n), nil
	}
}
