package btype

import (
	"fmt"
)

// Sequence is the generic in-memory form of a constructed value: field name
// to value. Absent optional fields have no entry, which is distinct from a
// present Null. Choice values are sequences with exactly one entry.
type Sequence map[string]Value

// NoContext marks a field as untagged, i.e. encoded with its application tag.
const NoContext = -1

// A Field describes one member of a sequence, or one alternative of a choice.
type Field struct {
	Name     string
	Type     Type
	Context  int // context tag number, or NoContext
	Optional bool
}

// Ctx returns a copy of the field with the context tag number set.
func Ctx(name string, t Type, number int) Field {
	return Field{Name: name, Type: t, Context: number}
}

// Opt returns an optional context-tagged field.
func Opt(name string, t Type, number int) Field {
	return Field{Name: name, Type: t, Context: number, Optional: true}
}

// SequenceType walks an ordered field descriptor list.
type SequenceType struct {
	name   string
	fields []Field
}

// NewSequence returns a descriptor for the ordered fields. Duplicate field
// names or duplicate context numbers are schema errors and panic at start-up.
func NewSequence(name string, fields ...Field) *SequenceType {
	seen := make(map[string]bool, len(fields))
	ctxSeen := make(map[int]bool, len(fields))
	for _, f := range fields {
		if seen[f.Name] {
			panic("bacstack: duplicate field " + f.Name + " in sequence " + name)
		}
		seen[f.Name] = true
		if f.Context != NoContext {
			if ctxSeen[f.Context] {
				panic(fmt.Sprintf("bacstack: duplicate context tag %d in sequence %s",
					f.Context, name))
			}
			ctxSeen[f.Context] = true
		}
	}
	return &SequenceType{name: name, fields: fields}
}

// Name implements the Type interface.
func (t *SequenceType) Name() string { return t.name }

// Fields returns the ordered descriptor list.
func (t *SequenceType) Fields() []Field { return t.fields }

// Encode implements the Type interface.
func (t *SequenceType) Encode(v Value, l *TagList) error {
	seq, ok := v.(Sequence)
	if !ok {
		return ErrInvalidDataType
	}
	for _, f := range t.fields {
		fv, ok := seq[f.Name]
		if !ok {
			if f.Optional {
				continue
			}
			return fmt.Errorf("bacstack: sequence %s misses required field %s",
				t.name, f.Name)
		}
		if err := encodeField(f, fv, l); err != nil {
			return fmt.Errorf("bacstack: sequence %s field %s: %w",
				t.name, f.Name, err)
		}
	}
	return nil
}

func encodeField(f Field, v Value, l *TagList) error {
	if f.Context == NoContext {
		return f.Type.Encode(v, l)
	}
	if raw, ok := f.Type.(interface {
		content(Value) ([]byte, error)
	}); ok {
		data, err := raw.content(v)
		if err != nil {
			return err
		}
		l.Append(Tag{Class: ContextTag, Number: uint8(f.Context), Data: data})
		return nil
	}
	// constructed inner value gets an opening/closing pair
	l.Append(Tag{Class: OpeningTag, Number: uint8(f.Context)})
	if err := f.Type.Encode(v, l); err != nil {
		return err
	}
	l.Append(Tag{Class: ClosingTag, Number: uint8(f.Context)})
	return nil
}

// Decode implements the Type interface.
func (t *SequenceType) Decode(l *TagList) (Value, error) {
	seq := make(Sequence, len(t.fields))
	for _, f := range t.fields {
		v, present, err := decodeField(f, l)
		if err != nil {
			return nil, fmt.Errorf("bacstack: sequence %s field %s: %w",
				t.name, f.Name, err)
		}
		if present {
			seq[f.Name] = v
		}
	}
	return seq, nil
}

func decodeField(f Field, l *TagList) (v Value, present bool, err error) {
	next, ok := l.Peek()
	if !ok {
		if f.Optional {
			return nil, false, nil
		}
		return nil, false, errTagEOF
	}

	if f.Context == NoContext {
		mark := l.Mark()
		v, err := f.Type.Decode(l)
		if err != nil {
			if f.Optional {
				l.Seek(mark)
				return nil, false, nil
			}
			return nil, false, err
		}
		return v, true, nil
	}

	number := uint8(f.Context)
	switch {
	case next.Class == ContextTag && next.Number == number:
		raw, ok := f.Type.(interface {
			fromContent([]byte) (Value, error)
		})
		if !ok {
			return nil, false, fmt.Errorf("context tag %d carries constructed type %s",
				number, f.Type.Name())
		}
		l.Next()
		v, err := raw.fromContent(next.Data)
		return v, true, err

	case next.Class == OpeningTag && next.Number == number:
		l.Next()
		v, err := f.Type.Decode(l)
		if err != nil {
			return nil, false, err
		}
		if err := l.CloseContext(number); err != nil {
			return nil, false, err
		}
		return v, true, nil

	default:
		if f.Optional {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("got %s tag %d, want context tag %d",
			next.Class, next.Number, number)
	}
}

// Cast implements the Type interface.
func (t *SequenceType) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case Sequence:
		return v, nil
	case map[string]any:
		seq := make(Sequence, len(v))
		for _, f := range t.fields {
			raw, ok := v[f.Name]
			if !ok {
				raw, ok = v[KebabOf(f.Name)]
			}
			if !ok {
				if f.Optional {
					continue
				}
				return nil, fmt.Errorf("bacstack: sequence %s misses required field %s",
					t.name, f.Name)
			}
			fv, err := f.Type.Cast(raw)
			if err != nil {
				return nil, err
			}
			seq[f.Name] = fv
		}
		return seq, nil
	}
	return nil, ErrInvalidDataType
}

// ChoiceType selects exactly one of several alternatives, by context tag for
// tagged arms and by application tag otherwise.
type ChoiceType struct {
	name  string
	arms  []Field
	byCtx map[uint8]*Field
	byApp map[uint8]*Field
}

// NewChoice returns a descriptor over the alternatives. Two arms with the
// same context number, or two untagged arms with the same application tag,
// are schema errors and panic at start-up.
func NewChoice(name string, arms ...Field) *ChoiceType {
	t := &ChoiceType{
		name:  name,
		arms:  arms,
		byCtx: make(map[uint8]*Field),
		byApp: make(map[uint8]*Field),
	}
	for i := range arms {
		f := &arms[i]
		if f.Context != NoContext {
			if _, ok := t.byCtx[uint8(f.Context)]; ok {
				panic(fmt.Sprintf("bacstack: ambiguous context tag %d in choice %s",
					f.Context, name))
			}
			t.byCtx[uint8(f.Context)] = f
			continue
		}
		raw, ok := f.Type.(interface{ appTag() uint8 })
		if !ok {
			panic("bacstack: untagged constructed arm " + f.Name + " in choice " + name)
		}
		if _, ok := t.byApp[raw.appTag()]; ok {
			panic(fmt.Sprintf("bacstack: ambiguous application tag %d in choice %s",
				raw.appTag(), name))
		}
		t.byApp[raw.appTag()] = f
	}
	return t
}

// Name implements the Type interface.
func (t *ChoiceType) Name() string { return t.name }

// Arm returns the single entry of a choice value.
func (t *ChoiceType) Arm(v Value) (name string, inner Value, err error) {
	seq, ok := v.(Sequence)
	if !ok || len(seq) != 1 {
		return "", nil, ErrInvalidDataType
	}
	for name, inner = range seq {
	}
	return name, inner, nil
}

// Encode implements the Type interface.
func (t *ChoiceType) Encode(v Value, l *TagList) error {
	name, inner, err := t.Arm(v)
	if err != nil {
		return err
	}
	for i := range t.arms {
		if t.arms[i].Name == name {
			return encodeField(t.arms[i], inner, l)
		}
	}
	return fmt.Errorf("bacstack: choice %s has no arm %s", t.name, name)
}

// Decode implements the Type interface.
func (t *ChoiceType) Decode(l *TagList) (Value, error) {
	next, ok := l.Peek()
	if !ok {
		return nil, errTagEOF
	}

	var f *Field
	switch next.Class {
	case ContextTag, OpeningTag:
		f = t.byCtx[next.Number]
	case ApplicationTag:
		f = t.byApp[next.Number]
	}
	if f == nil {
		return nil, fmt.Errorf("bacstack: choice %s has no arm for %s tag %d",
			t.name, next.Class, next.Number)
	}

	v, _, err := decodeField(*f, l)
	if err != nil {
		return nil, err
	}
	return Sequence{f.Name: v}, nil
}

// Cast implements the Type interface.
func (t *ChoiceType) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case Sequence:
		return v, nil
	case map[string]any:
		if len(v) != 1 {
			return nil, ErrInvalidDataType
		}
		for name, raw := range v {
			for i := range t.arms {
				if t.arms[i].Name != name && KebabOf(t.arms[i].Name) != name {
					continue
				}
				inner, err := t.arms[i].Type.Cast(raw)
				if err != nil {
					return nil, err
				}
				return Sequence{t.arms[i].Name: inner}, nil
			}
		}
	}
	return nil, ErrInvalidDataType
}

// ArrayType is a one-indexed array, fixed or unbounded.
type ArrayType struct {
	name string
	elem Type
	size int // zero for unbounded
}

// ArrayOf returns an unbounded array descriptor.
func ArrayOf(elem Type) *ArrayType {
	return &ArrayType{name: "ArrayOf(" + elem.Name() + ")", elem: elem}
}

// FixedArrayOf returns an array descriptor with the given length.
func FixedArrayOf(elem Type, size int) *ArrayType {
	return &ArrayType{
		name: fmt.Sprintf("ArrayOf(%s,%d)", elem.Name(), size),
		elem: elem,
		size: size,
	}
}

// Name implements the Type interface.
func (t *ArrayType) Name() string { return t.name }

// Elem returns the element descriptor.
func (t *ArrayType) Elem() Type { return t.elem }

// Size returns the fixed length, or zero for unbounded arrays.
func (t *ArrayType) Size() int { return t.size }

// Encode implements the Type interface.
func (t *ArrayType) Encode(v Value, l *TagList) error {
	return encodeElems(t.name, t.elem, t.size, v, l)
}

// Decode implements the Type interface.
func (t *ArrayType) Decode(l *TagList) (Value, error) {
	elems, err := decodeElems(t.elem, l)
	if err != nil {
		return nil, err
	}
	if t.size != 0 && len(elems) != t.size {
		return nil, fmt.Errorf("bacstack: got %d elements for %s", len(elems), t.name)
	}
	return elems, nil
}

// Cast implements the Type interface.
func (t *ArrayType) Cast(v any) (Value, error) {
	elems, err := castElems(t.elem, v)
	if err != nil {
		return nil, err
	}
	if t.size != 0 && len(elems) != t.size {
		return nil, ErrValueOutOfRange
	}
	return elems, nil
}

// ListType is an unordered multiplicity.
type ListType struct {
	name string
	elem Type
}

// ListOf returns a list descriptor.
func ListOf(elem Type) *ListType {
	return &ListType{name: "ListOf(" + elem.Name() + ")", elem: elem}
}

// Name implements the Type interface.
func (t *ListType) Name() string { return t.name }

// Elem returns the element descriptor.
func (t *ListType) Elem() Type { return t.elem }

// Encode implements the Type interface.
func (t *ListType) Encode(v Value, l *TagList) error {
	return encodeElems(t.name, t.elem, 0, v, l)
}

// Decode implements the Type interface.
func (t *ListType) Decode(l *TagList) (Value, error) {
	return decodeElems(t.elem, l)
}

// Cast implements the Type interface.
func (t *ListType) Cast(v any) (Value, error) {
	return castElems(t.elem, v)
}

func encodeElems(name string, elem Type, size int, v Value, l *TagList) error {
	elems, ok := v.([]Value)
	if !ok {
		return ErrInvalidDataType
	}
	if size != 0 && len(elems) != size {
		return fmt.Errorf("bacstack: got %d elements for %s", len(elems), name)
	}
	for _, e := range elems {
		if err := elem.Encode(e, l); err != nil {
			return err
		}
	}
	return nil
}

// decodeElems consumes elements until the containing context closes or the
// list runs out.
func decodeElems(elem Type, l *TagList) ([]Value, error) {
	elems := []Value{}
	for {
		next, ok := l.Peek()
		if !ok || next.Class == ClosingTag {
			return elems, nil
		}
		v, err := elem.Decode(l)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
}

func castElems(elem Type, v any) ([]Value, error) {
	switch v := v.(type) {
	case []Value:
		return v, nil
	case []any:
		elems := make([]Value, len(v))
		for i, raw := range v {
			e, err := elem.Cast(raw)
			if err != nil {
				return nil, err
			}
			elems[i] = e
		}
		return elems, nil
	}
	return nil, ErrInvalidDataType
}

// Raw holds tags which passed through without interpretation, like the
// constructed content of a vendor-proprietary Any value.
type Raw []Tag

// AnyType passes any single value: primitives by application tag, and a
// Date followed by a Time as a DateTime even without an enclosing context
// (the unwrapped pair appears in event time stamps).
var AnyType Type = anyType{}

type anyType struct{}

// Name implements the Type interface.
func (anyType) Name() string { return "Any" }

var typeByAppTag = map[uint8]Type{
	TagNull:             NullType,
	TagBoolean:          BooleanType,
	TagUnsigned:         UnsignedType,
	TagInteger:          IntegerType,
	TagReal:             RealType,
	TagDouble:           DoubleType,
	TagOctetString:      OctetStringType,
	TagCharacterString:  CharacterStringType,
	TagBitString:        BitStringType,
	TagEnumerated:       EnumeratedType,
	TagDate:             DateType,
	TagTime:             TimeType,
	TagObjectIdentifier: ObjectIDType,
}

// Encode implements the Type interface.
func (anyType) Encode(v Value, l *TagList) error {
	if raw, ok := v.(Raw); ok {
		for _, t := range raw {
			l.Append(t)
		}
		return nil
	}
	t, err := TypeOf(v)
	if err != nil {
		return err
	}
	return t.Encode(v, l)
}

// Decode implements the Type interface.
func (anyType) Decode(l *TagList) (Value, error) {
	next, ok := l.Peek()
	if !ok {
		return nil, errTagEOF
	}

	switch next.Class {
	case ApplicationTag:
		t, ok := typeByAppTag[next.Number]
		if !ok {
			return nil, fmt.Errorf("bacstack: reserved application tag %d", next.Number)
		}
		v, err := t.Decode(l)
		if err != nil {
			return nil, err
		}

		// A Date directly followed by a Time is a DateTime pair.
		if d, ok := v.(Date); ok {
			if peek, ok := l.Peek(); ok &&
				peek.Class == ApplicationTag && peek.Number == TagTime {
				tv, err := TimeType.Decode(l)
				if err != nil {
					return nil, err
				}
				return DateTime{Date: d, Time: tv.(Time)}, nil
			}
		}
		return v, nil

	case OpeningTag:
		// capture the constructed run without interpretation
		var raw Raw
		depth := 0
		for {
			t, err := l.Next()
			if err != nil {
				return nil, err
			}
			raw = append(raw, t)
			switch t.Class {
			case OpeningTag:
				depth++
			case ClosingTag:
				depth--
				if depth == 0 {
					return raw, nil
				}
			}
		}

	default:
		return nil, fmt.Errorf("bacstack: stray %s tag %d for Any",
			next.Class, next.Number)
	}
}

// Cast implements the Type interface.
func (anyType) Cast(v any) (Value, error) {
	if t, err := TypeOf(v); err == nil {
		return t.Cast(v)
	}
	return nil, ErrInvalidDataType
}

// TypeOf returns the descriptor matching the dynamic type of v, for the
// concrete forms with an unambiguous mapping.
func TypeOf(v Value) (Type, error) {
	switch v.(type) {
	case Null, nil:
		return NullType, nil
	case bool:
		return BooleanType, nil
	case uint64:
		return UnsignedType, nil
	case int64:
		return IntegerType, nil
	case float32:
		return RealType, nil
	case float64:
		return DoubleType, nil
	case []byte:
		return OctetStringType, nil
	case string:
		return CharacterStringType, nil
	case BitString:
		return BitStringType, nil
	case Enumerated:
		return EnumeratedType, nil
	case Date:
		return DateType, nil
	case Time:
		return TimeType, nil
	case DateTime:
		return DateTimeType, nil
	case ObjectID:
		return ObjectIDType, nil
	}
	return nil, ErrInvalidDataType
}
