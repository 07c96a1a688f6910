package object

import (
	"github.com/wvanheerde/bacstack/btype"
)

// Commandable objects resolve presentValue from the sixteen-slot priority
// array: the smallest-index non-null slot wins, with relinquishDefault when
// all slots are null, conform clause 19.2.

// command lands a presentValue write in the priority array. A Null value
// relinquishes the slot. The default priority is sixteen, conform clause
// 19.2.1 paragraph 4.
func (o *Object) command(v btype.Value, priority *uint8) error {
	slot := uint8(16)
	if priority != nil {
		slot = *priority
	}
	if slot < 1 || slot > 16 {
		return btype.Error{Class: btype.ClassProperty, Code: btype.CodeValueOutOfRange}
	}

	cast, err := o.castSlot(v)
	if err != nil {
		return err
	}

	array := o.priorityArray()
	if _, wasNull := array[slot-1].(btype.Null); wasNull {
		if _, isNull := cast.(btype.Null); isNull {
			return nil // relinquish of a relinquished slot
		}
	}
	next := append([]btype.Value(nil), array...)
	next[slot-1] = cast
	if err := o.set(btype.PropPriorityArray, next); err != nil {
		return err
	}
	return o.recalculate()
}

// commandArray replaces all sixteen slots in one step with exactly one
// recalculation, as used by initialization and unmarshalling.
func (o *Object) commandArray(v btype.Value) error {
	elems, ok := v.([]btype.Value)
	if !ok || len(elems) != 16 {
		return btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidDataType}
	}
	next := make([]btype.Value, 16)
	for i, e := range elems {
		cast, err := o.castSlot(e)
		if err != nil {
			return err
		}
		next[i] = cast
	}
	if err := o.set(btype.PropPriorityArray, next); err != nil {
		return err
	}
	return o.recalculate()
}

// commandSlot writes one slot through the array-index form.
func (o *Object) commandSlot(v btype.Value, index *uint32) error {
	if *index < 1 || *index > 16 {
		return btype.ErrInvalidArrayIndex
	}
	slot := uint8(*index)
	return o.command(v, &slot)
}

func (o *Object) castSlot(v btype.Value) (btype.Value, error) {
	if _, ok := v.(btype.Null); ok {
		return v, nil
	}
	if v == nil {
		return btype.Null{}, nil
	}
	return castValue(o.class.PresentValue, v)
}

func (o *Object) priorityArray() []btype.Value {
	return o.values[btype.PropPriorityArray].([]btype.Value)
}

// recalculate writes the effective value through the normal presentValue
// setter, which in turn notifies the COV and event monitors.
func (o *Object) recalculate() error {
	var effective btype.Value
	for _, slot := range o.priorityArray() {
		if _, isNull := slot.(btype.Null); !isNull {
			effective = slot
			break
		}
	}
	if effective == nil {
		def, ok := o.values[btype.PropRelinquishDefault]
		if !ok {
			return nil // nothing to fall through to
		}
		effective = def
	}
	return o.set(btype.PropPresentValue, effective)
}
