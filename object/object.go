// Package object provides the BACnet object model: per-class property
// schemas, read/write dispatch with getter/setter hooks and change monitors,
// and the commandable priority array. Objects are loop-confined; see the
// sched package for the serialisation model.
package object

import (
	"errors"
	"fmt"
	"time"

	"github.com/wvanheerde/bacstack/btype"
)

// A Property is one row of a class schema: identifier, datatype, and the
// required/optional and writability flags.
type Property struct {
	ID       btype.PropertyIdentifier
	Type     btype.Type
	Required bool
	ReadOnly bool
}

// A Class is the schema of one object type: the ordered property table plus
// the commandable marker. Classes are immutable after registration.
type Class struct {
	ObjectType btype.ObjectType
	Name       string

	// Commandable classes resolve presentValue through the priority
	// array. PresentValue is the slot datatype.
	Commandable  bool
	PresentValue btype.Type

	Properties []Property
	byID       map[btype.PropertyIdentifier]*Property
}

// Property returns the schema row, with nil for identifiers outside the
// class.
func (c *Class) Property(id btype.PropertyIdentifier) *Property {
	return c.byID[id]
}

// A MonitorFunc observes one property: it receives the old and the new value
// after a change commits. The old value is a deep copy.
type MonitorFunc func(old, new btype.Value)

// An Accessor replaces the stored field of a property with getter/setter
// functions. A nil Set silently ignores writes, which lets unmarshallers
// round-trip computed properties without error.
type Accessor struct {
	Get func(o *Object) (btype.Value, error)
	Set func(o *Object, v btype.Value) error
}

// AppLink is the containing application as seen by an object: the owner of
// the identifier and name indices, and the local clock.
type AppLink interface {
	// ObjectRenamed moves the object between name-index keys, failing
	// when the new key is taken. The index update is atomic with the
	// property change.
	ObjectRenamed(o *Object, oldName, newName string) error

	// ObjectReidentified is the identifier-index counterpart.
	ObjectReidentified(o *Object, oldID, newID btype.ObjectID) error

	// ObjectIDs lists the identifiers of all owned objects, in insertion
	// order, for the device's objectList property.
	ObjectIDs() []btype.ObjectID

	// LocalTime reads the application clock.
	LocalTime() time.Time
}

// ErrMonitorReentry denies a synchronous write to a property from one of
// that same property's own change monitors.
var ErrMonitorReentry = errors.New("bacstack: property setter re-entered from its own monitor")

// ErrValueNotPresent indicates an optional property with no value. It is
// distinct from any default; the service layer maps it onto unknownProperty.
var ErrValueNotPresent = errors.New("bacstack: property has no value")

// An Object is a keyed record of property values under a class schema.
type Object struct {
	class     *Class
	values    map[btype.PropertyIdentifier]btype.Value
	monitors  map[btype.PropertyIdentifier][]*monitorEntry
	inSet     map[btype.PropertyIdentifier]bool
	accessors map[btype.PropertyIdentifier]Accessor
	app       AppLink
}

type monitorEntry struct{ fn MonitorFunc }

// New returns an object of the class with the identifier and name seeded.
func New(c *Class, instance uint32, name string) *Object {
	o := &Object{
		class:     c,
		values:    make(map[btype.PropertyIdentifier]btype.Value),
		monitors:  make(map[btype.PropertyIdentifier][]*monitorEntry),
		inSet:     make(map[btype.PropertyIdentifier]bool),
		accessors: make(map[btype.PropertyIdentifier]Accessor),
	}
	o.values[btype.PropObjectIdentifier] = btype.ObjectID{Type: c.ObjectType, Instance: instance}
	o.values[btype.PropObjectName] = name
	o.values[btype.PropObjectType] = c.ObjectType
	if c.Commandable {
		o.values[btype.PropPriorityArray] = btype.NewPriorityArray()
	}
	return o
}

// Class returns the schema.
func (o *Object) Class() *Class { return o.class }

// ID returns the object identifier.
func (o *Object) ID() btype.ObjectID {
	return o.values[btype.PropObjectIdentifier].(btype.ObjectID)
}

// Name returns the object name.
func (o *Object) Name() string {
	return o.values[btype.PropObjectName].(string)
}

// String returns the identifier with the name.
func (o *Object) String() string {
	return fmt.Sprintf("%s %q", o.ID(), o.Name())
}

// Bind attaches the object to its application. The identifier and name
// indexing happens on the application side.
func (o *Object) Bind(app AppLink) { o.app = app }

// Has gets whether the property currently holds a value or is computed.
func (o *Object) Has(id btype.PropertyIdentifier) bool {
	if _, ok := o.accessors[id]; ok {
		return true
	}
	_, ok := o.values[id]
	return ok
}

// Compute installs getter/setter hooks for a property, replacing its stored
// field. Constructors use this for derived properties like the device's
// localTime.
func (o *Object) Compute(id btype.PropertyIdentifier, a Accessor) {
	o.accessors[id] = a
}

// Monitor registers a change callback for the property. Callbacks run in
// registration order. The return unregisters.
func (o *Object) Monitor(id btype.PropertyIdentifier, fn MonitorFunc) (cancel func()) {
	e := &monitorEntry{fn: fn}
	o.monitors[id] = append(o.monitors[id], e)
	return func() {
		entries := o.monitors[id]
		for i, have := range entries {
			if have == e {
				o.monitors[id] = append(entries[:i:i], entries[i+1:]...)
				return
			}
		}
	}
}

// ReadProperty resolves a property value. Index addresses array properties
// one-based, with zero for the length. Errors are btype.Error values:
// unknownProperty, propertyIsNotAnArray, invalidArrayIndex; an optional
// property with no value gives ErrValueNotPresent.
func (o *Object) ReadProperty(id btype.PropertyIdentifier, index *uint32) (btype.Value, error) {
	p := o.class.Property(id)
	if p == nil {
		return nil, btype.ErrUnknownProperty
	}

	v, err := o.resolve(id)
	if err != nil {
		return nil, err
	}

	if index == nil {
		return v, nil
	}
	array, ok := v.([]btype.Value)
	if !ok {
		return nil, btype.ErrNotAnArray
	}
	switch i := *index; {
	case i == 0:
		return uint64(len(array)), nil
	case int(i) <= len(array):
		return array[i-1], nil
	default:
		return nil, btype.ErrInvalidArrayIndex
	}
}

func (o *Object) resolve(id btype.PropertyIdentifier) (btype.Value, error) {
	switch id {
	case btype.PropPropertyList:
		return o.propertyList(), nil
	case btype.PropStatusFlags:
		if _, ok := o.accessors[id]; !ok {
			return o.StatusFlags(), nil
		}
	}
	if a, ok := o.accessors[id]; ok && a.Get != nil {
		return a.Get(o)
	}
	v, ok := o.values[id]
	if !ok {
		return nil, ErrValueNotPresent
	}
	return v, nil
}

// The propertyList array holds the identifiers with a value, excluding the
// four meta properties, conform clause 12.
func (o *Object) propertyList() []btype.Value {
	var list []btype.Value
	for i := range o.class.Properties {
		p := &o.class.Properties[i]
		switch p.ID {
		case btype.PropObjectIdentifier, btype.PropObjectName,
			btype.PropObjectType, btype.PropPropertyList:
			continue
		}
		if o.Has(p.ID) || p.ID == btype.PropStatusFlags {
			list = append(list, p.ID)
		}
	}
	return list
}

// StatusFlags derives the four-bit indicator from the event state, the
// reliability and the out-of-service flag.
func (o *Object) StatusFlags() btype.StatusFlags {
	var f btype.StatusFlags
	if state, ok := o.values[btype.PropEventState].(btype.EventState); ok {
		f.InAlarm = state != btype.StateNormal
	}
	if r, ok := o.values[btype.PropReliability].(btype.Reliability); ok {
		f.Fault = r != btype.NoFaultDetected
	}
	if oos, ok := o.values[btype.PropOutOfService].(bool); ok {
		f.OutOfService = oos
	}
	return f
}

// WriteProperty changes a property value. A write to presentValue on a
// commandable object lands in the priority array at the given priority,
// sixteen when absent, conform clause 19.2.1. Errors are btype.Error
// values: unknownProperty, writeAccessDenied, invalidDataType,
// valueOutOfRange, invalidArrayIndex.
func (o *Object) WriteProperty(id btype.PropertyIdentifier, v btype.Value, index *uint32, priority *uint8) error {
	p := o.class.Property(id)
	if p == nil {
		return btype.ErrUnknownProperty
	}

	if o.class.Commandable {
		switch id {
		case btype.PropPresentValue:
			if index != nil {
				return btype.ErrNotAnArray
			}
			return o.command(v, priority)

		case btype.PropPriorityArray:
			if index == nil {
				return o.commandArray(v)
			}
			return o.commandSlot(v, index)
		}
	}

	if p.ReadOnly {
		return btype.ErrWriteAccessDenied
	}

	if a, ok := o.accessors[id]; ok {
		if a.Set == nil {
			return nil // computed, write ignored
		}
		cast, err := castValue(p.Type, v)
		if err != nil {
			return err
		}
		return a.Set(o, cast)
	}

	switch id {
	case btype.PropPropertyList, btype.PropStatusFlags:
		return nil // computed, write ignored
	case btype.PropObjectName:
		return o.rename(v)
	case btype.PropObjectIdentifier:
		return o.reidentify(v)
	case btype.PropObjectType:
		return btype.ErrWriteAccessDenied
	}

	if index != nil {
		return o.writeElement(p, v, *index)
	}

	cast, err := castValue(p.Type, v)
	if err != nil {
		return err
	}
	return o.set(id, cast)
}

func (o *Object) writeElement(p *Property, v btype.Value, index uint32) error {
	current, ok := o.values[p.ID]
	if !ok {
		return btype.ErrInvalidArrayIndex
	}
	array, ok := current.([]btype.Value)
	if !ok {
		return btype.ErrNotAnArray
	}
	if index == 0 || int(index) > len(array) {
		return btype.ErrInvalidArrayIndex
	}

	at, ok := p.Type.(interface{ Elem() btype.Type })
	if !ok {
		return btype.ErrNotAnArray
	}
	cast, err := castValue(at.Elem(), v)
	if err != nil {
		return err
	}

	next := append([]btype.Value(nil), array...)
	next[index-1] = cast
	return o.set(p.ID, next)
}

// castValue maps the coercion failures onto the access-error codes.
func castValue(t btype.Type, v btype.Value) (btype.Value, error) {
	cast, err := t.Cast(v)
	switch {
	case err == nil:
		return cast, nil
	case errors.Is(err, btype.ErrValueOutOfRange):
		return nil, btype.Error{Class: btype.ClassProperty, Code: btype.CodeValueOutOfRange}
	default:
		return nil, btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidDataType}
	}
}

func (o *Object) rename(v btype.Value) error {
	name, ok := v.(string)
	if !ok || name == "" {
		return btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidDataType}
	}
	oldName := o.Name()
	if name == oldName {
		return nil
	}
	if o.app != nil {
		if err := o.app.ObjectRenamed(o, oldName, name); err != nil {
			return err
		}
	}
	return o.set(btype.PropObjectName, name)
}

func (o *Object) reidentify(v btype.Value) error {
	cast, err := castValue(btype.ObjectIDType, v)
	if err != nil {
		return err
	}
	id := cast.(btype.ObjectID)
	oldID := o.ID()
	if id == oldID {
		return nil
	}
	if id.Type != oldID.Type {
		// no switching object types
		return btype.Error{Class: btype.ClassProperty, Code: btype.CodeValueOutOfRange}
	}
	if o.app != nil {
		if err := o.app.ObjectReidentified(o, oldID, id); err != nil {
			return err
		}
	}
	return o.set(btype.PropObjectIdentifier, id)
}

// set stores the value and tells the monitors, unless the cast value equals
// the current one. Monitors get a deep copy of the old value, and must not
// write the same property back synchronously.
func (o *Object) set(id btype.PropertyIdentifier, v btype.Value) error {
	if o.inSet[id] {
		return ErrMonitorReentry
	}

	old, had := o.values[id]
	if had && btype.Equal(old, v) {
		return nil
	}
	o.values[id] = v

	o.inSet[id] = true
	defer delete(o.inSet, id)
	oldCopy := btype.Copy(old)
	for _, e := range o.monitors[id] {
		e.fn(oldCopy, v)
	}
	return nil
}

// SetValue writes a property directly, bypassing the commandable redirect
// and the read-only check but with casting and monitors intact. The fault
// and event machinery uses it for eventState, reliability and the time
// stamp arrays.
func (o *Object) SetValue(id btype.PropertyIdentifier, v btype.Value) error {
	p := o.class.Property(id)
	if p == nil {
		return btype.ErrUnknownProperty
	}
	cast, err := castValue(p.Type, v)
	if err != nil {
		return err
	}
	return o.set(id, cast)
}

// Value reads a stored or computed property without the array plumbing,
// with nil for absent.
func (o *Object) Value(id btype.PropertyIdentifier) btype.Value {
	v, err := o.resolve(id)
	if err != nil {
		return nil
	}
	return v
}

// LocalTime reads the application clock, or the wall clock before Bind.
func (o *Object) LocalTime() time.Time {
	if o.app == nil {
		return time.Now()
	}
	return o.app.LocalTime()
}
