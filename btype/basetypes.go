package btype

import (
	"fmt"
)

// StatusFlags is the four-bit derived indicator of clause 12. InAlarm follows
// the event state, Fault follows the reliability, and OutOfService mirrors
// the property of the same name.
type StatusFlags struct {
	InAlarm      bool
	Fault        bool
	Overridden   bool
	OutOfService bool
}

// Bits returns the wire form.
func (f StatusFlags) Bits() BitString {
	var bits BitString
	bits.Unused = 4
	bits.Data = []byte{0}
	bits.SetBit(0, f.InAlarm)
	bits.SetBit(1, f.Fault)
	bits.SetBit(2, f.Overridden)
	bits.SetBit(3, f.OutOfService)
	return bits
}

// String returns the names of the set flags between semicolons, e.g. "{in-alarm;fault}".
func (f StatusFlags) String() string {
	s := "{"
	for _, flag := range []struct {
		set  bool
		name string
	}{
		{f.InAlarm, "in-alarm"},
		{f.Fault, "fault"},
		{f.Overridden, "overridden"},
		{f.OutOfService, "out-of-service"},
	} {
		if !flag.set {
			continue
		}
		if len(s) > 1 {
			s += ";"
		}
		s += flag.name
	}
	return s + "}"
}

type statusFlagsKind struct{}

func (statusFlagsKind) Name() string  { return "StatusFlags" }
func (statusFlagsKind) appTag() uint8 { return TagBitString }

func (statusFlagsKind) content(v Value) ([]byte, error) {
	f, ok := v.(StatusFlags)
	if !ok {
		return nil, ErrInvalidDataType
	}
	return bitStringKind{}.content(f.Bits())
}

func (statusFlagsKind) fromContent(data []byte) (Value, error) {
	v, err := bitStringKind{}.fromContent(data)
	if err != nil {
		return nil, err
	}
	bits := v.(BitString)
	return StatusFlags{
		InAlarm:      bits.Bit(0),
		Fault:        bits.Bit(1),
		Overridden:   bits.Bit(2),
		OutOfService: bits.Bit(3),
	}, nil
}

func (statusFlagsKind) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case StatusFlags:
		return v, nil
	case BitString:
		return statusFlagsKind{}.fromContent(append([]byte{v.Unused}, v.Data...))
	case []bool:
		var f StatusFlags
		for i, b := range v {
			switch i {
			case 0:
				f.InAlarm = b
			case 1:
				f.Fault = b
			case 2:
				f.Overridden = b
			case 3:
				f.OutOfService = b
			}
		}
		return f, nil
	}
	return nil, ErrInvalidDataType
}

// StatusFlagsType is the Type of the status-flags bitstring.
var StatusFlagsType Type = primType{statusFlagsKind{}}

// EventTransitionBits holds one flag per transition group, in the order
// to-offnormal, to-fault, to-normal.
type EventTransitionBits struct {
	ToOffnormal bool
	ToFault     bool
	ToNormal    bool
}

// AllTransitions has every flag set.
var AllTransitions = EventTransitionBits{true, true, true}

// Enabled gets the flag for the group of the target state.
func (b EventTransitionBits) Enabled(toState EventState) bool {
	switch toState.Group() {
	case StateFault:
		return b.ToFault
	case StateNormal:
		return b.ToNormal
	default:
		return b.ToOffnormal
	}
}

type eventTransitionBitsKind struct{}

func (eventTransitionBitsKind) Name() string  { return "EventTransitionBits" }
func (eventTransitionBitsKind) appTag() uint8 { return TagBitString }

func (eventTransitionBitsKind) content(v Value) ([]byte, error) {
	b, ok := v.(EventTransitionBits)
	if !ok {
		return nil, ErrInvalidDataType
	}
	bits := BitString{Unused: 5, Data: []byte{0}}
	bits.SetBit(0, b.ToOffnormal)
	bits.SetBit(1, b.ToFault)
	bits.SetBit(2, b.ToNormal)
	return bitStringKind{}.content(bits)
}

func (eventTransitionBitsKind) fromContent(data []byte) (Value, error) {
	v, err := bitStringKind{}.fromContent(data)
	if err != nil {
		return nil, err
	}
	bits := v.(BitString)
	return EventTransitionBits{
		ToOffnormal: bits.Bit(0),
		ToFault:     bits.Bit(1),
		ToNormal:    bits.Bit(2),
	}, nil
}

func (eventTransitionBitsKind) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case EventTransitionBits:
		return v, nil
	case []bool:
		var b EventTransitionBits
		for i, f := range v {
			switch i {
			case 0:
				b.ToOffnormal = f
			case 1:
				b.ToFault = f
			case 2:
				b.ToNormal = f
			}
		}
		return b, nil
	}
	return nil, ErrInvalidDataType
}

// EventTransitionBitsType is the Type of the event-transition bitstring.
var EventTransitionBitsType Type = primType{eventTransitionBitsKind{}}

// LimitEnable holds the low-limit and high-limit enable flags of the
// out-of-range event algorithm. Both default to enabled.
type LimitEnable struct {
	LowLimitEnable  bool
	HighLimitEnable bool
}

// BothLimits has both flags set, the default per clause 13.3.6.
var BothLimits = LimitEnable{true, true}

type limitEnableKind struct{}

func (limitEnableKind) Name() string  { return "LimitEnable" }
func (limitEnableKind) appTag() uint8 { return TagBitString }

func (limitEnableKind) content(v Value) ([]byte, error) {
	e, ok := v.(LimitEnable)
	if !ok {
		return nil, ErrInvalidDataType
	}
	bits := BitString{Unused: 6, Data: []byte{0}}
	bits.SetBit(0, e.LowLimitEnable)
	bits.SetBit(1, e.HighLimitEnable)
	return bitStringKind{}.content(bits)
}

func (limitEnableKind) fromContent(data []byte) (Value, error) {
	v, err := bitStringKind{}.fromContent(data)
	if err != nil {
		return nil, err
	}
	bits := v.(BitString)
	return LimitEnable{
		LowLimitEnable:  bits.Bit(0),
		HighLimitEnable: bits.Bit(1),
	}, nil
}

func (limitEnableKind) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case LimitEnable:
		return v, nil
	case []bool:
		var e LimitEnable
		if len(v) > 0 {
			e.LowLimitEnable = v[0]
		}
		if len(v) > 1 {
			e.HighLimitEnable = v[1]
		}
		return e, nil
	}
	return nil, ErrInvalidDataType
}

// LimitEnableType is the Type of the limit-enable bitstring.
var LimitEnableType Type = primType{limitEnableKind{}}

// DaysOfWeek is a seven-bit mask with Monday as bit zero.
type DaysOfWeek uint8

// EveryDay has all seven bits set.
const EveryDay DaysOfWeek = 0x7f

// Day gets the flag for ISO weekday n in range [1, 7].
func (d DaysOfWeek) Day(n int) bool {
	if n < 1 || n > 7 {
		return false
	}
	return d&(1<<(n-1)) != 0
}

type daysOfWeekKind struct{}

func (daysOfWeekKind) Name() string  { return "DaysOfWeek" }
func (daysOfWeekKind) appTag() uint8 { return TagBitString }

func (daysOfWeekKind) content(v Value) ([]byte, error) {
	d, ok := v.(DaysOfWeek)
	if !ok {
		return nil, ErrInvalidDataType
	}
	bits := BitString{Unused: 1, Data: []byte{0}}
	for i := 0; i < 7; i++ {
		bits.SetBit(i, d&(1<<i) != 0)
	}
	return bitStringKind{}.content(bits)
}

func (daysOfWeekKind) fromContent(data []byte) (Value, error) {
	v, err := bitStringKind{}.fromContent(data)
	if err != nil {
		return nil, err
	}
	bits := v.(BitString)
	var d DaysOfWeek
	for i := 0; i < 7; i++ {
		if bits.Bit(i) {
			d |= 1 << i
		}
	}
	return d, nil
}

func (daysOfWeekKind) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case DaysOfWeek:
		return v, nil
	case []bool:
		var d DaysOfWeek
		for i, b := range v {
			if i < 7 && b {
				d |= 1 << i
			}
		}
		return d, nil
	}
	return nil, ErrInvalidDataType
}

// DaysOfWeekType is the Type of the days-of-week bitstring.
var DaysOfWeekType Type = primType{daysOfWeekKind{}}

// TimeStamp is the three-way choice of clause 21: a bare Time, a sequence
// number, or a DateTime. The core stamps event transitions with the DateTime
// form.
type TimeStamp struct {
	Choice   TimeStampChoice
	Time     Time
	Sequence uint64
	DateTime DateTime
}

// TimeStampChoice selects the arm of a TimeStamp.
type TimeStampChoice uint8

// Time-Stamp Alternatives
const (
	StampTime TimeStampChoice = iota
	StampSequence
	StampDateTime
)

// StampOf wraps a DateTime, which is the form the event machinery records.
func StampOf(dt DateTime) TimeStamp {
	return TimeStamp{Choice: StampDateTime, DateTime: dt}
}

// String describes the selected arm.
func (ts TimeStamp) String() string {
	switch ts.Choice {
	case StampTime:
		return ts.Time.String()
	case StampSequence:
		return fmt.Sprintf("#%d", ts.Sequence)
	default:
		return ts.DateTime.String()
	}
}

// TimeStampType is the Type of the time-stamp choice.
var TimeStampType Type = timeStampType{}

type timeStampType struct{}

// Name implements the Type interface.
func (timeStampType) Name() string { return "TimeStamp" }

// Encode implements the Type interface.
func (timeStampType) Encode(v Value, l *TagList) error {
	ts, ok := v.(TimeStamp)
	if !ok {
		return ErrInvalidDataType
	}
	switch ts.Choice {
	case StampTime:
		data, err := timeKind{}.content(ts.Time)
		if err != nil {
			return err
		}
		l.Append(Tag{Class: ContextTag, Number: 0, Data: data})
	case StampSequence:
		l.Append(Tag{Class: ContextTag, Number: 1, Data: appendUintContent(nil, ts.Sequence)})
	case StampDateTime:
		l.Append(Tag{Class: OpeningTag, Number: 2})
		if err := DateTimeType.Encode(ts.DateTime, l); err != nil {
			return err
		}
		l.Append(Tag{Class: ClosingTag, Number: 2})
	default:
		return ErrInvalidDataType
	}
	return nil
}

// Decode implements the Type interface.
func (timeStampType) Decode(l *TagList) (Value, error) {
	next, err := l.Next()
	if err != nil {
		return nil, err
	}
	switch {
	case next.Class == ContextTag && next.Number == 0:
		v, err := timeKind{}.fromContent(next.Data)
		if err != nil {
			return nil, err
		}
		return TimeStamp{Choice: StampTime, Time: v.(Time)}, nil

	case next.Class == ContextTag && next.Number == 1:
		n, err := uintFromContent(next.Data)
		if err != nil {
			return nil, err
		}
		return TimeStamp{Choice: StampSequence, Sequence: n}, nil

	case next.Class == OpeningTag && next.Number == 2:
		v, err := DateTimeType.Decode(l)
		if err != nil {
			return nil, err
		}
		if err := l.CloseContext(2); err != nil {
			return nil, err
		}
		return TimeStamp{Choice: StampDateTime, DateTime: v.(DateTime)}, nil
	}
	return nil, fmt.Errorf("bacstack: got %s tag %d, want time-stamp choice",
		next.Class, next.Number)
}

// Cast implements the Type interface.
func (timeStampType) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case TimeStamp:
		return v, nil
	case DateTime:
		return StampOf(v), nil
	}
	return nil, ErrInvalidDataType
}

// PropertyValue names one property with its value, as listed in COV and
// change-of-reliability notifications.
type PropertyValue struct {
	Identifier PropertyIdentifier
	ArrayIndex *uint32
	Value      Value
	Priority   *uint8
}

// PropertyValueType is the Type of the property-value sequence.
var PropertyValueType Type = propertyValueType{}

type propertyValueType struct{}

// Name implements the Type interface.
func (propertyValueType) Name() string { return "PropertyValue" }

// Encode implements the Type interface.
func (propertyValueType) Encode(v Value, l *TagList) error {
	pv, ok := v.(PropertyValue)
	if !ok {
		return ErrInvalidDataType
	}
	l.Append(Tag{Class: ContextTag, Number: 0,
		Data: appendUintContent(nil, uint64(pv.Identifier))})
	if pv.ArrayIndex != nil {
		l.Append(Tag{Class: ContextTag, Number: 1,
			Data: appendUintContent(nil, uint64(*pv.ArrayIndex))})
	}
	l.Append(Tag{Class: OpeningTag, Number: 2})
	if err := AnyType.Encode(pv.Value, l); err != nil {
		return err
	}
	l.Append(Tag{Class: ClosingTag, Number: 2})
	if pv.Priority != nil {
		l.Append(Tag{Class: ContextTag, Number: 3,
			Data: appendUintContent(nil, uint64(*pv.Priority))})
	}
	return nil
}

// Decode implements the Type interface.
func (propertyValueType) Decode(l *TagList) (Value, error) {
	var pv PropertyValue

	t, err := l.Next()
	if err != nil {
		return nil, err
	}
	if t.Class != ContextTag || t.Number != 0 {
		return nil, fmt.Errorf("bacstack: got %s tag %d, want context tag 0 (propertyIdentifier)",
			t.Class, t.Number)
	}
	n, err := uintFromContent(t.Data)
	if err != nil {
		return nil, err
	}
	pv.Identifier = PropertyIdentifier(n)

	if next, ok := l.Peek(); ok && next.Class == ContextTag && next.Number == 1 {
		l.Next()
		n, err := uintFromContent(next.Data)
		if err != nil {
			return nil, err
		}
		index := uint32(n)
		pv.ArrayIndex = &index
	}

	if err := l.OpenContext(2); err != nil {
		return nil, err
	}
	pv.Value, err = AnyType.Decode(l)
	if err != nil {
		return nil, err
	}
	if err := l.CloseContext(2); err != nil {
		return nil, err
	}

	if next, ok := l.Peek(); ok && next.Class == ContextTag && next.Number == 3 {
		l.Next()
		n, err := uintFromContent(next.Data)
		if err != nil {
			return nil, err
		}
		priority := uint8(n)
		pv.Priority = &priority
	}
	return pv, nil
}

// Cast implements the Type interface.
func (propertyValueType) Cast(v any) (Value, error) {
	if pv, ok := v.(PropertyValue); ok {
		return pv, nil
	}
	return nil, ErrInvalidDataType
}

// ObjectPropertyReference points at a property of an object in the same
// device.
type ObjectPropertyReference struct {
	ObjectID   ObjectID
	Property   PropertyIdentifier
	ArrayIndex *uint32
}

// ObjectPropertyReferenceType is the Type of the reference sequence.
var ObjectPropertyReferenceType Type = NewSequence("ObjectPropertyReference",
	Ctx("objectIdentifier", ObjectIDType, 0),
	Ctx("propertyIdentifier", PropertyIdentifierType, 1),
	Opt("propertyArrayIndex", UnsignedType, 2),
)

// Seq returns the generic sequence form for the codec.
func (r ObjectPropertyReference) Seq() Sequence {
	seq := Sequence{
		"objectIdentifier":   r.ObjectID,
		"propertyIdentifier": r.Property,
	}
	if r.ArrayIndex != nil {
		seq["propertyArrayIndex"] = uint64(*r.ArrayIndex)
	}
	return seq
}

// DeviceObjectPropertyReference extends ObjectPropertyReference with an
// optional device for cross-device references, which this core rejects at
// enrollment.
type DeviceObjectPropertyReference struct {
	ObjectID   ObjectID
	Property   PropertyIdentifier
	ArrayIndex *uint32
	Device     *ObjectID
}

// DeviceObjectPropertyReferenceType is the Type of the reference sequence.
var DeviceObjectPropertyReferenceType Type = NewSequence("DeviceObjectPropertyReference",
	Ctx("objectIdentifier", ObjectIDType, 0),
	Ctx("propertyIdentifier", PropertyIdentifierType, 1),
	Opt("propertyArrayIndex", UnsignedType, 2),
	Opt("deviceIdentifier", ObjectIDType, 3),
)

// Seq returns the generic sequence form for the codec.
func (r DeviceObjectPropertyReference) Seq() Sequence {
	seq := Sequence{
		"objectIdentifier":   r.ObjectID,
		"propertyIdentifier": r.Property,
	}
	if r.ArrayIndex != nil {
		seq["propertyArrayIndex"] = uint64(*r.ArrayIndex)
	}
	if r.Device != nil {
		seq["deviceIdentifier"] = *r.Device
	}
	return seq
}

// RefOfSeq converts the generic sequence form back into a reference.
func RefOfSeq(seq Sequence) (DeviceObjectPropertyReference, error) {
	var r DeviceObjectPropertyReference
	id, ok := seq["objectIdentifier"].(ObjectID)
	if !ok {
		return r, ErrInvalidDataType
	}
	r.ObjectID = id
	prop, ok := seq["propertyIdentifier"].(PropertyIdentifier)
	if !ok {
		return r, ErrInvalidDataType
	}
	r.Property = prop
	if n, ok := seq["propertyArrayIndex"].(uint64); ok {
		index := uint32(n)
		r.ArrayIndex = &index
	}
	if device, ok := seq["deviceIdentifier"].(ObjectID); ok {
		r.Device = &device
	}
	return r, nil
}

// Address locates a station on the internetwork: a network number with a
// MAC, where network zero means the local network.
type Address struct {
	Network uint16
	MAC     []byte
}

// String returns "net:mac" with the MAC in hexadecimal.
func (a Address) String() string {
	return fmt.Sprintf("%d:%x", a.Network, a.MAC)
}

// Equal compares addresses. The method feeds the generic Value comparison.
func (a Address) Equal(v Value) bool {
	b, ok := v.(Address)
	return ok && a.Network == b.Network && string(a.MAC) == string(b.MAC)
}

// Recipient addresses a notification destination either by device identifier
// or by direct address.
type Recipient struct {
	Device  *ObjectID
	Address *Address
}

// String describes the selected arm.
func (r Recipient) String() string {
	switch {
	case r.Device != nil:
		return r.Device.String()
	case r.Address != nil:
		return r.Address.String()
	}
	return "<empty>"
}

// RecipientType is the Type of the recipient choice.
var RecipientType Type = recipientType{}

type recipientType struct{}

// Name implements the Type interface.
func (recipientType) Name() string { return "Recipient" }

// Encode implements the Type interface.
func (recipientType) Encode(v Value, l *TagList) error {
	r, ok := v.(Recipient)
	if !ok {
		return ErrInvalidDataType
	}
	switch {
	case r.Device != nil:
		data, err := objectIDKind{}.content(*r.Device)
		if err != nil {
			return err
		}
		l.Append(Tag{Class: ContextTag, Number: 0, Data: data})
		return nil

	case r.Address != nil:
		l.Append(Tag{Class: OpeningTag, Number: 1})
		if err := UnsignedType.Encode(uint64(r.Address.Network), l); err != nil {
			return err
		}
		if err := OctetStringType.Encode(r.Address.MAC, l); err != nil {
			return err
		}
		l.Append(Tag{Class: ClosingTag, Number: 1})
		return nil
	}
	return ErrInvalidDataType
}

// Decode implements the Type interface.
func (recipientType) Decode(l *TagList) (Value, error) {
	next, err := l.Next()
	if err != nil {
		return nil, err
	}
	switch {
	case next.Class == ContextTag && next.Number == 0:
		v, err := objectIDKind{}.fromContent(next.Data)
		if err != nil {
			return nil, err
		}
		id := v.(ObjectID)
		return Recipient{Device: &id}, nil

	case next.Class == OpeningTag && next.Number == 1:
		network, err := UnsignedType.Decode(l)
		if err != nil {
			return nil, err
		}
		mac, err := OctetStringType.Decode(l)
		if err != nil {
			return nil, err
		}
		if err := l.CloseContext(1); err != nil {
			return nil, err
		}
		return Recipient{Address: &Address{
			Network: uint16(network.(uint64)),
			MAC:     mac.([]byte),
		}}, nil
	}
	return nil, fmt.Errorf("bacstack: got %s tag %d, want recipient choice",
		next.Class, next.Number)
}

// Cast implements the Type interface.
func (recipientType) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case Recipient:
		return v, nil
	case ObjectID:
		return Recipient{Device: &v}, nil
	case Address:
		return Recipient{Address: &v}, nil
	}
	return nil, ErrInvalidDataType
}

// A Destination is one entry of a notification-class recipient list: where
// to send, when sending applies, and which transitions to report.
type Destination struct {
	ValidDays                   DaysOfWeek
	FromTime                    Time
	ToTime                      Time
	Recipient                   Recipient
	ProcessIdentifier           uint64
	IssueConfirmedNotifications bool
	Transitions                 EventTransitionBits
}

// Covers gets whether the day and time of dt fall inside the destination's
// window. Boundaries are inclusive.
func (d Destination) Covers(dt DateTime) bool {
	if !d.ValidDays.Day(int(dt.Date.DayOfWeek)) {
		return false
	}
	if dt.Time.Before(d.FromTime) {
		return false
	}
	if d.ToTime.Before(dt.Time) {
		return false
	}
	return true
}

// DestinationType is the Type of the destination sequence. All fields are
// application-tagged, conform clause 21.
var DestinationType Type = destinationType{}

type destinationType struct{}

// Name implements the Type interface.
func (destinationType) Name() string { return "Destination" }

// Encode implements the Type interface.
func (destinationType) Encode(v Value, l *TagList) error {
	d, ok := v.(Destination)
	if !ok {
		return ErrInvalidDataType
	}
	if err := DaysOfWeekType.Encode(d.ValidDays, l); err != nil {
		return err
	}
	if err := TimeType.Encode(d.FromTime, l); err != nil {
		return err
	}
	if err := TimeType.Encode(d.ToTime, l); err != nil {
		return err
	}
	if err := RecipientType.Encode(d.Recipient, l); err != nil {
		return err
	}
	if err := UnsignedType.Encode(d.ProcessIdentifier, l); err != nil {
		return err
	}
	if err := BooleanType.Encode(d.IssueConfirmedNotifications, l); err != nil {
		return err
	}
	return EventTransitionBitsType.Encode(d.Transitions, l)
}

// Decode implements the Type interface.
func (destinationType) Decode(l *TagList) (Value, error) {
	var d Destination

	v, err := DaysOfWeekType.Decode(l)
	if err != nil {
		return nil, err
	}
	d.ValidDays = v.(DaysOfWeek)

	if v, err = TimeType.Decode(l); err != nil {
		return nil, err
	}
	d.FromTime = v.(Time)

	if v, err = TimeType.Decode(l); err != nil {
		return nil, err
	}
	d.ToTime = v.(Time)

	if v, err = RecipientType.Decode(l); err != nil {
		return nil, err
	}
	d.Recipient = v.(Recipient)

	if v, err = UnsignedType.Decode(l); err != nil {
		return nil, err
	}
	d.ProcessIdentifier = v.(uint64)

	if v, err = BooleanType.Decode(l); err != nil {
		return nil, err
	}
	d.IssueConfirmedNotifications = v.(bool)

	if v, err = EventTransitionBitsType.Decode(l); err != nil {
		return nil, err
	}
	d.Transitions = v.(EventTransitionBits)
	return d, nil
}

// Cast implements the Type interface.
func (destinationType) Cast(v any) (Value, error) {
	if d, ok := v.(Destination); ok {
		return d, nil
	}
	return nil, ErrInvalidDataType
}

// PriorityValueType accepts any atomic value, with Null for a relinquished
// slot.
var PriorityValueType = AnyType

// PriorityArrayType is the sixteen-slot command array.
var PriorityArrayType = FixedArrayOf(PriorityValueType, 16)

// NewPriorityArray returns sixteen relinquished slots.
func NewPriorityArray() []Value {
	slots := make([]Value, 16)
	for i := range slots {
		slots[i] = Null{}
	}
	return slots
}

// PropertyStatesType is the per-datatype choice used in change-of-state
// notifications. The arm set covers the state kinds this stack detects on.
var PropertyStatesType = NewChoice("PropertyStates",
	Ctx("booleanValue", BooleanType, 0),
	Ctx("binaryValue", BinaryPVType, 1),
	Ctx("eventType", EventTypeType, 2),
	Ctx("polarity", PolarityType, 3),
	Ctx("programState", ProgramStateType, 5),
	Ctx("reasonForHalt", ProgramErrorType, 6),
	Ctx("reliability", ReliabilityType, 7),
	Ctx("state", EventStateType, 8),
	Ctx("systemStatus", DeviceStatusType, 9),
	Ctx("units", EngineeringUnitsType, 10),
	Ctx("unsignedValue", UnsignedType, 11),
)

// Notification-parameter contents per event type, conform clause 13.3. The
// values travel as generic sequences; the event pipeline builds them with
// the field names below.
var (
	NotifyChangeOfBitstringType = NewSequence("NotificationParametersChangeOfBitstring",
		Ctx("referencedBitstring", BitStringType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
	)
	NotifyChangeOfStateType = NewSequence("NotificationParametersChangeOfState",
		Ctx("newState", PropertyStatesType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
	)
	NotifyChangeOfValueNewValueType = NewChoice("NotificationParametersChangeOfValueNewValue",
		Ctx("changedBits", BitStringType, 0),
		Ctx("changedValue", RealType, 1),
	)
	NotifyChangeOfValueType = NewSequence("NotificationParametersChangeOfValue",
		Ctx("newValue", NotifyChangeOfValueNewValueType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
	)
	NotifyCommandFailureType = NewSequence("NotificationParametersCommandFailure",
		Ctx("commandValue", AnyType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("feedbackValue", AnyType, 2),
	)
	NotifyFloatingLimitType = NewSequence("NotificationParametersFloatingLimit",
		Ctx("referenceValue", RealType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("setpointValue", RealType, 2),
		Ctx("errorLimit", RealType, 3),
	)
	NotifyOutOfRangeType = NewSequence("NotificationParametersOutOfRange",
		Ctx("exceedingValue", RealType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("deadband", RealType, 2),
		Ctx("exceededLimit", RealType, 3),
	)
	NotifyBufferReadyType = NewSequence("NotificationParametersBufferReady",
		Ctx("bufferProperty", DeviceObjectPropertyReferenceType, 0),
		Ctx("previousNotification", UnsignedType, 1),
		Ctx("currentNotification", UnsignedType, 2),
	)
	NotifyUnsignedRangeType = NewSequence("NotificationParametersUnsignedRange",
		Ctx("exceedingValue", UnsignedType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("exceededLimit", UnsignedType, 2),
	)
	NotifyDoubleOutOfRangeType = NewSequence("NotificationParametersDoubleOutOfRange",
		Ctx("exceedingValue", DoubleType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("deadband", DoubleType, 2),
		Ctx("exceededLimit", DoubleType, 3),
	)
	NotifySignedOutOfRangeType = NewSequence("NotificationParametersSignedOutOfRange",
		Ctx("exceedingValue", IntegerType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("deadband", UnsignedType, 2),
		Ctx("exceededLimit", IntegerType, 3),
	)
	NotifyUnsignedOutOfRangeType = NewSequence("NotificationParametersUnsignedOutOfRange",
		Ctx("exceedingValue", UnsignedType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("deadband", UnsignedType, 2),
		Ctx("exceededLimit", UnsignedType, 3),
	)
	NotifyChangeOfCharacterstringType = NewSequence("NotificationParametersChangeOfCharacterstring",
		Ctx("changedValue", CharacterStringType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("alarmValue", CharacterStringType, 2),
	)
	NotifyChangeOfStatusFlagsType = NewSequence("NotificationParametersChangeOfStatusFlags",
		Opt("presentValue", AnyType, 0),
		Ctx("referencedFlags", StatusFlagsType, 1),
	)
	NotifyChangeOfReliabilityType = NewSequence("NotificationParametersChangeOfReliability",
		Ctx("reliability", ReliabilityType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
		Ctx("propertyValues", ListOf(PropertyValueType), 2),
	)
	NotifyChangeOfDiscreteValueType = NewSequence("NotificationParametersChangeOfDiscreteValue",
		Ctx("newValue", AnyType, 0),
		Ctx("statusFlags", StatusFlagsType, 1),
	)
)

// NotificationParametersType is the per-event-type choice carried in event
// notifications. The context tag numbers equal the event-type codes.
var NotificationParametersType = NewChoice("NotificationParameters",
	Ctx("changeOfBitstring", NotifyChangeOfBitstringType, 0),
	Ctx("changeOfState", NotifyChangeOfStateType, 1),
	Ctx("changeOfValue", NotifyChangeOfValueType, 2),
	Ctx("commandFailure", NotifyCommandFailureType, 3),
	Ctx("floatingLimit", NotifyFloatingLimitType, 4),
	Ctx("outOfRange", NotifyOutOfRangeType, 5),
	Ctx("bufferReady", NotifyBufferReadyType, 10),
	Ctx("unsignedRange", NotifyUnsignedRangeType, 11),
	Ctx("doubleOutOfRange", NotifyDoubleOutOfRangeType, 14),
	Ctx("signedOutOfRange", NotifySignedOutOfRangeType, 15),
	Ctx("unsignedOutOfRange", NotifyUnsignedOutOfRangeType, 16),
	Ctx("changeOfCharacterstring", NotifyChangeOfCharacterstringType, 17),
	Ctx("changeOfStatusFlags", NotifyChangeOfStatusFlagsType, 18),
	Ctx("changeOfReliability", NotifyChangeOfReliabilityType, 19),
	Ctx("changeOfDiscreteValue", NotifyChangeOfDiscreteValueType, 21),
)

// Event-parameter contents per event type, conform clause 13.3., as carried
// by the eventParameters property of an EventEnrollment object.
var (
	EventParamChangeOfBitstringType = NewSequence("EventParameterChangeOfBitstring",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("bitmask", BitStringType, 1),
		Ctx("listOfBitstringValues", ListOf(BitStringType), 2),
	)
	EventParamChangeOfStateType = NewSequence("EventParameterChangeOfState",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("listOfValues", ListOf(PropertyStatesType), 1),
	)
	EventParamChangeOfValueCriteriaType = NewChoice("EventParameterChangeOfValueCriteria",
		Ctx("bitmask", BitStringType, 0),
		Ctx("referencedPropertyIncrement", RealType, 1),
	)
	EventParamChangeOfValueType = NewSequence("EventParameterChangeOfValue",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("covCriteria", EventParamChangeOfValueCriteriaType, 1),
	)
	EventParamCommandFailureType = NewSequence("EventParameterCommandFailure",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("feedbackPropertyReference", DeviceObjectPropertyReferenceType, 1),
	)
	EventParamFloatingLimitType = NewSequence("EventParameterFloatingLimit",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("setpointReference", DeviceObjectPropertyReferenceType, 1),
		Ctx("lowDiffLimit", RealType, 2),
		Ctx("highDiffLimit", RealType, 3),
		Ctx("deadband", RealType, 4),
	)
	EventParamOutOfRangeType = NewSequence("EventParameterOutOfRange",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("lowLimit", RealType, 1),
		Ctx("highLimit", RealType, 2),
		Ctx("deadband", RealType, 3),
	)
	EventParamBufferReadyType = NewSequence("EventParameterBufferReady",
		Ctx("notificationThreshold", UnsignedType, 0),
		Ctx("previousNotificationCount", UnsignedType, 1),
	)
	EventParamUnsignedRangeType = NewSequence("EventParameterUnsignedRange",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("lowLimit", UnsignedType, 1),
		Ctx("highLimit", UnsignedType, 2),
	)
	EventParamDoubleOutOfRangeType = NewSequence("EventParameterDoubleOutOfRange",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("lowLimit", DoubleType, 1),
		Ctx("highLimit", DoubleType, 2),
		Ctx("deadband", DoubleType, 3),
	)
	EventParamSignedOutOfRangeType = NewSequence("EventParameterSignedOutOfRange",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("lowLimit", IntegerType, 1),
		Ctx("highLimit", IntegerType, 2),
		Ctx("deadband", UnsignedType, 3),
	)
	EventParamUnsignedOutOfRangeType = NewSequence("EventParameterUnsignedOutOfRange",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("lowLimit", UnsignedType, 1),
		Ctx("highLimit", UnsignedType, 2),
		Ctx("deadband", UnsignedType, 3),
	)
	EventParamChangeOfCharacterstringType = NewSequence("EventParameterChangeOfCharacterstring",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("listOfAlarmValues", ListOf(CharacterStringType), 1),
	)
	EventParamChangeOfStatusFlagsType = NewSequence("EventParameterChangeOfStatusFlags",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("selectedFlags", StatusFlagsType, 1),
	)
	EventParamChangeOfDiscreteValueType = NewSequence("EventParameterChangeOfDiscreteValue",
		Ctx("timeDelay", UnsignedType, 0),
	)
	EventParamChangeOfTimerType = NewSequence("EventParameterChangeOfTimer",
		Ctx("timeDelay", UnsignedType, 0),
		Ctx("alarmValues", ListOf(EnumeratedType), 1),
		Ctx("updateTimeReference", DeviceObjectPropertyReferenceType, 2),
	)
)

// EventParameterType is the per-event-type choice carried by the
// eventParameters property. The context tag numbers equal the event-type
// codes, with None as a bare context tag 20.
var EventParameterType = NewChoice("EventParameter",
	Ctx("changeOfBitstring", EventParamChangeOfBitstringType, 0),
	Ctx("changeOfState", EventParamChangeOfStateType, 1),
	Ctx("changeOfValue", EventParamChangeOfValueType, 2),
	Ctx("commandFailure", EventParamCommandFailureType, 3),
	Ctx("floatingLimit", EventParamFloatingLimitType, 4),
	Ctx("outOfRange", EventParamOutOfRangeType, 5),
	Ctx("bufferReady", EventParamBufferReadyType, 10),
	Ctx("unsignedRange", EventParamUnsignedRangeType, 11),
	Ctx("doubleOutOfRange", EventParamDoubleOutOfRangeType, 14),
	Ctx("signedOutOfRange", EventParamSignedOutOfRangeType, 15),
	Ctx("unsignedOutOfRange", EventParamUnsignedOutOfRangeType, 16),
	Ctx("changeOfCharacterstring", EventParamChangeOfCharacterstringType, 17),
	Ctx("changeOfStatusFlags", EventParamChangeOfStatusFlagsType, 18),
	Ctx("none", NullType, 20),
	Ctx("changeOfDiscreteValue", EventParamChangeOfDiscreteValueType, 21),
	Ctx("changeOfTimer", EventParamChangeOfTimerType, 22),
)

// Fault-parameter contents per fault type, conform clause 13.4.
var (
	FaultParamCharacterstringType = NewSequence("FaultParameterCharacterstring",
		Ctx("listOfFaultValues", ListOf(CharacterStringType), 0),
	)
	FaultParamExtendedType = NewSequence("FaultParameterExtended",
		Ctx("vendorId", UnsignedType, 0),
		Ctx("extendedFaultType", UnsignedType, 1),
		Ctx("parameters", ListOf(AnyType), 2),
	)
	FaultParamStateType = NewSequence("FaultParameterState",
		Ctx("listOfFaultValues", ListOf(PropertyStatesType), 0),
	)
	FaultParamStatusFlagsType = NewSequence("FaultParameterStatusFlags",
		Ctx("statusFlagsReference", DeviceObjectPropertyReferenceType, 0),
	)
	FaultParamOutOfRangeValueType = NewChoice("FaultParameterOutOfRangeValue",
		Field{Name: "realValue", Type: RealType, Context: NoContext},
		Field{Name: "unsignedValue", Type: UnsignedType, Context: NoContext},
		Field{Name: "doubleValue", Type: DoubleType, Context: NoContext},
		Field{Name: "integerValue", Type: IntegerType, Context: NoContext},
	)
	FaultParamOutOfRangeType = NewSequence("FaultParameterOutOfRange",
		Ctx("minNormalValue", FaultParamOutOfRangeValueType, 0),
		Ctx("maxNormalValue", FaultParamOutOfRangeValueType, 1),
	)
	FaultParamListedType = NewSequence("FaultParameterListed",
		Ctx("faultListReference", DeviceObjectPropertyReferenceType, 0),
	)
)

// FaultParameterType is the per-fault-type choice carried by the
// faultParameters property.
var FaultParameterType = NewChoice("FaultParameter",
	Ctx("none", NullType, 0),
	Ctx("faultCharacterstring", FaultParamCharacterstringType, 1),
	Ctx("faultExtended", FaultParamExtendedType, 2),
	Ctx("faultState", FaultParamStateType, 4),
	Ctx("faultStatusFlags", FaultParamStatusFlagsType, 5),
	Ctx("faultOutOfRange", FaultParamOutOfRangeType, 6),
	Ctx("faultListed", FaultParamListedType, 7),
)
