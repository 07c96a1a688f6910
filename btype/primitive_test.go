package btype

import (
	"testing"
)

// Every value must survive a codec cycle unharmed.
func TestPrimitiveRoundTrip(t *testing.T) {
	var golden = []struct {
		Type
		value Value
	}{
		{NullType, Null{}},
		{BooleanType, true},
		{BooleanType, false},
		{UnsignedType, uint64(0)},
		{UnsignedType, uint64(1001)},
		{UnsignedType, uint64(1) << 40},
		{IntegerType, int64(-1)},
		{IntegerType, int64(72)},
		{IntegerType, int64(-100000)},
		{RealType, float32(72.5)},
		{DoubleType, 1.25e300},
		{OctetStringType, []byte{0xde, 0xad, 0xbe, 0xef}},
		{CharacterStringType, "zone temperature"},
		{CharacterStringType, ""},
		{BitStringType, BitString{Unused: 4, Data: []byte{0xa0}}},
		{EnumeratedType, Enumerated(42)},
		{EventStateType, StateHighLimit},
		{ReliabilityType, OverRange},
		{DateType, Date{Year: 126, Month: 8, Day: 1, DayOfWeek: 6}},
		{TimeType, Time{Hour: 12, Minute: 30, Second: 5, Hundredths: 1}},
		{ObjectIDType, ObjectID{Type: ObjectAnalogValue, Instance: 2}},
		{DateTimeType, DateTime{
			Date: Date{Year: 126, Month: 8, Day: 1, DayOfWeek: 6},
			Time: Time{Hour: 12},
		}},
		{StatusFlagsType, StatusFlags{InAlarm: true, OutOfService: true}},
		{EventTransitionBitsType, AllTransitions},
		{LimitEnableType, LimitEnable{HighLimitEnable: true}},
		{DaysOfWeekType, EveryDay},
		{TimeStampType, StampOf(DateTime{Date: Date{Year: 126, Month: 8, Day: 1, DayOfWeek: 6}})},
	}

	for _, gold := range golden {
		l := new(TagList)
		if err := gold.Encode(gold.value, l); err != nil {
			t.Errorf("%s: encode %v: %s", gold.Name(), gold.value, err)
			continue
		}
		got, err := gold.Decode(l)
		if err != nil {
			t.Errorf("%s: decode %v: %s", gold.Name(), gold.value, err)
			continue
		}
		if !Equal(got, gold.value) {
			t.Errorf("%s: %v became %v after codec cycle",
				gold.Name(), gold.value, got)
		}
	}
}

// The wire survives a Marshal/Unmarshal pass between the codec halves.
func TestPrimitiveWireRoundTrip(t *testing.T) {
	l := new(TagList)
	values := []struct {
		Type
		value Value
	}{
		{UnsignedType, uint64(99)},
		{RealType, float32(-0.5)},
		{CharacterStringType, "pump"},
		{ObjectIDType, ObjectID{Type: ObjectBinaryInput, Instance: 7}},
	}
	for _, v := range values {
		if err := v.Encode(v.value, l); err != nil {
			t.Fatalf("encode %v: %s", v.value, err)
		}
	}

	wire, err := l.Marshal(nil)
	if err != nil {
		t.Fatal("marshal error:", err)
	}
	back, err := Unmarshal(wire)
	if err != nil {
		t.Fatal("unmarshal error:", err)
	}
	for _, v := range values {
		got, err := v.Decode(back)
		if err != nil {
			t.Fatalf("decode %v: %s", v.value, err)
		}
		if !Equal(got, v.value) {
			t.Errorf("%v became %v after wire cycle", v.value, got)
		}
	}
}

var testSeq = NewSequence("TestPoint",
	Ctx("id", ObjectIDType, 0),
	Ctx("value", RealType, 1),
	Opt("label", CharacterStringType, 2),
	Opt("flags", StatusFlagsType, 3),
	Field{Name: "units", Type: EngineeringUnitsType, Context: NoContext},
)

func TestSequenceRoundTrip(t *testing.T) {
	full := Sequence{
		"id":    ObjectID{Type: ObjectAnalogInput, Instance: 3},
		"value": float32(21.5),
		"label": "north wing",
		"flags": StatusFlags{Fault: true},
		"units": UnitsDegreesCelsius,
	}
	sparse := Sequence{
		"id":    ObjectID{Type: ObjectAnalogInput, Instance: 4},
		"value": float32(0),
		"units": UnitsPercent,
	}

	for _, seq := range []Sequence{full, sparse} {
		l := new(TagList)
		if err := testSeq.Encode(seq, l); err != nil {
			t.Fatalf("encode %v: %s", seq, err)
		}
		got, err := testSeq.Decode(l)
		if err != nil {
			t.Fatalf("decode %v: %s", seq, err)
		}
		if !Equal(got, seq) {
			t.Errorf("%v became %v after codec cycle", seq, got)
		}
	}

	// absent optional fields stay absent, distinct from any default
	l := new(TagList)
	testSeq.Encode(sparse, l)
	got, _ := testSeq.Decode(l)
	if _, present := got.(Sequence)["label"]; present {
		t.Error("absent optional field came back present")
	}
}

func TestSequenceMissesRequired(t *testing.T) {
	l := new(TagList)
	err := testSeq.Encode(Sequence{"value": float32(1)}, l)
	if err == nil {
		t.Error("encode without required field got no error")
	}
}

func TestChoiceRoundTrip(t *testing.T) {
	for _, v := range []Sequence{
		{"state": StateLowLimit},
		{"reliability": UnderRange},
		{"unsignedValue": uint64(3)},
	} {
		l := new(TagList)
		if err := PropertyStatesType.Encode(v, l); err != nil {
			t.Fatalf("encode %v: %s", v, err)
		}
		got, err := PropertyStatesType.Decode(l)
		if err != nil {
			t.Fatalf("decode %v: %s", v, err)
		}
		if !Equal(got, v) {
			t.Errorf("%v became %v after codec cycle", v, got)
		}
	}
}

// Ambiguous choice arms are schema errors at construction.
func TestChoiceAmbiguity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate context arms got no panic")
		}
	}()
	NewChoice("Broken",
		Ctx("a", RealType, 0),
		Ctx("b", UnsignedType, 0),
	)
}

func TestArrayListRoundTrip(t *testing.T) {
	array := FixedArrayOf(UnsignedType, 3)
	v := []Value{uint64(1), uint64(2), uint64(3)}

	l := new(TagList)
	if err := array.Encode(v, l); err != nil {
		t.Fatal("encode error:", err)
	}
	got, err := array.Decode(l)
	if err != nil {
		t.Fatal("decode error:", err)
	}
	if !Equal(got, v) {
		t.Errorf("%v became %v after codec cycle", v, got)
	}

	if err := array.Encode([]Value{uint64(1)}, l); err == nil {
		t.Error("short fixed array got no encode error")
	}

	list := ListOf(CharacterStringType)
	lv := []Value{"a", "b"}
	l = new(TagList)
	if err := list.Encode(lv, l); err != nil {
		t.Fatal("encode error:", err)
	}
	if got, err := list.Decode(l); err != nil || !Equal(got, lv) {
		t.Errorf("%v became %v (error %v) after codec cycle", lv, got, err)
	}
}

// A Date directly followed by a Time reads back as a DateTime, even without
// an enclosing context.
func TestAnyDateTimePair(t *testing.T) {
	dt := DateTime{
		Date: Date{Year: 126, Month: 8, Day: 1, DayOfWeek: 6},
		Time: Time{Hour: 9, Minute: 30},
	}
	l := new(TagList)
	if err := DateType.Encode(dt.Date, l); err != nil {
		t.Fatal("encode error:", err)
	}
	if err := TimeType.Encode(dt.Time, l); err != nil {
		t.Fatal("encode error:", err)
	}

	got, err := AnyType.Decode(l)
	if err != nil {
		t.Fatal("decode error:", err)
	}
	if !Equal(got, dt) {
		t.Errorf("got %v, want DateTime %v", got, dt)
	}

	// a lone date stays a date
	l = new(TagList)
	DateType.Encode(dt.Date, l)
	if got, _ := AnyType.Decode(l); !Equal(got, dt.Date) {
		t.Errorf("lone date became %v", got)
	}
}

func TestEnumNames(t *testing.T) {
	if got := StateHighLimit.String(); got != "high-limit" {
		t.Errorf(`got %q, want "high-limit"`, got)
	}
	if v, ok := Properties.ValueOf("presentValue"); !ok || v != PropPresentValue {
		t.Errorf("camel lookup got %v, %t", v, ok)
	}
	if v, ok := Properties.ValueOf("present-value"); !ok || v != PropPresentValue {
		t.Errorf("hyphenated lookup got %v, %t", v, ok)
	}
	if got := KebabOf("eventTimeStamps"); got != "event-time-stamps" {
		t.Errorf(`got %q, want "event-time-stamps"`, got)
	}
	if got := CamelOf("event-time-stamps"); got != "eventTimeStamps" {
		t.Errorf(`got %q, want "eventTimeStamps"`, got)
	}
}

func TestDestinationCovers(t *testing.T) {
	d := Destination{
		ValidDays: EveryDay &^ (1 << 6), // all but Sunday
		FromTime:  Time{Hour: 8},
		ToTime:    Time{Hour: 17},
	}
	saturdayNoon := DateTime{
		Date: Date{Year: 126, Month: 8, Day: 1, DayOfWeek: 6},
		Time: Time{Hour: 12},
	}
	if !d.Covers(saturdayNoon) {
		t.Error("saturday noon not covered")
	}
	night := saturdayNoon
	night.Time = Time{Hour: 22}
	if d.Covers(night) {
		t.Error("late evening covered")
	}
	sunday := saturdayNoon
	sunday.Date.DayOfWeek = 7
	if d.Covers(sunday) {
		t.Error("sunday covered")
	}
}

func TestDestinationRoundTrip(t *testing.T) {
	d := Destination{
		ValidDays:                   EveryDay,
		FromTime:                    Time{},
		ToTime:                      Time{Hour: 23, Minute: 59, Second: 59, Hundredths: 99},
		Recipient:                   Recipient{Address: &Address{Network: 100, MAC: []byte{1, 2}}},
		ProcessIdentifier:           9,
		IssueConfirmedNotifications: true,
		Transitions:                 AllTransitions,
	}
	l := new(TagList)
	if err := DestinationType.Encode(d, l); err != nil {
		t.Fatal("encode error:", err)
	}
	got, err := DestinationType.Decode(l)
	if err != nil {
		t.Fatal("decode error:", err)
	}
	back := got.(Destination)
	if back.ProcessIdentifier != 9 || !back.IssueConfirmedNotifications ||
		back.Recipient.Address == nil || back.Recipient.Address.Network != 100 {
		t.Errorf("destination became %+v", back)
	}
}

func TestNotificationParametersRoundTrip(t *testing.T) {
	params := Sequence{"outOfRange": Sequence{
		"exceedingValue": float32(110),
		"statusFlags":    StatusFlags{InAlarm: true},
		"deadband":       float32(5),
		"exceededLimit":  float32(100),
	}}
	l := new(TagList)
	if err := NotificationParametersType.Encode(params, l); err != nil {
		t.Fatal("encode error:", err)
	}
	got, err := NotificationParametersType.Decode(l)
	if err != nil {
		t.Fatal("decode error:", err)
	}
	if !Equal(got, params) {
		t.Errorf("%v became %v after codec cycle", params, got)
	}
}
