package btype

import (
	"fmt"
	"time"
)

// AnyField is the “unspecified” sentinel in Date and Time octets. A field
// with this value matches any actual value, conform clause 20.2.12.
const AnyField = 255

// Date is the four-octet calendar encoding: year offset from 1900, month
// 1..14 (13 odd, 14 even), day 1..34 (32 last, 33 odd, 34 even), and day of
// week 1..7 with Monday as 1. Each field takes AnyField as a wildcard.
type Date struct {
	Year      uint8 // offset from 1900
	Month     uint8
	Day       uint8
	DayOfWeek uint8
}

// DateOf converts the calendar day of t.
func DateOf(t time.Time) Date {
	dow := uint8(t.Weekday())
	if dow == 0 {
		dow = 7 // Sunday
	}
	return Date{
		Year:      uint8(t.Year() - 1900),
		Month:     uint8(t.Month()),
		Day:       uint8(t.Day()),
		DayOfWeek: dow,
	}
}

// IsWildcard gets whether any field has the AnyField sentinel.
func (d Date) IsWildcard() bool {
	return d.Year == AnyField || d.Month == AnyField ||
		d.Day == AnyField || d.DayOfWeek == AnyField
}

// String returns "yyyy-mm-dd" with an asterisk per unspecified field. The day
// of week is not printed.
func (d Date) String() string {
	buf := make([]byte, 0, 14)
	if d.Year == AnyField {
		buf = append(buf, '*')
	} else {
		buf = fmt.Appendf(buf, "%d", 1900+int(d.Year))
	}
	buf = append(buf, '-')
	if d.Month == AnyField {
		buf = append(buf, '*')
	} else {
		buf = fmt.Appendf(buf, "%02d", d.Month)
	}
	buf = append(buf, '-')
	if d.Day == AnyField {
		buf = append(buf, '*')
	} else {
		buf = fmt.Appendf(buf, "%02d", d.Day)
	}
	return string(buf)
}

// Time is the four-octet clock encoding with hundredths of a second. Each
// field takes AnyField as a wildcard.
type Time struct {
	Hour       uint8
	Minute     uint8
	Second     uint8
	Hundredths uint8
}

// TimeOf converts the clock reading of t.
func TimeOf(t time.Time) Time {
	return Time{
		Hour:       uint8(t.Hour()),
		Minute:     uint8(t.Minute()),
		Second:     uint8(t.Second()),
		Hundredths: uint8(t.Nanosecond() / 10_000_000),
	}
}

// IsWildcard gets whether any field has the AnyField sentinel.
func (t Time) IsWildcard() bool {
	return t.Hour == AnyField || t.Minute == AnyField ||
		t.Second == AnyField || t.Hundredths == AnyField
}

// String returns "hh:mm:ss.cc" with an asterisk per unspecified field.
func (t Time) String() string {
	buf := make([]byte, 0, 11)
	for i, f := range [4]uint8{t.Hour, t.Minute, t.Second, t.Hundredths} {
		switch i {
		case 1, 2:
			buf = append(buf, ':')
		case 3:
			buf = append(buf, '.')
		}
		if f == AnyField {
			buf = append(buf, '*')
		} else {
			buf = fmt.Appendf(buf, "%02d", f)
		}
	}
	return string(buf)
}

// Before orders clock readings, treating wildcards as the minimum.
func (t Time) Before(u Time) bool {
	a := [4]uint8{t.Hour, t.Minute, t.Second, t.Hundredths}
	b := [4]uint8{u.Hour, u.Minute, u.Second, u.Hundredths}
	for i := range a {
		if a[i] == AnyField || b[i] == AnyField {
			continue
		}
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// DateTime pairs a Date with a Time. On the wire it is two application tags
// without an enclosing context in several places, which AnyType recognises.
type DateTime struct {
	Date Date
	Time Time
}

// DateTimeOf converts the calendar day and clock reading of t.
func DateTimeOf(t time.Time) DateTime {
	return DateTime{Date: DateOf(t), Time: TimeOf(t)}
}

// String returns the date and time separated by a space.
func (dt DateTime) String() string {
	return dt.Date.String() + " " + dt.Time.String()
}

// Date And Time Type Singletons
var (
	DateType     Type = primType{dateKind{}}
	TimeType     Type = primType{timeKind{}}
	DateTimeType Type = dateTimeType{}
)

// dateTimeType keeps the DateTime struct as the in-memory form. The wire
// form is the bare application-tagged pair.
type dateTimeType struct{}

// Name implements the Type interface.
func (dateTimeType) Name() string { return "DateTime" }

// Encode implements the Type interface.
func (dateTimeType) Encode(v Value, l *TagList) error {
	dt, ok := v.(DateTime)
	if !ok {
		return ErrInvalidDataType
	}
	if err := DateType.Encode(dt.Date, l); err != nil {
		return err
	}
	return TimeType.Encode(dt.Time, l)
}

// Decode implements the Type interface.
func (dateTimeType) Decode(l *TagList) (Value, error) {
	d, err := DateType.Decode(l)
	if err != nil {
		return nil, err
	}
	t, err := TimeType.Decode(l)
	if err != nil {
		return nil, err
	}
	return DateTime{Date: d.(Date), Time: t.(Time)}, nil
}

// Cast implements the Type interface.
func (dateTimeType) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case DateTime:
		return v, nil
	case time.Time:
		return DateTimeOf(v), nil
	}
	return nil, ErrInvalidDataType
}

type dateKind struct{}

func (dateKind) Name() string  { return "Date" }
func (dateKind) appTag() uint8 { return TagDate }

func (dateKind) content(v Value) ([]byte, error) {
	d, ok := v.(Date)
	if !ok {
		return nil, ErrInvalidDataType
	}
	return []byte{d.Year, d.Month, d.Day, d.DayOfWeek}, nil
}

func (dateKind) fromContent(data []byte) (Value, error) {
	if len(data) != 4 {
		return nil, ErrValueOutOfRange
	}
	return Date{data[0], data[1], data[2], data[3]}, nil
}

func (dateKind) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case Date:
		return v, nil
	case time.Time:
		return DateOf(v), nil
	case string:
		var y, m, d int
		if _, err := fmt.Sscanf(v, "%d-%d-%d", &y, &m, &d); err != nil {
			return nil, ErrInvalidDataType
		}
		return DateOf(time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)), nil
	}
	return nil, ErrInvalidDataType
}

type timeKind struct{}

func (timeKind) Name() string  { return "Time" }
func (timeKind) appTag() uint8 { return TagTime }

func (timeKind) content(v Value) ([]byte, error) {
	t, ok := v.(Time)
	if !ok {
		return nil, ErrInvalidDataType
	}
	return []byte{t.Hour, t.Minute, t.Second, t.Hundredths}, nil
}

func (timeKind) fromContent(data []byte) (Value, error) {
	if len(data) != 4 {
		return nil, ErrValueOutOfRange
	}
	return Time{data[0], data[1], data[2], data[3]}, nil
}

func (timeKind) Cast(v any) (Value, error) {
	switch v := v.(type) {
	case Time:
		return v, nil
	case time.Time:
		return TimeOf(v), nil
	case string:
		var h, m, s int
		if _, err := fmt.Sscanf(v, "%d:%d:%d", &h, &m, &s); err != nil {
			return nil, ErrInvalidDataType
		}
		return Time{uint8(h), uint8(m), uint8(s), 0}, nil
	}
	return nil, ErrInvalidDataType
}
