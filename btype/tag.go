// Package btype provides the OSI presentation layer of ASHRAE 135.
//
// Values travel as flat sequences of tagged octet runs. TagList is the
// intermediate between the in-memory representation and the wire: every
// datatype encodes into tags and decodes from tags, and the service layer
// moves TagList content in and out of APDUs. See clause 20.2, “Encoding the
// Variable Part of BACnet APDUs”.
package btype

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Tag-class alternatives conform clause 20.2.1.1. Opening and closing are
// context-class markers which bracket constructed values.
type TagClass uint8

// Tag Classes
const (
	ApplicationTag TagClass = iota
	ContextTag
	OpeningTag
	ClosingTag
)

// String returns a name.
func (c TagClass) String() string {
	switch c {
	case ApplicationTag:
		return "application"
	case ContextTag:
		return "context"
	case OpeningTag:
		return "opening"
	case ClosingTag:
		return "closing"
	default:
		return fmt.Sprintf("class%+d", c)
	}
}

// A Tag is one tagged octet run. Number is an application tag number for the
// application class, and a context tag number otherwise. Data is absent on
// opening and closing tags.
type Tag struct {
	Class  TagClass
	Number uint8
	Data   []byte
}

// Application tag numbers conform clause 20.2.1.4.
const (
	TagNull uint8 = iota
	TagBoolean
	TagUnsigned
	TagInteger
	TagReal
	TagDouble
	TagOctetString
	TagCharacterString
	TagBitString
	TagEnumerated
	TagDate
	TagTime
	TagObjectIdentifier
)

var (
	errTagEOF       = errors.New("bacstack: tag list exhausted")
	errTagTruncate  = errors.New("bacstack: tag content exceeds available octets")
	errTagReserved  = errors.New("bacstack: extended tag number 255 is reserved by ASHRAE")
	errNestMismatch = errors.New("bacstack: closing tag number differs from opening tag number")
	errNestOpen     = errors.New("bacstack: opening tag without a closing tag")
)

// A TagList is an ordered sequence of tags with a read cursor. The zero value
// is an empty list ready for use.
type TagList struct {
	tags []Tag
	pos  int
}

// TagsOf returns a list over the given tags with the cursor at the start.
func TagsOf(tags ...Tag) *TagList {
	return &TagList{tags: tags}
}

// Append adds a tag at the end of the list.
func (l *TagList) Append(t Tag) { l.tags = append(l.tags, t) }

// Len counts all tags in the list, including consumed ones.
func (l *TagList) Len() int { return len(l.tags) }

// Remaining counts the tags not yet consumed.
func (l *TagList) Remaining() int { return len(l.tags) - l.pos }

// Peek returns the next tag without consuming it, with false on exhaustion.
func (l *TagList) Peek() (Tag, bool) {
	if l.pos >= len(l.tags) {
		return Tag{}, false
	}
	return l.tags[l.pos], true
}

// Next consumes and returns the next tag.
func (l *TagList) Next() (Tag, error) {
	t, ok := l.Peek()
	if !ok {
		return Tag{}, errTagEOF
	}
	l.pos++
	return t, nil
}

// Rewind moves the cursor back to the start of the list.
func (l *TagList) Rewind() { l.pos = 0 }

// Mark captures the cursor for a later Seek. Decoders use the pair to
// backtrack from absent optional fields.
func (l *TagList) Mark() int { return l.pos }

// Seek restores a cursor from Mark.
func (l *TagList) Seek(mark int) { l.pos = mark }

// Tags returns the full content regardless of the cursor.
func (l *TagList) Tags() []Tag { return l.tags }

// OpenContext consumes an opening tag with the given context number.
func (l *TagList) OpenContext(number uint8) error {
	t, err := l.Next()
	if err != nil {
		return err
	}
	if t.Class != OpeningTag || t.Number != number {
		return fmt.Errorf("bacstack: got %s tag %d, want opening tag %d",
			t.Class, t.Number, number)
	}
	return nil
}

// CloseContext consumes a closing tag with the given context number.
func (l *TagList) CloseContext(number uint8) error {
	t, err := l.Next()
	if err != nil {
		return err
	}
	if t.Class != ClosingTag || t.Number != number {
		return fmt.Errorf("bacstack: got %s tag %d, want closing tag %d",
			t.Class, t.Number, number)
	}
	return nil
}

// Append the wire encoding of the tag to buf, conform clause 20.2.1. Extended
// tag numbers 15..254 get the 0xf_ nibble with the real number in the next
// octet. Lengths of 5 octets and over get the extended-length forms.
func (t Tag) Append(buf []byte) []byte { return appendTag(buf, t) }

// Marshal appends the wire encoding of all tags to buf.
func (l *TagList) Marshal(buf []byte) ([]byte, error) {
	var nest []uint8
	for _, t := range l.tags {
		switch t.Class {
		case OpeningTag:
			nest = append(nest, t.Number)
		case ClosingTag:
			if len(nest) == 0 || nest[len(nest)-1] != t.Number {
				return nil, errNestMismatch
			}
			nest = nest[:len(nest)-1]
		}
		buf = appendTag(buf, t)
	}
	if len(nest) != 0 {
		return nil, errNestOpen
	}
	return buf, nil
}

func appendTag(buf []byte, t Tag) []byte {
	var initial byte
	number := t.Number
	if number < 15 {
		initial = number << 4
	} else {
		initial = 0xf0
	}

	switch t.Class {
	case OpeningTag:
		buf = append(buf, initial|0x0e)
		if number >= 15 {
			buf = append(buf, number)
		}
		return buf

	case ClosingTag:
		buf = append(buf, initial|0x0f)
		if number >= 15 {
			buf = append(buf, number)
		}
		return buf

	case ContextTag:
		initial |= 0x08

	case ApplicationTag:
		// Application-tagged booleans carry the value in the
		// length/value/type field with no payload octets, conform
		// clause 20.2.3.
		if number == TagBoolean && len(t.Data) == 1 {
			if t.Data[0] != 0 {
				initial |= 1
			}
			return append(buf, initial)
		}
	}

	n := len(t.Data)
	if n < 5 {
		initial |= byte(n)
	} else {
		initial |= 5
	}
	buf = append(buf, initial)
	if number >= 15 {
		buf = append(buf, number)
	}
	switch {
	case n < 5:
		break
	case n < 254:
		buf = append(buf, byte(n))
	case n <= 0xffff:
		buf = append(buf, 254)
		buf = binary.BigEndian.AppendUint16(buf, uint16(n))
	default:
		buf = append(buf, 255)
		buf = binary.BigEndian.AppendUint32(buf, uint32(n))
	}
	return append(buf, t.Data...)
}

// Unmarshal parses the wire encoding into a fresh TagList. Opening and
// closing tags must nest with matching numbers.
func Unmarshal(data []byte) (*TagList, error) {
	l := new(TagList)
	var nest []uint8

	for len(data) != 0 {
		initial := data[0]
		data = data[1:]

		number := initial >> 4
		if number == 15 {
			if len(data) == 0 {
				return nil, errTagTruncate
			}
			number = data[0]
			if number == 0xff {
				return nil, errTagReserved
			}
			data = data[1:]
		}

		lvt := initial & 7
		if initial&0x08 != 0 {
			switch lvt {
			case 6:
				nest = append(nest, number)
				l.Append(Tag{Class: OpeningTag, Number: number})
				continue
			case 7:
				if len(nest) == 0 || nest[len(nest)-1] != number {
					return nil, errNestMismatch
				}
				nest = nest[:len(nest)-1]
				l.Append(Tag{Class: ClosingTag, Number: number})
				continue
			}
		}

		if initial&0x08 == 0 && number == TagBoolean {
			// value lives in the length/value/type field
			l.Append(Tag{
				Class:  ApplicationTag,
				Number: number,
				Data:   []byte{lvt & 1},
			})
			continue
		}

		var size int
		switch {
		case lvt < 5:
			size = int(lvt)
		default:
			if len(data) == 0 {
				return nil, errTagTruncate
			}
			switch ext := data[0]; {
			case ext < 254:
				size = int(ext)
				data = data[1:]
			case ext == 254:
				if len(data) < 3 {
					return nil, errTagTruncate
				}
				size = int(binary.BigEndian.Uint16(data[1:3]))
				data = data[3:]
			default:
				if len(data) < 5 {
					return nil, errTagTruncate
				}
				size = int(binary.BigEndian.Uint32(data[1:5]))
				data = data[5:]
			}
		}
		if size > len(data) {
			return nil, errTagTruncate
		}

		class := ApplicationTag
		if initial&0x08 != 0 {
			class = ContextTag
		}
		l.Append(Tag{Class: class, Number: number, Data: data[:size:size]})
		data = data[size:]
	}

	if len(nest) != 0 {
		return nil, errNestOpen
	}
	return l, nil
}
