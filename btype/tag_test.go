package btype

import (
	"bytes"
	"encoding/hex"
	"testing"
)

var goldenTagLists = []struct {
	tags []Tag
	wire string // hexadecimal octets
}{
	{
		[]Tag{{Class: ApplicationTag, Number: TagNull}},
		"00",
	}, {
		[]Tag{{Class: ApplicationTag, Number: TagBoolean, Data: []byte{1}}},
		"11",
	}, {
		[]Tag{{Class: ApplicationTag, Number: TagBoolean, Data: []byte{0}}},
		"10",
	}, {
		[]Tag{{Class: ApplicationTag, Number: TagUnsigned, Data: []byte{0x03, 0xe9}}},
		"2203e9",
	}, {
		[]Tag{{Class: ApplicationTag, Number: TagReal, Data: []byte{0x42, 0x90, 0, 0}}},
		"4442900000",
	}, {
		// context 3 with one octet
		[]Tag{{Class: ContextTag, Number: 3, Data: []byte{0x2a}}},
		"392a",
	}, {
		// opening 2, date plus time, closing 2
		[]Tag{
			{Class: OpeningTag, Number: 2},
			{Class: ApplicationTag, Number: TagDate, Data: []byte{126, 8, 1, 6}},
			{Class: ApplicationTag, Number: TagTime, Data: []byte{12, 30, 5, 0}},
			{Class: ClosingTag, Number: 2},
		},
		"2ea47e080106b40c1e05002f",
	}, {
		// extended tag number 40
		[]Tag{{Class: ContextTag, Number: 40, Data: []byte{7}}},
		"f92807",
	}, {
		// extended length of 5 octets
		[]Tag{{Class: ApplicationTag, Number: TagOctetString, Data: []byte{1, 2, 3, 4, 5}}},
		"65050102030405",
	},
}

func TestTagListMarshal(t *testing.T) {
	for _, gold := range goldenTagLists {
		wire, err := TagsOf(gold.tags...).Marshal(nil)
		if err != nil {
			t.Errorf("%s: marshal error: %s", gold.wire, err)
			continue
		}
		if got := hex.EncodeToString(wire); got != gold.wire {
			t.Errorf("got %s, want %s", got, gold.wire)
		}
	}
}

func TestTagListUnmarshal(t *testing.T) {
	for _, gold := range goldenTagLists {
		wire, _ := hex.DecodeString(gold.wire)
		l, err := Unmarshal(wire)
		if err != nil {
			t.Errorf("%s: unmarshal error: %s", gold.wire, err)
			continue
		}
		if l.Len() != len(gold.tags) {
			t.Errorf("%s: got %d tags, want %d", gold.wire, l.Len(), len(gold.tags))
			continue
		}
		for i, tag := range l.Tags() {
			want := gold.tags[i]
			if tag.Class != want.Class || tag.Number != want.Number ||
				!bytes.Equal(tag.Data, want.Data) {
				t.Errorf("%s: tag %d became %+v, want %+v",
					gold.wire, i, tag, want)
			}
		}
	}
}

func TestTagNestErrors(t *testing.T) {
	// closing number differs from the opening number
	if _, err := Unmarshal([]byte{0x2e, 0x3f}); err != errNestMismatch {
		t.Errorf("mismatched nesting got error %v, want %v", err, errNestMismatch)
	}
	// opening without closing
	if _, err := Unmarshal([]byte{0x2e}); err != errNestOpen {
		t.Errorf("unclosed nesting got error %v, want %v", err, errNestOpen)
	}
	// marshal side rejects too
	l := TagsOf(Tag{Class: OpeningTag, Number: 1}, Tag{Class: ClosingTag, Number: 2})
	if _, err := l.Marshal(nil); err != errNestMismatch {
		t.Errorf("mismatched marshal got error %v, want %v", err, errNestMismatch)
	}
}

func TestTagTruncate(t *testing.T) {
	// length 4 with only two payload octets
	if _, err := Unmarshal([]byte{0x24, 1, 2}); err != errTagTruncate {
		t.Errorf("truncated content got error %v, want %v", err, errTagTruncate)
	}
}
