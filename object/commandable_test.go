package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvanheerde/bacstack/btype"
)

func priorityOf(n uint8) *uint8 { return &n }

// Commanding resolves presentValue from the smallest-index non-null slot,
// falling through to relinquishDefault, conform clause 19.2.
func TestPriorityResolution(t *testing.T) {
	o := newAV(t, 20, "cmd-20")

	require.NoError(t, o.WriteProperty(btype.PropPresentValue, float32(30), nil, priorityOf(8)))
	assert.Equal(t, float32(30), o.Value(btype.PropPresentValue))

	require.NoError(t, o.WriteProperty(btype.PropPresentValue, float32(35), nil, priorityOf(5)))
	assert.Equal(t, float32(35), o.Value(btype.PropPresentValue), "higher priority wins")

	require.NoError(t, o.WriteProperty(btype.PropPresentValue, btype.Null{}, nil, priorityOf(5)))
	assert.Equal(t, float32(30), o.Value(btype.PropPresentValue), "relinquish falls back")

	require.NoError(t, o.WriteProperty(btype.PropPresentValue, btype.Null{}, nil, priorityOf(8)))
	assert.Equal(t, float32(20), o.Value(btype.PropPresentValue), "all null gives relinquishDefault")
}

func TestDefaultPrioritySixteen(t *testing.T) {
	o := newAV(t, 21, "cmd-21")

	require.NoError(t, o.WriteProperty(btype.PropPresentValue, float32(25), nil, nil))
	index := uint32(16)
	slot, err := o.ReadProperty(btype.PropPriorityArray, &index)
	require.NoError(t, err)
	assert.Equal(t, float32(25), slot)
}

func TestHigherIndexDoesNotOverride(t *testing.T) {
	o := newAV(t, 22, "cmd-22")

	require.NoError(t, o.WriteProperty(btype.PropPresentValue, float32(35), nil, priorityOf(5)))
	require.NoError(t, o.WriteProperty(btype.PropPresentValue, float32(99), nil, priorityOf(12)))
	assert.Equal(t, float32(35), o.Value(btype.PropPresentValue))

	index := uint32(12)
	slot, err := o.ReadProperty(btype.PropPriorityArray, &index)
	require.NoError(t, err)
	assert.Equal(t, float32(99), slot, "slot recorded even while shadowed")
}

func TestPriorityBounds(t *testing.T) {
	o := newAV(t, 23, "cmd-23")
	err := o.WriteProperty(btype.PropPresentValue, float32(1), nil, priorityOf(17))
	assert.Equal(t, btype.Error{Class: btype.ClassProperty, Code: btype.CodeValueOutOfRange}, err)
	err = o.WriteProperty(btype.PropPresentValue, float32(1), nil, priorityOf(0))
	assert.Equal(t, btype.Error{Class: btype.ClassProperty, Code: btype.CodeValueOutOfRange}, err)
}

// A full-array write initializes all slots in one step with exactly one
// recalculation.
func TestFullArrayWrite(t *testing.T) {
	o := newAV(t, 24, "cmd-24")

	recalcs := 0
	o.Monitor(btype.PropPresentValue, func(old, new btype.Value) { recalcs++ })

	slots := btype.NewPriorityArray()
	slots[3] = float32(42)
	require.NoError(t, o.WriteProperty(btype.PropPriorityArray, slots, nil, nil))
	assert.Equal(t, float32(42), o.Value(btype.PropPresentValue))
	assert.Equal(t, 1, recalcs)
}

func TestRelinquishOfNullSlotIsNoop(t *testing.T) {
	o := newAV(t, 25, "cmd-25")

	changes := 0
	o.Monitor(btype.PropPriorityArray, func(old, new btype.Value) { changes++ })
	require.NoError(t, o.WriteProperty(btype.PropPresentValue, btype.Null{}, nil, priorityOf(4)))
	assert.Zero(t, changes)
}

func TestSlotWriteByArrayIndex(t *testing.T) {
	o := newAV(t, 26, "cmd-26")

	index := uint32(2)
	require.NoError(t, o.WriteProperty(btype.PropPriorityArray, float32(7), &index, nil))
	assert.Equal(t, float32(7), o.Value(btype.PropPresentValue))

	index = 17
	err := o.WriteProperty(btype.PropPriorityArray, float32(7), &index, nil)
	assert.Equal(t, btype.ErrInvalidArrayIndex, err)
}
