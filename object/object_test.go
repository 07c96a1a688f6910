package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvanheerde/bacstack/btype"
)

func newAV(t *testing.T, instance uint32, name string) *Object {
	t.Helper()
	o := New(AnalogValue, instance, name)
	require.NoError(t, o.SetValue(btype.PropUnits, btype.UnitsDegreesCelsius))
	require.NoError(t, o.SetValue(btype.PropEventState, btype.StateNormal))
	require.NoError(t, o.SetValue(btype.PropOutOfService, false))
	require.NoError(t, o.SetValue(btype.PropRelinquishDefault, float32(20)))
	require.NoError(t, o.SetValue(btype.PropPresentValue, float32(20)))
	return o
}

func TestReadPropertyErrors(t *testing.T) {
	o := newAV(t, 1, "av-1")

	_, err := o.ReadProperty(btype.PropFileSize, nil)
	assert.Equal(t, btype.ErrUnknownProperty, err, "identifier outside the class schema")

	index := uint32(1)
	_, err = o.ReadProperty(btype.PropPresentValue, &index)
	assert.Equal(t, btype.ErrNotAnArray, err, "array index on a scalar")

	index = 17
	_, err = o.ReadProperty(btype.PropPriorityArray, &index)
	assert.Equal(t, btype.ErrInvalidArrayIndex, err)

	_, err = o.ReadProperty(btype.PropHighLimit, nil)
	assert.Equal(t, ErrValueNotPresent, err, "optional property with no value")
}

func TestReadArrayIndexing(t *testing.T) {
	o := newAV(t, 2, "av-2")

	index := uint32(0)
	length, err := o.ReadProperty(btype.PropPriorityArray, &index)
	require.NoError(t, err)
	assert.Equal(t, uint64(16), length, "index zero reads the array length")

	index = 16
	slot, err := o.ReadProperty(btype.PropPriorityArray, &index)
	require.NoError(t, err)
	assert.Equal(t, btype.Null{}, slot)

	whole, err := o.ReadProperty(btype.PropPriorityArray, nil)
	require.NoError(t, err)
	assert.Len(t, whole, 16)
}

func TestWritePropertyErrors(t *testing.T) {
	o := newAV(t, 3, "av-3")

	err := o.WriteProperty(btype.PropFileSize, uint64(1), nil, nil)
	assert.Equal(t, btype.ErrUnknownProperty, err)

	err = o.WriteProperty(btype.PropObjectType, btype.ObjectBinaryValue, nil, nil)
	assert.Equal(t, btype.ErrWriteAccessDenied, err)

	err = o.WriteProperty(btype.PropHighLimit, "not a number", nil, nil)
	assert.Equal(t, btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidDataType}, err)
}

func TestCastOnWrite(t *testing.T) {
	o := newAV(t, 4, "av-4")

	// lenient coercion from strings and wider numbers
	require.NoError(t, o.WriteProperty(btype.PropHighLimit, "100", nil, nil))
	assert.Equal(t, float32(100), o.Value(btype.PropHighLimit))

	require.NoError(t, o.WriteProperty(btype.PropTimeDelay, 10, nil, nil))
	assert.Equal(t, uint64(10), o.Value(btype.PropTimeDelay))
}

func TestMonitorsRunInOrder(t *testing.T) {
	o := newAV(t, 5, "av-5")

	var order []int
	o.Monitor(btype.PropHighLimit, func(old, new btype.Value) {
		order = append(order, 1)
	})
	cancel := o.Monitor(btype.PropHighLimit, func(old, new btype.Value) {
		order = append(order, 2)
	})
	o.Monitor(btype.PropHighLimit, func(old, new btype.Value) {
		order = append(order, 3)
	})

	require.NoError(t, o.SetValue(btype.PropHighLimit, float32(30)))
	assert.Equal(t, []int{1, 2, 3}, order)

	// equality check suppresses the monitors
	order = nil
	require.NoError(t, o.SetValue(btype.PropHighLimit, float32(30)))
	assert.Empty(t, order)

	cancel()
	order = nil
	require.NoError(t, o.SetValue(btype.PropHighLimit, float32(31)))
	assert.Equal(t, []int{1, 3}, order)
}

func TestMonitorGetsOldAndNew(t *testing.T) {
	o := newAV(t, 6, "av-6")

	var gotOld, gotNew btype.Value
	o.Monitor(btype.PropPresentValue, func(old, new btype.Value) {
		gotOld, gotNew = old, new
	})
	require.NoError(t, o.SetValue(btype.PropPresentValue, float32(25)))
	assert.Equal(t, float32(20), gotOld)
	assert.Equal(t, float32(25), gotNew)
}

func TestMonitorReentryRejected(t *testing.T) {
	o := newAV(t, 7, "av-7")

	var reentry error
	o.Monitor(btype.PropHighLimit, func(old, new btype.Value) {
		reentry = o.SetValue(btype.PropHighLimit, float32(99))
	})
	require.NoError(t, o.SetValue(btype.PropHighLimit, float32(42)))
	assert.Equal(t, ErrMonitorReentry, reentry)

	// writing another property from a monitor is fine
	var crossErr error
	o.Monitor(btype.PropLowLimit, func(old, new btype.Value) {
		crossErr = o.SetValue(btype.PropDeadband, float32(1))
	})
	require.NoError(t, o.SetValue(btype.PropLowLimit, float32(0)))
	assert.NoError(t, crossErr)
}

func TestPropertyListComputed(t *testing.T) {
	o := newAV(t, 8, "av-8")

	v, err := o.ReadProperty(btype.PropPropertyList, nil)
	require.NoError(t, err)
	list := v.([]btype.Value)

	have := make(map[btype.PropertyIdentifier]bool)
	for _, id := range list {
		have[id.(btype.PropertyIdentifier)] = true
	}
	assert.True(t, have[btype.PropPresentValue])
	assert.True(t, have[btype.PropUnits])
	assert.False(t, have[btype.PropHighLimit], "absent optional not listed")
	assert.False(t, have[btype.PropObjectName], "meta properties excluded")
	assert.False(t, have[btype.PropPropertyList], "meta properties excluded")

	// writes to computed properties are silently ignored
	assert.NoError(t, o.WriteProperty(btype.PropPropertyList, []btype.Value{}, nil, nil))
}

func TestStatusFlagsDerived(t *testing.T) {
	o := newAV(t, 9, "av-9")

	v, err := o.ReadProperty(btype.PropStatusFlags, nil)
	require.NoError(t, err)
	assert.Equal(t, btype.StatusFlags{}, v)

	require.NoError(t, o.SetValue(btype.PropEventState, btype.StateHighLimit))
	require.NoError(t, o.SetValue(btype.PropReliability, btype.OverRange))
	require.NoError(t, o.SetValue(btype.PropOutOfService, true))

	v, _ = o.ReadProperty(btype.PropStatusFlags, nil)
	assert.Equal(t, btype.StatusFlags{InAlarm: true, Fault: true, OutOfService: true}, v)
}

func TestRenameWithoutApplication(t *testing.T) {
	o := newAV(t, 10, "av-10")
	require.NoError(t, o.WriteProperty(btype.PropObjectName, "renamed", nil, nil))
	assert.Equal(t, "renamed", o.Name())

	err := o.WriteProperty(btype.PropObjectName, "", nil, nil)
	assert.Error(t, err, "empty name rejected")
}

func TestReidentifyKeepsType(t *testing.T) {
	o := newAV(t, 11, "av-11")
	err := o.WriteProperty(btype.PropObjectIdentifier,
		btype.ObjectID{Type: btype.ObjectBinaryValue, Instance: 11}, nil, nil)
	assert.Equal(t, btype.Error{Class: btype.ClassProperty, Code: btype.CodeValueOutOfRange}, err)

	require.NoError(t, o.WriteProperty(btype.PropObjectIdentifier,
		btype.ObjectID{Type: btype.ObjectAnalogValue, Instance: 99}, nil, nil))
	assert.Equal(t, uint32(99), o.ID().Instance)
}
