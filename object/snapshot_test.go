package object

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvanheerde/bacstack/btype"
)

// A snapshot must survive a JSON cycle for all non-computed properties.
func TestSnapshotRoundTrip(t *testing.T) {
	o := newAV(t, 30, "snap-30")
	require.NoError(t, o.SetValue(btype.PropHighLimit, float32(100)))
	require.NoError(t, o.SetValue(btype.PropLowLimit, float32(0)))
	require.NoError(t, o.SetValue(btype.PropDeadband, float32(5)))
	require.NoError(t, o.SetValue(btype.PropLimitEnable, btype.BothLimits))
	require.NoError(t, o.SetValue(btype.PropDescription, "snapshot probe"))
	require.NoError(t, o.WriteProperty(btype.PropPresentValue, float32(30), nil, priorityOf(8)))

	blob, err := json.Marshal(Snapshot(o))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(blob, &decoded))

	restored := New(AnalogValue, 30, "snap-30")
	require.NoError(t, Restore(restored, decoded))

	for _, prop := range []btype.PropertyIdentifier{
		btype.PropPresentValue, btype.PropHighLimit, btype.PropLowLimit,
		btype.PropDeadband, btype.PropDescription, btype.PropUnits,
		btype.PropRelinquishDefault, btype.PropEventState,
	} {
		assert.True(t, btype.Equal(o.Value(prop), restored.Value(prop)),
			"property %s: %v became %v", prop, o.Value(prop), restored.Value(prop))
	}

	// the commanded slot survives
	index := uint32(8)
	slot, err := restored.ReadProperty(btype.PropPriorityArray, &index)
	require.NoError(t, err)
	assert.Equal(t, float32(30), slot)

	// keys are property identifier names
	assert.Contains(t, decoded, "present-value")
	assert.Contains(t, decoded, "status-flags", "computed properties serialize")
}

func TestRestoreRejectsUnknownKey(t *testing.T) {
	o := New(AnalogValue, 31, "snap-31")
	err := Restore(o, map[string]any{"no-such-property": 1})
	assert.Equal(t, btype.ErrUnknownProperty, err)
}

func TestSnapshotLimitEnable(t *testing.T) {
	o := newAV(t, 32, "snap-32")
	require.NoError(t, o.SetValue(btype.PropLimitEnable, btype.LimitEnable{HighLimitEnable: true}))

	blob, err := json.Marshal(Snapshot(o))
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(blob, &decoded))

	restored := New(AnalogValue, 32, "snap-32")
	require.NoError(t, Restore(restored, decoded))
	assert.Equal(t, btype.LimitEnable{HighLimitEnable: true},
		restored.Value(btype.PropLimitEnable))
}
