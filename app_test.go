package bacstack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
)

func TestOwnershipIndices(t *testing.T) {
	app, _, _ := testApp(t)

	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))

	assert.Same(t, av, app.Object(av.ID()))
	assert.Same(t, av, app.ObjectByName("av-1"))

	dup := newPlainAV(t, 1, "other-name")
	assert.Equal(t, btype.ErrDuplicateObjectID, app.Add(dup))

	dupName := newPlainAV(t, 2, "av-1")
	assert.Equal(t, btype.ErrDuplicateName, app.Add(dupName))
}

// Renaming updates both indices atomically and fails on a taken key.
func TestRenameThroughApplication(t *testing.T) {
	app, _, _ := testApp(t)

	first := newPlainAV(t, 1, "first")
	second := newPlainAV(t, 2, "second")
	require.NoError(t, app.Add(first))
	require.NoError(t, app.Add(second))

	err := app.WriteProperty(first.ID(), btype.PropObjectName, "second", nil, nil)
	assert.Equal(t, btype.ErrDuplicateName, err)
	assert.Equal(t, "first", first.Name(), "failed rename leaves the name")
	assert.Same(t, first, app.ObjectByName("first"))

	require.NoError(t, app.WriteProperty(first.ID(), btype.PropObjectName, "renamed", nil, nil))
	assert.Same(t, first, app.ObjectByName("renamed"))
	assert.Nil(t, app.ObjectByName("first"))
}

func TestReidentifyThroughApplication(t *testing.T) {
	app, _, _ := testApp(t)

	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))
	oldID := av.ID()
	newID := btype.ObjectID{Type: btype.ObjectAnalogValue, Instance: 77}

	require.NoError(t, app.WriteProperty(oldID, btype.PropObjectIdentifier, newID, nil, nil))
	assert.Nil(t, app.Object(oldID))
	assert.Same(t, av, app.Object(newID))
}

func TestReadWriteDispatch(t *testing.T) {
	app, _, _ := testApp(t)

	missing := btype.ObjectID{Type: btype.ObjectAnalogValue, Instance: 404}
	_, err := app.ReadProperty(missing, btype.PropPresentValue, nil)
	assert.Equal(t, btype.ErrUnknownObject, err)
	assert.Equal(t, btype.ErrUnknownObject,
		app.WriteProperty(missing, btype.PropPresentValue, float32(1), nil, nil))

	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))
	require.NoError(t, app.WriteProperty(av.ID(), btype.PropPresentValue, float32(42), nil, nil))
	v, err := app.ReadProperty(av.ID(), btype.PropPresentValue, nil)
	require.NoError(t, err)
	assert.Equal(t, float32(42), v)
}

// The device's objectList is derived from the ownership table.
func TestDeviceObjectList(t *testing.T) {
	app, _, _ := testApp(t)
	require.NoError(t, app.Add(newPlainAV(t, 1, "av-1")))
	require.NoError(t, app.Add(newPlainBV(t, 1, "bv-1")))

	v, err := app.ReadProperty(app.Device().ID(), btype.PropObjectList, nil)
	require.NoError(t, err)
	list := v.([]btype.Value)
	require.Len(t, list, 3)
	assert.Equal(t, app.Device().ID(), list[0], "device first, insertion order after")

	index := uint32(0)
	length, err := app.ReadProperty(app.Device().ID(), btype.PropObjectList, &index)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), length)
}

func TestDeviceClockProperties(t *testing.T) {
	app, _, _ := testApp(t)

	v, err := app.ReadProperty(app.Device().ID(), btype.PropLocalTime, nil)
	require.NoError(t, err)
	assert.Equal(t, btype.Time{Hour: 12}, v, "simulated clock reads through")

	v, err = app.ReadProperty(app.Device().ID(), btype.PropLocalDate, nil)
	require.NoError(t, err)
	assert.Equal(t, btype.Date{Year: 126, Month: 8, Day: 1, DayOfWeek: 6}, v)
}

func TestAlarmSummary(t *testing.T) {
	app, _, loop := testApp(t)
	addNotificationClass(t, app)

	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))
	quiet := newPlainAV(t, 2, "av-2")
	require.NoError(t, app.Add(quiet))

	assert.Empty(t, app.AlarmSummary())

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(11 * time.Second)
	require.Equal(t, btype.StateHighLimit, eventStateOf(t, av))

	summary := app.AlarmSummary()
	require.Len(t, summary, 1)
	assert.Equal(t, av.ID(), summary[0].ObjectID)
	assert.Equal(t, btype.StateHighLimit, summary[0].EventState)
	assert.False(t, summary[0].AckedTransitions.ToOffnormal)
}

func TestRemoveReleases(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(0.5)))
	require.NoError(t, app.Add(av))
	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, 0))
	sender.reset()

	require.NoError(t, app.Remove(av.ID()))
	assert.Nil(t, app.Object(av.ID()))
	assert.Nil(t, app.ObjectByName("av-1"))

	// monitors are gone: a direct value change stays silent
	require.NoError(t, av.SetValue(btype.PropPresentValue, float32(99)))
	loop.Drain()
	assert.Empty(t, sender.covs())

	assert.Equal(t, btype.ErrUnknownObject, app.Remove(av.ID()))
}

func TestRestoreIntoApplication(t *testing.T) {
	app, _, _ := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))

	snap := object.Snapshot(av)
	snap["description"] = "restored"
	require.NoError(t, object.Restore(av, snap))
	assert.Equal(t, "restored", av.Value(btype.PropDescription))
	assert.Same(t, av, app.ObjectByName("av-1"), "name index intact")
}
