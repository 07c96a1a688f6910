package bacstack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
)

// An out-of-range high-limit transition holds for the time delay before it
// commits and notifies.
func TestHighLimitTransitionWithDelay(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)
	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))
	loop.Drain()
	sender.reset()

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(9 * time.Second)
	assert.Equal(t, btype.StateNormal, eventStateOf(t, av), "still normal inside the delay")
	assert.Empty(t, sender.events())

	loop.Advance(2 * time.Second)
	assert.Equal(t, btype.StateHighLimit, eventStateOf(t, av))

	events := sender.events()
	require.Len(t, events, 1, "exactly one notification")
	n := events[0]
	assert.Equal(t, av.ID(), n.EventObjectIdentifier)
	assert.Equal(t, btype.EventOutOfRange, n.EventType)
	assert.Equal(t, btype.StateHighLimit, n.ToState)
	require.NotNil(t, n.FromState)
	assert.Equal(t, btype.StateNormal, *n.FromState)
	assert.Equal(t, uint64(1), n.NotificationClass)
	assert.Equal(t, uint8(64), n.Priority)

	params, ok := n.EventValues.(btype.Sequence)
	require.True(t, ok)
	oor, ok := params["outOfRange"].(btype.Sequence)
	require.True(t, ok)
	assert.Equal(t, float32(110), oor["exceedingValue"])
	assert.Equal(t, float32(100), oor["exceededLimit"])
	assert.Equal(t, float32(5), oor["deadband"])
}

// The deadband prevents flapping: the value must clear highLimit − deadband
// before the return to normal starts.
func TestDeadbandPreventsFlapping(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)
	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(11 * time.Second)
	require.Equal(t, btype.StateHighLimit, eventStateOf(t, av))
	sender.reset()

	// 96 is still above 100 − 5
	writePV(t, app, av.ID(), float32(96))
	loop.Advance(30 * time.Second)
	assert.Equal(t, btype.StateHighLimit, eventStateOf(t, av))
	assert.Empty(t, sender.events())

	writePV(t, app, av.ID(), float32(95))
	loop.Advance(10 * time.Second)
	assert.Equal(t, btype.StateNormal, eventStateOf(t, av))
	require.Len(t, sender.events(), 1)
	assert.Equal(t, btype.StateNormal, sender.events()[0].ToState)
}

// A condition change during the delay replaces or cancels the pending
// transition.
func TestPendingTransitionCancels(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)
	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))
	loop.Drain()
	sender.reset()

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(5 * time.Second)

	// back in range before the delay elapses
	writePV(t, app, av.ID(), float32(50))
	loop.Advance(time.Minute)
	assert.Equal(t, btype.StateNormal, eventStateOf(t, av))
	assert.Empty(t, sender.events(), "canceled transition must not notify")
}

// Fault detection takes precedence: crossing the fault limits forces FAULT
// regardless of the event limits, and recovery notifies normal-from-fault.
func TestFaultPrecedence(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)

	av := newAlarmedAV(t, 1, "av-fd")
	require.NoError(t, av.SetValue(btype.PropFaultLowLimit, float32(0)))
	require.NoError(t, av.SetValue(btype.PropFaultHighLimit, float32(100)))
	require.NoError(t, app.Add(av))
	loop.Drain()
	sender.reset()

	writePV(t, app, av.ID(), float32(150))
	loop.Drain()

	assert.Equal(t, btype.OverRange, av.Value(btype.PropReliability))
	assert.Equal(t, btype.StateFault, eventStateOf(t, av))

	events := sender.events()
	require.Len(t, events, 1)
	assert.Equal(t, btype.EventChangeOfReliability, events[0].EventType)
	params := events[0].EventValues.(btype.Sequence)
	fault := params["changeOfReliability"].(btype.Sequence)
	assert.Equal(t, btype.OverRange, fault["reliability"])
	values := fault["propertyValues"].([]btype.Value)
	require.Len(t, values, 1)
	pv := values[0].(btype.PropertyValue)
	assert.Equal(t, btype.PropPresentValue, pv.Identifier)
	assert.Equal(t, float32(150), pv.Value)

	flags, ok := av.Value(btype.PropStatusFlags).(btype.StatusFlags)
	require.True(t, ok)
	assert.True(t, flags.Fault)
	sender.reset()

	writePV(t, app, av.ID(), float32(50))
	loop.Drain()

	assert.Equal(t, btype.NoFaultDetected, av.Value(btype.PropReliability))
	assert.Equal(t, btype.StateNormal, eventStateOf(t, av))
	events = sender.events()
	require.Len(t, events, 1)
	assert.Equal(t, btype.StateNormal, events[0].ToState)
	require.NotNil(t, events[0].FromState)
	assert.Equal(t, btype.StateFault, *events[0].FromState)
}

// While eventAlgorithmInhibit is true no transitions occur except into and
// out of FAULT, and the state reverts to NORMAL.
func TestInhibitStability(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)
	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropEventAlgorithmInhibit, false))
	require.NoError(t, app.Add(av))

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(11 * time.Second)
	require.Equal(t, btype.StateHighLimit, eventStateOf(t, av))
	sender.reset()

	require.NoError(t, av.SetValue(btype.PropEventAlgorithmInhibit, true))
	loop.Drain()
	assert.Equal(t, btype.StateNormal, eventStateOf(t, av), "inhibit forces normal")

	// offnormal conditions are suppressed while inhibited
	writePV(t, app, av.ID(), float32(120))
	loop.Advance(time.Minute)
	assert.Equal(t, btype.StateNormal, eventStateOf(t, av))

	// un-inhibit lets the standing condition run its regular delay
	require.NoError(t, av.SetValue(btype.PropEventAlgorithmInhibit, false))
	loop.Advance(11 * time.Second)
	assert.Equal(t, btype.StateHighLimit, eventStateOf(t, av))
}

// Disabling event detection silently resets the machine.
func TestDetectionDisableResets(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)
	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropEventDetectionEnable, true))
	require.NoError(t, app.Add(av))

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(11 * time.Second)
	require.Equal(t, btype.StateHighLimit, eventStateOf(t, av))
	sender.reset()

	require.NoError(t, av.SetValue(btype.PropEventDetectionEnable, false))
	loop.Drain()

	assert.Equal(t, btype.StateNormal, eventStateOf(t, av))
	assert.Empty(t, sender.events(), "quiet transition")
	acked, _ := av.Value(btype.PropAckedTransitions).(btype.EventTransitionBits)
	assert.Equal(t, btype.AllTransitions, acked)
}

// Event time stamps land in their per-group slots: offnormal 0, fault 1,
// normal 2.
func TestEventTimeStampSlots(t *testing.T) {
	app, _, loop := testApp(t)
	addNotificationClass(t, app)
	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, app.Add(av))

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(11 * time.Second)

	stamps, ok := av.Value(btype.PropEventTimeStamps).([]btype.Value)
	require.True(t, ok)
	require.Len(t, stamps, 3)
	offnormalAt := stamps[0].(btype.TimeStamp)
	assert.False(t, offnormalAt.DateTime.Date.IsWildcard(), "offnormal slot stamped")
	normalAt := stamps[2].(btype.TimeStamp)
	assert.True(t, normalAt.DateTime.Date.IsWildcard(), "normal slot untouched")

	writePV(t, app, av.ID(), float32(10))
	loop.Advance(11 * time.Second)
	stamps, _ = av.Value(btype.PropEventTimeStamps).([]btype.Value)
	normalAt = stamps[2].(btype.TimeStamp)
	assert.False(t, normalAt.DateTime.Date.IsWildcard(), "normal slot stamped")
	assert.Equal(t, uint8(12), normalAt.DateTime.Time.Hour)
}

// The default message text synthesizes "<state> at <timestamp>"; a
// configured template binds parameter names.
func TestEventMessageTexts(t *testing.T) {
	app, _, loop := testApp(t)
	addNotificationClass(t, app)
	av := newAlarmedAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropEventMessageTexts,
		[]btype.Value{"", "", ""}))
	require.NoError(t, av.SetValue(btype.PropEventMessageTextsConfig,
		[]btype.Value{"value {pMonitoredValue} over {pHighLimit}", "", ""}))
	require.NoError(t, app.Add(av))

	writePV(t, app, av.ID(), float32(110))
	loop.Advance(11 * time.Second)

	texts, ok := av.Value(btype.PropEventMessageTexts).([]btype.Value)
	require.True(t, ok)
	assert.Equal(t, "value 110 over 100", texts[0])
}

// Algorithmic reporting: the EventEnrollment owns the state machine and
// initiates the notification, not the monitored object.
func TestEventEnrollmentReporting(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)

	av := newPlainAV(t, 2, "av-2")
	require.NoError(t, app.Add(av))

	ee := object.New(object.EventEnrollment, 1, "ee-1")
	require.NoError(t, ee.SetValue(btype.PropObjectPropertyReference,
		btype.DeviceObjectPropertyReference{
			ObjectID: av.ID(),
			Property: btype.PropPresentValue,
		}.Seq()))
	require.NoError(t, ee.SetValue(btype.PropEventType, btype.EventOutOfRange))
	require.NoError(t, ee.SetValue(btype.PropNotifyType, btype.NotifyAlarm))
	require.NoError(t, ee.SetValue(btype.PropEventParameters, btype.Sequence{
		"outOfRange": btype.Sequence{
			"timeDelay": uint64(10),
			"lowLimit":  float32(0),
			"highLimit": float32(100),
			"deadband":  float32(5),
		},
	}))
	require.NoError(t, ee.SetValue(btype.PropEventState, btype.StateNormal))
	require.NoError(t, ee.SetValue(btype.PropEventEnable, btype.AllTransitions))
	require.NoError(t, ee.SetValue(btype.PropAckedTransitions, btype.AllTransitions))
	require.NoError(t, ee.SetValue(btype.PropNotificationClass, uint64(1)))
	require.NoError(t, ee.SetValue(btype.PropEventDetectionEnable, true))
	require.NoError(t, app.Add(ee))
	loop.Drain()
	sender.reset()

	writePV(t, app, av.ID(), float32(105))
	loop.Advance(10 * time.Second)

	assert.Equal(t, btype.StateHighLimit, eventStateOf(t, ee),
		"state machine lives on the enrollment")
	assert.Equal(t, btype.StateNormal, eventStateOf(t, av),
		"monitored object unaffected")

	events := sender.events()
	require.Len(t, events, 1, "exactly one notification")
	assert.Equal(t, ee.ID(), events[0].EventObjectIdentifier)
	assert.Equal(t, btype.EventOutOfRange, events[0].EventType)
}

// Enrollment wiring failures leave the object in service with reliability
// configurationError.
func TestEnrollmentFailure(t *testing.T) {
	app, _, _ := testApp(t)
	addNotificationClass(t, app)

	ee := object.New(object.EventEnrollment, 2, "ee-2")
	require.NoError(t, ee.SetValue(btype.PropObjectPropertyReference,
		btype.DeviceObjectPropertyReference{
			ObjectID: btype.ObjectID{Type: btype.ObjectAnalogValue, Instance: 404},
			Property: btype.PropPresentValue,
		}.Seq()))
	require.NoError(t, ee.SetValue(btype.PropEventType, btype.EventOutOfRange))
	require.NoError(t, ee.SetValue(btype.PropNotificationClass, uint64(1)))

	err := app.Add(ee)
	assert.Error(t, err, "unknown monitored object")
	assert.Equal(t, btype.ConfigurationError, ee.Value(btype.PropReliability))
	assert.NotNil(t, app.Object(ee.ID()), "object stays in service")
}

// The enrollment and its monitored object must not both run fault
// algorithms.
func TestDualFaultAlgorithmRejected(t *testing.T) {
	app, _, loop := testApp(t)
	addNotificationClass(t, app)

	av := newAlarmedAV(t, 3, "av-3")
	require.NoError(t, av.SetValue(btype.PropFaultLowLimit, float32(0)))
	require.NoError(t, av.SetValue(btype.PropFaultHighLimit, float32(100)))
	require.NoError(t, app.Add(av))
	loop.Drain()

	ee := object.New(object.EventEnrollment, 3, "ee-3")
	require.NoError(t, ee.SetValue(btype.PropObjectPropertyReference,
		btype.DeviceObjectPropertyReference{
			ObjectID: av.ID(),
			Property: btype.PropPresentValue,
		}.Seq()))
	require.NoError(t, ee.SetValue(btype.PropEventType, btype.EventOutOfRange))
	require.NoError(t, ee.SetValue(btype.PropEventParameters, btype.Sequence{
		"outOfRange": btype.Sequence{
			"timeDelay": uint64(0),
			"lowLimit":  float32(0),
			"highLimit": float32(100),
			"deadband":  float32(0),
		},
	}))
	require.NoError(t, ee.SetValue(btype.PropFaultType, btype.FaultOutOfRange))
	require.NoError(t, ee.SetValue(btype.PropFaultParameters, btype.Sequence{
		"faultOutOfRange": btype.Sequence{
			"minNormalValue": btype.Sequence{"realValue": float32(0)},
			"maxNormalValue": btype.Sequence{"realValue": float32(100)},
		},
	}))
	require.NoError(t, ee.SetValue(btype.PropNotificationClass, uint64(1)))

	err := app.Add(ee)
	require.Error(t, err)
	assert.ErrorContains(t, err, "inconsistent-configuration")
}

// The change-of-timer algorithm stays a stub.
func TestChangeOfTimerUnsupported(t *testing.T) {
	app, _, _ := testApp(t)
	addNotificationClass(t, app)
	av := newPlainAV(t, 4, "av-4")
	require.NoError(t, app.Add(av))

	ee := object.New(object.EventEnrollment, 4, "ee-4")
	require.NoError(t, ee.SetValue(btype.PropObjectPropertyReference,
		btype.DeviceObjectPropertyReference{
			ObjectID: av.ID(),
			Property: btype.PropPresentValue,
		}.Seq()))
	require.NoError(t, ee.SetValue(btype.PropEventType, btype.EventChangeOfTimer))
	require.NoError(t, ee.SetValue(btype.PropNotificationClass, uint64(1)))

	err := app.Add(ee)
	require.Error(t, err)
	assert.ErrorContains(t, err, "optional-functionality-not-supported")
}

// Change-of-state reporting on a binary value with an alarm value.
func TestChangeOfStateIntrinsic(t *testing.T) {
	app, sender, loop := testApp(t)
	addNotificationClass(t, app)

	bv := object.New(object.BinaryValue, 1, "bv-1")
	require.NoError(t, bv.SetValue(btype.PropEventState, btype.StateNormal))
	require.NoError(t, bv.SetValue(btype.PropOutOfService, false))
	require.NoError(t, bv.SetValue(btype.PropRelinquishDefault, btype.Inactive))
	require.NoError(t, bv.SetValue(btype.PropPresentValue, btype.Inactive))
	require.NoError(t, bv.SetValue(btype.PropAlarmValue, btype.Active))
	require.NoError(t, bv.SetValue(btype.PropTimeDelay, uint64(0)))
	require.NoError(t, bv.SetValue(btype.PropEventEnable, btype.AllTransitions))
	require.NoError(t, bv.SetValue(btype.PropNotificationClass, uint64(1)))
	require.NoError(t, app.Add(bv))
	loop.Drain()
	sender.reset()

	writePV(t, app, bv.ID(), btype.Active)
	loop.Drain()

	assert.Equal(t, btype.StateOffnormal, eventStateOf(t, bv))
	events := sender.events()
	require.Len(t, events, 1)
	assert.Equal(t, btype.EventChangeOfState, events[0].EventType)
	params := events[0].EventValues.(btype.Sequence)
	cos := params["changeOfState"].(btype.Sequence)
	assert.Equal(t, btype.Sequence{"binaryValue": btype.Active}, cos["newState"])

	writePV(t, app, bv.ID(), btype.Inactive)
	loop.Drain()
	assert.Equal(t, btype.StateNormal, eventStateOf(t, bv))
}
