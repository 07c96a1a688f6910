package bacstack

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/wvanheerde/bacstack/apdu"
	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
	"github.com/wvanheerde/bacstack/sched"
)

// Saturday noon, so the all-week destination windows apply.
var epoch = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

var testAddr = btype.Address{Network: 0, MAC: []byte{10, 0, 0, 7, 0xba, 0xc0}}

// recordingSender captures the requests the core hands to the service
// layer. The loop is driven from the test goroutine, so no locking.
type recordingSender struct {
	sends []recordedSend
}

type recordedSend struct {
	Addr btype.Address
	Req  apdu.Request
}

// Send implements the apdu.Sender interface.
func (s *recordingSender) Send(_ context.Context, dst btype.Address, req apdu.Request) error {
	s.sends = append(s.sends, recordedSend{Addr: dst, Req: req})
	return nil
}

func (s *recordingSender) reset() { s.sends = nil }

func (s *recordingSender) covs() []*apdu.COVNotification {
	var out []*apdu.COVNotification
	for _, send := range s.sends {
		switch req := send.Req.(type) {
		case *apdu.ConfirmedCOVNotificationRequest:
			out = append(out, &req.COVNotification)
		case *apdu.UnconfirmedCOVNotificationRequest:
			out = append(out, &req.COVNotification)
		}
	}
	return out
}

func (s *recordingSender) events() []*apdu.EventNotification {
	var out []*apdu.EventNotification
	for _, send := range s.sends {
		switch req := send.Req.(type) {
		case *apdu.ConfirmedEventNotificationRequest:
			out = append(out, &req.EventNotification)
		case *apdu.UnconfirmedEventNotificationRequest:
			out = append(out, &req.EventNotification)
		}
	}
	return out
}

func testApp(t *testing.T) (*Application, *recordingSender, *sched.Loop) {
	t.Helper()

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	loop := sched.NewSimulated(epoch)
	sender := new(recordingSender)
	app, err := New(Config{
		Device: object.DeviceConfig{
			Instance:   999,
			Name:       "test-device",
			VendorName: "bacstack",
			ModelName:  "test",
		},
		Loop:   loop,
		Sender: sender,
		Logger: log,
	})
	require.NoError(t, err)
	return app, sender, loop
}

// addNotificationClass installs class number one with a single all-day,
// all-week, unconfirmed destination reporting every transition.
func addNotificationClass(t *testing.T, app *Application) {
	t.Helper()
	nc := object.New(object.NotificationClass, 1, "alarms")
	require.NoError(t, nc.SetValue(btype.PropNotificationClass, uint64(1)))
	require.NoError(t, nc.SetValue(btype.PropPriority, []btype.Value{
		uint64(64), uint64(64), uint64(64),
	}))
	require.NoError(t, nc.SetValue(btype.PropAckRequired, btype.EventTransitionBits{}))
	require.NoError(t, nc.SetValue(btype.PropRecipientList, []btype.Value{allDayDestination()}))
	require.NoError(t, app.Add(nc))
}

func allDayDestination() btype.Destination {
	return btype.Destination{
		ValidDays:                   btype.EveryDay,
		FromTime:                    btype.Time{},
		ToTime:                      btype.Time{Hour: 23, Minute: 59, Second: 59, Hundredths: 99},
		Recipient:                   btype.Recipient{Address: &testAddr},
		ProcessIdentifier:           1,
		IssueConfirmedNotifications: false,
		Transitions:                 btype.AllTransitions,
	}
}

// newAlarmedAV builds an AnalogValue with intrinsic out-of-range reporting:
// limits 0..100, deadband 5, time delay 10 s, both limits enabled.
func newAlarmedAV(t *testing.T, instance uint32, name string) *object.Object {
	t.Helper()
	o := object.New(object.AnalogValue, instance, name)
	require.NoError(t, o.SetValue(btype.PropUnits, btype.UnitsDegreesCelsius))
	require.NoError(t, o.SetValue(btype.PropEventState, btype.StateNormal))
	require.NoError(t, o.SetValue(btype.PropOutOfService, false))
	require.NoError(t, o.SetValue(btype.PropRelinquishDefault, float32(20)))
	require.NoError(t, o.SetValue(btype.PropPresentValue, float32(20)))
	require.NoError(t, o.SetValue(btype.PropLowLimit, float32(0)))
	require.NoError(t, o.SetValue(btype.PropHighLimit, float32(100)))
	require.NoError(t, o.SetValue(btype.PropDeadband, float32(5)))
	require.NoError(t, o.SetValue(btype.PropLimitEnable, btype.BothLimits))
	require.NoError(t, o.SetValue(btype.PropTimeDelay, uint64(10)))
	require.NoError(t, o.SetValue(btype.PropEventEnable, btype.AllTransitions))
	require.NoError(t, o.SetValue(btype.PropAckedTransitions, btype.AllTransitions))
	require.NoError(t, o.SetValue(btype.PropNotificationClass, uint64(1)))
	return o
}

// newPlainAV builds an AnalogValue without any event reporting.
func newPlainAV(t *testing.T, instance uint32, name string) *object.Object {
	t.Helper()
	o := object.New(object.AnalogValue, instance, name)
	require.NoError(t, o.SetValue(btype.PropUnits, btype.UnitsDegreesCelsius))
	require.NoError(t, o.SetValue(btype.PropEventState, btype.StateNormal))
	require.NoError(t, o.SetValue(btype.PropOutOfService, false))
	require.NoError(t, o.SetValue(btype.PropRelinquishDefault, float32(20)))
	require.NoError(t, o.SetValue(btype.PropPresentValue, float32(20)))
	return o
}

// newPlainBV builds a BinaryValue without any event reporting.
func newPlainBV(t *testing.T, instance uint32, name string) *object.Object {
	t.Helper()
	o := object.New(object.BinaryValue, instance, name)
	require.NoError(t, o.SetValue(btype.PropEventState, btype.StateNormal))
	require.NoError(t, o.SetValue(btype.PropOutOfService, false))
	require.NoError(t, o.SetValue(btype.PropRelinquishDefault, btype.Inactive))
	require.NoError(t, o.SetValue(btype.PropPresentValue, btype.Inactive))
	return o
}

// newPulseConverter builds a PulseConverter with a 30 s covPeriod.
func newPulseConverter(t *testing.T) *object.Object {
	t.Helper()
	o := object.New(object.PulseConverter, 1, "pc-1")
	require.NoError(t, o.SetValue(btype.PropEventState, btype.StateNormal))
	require.NoError(t, o.SetValue(btype.PropOutOfService, false))
	require.NoError(t, o.SetValue(btype.PropPresentValue, float32(0)))
	require.NoError(t, o.SetValue(btype.PropScaleFactor, float32(1)))
	require.NoError(t, o.SetValue(btype.PropAdjustValue, float32(0)))
	require.NoError(t, o.SetValue(btype.PropCount, uint64(0)))
	require.NoError(t, o.SetValue(btype.PropCovIncrement, float32(1)))
	require.NoError(t, o.SetValue(btype.PropCovPeriod, uint64(30)))
	return o
}

func writePV(t *testing.T, app *Application, id btype.ObjectID, v btype.Value) {
	t.Helper()
	require.NoError(t, app.WriteProperty(id, btype.PropPresentValue, v, nil, nil))
}

func eventStateOf(t *testing.T, o *object.Object) btype.EventState {
	t.Helper()
	state, ok := o.Value(btype.PropEventState).(btype.EventState)
	require.True(t, ok, "eventState missing")
	return state
}
