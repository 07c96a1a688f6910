package bacstack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wvanheerde/bacstack/apdu"
	"github.com/wvanheerde/bacstack/btype"
)

// The increment filter suppresses insignificant changes and latches the
// previously reported value on every round.
func TestCOVIncrementFilter(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(1)))
	require.NoError(t, app.Add(av))
	writePV(t, app, av.ID(), float32(75))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, 0))
	require.Len(t, sender.covs(), 1, "initial notification on subscribe")
	sender.reset()

	writePV(t, app, av.ID(), float32(75.5))
	loop.Drain()
	assert.Empty(t, sender.covs(), "0.5 below the increment")

	writePV(t, app, av.ID(), float32(76.1))
	loop.Drain()
	covs := sender.covs()
	require.Len(t, covs, 1)

	n := covs[0]
	assert.Equal(t, uint64(7), n.SubscriberProcessIdentifier)
	assert.Equal(t, av.ID(), n.MonitoredObjectIdentifier)
	assert.Equal(t, app.Device().ID(), n.InitiatingDeviceIdentifier)
	assert.Zero(t, n.TimeRemaining, "indefinite subscription")
	require.Len(t, n.ListOfValues, 2)
	assert.Equal(t, btype.PropPresentValue, n.ListOfValues[0].Identifier)
	assert.Equal(t, float32(76.1), n.ListOfValues[0].Value)
	assert.Equal(t, btype.PropStatusFlags, n.ListOfValues[1].Identifier)

	// the reported value latched at 76.1
	sender.reset()
	writePV(t, app, av.ID(), float32(76.5))
	loop.Drain()
	assert.Empty(t, sender.covs())

	writePV(t, app, av.ID(), float32(77.2))
	loop.Drain()
	assert.Len(t, sender.covs(), 1)
}

// No matter how many properties change between turns, each subscription
// gets at most one notification per turn.
func TestCOVAtMostOncePerTurn(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(0.5)))
	require.NoError(t, app.Add(av))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, 0))
	sender.reset()

	writePV(t, app, av.ID(), float32(30))
	writePV(t, app, av.ID(), float32(40))
	writePV(t, app, av.ID(), float32(50))
	loop.Drain()

	assert.Len(t, sender.covs(), 1)
}

// Binary objects notify on any change.
func TestCOVGenericCriteria(t *testing.T) {
	app, sender, loop := testApp(t)

	bv := newBinary(t, app)
	require.NoError(t, app.SubscribeCOV(testAddr, 3, bv, false, 0))
	sender.reset()

	require.NoError(t, app.WriteProperty(bv, btype.PropPresentValue, btype.Active, nil, nil))
	loop.Drain()
	require.Len(t, sender.covs(), 1)
	assert.Equal(t, btype.Active, sender.covs()[0].ListOfValues[0].Value)
}

func newBinary(t *testing.T, app *Application) btype.ObjectID {
	t.Helper()
	bv := newPlainBV(t, 1, "bv-1")
	require.NoError(t, app.Add(bv))
	return bv.ID()
}

// The subscription lifetime is an absolute deadline; expiry cancels before
// the next notification round.
func TestCOVLifetimeExpiry(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(0.5)))
	require.NoError(t, app.Add(av))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, time.Minute))
	require.Len(t, app.Subscriptions(av.ID()), 1)
	sender.reset()

	loop.Advance(30 * time.Second)
	writePV(t, app, av.ID(), float32(30))
	loop.Drain()
	covs := sender.covs()
	require.Len(t, covs, 1)
	assert.Equal(t, uint64(30), covs[0].TimeRemaining)

	loop.Advance(31 * time.Second)
	assert.Empty(t, app.Subscriptions(av.ID()), "expired subscription removed")

	sender.reset()
	writePV(t, app, av.ID(), float32(60))
	loop.Drain()
	assert.Empty(t, sender.covs())
}

// The time remaining stays at least one second while a deadline exists.
func TestCOVTimeRemainingFloor(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(0.5)))
	require.NoError(t, app.Add(av))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, time.Minute))
	loop.Advance(59*time.Second + 800*time.Millisecond)
	sender.reset()

	writePV(t, app, av.ID(), float32(30))
	loop.Drain()
	covs := sender.covs()
	require.Len(t, covs, 1)
	assert.Equal(t, uint64(1), covs[0].TimeRemaining)
}

// Confirmed subscribers get confirmed requests.
func TestCOVConfirmed(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(0.5)))
	require.NoError(t, app.Add(av))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), true, 0))
	require.Len(t, sender.sends, 1)
	_, ok := sender.sends[0].Req.(*apdu.ConfirmedCOVNotificationRequest)
	assert.True(t, ok, "got %T", sender.sends[0].Req)
}

// A re-subscription of the same (recipient, process) pair refreshes the
// lifetime instead of doubling the fan-out.
func TestCOVResubscribeRefreshes(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(0.5)))
	require.NoError(t, app.Add(av))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, time.Minute))
	loop.Advance(30 * time.Second)
	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, time.Minute))
	require.Len(t, app.Subscriptions(av.ID()), 1)
	sender.reset()

	// past the original deadline, inside the refreshed one
	loop.Advance(45 * time.Second)
	writePV(t, app, av.ID(), float32(30))
	loop.Drain()
	assert.Len(t, sender.covs(), 1)
}

func TestCOVUnsubscribe(t *testing.T) {
	app, sender, loop := testApp(t)
	av := newPlainAV(t, 1, "av-1")
	require.NoError(t, av.SetValue(btype.PropCovIncrement, float32(0.5)))
	require.NoError(t, app.Add(av))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 7, av.ID(), false, 0))
	require.NoError(t, app.UnsubscribeCOV(testAddr, 7, av.ID()))
	assert.Empty(t, app.Subscriptions(av.ID()))

	// canceling again is a no-op
	assert.NoError(t, app.UnsubscribeCOV(testAddr, 7, av.ID()))

	sender.reset()
	writePV(t, app, av.ID(), float32(30))
	loop.Drain()
	assert.Empty(t, sender.covs())
}

func TestSubscribeUnknownObject(t *testing.T) {
	app, _, _ := testApp(t)
	err := app.SubscribeCOV(testAddr, 7,
		btype.ObjectID{Type: btype.ObjectAnalogValue, Instance: 404}, false, 0)
	assert.Equal(t, btype.ErrUnknownObject, err)
}

// A pulse converter re-sends periodically while subscriptions exist.
func TestPulseConverterPeriodicResend(t *testing.T) {
	app, sender, loop := testApp(t)

	pc := newPulseConverter(t)
	require.NoError(t, app.Add(pc))
	loop.Drain()

	require.NoError(t, app.SubscribeCOV(testAddr, 9, pc.ID(), false, 0))
	sender.reset()

	loop.Advance(95 * time.Second) // covPeriod is 30 s
	assert.Len(t, sender.covs(), 3)

	require.NoError(t, app.UnsubscribeCOV(testAddr, 9, pc.ID()))
	sender.reset()
	loop.Advance(time.Minute)
	assert.Empty(t, sender.covs(), "periodic re-send stops without subscriptions")
}
