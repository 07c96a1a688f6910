package bacstack

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wvanheerde/bacstack/apdu"
	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
	"github.com/wvanheerde/bacstack/sched"
)

// covCriteria selects the detection algorithm per monitored object type:
// which properties to observe, which to report, and whether the increment
// significance filter or the periodic re-send applies, conform clause 13.1.
type covCriteria struct {
	tracked   []btype.PropertyIdentifier
	reported  []btype.PropertyIdentifier
	increment bool
	periodic  bool
}

var genericCriteria = covCriteria{
	tracked:  []btype.PropertyIdentifier{btype.PropPresentValue, btype.PropStatusFlags},
	reported: []btype.PropertyIdentifier{btype.PropPresentValue, btype.PropStatusFlags},
}

var incrementCriteria = covCriteria{
	tracked: []btype.PropertyIdentifier{
		btype.PropPresentValue, btype.PropStatusFlags, btype.PropCovIncrement,
	},
	reported:  []btype.PropertyIdentifier{btype.PropPresentValue, btype.PropStatusFlags},
	increment: true,
}

var covCriteriaByType = map[btype.ObjectType]covCriteria{
	btype.ObjectAnalogInput:          incrementCriteria,
	btype.ObjectAnalogOutput:         incrementCriteria,
	btype.ObjectAnalogValue:          incrementCriteria,
	btype.ObjectLargeAnalogValue:     incrementCriteria,
	btype.ObjectIntegerValue:         incrementCriteria,
	btype.ObjectPositiveIntegerValue: incrementCriteria,
	btype.ObjectLightingOutput:       incrementCriteria,

	btype.ObjectBinaryInput:          genericCriteria,
	btype.ObjectBinaryOutput:         genericCriteria,
	btype.ObjectBinaryValue:          genericCriteria,
	btype.ObjectLifeSafetyPoint:      genericCriteria,
	btype.ObjectLifeSafetyZone:       genericCriteria,
	btype.ObjectMultiStateInput:      genericCriteria,
	btype.ObjectMultiStateOutput:     genericCriteria,
	btype.ObjectMultiStateValue:      genericCriteria,
	btype.ObjectOctetStringValue:     genericCriteria,
	btype.ObjectCharacterStringValue: genericCriteria,
	btype.ObjectTimeValue:            genericCriteria,
	btype.ObjectDateTimeValue:        genericCriteria,
	btype.ObjectDateValue:            genericCriteria,
	btype.ObjectTimePatternValue:     genericCriteria,
	btype.ObjectDatePatternValue:     genericCriteria,
	btype.ObjectDateTimePatternValue: genericCriteria,
	btype.ObjectLoop:                 genericCriteria,

	btype.ObjectAccessPoint: {
		tracked: []btype.PropertyIdentifier{
			btype.PropAccessEventTime, btype.PropStatusFlags,
		},
		reported: []btype.PropertyIdentifier{
			btype.PropAccessEvent, btype.PropStatusFlags,
			btype.PropAccessEventTag, btype.PropAccessEventTime,
			btype.PropAccessEventCredential,
		},
	},
	btype.ObjectCredentialDataInput: {
		tracked: []btype.PropertyIdentifier{
			btype.PropUpdateTime, btype.PropStatusFlags,
		},
		reported: []btype.PropertyIdentifier{
			btype.PropPresentValue, btype.PropStatusFlags, btype.PropUpdateTime,
		},
	},
	btype.ObjectLoadControl: {
		tracked: []btype.PropertyIdentifier{
			btype.PropPresentValue, btype.PropStatusFlags,
			btype.PropRequestedShedLevel, btype.PropStartTime,
			btype.PropShedDuration, btype.PropDutyWindow,
		},
		reported: []btype.PropertyIdentifier{
			btype.PropPresentValue, btype.PropStatusFlags,
			btype.PropRequestedShedLevel, btype.PropStartTime,
			btype.PropShedDuration, btype.PropDutyWindow,
		},
	},
	btype.ObjectPulseConverter: {
		tracked: []btype.PropertyIdentifier{
			btype.PropPresentValue, btype.PropStatusFlags, btype.PropCovPeriod,
		},
		reported:  []btype.PropertyIdentifier{btype.PropPresentValue, btype.PropStatusFlags},
		increment: true,
		periodic:  true,
	},
}

// A Subscription is one active change-of-value registration.
type Subscription struct {
	Recipient btype.Address
	ProcessID uint64
	ObjectID  btype.ObjectID
	Confirmed bool

	// Deadline is the absolute expiry instant, zero for indefinite.
	Deadline time.Time

	timer    *sched.Timer
	detector *covDetector
}

// covDetector observes one object and fans notifications out to its
// subscription list.
type covDetector struct {
	algorithm
	app      *Application
	obj      *object.Object
	criteria covCriteria
	subs     []*Subscription

	// previouslyReported latches the value of the last notification
	// round for the increment filter.
	previouslyReported btype.Value

	periodTimer *sched.Timer
}

// errNotCOVObject denies subscription on an object type without a detection
// algorithm.
var errNotCOVObject = btype.Error{Class: btype.ClassObject, Code: btype.CodeOptionalFunctionalityNotSupported}

func (app *Application) detectorFor(o *object.Object) (*covDetector, error) {
	if d, ok := app.detectors[o.ID()]; ok {
		return d, nil
	}
	criteria, ok := covCriteriaByType[o.ID().Type]
	if !ok {
		return nil, errNotCOVObject
	}

	d := &covDetector{app: app, obj: o, criteria: criteria}
	d.init(app.loop)
	d.run = d.execute

	for _, prop := range criteria.tracked {
		prop := prop
		var filter func(old, new btype.Value) bool
		if criteria.increment && prop == btype.PropPresentValue {
			filter = d.incrementFilter
		}
		if criteria.periodic && prop == btype.PropCovPeriod {
			filter = d.periodFilter
		}
		d.bindProperty(prop.String(), o, prop, func(btype.Value) {}, filter)
	}

	app.detectors[o.ID()] = d
	return d, nil
}

// incrementFilter is the significance test of the increment criteria: the
// change counts once the distance from the previously reported value
// reaches covIncrement.
func (d *covDetector) incrementFilter(old, new btype.Value) bool {
	if d.previouslyReported == nil {
		d.previouslyReported = old
	}
	prev, ok1 := asFloat(d.previouslyReported)
	next, ok2 := asFloat(new)
	if !ok1 || !ok2 {
		return !btype.Equal(old, new)
	}
	increment, ok := asFloat(d.obj.Value(btype.PropCovIncrement))
	if !ok {
		return !btype.Equal(old, new)
	}
	return next <= prev-increment || next >= prev+increment
}

// periodFilter reschedules the periodic re-send on a covPeriod change
// without triggering a notification round.
func (d *covDetector) periodFilter(old, new btype.Value) bool {
	if d.periodTimer != nil {
		d.periodTimer.Cancel()
		d.periodTimer = nil
	}
	if len(d.subs) != 0 {
		d.startPeriod()
	}
	return false
}

func (d *covDetector) startPeriod() {
	period, ok := d.obj.Value(btype.PropCovPeriod).(uint64)
	if !ok || period == 0 {
		return
	}
	d.periodTimer = d.loop.CallEvery(time.Duration(period)*time.Second, func() {
		d.notifyAll(nil)
	})
}

// execute runs once per loop turn regardless of how many tracked properties
// changed, so each subscription gets at most one notification per turn.
func (d *covDetector) execute() {
	d.notifyAll(nil)
}

// notifyAll sends one notification round: to the given subscription only
// (on a fresh subscribe), or to every active subscription. Expired
// subscriptions are dropped before the round begins.
func (d *covDetector) notifyAll(only *Subscription) {
	now := d.loop.Now()
	kept := d.subs[:0]
	for _, sub := range d.subs {
		if !sub.Deadline.IsZero() && !sub.Deadline.After(now) {
			d.drop(sub, "lifetime expired")
			continue
		}
		kept = append(kept, sub)
	}
	d.subs = kept
	if len(d.subs) == 0 {
		if d.periodTimer != nil {
			d.periodTimer.Cancel()
			d.periodTimer = nil
		}
		return
	}

	if d.criteria.increment {
		d.previouslyReported = d.obj.Value(btype.PropPresentValue)
	}

	var values []btype.PropertyValue
	for _, prop := range d.criteria.reported {
		v := d.obj.Value(prop)
		if v == nil {
			continue
		}
		values = append(values, btype.PropertyValue{Identifier: prop, Value: v})
	}

	targets := d.subs
	if only != nil {
		targets = []*Subscription{only}
	}
	for _, sub := range targets {
		var remaining uint64
		if !sub.Deadline.IsZero() {
			remaining = uint64(sub.Deadline.Sub(now) / time.Second)
			if remaining == 0 {
				remaining = 1
			}
		}

		payload := apdu.COVNotification{
			SubscriberProcessIdentifier: sub.ProcessID,
			InitiatingDeviceIdentifier:  d.app.device.ID(),
			MonitoredObjectIdentifier:   d.obj.ID(),
			TimeRemaining:               remaining,
			ListOfValues:                values,
		}
		var req apdu.Request
		if sub.Confirmed {
			req = &apdu.ConfirmedCOVNotificationRequest{COVNotification: payload}
		} else {
			req = &apdu.UnconfirmedCOVNotificationRequest{COVNotification: payload}
		}
		d.app.send(sub.Recipient, req, d.app.log.WithFields(logrus.Fields{
			"object":    d.obj.ID().String(),
			"recipient": sub.Recipient.String(),
			"process":   sub.ProcessID,
		}))
	}
}

func (d *covDetector) drop(sub *Subscription, reason string) {
	if sub.timer != nil {
		sub.timer.Cancel()
		sub.timer = nil
	}
	d.app.log.WithFields(logrus.Fields{
		"object":    d.obj.ID().String(),
		"recipient": sub.Recipient.String(),
		"process":   sub.ProcessID,
	}).Debug("cov subscription removed: " + reason)

	if len(d.subs) == 0 && d.periodTimer != nil {
		d.periodTimer.Cancel()
		d.periodTimer = nil
	}
}

func (d *covDetector) remove(sub *Subscription) {
	for i, have := range d.subs {
		if have == sub {
			d.subs = append(d.subs[:i:i], d.subs[i+1:]...)
			break
		}
	}
	d.drop(sub, "unsubscribed")
}

func (d *covDetector) release() {
	for _, sub := range d.subs {
		if sub.timer != nil {
			sub.timer.Cancel()
		}
	}
	d.subs = nil
	if d.periodTimer != nil {
		d.periodTimer.Cancel()
		d.periodTimer = nil
	}
	d.unbind()
}

// SubscribeCOV registers, refreshes or cancels a change-of-value
// subscription, conform clause 13.14. A zero lifetime subscribes
// indefinitely. A fresh or refreshed subscription gets an immediate
// notification of the current state.
func (app *Application) SubscribeCOV(recipient btype.Address, processID uint64, monitored btype.ObjectID, confirmed bool, lifetime time.Duration) error {
	o, ok := app.byID[monitored]
	if !ok {
		return btype.ErrUnknownObject
	}
	d, err := app.detectorFor(o)
	if err != nil {
		return err
	}

	// refresh replaces any previous registration of the pair
	for _, have := range d.subs {
		if have.ProcessID == processID && have.Recipient.Equal(recipient) {
			d.remove(have)
			break
		}
	}

	sub := &Subscription{
		Recipient: recipient,
		ProcessID: processID,
		ObjectID:  monitored,
		Confirmed: confirmed,
		detector:  d,
	}
	if lifetime > 0 {
		sub.Deadline = app.loop.Now().Add(lifetime)
		sub.timer = app.loop.CallLater(lifetime, func() {
			d.remove(sub)
		})
	}
	if len(d.subs) == 0 && d.criteria.periodic {
		d.startPeriod()
	}
	d.subs = append(d.subs, sub)

	// the subscriber learns the current state right away
	d.notifyAll(sub)
	return nil
}

// UnsubscribeCOV cancels a registration. Unknown registrations are a no-op,
// matching the idempotent cancellation of the standard.
func (app *Application) UnsubscribeCOV(recipient btype.Address, processID uint64, monitored btype.ObjectID) error {
	d, ok := app.detectors[monitored]
	if !ok {
		return nil
	}
	for _, have := range d.subs {
		if have.ProcessID == processID && have.Recipient.Equal(recipient) {
			d.remove(have)
			return nil
		}
	}
	return nil
}

// Subscriptions lists the active registrations on a monitored object.
func (app *Application) Subscriptions(monitored btype.ObjectID) []*Subscription {
	d, ok := app.detectors[monitored]
	if !ok {
		return nil
	}
	return append([]*Subscription(nil), d.subs...)
}

// asFloat widens the numeric value kinds for limit comparisons.
func asFloat(v btype.Value) (float64, bool) {
	switch v := v.(type) {
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case uint64:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}
