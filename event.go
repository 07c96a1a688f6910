package bacstack

import (
	"context"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/wvanheerde/bacstack/apdu"
	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
	"github.com/wvanheerde/bacstack/sched"
)

// An eventAlgorithm drives the event-state machine of clause 13.2 for one
// monitored object: intrinsic reporting binds it to the object itself, and
// algorithmic reporting binds it to an EventEnrollment which references the
// monitored property. The config object (the enrollment, else the monitored
// object) carries eventState and the reporting properties.
type eventAlgorithm struct {
	algorithm
	app        *Application
	monitored  *object.Object
	monitoring *object.Object // the EventEnrollment, nil for intrinsic
	fault      *faultAlgorithm
	eventType  btype.EventType

	// execute holds the algorithm-specific transition rules.
	execute func()

	// buildParams builds the notification parameters of an offnormal or
	// normal transition. Fault transitions use faultParameters instead.
	buildParams func(toState btype.EventState) btype.Value

	// formatVars supplies the template variables for
	// eventMessageTextsConfig.
	formatVars func() map[string]string

	// bound parameters
	currentState       btype.EventState
	currentReliability btype.Reliability
	detectionEnable    btype.Value // nil means enabled
	inhibit            bool
	timeDelay          uint64
	timeDelayNormal    *uint64

	// snapshotState is the state at the start of the current execution.
	snapshotState btype.EventState

	// a delayed transition holds its target and timer
	pendingState btype.EventState
	pendingTimer *sched.Timer
}

func (app *Application) newEventAlgorithm(monitoring, monitored *object.Object, eventType btype.EventType, fault *faultAlgorithm) *eventAlgorithm {
	ea := &eventAlgorithm{
		app:        app,
		monitored:  monitored,
		monitoring: monitoring,
		fault:      fault,
		eventType:  eventType,
	}
	ea.init(app.loop)
	ea.run = ea.dispatch

	cfg := ea.config()
	ea.bindProperty("pCurrentState", cfg, btype.PropEventState,
		func(v btype.Value) {
			if s, ok := v.(btype.EventState); ok {
				ea.currentState = s
			}
		}, nil)
	ea.bindProperty("pCurrentReliability", cfg, btype.PropReliability,
		func(v btype.Value) {
			if r, ok := v.(btype.Reliability); ok {
				ea.currentReliability = r
			}
		}, nil)
	ea.bindProperty("pEventDetectionEnable", cfg, btype.PropEventDetectionEnable,
		func(v btype.Value) { ea.detectionEnable = v }, nil)
	ea.bindProperty("pEventAlgorithmInhibit", cfg, btype.PropEventAlgorithmInhibit,
		func(v btype.Value) {
			if b, ok := v.(bool); ok {
				ea.inhibit = b
			}
		}, nil)

	// an eventAlgorithmInhibitRef cascades the referenced property into
	// the config object's own inhibit flag
	if ref, ok := cfg.Value(btype.PropEventAlgorithmInhibitRef).(btype.Sequence); ok {
		if r, err := refOfOPR(ref); err == nil {
			if source := app.byID[r.ObjectID]; source != nil {
				source.Monitor(r.Property, func(_, new btype.Value) {
					cfg.SetValue(btype.PropEventAlgorithmInhibit, new)
				})
			}
		}
	}
	return ea
}

func refOfOPR(seq btype.Sequence) (btype.ObjectPropertyReference, error) {
	var r btype.ObjectPropertyReference
	id, ok := seq["objectIdentifier"].(btype.ObjectID)
	if !ok {
		return r, btype.ErrInvalidDataType
	}
	prop, ok := seq["propertyIdentifier"].(btype.PropertyIdentifier)
	if !ok {
		return r, btype.ErrInvalidDataType
	}
	r.ObjectID, r.Property = id, prop
	return r, nil
}

// config returns the object carrying eventState and the reporting
// properties.
func (ea *eventAlgorithm) config() *object.Object {
	if ea.monitoring != nil {
		return ea.monitoring
	}
	return ea.monitored
}

func (ea *eventAlgorithm) detectionEnabled() bool {
	b, ok := ea.detectionEnable.(bool)
	return !ok || b
}

func (ea *eventAlgorithm) release() {
	ea.cancelPending()
	ea.unbind()
	// an enrollment may borrow the monitored object's own fault
	// algorithm; only the one created for this machine unbinds with it
	if ea.fault != nil && ea.fault.monitoring == ea.monitoring {
		ea.fault.unbind()
	}
}

// dispatch is the generic pre-execution of clause 13.2: detection enable,
// reliability precedence, and algorithm inhibit come before the
// algorithm-specific rules.
func (ea *eventAlgorithm) dispatch() {
	defer func() {
		ea.whatChanged = make(map[string]change)
	}()
	ea.snapshotState = ea.currentState

	if !ea.detectionEnabled() {
		// No transitions while detection is off: eventState goes to
		// NORMAL silently and the reporting arrays reset to their
		// initial conditions.
		if ea.snapshotState != btype.StateNormal {
			ea.quietToNormal()
		}
		return
	}

	if ch, ok := ea.whatChanged["pCurrentReliability"]; ok {
		// transitions into and out of FAULT take no time delay
		target := btype.StateFault
		if r, ok := ch.new.(btype.Reliability); ok && r == btype.NoFaultDetected {
			target = btype.StateNormal
		}
		ea.stateTransition(&target, true)
		return
	}

	if ea.fault != nil {
		if ea.faultPrecedence() {
			return
		}
	}

	if ch, ok := ea.whatChanged["pEventAlgorithmInhibit"]; ok {
		if inhibited, _ := ch.new.(bool); inhibited {
			// Transitions stop, except into and out of FAULT. A
			// pending transition cancels, and the state reverts
			// to NORMAL.
			ea.cancelPending()
			if ea.snapshotState != btype.StateNormal {
				target := btype.StateNormal
				ea.stateTransition(&target, true)
			}
			return
		}
		// Conditions hold for their regular delay after un-inhibit.
		ea.execute()
		return
	}

	if ea.inhibit {
		return
	}
	ea.execute()
}

// faultPrecedence applies the evaluated reliability of the fault algorithm.
// A non-no-fault-detected reliability forces FAULT regardless of the event
// algorithm's inputs. The return tells whether the execution is done.
func (ea *eventAlgorithm) faultPrecedence() bool {
	evaluated := ea.fault.evaluated

	if evaluated == btype.NoFaultDetected {
		if ea.fault.currentReliability == btype.NoFaultDetected {
			return false // no reliability change
		}

		// out of fault: the enrollment drops monitored-object-fault,
		// conform clause 12.12.21
		ea.executeEnabled = false
		if ea.monitoring != nil {
			if r, ok := ea.monitoring.Value(btype.PropReliability).(btype.Reliability); ok &&
				r == btype.MonitoredObjectFault {
				ea.monitoring.SetValue(btype.PropReliability, btype.NoFaultDetected)
			}
		}
		if ea.monitored.Has(btype.PropReliability) {
			ea.monitored.SetValue(btype.PropReliability, btype.NoFaultDetected)
		}
		ea.executeEnabled = true

		target := btype.StateNormal
		ea.stateTransition(&target, true)
		return true
	}

	if ea.snapshotState != btype.StateFault {
		ea.executeEnabled = false
		if ea.monitoring != nil {
			if r, ok := ea.monitoring.Value(btype.PropReliability).(btype.Reliability); ok &&
				r == btype.NoFaultDetected {
				ea.monitoring.SetValue(btype.PropReliability, btype.MonitoredObjectFault)
			}
		}
		if ea.monitored.Has(btype.PropReliability) {
			ea.monitored.SetValue(btype.PropReliability, evaluated)
		}
		ea.executeEnabled = true

		target := btype.StateFault
		ea.stateTransition(&target, true)
		return true
	}

	if ea.fault.currentReliability != evaluated {
		// still fault, for a different reason
		ea.executeEnabled = false
		ea.monitored.SetValue(btype.PropReliability, evaluated)
		ea.executeEnabled = true

		target := btype.StateFault
		ea.stateTransition(&target, true)
		return true
	}
	return false
}

// quietToNormal resets the state machine without notification.
func (ea *eventAlgorithm) quietToNormal() {
	cfg := ea.config()
	ea.executeEnabled = false
	cfg.SetValue(btype.PropEventState, btype.StateNormal)
	if cfg.Has(btype.PropEventTimeStamps) {
		cfg.SetValue(btype.PropEventTimeStamps, initialTimeStamps())
	}
	if cfg.Has(btype.PropEventMessageTexts) {
		cfg.SetValue(btype.PropEventMessageTexts, []btype.Value{"", "", ""})
	}
	if cfg.Has(btype.PropAckedTransitions) {
		cfg.SetValue(btype.PropAckedTransitions, btype.AllTransitions)
	}
	ea.executeEnabled = true
	ea.cancelPending()
}

func initialTimeStamps() []btype.Value {
	wildcard := btype.TimeStamp{Choice: btype.StampDateTime, DateTime: btype.DateTime{
		Date: btype.Date{Year: btype.AnyField, Month: btype.AnyField,
			Day: btype.AnyField, DayOfWeek: btype.AnyField},
		Time: btype.Time{Hour: btype.AnyField, Minute: btype.AnyField,
			Second: btype.AnyField, Hundredths: btype.AnyField},
	}}
	return []btype.Value{wildcard, wildcard, wildcard}
}

func (ea *eventAlgorithm) cancelPending() {
	if ea.pendingTimer != nil {
		ea.pendingTimer.Cancel()
		ea.pendingTimer = nil
	}
}

// delayFor returns the time delay in seconds before committing a transition
// to the state: pTimeDelayNormal (defaulting to pTimeDelay) for NORMAL,
// pTimeDelay otherwise.
func (ea *eventAlgorithm) delayFor(toState btype.EventState) uint64 {
	if toState == btype.StateNormal && ea.timeDelayNormal != nil {
		return *ea.timeDelayNormal
	}
	return ea.timeDelay
}

// stateTransition requests a transition, with nil meaning the current state
// still holds. A pending delayed transition to the same target stays; a
// different target replaces it; a no-longer-warranted one cancels.
// Immediate transitions (inhibit flips, fault in and out of) skip any
// delay.
func (ea *eventAlgorithm) stateTransition(newState *btype.EventState, immediate bool) {
	if immediate {
		ea.cancelPending()
		if newState == nil {
			return
		}
		ea.commit(*newState)
		return
	}

	if newState == nil {
		// current state is acceptable again
		if ea.pendingTimer != nil && ea.snapshotState != ea.pendingState {
			ea.cancelPending()
		}
		return
	}

	if ea.pendingTimer != nil {
		if *newState == ea.pendingState {
			return // already scheduled
		}
		ea.cancelPending()
		if *newState == ea.snapshotState {
			return // transition noop
		}
	}

	if delay := ea.delayFor(*newState); delay > 0 {
		ea.pendingState = *newState
		ea.pendingTimer = ea.loop.CallLater(secondsOf(delay), func() {
			ea.pendingTimer = nil
			ea.snapshotState = ea.currentState
			ea.commit(ea.pendingState)
		})
		return
	}
	ea.commit(*newState)
}

// commit performs a transition: eventState, time stamp, message text, acked
// transitions, then one notification per qualifying destination of the
// notification class.
func (ea *eventAlgorithm) commit(toState btype.EventState) {
	cfg := ea.config()
	fromState := ea.snapshotState
	newGroup := toState.Group()
	slot := groupSlot(newGroup)
	stamp := btype.StampOf(btype.DateTimeOf(ea.loop.Now()))

	ea.executeEnabled = false
	cfg.SetValue(btype.PropEventState, toState)
	ea.currentState = toState

	if cfg.Has(btype.PropEventTimeStamps) || cfg.Class().Property(btype.PropEventTimeStamps) != nil {
		stamps, _ := cfg.Value(btype.PropEventTimeStamps).([]btype.Value)
		if len(stamps) != 3 {
			stamps = initialTimeStamps()
		}
		next := append([]btype.Value(nil), stamps...)
		next[slot] = stamp
		cfg.SetValue(btype.PropEventTimeStamps, next)
	}

	var messageText *string
	if cfg.Has(btype.PropEventMessageTexts) {
		text := ea.messageText(cfg, toState, stamp, slot)
		texts, _ := cfg.Value(btype.PropEventMessageTexts).([]btype.Value)
		if len(texts) != 3 {
			texts = []btype.Value{"", "", ""}
		}
		next := append([]btype.Value(nil), texts...)
		next[slot] = text
		cfg.SetValue(btype.PropEventMessageTexts, next)
		messageText = &text
	}

	if acked, ok := cfg.Value(btype.PropAckedTransitions).(btype.EventTransitionBits); ok {
		switch newGroup {
		case btype.StateOffnormal:
			acked.ToOffnormal = false
		case btype.StateFault:
			acked.ToFault = false
		case btype.StateNormal:
			acked.ToNormal = false
		}
		cfg.SetValue(btype.PropAckedTransitions, acked)
	}
	ea.executeEnabled = true

	var params btype.Value
	eventType := ea.eventType
	if fromState.Group() == btype.StateFault || newGroup == btype.StateFault {
		params = ea.faultParameters()
		eventType = btype.EventChangeOfReliability
	} else if ea.buildParams != nil {
		params = ea.buildParams(toState)
	}

	ea.app.distribute(cfg, eventType, fromState, toState, stamp, params, messageText)
}

// messageText formats the transition slot from eventMessageTextsConfig, or
// synthesizes the "<state> at <timestamp>" default.
func (ea *eventAlgorithm) messageText(cfg *object.Object, toState btype.EventState, stamp btype.TimeStamp, slot int) string {
	config, _ := cfg.Value(btype.PropEventMessageTextsConfig).([]btype.Value)
	if len(config) == 3 {
		if tmpl, ok := config[slot].(string); ok && tmpl != "" {
			vars := map[string]string{
				"pCurrentState": toState.String(),
				"pTimeStamp":    stamp.String(),
			}
			if ea.formatVars != nil {
				for name, v := range ea.formatVars() {
					vars[name] = v
				}
			}
			text := tmpl
			for name, v := range vars {
				text = strings.ReplaceAll(text, "{"+name+"}", v)
			}
			return text
		}
	}
	return toState.String() + " at " + stamp.String()
}

// groupSlot maps a state group onto the event-array index: TO_OFFNORMAL is
// 0, TO_FAULT is 1, TO_NORMAL is 2.
func groupSlot(group btype.EventState) int {
	switch group {
	case btype.StateOffnormal:
		return 0
	case btype.StateFault:
		return 1
	default:
		return 2
	}
}

// faultNotifyProperties lists, per monitored object type, the property
// values carried in a change-of-reliability notification. Absent values are
// omitted from the list.
var faultNotifyProperties = map[btype.ObjectType][]btype.PropertyIdentifier{
	btype.ObjectAccessDoor:  {btype.PropDoorAlarmState, btype.PropPresentValue},
	btype.ObjectAccessPoint: {btype.PropAccessEvent, btype.PropAccessEventTag, btype.PropAccessEventTime, btype.PropAccessEventCredential},
	btype.ObjectAccessZone:  {btype.PropOccupancyState},
	btype.ObjectAccumulator: {btype.PropPulseRate, btype.PropPresentValue},

	btype.ObjectAnalogInput:          {btype.PropPresentValue},
	btype.ObjectAnalogOutput:         {btype.PropPresentValue},
	btype.ObjectAnalogValue:          {btype.PropPresentValue},
	btype.ObjectBinaryInput:          {btype.PropPresentValue},
	btype.ObjectBinaryValue:          {btype.PropPresentValue},
	btype.ObjectBitStringValue:       {btype.PropPresentValue},
	btype.ObjectChannel:              {btype.PropPresentValue},
	btype.ObjectCharacterStringValue: {btype.PropPresentValue},
	btype.ObjectGlobalGroup:          {btype.PropPresentValue},
	btype.ObjectIntegerValue:         {btype.PropPresentValue},
	btype.ObjectLargeAnalogValue:     {btype.PropPresentValue},
	btype.ObjectLightingOutput:       {btype.PropPresentValue},
	btype.ObjectMultiStateInput:      {btype.PropPresentValue},
	btype.ObjectMultiStateValue:      {btype.PropPresentValue},
	btype.ObjectPositiveIntegerValue: {btype.PropPresentValue},
	btype.ObjectPulseConverter:       {btype.PropPresentValue},

	btype.ObjectBinaryOutput:         {btype.PropPresentValue, btype.PropFeedbackValue},
	btype.ObjectBinaryLightingOutput: {btype.PropPresentValue, btype.PropFeedbackValue},
	btype.ObjectMultiStateOutput:     {btype.PropPresentValue, btype.PropFeedbackValue},

	btype.ObjectCredentialDataInput: {btype.PropUpdateTime, btype.PropPresentValue},
	btype.ObjectEventEnrollment:     {btype.PropObjectPropertyReference, btype.PropReliability, btype.PropStatusFlags},
	btype.ObjectLifeSafetyPoint:     {btype.PropPresentValue, btype.PropMode, btype.PropOperationExpected},
	btype.ObjectLifeSafetyZone:      {btype.PropPresentValue, btype.PropMode, btype.PropOperationExpected},
	btype.ObjectLoadControl:         {btype.PropPresentValue, btype.PropRequestedShedLevel, btype.PropActualShedLevel},
	btype.ObjectLoop:                {btype.PropPresentValue, btype.PropControlledVariableValue, btype.PropSetpoint},
	btype.ObjectProgram:             {btype.PropProgramState, btype.PropReasonForHalt, btype.PropDescriptionOfHalt},
	btype.ObjectTimer:               {btype.PropPresentValue, btype.PropTimerState, btype.PropUpdateTime,
		btype.PropLastStateChange, btype.PropInitialTimeout, btype.PropExpirationTime},
}

// faultParameters builds the change-of-reliability notification content.
func (ea *eventAlgorithm) faultParameters() btype.Value {
	reliability, _ := ea.config().Value(btype.PropReliability).(btype.Reliability)

	var values []btype.Value
	for _, prop := range faultNotifyProperties[ea.monitored.ID().Type] {
		v := ea.monitored.Value(prop)
		if v == nil {
			continue
		}
		values = append(values, btype.PropertyValue{Identifier: prop, Value: v})
	}

	return btype.Sequence{"changeOfReliability": btype.Sequence{
		"reliability":    reliability,
		"statusFlags":    ea.monitored.StatusFlags(),
		"propertyValues": values,
	}}
}

// distribute looks up the config object's notification class and emits one
// notification per destination whose day/time window covers now and whose
// transition bit matches. Confirmed destinations get confirmed requests.
// Notifications of one transition go out in destination-list order.
func (app *Application) distribute(cfg *object.Object, eventType btype.EventType, fromState, toState btype.EventState, stamp btype.TimeStamp, params btype.Value, messageText *string) {
	log := app.log.WithFields(logrus.Fields{
		"object": cfg.ID().String(),
		"from":   fromState.String(),
		"to":     toState.String(),
	})

	if enable, ok := cfg.Value(btype.PropEventEnable).(btype.EventTransitionBits); ok &&
		!enable.Enabled(toState) {
		log.Debug("transition not enabled for reporting")
		return
	}

	ncNumber, ok := cfg.Value(btype.PropNotificationClass).(uint64)
	if !ok {
		log.Debug("no notification class configured")
		return
	}
	nc := app.notificationClassNumbered(ncNumber)
	if nc == nil {
		log.WithField("class", ncNumber).Warn("notification class not found")
		return
	}

	var priority uint8
	if priorities, ok := nc.Value(btype.PropPriority).([]btype.Value); ok && len(priorities) == 3 {
		if p, ok := priorities[groupSlot(toState.Group())].(uint64); ok {
			priority = uint8(p)
		}
	}
	var ackRequired bool
	if bits, ok := nc.Value(btype.PropAckRequired).(btype.EventTransitionBits); ok {
		ackRequired = bits.Enabled(toState)
	}
	notifyType := btype.NotifyAlarm
	if nt, ok := cfg.Value(btype.PropNotifyType).(btype.NotifyType); ok {
		notifyType = nt
	}

	recipients, _ := nc.Value(btype.PropRecipientList).([]btype.Value)
	now := btype.DateTimeOf(app.loop.Now())

	type delivery struct {
		addr btype.Address
		req  apdu.Request
	}
	var sends []delivery
	for _, raw := range recipients {
		dest, ok := raw.(btype.Destination)
		if !ok {
			continue
		}
		if !dest.Covers(now) || !dest.Transitions.Enabled(toState) {
			continue
		}
		if dest.Recipient.Address == nil {
			// device recipients need address resolution, which is
			// the service layer's discovery concern
			log.WithField("recipient", dest.Recipient.String()).
				Debug("device recipient not resolvable")
			continue
		}

		from := fromState
		required := ackRequired
		payload := apdu.EventNotification{
			ProcessIdentifier:          dest.ProcessIdentifier,
			InitiatingDeviceIdentifier: app.device.ID(),
			EventObjectIdentifier:      cfg.ID(),
			TimeStamp:                  stamp,
			NotificationClass:          ncNumber,
			Priority:                   priority,
			EventType:                  eventType,
			MessageText:                messageText,
			NotifyType:                 notifyType,
			AckRequired:                &required,
			FromState:                  &from,
			ToState:                    toState,
			EventValues:                params,
		}
		var req apdu.Request
		if dest.IssueConfirmedNotifications {
			req = &apdu.ConfirmedEventNotificationRequest{EventNotification: payload}
		} else {
			req = &apdu.UnconfirmedEventNotificationRequest{EventNotification: payload}
		}
		sends = append(sends, delivery{addr: *dest.Recipient.Address, req: req})
	}

	if len(sends) == 0 {
		return
	}
	log.WithField("destinations", len(sends)).Info("event notification")
	if app.sender == nil {
		return
	}
	for _, d := range sends {
		if err := app.sender.Send(context.Background(), d.addr, d.req); err != nil {
			log.WithError(err).Warn("event notification delivery failed")
		}
	}
}

func secondsOf(n uint64) time.Duration { return time.Duration(n) * time.Second }
