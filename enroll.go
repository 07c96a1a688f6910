package bacstack

import (
	"github.com/pkg/errors"

	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
)

// enroll wires an EventEnrollment after it joins the application: the
// monitored object resolves from objectPropertyReference, the fault and
// event algorithms come from faultType and eventType, and the notification
// class must exist. Any failure fails the enrollment; the caller leaves the
// object in service with reliability configurationError.
func (app *Application) enroll(enrollment *object.Object) error {
	refSeq, ok := enrollment.Value(btype.PropObjectPropertyReference).(btype.Sequence)
	if !ok {
		return errors.New("objectPropertyReference not configured")
	}
	ref, err := btype.RefOfSeq(refSeq)
	if err != nil {
		return errors.Wrap(err, "objectPropertyReference")
	}
	if ref.Device != nil {
		// cross-device references need a client-side machine this
		// core does not carry
		return errors.Wrap(
			btype.Error{Class: btype.ClassProperty, Code: btype.CodeOptionalFunctionalityNotSupported},
			"cross-device reference")
	}
	if ref.ArrayIndex != nil {
		return errors.Wrap(
			btype.Error{Class: btype.ClassProperty, Code: btype.CodeOptionalFunctionalityNotSupported},
			"array-element reference")
	}

	monitored := app.byID[ref.ObjectID]
	if monitored == nil {
		return errors.Wrapf(btype.ErrUnknownObject, "monitored object %s", ref.ObjectID)
	}

	// the fault algorithm comes first so its monitors run before the
	// event algorithm's on any shared property
	var fault *faultAlgorithm
	faultType, _ := enrollment.Value(btype.PropFaultType).(btype.FaultType)
	if faultType != btype.FaultNone {
		if app.hasFaultAlgorithm(monitored) {
			// the monitored object already runs its own fault
			// algorithm; two sources of evaluated reliability
			// conflict
			return errors.Wrap(
				btype.Error{Class: btype.ClassProperty, Code: btype.CodeInconsistentConfiguration},
				"monitored object has its own fault algorithm")
		}
		params, _ := enrollment.Value(btype.PropFaultParameters).(btype.Sequence)
		fault, err = app.enrollmentFault(enrollment, monitored, faultType, params)
		if err != nil {
			return errors.Wrapf(err, "fault type %s", faultType)
		}
	} else if fa := app.faults[monitored.ID()]; fa != nil {
		// the monitored object's own fault detection feeds this
		// enrollment
		fault = fa
	}

	eventType, ok := enrollment.Value(btype.PropEventType).(btype.EventType)
	if !ok {
		return errors.New("eventType not configured")
	}
	params, _ := enrollment.Value(btype.PropEventParameters).(btype.Sequence)
	ea, err := app.enrollmentEvent(enrollment, monitored, ref.Property, eventType, params, fault)
	if err != nil {
		return errors.Wrapf(err, "event type %s", eventType)
	}

	ncNumber, ok := enrollment.Value(btype.PropNotificationClass).(uint64)
	if !ok {
		return errors.New("notificationClass not configured")
	}
	if app.notificationClassNumbered(ncNumber) == nil {
		return errors.Errorf("notification class %d not found", ncNumber)
	}

	app.events[enrollment.ID()] = ea
	return nil
}

func (app *Application) hasFaultAlgorithm(o *object.Object) bool {
	_, ok := app.faults[o.ID()]
	return ok
}

// enrollmentEvent builds the event algorithm selected by eventType, bound
// to the referenced property of the monitored object and parameterised from
// the eventParameters choice.
func (app *Application) enrollmentEvent(enrollment, monitored *object.Object, prop btype.PropertyIdentifier, eventType btype.EventType, params btype.Sequence, fault *faultAlgorithm) (*eventAlgorithm, error) {
	ea := app.newEventAlgorithm(enrollment, monitored, eventType, fault)

	var monitoredValue btype.Value
	ea.bindProperty("pMonitoredValue", monitored, prop,
		func(v btype.Value) { monitoredValue = v }, nil)
	ea.bindProperty("pStatusFlags", monitored, btype.PropStatusFlags,
		func(btype.Value) {}, nil)
	value := func() btype.Value { return monitoredValue }
	valueFloat := func() (float64, bool) { return asFloat(monitoredValue) }

	inner := func(arm string) btype.Sequence {
		seq, _ := params[arm].(btype.Sequence)
		return seq
	}
	fixedFloat := func(seq btype.Sequence, field string) func() (float64, bool) {
		v, ok := asFloat(seq[field])
		return func() (float64, bool) { return v, ok }
	}
	if seq := paramsAny(params); seq != nil {
		if delay, ok := seq["timeDelay"].(uint64); ok {
			ea.timeDelay = delay
		}
	}
	if normal, ok := enrollment.Value(btype.PropTimeDelayNormal).(uint64); ok {
		ea.timeDelayNormal = &normal
	}

	switch eventType {
	case btype.EventOutOfRange:
		seq := inner("outOfRange")
		low := fixedFloat(seq, "lowLimit")
		high := fixedFloat(seq, "highLimit")
		deadband := fixedFloat(seq, "deadband")
		ea.useOutOfRange(valueFloat, low, high, deadband,
			func() btype.LimitEnable { return btype.BothLimits },
			ea.realOutOfRangeParams(valueFloat, low, high, deadband))

	case btype.EventDoubleOutOfRange:
		seq := inner("doubleOutOfRange")
		low := fixedFloat(seq, "lowLimit")
		high := fixedFloat(seq, "highLimit")
		deadband := fixedFloat(seq, "deadband")
		ea.useOutOfRange(valueFloat, low, high, deadband,
			func() btype.LimitEnable { return btype.BothLimits },
			ea.scalarOutOfRangeParams("doubleOutOfRange",
				func(f float64) btype.Value { return f },
				func(f float64) btype.Value { return f },
				valueFloat, low, high, deadband))

	case btype.EventSignedOutOfRange:
		seq := inner("signedOutOfRange")
		low := fixedFloat(seq, "lowLimit")
		high := fixedFloat(seq, "highLimit")
		deadband := fixedFloat(seq, "deadband")
		ea.useOutOfRange(valueFloat, low, high, deadband,
			func() btype.LimitEnable { return btype.BothLimits },
			ea.scalarOutOfRangeParams("signedOutOfRange",
				func(f float64) btype.Value { return int64(f) },
				func(f float64) btype.Value { return uint64(f) },
				valueFloat, low, high, deadband))

	case btype.EventUnsignedOutOfRange:
		seq := inner("unsignedOutOfRange")
		low := fixedFloat(seq, "lowLimit")
		high := fixedFloat(seq, "highLimit")
		deadband := fixedFloat(seq, "deadband")
		ea.useOutOfRange(valueFloat, low, high, deadband,
			func() btype.LimitEnable { return btype.BothLimits },
			ea.scalarOutOfRangeParams("unsignedOutOfRange",
				func(f float64) btype.Value { return uint64(f) },
				func(f float64) btype.Value { return uint64(f) },
				valueFloat, low, high, deadband))

	case btype.EventUnsignedRange:
		seq := inner("unsignedRange")
		ea.useUnsignedRange(valueFloat,
			fixedFloat(seq, "lowLimit"), fixedFloat(seq, "highLimit"))

	case btype.EventChangeOfState:
		seq := inner("changeOfState")
		alarms := listParam(seq, "listOfValues")
		ea.useChangeOfState(func() btype.Value {
			// alarm values arrive as PropertyStates choices
			return propertyStateOf(monitoredValue)
		}, func() []btype.Value { return alarms })

	case btype.EventChangeOfBitstring:
		seq := inner("changeOfBitstring")
		mask, _ := seq["bitmask"].(btype.BitString)
		alarms := listParam(seq, "listOfBitstringValues")
		ea.useChangeOfBitstring(
			func() btype.BitString {
				bits, _ := monitoredValue.(btype.BitString)
				return bits
			},
			func() btype.BitString { return mask },
			func() []btype.Value { return alarms })

	case btype.EventChangeOfValue:
		seq := inner("changeOfValue")
		criteria, _ := seq["covCriteria"].(btype.Sequence)
		increment, hasIncrement := asFloat(criteria["referencedPropertyIncrement"])
		ea.useChangeOfValue(value, func() (float64, bool) { return increment, hasIncrement })

	case btype.EventCommandFailure:
		seq := inner("commandFailure")
		feedbackSeq, _ := seq["feedbackPropertyReference"].(btype.Sequence)
		feedbackRef, err := btype.RefOfSeq(feedbackSeq)
		if err != nil {
			return nil, errors.Wrap(err, "feedbackPropertyReference")
		}
		feedbackObj := app.byID[feedbackRef.ObjectID]
		if feedbackObj == nil {
			return nil, errors.Wrapf(btype.ErrUnknownObject, "feedback object %s", feedbackRef.ObjectID)
		}
		var feedback btype.Value
		ea.bindProperty("pFeedbackValue", feedbackObj, feedbackRef.Property,
			func(v btype.Value) { feedback = v }, nil)
		ea.useCommandFailure(value, func() btype.Value { return feedback })

	case btype.EventFloatingLimit:
		seq := inner("floatingLimit")
		setpointSeq, _ := seq["setpointReference"].(btype.Sequence)
		setpointRef, err := btype.RefOfSeq(setpointSeq)
		if err != nil {
			return nil, errors.Wrap(err, "setpointReference")
		}
		setpointObj := app.byID[setpointRef.ObjectID]
		if setpointObj == nil {
			return nil, errors.Wrapf(btype.ErrUnknownObject, "setpoint object %s", setpointRef.ObjectID)
		}
		var setpoint btype.Value
		ea.bindProperty("pSetpoint", setpointObj, setpointRef.Property,
			func(v btype.Value) { setpoint = v }, nil)
		ea.useFloatingLimit(valueFloat,
			func() (float64, bool) { return asFloat(setpoint) },
			fixedFloat(seq, "lowDiffLimit"), fixedFloat(seq, "highDiffLimit"),
			fixedFloat(seq, "deadband"))

	case btype.EventChangeOfCharacterstring:
		seq := inner("changeOfCharacterstring")
		alarms := listParam(seq, "listOfAlarmValues")
		ea.useChangeOfCharacterstring(func() string {
			s, _ := monitoredValue.(string)
			return s
		}, func() []btype.Value { return alarms })

	case btype.EventChangeOfStatusFlags:
		seq := inner("changeOfStatusFlags")
		selected, _ := seq["selectedFlags"].(btype.StatusFlags)
		ea.useChangeOfStatusFlags(func() btype.StatusFlags { return selected })

	case btype.EventChangeOfDiscreteValue:
		ea.useChangeOfValue(value, func() (float64, bool) { return 0, false })

	case btype.EventChangeOfReliability, btype.EventBufferReady, btype.EventNone:
		// buffer-ready needs the trend-log record counters, and
		// change-of-reliability is fully covered by the fault
		// machinery; both stay dispatchable without offnormal rules
		ea.useNoop()

	case btype.EventChangeOfTimer:
		ea.release()
		return nil, errors.Wrap(
			btype.Error{Class: btype.ClassServices, Code: btype.CodeOptionalFunctionalityNotSupported},
			"changeOfTimer")

	default:
		ea.release()
		return nil, errors.Errorf("event type not dispatchable: %s", eventType)
	}
	return ea, nil
}

// paramsAny unwraps the single arm of the eventParameters choice.
func paramsAny(params btype.Sequence) btype.Sequence {
	for _, v := range params {
		if seq, ok := v.(btype.Sequence); ok {
			return seq
		}
	}
	return nil
}

func listParam(seq btype.Sequence, field string) []btype.Value {
	list, _ := seq[field].([]btype.Value)
	return list
}

// attachIntrinsic wires intrinsic reporting for an object which names a
// notification class: the fault algorithm derives from the fault
// configuration, and the event algorithm from the object type.
func (app *Application) attachIntrinsic(o *object.Object) error {
	if fault := app.attachIntrinsicFault(o); fault != nil {
		app.faults[o.ID()] = fault
	}
	fault := app.faults[o.ID()]

	ea := app.newEventAlgorithm(nil, o, btype.EventNone, fault)
	ea.bindProperty("pTimeDelay", o, btype.PropTimeDelay,
		func(v btype.Value) {
			if n, ok := v.(uint64); ok {
				ea.timeDelay = n
			}
		}, nil)
	ea.bindProperty("pTimeDelayNormal", o, btype.PropTimeDelayNormal,
		func(v btype.Value) {
			if n, ok := v.(uint64); ok {
				ea.timeDelayNormal = &n
			}
		}, nil)

	var monitoredValue btype.Value
	ea.bindProperty("pMonitoredValue", o, btype.PropPresentValue,
		func(v btype.Value) { monitoredValue = v }, nil)
	valueFloat := func() (float64, bool) { return asFloat(monitoredValue) }
	propFloat := func(prop btype.PropertyIdentifier) func() (float64, bool) {
		return func() (float64, bool) { return asFloat(o.Value(prop)) }
	}

	switch t := o.ID().Type; {
	case hasLimitPair(o):
		low := propFloat(btype.PropLowLimit)
		high := propFloat(btype.PropHighLimit)
		deadband := propFloat(btype.PropDeadband)
		limitEnable := func() btype.LimitEnable {
			if e, ok := o.Value(btype.PropLimitEnable).(btype.LimitEnable); ok {
				return e
			}
			return btype.BothLimits
		}
		for _, prop := range []btype.PropertyIdentifier{
			btype.PropLowLimit, btype.PropHighLimit,
			btype.PropDeadband, btype.PropLimitEnable,
		} {
			ea.bindProperty(prop.String(), o, prop, func(btype.Value) {}, nil)
		}

		switch t {
		case btype.ObjectLargeAnalogValue:
			ea.eventType = btype.EventDoubleOutOfRange
			ea.useOutOfRange(valueFloat, low, high, deadband, limitEnable,
				ea.scalarOutOfRangeParams("doubleOutOfRange",
					func(f float64) btype.Value { return f },
					func(f float64) btype.Value { return f },
					valueFloat, low, high, deadband))
		case btype.ObjectIntegerValue:
			ea.eventType = btype.EventSignedOutOfRange
			ea.useOutOfRange(valueFloat, low, high, deadband, limitEnable,
				ea.scalarOutOfRangeParams("signedOutOfRange",
					func(f float64) btype.Value { return int64(f) },
					func(f float64) btype.Value { return uint64(f) },
					valueFloat, low, high, deadband))
		case btype.ObjectPositiveIntegerValue, btype.ObjectAccumulator:
			ea.eventType = btype.EventUnsignedOutOfRange
			ea.useOutOfRange(valueFloat, low, high, deadband, limitEnable,
				ea.scalarOutOfRangeParams("unsignedOutOfRange",
					func(f float64) btype.Value { return uint64(f) },
					func(f float64) btype.Value { return uint64(f) },
					valueFloat, low, high, deadband))
		default:
			ea.eventType = btype.EventOutOfRange
			ea.useOutOfRange(valueFloat, low, high, deadband, limitEnable,
				ea.realOutOfRangeParams(valueFloat, low, high, deadband))
		}

	case o.Has(btype.PropAlarmValue):
		ea.eventType = btype.EventChangeOfState
		ea.bindProperty("pAlarmValue", o, btype.PropAlarmValue, func(btype.Value) {}, nil)
		ea.useChangeOfState(
			func() btype.Value { return propertyStateOf(monitoredValue) },
			func() []btype.Value {
				if v := o.Value(btype.PropAlarmValue); v != nil {
					return []btype.Value{propertyStateOf(v)}
				}
				return nil
			})

	case o.Has(btype.PropAlarmValues) && t == btype.ObjectCharacterStringValue:
		ea.eventType = btype.EventChangeOfCharacterstring
		ea.bindProperty("pAlarmValues", o, btype.PropAlarmValues, func(btype.Value) {}, nil)
		ea.useChangeOfCharacterstring(
			func() string {
				s, _ := monitoredValue.(string)
				return s
			},
			func() []btype.Value {
				list, _ := o.Value(btype.PropAlarmValues).([]btype.Value)
				return list
			})

	case o.Has(btype.PropAlarmValues):
		ea.eventType = btype.EventChangeOfState
		ea.bindProperty("pAlarmValues", o, btype.PropAlarmValues, func(btype.Value) {}, nil)
		ea.useChangeOfState(
			func() btype.Value { return propertyStateOf(monitoredValue) },
			func() []btype.Value {
				list, _ := o.Value(btype.PropAlarmValues).([]btype.Value)
				wrapped := make([]btype.Value, len(list))
				for i, v := range list {
					wrapped[i] = propertyStateOf(v)
				}
				return wrapped
			})

	default:
		// fault-only reporting
		ea.useNoop()
	}

	app.events[o.ID()] = ea
	return nil
}

func hasLimitPair(o *object.Object) bool {
	return o.Has(btype.PropHighLimit) && o.Has(btype.PropLowLimit)
}
