package object

import (
	"fmt"

	"github.com/wvanheerde/bacstack/btype"
)

// The process-wide vendor registry maps a vendor identifier onto its
// registered object classes. Vendor zero carries the ASHRAE standard set,
// installed at start-up; additional vendors register their extensions before
// constructing an application.
var vendors = map[uint16]map[btype.ObjectType]*Class{
	0: standard,
}

var standard = make(map[btype.ObjectType]*Class)

// RegisterVendorClass adds a class to a vendor's table. Duplicate
// registration of an object type is a programming error and panics.
func RegisterVendorClass(vendor uint16, c *Class) {
	classes := vendors[vendor]
	if classes == nil {
		classes = make(map[btype.ObjectType]*Class)
		vendors[vendor] = classes
	}
	if _, ok := classes[c.ObjectType]; ok {
		panic(fmt.Sprintf("bacstack: duplicate class registration for %s (vendor %d)",
			c.ObjectType, vendor))
	}
	classes[c.ObjectType] = c
}

// ClassOf resolves an object type in the standard table.
func ClassOf(t btype.ObjectType) *Class { return standard[t] }

// VendorClassOf resolves an object type for the vendor, falling back to the
// standard table.
func VendorClassOf(vendor uint16, t btype.ObjectType) *Class {
	if c, ok := vendors[vendor][t]; ok {
		return c
	}
	return standard[t]
}

func newClass(t btype.ObjectType, name string, props ...Property) *Class {
	c := &Class{
		ObjectType: t,
		Name:       name,
		Properties: props,
		byID:       make(map[btype.PropertyIdentifier]*Property, len(props)),
	}
	for i := range props {
		p := &c.Properties[i]
		if _, ok := c.byID[p.ID]; ok {
			panic(fmt.Sprintf("bacstack: duplicate property %s in class %s", p.ID, name))
		}
		c.byID[p.ID] = p
	}
	RegisterVendorClass(0, c)
	return c
}

func commandable(c *Class, presentValue btype.Type) *Class {
	c.Commandable = true
	c.PresentValue = presentValue
	return c
}

func req(id btype.PropertyIdentifier, t btype.Type) Property {
	return Property{ID: id, Type: t, Required: true}
}

func opt(id btype.PropertyIdentifier, t btype.Type) Property {
	return Property{ID: id, Type: t}
}

func rop(id btype.PropertyIdentifier, t btype.Type) Property {
	return Property{ID: id, Type: t, Required: true, ReadOnly: true}
}

// core returns the rows every class starts with.
func core() []Property {
	return []Property{
		req(btype.PropObjectIdentifier, btype.ObjectIDType),
		req(btype.PropObjectName, btype.CharacterStringType),
		rop(btype.PropObjectType, btype.ObjectTypeType),
		req(btype.PropPropertyList, btype.ArrayOf(btype.PropertyIdentifierType)),
		opt(btype.PropDescription, btype.CharacterStringType),
	}
}

// intrinsic returns the event-reporting rows shared by objects which
// support intrinsic reporting, conform clause 13.2.
func intrinsic() []Property {
	return []Property{
		opt(btype.PropEventDetectionEnable, btype.BooleanType),
		opt(btype.PropNotificationClass, btype.UnsignedType),
		opt(btype.PropEventEnable, btype.EventTransitionBitsType),
		opt(btype.PropAckedTransitions, btype.EventTransitionBitsType),
		opt(btype.PropNotifyType, btype.NotifyTypeType),
		opt(btype.PropEventTimeStamps, btype.FixedArrayOf(btype.TimeStampType, 3)),
		opt(btype.PropEventMessageTexts, btype.FixedArrayOf(btype.CharacterStringType, 3)),
		opt(btype.PropEventMessageTextsConfig, btype.FixedArrayOf(btype.CharacterStringType, 3)),
		opt(btype.PropEventAlgorithmInhibit, btype.BooleanType),
		opt(btype.PropEventAlgorithmInhibitRef, btype.ObjectPropertyReferenceType),
		opt(btype.PropTimeDelay, btype.UnsignedType),
		opt(btype.PropTimeDelayNormal, btype.UnsignedType),
		opt(btype.PropReliabilityEvaluationInhibit, btype.BooleanType),
	}
}

func merge(groups ...[]Property) []Property {
	var all []Property
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

// analog returns the rows shared by the analog classes.
func analog() []Property {
	return []Property{
		req(btype.PropPresentValue, btype.RealType),
		req(btype.PropStatusFlags, btype.StatusFlagsType),
		req(btype.PropEventState, btype.EventStateType),
		opt(btype.PropReliability, btype.ReliabilityType),
		req(btype.PropOutOfService, btype.BooleanType),
		req(btype.PropUnits, btype.EngineeringUnitsType),
		opt(btype.PropMinPresValue, btype.RealType),
		opt(btype.PropMaxPresValue, btype.RealType),
		opt(btype.PropResolution, btype.RealType),
		opt(btype.PropCovIncrement, btype.RealType),
		opt(btype.PropHighLimit, btype.RealType),
		opt(btype.PropLowLimit, btype.RealType),
		opt(btype.PropDeadband, btype.RealType),
		opt(btype.PropLimitEnable, btype.LimitEnableType),
		opt(btype.PropFaultHighLimit, btype.RealType),
		opt(btype.PropFaultLowLimit, btype.RealType),
	}
}

// binary returns the rows shared by the binary classes.
func binary() []Property {
	return []Property{
		req(btype.PropPresentValue, btype.BinaryPVType),
		req(btype.PropStatusFlags, btype.StatusFlagsType),
		req(btype.PropEventState, btype.EventStateType),
		opt(btype.PropReliability, btype.ReliabilityType),
		req(btype.PropOutOfService, btype.BooleanType),
		opt(btype.PropPolarity, btype.PolarityType),
		opt(btype.PropInactiveText, btype.CharacterStringType),
		opt(btype.PropActiveText, btype.CharacterStringType),
		opt(btype.PropChangeOfStateTime, btype.DateTimeType),
		opt(btype.PropChangeOfStateCount, btype.UnsignedType),
		opt(btype.PropAlarmValue, btype.BinaryPVType),
		opt(btype.PropMinimumOffTime, btype.UnsignedType),
		opt(btype.PropMinimumOnTime, btype.UnsignedType),
	}
}

// multiState returns the rows shared by the multi-state classes.
func multiState() []Property {
	return []Property{
		req(btype.PropPresentValue, btype.UnsignedType),
		req(btype.PropStatusFlags, btype.StatusFlagsType),
		req(btype.PropEventState, btype.EventStateType),
		opt(btype.PropReliability, btype.ReliabilityType),
		req(btype.PropOutOfService, btype.BooleanType),
		req(btype.PropNumberOfStates, btype.UnsignedType),
		opt(btype.PropStateText, btype.ArrayOf(btype.CharacterStringType)),
		opt(btype.PropAlarmValues, btype.ListOf(btype.UnsignedType)),
		opt(btype.PropFaultValues, btype.ListOf(btype.UnsignedType)),
	}
}

// Standard Classes
var (
	AnalogInput  = newClass(btype.ObjectAnalogInput, "AnalogInput", merge(core(), analog(), intrinsic())...)
	AnalogOutput = commandable(newClass(btype.ObjectAnalogOutput, "AnalogOutput", merge(core(), analog(), intrinsic(),
		[]Property{
			req(btype.PropPriorityArray, btype.PriorityArrayType),
			req(btype.PropRelinquishDefault, btype.RealType),
		})...), btype.RealType)
	AnalogValue = commandable(newClass(btype.ObjectAnalogValue, "AnalogValue", merge(core(), analog(), intrinsic(),
		[]Property{
			opt(btype.PropPriorityArray, btype.PriorityArrayType),
			opt(btype.PropRelinquishDefault, btype.RealType),
		})...), btype.RealType)

	BinaryInput  = newClass(btype.ObjectBinaryInput, "BinaryInput", merge(core(), binary(), intrinsic())...)
	BinaryOutput = commandable(newClass(btype.ObjectBinaryOutput, "BinaryOutput", merge(core(), binary(), intrinsic(),
		[]Property{
			opt(btype.PropFeedbackValue, btype.BinaryPVType),
			req(btype.PropPriorityArray, btype.PriorityArrayType),
			req(btype.PropRelinquishDefault, btype.BinaryPVType),
			opt(btype.PropElapsedActiveTime, btype.UnsignedType),
			opt(btype.PropTimeOfActiveTimeReset, btype.DateTimeType),
		})...), btype.BinaryPVType)
	BinaryValue = commandable(newClass(btype.ObjectBinaryValue, "BinaryValue", merge(core(), binary(), intrinsic(),
		[]Property{
			opt(btype.PropPriorityArray, btype.PriorityArrayType),
			opt(btype.PropRelinquishDefault, btype.BinaryPVType),
		})...), btype.BinaryPVType)

	MultiStateInput  = newClass(btype.ObjectMultiStateInput, "MultiStateInput", merge(core(), multiState(), intrinsic())...)
	MultiStateOutput = commandable(newClass(btype.ObjectMultiStateOutput, "MultiStateOutput", merge(core(), multiState(), intrinsic(),
		[]Property{
			opt(btype.PropFeedbackValue, btype.UnsignedType),
			req(btype.PropPriorityArray, btype.PriorityArrayType),
			req(btype.PropRelinquishDefault, btype.UnsignedType),
		})...), btype.UnsignedType)
	MultiStateValue = commandable(newClass(btype.ObjectMultiStateValue, "MultiStateValue", merge(core(), multiState(), intrinsic(),
		[]Property{
			opt(btype.PropPriorityArray, btype.PriorityArrayType),
			opt(btype.PropRelinquishDefault, btype.UnsignedType),
		})...), btype.UnsignedType)

	IntegerValue = newClass(btype.ObjectIntegerValue, "IntegerValue", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.IntegerType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropUnits, btype.EngineeringUnitsType),
			opt(btype.PropCovIncrement, btype.UnsignedType),
			opt(btype.PropHighLimit, btype.IntegerType),
			opt(btype.PropLowLimit, btype.IntegerType),
			opt(btype.PropDeadband, btype.UnsignedType),
			opt(btype.PropLimitEnable, btype.LimitEnableType),
			opt(btype.PropFaultHighLimit, btype.IntegerType),
			opt(btype.PropFaultLowLimit, btype.IntegerType),
		}, intrinsic())...)
	PositiveIntegerValue = newClass(btype.ObjectPositiveIntegerValue, "PositiveIntegerValue", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.UnsignedType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropUnits, btype.EngineeringUnitsType),
			opt(btype.PropCovIncrement, btype.UnsignedType),
			opt(btype.PropHighLimit, btype.UnsignedType),
			opt(btype.PropLowLimit, btype.UnsignedType),
			opt(btype.PropDeadband, btype.UnsignedType),
			opt(btype.PropLimitEnable, btype.LimitEnableType),
			opt(btype.PropFaultHighLimit, btype.UnsignedType),
			opt(btype.PropFaultLowLimit, btype.UnsignedType),
		}, intrinsic())...)
	LargeAnalogValue = newClass(btype.ObjectLargeAnalogValue, "LargeAnalogValue", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.DoubleType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropUnits, btype.EngineeringUnitsType),
			opt(btype.PropCovIncrement, btype.DoubleType),
			opt(btype.PropHighLimit, btype.DoubleType),
			opt(btype.PropLowLimit, btype.DoubleType),
			opt(btype.PropDeadband, btype.DoubleType),
			opt(btype.PropLimitEnable, btype.LimitEnableType),
			opt(btype.PropFaultHighLimit, btype.DoubleType),
			opt(btype.PropFaultLowLimit, btype.DoubleType),
		}, intrinsic())...)
	CharacterStringValue = newClass(btype.ObjectCharacterStringValue, "CharacterStringValue", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.CharacterStringType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			opt(btype.PropAlarmValues, btype.ListOf(btype.CharacterStringType)),
			opt(btype.PropFaultValues, btype.ListOf(btype.CharacterStringType)),
		}, intrinsic())...)
	TimeValue = newClass(btype.ObjectTimeValue, "TimeValue", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.TimeType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
		})...)
	DateTimeValue = newClass(btype.ObjectDateTimeValue, "DateTimeValue", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.DateTimeType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
		})...)

	Device = newClass(btype.ObjectDevice, "Device", merge(core(),
		[]Property{
			rop(btype.PropSystemStatus, btype.DeviceStatusType),
			req(btype.PropVendorName, btype.CharacterStringType),
			req(btype.PropVendorIdentifier, btype.UnsignedType),
			req(btype.PropModelName, btype.CharacterStringType),
			req(btype.PropFirmwareRevision, btype.CharacterStringType),
			req(btype.PropApplicationSoftwareVersion, btype.CharacterStringType),
			opt(btype.PropLocation, btype.CharacterStringType),
			rop(btype.PropProtocolVersion, btype.UnsignedType),
			rop(btype.PropProtocolRevision, btype.UnsignedType),
			rop(btype.PropProtocolServicesSupported, btype.BitStringType),
			rop(btype.PropProtocolObjectTypesSupported, btype.BitStringType),
			req(btype.PropObjectList, btype.ArrayOf(btype.ObjectIDType)),
			req(btype.PropMaxApduLengthAccepted, btype.UnsignedType),
			req(btype.PropSegmentationSupported, btype.SegmentationType),
			opt(btype.PropMaxSegmentsAccepted, btype.UnsignedType),
			opt(btype.PropApduSegmentTimeout, btype.UnsignedType),
			req(btype.PropApduTimeout, btype.UnsignedType),
			req(btype.PropNumberOfApduRetries, btype.UnsignedType),
			opt(btype.PropLocalTime, btype.TimeType),
			opt(btype.PropLocalDate, btype.DateType),
			opt(btype.PropUtcOffset, btype.IntegerType),
			opt(btype.PropDaylightSavingsStatus, btype.BooleanType),
			req(btype.PropDeviceAddressBinding, btype.ListOf(btype.AnyType)),
			req(btype.PropDatabaseRevision, btype.UnsignedType),
			opt(btype.PropActiveCovSubscriptions, btype.ListOf(btype.AnyType)),
			opt(btype.PropSerialNumber, btype.CharacterStringType),
		})...)

	NotificationClass = newClass(btype.ObjectNotificationClass, "NotificationClass", merge(core(),
		[]Property{
			req(btype.PropNotificationClass, btype.UnsignedType),
			req(btype.PropPriority, btype.FixedArrayOf(btype.UnsignedType, 3)),
			req(btype.PropAckRequired, btype.EventTransitionBitsType),
			req(btype.PropRecipientList, btype.ListOf(btype.DestinationType)),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
		})...)

	EventEnrollment = newClass(btype.ObjectEventEnrollment, "EventEnrollment", merge(core(),
		[]Property{
			req(btype.PropEventType, btype.EventTypeType),
			req(btype.PropNotifyType, btype.NotifyTypeType),
			req(btype.PropEventParameters, btype.EventParameterType),
			req(btype.PropObjectPropertyReference, btype.DeviceObjectPropertyReferenceType),
			req(btype.PropEventState, btype.EventStateType),
			req(btype.PropEventEnable, btype.EventTransitionBitsType),
			req(btype.PropAckedTransitions, btype.EventTransitionBitsType),
			req(btype.PropNotificationClass, btype.UnsignedType),
			req(btype.PropEventTimeStamps, btype.FixedArrayOf(btype.TimeStampType, 3)),
			opt(btype.PropEventMessageTexts, btype.FixedArrayOf(btype.CharacterStringType, 3)),
			opt(btype.PropEventMessageTextsConfig, btype.FixedArrayOf(btype.CharacterStringType, 3)),
			req(btype.PropEventDetectionEnable, btype.BooleanType),
			opt(btype.PropEventAlgorithmInhibitRef, btype.ObjectPropertyReferenceType),
			opt(btype.PropEventAlgorithmInhibit, btype.BooleanType),
			opt(btype.PropTimeDelayNormal, btype.UnsignedType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropReliability, btype.ReliabilityType),
			opt(btype.PropFaultType, btype.FaultTypeType),
			opt(btype.PropFaultParameters, btype.FaultParameterType),
			opt(btype.PropReliabilityEvaluationInhibit, btype.BooleanType),
		})...)

	File = newClass(btype.ObjectFile, "File", merge(core(),
		[]Property{
			req(btype.PropFileType, btype.CharacterStringType),
			req(btype.PropFileSize, btype.UnsignedType),
			req(btype.PropModificationDate, btype.DateTimeType),
			req(btype.PropArchive, btype.BooleanType),
			req(btype.PropReadOnly, btype.BooleanType),
			req(btype.PropFileAccessMethod, btype.EnumeratedType),
			opt(btype.PropRecordCount, btype.UnsignedType),
		})...)

	Calendar = newClass(btype.ObjectCalendar, "Calendar", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.BooleanType),
			req(btype.PropDateList, btype.ListOf(btype.AnyType)),
		})...)

	Schedule = newClass(btype.ObjectSchedule, "Schedule", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.AnyType),
			req(btype.PropEffectivePeriod, btype.AnyType),
			opt(btype.PropWeeklySchedule, btype.FixedArrayOf(btype.AnyType, 7)),
			opt(btype.PropExceptionSchedule, btype.ArrayOf(btype.AnyType)),
			req(btype.PropScheduleDefault, btype.AnyType),
			req(btype.PropListOfObjectPropertyReferences, btype.ListOf(btype.DeviceObjectPropertyReferenceType)),
			req(btype.PropPriorityForWriting, btype.UnsignedType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
		})...)

	TrendLog = newClass(btype.ObjectTrendLog, "TrendLog", merge(core(),
		[]Property{
			req(btype.PropEnable, btype.BooleanType),
			opt(btype.PropStartTime, btype.DateTimeType),
			opt(btype.PropStopTime, btype.DateTimeType),
			opt(btype.PropLogDeviceObjectProperty, btype.DeviceObjectPropertyReferenceType),
			opt(btype.PropLogInterval, btype.UnsignedType),
			req(btype.PropStopWhenFull, btype.BooleanType),
			req(btype.PropBufferSize, btype.UnsignedType),
			req(btype.PropLogBuffer, btype.ListOf(btype.AnyType)),
			req(btype.PropRecordCount, btype.UnsignedType),
			req(btype.PropTotalRecordCount, btype.UnsignedType),
			opt(btype.PropNotificationThreshold, btype.UnsignedType),
			opt(btype.PropRecordsSinceNotification, btype.UnsignedType),
			opt(btype.PropLastNotifyRecord, btype.UnsignedType),
			req(btype.PropEventState, btype.EventStateType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropLoggingType, btype.EnumeratedType),
		}, intrinsic())...)

	Accumulator = newClass(btype.ObjectAccumulator, "Accumulator", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.UnsignedType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropScale, btype.AnyType),
			req(btype.PropUnits, btype.EngineeringUnitsType),
			opt(btype.PropPrescale, btype.AnyType),
			req(btype.PropMaxPresValue, btype.UnsignedType),
			opt(btype.PropValueChangeTime, btype.DateTimeType),
			opt(btype.PropValueBeforeChange, btype.UnsignedType),
			opt(btype.PropValueSet, btype.UnsignedType),
			opt(btype.PropPulseRate, btype.UnsignedType),
			opt(btype.PropHighLimit, btype.UnsignedType),
			opt(btype.PropLowLimit, btype.UnsignedType),
			opt(btype.PropLimitMonitoringInterval, btype.UnsignedType),
		}, intrinsic())...)

	PulseConverter = newClass(btype.ObjectPulseConverter, "PulseConverter", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.RealType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			opt(btype.PropInputReference, btype.ObjectPropertyReferenceType),
			req(btype.PropScaleFactor, btype.RealType),
			req(btype.PropAdjustValue, btype.RealType),
			req(btype.PropCount, btype.UnsignedType),
			req(btype.PropUpdateTime, btype.DateTimeType),
			req(btype.PropCountChangeTime, btype.DateTimeType),
			req(btype.PropCountBeforeChange, btype.UnsignedType),
			opt(btype.PropCovIncrement, btype.RealType),
			opt(btype.PropCovPeriod, btype.UnsignedType),
			opt(btype.PropHighLimit, btype.RealType),
			opt(btype.PropLowLimit, btype.RealType),
			opt(btype.PropDeadband, btype.RealType),
			opt(btype.PropLimitEnable, btype.LimitEnableType),
		}, intrinsic())...)

	LoadControl = newClass(btype.ObjectLoadControl, "LoadControl", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.EnumeratedType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropRequestedShedLevel, btype.AnyType),
			req(btype.PropStartTime, btype.DateTimeType),
			req(btype.PropShedDuration, btype.UnsignedType),
			req(btype.PropDutyWindow, btype.UnsignedType),
			req(btype.PropEnable, btype.BooleanType),
			opt(btype.PropFullDutyBaseline, btype.RealType),
			req(btype.PropExpectedShedLevel, btype.AnyType),
			req(btype.PropActualShedLevel, btype.AnyType),
			opt(btype.PropShedLevels, btype.ArrayOf(btype.UnsignedType)),
			opt(btype.PropShedLevelDescriptions, btype.ArrayOf(btype.CharacterStringType)),
		}, intrinsic())...)

	LifeSafetyPoint = newClass(btype.ObjectLifeSafetyPoint, "LifeSafetyPoint", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.EnumeratedType),
			req(btype.PropTrackingValue, btype.EnumeratedType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropMode, btype.EnumeratedType),
			req(btype.PropAcceptedModes, btype.ListOf(btype.EnumeratedType)),
			req(btype.PropSilenced, btype.EnumeratedType),
			req(btype.PropOperationExpected, btype.EnumeratedType),
			opt(btype.PropLifeSafetyAlarmValues, btype.ListOf(btype.EnumeratedType)),
			opt(btype.PropAlarmValues, btype.ListOf(btype.EnumeratedType)),
			opt(btype.PropFaultValues, btype.ListOf(btype.EnumeratedType)),
		}, intrinsic())...)

	Group = newClass(btype.ObjectGroup, "Group", merge(core(),
		[]Property{
			req(btype.PropListOfGroupMembers, btype.ListOf(btype.AnyType)),
			req(btype.PropPresentValue, btype.ListOf(btype.AnyType)),
		})...)

	Command = newClass(btype.ObjectCommand, "Command", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.UnsignedType),
			req(btype.PropInProcess, btype.BooleanType),
			req(btype.PropAllWritesSuccessful, btype.BooleanType),
			req(btype.PropAction, btype.ArrayOf(btype.AnyType)),
			opt(btype.PropActionText, btype.ArrayOf(btype.CharacterStringType)),
			opt(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			opt(btype.PropOutOfService, btype.BooleanType),
		})...)

	Program = newClass(btype.ObjectProgram, "Program", merge(core(),
		[]Property{
			req(btype.PropProgramState, btype.ProgramStateType),
			req(btype.PropProgramChange, btype.EnumeratedType),
			opt(btype.PropReasonForHalt, btype.ProgramErrorType),
			opt(btype.PropDescriptionOfHalt, btype.CharacterStringType),
			opt(btype.PropProgramLocation, btype.CharacterStringType),
			opt(btype.PropInstanceOf, btype.CharacterStringType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
		}, intrinsic())...)

	Loop = newClass(btype.ObjectLoop, "Loop", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.RealType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropOutputUnits, btype.EngineeringUnitsType),
			req(btype.PropManipulatedVariableReference, btype.ObjectPropertyReferenceType),
			req(btype.PropControlledVariableReference, btype.ObjectPropertyReferenceType),
			req(btype.PropControlledVariableValue, btype.RealType),
			req(btype.PropControlledVariableUnits, btype.EngineeringUnitsType),
			req(btype.PropSetpointReference, btype.AnyType),
			req(btype.PropSetpoint, btype.RealType),
			req(btype.PropAction, btype.EnumeratedType),
			opt(btype.PropProportionalConstant, btype.RealType),
			opt(btype.PropProportionalConstantUnits, btype.EngineeringUnitsType),
			opt(btype.PropIntegralConstant, btype.RealType),
			opt(btype.PropIntegralConstantUnits, btype.EngineeringUnitsType),
			opt(btype.PropDerivativeConstant, btype.RealType),
			opt(btype.PropDerivativeConstantUnits, btype.EngineeringUnitsType),
			opt(btype.PropBias, btype.RealType),
			opt(btype.PropMaximumOutput, btype.RealType),
			opt(btype.PropMinimumOutput, btype.RealType),
			req(btype.PropPriorityForWriting, btype.UnsignedType),
			opt(btype.PropCovIncrement, btype.RealType),
			opt(btype.PropErrorLimit, btype.RealType),
			opt(btype.PropDeadband, btype.RealType),
		}, intrinsic())...)

	AccessPoint = newClass(btype.ObjectAccessPoint, "AccessPoint", merge(core(),
		[]Property{
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropEventState, btype.EventStateType),
			req(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropAccessEvent, btype.EnumeratedType),
			req(btype.PropAccessEventTag, btype.UnsignedType),
			req(btype.PropAccessEventTime, btype.TimeStampType),
			req(btype.PropAccessEventCredential, btype.AnyType),
			opt(btype.PropAccessEventAuthenticationFactor, btype.AnyType),
			opt(btype.PropOccupancyCount, btype.UnsignedType),
		}, intrinsic())...)

	CredentialDataInput = newClass(btype.ObjectCredentialDataInput, "CredentialDataInput", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.AnyType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			req(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropSupportedFormats, btype.ArrayOf(btype.AnyType)),
			req(btype.PropUpdateTime, btype.TimeStampType),
		}, intrinsic())...)

	LightingOutput = commandable(newClass(btype.ObjectLightingOutput, "LightingOutput", merge(core(),
		[]Property{
			req(btype.PropPresentValue, btype.RealType),
			req(btype.PropTrackingValue, btype.RealType),
			req(btype.PropLightingCommand, btype.AnyType),
			req(btype.PropInProgress, btype.EnumeratedType),
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			opt(btype.PropEventState, btype.EventStateType),
			opt(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropBlinkWarnEnable, btype.BooleanType),
			req(btype.PropEgressTime, btype.UnsignedType),
			req(btype.PropEgressActive, btype.BooleanType),
			req(btype.PropDefaultFadeTime, btype.UnsignedType),
			req(btype.PropDefaultRampRate, btype.RealType),
			req(btype.PropDefaultStepIncrement, btype.RealType),
			opt(btype.PropCovIncrement, btype.RealType),
			req(btype.PropPriorityArray, btype.PriorityArrayType),
			req(btype.PropRelinquishDefault, btype.RealType),
			req(btype.PropLightingCommandDefaultPriority, btype.UnsignedType),
		})...), btype.RealType)

	NetworkPort = newClass(btype.ObjectNetworkPort, "NetworkPort", merge(core(),
		[]Property{
			req(btype.PropStatusFlags, btype.StatusFlagsType),
			req(btype.PropReliability, btype.ReliabilityType),
			req(btype.PropOutOfService, btype.BooleanType),
			req(btype.PropNetworkType, btype.EnumeratedType),
			req(btype.PropProtocolLevel, btype.EnumeratedType),
			opt(btype.PropNetworkNumber, btype.UnsignedType),
			opt(btype.PropNetworkNumberQuality, btype.EnumeratedType),
			req(btype.PropChangesPending, btype.BooleanType),
			opt(btype.PropMacAddress, btype.OctetStringType),
			opt(btype.PropApduLength, btype.UnsignedType),
			opt(btype.PropLinkSpeed, btype.RealType),
		})...)
)
