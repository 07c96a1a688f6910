package btype

// Enumerated is the generic numeric for enumerations without a dedicated Go
// type, like vendor-proprietary values passed through an Any.
type Enumerated uint32

var enumeratedEnum = NewEnum("Enumerated", map[Enumerated]string{})

// EnumeratedType is the Type of the generic Enumerated numeric.
var EnumeratedType Type = primType{enumeratedEnum}

// ObjectType classifies objects. Codes 0..127 are reserved by ASHRAE; the
// vendor range runs through 1023.
type ObjectType uint32

// Object Types
const (
	ObjectAnalogInput           ObjectType = 0
	ObjectAnalogOutput          ObjectType = 1
	ObjectAnalogValue           ObjectType = 2
	ObjectBinaryInput           ObjectType = 3
	ObjectBinaryOutput          ObjectType = 4
	ObjectBinaryValue           ObjectType = 5
	ObjectCalendar              ObjectType = 6
	ObjectCommand               ObjectType = 7
	ObjectDevice                ObjectType = 8
	ObjectEventEnrollment       ObjectType = 9
	ObjectFile                  ObjectType = 10
	ObjectGroup                 ObjectType = 11
	ObjectLoop                  ObjectType = 12
	ObjectMultiStateInput       ObjectType = 13
	ObjectMultiStateOutput      ObjectType = 14
	ObjectNotificationClass     ObjectType = 15
	ObjectProgram               ObjectType = 16
	ObjectSchedule              ObjectType = 17
	ObjectAveraging             ObjectType = 18
	ObjectMultiStateValue       ObjectType = 19
	ObjectTrendLog              ObjectType = 20
	ObjectLifeSafetyPoint       ObjectType = 21
	ObjectLifeSafetyZone        ObjectType = 22
	ObjectAccumulator           ObjectType = 23
	ObjectPulseConverter        ObjectType = 24
	ObjectEventLog              ObjectType = 25
	ObjectGlobalGroup           ObjectType = 26
	ObjectTrendLogMultiple      ObjectType = 27
	ObjectLoadControl           ObjectType = 28
	ObjectStructuredView        ObjectType = 29
	ObjectAccessDoor            ObjectType = 30
	ObjectTimer                 ObjectType = 31
	ObjectAccessCredential      ObjectType = 32
	ObjectAccessPoint           ObjectType = 33
	ObjectAccessRights          ObjectType = 34
	ObjectAccessUser            ObjectType = 35
	ObjectAccessZone            ObjectType = 36
	ObjectCredentialDataInput   ObjectType = 37
	ObjectBitStringValue        ObjectType = 39
	ObjectCharacterStringValue  ObjectType = 40
	ObjectDatePatternValue      ObjectType = 41
	ObjectDateValue             ObjectType = 42
	ObjectDateTimePatternValue  ObjectType = 43
	ObjectDateTimeValue         ObjectType = 44
	ObjectIntegerValue          ObjectType = 45
	ObjectLargeAnalogValue      ObjectType = 46
	ObjectOctetStringValue      ObjectType = 47
	ObjectPositiveIntegerValue  ObjectType = 48
	ObjectTimePatternValue      ObjectType = 49
	ObjectTimeValue             ObjectType = 50
	ObjectNotificationForwarder ObjectType = 51
	ObjectAlertEnrollment       ObjectType = 52
	ObjectChannel               ObjectType = 53
	ObjectLightingOutput        ObjectType = 54
	ObjectBinaryLightingOutput  ObjectType = 55
	ObjectNetworkPort           ObjectType = 56
)

var objectTypeEnum = NewEnum("ObjectType", map[ObjectType]string{
	ObjectAnalogInput:           "analogInput",
	ObjectAnalogOutput:          "analogOutput",
	ObjectAnalogValue:           "analogValue",
	ObjectBinaryInput:           "binaryInput",
	ObjectBinaryOutput:          "binaryOutput",
	ObjectBinaryValue:           "binaryValue",
	ObjectCalendar:              "calendar",
	ObjectCommand:               "command",
	ObjectDevice:                "device",
	ObjectEventEnrollment:       "eventEnrollment",
	ObjectFile:                  "file",
	ObjectGroup:                 "group",
	ObjectLoop:                  "loop",
	ObjectMultiStateInput:       "multiStateInput",
	ObjectMultiStateOutput:      "multiStateOutput",
	ObjectNotificationClass:     "notificationClass",
	ObjectProgram:               "program",
	ObjectSchedule:              "schedule",
	ObjectAveraging:             "averaging",
	ObjectMultiStateValue:       "multiStateValue",
	ObjectTrendLog:              "trendLog",
	ObjectLifeSafetyPoint:       "lifeSafetyPoint",
	ObjectLifeSafetyZone:        "lifeSafetyZone",
	ObjectAccumulator:           "accumulator",
	ObjectPulseConverter:        "pulseConverter",
	ObjectEventLog:              "eventLog",
	ObjectGlobalGroup:           "globalGroup",
	ObjectTrendLogMultiple:      "trendLogMultiple",
	ObjectLoadControl:           "loadControl",
	ObjectStructuredView:        "structuredView",
	ObjectAccessDoor:            "accessDoor",
	ObjectTimer:                 "timer",
	ObjectAccessCredential:      "accessCredential",
	ObjectAccessPoint:           "accessPoint",
	ObjectAccessRights:          "accessRights",
	ObjectAccessUser:            "accessUser",
	ObjectAccessZone:            "accessZone",
	ObjectCredentialDataInput:   "credentialDataInput",
	ObjectBitStringValue:        "bitstringValue",
	ObjectCharacterStringValue:  "characterstringValue",
	ObjectDatePatternValue:      "datepatternValue",
	ObjectDateValue:             "dateValue",
	ObjectDateTimePatternValue:  "datetimepatternValue",
	ObjectDateTimeValue:         "datetimeValue",
	ObjectIntegerValue:          "integerValue",
	ObjectLargeAnalogValue:      "largeAnalogValue",
	ObjectOctetStringValue:      "octetstringValue",
	ObjectPositiveIntegerValue:  "positiveIntegerValue",
	ObjectTimePatternValue:      "timepatternValue",
	ObjectTimeValue:             "timeValue",
	ObjectNotificationForwarder: "notificationForwarder",
	ObjectAlertEnrollment:       "alertEnrollment",
	ObjectChannel:               "channel",
	ObjectLightingOutput:        "lightingOutput",
	ObjectBinaryLightingOutput:  "binaryLightingOutput",
	ObjectNetworkPort:           "networkPort",
})

// ObjectTypeType is the Type of the object-type enumeration.
var ObjectTypeType Type = primType{objectTypeEnum}

// ObjectTypes is the enumeration descriptor for name and number lookup.
var ObjectTypes = objectTypeEnum

// String returns the hyphenated constant name.
func (t ObjectType) String() string { return KebabOf(objectTypeEnum.NameOf(t)) }

// EventState is the event-state machine position, conform clause 13.
// HighLimit, LowLimit and LifeSafetyAlarm collapse into the offnormal group.
type EventState uint32

// Event States
const (
	StateNormal EventState = iota
	StateFault
	StateOffnormal
	StateHighLimit
	StateLowLimit
	StateLifeSafetyAlarm
)

var eventStateEnum = NewEnum("EventState", map[EventState]string{
	StateNormal:          "normal",
	StateFault:           "fault",
	StateOffnormal:       "offnormal",
	StateHighLimit:       "highLimit",
	StateLowLimit:        "lowLimit",
	StateLifeSafetyAlarm: "lifeSafetyAlarm",
})

// EventStateType is the Type of the event-state enumeration.
var EventStateType Type = primType{eventStateEnum}

// String returns the hyphenated constant name.
func (s EventState) String() string { return KebabOf(eventStateEnum.NameOf(s)) }

// Group collapses the offnormal variants into StateOffnormal.
func (s EventState) Group() EventState {
	switch s {
	case StateNormal, StateFault:
		return s
	default:
		return StateOffnormal
	}
}

// Reliability indicates a fault condition, orthogonal to the event state.
type Reliability uint32

// Reliability Values
const (
	NoFaultDetected               Reliability = 0
	NoSensor                      Reliability = 1
	OverRange                     Reliability = 2
	UnderRange                    Reliability = 3
	OpenLoop                      Reliability = 4
	ShortedLoop                   Reliability = 5
	NoOutput                      Reliability = 6
	UnreliableOther               Reliability = 7
	ProcessError                  Reliability = 8
	MultiStateFault               Reliability = 9
	ConfigurationError            Reliability = 10
	CommunicationFailure          Reliability = 12
	MemberFault                   Reliability = 13
	MonitoredObjectFault          Reliability = 14
	Tripped                       Reliability = 15
	LampFailure                   Reliability = 16
	ActivationFailure             Reliability = 17
	RenewDHCPFailure              Reliability = 18
	RenewFDRegistrationFailure    Reliability = 19
	RestartAutoNegotiationFailure Reliability = 20
	RestartFailure                Reliability = 21
	ProprietaryCommandFailure     Reliability = 22
	FaultsListed                  Reliability = 23
	ReferencedObjectFault         Reliability = 24
)

var reliabilityEnum = NewEnum("Reliability", map[Reliability]string{
	NoFaultDetected:               "noFaultDetected",
	NoSensor:                      "noSensor",
	OverRange:                     "overRange",
	UnderRange:                    "underRange",
	OpenLoop:                      "openLoop",
	ShortedLoop:                   "shortedLoop",
	NoOutput:                      "noOutput",
	UnreliableOther:               "unreliableOther",
	ProcessError:                  "processError",
	MultiStateFault:               "multiStateFault",
	ConfigurationError:            "configurationError",
	CommunicationFailure:          "communicationFailure",
	MemberFault:                   "memberFault",
	MonitoredObjectFault:          "monitoredObjectFault",
	Tripped:                       "tripped",
	LampFailure:                   "lampFailure",
	ActivationFailure:             "activationFailure",
	RenewDHCPFailure:              "renewDhcpFailure",
	RenewFDRegistrationFailure:    "renewFdRegistrationFailure",
	RestartAutoNegotiationFailure: "restartAutoNegotiationFailure",
	RestartFailure:                "restartFailure",
	ProprietaryCommandFailure:     "proprietaryCommandFailure",
	FaultsListed:                  "faultsListed",
	ReferencedObjectFault:         "referencedObjectFault",
})

// ReliabilityType is the Type of the reliability enumeration.
var ReliabilityType Type = primType{reliabilityEnum}

// String returns the hyphenated constant name.
func (r Reliability) String() string { return KebabOf(reliabilityEnum.NameOf(r)) }

// EventType selects the event algorithm, conform clause 13.3.
type EventType uint32

// Event Types
const (
	EventChangeOfBitstring       EventType = 0
	EventChangeOfState           EventType = 1
	EventChangeOfValue           EventType = 2
	EventCommandFailure          EventType = 3
	EventFloatingLimit           EventType = 4
	EventOutOfRange              EventType = 5
	EventChangeOfLifeSafety      EventType = 8
	EventExtended                EventType = 9
	EventBufferReady             EventType = 10
	EventUnsignedRange           EventType = 11
	EventAccessEvent             EventType = 13
	EventDoubleOutOfRange        EventType = 14
	EventSignedOutOfRange        EventType = 15
	EventUnsignedOutOfRange      EventType = 16
	EventChangeOfCharacterstring EventType = 17
	EventChangeOfStatusFlags     EventType = 18
	EventChangeOfReliability     EventType = 19
	EventNone                    EventType = 20
	EventChangeOfDiscreteValue   EventType = 21
	EventChangeOfTimer           EventType = 22
)

var eventTypeEnum = NewEnum("EventType", map[EventType]string{
	EventChangeOfBitstring:       "changeOfBitstring",
	EventChangeOfState:           "changeOfState",
	EventChangeOfValue:           "changeOfValue",
	EventCommandFailure:          "commandFailure",
	EventFloatingLimit:           "floatingLimit",
	EventOutOfRange:              "outOfRange",
	EventChangeOfLifeSafety:      "changeOfLifeSafety",
	EventExtended:                "extended",
	EventBufferReady:             "bufferReady",
	EventUnsignedRange:           "unsignedRange",
	EventAccessEvent:             "accessEvent",
	EventDoubleOutOfRange:        "doubleOutOfRange",
	EventSignedOutOfRange:        "signedOutOfRange",
	EventUnsignedOutOfRange:      "unsignedOutOfRange",
	EventChangeOfCharacterstring: "changeOfCharacterstring",
	EventChangeOfStatusFlags:     "changeOfStatusFlags",
	EventChangeOfReliability:     "changeOfReliability",
	EventNone:                    "none",
	EventChangeOfDiscreteValue:   "changeOfDiscreteValue",
	EventChangeOfTimer:           "changeOfTimer",
})

// EventTypeType is the Type of the event-type enumeration.
var EventTypeType Type = primType{eventTypeEnum}

// String returns the hyphenated constant name.
func (t EventType) String() string { return KebabOf(eventTypeEnum.NameOf(t)) }

// FaultType selects the fault algorithm, conform clause 13.4.
type FaultType uint32

// Fault Types
const (
	FaultNone            FaultType = 0
	FaultCharacterstring FaultType = 1
	FaultExtended        FaultType = 2
	FaultLifeSafety      FaultType = 3
	FaultState           FaultType = 4
	FaultStatusFlags     FaultType = 5
	FaultOutOfRange      FaultType = 6
	FaultListed          FaultType = 7
)

var faultTypeEnum = NewEnum("FaultType", map[FaultType]string{
	FaultNone:            "none",
	FaultCharacterstring: "faultCharacterstring",
	FaultExtended:        "faultExtended",
	FaultLifeSafety:      "faultLifeSafety",
	FaultState:           "faultState",
	FaultStatusFlags:     "faultStatusFlags",
	FaultOutOfRange:      "faultOutOfRange",
	FaultListed:          "faultListed",
})

// FaultTypeType is the Type of the fault-type enumeration.
var FaultTypeType Type = primType{faultTypeEnum}

// String returns the hyphenated constant name.
func (t FaultType) String() string { return KebabOf(faultTypeEnum.NameOf(t)) }

// NotifyType distinguishes alarms from events and acknowledgment
// notifications.
type NotifyType uint32

// Notify Types
const (
	NotifyAlarm NotifyType = iota
	NotifyEvent
	NotifyAckNotification
)

var notifyTypeEnum = NewEnum("NotifyType", map[NotifyType]string{
	NotifyAlarm:           "alarm",
	NotifyEvent:           "event",
	NotifyAckNotification: "ackNotification",
})

// NotifyTypeType is the Type of the notify-type enumeration.
var NotifyTypeType Type = primType{notifyTypeEnum}

// String returns the hyphenated constant name.
func (t NotifyType) String() string { return KebabOf(notifyTypeEnum.NameOf(t)) }

// BinaryPV is the value domain of binary objects.
type BinaryPV uint32

// Binary Present Values
const (
	Inactive BinaryPV = iota
	Active
)

var binaryPVEnum = NewEnum("BinaryPV", map[BinaryPV]string{
	Inactive: "inactive",
	Active:   "active",
})

// BinaryPVType is the Type of the binary present-value enumeration.
var BinaryPVType Type = primType{binaryPVEnum}

// String returns the hyphenated constant name.
func (v BinaryPV) String() string { return KebabOf(binaryPVEnum.NameOf(v)) }

// Polarity relates the physical state of a binary input or output to its
// logical state.
type Polarity uint32

// Polarities
const (
	PolarityNormal Polarity = iota
	PolarityReverse
)

var polarityEnum = NewEnum("Polarity", map[Polarity]string{
	PolarityNormal:  "normal",
	PolarityReverse: "reverse",
})

// PolarityType is the Type of the polarity enumeration.
var PolarityType Type = primType{polarityEnum}

// DeviceStatus is the operating state of a Device object.
type DeviceStatus uint32

// Device Statuses
const (
	StatusOperational DeviceStatus = iota
	StatusOperationalReadOnly
	StatusDownloadRequired
	StatusDownloadInProgress
	StatusNonOperational
	StatusBackupInProgress
)

var deviceStatusEnum = NewEnum("DeviceStatus", map[DeviceStatus]string{
	StatusOperational:         "operational",
	StatusOperationalReadOnly: "operationalReadOnly",
	StatusDownloadRequired:    "downloadRequired",
	StatusDownloadInProgress:  "downloadInProgress",
	StatusNonOperational:      "nonOperational",
	StatusBackupInProgress:    "backupInProgress",
})

// DeviceStatusType is the Type of the device-status enumeration.
var DeviceStatusType Type = primType{deviceStatusEnum}

// Segmentation is the APDU segmentation support indicator.
type Segmentation uint32

// Segmentation Support
const (
	SegmentedBoth Segmentation = iota
	SegmentedTransmit
	SegmentedReceive
	NoSegmentation
)

var segmentationEnum = NewEnum("Segmentation", map[Segmentation]string{
	SegmentedBoth:     "segmentedBoth",
	SegmentedTransmit: "segmentedTransmit",
	SegmentedReceive:  "segmentedReceive",
	NoSegmentation:    "noSegmentation",
})

// SegmentationType is the Type of the segmentation enumeration.
var SegmentationType Type = primType{segmentationEnum}

// ProgramState is the execution state of a Program object.
type ProgramState uint32

// Program States
const (
	ProgramIdle ProgramState = iota
	ProgramLoading
	ProgramRunning
	ProgramWaiting
	ProgramHalted
	ProgramUnloading
)

var programStateEnum = NewEnum("ProgramState", map[ProgramState]string{
	ProgramIdle:      "idle",
	ProgramLoading:   "loading",
	ProgramRunning:   "running",
	ProgramWaiting:   "waiting",
	ProgramHalted:    "halted",
	ProgramUnloading: "unloading",
})

// ProgramStateType is the Type of the program-state enumeration.
var ProgramStateType Type = primType{programStateEnum}

// ProgramError gives the reason a Program object halted.
type ProgramError uint32

// Program Errors
const (
	ProgramErrorNormal ProgramError = iota
	ProgramErrorLoadFailed
	ProgramErrorInternal
	ProgramErrorProgram
	ProgramErrorOther
)

var programErrorEnum = NewEnum("ProgramError", map[ProgramError]string{
	ProgramErrorNormal:     "normal",
	ProgramErrorLoadFailed: "loadFailed",
	ProgramErrorInternal:   "internal",
	ProgramErrorProgram:    "program",
	ProgramErrorOther:      "other",
})

// ProgramErrorType is the Type of the program-error enumeration.
var ProgramErrorType Type = primType{programErrorEnum}
