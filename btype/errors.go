package btype

// ErrorClass groups the error codes of clause 18.
type ErrorClass uint32

// Error Classes
const (
	ClassDevice ErrorClass = iota
	ClassObject
	ClassProperty
	ClassResources
	ClassSecurity
	ClassServices
	ClassVT
	ClassCommunication
)

var errorClassEnum = NewEnum("ErrorClass", map[ErrorClass]string{
	ClassDevice:        "device",
	ClassObject:        "object",
	ClassProperty:      "property",
	ClassResources:     "resources",
	ClassSecurity:      "security",
	ClassServices:      "services",
	ClassVT:            "vt",
	ClassCommunication: "communication",
})

// ErrorClassType is the Type of the error-class enumeration.
var ErrorClassType Type = primType{errorClassEnum}

// String returns the hyphenated constant name.
func (c ErrorClass) String() string { return KebabOf(errorClassEnum.NameOf(c)) }

// ErrorCode names the failure, conform clause 18.
type ErrorCode uint32

// Error Codes
const (
	CodeOther                              ErrorCode = 0
	CodeConfigurationInProgress            ErrorCode = 2
	CodeDeviceBusy                         ErrorCode = 3
	CodeDynamicCreationNotSupported        ErrorCode = 4
	CodeFileAccessDenied                   ErrorCode = 5
	CodeInconsistentParameters             ErrorCode = 7
	CodeInconsistentSelectionCriterion     ErrorCode = 8
	CodeInvalidDataType                    ErrorCode = 9
	CodeInvalidFileAccessMethod            ErrorCode = 10
	CodeInvalidFileStartPosition           ErrorCode = 11
	CodeInvalidParameterDataType           ErrorCode = 13
	CodeInvalidTimeStamp                   ErrorCode = 14
	CodeMissingRequiredParameter           ErrorCode = 16
	CodeNoObjectsOfSpecifiedType           ErrorCode = 17
	CodeNoSpaceForObject                   ErrorCode = 18
	CodeNoSpaceToAddListElement            ErrorCode = 19
	CodeNoSpaceToWriteProperty             ErrorCode = 20
	CodeNoVtSessionsAvailable              ErrorCode = 21
	CodePropertyIsNotAList                 ErrorCode = 22
	CodeObjectDeletionNotPermitted         ErrorCode = 23
	CodeObjectIdentifierAlreadyExists      ErrorCode = 24
	CodeOperationalProblem                 ErrorCode = 25
	CodePasswordFailure                    ErrorCode = 26
	CodeReadAccessDenied                   ErrorCode = 27
	CodeServiceRequestDenied               ErrorCode = 29
	CodeTimeout                            ErrorCode = 30
	CodeUnknownObject                      ErrorCode = 31
	CodeUnknownProperty                    ErrorCode = 32
	CodeUnknownVtClass                     ErrorCode = 34
	CodeUnknownVtSession                   ErrorCode = 35
	CodeUnsupportedObjectType              ErrorCode = 36
	CodeValueOutOfRange                    ErrorCode = 37
	CodeVtSessionAlreadyClosed             ErrorCode = 38
	CodeVtSessionTerminationFailure        ErrorCode = 39
	CodeWriteAccessDenied                  ErrorCode = 40
	CodeCharacterSetNotSupported           ErrorCode = 41
	CodeInvalidArrayIndex                  ErrorCode = 42
	CodeCovSubscriptionFailed              ErrorCode = 43
	CodeNotCovProperty                     ErrorCode = 44
	CodeOptionalFunctionalityNotSupported  ErrorCode = 45
	CodeInvalidConfigurationData           ErrorCode = 46
	CodeDatatypeNotSupported               ErrorCode = 47
	CodeDuplicateName                      ErrorCode = 48
	CodeDuplicateObjectId                  ErrorCode = 49
	CodePropertyIsNotAnArray               ErrorCode = 50
	CodeAbortBufferOverflow                ErrorCode = 51
	CodeAbortInvalidApduInThisState        ErrorCode = 52
	CodeAbortPreemptedByHigherPriorityTask ErrorCode = 53
	CodeAbortSegmentationNotSupported      ErrorCode = 54
	CodeAbortProprietary                   ErrorCode = 55
	CodeAbortOther                         ErrorCode = 56
	CodeInvalidTag                         ErrorCode = 57
	CodeNetworkDown                        ErrorCode = 58
	CodeRejectBufferOverflow               ErrorCode = 59
	CodeRejectInconsistentParameters       ErrorCode = 60
	CodeRejectInvalidParameterDataType     ErrorCode = 61
	CodeRejectInvalidTag                   ErrorCode = 62
	CodeRejectMissingRequiredParameter     ErrorCode = 63
	CodeRejectParameterOutOfRange          ErrorCode = 64
	CodeRejectTooManyArguments             ErrorCode = 65
	CodeRejectUndefinedEnumeration         ErrorCode = 66
	CodeRejectUnrecognizedService          ErrorCode = 67
	CodeRejectProprietary                  ErrorCode = 68
	CodeRejectOther                        ErrorCode = 69
	CodeUnknownDevice                      ErrorCode = 70
	CodeUnknownRoute                       ErrorCode = 71
	CodeValueNotInitialized                ErrorCode = 72
	CodeInvalidEventState                  ErrorCode = 73
	CodeNoAlarmConfigured                  ErrorCode = 74
	CodeLogBufferFull                      ErrorCode = 75
	CodeLoggedValuePurged                  ErrorCode = 76
	CodeNoPropertySpecified                ErrorCode = 77
	CodeNotConfiguredForTriggeredLogging   ErrorCode = 78
	CodeUnknownSubscription                ErrorCode = 79
	CodeParameterOutOfRange                ErrorCode = 80
	CodeListElementNotFound                ErrorCode = 81
	CodeBusy                               ErrorCode = 82
	CodeCommunicationDisabled              ErrorCode = 83
	CodeSuccess                            ErrorCode = 84
	CodeAccessDenied                       ErrorCode = 85
	CodeBadDestinationAddress              ErrorCode = 86
	CodeBadDestinationDeviceId             ErrorCode = 87
	CodeBadSignature                       ErrorCode = 88
	CodeBadSourceAddress                   ErrorCode = 89
	CodeBadTimestamp                       ErrorCode = 90
	CodeCannotUseKey                       ErrorCode = 91
	CodeCannotVerifyMessageId              ErrorCode = 92
	CodeCorrectKeyRevision                 ErrorCode = 93
	CodeDestinationDeviceIdRequired        ErrorCode = 94
	CodeDuplicateMessage                   ErrorCode = 95
	CodeEncryptionNotConfigured            ErrorCode = 96
	CodeEncryptionRequired                 ErrorCode = 97
	CodeIncorrectKey                       ErrorCode = 98
	CodeInvalidKeyData                     ErrorCode = 99
	CodeKeyUpdateInProgress                ErrorCode = 100
	CodeMalformedMessage                   ErrorCode = 101
	CodeNotKeyServer                       ErrorCode = 102
	CodeSecurityNotConfigured              ErrorCode = 103
	CodeSourceSecurityRequired             ErrorCode = 104
	CodeTooManyKeys                        ErrorCode = 105
	CodeUnknownAuthenticationType          ErrorCode = 106
	CodeUnknownKey                         ErrorCode = 107
	CodeUnknownKeyRevision                 ErrorCode = 108
	CodeUnknownSourceMessage               ErrorCode = 109
	CodeNotRouterToDnet                    ErrorCode = 110
	CodeRouterBusy                         ErrorCode = 111
	CodeUnknownNetworkMessage              ErrorCode = 112
	CodeMessageTooLong                     ErrorCode = 113
	CodeSecurityError                      ErrorCode = 114
	CodeAddressingError                    ErrorCode = 115
	CodeWriteBdtFailed                     ErrorCode = 116
	CodeReadBdtFailed                      ErrorCode = 117
	CodeRegisterForeignDeviceFailed        ErrorCode = 118
	CodeReadFdtFailed                      ErrorCode = 119
	CodeDeleteFdtEntryFailed               ErrorCode = 120
	CodeDistributeBroadcastFailed          ErrorCode = 121
	CodeUnknownFileSize                    ErrorCode = 122
	CodeAbortApduTooLong                   ErrorCode = 123
	CodeAbortApplicationExceededReplyTime  ErrorCode = 124
	CodeAbortOutOfResources                ErrorCode = 125
	CodeAbortTsmTimeout                    ErrorCode = 126
	CodeAbortWindowSizeOutOfRange          ErrorCode = 127
	CodeFileFull                           ErrorCode = 128
	CodeInconsistentConfiguration          ErrorCode = 129
	CodeInconsistentObjectType             ErrorCode = 130
	CodeInternalError                      ErrorCode = 131
	CodeNotConfigured                      ErrorCode = 132
	CodeOutOfMemory                        ErrorCode = 133
	CodeValueTooLong                       ErrorCode = 134
	CodeAbortInsufficientSecurity          ErrorCode = 135
	CodeAbortSecurityError                 ErrorCode = 136
)

var errorCodeEnum = NewEnum("ErrorCode", map[ErrorCode]string{
	CodeOther:                              "other",
	CodeConfigurationInProgress:            "configurationInProgress",
	CodeDeviceBusy:                         "deviceBusy",
	CodeDynamicCreationNotSupported:        "dynamicCreationNotSupported",
	CodeFileAccessDenied:                   "fileAccessDenied",
	CodeInconsistentParameters:             "inconsistentParameters",
	CodeInconsistentSelectionCriterion:     "inconsistentSelectionCriterion",
	CodeInvalidDataType:                    "invalidDataType",
	CodeInvalidFileAccessMethod:            "invalidFileAccessMethod",
	CodeInvalidFileStartPosition:           "invalidFileStartPosition",
	CodeInvalidParameterDataType:           "invalidParameterDataType",
	CodeInvalidTimeStamp:                   "invalidTimeStamp",
	CodeMissingRequiredParameter:           "missingRequiredParameter",
	CodeNoObjectsOfSpecifiedType:           "noObjectsOfSpecifiedType",
	CodeNoSpaceForObject:                   "noSpaceForObject",
	CodeNoSpaceToAddListElement:            "noSpaceToAddListElement",
	CodeNoSpaceToWriteProperty:             "noSpaceToWriteProperty",
	CodeNoVtSessionsAvailable:              "noVtSessionsAvailable",
	CodePropertyIsNotAList:                 "propertyIsNotAList",
	CodeObjectDeletionNotPermitted:         "objectDeletionNotPermitted",
	CodeObjectIdentifierAlreadyExists:      "objectIdentifierAlreadyExists",
	CodeOperationalProblem:                 "operationalProblem",
	CodePasswordFailure:                    "passwordFailure",
	CodeReadAccessDenied:                   "readAccessDenied",
	CodeServiceRequestDenied:               "serviceRequestDenied",
	CodeTimeout:                            "timeout",
	CodeUnknownObject:                      "unknownObject",
	CodeUnknownProperty:                    "unknownProperty",
	CodeUnknownVtClass:                     "unknownVtClass",
	CodeUnknownVtSession:                   "unknownVtSession",
	CodeUnsupportedObjectType:              "unsupportedObjectType",
	CodeValueOutOfRange:                    "valueOutOfRange",
	CodeVtSessionAlreadyClosed:             "vtSessionAlreadyClosed",
	CodeVtSessionTerminationFailure:        "vtSessionTerminationFailure",
	CodeWriteAccessDenied:                  "writeAccessDenied",
	CodeCharacterSetNotSupported:           "characterSetNotSupported",
	CodeInvalidArrayIndex:                  "invalidArrayIndex",
	CodeCovSubscriptionFailed:              "covSubscriptionFailed",
	CodeNotCovProperty:                     "notCovProperty",
	CodeOptionalFunctionalityNotSupported:  "optionalFunctionalityNotSupported",
	CodeInvalidConfigurationData:           "invalidConfigurationData",
	CodeDatatypeNotSupported:               "datatypeNotSupported",
	CodeDuplicateName:                      "duplicateName",
	CodeDuplicateObjectId:                  "duplicateObjectId",
	CodePropertyIsNotAnArray:               "propertyIsNotAnArray",
	CodeAbortBufferOverflow:                "abortBufferOverflow",
	CodeAbortInvalidApduInThisState:        "abortInvalidApduInThisState",
	CodeAbortPreemptedByHigherPriorityTask: "abortPreemptedByHigherPriorityTask",
	CodeAbortSegmentationNotSupported:      "abortSegmentationNotSupported",
	CodeAbortProprietary:                   "abortProprietary",
	CodeAbortOther:                         "abortOther",
	CodeInvalidTag:                         "invalidTag",
	CodeNetworkDown:                        "networkDown",
	CodeRejectBufferOverflow:               "rejectBufferOverflow",
	CodeRejectInconsistentParameters:       "rejectInconsistentParameters",
	CodeRejectInvalidParameterDataType:     "rejectInvalidParameterDataType",
	CodeRejectInvalidTag:                   "rejectInvalidTag",
	CodeRejectMissingRequiredParameter:     "rejectMissingRequiredParameter",
	CodeRejectParameterOutOfRange:          "rejectParameterOutOfRange",
	CodeRejectTooManyArguments:             "rejectTooManyArguments",
	CodeRejectUndefinedEnumeration:         "rejectUndefinedEnumeration",
	CodeRejectUnrecognizedService:          "rejectUnrecognizedService",
	CodeRejectProprietary:                  "rejectProprietary",
	CodeRejectOther:                        "rejectOther",
	CodeUnknownDevice:                      "unknownDevice",
	CodeUnknownRoute:                       "unknownRoute",
	CodeValueNotInitialized:                "valueNotInitialized",
	CodeInvalidEventState:                  "invalidEventState",
	CodeNoAlarmConfigured:                  "noAlarmConfigured",
	CodeLogBufferFull:                      "logBufferFull",
	CodeLoggedValuePurged:                  "loggedValuePurged",
	CodeNoPropertySpecified:                "noPropertySpecified",
	CodeNotConfiguredForTriggeredLogging:   "notConfiguredForTriggeredLogging",
	CodeUnknownSubscription:                "unknownSubscription",
	CodeParameterOutOfRange:                "parameterOutOfRange",
	CodeListElementNotFound:                "listElementNotFound",
	CodeBusy:                               "busy",
	CodeCommunicationDisabled:              "communicationDisabled",
	CodeSuccess:                            "success",
	CodeAccessDenied:                       "accessDenied",
	CodeBadDestinationAddress:              "badDestinationAddress",
	CodeBadDestinationDeviceId:             "badDestinationDeviceId",
	CodeBadSignature:                       "badSignature",
	CodeBadSourceAddress:                   "badSourceAddress",
	CodeBadTimestamp:                       "badTimestamp",
	CodeCannotUseKey:                       "cannotUseKey",
	CodeCannotVerifyMessageId:              "cannotVerifyMessageId",
	CodeCorrectKeyRevision:                 "correctKeyRevision",
	CodeDestinationDeviceIdRequired:        "destinationDeviceIdRequired",
	CodeDuplicateMessage:                   "duplicateMessage",
	CodeEncryptionNotConfigured:            "encryptionNotConfigured",
	CodeEncryptionRequired:                 "encryptionRequired",
	CodeIncorrectKey:                       "incorrectKey",
	CodeInvalidKeyData:                     "invalidKeyData",
	CodeKeyUpdateInProgress:                "keyUpdateInProgress",
	CodeMalformedMessage:                   "malformedMessage",
	CodeNotKeyServer:                       "notKeyServer",
	CodeSecurityNotConfigured:              "securityNotConfigured",
	CodeSourceSecurityRequired:             "sourceSecurityRequired",
	CodeTooManyKeys:                        "tooManyKeys",
	CodeUnknownAuthenticationType:          "unknownAuthenticationType",
	CodeUnknownKey:                         "unknownKey",
	CodeUnknownKeyRevision:                 "unknownKeyRevision",
	CodeUnknownSourceMessage:               "unknownSourceMessage",
	CodeNotRouterToDnet:                    "notRouterToDnet",
	CodeRouterBusy:                         "routerBusy",
	CodeUnknownNetworkMessage:              "unknownNetworkMessage",
	CodeMessageTooLong:                     "messageTooLong",
	CodeSecurityError:                      "securityError",
	CodeAddressingError:                    "addressingError",
	CodeWriteBdtFailed:                     "writeBdtFailed",
	CodeReadBdtFailed:                      "readBdtFailed",
	CodeRegisterForeignDeviceFailed:        "registerForeignDeviceFailed",
	CodeReadFdtFailed:                      "readFdtFailed",
	CodeDeleteFdtEntryFailed:               "deleteFdtEntryFailed",
	CodeDistributeBroadcastFailed:          "distributeBroadcastFailed",
	CodeUnknownFileSize:                    "unknownFileSize",
	CodeAbortApduTooLong:                   "abortApduTooLong",
	CodeAbortApplicationExceededReplyTime:  "abortApplicationExceededReplyTime",
	CodeAbortOutOfResources:                "abortOutOfResources",
	CodeAbortTsmTimeout:                    "abortTsmTimeout",
	CodeAbortWindowSizeOutOfRange:          "abortWindowSizeOutOfRange",
	CodeFileFull:                           "fileFull",
	CodeInconsistentConfiguration:          "inconsistentConfiguration",
	CodeInconsistentObjectType:             "inconsistentObjectType",
	CodeInternalError:                      "internalError",
	CodeNotConfigured:                      "notConfigured",
	CodeOutOfMemory:                        "outOfMemory",
	CodeValueTooLong:                       "valueTooLong",
	CodeAbortInsufficientSecurity:          "abortInsufficientSecurity",
	CodeAbortSecurityError:                 "abortSecurityError",
})

// ErrorCodeType is the Type of the error-code enumeration.
var ErrorCodeType Type = primType{errorCodeEnum}

// String returns the hyphenated constant name.
func (c ErrorCode) String() string { return KebabOf(errorCodeEnum.NameOf(c)) }

// Error is the structured access error which the service layer maps onto a
// BACnet Error PDU.
type Error struct {
	Class ErrorClass
	Code  ErrorCode
}

// Error implements the builtin.error interface.
func (e Error) Error() string {
	return "bacstack: " + e.Class.String() + ": " + e.Code.String()
}

// Access Errors
var (
	ErrUnknownObject     = Error{ClassObject, CodeUnknownObject}
	ErrUnknownProperty   = Error{ClassProperty, CodeUnknownProperty}
	ErrInvalidArrayIndex = Error{ClassProperty, CodeInvalidArrayIndex}
	ErrNotAnArray        = Error{ClassProperty, CodePropertyIsNotAnArray}
	ErrWriteAccessDenied = Error{ClassProperty, CodeWriteAccessDenied}
	ErrDuplicateName     = Error{ClassProperty, CodeDuplicateName}
	ErrDuplicateObjectID = Error{ClassProperty, CodeDuplicateObjectId}
)
