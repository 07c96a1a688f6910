package btype

// PropertyIdentifier names a property with an ASHRAE-assigned code. Codes
// 0..511 are reserved for the standard; 512..4194303 are vendor-proprietary.
type PropertyIdentifier uint32

// FirstVendorProperty is the lowest vendor-proprietary property code.
const FirstVendorProperty PropertyIdentifier = 512

// Property Identifiers
const (
	PropAckedTransitions                 PropertyIdentifier = 0
	PropAckRequired                      PropertyIdentifier = 1
	PropAction                           PropertyIdentifier = 2
	PropActionText                       PropertyIdentifier = 3
	PropActiveText                       PropertyIdentifier = 4
	PropActiveVtSessions                 PropertyIdentifier = 5
	PropAlarmValue                       PropertyIdentifier = 6
	PropAlarmValues                      PropertyIdentifier = 7
	PropAll                              PropertyIdentifier = 8
	PropAllWritesSuccessful              PropertyIdentifier = 9
	PropApduSegmentTimeout               PropertyIdentifier = 10
	PropApduTimeout                      PropertyIdentifier = 11
	PropApplicationSoftwareVersion       PropertyIdentifier = 12
	PropArchive                          PropertyIdentifier = 13
	PropBias                             PropertyIdentifier = 14
	PropChangeOfStateCount               PropertyIdentifier = 15
	PropChangeOfStateTime                PropertyIdentifier = 16
	PropNotificationClass                PropertyIdentifier = 17
	PropControlledVariableReference      PropertyIdentifier = 19
	PropControlledVariableUnits          PropertyIdentifier = 20
	PropControlledVariableValue          PropertyIdentifier = 21
	PropCovIncrement                     PropertyIdentifier = 22
	PropDateList                         PropertyIdentifier = 23
	PropDaylightSavingsStatus            PropertyIdentifier = 24
	PropDeadband                         PropertyIdentifier = 25
	PropDerivativeConstant               PropertyIdentifier = 26
	PropDerivativeConstantUnits          PropertyIdentifier = 27
	PropDescription                      PropertyIdentifier = 28
	PropDescriptionOfHalt                PropertyIdentifier = 29
	PropDeviceAddressBinding             PropertyIdentifier = 30
	PropDeviceType                       PropertyIdentifier = 31
	PropEffectivePeriod                  PropertyIdentifier = 32
	PropElapsedActiveTime                PropertyIdentifier = 33
	PropErrorLimit                       PropertyIdentifier = 34
	PropEventEnable                      PropertyIdentifier = 35
	PropEventState                       PropertyIdentifier = 36
	PropEventType                        PropertyIdentifier = 37
	PropExceptionSchedule                PropertyIdentifier = 38
	PropFaultValues                      PropertyIdentifier = 39
	PropFeedbackValue                    PropertyIdentifier = 40
	PropFileAccessMethod                 PropertyIdentifier = 41
	PropFileSize                         PropertyIdentifier = 42
	PropFileType                         PropertyIdentifier = 43
	PropFirmwareRevision                 PropertyIdentifier = 44
	PropHighLimit                        PropertyIdentifier = 45
	PropInactiveText                     PropertyIdentifier = 46
	PropInProcess                        PropertyIdentifier = 47
	PropInstanceOf                       PropertyIdentifier = 48
	PropIntegralConstant                 PropertyIdentifier = 49
	PropIntegralConstantUnits            PropertyIdentifier = 50
	PropIssueConfirmedNotifications      PropertyIdentifier = 51
	PropLimitEnable                      PropertyIdentifier = 52
	PropListOfGroupMembers               PropertyIdentifier = 53
	PropListOfObjectPropertyReferences   PropertyIdentifier = 54
	PropListOfSessionKeys                PropertyIdentifier = 55
	PropLocalDate                        PropertyIdentifier = 56
	PropLocalTime                        PropertyIdentifier = 57
	PropLocation                         PropertyIdentifier = 58
	PropLowLimit                         PropertyIdentifier = 59
	PropManipulatedVariableReference     PropertyIdentifier = 60
	PropMaximumOutput                    PropertyIdentifier = 61
	PropMaxApduLengthAccepted            PropertyIdentifier = 62
	PropMaxInfoFrames                    PropertyIdentifier = 63
	PropMaxMaster                        PropertyIdentifier = 64
	PropMaxPresValue                     PropertyIdentifier = 65
	PropMinimumOffTime                   PropertyIdentifier = 66
	PropMinimumOnTime                    PropertyIdentifier = 67
	PropMinimumOutput                    PropertyIdentifier = 68
	PropMinPresValue                     PropertyIdentifier = 69
	PropModelName                        PropertyIdentifier = 70
	PropModificationDate                 PropertyIdentifier = 71
	PropNotifyType                       PropertyIdentifier = 72
	PropNumberOfApduRetries              PropertyIdentifier = 73
	PropNumberOfStates                   PropertyIdentifier = 74
	PropObjectIdentifier                 PropertyIdentifier = 75
	PropObjectList                       PropertyIdentifier = 76
	PropObjectName                       PropertyIdentifier = 77
	PropObjectPropertyReference          PropertyIdentifier = 78
	PropObjectType                       PropertyIdentifier = 79
	PropOptional                         PropertyIdentifier = 80
	PropOutOfService                     PropertyIdentifier = 81
	PropOutputUnits                      PropertyIdentifier = 82
	PropEventParameters                  PropertyIdentifier = 83
	PropPolarity                         PropertyIdentifier = 84
	PropPresentValue                     PropertyIdentifier = 85
	PropPriority                         PropertyIdentifier = 86
	PropPriorityArray                    PropertyIdentifier = 87
	PropPriorityForWriting               PropertyIdentifier = 88
	PropProcessIdentifier                PropertyIdentifier = 89
	PropProgramChange                    PropertyIdentifier = 90
	PropProgramLocation                  PropertyIdentifier = 91
	PropProgramState                     PropertyIdentifier = 92
	PropProportionalConstant             PropertyIdentifier = 93
	PropProportionalConstantUnits        PropertyIdentifier = 94
	PropProtocolObjectTypesSupported     PropertyIdentifier = 96
	PropProtocolServicesSupported        PropertyIdentifier = 97
	PropProtocolVersion                  PropertyIdentifier = 98
	PropReadOnly                         PropertyIdentifier = 99
	PropReasonForHalt                    PropertyIdentifier = 100
	PropRecipientList                    PropertyIdentifier = 102
	PropReliability                      PropertyIdentifier = 103
	PropRelinquishDefault                PropertyIdentifier = 104
	PropRequired                         PropertyIdentifier = 105
	PropResolution                       PropertyIdentifier = 106
	PropSegmentationSupported            PropertyIdentifier = 107
	PropSetpoint                         PropertyIdentifier = 108
	PropSetpointReference                PropertyIdentifier = 109
	PropStateText                        PropertyIdentifier = 110
	PropStatusFlags                      PropertyIdentifier = 111
	PropSystemStatus                     PropertyIdentifier = 112
	PropTimeDelay                        PropertyIdentifier = 113
	PropTimeOfActiveTimeReset            PropertyIdentifier = 114
	PropTimeOfStateCountReset            PropertyIdentifier = 115
	PropTimeSynchronizationRecipients    PropertyIdentifier = 116
	PropUnits                            PropertyIdentifier = 117
	PropUpdateInterval                   PropertyIdentifier = 118
	PropUtcOffset                        PropertyIdentifier = 119
	PropVendorIdentifier                 PropertyIdentifier = 120
	PropVendorName                       PropertyIdentifier = 121
	PropVtClassesSupported               PropertyIdentifier = 122
	PropWeeklySchedule                   PropertyIdentifier = 123
	PropAttemptedSamples                 PropertyIdentifier = 124
	PropAverageValue                     PropertyIdentifier = 125
	PropBufferSize                       PropertyIdentifier = 126
	PropClientCovIncrement               PropertyIdentifier = 127
	PropCovResubscriptionInterval        PropertyIdentifier = 128
	PropEventTimeStamps                  PropertyIdentifier = 130
	PropLogBuffer                        PropertyIdentifier = 131
	PropLogDeviceObjectProperty          PropertyIdentifier = 132
	PropEnable                           PropertyIdentifier = 133
	PropLogInterval                      PropertyIdentifier = 134
	PropMaximumValue                     PropertyIdentifier = 135
	PropMinimumValue                     PropertyIdentifier = 136
	PropNotificationThreshold            PropertyIdentifier = 137
	PropProtocolRevision                 PropertyIdentifier = 139
	PropRecordsSinceNotification         PropertyIdentifier = 140
	PropRecordCount                      PropertyIdentifier = 141
	PropStartTime                        PropertyIdentifier = 142
	PropStopTime                         PropertyIdentifier = 143
	PropStopWhenFull                     PropertyIdentifier = 144
	PropTotalRecordCount                 PropertyIdentifier = 145
	PropValidSamples                     PropertyIdentifier = 146
	PropWindowInterval                   PropertyIdentifier = 147
	PropWindowSamples                    PropertyIdentifier = 148
	PropMaximumValueTimestamp            PropertyIdentifier = 149
	PropMinimumValueTimestamp            PropertyIdentifier = 150
	PropVarianceValue                    PropertyIdentifier = 151
	PropActiveCovSubscriptions           PropertyIdentifier = 152
	PropBackupFailureTimeout             PropertyIdentifier = 153
	PropConfigurationFiles               PropertyIdentifier = 154
	PropDatabaseRevision                 PropertyIdentifier = 155
	PropDirectReading                    PropertyIdentifier = 156
	PropLastRestoreTime                  PropertyIdentifier = 157
	PropMaintenanceRequired              PropertyIdentifier = 158
	PropMemberOf                         PropertyIdentifier = 159
	PropMode                             PropertyIdentifier = 160
	PropOperationExpected                PropertyIdentifier = 161
	PropSetting                          PropertyIdentifier = 162
	PropSilenced                         PropertyIdentifier = 163
	PropTrackingValue                    PropertyIdentifier = 164
	PropZoneMembers                      PropertyIdentifier = 165
	PropLifeSafetyAlarmValues            PropertyIdentifier = 166
	PropMaxSegmentsAccepted              PropertyIdentifier = 167
	PropProfileName                      PropertyIdentifier = 168
	PropAutoSlaveDiscovery               PropertyIdentifier = 169
	PropManualSlaveAddressBinding        PropertyIdentifier = 170
	PropSlaveAddressBinding              PropertyIdentifier = 171
	PropSlaveProxyEnable                 PropertyIdentifier = 172
	PropLastNotifyRecord                 PropertyIdentifier = 173
	PropScheduleDefault                  PropertyIdentifier = 174
	PropAcceptedModes                    PropertyIdentifier = 175
	PropAdjustValue                      PropertyIdentifier = 176
	PropCount                            PropertyIdentifier = 177
	PropCountBeforeChange                PropertyIdentifier = 178
	PropCountChangeTime                  PropertyIdentifier = 179
	PropCovPeriod                        PropertyIdentifier = 180
	PropInputReference                   PropertyIdentifier = 181
	PropLimitMonitoringInterval          PropertyIdentifier = 182
	PropLoggingObject                    PropertyIdentifier = 183
	PropLoggingRecord                    PropertyIdentifier = 184
	PropPrescale                         PropertyIdentifier = 185
	PropPulseRate                        PropertyIdentifier = 186
	PropScale                            PropertyIdentifier = 187
	PropScaleFactor                      PropertyIdentifier = 188
	PropUpdateTime                       PropertyIdentifier = 189
	PropValueBeforeChange                PropertyIdentifier = 190
	PropValueSet                         PropertyIdentifier = 191
	PropValueChangeTime                  PropertyIdentifier = 192
	PropAlignIntervals                   PropertyIdentifier = 193
	PropIntervalOffset                   PropertyIdentifier = 195
	PropLastRestartReason                PropertyIdentifier = 196
	PropLoggingType                      PropertyIdentifier = 197
	PropRestartNotificationRecipients    PropertyIdentifier = 202
	PropTimeOfDeviceRestart              PropertyIdentifier = 203
	PropTimeSynchronizationInterval      PropertyIdentifier = 204
	PropTrigger                          PropertyIdentifier = 205
	PropUtcTimeSynchronizationRecipients PropertyIdentifier = 206
	PropNodeSubtype                      PropertyIdentifier = 207
	PropNodeType                         PropertyIdentifier = 208
	PropStructuredObjectList             PropertyIdentifier = 209
	PropSubordinateAnnotations           PropertyIdentifier = 210
	PropSubordinateList                  PropertyIdentifier = 211
	PropActualShedLevel                  PropertyIdentifier = 212
	PropDutyWindow                       PropertyIdentifier = 213
	PropExpectedShedLevel                PropertyIdentifier = 214
	PropFullDutyBaseline                 PropertyIdentifier = 215
	PropRequestedShedLevel               PropertyIdentifier = 218
	PropShedDuration                     PropertyIdentifier = 219
	PropShedLevelDescriptions            PropertyIdentifier = 220
	PropShedLevels                       PropertyIdentifier = 221
	PropStateDescription                 PropertyIdentifier = 222
	PropDoorAlarmState                   PropertyIdentifier = 226
	PropDoorExtendedPulseTime            PropertyIdentifier = 227
	PropDoorMembers                      PropertyIdentifier = 228
	PropDoorOpenTooLongTime              PropertyIdentifier = 229
	PropDoorPulseTime                    PropertyIdentifier = 230
	PropDoorStatus                       PropertyIdentifier = 231
	PropDoorUnlockDelayTime              PropertyIdentifier = 232
	PropLockStatus                       PropertyIdentifier = 233
	PropMaskedAlarmValues                PropertyIdentifier = 234
	PropSecuredStatus                    PropertyIdentifier = 235
	PropAbsenteeLimit                    PropertyIdentifier = 244
	PropAccessAlarmEvents                PropertyIdentifier = 245
	PropAccessDoors                      PropertyIdentifier = 246
	PropAccessEvent                      PropertyIdentifier = 247
	PropAccessEventAuthenticationFactor  PropertyIdentifier = 248
	PropAccessEventCredential            PropertyIdentifier = 249
	PropAccessEventTime                  PropertyIdentifier = 250
	PropAccessTransactionEvents          PropertyIdentifier = 251
	PropAccompaniment                    PropertyIdentifier = 252
	PropAccompanimentTime                PropertyIdentifier = 253
	PropActivationTime                   PropertyIdentifier = 254
	PropActiveAuthenticationPolicy       PropertyIdentifier = 255
	PropAssignedAccessRights             PropertyIdentifier = 256
	PropAuthenticationFactors            PropertyIdentifier = 257
	PropAuthenticationPolicyList         PropertyIdentifier = 258
	PropAuthenticationPolicyNames        PropertyIdentifier = 259
	PropAuthenticationStatus             PropertyIdentifier = 260
	PropAuthorizationMode                PropertyIdentifier = 261
	PropBelongsTo                        PropertyIdentifier = 262
	PropCredentialDisable                PropertyIdentifier = 263
	PropCredentialStatus                 PropertyIdentifier = 264
	PropCredentials                      PropertyIdentifier = 265
	PropCredentialsInZone                PropertyIdentifier = 266
	PropDaysRemaining                    PropertyIdentifier = 267
	PropEntryPoints                      PropertyIdentifier = 268
	PropExitPoints                       PropertyIdentifier = 269
	PropExpirationTime                   PropertyIdentifier = 270
	PropExtendedTimeEnable               PropertyIdentifier = 271
	PropFailedAttemptEvents              PropertyIdentifier = 272
	PropFailedAttempts                   PropertyIdentifier = 273
	PropFailedAttemptsTime               PropertyIdentifier = 274
	PropLastAccessEvent                  PropertyIdentifier = 275
	PropLastAccessPoint                  PropertyIdentifier = 276
	PropLastCredentialAdded              PropertyIdentifier = 277
	PropLastCredentialAddedTime          PropertyIdentifier = 278
	PropLastCredentialRemoved            PropertyIdentifier = 279
	PropLastCredentialRemovedTime        PropertyIdentifier = 280
	PropLastUseTime                      PropertyIdentifier = 281
	PropLockout                          PropertyIdentifier = 282
	PropLockoutRelinquishTime            PropertyIdentifier = 283
	PropMasterExemption                  PropertyIdentifier = 284
	PropMaxFailedAttempts                PropertyIdentifier = 285
	PropMembers                          PropertyIdentifier = 286
	PropMusterPoint                      PropertyIdentifier = 287
	PropNegativeAccessRules              PropertyIdentifier = 288
	PropNumberOfAuthenticationPolicies   PropertyIdentifier = 289
	PropOccupancyCount                   PropertyIdentifier = 290
	PropOccupancyCountAdjust             PropertyIdentifier = 291
	PropOccupancyCountEnable             PropertyIdentifier = 292
	PropOccupancyExemption               PropertyIdentifier = 293
	PropOccupancyLowerLimit              PropertyIdentifier = 294
	PropOccupancyLowerLimitEnforced      PropertyIdentifier = 295
	PropOccupancyState                   PropertyIdentifier = 296
	PropOccupancyUpperLimit              PropertyIdentifier = 297
	PropOccupancyUpperLimitEnforced      PropertyIdentifier = 298
	PropPassbackExemption                PropertyIdentifier = 299
	PropPassbackMode                     PropertyIdentifier = 300
	PropPassbackTimeout                  PropertyIdentifier = 301
	PropPositiveAccessRules              PropertyIdentifier = 302
	PropReasonForDisable                 PropertyIdentifier = 303
	PropSupportedFormats                 PropertyIdentifier = 304
	PropSupportedFormatClasses           PropertyIdentifier = 305
	PropThreatAuthority                  PropertyIdentifier = 306
	PropThreatLevel                      PropertyIdentifier = 307
	PropTraceFlag                        PropertyIdentifier = 308
	PropTransactionNotificationClass     PropertyIdentifier = 309
	PropUserExternalIdentifier           PropertyIdentifier = 310
	PropUserInformationReference         PropertyIdentifier = 311
	PropUserName                         PropertyIdentifier = 317
	PropUserType                         PropertyIdentifier = 318
	PropUsesRemaining                    PropertyIdentifier = 319
	PropZoneFrom                         PropertyIdentifier = 320
	PropZoneTo                           PropertyIdentifier = 321
	PropAccessEventTag                   PropertyIdentifier = 322
	PropGlobalIdentifier                 PropertyIdentifier = 323
	PropVerificationTime                 PropertyIdentifier = 326
	PropBaseDeviceSecurityPolicy         PropertyIdentifier = 327
	PropDistributionKeyRevision          PropertyIdentifier = 328
	PropDoNotHide                        PropertyIdentifier = 329
	PropKeySets                          PropertyIdentifier = 330
	PropLastKeyServer                    PropertyIdentifier = 331
	PropNetworkAccessSecurityPolicies    PropertyIdentifier = 332
	PropPacketReorderTime                PropertyIdentifier = 333
	PropSecurityPDUTimeout               PropertyIdentifier = 334
	PropSecurityTimeWindow               PropertyIdentifier = 335
	PropSupportedSecurityAlgorithms      PropertyIdentifier = 336
	PropUpdateKeySetTimeout              PropertyIdentifier = 337
	PropBackupAndRestoreState            PropertyIdentifier = 338
	PropBackupPreparationTime            PropertyIdentifier = 339
	PropRestoreCompletionTime            PropertyIdentifier = 340
	PropRestorePreparationTime           PropertyIdentifier = 341
	PropBitMask                          PropertyIdentifier = 342
	PropBitText                          PropertyIdentifier = 343
	PropIsUTC                            PropertyIdentifier = 344
	PropGroupMembers                     PropertyIdentifier = 345
	PropGroupMemberNames                 PropertyIdentifier = 346
	PropMemberStatusFlags                PropertyIdentifier = 347
	PropRequestedUpdateInterval          PropertyIdentifier = 348
	PropCovuPeriod                       PropertyIdentifier = 349
	PropCovuRecipients                   PropertyIdentifier = 350
	PropEventMessageTexts                PropertyIdentifier = 351
	PropEventMessageTextsConfig          PropertyIdentifier = 352
	PropEventDetectionEnable             PropertyIdentifier = 353
	PropEventAlgorithmInhibit            PropertyIdentifier = 354
	PropEventAlgorithmInhibitRef         PropertyIdentifier = 355
	PropTimeDelayNormal                  PropertyIdentifier = 356
	PropReliabilityEvaluationInhibit     PropertyIdentifier = 357
	PropFaultParameters                  PropertyIdentifier = 358
	PropFaultType                        PropertyIdentifier = 359
	PropLocalForwardingOnly              PropertyIdentifier = 360
	PropProcessIdentifierFilter          PropertyIdentifier = 361
	PropSubscribedRecipients             PropertyIdentifier = 362
	PropPortFilter                       PropertyIdentifier = 363
	PropAuthorizationExemptions          PropertyIdentifier = 364
	PropAllowGroupDelayInhibit           PropertyIdentifier = 365
	PropChannelNumber                    PropertyIdentifier = 366
	PropControlGroups                    PropertyIdentifier = 367
	PropExecutionDelay                   PropertyIdentifier = 368
	PropLastPriority                     PropertyIdentifier = 369
	PropWriteStatus                      PropertyIdentifier = 370
	PropPropertyList                     PropertyIdentifier = 371
	PropSerialNumber                     PropertyIdentifier = 372
	PropBlinkWarnEnable                  PropertyIdentifier = 373
	PropDefaultFadeTime                  PropertyIdentifier = 374
	PropDefaultRampRate                  PropertyIdentifier = 375
	PropDefaultStepIncrement             PropertyIdentifier = 376
	PropEgressTime                       PropertyIdentifier = 377
	PropInProgress                       PropertyIdentifier = 378
	PropInstantaneousPower               PropertyIdentifier = 379
	PropLightingCommand                  PropertyIdentifier = 380
	PropLightingCommandDefaultPriority   PropertyIdentifier = 381
	PropMaxActualValue                   PropertyIdentifier = 382
	PropMinActualValue                   PropertyIdentifier = 383
	PropPower                            PropertyIdentifier = 384
	PropTransition                       PropertyIdentifier = 385
	PropEgressActive                     PropertyIdentifier = 386
	PropInterfaceValue                   PropertyIdentifier = 387
	PropFaultHighLimit                   PropertyIdentifier = 388
	PropFaultLowLimit                    PropertyIdentifier = 389
	PropLowDiffLimit                     PropertyIdentifier = 390
	PropStrikeCount                      PropertyIdentifier = 391
	PropTimeOfStrikeCountReset           PropertyIdentifier = 392
	PropDefaultTimeout                   PropertyIdentifier = 393
	PropInitialTimeout                   PropertyIdentifier = 394
	PropLastStateChange                  PropertyIdentifier = 395
	PropStateChangeValues                PropertyIdentifier = 396
	PropTimerRunning                     PropertyIdentifier = 397
	PropTimerState                       PropertyIdentifier = 398
	PropApduLength                       PropertyIdentifier = 399
	PropIpAddress                        PropertyIdentifier = 400
	PropIpDefaultGateway                 PropertyIdentifier = 401
	PropIpDHCPEnable                     PropertyIdentifier = 402
	PropIpDHCPLeaseTime                  PropertyIdentifier = 403
	PropIpDHCPLeaseTimeRemaining         PropertyIdentifier = 404
	PropIpDHCPServer                     PropertyIdentifier = 405
	PropIpDNSServer                      PropertyIdentifier = 406
	PropBacnetIPGlobalAddress            PropertyIdentifier = 407
	PropBacnetIPMode                     PropertyIdentifier = 408
	PropBacnetIPMulticastAddress         PropertyIdentifier = 409
	PropBacnetIPNATTraversal             PropertyIdentifier = 410
	PropIpSubnetMask                     PropertyIdentifier = 411
	PropBacnetIPUDPPort                  PropertyIdentifier = 412
	PropBbmdAcceptFDRegistrations        PropertyIdentifier = 413
	PropBbmdBroadcastDistributionTable   PropertyIdentifier = 414
	PropBbmdForeignDeviceTable           PropertyIdentifier = 415
	PropChangesPending                   PropertyIdentifier = 416
	PropCommand                          PropertyIdentifier = 417
	PropFdBBMDAddress                    PropertyIdentifier = 418
	PropFdSubscriptionLifetime           PropertyIdentifier = 419
	PropLinkSpeed                        PropertyIdentifier = 420
	PropLinkSpeeds                       PropertyIdentifier = 421
	PropLinkSpeedAutonegotiate           PropertyIdentifier = 422
	PropMacAddress                       PropertyIdentifier = 423
	PropNetworkInterfaceName             PropertyIdentifier = 424
	PropNetworkNumber                    PropertyIdentifier = 425
	PropNetworkNumberQuality             PropertyIdentifier = 426
	PropNetworkType                      PropertyIdentifier = 427
	PropRoutingTable                     PropertyIdentifier = 428
	PropVirtualMACAddressTable           PropertyIdentifier = 429
	PropCommandTimeArray                 PropertyIdentifier = 430
	PropCurrentCommandPriority           PropertyIdentifier = 431
	PropLastCommandTime                  PropertyIdentifier = 432
	PropValueSource                      PropertyIdentifier = 433
	PropValueSourceArray                 PropertyIdentifier = 434
	PropBacnetIPv6Mode                   PropertyIdentifier = 435
	PropIpv6Address                      PropertyIdentifier = 436
	PropIpv6PrefixLength                 PropertyIdentifier = 437
	PropBacnetIPv6UDPPort                PropertyIdentifier = 438
	PropIpv6DefaultGateway               PropertyIdentifier = 439
	PropBacnetIPv6MulticastAddress       PropertyIdentifier = 440
	PropIpv6DNSServer                    PropertyIdentifier = 441
	PropIpv6AutoAddressingEnabled        PropertyIdentifier = 442
	PropIpv6DHCPLeaseTime                PropertyIdentifier = 443
	PropIpv6DHCPLeaseTimeRemaining       PropertyIdentifier = 444
	PropIpv6DHCPServer                   PropertyIdentifier = 445
	PropIpv6ZoneIndex                    PropertyIdentifier = 446
	PropAssignedLandingCalls             PropertyIdentifier = 447
	PropCarAssignedDirection             PropertyIdentifier = 448
	PropCarDoorCommand                   PropertyIdentifier = 449
	PropCarDoorStatus                    PropertyIdentifier = 450
	PropCarDoorText                      PropertyIdentifier = 451
	PropCarDoorZone                      PropertyIdentifier = 452
	PropCarDriveStatus                   PropertyIdentifier = 453
	PropCarLoad                          PropertyIdentifier = 454
	PropCarLoadUnits                     PropertyIdentifier = 455
	PropCarMode                          PropertyIdentifier = 456
	PropCarMovingDirection               PropertyIdentifier = 457
	PropCarPosition                      PropertyIdentifier = 458
	PropElevatorGroup                    PropertyIdentifier = 459
	PropEnergyMeter                      PropertyIdentifier = 460
	PropEnergyMeterRef                   PropertyIdentifier = 461
	PropEscalatorMode                    PropertyIdentifier = 462
	PropFaultSignals                     PropertyIdentifier = 463
	PropFloorText                        PropertyIdentifier = 464
	PropGroupID                          PropertyIdentifier = 465
	PropGroupMode                        PropertyIdentifier = 467
	PropHigherDeck                       PropertyIdentifier = 468
	PropInstallationID                   PropertyIdentifier = 469
	PropLandingCalls                     PropertyIdentifier = 470
	PropLandingCallControl               PropertyIdentifier = 471
	PropLandingDoorStatus                PropertyIdentifier = 472
	PropLowerDeck                        PropertyIdentifier = 473
	PropMachineRoomID                    PropertyIdentifier = 474
	PropMakingCarCall                    PropertyIdentifier = 475
	PropNextStoppingFloor                PropertyIdentifier = 476
	PropOperationDirection               PropertyIdentifier = 477
	PropPassengerAlarm                   PropertyIdentifier = 478
	PropPowerMode                        PropertyIdentifier = 479
	PropRegisteredCarCall                PropertyIdentifier = 480
	PropActiveCovMultipleSubscriptions   PropertyIdentifier = 481
	PropProtocolLevel                    PropertyIdentifier = 482
	PropReferencePort                    PropertyIdentifier = 483
	PropDeployedProfileLocation          PropertyIdentifier = 484
	PropProfileLocation                  PropertyIdentifier = 485
	PropTags                             PropertyIdentifier = 486
	PropSubordinateNodeTypes             PropertyIdentifier = 487
	PropSubordinateTags                  PropertyIdentifier = 488
	PropSubordinateRelationships         PropertyIdentifier = 489
	PropDefaultSubordinateRelationship   PropertyIdentifier = 490
	PropRepresents                       PropertyIdentifier = 491
	PropDefaultPresentValue              PropertyIdentifier = 492
	PropPresentStage                     PropertyIdentifier = 493
	PropStages                           PropertyIdentifier = 494
	PropStageNames                       PropertyIdentifier = 495
	PropTargetReferences                 PropertyIdentifier = 496
	PropAuditSourceReporter              PropertyIdentifier = 497
	PropAuditLevel                       PropertyIdentifier = 498
	PropAuditNotificationRecipient       PropertyIdentifier = 499
	PropAuditPriorityFilter              PropertyIdentifier = 500
	PropAuditableOperations              PropertyIdentifier = 501
	PropDeleteOnForward                  PropertyIdentifier = 502
	PropMaximumSendDelay                 PropertyIdentifier = 503
	PropMonitoredObjects                 PropertyIdentifier = 504
	PropSendNow                          PropertyIdentifier = 505
	PropFloorNumber                      PropertyIdentifier = 506
	PropDeviceUUID                       PropertyIdentifier = 507
)

var propertyEnum = NewEnum("PropertyIdentifier", map[PropertyIdentifier]string{
	PropAckedTransitions:                 "ackedTransitions",
	PropAckRequired:                      "ackRequired",
	PropAction:                           "action",
	PropActionText:                       "actionText",
	PropActiveText:                       "activeText",
	PropActiveVtSessions:                 "activeVtSessions",
	PropAlarmValue:                       "alarmValue",
	PropAlarmValues:                      "alarmValues",
	PropAll:                              "all",
	PropAllWritesSuccessful:              "allWritesSuccessful",
	PropApduSegmentTimeout:               "apduSegmentTimeout",
	PropApduTimeout:                      "apduTimeout",
	PropApplicationSoftwareVersion:       "applicationSoftwareVersion",
	PropArchive:                          "archive",
	PropBias:                             "bias",
	PropChangeOfStateCount:               "changeOfStateCount",
	PropChangeOfStateTime:                "changeOfStateTime",
	PropNotificationClass:                "notificationClass",
	PropControlledVariableReference:      "controlledVariableReference",
	PropControlledVariableUnits:          "controlledVariableUnits",
	PropControlledVariableValue:          "controlledVariableValue",
	PropCovIncrement:                     "covIncrement",
	PropDateList:                         "dateList",
	PropDaylightSavingsStatus:            "daylightSavingsStatus",
	PropDeadband:                         "deadband",
	PropDerivativeConstant:               "derivativeConstant",
	PropDerivativeConstantUnits:          "derivativeConstantUnits",
	PropDescription:                      "description",
	PropDescriptionOfHalt:                "descriptionOfHalt",
	PropDeviceAddressBinding:             "deviceAddressBinding",
	PropDeviceType:                       "deviceType",
	PropEffectivePeriod:                  "effectivePeriod",
	PropElapsedActiveTime:                "elapsedActiveTime",
	PropErrorLimit:                       "errorLimit",
	PropEventEnable:                      "eventEnable",
	PropEventState:                       "eventState",
	PropEventType:                        "eventType",
	PropExceptionSchedule:                "exceptionSchedule",
	PropFaultValues:                      "faultValues",
	PropFeedbackValue:                    "feedbackValue",
	PropFileAccessMethod:                 "fileAccessMethod",
	PropFileSize:                         "fileSize",
	PropFileType:                         "fileType",
	PropFirmwareRevision:                 "firmwareRevision",
	PropHighLimit:                        "highLimit",
	PropInactiveText:                     "inactiveText",
	PropInProcess:                        "inProcess",
	PropInstanceOf:                       "instanceOf",
	PropIntegralConstant:                 "integralConstant",
	PropIntegralConstantUnits:            "integralConstantUnits",
	PropIssueConfirmedNotifications:      "issueConfirmedNotifications",
	PropLimitEnable:                      "limitEnable",
	PropListOfGroupMembers:               "listOfGroupMembers",
	PropListOfObjectPropertyReferences:   "listOfObjectPropertyReferences",
	PropListOfSessionKeys:                "listOfSessionKeys",
	PropLocalDate:                        "localDate",
	PropLocalTime:                        "localTime",
	PropLocation:                         "location",
	PropLowLimit:                         "lowLimit",
	PropManipulatedVariableReference:     "manipulatedVariableReference",
	PropMaximumOutput:                    "maximumOutput",
	PropMaxApduLengthAccepted:            "maxApduLengthAccepted",
	PropMaxInfoFrames:                    "maxInfoFrames",
	PropMaxMaster:                        "maxMaster",
	PropMaxPresValue:                     "maxPresValue",
	PropMinimumOffTime:                   "minimumOffTime",
	PropMinimumOnTime:                    "minimumOnTime",
	PropMinimumOutput:                    "minimumOutput",
	PropMinPresValue:                     "minPresValue",
	PropModelName:                        "modelName",
	PropModificationDate:                 "modificationDate",
	PropNotifyType:                       "notifyType",
	PropNumberOfApduRetries:              "numberOfApduRetries",
	PropNumberOfStates:                   "numberOfStates",
	PropObjectIdentifier:                 "objectIdentifier",
	PropObjectList:                       "objectList",
	PropObjectName:                       "objectName",
	PropObjectPropertyReference:          "objectPropertyReference",
	PropObjectType:                       "objectType",
	PropOptional:                         "optional",
	PropOutOfService:                     "outOfService",
	PropOutputUnits:                      "outputUnits",
	PropEventParameters:                  "eventParameters",
	PropPolarity:                         "polarity",
	PropPresentValue:                     "presentValue",
	PropPriority:                         "priority",
	PropPriorityArray:                    "priorityArray",
	PropPriorityForWriting:               "priorityForWriting",
	PropProcessIdentifier:                "processIdentifier",
	PropProgramChange:                    "programChange",
	PropProgramLocation:                  "programLocation",
	PropProgramState:                     "programState",
	PropProportionalConstant:             "proportionalConstant",
	PropProportionalConstantUnits:        "proportionalConstantUnits",
	PropProtocolObjectTypesSupported:     "protocolObjectTypesSupported",
	PropProtocolServicesSupported:        "protocolServicesSupported",
	PropProtocolVersion:                  "protocolVersion",
	PropReadOnly:                         "readOnly",
	PropReasonForHalt:                    "reasonForHalt",
	PropRecipientList:                    "recipientList",
	PropReliability:                      "reliability",
	PropRelinquishDefault:                "relinquishDefault",
	PropRequired:                         "required",
	PropResolution:                       "resolution",
	PropSegmentationSupported:            "segmentationSupported",
	PropSetpoint:                         "setpoint",
	PropSetpointReference:                "setpointReference",
	PropStateText:                        "stateText",
	PropStatusFlags:                      "statusFlags",
	PropSystemStatus:                     "systemStatus",
	PropTimeDelay:                        "timeDelay",
	PropTimeOfActiveTimeReset:            "timeOfActiveTimeReset",
	PropTimeOfStateCountReset:            "timeOfStateCountReset",
	PropTimeSynchronizationRecipients:    "timeSynchronizationRecipients",
	PropUnits:                            "units",
	PropUpdateInterval:                   "updateInterval",
	PropUtcOffset:                        "utcOffset",
	PropVendorIdentifier:                 "vendorIdentifier",
	PropVendorName:                       "vendorName",
	PropVtClassesSupported:               "vtClassesSupported",
	PropWeeklySchedule:                   "weeklySchedule",
	PropAttemptedSamples:                 "attemptedSamples",
	PropAverageValue:                     "averageValue",
	PropBufferSize:                       "bufferSize",
	PropClientCovIncrement:               "clientCovIncrement",
	PropCovResubscriptionInterval:        "covResubscriptionInterval",
	PropEventTimeStamps:                  "eventTimeStamps",
	PropLogBuffer:                        "logBuffer",
	PropLogDeviceObjectProperty:          "logDeviceObjectProperty",
	PropEnable:                           "enable",
	PropLogInterval:                      "logInterval",
	PropMaximumValue:                     "maximumValue",
	PropMinimumValue:                     "minimumValue",
	PropNotificationThreshold:            "notificationThreshold",
	PropProtocolRevision:                 "protocolRevision",
	PropRecordsSinceNotification:         "recordsSinceNotification",
	PropRecordCount:                      "recordCount",
	PropStartTime:                        "startTime",
	PropStopTime:                         "stopTime",
	PropStopWhenFull:                     "stopWhenFull",
	PropTotalRecordCount:                 "totalRecordCount",
	PropValidSamples:                     "validSamples",
	PropWindowInterval:                   "windowInterval",
	PropWindowSamples:                    "windowSamples",
	PropMaximumValueTimestamp:            "maximumValueTimestamp",
	PropMinimumValueTimestamp:            "minimumValueTimestamp",
	PropVarianceValue:                    "varianceValue",
	PropActiveCovSubscriptions:           "activeCovSubscriptions",
	PropBackupFailureTimeout:             "backupFailureTimeout",
	PropConfigurationFiles:               "configurationFiles",
	PropDatabaseRevision:                 "databaseRevision",
	PropDirectReading:                    "directReading",
	PropLastRestoreTime:                  "lastRestoreTime",
	PropMaintenanceRequired:              "maintenanceRequired",
	PropMemberOf:                         "memberOf",
	PropMode:                             "mode",
	PropOperationExpected:                "operationExpected",
	PropSetting:                          "setting",
	PropSilenced:                         "silenced",
	PropTrackingValue:                    "trackingValue",
	PropZoneMembers:                      "zoneMembers",
	PropLifeSafetyAlarmValues:            "lifeSafetyAlarmValues",
	PropMaxSegmentsAccepted:              "maxSegmentsAccepted",
	PropProfileName:                      "profileName",
	PropAutoSlaveDiscovery:               "autoSlaveDiscovery",
	PropManualSlaveAddressBinding:        "manualSlaveAddressBinding",
	PropSlaveAddressBinding:              "slaveAddressBinding",
	PropSlaveProxyEnable:                 "slaveProxyEnable",
	PropLastNotifyRecord:                 "lastNotifyRecord",
	PropScheduleDefault:                  "scheduleDefault",
	PropAcceptedModes:                    "acceptedModes",
	PropAdjustValue:                      "adjustValue",
	PropCount:                            "count",
	PropCountBeforeChange:                "countBeforeChange",
	PropCountChangeTime:                  "countChangeTime",
	PropCovPeriod:                        "covPeriod",
	PropInputReference:                   "inputReference",
	PropLimitMonitoringInterval:          "limitMonitoringInterval",
	PropLoggingObject:                    "loggingObject",
	PropLoggingRecord:                    "loggingRecord",
	PropPrescale:                         "prescale",
	PropPulseRate:                        "pulseRate",
	PropScale:                            "scale",
	PropScaleFactor:                      "scaleFactor",
	PropUpdateTime:                       "updateTime",
	PropValueBeforeChange:                "valueBeforeChange",
	PropValueSet:                         "valueSet",
	PropValueChangeTime:                  "valueChangeTime",
	PropAlignIntervals:                   "alignIntervals",
	PropIntervalOffset:                   "intervalOffset",
	PropLastRestartReason:                "lastRestartReason",
	PropLoggingType:                      "loggingType",
	PropRestartNotificationRecipients:    "restartNotificationRecipients",
	PropTimeOfDeviceRestart:              "timeOfDeviceRestart",
	PropTimeSynchronizationInterval:      "timeSynchronizationInterval",
	PropTrigger:                          "trigger",
	PropUtcTimeSynchronizationRecipients: "utcTimeSynchronizationRecipients",
	PropNodeSubtype:                      "nodeSubtype",
	PropNodeType:                         "nodeType",
	PropStructuredObjectList:             "structuredObjectList",
	PropSubordinateAnnotations:           "subordinateAnnotations",
	PropSubordinateList:                  "subordinateList",
	PropActualShedLevel:                  "actualShedLevel",
	PropDutyWindow:                       "dutyWindow",
	PropExpectedShedLevel:                "expectedShedLevel",
	PropFullDutyBaseline:                 "fullDutyBaseline",
	PropRequestedShedLevel:               "requestedShedLevel",
	PropShedDuration:                     "shedDuration",
	PropShedLevelDescriptions:            "shedLevelDescriptions",
	PropShedLevels:                       "shedLevels",
	PropStateDescription:                 "stateDescription",
	PropDoorAlarmState:                   "doorAlarmState",
	PropDoorExtendedPulseTime:            "doorExtendedPulseTime",
	PropDoorMembers:                      "doorMembers",
	PropDoorOpenTooLongTime:              "doorOpenTooLongTime",
	PropDoorPulseTime:                    "doorPulseTime",
	PropDoorStatus:                       "doorStatus",
	PropDoorUnlockDelayTime:              "doorUnlockDelayTime",
	PropLockStatus:                       "lockStatus",
	PropMaskedAlarmValues:                "maskedAlarmValues",
	PropSecuredStatus:                    "securedStatus",
	PropAbsenteeLimit:                    "absenteeLimit",
	PropAccessAlarmEvents:                "accessAlarmEvents",
	PropAccessDoors:                      "accessDoors",
	PropAccessEvent:                      "accessEvent",
	PropAccessEventAuthenticationFactor:  "accessEventAuthenticationFactor",
	PropAccessEventCredential:            "accessEventCredential",
	PropAccessEventTime:                  "accessEventTime",
	PropAccessTransactionEvents:          "accessTransactionEvents",
	PropAccompaniment:                    "accompaniment",
	PropAccompanimentTime:                "accompanimentTime",
	PropActivationTime:                   "activationTime",
	PropActiveAuthenticationPolicy:       "activeAuthenticationPolicy",
	PropAssignedAccessRights:             "assignedAccessRights",
	PropAuthenticationFactors:            "authenticationFactors",
	PropAuthenticationPolicyList:         "authenticationPolicyList",
	PropAuthenticationPolicyNames:        "authenticationPolicyNames",
	PropAuthenticationStatus:             "authenticationStatus",
	PropAuthorizationMode:                "authorizationMode",
	PropBelongsTo:                        "belongsTo",
	PropCredentialDisable:                "credentialDisable",
	PropCredentialStatus:                 "credentialStatus",
	PropCredentials:                      "credentials",
	PropCredentialsInZone:                "credentialsInZone",
	PropDaysRemaining:                    "daysRemaining",
	PropEntryPoints:                      "entryPoints",
	PropExitPoints:                       "exitPoints",
	PropExpirationTime:                   "expirationTime",
	PropExtendedTimeEnable:               "extendedTimeEnable",
	PropFailedAttemptEvents:              "failedAttemptEvents",
	PropFailedAttempts:                   "failedAttempts",
	PropFailedAttemptsTime:               "failedAttemptsTime",
	PropLastAccessEvent:                  "lastAccessEvent",
	PropLastAccessPoint:                  "lastAccessPoint",
	PropLastCredentialAdded:              "lastCredentialAdded",
	PropLastCredentialAddedTime:          "lastCredentialAddedTime",
	PropLastCredentialRemoved:            "lastCredentialRemoved",
	PropLastCredentialRemovedTime:        "lastCredentialRemovedTime",
	PropLastUseTime:                      "lastUseTime",
	PropLockout:                          "lockout",
	PropLockoutRelinquishTime:            "lockoutRelinquishTime",
	PropMasterExemption:                  "masterExemption",
	PropMaxFailedAttempts:                "maxFailedAttempts",
	PropMembers:                          "members",
	PropMusterPoint:                      "musterPoint",
	PropNegativeAccessRules:              "negativeAccessRules",
	PropNumberOfAuthenticationPolicies:   "numberOfAuthenticationPolicies",
	PropOccupancyCount:                   "occupancyCount",
	PropOccupancyCountAdjust:             "occupancyCountAdjust",
	PropOccupancyCountEnable:             "occupancyCountEnable",
	PropOccupancyExemption:               "occupancyExemption",
	PropOccupancyLowerLimit:              "occupancyLowerLimit",
	PropOccupancyLowerLimitEnforced:      "occupancyLowerLimitEnforced",
	PropOccupancyState:                   "occupancyState",
	PropOccupancyUpperLimit:              "occupancyUpperLimit",
	PropOccupancyUpperLimitEnforced:      "occupancyUpperLimitEnforced",
	PropPassbackExemption:                "passbackExemption",
	PropPassbackMode:                     "passbackMode",
	PropPassbackTimeout:                  "passbackTimeout",
	PropPositiveAccessRules:              "positiveAccessRules",
	PropReasonForDisable:                 "reasonForDisable",
	PropSupportedFormats:                 "supportedFormats",
	PropSupportedFormatClasses:           "supportedFormatClasses",
	PropThreatAuthority:                  "threatAuthority",
	PropThreatLevel:                      "threatLevel",
	PropTraceFlag:                        "traceFlag",
	PropTransactionNotificationClass:     "transactionNotificationClass",
	PropUserExternalIdentifier:           "userExternalIdentifier",
	PropUserInformationReference:         "userInformationReference",
	PropUserName:                         "userName",
	PropUserType:                         "userType",
	PropUsesRemaining:                    "usesRemaining",
	PropZoneFrom:                         "zoneFrom",
	PropZoneTo:                           "zoneTo",
	PropAccessEventTag:                   "accessEventTag",
	PropGlobalIdentifier:                 "globalIdentifier",
	PropVerificationTime:                 "verificationTime",
	PropBaseDeviceSecurityPolicy:         "baseDeviceSecurityPolicy",
	PropDistributionKeyRevision:          "distributionKeyRevision",
	PropDoNotHide:                        "doNotHide",
	PropKeySets:                          "keySets",
	PropLastKeyServer:                    "lastKeyServer",
	PropNetworkAccessSecurityPolicies:    "networkAccessSecurityPolicies",
	PropPacketReorderTime:                "packetReorderTime",
	PropSecurityPDUTimeout:               "securityPDUTimeout",
	PropSecurityTimeWindow:               "securityTimeWindow",
	PropSupportedSecurityAlgorithms:      "supportedSecurityAlgorithms",
	PropUpdateKeySetTimeout:              "updateKeySetTimeout",
	PropBackupAndRestoreState:            "backupAndRestoreState",
	PropBackupPreparationTime:            "backupPreparationTime",
	PropRestoreCompletionTime:            "restoreCompletionTime",
	PropRestorePreparationTime:           "restorePreparationTime",
	PropBitMask:                          "bitMask",
	PropBitText:                          "bitText",
	PropIsUTC:                            "isUTC",
	PropGroupMembers:                     "groupMembers",
	PropGroupMemberNames:                 "groupMemberNames",
	PropMemberStatusFlags:                "memberStatusFlags",
	PropRequestedUpdateInterval:          "requestedUpdateInterval",
	PropCovuPeriod:                       "covuPeriod",
	PropCovuRecipients:                   "covuRecipients",
	PropEventMessageTexts:                "eventMessageTexts",
	PropEventMessageTextsConfig:          "eventMessageTextsConfig",
	PropEventDetectionEnable:             "eventDetectionEnable",
	PropEventAlgorithmInhibit:            "eventAlgorithmInhibit",
	PropEventAlgorithmInhibitRef:         "eventAlgorithmInhibitRef",
	PropTimeDelayNormal:                  "timeDelayNormal",
	PropReliabilityEvaluationInhibit:     "reliabilityEvaluationInhibit",
	PropFaultParameters:                  "faultParameters",
	PropFaultType:                        "faultType",
	PropLocalForwardingOnly:              "localForwardingOnly",
	PropProcessIdentifierFilter:          "processIdentifierFilter",
	PropSubscribedRecipients:             "subscribedRecipients",
	PropPortFilter:                       "portFilter",
	PropAuthorizationExemptions:          "authorizationExemptions",
	PropAllowGroupDelayInhibit:           "allowGroupDelayInhibit",
	PropChannelNumber:                    "channelNumber",
	PropControlGroups:                    "controlGroups",
	PropExecutionDelay:                   "executionDelay",
	PropLastPriority:                     "lastPriority",
	PropWriteStatus:                      "writeStatus",
	PropPropertyList:                     "propertyList",
	PropSerialNumber:                     "serialNumber",
	PropBlinkWarnEnable:                  "blinkWarnEnable",
	PropDefaultFadeTime:                  "defaultFadeTime",
	PropDefaultRampRate:                  "defaultRampRate",
	PropDefaultStepIncrement:             "defaultStepIncrement",
	PropEgressTime:                       "egressTime",
	PropInProgress:                       "inProgress",
	PropInstantaneousPower:               "instantaneousPower",
	PropLightingCommand:                  "lightingCommand",
	PropLightingCommandDefaultPriority:   "lightingCommandDefaultPriority",
	PropMaxActualValue:                   "maxActualValue",
	PropMinActualValue:                   "minActualValue",
	PropPower:                            "power",
	PropTransition:                       "transition",
	PropEgressActive:                     "egressActive",
	PropInterfaceValue:                   "interfaceValue",
	PropFaultHighLimit:                   "faultHighLimit",
	PropFaultLowLimit:                    "faultLowLimit",
	PropLowDiffLimit:                     "lowDiffLimit",
	PropStrikeCount:                      "strikeCount",
	PropTimeOfStrikeCountReset:           "timeOfStrikeCountReset",
	PropDefaultTimeout:                   "defaultTimeout",
	PropInitialTimeout:                   "initialTimeout",
	PropLastStateChange:                  "lastStateChange",
	PropStateChangeValues:                "stateChangeValues",
	PropTimerRunning:                     "timerRunning",
	PropTimerState:                       "timerState",
	PropApduLength:                       "apduLength",
	PropIpAddress:                        "ipAddress",
	PropIpDefaultGateway:                 "ipDefaultGateway",
	PropIpDHCPEnable:                     "ipDHCPEnable",
	PropIpDHCPLeaseTime:                  "ipDHCPLeaseTime",
	PropIpDHCPLeaseTimeRemaining:         "ipDHCPLeaseTimeRemaining",
	PropIpDHCPServer:                     "ipDHCPServer",
	PropIpDNSServer:                      "ipDNSServer",
	PropBacnetIPGlobalAddress:            "bacnetIPGlobalAddress",
	PropBacnetIPMode:                     "bacnetIPMode",
	PropBacnetIPMulticastAddress:         "bacnetIPMulticastAddress",
	PropBacnetIPNATTraversal:             "bacnetIPNATTraversal",
	PropIpSubnetMask:                     "ipSubnetMask",
	PropBacnetIPUDPPort:                  "bacnetIPUDPPort",
	PropBbmdAcceptFDRegistrations:        "bbmdAcceptFDRegistrations",
	PropBbmdBroadcastDistributionTable:   "bbmdBroadcastDistributionTable",
	PropBbmdForeignDeviceTable:           "bbmdForeignDeviceTable",
	PropChangesPending:                   "changesPending",
	PropCommand:                          "command",
	PropFdBBMDAddress:                    "fdBBMDAddress",
	PropFdSubscriptionLifetime:           "fdSubscriptionLifetime",
	PropLinkSpeed:                        "linkSpeed",
	PropLinkSpeeds:                       "linkSpeeds",
	PropLinkSpeedAutonegotiate:           "linkSpeedAutonegotiate",
	PropMacAddress:                       "macAddress",
	PropNetworkInterfaceName:             "networkInterfaceName",
	PropNetworkNumber:                    "networkNumber",
	PropNetworkNumberQuality:             "networkNumberQuality",
	PropNetworkType:                      "networkType",
	PropRoutingTable:                     "routingTable",
	PropVirtualMACAddressTable:           "virtualMACAddressTable",
	PropCommandTimeArray:                 "commandTimeArray",
	PropCurrentCommandPriority:           "currentCommandPriority",
	PropLastCommandTime:                  "lastCommandTime",
	PropValueSource:                      "valueSource",
	PropValueSourceArray:                 "valueSourceArray",
	PropBacnetIPv6Mode:                   "bacnetIPv6Mode",
	PropIpv6Address:                      "ipv6Address",
	PropIpv6PrefixLength:                 "ipv6PrefixLength",
	PropBacnetIPv6UDPPort:                "bacnetIPv6UDPPort",
	PropIpv6DefaultGateway:               "ipv6DefaultGateway",
	PropBacnetIPv6MulticastAddress:       "bacnetIPv6MulticastAddress",
	PropIpv6DNSServer:                    "ipv6DNSServer",
	PropIpv6AutoAddressingEnabled:        "ipv6AutoAddressingEnabled",
	PropIpv6DHCPLeaseTime:                "ipv6DHCPLeaseTime",
	PropIpv6DHCPLeaseTimeRemaining:       "ipv6DHCPLeaseTimeRemaining",
	PropIpv6DHCPServer:                   "ipv6DHCPServer",
	PropIpv6ZoneIndex:                    "ipv6ZoneIndex",
	PropAssignedLandingCalls:             "assignedLandingCalls",
	PropCarAssignedDirection:             "carAssignedDirection",
	PropCarDoorCommand:                   "carDoorCommand",
	PropCarDoorStatus:                    "carDoorStatus",
	PropCarDoorText:                      "carDoorText",
	PropCarDoorZone:                      "carDoorZone",
	PropCarDriveStatus:                   "carDriveStatus",
	PropCarLoad:                          "carLoad",
	PropCarLoadUnits:                     "carLoadUnits",
	PropCarMode:                          "carMode",
	PropCarMovingDirection:               "carMovingDirection",
	PropCarPosition:                      "carPosition",
	PropElevatorGroup:                    "elevatorGroup",
	PropEnergyMeter:                      "energyMeter",
	PropEnergyMeterRef:                   "energyMeterRef",
	PropEscalatorMode:                    "escalatorMode",
	PropFaultSignals:                     "faultSignals",
	PropFloorText:                        "floorText",
	PropGroupID:                          "groupID",
	PropGroupMode:                        "groupMode",
	PropHigherDeck:                       "higherDeck",
	PropInstallationID:                   "installationID",
	PropLandingCalls:                     "landingCalls",
	PropLandingCallControl:               "landingCallControl",
	PropLandingDoorStatus:                "landingDoorStatus",
	PropLowerDeck:                        "lowerDeck",
	PropMachineRoomID:                    "machineRoomID",
	PropMakingCarCall:                    "makingCarCall",
	PropNextStoppingFloor:                "nextStoppingFloor",
	PropOperationDirection:               "operationDirection",
	PropPassengerAlarm:                   "passengerAlarm",
	PropPowerMode:                        "powerMode",
	PropRegisteredCarCall:                "registeredCarCall",
	PropActiveCovMultipleSubscriptions:   "activeCovMultipleSubscriptions",
	PropProtocolLevel:                    "protocolLevel",
	PropReferencePort:                    "referencePort",
	PropDeployedProfileLocation:          "deployedProfileLocation",
	PropProfileLocation:                  "profileLocation",
	PropTags:                             "tags",
	PropSubordinateNodeTypes:             "subordinateNodeTypes",
	PropSubordinateTags:                  "subordinateTags",
	PropSubordinateRelationships:         "subordinateRelationships",
	PropDefaultSubordinateRelationship:   "defaultSubordinateRelationship",
	PropRepresents:                       "represents",
	PropDefaultPresentValue:              "defaultPresentValue",
	PropPresentStage:                     "presentStage",
	PropStages:                           "stages",
	PropStageNames:                       "stageNames",
	PropTargetReferences:                 "targetReferences",
	PropAuditSourceReporter:              "auditSourceReporter",
	PropAuditLevel:                       "auditLevel",
	PropAuditNotificationRecipient:       "auditNotificationRecipient",
	PropAuditPriorityFilter:              "auditPriorityFilter",
	PropAuditableOperations:              "auditableOperations",
	PropDeleteOnForward:                  "deleteOnForward",
	PropMaximumSendDelay:                 "maximumSendDelay",
	PropMonitoredObjects:                 "monitoredObjects",
	PropSendNow:                          "sendNow",
	PropFloorNumber:                      "floorNumber",
	PropDeviceUUID:                       "deviceUUID",
})

// PropertyIdentifierType is the Type of the property-identifier enumeration.
var PropertyIdentifierType Type = primType{propertyEnum}

// Properties is the enumeration descriptor for name and number lookup.
var Properties = propertyEnum

// String returns the hyphenated constant name, or the decimal code for
// unnamed values.
func (p PropertyIdentifier) String() string {
	return KebabOf(propertyEnum.NameOf(p))
}
