package btype

// EngineeringUnits is the measurement-unit enumeration. Codes 0..255 are
// reserved by ASHRAE; the vendor range extends beyond. Unnamed codes still
// encode, decode and print numerically.
type EngineeringUnits uint32

// Engineering Units
const (
	UnitsSquareMeters                    EngineeringUnits = 0
	UnitsSquareFeet                      EngineeringUnits = 1
	UnitsMilliamperes                    EngineeringUnits = 2
	UnitsAmperes                         EngineeringUnits = 3
	UnitsOhms                            EngineeringUnits = 4
	UnitsVolts                           EngineeringUnits = 5
	UnitsKilovolts                       EngineeringUnits = 6
	UnitsMegavolts                       EngineeringUnits = 7
	UnitsVoltAmperes                     EngineeringUnits = 8
	UnitsKilovoltAmperes                 EngineeringUnits = 9
	UnitsMegavoltAmperes                 EngineeringUnits = 10
	UnitsVoltAmperesReactive             EngineeringUnits = 11
	UnitsKilovoltAmperesReactive         EngineeringUnits = 12
	UnitsMegavoltAmperesReactive         EngineeringUnits = 13
	UnitsDegreesPhase                    EngineeringUnits = 14
	UnitsPowerFactor                     EngineeringUnits = 15
	UnitsJoules                          EngineeringUnits = 16
	UnitsKilojoules                      EngineeringUnits = 17
	UnitsWattHours                       EngineeringUnits = 18
	UnitsKilowattHours                   EngineeringUnits = 19
	UnitsBtus                            EngineeringUnits = 20
	UnitsTherms                          EngineeringUnits = 21
	UnitsTonHours                        EngineeringUnits = 22
	UnitsJoulesPerKilogramDryAir         EngineeringUnits = 23
	UnitsBtusPerPoundDryAir              EngineeringUnits = 24
	UnitsCyclesPerHour                   EngineeringUnits = 25
	UnitsCyclesPerMinute                 EngineeringUnits = 26
	UnitsHertz                           EngineeringUnits = 27
	UnitsGramsOfWaterPerKilogramDryAir   EngineeringUnits = 28
	UnitsPercentRelativeHumidity         EngineeringUnits = 29
	UnitsMillimeters                     EngineeringUnits = 30
	UnitsMeters                          EngineeringUnits = 31
	UnitsInches                          EngineeringUnits = 32
	UnitsFeet                            EngineeringUnits = 33
	UnitsWattsPerSquareFoot              EngineeringUnits = 34
	UnitsWattsPerSquareMeter             EngineeringUnits = 35
	UnitsLumens                          EngineeringUnits = 36
	UnitsLuxes                           EngineeringUnits = 37
	UnitsFootCandles                     EngineeringUnits = 38
	UnitsKilograms                       EngineeringUnits = 39
	UnitsPoundsMass                      EngineeringUnits = 40
	UnitsTons                            EngineeringUnits = 41
	UnitsKilogramsPerSecond              EngineeringUnits = 42
	UnitsKilogramsPerMinute              EngineeringUnits = 43
	UnitsKilogramsPerHour                EngineeringUnits = 44
	UnitsPoundsMassPerMinute             EngineeringUnits = 45
	UnitsPoundsMassPerHour               EngineeringUnits = 46
	UnitsWatts                           EngineeringUnits = 47
	UnitsKilowatts                       EngineeringUnits = 48
	UnitsMegawatts                       EngineeringUnits = 49
	UnitsBtusPerHour                     EngineeringUnits = 50
	UnitsHorsepower                      EngineeringUnits = 51
	UnitsTonsRefrigeration               EngineeringUnits = 52
	UnitsPascals                         EngineeringUnits = 53
	UnitsKilopascals                     EngineeringUnits = 54
	UnitsBars                            EngineeringUnits = 55
	UnitsPoundsForcePerSquareInch        EngineeringUnits = 56
	UnitsCentimetersOfWater              EngineeringUnits = 57
	UnitsInchesOfWater                   EngineeringUnits = 58
	UnitsMillimetersOfMercury            EngineeringUnits = 59
	UnitsCentimetersOfMercury            EngineeringUnits = 60
	UnitsInchesOfMercury                 EngineeringUnits = 61
	UnitsDegreesCelsius                  EngineeringUnits = 62
	UnitsDegreesKelvin                   EngineeringUnits = 63
	UnitsDegreesFahrenheit               EngineeringUnits = 64
	UnitsDegreeDaysCelsius               EngineeringUnits = 65
	UnitsDegreeDaysFahrenheit            EngineeringUnits = 66
	UnitsYears                           EngineeringUnits = 67
	UnitsMonths                          EngineeringUnits = 68
	UnitsWeeks                           EngineeringUnits = 69
	UnitsDays                            EngineeringUnits = 70
	UnitsHours                           EngineeringUnits = 71
	UnitsMinutes                         EngineeringUnits = 72
	UnitsSeconds                         EngineeringUnits = 73
	UnitsMetersPerSecond                 EngineeringUnits = 74
	UnitsKilometersPerHour               EngineeringUnits = 75
	UnitsFeetPerSecond                   EngineeringUnits = 76
	UnitsFeetPerMinute                   EngineeringUnits = 77
	UnitsMilesPerHour                    EngineeringUnits = 78
	UnitsCubicFeet                       EngineeringUnits = 79
	UnitsCubicMeters                     EngineeringUnits = 80
	UnitsImperialGallons                 EngineeringUnits = 81
	UnitsLiters                          EngineeringUnits = 82
	UnitsUsGallons                       EngineeringUnits = 83
	UnitsCubicFeetPerMinute              EngineeringUnits = 84
	UnitsCubicMetersPerSecond            EngineeringUnits = 85
	UnitsImperialGallonsPerMinute        EngineeringUnits = 86
	UnitsLitersPerSecond                 EngineeringUnits = 87
	UnitsLitersPerMinute                 EngineeringUnits = 88
	UnitsUsGallonsPerMinute              EngineeringUnits = 89
	UnitsDegreesAngular                  EngineeringUnits = 90
	UnitsDegreesCelsiusPerHour           EngineeringUnits = 91
	UnitsDegreesCelsiusPerMinute         EngineeringUnits = 92
	UnitsDegreesFahrenheitPerHour        EngineeringUnits = 93
	UnitsDegreesFahrenheitPerMinute      EngineeringUnits = 94
	UnitsNoUnits                         EngineeringUnits = 95
	UnitsPartsPerMillion                 EngineeringUnits = 96
	UnitsPartsPerBillion                 EngineeringUnits = 97
	UnitsPercent                         EngineeringUnits = 98
	UnitsPercentPerSecond                EngineeringUnits = 99
	UnitsPerMinute                       EngineeringUnits = 100
	UnitsPerSecond                       EngineeringUnits = 101
	UnitsPsiPerDegreeFahrenheit          EngineeringUnits = 102
	UnitsRadians                         EngineeringUnits = 103
	UnitsRevolutionsPerMinute            EngineeringUnits = 104
	UnitsCurrency1                       EngineeringUnits = 105
	UnitsCurrency2                       EngineeringUnits = 106
	UnitsCurrency3                       EngineeringUnits = 107
	UnitsCurrency4                       EngineeringUnits = 108
	UnitsCurrency5                       EngineeringUnits = 109
	UnitsCurrency6                       EngineeringUnits = 110
	UnitsCurrency7                       EngineeringUnits = 111
	UnitsCurrency8                       EngineeringUnits = 112
	UnitsCurrency9                       EngineeringUnits = 113
	UnitsCurrency10                      EngineeringUnits = 114
	UnitsSquareInches                    EngineeringUnits = 115
	UnitsSquareCentimeters               EngineeringUnits = 116
	UnitsBtusPerPound                    EngineeringUnits = 117
	UnitsCentimeters                     EngineeringUnits = 118
	UnitsPoundsMassPerSecond             EngineeringUnits = 119
	UnitsDeltaDegreesFahrenheit          EngineeringUnits = 120
	UnitsDeltaDegreesKelvin              EngineeringUnits = 121
	UnitsKilohms                         EngineeringUnits = 122
	UnitsMegohms                         EngineeringUnits = 123
	UnitsMillivolts                      EngineeringUnits = 124
	UnitsKilojoulesPerKilogram           EngineeringUnits = 125
	UnitsMegajoules                      EngineeringUnits = 126
	UnitsJoulesPerDegreeKelvin           EngineeringUnits = 127
	UnitsJoulesPerKilogramDegreeKelvin   EngineeringUnits = 128
	UnitsKilohertz                       EngineeringUnits = 129
	UnitsMegahertz                       EngineeringUnits = 130
	UnitsPerHour                         EngineeringUnits = 131
	UnitsMilliwatts                      EngineeringUnits = 132
	UnitsHectopascals                    EngineeringUnits = 133
	UnitsMillibars                       EngineeringUnits = 134
	UnitsCubicMetersPerHour              EngineeringUnits = 135
	UnitsLitersPerHour                   EngineeringUnits = 136
	UnitsKilowattHoursPerSquareMeter     EngineeringUnits = 137
	UnitsKilowattHoursPerSquareFoot      EngineeringUnits = 138
	UnitsMegajoulesPerSquareMeter        EngineeringUnits = 139
	UnitsMegajoulesPerSquareFoot         EngineeringUnits = 140
	UnitsWattsPerSquareMeterDegreeKelvin EngineeringUnits = 141
	UnitsCubicFeetPerSecond              EngineeringUnits = 142
	UnitsPercentObscurationPerFoot       EngineeringUnits = 143
	UnitsPercentObscurationPerMeter      EngineeringUnits = 144
	UnitsMilliohms                       EngineeringUnits = 145
	UnitsMegawattHours                   EngineeringUnits = 146
	UnitsKiloBtus                        EngineeringUnits = 147
	UnitsMegaBtus                        EngineeringUnits = 148
	UnitsKilojoulesPerKilogramDryAir     EngineeringUnits = 149
	UnitsMegajoulesPerKilogramDryAir     EngineeringUnits = 150
	UnitsKilojoulesPerDegreeKelvin       EngineeringUnits = 151
	UnitsMegajoulesPerDegreeKelvin       EngineeringUnits = 152
	UnitsNewton                          EngineeringUnits = 153
	UnitsGramsPerSecond                  EngineeringUnits = 154
	UnitsGramsPerMinute                  EngineeringUnits = 155
	UnitsTonsPerHour                     EngineeringUnits = 156
	UnitsKiloBtusPerHour                 EngineeringUnits = 157
	UnitsHundredthsSeconds               EngineeringUnits = 158
	UnitsMilliseconds                    EngineeringUnits = 159
	UnitsNewtonMeters                    EngineeringUnits = 160
	UnitsMillimetersPerSecond            EngineeringUnits = 161
	UnitsMillimetersPerMinute            EngineeringUnits = 162
	UnitsMetersPerMinute                 EngineeringUnits = 163
	UnitsMetersPerHour                   EngineeringUnits = 164
	UnitsCubicMetersPerMinute            EngineeringUnits = 165
	UnitsMetersPerSecondPerSecond        EngineeringUnits = 166
	UnitsAmperesPerMeter                 EngineeringUnits = 167
	UnitsAmperesPerSquareMeter           EngineeringUnits = 168
	UnitsAmpereSquareMeters              EngineeringUnits = 169
	UnitsFarads                          EngineeringUnits = 170
	UnitsHenrys                          EngineeringUnits = 171
	UnitsOhmMeters                       EngineeringUnits = 172
	UnitsSiemens                         EngineeringUnits = 173
	UnitsSiemensPerMeter                 EngineeringUnits = 174
	UnitsTeslas                          EngineeringUnits = 175
	UnitsVoltsPerDegreeKelvin            EngineeringUnits = 176
	UnitsVoltsPerMeter                   EngineeringUnits = 177
	UnitsWebers                          EngineeringUnits = 178
	UnitsCandelas                        EngineeringUnits = 179
	UnitsCandelasPerSquareMeter          EngineeringUnits = 180
	UnitsDegreesKelvinPerHour            EngineeringUnits = 181
	UnitsDegreesKelvinPerMinute          EngineeringUnits = 182
	UnitsJouleSeconds                    EngineeringUnits = 183
	UnitsRadiansPerSecond                EngineeringUnits = 184
	UnitsSquareMetersPerNewton           EngineeringUnits = 185
	UnitsKilogramsPerCubicMeter          EngineeringUnits = 186
	UnitsNewtonSeconds                   EngineeringUnits = 187
	UnitsNewtonsPerMeter                 EngineeringUnits = 188
	UnitsWattsPerMeterPerDegreeKelvin    EngineeringUnits = 189
	UnitsMicroSiemens                    EngineeringUnits = 190
	UnitsCubicFeetPerHour                EngineeringUnits = 191
	UnitsUsGallonsPerHour                EngineeringUnits = 192
	UnitsKilometers                      EngineeringUnits = 193
	UnitsMicrometers                     EngineeringUnits = 194
	UnitsGrams                           EngineeringUnits = 195
	UnitsMilligrams                      EngineeringUnits = 196
	UnitsMilliliters                     EngineeringUnits = 197
	UnitsMillilitersPerSecond            EngineeringUnits = 198
	UnitsDecibels                        EngineeringUnits = 199
	UnitsDecibelsMillivolt               EngineeringUnits = 200
	UnitsDecibelsVolt                    EngineeringUnits = 201
	UnitsMillisiemens                    EngineeringUnits = 202
	UnitsWattHoursReactive               EngineeringUnits = 203
	UnitsKilowattHoursReactive           EngineeringUnits = 204
	UnitsMegawattHoursReactive           EngineeringUnits = 205
	UnitsMillimetersOfWater              EngineeringUnits = 206
	UnitsPerMille                        EngineeringUnits = 207
	UnitsGramsPerGram                    EngineeringUnits = 208
	UnitsKilogramsPerKilogram            EngineeringUnits = 209
	UnitsGramsPerKilogram                EngineeringUnits = 210
	UnitsMilligramsPerGram               EngineeringUnits = 211
	UnitsMilligramsPerKilogram           EngineeringUnits = 212
	UnitsGramsPerMilliliter              EngineeringUnits = 213
	UnitsGramsPerLiter                   EngineeringUnits = 214
	UnitsMilligramsPerLiter              EngineeringUnits = 215
	UnitsMicrogramsPerLiter              EngineeringUnits = 216
	UnitsGramsPerCubicMeter              EngineeringUnits = 217
	UnitsMilligramsPerCubicMeter         EngineeringUnits = 218
	UnitsMicrogramsPerCubicMeter         EngineeringUnits = 219
	UnitsNanogramsPerCubicMeter          EngineeringUnits = 220
	UnitsGramsPerCubicCentimeter         EngineeringUnits = 221
	UnitsBecquerels                      EngineeringUnits = 222
	UnitsKilobecquerels                  EngineeringUnits = 223
	UnitsMegabecquerels                  EngineeringUnits = 224
	UnitsGray                            EngineeringUnits = 225
	UnitsMilligray                       EngineeringUnits = 226
	UnitsMicrogray                       EngineeringUnits = 227
	UnitsSieverts                        EngineeringUnits = 228
	UnitsMillisieverts                   EngineeringUnits = 229
	UnitsMicrosieverts                   EngineeringUnits = 230
	UnitsMicrosievertsPerHour            EngineeringUnits = 231
	UnitsDecibelsA                       EngineeringUnits = 232
	UnitsNephelometricTurbidityUnit      EngineeringUnits = 233
	UnitsPH                              EngineeringUnits = 234
	UnitsGramsPerSquareMeter             EngineeringUnits = 235
	UnitsMinutesPerDegreeKelvin          EngineeringUnits = 236
	UnitsOhmMeterPerSquareMeter          EngineeringUnits = 237
	UnitsAmpereSeconds                   EngineeringUnits = 238
	UnitsVoltAmpereHours                 EngineeringUnits = 239
	UnitsKilovoltAmpereHours             EngineeringUnits = 240
	UnitsMegavoltAmpereHours             EngineeringUnits = 241
	UnitsVoltAmpereHoursReactive         EngineeringUnits = 242
	UnitsKilovoltAmpereHoursReactive     EngineeringUnits = 243
	UnitsMegavoltAmpereHoursReactive     EngineeringUnits = 244
	UnitsVoltsSquareHours                EngineeringUnits = 245
	UnitsAmpereSquareHours               EngineeringUnits = 246
	UnitsJoulesPerHours                  EngineeringUnits = 247
	UnitsCubicFeetPerDay                 EngineeringUnits = 248
	UnitsCubicMetersPerDay               EngineeringUnits = 249
	UnitsWattHoursPerCubicMeter          EngineeringUnits = 250
	UnitsJoulesPerCubicMeter             EngineeringUnits = 251
	UnitsPascalSeconds                   EngineeringUnits = 253
)

var unitsEnum = NewEnum("EngineeringUnits", map[EngineeringUnits]string{
	UnitsSquareMeters:                    "squareMeters",
	UnitsSquareFeet:                      "squareFeet",
	UnitsMilliamperes:                    "milliamperes",
	UnitsAmperes:                         "amperes",
	UnitsOhms:                            "ohms",
	UnitsVolts:                           "volts",
	UnitsKilovolts:                       "kilovolts",
	UnitsMegavolts:                       "megavolts",
	UnitsVoltAmperes:                     "voltAmperes",
	UnitsKilovoltAmperes:                 "kilovoltAmperes",
	UnitsMegavoltAmperes:                 "megavoltAmperes",
	UnitsVoltAmperesReactive:             "voltAmperesReactive",
	UnitsKilovoltAmperesReactive:         "kilovoltAmperesReactive",
	UnitsMegavoltAmperesReactive:         "megavoltAmperesReactive",
	UnitsDegreesPhase:                    "degreesPhase",
	UnitsPowerFactor:                     "powerFactor",
	UnitsJoules:                          "joules",
	UnitsKilojoules:                      "kilojoules",
	UnitsWattHours:                       "wattHours",
	UnitsKilowattHours:                   "kilowattHours",
	UnitsBtus:                            "btus",
	UnitsTherms:                          "therms",
	UnitsTonHours:                        "tonHours",
	UnitsJoulesPerKilogramDryAir:         "joulesPerKilogramDryAir",
	UnitsBtusPerPoundDryAir:              "btusPerPoundDryAir",
	UnitsCyclesPerHour:                   "cyclesPerHour",
	UnitsCyclesPerMinute:                 "cyclesPerMinute",
	UnitsHertz:                           "hertz",
	UnitsGramsOfWaterPerKilogramDryAir:   "gramsOfWaterPerKilogramDryAir",
	UnitsPercentRelativeHumidity:         "percentRelativeHumidity",
	UnitsMillimeters:                     "millimeters",
	UnitsMeters:                          "meters",
	UnitsInches:                          "inches",
	UnitsFeet:                            "feet",
	UnitsWattsPerSquareFoot:              "wattsPerSquareFoot",
	UnitsWattsPerSquareMeter:             "wattsPerSquareMeter",
	UnitsLumens:                          "lumens",
	UnitsLuxes:                           "luxes",
	UnitsFootCandles:                     "footCandles",
	UnitsKilograms:                       "kilograms",
	UnitsPoundsMass:                      "poundsMass",
	UnitsTons:                            "tons",
	UnitsKilogramsPerSecond:              "kilogramsPerSecond",
	UnitsKilogramsPerMinute:              "kilogramsPerMinute",
	UnitsKilogramsPerHour:                "kilogramsPerHour",
	UnitsPoundsMassPerMinute:             "poundsMassPerMinute",
	UnitsPoundsMassPerHour:               "poundsMassPerHour",
	UnitsWatts:                           "watts",
	UnitsKilowatts:                       "kilowatts",
	UnitsMegawatts:                       "megawatts",
	UnitsBtusPerHour:                     "btusPerHour",
	UnitsHorsepower:                      "horsepower",
	UnitsTonsRefrigeration:               "tonsRefrigeration",
	UnitsPascals:                         "pascals",
	UnitsKilopascals:                     "kilopascals",
	UnitsBars:                            "bars",
	UnitsPoundsForcePerSquareInch:        "poundsForcePerSquareInch",
	UnitsCentimetersOfWater:              "centimetersOfWater",
	UnitsInchesOfWater:                   "inchesOfWater",
	UnitsMillimetersOfMercury:            "millimetersOfMercury",
	UnitsCentimetersOfMercury:            "centimetersOfMercury",
	UnitsInchesOfMercury:                 "inchesOfMercury",
	UnitsDegreesCelsius:                  "degreesCelsius",
	UnitsDegreesKelvin:                   "degreesKelvin",
	UnitsDegreesFahrenheit:               "degreesFahrenheit",
	UnitsDegreeDaysCelsius:               "degreeDaysCelsius",
	UnitsDegreeDaysFahrenheit:            "degreeDaysFahrenheit",
	UnitsYears:                           "years",
	UnitsMonths:                          "months",
	UnitsWeeks:                           "weeks",
	UnitsDays:                            "days",
	UnitsHours:                           "hours",
	UnitsMinutes:                         "minutes",
	UnitsSeconds:                         "seconds",
	UnitsMetersPerSecond:                 "metersPerSecond",
	UnitsKilometersPerHour:               "kilometersPerHour",
	UnitsFeetPerSecond:                   "feetPerSecond",
	UnitsFeetPerMinute:                   "feetPerMinute",
	UnitsMilesPerHour:                    "milesPerHour",
	UnitsCubicFeet:                       "cubicFeet",
	UnitsCubicMeters:                     "cubicMeters",
	UnitsImperialGallons:                 "imperialGallons",
	UnitsLiters:                          "liters",
	UnitsUsGallons:                       "usGallons",
	UnitsCubicFeetPerMinute:              "cubicFeetPerMinute",
	UnitsCubicMetersPerSecond:            "cubicMetersPerSecond",
	UnitsImperialGallonsPerMinute:        "imperialGallonsPerMinute",
	UnitsLitersPerSecond:                 "litersPerSecond",
	UnitsLitersPerMinute:                 "litersPerMinute",
	UnitsUsGallonsPerMinute:              "usGallonsPerMinute",
	UnitsDegreesAngular:                  "degreesAngular",
	UnitsDegreesCelsiusPerHour:           "degreesCelsiusPerHour",
	UnitsDegreesCelsiusPerMinute:         "degreesCelsiusPerMinute",
	UnitsDegreesFahrenheitPerHour:        "degreesFahrenheitPerHour",
	UnitsDegreesFahrenheitPerMinute:      "degreesFahrenheitPerMinute",
	UnitsNoUnits:                         "noUnits",
	UnitsPartsPerMillion:                 "partsPerMillion",
	UnitsPartsPerBillion:                 "partsPerBillion",
	UnitsPercent:                         "percent",
	UnitsPercentPerSecond:                "percentPerSecond",
	UnitsPerMinute:                       "perMinute",
	UnitsPerSecond:                       "perSecond",
	UnitsPsiPerDegreeFahrenheit:          "psiPerDegreeFahrenheit",
	UnitsRadians:                         "radians",
	UnitsRevolutionsPerMinute:            "revolutionsPerMinute",
	UnitsCurrency1:                       "currency1",
	UnitsCurrency2:                       "currency2",
	UnitsCurrency3:                       "currency3",
	UnitsCurrency4:                       "currency4",
	UnitsCurrency5:                       "currency5",
	UnitsCurrency6:                       "currency6",
	UnitsCurrency7:                       "currency7",
	UnitsCurrency8:                       "currency8",
	UnitsCurrency9:                       "currency9",
	UnitsCurrency10:                      "currency10",
	UnitsSquareInches:                    "squareInches",
	UnitsSquareCentimeters:               "squareCentimeters",
	UnitsBtusPerPound:                    "btusPerPound",
	UnitsCentimeters:                     "centimeters",
	UnitsPoundsMassPerSecond:             "poundsMassPerSecond",
	UnitsDeltaDegreesFahrenheit:          "deltaDegreesFahrenheit",
	UnitsDeltaDegreesKelvin:              "deltaDegreesKelvin",
	UnitsKilohms:                         "kilohms",
	UnitsMegohms:                         "megohms",
	UnitsMillivolts:                      "millivolts",
	UnitsKilojoulesPerKilogram:           "kilojoulesPerKilogram",
	UnitsMegajoules:                      "megajoules",
	UnitsJoulesPerDegreeKelvin:           "joulesPerDegreeKelvin",
	UnitsJoulesPerKilogramDegreeKelvin:   "joulesPerKilogramDegreeKelvin",
	UnitsKilohertz:                       "kilohertz",
	UnitsMegahertz:                       "megahertz",
	UnitsPerHour:                         "perHour",
	UnitsMilliwatts:                      "milliwatts",
	UnitsHectopascals:                    "hectopascals",
	UnitsMillibars:                       "millibars",
	UnitsCubicMetersPerHour:              "cubicMetersPerHour",
	UnitsLitersPerHour:                   "litersPerHour",
	UnitsKilowattHoursPerSquareMeter:     "kilowattHoursPerSquareMeter",
	UnitsKilowattHoursPerSquareFoot:      "kilowattHoursPerSquareFoot",
	UnitsMegajoulesPerSquareMeter:        "megajoulesPerSquareMeter",
	UnitsMegajoulesPerSquareFoot:         "megajoulesPerSquareFoot",
	UnitsWattsPerSquareMeterDegreeKelvin: "wattsPerSquareMeterDegreeKelvin",
	UnitsCubicFeetPerSecond:              "cubicFeetPerSecond",
	UnitsPercentObscurationPerFoot:       "percentObscurationPerFoot",
	UnitsPercentObscurationPerMeter:      "percentObscurationPerMeter",
	UnitsMilliohms:                       "milliohms",
	UnitsMegawattHours:                   "megawattHours",
	UnitsKiloBtus:                        "kiloBtus",
	UnitsMegaBtus:                        "megaBtus",
	UnitsKilojoulesPerKilogramDryAir:     "kilojoulesPerKilogramDryAir",
	UnitsMegajoulesPerKilogramDryAir:     "megajoulesPerKilogramDryAir",
	UnitsKilojoulesPerDegreeKelvin:       "kilojoulesPerDegreeKelvin",
	UnitsMegajoulesPerDegreeKelvin:       "megajoulesPerDegreeKelvin",
	UnitsNewton:                          "newton",
	UnitsGramsPerSecond:                  "gramsPerSecond",
	UnitsGramsPerMinute:                  "gramsPerMinute",
	UnitsTonsPerHour:                     "tonsPerHour",
	UnitsKiloBtusPerHour:                 "kiloBtusPerHour",
	UnitsHundredthsSeconds:               "hundredthsSeconds",
	UnitsMilliseconds:                    "milliseconds",
	UnitsNewtonMeters:                    "newtonMeters",
	UnitsMillimetersPerSecond:            "millimetersPerSecond",
	UnitsMillimetersPerMinute:            "millimetersPerMinute",
	UnitsMetersPerMinute:                 "metersPerMinute",
	UnitsMetersPerHour:                   "metersPerHour",
	UnitsCubicMetersPerMinute:            "cubicMetersPerMinute",
	UnitsMetersPerSecondPerSecond:        "metersPerSecondPerSecond",
	UnitsAmperesPerMeter:                 "amperesPerMeter",
	UnitsAmperesPerSquareMeter:           "amperesPerSquareMeter",
	UnitsAmpereSquareMeters:              "ampereSquareMeters",
	UnitsFarads:                          "farads",
	UnitsHenrys:                          "henrys",
	UnitsOhmMeters:                       "ohmMeters",
	UnitsSiemens:                         "siemens",
	UnitsSiemensPerMeter:                 "siemensPerMeter",
	UnitsTeslas:                          "teslas",
	UnitsVoltsPerDegreeKelvin:            "voltsPerDegreeKelvin",
	UnitsVoltsPerMeter:                   "voltsPerMeter",
	UnitsWebers:                          "webers",
	UnitsCandelas:                        "candelas",
	UnitsCandelasPerSquareMeter:          "candelasPerSquareMeter",
	UnitsDegreesKelvinPerHour:            "degreesKelvinPerHour",
	UnitsDegreesKelvinPerMinute:          "degreesKelvinPerMinute",
	UnitsJouleSeconds:                    "jouleSeconds",
	UnitsRadiansPerSecond:                "radiansPerSecond",
	UnitsSquareMetersPerNewton:           "squareMetersPerNewton",
	UnitsKilogramsPerCubicMeter:          "kilogramsPerCubicMeter",
	UnitsNewtonSeconds:                   "newtonSeconds",
	UnitsNewtonsPerMeter:                 "newtonsPerMeter",
	UnitsWattsPerMeterPerDegreeKelvin:    "wattsPerMeterPerDegreeKelvin",
	UnitsMicroSiemens:                    "microSiemens",
	UnitsCubicFeetPerHour:                "cubicFeetPerHour",
	UnitsUsGallonsPerHour:                "usGallonsPerHour",
	UnitsKilometers:                      "kilometers",
	UnitsMicrometers:                     "micrometers",
	UnitsGrams:                           "grams",
	UnitsMilligrams:                      "milligrams",
	UnitsMilliliters:                     "milliliters",
	UnitsMillilitersPerSecond:            "millilitersPerSecond",
	UnitsDecibels:                        "decibels",
	UnitsDecibelsMillivolt:               "decibelsMillivolt",
	UnitsDecibelsVolt:                    "decibelsVolt",
	UnitsMillisiemens:                    "millisiemens",
	UnitsWattHoursReactive:               "wattHoursReactive",
	UnitsKilowattHoursReactive:           "kilowattHoursReactive",
	UnitsMegawattHoursReactive:           "megawattHoursReactive",
	UnitsMillimetersOfWater:              "millimetersOfWater",
	UnitsPerMille:                        "perMille",
	UnitsGramsPerGram:                    "gramsPerGram",
	UnitsKilogramsPerKilogram:            "kilogramsPerKilogram",
	UnitsGramsPerKilogram:                "gramsPerKilogram",
	UnitsMilligramsPerGram:               "milligramsPerGram",
	UnitsMilligramsPerKilogram:           "milligramsPerKilogram",
	UnitsGramsPerMilliliter:              "gramsPerMilliliter",
	UnitsGramsPerLiter:                   "gramsPerLiter",
	UnitsMilligramsPerLiter:              "milligramsPerLiter",
	UnitsMicrogramsPerLiter:              "microgramsPerLiter",
	UnitsGramsPerCubicMeter:              "gramsPerCubicMeter",
	UnitsMilligramsPerCubicMeter:         "milligramsPerCubicMeter",
	UnitsMicrogramsPerCubicMeter:         "microgramsPerCubicMeter",
	UnitsNanogramsPerCubicMeter:          "nanogramsPerCubicMeter",
	UnitsGramsPerCubicCentimeter:         "gramsPerCubicCentimeter",
	UnitsBecquerels:                      "becquerels",
	UnitsKilobecquerels:                  "kilobecquerels",
	UnitsMegabecquerels:                  "megabecquerels",
	UnitsGray:                            "gray",
	UnitsMilligray:                       "milligray",
	UnitsMicrogray:                       "microgray",
	UnitsSieverts:                        "sieverts",
	UnitsMillisieverts:                   "millisieverts",
	UnitsMicrosieverts:                   "microsieverts",
	UnitsMicrosievertsPerHour:            "microsievertsPerHour",
	UnitsDecibelsA:                       "decibelsA",
	UnitsNephelometricTurbidityUnit:      "nephelometricTurbidityUnit",
	UnitsPH:                              "pH",
	UnitsGramsPerSquareMeter:             "gramsPerSquareMeter",
	UnitsMinutesPerDegreeKelvin:          "minutesPerDegreeKelvin",
	UnitsOhmMeterPerSquareMeter:          "ohmMeterPerSquareMeter",
	UnitsAmpereSeconds:                   "ampereSeconds",
	UnitsVoltAmpereHours:                 "voltAmpereHours",
	UnitsKilovoltAmpereHours:             "kilovoltAmpereHours",
	UnitsMegavoltAmpereHours:             "megavoltAmpereHours",
	UnitsVoltAmpereHoursReactive:         "voltAmpereHoursReactive",
	UnitsKilovoltAmpereHoursReactive:     "kilovoltAmpereHoursReactive",
	UnitsMegavoltAmpereHoursReactive:     "megavoltAmpereHoursReactive",
	UnitsVoltsSquareHours:                "voltsSquareHours",
	UnitsAmpereSquareHours:               "ampereSquareHours",
	UnitsJoulesPerHours:                  "joulesPerHours",
	UnitsCubicFeetPerDay:                 "cubicFeetPerDay",
	UnitsCubicMetersPerDay:               "cubicMetersPerDay",
	UnitsWattHoursPerCubicMeter:          "wattHoursPerCubicMeter",
	UnitsJoulesPerCubicMeter:             "joulesPerCubicMeter",
	UnitsPascalSeconds:                   "pascalSeconds",
})

// EngineeringUnitsType is the Type of the engineering-units enumeration.
var EngineeringUnitsType Type = primType{unitsEnum}

// String returns the hyphenated constant name, or the decimal code for
// unnamed values.
func (u EngineeringUnits) String() string { return KebabOf(unitsEnum.NameOf(u)) }
