package bacstack

import (
	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
)

// A faultAlgorithm produces an evaluated reliability from its monitored
// values, conform clause 13.4. The evaluation writes through the monitored
// object's reliability property, which the event algorithm observes to
// transition into and out of FAULT.
type faultAlgorithm struct {
	algorithm
	monitored  *object.Object
	monitoring *object.Object // the EventEnrollment, nil for intrinsic

	evaluated btype.Reliability

	// bound parameters
	currentReliability btype.Reliability
	inhibit            bool
	monitoredValue     btype.Value

	// evaluate is the algorithm-specific reliability computation.
	evaluate func() btype.Reliability
}

func (app *Application) newFaultAlgorithm(monitoring, monitored *object.Object) *faultAlgorithm {
	fa := &faultAlgorithm{monitored: monitored, monitoring: monitoring}
	fa.init(app.loop)
	fa.run = fa.execute
	fa.evaluated = btype.NoFaultDetected

	reliabilitySource := monitored
	if monitoring != nil {
		reliabilitySource = monitoring
	}
	fa.bindProperty("pCurrentReliability", reliabilitySource, btype.PropReliability,
		func(v btype.Value) {
			if r, ok := v.(btype.Reliability); ok {
				fa.currentReliability = r
			}
		}, nil)
	fa.bindProperty("pReliabilityEvaluationInhibit", monitored, btype.PropReliabilityEvaluationInhibit,
		func(v btype.Value) {
			if b, ok := v.(bool); ok {
				fa.inhibit = b
			}
		}, nil)
	fa.bindProperty("pMonitoredValue", monitored, btype.PropPresentValue,
		func(v btype.Value) { fa.monitoredValue = v }, nil)
	return fa
}

// execute re-evaluates the reliability. When evaluation is inhibited the
// current reliability holds.
func (fa *faultAlgorithm) execute() {
	if fa.inhibit {
		return
	}

	next := fa.evaluate()
	fa.evaluated = next

	fa.executeEnabled = false
	fa.monitored.SetValue(btype.PropReliability, next)
	fa.executeEnabled = true
}

// outOfRangeFault transitions among no-fault-detected, under-range and
// over-range per the six-way table of clause 13.4.7. The min and max
// functions read the configured normal range.
func (fa *faultAlgorithm) outOfRangeFault(min, max func() (float64, bool)) func() btype.Reliability {
	return func() btype.Reliability {
		value, ok := asFloat(fa.monitoredValue)
		if !ok {
			return fa.currentReliability
		}
		lo, okLo := min()
		hi, okHi := max()
		if !okLo || !okHi {
			return fa.currentReliability
		}

		switch fa.currentReliability {
		case btype.NoFaultDetected:
			switch {
			case value < lo:
				return btype.UnderRange
			case value > hi:
				return btype.OverRange
			}
		case btype.UnderRange:
			switch {
			case value > hi:
				return btype.OverRange
			case value >= lo && value <= hi:
				return btype.NoFaultDetected
			}
		case btype.OverRange:
			switch {
			case value < lo:
				return btype.UnderRange
			case value >= lo && value <= hi:
				return btype.NoFaultDetected
			}
		}
		return fa.currentReliability
	}
}

// listedFault matches the monitored value against a fault-value list,
// conform clauses 13.4.2 and 13.4.5.
func (fa *faultAlgorithm) listedFault(faultValues func() []btype.Value) func() btype.Reliability {
	return func() btype.Reliability {
		for _, fault := range faultValues() {
			if btype.Equal(fa.monitoredValue, fault) {
				return btype.MultiStateFault
			}
		}
		return btype.NoFaultDetected
	}
}

// statusFlagsFault reports member-fault while any selected flag is set,
// conform clause 13.4.6.
func (fa *faultAlgorithm) statusFlagsFault(selected btype.StatusFlags, source *object.Object) func() btype.Reliability {
	return func() btype.Reliability {
		flags := source.StatusFlags()
		match := selected.InAlarm && flags.InAlarm ||
			selected.Fault && flags.Fault ||
			selected.Overridden && flags.Overridden ||
			selected.OutOfService && flags.OutOfService
		if match {
			return btype.MemberFault
		}
		return btype.NoFaultDetected
	}
}

// noFault is the placeholder for the vendor-defined extended algorithm,
// which this stack does not evaluate. Fault type none gets no fault
// algorithm at all.
func (fa *faultAlgorithm) noFault() btype.Reliability {
	return btype.NoFaultDetected
}

// attachIntrinsicFault derives a fault algorithm from the monitored
// object's own properties: the fault limit pair selects out-of-range, a
// fault-value list selects the listed match. Without either there is no
// fault detection.
func (app *Application) attachIntrinsicFault(o *object.Object) *faultAlgorithm {
	switch {
	case o.Has(btype.PropFaultLowLimit) && o.Has(btype.PropFaultHighLimit):
		fa := app.newFaultAlgorithm(nil, o)
		fa.bindProperty("pMinimumNormalValue", o, btype.PropFaultLowLimit, func(btype.Value) {}, nil)
		fa.bindProperty("pMaximumNormalValue", o, btype.PropFaultHighLimit, func(btype.Value) {}, nil)
		fa.evaluate = fa.outOfRangeFault(
			func() (float64, bool) { return asFloat(o.Value(btype.PropFaultLowLimit)) },
			func() (float64, bool) { return asFloat(o.Value(btype.PropFaultHighLimit)) },
		)
		return fa

	case o.Has(btype.PropFaultValues):
		fa := app.newFaultAlgorithm(nil, o)
		fa.bindProperty("pFaultValues", o, btype.PropFaultValues, func(btype.Value) {}, nil)
		fa.evaluate = fa.listedFault(func() []btype.Value {
			values, _ := o.Value(btype.PropFaultValues).([]btype.Value)
			return values
		})
		return fa
	}
	return nil
}

// enrollmentFault builds the fault algorithm selected by an
// EventEnrollment's faultType and faultParameters.
func (app *Application) enrollmentFault(enrollment, monitored *object.Object, faultType btype.FaultType, params btype.Sequence) (*faultAlgorithm, error) {
	switch faultType {
	case btype.FaultNone:
		return nil, nil

	case btype.FaultOutOfRange:
		inner, _ := params["faultOutOfRange"].(btype.Sequence)
		if inner == nil {
			return nil, btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidConfigurationData}
		}
		minChoice, _ := inner["minNormalValue"].(btype.Sequence)
		maxChoice, _ := inner["maxNormalValue"].(btype.Sequence)
		fa := app.newFaultAlgorithm(enrollment, monitored)
		fa.evaluate = fa.outOfRangeFault(
			func() (float64, bool) { return choiceFloat(minChoice) },
			func() (float64, bool) { return choiceFloat(maxChoice) },
		)
		return fa, nil

	case btype.FaultCharacterstring, btype.FaultState:
		key := "faultCharacterstring"
		if faultType == btype.FaultState {
			key = "faultState"
		}
		inner, _ := params[key].(btype.Sequence)
		if inner == nil {
			return nil, btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidConfigurationData}
		}
		faults, _ := inner["listOfFaultValues"].([]btype.Value)
		fa := app.newFaultAlgorithm(enrollment, monitored)
		fa.evaluate = fa.listedFault(func() []btype.Value { return faults })
		return fa, nil

	case btype.FaultStatusFlags:
		fa := app.newFaultAlgorithm(enrollment, monitored)
		fa.evaluate = fa.statusFlagsFault(
			btype.StatusFlags{InAlarm: true, Fault: true}, monitored)
		return fa, nil

	case btype.FaultExtended:
		fa := app.newFaultAlgorithm(enrollment, monitored)
		fa.evaluate = fa.noFault
		return fa, nil
	}
	return nil, btype.Error{Class: btype.ClassProperty, Code: btype.CodeInvalidConfigurationData}
}

// choiceFloat unwraps a FaultParameterOutOfRangeValue choice.
func choiceFloat(choice btype.Sequence) (float64, bool) {
	for _, v := range choice {
		return asFloat(v)
	}
	return 0, false
}
