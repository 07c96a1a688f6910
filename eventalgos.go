package bacstack

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wvanheerde/bacstack/btype"
)

// The concrete event algorithms of clause 13.3. Each configures the generic
// machine with its transition rules and its notification-parameter builder.
// Parameter sources differ between intrinsic reporting (the monitored
// object's own properties) and algorithmic reporting (the enrollment's
// eventParameters), so the rules read through closures.

// useOutOfRange installs the clause 13.3.6 rule set, shared by the real,
// double, signed and unsigned out-of-range variants. Rules (c) and (f),
// limit-enable withdrawals, commit without delay.
func (ea *eventAlgorithm) useOutOfRange(
	value func() (float64, bool),
	low, high, deadband func() (float64, bool),
	limitEnable func() btype.LimitEnable,
	notify func(toState btype.EventState) btype.Value,
) {
	ea.buildParams = notify
	ea.formatVars = func() map[string]string {
		v, _ := value()
		hi, _ := high()
		lo, _ := low()
		return map[string]string{
			"pMonitoredValue": formatValue(float32(v)),
			"pHighLimit":      formatValue(float32(hi)),
			"pLowLimit":       formatValue(float32(lo)),
		}
	}
	ea.execute = func() {
		v, ok := value()
		if !ok {
			ea.stateTransition(nil, false)
			return
		}
		lo, okLo := low()
		hi, okHi := high()
		if !okLo || !okHi {
			ea.stateTransition(nil, false)
			return
		}
		db, _ := deadband()
		enable := limitEnable()

		highState := btype.StateHighLimit
		lowState := btype.StateLowLimit
		normal := btype.StateNormal

		switch ea.snapshotState {
		case btype.StateNormal:
			switch {
			case enable.HighLimitEnable && v > hi: // (a)
				ea.stateTransition(&highState, false)
			case enable.LowLimitEnable && v < lo: // (b)
				ea.stateTransition(&lowState, false)
			default:
				ea.stateTransition(nil, false)
			}

		case btype.StateHighLimit:
			switch {
			case !enable.HighLimitEnable: // (c)
				ea.stateTransition(&normal, true)
			case enable.LowLimitEnable && v < lo: // (d)
				ea.stateTransition(&lowState, false)
			case v <= hi-db: // (e), once out of the deadband
				ea.stateTransition(&normal, false)
			default:
				ea.stateTransition(nil, false)
			}

		case btype.StateLowLimit:
			switch {
			case !enable.LowLimitEnable: // (f)
				ea.stateTransition(&normal, true)
			case enable.HighLimitEnable && v > hi: // (g)
				ea.stateTransition(&highState, false)
			case v >= lo+db: // (h)
				ea.stateTransition(&normal, false)
			default:
				ea.stateTransition(nil, false)
			}

		default:
			ea.stateTransition(nil, false)
		}
	}
}

// exceededLimit picks the limit for the notification: the target limit on
// the way in, the left limit on the way back to normal.
func (ea *eventAlgorithm) exceededLimit(toState btype.EventState, lo, hi float64) float64 {
	switch {
	case toState == btype.StateHighLimit:
		return hi
	case toState == btype.StateLowLimit:
		return lo
	case ea.snapshotState == btype.StateLowLimit:
		return lo
	default:
		return hi
	}
}

// realOutOfRangeParams builds the outOfRange notification content.
func (ea *eventAlgorithm) realOutOfRangeParams(value, low, high, deadband func() (float64, bool)) func(btype.EventState) btype.Value {
	return func(toState btype.EventState) btype.Value {
		v, _ := value()
		lo, _ := low()
		hi, _ := high()
		db, _ := deadband()
		return btype.Sequence{"outOfRange": btype.Sequence{
			"exceedingValue": float32(v),
			"statusFlags":    ea.monitored.StatusFlags(),
			"deadband":       float32(db),
			"exceededLimit":  float32(ea.exceededLimit(toState, lo, hi)),
		}}
	}
}

// scalarOutOfRangeParams builds the double/signed/unsigned variants, whose
// choice arm and value kinds follow the monitored datatype.
func (ea *eventAlgorithm) scalarOutOfRangeParams(arm string, wrap func(float64) btype.Value, deadbandWrap func(float64) btype.Value, value, low, high, deadband func() (float64, bool)) func(btype.EventState) btype.Value {
	return func(toState btype.EventState) btype.Value {
		v, _ := value()
		lo, _ := low()
		hi, _ := high()
		db, _ := deadband()
		return btype.Sequence{arm: btype.Sequence{
			"exceedingValue": wrap(v),
			"statusFlags":    ea.monitored.StatusFlags(),
			"deadband":       deadbandWrap(db),
			"exceededLimit":  wrap(ea.exceededLimit(toState, lo, hi)),
		}}
	}
}

// useUnsignedRange installs the clause 13.3.10 rules: no deadband, both
// limits always enabled.
func (ea *eventAlgorithm) useUnsignedRange(value func() (float64, bool), low, high func() (float64, bool)) {
	ea.useOutOfRange(value, low, high,
		func() (float64, bool) { return 0, true },
		func() btype.LimitEnable { return btype.BothLimits },
		func(toState btype.EventState) btype.Value {
			v, _ := value()
			lo, _ := low()
			hi, _ := high()
			return btype.Sequence{"unsignedRange": btype.Sequence{
				"exceedingValue": uint64(v),
				"statusFlags":    ea.monitored.StatusFlags(),
				"exceededLimit":  uint64(ea.exceededLimit(toState, lo, hi)),
			}}
		})
}

// useChangeOfState installs the clause 13.3.2 rules: offnormal while the
// monitored value matches any alarm value.
// The value and alarm-value functions both yield PropertyStates choices.
func (ea *eventAlgorithm) useChangeOfState(value func() btype.Value, alarmValues func() []btype.Value) {
	ea.buildParams = func(btype.EventState) btype.Value {
		return btype.Sequence{"changeOfState": btype.Sequence{
			"newState":    value(),
			"statusFlags": ea.monitored.StatusFlags(),
		}}
	}
	ea.execute = func() {
		v := value()
		alarmed := false
		for _, alarm := range alarmValues() {
			if btype.Equal(v, alarm) {
				alarmed = true
				break
			}
		}

		offnormal := btype.StateOffnormal
		normal := btype.StateNormal
		switch {
		case ea.snapshotState == btype.StateNormal && alarmed:
			ea.stateTransition(&offnormal, false)
		case ea.snapshotState == btype.StateOffnormal && !alarmed:
			ea.stateTransition(&normal, false)
		default:
			ea.stateTransition(nil, false)
		}
	}
}

// propertyStateOf wraps a value into the PropertyStates choice.
func propertyStateOf(v btype.Value) btype.Sequence {
	switch v := v.(type) {
	case bool:
		return btype.Sequence{"booleanValue": v}
	case btype.BinaryPV:
		return btype.Sequence{"binaryValue": v}
	case btype.Reliability:
		return btype.Sequence{"reliability": v}
	case btype.EventState:
		return btype.Sequence{"state": v}
	case uint64:
		return btype.Sequence{"unsignedValue": v}
	case btype.Enumerated:
		return btype.Sequence{"unsignedValue": uint64(v)}
	default:
		return btype.Sequence{"unsignedValue": uint64(0)}
	}
}

// useChangeOfCharacterstring installs the clause 13.3.17 rules: offnormal
// while the string matches any alarm value, with substring semantics.
func (ea *eventAlgorithm) useChangeOfCharacterstring(value func() string, alarmValues func() []btype.Value) {
	matched := func() (string, bool) {
		v := value()
		for _, alarm := range alarmValues() {
			s, ok := alarm.(string)
			if !ok {
				continue
			}
			if s == v || (s != "" && strings.Contains(v, s)) {
				return s, true
			}
		}
		return "", false
	}
	ea.buildParams = func(btype.EventState) btype.Value {
		alarm, _ := matched()
		return btype.Sequence{"changeOfCharacterstring": btype.Sequence{
			"changedValue": value(),
			"statusFlags":  ea.monitored.StatusFlags(),
			"alarmValue":   alarm,
		}}
	}
	ea.execute = func() {
		_, alarmed := matched()
		offnormal := btype.StateOffnormal
		normal := btype.StateNormal
		switch {
		case ea.snapshotState == btype.StateNormal && alarmed:
			ea.stateTransition(&offnormal, false)
		case ea.snapshotState == btype.StateOffnormal && !alarmed:
			ea.stateTransition(&normal, false)
		default:
			ea.stateTransition(nil, false)
		}
	}
}

// useChangeOfStatusFlags installs the clause 13.3.11 rules: offnormal while
// any selected flag is set on the monitored status flags.
func (ea *eventAlgorithm) useChangeOfStatusFlags(selected func() btype.StatusFlags) {
	ea.buildParams = func(btype.EventState) btype.Value {
		content := btype.Sequence{"referencedFlags": ea.monitored.StatusFlags()}
		if pv := ea.monitored.Value(btype.PropPresentValue); pv != nil {
			content["presentValue"] = pv
		}
		return btype.Sequence{"changeOfStatusFlags": content}
	}
	ea.execute = func() {
		sel := selected()
		flags := ea.monitored.StatusFlags()
		match := sel.InAlarm && flags.InAlarm ||
			sel.Fault && flags.Fault ||
			sel.Overridden && flags.Overridden ||
			sel.OutOfService && flags.OutOfService

		offnormal := btype.StateOffnormal
		normal := btype.StateNormal
		switch {
		case ea.snapshotState == btype.StateNormal && match:
			ea.stateTransition(&offnormal, false)
		case ea.snapshotState == btype.StateOffnormal && !match:
			ea.stateTransition(&normal, false)
		default:
			ea.stateTransition(nil, false)
		}
	}
}

// useChangeOfBitstring installs the clause 13.3.1 rules: offnormal while
// the masked monitored bitstring equals any listed value.
func (ea *eventAlgorithm) useChangeOfBitstring(value func() btype.BitString, bitmask func() btype.BitString, alarmValues func() []btype.Value) {
	ea.buildParams = func(btype.EventState) btype.Value {
		return btype.Sequence{"changeOfBitstring": btype.Sequence{
			"referencedBitstring": value(),
			"statusFlags":         ea.monitored.StatusFlags(),
		}}
	}
	ea.execute = func() {
		v := value()
		mask := bitmask()
		masked := maskBits(v, mask)

		alarmed := false
		for _, alarm := range alarmValues() {
			bits, ok := alarm.(btype.BitString)
			if !ok {
				continue
			}
			if btype.Equal(masked, maskBits(bits, mask)) {
				alarmed = true
				break
			}
		}

		offnormal := btype.StateOffnormal
		normal := btype.StateNormal
		switch {
		case ea.snapshotState == btype.StateNormal && alarmed:
			ea.stateTransition(&offnormal, false)
		case ea.snapshotState == btype.StateOffnormal && !alarmed:
			ea.stateTransition(&normal, false)
		default:
			ea.stateTransition(nil, false)
		}
	}
}

func maskBits(v, mask btype.BitString) btype.BitString {
	out := btype.BitString{Unused: v.Unused, Data: append([]byte(nil), v.Data...)}
	for i := range out.Data {
		if i < len(mask.Data) {
			out.Data[i] &= mask.Data[i]
		} else {
			out.Data[i] = 0
		}
	}
	return out
}

// useCommandFailure installs the clause 13.3.4 rules: offnormal when the
// feedback disagrees with the commanded value past the time delay.
func (ea *eventAlgorithm) useCommandFailure(command func() btype.Value, feedback func() btype.Value) {
	ea.buildParams = func(btype.EventState) btype.Value {
		return btype.Sequence{"commandFailure": btype.Sequence{
			"commandValue":  command(),
			"statusFlags":   ea.monitored.StatusFlags(),
			"feedbackValue": feedback(),
		}}
	}
	ea.execute = func() {
		agree := btype.Equal(command(), feedback())
		offnormal := btype.StateOffnormal
		normal := btype.StateNormal
		switch {
		case ea.snapshotState == btype.StateNormal && !agree:
			ea.stateTransition(&offnormal, false)
		case ea.snapshotState == btype.StateOffnormal && agree:
			ea.stateTransition(&normal, false)
		default:
			ea.stateTransition(nil, false)
		}
	}
}

// useFloatingLimit installs the clause 13.3.5 rules: the limits float
// around a referenced setpoint.
func (ea *eventAlgorithm) useFloatingLimit(value, setpoint func() (float64, bool), lowDiff, highDiff, deadband func() (float64, bool)) {
	ea.buildParams = func(btype.EventState) btype.Value {
		v, _ := value()
		sp, _ := setpoint()
		hd, _ := highDiff()
		ld, _ := lowDiff()
		limit := hd
		if ea.snapshotState == btype.StateLowLimit || ea.currentState == btype.StateLowLimit {
			limit = ld
		}
		return btype.Sequence{"floatingLimit": btype.Sequence{
			"referenceValue": float32(v),
			"statusFlags":    ea.monitored.StatusFlags(),
			"setpointValue":  float32(sp),
			"errorLimit":     float32(limit),
		}}
	}
	ea.execute = func() {
		v, ok := value()
		sp, okSp := setpoint()
		if !ok || !okSp {
			ea.stateTransition(nil, false)
			return
		}
		hd, _ := highDiff()
		ld, _ := lowDiff()
		db, _ := deadband()

		highState := btype.StateHighLimit
		lowState := btype.StateLowLimit
		normal := btype.StateNormal
		switch ea.snapshotState {
		case btype.StateNormal:
			switch {
			case v > sp+hd:
				ea.stateTransition(&highState, false)
			case v < sp-ld:
				ea.stateTransition(&lowState, false)
			default:
				ea.stateTransition(nil, false)
			}
		case btype.StateHighLimit:
			if v < sp+hd-db {
				ea.stateTransition(&normal, false)
			} else {
				ea.stateTransition(nil, false)
			}
		case btype.StateLowLimit:
			if v > sp-ld+db {
				ea.stateTransition(&normal, false)
			} else {
				ea.stateTransition(nil, false)
			}
		default:
			ea.stateTransition(nil, false)
		}
	}
}

// useChangeOfValue installs the clause 13.3.2 change-of-value rules, which
// report normal-to-normal transitions on every significant change.
func (ea *eventAlgorithm) useChangeOfValue(value func() btype.Value, increment func() (float64, bool)) {
	var lastReported btype.Value
	ea.buildParams = func(btype.EventState) btype.Value {
		newValue := btype.Sequence{}
		switch v := value().(type) {
		case btype.BitString:
			newValue["changedBits"] = v
		default:
			f, _ := asFloat(v)
			newValue["changedValue"] = float32(f)
		}
		return btype.Sequence{"changeOfValue": btype.Sequence{
			"newValue":    newValue,
			"statusFlags": ea.monitored.StatusFlags(),
		}}
	}
	ea.execute = func() {
		v := value()
		significant := false
		if inc, ok := increment(); ok {
			prev, ok1 := asFloat(lastReported)
			next, ok2 := asFloat(v)
			significant = !ok1 || !ok2 || next <= prev-inc || next >= prev+inc
		} else {
			significant = !btype.Equal(lastReported, v)
		}
		if !significant {
			ea.stateTransition(nil, false)
			return
		}
		lastReported = btype.Copy(v)
		normal := btype.StateNormal
		ea.stateTransition(&normal, false)
	}
}

// useNoop leaves the machine dispatchable with no offnormal detection.
// Fault detection and its transitions still apply.
func (ea *eventAlgorithm) useNoop() {
	ea.execute = func() { ea.stateTransition(nil, false) }
	ea.buildParams = func(toState btype.EventState) btype.Value { return nil }
}

// formatValue prints a parameter value the way message-text templates
// expect.
func formatValue(v btype.Value) string {
	switch v := v.(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
