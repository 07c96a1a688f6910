package bacstack

import (
	"github.com/wvanheerde/bacstack/btype"
	"github.com/wvanheerde/bacstack/object"
	"github.com/wvanheerde/bacstack/sched"
)

// A change records the (old, new) delta of one bound parameter between
// algorithm executions.
type change struct {
	old btype.Value
	new btype.Value
}

// algorithm is the deferred-execution base shared by the COV detectors and
// the fault and event algorithms. Property-change monitors never run the
// algorithm synchronously: they record the delta, and the first significant
// change of a loop turn schedules a single execution on the next turn.
// Multiple changes coalesce.
type algorithm struct {
	loop *sched.Loop

	// run is the concrete execution, set by the embedding type.
	run func()

	scheduled bool
	// executeEnabled is lowered inside a transition commit so the
	// algorithm does not recurse through its own property writes.
	executeEnabled bool

	whatChanged map[string]change
	unbinds     []func()
}

func (a *algorithm) init(loop *sched.Loop) {
	a.loop = loop
	a.executeEnabled = true
	a.whatChanged = make(map[string]change)
}

// bindProperty couples a property of obj to a named algorithm parameter.
// Every change assigns the new value and records the delta; a change which
// passes the filter (inequality when nil) schedules an execution. The
// current property value seeds the parameter.
func (a *algorithm) bindProperty(param string, o *object.Object, prop btype.PropertyIdentifier, assign func(btype.Value), filter func(old, new btype.Value) bool) {
	if v := o.Value(prop); v != nil {
		assign(v)
	}
	cancel := o.Monitor(prop, func(old, new btype.Value) {
		assign(new)
		a.whatChanged[param] = change{old: old, new: new}

		if !a.executeEnabled || a.scheduled {
			return
		}
		significant := !btype.Equal(old, new)
		if filter != nil {
			significant = filter(old, new)
		}
		if significant {
			a.schedule()
		}
	})
	a.unbinds = append(a.unbinds, cancel)
}

// schedule marks the algorithm dirty for the next loop turn. Executions run
// in FIFO order of first-marked-dirty.
func (a *algorithm) schedule() {
	if a.scheduled {
		return
	}
	a.scheduled = true
	a.loop.CallSoon(func() {
		a.scheduled = false
		a.run()
	})
}

// unbind removes all property monitors.
func (a *algorithm) unbind() {
	for _, cancel := range a.unbinds {
		cancel()
	}
	a.unbinds = nil
}
