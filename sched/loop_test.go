package sched

import (
	"testing"
	"time"
)

var epoch = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

func TestCallSoonOrder(t *testing.T) {
	l := NewSimulated(epoch)

	var order []int
	l.CallSoon(func() { order = append(order, 1) })
	l.CallSoon(func() { order = append(order, 2) })
	l.CallSoon(func() {
		order = append(order, 3)
		l.CallSoon(func() { order = append(order, 4) })
	})
	l.Drain()

	want := []int{1, 2, 3, 4}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("got %v, want %v", order, want)
		}
	}
}

func TestAdvanceFiresDueTimers(t *testing.T) {
	l := NewSimulated(epoch)

	var fired []string
	l.CallLater(10*time.Second, func() { fired = append(fired, "b") })
	l.CallLater(5*time.Second, func() { fired = append(fired, "a") })

	if err := l.Advance(9 * time.Second); err != nil {
		t.Fatal("advance error:", err)
	}
	if len(fired) != 1 || fired[0] != "a" {
		t.Fatalf("after 9s got %v, want [a]", fired)
	}

	l.Advance(2 * time.Second)
	if len(fired) != 2 || fired[1] != "b" {
		t.Fatalf("after 11s got %v, want [a b]", fired)
	}

	if got := l.Now(); !got.Equal(epoch.Add(11 * time.Second)) {
		t.Errorf("clock at %s, want %s", got, epoch.Add(11*time.Second))
	}
}

func TestTimerCancelIdempotent(t *testing.T) {
	l := NewSimulated(epoch)

	fired := false
	timer := l.CallLater(time.Second, func() { fired = true })
	timer.Cancel()
	timer.Cancel() // second cancel is a no-op

	l.Advance(2 * time.Second)
	if fired {
		t.Error("canceled timer fired")
	}
}

func TestCallEvery(t *testing.T) {
	l := NewSimulated(epoch)

	count := 0
	timer := l.CallEvery(10*time.Second, func() { count++ })

	l.Advance(35 * time.Second)
	if count != 3 {
		t.Errorf("got %d firings in 35s, want 3", count)
	}

	timer.Cancel()
	l.Advance(30 * time.Second)
	if count != 3 {
		t.Errorf("got %d firings after cancel, want 3", count)
	}
}

func TestAdvanceDeniedOnSystemClock(t *testing.T) {
	if err := New().Advance(time.Second); err != ErrNotSimulated {
		t.Errorf("got error %v, want %v", err, ErrNotSimulated)
	}
}

func TestTimerObservesSimTime(t *testing.T) {
	l := NewSimulated(epoch)

	var at time.Time
	l.CallLater(7*time.Second, func() { at = l.Now() })
	l.Advance(time.Minute)

	if want := epoch.Add(7 * time.Second); !at.Equal(want) {
		t.Errorf("fired at %s, want %s", at, want)
	}
}
