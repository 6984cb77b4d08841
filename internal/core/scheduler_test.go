package core

import (
	"testing"
	"time"
)

func TestSchedulerEvery(t *testing.T) {
	s := NewScheduler()
	fired := 0
	s.Every(100*time.Millisecond, func() { fired++ })

	s.Advance(99 * time.Millisecond)
	if fired != 0 {
		t.Errorf("fired %d times before first interval, expected 0", fired)
	}

	s.Advance(1 * time.Millisecond)
	if fired != 1 {
		t.Errorf("fired %d times at first interval, expected 1", fired)
	}

	s.Advance(1 * time.Second)
	if fired != 11 {
		t.Errorf("fired %d times after 1.1s, expected 11", fired)
	}
	if s.Now() != 1100*time.Millisecond {
		t.Errorf("Now() = %v, expected 1.1s", s.Now())
	}
}

func TestSchedulerAfterFiresOnce(t *testing.T) {
	s := NewScheduler()
	fired := 0
	id := s.After(50*time.Millisecond, func() { fired++ })

	if !s.Active(id) {
		t.Fatal("timer should be active after registration")
	}

	s.Advance(time.Second)
	if fired != 1 {
		t.Errorf("one-shot fired %d times, expected 1", fired)
	}
	if s.Active(id) {
		t.Error("one-shot should not be active after firing")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}

func TestSchedulerOrdering(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.After(30*time.Millisecond, func() { order = append(order, "c") })
	s.After(10*time.Millisecond, func() { order = append(order, "a") })
	s.After(20*time.Millisecond, func() { order = append(order, "b1") })
	s.After(20*time.Millisecond, func() { order = append(order, "b2") })

	s.Advance(time.Second)

	expected := []string{"a", "b1", "b2", "c"}
	if len(order) != len(expected) {
		t.Fatalf("fired %v, expected %v", order, expected)
	}
	for i := range expected {
		if order[i] != expected[i] {
			t.Errorf("order[%d] = %q, expected %q", i, order[i], expected[i])
		}
	}
}

func TestSchedulerCallbackSeesDueTime(t *testing.T) {
	s := NewScheduler()
	var seen time.Duration
	s.After(250*time.Millisecond, func() { seen = s.Now() })

	s.Advance(time.Second)

	if seen != 250*time.Millisecond {
		t.Errorf("Now() inside callback = %v, expected 250ms", seen)
	}
}

func TestSchedulerCancelFromCallback(t *testing.T) {
	s := NewScheduler()
	fired := false

	var victim TimerID
	s.After(10*time.Millisecond, func() { s.Cancel(victim) })
	victim = s.After(20*time.Millisecond, func() { fired = true })

	s.Advance(time.Second)

	if fired {
		t.Error("timer cancelled by an earlier callback should not fire")
	}
}

func TestSchedulerCancelIdempotent(t *testing.T) {
	s := NewScheduler()
	id := s.Every(time.Second, func() {})

	if !s.Cancel(id) {
		t.Error("first Cancel should report removal")
	}
	if s.Cancel(id) {
		t.Error("second Cancel should be a no-op")
	}
	if s.Cancel(0) {
		t.Error("Cancel(0) should be a no-op")
	}
}

func TestSchedulerRegisterFromCallback(t *testing.T) {
	s := NewScheduler()
	fired := 0

	s.After(10*time.Millisecond, func() {
		s.After(5*time.Millisecond, func() { fired++ })
	})

	s.Advance(20 * time.Millisecond)

	if fired != 1 {
		t.Errorf("nested timer fired %d times, expected 1", fired)
	}
}

func TestSchedulerInvalidInterval(t *testing.T) {
	s := NewScheduler()

	if id := s.Every(0, func() {}); id != 0 {
		t.Errorf("Every(0) = %d, expected 0", id)
	}
	if id := s.Every(time.Second, nil); id != 0 {
		t.Errorf("Every(nil fn) = %d, expected 0", id)
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected 0", s.Pending())
	}
}
