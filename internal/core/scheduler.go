package core

import "time"

// TimerID identifies a timer registered on a Scheduler.
// The zero value never refers to a live timer.
type TimerID uint64

// timer is a single scheduled callback.
type timer struct {
	id       TimerID
	due      time.Duration
	interval time.Duration // 0 for one-shot timers
	fn       func()
}

// Scheduler is a deterministic virtual clock with interval and one-shot timers.
//
// Nothing happens until Advance is called; the platform layer advances it by
// one tick's worth of time per simulation step, and tests advance it by exact
// amounts. Callbacks run synchronously on the caller's goroutine.
type Scheduler struct {
	now    time.Duration
	nextID TimerID
	timers map[TimerID]*timer
}

// NewScheduler creates a scheduler with its clock at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[TimerID]*timer),
	}
}

// Now returns the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// Every registers fn to run each interval, first at Now()+interval.
// Returns 0 and registers nothing if interval is not positive.
func (s *Scheduler) Every(interval time.Duration, fn func()) TimerID {
	if interval <= 0 || fn == nil {
		return 0
	}
	return s.add(s.now+interval, interval, fn)
}

// After registers fn to run once at Now()+delay.
// A non-positive delay fires on the next Advance, including Advance(0).
func (s *Scheduler) After(delay time.Duration, fn func()) TimerID {
	if fn == nil {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	return s.add(s.now+delay, 0, fn)
}

func (s *Scheduler) add(due, interval time.Duration, fn func()) TimerID {
	s.nextID++
	id := s.nextID
	s.timers[id] = &timer{id: id, due: due, interval: interval, fn: fn}
	return id
}

// Cancel stops a timer. Cancelling an unknown or already fired timer is a no-op.
// Returns true if a live timer was removed.
func (s *Scheduler) Cancel(id TimerID) bool {
	if _, ok := s.timers[id]; !ok {
		return false
	}
	delete(s.timers, id)
	return true
}

// Active reports whether the timer is still scheduled.
func (s *Scheduler) Active(id TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

// Pending returns the number of scheduled timers.
func (s *Scheduler) Pending() int {
	return len(s.timers)
}

// Advance moves the clock forward by d, firing every timer that comes due.
// Timers fire in due-time order; timers due at the same instant fire in
// registration order. Callbacks may register or cancel timers, and those
// changes take effect within the same Advance.
func (s *Scheduler) Advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	target := s.now + d

	for {
		t := s.earliest(target)
		if t == nil {
			break
		}

		s.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			delete(s.timers, t.id)
		}
		t.fn()
	}

	s.now = target
}

// earliest returns the next timer due at or before limit, or nil.
func (s *Scheduler) earliest(limit time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}
