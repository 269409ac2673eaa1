package minigame

import "time"

// Scheduler is a virtual clock with periodic timers. Time only moves when
// Advance is called, so engines run identically under a real ticker and
// under tests.
type Scheduler struct {
	now    time.Duration
	nextID int
	timers []*timer
}

type timer struct {
	id       int
	interval time.Duration
	due      time.Duration
	fn       func()
	stopped  bool
}

func NewScheduler() *Scheduler {
	return &Scheduler{}
}

func (s *Scheduler) Now() time.Duration { return s.now }

// Every runs fn each interval of virtual time until cancelled or StopAll.
func (s *Scheduler) Every(interval time.Duration, fn func()) (cancel func()) {
	if interval <= 0 || fn == nil {
		return func() {}
	}
	s.nextID++
	t := &timer{id: s.nextID, interval: interval, due: s.now + interval, fn: fn}
	s.timers = append(s.timers, t)
	return func() { t.stopped = true }
}

// Advance moves the clock by dt, firing due timers in deadline order.
// Callbacks may cancel timers or register new ones.
func (s *Scheduler) Advance(dt time.Duration) {
	if dt <= 0 {
		return
	}
	target := s.now + dt
	for {
		t := s.earliest(target)
		if t == nil {
			break
		}
		s.now = t.due
		t.due += t.interval
		t.fn()
	}
	s.now = target
	s.compact()
}

// StopAll cancels every timer. Called on each phase change and on teardown.
func (s *Scheduler) StopAll() {
	for _, t := range s.timers {
		t.stopped = true
	}
	s.timers = nil
}

// Active reports the number of live timers.
func (s *Scheduler) Active() int {
	n := 0
	for _, t := range s.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

func (s *Scheduler) earliest(limit time.Duration) *timer {
	var best *timer
	for _, t := range s.timers {
		if t.stopped || t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (s *Scheduler) compact() {
	live := s.timers[:0]
	for _, t := range s.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	s.timers = live
}
