package minigame

import (
	"errors"
	"testing"
	"time"
)

func TestJudgeNet(t *testing.T) {
	cases := map[int]int{-2: -10, -1: -10, 0: -5, 1: 10, 2: 5, 3: -5, 7: -5}
	for delta, want := range cases {
		if got := judgeNet(delta); got != want {
			t.Fatalf("delta %d: expected %d, got %d", delta, want, got)
		}
	}
}

func TestSeichoBugSpawning(t *testing.T) {
	h := newFakeHost(11)
	s := NewSeicho(h, Callbacks{}, &scriptedRand{ints: []int{1}})
	if s.Event() != EventBug {
		t.Fatalf("expected bug event on day 11, got %q", s.Event())
	}
	if n := len(s.BugsOnField()); n != 1 {
		t.Fatalf("expected one bug immediately, got %d", n)
	}
	s.Advance(BugSpawnInterval)
	if n := len(s.BugsOnField()); n != 2 {
		t.Fatalf("expected a second bug after one interval, got %d", n)
	}
	s.Advance(10 * BugSpawnInterval)
	if n := len(s.BugsOnField()); n != 4 {
		t.Fatalf("quota is 4, got %d bugs", n)
	}
	if s.Scheduler().Active() != 0 {
		t.Fatalf("spawner should stop once the quota is out")
	}
}

func TestSeichoEndBugsChargesUnspawnedToo(t *testing.T) {
	h := newFakeHost(11)
	s := NewSeicho(h, Callbacks{}, &scriptedRand{ints: []int{1}})
	if err := s.TapBug(0); err != nil {
		t.Fatalf("tap: %v", err)
	}
	penalty, err := s.EndBugs()
	if err != nil {
		t.Fatalf("end bugs: %v", err)
	}
	if penalty != -15 {
		t.Fatalf("expected -15 for three bugs left of four, got %d", penalty)
	}
	if s.Scheduler().Active() != 0 {
		t.Fatalf("spawner must stop with the event")
	}
	if err := s.TapBug(1); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("expected ErrWrongPhase after the event, got %v", err)
	}
}

func TestSeichoSkippedEventsLapse(t *testing.T) {
	for _, day := range []int{11, 14, 19} {
		h := newFakeHost(day)
		s := NewSeicho(h, Callbacks{}, &scriptedRand{ints: []int{1}})
		if s.EventResolved() {
			t.Fatalf("day %d: expected an open %s event", day, s.Event())
		}
		if err := s.NextDay(); err != nil {
			t.Fatalf("day %d: next day: %v", day, err)
		}
		if s.Day() != day+1 {
			t.Fatalf("day %d: expected to advance, sitting on %d", day, s.Day())
		}
		if h.qp() != 100 {
			t.Fatalf("day %d: skipping %s should be free, qp=%d", day, SeichoEventForDay(day), h.qp())
		}
	}
}

func TestSeichoSkippedBugsStopSpawning(t *testing.T) {
	s := NewSeicho(newFakeHost(11), Callbacks{}, &scriptedRand{ints: []int{2}})
	if err := s.NextDay(); err != nil {
		t.Fatalf("next day: %v", err)
	}
	s.Advance(5 * time.Second)
	if n := len(s.BugsOnField()); n != 0 {
		t.Fatalf("bugs kept spawning after the day ended: %d", n)
	}
	if err := s.TapBug(0); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("bug controls should be locked on the net day, got %v", err)
	}
}

func TestSeichoGasCycles(t *testing.T) {
	cases := []struct {
		toggles int
		want    int
	}{
		{0, -5}, {1, -5}, {2, 5}, {3, 5}, {4, 10}, {6, 10},
	}
	for _, tc := range cases {
		s := NewSeicho(newFakeHost(14), Callbacks{}, &scriptedRand{})
		for i := 0; i < tc.toggles; i++ {
			_ = s.ToggleDrain()
		}
		got, err := s.FinishGas()
		if err != nil {
			t.Fatalf("finish gas: %v", err)
		}
		if got != tc.want {
			t.Fatalf("%d toggles: expected %d, got %d", tc.toggles, tc.want, got)
		}
	}
}

func TestSeichoFullPeriod(t *testing.T) {
	h := newFakeHost(9)
	var done completion
	s := NewSeicho(h, done.callbacks(), &scriptedRand{ints: []int{1}})

	step := func(label string, fn func() error) {
		t.Helper()
		if err := fn(); err != nil {
			t.Fatalf("%s: %v", label, err)
		}
	}
	next := func() { step("next day", s.NextDay) }

	// day 9: net up one notch.
	if res, err := s.RaiseNet(s.NetHeight() + 1); err != nil || res.Delta != 10 {
		t.Fatalf("raise: %+v %v", res, err)
	}
	next() // 10
	next() // 11: clear every bug.
	s.Advance(3 * time.Second)
	for _, b := range s.BugsOnField() {
		step("tap", func() error { return s.TapBug(b.ID) })
	}
	step("end bugs", func() error { _, err := s.EndBugs(); return err })
	next() // 12: skip the net.
	next() // 13
	next() // 14: two gas cycles.
	for i := 0; i < 4; i++ {
		step("toggle", s.ToggleDrain)
	}
	step("gas", func() error { _, err := s.FinishGas(); return err })
	next() // 15
	next() // 16: give up on bugs immediately.
	step("end bugs", func() error { _, err := s.EndBugs(); return err })
	next() // 17: overshoot.
	if res, _ := s.RaiseNet(s.NetHeight() + 3); res.Delta != -5 || res.To != res.From+3 {
		t.Fatalf("overshoot should cost 5 and still move the net: %+v", res)
	}
	next() // 18
	next() // 19
	step("typhoon", s.AckTyphoon)
	next() // 20
	if s.Day() != 20 || s.Finished() {
		t.Fatalf("expected to sit on day 20, got %d finished=%v", s.Day(), s.Finished())
	}
	next()

	if done.calls != 1 || done.nextDays != 11 {
		t.Fatalf("expected 11 day advances then completion, got %+v", done)
	}
	if done.score != 10+8+10+5 {
		t.Fatalf("unexpected running score %d", done.score)
	}
	if h.qp() != 98 {
		t.Fatalf("expected 98 qp, got %d", h.qp())
	}
}
