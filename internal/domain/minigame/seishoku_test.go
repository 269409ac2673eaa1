package minigame

import (
	"errors"
	"testing"
	"time"

	"igusafarm/internal/domain/game"
)

// With every draw at 1 the candidates settle as [good, fair, fair].
func newSeishoku(h *fakeHost, cb Callbacks) *Seishoku {
	return NewSeishoku(h, cb, &scriptedRand{ints: []int{1}})
}

func selectAll(t *testing.T, s *Seishoku) {
	t.Helper()
	for i := 0; i < SelectionRounds; i++ {
		if _, err := s.Select(0); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
	}
}

func TestSeishokuCandidatesAlwaysHoldGood(t *testing.T) {
	s := NewSeishoku(newFakeHost(27), Callbacks{}, &scriptedRand{ints: []int{3, 2, 2, 0, 1}})
	for i := 0; i < SelectionRounds; i++ {
		c := s.Candidates()
		if len(c) != candidatesPerPick {
			t.Fatalf("expected %d candidates, got %d", candidatesPerPick, len(c))
		}
		goodAt := -1
		for j, q := range c {
			if q == QualityGood {
				goodAt = j
			}
		}
		if goodAt < 0 {
			t.Fatalf("round %d has no good bundle: %v", i, c)
		}
		_, _ = s.Select(goodAt)
	}
}

func TestSeishokuSelection(t *testing.T) {
	h := newFakeHost(27)
	s := newSeishoku(h, Callbacks{})
	if got := s.Candidates(); got[0] != QualityGood || got[1] != QualityFair {
		t.Fatalf("unexpected candidates %v", got)
	}
	bad, _ := s.Select(1)
	if bad.Delta != -5 || s.SelectionScore() != 0 {
		t.Fatalf("unexpected %+v", bad)
	}
	good, _ := s.Select(0)
	if good.Delta != 3 || s.SelectionScore() != 3 {
		t.Fatalf("unexpected %+v", good)
	}
	if _, err := s.Weave(DirectionLeft); !errors.Is(err, ErrWrongPhase) {
		t.Fatalf("loom must wait for selection, got %v", err)
	}
}

func TestSeishokuWeaveOutcomes(t *testing.T) {
	h := newFakeHost(27)
	s := newSeishoku(h, Callbacks{})
	selectAll(t, s)

	if s.Required() != DirectionLeft {
		t.Fatalf("first round should want left")
	}
	perfect, _ := s.Weave(DirectionLeft)
	if perfect.Outcome != OutcomePerfect || perfect.Density != 43 {
		t.Fatalf("unexpected %+v", perfect)
	}

	s.Advance(500 * time.Millisecond)
	good, _ := s.Weave(DirectionRight)
	if good.Outcome != OutcomeGood || good.Density != 45 {
		t.Fatalf("exactly 1s left is only good: %+v", good)
	}

	miss, _ := s.Weave(DirectionRight)
	if miss.Outcome != OutcomeMiss || miss.Density != 44 {
		t.Fatalf("wrong direction should miss: %+v", miss)
	}

	s.Advance(WeaveWindow)
	if s.Round() != 4 || s.Density() != 43 {
		t.Fatalf("timeout should miss and move on: round=%d density=%d", s.Round(), s.Density())
	}
	if s.WindowLeft() != WeaveWindow {
		t.Fatalf("next round should start with a full window")
	}
}

func TestSeishokuMasterRun(t *testing.T) {
	h := newFakeHost(27)
	var done completion
	s := newSeishoku(h, done.callbacks())
	selectAll(t, s)
	for i := 0; i < WeavingRounds; i++ {
		if _, err := s.Weave(s.Required()); err != nil {
			t.Fatalf("weave %d: %v", i, err)
		}
	}
	if done.calls != 1 {
		t.Fatalf("expected completion")
	}
	if s.Density() != 100 || s.Strands() != 8000 {
		t.Fatalf("expected full density, got %d (%d strands)", s.Density(), s.Strands())
	}
	if done.score != 30+100 {
		t.Fatalf("expected 130, got %d", done.score)
	}
	if !h.hasBadge(game.BadgeWeavingMaster) {
		t.Fatalf("expected weaving_master")
	}
}

func TestSeishokuSleepyWeaverLosesDensity(t *testing.T) {
	h := newFakeHost(27)
	var done completion
	s := newSeishoku(h, done.callbacks())
	selectAll(t, s)
	s.Advance(WeavingRounds * WeaveWindow)
	if done.calls != 1 {
		t.Fatalf("timeouts alone should finish the loom")
	}
	if s.Density() != 0 || done.score != 30 {
		t.Fatalf("expected density 0 and score 30, got %d/%d", s.Density(), done.score)
	}
	if h.qp() != 100+30-50 {
		t.Fatalf("unexpected qp %d", h.qp())
	}
}
