package minigame

import (
	"time"

	"igusafarm/internal/domain/game"
)

var testNow = time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC)

// fakeHost runs dispatched actions through the real reducer.
type fakeHost struct {
	reducer game.Reducer
	state   game.GameState
	actions []game.Action
}

func newFakeHost(day int) *fakeHost {
	r := game.Reducer{Now: func() time.Time { return testNow }}
	return &fakeHost{reducer: r, state: r.Reduce(game.InitialState(), game.JumpToDay(day))}
}

func (h *fakeHost) View() game.View { return h.state.View() }

func (h *fakeHost) Dispatch(a game.Action) {
	h.actions = append(h.actions, a)
	h.state = h.reducer.Reduce(h.state, a)
}

func (h *fakeHost) qp() int { return h.state.QualityPoints }

func (h *fakeHost) qpDeltas() []int {
	var out []int
	for _, a := range h.actions {
		if a.Type == game.ActionAddQP {
			out = append(out, a.Amount)
		}
	}
	return out
}

func (h *fakeHost) hasBadge(id string) bool { return h.state.HasBadge(id) }

// scriptedRand replays fixed draws in a loop. Intn wraps into range.
type scriptedRand struct {
	ints   []int
	floats []float64
	ii, fi int
}

func (s *scriptedRand) Intn(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

func (s *scriptedRand) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.5
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

type completion struct {
	calls    int
	score    int
	nextDays int
}

func (c *completion) callbacks() Callbacks {
	return Callbacks{
		OnComplete: func(score int) {
			c.calls++
			c.score = score
		},
		OnNextDay: func() { c.nextDays++ },
	}
}
