package minigame

import (
	"errors"
	"fmt"
	"time"

	"igusafarm/internal/domain/game"
)

var (
	ErrWrongPhase     = errors.New("input not accepted in current phase")
	ErrStageFinished  = errors.New("stage already finished")
	ErrInvalidCut     = errors.New("cut must lie past the previous cut and inside the strip")
	ErrOutOfRange     = errors.New("input out of range")
	ErrNoEvent        = errors.New("no event for this day")
	ErrTooFewFound    = errors.New("not enough defects found")
	ErrUnknownStage   = errors.New("unknown stage")
	ErrAlreadyDecided = errors.New("choice already made")
)

// Host is the narrow view of the game store an engine may touch.
type Host interface {
	View() game.View
	Dispatch(game.Action)
}

type Callbacks struct {
	OnComplete func(score int)
	OnNextDay  func()
}

// Rand is satisfied by *math/rand.Rand.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type Engine interface {
	Stage() game.StageID
	Advance(dt time.Duration)
	Finished() bool
	Score() int
	Teardown()
}

// New builds the engine for stage bound to host.
func New(stage game.StageID, host Host, cb Callbacks, rnd Rand) (Engine, error) {
	switch stage {
	case game.StageKabuwake:
		return NewKabuwake(host, cb, rnd), nil
	case game.StageUetsuke:
		return NewUetsuke(host, cb), nil
	case game.StageSakigari:
		return NewSakigari(host, cb, rnd), nil
	case game.StageSeicho:
		return NewSeicho(host, cb, rnd), nil
	case game.StageShukaku:
		return NewShukaku(host, cb, rnd), nil
	case game.StageDorozome:
		return NewDorozome(host, cb, rnd), nil
	case game.StageSeishoku:
		return NewSeishoku(host, cb, rnd), nil
	case game.StageKensa:
		return NewKensa(host, cb, rnd), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStage, stage)
	}
}

// base carries what every engine shares: the host, the completion
// callbacks, the phase scheduler and the running score.
type base struct {
	stage    game.StageID
	host     Host
	cb       Callbacks
	sched    *Scheduler
	score    int
	finished bool
}

func newBase(stage game.StageID, host Host, cb Callbacks) base {
	return base{stage: stage, host: host, cb: cb, sched: NewScheduler()}
}

func (b *base) Stage() game.StageID { return b.stage }
func (b *base) Finished() bool      { return b.finished }
func (b *base) Score() int          { return b.score }

func (b *base) Advance(dt time.Duration) {
	if b.finished {
		return
	}
	b.sched.Advance(dt)
}

func (b *base) Teardown() {
	b.sched.StopAll()
}

// Scheduler exposes the phase timers, mostly for tests.
func (b *base) Scheduler() *Scheduler { return b.sched }

func (b *base) active() error {
	if b.finished {
		return ErrStageFinished
	}
	return nil
}

// award dispatches delta and counts it toward the running score when it is
// not a penalty.
func (b *base) award(delta int) {
	b.dispatchQP(delta)
	if delta > 0 {
		b.score += delta
	}
}

func (b *base) dispatchQP(delta int) {
	if delta == 0 {
		return
	}
	b.host.Dispatch(game.AddQP(delta))
}

func (b *base) grant(id string) {
	badge, ok := game.BadgeByID(id)
	if !ok {
		return
	}
	for _, have := range b.host.View().Badges {
		if have.ID == id {
			return
		}
	}
	b.host.Dispatch(game.EarnBadge(badge))
}

func (b *base) nextDay() {
	if b.cb.OnNextDay != nil {
		b.cb.OnNextDay()
	}
}

// finish stops all timers and reports the score exactly once.
func (b *base) finish() {
	if b.finished {
		return
	}
	b.finished = true
	b.sched.StopAll()
	if b.cb.OnComplete != nil {
		b.cb.OnComplete(b.score)
	}
}

// startDay is the host's current day clamped into the stage's range.
func startDay(host Host, stage game.StageID) int {
	info, _ := game.StageInfoFor(stage)
	return clamp(host.View().CurrentDay, info.StartDay, info.EndDay)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
