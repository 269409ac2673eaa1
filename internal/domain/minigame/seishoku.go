package minigame

import (
	"time"

	"igusafarm/internal/domain/game"
)

type SeishokuPhase string

const (
	SeishokuSelecting SeishokuPhase = "selecting"
	SeishokuWeaving   SeishokuPhase = "weaving"
	SeishokuDone      SeishokuPhase = "done"
)

type Quality string

const (
	QualityGood    Quality = "good"
	QualityFair    Quality = "fair"
	QualityPoor    Quality = "poor"
	QualityDamaged Quality = "damaged"
)

var qualityTiers = []Quality{QualityGood, QualityFair, QualityPoor, QualityDamaged}

type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
)

const (
	SelectionRounds   = 10
	WeavingRounds     = 50
	WeaveWindow       = 1500 * time.Millisecond
	WeaveTick         = 100 * time.Millisecond
	weavePerfectAbove = time.Second
	DensityStart      = 40
	DensityToMeet     = 90
	StrandsPerDensity = 80
	candidatesPerPick = 3
)

type SelectResult struct {
	Picked Quality `json:"picked"`
	Delta  int     `json:"delta"`
}

type WeaveResult struct {
	Required Direction `json:"required"`
	Got      Direction `json:"got,omitempty"`
	Outcome  Outcome   `json:"outcome"`
	Delta    int       `json:"delta"`
	Density  int       `json:"density"`
}

// Seishoku is weaving: sort the dried rush, then feed it left and right
// in time with the loom.
type Seishoku struct {
	base
	rnd        Rand
	phase      SeishokuPhase
	candidates []Quality
	selections int
	selScore   int

	round     int
	remaining time.Duration
	density   int
	weaves    []WeaveResult
}

func NewSeishoku(host Host, cb Callbacks, rnd Rand) *Seishoku {
	s := &Seishoku{
		base:    newBase(game.StageSeishoku, host, cb),
		rnd:     rnd,
		phase:   SeishokuSelecting,
		density: DensityStart,
	}
	s.deal()
	return s
}

func (s *Seishoku) Phase() SeishokuPhase      { return s.phase }
func (s *Seishoku) Candidates() []Quality     { return append([]Quality(nil), s.candidates...) }
func (s *Seishoku) SelectionScore() int       { return s.selScore }
func (s *Seishoku) Density() int              { return s.density }
func (s *Seishoku) Strands() int              { return s.density * StrandsPerDensity }
func (s *Seishoku) Round() int                { return s.round }
func (s *Seishoku) WindowLeft() time.Duration { return s.remaining }

// Required is the direction the current weaving round expects.
func (s *Seishoku) Required() Direction {
	if s.round%2 == 0 {
		return DirectionLeft
	}
	return DirectionRight
}

// deal lays out one guaranteed good bundle and two random ones, shuffled.
func (s *Seishoku) deal() {
	c := make([]Quality, 0, candidatesPerPick)
	c = append(c, QualityGood)
	for len(c) < candidatesPerPick {
		c = append(c, qualityTiers[s.rnd.Intn(len(qualityTiers))])
	}
	for i := len(c) - 1; i > 0; i-- {
		j := s.rnd.Intn(i + 1)
		c[i], c[j] = c[j], c[i]
	}
	s.candidates = c
}

func (s *Seishoku) Select(index int) (SelectResult, error) {
	if err := s.active(); err != nil {
		return SelectResult{}, err
	}
	if s.phase != SeishokuSelecting {
		return SelectResult{}, ErrWrongPhase
	}
	if index < 0 || index >= len(s.candidates) {
		return SelectResult{}, ErrOutOfRange
	}
	res := SelectResult{Picked: s.candidates[index], Delta: -5}
	if res.Picked == QualityGood {
		res.Delta = 3
		s.selScore += res.Delta
	}
	s.award(res.Delta)
	s.selections++

	if s.selections == SelectionRounds {
		s.candidates = nil
		s.startWeaving()
	} else {
		s.deal()
	}
	return res, nil
}

func (s *Seishoku) startWeaving() {
	s.sched.StopAll()
	s.phase = SeishokuWeaving
	s.round = 0
	s.openWindow()
}

// openWindow restarts the countdown so each round gets the full window.
func (s *Seishoku) openWindow() {
	s.sched.StopAll()
	s.remaining = WeaveWindow
	s.sched.Every(WeaveTick, func() {
		s.remaining -= WeaveTick
		if s.remaining <= 0 {
			s.resolveWeave("")
		}
	})
}

func (s *Seishoku) Weave(dir Direction) (WeaveResult, error) {
	if err := s.active(); err != nil {
		return WeaveResult{}, err
	}
	if s.phase != SeishokuWeaving {
		return WeaveResult{}, ErrWrongPhase
	}
	if dir != DirectionLeft && dir != DirectionRight {
		return WeaveResult{}, ErrOutOfRange
	}
	return s.resolveWeave(dir), nil
}

// resolveWeave judges the round; an empty direction is a timeout.
func (s *Seishoku) resolveWeave(dir Direction) WeaveResult {
	res := WeaveResult{Required: s.Required(), Got: dir}
	var densityDelta int
	switch {
	case dir == res.Required && s.remaining > weavePerfectAbove:
		res.Outcome, res.Delta, densityDelta = OutcomePerfect, 2, 3
	case dir == res.Required:
		res.Outcome, res.Delta, densityDelta = OutcomeGood, 1, 2
	default:
		res.Outcome, res.Delta, densityDelta = OutcomeMiss, -1, -1
	}
	s.density = clamp(s.density+densityDelta, 0, 100)
	res.Density = s.density
	s.award(res.Delta)
	s.weaves = append(s.weaves, res)

	s.round++
	if s.round >= WeavingRounds {
		s.complete()
	} else {
		s.openWindow()
	}
	return res
}

func (s *Seishoku) complete() {
	s.phase = SeishokuDone
	if s.density >= DensityToMeet {
		s.grant(game.BadgeWeavingMaster)
	}
	s.finish()
}
