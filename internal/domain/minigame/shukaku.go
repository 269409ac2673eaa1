package minigame

import (
	"time"

	"igusafarm/internal/domain/game"
)

type HarvestTime string

const (
	HarvestMorning HarvestTime = "morning"
	HarvestNoon    HarvestTime = "noon"
	HarvestEvening HarvestTime = "evening"
)

type ShukakuPhase string

const (
	ShukakuChoosing   ShukakuPhase = "choosing"
	ShukakuHarvesting ShukakuPhase = "harvesting"
	ShukakuDone       ShukakuPhase = "done"
)

const (
	HarvestRound        = 30 * time.Second
	HarvestTick         = 50 * time.Millisecond
	HarvestMaxTargets   = 8
	HarvestComboToMeet  = 50
	harvestSpawnStart   = 600 * time.Millisecond
	harvestSpawnEnd     = 250 * time.Millisecond
	harvestBadChance    = 0.2
	harvestRisePerTick  = 2.0
	harvestFieldBottom  = 100.0
	harvestGoodTapDelta = 2
	harvestBadTapDelta  = -5
)

type Target struct {
	ID   int     `json:"id"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Good bool    `json:"good"`
}

type TapResult struct {
	Good  bool `json:"good"`
	Delta int  `json:"delta"`
	Combo int  `json:"combo"`
}

// Shukaku is the harvest: pick a time of day, then a timed arcade round
// of rising stalks where good ones build a combo and bad ones break it.
type Shukaku struct {
	base
	rnd        Rand
	phase      ShukakuPhase
	choice     HarvestTime
	elapsed    time.Duration
	sinceSpawn time.Duration
	targets    []Target
	nextID     int
	combo      int
	maxCombo   int
}

func NewShukaku(host Host, cb Callbacks, rnd Rand) *Shukaku {
	return &Shukaku{
		base:  newBase(game.StageShukaku, host, cb),
		rnd:   rnd,
		phase: ShukakuChoosing,
	}
}

func (s *Shukaku) Phase() ShukakuPhase { return s.phase }
func (s *Shukaku) Choice() HarvestTime { return s.choice }
func (s *Shukaku) Combo() int          { return s.combo }
func (s *Shukaku) MaxCombo() int       { return s.maxCombo }
func (s *Shukaku) Targets() []Target   { return append([]Target(nil), s.targets...) }

func (s *Shukaku) Remaining() time.Duration {
	if s.elapsed >= HarvestRound {
		return 0
	}
	return HarvestRound - s.elapsed
}

func harvestTimeDelta(t HarvestTime) (int, bool) {
	switch t {
	case HarvestMorning, HarvestEvening:
		return 10, true
	case HarvestNoon:
		return -15, true
	default:
		return 0, false
	}
}

// ChooseTime fixes the harvest time and starts the round.
func (s *Shukaku) ChooseTime(t HarvestTime) (int, error) {
	if err := s.active(); err != nil {
		return 0, err
	}
	if s.phase != ShukakuChoosing {
		return 0, ErrAlreadyDecided
	}
	delta, ok := harvestTimeDelta(t)
	if !ok {
		return 0, ErrOutOfRange
	}
	s.choice = t
	s.award(delta)

	s.sched.StopAll()
	s.phase = ShukakuHarvesting
	s.sched.Every(HarvestTick, s.tick)
	return delta, nil
}

// spawnInterval shrinks linearly over the round.
func (s *Shukaku) spawnInterval() time.Duration {
	progress := float64(s.elapsed) / float64(HarvestRound)
	if progress > 1 {
		progress = 1
	}
	span := float64(harvestSpawnStart - harvestSpawnEnd)
	return harvestSpawnStart - time.Duration(span*progress)
}

func (s *Shukaku) tick() {
	s.elapsed += HarvestTick
	s.sinceSpawn += HarvestTick

	live := s.targets[:0]
	for _, t := range s.targets {
		t.Y -= harvestRisePerTick
		if t.Y >= 0 {
			live = append(live, t)
		}
	}
	s.targets = live

	if s.sinceSpawn >= s.spawnInterval() && len(s.targets) < HarvestMaxTargets {
		s.sinceSpawn = 0
		good := s.rnd.Float64() >= harvestBadChance
		s.targets = append(s.targets, Target{
			ID:   s.nextID,
			X:    10 + s.rnd.Float64()*80,
			Y:    harvestFieldBottom,
			Good: good,
		})
		s.nextID++
	}

	if s.elapsed >= HarvestRound {
		s.endRound()
	}
}

func (s *Shukaku) Tap(id int) (TapResult, error) {
	if err := s.active(); err != nil {
		return TapResult{}, err
	}
	if s.phase != ShukakuHarvesting {
		return TapResult{}, ErrWrongPhase
	}
	idx := -1
	for i, t := range s.targets {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return TapResult{}, ErrOutOfRange
	}
	t := s.targets[idx]
	s.targets = append(s.targets[:idx], s.targets[idx+1:]...)

	res := TapResult{Good: t.Good}
	if t.Good {
		res.Delta = harvestGoodTapDelta
		s.combo++
		if s.combo > s.maxCombo {
			s.maxCombo = s.combo
		}
	} else {
		res.Delta = harvestBadTapDelta
		s.combo = 0
	}
	res.Combo = s.combo
	// tap deltas count toward the score as is, penalties included.
	s.dispatchQP(res.Delta)
	s.score += res.Delta
	return res, nil
}

func (s *Shukaku) endRound() {
	s.phase = ShukakuDone
	s.targets = nil
	if s.maxCombo >= HarvestComboToMeet {
		s.grant(game.BadgeHarvestMaster)
	}
	s.grant(game.BadgeFirstHarvest)
	s.finish()
}
