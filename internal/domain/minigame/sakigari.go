package minigame

import "igusafarm/internal/domain/game"

const (
	SakigariCuts          = 20
	SakigariTargetHeight  = 45
	SakigariMinHeight     = 30
	SakigariMaxHeight     = 60
	sakigariPerfectToMeet = SakigariCuts / 2
)

type SakigariResult struct {
	Height  int     `json:"height"`
	Outcome Outcome `json:"outcome"`
	Delta   int     `json:"delta"`
}

// Sakigari is the first cut: twenty cuts aimed at a fixed height.
type Sakigari struct {
	base
	rnd      Rand
	height   int
	cuts     int
	perfects int
}

func NewSakigari(host Host, cb Callbacks, rnd Rand) *Sakigari {
	s := &Sakigari{base: newBase(game.StageSakigari, host, cb), rnd: rnd}
	s.height = s.freshHeight()
	return s
}

func (s *Sakigari) freshHeight() int { return 40 + s.rnd.Intn(11) }

func (s *Sakigari) Height() int   { return s.height }
func (s *Sakigari) CutsLeft() int { return SakigariCuts - s.cuts }
func (s *Sakigari) Perfects() int { return s.perfects }

func (s *Sakigari) SetHeight(h int) error {
	if err := s.active(); err != nil {
		return err
	}
	s.height = clamp(h, SakigariMinHeight, SakigariMaxHeight)
	return nil
}

func (s *Sakigari) Adjust(delta int) error {
	return s.SetHeight(s.height + delta)
}

func (s *Sakigari) Cut() (SakigariResult, error) {
	if err := s.active(); err != nil {
		return SakigariResult{}, err
	}
	res := SakigariResult{Height: s.height}
	res.Outcome, res.Delta = judgeHeight(s.height)
	if res.Outcome == OutcomePerfect {
		s.perfects++
	}
	s.award(res.Delta)
	s.cuts++

	if s.cuts == SakigariCuts {
		if s.perfects >= sakigariPerfectToMeet {
			s.grant(game.BadgeSakigariMaster)
		}
		s.finish()
		return res, nil
	}
	s.height = s.freshHeight()
	return res, nil
}

func judgeHeight(h int) (Outcome, int) {
	switch diff := abs(h - SakigariTargetHeight); {
	case diff <= 1:
		return OutcomePerfect, 15
	case diff <= 3:
		return OutcomeGood, 8
	default:
		return OutcomeMiss, -20
	}
}
