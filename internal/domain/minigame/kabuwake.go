package minigame

import "igusafarm/internal/domain/game"

const (
	KabuwakeStripLength = 100.0
	KabuwakeCuts        = 10

	kabuwakeSeedlingGap = 1.0
	kabuwakeGroupGap    = 2.0
)

type Outcome string

const (
	OutcomePerfect Outcome = "perfect"
	OutcomeGood    Outcome = "good"
	OutcomeMiss    Outcome = "miss"
	OutcomeBad     Outcome = "bad"
)

type Seedling struct {
	X        float64 `json:"x"`
	Group    int     `json:"group"`
	NewShoot bool    `json:"new_shoot"`
}

type CutResult struct {
	From      float64 `json:"from"`
	To        float64 `json:"to"`
	Count     int     `json:"count"`
	NewShoots int     `json:"new_shoots"`
	Outcome   Outcome `json:"outcome"`
	Delta     int     `json:"delta"`
}

// Kabuwake is the division stage: the player splits a strip of seedlings
// into sections, each of which should hold one clump around a new shoot.
type Kabuwake struct {
	base
	seedlings []Seedling
	cuts      []float64
	results   []CutResult
}

func NewKabuwake(host Host, cb Callbacks, rnd Rand) *Kabuwake {
	return &Kabuwake{
		base:      newBase(game.StageKabuwake, host, cb),
		seedlings: generateSeedlings(rnd),
	}
}

// generateSeedlings lays out groups of 3 or 4 with exactly one new shoot
// each until the strip is full.
func generateSeedlings(rnd Rand) []Seedling {
	var out []Seedling
	x := kabuwakeSeedlingGap
	for group := 0; ; group++ {
		size := 3 + rnd.Intn(2)
		if x+float64(size-1)*kabuwakeSeedlingGap >= KabuwakeStripLength {
			break
		}
		shoot := rnd.Intn(size)
		for i := 0; i < size; i++ {
			out = append(out, Seedling{X: x, Group: group, NewShoot: i == shoot})
			x += kabuwakeSeedlingGap
		}
		x += kabuwakeGroupGap - kabuwakeSeedlingGap
	}
	return out
}

func (k *Kabuwake) Seedlings() []Seedling {
	out := make([]Seedling, len(k.seedlings))
	copy(out, k.seedlings)
	return out
}

func (k *Kabuwake) Results() []CutResult {
	out := make([]CutResult, len(k.results))
	copy(out, k.results)
	return out
}

func (k *Kabuwake) CutsLeft() int { return KabuwakeCuts - len(k.cuts) }

// Cut closes the section [previous cut, at) and judges it.
func (k *Kabuwake) Cut(at float64) (CutResult, error) {
	if err := k.active(); err != nil {
		return CutResult{}, err
	}
	prev := 0.0
	if n := len(k.cuts); n > 0 {
		prev = k.cuts[n-1]
	}
	if at <= prev || at > KabuwakeStripLength {
		return CutResult{}, ErrInvalidCut
	}

	res := CutResult{From: prev, To: at}
	for _, s := range k.seedlings {
		if s.X >= prev && s.X < at {
			res.Count++
			if s.NewShoot {
				res.NewShoots++
			}
		}
	}
	res.Outcome, res.Delta = judgeSection(res.Count, res.NewShoots)

	k.cuts = append(k.cuts, at)
	k.results = append(k.results, res)
	k.award(res.Delta)

	if len(k.cuts) == KabuwakeCuts {
		k.complete()
	}
	return res, nil
}

func (k *Kabuwake) complete() {
	perfect := 0
	for _, r := range k.results {
		if r.Outcome == OutcomePerfect {
			perfect++
		}
	}
	if perfect == KabuwakeCuts {
		k.grant(game.BadgeKabuwakeMaster)
	}
	k.score = kabuwakeScore(k.results)
	k.finish()
}

func kabuwakeScore(results []CutResult) int {
	total := 0
	for _, r := range results {
		_, delta := judgeSection(r.Count, r.NewShoots)
		if delta > 0 {
			total += delta
		}
	}
	return total
}

func judgeSection(count, newShoots int) (Outcome, int) {
	if newShoots >= 1 {
		switch {
		case count >= 3 && count <= 4:
			return OutcomePerfect, 10
		case count >= 2 && count <= 5:
			return OutcomeGood, 5
		default:
			return OutcomeBad, -5
		}
	}
	if count >= 2 && count <= 3 {
		return OutcomeGood, 5
	}
	return OutcomeBad, -5
}
