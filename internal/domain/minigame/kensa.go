package minigame

import (
	"math"

	"igusafarm/internal/domain/game"
)

const (
	KensaFieldSize   = 100.0
	KensaMinFound    = 3
	DefectHitRadius  = 5.0
	defectMargin     = 10.0
	defectSpacing    = 12.0
	defectMinCount   = 5
	defectExtraRange = 4
	defectAttempts   = 200
)

type Defect struct {
	ID    int     `json:"id"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Found bool    `json:"found"`
}

type InspectResult struct {
	DefectID int  `json:"defect_id"`
	Hit      bool `json:"hit"`
	Repeat   bool `json:"repeat"`
	Delta    int  `json:"delta"`
}

type KensaResult struct {
	Found   int       `json:"found"`
	Total   int       `json:"total"`
	Bonus   int       `json:"bonus"`
	Rank    game.Rank `json:"rank"`
	Message string    `json:"message"`
}

// Kensa is the final inspection of the finished mat. Finishing it also
// settles the rank for the whole run.
type Kensa struct {
	base
	defects []Defect
	found   int
	result  *KensaResult
}

func NewKensa(host Host, cb Callbacks, rnd Rand) *Kensa {
	return &Kensa{
		base:    newBase(game.StageKensa, host, cb),
		defects: placeDefects(rnd),
	}
}

// placeDefects scatters 5 to 8 defects with a minimum spacing. Slots that
// cannot be placed within the attempt budget are dropped.
func placeDefects(rnd Rand) []Defect {
	want := defectMinCount + rnd.Intn(defectExtraRange)
	span := KensaFieldSize - 2*defectMargin
	out := make([]Defect, 0, want)
	for attempts := 0; len(out) < want && attempts < defectAttempts; attempts++ {
		x := defectMargin + rnd.Float64()*span
		y := defectMargin + rnd.Float64()*span
		if !farFromAll(out, x, y, defectSpacing) {
			continue
		}
		out = append(out, Defect{ID: len(out), X: x, Y: y})
	}
	return out
}

func farFromAll(defects []Defect, x, y, spacing float64) bool {
	for _, d := range defects {
		if math.Hypot(d.X-x, d.Y-y) < spacing {
			return false
		}
	}
	return true
}

func (k *Kensa) Defects() []Defect { return append([]Defect(nil), k.defects...) }
func (k *Kensa) Found() int        { return k.found }

func (k *Kensa) Result() (KensaResult, bool) {
	if k.result == nil {
		return KensaResult{}, false
	}
	return *k.result, true
}

// Inspect taps the mat at (x, y). A new defect earns 2, a known one is a
// no-op and bare surface costs 1.
func (k *Kensa) Inspect(x, y float64) (InspectResult, error) {
	if err := k.active(); err != nil {
		return InspectResult{}, err
	}
	if x < 0 || x > KensaFieldSize || y < 0 || y > KensaFieldSize {
		return InspectResult{}, ErrOutOfRange
	}
	for i := range k.defects {
		d := &k.defects[i]
		if math.Hypot(d.X-x, d.Y-y) > DefectHitRadius {
			continue
		}
		res := InspectResult{DefectID: d.ID, Hit: true}
		if d.Found {
			res.Repeat = true
			return res, nil
		}
		d.Found = true
		k.found++
		res.Delta = 2
		k.award(res.Delta)
		return res, nil
	}
	res := InspectResult{DefectID: -1, Delta: -1}
	k.award(res.Delta)
	return res, nil
}

func inspectionBonus(found int) int {
	switch {
	case found >= 5:
		return 10
	case found >= 3:
		return 5
	case found >= 1:
		return 0
	default:
		return -5
	}
}

// Finish closes the inspection, applies the block bonus and settles the
// final rank from the resulting QP.
func (k *Kensa) Finish() (KensaResult, error) {
	if err := k.active(); err != nil {
		return KensaResult{}, err
	}
	if k.found < KensaMinFound {
		return KensaResult{}, ErrTooFewFound
	}
	res := KensaResult{Found: k.found, Total: len(k.defects), Bonus: inspectionBonus(k.found)}
	k.award(res.Bonus)

	res.Rank = game.FinalRank(k.host.View().QualityPoints)
	res.Message = game.RankMessage(res.Rank)
	k.grant(game.BadgeYatsushiroStar)
	if res.Rank == game.RankS {
		k.grant(game.BadgeRankS)
	}
	k.result = &res
	k.finish()
	return res, nil
}
