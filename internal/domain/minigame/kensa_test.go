package minigame

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"igusafarm/internal/domain/game"
)

func TestPlaceDefectsSpacing(t *testing.T) {
	for seed := int64(0); seed < 200; seed++ {
		defects := placeDefects(rand.New(rand.NewSource(seed)))
		if len(defects) < defectMinCount || len(defects) > defectMinCount+defectExtraRange-1 {
			t.Fatalf("seed %d: %d defects", seed, len(defects))
		}
		for i, a := range defects {
			if a.X < defectMargin || a.X > KensaFieldSize-defectMargin || a.Y < defectMargin || a.Y > KensaFieldSize-defectMargin {
				t.Fatalf("seed %d: defect outside margin %+v", seed, a)
			}
			for _, b := range defects[i+1:] {
				if math.Hypot(a.X-b.X, a.Y-b.Y) < defectSpacing {
					t.Fatalf("seed %d: defects %d and %d too close", seed, a.ID, b.ID)
				}
			}
		}
	}
}

// lineOfDefects puts five defects along y=10 at x=10,30,50,70,89.2.
func lineOfDefects() *scriptedRand {
	return &scriptedRand{
		ints:   []int{0},
		floats: []float64{0, 0, 0.25, 0, 0.5, 0, 0.75, 0, 0.99, 0},
	}
}

func TestKensaInspect(t *testing.T) {
	h := newFakeHost(30)
	k := NewKensa(h, Callbacks{}, lineOfDefects())
	if n := len(k.Defects()); n != 5 {
		t.Fatalf("expected 5 defects, got %d", n)
	}

	hit, _ := k.Inspect(11, 12)
	if !hit.Hit || hit.Delta != 2 || hit.DefectID != 0 {
		t.Fatalf("unexpected hit %+v", hit)
	}
	again, _ := k.Inspect(10, 10)
	if !again.Repeat || again.Delta != 0 {
		t.Fatalf("re-tap should be a no-op: %+v", again)
	}
	miss, _ := k.Inspect(50, 50)
	if miss.Hit || miss.Delta != -1 {
		t.Fatalf("bare surface should cost 1: %+v", miss)
	}
	if k.Found() != 1 || h.qp() != 101 || k.Score() != 2 {
		t.Fatalf("found=%d qp=%d score=%d", k.Found(), h.qp(), k.Score())
	}
	if _, err := k.Inspect(-1, 50); !errors.Is(err, ErrOutOfRange) {
		t.Fatalf("expected ErrOutOfRange, got %v", err)
	}
}

func TestKensaFinishGate(t *testing.T) {
	h := newFakeHost(30)
	var done completion
	k := NewKensa(h, done.callbacks(), lineOfDefects())
	_, _ = k.Inspect(10, 10)
	_, _ = k.Inspect(30, 10)
	if _, err := k.Finish(); !errors.Is(err, ErrTooFewFound) {
		t.Fatalf("expected ErrTooFewFound, got %v", err)
	}
	_, _ = k.Inspect(50, 10)
	res, err := k.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if res.Found != 3 || res.Bonus != 5 || res.Rank != game.RankD {
		t.Fatalf("unexpected result %+v", res)
	}
	if done.calls != 1 || done.score != 11 {
		t.Fatalf("expected score 11, got %+v", done)
	}
	if !h.hasBadge(game.BadgeYatsushiroStar) || h.hasBadge(game.BadgeRankS) {
		t.Fatalf("unexpected badges %+v", h.state.Badges)
	}
}

func TestKensaRankS(t *testing.T) {
	h := newFakeHost(30)
	h.Dispatch(game.SetQP(540))
	k := NewKensa(h, Callbacks{}, lineOfDefects())
	for _, d := range k.Defects() {
		_, _ = k.Inspect(d.X, d.Y)
	}
	res, err := k.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	// 540 + 5*2 + 10
	if res.Bonus != 10 || res.Rank != game.RankS || h.qp() != 560 {
		t.Fatalf("unexpected result %+v qp=%d", res, h.qp())
	}
	if !h.hasBadge(game.BadgeRankS) {
		t.Fatalf("expected rank_s")
	}
	if got, ok := k.Result(); !ok || got.Rank != game.RankS {
		t.Fatalf("result not kept")
	}
}

func TestInspectionBonus(t *testing.T) {
	cases := map[int]int{0: -5, 1: 0, 2: 0, 3: 5, 4: 5, 5: 10, 8: 10}
	for found, want := range cases {
		if got := inspectionBonus(found); got != want {
			t.Fatalf("found %d: expected %d, got %d", found, want, got)
		}
	}
}
