package game

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var fixedNow = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)

func testReducer() Reducer {
	return Reducer{Now: func() time.Time { return fixedNow }}
}

func TestReduce_QualityPointsNeverNegative(t *testing.T) {
	r := testReducer()
	actions := []Action{
		AddQP(-500), AddQP(30), SetQP(-10), AnswerQuiz(false), AddQP(-1),
		AnswerQuiz(true), SetQP(7), AddQP(-8), AddQP(-1 << 20),
	}
	state := InitialState()
	for i, a := range actions {
		state = r.Reduce(state, a)
		if state.QualityPoints < 0 {
			t.Fatalf("step %d (%s): qp went negative: %d", i, a.Type, state.QualityPoints)
		}
	}
}

func TestReduce_EndToEndScenario(t *testing.T) {
	r := testReducer()
	state := r.Reduce(InitialState(), StartGame(""))
	if state.QualityPoints != 100 {
		t.Fatalf("expected 100 qp at start, got %d", state.QualityPoints)
	}
	for i := 0; i < 5; i++ {
		state = r.Reduce(state, AddQP(5))
	}
	if state.QualityPoints != 125 {
		t.Fatalf("expected 125 qp, got %d", state.QualityPoints)
	}
	state = r.Reduce(state, SetQP(-10))
	if state.QualityPoints != 0 {
		t.Fatalf("expected clamp to 0, got %d", state.QualityPoints)
	}
	state = r.Reduce(state, EarnBadge(Badge{ID: BadgeRankS}))
	state = r.Reduce(state, ResetGame())
	if state.QualityPoints != 100 || state.CurrentDay != 1 || len(state.Badges) != 0 {
		t.Fatalf("unexpected state after reset: %+v", state)
	}
}

func TestReduce_StartGameVariety(t *testing.T) {
	r := testReducer()
	dirty := r.Reduce(InitialState(), AddQP(40))
	dirty = r.Reduce(dirty, JumpToDay(12))

	got := r.Reduce(dirty, StartGame(VarietyHinomidori))
	want := InitialState()
	want.Variety = VarietyHinomidori
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("start game mismatch (-want +got):\n%s", diff)
	}

	if got := r.Reduce(dirty, StartGame("")).Variety; got != VarietyZairai {
		t.Fatalf("expected default variety, got %s", got)
	}
	if got := r.Reduce(dirty, StartGame("bogus")).Variety; got != VarietyZairai {
		t.Fatalf("unknown variety should fall back to default, got %s", got)
	}
}

func TestReduce_NextDayAdvancesStageAndClamps(t *testing.T) {
	r := testReducer()
	state := InitialState()
	state = r.Reduce(state, NextDay())
	state = r.Reduce(state, NextDay())
	if state.CurrentDay != 3 || state.CurrentStage != StageUetsuke {
		t.Fatalf("expected day 3 uetsuke, got day %d %s", state.CurrentDay, state.CurrentStage)
	}
	state = r.Reduce(state, JumpToDay(30))
	state = r.Reduce(state, NextDay())
	if state.CurrentDay != 30 || state.CurrentStage != StageKensa {
		t.Fatalf("expected clamp at day 30, got %d %s", state.CurrentDay, state.CurrentStage)
	}
	if state.IsGameCompleted {
		t.Fatalf("game must not complete before kensa is completed")
	}
}

func TestReduce_JumpToDayClamps(t *testing.T) {
	r := testReducer()
	state := r.Reduce(InitialState(), JumpToDay(45))
	if state.CurrentDay != 30 || state.CurrentStage != StageKensa {
		t.Fatalf("expected clamp to 30, got %d", state.CurrentDay)
	}
	state = r.Reduce(state, JumpToDay(-3))
	if state.CurrentDay != 1 || state.CurrentStage != StageKabuwake {
		t.Fatalf("expected clamp to 1, got %d", state.CurrentDay)
	}
	state = r.Reduce(state, JumpToDay(21))
	if state.CurrentStage != StageShukaku {
		t.Fatalf("expected shukaku on day 21, got %s", state.CurrentStage)
	}
}

func TestReduce_GameCompletedDerivation(t *testing.T) {
	r := testReducer()
	state := r.Reduce(InitialState(), JumpToDay(30))
	state = r.Reduce(state, CompleteStage(StageKensa, 12))
	if !state.IsGameCompleted {
		t.Fatalf("expected game completed once kensa is done on day 30")
	}
	state = r.Reduce(state, NextDay())
	if !state.IsGameCompleted || state.CurrentDay != 30 {
		t.Fatalf("completion must survive next day at the end of the timeline")
	}
}

func TestReduce_CompleteStageOverwritesOnlyThatStage(t *testing.T) {
	r := testReducer()
	state := r.Reduce(InitialState(), CompleteStage(StageKabuwake, 40))
	state = r.Reduce(state, CompleteStage(StageUetsuke, 15))
	before := state.Clone()

	state = r.Reduce(state, CompleteStage(StageKabuwake, 70))
	if got := state.StageProgress[StageKabuwake]; got != (StageProgress{Completed: true, Score: 70}) {
		t.Fatalf("unexpected kabuwake progress: %+v", got)
	}
	for id, p := range before.StageProgress {
		if id == StageKabuwake {
			continue
		}
		if state.StageProgress[id] != p {
			t.Fatalf("stage %s changed from %+v to %+v", id, p, state.StageProgress[id])
		}
	}
	if before.StageProgress[StageKabuwake].Score != 40 {
		t.Fatalf("reducer mutated its input")
	}
}

func TestReduce_CompleteStageUnknownIsNoop(t *testing.T) {
	state := InitialState()
	got := testReducer().Reduce(state, CompleteStage("weeding", 10))
	if diff := cmp.Diff(state, got); diff != "" {
		t.Fatalf("unknown stage should be a no-op:\n%s", diff)
	}
}

func TestReduce_AnswerQuiz(t *testing.T) {
	r := testReducer()
	state := r.Reduce(InitialState(), AnswerQuiz(true))
	state = r.Reduce(state, AnswerQuiz(false))
	if state.QuizAnswered != 2 || state.QuizCorrect != 1 {
		t.Fatalf("unexpected counters %d/%d", state.QuizCorrect, state.QuizAnswered)
	}
	if state.QualityPoints != 105 {
		t.Fatalf("expected +5 for the correct answer, got %d", state.QualityPoints)
	}
}

func TestReduce_EarnBadgeIsIdempotent(t *testing.T) {
	r := testReducer()
	b, _ := BadgeByID(BadgeKabuwakeMaster)
	state := r.Reduce(InitialState(), EarnBadge(b))
	state = r.Reduce(state, EarnBadge(b))
	other, _ := BadgeByID(BadgeWaterMaster)
	state = r.Reduce(state, EarnBadge(other))

	if len(state.Badges) != 2 {
		t.Fatalf("expected 2 badges, got %d", len(state.Badges))
	}
	if state.Badges[0].ID != BadgeKabuwakeMaster || state.Badges[1].ID != BadgeWaterMaster {
		t.Fatalf("badge insertion order not preserved: %+v", state.Badges)
	}
	if state.Badges[0].EarnedAt == nil || !state.Badges[0].EarnedAt.Equal(fixedNow) {
		t.Fatalf("expected earnedAt stamped at grant time")
	}
}

func TestReduce_UnknownActionIsNoop(t *testing.T) {
	state := testReducer().Reduce(InitialState(), AddQP(9))
	got := testReducer().Reduce(state, Action{Type: "HARVEST_MOON"})
	if diff := cmp.Diff(state, got); diff != "" {
		t.Fatalf("unknown action changed state:\n%s", diff)
	}
}

func TestReduce_LoadGame(t *testing.T) {
	r := testReducer()
	saved := r.Reduce(InitialState(), JumpToDay(14))
	saved = r.Reduce(saved, AddQP(210))
	saved = r.Reduce(saved, CompleteStage(StageKabuwake, 30))

	got := r.Reduce(InitialState(), LoadGame(saved))
	if diff := cmp.Diff(saved, got); diff != "" {
		t.Fatalf("load mismatch (-want +got):\n%s", diff)
	}

	broken := saved.Clone()
	broken.CurrentDay = 77
	got = r.Reduce(saved, LoadGame(broken))
	if diff := cmp.Diff(InitialState(), got); diff != "" {
		t.Fatalf("invalid snapshot should fall back to initial state:\n%s", diff)
	}

	got = r.Reduce(saved, Action{Type: ActionLoadGame})
	if got.CurrentDay != 1 {
		t.Fatalf("empty load should fall back to initial state")
	}
}
