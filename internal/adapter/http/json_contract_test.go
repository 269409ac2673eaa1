package httpadapter

import (
	"encoding/json"
	"testing"

	"igusafarm/internal/app/play"
	"igusafarm/internal/domain/game"
	"igusafarm/internal/domain/quiz"
)

// The save layout keeps camelCase keys so existing saves stay readable;
// envelopes built here use snake_case.
func TestResponseJSONKeys(t *testing.T) {
	state := game.InitialState()

	cases := []struct {
		name    string
		payload any
		want    []string
		notWant []string
	}{
		{
			name:    "status",
			payload: play.Status{SessionID: "s1", State: state, StageNumber: 1},
			want:    []string{"session_id", "state", "stage", "stage_number", "mood", "quiz_pending", "debug"},
			notWant: []string{"SessionID", "StageNumber", "mounted_stage"},
		},
		{
			name:    "quiz",
			payload: quizResponse{ID: "q1", Category: quiz.CategoryKnowledge, Question: "?", Options: []string{"a", "b"}},
			want:    []string{"id", "category", "question", "options"},
			notWant: []string{"correctIndex", "correct_index", "explanation"},
		},
		{
			name:    "answer",
			payload: play.AnswerResult{Correct: true, CorrectIndex: 1},
			want:    []string{"correct", "correct_index", "explanation", "quality_delta"},
			notWant: []string{"CorrectIndex", "QualityDelta"},
		},
		{
			name:    "result",
			payload: play.Result{Rank: game.RankS, QualityPoints: 300},
			want:    []string{"rank", "message", "quality_points", "quiz_answered", "quiz_correct", "badges"},
			notWant: []string{"QualityPoints"},
		},
		{
			name:    "input",
			payload: inputResponse{Status: play.Status{SessionID: "s1"}},
			want:    []string{"status"},
			notWant: []string{"result", "stage"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := marshalToMap(t, tc.payload)
			for _, key := range tc.want {
				if _, ok := got[key]; !ok {
					t.Fatalf("expected key %q in %v", key, got)
				}
			}
			for _, key := range tc.notWant {
				if _, ok := got[key]; ok {
					t.Fatalf("unexpected key %q in %v", key, got)
				}
			}
		})
	}
}

func TestStatusNestsSaveLayout(t *testing.T) {
	got := marshalToMap(t, play.Status{State: game.InitialState()})

	state := asMap(got["state"])
	for _, key := range []string{"currentDay", "currentStage", "qualityPoints", "stageProgress", "isGameCompleted"} {
		if _, ok := state[key]; !ok {
			t.Fatalf("expected nested key state.%s in %v", key, state)
		}
	}
	if _, ok := state["current_day"]; ok {
		t.Fatalf("unexpected nested key state.current_day")
	}
	stage := asMap(got["stage"])
	if _, ok := stage["startDay"]; !ok {
		t.Fatalf("expected nested key stage.startDay in %v", stage)
	}
}

func marshalToMap(t *testing.T, v any) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	var got map[string]any
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	return got
}

func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}
