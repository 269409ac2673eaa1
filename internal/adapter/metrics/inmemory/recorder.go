package inmemory

import "sync"

type Snapshot struct {
	ActionTotal     uint64            `json:"action_total"`
	ByActionType    map[string]uint64 `json:"by_action_type"`
	StagesCompleted uint64            `json:"stages_completed"`
	StageScores     map[string]int    `json:"stage_scores"`
	QuizAnswered    uint64            `json:"quiz_answered"`
	QuizCorrect     uint64            `json:"quiz_correct"`
	PersistFailures uint64            `json:"persist_failures"`
	FailuresByOp    map[string]uint64 `json:"failures_by_op"`
}

type Recorder struct {
	mu           sync.Mutex
	byAction     map[string]uint64
	stages       uint64
	stageScores  map[string]int
	quizAnswered uint64
	quizCorrect  uint64
	failuresByOp map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byAction:     map[string]uint64{},
		stageScores:  map[string]int{},
		failuresByOp: map[string]uint64{},
	}
}

func (r *Recorder) RecordAction(actionType string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byAction[actionType]++
}

// RecordStageComplete keeps the latest score per stage.
func (r *Recorder) RecordStageComplete(stage string, score int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stages++
	r.stageScores[stage] = score
}

func (r *Recorder) RecordQuizAnswer(correct bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.quizAnswered++
	if correct {
		r.quizCorrect++
	}
}

func (r *Recorder) RecordPersistFailure(op string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failuresByOp[op]++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		StagesCompleted: r.stages,
		QuizAnswered:    r.quizAnswered,
		QuizCorrect:     r.quizCorrect,
		ByActionType:    make(map[string]uint64, len(r.byAction)),
		StageScores:     make(map[string]int, len(r.stageScores)),
		FailuresByOp:    make(map[string]uint64, len(r.failuresByOp)),
	}
	for k, v := range r.byAction {
		out.ByActionType[k] = v
		out.ActionTotal += v
	}
	for k, v := range r.stageScores {
		out.StageScores[k] = v
	}
	for k, v := range r.failuresByOp {
		out.FailuresByOp[k] = v
		out.PersistFailures += v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
