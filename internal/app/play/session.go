package play

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"igusafarm/internal/app/ports"
	"igusafarm/internal/domain/game"
	"igusafarm/internal/domain/minigame"
	"igusafarm/internal/domain/quiz"
)

var (
	ErrDebugDisabled  = errors.New("debug actions are disabled")
	ErrNoQuiz         = errors.New("no quiz pending")
	ErrQuizPending    = errors.New("answer the pending quiz first")
	ErrInvalidAnswer  = errors.New("answer index out of range")
	ErrNotMounted     = errors.New("no stage mounted")
	ErrGameCompleted  = errors.New("game already completed")
	ErrGameInProgress = errors.New("game not completed yet")
	ErrStageMounted   = errors.New("unmount the stage before moving the calendar")
)

const saveTimeout = 2 * time.Second

// Saver is the persistence boundary. Implementations swallow their own
// failures.
type Saver interface {
	Save(ctx context.Context, state game.GameState)
	Load(ctx context.Context) *game.GameState
	Clear(ctx context.Context)
}

type Options struct {
	Saver   Saver
	Metrics ports.GameMetrics
	Logger  *slog.Logger
	Debug   bool
	Rand    *rand.Rand
	Now     func() time.Time
}

// Session owns the canonical GameState of one player together with the
// mounted stage engine and the quiz history. Every exported method takes
// the session lock; engine callbacks run under it too.
type Session struct {
	mu sync.Mutex

	id      string
	state   game.GameState
	reducer game.Reducer
	saver   Saver
	metrics ports.GameMetrics
	logger  *slog.Logger
	debug   bool
	rnd     *rand.Rand
	quizzes *quiz.Engine

	pending *quiz.Quiz
	engine  minigame.Engine
}

type Status struct {
	SessionID    string         `json:"session_id"`
	State        game.GameState `json:"state"`
	Stage        game.StageInfo `json:"stage"`
	StageNumber  int            `json:"stage_number"`
	Mood         game.Mood      `json:"mood"`
	QuizPending  bool           `json:"quiz_pending"`
	MountedStage game.StageID   `json:"mounted_stage,omitempty"`
	Debug        bool           `json:"debug"`
}

type AnswerResult struct {
	Correct      bool   `json:"correct"`
	CorrectIndex int    `json:"correct_index"`
	Explanation  string `json:"explanation"`
	QualityDelta int    `json:"quality_delta"`
}

type Result struct {
	Rank          game.Rank    `json:"rank"`
	Message       string       `json:"message"`
	QualityPoints int          `json:"quality_points"`
	QuizAnswered  int          `json:"quiz_answered"`
	QuizCorrect   int          `json:"quiz_correct"`
	Badges        []game.Badge `json:"badges"`
}

// New restores the last save when one is available and usable.
func New(opts Options) *Session {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	metrics := opts.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	id := uuid.NewString()

	s := &Session{
		id:      id,
		state:   game.InitialState(),
		reducer: game.Reducer{Now: opts.Now},
		saver:   opts.Saver,
		metrics: metrics,
		logger:  logger.With("session_id", id),
		debug:   opts.Debug,
		rnd:     rnd,
		quizzes: quiz.NewEngine(rnd),
	}
	if s.saver != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		saved := s.saver.Load(ctx)
		cancel()
		if saved != nil {
			s.state = s.reducer.Reduce(s.state, game.LoadGame(*saved))
			s.logger.Info("save restored", "day", s.state.CurrentDay, "stage", s.state.CurrentStage)
		}
	}
	return s
}

func (s *Session) ID() string { return s.id }

func (s *Session) State() game.GameState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

func (s *Session) View() game.View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.View()
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	stage := game.StageByDay(s.state.CurrentDay)
	number := game.StageNumber(s.state.CurrentStage)
	st := Status{
		SessionID:   s.id,
		State:       s.state.Clone(),
		Stage:       stage,
		StageNumber: number,
		Mood:        game.MoodByQP(s.state.QualityPoints, number),
		QuizPending: s.pending != nil,
		Debug:       s.debug,
	}
	if s.engine != nil {
		st.MountedStage = s.engine.Stage()
	}
	return st
}

// Dispatch applies a raw reducer action from the shell. SET_QP and
// JUMP_TO_DAY only pass in debug mode.
func (s *Session) Dispatch(a game.Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.IsPrivileged() && !s.debug {
		return ErrDebugDisabled
	}
	if movesCalendar(a) && s.engine != nil {
		return ErrStageMounted
	}
	s.dispatch(a)
	return nil
}

// StartGame wipes the save and the quiz history and begins a new run.
func (s *Session) StartGame(variety game.Variety) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restart(game.StartGame(variety))
	s.logger.Info("game started", "variety", s.state.Variety)
}

// Reset returns to the initial state the same way StartGame does.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.restart(game.ResetGame())
	s.logger.Info("game reset")
}

// NextDay is refused while a stage is mounted; a mounted stage keeps its
// own day and moves the calendar through its callbacks.
func (s *Session) NextDay() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		return ErrStageMounted
	}
	s.dispatch(game.NextDay())
	return nil
}

// CompleteStage reports a finished stage on behalf of a shell that runs the
// stage itself.
func (s *Session) CompleteStage(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completeStage(s.state.CurrentStage, score)
}

func (s *Session) PendingQuiz() (quiz.Quiz, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return quiz.Quiz{}, false
	}
	return *s.pending, true
}

func (s *Session) AnswerQuiz(index int) (AnswerResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending == nil {
		return AnswerResult{}, ErrNoQuiz
	}
	q := *s.pending
	if index < 0 || index >= len(q.Options) {
		return AnswerResult{}, ErrInvalidAnswer
	}
	correct := quiz.Check(q, index)
	before := s.state.QualityPoints
	s.pending = nil
	s.dispatch(game.AnswerQuiz(correct))
	s.metrics.RecordQuizAnswer(correct)

	if s.state.QuizCorrect >= game.QuizMaster50Threshold {
		s.grant(game.BadgeQuizMaster50)
	}
	if s.state.QuizCorrect >= game.QuizProfessorThreshold {
		s.grant(game.BadgeIgusaProfessor)
	}
	return AnswerResult{
		Correct:      correct,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
		QualityDelta: s.state.QualityPoints - before,
	}, nil
}

// MountStage returns the engine for the current stage, building a new one
// unless a live engine for the same stage is already mounted.
func (s *Session) MountStage() (minigame.Engine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pending != nil {
		return nil, ErrQuizPending
	}
	if s.state.IsGameCompleted {
		return nil, ErrGameCompleted
	}
	stage := s.state.CurrentStage
	if s.engine != nil && s.engine.Stage() == stage && !s.engine.Finished() {
		return s.engine, nil
	}
	s.unmount()

	eng, err := minigame.New(stage, sessionHost{s}, s.callbacks(stage), s.rnd)
	if err != nil {
		return nil, err
	}
	s.engine = eng
	s.logger.Info("stage mounted", "stage", stage, "day", s.state.CurrentDay)
	return eng, nil
}

func (s *Session) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unmount()
}

// WithEngine runs fn against the mounted engine under the session lock.
func (s *Session) WithEngine(fn func(minigame.Engine) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine == nil {
		return ErrNotMounted
	}
	return fn(s.engine)
}

// Advance moves the mounted engine's clock.
func (s *Session) Advance(dt time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.engine != nil {
		s.engine.Advance(dt)
	}
}

// Run feeds wall-clock time to whatever engine is mounted until ctx ends.
// Nothing advances while no engine is mounted.
func (s *Session) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			dt := now.Sub(last)
			last = now
			s.Advance(dt)
		}
	}
}

func (s *Session) Result() (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsGameCompleted {
		return Result{}, ErrGameInProgress
	}
	rank := game.FinalRank(s.state.QualityPoints)
	return Result{
		Rank:          rank,
		Message:       game.RankMessage(rank),
		QualityPoints: s.state.QualityPoints,
		QuizAnswered:  s.state.QuizAnswered,
		QuizCorrect:   s.state.QuizCorrect,
		Badges:        s.state.View().Badges,
	}, nil
}

func (s *Session) restart(a game.Action) {
	s.unmount()
	s.pending = nil
	s.quizzes.Reset()
	if s.saver != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		s.saver.Clear(ctx)
		cancel()
	}
	s.dispatch(a)
}

// dispatch reduces, persists and queues a quiz when the stage changed under
// normal play. Callers hold s.mu.
func (s *Session) dispatch(a game.Action) {
	prev := s.state.CurrentStage
	s.state = s.reducer.Reduce(s.state, a)
	s.metrics.RecordAction(string(a.Type))
	s.persist()

	switch a.Type {
	case game.ActionStartGame, game.ActionResetGame, game.ActionLoadGame:
		return
	}
	if s.state.CurrentStage == prev {
		return
	}
	if s.engine != nil && s.engine.Stage() != s.state.CurrentStage {
		s.unmount()
	}
	q := s.quizzes.ForStage(game.StageIndex(s.state.CurrentStage))
	s.pending = &q
	s.logger.Info("stage entered", "stage", s.state.CurrentStage, "day", s.state.CurrentDay, "quiz", q.ID)
}

func (s *Session) persist() {
	if s.saver == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	s.saver.Save(ctx, s.state)
}

func (s *Session) completeStage(stage game.StageID, score int) {
	s.dispatch(game.CompleteStage(stage, score))
	s.metrics.RecordStageComplete(string(stage), score)
	s.logger.Info("stage completed", "stage", stage, "score", score, "qp", s.state.QualityPoints)

	if s.engine != nil && s.engine.Stage() == stage {
		s.unmount()
	}
	if stage == game.LastStage() {
		return
	}
	target := game.NextStageStartDay(stage)
	if target <= s.state.CurrentDay {
		target = s.state.CurrentDay + 1
	}
	s.dispatch(game.JumpToDay(target))
}

func (s *Session) callbacks(stage game.StageID) minigame.Callbacks {
	info, _ := game.StageInfoFor(stage)
	return minigame.Callbacks{
		OnComplete: func(score int) { s.completeStage(stage, score) },
		OnNextDay: func() {
			// a stage never walks the calendar past its own last day
			if s.state.CurrentDay < info.EndDay {
				s.dispatch(game.NextDay())
			}
		},
	}
}

func (s *Session) unmount() {
	if s.engine == nil {
		return
	}
	s.engine.Teardown()
	s.engine = nil
}

func (s *Session) grant(id string) {
	if s.state.HasBadge(id) {
		return
	}
	if b, ok := game.BadgeByID(id); ok {
		s.dispatch(game.EarnBadge(b))
	}
}

func movesCalendar(a game.Action) bool {
	return a.Type == game.ActionNextDay || a.Type == game.ActionJumpToDay
}

// sessionHost gives engines lock-free access; engines are only ever driven
// from inside a locked Session method.
type sessionHost struct{ s *Session }

func (h sessionHost) View() game.View        { return h.s.state.View() }
func (h sessionHost) Dispatch(a game.Action) { h.s.dispatch(a) }

type noopMetrics struct{}

func (noopMetrics) RecordAction(string)             {}
func (noopMetrics) RecordStageComplete(string, int) {}
func (noopMetrics) RecordQuizAnswer(bool)           {}
func (noopMetrics) RecordPersistFailure(string)     {}
