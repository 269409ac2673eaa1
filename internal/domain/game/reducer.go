package game

import "time"

type ActionType string

const (
	ActionStartGame     ActionType = "START_GAME"
	ActionNextDay       ActionType = "NEXT_DAY"
	ActionJumpToDay     ActionType = "JUMP_TO_DAY"
	ActionAddQP         ActionType = "ADD_QP"
	ActionSetQP         ActionType = "SET_QP"
	ActionCompleteStage ActionType = "COMPLETE_STAGE"
	ActionAnswerQuiz    ActionType = "ANSWER_QUIZ"
	ActionEarnBadge     ActionType = "EARN_BADGE"
	ActionResetGame     ActionType = "RESET_GAME"
	ActionLoadGame      ActionType = "LOAD_GAME"
)

// Action carries the payload for every action type; fields irrelevant to
// Type are ignored.
type Action struct {
	Type    ActionType `json:"type"`
	Variety Variety    `json:"variety,omitempty"`
	Day     int        `json:"day,omitempty"`
	Amount  int        `json:"amount,omitempty"`
	Stage   StageID    `json:"stage,omitempty"`
	Score   int        `json:"score,omitempty"`
	Correct bool       `json:"correct,omitempty"`
	Badge   *Badge     `json:"badge,omitempty"`
	State   *GameState `json:"state,omitempty"`
}

func StartGame(v Variety) Action { return Action{Type: ActionStartGame, Variety: v} }
func NextDay() Action            { return Action{Type: ActionNextDay} }
func JumpToDay(day int) Action   { return Action{Type: ActionJumpToDay, Day: day} }
func AddQP(amount int) Action    { return Action{Type: ActionAddQP, Amount: amount} }
func SetQP(amount int) Action    { return Action{Type: ActionSetQP, Amount: amount} }
func ResetGame() Action          { return Action{Type: ActionResetGame} }

func CompleteStage(stage StageID, score int) Action {
	return Action{Type: ActionCompleteStage, Stage: stage, Score: score}
}

func AnswerQuiz(correct bool) Action {
	return Action{Type: ActionAnswerQuiz, Correct: correct}
}

func EarnBadge(b Badge) Action {
	return Action{Type: ActionEarnBadge, Badge: &b}
}

func LoadGame(s GameState) Action {
	return Action{Type: ActionLoadGame, State: &s}
}

// IsPrivileged reports actions reserved for debug tooling at the shell boundary.
func (a Action) IsPrivileged() bool {
	return a.Type == ActionSetQP || a.Type == ActionJumpToDay
}

type Reducer struct {
	Now func() time.Time
}

// Reduce is the single state transition function. It never mutates state
// and never fails; unknown action types return state unchanged.
func (r Reducer) Reduce(state GameState, action Action) GameState {
	switch action.Type {
	case ActionStartGame:
		next := InitialState()
		if action.Variety != "" && IsKnownVariety(action.Variety) {
			next.Variety = action.Variety
		}
		return next

	case ActionNextDay:
		return withDay(state, state.CurrentDay+1)

	case ActionJumpToDay:
		return withDay(state, action.Day)

	case ActionAddQP:
		next := state.Clone()
		next.QualityPoints = clampQP(state.QualityPoints + action.Amount)
		return next

	case ActionSetQP:
		next := state.Clone()
		next.QualityPoints = clampQP(action.Amount)
		return next

	case ActionCompleteStage:
		if !IsKnownStage(action.Stage) {
			return state
		}
		next := state.Clone()
		next.StageProgress[action.Stage] = StageProgress{Completed: true, Score: action.Score}
		next.IsGameCompleted = completedFlag(next.CurrentDay, next.StageProgress)
		return next

	case ActionAnswerQuiz:
		next := state.Clone()
		next.QuizAnswered++
		if action.Correct {
			next.QuizCorrect++
			next.QualityPoints = clampQP(state.QualityPoints + QuizCorrectBonus)
		}
		return next

	case ActionEarnBadge:
		if action.Badge == nil || action.Badge.ID == "" || state.HasBadge(action.Badge.ID) {
			return state
		}
		next := state.Clone()
		b := *action.Badge
		at := r.now()
		b.EarnedAt = &at
		next.Badges = append(next.Badges, b)
		return next

	case ActionResetGame:
		return InitialState()

	case ActionLoadGame:
		if action.State == nil || action.State.Validate() != nil {
			return InitialState()
		}
		return action.State.Clone()

	default:
		return state
	}
}

// Reduce applies action using the wall clock.
func Reduce(state GameState, action Action) GameState {
	return Reducer{}.Reduce(state, action)
}

func (r Reducer) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func withDay(state GameState, day int) GameState {
	if day > LastDay {
		day = LastDay
	}
	if day < FirstDay {
		day = FirstDay
	}
	next := state.Clone()
	next.CurrentDay = day
	next.CurrentStage = StageByDay(day).ID
	next.IsGameCompleted = completedFlag(day, next.StageProgress)
	return next
}

func clampQP(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
