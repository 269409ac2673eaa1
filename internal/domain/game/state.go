package game

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSnapshot = errors.New("invalid game snapshot")
)

// InitialState is day 1, stage 1, 100 QP, nothing earned.
func InitialState() GameState {
	progress := make(map[StageID]StageProgress, len(stageTable))
	for _, s := range stageTable {
		progress[s.ID] = StageProgress{}
	}
	return GameState{
		CurrentDay:    FirstDay,
		CurrentStage:  stageTable[0].ID,
		QualityPoints: InitialQualityPoints,
		Badges:        []Badge{},
		Variety:       DefaultVariety,
		StageProgress: progress,
	}
}

// Clone deep-copies the badge slice and progress map.
func (s GameState) Clone() GameState {
	out := s
	out.Badges = make([]Badge, len(s.Badges))
	copy(out.Badges, s.Badges)
	out.StageProgress = make(map[StageID]StageProgress, len(s.StageProgress))
	for k, v := range s.StageProgress {
		out.StageProgress[k] = v
	}
	return out
}

func (s GameState) View() View {
	badges := make([]Badge, len(s.Badges))
	copy(badges, s.Badges)
	return View{
		CurrentDay:    s.CurrentDay,
		CurrentStage:  s.CurrentStage,
		QualityPoints: s.QualityPoints,
		Badges:        badges,
		QuizAnswered:  s.QuizAnswered,
		QuizCorrect:   s.QuizCorrect,
	}
}

func (s GameState) HasBadge(id string) bool {
	for _, b := range s.Badges {
		if b.ID == id {
			return true
		}
	}
	return false
}

func (s GameState) Progress(id StageID) StageProgress {
	return s.StageProgress[id]
}

// Validate reports whether a snapshot is structurally usable as a GameState.
func (s GameState) Validate() error {
	if s.CurrentDay < FirstDay || s.CurrentDay > LastDay {
		return fmt.Errorf("%w: day %d out of range", ErrInvalidSnapshot, s.CurrentDay)
	}
	if !IsKnownStage(s.CurrentStage) {
		return fmt.Errorf("%w: unknown stage %q", ErrInvalidSnapshot, s.CurrentStage)
	}
	if StageByDay(s.CurrentDay).ID != s.CurrentStage {
		return fmt.Errorf("%w: stage %q does not cover day %d", ErrInvalidSnapshot, s.CurrentStage, s.CurrentDay)
	}
	if s.QualityPoints < 0 {
		return fmt.Errorf("%w: negative quality points", ErrInvalidSnapshot)
	}
	if s.QuizAnswered < 0 || s.QuizCorrect < 0 || s.QuizCorrect > s.QuizAnswered {
		return fmt.Errorf("%w: quiz counters %d/%d", ErrInvalidSnapshot, s.QuizCorrect, s.QuizAnswered)
	}
	if !IsKnownVariety(s.Variety) {
		return fmt.Errorf("%w: unknown variety %q", ErrInvalidSnapshot, s.Variety)
	}
	for _, st := range stageTable {
		if _, ok := s.StageProgress[st.ID]; !ok {
			return fmt.Errorf("%w: missing progress for %q", ErrInvalidSnapshot, st.ID)
		}
	}
	if len(s.StageProgress) != len(stageTable) {
		return fmt.Errorf("%w: unexpected progress entries", ErrInvalidSnapshot)
	}
	seen := make(map[string]struct{}, len(s.Badges))
	for _, b := range s.Badges {
		if b.ID == "" {
			return fmt.Errorf("%w: badge without id", ErrInvalidSnapshot)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("%w: duplicate badge %q", ErrInvalidSnapshot, b.ID)
		}
		seen[b.ID] = struct{}{}
	}
	return nil
}

func completedFlag(day int, progress map[StageID]StageProgress) bool {
	return day == LastDay && progress[LastStage()].Completed
}
