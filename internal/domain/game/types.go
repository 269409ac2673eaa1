package game

import "time"

type StageID string

const (
	StageKabuwake StageID = "kabuwake"
	StageUetsuke  StageID = "uetsuke"
	StageSakigari StageID = "sakigari"
	StageSeicho   StageID = "seicho"
	StageShukaku  StageID = "shukaku"
	StageDorozome StageID = "dorozome"
	StageSeishoku StageID = "seishoku"
	StageKensa    StageID = "kensa"
)

type Variety string

const (
	VarietyZairai     Variety = "zairai"
	VarietyHinomidori Variety = "hinomidori"
	VarietyHinoharuka Variety = "hinoharuka"
	VarietyShichitoi  Variety = "shichitoi"
	VarietyYunagi     Variety = "yunagi"
)

type StageInfo struct {
	ID          StageID `json:"type"`
	Name        string  `json:"name"`
	StartDay    int     `json:"startDay"`
	EndDay      int     `json:"endDay"`
	Month       string  `json:"month"`
	Description string  `json:"description"`
}

func (s StageInfo) Contains(day int) bool {
	return day >= s.StartDay && day <= s.EndDay
}

type StageProgress struct {
	Completed bool `json:"completed"`
	Score     int  `json:"score"`
}

type Badge struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon,omitempty"`
	Description string     `json:"description"`
	EarnedAt    *time.Time `json:"earnedAt,omitempty"`
}

// GameState is the persisted aggregate. Field names follow the save format
// written by the browser client so old saves keep loading.
type GameState struct {
	CurrentDay      int                       `json:"currentDay"`
	CurrentStage    StageID                   `json:"currentStage"`
	QualityPoints   int                       `json:"qualityPoints"`
	Badges          []Badge                   `json:"badges"`
	QuizAnswered    int                       `json:"quizAnswered"`
	QuizCorrect     int                       `json:"quizCorrect"`
	Variety         Variety                   `json:"variety"`
	StageProgress   map[StageID]StageProgress `json:"stageProgress"`
	IsGameCompleted bool                      `json:"isGameCompleted"`
}

// View is the read-only slice of GameState handed to stage engines.
type View struct {
	CurrentDay    int     `json:"current_day"`
	CurrentStage  StageID `json:"current_stage"`
	QualityPoints int     `json:"quality_points"`
	Badges        []Badge `json:"badges"`
	QuizAnswered  int     `json:"quiz_answered"`
	QuizCorrect   int     `json:"quiz_correct"`
}

type Mood string

const (
	MoodExcellent Mood = "excellent"
	MoodHappy     Mood = "happy"
	MoodNormal    Mood = "normal"
	MoodSad       Mood = "sad"
)

type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
)
