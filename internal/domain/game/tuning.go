package game

const (
	FirstDay = 1
	LastDay  = 30

	InitialQualityPoints = 100
	QuizCorrectBonus     = 5

	DefaultVariety = VarietyZairai

	QuizMaster50Threshold  = 50
	QuizProfessorThreshold = 100
	DefaultMoodThreshold   = 200
	MoodWindow             = 50
	FinalStageNumber       = 8
)

// Expected cumulative QP by the end of each stage number.
var moodThresholds = map[int]int{
	1: 100,
	2: 150,
	3: 250,
	4: 350,
	5: 450,
	6: 550,
	7: 650,
	8: 450,
}

var rankFloors = []struct {
	Rank  Rank
	Floor int
}{
	{RankS, 550},
	{RankA, 450},
	{RankB, 350},
	{RankC, 200},
}
