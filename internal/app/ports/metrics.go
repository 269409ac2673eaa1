package ports

type GameMetrics interface {
	RecordAction(actionType string)
	RecordStageComplete(stage string, score int)
	RecordQuizAnswer(correct bool)
	RecordPersistFailure(op string)
}
