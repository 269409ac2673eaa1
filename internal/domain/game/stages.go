package game

var stageTable = []StageInfo{
	{ID: StageKabuwake, Name: "株分け", StartDay: 1, EndDay: 2, Month: "11月中旬", Description: "親株から苗を分ける"},
	{ID: StageUetsuke, Name: "植え付け", StartDay: 3, EndDay: 5, Month: "11月下旬", Description: "本田へ植え付け"},
	{ID: StageSakigari, Name: "先刈り", StartDay: 6, EndDay: 8, Month: "5月上旬", Description: "先端を刈り揃える"},
	{ID: StageSeicho, Name: "成長期", StartDay: 9, EndDay: 20, Month: "5月〜6月", Description: "網張り・水管理"},
	{ID: StageShukaku, Name: "収穫", StartDay: 21, EndDay: 23, Month: "6月下旬", Description: "刈り取り"},
	{ID: StageDorozome, Name: "泥染め", StartDay: 24, EndDay: 26, Month: "収穫後", Description: "泥染め・乾燥"},
	{ID: StageSeishoku, Name: "製織", StartDay: 27, EndDay: 29, Month: "通年", Description: "畳表に織り上げる"},
	{ID: StageKensa, Name: "検査", StartDay: 30, EndDay: 30, Month: "仕上げ", Description: "品質チェック"},
}

// Stages returns a copy of the ordered stage table.
func Stages() []StageInfo {
	out := make([]StageInfo, len(stageTable))
	copy(out, stageTable)
	return out
}

// StageByDay returns the stage whose day range contains day. Days past the
// table resolve to the last stage and days before it to the first.
func StageByDay(day int) StageInfo {
	for _, s := range stageTable {
		if s.Contains(day) {
			return s
		}
	}
	if day < stageTable[0].StartDay {
		return stageTable[0]
	}
	return stageTable[len(stageTable)-1]
}

// StageIndex is the 0-based table position of id, or -1.
func StageIndex(id StageID) int {
	for i, s := range stageTable {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// StageNumber is the 1-based stage number used by mood thresholds, or 0.
func StageNumber(id StageID) int {
	return StageIndex(id) + 1
}

func StageInfoFor(id StageID) (StageInfo, bool) {
	idx := StageIndex(id)
	if idx < 0 {
		return StageInfo{}, false
	}
	return stageTable[idx], true
}

func IsKnownStage(id StageID) bool {
	return StageIndex(id) >= 0
}

// NextStageStartDay returns the first day of the stage after id, or LastDay
// when id is the final stage or unknown.
func NextStageStartDay(id StageID) int {
	idx := StageIndex(id)
	if idx < 0 || idx == len(stageTable)-1 {
		return LastDay
	}
	return stageTable[idx+1].StartDay
}

func LastStage() StageID {
	return stageTable[len(stageTable)-1].ID
}
