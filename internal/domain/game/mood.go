package game

// MoodByQP compares qp against the QP expected by the end of stageNumber.
// The final stage uses absolute bands aligned with the rank floors.
func MoodByQP(qp, stageNumber int) Mood {
	if stageNumber == FinalStageNumber {
		switch {
		case qp >= 550:
			return MoodExcellent
		case qp >= 450:
			return MoodHappy
		case qp >= 350:
			return MoodNormal
		default:
			return MoodSad
		}
	}

	target, ok := moodThresholds[stageNumber]
	if !ok {
		target = DefaultMoodThreshold
	}
	switch {
	case qp >= target+MoodWindow:
		return MoodExcellent
	case qp >= target:
		return MoodHappy
	case qp >= target-MoodWindow:
		return MoodNormal
	default:
		return MoodSad
	}
}

func FinalRank(qp int) Rank {
	for _, f := range rankFloors {
		if qp >= f.Floor {
			return f.Rank
		}
	}
	return RankD
}

func RankMessage(r Rank) string {
	switch r {
	case RankS:
		return "最高級！い草の長さ・色・光沢すべて完璧！"
	case RankA:
		return "高品質！5年後も明るい飴色に変化します"
	case RankB:
		return "標準品質。若干の黒筋がありますが使用には問題なし"
	case RankC:
		return "色ムラあり。耐久性は低めです"
	default:
		return "規格外...出荷不可です。もう一度挑戦しよう！"
	}
}
