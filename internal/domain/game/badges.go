package game

const (
	BadgeFirstHarvest    = "first_harvest"
	BadgeQuizMaster50    = "quiz_master_50"
	BadgeYatsushiroStar  = "yatsushiro_star"
	BadgeIgusaProfessor  = "igusa_professor"
	BadgeTraditionKeeper = "tradition_keeper"
	BadgeKabuwakeMaster  = "kabuwake_master"
	BadgeWaterMaster     = "water_master"
	BadgeSakigariMaster  = "sakigari_master"
	BadgeHarvestMaster   = "harvest_master"
	BadgeWeavingMaster   = "weaving_master"
	BadgeRankS           = "rank_s"
)

var badgeCatalog = []Badge{
	{ID: BadgeFirstHarvest, Name: "新米農家", Icon: "🌱", Description: "初めてい草を収穫した"},
	{ID: BadgeQuizMaster50, Name: "畳マスター", Icon: "🎓", Description: "クイズ50問正解"},
	{ID: BadgeYatsushiroStar, Name: "八代の星", Icon: "⭐", Description: "畳表製造まで完了"},
	{ID: BadgeIgusaProfessor, Name: "い草博士", Icon: "📚", Description: "クイズ100問正解"},
	{ID: BadgeTraditionKeeper, Name: "伝統の継承者", Icon: "🏆", Description: "全品種を育成"},
	{ID: BadgeKabuwakeMaster, Name: "株分け名人", Icon: "✨", Description: "株分けで全てPerfect"},
	{ID: BadgeWaterMaster, Name: "水管理マスター", Icon: "💧", Description: "植え付け期間中、全日Perfect維持"},
	{ID: BadgeSakigariMaster, Name: "先刈り名人", Icon: "✂️", Description: "先刈りでPerfect率50%以上"},
	{ID: BadgeHarvestMaster, Name: "収穫マスター", Icon: "🌾", Description: "50本以上連続で刈り取り"},
	{ID: BadgeWeavingMaster, Name: "織師の匠", Icon: "🧵", Description: "製織で密度90%以上達成"},
	{ID: BadgeRankS, Name: "特等畳職人", Icon: "👑", Description: "Sランクの畳を完成させた"},
}

func Badges() []Badge {
	out := make([]Badge, len(badgeCatalog))
	copy(out, badgeCatalog)
	return out
}

// BadgeByID returns the catalog entry without an earned timestamp.
func BadgeByID(id string) (Badge, bool) {
	for _, b := range badgeCatalog {
		if b.ID == id {
			return b, true
		}
	}
	return Badge{}, false
}
