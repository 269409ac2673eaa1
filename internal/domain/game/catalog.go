package game

type VarietyInfo struct {
	ID          Variety `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Rarity      int     `json:"rarity"`
}

var varietyCatalog = []VarietyInfo{
	{ID: VarietyZairai, Name: "在来種", Description: "昔から育てられてきた標準的な品種", Rarity: 1},
	{ID: VarietyHinomidori, Name: "ひのみどり", Description: "細くて美しい高級品種", Rarity: 3},
	{ID: VarietyHinoharuka, Name: "ひのはるか", Description: "色つやに優れた品種", Rarity: 2},
	{ID: VarietyShichitoi, Name: "七島い", Description: "三角形の断面をもつ丈夫な品種", Rarity: 3},
	{ID: VarietyYunagi, Name: "夕凪", Description: "長く伸びる品種", Rarity: 2},
}

func Varieties() []VarietyInfo {
	out := make([]VarietyInfo, len(varietyCatalog))
	copy(out, varietyCatalog)
	return out
}

func IsKnownVariety(v Variety) bool {
	for _, info := range varietyCatalog {
		if info.ID == v {
			return true
		}
	}
	return false
}

type StageHint struct {
	Title          string   `json:"title"`
	Hints          []string `json:"hints"`
	FailureWarning string   `json:"failure_warning"`
}

var hintCatalog = map[StageID]StageHint{
	StageKabuwake: {
		Title: "株分けのコツ",
		Hints: []string{
			"い草は種ではなく株分けで増やす！",
			"新しい芽を傷つけないように丁寧に分けよう",
			"3〜4本ずつの束に分けるのがポイント！",
		},
		FailureWarning: "株分けが雑だと新芽が傷つき、その後の成長が悪くなる",
	},
	StageUetsuke: {
		Title: "植え付けのコツ",
		Hints: []string{
			"植え付け直後は3〜4cmの深水管理で苗を保護",
			"寒さから守る保温効果もあるよ！",
			"活着後は2〜3cmの浅水管理に切り替え",
		},
		FailureWarning: "浅すぎると苗が乾燥して枯れる、深水のままだと茎が弱く育つ",
	},
	StageSakigari: {
		Title: "先刈りのコツ",
		Hints: []string{
			"収穫の約60日前に出る芽が最も質の良いい草になる！",
			"地上45cmの高さで刈り揃えよう",
			"「ひのみどり」品種なら1株130本、その他は100本が目安",
		},
		FailureWarning: "早すぎると茎数不足、遅すぎると伸長不足",
	},
	StageSeicho: {
		Title: "成長期のコツ",
		Hints: []string{
			"い草は150cm以上に成長！風で倒れると折れて品質低下",
			"10日ごとに網を10cm上げるのがポイント",
			"田んぼから泡（ガス）が出てきたら間断かん水でガスを抜こう",
		},
		FailureWarning: "網上げを忘れると倒伏して品質が落ちる",
	},
	StageShukaku: {
		Title: "収穫のコツ",
		Hints: []string{
			"気温の低い早朝・夕方に収穫しよう！",
			"夏の暑さでい草が傷むのを防ぐため、手早く刈り取る",
			"刈り取ったい草は紐でくくり、すぐに泥染めへ！",
		},
		FailureWarning: "暑い時間帯に収穫すると鮮度が落ちる",
	},
	StageDorozome: {
		Title: "泥染め・乾燥のコツ",
		Hints: []string{
			"天然の染土（淡路島産など）を溶かした水に浸す",
			"泥染めで色・香り・光沢が出るよ。畳の良い香りの秘密！",
			"60〜70℃でじっくり乾燥。乾燥後は日光を避けて保管！",
		},
		FailureWarning: "泥染めをしないと色ムラ・日焼けの原因に、乾燥不足だとカビの原因",
	},
	StageSeishoku: {
		Title: "製織のコツ",
		Hints: []string{
			"穂先と根元が切り落とされた、良質な部分だけを選別しよう",
			"高級畳は1畳に約8000本ものい草を使う！",
			"い草を左右から交互に送り込んで織っていく",
		},
		FailureWarning: "選別が雑だと仕上がりにムラが出る、織りが粗いと品質が低い畳に",
	},
	StageKensa: {
		Title: "検査のコツ",
		Hints: []string{
			"一枚一枚手作業で傷がないかチェック！",
			"検査に合格した畳表はランクごとに分けられる",
			"見落としがないように丁寧に確認しよう",
		},
		FailureWarning: "見落とすと不良品として返品される",
	},
}

func HintForStage(id StageID) (StageHint, bool) {
	h, ok := hintCatalog[id]
	if !ok {
		return StageHint{}, false
	}
	h.Hints = append([]string(nil), h.Hints...)
	return h, true
}
