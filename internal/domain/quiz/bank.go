package quiz

var bank = []Quiz{
	{
		ID:           "effect_01",
		Category:     CategoryEffect,
		Question:     "畳に使われるい草の香り成分として知られているのは？",
		Options:      []string{"フィトンチッド", "カテキン", "リモネン", "メントール"},
		CorrectIndex: 0,
		Explanation:  "フィトンチッドは森林浴でも知られるリラックス効果のある成分です。い草にも含まれており、畳の心地よい香りの正体です。",
	},
	{
		ID:           "effect_02",
		Category:     CategoryEffect,
		Question:     "畳が持つ湿度を調整する機能は何と呼ばれる？",
		Options:      []string{"断熱効果", "調湿効果", "加湿効果", "防虫効果"},
		CorrectIndex: 1,
		Explanation:  "畳は湿気を吸収したり放出したりする「調湿効果」があります。梅雨時は湿気を吸い、乾燥時は放出してくれます。",
	},
	{
		ID:           "effect_03",
		Category:     CategoryEffect,
		Question:     "畳の断熱性に関する特徴として正しいのは？",
		Options:      []string{"夏は暑く冬は寒い", "冬暖かく夏涼しい", "年中一定の温度", "断熱性はない"},
		CorrectIndex: 1,
		Explanation:  "畳は空気を多く含んでいるため断熱性が高く、冬は暖かく夏は涼しく過ごせます。",
	},
	{
		ID:           "effect_04",
		Category:     CategoryEffect,
		Question:     "畳が音を吸収する効果は何と呼ばれる？",
		Options:      []string{"防音効果", "吸音効果", "反響効果", "消音効果"},
		CorrectIndex: 1,
		Explanation:  "畳には多くの空気が含まれており、音を吸収する「吸音効果」があります。生活音を和らげてくれます。",
	},
	{
		ID:           "knowledge_01",
		Category:     CategoryKnowledge,
		Question:     "い草の国内生産量1位の都道府県はどこ？",
		Options:      []string{"福岡県", "熊本県", "大分県", "佐賀県"},
		CorrectIndex: 1,
		Explanation:  "熊本県が国内い草生産量の約9割を占めています。特に八代市が有名な産地です。",
	},
	{
		ID:           "knowledge_02",
		Category:     CategoryKnowledge,
		Question:     "熊本県のい草の主な産地として知られる市は？",
		Options:      []string{"熊本市", "八代市", "天草市", "阿蘇市"},
		CorrectIndex: 1,
		Explanation:  "八代市は「い草の里」として知られ、国内最大のい草産地です。",
	},
	{
		ID:           "knowledge_03",
		Category:     CategoryKnowledge,
		Question:     "高級い草の品種として知られるのは？",
		Options:      []string{"ひのみどり", "こしひかり", "あきたこまち", "ゆめぴりか"},
		CorrectIndex: 0,
		Explanation:  "「ひのみどり」は細くて美しい高級い草の品種です。この品種を使った畳表は「ひのさらさ」というブランド名で知られています。",
	},
	{
		ID:           "knowledge_04",
		Category:     CategoryKnowledge,
		Question:     "高級畳1畳に使われるい草の本数は約何本？",
		Options:      []string{"約2000本", "約4000本", "約6000本", "約8000本"},
		CorrectIndex: 3,
		Explanation:  "高級畳は1畳に約8000本ものい草を使用します。密に織り込むほど高品質な畳になります。",
	},
	{
		ID:           "knowledge_05",
		Category:     CategoryKnowledge,
		Question:     "い草はどうやって増やす？",
		Options:      []string{"種まき", "株分け", "挿し木", "接ぎ木"},
		CorrectIndex: 1,
		Explanation:  "い草は種ではなく「株分け」で増やします。親株から苗を分けて植え付けます。",
	},
	{
		ID:           "knowledge_06",
		Category:     CategoryKnowledge,
		Question:     "い草の収穫に適した時間帯は？",
		Options:      []string{"正午", "深夜", "早朝や夕方", "いつでも同じ"},
		CorrectIndex: 2,
		Explanation:  "い草は鮮度が命！暑い時間帯に刈ると色・香りが落ちるため、気温の低い早朝や夕方に収穫します。",
	},
	{
		ID:           "knowledge_07",
		Category:     CategoryKnowledge,
		Question:     "畳の良い香りを出すために収穫後に行う作業は？",
		Options:      []string{"天日干し", "泥染め", "塩漬け", "煮沸"},
		CorrectIndex: 1,
		Explanation:  "収穫後すぐに「泥染め」を行います。天然染土で染めることで、畳独特の色・香り・光沢が生まれます。",
	},
	{
		ID:           "history_01",
		Category:     CategoryHistory,
		Question:     "畳の原型（筵/むしろ）が使われ始めたのは何時代？",
		Options:      []string{"弥生時代", "縄文時代", "古墳時代", "飛鳥時代"},
		CorrectIndex: 1,
		Explanation:  "縄文時代には既に筵（むしろ）が使われていました。これが畳の原型とされています。",
	},
	{
		ID:           "history_02",
		Category:     CategoryHistory,
		Question:     "貴族が現代に近い形の畳を使い始めたのは何時代？",
		Options:      []string{"奈良時代", "平安時代", "鎌倉時代", "室町時代"},
		CorrectIndex: 1,
		Explanation:  "平安時代になると、貴族の間で現代に近い形の畳が使われるようになりました。",
	},
	{
		ID:           "history_03",
		Category:     CategoryHistory,
		Question:     "庶民に畳が広く普及したのはいつ頃？",
		Options:      []string{"鎌倉時代", "室町時代", "安土桃山時代", "江戸時代中期以降"},
		CorrectIndex: 3,
		Explanation:  "江戸時代中期以降になって、畳は庶民の家にも普及しました。それまでは上流階級のものでした。",
	},
}
