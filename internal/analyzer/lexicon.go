package analyzer

// Lexicon is the immutable word-list configuration for a classifier. The
// default lists target simplified-Chinese Steam reviews; swapping the lexicon
// is how the analyzer is adapted to another locale or storefront.
type Lexicon struct {
	// Positive and Negative drive the sentiment score. Matching is
	// lowercase substring containment, so multi-byte terms work the same
	// as ASCII ones.
	Positive []string
	Negative []string
	// Topics is the fixed topic-term list; matched against the raw text.
	Topics []string
	// Keywords is the broader domain list used for frequency ranking
	// across a whole batch.
	Keywords []string
}

// DefaultLexicon returns the built-in game-review lexicon.
func DefaultLexicon() Lexicon {
	return Lexicon{
		Positive: []string{
			"推荐", "好玩", "不错", "喜欢", "值得", "满意", "棒", "优秀", "神作", "masterpiece",
			"良心", "惊喜", "沉浸", "感动", "泪目", "上头", "真香", "爱了", "yyds", "神",
			"流畅", "精致", "用心", "诚意", "还好", "还行",
		},
		Negative: []string{
			"垃圾", "烂", "失望", "差评", "坑", "恶心", "垃圾游戏", "骗钱", "避雷",
			"后悔", "无聊", "粗糙", "敷衍", "半成品", "骗", "坑钱", "退款",
			"卡顿", "闪退", "bug", "优化差", "不好玩", "劝退", "坐牢", "折磨",
		},
		Topics: []string{
			"优化", "BUG", "剧情", "立绘", "AI", "价格", "性价比", "操作", "手感",
			"画面", "音乐", "肝", "氪",
		},
		Keywords: []string{
			"优化", "BUG", "卡顿", "闪退", "剧情", "画面", "立绘", "AI",
			"价格", "性价比", "操作", "手感", "音乐", "肝", "氪", "氪金",
			"退款", "推荐", "失望", "惊喜", "神作", "垃圾", "良心",
			"代入感", "情怀", "青春", "校园", "恋爱", "战斗",
			"服务器", "网络", "延迟", "匹配", "外挂",
		},
	}
}
