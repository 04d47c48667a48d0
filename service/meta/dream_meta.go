/*
 * @module service/meta/dream_meta
 * @description 梦境元数据：类型关键词词表、逐类型模板（象征含义、情绪模式、趋势提示、建议与标签）
 * @architecture 元数据层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 静态元数据定义
 * @rules 词表按序匹配，首个命中类型即生效；未命中回落 other
 * @dependencies qirhythm-service/service/models
 * @refs service/archetype/dream.go
 */

package meta

import "qirhythm-service/service/models"

// LocalizedText 双语文案
type LocalizedText struct {
	Zh string
	En string
}

// DreamTypeEntry 梦境类型词表项
type DreamTypeEntry struct {
	Type        models.DreamType
	KeywordsZh  []string
	KeywordsEn  []string
	Meaning     LocalizedText
	Mood        models.MoodPattern
	TrendHint   LocalizedText
	Suggestions []LocalizedText
	Tags        []string
}

// DreamTypeTable 梦境类型词表，按优先级排列，逐项子串匹配，首个命中即返回
var DreamTypeTable = []DreamTypeEntry{
	{
		Type:       models.DreamTypeChase,
		KeywordsZh: []string{"被追", "追赶", "追杀", "逃跑", "躲避"},
		KeywordsEn: []string{"chase", "chased", "being followed", "running away", "pursued"},
		Meaning: LocalizedText{
			Zh: "被追赶的梦常与现实中的压力或待处理事项有关，内心在提醒你正面面对",
			En: "Chase dreams often mirror real-world pressure or unfinished business urging you to face it",
		},
		Mood: models.MoodPressure,
		TrendHint: LocalizedText{
			Zh: "近期压力信号偏强，宜主动疏解",
			En: "Pressure signals are elevated; active release helps",
		},
		Suggestions: []LocalizedText{
			{Zh: "把悬而未决的事项列出来，先解决最小的一件", En: "List what is pending and finish the smallest item first"},
			{Zh: "睡前减少信息输入", En: "Cut down screen input before sleep"},
		},
		Tags: []string{"chase", "pressure", "urgency"},
	},
	{
		Type:       models.DreamTypeFall,
		KeywordsZh: []string{"坠落", "掉下", "跌落", "下坠", "摔下"},
		KeywordsEn: []string{"fall", "falling", "dropped", "plummet"},
		Meaning: LocalizedText{
			Zh: "坠落的梦多出现在对失控感敏感的阶段，提示你需要稳住节奏",
			En: "Falling dreams surface when control feels slippery; steady your rhythm",
		},
		Mood: models.MoodAnxious,
		TrendHint: LocalizedText{
			Zh: "波动期，避免仓促决定",
			En: "A wobbly phase; avoid rushed decisions",
		},
		Suggestions: []LocalizedText{
			{Zh: "给本周安排一个确定性的锚点", En: "Anchor the week with one certain plan"},
		},
		Tags: []string{"fall", "control", "anxiety"},
	},
	{
		Type:       models.DreamTypeExam,
		KeywordsZh: []string{"考试", "考场", "答题", "交卷", "迟到"},
		KeywordsEn: []string{"exam", "test", "quiz", "unprepared"},
		Meaning: LocalizedText{
			Zh: "考试梦映射被评估的紧张感，也意味着你在意结果、仍有上进的势能",
			En: "Exam dreams reflect evaluation anxiety and an ongoing drive to do well",
		},
		Mood: models.MoodPressure,
		TrendHint: LocalizedText{
			Zh: "小幅承压，整体向上",
			En: "Mild pressure with an upward undertone",
		},
		Suggestions: []LocalizedText{
			{Zh: "把大目标拆成当天可交付的小块", En: "Split the big goal into same-day deliverables"},
		},
		Tags: []string{"exam", "evaluation", "striving"},
	},
	{
		Type:       models.DreamTypeTeeth,
		KeywordsZh: []string{"掉牙", "牙齿", "牙掉", "拔牙"},
		KeywordsEn: []string{"teeth", "tooth"},
		Meaning: LocalizedText{
			Zh: "掉牙的梦常关联表达与失去的焦虑，提醒关注沟通与身体信号",
			En: "Teeth dreams tie to worries about expression and loss; mind communication and body signals",
		},
		Mood: models.MoodAnxious,
		TrendHint: LocalizedText{
			Zh: "留意消耗，宜早睡",
			En: "Watch depletion; sleep earlier",
		},
		Suggestions: []LocalizedText{
			{Zh: "有话直说，不积压", En: "Say it straight; do not let it pile up"},
		},
		Tags: []string{"teeth", "loss", "expression"},
	},
	{
		Type:       models.DreamTypeFly,
		KeywordsZh: []string{"飞翔", "飞起来", "飞行", "翱翔", "漂浮"},
		KeywordsEn: []string{"fly", "flying", "float", "soar"},
		Meaning: LocalizedText{
			Zh: "飞翔的梦是舒展与掌控感的信号，阶段性能量偏高",
			En: "Flying dreams signal expansion and control; energy runs high",
		},
		Mood: models.MoodUplift,
		TrendHint: LocalizedText{
			Zh: "乘势而上，适合推进搁置的计划",
			En: "Ride the momentum; push a shelved plan forward",
		},
		Suggestions: []LocalizedText{
			{Zh: "把状态用在最重要的一件事上", En: "Spend the streak on the one thing that matters"},
		},
		Tags: []string{"fly", "freedom", "momentum"},
	},
	{
		Type:       models.DreamTypeNaked,
		KeywordsZh: []string{"裸体", "没穿衣服", "赤身", "光着"},
		KeywordsEn: []string{"naked", "nude", "no clothes"},
		Meaning: LocalizedText{
			Zh: "裸露的梦关联暴露感与在意他人目光，提示放低自我审视",
			En: "Nakedness dreams relate to exposure and self-consciousness; ease the self-scrutiny",
		},
		Mood: models.MoodAnxious,
		TrendHint: LocalizedText{
			Zh: "内耗偏多，宜降低自我要求",
			En: "Inner friction is up; lower the bar on yourself",
		},
		Suggestions: []LocalizedText{
			{Zh: "少向外比较，多记录自己的进度", En: "Compare less; track your own progress"},
		},
		Tags: []string{"naked", "exposure", "self_image"},
	},
	{
		Type:       models.DreamTypeDeath,
		KeywordsZh: []string{"死亡", "去世", "葬礼", "死去"},
		KeywordsEn: []string{"death", "dead", "funeral", "dying"},
		Meaning: LocalizedText{
			Zh: "梦见死亡更多象征旧阶段的结束与更新，不必字面理解",
			En: "Death in dreams mostly marks an ending and renewal, not a literal omen",
		},
		Mood: models.MoodRelease,
		TrendHint: LocalizedText{
			Zh: "辞旧迎新，适合收尾与告别",
			En: "Close chapters; endings clear room for the new",
		},
		Suggestions: []LocalizedText{
			{Zh: "挑一件拖了很久的事正式画句号", En: "Formally finish one long-dragging matter"},
		},
		Tags: []string{"death", "transition", "renewal"},
	},
	{
		Type:       models.DreamTypeLost,
		KeywordsZh: []string{"迷路", "找不到路", "走失", "迷失"},
		KeywordsEn: []string{"lost", "can't find the way", "maze"},
		Meaning: LocalizedText{
			Zh: "迷路的梦对应方向感的暂时模糊，提示放慢选择的节奏",
			En: "Lost dreams echo a temporary blur in direction; slow the pace of choosing",
		},
		Mood: models.MoodAnxious,
		TrendHint: LocalizedText{
			Zh: "方向待明，宜观望少动",
			En: "Direction is hazy; observe more, move less",
		},
		Suggestions: []LocalizedText{
			{Zh: "把三个月后的目标写成一句话", En: "Write the three-month goal in one sentence"},
		},
		Tags: []string{"lost", "direction", "hesitation"},
	},
	{
		Type:       models.DreamTypeWater,
		KeywordsZh: []string{"水", "大海", "河流", "游泳", "下雨", "洪水"},
		KeywordsEn: []string{"water", "ocean", "river", "swim", "rain", "flood"},
		Meaning: LocalizedText{
			Zh: "水的梦对应情绪与财气的流动，平静的水面是好信号",
			En: "Water dreams map the flow of emotion and fortune; calm water is a good sign",
		},
		Mood: models.MoodCalm,
		TrendHint: LocalizedText{
			Zh: "流动中见生机，顺势而为",
			En: "Vitality in flow; go with the current",
		},
		Suggestions: []LocalizedText{
			{Zh: "多喝水，情绪来了先流过去再回应", En: "Hydrate; let emotions pass before responding"},
		},
		Tags: []string{"water", "emotion", "flow"},
	},
	{
		Type:       models.DreamTypeHouse,
		KeywordsZh: []string{"房子", "老家", "房间", "搬家", "屋子"},
		KeywordsEn: []string{"house", "home", "room", "moving"},
		Meaning: LocalizedText{
			Zh: "房屋的梦象征自我与安全感的结构，常出现在盘点内在的阶段",
			En: "House dreams symbolize the structure of self and safety, common when taking inner stock",
		},
		Mood: models.MoodCalm,
		TrendHint: LocalizedText{
			Zh: "适合整理与筑基",
			En: "Good for tidying and foundation-laying",
		},
		Suggestions: []LocalizedText{
			{Zh: "整理一个角落，外部秩序带动内部秩序", En: "Tidy one corner; outer order pulls inner order"},
		},
		Tags: []string{"house", "self", "security"},
	},
}

// DreamOtherEntry 未命中任何类型时的兜底模板
var DreamOtherEntry = DreamTypeEntry{
	Type: models.DreamTypeOther,
	Meaning: LocalizedText{
		Zh: "这段梦境没有落入常见母题，更多是白天记忆的自然整理",
		En: "This dream fits no common motif; likely the mind filing the day away",
	},
	Mood: models.MoodCalm,
	TrendHint: LocalizedText{
		Zh: "平稳过渡，保持日常节奏",
		En: "A quiet stretch; keep your usual rhythm",
	},
	Suggestions: []LocalizedText{
		{Zh: "保持规律作息即可", En: "A regular routine is enough"},
	},
	Tags: []string{"other", "misc"},
}

// 情绪提示词表：按序匹配，命中即追加对应系统标签
var (
	EmotionHintAnxiousWords = []string{"焦虑", "紧张", "害怕", "anxious", "nervous", "afraid", "scared"}
	EmotionHintCalmWords    = []string{"平静", "放松", "安心", "calm", "relaxed", "peaceful"}
	EmotionHintExcitedWords = []string{"兴奋", "开心", "激动", "excited", "happy", "thrilled"}
)
