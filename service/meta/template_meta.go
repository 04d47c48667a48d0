/*
 * @module service/meta/template_meta
 * @description 叙事模板库：按气律标签与子分值高低位检索的固定句库、趋势文案与建议
 * @architecture 元数据层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 静态元数据定义
 * @rules 模板选择只依赖标签与子分值高低位，保证叙事可复现
 * @dependencies qirhythm-service/service/models
 * @refs service/qi/narrative.go
 */

package meta

import "qirhythm-service/service/models"

// SentenceBank 单一信号源的句库：子分值高于/低于中点各一句
type SentenceBank struct {
	High LocalizedText
	Low  LocalizedText
}

// NarrativeBank 单个气律标签下的完整句库
type NarrativeBank struct {
	Almanac SentenceBank  // 黄历氛围句
	Palm    SentenceBank  // 掌相动能句
	Tongue  SentenceBank  // 舌相气机句
	Dream   SentenceBank  // 梦境意象句
	Overall LocalizedText // 总体气律句
}

// NarrativeBanks 叙事句库，按气律标签检索
var NarrativeBanks = map[models.QiTag]NarrativeBank{
	models.QiTagRising: {
		Almanac: SentenceBank{
			High: LocalizedText{Zh: "今日时令顺遂，外部气场托底。", En: "The day's almanac runs in your favor, lending outside support."},
			Low:  LocalizedText{Zh: "今日时令平平，但不碍大局。", En: "The almanac is lukewarm today, though it won't hold you back."},
		},
		Palm: SentenceBank{
			High: LocalizedText{Zh: "掌相底盘扎实，长线动能充足。", En: "Your palm baseline is solid, with ample long-run momentum."},
			Low:  LocalizedText{Zh: "掌相底盘平稳，长线不拖后腿。", En: "Your palm baseline holds steady and won't drag."},
		},
		Tongue: SentenceBank{
			High: LocalizedText{Zh: "舌相显示气血畅旺，身体在配合你。", En: "The tongue shows lively qi and blood; your body is cooperating."},
			Low:  LocalizedText{Zh: "舌相略有小滞，不影响整体上行。", En: "The tongue hints at minor stagnation, not enough to stall the climb."},
		},
		Dream: SentenceBank{
			High: LocalizedText{Zh: "梦境意象舒展，潜意识也在助推。", En: "Dream imagery stretches open; the subconscious is pushing along."},
			Low:  LocalizedText{Zh: "梦境略有杂音，醒来放下即可。", En: "The dream carried some noise; let it go on waking."},
		},
		Overall: LocalizedText{Zh: "整体气律处于上升通道，宜乘势推进要事。", En: "Your overall rhythm is in an ascending channel; ride it on what matters."},
	},
	models.QiTagSteady: {
		Almanac: SentenceBank{
			High: LocalizedText{Zh: "时令氛围温和，日子顺手。", En: "The almanac mood is mild; the day handles easily."},
			Low:  LocalizedText{Zh: "时令略有牵绊，按部就班即可。", En: "The almanac tugs a little; routine will carry you."},
		},
		Palm: SentenceBank{
			High: LocalizedText{Zh: "掌相基线良好，续航稳定。", En: "The palm baseline is good with stable endurance."},
			Low:  LocalizedText{Zh: "掌相基线普通，稳字当头。", En: "The palm baseline is ordinary; steadiness leads."},
		},
		Tongue: SentenceBank{
			High: LocalizedText{Zh: "舌相气机平顺，状态在线。", En: "Tongue qi runs even; you're in working order."},
			Low:  LocalizedText{Zh: "舌相提示小幅亏欠，注意饮食作息。", En: "The tongue hints at a small deficit; mind meals and sleep."},
		},
		Dream: SentenceBank{
			High: LocalizedText{Zh: "梦境基调平和，心绪安定。", En: "The dream's tone is calm; the mind sits settled."},
			Low:  LocalizedText{Zh: "梦境有些许压力影子，白天多留白。", En: "The dream carried a shadow of pressure; leave slack in the day."},
		},
		Overall: LocalizedText{Zh: "整体气律平稳，适合稳扎稳打积累。", En: "Your overall rhythm is steady; build brick by brick."},
	},
	models.QiTagNeutral: {
		Almanac: SentenceBank{
			High: LocalizedText{Zh: "时令不功不过，氛围中性。", En: "The almanac is neutral, neither boost nor brake."},
			Low:  LocalizedText{Zh: "时令略显平淡，无需强求。", En: "The almanac reads flat; don't force it."},
		},
		Palm: SentenceBank{
			High: LocalizedText{Zh: "掌相底子尚可，留有余量。", En: "The palm base is decent with margin to spare."},
			Low:  LocalizedText{Zh: "掌相提示底力一般，量力而行。", En: "The palm suggests average reserves; act within them."},
		},
		Tongue: SentenceBank{
			High: LocalizedText{Zh: "舌相尚属平和。", En: "The tongue reads fairly balanced."},
			Low:  LocalizedText{Zh: "舌相提示气血偏弱，先把身体养回来。", En: "The tongue flags weak qi and blood; restore the body first."},
		},
		Dream: SentenceBank{
			High: LocalizedText{Zh: "梦境意象中性偏缓。", En: "Dream imagery is neutral, leaning slow."},
			Low:  LocalizedText{Zh: "梦境折射出一些消耗，宜早些休息。", En: "The dream reflects some depletion; turn in early."},
		},
		Overall: LocalizedText{Zh: "整体气律处于调整期，宜守不宜攻。", En: "Your overall rhythm is in an adjustment phase; hold rather than push."},
	},
	models.QiTagLow: {
		Almanac: SentenceBank{
			High: LocalizedText{Zh: "时令尚有托底，借一分是一分。", En: "The almanac still lends a floor; take what it gives."},
			Low:  LocalizedText{Zh: "时令偏涩，凡事慢半拍更稳。", En: "The almanac runs rough; half a beat slower is safer."},
		},
		Palm: SentenceBank{
			High: LocalizedText{Zh: "掌相底盘没有塌，低谷是暂时的。", En: "The palm base hasn't caved; the trough is temporary."},
			Low:  LocalizedText{Zh: "掌相提示储备偏低，减少消耗。", En: "The palm flags low reserves; cut the burn."},
		},
		Tongue: SentenceBank{
			High: LocalizedText{Zh: "舌相还算配合，恢复有基础。", En: "The tongue still cooperates; recovery has footing."},
			Low:  LocalizedText{Zh: "舌相提示身体在报警，优先休整。", En: "The tongue signals the body's alarm; rest comes first."},
		},
		Dream: SentenceBank{
			High: LocalizedText{Zh: "梦境没有添乱，心底仍有余裕。", En: "The dream added no chaos; there's slack left inside."},
			Low:  LocalizedText{Zh: "梦境折射出积压的情绪，找个出口释放。", En: "The dream mirrors pent-up emotion; find it an outlet."},
		},
		Overall: LocalizedText{Zh: "整体气律在低位盘整，养精蓄锐等回升。", En: "Your overall rhythm consolidates at a low; recharge and wait for the turn."},
	},
}

// TrendTexts 趋势文案，按气律标签检索
var TrendTexts = map[models.QiTag]LocalizedText{
	models.QiTagRising:  {Zh: "未来几日气律看涨，可安排重要事项。", En: "The next few days trend upward; schedule what matters."},
	models.QiTagSteady:  {Zh: "未来几日气律平稳，维持现有节奏。", En: "The next few days stay level; keep the current pace."},
	models.QiTagNeutral: {Zh: "未来几日气律中性，宜观察少折腾。", En: "The next few days read neutral; observe, don't churn."},
	models.QiTagLow:     {Zh: "未来几日气律偏弱，以恢复为主。", En: "The next few days lean weak; make recovery the plan."},
}

// AdviceBanks 建议清单，按气律标签检索
var AdviceBanks = map[models.QiTag][]LocalizedText{
	models.QiTagRising: {
		{Zh: "把最重要的一件事安排在上午", En: "Put the most important task in the morning"},
		{Zh: "乘势拓展，但保留三分余力", En: "Expand on momentum, keep a third in reserve"},
	},
	models.QiTagSteady: {
		{Zh: "保持规律作息，稳定即是积累", En: "Keep a regular routine; stability compounds"},
		{Zh: "适度运动，帮气血循环提一档", En: "Moderate exercise to lift circulation a notch"},
	},
	models.QiTagNeutral: {
		{Zh: "减少并行事务，集中一两件推进", En: "Trim parallel tasks; push one or two"},
		{Zh: "饮食清淡，给身体减负", En: "Eat light to unburden the body"},
	},
	models.QiTagLow: {
		{Zh: "今晚早睡一小时", En: "Sleep an hour earlier tonight"},
		{Zh: "推迟可推迟的决定", En: "Defer every decision that can wait"},
		{Zh: "找信任的人聊聊，别独自硬扛", En: "Talk to someone you trust instead of toughing it out alone"},
	},
}

// AlmanacHintTemplates 黄历宜忌提示模板
var AlmanacHintTemplates = struct {
	WithTerm LocalizedText // 含节气占位：节气名
	Plain    LocalizedText
}{
	WithTerm: LocalizedText{Zh: "今日逢%s。宜：%s；忌：%s。", En: "Today falls on %s. Favorable: %s; unfavorable: %s."},
	Plain:    LocalizedText{Zh: "今日宜：%s；忌：%s。", En: "Today favorable: %s; unfavorable: %s."},
}
