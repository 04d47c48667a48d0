/*
 * @module service/archetype/dream
 * @description 梦境原型引擎：自由文本按序关键词归类 + 逐类型模板填充 + 情绪提示修正
 * @architecture 规则引擎层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 梦境文本 -> 按序子串匹配 -> 类型模板 -> 情绪提示修正 -> 梦境原型
 * @rules 词表按序匹配，首个命中类型即生效，未命中回落 other；空文本也必须产出完整原型
 * @dependencies qirhythm-service/service/models, qirhythm-service/service/meta
 * @refs service/qi/subscores.go
 */

package archetype

import (
	"strings"

	"qirhythm-service/service/meta"
	"qirhythm-service/service/models"
)

// EmotionHintKind 情绪提示归类
type EmotionHintKind string

const (
	EmotionHintNone    EmotionHintKind = ""
	EmotionHintAnxious EmotionHintKind = "anxious"
	EmotionHintCalm    EmotionHintKind = "calm"
	EmotionHintExcited EmotionHintKind = "excited"
)

// ClassifyDreamType 自由文本按序关键词归类
// 中英文词表逐项子串匹配，首个命中的类型生效；未命中返回 other
func ClassifyDreamType(text string) models.DreamType {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return models.DreamTypeOther
	}
	lowered := strings.ToLower(trimmed)

	for _, entry := range meta.DreamTypeTable {
		for _, kw := range entry.KeywordsZh {
			if strings.Contains(trimmed, kw) {
				return entry.Type
			}
		}
		for _, kw := range entry.KeywordsEn {
			if strings.Contains(lowered, kw) {
				return entry.Type
			}
		}
	}
	return models.DreamTypeOther
}

// ClassifyEmotionHint 情绪提示归类，按 焦虑/平静/兴奋 顺序匹配
func ClassifyEmotionHint(hint string) EmotionHintKind {
	if strings.TrimSpace(hint) == "" {
		return EmotionHintNone
	}
	lowered := strings.ToLower(hint)
	if containsAny(lowered, meta.EmotionHintAnxiousWords) {
		return EmotionHintAnxious
	}
	if containsAny(lowered, meta.EmotionHintCalmWords) {
		return EmotionHintCalm
	}
	if containsAny(lowered, meta.EmotionHintExcitedWords) {
		return EmotionHintExcited
	}
	return EmotionHintNone
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, strings.ToLower(w)) {
			return true
		}
	}
	return false
}

// InferDreamArchetype 由梦境文本与情绪提示推断梦境原型
// 空文本回落 other 模板，原型永远完整
func InferDreamArchetype(text, emotionHint, locale string) models.DreamArchetype {
	dreamType := ClassifyDreamType(text)
	entry := lookupDreamEntry(dreamType)

	tags := make([]string, 0, len(entry.Tags)+1)
	tags = append(tags, entry.Tags...)

	mood := entry.Mood
	switch ClassifyEmotionHint(emotionHint) {
	case EmotionHintAnxious:
		tags = append(tags, "emo_anxious")
		mood = shiftMoodToward(mood, models.MoodAnxious)
	case EmotionHintCalm:
		tags = append(tags, "emo_calm")
		mood = shiftMoodToward(mood, models.MoodCalm)
	case EmotionHintExcited:
		tags = append(tags, "emo_excited")
		mood = shiftMoodToward(mood, models.MoodUplift)
	}

	suggestions := make([]string, 0, len(entry.Suggestions))
	for _, s := range entry.Suggestions {
		suggestions = append(suggestions, s.Pick(locale))
	}

	return models.DreamArchetype{
		DreamType:   dreamType,
		Meaning:     entry.Meaning.Pick(locale),
		Mood:        mood,
		TrendHint:   entry.TrendHint.Pick(locale),
		Suggestions: suggestions,
		SystemTags:  tags,
	}
}

func lookupDreamEntry(dreamType models.DreamType) meta.DreamTypeEntry {
	for _, entry := range meta.DreamTypeTable {
		if entry.Type == dreamType {
			return entry
		}
	}
	return meta.DreamOtherEntry
}

// moodOrder 情绪模式由沉到扬的固定序
var moodOrder = []models.MoodPattern{
	models.MoodAnxious,
	models.MoodPressure,
	models.MoodCalm,
	models.MoodRelease,
	models.MoodUplift,
}

// shiftMoodToward 情绪提示把模板情绪向目标移动一档
func shiftMoodToward(current, target models.MoodPattern) models.MoodPattern {
	ci, ti := moodIndex(current), moodIndex(target)
	if ci == ti {
		return current
	}
	if ti > ci {
		return moodOrder[ci+1]
	}
	return moodOrder[ci-1]
}

func moodIndex(m models.MoodPattern) int {
	for i, v := range moodOrder {
		if v == m {
			return i
		}
	}
	return 2 // 平稳
}
