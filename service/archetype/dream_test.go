/*
 * @module service/archetype/dream_test
 * @description 梦境原型引擎单元测试：关键词归类、情绪提示与模板填充
 */

package archetype

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"qirhythm-service/service/models"
)

func TestClassifyDreamType_ChineseKeywords(t *testing.T) {
	cases := []struct {
		text string
		want models.DreamType
	}{
		{"昨晚梦到被追，一直在逃跑", models.DreamTypeChase},
		{"梦见从高楼坠落", models.DreamTypeFall},
		{"又梦到考试没复习完", models.DreamTypeExam},
		{"梦到掉牙了", models.DreamTypeTeeth},
		{"梦见自己飞起来了", models.DreamTypeFly},
		{"梦见大海和游泳", models.DreamTypeWater},
		{"梦见回到老家的房子", models.DreamTypeHouse},
		{"梦到在陌生城市迷路", models.DreamTypeLost},
		{"梦到参加葬礼", models.DreamTypeDeath},
		{"梦见一只会说话的猫", models.DreamTypeOther},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ClassifyDreamType(tc.text), "text=%s", tc.text)
	}
}

func TestClassifyDreamType_EnglishKeywordsCaseInsensitive(t *testing.T) {
	assert.Equal(t, models.DreamTypeChase, ClassifyDreamType("I was CHASED through a forest"))
	assert.Equal(t, models.DreamTypeFly, ClassifyDreamType("Flying over the city"))
}

func TestClassifyDreamType_EmptyText(t *testing.T) {
	assert.Equal(t, models.DreamTypeOther, ClassifyDreamType(""))
	assert.Equal(t, models.DreamTypeOther, ClassifyDreamType("   "))
}

func TestClassifyEmotionHint(t *testing.T) {
	assert.Equal(t, EmotionHintAnxious, ClassifyEmotionHint("最近很焦虑"))
	assert.Equal(t, EmotionHintCalm, ClassifyEmotionHint("还算平静"))
	assert.Equal(t, EmotionHintExcited, ClassifyEmotionHint("特别兴奋"))
	assert.Equal(t, EmotionHintAnxious, ClassifyEmotionHint("I feel nervous"))
	assert.Equal(t, EmotionHintNone, ClassifyEmotionHint(""))
	assert.Equal(t, EmotionHintNone, ClassifyEmotionHint("说不上来"))
}

func TestInferDreamArchetype_ChaseWithTags(t *testing.T) {
	got := InferDreamArchetype("昨晚梦到被追", "", "zh")

	assert.Equal(t, models.DreamTypeChase, got.DreamType)
	assert.Equal(t, []string{"chase", "pressure", "urgency"}, got.SystemTags)
	assert.Equal(t, models.MoodPressure, got.Mood)
	assert.NotEmpty(t, got.Meaning)
	assert.NotEmpty(t, got.TrendHint)
	require.NotEmpty(t, got.Suggestions)
}

func TestInferDreamArchetype_EmotionHintShiftsMood(t *testing.T) {
	// 被追梦模板情绪为压力积聚，焦虑提示向沉移动一档
	anxious := InferDreamArchetype("被追", "很焦虑", "zh")
	assert.Equal(t, models.MoodAnxious, anxious.Mood)
	assert.Contains(t, anxious.SystemTags, "emo_anxious")

	// 平静提示向扬移动一档
	calm := InferDreamArchetype("被追", "挺平静的", "zh")
	assert.Equal(t, models.MoodCalm, calm.Mood)
	assert.Contains(t, calm.SystemTags, "emo_calm")

	// 情绪与模板一致时不再移动
	excited := InferDreamArchetype("梦见飞翔", "很兴奋", "zh")
	assert.Equal(t, models.MoodUplift, excited.Mood)
}

func TestInferDreamArchetype_EmptyTextStillComplete(t *testing.T) {
	got := InferDreamArchetype("", "", "en")

	assert.Equal(t, models.DreamTypeOther, got.DreamType)
	assert.Equal(t, models.MoodCalm, got.Mood)
	assert.NotEmpty(t, got.Meaning)
	assert.NotEmpty(t, got.Suggestions)
	assert.Equal(t, []string{"other", "misc"}, got.SystemTags)
}
