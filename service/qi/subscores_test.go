/*
 * @module service/qi/subscores_test
 * @description 四路子分值单元测试：修正表、钳制区间与弱证据回拉
 */

package qi

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"qirhythm-service/service/archetype"
	"qirhythm-service/service/models"
)

func TestPalmSubScore_AdjustsAndClamp(t *testing.T) {
	best := models.PalmFeatureSummary{
		Color:   models.PalmColorRed,
		Texture: models.PalmTextureSmooth,
		Lines: models.PalmLines{
			Life:  models.LifeLineDeep,
			Heart: models.HeartLineLong,
		},
		QualityScore: 60,
	}
	// 50 + 6(生命线深) + 3(感情线长) + 2(掌色红) = 61，钳制到上限 60
	assert.Equal(t, 60.0, PalmSubScore(best))

	worst := models.PalmFeatureSummary{
		Color:   models.PalmColorDark,
		Texture: models.PalmTextureRough,
		Lines: models.PalmLines{
			Life: models.LifeLineBroken,
		},
		QualityScore: 60,
	}
	// 50 - 5 - 4 - 2 = 39，钳制到下限 45
	assert.Equal(t, 45.0, PalmSubScore(worst))

	// 零值摘要保持中性
	assert.Equal(t, 50.0, PalmSubScore(models.PalmFeatureSummary{}))
}

func TestTongueSubScore_LowQualityPullsTowardNeutral(t *testing.T) {
	weak := models.TongueFeatureSummary{
		Color:        models.TongueColorPale,
		Coating:      models.TongueCoatingNone,
		Texture:      models.TongueTextureSmooth,
		QualityScore: 10,
	}
	// 50 - 10 - 12 = 28；质量 10 < 30，向 50 回拉一半 -> 39
	assert.Equal(t, 39.0, TongueSubScore(weak))

	strong := weak
	strong.QualityScore = 60
	assert.Equal(t, 28.0, TongueSubScore(strong))
}

func TestTongueSubScore_Clamp(t *testing.T) {
	worst := models.TongueFeatureSummary{
		Color:        models.TongueColorPurple,
		Coating:      models.TongueCoatingNone,
		Texture:      models.TongueTextureCracked,
		QualityScore: 80,
	}
	// 50 - 12 - 12 - 8 = 18，仍在 [10,90] 区间内
	assert.Equal(t, 18.0, TongueSubScore(worst))
}

func TestDreamSubScore_DeltasAndHints(t *testing.T) {
	fly := models.DreamArchetype{DreamType: models.DreamTypeFly}
	assert.Equal(t, 68.0, DreamSubScore(fly, archetype.EmotionHintNone))
	assert.Equal(t, 73.0, DreamSubScore(fly, archetype.EmotionHintExcited))

	fall := models.DreamArchetype{DreamType: models.DreamTypeFall}
	assert.Equal(t, 38.0, DreamSubScore(fall, archetype.EmotionHintNone))
	assert.Equal(t, 33.0, DreamSubScore(fall, archetype.EmotionHintAnxious))

	other := models.DreamArchetype{DreamType: models.DreamTypeOther}
	assert.Equal(t, 50.0, DreamSubScore(other, archetype.EmotionHintNone))
	assert.Equal(t, 55.0, DreamSubScore(other, archetype.EmotionHintCalm))
}

func TestAlmanacSubScore(t *testing.T) {
	// 零值输入中性
	assert.Equal(t, 50.0, AlmanacSubScore(models.AlmanacInfo{}))

	full := models.AlmanacInfo{
		SolarTerm:   "立春",
		Favorable:   []string{"早起", "会友"},
		Unfavorable: []string{"熬夜"},
	}
	// 50 + 2*2 - 1*2 + 3 = 55
	assert.Equal(t, 55.0, AlmanacSubScore(full))

	// 大量忌项也钳制在下限 30
	heavy := models.AlmanacInfo{
		Unfavorable: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"},
	}
	assert.Equal(t, 30.0, AlmanacSubScore(heavy))
}

func TestConstitutionDelta(t *testing.T) {
	strong := models.PalmArchetype{Vitality: models.VitalityAbundant}
	balanced := models.TongueArchetype{QiStatus: models.QiStatusBalanced}
	assert.Equal(t, 4.0, ConstitutionDelta(strong, balanced))

	weak := models.PalmArchetype{Vitality: models.VitalityAdjust}
	deficit := models.TongueArchetype{QiStatus: models.QiStatusDeficit}
	assert.Equal(t, -5.0, ConstitutionDelta(weak, deficit))

	// 零值原型不调
	assert.Equal(t, 0.0, ConstitutionDelta(models.PalmArchetype{}, models.TongueArchetype{}))
}
