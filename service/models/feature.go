/*
 * @module service/models/feature
 * @description 影像特征模型，定义掌相/舌相特征摘要的封闭枚举与质量评分
 * @architecture 数据模型层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 影像解码 -> 特征提取 -> 特征摘要 -> 形态校验
 * @rules 所有分类字段必须取枚举成员，证据不足时取中性默认值，禁止空值
 * @dependencies 无
 * @refs service/vision/, service/archetype/
 */

package models

// PalmColor 掌色分类
type PalmColor string

const (
	PalmColorPink PalmColor = "pink" // 红润，中性默认值
	PalmColorRed  PalmColor = "red"  // 偏红
	PalmColorPale PalmColor = "pale" // 偏白
	PalmColorDark PalmColor = "dark" // 偏暗
)

// PalmTexture 掌面纹理分类
type PalmTexture string

const (
	PalmTextureSmooth PalmTexture = "smooth" // 细腻，中性默认值
	PalmTextureNormal PalmTexture = "normal" // 普通
	PalmTextureRough  PalmTexture = "rough"  // 粗糙
)

// LifeLineQuality 生命线形态
type LifeLineQuality string

const (
	LifeLineDeep    LifeLineQuality = "deep"    // 深长
	LifeLineShallow LifeLineQuality = "shallow" // 浅淡，中性默认值
	LifeLineBroken  LifeLineQuality = "broken"  // 断续
)

// HeartLineQuality 感情线形态
type HeartLineQuality string

const (
	HeartLineLong   HeartLineQuality = "long"   // 长直
	HeartLineShort  HeartLineQuality = "short"  // 短促
	HeartLineCurved HeartLineQuality = "curved" // 弯曲，中性默认值
)

// WisdomLineQuality 智慧线形态
type WisdomLineQuality string

const (
	WisdomLineStraight WisdomLineQuality = "straight" // 平直
	WisdomLineWavy     WisdomLineQuality = "wavy"     // 波状，中性默认值
	WisdomLineBroken   WisdomLineQuality = "broken"   // 断续
)

// FateLineQuality 事业线形态（次要线，可能不可见）
type FateLineQuality string

const (
	FateLineDeep    FateLineQuality = "deep"    // 清晰
	FateLineShallow FateLineQuality = "shallow" // 浅淡
	FateLineAbsent  FateLineQuality = "absent"  // 不可见，中性默认值
)

// MoneyLineQuality 财帛线形态（次要线，可能不可见）
type MoneyLineQuality string

const (
	MoneyLineClear  MoneyLineQuality = "clear"  // 清晰
	MoneyLineFaint  MoneyLineQuality = "faint"  // 浅淡
	MoneyLineAbsent MoneyLineQuality = "absent" // 不可见，中性默认值
)

// PalmLines 掌纹线条质量集合
type PalmLines struct {
	Life   LifeLineQuality   `json:"life"`
	Heart  HeartLineQuality  `json:"heart"`
	Wisdom WisdomLineQuality `json:"wisdom"`
	Fate   FateLineQuality   `json:"fate"`
	Money  MoneyLineQuality  `json:"money"`
}

// PalmFeatureSummary 掌相特征摘要
// 每张上传影像生成一次，不可变，由掌相原型引擎消费
type PalmFeatureSummary struct {
	Color        PalmColor   `json:"color"`
	Texture      PalmTexture `json:"texture"`
	Lines        PalmLines   `json:"lines"`
	QualityScore float64     `json:"quality_score"` // 0-100
}

// TongueColor 舌色分类
type TongueColor string

const (
	TongueColorPink   TongueColor = "pink"   // 淡红，中性默认值
	TongueColorRed    TongueColor = "red"    // 偏红
	TongueColorPale   TongueColor = "pale"   // 淡白
	TongueColorPurple TongueColor = "purple" // 偏紫
	TongueColorDark   TongueColor = "dark"   // 偏暗
)

// TongueCoating 舌苔分类
type TongueCoating string

const (
	TongueCoatingThinWhite  TongueCoating = "thin_white"  // 薄白苔，中性默认值
	TongueCoatingThickWhite TongueCoating = "thick_white" // 厚白苔
	TongueCoatingYellow     TongueCoating = "yellow"      // 黄苔
	TongueCoatingNone       TongueCoating = "none"        // 少苔/无苔
)

// TongueTexture 舌质纹理分类
type TongueTexture string

const (
	TongueTextureSmooth  TongueTexture = "smooth"  // 光滑
	TongueTextureNormal  TongueTexture = "normal"  // 普通，中性默认值
	TongueTextureCracked TongueTexture = "cracked" // 有裂纹
)

// TongueFeatureSummary 舌相特征摘要
type TongueFeatureSummary struct {
	Color        TongueColor   `json:"color"`
	Coating      TongueCoating `json:"coating"`
	Texture      TongueTexture `json:"texture"`
	QualityScore float64       `json:"quality_score"` // 0-100
}

// DefaultPalmFeatureSummary 掌相兜底默认摘要
// 形态校验失败时使用的固定合成值
func DefaultPalmFeatureSummary() PalmFeatureSummary {
	return PalmFeatureSummary{
		Color:   PalmColorPink,
		Texture: PalmTextureSmooth,
		Lines: PalmLines{
			Life:   LifeLineShallow,
			Heart:  HeartLineCurved,
			Wisdom: WisdomLineWavy,
			Fate:   FateLineAbsent,
			Money:  MoneyLineAbsent,
		},
		QualityScore: 0,
	}
}

// DefaultTongueFeatureSummary 舌相兜底默认摘要
func DefaultTongueFeatureSummary() TongueFeatureSummary {
	return TongueFeatureSummary{
		Color:        TongueColorPink,
		Coating:      TongueCoatingThinWhite,
		Texture:      TongueTextureNormal,
		QualityScore: 0,
	}
}

// HasLineStructure 判断掌纹是否包含非默认线条结构
// 用于形态校验的"有结构即可用"判定
func (s PalmFeatureSummary) HasLineStructure() bool {
	def := DefaultPalmFeatureSummary().Lines
	return s.Lines.Life != def.Life ||
		s.Lines.Heart != def.Heart ||
		s.Lines.Wisdom != def.Wisdom ||
		s.Lines.Fate != def.Fate ||
		s.Lines.Money != def.Money
}

// HasStructure 判断舌相摘要是否包含非默认结构特征
func (s TongueFeatureSummary) HasStructure() bool {
	def := DefaultTongueFeatureSummary()
	return s.Color != def.Color || s.Coating != def.Coating || s.Texture != def.Texture
}
