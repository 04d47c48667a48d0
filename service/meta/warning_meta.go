/*
 * @module service/meta/warning_meta
 * @description 形态校验降级告警文案目录，按原因码与主体检索
 * @architecture 元数据层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 静态元数据定义
 * @rules 每个降级原因码必须有对应文案，缺失时回落通用文案
 * @dependencies qirhythm-service/service/models
 * @refs service/vision/gate.go
 */

package meta

import "qirhythm-service/service/models"

// CheckSubject 校验主体
type CheckSubject string

const (
	SubjectPalm   CheckSubject = "palm"
	SubjectTongue CheckSubject = "tongue"
)

// warningKey 告警文案检索键
type warningKey struct {
	Subject CheckSubject
	Reason  models.CheckReason
}

// fallbackWarnings 降级告警文案目录
var fallbackWarnings = map[warningKey]LocalizedText{
	{SubjectPalm, models.CheckReasonNotPalm}: {
		Zh: "未能识别出手掌，本次掌相按通用基线解读",
		En: "No palm was recognized; the palm reading uses a generic baseline",
	},
	{SubjectPalm, models.CheckReasonLowQuality}: {
		Zh: "掌相照片清晰度不足，本次按通用基线解读，建议在自然光下重拍",
		En: "The palm photo is not clear enough; a generic baseline is used. Retake it in daylight",
	},
	{SubjectPalm, models.CheckReasonPartial}: {
		Zh: "掌纹细节不完整，解读结果仅供参考",
		En: "Palm line details are incomplete; treat this reading as indicative only",
	},
	{SubjectTongue, models.CheckReasonNotTongue}: {
		Zh: "未能识别出舌头，本次舌相按通用基线解读",
		En: "No tongue was recognized; the tongue reading uses a generic baseline",
	},
	{SubjectTongue, models.CheckReasonLowQuality}: {
		Zh: "舌相照片清晰度不足，本次按通用基线解读，建议在自然光下重拍",
		En: "The tongue photo is not clear enough; a generic baseline is used. Retake it in daylight",
	},
	{SubjectTongue, models.CheckReasonPartial}: {
		Zh: "舌相特征不完整，解读结果仅供参考",
		En: "Tongue features are incomplete; treat this reading as indicative only",
	},
}

// genericWarning 通用降级文案
var genericWarning = LocalizedText{
	Zh: "照片不可用，本次按通用基线解读",
	En: "The photo was unusable; a generic baseline is used",
}

// FallbackWarning 按主体、原因码与语言返回一条降级告警文案
func FallbackWarning(subject CheckSubject, reason models.CheckReason, locale string) string {
	text, ok := fallbackWarnings[warningKey{Subject: subject, Reason: reason}]
	if !ok {
		text = genericWarning
	}
	if locale == "en" {
		return text.En
	}
	return text.Zh
}

// Pick 按语言取文案
func (t LocalizedText) Pick(locale string) string {
	if locale == "en" {
		return t.En
	}
	return t.Zh
}
