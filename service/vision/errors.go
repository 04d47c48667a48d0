/*
 * @module service/vision/errors
 * @description 影像特征提取的类型化错误定义，提取阶段只允许抛出这些错误
 * @architecture 视觉服务层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 提取失败 -> 类型化错误 -> 形态校验降级
 * @rules 错误集合封闭且可 errors.Is 匹配，形态校验之后不得再向上冒泡
 * @dependencies errors
 * @refs service/vision/gate.go
 */

package vision

import "errors"

var (
	// ErrInvalidImage 影像数据无法解码（已含一次重试）
	ErrInvalidImage = errors.New("INVALID_IMAGE: 影像数据无法解码")
	// ErrUnsupportedType 声明的 MIME 类型不受支持（仅告警，不中断解码）
	ErrUnsupportedType = errors.New("UNSUPPORTED_TYPE: 不支持的影像类型")
	// ErrFileTooLarge 影像字节数超过固定上限
	ErrFileTooLarge = errors.New("FILE_TOO_LARGE: 影像超过大小上限")
	// ErrLowResolution 影像最长边低于固定下限
	ErrLowResolution = errors.New("LOW_RESOLUTION: 影像分辨率不足")
	// ErrBlurryPalm 掌相影像清晰度低于质量下限
	ErrBlurryPalm = errors.New("BLURRY_PALM: 掌相影像过于模糊")
	// ErrBlurryTongue 舌相影像清晰度低于质量下限
	ErrBlurryTongue = errors.New("BLURRY_TONGUE: 舌相影像过于模糊")
	// ErrNotPalm 影像不具备手掌照片的基本合理性
	ErrNotPalm = errors.New("NOT_PALM: 未识别出手掌")
	// ErrNotTongue 影像不具备舌头照片的基本合理性
	ErrNotTongue = errors.New("NOT_TONGUE: 未识别出舌头")
)
