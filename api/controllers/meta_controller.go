package controllers

import (
	"net/http"

	"github.com/go-chi/render"

	"qirhythm-service/service/meta"
)

type MetaController struct {
}

func NewMetaController() *MetaController {
	return &MetaController{}
}

// @Summary 获取梦境类型元数据
// @Description 获取全部梦境类型的关键词、标签与双语释义
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=[]meta.DreamTypeEntry}
// @Router /meta/dream-types [get]
func (c *MetaController) GetDreamTypes(w http.ResponseWriter, r *http.Request) {
	dreamTypes := make([]meta.DreamTypeEntry, 0, len(meta.DreamTypeTable)+1)
	dreamTypes = append(dreamTypes, meta.DreamTypeTable...)
	dreamTypes = append(dreamTypes, meta.DreamOtherEntry)
	render.JSON(w, r, SuccessResponse("获取梦境类型元数据成功", dreamTypes))
}

// @Summary 获取气律标签元数据
// @Description 获取指数权重、标签阈值表与标签到趋势的映射
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]interface{}}
// @Router /meta/qi-tags [get]
func (c *MetaController) GetQiTags(w http.ResponseWriter, r *http.Request) {
	qiMeta := map[string]interface{}{
		"weights": meta.QiWeights,
		"tags":    meta.QiTagTable,
		"trends":  meta.QiTrendTable,
	}
	render.JSON(w, r, SuccessResponse("获取气律标签元数据成功", qiMeta))
}

// @Summary 获取原型推断元数据
// @Description 获取掌相/舌相特征到原型维度的映射表
// @Tags 元数据
// @Produce json
// @Success 200 {object} APIResponse{data=map[string]interface{}}
// @Router /meta/archetypes [get]
func (c *MetaController) GetArchetypes(w http.ResponseWriter, r *http.Request) {
	archetypeMeta := map[string]interface{}{
		"vitality_by_life_line":   meta.VitalityByLifeLine,
		"emotion_by_heart_line":   meta.EmotionByHeartLine,
		"thinking_by_wisdom_line": meta.ThinkingByWisdomLine,
		"palm_color_hints":        meta.PalmColorHints,
		"palm_texture_hints":      meta.PalmTextureHints,
		"qi_status_by_tongue":     meta.QiStatusByTongueColor,
		"tongue_coating_hints":    meta.TongueCoatingHints,
		"tongue_texture_hints":    meta.TongueTextureHints,
	}
	render.JSON(w, r, SuccessResponse("获取原型推断元数据成功", archetypeMeta))
}
