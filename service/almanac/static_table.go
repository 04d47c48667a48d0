/*
 * @module service/almanac/static_table
 * @description 静态黄历兜底：二十四节气近似日期表与按日期确定性推算的宜忌标签
 * @architecture 外部数据适配层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 日期 -> 节气表查找 -> 宜忌标签推算 -> 黄历上下文
 * @rules 同一日期推算结果恒定；节气按公历近似日期匹配，前后各一天容差
 * @dependencies time
 * @refs service/almanac/almanac_service.go
 */

package almanac

import (
	"time"

	"qirhythm-service/service/models"
)

// solarTermEntry 节气近似公历日期
type solarTermEntry struct {
	Month int
	Day   int
	Name  string
}

// solarTerms 二十四节气近似日期表（公历，存在一至两天的年际漂移，匹配容差±1天）
var solarTerms = []solarTermEntry{
	{2, 4, "立春"}, {2, 19, "雨水"}, {3, 6, "惊蛰"}, {3, 21, "春分"},
	{4, 5, "清明"}, {4, 20, "谷雨"}, {5, 6, "立夏"}, {5, 21, "小满"},
	{6, 6, "芒种"}, {6, 21, "夏至"}, {7, 7, "小暑"}, {7, 23, "大暑"},
	{8, 8, "立秋"}, {8, 23, "处暑"}, {9, 8, "白露"}, {9, 23, "秋分"},
	{10, 8, "寒露"}, {10, 23, "霜降"}, {11, 7, "立冬"}, {11, 22, "小雪"},
	{12, 7, "大雪"}, {12, 22, "冬至"}, {1, 6, "小寒"}, {1, 20, "大寒"},
}

// 宜忌候选标签池
var (
	favorablePool = []string{
		"早起", "整理", "会友", "出行", "动土", "纳财", "学习", "静养", "运动", "立约",
	}
	unfavorablePool = []string{
		"远行", "争执", "熬夜", "暴饮暴食", "仓促决断", "搬迁", "借贷", "冒进",
	}
)

// StaticAlmanac 按日期确定性推算黄历上下文
// 节气命中给名称；宜忌由年内序数派生，保证同日结果恒定
func StaticAlmanac(date time.Time) models.AlmanacInfo {
	info := models.AlmanacInfo{
		Favorable:   []string{},
		Unfavorable: []string{},
	}

	month, day := int(date.Month()), date.Day()
	for _, term := range solarTerms {
		if term.Month == month && day >= term.Day-1 && day <= term.Day+1 {
			info.SolarTerm = term.Name
			break
		}
	}

	yearDay := date.YearDay()
	for i := 0; i < 2; i++ {
		info.Favorable = append(info.Favorable, favorablePool[(yearDay+i*3)%len(favorablePool)])
	}
	for i := 0; i < 2; i++ {
		info.Unfavorable = append(info.Unfavorable, unfavorablePool[(yearDay+i*5)%len(unfavorablePool)])
	}

	return info
}
