/*
 * @module service/vision/stats
 * @description 单遍像素统计：颜色带计数、梯度累积、分带对比度、通道方差与饱和度
 * @architecture 视觉服务层
 * @documentReference ai_docs/qi_pipeline_design.md
 * @stateFlow 工作影像 -> 单遍扫描累积 -> 比例/均值派生
 * @rules 影像只允许扫描一遍，全部比例由运行累积和除以像素数派生
 * @dependencies image
 * @refs service/vision/palm.go, service/vision/tongue.go
 */

package vision

import "image"

// 颜色带与梯度判定阈值（标定常量）
const (
	redDominantMargin  = 24  // R 超出 G/B 的最小差值
	shadowLuminance    = 60  // 暗部亮度上限
	strongEdgeGradient = 40  // 强边缘像素的梯度下限
)

// pixelStats 单遍扫描的运行累积量
type pixelStats struct {
	width  int
	height int
	total  int

	redDominant int // 红通道显著高于绿蓝
	warm        int // 暖色带（肤色/舌体）
	pale        int // 亮白带（白苔/偏白）
	purple      int // 紫色带
	yellow      int // 黄色带
	shadow      int // 暗部

	gradientSum float64 // 右邻+下邻绝对差累积
	gradientCnt int
	strongEdges int

	// 三等分行带/列带的梯度累积，供线条判定使用
	rowBandSum [3]float64
	rowBandCnt [3]int
	colBandSum [3]float64
	colBandCnt [3]int

	satSum float64

	rSum, gSum, bSum float64
	rSq, gSq, bSq    float64
}

// luminance 加权亮度近似
func luminance(r, g, b uint8) float64 {
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// accumulatePixelStats 对工作影像做一次完整扫描并返回累积量
// 所有统计在同一遍循环内完成，不做第二次扫描
func accumulatePixelStats(img *image.RGBA) *pixelStats {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	s := &pixelStats{width: w, height: h, total: w * h}

	for y := 0; y < h; y++ {
		rowBand := y * 3 / h
		if rowBand > 2 {
			rowBand = 2
		}
		for x := 0; x < w; x++ {
			c := img.RGBAAt(x, y)
			r, g, bl := c.R, c.G, c.B
			rf, gf, bf := float64(r), float64(g), float64(bl)

			if int(r) > int(g)+redDominantMargin && int(r) > int(bl)+redDominantMargin {
				s.redDominant++
			}
			if r > 150 && g > 90 && bl > 80 && r > bl {
				s.warm++
			}
			if r > 180 && g > 170 && bl > 160 {
				s.pale++
			}
			if bl > 110 && r > 90 && int(g) < int(r)-20 && int(g) < int(bl)-20 {
				s.purple++
			}
			if r > 150 && g > 130 && bl < 110 {
				s.yellow++
			}

			lum := luminance(r, g, bl)
			if lum < shadowLuminance {
				s.shadow++
			}

			// 饱和度近似：(max-min)/max
			maxc := rf
			if gf > maxc {
				maxc = gf
			}
			if bf > maxc {
				maxc = bf
			}
			minc := rf
			if gf < minc {
				minc = gf
			}
			if bf < minc {
				minc = bf
			}
			if maxc > 0 {
				s.satSum += (maxc - minc) / maxc
			}

			s.rSum += rf
			s.gSum += gf
			s.bSum += bf
			s.rSq += rf * rf
			s.gSq += gf * gf
			s.bSq += bf * bf

			// 右邻+下邻方向梯度
			if x+1 < w || y+1 < h {
				grad := 0.0
				if x+1 < w {
					n := img.RGBAAt(x+1, y)
					grad += abs(lum - luminance(n.R, n.G, n.B))
				}
				if y+1 < h {
					n := img.RGBAAt(x, y+1)
					grad += abs(lum - luminance(n.R, n.G, n.B))
				}
				s.gradientSum += grad
				s.gradientCnt++
				if grad > strongEdgeGradient {
					s.strongEdges++
				}

				colBand := x * 3 / w
				if colBand > 2 {
					colBand = 2
				}
				s.rowBandSum[rowBand] += grad
				s.rowBandCnt[rowBand]++
				s.colBandSum[colBand] += grad
				s.colBandCnt[colBand]++
			}
		}
	}
	return s
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (s *pixelStats) ratio(count int) float64 {
	if s.total == 0 {
		return 0
	}
	return float64(count) / float64(s.total)
}

func (s *pixelStats) redRatio() float64    { return s.ratio(s.redDominant) }
func (s *pixelStats) warmRatio() float64   { return s.ratio(s.warm) }
func (s *pixelStats) paleRatio() float64   { return s.ratio(s.pale) }
func (s *pixelStats) purpleRatio() float64 { return s.ratio(s.purple) }
func (s *pixelStats) yellowRatio() float64 { return s.ratio(s.yellow) }
func (s *pixelStats) shadowRatio() float64 { return s.ratio(s.shadow) }

func (s *pixelStats) strongEdgeRatio() float64 {
	if s.gradientCnt == 0 {
		return 0
	}
	return float64(s.strongEdges) / float64(s.gradientCnt)
}

func (s *pixelStats) meanGradient() float64 {
	if s.gradientCnt == 0 {
		return 0
	}
	return s.gradientSum / float64(s.gradientCnt)
}

// rowBandMeanGradient 行带平均梯度：0 上带、1 中带、2 下带
func (s *pixelStats) rowBandMeanGradient(band int) float64 {
	if s.rowBandCnt[band] == 0 {
		return 0
	}
	return s.rowBandSum[band] / float64(s.rowBandCnt[band])
}

// colBandMeanGradient 列带平均梯度：0 左带、1 中带、2 右带
func (s *pixelStats) colBandMeanGradient(band int) float64 {
	if s.colBandCnt[band] == 0 {
		return 0
	}
	return s.colBandSum[band] / float64(s.colBandCnt[band])
}

func (s *pixelStats) meanSaturation() float64 {
	if s.total == 0 {
		return 0
	}
	return s.satSum / float64(s.total)
}

// colorVariance 三通道方差均值
func (s *pixelStats) colorVariance() float64 {
	if s.total == 0 {
		return 0
	}
	n := float64(s.total)
	rVar := s.rSq/n - (s.rSum/n)*(s.rSum/n)
	gVar := s.gSq/n - (s.gSum/n)*(s.gSum/n)
	bVar := s.bSq/n - (s.bSum/n)*(s.bSum/n)
	return (rVar + gVar + bVar) / 3
}

// qualityScore 由梯度与方差线性归一到 [0,100] 的质量评分
func (s *pixelStats) qualityScore() float64 {
	score := s.meanGradient()*2.2 + s.colorVariance()/48
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
