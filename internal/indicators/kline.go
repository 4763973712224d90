package indicators

import (
	"errors"
	"sort"

	"hsk-market-monitor/pkg/types"
)

const (
	// klineTrendWindow K线趋势观察的收盘价数量
	klineTrendWindow = 10
	// klineSRWindow 支撑/阻力的回看子窗口长度
	klineSRWindow = 6
)

// ErrInsufficientKlines K线数据不足，无法分析
var ErrInsufficientKlines = errors.New("K线数据不足")

// SummarizeKlines 对一批按时间排序的K线收盘价做独立分析。
// 批次少于2个点时返回ErrInsufficientKlines。
func SummarizeKlines(closes []float64) (*types.KlineSummary, error) {
	if len(closes) < 2 {
		return nil, ErrInsufficientKlines
	}

	summary := &types.KlineSummary{
		Trend:      klineTrend(closes),
		Volatility: stdev(closes),
	}

	support, resistance := klineSupportResistance(closes)
	summary.Support = &support
	summary.Resistance = &resistance
	return summary, nil
}

// klineTrend 比较最近10个（或不足时全部）收盘价的首尾
func klineTrend(closes []float64) types.Trend {
	recent := closes
	if len(closes) >= klineTrendWindow {
		recent = closes[len(closes)-klineTrendWindow:]
	}
	if recent[len(recent)-1] >= recent[0] {
		return types.TrendBullish
	}
	return types.TrendBearish
}

// klineSupportResistance 对每个下标取其向前回看（最多6个点、起点截断）
// 子窗口的极值，汇总排序后取最极端的一个。阻力取所有回看最高价中的最大值，
// 支撑取所有回看最低价中的最小值。
func klineSupportResistance(closes []float64) (support, resistance float64) {
	highs := make([]float64, 0, len(closes))
	lows := make([]float64, 0, len(closes))

	for i := range closes {
		start := i - klineSRWindow + 1
		if start < 0 {
			start = 0
		}
		high := closes[start]
		low := closes[start]
		for _, c := range closes[start+1 : i+1] {
			if c > high {
				high = c
			}
			if c < low {
				low = c
			}
		}
		highs = append(highs, high)
		lows = append(lows, low)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(highs)))
	sort.Float64s(lows)

	return lows[0], highs[0]
}
