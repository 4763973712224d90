// Package indicators 提供基于滑动窗口价格序列的技术指标计算。
// 所有函数都是纯函数：输入按时间顺序排列的价格切片，历史不足时返回ok=false。
package indicators

import (
	"math"

	"hsk-market-monitor/pkg/types"
)

const (
	// DefaultEMAPeriod EMA默认周期
	DefaultEMAPeriod = 12
	// DefaultRSIPeriod RSI默认周期
	DefaultRSIPeriod = 14
	// DefaultSRWindow 支撑/阻力默认观察窗口
	DefaultSRWindow = 8
	// DefaultShortPeriod 趋势/波动率/动量使用的短周期
	DefaultShortPeriod = 5
)

// SMA 简单移动平均。period<=0时取min(cap, len)作为周期。
func SMA(prices []float64, period, capacity int) (float64, bool) {
	if period <= 0 {
		period = capacity
		if len(prices) < period {
			period = len(prices)
		}
	}
	if period == 0 || len(prices) < period {
		return 0, false
	}

	sum := 0.0
	for _, p := range prices[len(prices)-period:] {
		sum += p
	}
	return sum / float64(period), true
}

// EMA 指数移动平均。以切片内最旧价格为种子，向后迭代。
func EMA(prices []float64, period int) (float64, bool) {
	if len(prices) < period {
		return 0, false
	}

	recent := prices[len(prices)-period:]
	multiplier := 2.0 / float64(period+1)
	ema := recent[0]
	for _, p := range recent[1:] {
		ema = p*multiplier + ema*(1-multiplier)
	}
	return ema, true
}

// RSI 相对强弱指数。遍历最近period个下标、跳过下标0，
// 凑不满period个涨跌样本时视为历史不足。
func RSI(prices []float64, period int) (float64, bool) {
	if len(prices) < period+1 {
		return 0, false
	}

	gains := make([]float64, 0, period)
	losses := make([]float64, 0, period)
	for i := len(prices) - period; i < len(prices); i++ {
		if i == 0 {
			continue
		}
		delta := prices[i] - prices[i-1]
		if delta > 0 {
			gains = append(gains, delta)
			losses = append(losses, 0)
		} else {
			losses = append(losses, -delta)
			gains = append(gains, 0)
		}
	}

	if len(gains) < period || len(losses) < period {
		return 0, false
	}

	var avgGain, avgLoss float64
	for _, g := range gains[len(gains)-period:] {
		avgGain += g
	}
	for _, l := range losses[len(losses)-period:] {
		avgLoss += l
	}
	avgGain /= float64(period)
	avgLoss /= float64(period)

	if avgLoss == 0 {
		return 100, true
	}
	rs := avgGain / avgLoss
	return 100 - 100/(1+rs), true
}

// TrendOf 基于最近5个价格的趋势分类
func TrendOf(prices []float64) types.Trend {
	if len(prices) < DefaultShortPeriod {
		return types.TrendInsufficient
	}

	recent := prices[len(prices)-DefaultShortPeriod:]
	allSame := true
	for _, p := range recent[1:] {
		if p != recent[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return types.TrendNeutral
	}

	newest := recent[len(recent)-1]
	prev := recent[len(recent)-2]
	if newest > recent[0] {
		if newest > prev {
			return types.TrendBullish
		}
		return types.TrendBullishReversal
	}
	if newest < prev {
		return types.TrendBearish
	}
	return types.TrendBearishReversal
}

// SupportResistance 最近windowSize个价格的最低/最高价。不足5个观测时两者均缺席。
func SupportResistance(prices []float64, windowSize int) (support, resistance float64, ok bool) {
	if len(prices) < DefaultShortPeriod {
		return 0, 0, false
	}

	recent := prices
	if len(prices) >= windowSize {
		recent = prices[len(prices)-windowSize:]
	}

	support = recent[0]
	resistance = recent[0]
	for _, p := range recent[1:] {
		if p < support {
			support = p
		}
		if p > resistance {
			resistance = p
		}
	}
	return support, resistance, true
}

// Volatility 最近period个价格的样本标准差。价格全部相同返回0。
func Volatility(prices []float64, period int) (float64, bool) {
	if len(prices) < period {
		return 0, false
	}

	recent := prices[len(prices)-period:]
	allSame := true
	for _, p := range recent[1:] {
		if p != recent[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return 0, true
	}
	return stdev(recent), true
}

// Momentum 动量指标：(最新价 - period个周期前价格) / 前价格 × 100
func Momentum(prices []float64, period int) (float64, bool) {
	if len(prices) < period {
		return 0, false
	}

	old := prices[len(prices)-period]
	current := prices[len(prices)-1]
	return ((current - old) / old) * 100, true
}

// Analyze 对窗口快照一次性推出全部指标
func Analyze(prices []float64, capacity int) types.IndicatorSnapshot {
	snap := types.IndicatorSnapshot{
		Trend: TrendOf(prices),
	}

	if v, ok := SMA(prices, 0, capacity); ok {
		snap.SMA = &v
	}
	if v, ok := EMA(prices, DefaultEMAPeriod); ok {
		snap.EMA = &v
	}
	if v, ok := RSI(prices, DefaultRSIPeriod); ok {
		snap.RSI = &v
	}
	if sup, res, ok := SupportResistance(prices, DefaultSRWindow); ok {
		snap.Support = &sup
		snap.Resistance = &res
	}
	if v, ok := Volatility(prices, DefaultShortPeriod); ok {
		snap.Volatility = &v
	}
	if v, ok := Momentum(prices, DefaultShortPeriod); ok {
		snap.Momentum = &v
	}
	return snap
}

// stdev 样本标准差（n-1分母）
func stdev(values []float64) float64 {
	n := float64(len(values))
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= n

	var sumSq float64
	for _, v := range values {
		d := v - mean
		sumSq += d * d
	}
	return math.Sqrt(sumSq / (n - 1))
}
