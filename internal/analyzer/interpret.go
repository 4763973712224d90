package analyzer

import (
	"fmt"
	"strings"

	"hsk-market-monitor/pkg/types"
)

const (
	rsiOverbought = 70.0
	rsiOversold   = 30.0
	// 支撑/阻力的接近判定：0.1%以内
	supportProximity    = 1.001
	resistanceProximity = 0.999
	strongMomentum      = 5.0
	weakMomentum        = 1.0
)

// fallbackStatement 没有任何指标可用时的兜底解读
const fallbackStatement = "技术指标不足，建议观望"

// Interpret 把指标快照与K线摘要组合成定性解读语句列表。
// 各规则独立求值、按固定顺序拼接；前置指标缺席的规则直接跳过。
func Interpret(currentPrice float64, snap types.IndicatorSnapshot, ksum *types.KlineSummary) []string {
	var statements []string

	// 1. 短期趋势
	switch snap.Trend {
	case types.TrendBullish, types.TrendBullishReversal:
		statements = append(statements, fmt.Sprintf("短期趋势: %s，价格可能继续上涨", snap.Trend))
	case types.TrendBearish, types.TrendBearishReversal:
		statements = append(statements, fmt.Sprintf("短期趋势: %s，价格可能继续下跌", snap.Trend))
	}

	// 2. 价格相对SMA位置，SMA截断到6位小数（截断而非四舍五入）
	if snap.SMA != nil {
		sma := truncate6(*snap.SMA)
		if currentPrice > *snap.SMA {
			statements = append(statements, fmt.Sprintf("价格高于%.6f SMA，看涨信号", sma))
		} else {
			statements = append(statements, fmt.Sprintf("价格低于%.6f SMA，看跌信号", sma))
		}
	}

	// 3. RSI超买超卖
	if snap.RSI != nil {
		switch {
		case *snap.RSI > rsiOverbought:
			statements = append(statements, fmt.Sprintf("RSI超买(%.2f)，可能出现回调", *snap.RSI))
		case *snap.RSI < rsiOversold:
			statements = append(statements, fmt.Sprintf("RSI超卖(%.2f)，可能出现反弹", *snap.RSI))
		default:
			statements = append(statements, fmt.Sprintf("RSI中性(%.2f)，趋势稳定", *snap.RSI))
		}
	}

	// 4. 支撑与阻力
	if snap.Support != nil && snap.Resistance != nil {
		switch {
		case currentPrice <= *snap.Support*supportProximity:
			statements = append(statements, fmt.Sprintf("接近支撑位%.6f，可能获得支撑", *snap.Support))
		case currentPrice >= *snap.Resistance*resistanceProximity:
			statements = append(statements, fmt.Sprintf("接近阻力位%.6f，可能遇到阻力", *snap.Resistance))
		default:
			statements = append(statements, fmt.Sprintf("价格在支撑%.6f与阻力%.6f之间运行", *snap.Support, *snap.Resistance))
		}
	}

	// 5. 动量：绝对值在[1,5]区间不产生语句
	if snap.Momentum != nil {
		m := *snap.Momentum
		abs := m
		if abs < 0 {
			abs = -abs
		}
		if abs > strongMomentum {
			direction := "上行"
			if m <= 0 {
				direction = "下行"
			}
			statements = append(statements, fmt.Sprintf("动量强劲(%.2f%%)，%s趋势明显", m, direction))
		} else if abs < weakMomentum {
			statements = append(statements, fmt.Sprintf("动量较弱(%.2f%%)，可能盘整", m))
		}
	}

	// 6. K线趋势
	if ksum != nil {
		statements = append(statements, fmt.Sprintf("K线趋势: %s (6小时周期)", ksum.Trend))
	}

	// 7. 兜底
	if len(statements) == 0 {
		statements = append(statements, fallbackStatement)
	}

	return statements
}

// JoinStatements 用全角分号拼接解读语句
func JoinStatements(statements []string) string {
	return strings.Join(statements, "；")
}

// truncate6 截断到6位小数，不做任何舍入
func truncate6(v float64) float64 {
	return float64(int64(v*1000000)) / 1000000
}
