package analyzer

import (
	"fmt"
	"strings"

	"hsk-market-monitor/pkg/types"
)

// unknownValue K线摘要不可用时的占位文本
const unknownValue = "未知"

// BuildReport 生成三行报告：系统通知、技术分析、市场解读
func BuildReport(ticker *types.TickerData, snap types.IndicatorSnapshot, ksum *types.KlineSummary) string {
	priceLine := fmt.Sprintf("系统通知: 价格更新 %s 当前为 %.6f USDT (24h: %+.2f%%)",
		types.DisplaySymbol(ticker.Symbol), ticker.Price, ticker.ChangePercentage)

	techLine := buildTechLine(snap, ksum)

	interpretLine := "市场解读: " + JoinStatements(Interpret(ticker.Price, snap, ksum))

	return priceLine + "\n" + techLine + "\n" + interpretLine
}

// buildTechLine 技术分析行：缺席指标直接省略，K线趋势/波动率缺席时显示未知
func buildTechLine(snap types.IndicatorSnapshot, ksum *types.KlineSummary) string {
	parts := []string{fmt.Sprintf("技术分析: 趋势=%s", snap.Trend)}

	if snap.SMA != nil {
		parts = append(parts, fmt.Sprintf("SMA=%.6f", *snap.SMA))
	}
	if snap.EMA != nil {
		parts = append(parts, fmt.Sprintf("EMA=%.6f", *snap.EMA))
	}
	if snap.RSI != nil {
		parts = append(parts, fmt.Sprintf("RSI=%.2f", *snap.RSI))
	}
	if snap.Support != nil {
		parts = append(parts, fmt.Sprintf("支撑=%.6f", *snap.Support))
	}
	if snap.Resistance != nil {
		parts = append(parts, fmt.Sprintf("阻力=%.6f", *snap.Resistance))
	}
	if snap.Volatility != nil {
		parts = append(parts, fmt.Sprintf("波动率=%.6f", *snap.Volatility))
	}
	if snap.Momentum != nil {
		parts = append(parts, fmt.Sprintf("动量=%.2f%%", *snap.Momentum))
	}

	if ksum != nil {
		parts = append(parts, fmt.Sprintf("K线趋势=%s", ksum.Trend))
		parts = append(parts, fmt.Sprintf("K线波动率=%.6f", ksum.Volatility))
		if ksum.Support != nil {
			parts = append(parts, fmt.Sprintf("K线支撑=%.6f", *ksum.Support))
		}
		if ksum.Resistance != nil {
			parts = append(parts, fmt.Sprintf("K线阻力=%.6f", *ksum.Resistance))
		}
	} else {
		parts = append(parts, "K线趋势="+unknownValue, "K线波动率="+unknownValue)
	}

	return strings.Join(parts, ", ")
}
