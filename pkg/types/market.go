package types

import (
	"strings"
	"time"
)

// PricePoint 价格数据点
type PricePoint struct {
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// TickerData 单个交易对的行情快照
type TickerData struct {
	Symbol           string  `json:"symbol"`
	Price            float64 `json:"price"`
	ChangePercentage float64 `json:"change_percentage"` // 24小时涨跌幅
	LowestAsk        float64 `json:"lowest_ask"`
	HighestBid       float64 `json:"highest_bid"`
	High24h          float64 `json:"high_24h"`
	Low24h           float64 `json:"low_24h"`
	BaseVolume       float64 `json:"base_volume"`
	QuoteVolume      float64 `json:"quote_volume"`
}

// Trend 短期趋势分类，取值即展示文本
type Trend string

const (
	TrendInsufficient    Trend = "数据不足"
	TrendNeutral         Trend = "中性"
	TrendBullish         Trend = "看涨"
	TrendBullishReversal Trend = "看涨反转"
	TrendBearish         Trend = "看跌"
	TrendBearishReversal Trend = "看跌反转"
)

// IndicatorSnapshot 滑动窗口在某一时刻推出的全部指标。
// 指针字段为nil表示历史数据不足，对应指标缺席。
type IndicatorSnapshot struct {
	SMA        *float64 `json:"sma"`
	EMA        *float64 `json:"ema"`
	RSI        *float64 `json:"rsi"`
	Trend      Trend    `json:"trend"`
	Support    *float64 `json:"support"`
	Resistance *float64 `json:"resistance"`
	Volatility *float64 `json:"volatility"`
	Momentum   *float64 `json:"momentum"` // 百分比
}

// KlineSummary 一批历史K线收盘价的独立分析结果
type KlineSummary struct {
	Trend      Trend    `json:"trend"` // 看涨 / 看跌
	Volatility float64  `json:"volatility"`
	Support    *float64 `json:"support"`
	Resistance *float64 `json:"resistance"`
}

// DisplaySymbol 将 HSK_USDT 形式的交易对转为 HSK/USDT 展示格式
func DisplaySymbol(symbol string) string {
	return strings.ReplaceAll(symbol, "_", "/")
}
