package analyzer

import (
	"strings"
	"testing"

	"hsk-market-monitor/pkg/types"
)

func fptr(v float64) *float64 { return &v }

func TestInterpret_FallbackWhenNothingAvailable(t *testing.T) {
	snap := types.IndicatorSnapshot{Trend: types.TrendInsufficient}
	statements := Interpret(100.0, snap, nil)

	if len(statements) != 1 {
		t.Fatalf("expected exactly one statement, got %d: %v", len(statements), statements)
	}
	if statements[0] != "技术指标不足，建议观望" {
		t.Errorf("expected fallback statement, got %q", statements[0])
	}
}

func TestInterpret_TrendStatements(t *testing.T) {
	tests := []struct {
		trend types.Trend
		want  string
	}{
		{types.TrendBullish, "短期趋势: 看涨，价格可能继续上涨"},
		{types.TrendBullishReversal, "短期趋势: 看涨反转，价格可能继续上涨"},
		{types.TrendBearish, "短期趋势: 看跌，价格可能继续下跌"},
		{types.TrendBearishReversal, "短期趋势: 看跌反转，价格可能继续下跌"},
	}

	for _, tt := range tests {
		snap := types.IndicatorSnapshot{Trend: tt.trend}
		statements := Interpret(100.0, snap, nil)
		if statements[0] != tt.want {
			t.Errorf("trend %s: expected %q, got %q", tt.trend, tt.want, statements[0])
		}
	}

	// 中性趋势不产生趋势语句
	snap := types.IndicatorSnapshot{Trend: types.TrendNeutral}
	statements := Interpret(100.0, snap, nil)
	if statements[0] != "技术指标不足，建议观望" {
		t.Errorf("neutral trend should produce no trend statement, got %v", statements)
	}
}

func TestInterpret_PriceVsSMA(t *testing.T) {
	snap := types.IndicatorSnapshot{Trend: types.TrendInsufficient, SMA: fptr(1.23456789)}

	statements := Interpret(2.0, snap, nil)
	if statements[0] != "价格高于1.234567 SMA，看涨信号" {
		t.Errorf("expected truncated bullish SMA statement, got %q", statements[0])
	}

	statements = Interpret(1.0, snap, nil)
	if statements[0] != "价格低于1.234567 SMA，看跌信号" {
		t.Errorf("expected truncated bearish SMA statement, got %q", statements[0])
	}

	// 价格恰好等于SMA归入看跌一侧
	snap.SMA = fptr(2.0)
	statements = Interpret(2.0, snap, nil)
	if !strings.Contains(statements[0], "看跌信号") {
		t.Errorf("price equal to SMA should read bearish, got %q", statements[0])
	}
}

func TestInterpret_SMATruncatesNotRounds(t *testing.T) {
	// 0.9999999 截断后是 0.999999，四舍五入会得到 1.000000
	snap := types.IndicatorSnapshot{Trend: types.TrendInsufficient, SMA: fptr(0.9999999)}
	statements := Interpret(2.0, snap, nil)
	if statements[0] != "价格高于0.999999 SMA，看涨信号" {
		t.Errorf("expected truncation to 0.999999, got %q", statements[0])
	}
}

func TestInterpret_RSIThresholds(t *testing.T) {
	tests := []struct {
		rsi  float64
		want string
	}{
		{75.0, "RSI超买(75.00)，可能出现回调"},
		{70.0, "RSI中性(70.00)，趋势稳定"},
		{50.0, "RSI中性(50.00)，趋势稳定"},
		{30.0, "RSI中性(30.00)，趋势稳定"},
		{29.5, "RSI超卖(29.50)，可能出现反弹"},
	}

	for _, tt := range tests {
		snap := types.IndicatorSnapshot{Trend: types.TrendInsufficient, RSI: fptr(tt.rsi)}
		statements := Interpret(100.0, snap, nil)
		if statements[0] != tt.want {
			t.Errorf("RSI %.2f: expected %q, got %q", tt.rsi, tt.want, statements[0])
		}
	}
}

func TestInterpret_SupportResistance(t *testing.T) {
	snap := types.IndicatorSnapshot{
		Trend:      types.TrendInsufficient,
		Support:    fptr(100.0),
		Resistance: fptr(110.0),
	}

	// 支撑0.1%以内
	statements := Interpret(100.05, snap, nil)
	if statements[0] != "接近支撑位100.000000，可能获得支撑" {
		t.Errorf("expected near-support statement, got %q", statements[0])
	}

	// 阻力0.1%以内
	statements = Interpret(109.95, snap, nil)
	if statements[0] != "接近阻力位110.000000，可能遇到阻力" {
		t.Errorf("expected near-resistance statement, got %q", statements[0])
	}

	// 区间内运行
	statements = Interpret(105.0, snap, nil)
	if statements[0] != "价格在支撑100.000000与阻力110.000000之间运行" {
		t.Errorf("expected in-range statement, got %q", statements[0])
	}

	// 只有一侧存在时不产生语句
	snap.Resistance = nil
	statements = Interpret(105.0, snap, nil)
	if statements[0] != "技术指标不足，建议观望" {
		t.Errorf("support alone should produce nothing, got %v", statements)
	}
}

func TestInterpret_SupportWinsOverResistance(t *testing.T) {
	// 支撑与阻力几乎重合时两个接近条件同时成立，支撑优先
	snap := types.IndicatorSnapshot{
		Trend:      types.TrendInsufficient,
		Support:    fptr(100.0),
		Resistance: fptr(100.0),
	}
	statements := Interpret(100.0, snap, nil)
	if !strings.Contains(statements[0], "支撑") || strings.Contains(statements[0], "阻力位") {
		t.Errorf("expected support statement to win, got %q", statements[0])
	}
}

func TestInterpret_MomentumBands(t *testing.T) {
	tests := []struct {
		momentum float64
		want     string // 空串表示不产生语句
	}{
		{6.0, "动量强劲(6.00%)，上行趋势明显"},
		{-6.0, "动量强劲(-6.00%)，下行趋势明显"},
		{5.0, ""},
		{3.0, ""},
		{1.0, ""},
		{0.5, "动量较弱(0.50%)，可能盘整"},
		{-0.5, "动量较弱(-0.50%)，可能盘整"},
	}

	for _, tt := range tests {
		snap := types.IndicatorSnapshot{Trend: types.TrendInsufficient, Momentum: fptr(tt.momentum)}
		statements := Interpret(100.0, snap, nil)
		if tt.want == "" {
			if statements[0] != "技术指标不足，建议观望" {
				t.Errorf("momentum %.2f: expected no statement, got %v", tt.momentum, statements)
			}
			continue
		}
		if statements[0] != tt.want {
			t.Errorf("momentum %.2f: expected %q, got %q", tt.momentum, tt.want, statements[0])
		}
	}
}

func TestInterpret_KlineTrend(t *testing.T) {
	ksum := &types.KlineSummary{Trend: types.TrendBearish}
	snap := types.IndicatorSnapshot{Trend: types.TrendInsufficient}
	statements := Interpret(100.0, snap, ksum)
	if statements[0] != "K线趋势: 看跌 (6小时周期)" {
		t.Errorf("expected k-line trend statement, got %q", statements[0])
	}
}

func TestInterpret_FixedOrder(t *testing.T) {
	snap := types.IndicatorSnapshot{
		Trend:      types.TrendBullish,
		SMA:        fptr(99.0),
		RSI:        fptr(75.0),
		Support:    fptr(90.0),
		Resistance: fptr(120.0),
		Momentum:   fptr(8.0),
	}
	ksum := &types.KlineSummary{Trend: types.TrendBullish}

	statements := Interpret(100.0, snap, ksum)
	if len(statements) != 6 {
		t.Fatalf("expected 6 statements, got %d: %v", len(statements), statements)
	}

	order := []string{"短期趋势", "价格高于", "RSI超买", "价格在支撑", "动量强劲", "K线趋势"}
	for i, prefix := range order {
		if !strings.Contains(statements[i], prefix) {
			t.Errorf("statement %d: expected to contain %q, got %q", i, prefix, statements[i])
		}
	}
}

func TestJoinStatements(t *testing.T) {
	got := JoinStatements([]string{"a", "b", "c"})
	if got != "a；b；c" {
		t.Errorf("expected full-width semicolon join, got %q", got)
	}
}
