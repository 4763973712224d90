package indicators

import (
	"errors"
	"math"
	"testing"

	"hsk-market-monitor/pkg/types"
)

func TestSummarizeKlines_Insufficient(t *testing.T) {
	for _, closes := range [][]float64{nil, {}, {42}} {
		if _, err := SummarizeKlines(closes); !errors.Is(err, ErrInsufficientKlines) {
			t.Errorf("closes %v: expected ErrInsufficientKlines, got %v", closes, err)
		}
	}
}

func TestSummarizeKlines_RisingBatch(t *testing.T) {
	closes := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	summary, err := SummarizeKlines(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.Trend != types.TrendBullish {
		t.Errorf("expected bullish trend, got %s", summary.Trend)
	}

	// 样本标准差覆盖整个批次: stdev(1..10) = sqrt(82.5/9)
	want := math.Sqrt(82.5 / 9)
	if math.Abs(summary.Volatility-want) > 1e-9 {
		t.Errorf("expected volatility=%v, got %v", want, summary.Volatility)
	}

	if summary.Support == nil || summary.Resistance == nil {
		t.Fatal("expected support and resistance present")
	}
	if *summary.Support != 1 {
		t.Errorf("expected support=1, got %v", *summary.Support)
	}
	if *summary.Resistance != 10 {
		t.Errorf("expected resistance=10, got %v", *summary.Resistance)
	}
}

func TestSummarizeKlines_TrendUsesLastTenOnly(t *testing.T) {
	// 前面的高价不影响趋势，只比较最近10个点的首尾
	closes := []float64{100, 100, 100, 9, 8, 7, 6, 5, 4, 3, 2, 1, 0.5, 20}
	summary, err := SummarizeKlines(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 最近10个以8开头、20结尾，末值 >= 首值 → 看涨
	if summary.Trend != types.TrendBullish {
		t.Errorf("expected bullish trend from last-10 slice, got %s", summary.Trend)
	}
}

func TestSummarizeKlines_TrendTieIsBullish(t *testing.T) {
	summary, err := SummarizeKlines([]float64{5, 1, 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Trend != types.TrendBullish {
		t.Errorf("expected bullish on equal first/last, got %s", summary.Trend)
	}
}

func TestSummarizeKlines_FallingBatch(t *testing.T) {
	closes := []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}
	summary, err := SummarizeKlines(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Trend != types.TrendBearish {
		t.Errorf("expected bearish trend, got %s", summary.Trend)
	}
	if *summary.Support != 1 || *summary.Resistance != 10 {
		t.Errorf("expected support=1 resistance=10, got %v %v", *summary.Support, *summary.Resistance)
	}
}

func TestKlineSupportResistance_TrailingWindowExtrema(t *testing.T) {
	// 每个下标回看最多6个点；全批次回看极值中的最极端者
	closes := []float64{3, 1, 4, 1, 5, 9, 2, 6, 5, 3, 5}
	support, resistance := klineSupportResistance(closes)
	if support != 1 {
		t.Errorf("expected support=1, got %v", support)
	}
	if resistance != 9 {
		t.Errorf("expected resistance=9, got %v", resistance)
	}
}

func TestKlineSupportResistance_TwoPoints(t *testing.T) {
	support, resistance := klineSupportResistance([]float64{7, 3})
	if support != 3 || resistance != 7 {
		t.Errorf("expected support=3 resistance=7, got %v %v", support, resistance)
	}
}
