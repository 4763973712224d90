package analyzer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hsk-market-monitor/internal/fetcher"
	"hsk-market-monitor/internal/indicators"
	"hsk-market-monitor/internal/notifier"
	"hsk-market-monitor/internal/storage"
	"hsk-market-monitor/pkg/types"
)

// MonitorEngine 执行单个监控周期：取行情 → 更新窗口 → 计算指标 → 生成并发送报告
type MonitorEngine struct {
	tickers  *fetcher.TickerFetcher
	klines   *fetcher.KlineFetcher
	window   *storage.PriceWindow
	mirror   *storage.RedisMirror
	notifier notifier.Interface
	archive  *storage.ReportStore // 可选，nil时不归档
}

func NewMonitorEngine(
	tickers *fetcher.TickerFetcher,
	klines *fetcher.KlineFetcher,
	window *storage.PriceWindow,
	mirror *storage.RedisMirror,
	notifyService notifier.Interface,
	archive *storage.ReportStore,
) *MonitorEngine {
	return &MonitorEngine{
		tickers:  tickers,
		klines:   klines,
		window:   window,
		mirror:   mirror,
		notifier: notifyService,
		archive:  archive,
	}
}

// RunCycle 执行一个完整周期。行情获取失败时跳过本周期且不修改窗口；
// K线获取失败只降级报告内容，不中断周期。
func (e *MonitorEngine) RunCycle(ctx context.Context) {
	ticker, err := e.tickers.Fetch(ctx)
	if err != nil {
		zap.L().Error("❌ 获取行情数据失败，跳过本周期", zap.Error(err))
		return
	}

	zap.L().Info("✅ 获取到行情数据",
		zap.String("symbol", ticker.Symbol),
		zap.Float64("price", ticker.Price),
		zap.Float64("change_24h", ticker.ChangePercentage),
		zap.Float64("high_24h", ticker.High24h),
		zap.Float64("low_24h", ticker.Low24h),
		zap.Float64("base_volume", ticker.BaseVolume))

	point := types.PricePoint{Price: ticker.Price, Timestamp: time.Now()}
	e.window.Append(point.Price, point.Timestamp)
	e.mirror.Backup(ticker.Symbol, point)

	snap := indicators.Analyze(e.window.Prices(), e.window.Capacity())

	ksum, err := e.summarizeKlines(ctx)
	if err != nil {
		zap.L().Error("❌ K线分析不可用", zap.Error(err))
	}

	message := BuildReport(ticker, snap, ksum)

	if err := e.notifier.Send(message); err != nil {
		zap.L().Error("❌ 发送报告失败", zap.Error(err))
	} else {
		zap.L().Info("✅ 报告已发送", zap.String("message", message))
	}

	if e.archive != nil {
		record := &storage.MarketReport{
			Symbol:        ticker.Symbol,
			Price:         ticker.Price,
			ChangePercent: ticker.ChangePercentage,
			Trend:         string(snap.Trend),
			Message:       message,
		}
		if err := e.archive.Save(record); err != nil {
			zap.L().Warn("⚠️ 报告归档失败", zap.Error(err))
		}
	}
}

// summarizeKlines 独立获取并分析一批历史K线
func (e *MonitorEngine) summarizeKlines(ctx context.Context) (*types.KlineSummary, error) {
	closes, err := e.klines.FetchCloses(ctx)
	if err != nil {
		return nil, err
	}
	return indicators.SummarizeKlines(closes)
}
