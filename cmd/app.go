package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"hsk-market-monitor/internal/analyzer"
	"hsk-market-monitor/internal/fetcher"
	"hsk-market-monitor/internal/notifier"
	"hsk-market-monitor/internal/scheduler"
	"hsk-market-monitor/internal/storage"
	"hsk-market-monitor/pkg/types"
)

// App 应用程序管理器
type App struct {
	config *types.Config
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewApp 创建应用程序实例
func NewApp(config *types.Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		config: config,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start 组装各模块并启动监控循环
func (app *App) Start() {
	tickerFetcher := fetcher.NewTickerFetcher(app.config.Market, app.config.Network)
	klineFetcher := fetcher.NewKlineFetcher(app.config.Market, app.config.Kline, app.config.Network)

	window := storage.NewPriceWindow(storage.DefaultCapacity)
	mirror := storage.NewRedisMirror(app.config.Redis)
	notifyService := notifier.NewLarkNotifier(app.config.Lark.WebhookURL)

	// 报告归档为可选能力，连接失败不阻塞启动
	var archive *storage.ReportStore
	if app.config.Database.MySQL.Host != "" {
		store, err := storage.NewReportStore(app.config.Database.MySQL)
		if err != nil {
			zap.L().Warn("⚠️ 报告归档不可用", zap.Error(err))
		} else {
			archive = store
		}
	}

	engine := analyzer.NewMonitorEngine(tickerFetcher, klineFetcher, window, mirror, notifyService, archive)
	taskScheduler := scheduler.NewScheduler(engine, app.config.Monitor.Interval)

	app.wg.Add(1)
	go func() {
		defer app.wg.Done()
		taskScheduler.Start(app.ctx)
	}()

	zap.L().Info("✅ HSK Market Monitor 已启动")
}

// Stop 停止应用程序
func (app *App) Stop() {
	zap.L().Info("🛑 收到停止信号，正在优雅关闭...")
	app.cancel()

	// 等待所有goroutine结束，最多等待30秒
	done := make(chan struct{})
	go func() {
		app.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		zap.L().Info("✅ HSK Market Monitor 已安全关闭")
	case <-time.After(30 * time.Second):
		zap.L().Warn("⚠️ 强制关闭超时")
	}
}

// WaitForShutdown 等待关闭信号
func (app *App) WaitForShutdown() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
}
