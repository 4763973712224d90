package main

import (
	"log"

	"go.uber.org/zap"

	"hsk-market-monitor/pkg/config"
	"hsk-market-monitor/pkg/logger"
)

func main() {
	// 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("加载配置失败:", err)
	}

	// 初始化日志
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatal("初始化日志失败:", err)
	}
	defer logger.Sync()

	zap.L().Info("HSK Market Monitor 启动中...",
		zap.String("symbol", cfg.Market.Symbol),
		zap.Duration("interval", cfg.Monitor.Interval))

	app := NewApp(cfg)
	app.Start()

	// 等待中断信号
	app.WaitForShutdown()
	app.Stop()
}
