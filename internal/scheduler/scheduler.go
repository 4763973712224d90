package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"

	"hsk-market-monitor/internal/analyzer"
)

// Scheduler 固定间隔的顺序调度器。周期之间严格串行，
// 间隔等待是唯一的挂起点，取消信号在周期之间生效。
type Scheduler struct {
	engine   *analyzer.MonitorEngine
	interval time.Duration
}

func NewScheduler(engine *analyzer.MonitorEngine, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &Scheduler{
		engine:   engine,
		interval: interval,
	}
}

// Start 启动调度循环，立即执行首个周期，之后按固定间隔执行
func (s *Scheduler) Start(ctx context.Context) {
	zap.L().Info("🚀 调度器启动", zap.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("📴 调度器已停止")
			return
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context) {
	start := time.Now()
	zap.L().Info("--- 开始监控周期 ---", zap.String("time", start.Format("15:04:05")))
	s.engine.RunCycle(ctx)
	zap.L().Info("--- 监控周期完成 ---", zap.Duration("elapsed", time.Since(start)))
}
