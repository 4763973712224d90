package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"hsk-market-monitor/pkg/types"
)

// mirrorTTL 镜像数据保留时长，覆盖整个窗口周期后过期
const mirrorTTL = 6 * time.Hour

// RedisMirror 把写入窗口的价格点异步备份到Redis。
// 只写不读：进程重启后窗口从零开始，镜像仅供外部查看。
type RedisMirror struct {
	client  *redis.Client
	enabled bool
}

// NewRedisMirror 尝试连接Redis，连接失败时降级为纯内存模式
func NewRedisMirror(cfg types.RedisConfig) *RedisMirror {
	if cfg.URL == "" {
		zap.L().Info("🔧 未配置Redis，使用纯内存模式")
		return &RedisMirror{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.URL,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		zap.L().Warn("⚠️ Redis连接失败，使用纯内存模式", zap.Error(err))
		return &RedisMirror{}
	}

	zap.L().Info("✅ Redis连接成功")
	return &RedisMirror{client: client, enabled: true}
}

// Enabled 镜像是否可用
func (rm *RedisMirror) Enabled() bool {
	return rm != nil && rm.enabled
}

// Backup 异步备份一个价格点，失败只记日志不影响主流程
func (rm *RedisMirror) Backup(symbol string, point types.PricePoint) {
	if !rm.Enabled() {
		return
	}
	go rm.backup(symbol, point)
}

func (rm *RedisMirror) backup(symbol string, point types.PricePoint) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf("gate:price:%s", symbol)
	value, err := json.Marshal(point)
	if err != nil {
		zap.L().Warn("序列化价格数据失败", zap.Error(err))
		return
	}

	// 以时间戳为分数写入Sorted Set
	err = rm.client.ZAdd(ctx, key, &redis.Z{
		Score:  float64(point.Timestamp.Unix()),
		Member: value,
	}).Err()
	if err != nil {
		zap.L().Warn("Redis备份失败", zap.String("symbol", symbol), zap.Error(err))
		return
	}

	rm.client.Expire(ctx, key, mirrorTTL)

	// 清理过期区间
	cutoff := float64(time.Now().Add(-mirrorTTL).Unix())
	rm.client.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%.0f", cutoff))
}
