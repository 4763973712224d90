package storage

import (
	"sync"
	"time"

	"hsk-market-monitor/pkg/types"
)

// DefaultCapacity 滑动窗口默认容量（约20个采样周期）
const DefaultCapacity = 20

// PriceWindow 固定容量的价格滑动窗口，满时淘汰最旧数据点。
// 数据点按写入顺序即时间顺序保存。
type PriceWindow struct {
	points   []types.PricePoint
	capacity int
	mutex    sync.RWMutex
}

func NewPriceWindow(capacity int) *PriceWindow {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &PriceWindow{
		points:   make([]types.PricePoint, 0, capacity),
		capacity: capacity,
	}
}

// Append 无条件写入一个新数据点，超出容量时移除最旧的一个
func (pw *PriceWindow) Append(price float64, timestamp time.Time) {
	pw.mutex.Lock()
	defer pw.mutex.Unlock()

	if len(pw.points) == pw.capacity {
		copy(pw.points, pw.points[1:])
		pw.points = pw.points[:len(pw.points)-1]
	}
	pw.points = append(pw.points, types.PricePoint{Price: price, Timestamp: timestamp})
}

// Snapshot 返回当前窗口内容的副本，按时间顺序排列
func (pw *PriceWindow) Snapshot() []types.PricePoint {
	pw.mutex.RLock()
	defer pw.mutex.RUnlock()

	out := make([]types.PricePoint, len(pw.points))
	copy(out, pw.points)
	return out
}

// Prices 返回窗口内的价格序列，按时间顺序排列
func (pw *PriceWindow) Prices() []float64 {
	pw.mutex.RLock()
	defer pw.mutex.RUnlock()

	out := make([]float64, len(pw.points))
	for i, p := range pw.points {
		out[i] = p.Price
	}
	return out
}

// Length 当前窗口内数据点数量
func (pw *PriceWindow) Length() int {
	pw.mutex.RLock()
	defer pw.mutex.RUnlock()
	return len(pw.points)
}

// Capacity 窗口容量
func (pw *PriceWindow) Capacity() int {
	return pw.capacity
}
