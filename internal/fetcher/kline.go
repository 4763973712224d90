package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"hsk-market-monitor/pkg/types"
)

// klineTimeout K线请求的独立超时，短于行情请求
const klineTimeout = 10 * time.Second

// KlineFetcher 历史K线收盘价获取器
type KlineFetcher struct {
	baseURL    string
	symbol     string
	interval   string
	limit      int
	httpClient *http.Client
}

// NewKlineFetcher 创建K线获取器
func NewKlineFetcher(market types.MarketConfig, kline types.KlineConfig, network types.NetworkConfig) *KlineFetcher {
	client := &http.Client{Timeout: klineTimeout}
	if network.Proxy != "" {
		proxyURL, err := url.Parse(network.Proxy)
		if err == nil {
			client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}

	return &KlineFetcher{
		baseURL:    market.BaseURL,
		symbol:     market.Symbol,
		interval:   kline.Interval,
		limit:      kline.Limit,
		httpClient: client,
	}
}

// FetchCloses 获取一批K线的收盘价，按时间顺序返回。
// Gate.io蜡烛图条目格式: [timestamp, volume, close, high, low, open, ...]，
// 下标2为收盘价。
func (f *KlineFetcher) FetchCloses(ctx context.Context) ([]float64, error) {
	requestURL := fmt.Sprintf("%s/spot/candlesticks?currency_pair=%s&interval=%s&limit=%d",
		f.baseURL, f.symbol, f.interval, f.limit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; GateIO-Monitor/1.0)")
	req.Header.Set("Accept", "application/json")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP请求失败: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP响应错误: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应体失败: %v", err)
	}

	var candles [][]string
	if err := json.Unmarshal(body, &candles); err != nil {
		return nil, fmt.Errorf("解析K线响应失败: %v", err)
	}

	closes := make([]float64, 0, len(candles))
	for _, candle := range candles {
		if len(candle) < 3 {
			continue
		}
		close, err := strconv.ParseFloat(candle[2], 64)
		if err != nil {
			zap.L().Warn("解析收盘价失败", zap.String("raw", candle[2]), zap.Error(err))
			continue
		}
		closes = append(closes, close)
	}

	zap.L().Debug("✅ K线数据获取完成",
		zap.String("symbol", f.symbol),
		zap.Int("requested", f.limit),
		zap.Int("received", len(closes)))

	return closes, nil
}
