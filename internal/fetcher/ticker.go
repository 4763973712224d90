// Package fetcher 封装Gate.io现货行情的REST访问。
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

// TickerFetcher 行情快照获取器
type TickerFetcher struct {
	baseURL    string
	symbol     string
	httpClient *http.Client
}

// gateTicker Gate.io ticker响应条目，数值均为字符串
type gateTicker struct {
	CurrencyPair     string `json:"currency_pair"`
	Last             string `json:"last"`
	ChangePercentage string `json:"change_percentage"`
	LowestAsk        string `json:"lowest_ask"`
	HighestBid       string `json:"highest_bid"`
	High24h          string `json:"high_24h"`
	Low24h           string `json:"low_24h"`
	BaseVolume       string `json:"base_volume"`
	QuoteVolume      string `json:"quote_volume"`
}

// NewTickerFetcher 创建行情获取器，支持HTTP代理
func NewTickerFetcher(market types.MarketConfig, network types.NetworkConfig) *TickerFetcher {
	timeout := network.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	client := &http.Client{Timeout: timeout}
	if network.Proxy != "" {
		proxyURL, err := url.Parse(network.Proxy)
		if err == nil {
			client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
			zap.L().Info("✅ 已配置HTTP代理", zap.String("proxy", network.Proxy))
		} else {
			zap.L().Warn("⚠️ 代理地址格式错误", zap.Error(err))
		}
	}

	return &TickerFetcher{
		baseURL:    market.BaseURL,
		symbol:     market.Symbol,
		httpClient: client,
	}
}

// Fetch 获取当前行情快照。响应不是非空列表或字段无法解析时返回错误。
func (f *TickerFetcher) Fetch(ctx context.Context) (*types.TickerData, error) {
	// 时间戳参数用于跳过中间缓存
	requestURL := fmt.Sprintf("%s/spot/tickers?currency_pair=%s&_=%d",
		f.baseURL, f.symbol, time.Now().UnixMilli())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建HTTP请求失败: %v", err)
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; GateIO-Monitor/1.0)")
	req.Header.Set("Accept", "*/*")

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

	var tickers []gateTicker
	if err := json.Unmarshal(body, &tickers); err != nil {
		return nil, fmt.Errorf("解析API响应失败: %v", err)
	}
	if len(tickers) == 0 {
		return nil, fmt.Errorf("API未返回%s行情数据", f.symbol)
	}

	return f.parseTicker(tickers[0])
}

func (f *TickerFetcher) parseTicker(t gateTicker) (*types.TickerData, error) {
	data := &types.TickerData{Symbol: f.symbol}

	var err error
	parse := func(name, raw string, dst *float64) {
		if err != nil {
			return
		}
		var v float64
		if v, err = strconv.ParseFloat(raw, 64); err != nil {
			err = fmt.Errorf("解析%s字段失败: %v", name, err)
			return
		}
		*dst = v
	}

	parse("last", t.Last, &data.Price)
	parse("change_percentage", t.ChangePercentage, &data.ChangePercentage)
	parse("lowest_ask", t.LowestAsk, &data.LowestAsk)
	parse("highest_bid", t.HighestBid, &data.HighestBid)
	parse("high_24h", t.High24h, &data.High24h)
	parse("low_24h", t.Low24h, &data.Low24h)
	parse("base_volume", t.BaseVolume, &data.BaseVolume)
	parse("quote_volume", t.QuoteVolume, &data.QuoteVolume)
	if err != nil {
		return nil, err
	}

	return data, nil
}
