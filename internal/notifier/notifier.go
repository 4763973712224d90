package notifier

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Interface 通知接口
type Interface interface {
	Send(message string) error
}

// ConsoleNotifier 控制台通知器
type ConsoleNotifier struct{}

func NewConsoleNotifier() *ConsoleNotifier {
	return &ConsoleNotifier{}
}

func (cn *ConsoleNotifier) Send(message string) error {
	fmt.Println()
	fmt.Println("═══════════ 市场报告 ═══════════")
	fmt.Println(message)
	fmt.Println("════════════════════════════════")
	fmt.Println()
	return nil
}

// LarkNotifier Lark机器人通知器
type LarkNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// LarkMessage Lark文本消息结构
type LarkMessage struct {
	MsgType string      `json:"msg_type"`
	Content LarkContent `json:"content"`
}

type LarkContent struct {
	Text string `json:"text"`
}

// LarkResponse Lark API响应
type LarkResponse struct {
	Code int    `json:"code"`
	Msg  string `json:"msg"`
}

// NewLarkNotifier 创建Lark通知器；未配置webhook时降级为控制台输出
func NewLarkNotifier(webhookURL string) Interface {
	if webhookURL == "" {
		zap.L().Info("🔧 未配置Lark Webhook URL，使用控制台输出模式")
		return NewConsoleNotifier()
	}

	zap.L().Info("✅ 已配置Lark通知服务")
	return &LarkNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send 推送文本消息到Lark webhook，失败不重试
func (ln *LarkNotifier) Send(message string) error {
	payload := &LarkMessage{
		MsgType: "text",
		Content: LarkContent{Text: message},
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %v", err)
	}

	resp, err := ln.httpClient.Post(ln.webhookURL, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("HTTP请求失败: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("Webhook响应错误: %d", resp.StatusCode)
	}

	var larkResp LarkResponse
	if err := json.NewDecoder(resp.Body).Decode(&larkResp); err != nil {
		return fmt.Errorf("解析响应失败: %v", err)
	}
	if larkResp.Code != 0 {
		return fmt.Errorf("Lark API错误 [%d]: %s", larkResp.Code, larkResp.Msg)
	}

	return nil
}
