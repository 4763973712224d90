package types

import "time"

// Config 主配置结构
type Config struct {
	LogLevel string         `mapstructure:"log_level"` // 兼容保留
	Log      LogConfig      `mapstructure:"log"`
	Market   MarketConfig   `mapstructure:"market"`
	Kline    KlineConfig    `mapstructure:"kline"`
	Monitor  MonitorConfig  `mapstructure:"monitor"`
	Lark     LarkConfig     `mapstructure:"lark"`
	Network  NetworkConfig  `mapstructure:"network"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`       // 日志级别
	FilePath   string `mapstructure:"file_path"`   // 日志输出路径名
	MaxSize    int    `mapstructure:"max_size"`    // 日志文件大小 单位：MB，超限后会自动切割
	MaxAge     int    `mapstructure:"max_age"`     // 日志文件存放时间 单位：天
	MaxBackups int    `mapstructure:"max_backups"` // 日志文件备份数量
	Compress   bool   `mapstructure:"compress"`    // 日志文件压缩
}

// MarketConfig 行情接口配置
type MarketConfig struct {
	BaseURL string `mapstructure:"base_url"` // Gate.io API基础地址
	Symbol  string `mapstructure:"symbol"`   // 交易对，如 HSK_USDT
}

// KlineConfig K线获取配置
type KlineConfig struct {
	Interval string `mapstructure:"interval"` // K线周期，如 3m
	Limit    int    `mapstructure:"limit"`    // 获取数量，默认120（覆盖6小时）
}

// MonitorConfig 监控循环配置
type MonitorConfig struct {
	Interval time.Duration `mapstructure:"interval"` // 轮询间隔
}

// LarkConfig Lark机器人配置
type LarkConfig struct {
	WebhookURL string `mapstructure:"webhook_url"`
}

// NetworkConfig 网络配置
type NetworkConfig struct {
	Proxy   string        `mapstructure:"proxy"`   // HTTP代理地址，如 http://127.0.0.1:7890
	Timeout time.Duration `mapstructure:"timeout"` // 网络超时时间
}

// RedisConfig Redis配置
type RedisConfig struct {
	URL      string `mapstructure:"url"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	MySQL MySQLConfig `mapstructure:"mysql"`
}

// MySQLConfig MySQL配置
type MySQLConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}
