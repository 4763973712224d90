package storage

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hsk-market-monitor/pkg/types"
)

// MarketReport 已发送报告的归档模型
type MarketReport struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Symbol        string    `gorm:"type:varchar(20);not null;index:idx_symbol_time" json:"symbol"`
	Price         float64   `gorm:"type:decimal(20,8);not null" json:"price"`
	ChangePercent float64   `gorm:"type:decimal(10,4);not null" json:"change_percent"`
	Trend         string    `gorm:"type:varchar(16);not null" json:"trend"`
	Message       string    `gorm:"type:text;not null" json:"message"`
	CreatedAt     time.Time `gorm:"index:idx_symbol_time" json:"created_at"`
}

// ReportStore 报告归档库
type ReportStore struct {
	db *gorm.DB
}

// NewReportStore 连接MySQL并迁移归档表
func NewReportStore(config types.MySQLConfig) (*ReportStore, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(mysql.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("连接MySQL失败: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("获取数据库实例失败: %v", err)
	}
	sqlDB.SetMaxIdleConns(config.MaxIdleConns)
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&MarketReport{}); err != nil {
		return nil, fmt.Errorf("数据库迁移失败: %v", err)
	}

	zap.L().Info("✅ MySQL数据库连接成功",
		zap.String("host", config.Host),
		zap.Int("port", config.Port),
		zap.String("database", config.Database))

	return &ReportStore{db: db}, nil
}

// Save 归档一条已发送的报告
func (rs *ReportStore) Save(report *MarketReport) error {
	if err := rs.db.Create(report).Error; err != nil {
		return fmt.Errorf("归档报告失败: %v", err)
	}
	return nil
}
