package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig 聚合运行时配置，尽量通过环境变量注入，避免硬编码。
type AppConfig struct {
	HTTPAddr string
	DBPath   string

	RedisAddr string
	RedisDB   int

	// Kafka 集群地址（逗号分隔）、审计事件 Topic、消费者组
	KafkaBrokers []string
	AuditTopic   string
	AuditGroupID string

	// Redis Stream outbox（请求路径原子入流，Relay 异步转 Kafka）
	AuditStream         string
	AuditStreamGroup    string
	AuditStreamConsumer string

	// 结账接口限流与库存缓存策略
	CheckoutRateLimit  int
	CheckoutRateWindow time.Duration
	StockCacheTTL      time.Duration

	// 审计查询等管理接口的简单管理员令牌
	AdminToken string
}

// Load 读取并校验配置，缺失时使用默认值。
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr:            getEnv("HTTP_ADDR", ":8080"),
		DBPath:              getEnv("DB_PATH", "marketplace.db"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             0,
		KafkaBrokers:        splitCSV(getEnv("KAFKA_BROKERS", "localhost:9092")),
		AuditTopic:          getEnv("AUDIT_TOPIC", "marketplace-audit-events"),
		AuditGroupID:        getEnv("AUDIT_GROUP_ID", "marketplace-audit-consumer"),
		AuditStream:         getEnv("AUDIT_STREAM", "marketplace:audit_events"),
		AuditStreamGroup:    getEnv("AUDIT_STREAM_GROUP", "marketplace-audit-relay-group"),
		AuditStreamConsumer: getEnv("AUDIT_STREAM_CONSUMER", "marketplace-audit-relay-1"),
		CheckoutRateLimit:   100,
		CheckoutRateWindow:  time.Second,
		StockCacheTTL:       24 * time.Hour,
		AdminToken:          getEnv("ADMIN_TOKEN", "dev-admin-token"),
	}

	redisDB, err := getEnvInt("REDIS_DB", cfg.RedisDB)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	cfg.RedisDB = redisDB

	rateLimit, err := getEnvInt("CHECKOUT_RATE_LIMIT", cfg.CheckoutRateLimit)
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid CHECKOUT_RATE_LIMIT: %w", err)
	}
	if rateLimit <= 0 {
		return AppConfig{}, fmt.Errorf("CHECKOUT_RATE_LIMIT must be > 0")
	}
	cfg.CheckoutRateLimit = rateLimit

	rateWindowSec, err := getEnvInt("CHECKOUT_RATE_WINDOW_SEC", int(cfg.CheckoutRateWindow.Seconds()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid CHECKOUT_RATE_WINDOW_SEC: %w", err)
	}
	if rateWindowSec <= 0 {
		return AppConfig{}, fmt.Errorf("CHECKOUT_RATE_WINDOW_SEC must be > 0")
	}
	cfg.CheckoutRateWindow = time.Duration(rateWindowSec) * time.Second

	stockTTLHour, err := getEnvInt("STOCK_CACHE_TTL_HOUR", int(cfg.StockCacheTTL.Hours()))
	if err != nil {
		return AppConfig{}, fmt.Errorf("invalid STOCK_CACHE_TTL_HOUR: %w", err)
	}
	if stockTTLHour <= 0 {
		return AppConfig{}, fmt.Errorf("STOCK_CACHE_TTL_HOUR must be > 0")
	}
	cfg.StockCacheTTL = time.Duration(stockTTLHour) * time.Hour

	if len(cfg.KafkaBrokers) == 0 {
		return AppConfig{}, fmt.Errorf("KAFKA_BROKERS must not be empty")
	}
	if cfg.AuditTopic == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_TOPIC must not be empty")
	}
	if cfg.AuditGroupID == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_GROUP_ID must not be empty")
	}
	if cfg.AuditStream == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_STREAM must not be empty")
	}
	if cfg.AuditStreamGroup == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_STREAM_GROUP must not be empty")
	}
	if cfg.AuditStreamConsumer == "" {
		return AppConfig{}, fmt.Errorf("AUDIT_STREAM_CONSUMER must not be empty")
	}

	return cfg, nil
}

// getEnv 读取字符串环境变量，若为空则返回默认值。
func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

// getEnvInt 读取整数环境变量，若为空则返回默认值。
func getEnvInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}

// splitCSV 将逗号分隔字符串解析为字符串切片。
func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		s := strings.TrimSpace(p)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
