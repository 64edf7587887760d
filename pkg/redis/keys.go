package redis

import "fmt"

// StockKey 商品库存缓存键。
func StockKey(productID uint) string {
	return fmt.Sprintf("marketplace:stock:%d", productID)
}

// AuditSeenKey 标记某个审计事件是否已入库（消费端幂等去重）。
func AuditSeenKey(eventID string) string {
	return fmt.Sprintf("marketplace:audit:seen:%s", eventID)
}

// RateLimitUserKey 按用户限流的键。
func RateLimitUserKey(userID uint) string {
	return fmt.Sprintf("marketplace:rate_limit:user:%d", userID)
}

// RateLimitIPKey 按 IP 限流的键（user 解析失败时的降级）。
func RateLimitIPKey(ip string) string {
	return fmt.Sprintf("marketplace:rate_limit:ip:%s", ip)
}
