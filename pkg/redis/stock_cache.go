package redis

import (
	"context"
	"time"

	rd "github.com/redis/go-redis/v9"
)

// PreloadStock 将 DB 里的库存写入缓存，供商品列表页做廉价的可售判断。
// 真正的扣减走 DB 条件 UPDATE，缓存只是展示用途，允许短暂不一致。
func PreloadStock(ctx context.Context, rdb *rd.Client, productID uint, stock int64, ttl time.Duration) error {
	return rdb.Set(ctx, StockKey(productID), stock, ttl).Err()
}

// GetCachedStock 读缓存库存。found=false 表示缓存缺失，调用方应回源 DB。
func GetCachedStock(ctx context.Context, rdb *rd.Client, productID uint) (int64, bool, error) {
	val, err := rdb.Get(ctx, StockKey(productID)).Int64()
	if err != nil {
		if err == rd.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}

// InvalidateStock 库存被修改后让缓存失效，下次读取回源。
func InvalidateStock(ctx context.Context, rdb *rd.Client, productID uint) error {
	return rdb.Del(ctx, StockKey(productID)).Err()
}
