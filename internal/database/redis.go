package database

import (
	"context"
	"sync"

	"github.com/inkwave/inkwave-api/internal/config"
	"github.com/inkwave/inkwave-api/internal/logger"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	rdb      *redis.Client
	redisOne sync.Once
)

// InitRedis 初始化Redis连接
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr(),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
	})

	// 测试连接
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	logger.Info("Redis连接成功", zap.String("addr", cfg.Addr()))
	return client, nil
}

// GetRedis 获取Redis客户端实例，连接失败时返回nil（缓存降级）
func GetRedis() *redis.Client {
	redisOne.Do(func() {
		client, err := InitRedis(&config.GlobalConfig.Redis)
		if err != nil {
			logger.Error("Redis连接失败，缓存不可用", zap.Error(err))
			return
		}
		rdb = client
	})
	return rdb
}
