package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RedisClient *redis.Client

// InitRedis connects to Redis. A failed connection is not fatal: carts
// then live in process memory only.
func InitRedis(ctx context.Context) {
	var opt *redis.Options
	if AppConfig.RedisURL != "" {
		parsed, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			Log.Warn("failed to parse Redis URL, running without cart persistence", zap.Error(err))
			return
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		Log.Warn("redis connection failed, running without cart persistence",
			zap.String("addr", opt.Addr),
			zap.Error(err))
		_ = client.Close()
		return
	}

	RedisClient = client
	Log.Info("redis connected", zap.String("addr", opt.Addr))
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
		RedisClient = nil
	}
}
