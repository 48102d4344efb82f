// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"growlife/config"

	"github.com/go-redis/redis/v8"
)

// OTPCacheClient is the dedicated client for the OTP / verified-email store.
var OTPCacheClient *redis.Client

// InitOTPCache initializes the Redis client backing the OTP verification gate.
func InitOTPCache() {
	OTPCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisOTPDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := OTPCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (OTP Cache): %v", err)
	}
}

// GetOTPCacheClient returns the Redis client for the OTP store.
func GetOTPCacheClient() *redis.Client {
	if OTPCacheClient == nil {
		InitOTPCache()
	}
	return OTPCacheClient
}
