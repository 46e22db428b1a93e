// file: internals/features/academics/registry/service/registry_cache.go
package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"

	"kampusku_backend/internals/configs"
)

var (
	cacheOnce   sync.Once
	cacheClient *redis.Client
)

// cache: Redis opsional untuk lookup kode course (REDIS_ADDR kosong ⇒ tanpa cache).
func cache() *redis.Client {
	cacheOnce.Do(func() {
		addr := configs.Cfg.RedisAddr
		if addr == "" {
			return
		}
		cacheClient = redis.NewClient(&redis.Options{Addr: addr})
		if err := cacheClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("⚠️ Redis tidak tersedia (%v), lanjut tanpa cache", err)
			cacheClient = nil
		} else {
			log.Println("✅ Redis cache registry siap.")
		}
	})
	return cacheClient
}

func cacheGet(ctx context.Context, key string) (string, bool) {
	cl := cache()
	if cl == nil {
		return "", false
	}
	val, err := cl.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[CACHE] get err: %v", err)
		}
		return "", false
	}
	return val, true
}

func cacheSet(ctx context.Context, key, val string, ttl time.Duration) {
	cl := cache()
	if cl == nil {
		return
	}
	if err := cl.Set(ctx, key, val, ttl).Err(); err != nil {
		log.Printf("[CACHE] set err: %v", err)
	}
}
