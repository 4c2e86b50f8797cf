package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"geohash-service/config"
)

var Rdb *redis.Client

// InitRedis connects the client used to cache radius-search results. The
// cache is optional: callers should treat a returned error as a downgrade
// to uncached operation, not a startup failure.
func InitRedis() error {
	cfg := config.Cfg.Redis
	Rdb = redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx := context.Background()
	_, err := Rdb.Ping(ctx).Result()
	if err != nil {
		Rdb = nil
		return fmt.Errorf("failed to connect to Redis: %v", err)
	}

	log.Println("Connected to Redis successfully.")
	return nil
}

// cellsKey identifies one radius query: same center, distance and threshold.
func cellsKey(hash string, distanceKm float64, minPoints int) string {
	return fmt.Sprintf("cells:%s:%g:%d", hash, distanceKm, minPoints)
}

// GetCells returns a previously cached radius-search result, if any.
func GetCells(ctx context.Context, hash string, distanceKm float64, minPoints int) ([]string, bool) {
	if Rdb == nil {
		return nil, false
	}

	payload, err := Rdb.Get(ctx, cellsKey(hash, distanceKm, minPoints)).Result()
	if err != nil {
		return nil, false
	}

	var cells []string
	if err := json.Unmarshal([]byte(payload), &cells); err != nil {
		return nil, false
	}
	return cells, true
}

// SetCells caches a radius-search result with the configured TTL.
func SetCells(ctx context.Context, hash string, distanceKm float64, minPoints int, cells []string) {
	if Rdb == nil {
		return
	}

	payload, err := json.Marshal(cells)
	if err != nil {
		return
	}

	ttl := time.Duration(config.Cfg.Geohash.CacheTTLSeconds) * time.Second
	Rdb.Set(ctx, cellsKey(hash, distanceKm, minPoints), payload, ttl)
}
