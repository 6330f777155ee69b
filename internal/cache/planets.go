package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// planetGenKey 行星快取的世代計數；每次資料異動遞增，舊世代的 key 交由 TTL 淘汰
const planetGenKey = "planets:gen"

// PlanetGeneration 讀取目前世代；key 不存在時為 0
func PlanetGeneration(ctx context.Context, c Cache) (int64, error) {
	gen, err := c.Get(ctx, planetGenKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// BumpPlanets 遞增世代，使所有既有的行星快取失效
func BumpPlanets(ctx context.Context, c Cache) error {
	return c.Incr(ctx, planetGenKey).Err()
}

// PlanetListKey 行星清單的快取 key
func PlanetListKey(gen int64) string {
	return "planets:" + strconv.FormatInt(gen, 10) + ":all"
}

// PlanetKey 單一行星的快取 key
func PlanetKey(gen int64, id int) string {
	return "planets:" + strconv.FormatInt(gen, 10) + ":" + strconv.Itoa(id)
}

// GetJSON 讀取並解碼快取值；miss 時回傳 false 與 nil error
func GetJSON(ctx context.Context, c Cache, key string, dst any) (bool, error) {
	raw, err := c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON 以 JSON 編碼寫入快取
func SetJSON(ctx context.Context, c Cache, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.Set(ctx, key, raw, ttl).Err()
}
