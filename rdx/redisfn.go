package rdx

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"evora/globals"
)

var Conn *redis.Client

func init() {
	opts, err := redis.ParseURL(globals.Getenv("REDIS_URL", "redis://localhost:6379/0"))
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid REDIS_URL")
	}
	Conn = redis.NewClient(opts)
}

// RdxGet returns the cached value for key, or "" when absent or when the
// cache is unreachable. Callers treat every miss the same way.
func RdxGet(key string) (string, error) {
	val, err := Conn.Get(globals.Ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func RdxSet(key, value string) error {
	return Conn.Set(globals.Ctx, key, value, 0).Err()
}

// RdxSetTTL caches with an expiry; used for geocode lookups.
func RdxSetTTL(key, value string, ttl time.Duration) error {
	return Conn.Set(globals.Ctx, key, value, ttl).Err()
}

func RdxDel(key string) error {
	return Conn.Del(globals.Ctx, key).Err()
}
