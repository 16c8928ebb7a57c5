package config

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis dials the transcript cache. Accepts either a bare host:port
// or a redis:// / rediss:// URL.
func ConnectRedis(ctx context.Context, addr string) (*redis.Client, error) {
	var client *redis.Client

	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opt, err := redis.ParseURL(addr)
		if err != nil {
			return nil, err
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: addr})
	}

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}
