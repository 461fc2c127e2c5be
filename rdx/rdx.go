package rdx

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options turns REDIS_URL into client options. The value is either a
// redis:// or rediss:// URL or a bare host:port. A non-empty password
// overrides the one in the URL.
func Options(url, password string) (*redis.Options, error) {
	opts := &redis.Options{Addr: url}
	if strings.Contains(url, "://") {
		var err error
		if opts, err = redis.ParseURL(url); err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
	}
	if password != "" {
		opts.Password = password
	}
	opts.DialTimeout = 5 * time.Second
	return opts, nil
}

// Connect opens a client for url and pings it.
func Connect(ctx context.Context, url, password string) (*redis.Client, error) {
	opts, err := Options(url, password)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", opts.Addr, err)
	}
	return client, nil
}
