// Package redis wraps go-redis so the snapshot repository depends on a small
// interface and tests can point it at miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

// Options tune the connection pool. The zero value uses go-redis defaults.
type Options struct {
	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	UseTLS          bool
}

// NewClient connects to endpoint, a single host:port or a comma separated
// list of cluster nodes. Blank list entries are ignored.
func NewClient(endpoint string, opts *Options) (Client, error) {
	var addrs []string
	for _, addr := range strings.Split(endpoint, ",") {
		if addr = strings.TrimSpace(addr); addr != "" {
			addrs = append(addrs, addr)
		}
	}
	if len(addrs) == 0 {
		return nil, errors.InvalidArgument("redis endpoint is required").WithMeta("endpoint", endpoint)
	}
	if opts == nil {
		opts = &Options{}
	}

	universal := &redis.UniversalOptions{
		Addrs:           addrs,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
	}
	if opts.UseTLS {
		universal.TLSConfig = &tls.Config{
			InsecureSkipVerify: true, // #nosec G402 snapshot stores run with self-signed certs
		}
	}

	// More than one address yields a cluster client
	return redis.NewUniversalClient(universal), nil
}

// Ping checks the connection, bounded by timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis is unreachable")
	}
	return nil
}
