// Package cache provides Valkey (Redis-compatible) client initialization
// and full-page caching for the public storefront pages.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// connectAttempts covers container start order: the app often comes
	// up a beat before Valkey does.
	connectAttempts = 3
	connectBackoff  = 2 * time.Second
	pingTimeout     = 5 * time.Second
)

// ConnectValkey creates a Valkey client and verifies the connection,
// retrying briefly before giving up.
func ConnectValkey(host, port, password string) (*redis.Client, error) {
	addr := fmt.Sprintf("%s:%s", host, port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	var err error
	for attempt := 1; attempt <= connectAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
		err = client.Ping(ctx).Err()
		cancel()
		if err == nil {
			slog.Info("valkey connected", "addr", addr, "attempt", attempt)
			return client, nil
		}
		if attempt < connectAttempts {
			slog.Warn("valkey not reachable, retrying", "addr", addr, "attempt", attempt, "error", err)
			time.Sleep(connectBackoff)
		}
	}

	client.Close()
	return nil, fmt.Errorf("valkey ping %s: %w", addr, err)
}
