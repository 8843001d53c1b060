package handler

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// releases the lock only if it still holds our token
var unlockScript = redis.NewScript(`
	if redis.call("GET", KEYS[1]) == ARGV[1] then
		return redis.call("DEL", KEYS[1])
	end
	return 0
`)

func (h *Handler) lockRoster(ctx context.Context, token string) (bool, error) {
	expiration := time.Duration(h.config.Roster.LockExpiration) * time.Second
	return h.redisClient.SetNX(ctx, h.config.Roster.LockKey, token, expiration).Result()
}

func (h *Handler) unlockRoster(ctx context.Context, token string) error {
	return unlockScript.Run(ctx, h.redisClient, []string{h.config.Roster.LockKey}, token).Err()
}
