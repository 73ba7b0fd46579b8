package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// StandingsCache keeps one ZSET of winners per puzzle date for fast rank
// lookups. The score packs (guesses used, submission time) so the ZSET's
// ascending order matches the competitive ranking exactly, including the
// device-id tie-break, which falls out of Redis ordering equal scores
// lexicographically by member.
type StandingsCache interface {
	RecordWin(ctx context.Context, date, deviceID string, guessesUsed int, submittedAt time.Time) error
	GetRank(ctx context.Context, date, deviceID string) (int64, error)
}

type standingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewStandingsCache creates a new standings cache
func NewStandingsCache(client *redis.Client) StandingsCache {
	return &standingsCache{
		client: client,
		ttl:    48 * time.Hour,
	}
}

func (c *standingsCache) key(date string) string {
	return fmt.Sprintf("standings:%s", date)
}

func (c *standingsCache) RecordWin(ctx context.Context, date, deviceID string, guessesUsed int, submittedAt time.Time) error {
	key := c.key(date)
	err := c.client.ZAdd(ctx, key, redis.Z{
		Score:  packScore(guessesUsed, submittedAt),
		Member: deviceID,
	}).Err()
	if err != nil {
		return err
	}
	return c.client.Expire(ctx, key, c.ttl).Err()
}

func (c *standingsCache) GetRank(ctx context.Context, date, deviceID string) (int64, error) {
	rank, err := c.client.ZRank(ctx, c.key(date), deviceID).Result()
	if err == redis.Nil {
		return -1, nil
	}
	return rank + 1, err // 1-indexed
}

// packScore orders winners by guesses used, then submission time. Guess
// counts are small and unix milliseconds stay under 2^53, so the packed
// value is exact in a float64.
func packScore(guessesUsed int, submittedAt time.Time) float64 {
	return float64(guessesUsed)*1e13 + float64(submittedAt.UnixMilli())
}
