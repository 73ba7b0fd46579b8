package cache

import (
	"context"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// ScheduleCache is the date-to-puzzle override store. Lookup returns nil for
// a date with no pin. Callers treat lookup failures as "no override" so a
// broken Redis never blocks the daily rotation.
type ScheduleCache interface {
	Lookup(ctx context.Context, date string) (*int, error)
	Set(ctx context.Context, date string, puzzleID int) error
	Delete(ctx context.Context, date string) error
}

type scheduleCache struct {
	client *redis.Client
}

// NewScheduleCache creates a new schedule override cache
func NewScheduleCache(client *redis.Client) ScheduleCache {
	return &scheduleCache{
		client: client,
	}
}

func (c *scheduleCache) key(date string) string {
	return "schedule:" + date
}

func (c *scheduleCache) Lookup(ctx context.Context, date string) (*int, error) {
	val, err := c.client.Get(ctx, c.key(date)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(val)
	if err != nil {
		// A corrupt pin is treated as absent rather than blocking play.
		return nil, nil
	}
	return &id, nil
}

func (c *scheduleCache) Set(ctx context.Context, date string, puzzleID int) error {
	return c.client.Set(ctx, c.key(date), strconv.Itoa(puzzleID), 0).Err()
}

func (c *scheduleCache) Delete(ctx context.Context, date string) error {
	return c.client.Del(ctx, c.key(date)).Err()
}
