package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"cricguess/internal/model"
)

// SessionCache keeps a JSON snapshot of recent sessions. MongoDB stays
// authoritative; this only speeds up reloads, and every write goes through
// Set again so the snapshot never drifts.
type SessionCache interface {
	Get(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error)
	Set(ctx context.Context, session *model.GameSession) error
	Delete(ctx context.Context, deviceID string, puzzleID int) error
}

type sessionCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSessionCache creates a new session snapshot cache
func NewSessionCache(client *redis.Client) SessionCache {
	return &sessionCache{
		client: client,
		ttl:    48 * time.Hour,
	}
}

func (c *sessionCache) key(deviceID string, puzzleID int) string {
	return fmt.Sprintf("session:%s:%d", deviceID, puzzleID)
}

func (c *sessionCache) Get(ctx context.Context, deviceID string, puzzleID int) (*model.GameSession, error) {
	data, err := c.client.Get(ctx, c.key(deviceID, puzzleID)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var session model.GameSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (c *sessionCache) Set(ctx context.Context, session *model.GameSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(session.DeviceID, session.PuzzleID), data, c.ttl).Err()
}

func (c *sessionCache) Delete(ctx context.Context, deviceID string, puzzleID int) error {
	return c.client.Del(ctx, c.key(deviceID, puzzleID)).Err()
}
