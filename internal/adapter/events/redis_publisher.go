package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"comefundme/internal/core/domain"
)

// redisClient is the subset of *redis.Client used by RedisPublisher.
type redisClient interface {
	RPush(ctx context.Context, key string, values ...interface{}) *redis.IntCmd
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

// RedisPublisher appends each event envelope to a Redis list and, when a
// channel is configured, announces it with PUBLISH.
type RedisPublisher struct {
	client  redisClient
	listKey string
	channel string
	now     func() time.Time
}

// NewRedisPublisher returns a publisher writing to listKey and channel.
// An empty channel disables PUBLISH.
func NewRedisPublisher(client redisClient, listKey, channel string) *RedisPublisher {
	return &RedisPublisher{
		client:  client,
		listKey: listKey,
		channel: channel,
		now:     time.Now,
	}
}

// Publish pushes the encoded envelope.
func (p *RedisPublisher) Publish(ctx context.Context, event domain.Event) error {
	env, err := NewEnvelope(event, p.now())
	if err != nil {
		return err
	}
	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	if err = p.client.RPush(ctx, p.listKey, data).Err(); err != nil {
		return fmt.Errorf("redis rpush %s: %w", p.listKey, err)
	}
	if p.channel == "" {
		return nil
	}
	if err = p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", p.channel, err)
	}
	return nil
}
