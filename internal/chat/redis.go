package chat

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/localnerve/innohub/internal/models"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "innohub:chat:"

// RedisBroker fans out across instances through redis pub/sub
type RedisBroker struct {
	client *redis.Client
}

// NewRedisBroker wraps a connected client
func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func channel(userID string) string {
	return channelPrefix + userID
}

// Publish implements Broker
func (b *RedisBroker) Publish(ctx context.Context, userID string, msg models.Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, channel(userID), data).Err()
}

// Subscribe implements Broker
func (b *RedisBroker) Subscribe(ctx context.Context, userID string) (*Subscription, error) {
	ps := b.client.Subscribe(ctx, channel(userID))
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", userID, err)
	}

	ctx, cancel := context.WithCancel(ctx)
	out := make(chan models.Message, SubscriberBuffer)
	go func() {
		defer close(out)
		defer ps.Close()

		in := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case m, ok := <-in:
				if !ok {
					return
				}
				var msg models.Message
				if err := json.Unmarshal([]byte(m.Payload), &msg); err != nil {
					zap.L().Warn("dropping undecodable chat payload", zap.Error(err))
					continue
				}
				select {
				case out <- msg:
				default:
				}
			}
		}
	}()

	return &Subscription{C: out, cancel: cancel}, nil
}

// Ping checks the redis connection
func (b *RedisBroker) Ping(ctx context.Context) error {
	return b.client.Ping(ctx).Err()
}

// Close closes the client
func (b *RedisBroker) Close() error {
	return b.client.Close()
}

// NewBroker returns a redis broker when redisURL is reachable, otherwise an in-memory one
func NewBroker(ctx context.Context, redisURL string) Broker {
	if redisURL == "" {
		return NewMemoryBroker()
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		zap.L().Warn("invalid REDIS_URL, falling back to in-memory chat", zap.Error(err))
		return NewMemoryBroker()
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		zap.L().Warn("redis unavailable, falling back to in-memory chat", zap.Error(err))
		_ = client.Close()
		return NewMemoryBroker()
	}

	zap.L().Info("chat fan-out using redis", zap.String("addr", opts.Addr))
	return NewRedisBroker(client)
}
