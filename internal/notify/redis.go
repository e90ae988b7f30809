package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultChannel is the Pub/Sub channel used when none is configured.
const DefaultChannel = "bizdash:notifications"

// envelope tags a published notification with the instance that raised it.
type envelope struct {
	Origin       string       `json:"origin"`
	Notification Notification `json:"notification"`
}

// RedisPublisher shares notifications between API instances over Redis Pub/Sub.
// A nil client turns every operation into a no-op.
type RedisPublisher struct {
	client  *redis.Client
	channel string
	origin  string
	logger  *slog.Logger
}

// NewRedisClient connects to the Redis server at url (redis://...).
// On a failed ping the client is closed and nil is returned with the error.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

// NewRedisPublisher creates a publisher on channel; an empty channel selects DefaultChannel.
func NewRedisPublisher(client *redis.Client, channel string, logger *slog.Logger) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisPublisher{
		client:  client,
		channel: channel,
		origin:  uuid.NewString(),
		logger:  logger,
	}
}

// Notify publishes n. Failures are logged and otherwise ignored.
func (p *RedisPublisher) Notify(ctx context.Context, n Notification) {
	if p == nil || p.client == nil {
		return
	}
	data, err := json.Marshal(envelope{Origin: p.origin, Notification: n})
	if err != nil {
		p.logger.Error("Failed to marshal notification", slog.String("error", err.Error()))
		return
	}
	if err := p.client.Publish(ctx, p.channel, data).Err(); err != nil {
		p.logger.Warn("Failed to publish notification",
			slog.String("channel", p.channel),
			slog.String("error", err.Error()))
	}
}

// Relay subscribes to the channel and forwards notifications published by other
// instances to target. It blocks until ctx is cancelled.
func (p *RedisPublisher) Relay(ctx context.Context, target Notifier) error {
	if p == nil || p.client == nil {
		return nil
	}
	pubsub := p.client.Subscribe(ctx, p.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe to channel: %w", err)
	}
	p.logger.Info("Subscribed to notification channel", slog.String("channel", p.channel))

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				p.logger.Warn("Dropping malformed notification", slog.String("error", err.Error()))
				continue
			}
			if env.Origin == p.origin {
				continue
			}
			target.Notify(ctx, env.Notification)
		}
	}
}
