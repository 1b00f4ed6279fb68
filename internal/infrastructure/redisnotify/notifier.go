// Package redisnotify publishes request transition events to a Redis
// channel. Subscribers (a dashboard, a mailer) pick them up out of band;
// the core treats delivery as best effort.
package redisnotify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sekolahku/inventaris-api/internal/application/requests"
	"github.com/sekolahku/inventaris-api/internal/domain/entity"
	"github.com/sekolahku/inventaris-api/pkg/logger"
)

var _ requests.Notifier = (*Notifier)(nil)

// Notifier publishes transition events as JSON on a Redis channel.
type Notifier struct {
	client  *redis.Client
	channel string
	log     *logger.Logger
}

// New builds the notifier and verifies connectivity.
func New(ctx context.Context, addr, password, channel string, log *logger.Logger) (*Notifier, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: 0})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, err
	}
	return &Notifier{client: client, channel: channel, log: log}, nil
}

// RequestTransitioned publishes the event. Failures are logged and
// swallowed: the transition has already committed.
func (n *Notifier) RequestTransitioned(ctx context.Context, event *entity.TransitionEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		n.log.Error().Err(err).Str("request_id", event.RequestID).Msg("marshal transition event")
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := n.client.Publish(pubCtx, n.channel, payload).Err(); err != nil {
		n.log.Warn().Err(err).
			Str("request_id", event.RequestID).
			Str("to_status", event.ToStatus).
			Msg("publish transition event")
	}
}

// Close releases the underlying client.
func (n *Notifier) Close() error {
	return n.client.Close()
}
