package notify

import (
	"context"
	"encoding/json"
	"time"

	"github.com/agency/backend/internal/domain/notification"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Channel is the Redis pub/sub channel connected clients listen on. The
// payload only tells them something changed; they re-fetch the list over
// HTTP rather than trusting the broadcast body.
const Channel = "agency:notifications"

// Dispatcher stores notifications and broadcasts a change signal over Redis.
// It implements notification.Dispatcher: failures are logged and swallowed,
// an outcome report must never fail the operation it reports on.
type Dispatcher struct {
	repo   notification.Repository
	client *redis.Client
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher. The Redis client may be nil, in which
// case notifications are stored but not broadcast.
func NewDispatcher(repo notification.Repository, client *redis.Client, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		repo:   repo,
		client: client,
		logger: logger,
	}
}

// broadcastPayload is what goes over the wire on a dispatch
type broadcastPayload struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title"`
}

// Dispatch stores and broadcasts a notification
func (d *Dispatcher) Dispatch(ctx context.Context, n *notification.Notification) {
	if err := d.repo.Save(ctx, n); err != nil {
		d.logger.Error("Failed to store notification",
			zap.String("kind", string(n.Kind)),
			zap.String("title", n.Title),
			zap.Error(err),
		)
		return
	}

	d.logger.Info("Notification dispatched",
		zap.String("id", n.ID.String()),
		zap.String("kind", string(n.Kind)),
		zap.String("title", n.Title),
	)

	if d.client == nil {
		return
	}

	payload, err := json.Marshal(broadcastPayload{
		ID:    n.ID.String(),
		Kind:  string(n.Kind),
		Title: n.Title,
	})
	if err != nil {
		d.logger.Error("Failed to encode notification broadcast", zap.Error(err))
		return
	}

	publishCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := d.client.Publish(publishCtx, Channel, payload).Err(); err != nil {
		d.logger.Warn("Failed to broadcast notification",
			zap.String("id", n.ID.String()),
			zap.Error(err),
		)
	}
}
