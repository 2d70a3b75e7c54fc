// Package gateway is the outbound side of the request service: push
// notifications published to the notification pipeline over NSQ.
package gateway

import (
	"context"

	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/internal/pkg/retry"
)

// Publisher is the slice of the NSQ producer the gateway uses.
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// RequestGW publishes request-service push notifications. Publishes are
// retried with backoff; nsqd restarts must not drop notifications.
type RequestGW struct {
	producer Publisher
	retrier  *retry.Retrier
}

// NewRequestGW creates the request gateway over an NSQ producer.
func NewRequestGW(producer Publisher, retrier *retry.Retrier) *RequestGW {
	return &RequestGW{
		producer: producer,
		retrier:  retrier,
	}
}

// NotifyUser queues a push notification for a single user. Formatting and
// device delivery happen in the downstream consumer of the topic.
func (g *RequestGW) NotifyUser(ctx context.Context, notification models.PushNotification) error {
	return g.retrier.Execute(ctx, func(context.Context) error {
		return g.producer.Publish(constants.TopicPushNotifications, notification)
	})
}
