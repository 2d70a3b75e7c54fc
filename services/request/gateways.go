package request

import (
	"context"

	"github.com/footmanhq/dispatch/internal/pkg/models"
)

// RequestGW is the outbound side of the request service: push notifications
// handed off to the notification pipeline. Delivery failures are logged, not
// returned, so a flaky broker never blocks a state transition.
type RequestGW interface {
	// NotifyUser queues a push notification for a single user.
	NotifyUser(ctx context.Context, notification models.PushNotification) error
}

// Matcher is the slice of the matching component the request service needs.
type Matcher interface {
	FindNearby(ctx context.Context, requestID string, lat, lng, radiusKm float64, limit int) ([]models.NearbyPartner, error)
	FindNearest(ctx context.Context, requestID string, lat, lng, radiusKm float64) (models.NearbyPartner, error)
	ValidateDistance(originLat, originLng, destLat, destLng float64) (float64, error)
}
