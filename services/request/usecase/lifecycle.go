package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/geo"
	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/pricing"
	"github.com/footmanhq/dispatch/services/request"
)

// validUserID rejects empty ids and the string placeholders that broken
// clients serialize in place of a real id.
func validUserID(id string) bool {
	switch strings.TrimSpace(id) {
	case "", "undefined", "null":
		return false
	}
	return true
}

// CreateRequest validates the geometry, matches the nearest partner to price
// the request, persists it in a searching state and offers it to every
// candidate within the service radius.
func (uc *requestUC) CreateRequest(ctx context.Context, customerID string, lat, lng float64) (*models.Request, []models.NearbyPartner, error) {
	if !validUserID(customerID) {
		return nil, nil, fmt.Errorf("%w: customer id", request.ErrMalformedInput)
	}

	radius := uc.cfg.Match.ServiceRadiusKm

	nearest, err := uc.matcher.FindNearest(ctx, "", lat, lng, radius)
	if err != nil {
		return nil, nil, err
	}

	// The priced distance is validated against the service radius as its own
	// condition, so out-of-area geometry surfaces as distance-exceeded
	// rather than a generic matching failure.
	distance, err := uc.matcher.ValidateDistance(lat, lng, nearest.Latitude, nearest.Longitude)
	if err != nil {
		return nil, nil, err
	}

	quote, err := pricing.Quote(distance, uc.cfg.Pricing.CommissionRate)
	if err != nil {
		return nil, nil, err
	}

	now := uc.now()
	req := &models.Request{
		ID:              uuid.New(),
		RequestNumber:   requestNumber(now),
		CustomerID:      customerID,
		PickupLatitude:  lat,
		PickupLongitude: lng,
		DistanceKm:      quote.DistanceKm,
		BasePrice:       quote.BasePrice,
		Commission:      quote.Commission,
		PartnerEarnings: quote.PartnerEarnings,
		Status:          models.RequestStatusSearching,
		CreatedAt:       now,
	}

	if err := uc.repo.CreateRequest(ctx, req); err != nil {
		return nil, nil, err
	}

	candidates, err := uc.matcher.FindNearby(ctx, req.ID.String(), lat, lng, radius, uc.cfg.Match.CandidateLimit)
	if err != nil {
		logger.Warn("failed to list offer candidates",
			logger.String("request_id", req.ID.String()),
			logger.Err(err))
		candidates = []models.NearbyPartner{}
	}

	for _, c := range candidates {
		uc.notify(ctx, c.PartnerID, constants.EventRequestUpdate, "New request nearby", map[string]any{
			"request_id":  req.ID.String(),
			"distance_km": c.DistanceKm,
			"base_price":  req.BasePrice,
		})
	}

	logger.Info("request created",
		logger.String("request_id", req.ID.String()),
		logger.String("customer_id", customerID),
		logger.Float64("distance_km", req.DistanceKm),
		logger.Int("candidates", len(candidates)))

	return req, candidates, nil
}

// AcceptRequest claims the request for a partner. The partner's live position
// is re-checked against the pickup point: an offer does not entitle a partner
// who has since moved out of range. The repository's conditional update
// decides the winner of concurrent accepts.
func (uc *requestUC) AcceptRequest(ctx context.Context, requestID, partnerID string) (*models.Request, error) {
	if !validUserID(partnerID) {
		return nil, fmt.Errorf("%w: partner id", request.ErrMalformedInput)
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status.Terminal() {
		return nil, request.ErrInvalidTransition
	}
	if req.PartnerID != nil {
		return nil, request.ErrAlreadyAccepted
	}

	p, ok := uc.presence.Get(partnerID)
	if !ok || !geo.Within(p.Latitude, p.Longitude, req.PickupLatitude, req.PickupLongitude, uc.cfg.Match.ServiceRadiusKm) {
		return nil, request.ErrPartnerOutOfRange
	}

	if err := uc.repo.AcceptRequest(ctx, requestID, partnerID, uc.now()); err != nil {
		return nil, err
	}

	accepted, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, accepted.CustomerID, constants.EventRequestUpdate, "Partner accepted your request", map[string]any{
		"request_id": requestID,
		"partner_id": partnerID,
		"status":     string(accepted.Status),
	})

	logger.Info("request accepted",
		logger.String("request_id", requestID),
		logger.String("partner_id", partnerID))

	return accepted, nil
}

// RejectRequest records a partner's rejection. When every candidate within
// range has now rejected, the request is widened to the broad searching
// state so clients can surface the degraded outlook.
func (uc *requestUC) RejectRequest(ctx context.Context, requestID, partnerID, reason, note string) error {
	if !validUserID(partnerID) {
		return fmt.Errorf("%w: partner id", request.ErrMalformedInput)
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}

	if err := uc.repo.UpsertRejection(ctx, &models.Rejection{
		RequestID:  requestID,
		PartnerID:  partnerID,
		Reason:     reason,
		Note:       note,
		RejectedAt: uc.now(),
	}); err != nil {
		return err
	}

	// A rejection after assignment or closure changes nothing further.
	if !req.Status.Searching() {
		return nil
	}

	remaining, err := uc.matcher.FindNearby(ctx, requestID,
		req.PickupLatitude, req.PickupLongitude,
		uc.cfg.Match.ServiceRadiusKm, uc.cfg.Match.CandidateLimit)
	if err != nil {
		return err
	}

	if len(remaining) == 0 && req.Status == models.RequestStatusSearching {
		if err := uc.repo.MarkSearchingBroad(ctx, requestID); err != nil {
			// Lost a race with an accept; the rejection is still recorded.
			logger.Info("skipping search widening",
				logger.String("request_id", requestID),
				logger.Err(err))
			return nil
		}
		uc.notify(ctx, req.CustomerID, constants.EventRequestUpdate, "Still searching for a partner", map[string]any{
			"request_id": requestID,
			"status":     string(models.RequestStatusSearchingBroad),
		})
	}
	return nil
}

// StartWork moves an accepted request to ongoing.
func (uc *requestUC) StartWork(ctx context.Context, requestID, partnerID string) (*models.Request, error) {
	if err := uc.repo.StartWork(ctx, requestID, partnerID); err != nil {
		return nil, err
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, req.CustomerID, constants.EventRequestUpdate, "Work has started", map[string]any{
		"request_id": requestID,
		"status":     string(req.Status),
	})
	return req, nil
}

// MarkWorkDone reports physical completion by the assigned partner and opens
// settlement. The request stays ongoing until settlement fully completes.
func (uc *requestUC) MarkWorkDone(ctx context.Context, requestID, partnerID string) (*models.Request, error) {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.PartnerID == nil || *req.PartnerID != partnerID {
		return nil, request.ErrInvalidTransition
	}

	if err := uc.repo.BeginSettlement(ctx, requestID); err != nil {
		return nil, err
	}

	req, err = uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, req.CustomerID, constants.EventPaymentUpdate, "Please select a payment method", map[string]any{
		"request_id": requestID,
		"status":     string(models.SettlementWaitingPayment),
		"base_price": req.BasePrice,
	})
	return req, nil
}

// CancelRequest cancels the customer's own request before work starts.
func (uc *requestUC) CancelRequest(ctx context.Context, requestID, customerID string) (*models.Request, error) {
	if !validUserID(customerID) {
		return nil, fmt.Errorf("%w: customer id", request.ErrMalformedInput)
	}

	if err := uc.repo.CancelRequest(ctx, requestID, customerID, uc.now()); err != nil {
		return nil, err
	}

	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	if req.PartnerID != nil {
		uc.notify(ctx, *req.PartnerID, constants.EventRequestUpdate, "Request was cancelled", map[string]any{
			"request_id": requestID,
			"status":     string(req.Status),
		})
	}

	logger.Info("request cancelled",
		logger.String("request_id", requestID),
		logger.String("customer_id", customerID))

	return req, nil
}

// GetRequest loads a request by id.
func (uc *requestUC) GetRequest(ctx context.Context, requestID string) (*models.Request, error) {
	return uc.repo.GetRequest(ctx, requestID)
}

// ResolvePair resolves the customer/partner pairing for a request.
func (uc *requestUC) ResolvePair(ctx context.Context, requestID string) (*models.RequestPair, error) {
	return uc.repo.FindRequestPair(ctx, requestID)
}

// ActiveRequestsForCustomer lists the customer's non-terminal requests.
func (uc *requestUC) ActiveRequestsForCustomer(ctx context.Context, customerID string) ([]models.ActiveRequest, error) {
	return uc.repo.ListActiveRequestsForCustomer(ctx, customerID)
}

// SweepStaleSearching cancels searching requests older than maxAge. Requests
// that transitioned between listing and cancellation are skipped by the
// repository guard and left alone.
func (uc *requestUC) SweepStaleSearching(ctx context.Context, maxAgeSeconds int) ([]string, error) {
	cutoff := uc.now().Add(-time.Duration(maxAgeSeconds) * time.Second)

	cancelled := []string{}
	for _, status := range []models.RequestStatus{models.RequestStatusSearching, models.RequestStatusSearchingBroad} {
		stale, err := uc.repo.ListByStatusOlderThan(ctx, status, cutoff)
		if err != nil {
			return cancelled, err
		}
		for _, req := range stale {
			id := req.ID.String()
			if err := uc.repo.CancelRequest(ctx, id, req.CustomerID, uc.now()); err != nil {
				continue
			}
			cancelled = append(cancelled, id)
			uc.notify(ctx, req.CustomerID, constants.EventRequestUpdate, "No partner found", map[string]any{
				"request_id": id,
				"status":     string(models.RequestStatusCancelled),
			})
		}
	}

	if len(cancelled) > 0 {
		logger.Info("swept stale searching requests", logger.Int("count", len(cancelled)))
	}
	return cancelled, nil
}

// notify queues a push notification without letting delivery problems block
// the transition that triggered it.
func (uc *requestUC) notify(ctx context.Context, userID, event, title string, data map[string]any) {
	if userID == "" {
		return
	}
	err := uc.gw.NotifyUser(ctx, models.PushNotification{
		UserID:    userID,
		Event:     event,
		Title:     title,
		Data:      data,
		Timestamp: uc.now(),
	})
	if err != nil {
		logger.Warn("failed to queue push notification",
			logger.String("user_id", userID),
			logger.String("event", event),
			logger.Err(err))
	}
}

func requestNumber(t time.Time) string {
	suffix := strings.Split(uuid.NewString(), "-")[0]
	return fmt.Sprintf("REQ-%s-%s", t.Format("20060102"), strings.ToUpper(suffix))
}
