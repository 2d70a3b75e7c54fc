package request

import (
	"context"

	"github.com/footmanhq/dispatch/internal/pkg/models"
)

// RequestUC drives the request lifecycle and the settlement flow nested in
// it. All transitions are guarded; a rejected transition returns
// ErrInvalidTransition (or a more specific sentinel) and mutates nothing.
type RequestUC interface {
	// CreateRequest validates the customer's geometry, prices the request,
	// persists it in a searching state and returns it together with the
	// nearby candidates that were offered it.
	CreateRequest(ctx context.Context, customerID string, lat, lng float64) (*models.Request, []models.NearbyPartner, error)

	// AcceptRequest claims the request for a partner. The partner must
	// still be within the service radius of the pickup point at accept
	// time. Of concurrent accepts exactly one wins; the rest receive
	// ErrAlreadyAccepted.
	AcceptRequest(ctx context.Context, requestID, partnerID string) (*models.Request, error)

	// RejectRequest records a partner's rejection and, when no eligible
	// candidate remains, widens the search.
	RejectRequest(ctx context.Context, requestID, partnerID, reason, note string) error

	// StartWork moves an accepted request to ongoing.
	StartWork(ctx context.Context, requestID, partnerID string) (*models.Request, error)

	// MarkWorkDone reports physical completion and opens settlement at
	// waiting_payment. The lifecycle stays ongoing until settlement closes.
	MarkWorkDone(ctx context.Context, requestID, partnerID string) (*models.Request, error)

	// CancelRequest cancels the customer's own request before work starts.
	CancelRequest(ctx context.Context, requestID, customerID string) (*models.Request, error)

	// SelectPayment advances settlement to payment_selected with the
	// chosen method. Re-driving an already-advanced settlement is a no-op.
	SelectPayment(ctx context.Context, requestID, method string) (*models.Request, error)

	// ConfirmPayment advances settlement through payment_confirmed to
	// fully_completed and closes the request lifecycle. Partner earnings
	// are announced exactly once, on the transition that reaches
	// fully_completed.
	ConfirmPayment(ctx context.Context, requestID string) (*models.Request, error)

	// GetRequest loads a request by id.
	GetRequest(ctx context.Context, requestID string) (*models.Request, error)

	// ResolvePair resolves the customer/partner pairing for a request.
	ResolvePair(ctx context.Context, requestID string) (*models.RequestPair, error)

	// ActiveRequestsForCustomer lists the customer's non-terminal requests.
	ActiveRequestsForCustomer(ctx context.Context, customerID string) ([]models.ActiveRequest, error)

	// SweepStaleSearching cancels searching requests older than maxAge and
	// returns the cancelled ids.
	SweepStaleSearching(ctx context.Context, maxAgeSeconds int) ([]string, error)
}
