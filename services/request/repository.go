package request

import (
	"context"
	"time"

	"github.com/footmanhq/dispatch/internal/pkg/models"
)

// RequestRepo defines the persistence operations for requests, settlement
// and rejection records. Guarded transitions are expressed as conditional
// updates so concurrent writers resolve in the database, not in memory.
type RequestRepo interface {
	// CreateRequest persists a new request in a searching state.
	CreateRequest(ctx context.Context, req *models.Request) error

	// GetRequest loads a request by id. Returns ErrNotFound when absent.
	GetRequest(ctx context.Context, requestID string) (*models.Request, error)

	// AcceptRequest assigns a partner if and only if the request is still
	// unassigned and in a searching state. Exactly one concurrent caller
	// succeeds; the rest get ErrAlreadyAccepted.
	AcceptRequest(ctx context.Context, requestID, partnerID string, acceptedAt time.Time) error

	// StartWork moves an accepted request to ongoing, guarded on the
	// assigned partner. Returns ErrInvalidTransition when the guard fails.
	StartWork(ctx context.Context, requestID, partnerID string) error

	// CancelRequest cancels a request owned by the customer, provided it
	// has not reached a terminal state and work has not started.
	CancelRequest(ctx context.Context, requestID, customerID string, cancelledAt time.Time) error

	// MarkSearchingBroad widens the search after every candidate rejected.
	MarkSearchingBroad(ctx context.Context, requestID string) error

	// BeginSettlement opens the settlement flow on an ongoing request that
	// has none yet. Re-invocation on an already-open settlement is a no-op.
	BeginSettlement(ctx context.Context, requestID string) error

	// CompareAndSetSettlement atomically flips the payment lock from
	// expectedLock to newLock while writing newState, guarded on the row
	// still being at expectedState, and returns whether the swap took
	// effect. A false return with no error means another writer holds the
	// lock or already moved the state: the caller's read is stale and the
	// advance must not happen.
	CompareAndSetSettlement(ctx context.Context, requestID string, expectedState models.SettlementStatus, expectedLock, newLock bool, newState models.SettlementStatus) (bool, error)

	// SetPaymentMethod records the method chosen during settlement.
	SetPaymentMethod(ctx context.Context, requestID, method string) error

	// CompleteRequest closes the lifecycle once settlement is fully done.
	CompleteRequest(ctx context.Context, requestID string, completedAt time.Time) error

	// FindRequestPair resolves the customer/partner pairing for a request.
	FindRequestPair(ctx context.Context, requestID string) (*models.RequestPair, error)

	// ListActiveRequestsForCustomer returns the customer's non-terminal
	// requests, for replay on reconnect.
	ListActiveRequestsForCustomer(ctx context.Context, customerID string) ([]models.ActiveRequest, error)

	// ListByStatusOlderThan returns requests stuck in a status since before
	// the cutoff, for the stale-request sweeper.
	ListByStatusOlderThan(ctx context.Context, status models.RequestStatus, cutoff time.Time) ([]models.Request, error)

	// UpsertRejection records a partner's rejection. One row per
	// (request, partner); a repeat refreshes the timestamp and reason.
	UpsertRejection(ctx context.Context, rejection *models.Rejection) error

	// RejectedPartnerIDs lists partners with a rejection against the
	// request newer than since.
	RejectedPartnerIDs(ctx context.Context, requestID string, since time.Time) ([]string, error)

	// PurgeRejectionsBefore deletes rejection records older than the
	// cutoff, returning the number removed.
	PurgeRejectionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
