// Package repository persists requests, settlement state and rejection
// records in PostgreSQL. Every guarded lifecycle transition is a single
// conditional UPDATE checked via RowsAffected, so concurrent writers are
// serialized by the database row lock rather than by in-process locking.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/request"
)

type RequestRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRequestRepository(cfg *models.Config, db *sqlx.DB) *RequestRepo {
	return &RequestRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateRequest persists a new request in a searching state.
func (r *RequestRepo) CreateRequest(ctx context.Context, req *models.Request) error {
	query := `
		INSERT INTO requests (
			id, request_number, customer_id, partner_id,
			pickup_latitude, pickup_longitude, distance_km,
			base_price, commission, partner_earnings,
			status, settlement_status, payment_lock, payment_method,
			created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		req.ID,
		req.RequestNumber,
		req.CustomerID,
		req.PartnerID,
		req.PickupLatitude,
		req.PickupLongitude,
		req.DistanceKm,
		req.BasePrice,
		req.Commission,
		req.PartnerEarnings,
		req.Status,
		req.SettlementStatus,
		req.PaymentLock,
		req.PaymentMethod,
		req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return nil
}

// GetRequest loads a request by id.
func (r *RequestRepo) GetRequest(ctx context.Context, requestID string) (*models.Request, error) {
	query := `
		SELECT
			id, request_number, customer_id, partner_id,
			pickup_latitude, pickup_longitude, distance_km,
			base_price, commission, partner_earnings,
			status, settlement_status, payment_lock, payment_method,
			created_at, accepted_at, completed_at, cancelled_at
		FROM requests
		WHERE id = $1
	`

	req := &models.Request{}
	err := r.db.GetContext(ctx, req, query, requestID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, request.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get request: %w", err)
	}
	return req, nil
}

// AcceptRequest assigns a partner if the request is still unassigned and in a
// searching state. The WHERE clause is the whole race arbiter: of concurrent
// accepts only one UPDATE matches the row.
func (r *RequestRepo) AcceptRequest(ctx context.Context, requestID, partnerID string, acceptedAt time.Time) error {
	query := `
		UPDATE requests
		SET partner_id = $1, status = $2, accepted_at = $3
		WHERE id = $4
		  AND partner_id IS NULL
		  AND status IN ($5, $6)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		partnerID,
		models.RequestStatusAccepted,
		acceptedAt,
		requestID,
		models.RequestStatusSearching,
		models.RequestStatusSearchingBroad,
	)
	if err != nil {
		return fmt.Errorf("failed to accept request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check accept result: %w", err)
	}
	if rows == 0 {
		return request.ErrAlreadyAccepted
	}
	return nil
}

// StartWork moves an accepted request to ongoing, guarded on the assigned
// partner.
func (r *RequestRepo) StartWork(ctx context.Context, requestID, partnerID string) error {
	query := `
		UPDATE requests
		SET status = $1
		WHERE id = $2
		  AND partner_id = $3
		  AND status = $4
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		models.RequestStatusOngoing,
		requestID,
		partnerID,
		models.RequestStatusAccepted,
	)
	if err != nil {
		return fmt.Errorf("failed to start work: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check start result: %w", err)
	}
	if rows == 0 {
		return request.ErrInvalidTransition
	}
	return nil
}

// CancelRequest cancels the customer's own request before work starts.
func (r *RequestRepo) CancelRequest(ctx context.Context, requestID, customerID string, cancelledAt time.Time) error {
	query := `
		UPDATE requests
		SET status = $1, cancelled_at = $2
		WHERE id = $3
		  AND customer_id = $4
		  AND status IN ($5, $6, $7)
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		models.RequestStatusCancelled,
		cancelledAt,
		requestID,
		customerID,
		models.RequestStatusSearching,
		models.RequestStatusSearchingBroad,
		models.RequestStatusAccepted,
	)
	if err != nil {
		return fmt.Errorf("failed to cancel request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check cancel result: %w", err)
	}
	if rows == 0 {
		return request.ErrInvalidTransition
	}
	return nil
}

// MarkSearchingBroad widens the search after every candidate rejected. The
// request must still be unassigned.
func (r *RequestRepo) MarkSearchingBroad(ctx context.Context, requestID string) error {
	query := `
		UPDATE requests
		SET status = $1
		WHERE id = $2
		  AND partner_id IS NULL
		  AND status = $3
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		models.RequestStatusSearchingBroad,
		requestID,
		models.RequestStatusSearching,
	)
	if err != nil {
		return fmt.Errorf("failed to widen search: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check widen result: %w", err)
	}
	if rows == 0 {
		return request.ErrInvalidTransition
	}
	return nil
}

// BeginSettlement opens the settlement flow on an ongoing request. A request
// whose settlement is already open is left untouched and reported as success,
// so a duplicated work-done event is harmless.
func (r *RequestRepo) BeginSettlement(ctx context.Context, requestID string) error {
	query := `
		UPDATE requests
		SET settlement_status = $1
		WHERE id = $2
		  AND status = $3
		  AND settlement_status IS NULL
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		models.SettlementWaitingPayment,
		requestID,
		models.RequestStatusOngoing,
	)
	if err != nil {
		return fmt.Errorf("failed to begin settlement: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check settlement begin: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Zero rows: either the settlement already exists (re-drive) or the
	// request is not ongoing. Distinguish by re-reading.
	req, err := r.GetRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if req.Status == models.RequestStatusOngoing && req.SettlementStatus != nil {
		return nil
	}
	return request.ErrInvalidTransition
}

// CompareAndSetSettlement atomically flips the payment lock while writing the
// new settlement state. The WHERE clause carries both guards: the expected
// lock value and the expected current state, so a writer whose read went
// stale cannot re-acquire the lock and rewind a settlement that has since
// moved on. The returned bool is the swap outcome; false means a guard did
// not match and nothing changed.
func (r *RequestRepo) CompareAndSetSettlement(ctx context.Context, requestID string, expectedState models.SettlementStatus, expectedLock, newLock bool, newState models.SettlementStatus) (bool, error) {
	query := `
		UPDATE requests
		SET payment_lock = $1, settlement_status = $2
		WHERE id = $3
		  AND payment_lock = $4
		  AND settlement_status = $5
	`

	result, err := r.db.ExecContext(ctx, query, newLock, newState, requestID, expectedLock, expectedState)
	if err != nil {
		return false, fmt.Errorf("failed to swap settlement state: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to check settlement swap: %w", err)
	}
	return rows > 0, nil
}

// SetPaymentMethod records the method chosen during settlement.
func (r *RequestRepo) SetPaymentMethod(ctx context.Context, requestID, method string) error {
	query := `UPDATE requests SET payment_method = $1 WHERE id = $2`

	_, err := r.db.ExecContext(ctx, query, method, requestID)
	if err != nil {
		return fmt.Errorf("failed to set payment method: %w", err)
	}
	return nil
}

// CompleteRequest closes the lifecycle once settlement reached
// fully_completed.
func (r *RequestRepo) CompleteRequest(ctx context.Context, requestID string, completedAt time.Time) error {
	query := `
		UPDATE requests
		SET status = $1, completed_at = $2
		WHERE id = $3
		  AND status = $4
		  AND settlement_status = $5
	`

	result, err := r.db.ExecContext(
		ctx,
		query,
		models.RequestStatusCompleted,
		completedAt,
		requestID,
		models.RequestStatusOngoing,
		models.SettlementFullyCompleted,
	)
	if err != nil {
		return fmt.Errorf("failed to complete request: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check complete result: %w", err)
	}
	if rows == 0 {
		// Re-drive after the lifecycle already closed is a no-op.
		req, err := r.GetRequest(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status == models.RequestStatusCompleted {
			return nil
		}
		return request.ErrInvalidTransition
	}
	return nil
}

// FindRequestPair resolves the customer/partner pairing for a request.
func (r *RequestRepo) FindRequestPair(ctx context.Context, requestID string) (*models.RequestPair, error) {
	query := `
		SELECT id, customer_id, COALESCE(partner_id, '') AS partner_id
		FROM requests
		WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, requestID)

	pair := &models.RequestPair{}
	if err := row.Scan(&pair.RequestID, &pair.CustomerID, &pair.PartnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, request.ErrNotFound
		}
		return nil, fmt.Errorf("failed to resolve request pair: %w", err)
	}
	return pair, nil
}

// ListActiveRequestsForCustomer returns the customer's non-terminal requests,
// most recent first.
func (r *RequestRepo) ListActiveRequestsForCustomer(ctx context.Context, customerID string) ([]models.ActiveRequest, error) {
	query := `
		SELECT id, status, partner_id
		FROM requests
		WHERE customer_id = $1
		  AND status NOT IN ($2, $3)
		ORDER BY created_at DESC
	`

	active := []models.ActiveRequest{}
	err := r.db.SelectContext(
		ctx,
		&active,
		query,
		customerID,
		models.RequestStatusCompleted,
		models.RequestStatusCancelled,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list active requests: %w", err)
	}
	return active, nil
}

// ListByStatusOlderThan returns requests stuck in a status since before the
// cutoff.
func (r *RequestRepo) ListByStatusOlderThan(ctx context.Context, status models.RequestStatus, cutoff time.Time) ([]models.Request, error) {
	query := `
		SELECT
			id, request_number, customer_id, partner_id,
			pickup_latitude, pickup_longitude, distance_km,
			base_price, commission, partner_earnings,
			status, settlement_status, payment_lock, payment_method,
			created_at, accepted_at, completed_at, cancelled_at
		FROM requests
		WHERE status = $1
		  AND created_at < $2
		ORDER BY created_at ASC
	`

	stale := []models.Request{}
	if err := r.db.SelectContext(ctx, &stale, query, status, cutoff); err != nil {
		return nil, fmt.Errorf("failed to list stale requests: %w", err)
	}
	return stale, nil
}
