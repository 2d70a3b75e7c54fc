package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/footmanhq/dispatch/internal/pkg/models"
)

// UpsertRejection records a partner's rejection. The (request, partner) pair
// is the primary key; a repeat rejection refreshes the timestamp and reason.
func (r *RequestRepo) UpsertRejection(ctx context.Context, rejection *models.Rejection) error {
	query := `
		INSERT INTO request_rejections (request_id, partner_id, reason, note, rejected_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (request_id, partner_id)
		DO UPDATE SET reason = $3, note = $4, rejected_at = $5
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		rejection.RequestID,
		rejection.PartnerID,
		rejection.Reason,
		rejection.Note,
		rejection.RejectedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record rejection: %w", err)
	}
	return nil
}

// RejectedPartnerIDs lists partners with a rejection against the request
// newer than since.
func (r *RequestRepo) RejectedPartnerIDs(ctx context.Context, requestID string, since time.Time) ([]string, error) {
	query := `
		SELECT partner_id
		FROM request_rejections
		WHERE request_id = $1
		  AND rejected_at > $2
	`

	ids := []string{}
	if err := r.db.SelectContext(ctx, &ids, query, requestID, since); err != nil {
		return nil, fmt.Errorf("failed to list rejections: %w", err)
	}
	return ids, nil
}

// PurgeRejectionsBefore deletes rejection records older than the cutoff.
func (r *RequestRepo) PurgeRejectionsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := `DELETE FROM request_rejections WHERE rejected_at < $1`

	result, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge rejections: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count purged rejections: %w", err)
	}
	return rows, nil
}
