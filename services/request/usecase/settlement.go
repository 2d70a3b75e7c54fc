package usecase

import (
	"context"

	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/logger"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/request"
)

// advanceSettlement moves the settlement one step along its linear chain.
// The payment lock is acquired and the new state written in one conditional
// update guarded on the state the caller read, then the lock is released in
// a second. A writer whose read went stale fails the swap in the database
// rather than rewinding a settlement that has since advanced. The returned
// bool reports whether this call performed the advance: a re-drive that
// finds the state already at or past the target is a successful no-op with
// advanced=false, which is what makes downstream side effects exactly-once.
func (uc *requestUC) advanceSettlement(ctx context.Context, requestID string, target models.SettlementStatus) (*models.Request, bool, error) {
	req, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, false, err
	}
	if req.SettlementStatus == nil {
		return nil, false, request.ErrInvalidTransition
	}

	current := *req.SettlementStatus
	if current.Rank() >= target.Rank() {
		return req, false, nil
	}
	if target.Rank() != current.Rank()+1 {
		return nil, false, request.ErrInvalidTransition
	}

	swapped, err := uc.repo.CompareAndSetSettlement(ctx, requestID, current, false, true, target)
	if err != nil {
		return nil, false, err
	}
	if !swapped {
		return nil, false, request.ErrSettlementLocked
	}

	released, err := uc.repo.CompareAndSetSettlement(ctx, requestID, target, true, false, target)
	if err != nil {
		return nil, false, err
	}
	if !released {
		logger.Warn("payment lock release did not take effect",
			logger.String("request_id", requestID),
			logger.String("settlement_status", string(target)))
	}

	req.SettlementStatus = &target
	req.PaymentLock = false
	return req, true, nil
}

// SelectPayment advances settlement to payment_selected and records the
// chosen method. A repeated selection is a no-op and keeps the original
// method.
func (uc *requestUC) SelectPayment(ctx context.Context, requestID, method string) (*models.Request, error) {
	req, advanced, err := uc.advanceSettlement(ctx, requestID, models.SettlementPaymentSelected)
	if err != nil {
		return nil, err
	}
	if !advanced {
		return req, nil
	}

	if method != "" {
		if err := uc.repo.SetPaymentMethod(ctx, requestID, method); err != nil {
			return nil, err
		}
		req.PaymentMethod = method
	}

	if req.PartnerID != nil {
		uc.notify(ctx, *req.PartnerID, constants.EventPaymentUpdate, "Customer selected a payment method", map[string]any{
			"request_id": requestID,
			"status":     string(models.SettlementPaymentSelected),
			"method":     method,
		})
	}

	logger.Info("payment method selected",
		logger.String("request_id", requestID),
		logger.String("method", method))

	return req, nil
}

// ConfirmPayment drives settlement through payment_confirmed to
// fully_completed and closes the request lifecycle. The earnings
// announcement fires only on the call that actually reaches
// fully_completed; a duplicated confirmation finds the chain already
// at its end and changes nothing.
func (uc *requestUC) ConfirmPayment(ctx context.Context, requestID string) (*models.Request, error) {
	if _, _, err := uc.advanceSettlement(ctx, requestID, models.SettlementPaymentConfirmed); err != nil {
		return nil, err
	}

	req, advanced, err := uc.advanceSettlement(ctx, requestID, models.SettlementFullyCompleted)
	if err != nil {
		return nil, err
	}
	if !advanced {
		return req, nil
	}

	if err := uc.repo.CompleteRequest(ctx, requestID, uc.now()); err != nil {
		return nil, err
	}

	final, err := uc.repo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}

	uc.notify(ctx, final.CustomerID, constants.EventRequestUpdate, "Request completed", map[string]any{
		"request_id": requestID,
		"status":     string(final.Status),
		"base_price": final.BasePrice,
	})
	if final.PartnerID != nil {
		uc.notify(ctx, *final.PartnerID, constants.EventPaymentUpdate, "Payment received", map[string]any{
			"request_id": requestID,
			"earnings":   final.PartnerEarnings,
			"commission": final.Commission,
		})
	}

	logger.Info("settlement completed",
		logger.String("request_id", requestID),
		logger.Float64("base_price", final.BasePrice),
		logger.Float64("partner_earnings", final.PartnerEarnings))

	return final, nil
}
