package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/request"
)

func settlingRequest(id uuid.UUID, status models.SettlementStatus) *models.Request {
	partnerID := "partner-1"
	req := searchingRequest(id)
	req.Status = models.RequestStatusOngoing
	req.PartnerID = &partnerID
	req.SettlementStatus = &status
	req.BasePrice = 100
	req.Commission = 10
	req.PartnerEarnings = 90
	return req
}

func TestSelectPayment_AdvancesAndRecordsMethod(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().
		GetRequest(ctx, id.String()).
		Return(settlingRequest(id, models.SettlementWaitingPayment), nil)
	f.repo.EXPECT().
		CompareAndSetSettlement(ctx, id.String(), models.SettlementWaitingPayment, false, true, models.SettlementPaymentSelected).
		Return(true, nil)
	f.repo.EXPECT().
		CompareAndSetSettlement(ctx, id.String(), models.SettlementPaymentSelected, true, false, models.SettlementPaymentSelected).
		Return(true, nil)
	f.repo.EXPECT().SetPaymentMethod(ctx, id.String(), "cash").Return(nil)
	f.gw.EXPECT().NotifyUser(ctx, gomock.Any()).Return(nil)

	got, err := f.uc.SelectPayment(ctx, id.String(), "cash")

	assert.NoError(t, err)
	assert.Equal(t, models.SettlementPaymentSelected, *got.SettlementStatus)
	assert.Equal(t, "cash", got.PaymentMethod)
	assert.False(t, got.PaymentLock)
}

func TestSelectPayment_RedriveIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	// Already selected: no swap, no method overwrite, no notification.
	f.repo.EXPECT().
		GetRequest(ctx, id.String()).
		Return(settlingRequest(id, models.SettlementPaymentSelected), nil)

	got, err := f.uc.SelectPayment(ctx, id.String(), "card")

	assert.NoError(t, err)
	assert.Equal(t, models.SettlementPaymentSelected, *got.SettlementStatus)
}

func TestSelectPayment_BeforeSettlementOpens(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	req := settlingRequest(id, models.SettlementWaitingPayment)
	req.SettlementStatus = nil

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(req, nil)

	_, err := f.uc.SelectPayment(ctx, id.String(), "cash")
	assert.ErrorIs(t, err, request.ErrInvalidTransition)
}

func TestSelectPayment_LockContention(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().
		GetRequest(ctx, id.String()).
		Return(settlingRequest(id, models.SettlementWaitingPayment), nil)
	f.repo.EXPECT().
		CompareAndSetSettlement(ctx, id.String(), models.SettlementWaitingPayment, false, true, models.SettlementPaymentSelected).
		Return(false, nil)

	_, err := f.uc.SelectPayment(ctx, id.String(), "cash")
	assert.ErrorIs(t, err, request.ErrSettlementLocked)
}

func TestConfirmPayment_DrivesChainToCompletion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	completed := settlingRequest(id, models.SettlementFullyCompleted)
	completed.Status = models.RequestStatusCompleted

	gomock.InOrder(
		f.repo.EXPECT().
			GetRequest(ctx, id.String()).
			Return(settlingRequest(id, models.SettlementPaymentSelected), nil),
		f.repo.EXPECT().
			CompareAndSetSettlement(ctx, id.String(), models.SettlementPaymentSelected, false, true, models.SettlementPaymentConfirmed).
			Return(true, nil),
		f.repo.EXPECT().
			CompareAndSetSettlement(ctx, id.String(), models.SettlementPaymentConfirmed, true, false, models.SettlementPaymentConfirmed).
			Return(true, nil),
		f.repo.EXPECT().
			GetRequest(ctx, id.String()).
			Return(settlingRequest(id, models.SettlementPaymentConfirmed), nil),
		f.repo.EXPECT().
			CompareAndSetSettlement(ctx, id.String(), models.SettlementPaymentConfirmed, false, true, models.SettlementFullyCompleted).
			Return(true, nil),
		f.repo.EXPECT().
			CompareAndSetSettlement(ctx, id.String(), models.SettlementFullyCompleted, true, false, models.SettlementFullyCompleted).
			Return(true, nil),
		f.repo.EXPECT().CompleteRequest(ctx, id.String(), testTime).Return(nil),
		f.repo.EXPECT().GetRequest(ctx, id.String()).Return(completed, nil),
	)

	// One announcement to the customer, one earnings push to the partner.
	notified := []string{}
	f.gw.EXPECT().
		NotifyUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.PushNotification) error {
			notified = append(notified, n.UserID)
			return nil
		}).
		Times(2)

	got, err := f.uc.ConfirmPayment(ctx, id.String())

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, got.Status)
	assert.Equal(t, models.SettlementFullyCompleted, *got.SettlementStatus)
	assert.Equal(t, []string{"cust-1", "partner-1"}, notified)
}

func TestConfirmPayment_RedriveFiresNoSideEffects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	done := settlingRequest(id, models.SettlementFullyCompleted)
	done.Status = models.RequestStatusCompleted

	// Both advances find the chain at its end: no swaps, no completion, no
	// second earnings announcement.
	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(done, nil).Times(2)

	got, err := f.uc.ConfirmPayment(ctx, id.String())

	assert.NoError(t, err)
	assert.Equal(t, models.SettlementFullyCompleted, *got.SettlementStatus)
}

func TestConfirmPayment_BeforeSelection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	// Skipping payment_selected is not allowed.
	f.repo.EXPECT().
		GetRequest(ctx, id.String()).
		Return(settlingRequest(id, models.SettlementWaitingPayment), nil)

	_, err := f.uc.ConfirmPayment(ctx, id.String())
	assert.ErrorIs(t, err, request.ErrInvalidTransition)
}

// Regression for concurrent confirmations: the loser of the lock swap backs
// off with ErrSettlementLocked and a later re-drive sees the advanced state
// and does nothing, so completion side effects cannot double-fire.
func TestConfirmPayment_ConcurrentConfirmationLoserBacksOff(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().
		GetRequest(ctx, id.String()).
		Return(settlingRequest(id, models.SettlementPaymentSelected), nil)
	f.repo.EXPECT().
		CompareAndSetSettlement(ctx, id.String(), models.SettlementPaymentSelected, false, true, models.SettlementPaymentConfirmed).
		Return(false, nil)

	_, err := f.uc.ConfirmPayment(ctx, id.String())
	assert.ErrorIs(t, err, request.ErrSettlementLocked)

	// Re-drive after the winner finished.
	done := settlingRequest(id, models.SettlementFullyCompleted)
	done.Status = models.RequestStatusCompleted
	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(done, nil).Times(2)

	got, err := f.uc.ConfirmPayment(ctx, id.String())
	assert.NoError(t, err)
	assert.Equal(t, models.SettlementFullyCompleted, *got.SettlementStatus)
}

// Regression for a duplicate confirmation whose read lands before the
// winner's swap but whose swap lands after the winner released the lock. The
// lock alone would match again at that point; the state guard in the same
// conditional update is what makes the stale writer fail instead of
// rewinding a finished settlement and re-announcing earnings.
func TestConfirmPayment_StaleReadCannotRewindFinishedSettlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	// The duplicate read payment_selected before the winner ran. By swap
	// time the row is fully_completed with the lock released, so the state
	// guard fails the update even though the lock value matches.
	f.repo.EXPECT().
		GetRequest(ctx, id.String()).
		Return(settlingRequest(id, models.SettlementPaymentSelected), nil)
	f.repo.EXPECT().
		CompareAndSetSettlement(ctx, id.String(), models.SettlementPaymentSelected, false, true, models.SettlementPaymentConfirmed).
		Return(false, nil)

	_, err := f.uc.ConfirmPayment(ctx, id.String())
	assert.ErrorIs(t, err, request.ErrSettlementLocked)

	// A fresh re-drive sees the finished chain and fires nothing: no
	// swaps, no CompleteRequest, no second earnings push.
	done := settlingRequest(id, models.SettlementFullyCompleted)
	done.Status = models.RequestStatusCompleted
	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(done, nil).Times(2)

	got, err := f.uc.ConfirmPayment(ctx, id.String())
	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCompleted, got.Status)
	assert.Equal(t, models.SettlementFullyCompleted, *got.SettlementStatus)
}
