package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/matching"
	"github.com/footmanhq/dispatch/services/presence"
	"github.com/footmanhq/dispatch/services/request"
	"github.com/footmanhq/dispatch/services/request/mocks"
)

var testTime = time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

type ucFixture struct {
	uc       *requestUC
	repo     *mocks.MockRequestRepo
	gw       *mocks.MockRequestGW
	matcher  *mocks.MockMatcher
	registry presence.Registry
}

func newFixture(t *testing.T) *ucFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockRequestRepo(ctrl)
	gw := mocks.NewMockRequestGW(ctrl)
	matcher := mocks.NewMockMatcher(ctrl)
	registry := presence.NewRegistry()

	cfg := &models.Config{
		Match: models.MatchConfig{
			ServiceRadiusKm:   1.0,
			CandidateLimit:    10,
			RejectionCooldown: 900,
		},
		Pricing: models.PricingConfig{CommissionRate: 0.10},
	}

	return &ucFixture{
		uc: &requestUC{
			cfg:      cfg,
			repo:     repo,
			gw:       gw,
			matcher:  matcher,
			presence: registry,
			now:      func() time.Time { return testTime },
		},
		repo:     repo,
		gw:       gw,
		matcher:  matcher,
		registry: registry,
	}
}

// The canonical flow: customer at Gulshan, partner ~0.53 km away. The tier
// price is 100, commission 10 and partner earnings 90.
func TestCreateRequest_PricesFromNearestPartner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	nearest := models.NearbyPartner{
		PartnerID: "partner-1", DistanceKm: 0.53,
		Latitude: 23.8150, Longitude: 90.4130,
	}
	f.matcher.EXPECT().
		FindNearest(ctx, "", 23.8103, 90.4125, 1.0).
		Return(nearest, nil)
	f.matcher.EXPECT().
		ValidateDistance(23.8103, 90.4125, 23.8150, 90.4130).
		Return(0.53, nil)

	var created *models.Request
	f.repo.EXPECT().
		CreateRequest(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req *models.Request) error {
			created = req
			return nil
		})

	f.matcher.EXPECT().
		FindNearby(ctx, gomock.Any(), 23.8103, 90.4125, 1.0, 10).
		Return([]models.NearbyPartner{nearest}, nil)
	f.gw.EXPECT().NotifyUser(ctx, gomock.Any()).Return(nil)

	req, candidates, err := f.uc.CreateRequest(ctx, "cust-1", 23.8103, 90.4125)

	assert.NoError(t, err)
	assert.Same(t, created, req)
	assert.Equal(t, models.RequestStatusSearching, req.Status)
	assert.Equal(t, 100.0, req.BasePrice)
	assert.Equal(t, 10.0, req.Commission)
	assert.Equal(t, 90.0, req.PartnerEarnings)
	assert.Equal(t, req.BasePrice, req.Commission+req.PartnerEarnings)
	assert.Nil(t, req.PartnerID)
	assert.Len(t, candidates, 1)
}

func TestCreateRequest_NoPartnerAvailable(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.matcher.EXPECT().
		FindNearest(ctx, "", 23.8103, 90.4125, 1.0).
		Return(models.NearbyPartner{}, assert.AnError)

	_, _, err := f.uc.CreateRequest(ctx, "cust-1", 23.8103, 90.4125)
	assert.Error(t, err)
}

// The priced distance runs through the radius check, so geometry beyond the
// service area fails creation with a distinct condition instead of producing
// a quote for an unservable request.
func TestCreateRequest_DistanceExceeded(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	nearest := models.NearbyPartner{
		PartnerID: "partner-1",
		Latitude:  23.9000, Longitude: 90.5000,
	}
	f.matcher.EXPECT().
		FindNearest(ctx, "", 23.8103, 90.4125, 1.0).
		Return(nearest, nil)
	f.matcher.EXPECT().
		ValidateDistance(23.8103, 90.4125, 23.9000, 90.5000).
		Return(13.4, matching.ErrDistanceExceeded)

	_, _, err := f.uc.CreateRequest(ctx, "cust-1", 23.8103, 90.4125)
	assert.ErrorIs(t, err, matching.ErrDistanceExceeded)
}

func TestCreateRequest_PlaceholderCustomerID(t *testing.T) {
	f := newFixture(t)

	for _, id := range []string{"", "undefined", "null", "  "} {
		_, _, err := f.uc.CreateRequest(context.Background(), id, 23.8103, 90.4125)
		assert.ErrorIs(t, err, request.ErrMalformedInput)
	}
}

func searchingRequest(id uuid.UUID) *models.Request {
	return &models.Request{
		ID:              id,
		CustomerID:      "cust-1",
		PickupLatitude:  23.8103,
		PickupLongitude: 90.4125,
		Status:          models.RequestStatusSearching,
		BasePrice:       100,
		CreatedAt:       testTime,
	}
}

func TestAcceptRequest_Success(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	// Partner is ~0.53 km from the pickup, inside the service radius.
	f.registry.Set(models.Presence{
		UserID: "partner-1", Role: models.RolePartner,
		Latitude: 23.8150, Longitude: 90.4130,
		Status: models.PresenceAvailable,
	})

	partnerID := "partner-1"
	accepted := searchingRequest(id)
	accepted.Status = models.RequestStatusAccepted
	accepted.PartnerID = &partnerID

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(searchingRequest(id), nil)
	f.repo.EXPECT().AcceptRequest(ctx, id.String(), "partner-1", testTime).Return(nil)
	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(accepted, nil)
	f.gw.EXPECT().NotifyUser(ctx, gomock.Any()).Return(nil)

	got, err := f.uc.AcceptRequest(ctx, id.String(), "partner-1")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusAccepted, got.Status)
	assert.Equal(t, "partner-1", *got.PartnerID)
}

func TestAcceptRequest_LoserGetsAlreadyAccepted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.registry.Set(models.Presence{
		UserID: "partner-2", Role: models.RolePartner,
		Latitude: 23.8150, Longitude: 90.4130,
		Status: models.PresenceAvailable,
	})

	// The row was claimed between the read and the conditional update.
	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(searchingRequest(id), nil)
	f.repo.EXPECT().
		AcceptRequest(ctx, id.String(), "partner-2", testTime).
		Return(request.ErrAlreadyAccepted)

	_, err := f.uc.AcceptRequest(ctx, id.String(), "partner-2")
	assert.ErrorIs(t, err, request.ErrAlreadyAccepted)
}

func TestAcceptRequest_AssignedIsAlreadyAccepted(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	partnerID := "partner-1"
	taken := searchingRequest(id)
	taken.Status = models.RequestStatusAccepted
	taken.PartnerID = &partnerID

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(taken, nil)

	_, err := f.uc.AcceptRequest(ctx, id.String(), "partner-2")
	assert.ErrorIs(t, err, request.ErrAlreadyAccepted)
}

func TestAcceptRequest_PartnerOutOfRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	// ~13 km away: the offer lapsed when the partner moved.
	f.registry.Set(models.Presence{
		UserID: "partner-1", Role: models.RolePartner,
		Latitude: 23.9000, Longitude: 90.5000,
		Status: models.PresenceAvailable,
	})

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(searchingRequest(id), nil)

	_, err := f.uc.AcceptRequest(ctx, id.String(), "partner-1")
	assert.ErrorIs(t, err, request.ErrPartnerOutOfRange)
}

func TestAcceptRequest_NoPresenceIsOutOfRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(searchingRequest(id), nil)

	_, err := f.uc.AcceptRequest(ctx, id.String(), "partner-ghost")
	assert.ErrorIs(t, err, request.ErrPartnerOutOfRange)
}

func TestRejectRequest_LastRejecterWidensSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(searchingRequest(id), nil)
	f.repo.EXPECT().
		UpsertRejection(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, rej *models.Rejection) error {
			assert.Equal(t, id.String(), rej.RequestID)
			assert.Equal(t, "partner-1", rej.PartnerID)
			assert.Equal(t, testTime, rej.RejectedAt)
			return nil
		})
	f.matcher.EXPECT().
		FindNearby(ctx, id.String(), 23.8103, 90.4125, 1.0, 10).
		Return([]models.NearbyPartner{}, nil)
	f.repo.EXPECT().MarkSearchingBroad(ctx, id.String()).Return(nil)
	f.gw.EXPECT().NotifyUser(ctx, gomock.Any()).Return(nil)

	err := f.uc.RejectRequest(ctx, id.String(), "partner-1", "too_far", "")
	assert.NoError(t, err)
}

func TestRejectRequest_CandidatesRemain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(searchingRequest(id), nil)
	f.repo.EXPECT().UpsertRejection(ctx, gomock.Any()).Return(nil)
	f.matcher.EXPECT().
		FindNearby(ctx, id.String(), 23.8103, 90.4125, 1.0, 10).
		Return([]models.NearbyPartner{{PartnerID: "partner-2"}}, nil)

	err := f.uc.RejectRequest(ctx, id.String(), "partner-1", "busy", "")
	assert.NoError(t, err)
}

func TestRejectRequest_AfterAcceptanceOnlyRecords(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	partnerID := "partner-1"
	accepted := searchingRequest(id)
	accepted.Status = models.RequestStatusAccepted
	accepted.PartnerID = &partnerID

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(accepted, nil)
	f.repo.EXPECT().UpsertRejection(ctx, gomock.Any()).Return(nil)

	err := f.uc.RejectRequest(ctx, id.String(), "partner-2", "too_late", "")
	assert.NoError(t, err)
}

func TestMarkWorkDone_WrongPartner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	partnerID := "partner-1"
	ongoing := searchingRequest(id)
	ongoing.Status = models.RequestStatusOngoing
	ongoing.PartnerID = &partnerID

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(ongoing, nil)

	_, err := f.uc.MarkWorkDone(ctx, id.String(), "partner-2")
	assert.ErrorIs(t, err, request.ErrInvalidTransition)
}

func TestMarkWorkDone_OpensSettlement(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	partnerID := "partner-1"
	ongoing := searchingRequest(id)
	ongoing.Status = models.RequestStatusOngoing
	ongoing.PartnerID = &partnerID

	waiting := models.SettlementWaitingPayment
	settled := *ongoing
	settled.SettlementStatus = &waiting

	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(ongoing, nil)
	f.repo.EXPECT().BeginSettlement(ctx, id.String()).Return(nil)
	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(&settled, nil)
	f.gw.EXPECT().NotifyUser(ctx, gomock.Any()).Return(nil)

	got, err := f.uc.MarkWorkDone(ctx, id.String(), "partner-1")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusOngoing, got.Status)
	assert.Equal(t, models.SettlementWaitingPayment, *got.SettlementStatus)
}

func TestCancelRequest_NotifiesAssignedPartner(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	id := uuid.New()

	partnerID := "partner-1"
	cancelled := searchingRequest(id)
	cancelled.Status = models.RequestStatusCancelled
	cancelled.PartnerID = &partnerID

	f.repo.EXPECT().CancelRequest(ctx, id.String(), "cust-1", testTime).Return(nil)
	f.repo.EXPECT().GetRequest(ctx, id.String()).Return(cancelled, nil)
	f.gw.EXPECT().
		NotifyUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.PushNotification) error {
			assert.Equal(t, "partner-1", n.UserID)
			return nil
		})

	got, err := f.uc.CancelRequest(ctx, id.String(), "cust-1")

	assert.NoError(t, err)
	assert.Equal(t, models.RequestStatusCancelled, got.Status)
}

func TestSweepStaleSearching_CancelsAndReports(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stale := *searchingRequest(uuid.New())
	cutoff := testTime.Add(-5 * time.Minute)

	f.repo.EXPECT().
		ListByStatusOlderThan(ctx, models.RequestStatusSearching, cutoff).
		Return([]models.Request{stale}, nil)
	f.repo.EXPECT().
		ListByStatusOlderThan(ctx, models.RequestStatusSearchingBroad, cutoff).
		Return([]models.Request{}, nil)
	f.repo.EXPECT().CancelRequest(ctx, stale.ID.String(), "cust-1", testTime).Return(nil)
	f.gw.EXPECT().NotifyUser(ctx, gomock.Any()).Return(nil)

	cancelled, err := f.uc.SweepStaleSearching(ctx, 300)

	assert.NoError(t, err)
	assert.Equal(t, []string{stale.ID.String()}, cancelled)
}

func TestSweepStaleSearching_SkipsRacedRequests(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	stale := *searchingRequest(uuid.New())
	cutoff := testTime.Add(-5 * time.Minute)

	f.repo.EXPECT().
		ListByStatusOlderThan(ctx, models.RequestStatusSearching, cutoff).
		Return([]models.Request{stale}, nil)
	f.repo.EXPECT().
		ListByStatusOlderThan(ctx, models.RequestStatusSearchingBroad, cutoff).
		Return([]models.Request{}, nil)
	// Accepted between listing and cancellation: the guard rejects it.
	f.repo.EXPECT().
		CancelRequest(ctx, stale.ID.String(), "cust-1", testTime).
		Return(request.ErrInvalidTransition)

	cancelled, err := f.uc.SweepStaleSearching(ctx, 300)

	assert.NoError(t, err)
	assert.Empty(t, cancelled)
}
