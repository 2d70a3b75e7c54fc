package presence

import (
	"testing"
	"time"

	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func partnerAt(id string, lat, lng float64, status models.PresenceStatus) models.Presence {
	return models.Presence{
		UserID:    id,
		SessionID: "sess-" + id,
		Role:      models.RolePartner,
		Latitude:  lat,
		Longitude: lng,
		Status:    status,
		UpdatedAt: time.Now(),
	}
}

func TestRegistry_SetGetDelete(t *testing.T) {
	r := NewRegistry()

	p := partnerAt("p1", 23.8103, 90.4125, models.PresenceAvailable)
	r.Set(p)

	got, ok := r.Get("p1")
	assert.True(t, ok)
	assert.Equal(t, p.UserID, got.UserID)
	assert.Equal(t, models.PresenceAvailable, got.Status)

	r.Delete("p1")
	_, ok = r.Get("p1")
	assert.False(t, ok)
}

func TestRegistry_SetOverwritesAndRebuckets(t *testing.T) {
	r := NewRegistry()

	r.Set(partnerAt("p1", 23.8103, 90.4125, models.PresenceAvailable))
	// Move the partner well outside the original cell
	r.Set(partnerAt("p1", 24.9000, 91.8000, models.PresenceAvailable))

	near := r.QueryWithinRadius(23.8103, 90.4125, 1.0, Filter{Role: models.RolePartner})
	assert.Empty(t, near)

	far := r.QueryWithinRadius(24.9000, 91.8000, 1.0, Filter{Role: models.RolePartner})
	assert.Len(t, far, 1)
}

func TestRegistry_QueryWithinRadius_FiltersByDistance(t *testing.T) {
	r := NewRegistry()

	r.Set(partnerAt("near", 23.8150, 90.4130, models.PresenceAvailable))  // ~0.53 km
	r.Set(partnerAt("far", 23.9000, 90.5000, models.PresenceAvailable))   // ~13 km

	got := r.QueryWithinRadius(23.8103, 90.4125, 1.0, Filter{Role: models.RolePartner})

	assert.Len(t, got, 1)
	assert.Equal(t, "near", got[0].UserID)
}

func TestRegistry_QueryWithinRadius_FiltersByRoleAndStatus(t *testing.T) {
	r := NewRegistry()

	r.Set(partnerAt("avail", 23.8110, 90.4126, models.PresenceAvailable))
	r.Set(partnerAt("busy", 23.8111, 90.4127, models.PresenceBusy))
	r.Set(models.Presence{
		UserID:    "cust",
		Role:      models.RoleCustomer,
		Latitude:  23.8112,
		Longitude: 90.4128,
		UpdatedAt: time.Now(),
	})

	got := r.QueryWithinRadius(23.8103, 90.4125, 1.0, Filter{
		Role:   models.RolePartner,
		Status: models.PresenceAvailable,
	})

	assert.Len(t, got, 1)
	assert.Equal(t, "avail", got[0].UserID)

	customers := r.QueryWithinRadius(23.8103, 90.4125, 1.0, Filter{Role: models.RoleCustomer})
	assert.Len(t, customers, 1)
	assert.Equal(t, "cust", customers[0].UserID)
}

func TestRegistry_QueryWithinRadius_EmptyNeverNil(t *testing.T) {
	r := NewRegistry()

	got := r.QueryWithinRadius(23.8103, 90.4125, 1.0, Filter{})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRegistry_LargeRadiusFallsBackToFullScan(t *testing.T) {
	r := NewRegistry()

	r.Set(partnerAt("p1", 23.8103, 90.4125, models.PresenceAvailable))
	r.Set(partnerAt("p2", 23.9000, 90.5000, models.PresenceAvailable))

	got := r.QueryWithinRadius(23.8103, 90.4125, 50.0, Filter{Role: models.RolePartner})
	assert.Len(t, got, 2)
}
