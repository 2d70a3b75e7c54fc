package gateway

import (
	"github.com/footmanhq/dispatch/internal/pkg/constants"
	"github.com/footmanhq/dispatch/internal/pkg/geo"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/presence"
)

// broadcastToNearbyCustomers sends an event to every connected customer
// within the service radius of the given position. The fan-out is scoped by
// geography, never global.
func (m *Manager) broadcastToNearbyCustomers(p models.Presence, event string, data interface{}) {
	customers := m.registry.QueryWithinRadius(p.Latitude, p.Longitude, m.cfg.Match.ServiceRadiusKm, presence.Filter{
		Role: models.RoleCustomer,
	})
	for _, cust := range customers {
		m.send(cust.UserID, event, data)
	}
}

// announcePartnerOffline tells nearby customers the partner is gone so
// client maps can drop the marker.
func (m *Manager) announcePartnerOffline(p models.Presence) {
	m.broadcastToNearbyCustomers(p, constants.EventFootmanOffline, models.PartnerOfflineEvent{
		PartnerID: p.UserID,
	})
}

// nearbySnapshot lists the available partners around a point, with computed
// distances, for initial_footmen and nearby_footmen_update payloads.
func (m *Manager) nearbySnapshot(lat, lng float64) []models.NearbyPartner {
	partners := m.registry.QueryWithinRadius(lat, lng, m.cfg.Match.ServiceRadiusKm, presence.Filter{
		Role:   models.RolePartner,
		Status: models.PresenceAvailable,
	})

	out := make([]models.NearbyPartner, 0, len(partners))
	for _, p := range partners {
		out = append(out, models.NearbyPartner{
			PartnerID:  p.UserID,
			Latitude:   p.Latitude,
			Longitude:  p.Longitude,
			DistanceKm: geo.Distance(lat, lng, p.Latitude, p.Longitude),
			Name:       p.Name,
			Phone:      p.Phone,
		})
	}
	return out
}
