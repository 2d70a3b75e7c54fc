// Package matching finds eligible partners for a request. It reads partner
// presence through the registry's read-only view and consults rejection
// records so a partner who declined a request is not offered it again within
// the cooldown window.
package matching

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/footmanhq/dispatch/internal/pkg/geo"
	"github.com/footmanhq/dispatch/internal/pkg/models"
	"github.com/footmanhq/dispatch/services/presence"
)

var (
	// ErrNoPartnerAvailable is the distinguished outcome of FindNearest when
	// no candidate qualifies. It is not an error for FindNearby, which
	// returns an empty slice instead.
	ErrNoPartnerAvailable = errors.New("no partner available within service radius")

	// ErrDistanceExceeded means the geometry lies outside the fixed service
	// radius and the request cannot be serviced.
	ErrDistanceExceeded = errors.New("distance exceeds service radius")

	// ErrMissingCoordinates means the request's own geometry cannot be
	// validated.
	ErrMissingCoordinates = errors.New("missing coordinates")
)

// RejectionStore is the slice of the persistence collaborator that matching
// needs: which partners have a live rejection against a request.
type RejectionStore interface {
	RejectedPartnerIDs(ctx context.Context, requestID string, since time.Time) ([]string, error)
}

// Matcher resolves nearby available partners for request origins.
type Matcher struct {
	presence   presence.Reader
	rejections RejectionStore
	cfg        models.MatchConfig
}

// NewMatcher creates a matching component over a read-only presence view.
func NewMatcher(reader presence.Reader, rejections RejectionStore, cfg models.MatchConfig) *Matcher {
	return &Matcher{
		presence:   reader,
		rejections: rejections,
		cfg:        cfg,
	}
}

// FindNearby returns up to limit available partners within radiusKm of the
// origin, excluding partners with a live rejection against requestID. The
// result is sorted by distance ascending, then presence freshness (most
// recent first), then partner id. An empty result is valid and never nil.
func (m *Matcher) FindNearby(ctx context.Context, requestID string, lat, lng, radiusKm float64, limit int) ([]models.NearbyPartner, error) {
	if lat == 0 && lng == 0 {
		return nil, ErrMissingCoordinates
	}
	if limit <= 0 {
		limit = m.cfg.CandidateLimit
	}

	excluded, err := m.excludedPartners(ctx, requestID)
	if err != nil {
		return nil, err
	}

	candidates := m.presence.QueryWithinRadius(lat, lng, radiusKm, presence.Filter{
		Role:   models.RolePartner,
		Status: models.PresenceAvailable,
	})

	type scored struct {
		p    models.Presence
		dist float64
	}
	scoredList := make([]scored, 0, len(candidates))
	for _, p := range candidates {
		if _, skip := excluded[p.UserID]; skip {
			continue
		}
		scoredList = append(scoredList, scored{
			p:    p,
			dist: geo.Distance(lat, lng, p.Latitude, p.Longitude),
		})
	}

	sort.Slice(scoredList, func(i, j int) bool {
		if scoredList[i].dist != scoredList[j].dist {
			return scoredList[i].dist < scoredList[j].dist
		}
		if !scoredList[i].p.UpdatedAt.Equal(scoredList[j].p.UpdatedAt) {
			return scoredList[i].p.UpdatedAt.After(scoredList[j].p.UpdatedAt)
		}
		return scoredList[i].p.UserID < scoredList[j].p.UserID
	})

	if len(scoredList) > limit {
		scoredList = scoredList[:limit]
	}

	out := make([]models.NearbyPartner, 0, len(scoredList))
	for _, s := range scoredList {
		out = append(out, models.NearbyPartner{
			PartnerID:  s.p.UserID,
			Latitude:   s.p.Latitude,
			Longitude:  s.p.Longitude,
			DistanceKm: s.dist,
			Name:       s.p.Name,
			Phone:      s.p.Phone,
		})
	}
	return out, nil
}

// FindNearest returns the single closest eligible partner. Request creation
// needs a definite decision, so an empty candidate set is surfaced as
// ErrNoPartnerAvailable rather than an empty result.
func (m *Matcher) FindNearest(ctx context.Context, requestID string, lat, lng, radiusKm float64) (models.NearbyPartner, error) {
	nearby, err := m.FindNearby(ctx, requestID, lat, lng, radiusKm, 1)
	if err != nil {
		return models.NearbyPartner{}, err
	}
	if len(nearby) == 0 {
		return models.NearbyPartner{}, ErrNoPartnerAvailable
	}
	return nearby[0], nil
}

// ValidateDistance computes the distance between two points and fails with
// ErrDistanceExceeded when it is greater than the fixed service radius. Used
// at request-creation time, before any matching attempt.
func (m *Matcher) ValidateDistance(originLat, originLng, destLat, destLng float64) (float64, error) {
	if (originLat == 0 && originLng == 0) || (destLat == 0 && destLng == 0) {
		return 0, ErrMissingCoordinates
	}

	d := geo.Distance(originLat, originLng, destLat, destLng)
	if d > m.cfg.ServiceRadiusKm {
		return d, ErrDistanceExceeded
	}
	return d, nil
}

func (m *Matcher) excludedPartners(ctx context.Context, requestID string) (map[string]struct{}, error) {
	excluded := make(map[string]struct{})
	if requestID == "" || m.rejections == nil {
		return excluded, nil
	}

	cooldown := time.Duration(m.cfg.RejectionCooldown) * time.Second
	ids, err := m.rejections.RejectedPartnerIDs(ctx, requestID, time.Now().Add(-cooldown))
	if err != nil {
		return nil, fmt.Errorf("failed to load rejections: %w", err)
	}
	for _, id := range ids {
		excluded[id] = struct{}{}
	}
	return excluded, nil
}
