// Package presence holds the ephemeral registry of connected users. The
// registry is owned exclusively by the real-time gateway: only the gateway
// mutates it, every other component reads through the Reader view. Entries
// are never persisted; a restart loses all presence and clients re-announce.
package presence

import (
	"sync"
	"time"

	"github.com/footmanhq/dispatch/internal/pkg/geo"
	"github.com/footmanhq/dispatch/internal/pkg/models"
)

// Filter narrows a radius query. Zero values match everything.
type Filter struct {
	Role   models.Role
	Status models.PresenceStatus
}

// Reader is the read-only view handed to components that must not mutate
// presence, such as the matching component.
type Reader interface {
	Get(userID string) (models.Presence, bool)
	QueryWithinRadius(lat, lng, radiusKm float64, filter Filter) []models.Presence
}

// Registry is the full presence surface, mutations included. An alternative
// backing store can be substituted behind this interface without touching
// the gateway logic.
type Registry interface {
	Reader
	Set(p models.Presence)
	Delete(userID string)
}

// memoryRegistry is the in-memory implementation, bucketed by geohash cell so
// radius queries scan only the cells covering the query circle.
type memoryRegistry struct {
	mu      sync.RWMutex
	entries map[string]models.Presence
	cells   map[string]map[string]struct{}
}

// NewRegistry creates an empty in-memory registry.
func NewRegistry() Registry {
	return &memoryRegistry{
		entries: make(map[string]models.Presence),
		cells:   make(map[string]map[string]struct{}),
	}
}

func (r *memoryRegistry) Get(userID string) (models.Presence, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.entries[userID]
	return p, ok
}

func (r *memoryRegistry) Set(p models.Presence) {
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.entries[p.UserID]; ok {
		r.removeFromCell(prev)
	}

	r.entries[p.UserID] = p

	cell := geo.Cell(p.Latitude, p.Longitude)
	if r.cells[cell] == nil {
		r.cells[cell] = make(map[string]struct{})
	}
	r.cells[cell][p.UserID] = struct{}{}
}

func (r *memoryRegistry) Delete(userID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.entries[userID]; ok {
		r.removeFromCell(prev)
		delete(r.entries, userID)
	}
}

// removeFromCell must be called with the write lock held.
func (r *memoryRegistry) removeFromCell(p models.Presence) {
	cell := geo.Cell(p.Latitude, p.Longitude)
	if members, ok := r.cells[cell]; ok {
		delete(members, p.UserID)
		if len(members) == 0 {
			delete(r.cells, cell)
		}
	}
}

func (r *memoryRegistry) QueryWithinRadius(lat, lng, radiusKm float64, filter Filter) []models.Presence {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Covering cells bound the scan only while the radius fits inside one
	// cell step; beyond that fall back to a full scan.
	out := make([]models.Presence, 0)
	if radiusKm <= geo.CellSpanKm {
		for _, cell := range geo.CoveringCells(lat, lng) {
			for userID := range r.cells[cell] {
				if p, ok := r.entries[userID]; ok && r.matches(p, lat, lng, radiusKm, filter) {
					out = append(out, p)
				}
			}
		}
		return out
	}

	for _, p := range r.entries {
		if r.matches(p, lat, lng, radiusKm, filter) {
			out = append(out, p)
		}
	}
	return out
}

func (r *memoryRegistry) matches(p models.Presence, lat, lng, radiusKm float64, filter Filter) bool {
	if filter.Role != "" && p.Role != filter.Role {
		return false
	}
	if filter.Status != "" && p.Status != filter.Status {
		return false
	}
	return geo.Within(p.Latitude, p.Longitude, lat, lng, radiusKm)
}
