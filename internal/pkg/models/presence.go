package models

import "time"

// Role identifies the declared role of a connected user.
type Role string

const (
	RoleCustomer Role = "customer"
	RolePartner  Role = "partner"
	RoleAdmin    Role = "admin"
)

// PresenceStatus is the availability state of an online partner. It is kept
// consistent with the lifecycle of any request assigned to the partner.
type PresenceStatus string

const (
	PresenceAvailable PresenceStatus = "available"
	PresenceBusy      PresenceStatus = "busy"
	PresenceOffline   PresenceStatus = "offline"
)

// Presence is the ephemeral connection and physical state of an online user.
// It is never persisted; a process restart loses all presence and relies on
// clients re-announcing themselves.
type Presence struct {
	UserID    string         `json:"user_id"`
	SessionID string         `json:"session_id"`
	Role      Role           `json:"role"`
	Latitude  float64        `json:"latitude"`
	Longitude float64        `json:"longitude"`
	Bearing   float64        `json:"bearing,omitempty"`
	Speed     float64        `json:"speed,omitempty"`
	Status    PresenceStatus `json:"status"`
	Name      string         `json:"name,omitempty"`
	Phone     string         `json:"phone,omitempty"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NearbyPartner is a matching candidate with its computed distance from the
// query origin.
type NearbyPartner struct {
	PartnerID  string  `json:"partner_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	DistanceKm float64 `json:"distance_km"`
	Name       string  `json:"name,omitempty"`
	Phone      string  `json:"phone,omitempty"`
}
