package models

import (
	"encoding/json"

	"github.com/gorilla/websocket"
)

// WSMessage represents a WebSocket message structure
type WSMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// WSErrorMessage represents an error message sent over WebSocket
type WSErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WebSocketClient represents a connected WebSocket client
type WebSocketClient struct {
	UserID    string
	SessionID string
	Role      Role
	Conn      *websocket.Conn
}

// AuthenticateRequest binds a transport session to a user id and role.
// Latitude/longitude are optional and seed the presence entry when present.
type AuthenticateRequest struct {
	UserID    string   `json:"userId"`
	UserType  Role     `json:"userType"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// AuthenticatedResponse acknowledges a successful session binding.
type AuthenticatedResponse struct {
	UserID    string `json:"userId"`
	UserType  Role   `json:"userType"`
	SessionID string `json:"sessionId"`
}

// PartnerLocationUpdate is a partner's periodic location/status report.
type PartnerLocationUpdate struct {
	PartnerID string          `json:"partnerId"`
	Latitude  float64         `json:"latitude"`
	Longitude float64         `json:"longitude"`
	Bearing   float64         `json:"bearing,omitempty"`
	Speed     float64         `json:"speed,omitempty"`
	RequestID string          `json:"requestId,omitempty"`
	Status    PresenceStatus  `json:"status,omitempty"`
}

// CustomerLocationUpdate is a customer's location report.
type CustomerLocationUpdate struct {
	CustomerID string  `json:"customerId"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

// PartnerStatusUpdate changes a partner's availability.
type PartnerStatusUpdate struct {
	PartnerID string         `json:"partnerId"`
	Status    PresenceStatus `json:"status"`
}

// RequestStatusUpdate fans a lifecycle change out to the interested parties.
// CustomerID/PartnerID are optional hints; the gateway resolves the pair
// itself when they are absent.
type RequestStatusUpdate struct {
	RequestID  string        `json:"requestId"`
	Status     RequestStatus `json:"status"`
	CustomerID string        `json:"customerId,omitempty"`
	PartnerID  string        `json:"partnerId,omitempty"`
}

// SetupTrackingRequest joins a customer and partner session into a shared
// request room for the duration of one request.
type SetupTrackingRequest struct {
	RequestID  string `json:"requestId"`
	CustomerID string `json:"customerId"`
	PartnerID  string `json:"partnerId"`
}

// PaymentUpdate is the settlement relay payload for selection/confirmation.
type PaymentUpdate struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status"`
	Method    string `json:"method"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// RequestUpdateEvent is the outbound request_update payload. PartnerID is
// cleared whenever the request is back in a searching state so clients never
// display a stale partner.
type RequestUpdateEvent struct {
	RequestID string        `json:"requestId"`
	Status    RequestStatus `json:"status"`
	PartnerID string        `json:"partnerId,omitempty"`
}

// TrackingStartedEvent acknowledges a request room join.
type TrackingStartedEvent struct {
	RequestID string `json:"requestId"`
}

// PartnerOfflineEvent announces a partner's disappearance to nearby customers.
type PartnerOfflineEvent struct {
	PartnerID string `json:"partnerId"`
}
