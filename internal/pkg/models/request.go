package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle status of a service request
type RequestStatus string

const (
	RequestStatusSearching       RequestStatus = "searching"
	RequestStatusSearchingBroad  RequestStatus = "searching_after_forward"
	RequestStatusAccepted        RequestStatus = "accepted_by_partner"
	RequestStatusOngoing         RequestStatus = "ongoing"
	RequestStatusCompleted       RequestStatus = "completed"
	RequestStatusCancelled       RequestStatus = "cancelled"
)

// Terminal reports whether the status is a terminal lifecycle state.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusCompleted || s == RequestStatusCancelled
}

// Searching reports whether the status is one of the searching variants.
func (s RequestStatus) Searching() bool {
	return s == RequestStatusSearching || s == RequestStatusSearchingBroad
}

// SettlementStatus represents the payment flow nested inside a request.
// Transitions are strictly linear; see services/request.
type SettlementStatus string

const (
	SettlementWaitingPayment   SettlementStatus = "waiting_payment"
	SettlementPaymentSelected  SettlementStatus = "payment_selected"
	SettlementPaymentConfirmed SettlementStatus = "payment_confirmed"
	SettlementFullyCompleted   SettlementStatus = "fully_completed"
)

// Rank returns the position of the settlement state in the linear chain,
// starting at 1 for waiting_payment. Unknown states rank 0.
func (s SettlementStatus) Rank() int {
	switch s {
	case SettlementWaitingPayment:
		return 1
	case SettlementPaymentSelected:
		return 2
	case SettlementPaymentConfirmed:
		return 3
	case SettlementFullyCompleted:
		return 4
	}
	return 0
}

// Request links a customer to at most one partner for a single unit of work.
// Commercial fields are derived once at creation and never change.
type Request struct {
	ID               uuid.UUID         `json:"request_id" db:"id"`
	RequestNumber    string            `json:"request_number" db:"request_number"`
	CustomerID       string            `json:"customer_id" db:"customer_id"`
	PartnerID        *string           `json:"partner_id" db:"partner_id"`
	PickupLatitude   float64           `json:"pickup_latitude" db:"pickup_latitude"`
	PickupLongitude  float64           `json:"pickup_longitude" db:"pickup_longitude"`
	DistanceKm       float64           `json:"distance_km" db:"distance_km"`
	BasePrice        float64           `json:"base_price" db:"base_price"`
	Commission       float64           `json:"commission" db:"commission"`
	PartnerEarnings  float64           `json:"partner_earnings" db:"partner_earnings"`
	Status           RequestStatus     `json:"status" db:"status"`
	SettlementStatus *SettlementStatus `json:"settlement_status,omitempty" db:"settlement_status"`
	PaymentLock      bool              `json:"-" db:"payment_lock"`
	PaymentMethod    string            `json:"payment_method,omitempty" db:"payment_method"`
	CreatedAt        time.Time         `json:"created_at" db:"created_at"`
	AcceptedAt       *time.Time        `json:"accepted_at,omitempty" db:"accepted_at"`
	CompletedAt      *time.Time        `json:"completed_at,omitempty" db:"completed_at"`
	CancelledAt      *time.Time        `json:"cancelled_at,omitempty" db:"cancelled_at"`
}

// RequestPair is the resolved customer/partner pairing for a request.
type RequestPair struct {
	RequestID  string `json:"request_id"`
	CustomerID string `json:"customer_id"`
	PartnerID  string `json:"partner_id"`
}

// ActiveRequest is the snapshot replayed to a reconnecting customer for each
// of its requests still in a non-terminal state.
type ActiveRequest struct {
	RequestID    string        `json:"request_id" db:"id"`
	Status       RequestStatus `json:"status" db:"status"`
	PartnerID    *string       `json:"partner_id" db:"partner_id"`
	PartnerName  string        `json:"partner_name,omitempty" db:"partner_name"`
	PartnerPhone string        `json:"partner_phone,omitempty" db:"partner_phone"`
}
