package models

import "time"

// Rejection records that a partner declined or was skipped for a request.
// The (RequestID, PartnerID) pair is unique; a repeated rejection refreshes
// RejectedAt instead of creating a second record.
type Rejection struct {
	RequestID  string    `json:"request_id" db:"request_id"`
	PartnerID  string    `json:"partner_id" db:"partner_id"`
	Reason     string    `json:"reason" db:"reason"`
	Note       string    `json:"note,omitempty" db:"note"`
	RejectedAt time.Time `json:"rejected_at" db:"rejected_at"`
}
