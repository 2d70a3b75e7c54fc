package request

import "errors"

var (
	// ErrInvalidTransition is returned when a lifecycle or settlement guard
	// rejects a transition attempt. No state is mutated.
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrAlreadyAccepted is returned to the losing partner when two partners
	// race to accept the same request.
	ErrAlreadyAccepted = errors.New("request already accepted")

	// ErrSettlementLocked means another settlement operation holds the
	// payment lock. Callers re-drive idempotently instead of treating this
	// as fatal.
	ErrSettlementLocked = errors.New("settlement operation in progress")

	// ErrNotFound is returned when the request id resolves to nothing.
	ErrNotFound = errors.New("request not found")

	// ErrMalformedInput is returned for missing or placeholder identifiers.
	ErrMalformedInput = errors.New("malformed input")

	// ErrPartnerOutOfRange means the accepting partner is no longer within
	// the service radius at accept time.
	ErrPartnerOutOfRange = errors.New("partner outside service radius")
)
