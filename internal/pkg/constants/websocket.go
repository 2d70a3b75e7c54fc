package constants

// Inbound WebSocket event types. The set is closed: the gateway dispatches
// through a single exhaustive switch and anything else is answered with an
// invalid_format error.
const (
	EventAuthenticate           = "authenticate"
	EventPartnerLocationUpdate  = "partner_location_update"
	EventCustomerLocationUpdate = "customer_location_update"
	EventPartnerStatusUpdate    = "partner_status_update"
	EventRequestStatusUpdate    = "request_status_update"
	EventSetupTracking          = "setup_tracking"
	EventPaymentUpdate          = "payment_update"
	EventPaymentConfirmation    = "payment_confirmation"
)

// Outbound WebSocket event types
const (
	EventError                = "error"
	EventAuthenticated        = "authenticated"
	EventAuthError            = "auth_error"
	EventInitialFootmen       = "initial_footmen"
	EventNearbyFootmenUpdate  = "nearby_footmen_update"
	EventRequestUpdate        = "request_update"
	EventTrackingStarted      = "tracking_started"
	EventPartnerLocation      = "partner_location"
	EventPartnerStatusChanged = "partner_status_changed"
	EventFootmanOffline       = "footman_offline"
)

// WebSocket error codes
const (
	ErrorInvalidFormat      = "invalid_format"
	ErrorUnauthorized       = "unauthorized"
	ErrorInvalidLocation    = "invalid_location"
	ErrorPairUnresolved     = "pair_unresolved"
	ErrorInvalidTransition  = "invalid_transition"
	ErrorInternalError      = "internal_error"
)
