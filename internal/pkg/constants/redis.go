package constants

// Redis key formats
const (
	// Gateway pair cache
	KeyRequestPair = "request:pair:%s" // Format: request:pair:{request_id}
)

// Redis hash fields
const (
	FieldCustomerID = "customer_id"
	FieldPartnerID  = "partner_id"
)
