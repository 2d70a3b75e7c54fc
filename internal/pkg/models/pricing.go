package models

// Quote is the immutable commercial outcome of pricing one request.
type Quote struct {
	DistanceKm      float64 `json:"distance_km"`
	BasePrice       float64 `json:"base_price"`
	CommissionRate  float64 `json:"commission_rate"`
	Commission      float64 `json:"commission"`
	PartnerEarnings float64 `json:"partner_earnings"`
}
