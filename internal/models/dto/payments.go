package dto

// CreateIntentRequest carries the cart total in major units; the processor is
// charged in minor units (price * 100).
type CreateIntentRequest struct {
	Price float64 `json:"price"`
}

type CreateIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// AdminStats is the dashboard summary: document counts plus revenue summed
// over all recorded payments.
type AdminStats struct {
	Users    int64   `json:"users"`
	Products int64   `json:"products"`
	Orders   int64   `json:"orders"`
	Revenue  float64 `json:"revenue"`
}
