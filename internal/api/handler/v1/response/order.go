package response

type DeliveryEstimateResponse struct {
	Estimate   string  `json:"estimate"`
	Confidence float64 `json:"confidence"`
}
