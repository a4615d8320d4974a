package partnerservice

// Customer модель клиента из PartnerService
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	TaxID string `json:"tax_id,omitempty"`
}

// ErrorResponse модель ошибки от PartnerService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
