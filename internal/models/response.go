package models

// ErrorResponse is the failure envelope shared by the JSON endpoints
// swagger:model ErrorResponse
type ErrorResponse struct {
	// example: false
	Success bool `json:"success"`

	// Human readable message
	// example: Valor inválido.
	Message string `json:"message"`

	// Provider error detail, only present for rejected payments
	Detail any `json:"detail,omitempty" swaggertype:"object"`
}

// MessageResponse is a success envelope carrying only a message
// swagger:model MessageResponse
type MessageResponse struct {
	// example: true
	Success bool `json:"success"`

	// example: Solicitação de saque recebida. Processamento em 24h.
	Message string `json:"message"`
}
