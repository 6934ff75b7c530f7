package models

// PaymentMethodPix is the Mercado Pago payment method id for PIX.
const PaymentMethodPix = "pix"

// PaymentRequest is the body sent to POST /v1/payments.
type PaymentRequest struct {
	TransactionAmount float64         `json:"transaction_amount"`
	Description       string          `json:"description"`
	PaymentMethodID   string          `json:"payment_method_id"`
	Payer             Payer           `json:"payer"`
	NotificationURL   string          `json:"notification_url"`
	Metadata          PaymentMetadata `json:"metadata"`
}

// Payer identifies who pays.
type Payer struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// PaymentMetadata is echoed back by the provider in notifications.
type PaymentMetadata struct {
	UserID string `json:"user_id"`
}

// Payment is the subset of the provider payment resource this service reads.
type Payment struct {
	ID                 int64               `json:"id"`
	Status             string              `json:"status"`
	StatusDetail       string              `json:"status_detail"`
	PointOfInteraction *PointOfInteraction `json:"point_of_interaction"`
}

// PointOfInteraction wraps the PIX transaction data.
type PointOfInteraction struct {
	TransactionData *TransactionData `json:"transaction_data"`
}

// TransactionData holds the PIX QR code.
type TransactionData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
	TicketURL    string `json:"ticket_url"`
}
