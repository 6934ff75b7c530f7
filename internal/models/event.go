package models

// Payment event operations.
const (
	OperationDepositCreated    = "deposit_created"
	OperationWithdrawRequested = "withdraw_requested"
	OperationWebhookReceived   = "webhook_received"
)

// PaymentEvent is published for every deposit, withdraw request and webhook handled.
type PaymentEvent struct {
	EventID     string  `json:"event_id"`               // EventID is a unique identifier for the event.
	Timestamp   int64   `json:"timestamp"`              // Timestamp is the Unix time (in seconds) the event was produced.
	Operation   string  `json:"operation"`              // Operation is one of the Operation* constants.
	UserID      string  `json:"user_id,omitempty"`      // UserID is the user the operation belongs to, if known.
	Amount      float64 `json:"amount,omitempty"`       // Amount is the monetary value involved, if any.
	PaymentID   string  `json:"payment_id,omitempty"`   // PaymentID is the provider payment or resource id.
	WebhookType string  `json:"webhook_type,omitempty"` // WebhookType is the provider notification type.
}
