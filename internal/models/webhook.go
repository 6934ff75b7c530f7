package models

import "encoding/json"

// WebhookEvent is a notification pushed by Mercado Pago
// swagger:model WebhookEvent
type WebhookEvent struct {
	// Notification type
	// example: payment
	Type string `json:"type"`

	// Notification action, when present
	// example: payment.updated
	Action string `json:"action,omitempty"`

	Data WebhookData `json:"data"`
}

// WebhookData references the resource the notification is about.
type WebhookData struct {
	// Resource id, sent either as a string or a number
	// example: 123
	ID json.RawMessage `json:"id,omitempty" swaggertype:"string"`
}

// EventID returns the resource id as text, or an empty string when absent.
func (d WebhookData) EventID() string {
	id, err := scalarText(d.ID)
	if err != nil {
		return ""
	}
	return id
}
