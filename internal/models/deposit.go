package models

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// DepositRequest represents the JSON body for creating a PIX deposit
// swagger:model DepositRequest
type DepositRequest struct {
	// Amount to deposit, as a JSON number or numeric string.
	// Values that are not numeric decode as not valid.
	// required: true
	// example: 50
	Amount decimal.NullDecimal `json:"amount" swaggertype:"number"`

	// Opaque user identifier, a string or a number
	// example: u1
	UserID string `json:"userId"`

	// Payer email
	// example: ana@example.com
	Email string `json:"email"`

	// Payer first name
	// example: Ana
	FirstName string `json:"firstName"`

	// Payer last name
	// example: Silva
	LastName string `json:"lastName"`
}

// UnmarshalJSON decodes the deposit body leniently: an unusable amount is left
// invalid and numeric text fields are kept as their literal text.
func (r *DepositRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Amount    json.RawMessage `json:"amount"`
		UserID    json.RawMessage `json:"userId"`
		Email     json.RawMessage `json:"email"`
		FirstName json.RawMessage `json:"firstName"`
		LastName  json.RawMessage `json:"lastName"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out DepositRequest
	out.Amount = lenientAmount(raw.Amount)
	for _, f := range []struct {
		name string
		raw  json.RawMessage
		dst  *string
	}{
		{"userId", raw.UserID, &out.UserID},
		{"email", raw.Email, &out.Email},
		{"firstName", raw.FirstName, &out.FirstName},
		{"lastName", raw.LastName, &out.LastName},
	} {
		v, err := scalarText(f.raw)
		if err != nil {
			return fmt.Errorf("field %s: %w", f.name, err)
		}
		*f.dst = v
	}

	*r = out
	return nil
}

// DepositResult carries the PIX data returned by the provider
// swagger:model DepositResult
type DepositResult struct {
	// Provider payment identifier
	// example: 123
	PaymentID int64 `json:"paymentId"`

	// PIX copy-and-paste payload
	// example: 00020126580014br.gov.bcb.pix
	QRCode string `json:"qrCode"`

	// Base64-encoded QR code image
	// example: iVBORw0KGgo=
	QRCodeBase64 string `json:"qrCodeBase64"`
}

// DepositResponse represents a successful deposit response
// swagger:model DepositResponse
type DepositResponse struct {
	// example: true
	Success bool           `json:"success"`
	Data    *DepositResult `json:"data"`
}
