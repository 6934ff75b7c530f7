package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Known PIX key types. They are informative only, requests are not checked against them.
const (
	PixKeyTypeCPF    = "cpf"
	PixKeyTypeEmail  = "email"
	PixKeyTypePhone  = "phone"
	PixKeyTypeRandom = "random"
)

// WithdrawRequest represents the JSON body for requesting a withdrawal
// swagger:model WithdrawRequest
type WithdrawRequest struct {
	// example: u1
	UserID string `json:"userId"`

	// Amount to withdraw
	// example: 25.5
	Amount decimal.NullDecimal `json:"amount" swaggertype:"number"`

	// Destination PIX key
	// example: ana@example.com
	PixKey string `json:"pixKey"`

	// PIX key type: cpf, email, phone or random
	// example: email
	PixKeyType string `json:"pixKeyType"`
}

// UnmarshalJSON decodes what it can. Fields of an unexpected type are left
// empty and reported together in the returned error, after the rest is set.
func (r *WithdrawRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		UserID     json.RawMessage `json:"userId"`
		Amount     json.RawMessage `json:"amount"`
		PixKey     json.RawMessage `json:"pixKey"`
		PixKeyType json.RawMessage `json:"pixKeyType"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out WithdrawRequest
	var errs []error
	out.Amount = lenientAmount(raw.Amount)
	if len(raw.Amount) > 0 && !out.Amount.Valid && string(raw.Amount) != "null" {
		errs = append(errs, fmt.Errorf("field amount: not a number: %s", raw.Amount))
	}
	for _, f := range []struct {
		name string
		raw  json.RawMessage
		dst  *string
	}{
		{"userId", raw.UserID, &out.UserID},
		{"pixKey", raw.PixKey, &out.PixKey},
		{"pixKeyType", raw.PixKeyType, &out.PixKeyType},
	} {
		v, err := scalarText(f.raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("field %s: %w", f.name, err))
			continue
		}
		*f.dst = v
	}

	*r = out
	return errors.Join(errs...)
}
