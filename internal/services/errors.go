package services

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned when a deposit amount is missing, not a number or not positive.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingAccessToken is returned when the payment provider credential is not configured.
	ErrMissingAccessToken = errors.New("payment provider access token is not configured")
	// ErrMissingQRData is returned when the provider accepted the payment but sent no PIX data.
	ErrMissingQRData = errors.New("provider response has no pix qr code data")
)

// ProviderRejectedError is returned when the provider answers with an error status.
type ProviderRejectedError struct {
	StatusCode int
	Detail     any
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("payment rejected by provider (status %d): %v", e.StatusCode, e.Detail)
}
