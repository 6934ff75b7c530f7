package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sbilibin2017/sliced-pix-gateway/internal/logger"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/models"
)

// DefaultMercadoPagoBaseURL is the public Mercado Pago REST API.
const DefaultMercadoPagoBaseURL = "https://api.mercadopago.com"

// ErrMissingAccessToken is returned before any I/O when the facade has no credential.
var ErrMissingAccessToken = errors.New("mercado pago access token is not configured")

// StatusError is returned when Mercado Pago answers with a non-2xx status.
type StatusError struct {
	StatusCode int
	Body       any // decoded JSON body
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mercado pago responded with status %d", e.StatusCode)
}

// Detail returns the provider message when it has one, otherwise the whole body.
func (e *StatusError) Detail() any {
	if obj, ok := e.Body.(map[string]any); ok {
		if msg, ok := obj["message"].(string); ok && msg != "" {
			return msg
		}
	}
	return e.Body
}

// MercadoPagoFacade creates payments through the Mercado Pago REST API.
type MercadoPagoFacade struct {
	baseURL     string
	accessToken string
	client      *http.Client
}

// NewMercadoPagoFacade creates a new facade. A nil client falls back to http.DefaultClient.
func NewMercadoPagoFacade(baseURL, accessToken string, client *http.Client) *MercadoPagoFacade {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = DefaultMercadoPagoBaseURL
	}
	return &MercadoPagoFacade{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		client:      client,
	}
}

// CreatePayment sends POST /v1/payments once and decodes the answer.
func (f *MercadoPagoFacade) CreatePayment(
	ctx context.Context,
	payment models.PaymentRequest,
	idempotencyKey string,
) (*models.Payment, error) {
	if f.accessToken == "" {
		return nil, ErrMissingAccessToken
	}

	body, err := json.Marshal(payment)
	if err != nil {
		return nil, fmt.Errorf("marshal payment request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.baseURL+"/v1/payments", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build payment request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.accessToken)
	req.Header.Set("X-Idempotency-Key", idempotencyKey)

	res, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("mercado pago request failed", "idempotency_key", idempotencyKey, "error", err)
		return nil, fmt.Errorf("send payment request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var raw any
		if err := json.NewDecoder(res.Body).Decode(&raw); err != nil {
			return nil, fmt.Errorf("decode mercado pago error response (status %d): %w", res.StatusCode, err)
		}
		logger.Log.Errorw("mercado pago rejected payment",
			"status", res.StatusCode, "idempotency_key", idempotencyKey, "response", raw)
		return nil, &StatusError{StatusCode: res.StatusCode, Body: raw}
	}

	var out models.Payment
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode mercado pago payment: %w", err)
	}

	logger.Log.Infow("mercado pago payment created",
		"payment_id", out.ID, "status", out.Status, "idempotency_key", idempotencyKey)
	return &out, nil
}
