package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/sliced-pix-gateway/internal/facades"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/logger"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/models"
)

// Payer defaults applied when the deposit request leaves them empty.
const (
	DefaultPayerEmail     = "email_padrao@sliced.com"
	DefaultPayerFirstName = "Usuario"
)

// WebhookPath is the route Mercado Pago notifications are delivered to.
const WebhookPath = "/api/webhook/mercadopago"

//go:generate mockgen -source=payment.go -destination=mock_payment_test.go -package=services

// PaymentCreator creates payments at the provider.
type PaymentCreator interface {
	CreatePayment(ctx context.Context, payment models.PaymentRequest, idempotencyKey string) (*models.Payment, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentConfig holds the values PaymentService needs from configuration.
type PaymentConfig struct {
	// BaseURL is the public URL of this server, used to build the notification URL.
	BaseURL string
}

// PaymentService creates PIX deposits and acknowledges withdraw requests and webhooks.
type PaymentService struct {
	creator     PaymentCreator
	kafkaWriter KafkaWriter
	cfg         PaymentConfig
	now         func() time.Time
}

// NewPaymentService creates a new PaymentService. kafkaWriter may be nil.
func NewPaymentService(creator PaymentCreator, kafkaWriter KafkaWriter, cfg PaymentConfig) *PaymentService {
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &PaymentService{
		creator:     creator,
		kafkaWriter: kafkaWriter,
		cfg:         cfg,
		now:         time.Now,
	}
}

// NotificationURL returns the webhook URL sent to the provider with every payment.
func (s *PaymentService) NotificationURL() string {
	return s.cfg.BaseURL + WebhookPath
}

// CreatePixDeposit validates the request, creates a PIX payment and returns its QR code.
func (s *PaymentService) CreatePixDeposit(ctx context.Context, req models.DepositRequest) (*models.DepositResult, error) {
	if !req.Amount.Valid || !req.Amount.Decimal.IsPositive() {
		return nil, ErrInvalidAmount
	}

	payment := s.buildPaymentRequest(req)
	idempotencyKey := s.idempotencyKey(req.UserID)

	created, err := s.creator.CreatePayment(ctx, payment, idempotencyKey)
	if err != nil {
		var statusErr *facades.StatusError
		switch {
		case errors.Is(err, facades.ErrMissingAccessToken):
			return nil, ErrMissingAccessToken
		case errors.As(err, &statusErr):
			return nil, &ProviderRejectedError{StatusCode: statusErr.StatusCode, Detail: statusErr.Detail()}
		default:
			return nil, fmt.Errorf("create pix payment: %w", err)
		}
	}

	if created.PointOfInteraction == nil || created.PointOfInteraction.TransactionData == nil {
		logger.Log.Errorw("pix data missing from provider response", "payment_id", created.ID, "userID", req.UserID)
		return nil, ErrMissingQRData
	}
	pix := created.PointOfInteraction.TransactionData

	logger.Log.Infow("pix payment created", "payment_id", created.ID, "userID", req.UserID)

	s.publishEvent(ctx, models.PaymentEvent{
		Operation: models.OperationDepositCreated,
		UserID:    req.UserID,
		Amount:    payment.TransactionAmount,
		PaymentID: fmt.Sprint(created.ID),
	})

	return &models.DepositResult{
		PaymentID:    created.ID,
		QRCode:       pix.QRCode,
		QRCodeBase64: pix.QRCodeBase64,
	}, nil
}

// RequestWithdraw records nothing and moves no money; it only logs and publishes the request.
func (s *PaymentService) RequestWithdraw(ctx context.Context, req models.WithdrawRequest) error {
	logger.Log.Infow("withdraw requested",
		"userID", req.UserID, "amount", req.Amount, "pix_key", req.PixKey, "pix_key_type", req.PixKeyType)

	var amount float64
	if req.Amount.Valid {
		amount = req.Amount.Decimal.InexactFloat64()
	}
	s.publishEvent(ctx, models.PaymentEvent{
		Operation: models.OperationWithdrawRequested,
		UserID:    req.UserID,
		Amount:    amount,
	})
	return nil
}

// GetBalance always reports a zero balance; balances are not tracked.
func (s *PaymentService) GetBalance(ctx context.Context, userID string) (float64, error) {
	logger.Log.Debugw("balance requested", "userID", userID)
	return 0, nil
}

// HandleWebhook logs a provider notification. It neither verifies nor looks it up.
func (s *PaymentService) HandleWebhook(ctx context.Context, evt models.WebhookEvent) {
	logger.Log.Infow("mercado pago webhook received",
		"type", evt.Type, "action", evt.Action, "id", evt.Data.EventID())

	s.publishEvent(ctx, models.PaymentEvent{
		Operation:   models.OperationWebhookReceived,
		PaymentID:   evt.Data.EventID(),
		WebhookType: evt.Type,
	})
}

func (s *PaymentService) buildPaymentRequest(req models.DepositRequest) models.PaymentRequest {
	payer := models.Payer{
		Email:     orDefault(req.Email, DefaultPayerEmail),
		FirstName: orDefault(req.FirstName, DefaultPayerFirstName),
		LastName:  orDefault(req.LastName, req.UserID),
	}

	return models.PaymentRequest{
		TransactionAmount: req.Amount.Decimal.InexactFloat64(),
		Description:       fmt.Sprintf("Depósito SLICED - %s %s", payer.FirstName, payer.LastName),
		PaymentMethodID:   models.PaymentMethodPix,
		Payer:             payer,
		NotificationURL:   s.NotificationURL(),
		Metadata:          models.PaymentMetadata{UserID: req.UserID},
	}
}

// idempotencyKey is fresh per call, so client retries are not deduplicated.
func (s *PaymentService) idempotencyKey(userID string) string {
	return fmt.Sprintf("PAY-%d-%s", s.now().UnixMilli(), userID)
}

// publishEvent publishes a payment event to Kafka. Failures are logged only.
func (s *PaymentService) publishEvent(ctx context.Context, evt models.PaymentEvent) {
	if evt.EventID == "" {
		evt.EventID = uuid.NewString()
	}
	if evt.Timestamp == 0 {
		evt.Timestamp = s.now().Unix()
	}

	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", evt.EventID, "operation", evt.Operation)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("failed to marshal payment event", "event_id", evt.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.EventID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish payment event", "event_id", evt.EventID, "operation", evt.Operation, "error", err)
		return
	}
	logger.Log.Debugw("payment event published", "event_id", evt.EventID, "operation", evt.Operation)
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
