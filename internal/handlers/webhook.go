package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/sliced-pix-gateway/internal/models"
)

//go:generate mockgen -source=webhook.go -destination=mock_webhook_test.go -package=handlers

// WebhookReceiver defines the interface that the service must implement.
type WebhookReceiver interface {
	HandleWebhook(ctx context.Context, evt models.WebhookEvent)
}

// NewWebhookHandler acknowledges Mercado Pago notifications.
// The payload is not authenticated and no payment is looked up.
// @Summary Mercado Pago webhook
// @Description Receives payment notifications and answers OK
// @Tags webhook
// @Accept json
// @Produce plain
// @Param request body models.WebhookEvent true "Notification"
// @Param type query string false "Notification type (IPN style)"
// @Param data.id query string false "Resource id (IPN style)"
// @Success 200 {string} string "OK"
// @Failure 400 {string} string "Bad Request"
// @Failure 413 {string} string "Request Entity Too Large"
// @Router /webhook/mercadopago [post]
func NewWebhookHandler(svc WebhookReceiver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLog(r)

		body, err := readJSONBody(w, r)
		if err != nil {
			log.Warnw("failed to read webhook body", "error", err)
			status, _ := bodyError(err)
			http.Error(w, http.StatusText(status), status)
			return
		}

		var evt models.WebhookEvent
		if err := json.Unmarshal(body, &evt); err != nil {
			log.Warnw("webhook fields could not be fully decoded", "error", err)
		}
		fillFromQuery(&evt, r)

		svc.HandleWebhook(r.Context(), evt)

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// fillFromQuery completes the event from IPN style query parameters.
func fillFromQuery(evt *models.WebhookEvent, r *http.Request) {
	q := r.URL.Query()
	if evt.Type == "" {
		evt.Type = q.Get("type")
	}
	if evt.Type == "" {
		evt.Type = q.Get("topic")
	}
	if evt.Data.EventID() == "" {
		id := q.Get("data.id")
		if id == "" {
			id = q.Get("id")
		}
		if id != "" {
			raw, _ := json.Marshal(id)
			evt.Data.ID = raw
		}
	}
}

// RegisterWebhookHandler registers the Mercado Pago notification route
func RegisterWebhookHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/webhook/mercadopago", h)
}
