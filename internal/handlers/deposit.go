package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/sliced-pix-gateway/internal/models"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/services"
)

//go:generate mockgen -source=deposit.go -destination=mock_deposit_test.go -package=handlers

// DepositCreator defines the interface that the service must implement.
type DepositCreator interface {
	CreatePixDeposit(ctx context.Context, req models.DepositRequest) (*models.DepositResult, error)
}

// NewDepositHandler returns an HTTP handler that creates a PIX deposit.
// @Summary Create PIX deposit
// @Description Creates a PIX payment at Mercado Pago and returns its QR code.
// @Tags deposit
// @Accept json
// @Produce json
// @Param request body models.DepositRequest true "Deposit Request"
// @Success 200 {object} models.DepositResponse
// @Failure 400 {object} models.ErrorResponse "Invalid amount or payment rejected by the provider"
// @Failure 413 {object} models.ErrorResponse "Body too large"
// @Failure 500 {object} models.ErrorResponse "Missing configuration, missing QR data or internal error"
// @Router /deposit/create [post]
func NewDepositHandler(svc DepositCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLog(r)

		body, err := readJSONBody(w, r)
		if err != nil {
			log.Warnw("failed to read deposit request", "error", err)
			status, msg := bodyError(err)
			writeJSON(w, status, models.ErrorResponse{Message: msg})
			return
		}

		var req models.DepositRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Warnw("failed to decode deposit request", "error", err)
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Message: msgInvalidBody})
			return
		}

		log.Infow("pix deposit requested",
			"userID", req.UserID,
			"first_name", req.FirstName,
			"last_name", req.LastName,
			"email", req.Email,
			"amount", req.Amount,
		)

		res, err := svc.CreatePixDeposit(r.Context(), req)
		if err != nil {
			status, resp := depositErrorResponse(err)
			if status >= http.StatusInternalServerError {
				log.Errorw("failed to create pix deposit", "userID", req.UserID, "error", err)
			} else {
				log.Warnw("pix deposit refused", "userID", req.UserID, "error", err)
			}
			writeJSON(w, status, resp)
			return
		}

		writeJSON(w, http.StatusOK, models.DepositResponse{Success: true, Data: res})
	}
}

func depositErrorResponse(err error) (int, models.ErrorResponse) {
	var rejected *services.ProviderRejectedError
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return http.StatusBadRequest, models.ErrorResponse{Message: msgInvalidAmount}
	case errors.Is(err, services.ErrMissingAccessToken):
		return http.StatusInternalServerError, models.ErrorResponse{Message: msgMissingToken}
	case errors.As(err, &rejected):
		return http.StatusBadRequest, models.ErrorResponse{Message: msgProviderRejected, Detail: rejected.Detail}
	case errors.Is(err, services.ErrMissingQRData):
		return http.StatusInternalServerError, models.ErrorResponse{Message: msgMissingQRData}
	default:
		return http.StatusInternalServerError, models.ErrorResponse{Message: msgInternalError}
	}
}

// RegisterDepositHandler registers the PIX deposit route
func RegisterDepositHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/deposit/create", h)
}
