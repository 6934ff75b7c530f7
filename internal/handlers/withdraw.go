package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/sliced-pix-gateway/internal/models"
)

//go:generate mockgen -source=withdraw.go -destination=mock_withdraw_test.go -package=handlers

// WithdrawRequester defines the interface that the service must implement.
type WithdrawRequester interface {
	RequestWithdraw(ctx context.Context, req models.WithdrawRequest) error
}

// NewWithdrawHandler acknowledges a withdrawal request. Nothing is validated or transferred.
// @Summary Request withdrawal
// @Description Accepts a PIX withdrawal request for later manual processing
// @Tags withdraw
// @Accept json
// @Produce json
// @Param request body models.WithdrawRequest true "Withdraw Request"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 413 {object} models.ErrorResponse "Body too large"
// @Router /withdraw/request [post]
func NewWithdrawHandler(svc WithdrawRequester) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := requestLog(r)

		body, err := readJSONBody(w, r)
		if err != nil {
			log.Warnw("failed to read withdraw request", "error", err)
			status, msg := bodyError(err)
			writeJSON(w, status, models.ErrorResponse{Message: msg})
			return
		}

		// best effort: fields of an unexpected type are left empty
		var req models.WithdrawRequest
		if err := json.Unmarshal(body, &req); err != nil {
			log.Warnw("withdraw request fields could not be fully decoded", "error", err)
		}

		if err := svc.RequestWithdraw(r.Context(), req); err != nil {
			log.Errorw("failed to process withdraw request", "userID", req.UserID, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: msgWithdrawFailed})
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Success: true, Message: msgWithdrawReceived})
	}
}

// RegisterWithdrawHandler registers the withdrawal route
func RegisterWithdrawHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/api/withdraw/request", h)
}
