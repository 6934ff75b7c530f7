package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/sliced-pix-gateway/internal/models"
)

//go:generate mockgen -source=balance.go -destination=mock_balance_test.go -package=handlers

// BalanceReader defines the interface that the service must implement.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID string) (float64, error)
}

// NewGetBalanceHandler returns an HTTP handler for fetching a user balance.
// @Summary Get user balance
// @Description Returns the balance of a user
// @Tags user
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} models.BalanceResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /user/{uid}/balance [get]
func NewGetBalanceHandler(svc BalanceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := chi.URLParam(r, "uid")

		balance, err := svc.GetBalance(r.Context(), uid)
		if err != nil {
			requestLog(r).Errorw("failed to get balance", "userID", uid, "error", err)
			writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Message: msgBalanceUnavailable})
			return
		}

		writeJSON(w, http.StatusOK, models.BalanceResponse{
			Success: true,
			Data:    models.Balance{Balance: balance},
		})
	}
}

// RegisterGetBalanceHandler registers the balance route
func RegisterGetBalanceHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/api/user/{uid}/balance", h)
}
