package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/sbilibin2017/sliced-pix-gateway/internal/logger"
	"github.com/sbilibin2017/sliced-pix-gateway/internal/middlewares"
)

// Messages returned to the website. They are shown to Brazilian users as-is.
const (
	msgInvalidBody        = "Corpo da requisição inválido."
	msgBodyTooLarge       = "Corpo da requisição muito grande."
	msgInvalidAmount      = "Valor inválido."
	msgMissingToken       = "Erro de configuração no servidor (Token ausente)."
	msgProviderRejected   = "Erro ao gerar PIX no Mercado Pago."
	msgMissingQRData      = "QR Code não retornado pelo MP."
	msgInternalError      = "Erro interno ao processar API."
	msgWithdrawReceived   = "Solicitação de saque recebida. Processamento em 24h."
	msgWithdrawFailed     = "Erro ao processar saque."
	msgBalanceUnavailable = "Erro ao consultar saldo."
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 100 << 10

var errInvalidJSON = errors.New("request body is not valid JSON")

// readJSONBody returns the raw request body, treating an empty body as an empty object.
// Bodies over maxBodyBytes fail with *http.MaxBytesError.
func readJSONBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 {
		return []byte("{}"), nil
	}
	if !json.Valid(body) {
		return nil, errInvalidJSON
	}
	return body, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// bodyError returns the status and message for a readJSONBody failure.
func bodyError(err error) (int, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, msgBodyTooLarge
	}
	return http.StatusBadRequest, msgInvalidBody
}

// requestLog returns the global logger tagged with the request id, if any.
func requestLog(r *http.Request) *zap.SugaredLogger {
	if id := middlewares.RequestIDFromContext(r.Context()); id != "" {
		return logger.Log.With("request_id", id)
	}
	return logger.Log
}
