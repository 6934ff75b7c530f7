package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestGetBalanceHandler(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		setupMocks     func(m *MockBalanceReader)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "known user",
			path: "/api/user/u1/balance",
			setupMocks: func(m *MockBalanceReader) {
				m.EXPECT().GetBalance(gomock.Any(), "u1").Return(0.0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":{"balance":0}}`,
		},
		{
			name: "unknown user",
			path: "/api/user/does-not-exist/balance",
			setupMocks: func(m *MockBalanceReader) {
				m.EXPECT().GetBalance(gomock.Any(), "does-not-exist").Return(0.0, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"success":true,"data":{"balance":0}}`,
		},
		{
			name: "reader failure",
			path: "/api/user/u1/balance",
			setupMocks: func(m *MockBalanceReader) {
				m.EXPECT().GetBalance(gomock.Any(), "u1").Return(0.0, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"success":false,"message":"Erro ao consultar saldo."}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockReader := NewMockBalanceReader(ctrl)
			tt.setupMocks(mockReader)

			r := chi.NewRouter()
			RegisterGetBalanceHandler(r, NewGetBalanceHandler(mockReader))

			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.JSONEq(t, tt.expectedBody, rr.Body.String())
		})
	}
}
