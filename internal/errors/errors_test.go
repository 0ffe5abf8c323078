package errors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "bookstore/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validação", apperror.NewValidationError("x"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"pedido vazio", apperror.NewEmptyOrderError(), http.StatusBadRequest, "EMPTY_ORDER"},
		{"caro demais", apperror.NewOrderTooExpensiveError(375, 120), http.StatusBadRequest, "ORDER_TOO_EXPENSIVE"},
		{"sem estoque", apperror.NewOutOfStockError([]string{"a"}), http.StatusBadRequest, "OUT_OF_STOCK"},
		{"reabastecimento", apperror.NewRestockRejectedError(nil), http.StatusBadRequest, "RESTOCK_REJECTED"},
		{"não autorizado", apperror.NewUnauthorizedError("x"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"proibido", apperror.NewForbiddenError("x"), http.StatusForbidden, "FORBIDDEN"},
		{"conflito", apperror.NewConflictError("x"), http.StatusConflict, "CONFLICT"},
		{"rate limit", apperror.NewTooManyRequestsError("x"), http.StatusTooManyRequests, "RATE_LIMITED"},
		{"interno", apperror.NewInternalError("x", errors.New("causa")), http.StatusInternalServerError, "INTERNAL_ERROR"},
		{"embrulhado", fmt.Errorf("contexto: %w", apperror.NewEmptyOrderError()), http.StatusBadRequest, "EMPTY_ORDER"},
		{"não tipado", errors.New("qualquer"), http.StatusInternalServerError, "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.category, category)
		})
	}
}

func TestDetails(t *testing.T) {
	err := apperror.NewRestockRejectedError([]apperror.RestockViolation{
		{Reason: apperror.RestockNotMultipleOfTen, Title: "A", Message: "m1"},
		{Reason: apperror.RestockPermanentlyUnavailable, Title: "D", Message: "m2"},
	})

	assert.Equal(t, []string{"m1", "m2"}, apperror.Details(err))
	assert.Equal(t, []string{"x"}, apperror.Details(apperror.NewOutOfStockError([]string{"x"})))
	assert.Nil(t, apperror.Details(apperror.NewEmptyOrderError()))
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("redis fora do ar")

	err := apperror.NewCacheError("Falha", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "redis fora do ar")
}
