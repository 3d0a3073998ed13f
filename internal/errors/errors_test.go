package errors_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	apperror "gofinanceiro/internal/errors"
)

func TestNewDBError_ClassifiesPostgresCodes(t *testing.T) {
	cases := []struct {
		name     string
		code     pq.ErrorCode
		status   int
		category string
	}{
		{"foreign key", "23503", http.StatusConflict, "CONFLICT"},
		{"unique", "23505", http.StatusConflict, "CONFLICT"},
		{"not null", "23502", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid text representation", "22P02", http.StatusBadRequest, "VALIDATION_ERROR"},
		{"connection failure", "08006", http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"admin shutdown", "57P01", http.StatusServiceUnavailable, "UNAVAILABLE"},
		{"syntax error", "42601", http.StatusInternalServerError, "INTERNAL_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			driverErr := &pq.Error{Code: tc.code, Message: "mensagem do driver"}
			err := apperror.NewDBError("Falha ao executar a query", driverErr)

			status, category, _ := apperror.MapToHTTPStatus(err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
			assert.Equal(t, "mensagem do driver", err.Details())
			assert.ErrorIs(t, err, driverErr)
		})
	}
}

func TestNewDBError_DeadlineIsUnavailable(t *testing.T) {
	err := apperror.NewDBError("Falha ao executar a query", fmt.Errorf("query: %w", context.DeadlineExceeded))

	assert.IsType(t, &apperror.UnavailableError{}, err)
	assert.Equal(t, http.StatusServiceUnavailable, err.HTTPStatus())
}

func TestMapToHTTPStatus_UntypedError(t *testing.T) {
	status, category, message := apperror.MapToHTTPStatus(errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "UNKNOWN_ERROR", category)
	assert.Equal(t, "Ocorreu um erro inesperado.", message)
}

func TestMapToHTTPStatus_WrappedAppError(t *testing.T) {
	err := fmt.Errorf("camada de serviço: %w", apperror.NewNotFoundError("Cliente 5"))

	status, category, message := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", category)
	assert.Contains(t, message, "Cliente 5")
	assert.True(t, apperror.IsAppError(err))
}

func TestMapToHTTPStatus_PayloadTooLarge(t *testing.T) {
	err := &apperror.PayloadTooLargeError{Limit: 1 << 20, Err: &http.MaxBytesError{Limit: 1 << 20}}

	status, category, message := apperror.MapToHTTPStatus(err)

	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Equal(t, "PAYLOAD_TOO_LARGE", category)
	assert.Contains(t, message, "1048576")
	var mbe *http.MaxBytesError
	assert.True(t, errors.As(err, &mbe))
}

func TestFieldsOf(t *testing.T) {
	err := apperror.NewFieldValidationError("Campos inválidos.", map[string]string{"nome": "required"})

	assert.Equal(t, map[string]string{"nome": "required"}, apperror.FieldsOf(err))
	assert.Nil(t, apperror.FieldsOf(errors.New("x")))
}
