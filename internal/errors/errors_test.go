package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperror "catalogo/internal/errors"
)

func TestMapToHTTPStatus(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		status   int
		category string
	}{
		{"validacao", apperror.NewValidationError("nome vazio"), http.StatusBadRequest, "VALIDATION_ERROR"},
		{"argumento nulo", apperror.NewArgumentError("objeto nulo"), http.StatusNotFound, "INVALID_ARGUMENT"},
		{"nao encontrado", apperror.NewNotFoundError("id 7"), http.StatusNotFound, "NOT_FOUND"},
		{"nao autorizado", apperror.NewUnauthorizedError("sem token"), http.StatusUnauthorized, "UNAUTHORIZED"},
		{"interno", apperror.NewDBError("insert", stderrors.New("disk I/O error")), http.StatusBadRequest, "INTERNAL_ERROR"},
		{"nao tipado", stderrors.New("boom"), http.StatusBadRequest, "UNKNOWN_ERROR"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, category, _ := apperror.MapToHTTPStatus(tc.err)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.category, category)
		})
	}
}

func TestMapToHTTPStatus_WrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("camada de serviço: %w", apperror.NewNotFoundError("Produto 42"))

	status, category, message := apperror.MapToHTTPStatus(wrapped)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", category)
	assert.Contains(t, message, "Produto 42")
	assert.True(t, apperror.IsNotFound(wrapped))
}

func TestInternalError_KeepsCause(t *testing.T) {
	cause := stderrors.New("database is locked")
	err := apperror.NewDBError("Falha ao inserir", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "database is locked")
	_, _, message := apperror.MapToHTTPStatus(err)
	assert.Contains(t, message, "database is locked")
}

func TestFieldErrors(t *testing.T) {
	err := apperror.NewFieldValidationError([]string{"Is necessary to inform the Name.", "Is necessary to inform the Sku."})

	assert.Equal(t, []string{"Is necessary to inform the Name.", "Is necessary to inform the Sku."}, apperror.FieldErrors(err))
	assert.Nil(t, apperror.FieldErrors(stderrors.New("x")))
}
