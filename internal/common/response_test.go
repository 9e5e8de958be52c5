package common

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRespondWithDomainError_ClientErrorsKeepTheirMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondWithDomainError(rec, fmt.Errorf("email address is not valid: %w", ErrValidation))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "email address is not valid")
}

func TestRespondWithDomainError_InternalDetailStaysHidden(t *testing.T) {
	rec := httptest.NewRecorder()
	wrapped := fmt.Errorf("failed to find user: %w", errors.New("connection refused"))
	RespondWithDomainError(rec, wrapped)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Contains(t, rec.Body.String(), ErrInternalServer.Error())
	require.NotContains(t, rec.Body.String(), "connection refused")
	require.NotContains(t, rec.Body.String(), "failed to find user")
}
