package httputil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/idsmith/internal/errors"
	"github.com/allisson/idsmith/internal/identifier/domain"
)

func TestHandleErrorGin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		err          error
		expectedCode int
		expectedErr  string
	}{
		{name: "UnsupportedCountry", err: domain.ErrUnsupportedCountry, expectedCode: http.StatusNotFound, expectedErr: "not_found"},
		{name: "UnsupportedKind", err: domain.ErrUnsupportedKind, expectedCode: http.StatusNotFound, expectedErr: "not_found"},
		{name: "InvalidOption", err: apperrors.Wrap(domain.ErrInvalidOption, "year"), expectedCode: http.StatusUnprocessableEntity, expectedErr: "invalid_input"},
		{name: "MalformedValue", err: domain.ErrMalformedValue, expectedCode: http.StatusUnprocessableEntity, expectedErr: "invalid_input"},
		{name: "TooManyRequests", err: apperrors.ErrTooManyRequests, expectedCode: http.StatusTooManyRequests, expectedErr: "rate_limit_exceeded"},
		{name: "SolverExhausted", err: domain.ErrSolverExhausted, expectedCode: http.StatusInternalServerError, expectedErr: "internal_error"},
		{name: "Unknown", err: apperrors.New("boom"), expectedCode: http.StatusInternalServerError, expectedErr: "internal_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleErrorGin(c, tt.err, nil)

			assert.Equal(t, tt.expectedCode, w.Code)
			var body ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.expectedErr, body.Error)
			if tt.expectedCode == http.StatusInternalServerError {
				assert.NotContains(t, body.Message, "solver")
			}
		})
	}
}

func TestHandleErrorGin_NilError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	HandleErrorGin(c, nil, nil)

	assert.Empty(t, w.Body.String())
}

func TestHandleBadRequestAndValidation(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	HandleBadRequestGin(c, apperrors.New("unexpected EOF"), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "bad_request")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	HandleValidationErrorGin(c, apperrors.New("country: cannot be blank."), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
}
