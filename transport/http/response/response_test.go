package response_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"beautyhub/shared/failure"
	"beautyhub/transport/http/response"

	"github.com/stretchr/testify/assert"
)

func TestWithJSON(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithJSON(recorder, http.StatusCreated, map[string]string{"slug": "glow"})

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data":{"slug":"glow"}}`, recorder.Body.String())
}

func TestWithError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		body string
	}{
		{
			name: "failure keeps reason and field",
			err:  fmt.Errorf("commit: %w", failure.SlotConflict("slot already taken")),
			code: http.StatusConflict,
			body: `{"error":"slot already taken","reason":"slot_conflict","field":"time"}`,
		},
		{
			name: "plain failure",
			err:  failure.Unauthorized("Token has expired"),
			code: http.StatusUnauthorized,
			body: `{"error":"Token has expired"}`,
		},
		{
			name: "unclassified errors are masked",
			err:  errors.New("pq: password authentication failed for user app"),
			code: http.StatusInternalServerError,
			body: `{"error":"internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()

			response.WithError(recorder, tt.err)

			assert.Equal(t, tt.code, recorder.Code)
			assert.JSONEq(t, tt.body, recorder.Body.String())
		})
	}
}

func TestWithRequestLimitExceeded(t *testing.T) {
	recorder := httptest.NewRecorder()

	response.WithRequestLimitExceeded(recorder)

	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)
	assert.JSONEq(t, `{"message":"REQUEST LIMIT EXCEEDED"}`, recorder.Body.String())
}
