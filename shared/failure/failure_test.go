package failure_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"beautyhub/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		reason string
		field  string
	}{
		{"bad request", failure.BadRequest(errors.New("broken json")), http.StatusBadRequest, "", ""},
		{"bad request text", failure.BadRequestFromString("broken json"), http.StatusBadRequest, "", ""},
		{"unauthorized", failure.Unauthorized("who are you"), http.StatusUnauthorized, "", ""},
		{"forbidden", failure.Forbidden("not yours"), http.StatusForbidden, "", ""},
		{"conflict", failure.Conflict("slug taken"), http.StatusConflict, "", ""},
		{"not found", failure.NotFound("tenant"), http.StatusNotFound, failure.ReasonNotFound, ""},
		{"not found field", failure.NotFoundField("staff_id", "staff not found"), http.StatusNotFound, failure.ReasonNotFound, "staff_id"},
		{"invalid input", failure.InvalidInput("date", "date is in the past"), http.StatusBadRequest, failure.ReasonInvalidInput, "date"},
		{"out of hours", failure.OutOfHours("closed"), http.StatusUnprocessableEntity, failure.ReasonOutOfHours, "time"},
		{"cross tenant", failure.CrossTenantReference("service_id", "other shop"), http.StatusUnprocessableEntity, failure.ReasonCrossTenantReference, "service_id"},
		{"transition", failure.InvalidTransition("already cancelled"), http.StatusConflict, failure.ReasonInvalidTransition, "status"},
		{"slot conflict", failure.SlotConflict("taken"), http.StatusConflict, failure.ReasonSlotConflict, "time"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fail, ok := failure.Get(tt.err)
			require.True(t, ok)

			assert.Equal(t, tt.code, fail.Code)
			assert.Equal(t, tt.reason, fail.Reason)
			assert.Equal(t, tt.field, fail.Field)
			assert.NotEmpty(t, fail.Error())
		})
	}
}

func TestBadRequest_Nil(t *testing.T) {
	assert.NoError(t, failure.BadRequest(nil))
}

func TestGetCode(t *testing.T) {
	wrapped := fmt.Errorf("commit: %w", failure.SlotConflict("taken"))

	assert.Equal(t, http.StatusConflict, failure.GetCode(wrapped))
	assert.Equal(t, http.StatusForbidden, failure.GetCode(failure.ForbiddenError))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(errors.New("pq: connection reset")))
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(nil))
}

func TestHasReason(t *testing.T) {
	wrapped := fmt.Errorf("commit: %w", failure.SlotConflict("taken"))

	assert.True(t, failure.HasReason(wrapped, failure.ReasonSlotConflict))
	assert.False(t, failure.HasReason(wrapped, failure.ReasonOutOfHours))
	assert.False(t, failure.HasReason(errors.New("plain"), failure.ReasonSlotConflict))
}
