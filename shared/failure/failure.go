// Package failure carries the HTTP status and a machine-readable reason with
// a domain error, so handlers can render it without inspecting messages.
package failure

import (
	"errors"
	"net/http"
)

const (
	ReasonNotFound             = "not_found"
	ReasonInvalidInput         = "invalid_input"
	ReasonOutOfHours           = "out_of_hours"
	ReasonCrossTenantReference = "cross_tenant_reference"
	ReasonInvalidTransition    = "invalid_transition"
	ReasonSlotConflict         = "slot_conflict"
)

type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason,omitempty"`
	Field   string `json:"field,omitempty"`
}

var (
	ForbiddenError          = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
	ResourceRestrictedError = &Failure{Code: http.StatusForbidden, Message: "You don't have permission to access this resource"}
)

func (e *Failure) Error() string {
	return e.Message
}

func newFailure(code int, reason, field, msg string) error {
	return &Failure{Code: code, Message: msg, Reason: reason, Field: field}
}

// BadRequest turns err into a 400, keeping nil as nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, "", "", err.Error())
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, "", "", msg)
}

func Unauthorized(msg string) error {
	return newFailure(http.StatusUnauthorized, "", "", msg)
}

func Forbidden(msg string) error {
	return newFailure(http.StatusForbidden, "", "", msg)
}

func Conflict(msg string) error {
	return newFailure(http.StatusConflict, "", "", msg)
}

// NotFound reports a missing entity by name.
func NotFound(entityName string) error {
	return newFailure(http.StatusNotFound, ReasonNotFound, "", entityName)
}

// NotFoundField is NotFound naming the lookup that missed.
func NotFoundField(field, msg string) error {
	return newFailure(http.StatusNotFound, ReasonNotFound, field, msg)
}

func InvalidInput(field, msg string) error {
	return newFailure(http.StatusBadRequest, ReasonInvalidInput, field, msg)
}

// OutOfHours: the slot does not fit the opening hours of its weekday.
func OutOfHours(msg string) error {
	return newFailure(http.StatusUnprocessableEntity, ReasonOutOfHours, "time", msg)
}

// CrossTenantReference: the referenced entity belongs to another shop.
func CrossTenantReference(field, msg string) error {
	return newFailure(http.StatusUnprocessableEntity, ReasonCrossTenantReference, field, msg)
}

func InvalidTransition(msg string) error {
	return newFailure(http.StatusConflict, ReasonInvalidTransition, "status", msg)
}

// SlotConflict: another reservation took the slot first. Clients should
// list availability again and pick a new time.
func SlotConflict(msg string) error {
	return newFailure(http.StatusConflict, ReasonSlotConflict, "time", msg)
}

// Get unwraps the first Failure in err's chain.
func Get(err error) (*Failure, bool) {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail, true
	}

	return nil, false
}

// GetCode is the HTTP status for err; unclassified errors are 500.
func GetCode(err error) int {
	if fail, ok := Get(err); ok {
		return fail.Code
	}

	return http.StatusInternalServerError
}

func HasReason(err error, reason string) bool {
	fail, ok := Get(err)

	return ok && fail.Reason == reason
}
