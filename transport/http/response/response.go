package response

import (
	"encoding/json"
	"net/http"

	"beautyhub/shared/constant"
	"beautyhub/shared/failure"
	"beautyhub/shared/logger"

	"github.com/rs/zerolog/log"
)

// internalMessage replaces the text of unclassified errors so driver and
// network details never reach clients.
const internalMessage = "internal server error"

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

type Error struct {
	Error  string `json:"error"`
	Reason string `json:"reason,omitempty"`
	Field  string `json:"field,omitempty"`
}

type Message struct {
	Message string `json:"message"`
}

func WithMessage(writer http.ResponseWriter, code int, message string) {
	write(writer, code, Message{Message: message})
}

func WithJSON[T any](writer http.ResponseWriter, code int, payload T) {
	write(writer, code, Data[T]{Data: &payload})
}

// WithError renders err with the status of the Failure it wraps. Anything
// else is logged and reported as a bare 500.
func WithError(writer http.ResponseWriter, err error) {
	fail, ok := failure.Get(err)
	if !ok {
		log.Error().Err(err).Msg("unhandled error")
		write(writer, http.StatusInternalServerError, Error{Error: internalMessage})

		return
	}

	write(writer, fail.Code, Error{Error: fail.Message, Reason: fail.Reason, Field: fail.Field})
}

func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

func WithPreparingShutdown(writer http.ResponseWriter) {
	WithMessage(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

func write(writer http.ResponseWriter, code int, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, internalMessage, http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		log.Debug().Err(err).Msg("failed to write response body")
	}
}
