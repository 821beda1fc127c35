package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/GregMSThompson/bank-closures/internal/errs"
	"github.com/GregMSThompson/bank-closures/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	status, code, message := Classify(r, err)
	h.WriteError(w, r, status, code, message)
}

// Classify logs err with the request logger and maps it to an HTTP status,
// an error code and a client-safe message.
func Classify(r *http.Request, err error) (int, string, string) {
	log := logger.FromContext(r.Context())

	var (
		notFound   *errs.NotFoundError
		validation *errs.ValidationError
		external   *errs.ExternalServiceError
		decode     *errs.DecodeError
		file       *errs.FileError
		database   *errs.DatabaseError
	)

	switch {
	case errors.As(err, &notFound):
		log.Warn("resource not found", "error", notFound.Message)
		return http.StatusNotFound, "not_found", notFound.Message

	case errors.As(err, &validation):
		log.Warn("validation failed", "error", validation.Message)
		return http.StatusBadRequest, "invalid_input", validation.Message

	case errors.As(err, &external):
		level := slog.LevelError
		status := http.StatusBadGateway
		if external.Transient {
			level = slog.LevelWarn
			status = http.StatusServiceUnavailable
		}
		log.Log(r.Context(), level, "external service error",
			"service", external.Service,
			"status", external.Status,
			"transient", external.Transient,
			"error", external.Message)
		return status, "service_unavailable", "Service temporarily unavailable"

	case errors.As(err, &decode):
		log.Error("decode error", "resource", decode.Resource, "error", decode.Message)
		return http.StatusBadGateway, "bad_upstream_data", "Published data could not be read"

	case errors.As(err, &file):
		log.Error("file error", "operation", file.Operation, "path", file.Path, "error", file.Message)
		return http.StatusInternalServerError, "internal_error", "An error occurred"

	case errors.As(err, &database):
		log.Error("database error", "operation", database.Operation, "error", database.Message)
		return http.StatusInternalServerError, "internal_error", "An error occurred"

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		return http.StatusInternalServerError, "internal_error", "An unexpected error occurred"
	}
}
