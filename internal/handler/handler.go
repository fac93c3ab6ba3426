package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CobbyElsonfx/food-delivery-app/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; nothing useful left to tell the client.
		return
	}
}

// writeError writes an error response with the given status code and message.
func writeError(w http.ResponseWriter, status int, code, message string, logger zerolog.Logger) {
	event := logger.Warn()
	if status >= http.StatusInternalServerError {
		event = logger.Error()
	}
	event.Str("code", code).Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.ErrorResponse{Error: code, Message: message})
}

// writeServiceError maps a service error onto the matching HTTP status.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var validationErr *model.ValidationError
	var domainErr *model.DomainError
	var storageErr *model.StorageError

	switch {
	case errors.As(err, &validationErr):
		code := model.ErrCodeMissingField
		switch validationErr.Field {
		case "quantity":
			code = model.ErrCodeInvalidQuantity
		case "items":
			code = model.ErrCodeEmptyCart
		}
		logger.Warn().Str("field", validationErr.Field).Msg("validation failed")
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error:   code,
			Message: validationErr.Error(),
			Field:   validationErr.Field,
		})
	case errors.As(err, &domainErr):
		status := http.StatusBadRequest
		if domainErr == model.ErrItemNotFound || domainErr == model.ErrOrderNotFound {
			status = http.StatusNotFound
		}
		writeError(w, status, domainErr.Code, domainErr.Message, logger)
	case errors.As(err, &storageErr):
		logger.Error().Err(err).Msg("storage failure")
		writeError(w, http.StatusInternalServerError, model.ErrCodeStorage, "storage unavailable", logger)
	default:
		logger.Error().Err(err).Msg("unexpected failure")
		writeError(w, http.StatusInternalServerError, model.ErrCodeInternalError, "internal error", logger)
	}
}

// itemID parses the {id} path parameter as a catalogue item id.
func itemID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
