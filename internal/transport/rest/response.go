package rest

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/gearguard-backend/internal/domain"
	"github.com/heartmarshall/gearguard-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error   string          `json:"error"`
	Details []fieldErrorDTO `json:"details,omitempty"`
}

type fieldErrorDTO struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// decodeJSON reads a single JSON value from the request body.
// On failure it writes the 400 response and returns false. A well-formed body
// whose field has the wrong type or an unparsable date is a validation
// failure naming that field; anything else is an invalid body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error:   "Validation failed",
				Details: []fieldErrorDTO{{Field: typeErr.Field, Message: typeMessage(typeErr)}},
			})
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

func typeMessage(err *json.UnmarshalTypeError) string {
	if err.Type == timeType {
		return "invalid date"
	}
	return "invalid type"
}

// errorMapper translates service errors into HTTP responses.
type errorMapper struct {
	log *slog.Logger
	// notFound is the message for domain.ErrNotFound, e.g. "Equipment not found".
	notFound string
	// unauthorized overrides the 401 message.
	unauthorized string
}

func (m errorMapper) handle(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		details := make([]fieldErrorDTO, 0, len(ve.Errors))
		for _, fe := range ve.Errors {
			details = append(details, fieldErrorDTO{Field: fe.Field, Message: fe.Message})
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: details})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Validation failed", Details: []fieldErrorDTO{}})
	case errors.Is(err, domain.ErrUnauthorized):
		msg := m.unauthorized
		if msg == "" {
			msg = "Unauthorized"
		}
		writeError(w, http.StatusUnauthorized, msg)
	case errors.Is(err, domain.ErrNotFound):
		msg := m.notFound
		if msg == "" {
			msg = "Not found"
		}
		writeError(w, http.StatusNotFound, msg)
	case errors.Is(err, domain.ErrAlreadyExists):
		writeError(w, http.StatusConflict, "User already exists")
	default:
		attrs := append(ctxutil.LogAttrs(r.Context()), slog.String("error", err.Error()))
		m.log.LogAttrs(r.Context(), slog.LevelError, "internal error", attrs...)
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}
