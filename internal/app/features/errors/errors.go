// internal/app/features/errors/errors.go
package errors

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// genericInternalMessage is what clients see for any unexpected failure.
// The real error goes to the log only; internal detail never leaves the
// process.
const genericInternalMessage = "An internal server error occurred."

// ErrorLogger renders JSON error responses and logs server-side detail.
// Every handler failure goes through here so the status/message contract
// stays consistent across features.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger around the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// JSON writes a JSON error body with the given status.
func (e *ErrorLogger) JSON(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// BadRequest responds 400 for missing or malformed request fields.
func (e *ErrorLogger) BadRequest(w http.ResponseWriter, msg string) {
	e.JSON(w, http.StatusBadRequest, msg)
}

// Unauthorized responds 401. Used for credential failures; the message
// must not reveal whether the email exists.
func (e *ErrorLogger) Unauthorized(w http.ResponseWriter, msg string) {
	e.JSON(w, http.StatusUnauthorized, msg)
}

// Forbidden responds 403 for business-rule conflicts (already on a team,
// team full).
func (e *ErrorLogger) Forbidden(w http.ResponseWriter, msg string) {
	e.JSON(w, http.StatusForbidden, msg)
}

// NotFound responds 404 for unresolvable id references.
func (e *ErrorLogger) NotFound(w http.ResponseWriter, msg string) {
	e.JSON(w, http.StatusNotFound, msg)
}

// Conflict responds 409 for uniqueness violations.
func (e *ErrorLogger) Conflict(w http.ResponseWriter, msg string) {
	e.JSON(w, http.StatusConflict, msg)
}

// Internal logs the underlying error with full detail and responds 500
// with a generic message.
func (e *ErrorLogger) Internal(w http.ResponseWriter, r *http.Request, logMsg string, err error) {
	e.log.Error(logMsg,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err))
	e.JSON(w, http.StatusInternalServerError, genericInternalMessage)
}
