// Package respond writes the JSON envelope shared by every HTTP endpoint.
package respond

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/chris/amc-warranty-claims/pkg/apperrors"
)

// Envelope is the body of every response. Error carries the classification on failure.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
}

// Responder renders results and errors. Internal error text is only exposed when Debug is set.
type Responder struct {
	Debug  bool
	Logger *slog.Logger
}

func New(debug bool, logger *slog.Logger) *Responder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Responder{Debug: debug, Logger: logger}
}

// JSON writes a successful envelope.
func (rs *Responder) JSON(w http.ResponseWriter, status int, message string, data any) {
	write(w, status, Envelope{Success: true, Message: message, Data: data})
}

// Error classifies err and writes the matching status and envelope.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	kind, status := apperrors.Classify(err)
	body := Envelope{Error: string(kind), Message: err.Error()}

	if kind == apperrors.KindInternal {
		rs.Logger.ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.Any("error", err),
		)
		body.Message = "Internal server error"
		if rs.Debug {
			body.Details = err.Error()
		}
	}
	write(w, status, body)
}

// Unauthorized rejects a request that lacks the caller's identity.
func Unauthorized(w http.ResponseWriter, message string) {
	write(w, http.StatusUnauthorized, Envelope{Error: "Unauthorized", Message: message})
}

// Decode reads a JSON body into dst. A malformed body is a validation error.
func Decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return apperrors.Validation("request body is empty")
		}
		return apperrors.Validation("invalid request body: %v", err)
	}
	return nil
}

func write(w http.ResponseWriter, status int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
