package core

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"notificable/internal/types"
)

// maxRequestBodySize is the maximum allowed size of a request body (64 KB).
// Notification payloads are small; anything larger is abuse.
const maxRequestBodySize = 64 << 10

// MessageResponse is the fixed envelope for every API response: a JSON
// object with a single message field.
type MessageResponse struct {
	Message string `json:"message"`
}

// JSON writes a JSON response with the given status code and data. If
// marshalling fails it falls back to a 500 with the standard envelope.
func JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	body, err := json.Marshal(data)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(MessageResponse{Message: "failed to marshal response"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

// Message writes the standard single-field envelope with the given status.
func Message(w http.ResponseWriter, r *http.Request, status int, text string) {
	JSON(w, r, status, MessageResponse{Message: text})
}

// Error writes an error response. If the error chain contains a
// *types.AppError its code determines the HTTP status and its message is
// surfaced; any other error becomes a 500 with a safe generic message so
// internals never leak to clients.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *types.AppError
	if errors.As(err, &appErr) {
		Message(w, r, appErr.HTTPStatus(), appErr.Message)
		return
	}

	Message(w, r, http.StatusInternalServerError, "an unexpected error occurred")
}

// DecodeJSON reads the request body into dst, enforcing a size cap and
// DisallowUnknownFields for strict JSON contracts. It returns a
// *types.AppError with code validation_invalid_json (400) on syntax errors,
// unknown fields, oversized bodies, empty bodies, and trailing JSON values.
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return mapDecodeError(err)
	}

	if dec.More() {
		return types.NewAppError(
			types.ErrCodeValidationInvalidJSON,
			"request body must contain a single JSON object",
			nil,
		)
	}

	return nil
}

// mapDecodeError translates a json.Decoder error into a structured AppError.
func mapDecodeError(err error) *types.AppError {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return types.NewAppError(
			types.ErrCodeValidationInvalidJSON,
			"request body too large",
			err,
		)
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return types.NewAppError(
			types.ErrCodeValidationInvalidJSON,
			"malformed JSON in request body",
			err,
		)
	}

	var unmarshalTypeErr *json.UnmarshalTypeError
	if errors.As(err, &unmarshalTypeErr) {
		return types.NewAppError(
			types.ErrCodeValidationInvalidJSON,
			"invalid value for field "+unmarshalTypeErr.Field,
			err,
		)
	}

	if strings.HasPrefix(err.Error(), "json: unknown field") {
		return types.NewAppError(
			types.ErrCodeValidationInvalidJSON,
			"unknown field in request body: "+strings.TrimPrefix(err.Error(), "json: unknown field "),
			err,
		)
	}

	if errors.Is(err, io.EOF) {
		return types.NewAppError(
			types.ErrCodeValidationInvalidJSON,
			"request body must not be empty",
			err,
		)
	}

	return types.NewAppError(
		types.ErrCodeValidationInvalidJSON,
		"invalid JSON in request body",
		err,
	)
}
