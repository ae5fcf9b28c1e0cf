package shiftgen

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// response is the internal envelope type for successful responses.
// This wraps the actual result in a {"result": ...} structure.
type response struct {
	Result any `json:"result"`
}

// errorResponse is the internal envelope type for error responses.
// This wraps the error in an {"error": {...}} structure.
type errorResponse struct {
	Error *Error `json:"error"`
}

func writeResult(w http.ResponseWriter, result any, logger *slog.Logger) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response{Result: result}); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, envErr *Error, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(envErr.Code.HTTPStatus())
	if err := json.NewEncoder(w).Encode(errorResponse{Error: envErr}); err != nil {
		// Headers already sent, nothing we can do. Log for debugging.
		logger.Error("failed to encode error response",
			slog.String("code", string(envErr.Code)),
			slog.String("message", envErr.Message),
			slog.Any("error", err))
	}
}
