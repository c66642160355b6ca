package httpserver

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

const _maxBodyBytes = 1 << 20

// ErrorResponse is the failure envelope every endpoint answers with.
type ErrorResponse struct {
	Success         bool   `json:"success"`
	Error           string `json:"error"`
	DatabaseMissing bool   `json:"database_missing,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyJSONResponse(w, statusCode, ErrorResponse{Error: errMsg})
}

// ReplyWithDatabaseMissing tells the client to send the user to the setup flow.
func ReplyWithDatabaseMissing(w http.ResponseWriter, errMsg string) {
	ReplyJSONResponse(w, http.StatusServiceUnavailable, ErrorResponse{Error: errMsg, DatabaseMissing: true})
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(output)
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(io.LimitReader(r.Body, _maxBodyBytes))
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

func GetQueryParam(r *http.Request, name string) string {
	return r.URL.Query().Get(name)
}

// GetSpanFromContext returns the request span, or a no-op span when the request
// is not traced.
func GetSpanFromContext(r *http.Request) trace.Span {
	return trace.SpanFromContext(r.Context())
}
