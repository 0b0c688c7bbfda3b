package handlers

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
)

// request bodies are capped at 20 MB, matching the upstream clients
const maxBodyBytes = 20 << 20

// JSONResponse writes data as a JSON response with the given status.
func JSONResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// errorResponse writes a JSON error body with the given status.
func errorResponse(w http.ResponseWriter, status int, message string) {
	JSONResponse(w, status, map[string]string{"error": message})
}

// serverError logs the error and answers with a generic 500; no detail is
// leaked to the client.
func serverError(w http.ResponseWriter, code string, err error) {
	slog.Error("Request failed", "code", code, "error", err)
	errorResponse(w, http.StatusInternalServerError, "Server error")
}

// notFound answers with an empty 404 body.
func notFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// readBody reads a size-capped request body.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	return io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
}

// pathID parses the {id} path segment.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	return id, err == nil
}

// queryAssessmentID parses an optional ?assessmentId= filter. The second
// return is false when the parameter is present but not numeric.
func queryAssessmentID(r *http.Request) (*int64, bool) {
	raw := r.URL.Query().Get("assessmentId")
	if raw == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, false
	}
	return &id, true
}
