package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ProblemContentType is the media type of problem-details bodies (RFC 9457).
const ProblemContentType = "application/problem+json"

// Problem is a problem-details error body.
type Problem struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance,omitempty"`
	TraceID  string `json:"trace_id,omitempty"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	writeJSON(w, "application/json", status, data)
}

// RespondWithProblem writes p as a problem-details response. Status, instance
// and trace ID are filled in from the request when left empty.
//
// 5xx problems are logged at ERROR level, everything else at DEBUG.
func RespondWithProblem(w http.ResponseWriter, r *http.Request, p Problem) {
	if p.Status == 0 {
		p.Status = http.StatusBadRequest
	}
	if p.Instance == "" {
		p.Instance = r.URL.RequestURI()
	}
	if p.TraceID == "" {
		p.TraceID = GetTraceID(r.Context())
	}

	logLevel := slog.LevelDebug
	if p.Status >= http.StatusInternalServerError {
		logLevel = slog.LevelError
	}
	slog.Log(r.Context(), logLevel, "sending problem response",
		"status_code", p.Status,
		"type", p.Type,
		"detail", p.Detail,
		"trace_id", p.TraceID,
		"path", r.URL.Path,
		"method", r.Method)

	writeJSON(w, ProblemContentType, p.Status, p)
}

func writeJSON(w http.ResponseWriter, contentType string, status int, data interface{}) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}
