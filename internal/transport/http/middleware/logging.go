package middleware

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"evalkit/internal/platform/metrics"
	"evalkit/internal/requestctx"
)

type logEntry struct {
	Timestamp    string `json:"ts"`
	Method       string `json:"method"`
	Path         string `json:"path"`
	Status       int    `json:"status"`
	Duration     int64  `json:"durationMs"`
	RequestID    string `json:"requestId"`
	EvaluationID string `json:"evaluationId,omitempty"`
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// Logger writes one JSON access-log line per request and feeds the metrics
// collector. A nil collector disables metric recording, not logging.
func Logger(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(recorder, r)

			duration := time.Since(start)
			if collector != nil {
				collector.Record(recorder.status, duration)
			}

			entry := logEntry{
				Timestamp:    time.Now().UTC().Format(time.RFC3339),
				Method:       r.Method,
				Path:         r.URL.Path,
				Status:       recorder.status,
				Duration:     duration.Milliseconds(),
				RequestID:    requestctx.GetRequestID(r.Context()),
				EvaluationID: requestctx.GetEvaluationID(r.Context()),
			}

			payload, _ := json.Marshal(entry)
			log.Println(string(payload))
		})
	}
}
