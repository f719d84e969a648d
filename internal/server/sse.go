package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/jonathan/outfit-planner/internal/types"
)

// SSE event names
const (
	EventProgress = "progress"
	EventResult   = "result"
	EventError    = "error"
	EventComplete = "complete"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an error event
func (s *SSEWriter) WriteError(message string) {
	s.WriteEvent(EventError, map[string]string{"error": message}) //nolint:errcheck
}

// CompleteEvent closes a recommendation stream with the run's totals
type CompleteEvent struct {
	QueryID      string `json:"query_id"`
	Status       string `json:"status"`
	Checked      int    `json:"checked"`
	Valid        int    `json:"valid"`
	Returned     int    `json:"returned"`
	ProcessingMS int64  `json:"processing_ms"`
}

// WriteComplete sends the completion event for set
func (s *SSEWriter) WriteComplete(set *types.RecommendationSet) {
	s.WriteEvent(EventComplete, CompleteEvent{ //nolint:errcheck
		QueryID:      set.QueryID.String(),
		Status:       "completed",
		Checked:      set.Checked,
		Valid:        set.Valid,
		Returned:     len(set.Recommendations),
		ProcessingMS: set.ProcessingMS,
	})
}
