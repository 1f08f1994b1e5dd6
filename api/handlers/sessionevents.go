// ABOUTME: Server-sent events endpoint streaming auth-state changes
// ABOUTME: Bridges session provider watches onto long-lived HTTP responses

package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"stash-app-api/api/dto/mappers"
	"stash-app-api/api/middleware"
	"stash-app-api/core/domain"
	"stash-app-api/core/interfaces"
)

// SessionWatcher establishes a live stream of auth-state changes
type SessionWatcher interface {
	Watch(ctx context.Context) (<-chan domain.SessionEvent, func())
}

// SessionEventsHandler streams auth-state changes over SSE. The stream opens
// with the provider's current determination, then pushes each transition.
type SessionEventsHandler struct {
	watcher SessionWatcher
	logger  interfaces.Logger
}

// NewSessionEventsHandler creates a new session events handler
func NewSessionEventsHandler(watcher SessionWatcher, logger interfaces.Logger) *SessionEventsHandler {
	return &SessionEventsHandler{
		watcher: watcher,
		logger:  logger,
	}
}

// ServeHTTP handles GET /v1/session/events
func (h *SessionEventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.SessionFromContext(r.Context()); !ok {
		http.Error(w, `{"error":"Sign in to stream session updates"}`, http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, `{"error":"Streaming is not supported"}`, http.StatusInternalServerError)
		return
	}

	events, cancel := h.watcher.Watch(r.Context())
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return

		case <-heartbeat.C:
			fmt.Fprint(w, ": heartbeat\n\n")
			flusher.Flush()

		case event, open := <-events:
			if !open {
				return
			}
			payload, err := json.Marshal(mappers.ToSessionEventResponse(event))
			if err != nil {
				if h.logger != nil {
					h.logger.Error("Failed to encode session event", map[string]interface{}{
						"error": err.Error(),
					})
				}
				continue
			}
			fmt.Fprintf(w, "event: session\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
