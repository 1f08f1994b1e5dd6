// ABOUTME: Server-sent events endpoint streaming live link snapshots
// ABOUTME: Bridges store subscriptions onto long-lived HTTP responses

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
	"stash-app-api/core/links"
)

const heartbeatInterval = 25 * time.Second

// Subscriber establishes a live query over an owner's links
type Subscriber interface {
	Subscribe(ctx context.Context, ownerID string, fn links.SnapshotFunc) (*links.Subscription, error)
}

// EventsHandler streams link snapshots over SSE. Each event carries the
// full current ordered list, mirroring what a fresh list call would return.
type EventsHandler struct {
	subscriber Subscriber
	logger     interfaces.Logger
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(subscriber Subscriber, logger interfaces.Logger) *EventsHandler {
	return &EventsHandler{
		subscriber: subscriber,
		logger:     logger,
	}
}

// ServeHTTP handles GET /v1/links/events
func (h *EventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	session, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		http.Error(w, `{"error":"Sign in to stream link updates"}`, http.StatusUnauthorized)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, `{"error":"Streaming is not supported"}`, http.StatusInternalServerError)
		return
	}

	// Unbuffered would block the notifier; size 1 plus the drop-stale logic
	// below keeps only the newest snapshot pending.
	snapshots := make(chan []domain.Link, 1)
	sub, err := h.subscriber.Subscribe(r.Context(), session.UserID, func(list []domain.Link) {
		for {
			select {
			case snapshots <- list:
				return
			default:
				select {
				case <-snapshots:
				default:
				}
			}
		}
	})
	if err != nil {
		http.Error(w, `{"error":"Failed to load links. Please try again later."}`, http.StatusServiceUnavailable)
		return
	}
	defer sub.Cancel()

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

		case list := <-snapshots:
			payload, err := json.Marshal(mappers.ToLinkListResponse(list))
			if err != nil {
				if h.logger != nil {
					h.logger.Error("Failed to encode link snapshot", map[string]interface{}{
						"owner": session.UserID,
						"error": err.Error(),
					})
				}
				continue
			}
			fmt.Fprintf(w, "event: links\ndata: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
