// ABOUTME: Submission pipeline drives fetch, analyze, enrich, and persist for one URL
// ABOUTME: Explicit per-owner state machine with single-admission control

package pipeline

import (
	"context"
	stderrors "errors"
	"sync"

	"stash-app-api/core/domain"
	"stash-app-api/core/interfaces"
)

// State describes where a submission currently is in the pipeline
type State int

const (
	// StateIdle means no submission is in flight for the owner
	StateIdle State = iota

	// StateFetching means the page content is being retrieved
	StateFetching

	// StateAnalyzing means the AI completion request is in flight
	StateAnalyzing

	// StatePersisting means the analyzed link is being written to the store
	StatePersisting

	// StateFailed means the last submission ended in a stage failure
	StateFailed
)

// String returns the state name for logs and tests
func (s State) String() string {
	switch s {
	case StateFetching:
		return "fetching"
	case StateAnalyzing:
		return "analyzing"
	case StatePersisting:
		return "persisting"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrSubmissionInFlight is returned when an owner already has a running
// submission. At most one pipeline instance runs at a time per owner.
var ErrSubmissionInFlight = stderrors.New("a link submission is already in progress")

// LinkCreator persists a fully assembled link
type LinkCreator interface {
	Create(ctx context.Context, link *domain.Link) error
}

// Runner executes link submissions end to end
type Runner struct {
	fetcher  interfaces.ContentFetcher
	analyzer interfaces.ContentAnalyzer
	metadata interfaces.MetadataService
	store    LinkCreator
	logger   interfaces.Logger

	mu     sync.Mutex
	states map[string]State
}

// NewRunner creates a new pipeline runner. The metadata service is
// optional; when nil, enrichment is skipped.
func NewRunner(fetcher interfaces.ContentFetcher, analyzer interfaces.ContentAnalyzer, metadata interfaces.MetadataService, store LinkCreator, logger interfaces.Logger) *Runner {
	return &Runner{
		fetcher:  fetcher,
		analyzer: analyzer,
		metadata: metadata,
		store:    store,
		logger:   logger,
		states:   make(map[string]State),
	}
}

// StateFor reports the owner's current pipeline state
func (r *Runner) StateFor(ownerID string) State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[ownerID]
}

// admit transitions the owner to fetching if no submission is in flight
func (r *Runner) admit(ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch r.states[ownerID] {
	case StateFetching, StateAnalyzing, StatePersisting:
		return ErrSubmissionInFlight
	}

	r.states[ownerID] = StateFetching
	return nil
}

// setState records a transition for the owner's in-flight submission
func (r *Runner) setState(ownerID string, state State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[ownerID] = state
}

// Submit runs the full pipeline for one URL: fetch, analyze, enrich,
// persist. A failure at any stage aborts the remaining stages and leaves
// the owner in the failed state; nothing is retried. On success the owner
// returns to idle and the stored link is returned.
func (r *Runner) Submit(ctx context.Context, ownerID, pageURL string) (*domain.Link, error) {
	if err := r.admit(ownerID); err != nil {
		return nil, err
	}

	link, err := r.run(ctx, ownerID, pageURL)
	if err != nil {
		r.setState(ownerID, StateFailed)
		return nil, err
	}

	r.setState(ownerID, StateIdle)
	return link, nil
}

func (r *Runner) run(ctx context.Context, ownerID, pageURL string) (*domain.Link, error) {
	text, err := r.fetcher.FetchCleanText(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	r.setState(ownerID, StateAnalyzing)
	result, err := r.analyzer.Analyze(ctx, text)
	if err != nil {
		return nil, err
	}

	link, err := domain.NewLink(ownerID, pageURL, *result)
	if err != nil {
		return nil, err
	}

	// Enrichment is best effort; a metadata failure never fails the submission
	if r.metadata != nil {
		if meta, err := r.metadata.ExtractMetadata(ctx, pageURL); err == nil && meta != nil {
			link.SiteName = meta.SiteName
			link.ImageURL = meta.Image
		}
	}

	r.setState(ownerID, StatePersisting)
	if err := r.store.Create(ctx, link); err != nil {
		return nil, err
	}

	if r.logger != nil {
		r.logger.Info("Link saved", map[string]interface{}{
			"owner": ownerID,
			"url":   pageURL,
			"tags":  len(link.Tags),
		})
	}

	return link, nil
}
