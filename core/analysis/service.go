// ABOUTME: Content analyzer service derives title, summary, and tags from article text
// ABOUTME: Sends a single schema-constrained completion request to a generative-AI endpoint

package analysis

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"time"

	"stash-app-api/core/domain"
	"stash-app-api/core/errors"
	"stash-app-api/core/interfaces"
)

const (
	// maxTags is the requested upper bound on keyword tags
	maxTags = 5

	// DefaultModel is the completion model used when none is configured
	DefaultModel = "gemini-2.5-flash"

	// DefaultEndpoint is the completion API base URL
	DefaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"
)

const promptTemplate = `Analyze the following article content and provide a title, a concise summary (3-4 bullet points), and a list of 3-5 relevant keyword tags.

Article Content:
---
%s
---
`

// Config holds the completion endpoint settings
type Config struct {
	// Endpoint is the API base URL
	Endpoint string

	// Model is the completion model name
	Model string

	// APIKey authenticates requests to the endpoint
	APIKey string
}

// Service sends cleaned article text to the completion endpoint
type Service struct {
	deps interfaces.Dependencies
	cfg  Config
}

// NewService creates a new analyzer service instance
func NewService(deps interfaces.Dependencies, cfg Config) *Service {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	return &Service{
		deps: deps,
		cfg:  cfg,
	}
}

// completionRequest is the generateContent request body
type completionRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   responseSchema `json:"responseSchema"`
}

type responseSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]schemaProperty `json:"properties"`
	Required   []string                  `json:"required"`
}

type schemaProperty struct {
	Type        string          `json:"type"`
	Items       *schemaProperty `json:"items,omitempty"`
	Description string          `json:"description,omitempty"`
}

// completionResponse is the subset of the generateContent response we read
type completionResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// Analyze sends the article text to the completion endpoint and parses the
// structured result. Any transport error, non-conforming response, or parse
// failure collapses to a single AnalysisError with no partial result.
func (s *Service) Analyze(ctx context.Context, articleText string) (*domain.Analysis, error) {
	if articleText == "" {
		return nil, &errors.AnalysisError{Cause: stderrors.New("article text is empty")}
	}

	// Check cache first, keyed by content hash
	cacheKey := analysisCacheKey(articleText)
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached domain.Analysis
			if err := json.Unmarshal(data, &cached); err == nil && cached.IsValid() {
				return &cached, nil
			}
		}
	}

	body, err := json.Marshal(buildRequest(articleText))
	if err != nil {
		return nil, &errors.AnalysisError{Cause: err}
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.cfg.Endpoint, s.cfg.Model, s.cfg.APIKey)
	resp, err := s.deps.HTTPClient.Post(ctx, endpoint, bytes.NewReader(body))
	if err != nil {
		s.logFailure("completion request failed", err)
		return nil, &errors.AnalysisError{Cause: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		err := fmt.Errorf("completion endpoint returned status %d", resp.StatusCode())
		s.logFailure("completion request rejected", err)
		return nil, &errors.AnalysisError{Cause: err}
	}

	result, err := parseResponse(resp.Body())
	if err != nil {
		s.logFailure("completion response unusable", err)
		return nil, &errors.AnalysisError{Cause: err}
	}

	// Cache the result
	if s.deps.Cache != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, 24*time.Hour)
		}
	}

	return result, nil
}

// buildRequest constructs the single schema-constrained completion request
func buildRequest(articleText string) completionRequest {
	return completionRequest{
		Contents: []requestContent{
			{Parts: []requestPart{{Text: fmt.Sprintf(promptTemplate, articleText)}}},
		},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema: responseSchema{
				Type: "OBJECT",
				Properties: map[string]schemaProperty{
					"title": {
						Type:        "STRING",
						Description: "A short, descriptive title for the article.",
					},
					"summary": {
						Type:        "STRING",
						Description: "A concise summary of the article, formatted as 3-4 bullet points starting with a hyphen.",
					},
					"tags": {
						Type:        "ARRAY",
						Items:       &schemaProperty{Type: "STRING"},
						Description: "An array of 3-5 relevant keyword tags.",
					},
				},
				Required: []string{"title", "summary", "tags"},
			},
		},
	}
}

// parseResponse extracts the three-field record from the response envelope
func parseResponse(body io.Reader) (*domain.Analysis, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}

	var envelope completionResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, err
	}

	if len(envelope.Candidates) == 0 || len(envelope.Candidates[0].Content.Parts) == 0 {
		return nil, stderrors.New("completion response contains no candidates")
	}

	var result domain.Analysis
	if err := json.Unmarshal([]byte(envelope.Candidates[0].Content.Parts[0].Text), &result); err != nil {
		return nil, err
	}

	if !result.IsValid() {
		return nil, stderrors.New("completion result is missing required fields")
	}

	if len(result.Tags) > maxTags {
		result.Tags = result.Tags[:maxTags]
	}

	return &result, nil
}

// analysisCacheKey hashes the article text so long content keys stay bounded
func analysisCacheKey(articleText string) string {
	sum := sha256.Sum256([]byte(articleText))
	return "analysis:" + hex.EncodeToString(sum[:])
}

func (s *Service) logFailure(msg string, err error) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, map[string]interface{}{
			"error": err.Error(),
		})
	}
}
