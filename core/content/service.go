// ABOUTME: Content fetcher service retrieves a page and reduces it to plain text
// ABOUTME: Heuristic DOM cleaning with goquery plus a readability salvage pass

package content

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"
	"time"

	"stash-app-api/core/errors"
	"stash-app-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	// maxContentLength bounds the text handed to the analyzer, in characters
	maxContentLength = 15000

	// truncationMarker is appended when content is cut at maxContentLength
	truncationMarker = "... [Content Truncated]"

	// maxExcerptLength bounds the error-body excerpt carried on fetch failures
	maxExcerptLength = 200

	// removeSelector lists nodes that are never part of the main content
	removeSelector = `script, style, link[rel="stylesheet"], noscript, header, footer, nav, aside, form, iframe, [aria-hidden="true"]`

	// mainSelector matches the main-content region candidates in priority order
	mainSelector = `article, main, [role="main"]`
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// Service fetches pages and extracts their readable text
type Service struct {
	deps     interfaces.Dependencies
	relayURL string
}

// NewService creates a new content fetcher service.
// relayURL is an optional fetch relay endpoint; when set, pages are
// requested as <relayURL>?url=<escaped target> instead of directly.
func NewService(deps interfaces.Dependencies, relayURL string) *Service {
	return &Service{
		deps:     deps,
		relayURL: relayURL,
	}
}

// FetchCleanText returns the cleaned plain text of the page's primary
// content, truncated to maxContentLength. All failures are terminal for the
// current submission; nothing is retried here.
func (s *Service) FetchCleanText(ctx context.Context, pageURL string) (string, error) {
	if err := validateURL(pageURL); err != nil {
		return "", err
	}

	// Check cache first
	cacheKey := "content:" + pageURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && len(data) > 0 {
			return string(data), nil
		}
	}

	markup, err := s.fetchMarkup(ctx, pageURL)
	if err != nil {
		return "", err
	}

	text := extractMainText(markup)
	if text == "" {
		// Heuristic extraction came up empty; let readability have a go
		// before giving up on the page.
		text = salvageWithReadability(markup, pageURL)
	}

	if text == "" {
		return "", &errors.EmptyContentError{URL: pageURL}
	}

	// The budget counts characters, not bytes; slicing the string directly
	// would split multi-byte runes.
	if runes := []rune(text); len(runes) > maxContentLength {
		text = string(runes[:maxContentLength]) + truncationMarker
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(text), 1*time.Hour)
	}

	return text, nil
}

// validateURL rejects malformed URLs before any network call is made
func validateURL(pageURL string) error {
	if strings.TrimSpace(pageURL) == "" {
		return &errors.InvalidInputError{Field: "url", Message: "URL cannot be empty"}
	}

	parsed, err := url.Parse(pageURL)
	if err != nil {
		return &errors.InvalidInputError{Field: "url", Message: "URL is not well-formed"}
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &errors.InvalidInputError{Field: "url", Message: "URL must use http or https"}
	}

	if parsed.Host == "" {
		return &errors.InvalidInputError{Field: "url", Message: "URL must be absolute"}
	}

	return nil
}

// fetchMarkup retrieves the raw page markup, through the relay if configured
func (s *Service) fetchMarkup(ctx context.Context, pageURL string) ([]byte, error) {
	resp, err := s.deps.HTTPClient.Get(ctx, s.requestURL(pageURL))
	if err != nil {
		return nil, &errors.FetchError{URL: pageURL, Network: true, Cause: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		excerpt := readExcerpt(resp.Body())
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Page fetch returned non-success status", map[string]interface{}{
				"url":    pageURL,
				"status": resp.StatusCode(),
			})
		}
		return nil, &errors.FetchError{
			URL:        pageURL,
			StatusCode: resp.StatusCode(),
			Excerpt:    excerpt,
		}
	}

	markup, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, &errors.FetchError{URL: pageURL, Network: true, Cause: err}
	}

	return markup, nil
}

// requestURL builds the outbound URL, routing through the relay when set
func (s *Service) requestURL(pageURL string) string {
	if s.relayURL == "" {
		return pageURL
	}
	return fmt.Sprintf("%s?url=%s", s.relayURL, url.QueryEscape(pageURL))
}

// readExcerpt reads at most maxExcerptLength characters of an error body
func readExcerpt(body io.Reader) string {
	data, err := io.ReadAll(io.LimitReader(body, maxExcerptLength))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// extractMainText parses the markup, strips non-content nodes, selects the
// main content region, and collapses its text to single-spaced plain text.
func extractMainText(markup []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(markup))
	if err != nil {
		return ""
	}

	doc.Find(removeSelector).Remove()

	region := doc.Find(mainSelector).First()
	if region.Length() == 0 {
		region = doc.Find("body")
	}

	return collapseWhitespace(region.Text())
}

// salvageWithReadability runs go-readability over the raw markup as a last
// resort when the heuristic selectors find nothing.
func salvageWithReadability(markup []byte, pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	article, err := readability.FromReader(bytes.NewReader(markup), parsed)
	if err != nil {
		return ""
	}

	return collapseWhitespace(article.TextContent)
}

// collapseWhitespace reduces runs of whitespace to single spaces and trims
func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}
