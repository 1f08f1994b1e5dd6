// ABOUTME: Metadata extraction service scrapes Open Graph tags from article pages
// ABOUTME: Uses colly to collect site name and preview image for link enrichment

package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"stash-app-api/core/interfaces"

	"github.com/gocolly/colly"
)

const (
	collyUserAgent = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
)

// MetadataService handles metadata extraction from URLs
type MetadataService struct {
	deps interfaces.Dependencies
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies) *MetadataService {
	return &MetadataService{
		deps: deps,
	}
}

// ExtractMetadata scrapes Open Graph metadata from a single URL. Results
// are cached; extraction is best effort and callers treat nil as "none".
func (s *MetadataService) ExtractMetadata(ctx context.Context, targetURL string) (*interfaces.MetadataResult, error) {
	// Check cache first
	cacheKey := "metadata:" + targetURL
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result interfaces.MetadataResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	result := s.extractFromURL(targetURL)

	if s.deps.Cache != nil && result != nil {
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, 24*time.Hour)
		}
	}

	return result, nil
}

// extractFromURL performs the actual scrape
func (s *MetadataService) extractFromURL(targetURL string) *interfaces.MetadataResult {
	if targetURL == "" || targetURL == "about:blank" {
		return nil
	}

	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(10 * time.Second)

	result := &interfaces.MetadataResult{}

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		content := e.Attr("content")
		if content == "" {
			return
		}

		switch e.Attr("property") {
		case "og:title":
			if result.Title == "" {
				result.Title = content
			}
		case "og:site_name":
			result.SiteName = content
		case "og:image":
			if result.Image == "" {
				result.Image = content
			}
		}
	})

	c.OnHTML("title", func(e *colly.HTMLElement) {
		if result.Title == "" {
			result.Title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML(`link[rel="icon"], link[rel="shortcut icon"]`, func(e *colly.HTMLElement) {
		if result.Favicon == "" {
			result.Favicon = e.Request.AbsoluteURL(e.Attr("href"))
		}
	})

	if err := c.Visit(targetURL); err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Debug("Metadata scrape failed", map[string]interface{}{
				"url":   targetURL,
				"error": err.Error(),
			})
		}
		return nil
	}
	c.Wait()

	if result.Title == "" && result.SiteName == "" && result.Image == "" {
		return nil
	}

	return result
}
