// ABOUTME: Analysis domain model holds the structured result of AI content analysis
// ABOUTME: Title, bullet summary, and keyword tags derived from cleaned article text

package domain

// Analysis is the structured result returned by the content analyzer
type Analysis struct {
	// Title is a short descriptive title for the article
	Title string `json:"title"`

	// Summary is 3-4 bullet points, newline-delimited, hyphen-prefixed
	Summary string `json:"summary"`

	// Tags is an ordered list of 3-5 keyword tags
	Tags []string `json:"tags"`
}

// IsValid reports whether the analysis conforms to the expected shape
func (a *Analysis) IsValid() bool {
	return a.Title != "" && a.Summary != "" && len(a.Tags) > 0
}
