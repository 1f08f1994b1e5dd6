package links

import (
	"testing"

	"stash-app-api/core/domain"
)

func sampleLinks() []domain.Link {
	return []domain.Link{
		{URL: "https://blog.example.com/go-generics", Title: "Go Generics", Summary: "- Type parameters", Tags: []string{"go", "language"}},
		{URL: "https://example.com/cooking", Title: "Weeknight Pasta", Summary: "- Quick dinner ideas", Tags: []string{"food"}},
		{URL: "https://example.com/go-profiling", Title: "Profiling Services", Summary: "- pprof walkthrough in Go", Tags: []string{"go", "performance"}},
	}
}

func TestFilter_EmptyQueryAndTagMatchesAll(t *testing.T) {
	got := Filter(sampleLinks(), "", "")

	if len(got) != 3 {
		t.Errorf("expected all links, got %d", len(got))
	}
}

func TestFilter_QueryMatchesTitleCaseInsensitive(t *testing.T) {
	got := Filter(sampleLinks(), "GENERICS", "")

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Title != "Go Generics" {
		t.Errorf("wrong match: %q", got[0].Title)
	}
}

func TestFilter_QueryMatchesSummary(t *testing.T) {
	got := Filter(sampleLinks(), "pprof", "")

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Title != "Profiling Services" {
		t.Errorf("wrong match: %q", got[0].Title)
	}
}

func TestFilter_QueryMatchesURL(t *testing.T) {
	got := Filter(sampleLinks(), "blog.example", "")

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].URL != "https://blog.example.com/go-generics" {
		t.Errorf("wrong match: %q", got[0].URL)
	}
}

func TestFilter_TagOnly(t *testing.T) {
	got := Filter(sampleLinks(), "", "go")

	if len(got) != 2 {
		t.Errorf("expected 2 matches for tag, got %d", len(got))
	}
}

func TestFilter_TagIsExactMatch(t *testing.T) {
	got := Filter(sampleLinks(), "", "g")

	if len(got) != 0 {
		t.Errorf("tag filtering must not do substring matching, got %d matches", len(got))
	}
}

func TestFilter_QueryAndTagIntersect(t *testing.T) {
	got := Filter(sampleLinks(), "profiling", "go")

	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Title != "Profiling Services" {
		t.Errorf("wrong match: %q", got[0].Title)
	}
}

func TestFilter_QueryAndTagNoOverlap(t *testing.T) {
	got := Filter(sampleLinks(), "pasta", "go")

	if len(got) != 0 {
		t.Errorf("expected empty intersection, got %d", len(got))
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleLinks(), "", "go")

	if got[0].Title != "Go Generics" || got[1].Title != "Profiling Services" {
		t.Error("filter must preserve the input order")
	}
}

func TestDistinctTags_SortedSet(t *testing.T) {
	got := DistinctTags(sampleLinks())

	want := []string{"food", "go", "language", "performance"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestDistinctTags_EmptyList(t *testing.T) {
	got := DistinctTags(nil)

	if len(got) != 0 {
		t.Errorf("expected no tags, got %v", got)
	}
}
