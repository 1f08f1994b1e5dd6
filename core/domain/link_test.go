package domain

import "testing"

func TestNewLink_CopiesAnalysisFields(t *testing.T) {
	analysis := Analysis{
		Title:   "A Title",
		Summary: "- point one\n- point two",
		Tags:    []string{"go", "testing"},
	}

	link, err := NewLink("alice", "https://example.com/post", analysis)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if link.Title != analysis.Title {
		t.Errorf("title not copied: %q", link.Title)
	}
	if link.Summary != analysis.Summary {
		t.Errorf("summary not copied: %q", link.Summary)
	}
	if len(link.Tags) != 2 {
		t.Errorf("tags not copied: %v", link.Tags)
	}
	if link.ID != "" {
		t.Error("ID assignment belongs to the storage layer")
	}
	if !link.CreatedAt.IsZero() {
		t.Error("CreatedAt assignment belongs to the storage layer")
	}
}

func TestNewLink_RequiresOwner(t *testing.T) {
	_, err := NewLink("", "https://example.com/post", Analysis{})

	if err == nil {
		t.Error("expected error for missing owner")
	}
}

func TestNewLink_RequiresAbsoluteURL(t *testing.T) {
	cases := []string{"", "not a url", "/relative/path", "example.com/no-scheme"}
	for _, raw := range cases {
		if _, err := NewLink("alice", raw, Analysis{}); err == nil {
			t.Errorf("expected error for URL %q", raw)
		}
	}
}

func TestHasTag(t *testing.T) {
	link := Link{Tags: []string{"go", "web"}}

	if !link.HasTag("go") {
		t.Error("expected HasTag to find an existing tag")
	}
	if link.HasTag("GO") {
		t.Error("tag matching is case-sensitive")
	}
	if link.HasTag("rust") {
		t.Error("expected HasTag to miss an absent tag")
	}
}

func TestAnalysis_IsValid(t *testing.T) {
	valid := Analysis{Title: "t", Summary: "s", Tags: []string{"x"}}
	if !valid.IsValid() {
		t.Error("expected complete analysis to be valid")
	}

	cases := []Analysis{
		{Summary: "s", Tags: []string{"x"}},
		{Title: "t", Tags: []string{"x"}},
		{Title: "t", Summary: "s"},
	}
	for i, a := range cases {
		if a.IsValid() {
			t.Errorf("case %d: expected incomplete analysis to be invalid", i)
		}
	}
}

func TestSession_IsValid(t *testing.T) {
	signedIn := Session{UserID: "alice"}
	if !signedIn.IsValid() {
		t.Error("expected session with user id to be valid")
	}

	anonymous := Session{DisplayName: "No ID"}
	if anonymous.IsValid() {
		t.Error("expected session without user id to be invalid")
	}
}

func TestSessionState_String(t *testing.T) {
	cases := []struct {
		state SessionState
		want  string
	}{
		{SessionLoading, "loading"},
		{SessionSignedIn, "signedIn"},
		{SessionSignedOut, "signedOut"},
		{SessionState(99), "loading"},
	}

	for _, tc := range cases {
		if got := tc.state.String(); got != tc.want {
			t.Errorf("state %d: expected %q, got %q", tc.state, tc.want, got)
		}
	}
}
