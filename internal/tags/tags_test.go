package tags

import (
	"testing"

	"mvault/internal/credits"
)

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFromVisualHookExactPhraseWins(t *testing.T) {
	got := FromVisualHook("Bangkok Cyberpunk Choreography")
	want := []string{"cyberpunk", "dance-choreography", "urban", "neon-lights"}
	if !equal(got, want) {
		t.Fatalf("exact mapping not used: %v", got)
	}
}

func TestFromVisualHookKeywordScan(t *testing.T) {
	got := FromVisualHook("surreal dance piece in the city")
	for _, want := range []string{"dance-choreography", "surreal", "urban"} {
		found := false
		for _, tag := range got {
			if tag == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected %s in %v", want, got)
		}
	}
}

func TestFromVisualHookNoDuplicates(t *testing.T) {
	got := FromVisualHook("dancing dance choreography")
	if !equal(got, []string{"dance-choreography"}) {
		t.Fatalf("expected single deduplicated tag, got %v", got)
	}
}

func TestFromVisualHookFallbacks(t *testing.T) {
	if got := FromVisualHook(""); !equal(got, []string{Uncategorized}) {
		t.Fatalf("empty hook: %v", got)
	}
	if got := FromVisualHook("totally unique phrasing"); !equal(got, []string{Uncategorized}) {
		t.Fatalf("unmatched hook: %v", got)
	}
}

func TestForRecordInjectedTagsWin(t *testing.T) {
	got := ForRecord([]string{"one-take"}, credits.Record{Director: "Someone"}, "2016")
	if !equal(got, []string{"one-take"}) {
		t.Fatalf("injected tags must win: %v", got)
	}
}

func TestForRecordDirectorAndDecade(t *testing.T) {
	got := ForRecord(nil, credits.Record{Director: "Martin C. Pariseau"}, "2016")
	if !equal(got, []string{"dir-martin-c-pariseau", "2010s"}) {
		t.Fatalf("unexpected tags: %v", got)
	}
}

func TestForRecordTruncatesLongDirectorSlug(t *testing.T) {
	got := ForRecord(nil, credits.Record{Director: "An Extremely Long Collective Name"}, "2016")
	if len(got) != 2 {
		t.Fatalf("unexpected tags: %v", got)
	}
	if len(got[0]) > len("dir-")+20 {
		t.Fatalf("director slug not truncated: %q", got[0])
	}
}

func TestForRecordUncategorizedFallback(t *testing.T) {
	got := ForRecord(nil, credits.Record{}, "2016")
	if !equal(got, []string{Uncategorized}) {
		t.Fatalf("expected uncategorized, got %v", got)
	}
}
