package naming

import "testing"

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Lite Spots", "lite-spots"},
		{"Dust My Shoulders Off", "dust-my-shoulders-off"},
		{"A$AP Rocky", "aap-rocky"},
		{"Fontaines D.C.", "fontaines-dc"},
		{"Beyoncé", "beyonce"},
		{"  spaced   out  ", "spaced-out"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := Slugify(tc.in); got != tc.want {
			t.Errorf("Slugify(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSlugifyDeterministic(t *testing.T) {
	first := RecordSlug("2016", "Kaytranada", "Lite Spots")
	second := RecordSlug("2016", "Kaytranada", "Lite Spots")
	if first != second {
		t.Fatalf("slug generation not deterministic: %q vs %q", first, second)
	}
	if first != "2016-kaytranada-lite-spots" {
		t.Fatalf("unexpected slug: %q", first)
	}
}

func TestNormalizeChannelMapping(t *testing.T) {
	artist, ok := NormalizeChannel("Jungle4eva")
	if !ok {
		t.Fatal("expected a resolved artist")
	}
	if artist != "Jungle" {
		t.Fatalf("expected Jungle, got %q", artist)
	}
}

func TestNormalizeChannelLabelSignalsTitleExtraction(t *testing.T) {
	if _, ok := NormalizeChannel("Foreign Family Collective"); ok {
		t.Fatal("label channel should signal extract-from-title")
	}
}

func TestNormalizeChannelNoiseSuffix(t *testing.T) {
	artist, ok := NormalizeChannel("RosaliaVEVO")
	if !ok {
		t.Fatal("expected a resolved artist")
	}
	if artist != "Rosalia" {
		t.Fatalf("expected suffix stripped, got %q", artist)
	}
}

func TestNormalizeChannelUnknownPassesThrough(t *testing.T) {
	artist, ok := NormalizeChannel("Some Band")
	if !ok || artist != "Some Band" {
		t.Fatalf("unknown channel should pass through, got %q ok=%v", artist, ok)
	}
}

func TestNormalizeArtist(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"idles", "IDLES"},
		{"Charli xcx", "Charli XCX"},
		{"fontaines dc", "Fontaines D.C."},
		{"Radiohead", "Radiohead"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeArtist(tc.in); got != tc.want {
			t.Errorf("NormalizeArtist(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCleanTitleRemovesArtistPrefix(t *testing.T) {
	got := CleanTitle("Jane Zhang - Dust My Shoulders Off", "Jane Zhang")
	if got != "Dust My Shoulders Off" {
		t.Fatalf("expected artist prefix removed, got %q", got)
	}
}

func TestCleanTitleCollaborationPrefix(t *testing.T) {
	got := CleanTitle("Fred again.. & Jozzy - ten", "Fred again..")
	if got != "ten" {
		t.Fatalf("expected collaboration prefix removed, got %q", got)
	}
}

func TestCleanTitleSuffixAndQualityTags(t *testing.T) {
	cases := []struct {
		title  string
		artist string
		want   string
	}{
		{"Massive Attack - Voodoo In My Blood (Official Video)", "Massive Attack", "Voodoo In My Blood"},
		{"LISA - ROCKSTAR [4K]", "LISA", "ROCKSTAR"},
		{"[MV] IU - Celebrity", "IU", "Celebrity"},
		{"Captain Ants - AntsLive", "AntsLive", "Captain Ants"},
	}
	for _, tc := range cases {
		if got := CleanTitle(tc.title, tc.artist); got != tc.want {
			t.Errorf("CleanTitle(%q, %q) = %q, want %q", tc.title, tc.artist, got, tc.want)
		}
	}
}

func TestCleanTitlePrefersQuotedSubstring(t *testing.T) {
	got := CleanTitle(`The Shoes "Time To Dance"`, "The Shoes")
	if got != "Time To Dance" {
		t.Fatalf("expected quoted title preferred, got %q", got)
	}
}

func TestCleanTitleSafetyFallback(t *testing.T) {
	// Artist duplicated; everything else would be stripped away.
	got := CleanTitle("Brodinski - Brodinski - Can't Help Myself", "Brodinski")
	if got != "Can't Help Myself" {
		t.Fatalf("expected fallback to last separator segment, got %q", got)
	}
}

func TestCleanTitleIdempotent(t *testing.T) {
	inputs := []struct {
		title  string
		artist string
	}{
		{"Jane Zhang - Dust My Shoulders Off", "Jane Zhang"},
		{"Massive Attack - Voodoo In My Blood (Official Video)", "Massive Attack"},
		{"[MV] IU - Celebrity", "IU"},
		{"LISA - ROCKSTAR (Official Music Video) [4K]", "LISA"},
	}
	for _, tc := range inputs {
		once := CleanTitle(tc.title, tc.artist)
		twice := CleanTitle(once, tc.artist)
		if once != twice {
			t.Errorf("CleanTitle not idempotent for %q: %q -> %q", tc.title, once, twice)
		}
	}
}
