package credits

import "testing"

func TestValidateDirectorAcceptsCleanNames(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Aidan Zamiri", "Aidan Zamiri"},
		{"- Aube Perrie.", "Aube Perrie"},
		{"  Dom & Nic  ", "Dom & Nic"},
	}
	for _, tc := range cases {
		if got := ValidateDirector(tc.in); got != tc.want {
			t.Errorf("ValidateDirector(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestValidateDirectorRejectsRoleConfusion(t *testing.T) {
	rejected := []string{
		"Director of Photography",
		"Creative Director",
		"Assistant Director",
		"Casting Director",
		"Production Coordinator",
		"Ben Carey (Editor)",
		"Camera Operator",
	}
	for _, in := range rejected {
		if got := ValidateDirector(in); got != "" {
			t.Errorf("ValidateDirector(%q) = %q, want rejection", in, got)
		}
	}
}

func TestValidateDirectorRejectsShapes(t *testing.T) {
	rejected := []string{
		"",
		"   ",
		"X",
		"The director did a great job on this one and everyone loved it",
		"This is a name",
		"Official",
	}
	for _, in := range rejected {
		if got := ValidateDirector(in); got != "" {
			t.Errorf("ValidateDirector(%q) = %q, want rejection", in, got)
		}
	}
}

func TestValidateDirectorBlocklistMatchesSubstrings(t *testing.T) {
	// The blocklist matches substrings, not words: "art" inside "Martin"
	// rejects the whole name. Deliberately pinned; the gate prefers a
	// missing credit over a leaked role fragment.
	if got := ValidateDirector("Martin Scorsese"); got != "" {
		t.Fatalf("expected substring rejection, got %q", got)
	}
}

func TestValidateDirectorDeterministic(t *testing.T) {
	first := ValidateDirector("Aube Perrie")
	second := ValidateDirector("Aube Perrie")
	if first == "" || first != second {
		t.Fatalf("expected stable non-empty result, got %q then %q", first, second)
	}
}
