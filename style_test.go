package commentify

import "testing"

func TestStyleByNameAliases(t *testing.T) {
	expected := map[string]Style{
		"":           StyleNone,
		"none":       StyleNone,
		"py":         StylePython,
		"Python":     StylePython,
		" js ":       StyleJS,
		"JavaScript": StyleJS,
	}
	for name, want := range expected {
		got, ok := StyleByName(name)
		if !ok {
			t.Fatalf("expected style %q to be available", name)
		}
		if got != want {
			t.Fatalf("StyleByName(%q)=%s want %s", name, got, want)
		}
	}
	if _, ok := StyleByName("cobol"); ok {
		t.Fatalf("expected unknown style to be rejected")
	}

	available := AvailableStyles()
	present := make(map[string]struct{}, len(available))
	for _, name := range available {
		present[name] = struct{}{}
	}
	for _, name := range []string{"none", "py", "js"} {
		if _, ok := present[name]; !ok {
			t.Fatalf("expected style %q in available list", name)
		}
	}
}

func TestStyleDelimiters(t *testing.T) {
	cases := []struct {
		style        Style
		open         string
		close        string
		prefix       string
		continuation string
	}{
		{StyleNone, "", "", "", ""},
		{StylePython, `"""`, `"""`, "# ", ""},
		{StyleJS, "/**", " */", "// ", " * "},
		{Style(42), "", "", "", ""},
	}
	for _, tc := range cases {
		if tc.style.Open() != tc.open || tc.style.Close() != tc.close {
			t.Fatalf("%s: block markers %q %q", tc.style, tc.style.Open(), tc.style.Close())
		}
		if tc.style.LinePrefix() != tc.prefix {
			t.Fatalf("%s: line prefix %q", tc.style, tc.style.LinePrefix())
		}
		if tc.style.Continuation() != tc.continuation {
			t.Fatalf("%s: continuation %q", tc.style, tc.style.Continuation())
		}
	}
	if got := Style(42).String(); got != "style(42)" {
		t.Fatalf("unexpected unknown style name %q", got)
	}
}
