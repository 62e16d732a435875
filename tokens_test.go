package commentify

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		text string
		want []string
	}{
		{"alpha  beta\tgamma", []string{"alpha", "beta", "gamma"}},
		{"a\nb", []string{"a", "\n", "b"}},
		{"a\n\nb", []string{"a", "\n", "\n", "b"}},
		{"\n \na\n\n", []string{"a"}},
		{"a\r\nb", []string{"a", "\n", "b"}},
		{"", []string{}},
		{" \n\t\n", []string{}},
	}
	for _, tc := range cases {
		toks := tokenize(tc.text)
		got := make([]string, 0, len(toks))
		for _, tok := range toks {
			got = append(got, tok.text)
			if (tok.text == "\n") != (tok.kind == tokenBreak) {
				t.Fatalf("tokenize(%q): token %q has kind %d", tc.text, tok.text, tok.kind)
			}
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Fatalf("tokenize(%q)=%q want %q", tc.text, got, tc.want)
		}
	}
}

func TestTokenWidth(t *testing.T) {
	toks := tokenize("word 日本語\nx")
	widths := []int{4, 6, 0, 1}
	if len(toks) != len(widths) {
		t.Fatalf("unexpected token count %d", len(toks))
	}
	for i, tok := range toks {
		if tok.width() != widths[i] {
			t.Fatalf("token %q width %d want %d", tok.text, tok.width(), widths[i])
		}
	}
}

func TestWrapAccumulator(t *testing.T) {
	got := wrap(tokenize("aa bb cc\n\ndd"), 7, "> ")
	want := []string{"> aa ", "> bb ", "> cc ", "> ", "> dd "}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("wrap=%q want %q", got, want)
	}
}
