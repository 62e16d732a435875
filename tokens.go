package commentify

import "strings"

// token is a word or a mandatory line break in the source text.
type token struct {
	text string
	kind tokenKind
	cols int
}

type tokenKind uint8

const (
	tokenWord tokenKind = iota
	tokenBreak
)

// tokenize splits text into words and mandatory breaks. Every '\n' becomes a
// break; breaks before the first word and after the last are dropped.
func tokenize(text string) []token {
	text = normalizeBreaks(text)
	toks := make([]token, 0, strings.Count(text, " ")+strings.Count(text, "\n")+1)
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			toks = append(toks, token{text: "\n", kind: tokenBreak})
		}
		for _, word := range strings.Fields(line) {
			toks = append(toks, token{text: word, kind: tokenWord, cols: ansiWidth(word)})
		}
	}
	return trimBreaks(toks)
}

func trimBreaks(toks []token) []token {
	start := 0
	for start < len(toks) && toks[start].kind == tokenBreak {
		start++
	}
	end := len(toks)
	for end > start && toks[end-1].kind == tokenBreak {
		end--
	}
	return toks[start:end]
}

// width returns the display width of the token. Breaks are zero width.
func (t token) width() int {
	if t.kind == tokenBreak {
		return 0
	}
	return t.cols
}
