package commentify

import (
	"strings"

	"github.com/muesli/reflow/ansi"
)

// ansiWidth returns the number of terminal columns text occupies.
func ansiWidth(text string) int {
	return ansi.PrintableRuneWidth(text)
}

// trimTrailingSpaces removes trailing ' ' only. Tabs and other whitespace stay.
func trimTrailingSpaces(text string) string {
	return strings.TrimRight(text, " ")
}

// normalizeBreaks turns CRLF and lone CR line endings into LF.
func normalizeBreaks(text string) string {
	if !strings.Contains(text, "\r") {
		return text
	}
	return breakReplacer.Replace(text)
}

var breakReplacer = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// stripEscapes removes terminal escape sequences, reading them the same way
// ansiWidth skips them: from the marker up to the first terminator.
func stripEscapes(text string) string {
	if !strings.ContainsRune(text, ansi.Marker) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	inEscape := false
	for _, r := range text {
		switch {
		case r == ansi.Marker:
			inEscape = true
		case inEscape:
			if ansi.IsTerminator(r) {
				inEscape = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
