package commentify

// lineBuilder accumulates the words of one output line. width counts the
// lead and the space that follows every word.
type lineBuilder struct {
	text  []byte
	width int
	words int
}

func newLine(lead string, leadWidth int) lineBuilder {
	l := lineBuilder{width: leadWidth}
	l.text = append(l.text, lead...)
	return l
}

func (l *lineBuilder) add(tok token) {
	l.text = append(l.text, tok.text...)
	l.text = append(l.text, ' ')
	l.width += tok.width() + 1
	l.words++
}

// fits reports whether tok can join the line without reaching budget.
// The first word of a line always fits, however long it is.
func (l *lineBuilder) fits(tok token, budget int) bool {
	return l.words == 0 || l.width+tok.width() < budget
}

// wrap lays tokens out greedily on lines narrower than budget. Each line
// starts with lead, which counts toward the budget. Breaks always start a
// new line, even after an empty one.
func wrap(toks []token, budget int, lead string) []string {
	leadWidth := ansiWidth(lead)
	lines := make([]lineBuilder, 1, len(toks)/8+1)
	lines[0] = newLine(lead, leadWidth)
	for _, tok := range toks {
		if tok.kind == tokenBreak {
			lines = append(lines, newLine(lead, leadWidth))
			continue
		}
		if !lines[len(lines)-1].fits(tok, budget) {
			lines = append(lines, newLine(lead, leadWidth))
		}
		lines[len(lines)-1].add(tok)
	}
	out := make([]string, len(lines))
	for i := range lines {
		out[i] = string(lines[i].text)
	}
	return out
}
