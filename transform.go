package commentify

import "strings"

// Transform renders text according to cfg. It fails only when cfg is
// invalid; empty text yields empty or delimiter-only output.
func Transform(text string, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	return transform(text, cfg), nil
}

// transform expects a validated cfg.
func transform(text string, cfg Config) string {
	text = normalizeBreaks(text)
	if cfg.Mode == ModeQuote {
		return quote(text)
	}
	if cfg.StripNewlines {
		text = removeBreaks(text)
	}
	switch cfg.Mode {
	case ModeRemoveBreaks:
		return removeBreaks(text)
	case ModeLineComment:
		return lineComments(text, cfg)
	default:
		return blockComment(text, cfg)
	}
}

// removeBreaks replaces each line break with one space. Runs of breaks
// become runs of spaces.
func removeBreaks(text string) string {
	return strings.ReplaceAll(text, "\n", " ")
}

// quote wraps every non-blank line in double quotes and separates them
// with an empty line.
func quote(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, paragraph := range strings.Split(text, "\n") {
		paragraph = trimTrailingSpaces(paragraph)
		if paragraph == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteByte('"')
		b.WriteString(paragraph)
		b.WriteByte('"')
	}
	return b.String()
}

func lineComments(text string, cfg Config) string {
	toks := tokenize(text)
	if len(toks) == 0 {
		return ""
	}
	indent := strings.Repeat(" ", cfg.EffectiveIndent())
	lines := wrap(toks, cfg.Budget(), cfg.Style.LinePrefix())
	var b strings.Builder
	b.Grow(len(text) + len(lines)*(len(indent)+4))
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(line)
	}
	return b.String()
}

func blockComment(text string, cfg Config) string {
	d := cfg.Style.delimiters()
	styled := cfg.Style != StyleNone
	indent := strings.Repeat(" ", cfg.EffectiveIndent())
	toks := tokenize(text)

	var b strings.Builder
	b.Grow(len(text) + 16)
	if styled {
		b.WriteString(indent)
		b.WriteString(d.open)
		b.WriteByte('\n')
	}
	if len(toks) > 0 {
		lines := wrap(toks, cfg.Budget(), "")
		for i, line := range lines {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(indent)
			b.WriteString(d.continuation)
			b.WriteString(line)
		}
		if styled {
			b.WriteByte('\n')
		}
	}
	if styled {
		b.WriteString(indent)
		b.WriteString(d.close)
		b.WriteByte('\n')
	}
	return b.String()
}
