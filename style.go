package commentify

import (
	"fmt"
	"strings"
)

// Style selects the comment delimiters used by the comment modes.
type Style uint8

const (
	// StyleNone emits no delimiters, only wrapped text.
	StyleNone Style = iota
	// StylePython uses docstring quotes and # line comments.
	StylePython
	// StyleJS uses /** */ blocks and // line comments.
	StyleJS
)

// delimiters groups the markers a style adds around and inside comments.
type delimiters struct {
	name         string
	open         string
	close        string
	linePrefix   string
	continuation string
}

var builtinStyles = [...]delimiters{
	StyleNone:   {name: "none"},
	StylePython: {name: "py", open: `"""`, close: `"""`, linePrefix: "# "},
	StyleJS:     {name: "js", open: "/**", close: " */", linePrefix: "// ", continuation: " * "},
}

var styleAliases = map[string]Style{
	"":           StyleNone,
	"none":       StyleNone,
	"py":         StylePython,
	"python":     StylePython,
	"js":         StyleJS,
	"javascript": StyleJS,
}

func (s Style) valid() bool {
	return int(s) < len(builtinStyles)
}

// delimiters returns the markers of s. Unknown styles have none.
func (s Style) delimiters() delimiters {
	if !s.valid() {
		return builtinStyles[StyleNone]
	}
	return builtinStyles[s]
}

func (s Style) String() string {
	if !s.valid() {
		return fmt.Sprintf("style(%d)", uint8(s))
	}
	return builtinStyles[s].name
}

// Open returns the block comment opening marker.
func (s Style) Open() string { return s.delimiters().open }

// Close returns the block comment closing marker.
func (s Style) Close() string { return s.delimiters().close }

// LinePrefix returns the line comment prefix, trailing space included.
func (s Style) LinePrefix() string { return s.delimiters().linePrefix }

// Continuation returns the marker that starts each line inside a block comment.
func (s Style) Continuation() string { return s.delimiters().continuation }

// AvailableStyles returns the canonical style names.
func AvailableStyles() []string {
	names := make([]string, 0, len(builtinStyles))
	for _, d := range builtinStyles {
		names = append(names, d.name)
	}
	return names
}

// StyleByName returns a style by name or alias. An empty name is StyleNone.
func StyleByName(name string) (Style, bool) {
	style, ok := styleAliases[strings.ToLower(strings.TrimSpace(name))]
	return style, ok
}
