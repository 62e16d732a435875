// Package golden names the golden files under testdata and the
// configurations they are rendered with.
package golden

import (
	"fmt"
	"strconv"
	"strings"

	"pkt.systems/commentify"
)

// Configs is the configuration matrix rendered into testdata golden files.
func Configs() []commentify.Config {
	var cfgs []commentify.Config
	for _, mode := range []commentify.Mode{commentify.ModeBlockComment, commentify.ModeLineComment} {
		for _, style := range []commentify.Style{commentify.StyleNone, commentify.StylePython, commentify.StyleJS} {
			cfgs = append(cfgs,
				commentify.Config{Mode: mode, Style: style, MaxWidth: 72},
				commentify.Config{Mode: mode, Style: style, MaxWidth: 40, Indent: 8},
			)
		}
	}
	return append(cfgs,
		commentify.Config{Mode: commentify.ModeQuote, MaxWidth: commentify.DefaultMaxWidth},
		commentify.Config{Mode: commentify.ModeRemoveBreaks, MaxWidth: commentify.DefaultMaxWidth},
	)
}

// Name returns the golden file name for source base rendered with cfg,
// for example "notes.block.js.w40.i8.golden".
func Name(base string, cfg commentify.Config) string {
	return fmt.Sprintf("%s.%s.%s.w%d.i%d.golden", base, cfg.Mode, cfg.Style, cfg.MaxWidth, cfg.Indent)
}

// Parse is the inverse of Name.
func Parse(name string) (string, commentify.Config, bool) {
	name, ok := strings.CutSuffix(name, ".golden")
	if !ok {
		return "", commentify.Config{}, false
	}
	parts := strings.Split(name, ".")
	if len(parts) < 5 {
		return "", commentify.Config{}, false
	}
	n := len(parts)
	mode, ok := commentify.ModeByName(parts[n-4])
	if !ok {
		return "", commentify.Config{}, false
	}
	style, ok := commentify.StyleByName(parts[n-3])
	if !ok {
		return "", commentify.Config{}, false
	}
	width, ok := parseSuffixedInt(parts[n-2], "w")
	if !ok || width <= 0 {
		return "", commentify.Config{}, false
	}
	indent, ok := parseSuffixedInt(parts[n-1], "i")
	if !ok {
		return "", commentify.Config{}, false
	}
	cfg := commentify.Config{Mode: mode, Style: style, MaxWidth: width, Indent: indent}
	return strings.Join(parts[:n-4], "."), cfg, true
}

func parseSuffixedInt(part, prefix string) (int, bool) {
	digits, ok := strings.CutPrefix(part, prefix)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
