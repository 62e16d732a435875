package commentify

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxWidth is the column budget used when Config.MaxWidth is zero.
const DefaultMaxWidth = 80

// ErrInvalidConfiguration reports a configuration that leaves no room for text.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// Mode selects the transformation applied by Transform.
type Mode uint8

const (
	// ModeBlockComment reflows text into a block comment or docstring.
	ModeBlockComment Mode = iota
	// ModeLineComment reflows text into line comments.
	ModeLineComment
	// ModeQuote wraps each paragraph in double quotes.
	ModeQuote
	// ModeRemoveBreaks replaces line breaks with spaces.
	ModeRemoveBreaks
)

var modeNames = [...]string{
	ModeBlockComment: "block",
	ModeLineComment:  "line",
	ModeQuote:        "quote",
	ModeRemoveBreaks: "remove",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", uint8(m))
}

// ModeByName returns a mode by its String name.
func ModeByName(name string) (Mode, bool) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i, n := range modeNames {
		if n == normalized {
			return Mode(i), true
		}
	}
	return 0, false
}

// Config describes how Transform renders text.
type Config struct {
	Mode  Mode
	Style Style
	// MaxWidth is the full physical column budget, indentation and
	// delimiters included. Zero selects DefaultMaxWidth.
	MaxWidth int
	// Indent is the raw number of leading spaces. StyleJS halves it.
	Indent int
	// StripNewlines removes line breaks before any mode other than
	// ModeQuote runs.
	StripNewlines bool
}

// Option configures a Config.
type Option func(*Config)

// NewConfig returns a Config with defaults applied and opts layered on top.
func NewConfig(opts ...Option) Config {
	cfg := Config{MaxWidth: DefaultMaxWidth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// WithMode selects the transformation mode.
func WithMode(mode Mode) Option {
	return func(cfg *Config) {
		cfg.Mode = mode
	}
}

// WithStyle selects the comment delimiters.
func WithStyle(style Style) Option {
	return func(cfg *Config) {
		cfg.Style = style
	}
}

// WithMaxWidth sets the column budget.
func WithMaxWidth(width int) Option {
	return func(cfg *Config) {
		cfg.MaxWidth = width
	}
}

// WithIndent sets the raw indentation in spaces.
func WithIndent(indent int) Option {
	return func(cfg *Config) {
		cfg.Indent = indent
	}
}

// WithStripNewlines enables the line break removal pre-pass.
func WithStripNewlines(enabled bool) Option {
	return func(cfg *Config) {
		cfg.StripNewlines = enabled
	}
}

func (c Config) maxWidth() int {
	if c.MaxWidth == 0 {
		return DefaultMaxWidth
	}
	return c.MaxWidth
}

// EffectiveIndent returns the number of spaces actually emitted per line.
func (c Config) EffectiveIndent() int {
	if c.Style == StyleJS {
		return c.Indent / 2
	}
	return c.Indent
}

// Budget returns the per-line width budget of the comment modes.
func (c Config) Budget() int {
	budget := c.maxWidth() - c.EffectiveIndent()
	if c.Mode == ModeBlockComment {
		budget -= ansiWidth(c.Style.delimiters().continuation)
	}
	return budget
}

// textRoom is the budget left for words. Line comments repeat the prefix
// inside the budget on every line.
func (c Config) textRoom() int {
	room := c.Budget()
	if c.Mode == ModeLineComment {
		room -= ansiWidth(c.Style.LinePrefix())
	}
	return room
}

// Validate reports whether c can be rendered.
func (c Config) Validate() error {
	if c.MaxWidth < 0 {
		return fmt.Errorf("%w: max width %d is negative", ErrInvalidConfiguration, c.MaxWidth)
	}
	if c.Indent < 0 {
		return fmt.Errorf("%w: indent %d is negative", ErrInvalidConfiguration, c.Indent)
	}
	if !c.Style.valid() {
		return fmt.Errorf("%w: unknown style %d", ErrInvalidConfiguration, uint8(c.Style))
	}
	switch c.Mode {
	case ModeQuote, ModeRemoveBreaks:
		return nil
	case ModeLineComment, ModeBlockComment:
		if room := c.textRoom(); room <= 0 {
			return fmt.Errorf("%w: no room for text: %d columns left (max width %d, indent %d, style %s)",
				ErrInvalidConfiguration, room, c.maxWidth(), c.EffectiveIndent(), c.Style)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown mode %s", ErrInvalidConfiguration, c.Mode)
	}
}
