package commentify

import (
	"errors"
	"unicode/utf8"

	"github.com/muesli/reflow/ansi"
)

var (
	// ErrInvalidUTF8 reports clipboard or stdin text that is not UTF-8.
	ErrInvalidUTF8 = errors.New("input is not valid utf-8")
	// ErrBinaryInput reports a NUL byte or too many control characters,
	// which is what an image or file copied to the clipboard looks like.
	ErrBinaryInput = errors.New("input looks binary")
	// ErrEscapeSequence reports terminal escape sequences, typically from
	// coloured text copied out of a terminal. Their bytes take no columns,
	// so wrapping them would misplace every line break after them.
	ErrEscapeSequence = errors.New("input contains terminal escape sequences")
)

// Snippets shorter than controlSampleMin are only rejected for NUL bytes; a
// stray form feed in a pasted sentence is not a binary file.
const (
	controlSampleMin = 32
	controlPerMille  = 20
)

// ValidateInput checks that src is text worth reflowing. Binary input wins
// over escape sequences when both are present.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	var control int
	escaped := false
	for _, b := range src {
		switch {
		case b == 0x00:
			return ErrBinaryInput
		case b == ansi.Marker:
			escaped = true
		case isControlByte(b):
			control++
		}
	}
	if len(src) >= controlSampleMin && control*1000 >= len(src)*controlPerMille {
		return ErrBinaryInput
	}
	if escaped {
		return ErrEscapeSequence
	}
	return nil
}

// isControlByte reports C0 controls and DEL other than tab, line feed,
// vertical tab, form feed and carriage return.
func isControlByte(b byte) bool {
	return b < '\t' || (b > '\r' && b < ' ') || b == 0x7F
}
