package commentify

import (
	"fmt"
	"io"
)

// RenderRequest configures Render.
type RenderRequest struct {
	Reader io.Reader
	Writer io.Writer
	Config Config
	// StripEscapes removes terminal escape sequences before validation
	// instead of rejecting them with ErrEscapeSequence.
	StripEscapes bool
}

// Render reads all text from Reader, transforms it and writes the result.
// Nothing is written unless the whole input validates.
func Render(req RenderRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("render: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("render: writer is nil")
	}
	// Checked before reading so a bad config never consumes stdin.
	if err := req.Config.Validate(); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	src, err := io.ReadAll(req.Reader)
	if err != nil {
		return fmt.Errorf("render: read: %w", err)
	}
	text := string(src)
	if req.StripEscapes {
		text = stripEscapes(text)
	}
	if err := ValidateInput([]byte(text)); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	out := transform(text, req.Config)
	if _, err := io.WriteString(req.Writer, out); err != nil {
		return fmt.Errorf("render: write: %w", err)
	}
	return nil
}
