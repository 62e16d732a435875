package commentify

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestRenderWritesTransform(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("alpha beta gamma delta"),
		Writer: &out,
		Config: NewConfig(WithStyle(StyleJS), WithMaxWidth(20)),
	})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.String() != "/**\n * alpha beta gamma \n * delta \n */\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

func TestRenderRequiresReaderAndWriter(t *testing.T) {
	if err := Render(RenderRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatalf("expected error for nil reader")
	}
	if err := Render(RenderRequest{Reader: strings.NewReader("x")}); err == nil {
		t.Fatalf("expected error for nil writer")
	}
}

func TestRenderRejectsInvalidConfiguration(t *testing.T) {
	var out bytes.Buffer
	err := Render(RenderRequest{
		Reader: strings.NewReader("text"),
		Writer: &out,
		Config: NewConfig(WithMaxWidth(4), WithIndent(8)),
	})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestRenderReportsWriteError(t *testing.T) {
	err := Render(RenderRequest{
		Reader: strings.NewReader("text"),
		Writer: failingWriter{},
		Config: NewConfig(WithMode(ModeRemoveBreaks)),
	})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestRenderStripsEscapes(t *testing.T) {
	text := "\x1b[1malpha\x1b[0m beta \x1b[32mgamma\x1b[0m delta"
	cfg := NewConfig(WithStyle(StyleJS), WithMaxWidth(20))

	var out bytes.Buffer
	err := Render(RenderRequest{Reader: strings.NewReader(text), Writer: &out, Config: cfg})
	if !errors.Is(err, ErrEscapeSequence) {
		t.Fatalf("expected ErrEscapeSequence, got %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}

	err = Render(RenderRequest{Reader: strings.NewReader(text), Writer: &out, Config: cfg, StripEscapes: true})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.String() != "/**\n * alpha beta gamma \n * delta \n */\n" {
		t.Fatalf("unexpected output: %q", out.String())
	}
}

type unreadable struct{ t *testing.T }

func (r unreadable) Read([]byte) (int, error) {
	r.t.Fatalf("reader consumed despite an invalid configuration")
	return 0, nil
}

func TestRenderChecksConfigBeforeReading(t *testing.T) {
	err := Render(RenderRequest{
		Reader: unreadable{t},
		Writer: &bytes.Buffer{},
		Config: Config{Mode: ModeLineComment, Style: StyleJS, MaxWidth: 3},
	})
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}
