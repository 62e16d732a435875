// Package clipboard reads and writes the text the CLI transforms.
package clipboard

import (
	"errors"
	"fmt"
	"sync"

	"github.com/atotto/clipboard"
)

// ErrUnavailable reports that no system clipboard utility could be found.
var ErrUnavailable = errors.New("clipboard unavailable (install xclip, xsel, or wl-clipboard)")

// Provider reads and writes clipboard text.
type Provider interface {
	Read() (string, error)
	Write(text string) error
}

// System returns the operating system clipboard.
func System() Provider {
	return systemClipboard{}
}

type systemClipboard struct{}

func (systemClipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return "", ErrUnavailable
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return text, nil
}

func (systemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return ErrUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Memory is an in-process clipboard.
type Memory struct {
	mu     sync.Mutex
	text   string
	writes int
}

// NewMemory returns a Memory clipboard holding initial.
func NewMemory(initial string) *Memory {
	return &Memory{text: initial}
}

func (m *Memory) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *Memory) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	m.writes++
	return nil
}

// Writes returns how many times Write was called.
func (m *Memory) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
