// Package clipboard adapts the host's system clipboard to ports.Clipboard.
package clipboard

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/truepath/advocates-site/internal/ports"
)

// System writes to the operating system clipboard.
type System struct {
	unsupported bool
	writeAll    func(string) error
}

// NewSystem returns the host clipboard adapter. On hosts without a
// clipboard utility every write returns ports.ErrClipboardUnavailable.
func NewSystem() *System {
	return &System{
		unsupported: clipboard.Unsupported,
		writeAll:    clipboard.WriteAll,
	}
}

// Available reports whether the host exposes a clipboard.
func (s *System) Available() bool {
	return !s.unsupported
}

// WriteText implements ports.Clipboard.
func (s *System) WriteText(ctx context.Context, text string) error {
	if s.unsupported {
		return ports.ErrClipboardUnavailable
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.writeAll(text); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}

	return nil
}

var _ ports.Clipboard = (*System)(nil)
