// Package ports defines interfaces for the host capabilities the site
// depends on. Adapters implement them; the application layer depends only on
// these contracts.
package ports

import (
	"context"

	"github.com/truepath/advocates-site/internal/domain"
)

// ErrClipboardUnavailable is returned when the host has no system clipboard.
// Callers treat it as a normal condition, not a fault.
var ErrClipboardUnavailable = domain.NewUnavailableError("clipboard", "no system clipboard on this host")

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents with text.
	// Returns ErrClipboardUnavailable when the capability is missing, or the
	// host's error when the write is rejected.
	WriteText(ctx context.Context, text string) error
}

// ClipboardFunc adapts a plain function to the Clipboard interface.
type ClipboardFunc func(ctx context.Context, text string) error

// WriteText implements Clipboard.
func (f ClipboardFunc) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}
