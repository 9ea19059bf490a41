// Package app contains the site's application logic. Content and layout
// are pure data and rendering; the only stateful behaviour lives here.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/truepath/advocates-site/internal/ports"
)

const (
	// DefaultCopyResetDelay is how long the copied acknowledgement stays up.
	DefaultCopyResetDelay = 1600 * time.Millisecond

	// CopyIdleLabel is the button label before a successful copy.
	CopyIdleLabel = "📋 Tap to Copy Zelle Email"

	// CopyDoneLabel is the button label while the acknowledgement is shown.
	CopyDoneLabel = "✅ Copied!"
)

// Timer is the part of *time.Timer the confirmation uses.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules f to run once after d.
type AfterFunc func(d time.Duration, f func()) Timer

func systemAfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// CopyConfirmationConfig configures a CopyConfirmation.
type CopyConfirmationConfig struct {
	// Text is the fixed value written to the clipboard.
	Text string

	// Clipboard is the host capability. Nil means the host has none.
	Clipboard ports.Clipboard

	// ResetDelay defaults to DefaultCopyResetDelay.
	ResetDelay time.Duration

	// OnChange is called after every transition of the copied flag. It may run
	// on the timer goroutine.
	OnChange func(copied bool)

	Logger *slog.Logger

	// AfterFunc defaults to time.AfterFunc.
	AfterFunc AfterFunc
}

// CopyConfirmation copies a fixed string to the clipboard and holds a
// "copied" flag that reverts after a delay. The flag belongs to the
// instance; nothing else can set it.
//
// Every successful Copy re-arms the reset, so the flag clears one delay
// after the most recent success. Failures never touch the flag and are not
// reported to the caller. After Close, pending resets are dropped and
// further copies do nothing.
type CopyConfirmation struct {
	text      string
	clipboard ports.Clipboard
	delay     time.Duration
	onChange  func(bool)
	afterFunc AfterFunc
	logger    *slog.Logger

	mu         sync.Mutex
	copied     bool
	generation uint64
	timer      Timer
	closed     bool
}

// NewCopyConfirmation creates a confirmation in the idle state.
func NewCopyConfirmation(cfg CopyConfirmationConfig) *CopyConfirmation {
	delay := cfg.ResetDelay
	if delay <= 0 {
		delay = DefaultCopyResetDelay
	}

	afterFunc := cfg.AfterFunc
	if afterFunc == nil {
		afterFunc = systemAfterFunc
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &CopyConfirmation{
		text:      cfg.Text,
		clipboard: cfg.Clipboard,
		delay:     delay,
		onChange:  cfg.OnChange,
		afterFunc: afterFunc,
		logger:    logger.With(slog.String("component", "app.CopyConfirmation")),
	}
}

// Copy writes the text to the clipboard and reports whether it succeeded.
func (c *CopyConfirmation) Copy(ctx context.Context) bool {
	if c.isClosed() {
		return false
	}

	if err := c.write(ctx); err != nil {
		c.logger.DebugContext(ctx, "clipboard write failed", slog.Any("error", err))
		return false
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}

	c.generation++
	gen := c.generation

	if c.timer != nil {
		c.timer.Stop()
	}

	c.timer = c.afterFunc(c.delay, func() { c.reset(gen) })

	changed := !c.copied
	c.copied = true
	c.mu.Unlock()

	if changed {
		c.notify(true)
	}

	return true
}

// Copied reports whether the acknowledgement is currently showing.
func (c *CopyConfirmation) Copied() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.copied
}

// Label returns the button label for the current state.
func (c *CopyConfirmation) Label() string {
	if c.Copied() {
		return CopyDoneLabel
	}

	return CopyIdleLabel
}

// Text returns the value that Copy writes.
func (c *CopyConfirmation) Text() string {
	return c.text
}

// ResetDelay returns how long the acknowledgement lasts.
func (c *CopyConfirmation) ResetDelay() time.Duration {
	return c.delay
}

// Close cancels any pending reset. It is safe to call more than once.
func (c *CopyConfirmation) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}

func (c *CopyConfirmation) write(ctx context.Context) (err error) {
	if c.clipboard == nil {
		return ports.ErrClipboardUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard write panicked: %v", r)
		}
	}()

	return c.clipboard.WriteText(ctx, c.text)
}

// reset clears the flag if gen is still the latest copy and the
// confirmation is open. Stale or late timers are ignored.
func (c *CopyConfirmation) reset(gen uint64) {
	c.mu.Lock()
	if c.closed || gen != c.generation || !c.copied {
		c.mu.Unlock()
		return
	}

	c.copied = false
	c.timer = nil
	c.mu.Unlock()

	c.notify(false)
}

func (c *CopyConfirmation) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.closed
}

func (c *CopyConfirmation) notify(copied bool) {
	if c.onChange != nil {
		c.onChange(copied)
	}
}
