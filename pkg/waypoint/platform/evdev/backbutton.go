// Package evdev maps a hardware key on a Linux input device to Router.Back.
package evdev

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// Navigator is the part of the router the back button drives.
type Navigator interface {
	Back(ctx context.Context, opts ...router.NavOption) error
}

// BackButton listens on an input device and navigates back on key press.
type BackButton struct {
	DevicePath string        // e.g. /dev/input/event1
	KeyCode    evdev.EvCode  // Defaults to KEY_BACK
	Debounce   time.Duration // Presses closer together than this are ignored

	nav    Navigator
	logger *slog.Logger

	mu       sync.Mutex
	lastPush time.Time
}

// NewBackButton creates a BackButton for devicePath driving nav.
func NewBackButton(devicePath string, nav Navigator) *BackButton {
	return &BackButton{
		DevicePath: devicePath,
		KeyCode:    evdev.EvCode(constants.DefaultBackKeyCode),
		Debounce:   constants.DefaultBackDebounce,
		nav:        nav,
		logger:     internal.GetLogger(),
	}
}

// WithLogger replaces the logger and returns the button.
func (b *BackButton) WithLogger(logger *slog.Logger) *BackButton {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Run reads key events until ctx is cancelled or the device fails.
// It returns nil when ctx ends.
func (b *BackButton) Run(ctx context.Context) error {
	dev, err := evdev.Open(b.DevicePath)
	if err != nil {
		return fmt.Errorf("evdev: open %s: %w", b.DevicePath, err)
	}

	// ReadOne blocks; closing the device unblocks it.
	stop := context.AfterFunc(ctx, func() { _ = dev.Close() })
	defer func() {
		if stop() {
			_ = dev.Close()
		}
	}()

	b.logger.Debug("Listening for back button",
		"device", b.DevicePath,
		"key", uint16(b.KeyCode))

	for {
		ev, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("evdev: read %s: %w", b.DevicePath, err)
		}
		if ev.Type != evdev.EV_KEY || ev.Code != b.KeyCode || ev.Value != 1 {
			continue
		}
		b.press(ctx, time.Now())
	}
}

// press handles one key-down at now. It reports whether Back was called.
func (b *BackButton) press(ctx context.Context, now time.Time) bool {
	b.mu.Lock()
	if !b.lastPush.IsZero() && now.Sub(b.lastPush) < b.Debounce {
		b.mu.Unlock()
		return false
	}
	b.lastPush = now
	b.mu.Unlock()

	if err := b.nav.Back(ctx); err != nil {
		if errors.Is(err, router.ErrEmptyHistory) {
			b.logger.Debug("Back button pressed with empty history")
		} else {
			b.logger.Warn("Back button navigation failed", "error", err)
		}
	}
	return true
}
