// Package transition provides animated router.Transition implementations.
package transition

import (
	"context"
	"time"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// AlphaPresenter is a presenter whose opacity can be set, 0 being fully
// transparent and 255 fully opaque.
type AlphaPresenter interface {
	router.Presenter
	SetAlpha(alpha uint8)
}

// Fade cross-fades the entering presenter in while the exiting one fades
// out. Presenters that cannot change opacity are cut instead.
type Fade struct {
	Duration time.Duration // Total length of the fade
	Steps    int           // Number of opacity updates
}

// NewFade returns a Fade lasting d with the default step count.
func NewFade(d time.Duration) *Fade {
	return &Fade{Duration: d, Steps: constants.DefaultFadeSteps}
}

// Play runs the fade. If ctx is done before the fade finishes, the
// presenters are snapped to their end state and ctx.Err() is returned.
func (f *Fade) Play(ctx context.Context, enter, exit router.Presenter) error {
	enterAlpha, enterOK := asAlpha(enter)
	exitAlpha, exitOK := asAlpha(exit)
	if !enterOK || !exitOK || f.Duration <= 0 {
		return router.Cut{}.Play(ctx, enter, exit)
	}

	steps := f.Steps
	if steps <= 0 {
		steps = constants.DefaultFadeSteps
	}

	if enterAlpha != nil {
		enterAlpha.SetAlpha(0)
		enterAlpha.Show()
	}

	interval := f.Duration / time.Duration(steps)
	if interval <= 0 {
		interval = time.Nanosecond
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for i := 1; i <= steps; i++ {
		select {
		case <-ctx.Done():
			finish(enterAlpha, exitAlpha)
			return ctx.Err()
		case <-ticker.C:
		}

		a := uint8(255 * i / steps)
		if enterAlpha != nil {
			enterAlpha.SetAlpha(a)
		}
		if exitAlpha != nil {
			exitAlpha.SetAlpha(255 - a)
		}
	}

	finish(enterAlpha, exitAlpha)
	return nil
}

// finish leaves enter opaque and visible, and exit hidden but opaque so it
// shows correctly the next time it is entered.
func finish(enter, exit AlphaPresenter) {
	if exit != nil {
		exit.Hide()
		exit.SetAlpha(255)
	}
	if enter != nil {
		enter.SetAlpha(255)
		enter.Show()
	}
}

// asAlpha reports whether p can fade. A nil presenter fades trivially.
func asAlpha(p router.Presenter) (AlphaPresenter, bool) {
	if p == nil {
		return nil, true
	}
	a, ok := p.(AlphaPresenter)
	return a, ok
}
