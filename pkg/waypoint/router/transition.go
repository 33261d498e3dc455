package router

import "context"

// Transition animates the swap from exit to enter. Either presenter may be
// nil: the first navigation has no exit, and unloading to a scene has no
// enter. Play blocks until the swap is finished; when it returns, enter must
// be visible and exit hidden.
type Transition interface {
	Play(ctx context.Context, enter, exit Presenter) error
}

// TransitionFunc adapts a function to the Transition interface.
type TransitionFunc func(ctx context.Context, enter, exit Presenter) error

func (f TransitionFunc) Play(ctx context.Context, enter, exit Presenter) error {
	return f(ctx, enter, exit)
}

// Cut is the default transition: an instant swap with no animation.
type Cut struct{}

func (Cut) Play(_ context.Context, enter, exit Presenter) error {
	if exit != nil {
		exit.Hide()
	}
	if enter != nil {
		enter.Show()
	}
	return nil
}
