package router

import (
	"context"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
)

// Interactor is the logic side of a screen.
type Interactor interface {
	// OnEnter is called once the screen is active and visible.
	OnEnter()
	// OnExit is called before the screen is hidden. The returned
	// parameters are recorded in history so that going back restores them.
	OnExit() scheme.Params
	// WithParams delivers the entering scheme's parameters, before OnEnter.
	// It is not called when there are none.
	WithParams(params scheme.Params)
}

// Presenter is the visual side of a screen, the thing transitions animate.
type Presenter interface {
	Show()
	Hide()
}

// Model is a live screen. Exactly one exists per registered screen, created
// by the Factory during Start and reused for every visit: screens are shown
// and hidden, never recreated.
type Model struct {
	ID         string
	Interactor Interactor
	Presenter  Presenter
	Controller any // Optional host-side controller, unused by the router
}

// Factory creates the Model for a registry entry. It is called once per
// entry during Start.
type Factory interface {
	Create(ctx context.Context, entry Entry) (Model, error)
}

// FactoryFunc adapts a function to the Factory interface.
type FactoryFunc func(ctx context.Context, entry Entry) (Model, error)

func (f FactoryFunc) Create(ctx context.Context, entry Entry) (Model, error) {
	return f(ctx, entry)
}

// Resolver picks the first scheme to show on startup, typically from an
// incoming deep link or a configured default.
type Resolver interface {
	Initialize() error
	ResolveScheme() (scheme.Scheme, error)
}
