package router

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
)

// Bindings is handed to the SceneLoader with a scene load so the loaded
// scene can pick up whatever the caller wants it to see.
type Bindings struct {
	// Scheme is set when a screen scheme fell through to a scene of the same name.
	Scheme scheme.Scheme
	Values map[string]any
}

// SceneLoader loads full scenes and the transient loading scene shown
// while they load. All methods block until done.
type SceneLoader interface {
	// CanLoad reports whether a scene called name exists.
	CanLoad(name string) bool
	LoadLoadingScene(ctx context.Context) error
	UnloadLoadingScene(ctx context.Context) error
	LoadScene(ctx context.Context, name string, bindings Bindings) error
	LoadMainScene(ctx context.Context) error
}

// loadScene shows the loading scene around load and then moves the
// current state to the scene. The loading scene is hidden again on failure.
func (r *Router) loadScene(ctx context.Context, log *slog.Logger, name string, load func(context.Context) error) error {
	if r.loader == nil {
		return NewSceneLoadError(name, errors.New("no scene loader configured"))
	}

	log.Debug("loading scene", "scene", name)

	if err := r.loader.LoadLoadingScene(ctx); err != nil {
		return NewSceneLoadError(name, err)
	}

	if err := load(ctx); err != nil {
		if uerr := r.loader.UnloadLoadingScene(ctx); uerr != nil {
			log.Error("failed to hide loading scene", "scene", name, "error", uerr)
		}
		return NewSceneLoadError(name, err)
	}

	if err := r.loader.UnloadLoadingScene(ctx); err != nil {
		return NewSceneLoadError(name, err)
	}

	return nil
}

// unloadToScene exits the active screen, if any, without recording it in
// history, fades it out with the default transition, and makes the scene
// current.
func (r *Router) unloadToScene(ctx context.Context, log *slog.Logger, name string) {
	cur := r.snapshot()

	if cur.interactor != nil {
		cur.interactor.OnExit()
		if m, ok := r.models[cur.scheme.ID()]; ok {
			_ = r.play(ctx, log, r.defaultTransition, nil, m.Presenter)
		}
	}

	r.setCurrent(nil, scheme.Scene(name))
	log.Info("scene active", "scene", name)
}
