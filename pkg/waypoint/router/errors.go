package router

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by NavigationError.
var (
	// ErrNoTarget indicates a scheme names neither a registered screen nor a loadable scene.
	ErrNoTarget = errors.New("no screen or scene found")

	// ErrEmptyHistory indicates a back navigation with nothing to go back to.
	ErrEmptyHistory = errors.New("history is empty")

	// ErrHistoryPush indicates the exiting screen could not be recorded in history.
	ErrHistoryPush = errors.New("could not record screen in history")

	// ErrNotStarted indicates a navigation was requested before Start completed.
	ErrNotStarted = errors.New("router not started")

	// ErrAlreadyStarted indicates Start was called more than once.
	ErrAlreadyStarted = errors.New("router already started")

	// ErrInvalidModel indicates the screen factory produced an unusable model.
	ErrInvalidModel = errors.New("invalid screen model")

	// ErrTransitionFailed indicates the transition returned an error. It is
	// only reported by routers built with WithStrictTransitions.
	ErrTransitionFailed = errors.New("transition failed")
)

// NavigationError reports a navigation that could not be carried out.
// The router's state is left as it was before the call, except when it
// wraps ErrTransitionFailed: the navigation then completed with a cut.
type NavigationError struct {
	Op     string // Operation that failed (e.g., "navigate", "back", "start")
	Target string // Screen or scene identifier, if known
	Err    error  // Underlying error
}

func (e *NavigationError) Error() string {
	if e.Target != "" {
		return fmt.Sprintf("router: %s %q: %v", e.Op, e.Target, e.Err)
	}
	return fmt.Sprintf("router: %s: %v", e.Op, e.Err)
}

func (e *NavigationError) Unwrap() error {
	return e.Err
}

// NewNavigationError creates a new navigation error.
func NewNavigationError(op, target string, err error) *NavigationError {
	return &NavigationError{Op: op, Target: target, Err: err}
}

// IsNavigationError checks if an error is a navigation error.
func IsNavigationError(err error) bool {
	var navErr *NavigationError
	return errors.As(err, &navErr)
}

// UnknownScreenError reports a typed navigation whose tag has no registry entry.
type UnknownScreenError struct {
	Tag Tag
}

func (e *UnknownScreenError) Error() string {
	return fmt.Sprintf("router: no screen registered for %q", string(e.Tag))
}

// NewUnknownScreenError creates a new unknown screen error.
func NewUnknownScreenError(tag Tag) *UnknownScreenError {
	return &UnknownScreenError{Tag: tag}
}

// IsUnknownScreen checks if an error is an unknown screen error.
func IsUnknownScreen(err error) bool {
	var unknown *UnknownScreenError
	return errors.As(err, &unknown)
}

// SceneLoadError wraps a failure reported by the SceneLoader.
type SceneLoadError struct {
	Scene string // Scene being loaded
	Err   error  // Error returned by the loader
}

func (e *SceneLoadError) Error() string {
	return fmt.Sprintf("router: load scene %q: %v", e.Scene, e.Err)
}

func (e *SceneLoadError) Unwrap() error {
	return e.Err
}

// NewSceneLoadError creates a new scene load error.
func NewSceneLoadError(scene string, err error) *SceneLoadError {
	return &SceneLoadError{Scene: scene, Err: err}
}

// IsSceneLoadError checks if an error is a scene load error.
func IsSceneLoadError(err error) bool {
	var loadErr *SceneLoadError
	return errors.As(err, &loadErr)
}
