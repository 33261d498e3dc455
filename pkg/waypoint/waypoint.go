// Package waypoint provides URL-addressable screen navigation for
// applications on embedded Linux devices.
//
// The router package holds the navigation core. This package sets up
// logging and assembles a router from a config file:
//
//	waypoint.Init(waypoint.Options{LogPath: "logs/app.log"})
//	defer waypoint.Close()
//
//	cfg, err := config.Load("waypoint.toml")
//	if err != nil {
//		return err
//	}
//	r, err := waypoint.New(cfg, waypoint.Deps{Factory: factory, Loader: loader})
//	if err != nil {
//		return err
//	}
//	return r.Start(ctx)
package waypoint

import (
	"errors"
	"fmt"
	"log/slog"

	goevdev "github.com/holoplot/go-evdev"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/config"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/history"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/platform/evdev"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/resolver"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/transition"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/urlcodec"
)

// Options configures package-wide logging.
type Options struct {
	LogPath  string // Full path for log file including filename (creates parent directories)
	LogLevel string // "debug", "info", "warn" or "error". Empty keeps the default
}

// Init configures logging. Call it before building a router so the
// router picks up the configured logger.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	switch {
	case options.LogLevel != "":
		internal.SetRawLogLevel(options.LogLevel)
	case constants.IsDevMode():
		internal.SetLogLevel(slog.LevelDebug)
	}
}

// Close releases the log file, if one was opened.
func Close() {
	internal.CloseLogger()
}

// GetLogger returns the package logger.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the package logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// Deps are the collaborators New cannot build from configuration.
type Deps struct {
	Factory    router.Factory     // Required
	Loader     router.SceneLoader // Optional. Without it scene navigation fails
	Resolver   router.Resolver    // Defaults to a resolver over os.Args and the environment
	Transition router.Transition  // Overrides the configured fade
	Logger     *slog.Logger       // Defaults to the package logger
}

// New builds an unstarted router from cfg.
//
// When cfg lists scenes, only those scenes are reachable through the
// scheme fallback of NavigateByScheme. NavigateToScene is not restricted.
func New(cfg *config.Config, deps Deps) (*router.Router, error) {
	if cfg == nil {
		return nil, errors.New("waypoint: nil config")
	}
	if deps.Factory == nil {
		return nil, errors.New("waypoint: a screen factory is required")
	}

	codec, err := urlcodec.New(cfg.Domain)
	if err != nil {
		return nil, fmt.Errorf("waypoint: %w", err)
	}

	registry, err := router.NewRegistry(cfg.Entries()...)
	if err != nil {
		return nil, fmt.Errorf("waypoint: %w", err)
	}

	logger := deps.Logger
	if logger == nil {
		if cfg.LogLevel != "" {
			internal.SetRawLogLevel(cfg.LogLevel)
		}
		logger = internal.GetLogger()
	}

	res := deps.Resolver
	if res == nil {
		res = resolver.New(codec, cfg.DefaultScreen, resolver.WithLogger(logger))
	}

	var historyOpts []history.Option
	if cfg.HistoryCapacity > 0 {
		historyOpts = append(historyOpts, history.WithCapacity(cfg.HistoryCapacity))
	}

	opts := []router.Option{
		router.WithLogger(logger),
		router.WithHistory(history.New(historyOpts...)),
		router.WithMainSceneName(cfg.MainScene),
	}
	switch {
	case deps.Transition != nil:
		opts = append(opts, router.WithDefaultTransition(deps.Transition))
	case cfg.Transition.FadeMS > 0:
		opts = append(opts, router.WithDefaultTransition(transition.NewFade(cfg.Transition.FadeDuration())))
	}

	loader := deps.Loader
	if loader != nil && len(cfg.Scenes) > 0 {
		loader = newSceneGate(loader, cfg.SceneNames())
	}

	return router.New(registry, deps.Factory, res, loader, codec, opts...), nil
}

// NewBackButton returns a back button listener for the configured input
// device, or nil when none is configured. Run it on its own goroutine.
func NewBackButton(cfg *config.Config, nav evdev.Navigator) *evdev.BackButton {
	if cfg == nil || cfg.Input.BackDevice == "" {
		return nil
	}

	b := evdev.NewBackButton(cfg.Input.BackDevice, nav)
	b.KeyCode = goevdev.EvCode(cfg.Input.BackKey)
	b.Debounce = cfg.Input.Debounce()
	return b
}

// sceneGate limits CanLoad to a fixed set of scene names.
type sceneGate struct {
	router.SceneLoader
	allowed map[string]struct{}
}

func newSceneGate(inner router.SceneLoader, names []string) *sceneGate {
	allowed := make(map[string]struct{}, len(names))
	for _, n := range names {
		allowed[n] = struct{}{}
	}
	return &sceneGate{SceneLoader: inner, allowed: allowed}
}

func (g *sceneGate) CanLoad(name string) bool {
	if _, ok := g.allowed[name]; !ok {
		return false
	}
	return g.SceneLoader.CanLoad(name)
}
