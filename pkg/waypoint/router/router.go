package router

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/atomic"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/constants"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/history"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/internal"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/urlcodec"
)

const defaultMainScene = "main"

// current is the active target. interactor is nil while a scene is current.
type current struct {
	interactor Interactor
	scheme     scheme.Scheme
}

// Router decides which screen is active. Every way of navigating (by tag,
// by URL, by scheme, by scene, back) funnels into one transition routine
// guarded so that at most one navigation runs at a time.
type Router struct {
	registry          *Registry
	factory           Factory
	resolver          Resolver
	loader            SceneLoader
	codec             *urlcodec.Codec
	history           *history.History
	defaultTransition Transition
	strictTransitions bool
	mainScene         string
	logger            *slog.Logger

	// models is written only during Start and read-only afterwards.
	models map[string]Model

	started atomic.Bool
	ready   atomic.Bool
	guard   atomic.Bool

	mu      sync.RWMutex // protects current and history
	current current
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger. Defaults to the waypoint package logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		r.logger = logger
	}
}

// WithHistory replaces the default unbounded history.
func WithHistory(h *history.History) Option {
	return func(r *Router) {
		r.history = h
	}
}

// WithDefaultTransition sets the transition used when a navigation does not
// name one, and for fading out screens when a scene takes over.
func WithDefaultTransition(t Transition) Option {
	return func(r *Router) {
		r.defaultTransition = t
	}
}

// WithStrictTransitions makes a failed transition an error. The
// navigation still completes with a cut, and then returns a
// NavigationError wrapping ErrTransitionFailed. By default the failure is
// only logged.
func WithStrictTransitions() Option {
	return func(r *Router) {
		r.strictTransitions = true
	}
}

// WithMainSceneName names the main scene in logs and errors.
func WithMainSceneName(name string) Option {
	return func(r *Router) {
		r.mainScene = name
	}
}

// New creates a Router. loader may be nil for hosts without scenes. A nil
// codec means the default "domain://" domain. Nothing happens until Start.
func New(registry *Registry, factory Factory, resolver Resolver, loader SceneLoader, codec *urlcodec.Codec, opts ...Option) *Router {
	if registry == nil {
		registry, _ = NewRegistry()
	}
	if codec == nil {
		codec, _ = urlcodec.New(constants.DefaultDomain)
	}

	r := &Router{
		registry:          registry,
		factory:           factory,
		resolver:          resolver,
		loader:            loader,
		codec:             codec,
		history:           history.New(),
		defaultTransition: Cut{},
		mainScene:         defaultMainScene,
		models:            make(map[string]Model),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = internal.GetLogger()
	}
	return r
}

// Start creates one Model per registered screen and navigates to the
// scheme chosen by the Resolver. It may only succeed once; after a failure,
// including a failed first navigation, it may be called again.
func (r *Router) Start(ctx context.Context) error {
	if !r.started.CompareAndSwap(false, true) {
		return NewNavigationError("start", "", ErrAlreadyStarted)
	}

	r.guard.Store(true)
	defer r.release()

	first, err := r.initialize(ctx)
	if err != nil {
		r.reset()
		return err
	}
	r.ready.Store(true)

	log := r.navLogger("start", first)
	log.Info("router started", "screens", len(r.models))
	err = r.navigate(ctx, log, first, nil, false)
	if err != nil && !errors.Is(err, ErrTransitionFailed) {
		r.reset()
	}
	return err
}

// reset undoes a failed Start so that it can be called again.
func (r *Router) reset() {
	r.ready.Store(false)
	r.models = make(map[string]Model)
	r.started.Store(false)
}

func (r *Router) initialize(ctx context.Context) (scheme.Scheme, error) {
	if r.factory == nil || r.resolver == nil {
		return scheme.Scheme{}, NewNavigationError("start", "", errors.New("factory and resolver are required"))
	}

	if err := r.resolver.Initialize(); err != nil {
		return scheme.Scheme{}, NewNavigationError("start", "", fmt.Errorf("initialize resolver: %w", err))
	}

	for _, entry := range r.registry.Entries() {
		model, err := r.factory.Create(ctx, entry)
		if err != nil {
			return scheme.Scheme{}, NewNavigationError("start", entry.ID, fmt.Errorf("create screen: %w", err))
		}
		if model.Interactor == nil || model.Presenter == nil {
			return scheme.Scheme{}, NewNavigationError("start", entry.ID, ErrInvalidModel)
		}
		model.ID = entry.ID
		r.models[entry.ID] = model
	}

	first, err := r.resolver.ResolveScheme()
	if err != nil {
		return scheme.Scheme{}, NewNavigationError("start", "", fmt.Errorf("resolve scheme: %w", err))
	}
	return first, nil
}

// NavOption adjusts a single navigation.
type NavOption func(*navOptions)

type navOptions struct {
	transition Transition
	params     scheme.Params
	bindings   Bindings
}

// WithTransition animates this navigation with t instead of the default.
func WithTransition(t Transition) NavOption {
	return func(o *navOptions) {
		o.transition = t
	}
}

// WithParams attaches parameters to a navigation by tag.
func WithParams(params scheme.Params) NavOption {
	return func(o *navOptions) {
		o.params = params
	}
}

// WithBindings passes bindings to the scene loader.
func WithBindings(b Bindings) NavOption {
	return func(o *navOptions) {
		o.bindings = b
	}
}

func buildNavOptions(opts []NavOption) navOptions {
	var o navOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// NavigateTo navigates to the screen registered for tag.
func (r *Router) NavigateTo(ctx context.Context, tag Tag, opts ...NavOption) error {
	id, ok := r.registry.IDFor(tag)
	if !ok {
		return NewUnknownScreenError(tag)
	}
	o := buildNavOptions(opts)
	return r.NavigateByScheme(ctx, r.codec.Build(id, o.params), opts...)
}

// NavigateToType navigates to the screen whose interactor is a T.
func NavigateToType[T Tagged](ctx context.Context, r *Router, opts ...NavOption) error {
	var zero T
	return r.NavigateTo(ctx, zero.ScreenTag(), opts...)
}

// NavigateToURL parses rawURL with the router's codec and navigates to it.
func (r *Router) NavigateToURL(ctx context.Context, rawURL string, opts ...NavOption) error {
	s, err := r.codec.Parse(rawURL)
	if err != nil {
		return err
	}
	return r.NavigateByScheme(ctx, s, opts...)
}

// NavigateByScheme navigates to s. A scheme naming no registered screen
// falls through to a scene of the same name when the loader has one.
//
// If another navigation is in flight the call does nothing and returns nil.
func (r *Router) NavigateByScheme(ctx context.Context, s scheme.Scheme, opts ...NavOption) error {
	if !r.ready.Load() {
		return NewNavigationError("navigate", s.ID(), ErrNotStarted)
	}
	if !r.acquire("navigate", s) {
		return nil
	}
	defer r.release()

	o := buildNavOptions(opts)
	return r.navigate(ctx, r.navLogger("navigate", s), s, o.transition, false)
}

// NavigateToScene shows the loading scene, loads name, hides the loading
// scene and fades out the active screen. The exiting screen is not
// recorded in history.
func (r *Router) NavigateToScene(ctx context.Context, name string, opts ...NavOption) error {
	target := scheme.Scene(name)
	if !r.ready.Load() {
		return NewNavigationError("navigate", name, ErrNotStarted)
	}
	if !r.acquire("scene", target) {
		return nil
	}
	defer r.release()

	o := buildNavOptions(opts)
	return r.toScene(ctx, r.navLogger("scene", target), name, o.bindings)
}

// Back returns to the most recent history entry. It fails with
// ErrEmptyHistory, and changes nothing, when there is none.
func (r *Router) Back(ctx context.Context, opts ...NavOption) error {
	if !r.ready.Load() {
		return NewNavigationError("back", "", ErrNotStarted)
	}
	if !r.acquire("back", scheme.Scheme{}) {
		return nil
	}
	defer r.release()

	o := buildNavOptions(opts)
	return r.back(ctx, o.transition)
}

// BackToMainScene loads the main scene behind the loading scene and then
// goes back one history entry.
func (r *Router) BackToMainScene(ctx context.Context) error {
	target := scheme.Scene(r.mainScene)
	if !r.ready.Load() {
		return NewNavigationError("back", r.mainScene, ErrNotStarted)
	}
	if !r.acquire("main scene", target) {
		return nil
	}
	defer r.release()

	log := r.navLogger("main scene", target)
	err := r.loadScene(ctx, log, r.mainScene, func(ctx context.Context) error {
		return r.loader.LoadMainScene(ctx)
	})
	if err != nil {
		return err
	}
	return r.back(ctx, nil)
}

// Go runs fn on its own goroutine and returns a channel that receives its
// result once and is then closed. It lets hosts fire off a navigation
// without blocking while keeping a handle on its completion.
func (r *Router) Go(ctx context.Context, fn func(ctx context.Context) error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- fn(ctx)
	}()
	return done
}

// Current returns the active scheme and its interactor. The interactor is
// nil while a scene is active or before the first navigation.
func (r *Router) Current() (scheme.Scheme, Interactor) {
	cur := r.snapshot()
	return cur.scheme, cur.interactor
}

// History returns a copy of the back stack, oldest first.
func (r *Router) History() []scheme.Scheme {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.history.Entries()
}

// Navigating reports whether a navigation is in flight.
func (r *Router) Navigating() bool {
	return r.guard.Load()
}

// Model returns the live screen registered under id.
func (r *Router) Model(id string) (Model, bool) {
	if !r.ready.Load() {
		return Model{}, false
	}
	m, ok := r.models[id]
	return m, ok
}

// Codec returns the URL codec the router builds schemes with.
func (r *Router) Codec() *urlcodec.Codec {
	return r.codec
}

// navigate is the single transition routine. The caller holds the guard.
func (r *Router) navigate(ctx context.Context, log *slog.Logger, enter scheme.Scheme, t Transition, back bool) error {
	switch enter.Kind() {
	case scheme.KindNone:
		return NewNavigationError("navigate", "", ErrNoTarget)
	case scheme.KindScene:
		return r.toScene(ctx, log, enter.ID(), Bindings{})
	}

	enterModel, ok := r.models[enter.ID()]
	if !ok {
		if r.loader != nil && r.loader.CanLoad(enter.ID()) {
			log.Debug("no screen registered, loading scene of the same name")
			return r.toScene(ctx, log, enter.ID(), Bindings{Scheme: enter})
		}
		return NewNavigationError("navigate", enter.ID(), ErrNoTarget)
	}

	cur := r.snapshot()

	var exit Presenter
	switch cur.scheme.Kind() {
	case scheme.KindScreen:
		if exitModel, ok := r.models[cur.scheme.ID()]; ok {
			params := exitModel.Interactor.OnExit()
			if !back && cur.scheme.ID() != enter.ID() {
				if err := r.record(exitModel.ID, params); err != nil {
					return err
				}
			}
			exit = exitModel.Presenter
		}
	case scheme.KindScene:
		if !back {
			if err := r.push(cur.scheme); err != nil {
				return err
			}
		}
	}

	terr := r.play(ctx, log, t, enterModel.Presenter, exit)

	r.setCurrent(enterModel.Interactor, enter)
	if params := enter.Params(); params.Len() > 0 {
		enterModel.Interactor.WithParams(params)
	}
	enterModel.Interactor.OnEnter()

	log.Info("screen active", "screen", enter.ID(), "from", cur.scheme.String(), "back", back)
	if terr != nil && r.strictTransitions {
		return NewNavigationError("navigate", enter.ID(), fmt.Errorf("%w: %w", ErrTransitionFailed, terr))
	}
	return nil
}

func (r *Router) back(ctx context.Context, t Transition) error {
	r.mu.Lock()
	prev, ok := r.history.Pop()
	r.mu.Unlock()
	if !ok {
		return NewNavigationError("back", "", ErrEmptyHistory)
	}

	log := r.navLogger("back", prev)
	if prev.IsScene() {
		r.unloadToScene(ctx, log, prev.ID())
		return nil
	}

	if err := r.navigate(ctx, log, prev, t, true); err != nil {
		r.mu.Lock()
		r.history.Push(prev)
		r.mu.Unlock()
		return err
	}
	return nil
}

func (r *Router) toScene(ctx context.Context, log *slog.Logger, name string, b Bindings) error {
	err := r.loadScene(ctx, log, name, func(ctx context.Context) error {
		return r.loader.LoadScene(ctx, name, b)
	})
	if err != nil {
		return err
	}
	r.unloadToScene(ctx, log, name)
	return nil
}

// play runs t, or the default transition. A failed transition is finished
// with a cut so that enter always ends up shown and exit hidden; its error
// is returned for strict routers.
func (r *Router) play(ctx context.Context, log *slog.Logger, t Transition, enter, exit Presenter) error {
	if t == nil {
		t = r.defaultTransition
	}
	err := t.Play(ctx, enter, exit)
	if err != nil {
		log.Warn("transition failed, cutting instead", "error", err)
		_ = Cut{}.Play(ctx, enter, exit)
	}
	return err
}

// record pushes the exiting screen as it would be addressed by URL.
func (r *Router) record(id string, params scheme.Params) error {
	s, err := r.codec.Parse(r.codec.String(id, params))
	if err != nil {
		return NewNavigationError("navigate", id, fmt.Errorf("%w: %w", ErrHistoryPush, err))
	}
	return r.push(s)
}

func (r *Router) push(s scheme.Scheme) error {
	r.mu.Lock()
	ok := r.history.Push(s)
	r.mu.Unlock()
	if !ok {
		return NewNavigationError("navigate", s.ID(), ErrHistoryPush)
	}
	return nil
}

func (r *Router) snapshot() current {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Router) setCurrent(interactor Interactor, s scheme.Scheme) {
	r.mu.Lock()
	r.current = current{interactor: interactor, scheme: s}
	r.mu.Unlock()
}

func (r *Router) acquire(op string, target scheme.Scheme) bool {
	if r.guard.CompareAndSwap(false, true) {
		return true
	}
	r.logger.Debug("navigation dropped, another is in flight", "op", op, "target", target.String())
	return false
}

func (r *Router) release() {
	r.guard.Store(false)
}

func (r *Router) navLogger(op string, target scheme.Scheme) *slog.Logger {
	return r.logger.With("nav_id", uuid.NewString(), "op", op, "target", target.String())
}
