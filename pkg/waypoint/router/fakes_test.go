package router_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/scheme"
	"github.com/BrandonKowalski/waypoint/pkg/waypoint/urlcodec"
)

// recorder keeps the order in which hooks, presenters and the loader ran.
type recorder struct {
	mu     sync.Mutex
	events []string
}

func (r *recorder) add(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

func (r *recorder) take() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.events
	r.events = nil
	return out
}

type fakeInteractor struct {
	id         string
	rec        *recorder
	exitParams scheme.Params
	lastParams scheme.Params
}

func (i *fakeInteractor) OnEnter() { i.rec.add("%s:enter", i.id) }

func (i *fakeInteractor) OnExit() scheme.Params {
	i.rec.add("%s:exit", i.id)
	return i.exitParams
}

func (i *fakeInteractor) WithParams(params scheme.Params) {
	i.rec.add("%s:params", i.id)
	i.lastParams = params
}

type fakePresenter struct {
	id  string
	rec *recorder
}

func (p *fakePresenter) Show() { p.rec.add("%s:show", p.id) }
func (p *fakePresenter) Hide() { p.rec.add("%s:hide", p.id) }

// Typed interactors, only used for their tags.
type HomeInteractor struct{}

func (HomeInteractor) ScreenTag() router.Tag { return "home" }

type ProfileInteractor struct{}

func (ProfileInteractor) ScreenTag() router.Tag { return "profile" }

type MissingInteractor struct{}

func (MissingInteractor) ScreenTag() router.Tag { return "missing" }

type fakeResolver struct {
	first       scheme.Scheme
	initErr     error
	resolveErr  error
	initialized bool
}

func (r *fakeResolver) Initialize() error {
	r.initialized = true
	return r.initErr
}

func (r *fakeResolver) ResolveScheme() (scheme.Scheme, error) {
	return r.first, r.resolveErr
}

type fakeLoader struct {
	rec      *recorder
	scenes   map[string]bool
	loadErr  error
	started  chan struct{} // closed when LoadScene begins, if set
	release  chan struct{} // LoadScene waits on it, if set
	bindings []router.Bindings
}

func (l *fakeLoader) CanLoad(name string) bool { return l.scenes[name] }

func (l *fakeLoader) LoadLoadingScene(context.Context) error {
	l.rec.add("loading:show")
	return nil
}

func (l *fakeLoader) UnloadLoadingScene(context.Context) error {
	l.rec.add("loading:hide")
	return nil
}

func (l *fakeLoader) LoadScene(_ context.Context, name string, b router.Bindings) error {
	l.rec.add("load:%s", name)
	l.bindings = append(l.bindings, b)
	if l.started != nil {
		close(l.started)
		<-l.release
	}
	return l.loadErr
}

func (l *fakeLoader) LoadMainScene(context.Context) error {
	l.rec.add("load:main")
	return l.loadErr
}

// fixture is a started router over home, profile and settings screens,
// starting on home.
type fixture struct {
	router      *router.Router
	rec         *recorder
	loader      *fakeLoader
	resolver    *fakeResolver
	interactors map[string]*fakeInteractor
	created     int
}

func newFixture(t *testing.T, opts ...router.Option) *fixture {
	t.Helper()
	f := newUnstartedFixture(t, opts...)
	require.NoError(t, f.router.Start(context.Background()))
	f.rec.take()
	return f
}

func newUnstartedFixture(t *testing.T, opts ...router.Option) *fixture {
	t.Helper()

	registry, err := router.NewRegistry(
		router.Entry{ID: "home", Tag: "home", Asset: "home.png"},
		router.Entry{ID: "profile", Tag: "profile", Asset: "profile.png"},
		router.Entry{ID: "settings", Tag: "settings", Asset: "settings.png"},
	)
	require.NoError(t, err)

	codec, err := urlcodec.New("domain://")
	require.NoError(t, err)

	f := &fixture{
		rec:         &recorder{},
		resolver:    &fakeResolver{first: scheme.Screen("home", nil)},
		interactors: make(map[string]*fakeInteractor),
	}
	f.loader = &fakeLoader{rec: f.rec, scenes: map[string]bool{"level1": true, "arena": true}}

	factory := router.FactoryFunc(func(_ context.Context, e router.Entry) (router.Model, error) {
		f.created++
		i := &fakeInteractor{id: e.ID, rec: f.rec}
		f.interactors[e.ID] = i
		return router.Model{
			Interactor: i,
			Presenter:  &fakePresenter{id: e.ID, rec: f.rec},
		}, nil
	})

	opts = append([]router.Option{router.WithLogger(quietLogger())}, opts...)
	f.router = router.New(registry, factory, f.resolver, f.loader, codec, opts...)
	return f
}

func (f *fixture) currentID() string {
	s, _ := f.router.Current()
	return s.ID()
}

func (f *fixture) historyIDs() []string {
	ids := []string{}
	for _, s := range f.router.History() {
		ids = append(ids, s.String())
	}
	return ids
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
