package sdlscreen

import (
	"context"
	"fmt"
	"sync"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
)

// InteractorFunc builds the interactor for a registry entry.
type InteractorFunc func(entry router.Entry) (router.Interactor, error)

// Option configures a Factory.
type Option func(*Factory)

// WithCacheSize bounds how many screen textures stay loaded at once.
func WithCacheSize(n int) Option {
	return func(f *Factory) { f.cacheSize = n }
}

// WithDestination draws every screen into rect instead of the whole target.
func WithDestination(rect *sdl.Rect) Option {
	return func(f *Factory) { f.dst = rect }
}

// Factory is a router.Factory producing TexturePresenter models.
type Factory struct {
	renderer    *sdl.Renderer
	interactors map[router.Tag]InteractorFunc
	cacheSize   int
	dst         *sdl.Rect
	textures    *cache[*sdl.Texture]

	mu         sync.Mutex
	presenters []*TexturePresenter
}

// NewFactory creates a Factory drawing with renderer. interactors maps each
// screen tag to the constructor of its interactor.
func NewFactory(renderer *sdl.Renderer, interactors map[router.Tag]InteractorFunc, opts ...Option) *Factory {
	f := &Factory{
		renderer:    renderer,
		interactors: interactors,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.textures = newCache(f.cacheSize, f.loadTexture, func(t *sdl.Texture) { _ = t.Destroy() })
	return f
}

// Create implements router.Factory. Textures are loaded lazily on first
// Render, so Create does not touch the renderer.
func (f *Factory) Create(_ context.Context, entry router.Entry) (router.Model, error) {
	build, ok := f.interactors[entry.Tag]
	if !ok {
		return router.Model{}, fmt.Errorf("sdlscreen: no interactor for tag %q", entry.Tag)
	}
	if entry.Asset == "" {
		return router.Model{}, fmt.Errorf("sdlscreen: screen %q has no asset", entry.ID)
	}

	interactor, err := build(entry)
	if err != nil {
		return router.Model{}, fmt.Errorf("sdlscreen: build interactor %q: %w", entry.ID, err)
	}

	presenter := newTexturePresenter(entry.ID, entry.Asset, f.renderer, f.textures, f.dst)

	f.mu.Lock()
	f.presenters = append(f.presenters, presenter)
	f.mu.Unlock()

	return router.Model{
		ID:         entry.ID,
		Interactor: interactor,
		Presenter:  presenter,
	}, nil
}

// Presenters returns every presenter created so far, in creation order.
func (f *Factory) Presenters() []*TexturePresenter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*TexturePresenter(nil), f.presenters...)
}

// RenderAll draws every visible presenter. During a fade both the entering
// and the exiting screen are visible and blend.
func (f *Factory) RenderAll() error {
	for _, p := range f.Presenters() {
		if err := p.Render(); err != nil {
			return fmt.Errorf("sdlscreen: render %q: %w", p.ID(), err)
		}
	}
	return nil
}

// Destroy frees every loaded texture.
func (f *Factory) Destroy() {
	f.textures.clear()
}

func (f *Factory) loadTexture(path string) (*sdl.Texture, error) {
	texture, err := img.LoadTexture(f.renderer, path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := texture.SetBlendMode(sdl.BLENDMODE_BLEND); err != nil {
		_ = texture.Destroy()
		return nil, err
	}
	return texture, nil
}
