// Package sdlscreen draws router screens as full-surface SDL textures.
//
// Each registered screen's Asset is an image path. The Factory pairs a
// TexturePresenter for that image with an interactor built by the host,
// and RenderAll draws whatever the router currently has visible.
package sdlscreen

import (
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

// TexturePresenter shows one image. Show, Hide and SetAlpha only record
// state and are safe to call from any goroutine; Render must be called
// from the thread that owns the renderer.
type TexturePresenter struct {
	id       string
	asset    string
	renderer *sdl.Renderer
	textures *cache[*sdl.Texture]
	dst      *sdl.Rect // nil fills the render target

	visible atomic.Bool
	alpha   atomic.Uint32
}

func newTexturePresenter(id, asset string, renderer *sdl.Renderer, textures *cache[*sdl.Texture], dst *sdl.Rect) *TexturePresenter {
	p := &TexturePresenter{
		id:       id,
		asset:    asset,
		renderer: renderer,
		textures: textures,
		dst:      dst,
	}
	p.alpha.Store(255)
	return p
}

func (p *TexturePresenter) Show() { p.visible.Store(true) }
func (p *TexturePresenter) Hide() { p.visible.Store(false) }

// SetAlpha sets the opacity used by the next Render.
func (p *TexturePresenter) SetAlpha(alpha uint8) { p.alpha.Store(uint32(alpha)) }

// ID returns the screen id the presenter belongs to.
func (p *TexturePresenter) ID() string { return p.id }

// Visible reports whether the presenter is shown.
func (p *TexturePresenter) Visible() bool { return p.visible.Load() }

// Alpha returns the current opacity.
func (p *TexturePresenter) Alpha() uint8 { return uint8(p.alpha.Load()) }

// Render draws the image if visible. Hidden presenters draw nothing and
// never load their texture.
func (p *TexturePresenter) Render() error {
	if !p.Visible() {
		return nil
	}

	texture, err := p.textures.get(p.asset)
	if err != nil {
		return err
	}
	if err := texture.SetAlphaMod(p.Alpha()); err != nil {
		return err
	}
	return p.renderer.Copy(texture, nil, p.dst)
}
