// Package scheme defines navigation targets.
//
// A Scheme is either a screen target (an identifier plus parameters) or a
// scene target (the name of a loadable scene, never with parameters).
// The zero Scheme is no target at all.
package scheme

import "fmt"

// Kind discriminates the two kinds of navigation target.
type Kind int

const (
	KindNone   Kind = iota // Zero value, not a target
	KindScreen             // A registered screen
	KindScene              // A loadable scene
)

func (k Kind) String() string {
	switch k {
	case KindScreen:
		return "screen"
	case KindScene:
		return "scene"
	default:
		return "none"
	}
}

// Scheme is an immutable navigation target.
type Scheme struct {
	kind   Kind
	id     string
	params Params
}

// Screen returns a screen target for id. params is copied.
func Screen(id string, params Params) Scheme {
	return Scheme{kind: KindScreen, id: id, params: params.Clone()}
}

// Scene returns a scene target for the scene called name.
func Scene(name string) Scheme {
	return Scheme{kind: KindScene, id: name}
}

// Kind returns whether s targets a screen or a scene.
func (s Scheme) Kind() Kind {
	return s.kind
}

// ID returns the screen identifier, or the scene name for scene targets.
func (s Scheme) ID() string {
	return s.id
}

// Params returns a copy of the parameters. Scene targets have none.
func (s Scheme) Params() Params {
	return s.params.Clone()
}

// IsZero reports whether s is the zero Scheme.
func (s Scheme) IsZero() bool {
	return s.kind == KindNone
}

// IsScene reports whether s targets a scene.
func (s Scheme) IsScene() bool {
	return s.kind == KindScene
}

// Equal reports whether s and o name the same target with the same parameters.
func (s Scheme) Equal(o Scheme) bool {
	return s.kind == o.kind && s.id == o.id && s.params.Equal(o.params)
}

func (s Scheme) String() string {
	switch s.kind {
	case KindScreen:
		if len(s.params) == 0 {
			return s.id
		}
		return fmt.Sprintf("%s %v", s.id, s.params.Map())
	case KindScene:
		return "scene:" + s.id
	default:
		return "<none>"
	}
}
