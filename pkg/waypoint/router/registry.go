package router

import (
	"errors"
	"fmt"
)

// Tag is the capability tag an interactor declares. The registry maps each
// tag to exactly one screen identifier, which is what lets NavigateTo find a
// screen by the kind of interactor it implements.
type Tag string

// Tagged is implemented by interactors that declare their Tag.
// ScreenTag must not depend on receiver state: NavigateToType calls it on
// the zero value.
type Tagged interface {
	ScreenTag() Tag
}

// Entry is the static registration of one screen.
type Entry struct {
	ID    string // Unique screen identifier, used in URLs
	Tag   Tag    // Interactor capability tag
	Asset string // Visual asset the factory instantiates
}

// Registry is the table of known screens. It is built at configuration
// time and treated as read-only once handed to a Router.
type Registry struct {
	entries []Entry
	byID    map[string]int
	byTag   map[Tag]string
}

// NewRegistry creates a registry holding entries.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		byID:  make(map[string]int),
		byTag: make(map[Tag]string),
	}
	for _, e := range entries {
		if err := r.Register(e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a screen. Identifiers and tags must be unique and non-empty.
func (r *Registry) Register(e Entry) error {
	if e.ID == "" {
		return errors.New("router: registry entry has empty id")
	}
	if e.Tag == "" {
		return fmt.Errorf("router: registry entry %q has empty tag", e.ID)
	}
	if _, ok := r.byID[e.ID]; ok {
		return fmt.Errorf("router: screen %q registered twice", e.ID)
	}
	if other, ok := r.byTag[e.Tag]; ok {
		return fmt.Errorf("router: tag %q already registered by screen %q", string(e.Tag), other)
	}

	r.byID[e.ID] = len(r.entries)
	r.byTag[e.Tag] = e.ID
	r.entries = append(r.entries, e)
	return nil
}

// Lookup returns the entry registered under id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	i, ok := r.byID[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// IDFor returns the screen identifier registered for tag.
func (r *Registry) IDFor(tag Tag) (string, bool) {
	id, ok := r.byTag[tag]
	return id, ok
}

// Entries returns the registered entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Len returns the number of registered screens.
func (r *Registry) Len() int {
	return len(r.entries)
}
