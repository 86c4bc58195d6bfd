// Package registry records the themes and extensions available to a build
// without being present in the documentation source tree.
package registry

import (
	"maps"
	"slices"
	"strings"
)

// NoParent marks a theme at the root of an inheritance chain.
const NoParent = ""

// Registry holds built-in themes (name -> parent) and available extensions.
// The zero value is empty and ready to use.
type Registry struct {
	themes     map[string]string
	extensions map[string]struct{}
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		themes:     make(map[string]string),
		extensions: make(map[string]struct{}),
	}
}

// RegisterTheme makes a built-in theme available. parent may be NoParent.
func (r *Registry) RegisterTheme(name, parent string) {
	if r.themes == nil {
		r.themes = make(map[string]string)
	}
	r.themes[name] = parent
}

// RegisterExtension marks extension identifiers as available.
func (r *Registry) RegisterExtension(names ...string) {
	if r.extensions == nil {
		r.extensions = make(map[string]struct{})
	}
	for _, n := range names {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		r.extensions[n] = struct{}{}
	}
}

// HasTheme reports whether name is a built-in theme.
func (r *Registry) HasTheme(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.themes[name]
	return ok
}

// ThemeParent returns the parent of a built-in theme.
func (r *Registry) ThemeParent(name string) (string, bool) {
	if r == nil {
		return NoParent, false
	}
	parent, ok := r.themes[name]
	return parent, ok
}

// HasExtension reports whether an extension identifier is available.
func (r *Registry) HasExtension(name string) bool {
	if r == nil {
		return false
	}
	_, ok := r.extensions[name]
	return ok
}

// Themes returns the registered theme names, sorted.
func (r *Registry) Themes() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.themes))
}

// Extensions returns the registered extension identifiers, sorted.
func (r *Registry) Extensions() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.extensions))
}

// Clone returns an independent copy.
func (r *Registry) Clone() *Registry {
	c := New()
	if r == nil {
		return c
	}
	maps.Copy(c.themes, r.themes)
	maps.Copy(c.extensions, r.extensions)
	return c
}
