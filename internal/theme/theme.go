// Package theme resolves a theme name against the theme search paths and the
// built-in registry, and derives the template and static lookup order of the
// resulting inheritance chain.
package theme

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/registry"
)

// ManifestFile is the optional descriptor inside a theme directory.
const ManifestFile = "theme.yaml"

// DefaultParent is inherited by directory themes that do not say otherwise.
const DefaultParent = "basic"

// noInherit in a manifest ends the chain at that theme.
const noInherit = "none"

// BuiltinPrefix marks built-in themes in template search order listings.
const BuiltinPrefix = "builtin:"

// Manifest is the content of theme.yaml.
type Manifest struct {
	Inherit    string   `yaml:"inherit"`
	Stylesheet string   `yaml:"stylesheet"`
	Sidebars   []string `yaml:"sidebars"`
}

// Theme is one link of a resolved chain.
type Theme struct {
	Name       string
	Dir        string // empty for built-in themes
	Parent     string
	Stylesheet string
	Sidebars   []string
}

// Builtin reports whether the theme comes from the registry rather than disk.
func (t Theme) Builtin() bool { return t.Dir == "" }

// Chain is a resolved theme followed by its ancestors, most derived first.
type Chain []Theme

// Resolve finds name in searchPaths (in order) or the registry and follows its
// inheritance chain. Failures are ResolutionErrors naming the theme.
func Resolve(name string, searchPaths []string, reg *registry.Registry) (Chain, error) {
	var chain Chain
	seen := make(map[string]bool)
	current, child := name, ""

	for current != registry.NoParent {
		if seen[current] {
			return nil, ferrors.ResolutionError("theme inheritance cycle").
				WithField("theme_name").WithReference(current).Build()
		}
		seen[current] = true

		t, err := lookup(current, searchPaths, reg)
		if err != nil {
			return nil, err
		}
		if t == nil {
			b := ferrors.ResolutionError("theme not found").WithField("theme_name").WithReference(current)
			if child != "" {
				b = b.WithContext("inherited_by", child)
			}
			return nil, b.Build()
		}
		chain = append(chain, *t)
		child, current = current, t.Parent
	}
	return chain, nil
}

// lookup returns nil, nil when the theme is unknown.
func lookup(name string, searchPaths []string, reg *registry.Registry) (*Theme, error) {
	if !filepath.IsLocal(name) {
		return nil, ferrors.ResolutionError("theme name escapes the theme search paths").
			WithField("theme_name").WithReference(name).Build()
	}
	for _, sp := range searchPaths {
		dir := filepath.Join(sp, name)
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}
		m, err := readManifest(dir)
		if err != nil {
			return nil, err
		}
		parent := strings.TrimSpace(m.Inherit)
		switch parent {
		case "":
			parent = DefaultParent
		case noInherit:
			parent = registry.NoParent
		}
		if name == DefaultParent && m.Inherit == "" {
			parent = registry.NoParent
		}
		return &Theme{
			Name:       name,
			Dir:        dir,
			Parent:     parent,
			Stylesheet: m.Stylesheet,
			Sidebars:   m.Sidebars,
		}, nil
	}

	if parent, ok := reg.ThemeParent(name); ok {
		return &Theme{Name: name, Parent: parent}, nil
	}
	return nil, nil
}

func readManifest(dir string) (Manifest, error) {
	var m Manifest
	path := filepath.Join(dir, ManifestFile)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return m, nil
	}
	if err != nil {
		return m, ferrors.WrapError(err, ferrors.CategoryFileSystem, "read theme manifest").WithPath(path).Build()
	}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return m, ferrors.WrapError(err, ferrors.CategoryConfig, "malformed theme manifest").
			Fatal().WithField("theme_name").WithPath(path).Build()
	}
	return m, nil
}

// Names returns the chain's theme names, most derived first.
func (c Chain) Names() []string {
	out := make([]string, 0, len(c))
	for _, t := range c {
		out = append(out, t.Name)
	}
	return out
}

// TemplateSearchOrder lists where templates are looked up: the configured
// template paths first, then every theme from most derived to base.
func (c Chain) TemplateSearchOrder(templatePaths []string) []string {
	out := make([]string, 0, len(templatePaths)+len(c))
	out = append(out, templatePaths...)
	for _, t := range c {
		if t.Builtin() {
			out = append(out, BuiltinPrefix+t.Name)
			continue
		}
		out = append(out, t.Dir)
	}
	return out
}

// StaticDirs returns the static directories of on-disk themes, base first, in
// the order they are copied into the output (later copies win).
func (c Chain) StaticDirs() []string {
	var out []string
	for i := len(c) - 1; i >= 0; i-- {
		if c[i].Builtin() {
			continue
		}
		out = append(out, filepath.Join(c[i].Dir, "static"))
	}
	return out
}

// Stylesheet returns the stylesheet of the most derived theme that declares one.
func (c Chain) Stylesheet() string {
	for _, t := range c {
		if t.Stylesheet != "" {
			return t.Stylesheet
		}
	}
	return ""
}

// DefaultSidebars returns the sidebar fragments of the most derived theme that
// declares them.
func (c Chain) DefaultSidebars() []string {
	for _, t := range c {
		if len(t.Sidebars) > 0 {
			return t.Sidebars
		}
	}
	return nil
}
