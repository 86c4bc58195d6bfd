// Package assets resolves the stylesheets and scripts injected into every page
// and keeps their injection order.
package assets

import (
	"os"
	"path"
	"path/filepath"

	"git.home.luguber.info/inful/siteconf/internal/config"
	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/theme"
)

// StaticURLPrefix is where static files end up in the generated site.
const StaticURLPrefix = "_static/"

// Asset is a stylesheet or script reference ready to be emitted.
type Asset struct {
	Ref         string // as declared
	Href        string // URL emitted into pages
	Source      string // file copied into the output; empty for remote assets
	Remote      bool
	Integrity   string
	CrossOrigin string
}

// Plan lists the assets of every page in injection order.
type Plan struct {
	Stylesheets []Asset
	Scripts     []Asset
}

// Locator finds local assets in the static directories. Directories are given
// in copy order; a file in a later directory replaces one in an earlier
// directory, so lookups go from last to first.
type Locator struct {
	dirs []string
}

// NewLocator builds the copy order used by the build: theme static directories
// (base theme first) followed by the configured static paths.
func NewLocator(themeStatic, staticPaths []string) *Locator {
	dirs := make([]string, 0, len(themeStatic)+len(staticPaths))
	dirs = append(dirs, themeStatic...)
	dirs = append(dirs, staticPaths...)
	return &Locator{dirs: dirs}
}

// Dirs returns the directories in copy order.
func (l *Locator) Dirs() []string { return l.dirs }

// Locate returns the file that will be published for ref.
func (l *Locator) Locate(ref string) (string, bool) {
	rel := filepath.FromSlash(ref)
	if !filepath.IsLocal(rel) {
		return "", false
	}
	for i := len(l.dirs) - 1; i >= 0; i-- {
		p := filepath.Join(l.dirs[i], rel)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// BuildPlan resolves the theme stylesheet and the configured css/js assets.
// It fails on the first asset that does not resolve or whose integrity
// attributes are malformed.
func BuildPlan(cfg *config.BuildConfig, chain theme.Chain) (*Plan, error) {
	loc := NewLocator(chain.StaticDirs(), cfg.ResolvePaths(cfg.StaticAssetPaths))
	plan := &Plan{}

	if sheet := chain.Stylesheet(); sheet != "" {
		a, err := resolveLocal(loc, sheet, "theme_name")
		if err != nil {
			return nil, err
		}
		plan.Stylesheets = append(plan.Stylesheets, a)
	}

	for _, ref := range cfg.CSSAssets {
		if config.IsRemote(ref) {
			plan.Stylesheets = append(plan.Stylesheets, Asset{Ref: ref, Href: ref, Remote: true})
			continue
		}
		a, err := resolveLocal(loc, ref, "css_assets")
		if err != nil {
			return nil, err
		}
		plan.Stylesheets = append(plan.Stylesheets, a)
	}

	for _, js := range cfg.JSAssets {
		a, err := resolveScript(loc, js)
		if err != nil {
			return nil, err
		}
		plan.Scripts = append(plan.Scripts, a)
	}
	return plan, nil
}

func resolveLocal(loc *Locator, ref, field string) (Asset, error) {
	if !filepath.IsLocal(filepath.FromSlash(ref)) {
		return Asset{}, ferrors.ResolutionError("asset reference escapes the static paths").
			WithField(field).WithReference(ref).Build()
	}
	src, ok := loc.Locate(ref)
	if !ok {
		return Asset{}, ferrors.ResolutionError("asset not found in static paths").
			WithField(field).WithReference(ref).Build()
	}
	return Asset{Ref: ref, Href: StaticURLPrefix + path.Clean(ref), Source: src}, nil
}

func resolveScript(loc *Locator, js config.JSAsset) (Asset, error) {
	var a Asset
	if config.IsRemote(js.URL) {
		a = Asset{Ref: js.URL, Href: js.URL, Remote: true}
	} else {
		var err error
		if a, err = resolveLocal(loc, js.URL, "js_assets"); err != nil {
			return Asset{}, err
		}
	}

	if js.Attributes == nil {
		return a, nil
	}
	sri, err := config.ParseIntegrity(js.Attributes.Integrity)
	if err != nil {
		return Asset{}, ferrors.WrapError(err, ferrors.CategoryConfig, "malformed subresource integrity digest").
			Fatal().WithField("js_assets").WithReference(js.URL).Build()
	}
	if !config.ValidCrossOrigin(js.Attributes.CrossOrigin) {
		return Asset{}, ferrors.ConfigError("unsupported crossorigin policy").
			WithField("js_assets").WithReference(js.URL).
			WithContext("crossorigin", js.Attributes.CrossOrigin).Build()
	}
	a.Integrity = sri.String()
	a.CrossOrigin = js.Attributes.CrossOrigin
	return a, nil
}
