// Package resolve checks every reference of a loaded BuildConfig against the
// filesystem and the registry and produces the resolved view the build uses.
//
// Checks run in a fixed order and stop at the first failure:
//
//  1. theme_search_paths, static_asset_paths and template_search_paths exist
//  2. theme_name resolves (search paths, then built-in themes)
//  3. master_document is among the authored documents
//  4. css_assets and js_assets resolve; integrity attributes are well formed
//  5. enabled_extensions are available
package resolve

import (
	"log/slog"
	"os"

	"git.home.luguber.info/inful/siteconf/internal/assets"
	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/docs"
	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/registry"
	"git.home.luguber.info/inful/siteconf/internal/theme"
)

// Resolution is the fully resolved view of a BuildConfig.
type Resolution struct {
	Config              *config.BuildConfig
	Theme               theme.Chain
	TemplateSearchOrder []string
	Documents           *docs.Set
	Assets              *assets.Plan
	Extensions          []string
}

// Sidebar returns the sidebar fragments for page: the configured layout when it
// covers the page, otherwise the theme default.
func (r *Resolution) Sidebar(page string) []string {
	if frags := r.Config.SidebarFor(page); frags != nil {
		return frags
	}
	return r.Theme.DefaultSidebars()
}

type options struct {
	registry  *registry.Registry
	documents *docs.Set
	logger    *slog.Logger
}

// Option customises Resolve.
type Option func(*options)

// WithRegistry sets the built-in themes and available extensions.
func WithRegistry(r *registry.Registry) Option {
	return func(o *options) { o.registry = r }
}

// WithDocuments supplies the authored documents instead of discovering them
// in the configuration directory.
func WithDocuments(s *docs.Set) Option {
	return func(o *options) { o.documents = s }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Validate reports the first reference of cfg that does not resolve.
func Validate(cfg *config.BuildConfig, opts ...Option) error {
	_, err := Resolve(cfg, opts...)
	return err
}

// Resolve runs every check and returns the resolved configuration.
func Resolve(cfg *config.BuildConfig, opts ...Option) (*Resolution, error) {
	o := &options{registry: registry.Default(), logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if cfg == nil {
		return nil, ferrors.InternalError("nil configuration").Build()
	}

	themePaths := cfg.ResolvePaths(cfg.ThemeSearchPaths)
	staticPaths := cfg.ResolvePaths(cfg.StaticAssetPaths)
	templatePaths := cfg.ResolvePaths(cfg.TemplateSearchPaths)

	for _, group := range []struct {
		field    string
		declared []string
		resolved []string
	}{
		{"theme_search_paths", cfg.ThemeSearchPaths, themePaths},
		{"static_asset_paths", cfg.StaticAssetPaths, staticPaths},
		{"template_search_paths", cfg.TemplateSearchPaths, templatePaths},
	} {
		if err := checkDirs(group.field, group.declared, group.resolved); err != nil {
			return nil, err
		}
	}

	chain, err := theme.Resolve(cfg.ThemeName, themePaths, o.registry)
	if err != nil {
		return nil, err
	}
	o.logger.Debug("Theme resolved", logfields.Theme(cfg.ThemeName), slog.Any("chain", chain.Names()))

	documents := o.documents
	if documents == nil {
		exclude := make([]string, 0, len(themePaths)+len(staticPaths)+len(templatePaths))
		exclude = append(exclude, themePaths...)
		exclude = append(exclude, staticPaths...)
		exclude = append(exclude, templatePaths...)
		if documents, err = docs.Discover(cfg.Dir, cfg.SourceSuffixes, exclude); err != nil {
			return nil, err
		}
	}
	if !documents.Has(cfg.MasterDocument) {
		return nil, ferrors.ResolutionError("document not found").
			WithField("master_document").WithReference(cfg.MasterDocument).Build()
	}

	plan, err := assets.BuildPlan(cfg, chain)
	if err != nil {
		return nil, err
	}

	extensions := cfg.ExtensionLoadOrder()
	for _, ext := range extensions {
		if !o.registry.HasExtension(ext) {
			return nil, ferrors.ResolutionError("extension not available").
				WithField("enabled_extensions").WithReference(ext).Build()
		}
		o.logger.Debug("Extension available", logfields.Extension(ext))
	}

	return &Resolution{
		Config:              cfg,
		Theme:               chain,
		TemplateSearchOrder: chain.TemplateSearchOrder(templatePaths),
		Documents:           documents,
		Assets:              plan,
		Extensions:          extensions,
	}, nil
}

func checkDirs(field string, declared, resolved []string) error {
	for i, p := range resolved {
		info, err := os.Stat(p)
		if err == nil && info.IsDir() {
			continue
		}
		b := ferrors.ResolutionError("directory does not exist").
			WithField(field).WithReference(declared[i]).WithPath(p)
		if err != nil {
			b = b.WithCause(err)
		}
		return b.Build()
	}
	return nil
}
