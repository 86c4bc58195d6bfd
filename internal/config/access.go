package config

import (
	"path/filepath"
	"strings"
)

// ResolvePath interprets p relative to the directory containing the configuration
// source. Absolute paths are returned cleaned but otherwise unchanged.
func (c *BuildConfig) ResolvePath(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Dir, filepath.FromSlash(p))
}

// ResolvePaths applies ResolvePath to every entry, keeping order.
func (c *BuildConfig) ResolvePaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, c.ResolvePath(p))
	}
	return out
}

// SidebarFor returns the sidebar fragments for a page. An entry keyed by the exact
// page name wins; otherwise the "**" default applies. Other glob patterns are
// matched by the consuming build tool, not here. A nil result means the theme
// decides.
func (c *BuildConfig) SidebarFor(page string) []string {
	if frags, ok := c.SidebarLayout[page]; ok {
		return frags
	}
	return c.SidebarLayout[DefaultSidebarPattern]
}

// ExtensionLoadOrder returns the enabled extensions in activation order.
// Repeated identifiers are activated once, at their first position.
func (c *BuildConfig) ExtensionLoadOrder() []string {
	seen := make(map[string]struct{}, len(c.EnabledExtensions))
	out := make([]string, 0, len(c.EnabledExtensions))
	for _, ext := range c.EnabledExtensions {
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		out = append(out, ext)
	}
	return out
}

// IsRemote reports whether an asset reference points outside the build output.
func IsRemote(ref string) bool {
	return strings.HasPrefix(ref, "https://") ||
		strings.HasPrefix(ref, "http://") ||
		strings.HasPrefix(ref, "//")
}

// FieldNames lists the source keys Lookup understands, in declaration order.
var FieldNames = []string{
	"version", "project", "copyright", "author",
	"theme_search_paths", "static_asset_paths", "template_search_paths",
	"title", "theme_name", "master_document", "sidebar_layout", "permalink_icon",
	"css_assets", "js_assets", "enabled_extensions", "source_suffixes",
}

// Lookup returns a field by its source key, the way the build tool reads
// attributes off the configuration object.
func (c *BuildConfig) Lookup(name string) (any, bool) {
	switch name {
	case "version":
		return c.Version, true
	case "project":
		return c.Project, true
	case "copyright":
		return c.Copyright, true
	case "author":
		return c.Author, true
	case "theme_search_paths":
		return c.ThemeSearchPaths, true
	case "static_asset_paths":
		return c.StaticAssetPaths, true
	case "template_search_paths":
		return c.TemplateSearchPaths, true
	case "title":
		return c.Title, true
	case "theme_name":
		return c.ThemeName, true
	case "master_document":
		return c.MasterDocument, true
	case "sidebar_layout":
		return c.SidebarLayout, true
	case "permalink_icon":
		return c.PermalinkIcon, true
	case "css_assets":
		return c.CSSAssets, true
	case "js_assets":
		return c.JSAssets, true
	case "enabled_extensions":
		return c.EnabledExtensions, true
	case "source_suffixes":
		return c.SourceSuffixes, true
	}
	return nil, false
}
