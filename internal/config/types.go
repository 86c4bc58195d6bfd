package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// BuildConfig is the resolved site configuration consumed by the documentation build.
// It is constructed once per build by Load and treated as read-only afterwards.
type BuildConfig struct {
	Version             string        `yaml:"version,omitempty" json:"version,omitempty"`
	Project             string        `yaml:"project" json:"project"`
	Copyright           string        `yaml:"copyright,omitempty" json:"copyright,omitempty"`
	Author              string        `yaml:"author" json:"author"`
	ThemeSearchPaths    []string      `yaml:"theme_search_paths,omitempty" json:"theme_search_paths,omitempty"`
	StaticAssetPaths    []string      `yaml:"static_asset_paths,omitempty" json:"static_asset_paths,omitempty"`
	TemplateSearchPaths []string      `yaml:"template_search_paths,omitempty" json:"template_search_paths,omitempty"`
	Title               string        `yaml:"title,omitempty" json:"title,omitempty"`
	ThemeName           string        `yaml:"theme_name,omitempty" json:"theme_name,omitempty"`
	MasterDocument      string        `yaml:"master_document" json:"master_document"`
	SidebarLayout       SidebarLayout `yaml:"sidebar_layout,omitempty" json:"sidebar_layout,omitempty"`
	PermalinkIcon       string        `yaml:"permalink_icon,omitempty" json:"permalink_icon,omitempty"`
	CSSAssets           []string      `yaml:"css_assets,omitempty" json:"css_assets,omitempty"`
	JSAssets            []JSAsset     `yaml:"js_assets,omitempty" json:"js_assets,omitempty"`
	EnabledExtensions   []string      `yaml:"enabled_extensions,omitempty" json:"enabled_extensions,omitempty"`
	SourceSuffixes      []string      `yaml:"source_suffixes,omitempty" json:"source_suffixes,omitempty"`

	// Path is the absolute path of the configuration source; Dir is its directory.
	// Every relative path above is interpreted against Dir.
	Path string `yaml:"-" json:"-"`
	Dir  string `yaml:"-" json:"-"`
	// Year is the calendar year read during Load.
	Year int `yaml:"-" json:"-"`
}

// SidebarLayout maps a page pattern to the ordered sidebar fragments rendered for it.
type SidebarLayout map[string][]string

// DefaultSidebarPattern applies to every page without a more specific entry.
const DefaultSidebarPattern = "**"

// JSAsset is a script reference. Bare entries carry only a URL (local path or
// remote address); integrity-checked entries also carry ScriptAttributes.
type JSAsset struct {
	URL        string
	Attributes *ScriptAttributes
}

// ScriptAttributes are the subresource-integrity attributes of a script reference.
type ScriptAttributes struct {
	Integrity   string `yaml:"integrity" json:"integrity"`
	CrossOrigin string `yaml:"crossorigin" json:"crossorigin"`
}

// HasIntegrity reports whether the asset is an integrity-attributed entry.
func (a JSAsset) HasIntegrity() bool { return a.Attributes != nil }

// jsAssetEntry mirrors the mapping form so missing keys can be told apart from empty ones.
type jsAssetEntry struct {
	URL         *string `yaml:"url"`
	Integrity   *string `yaml:"integrity"`
	CrossOrigin *string `yaml:"crossorigin"`
}

// UnmarshalYAML accepts either a scalar URL or a {url, integrity, crossorigin} mapping.
func (a *JSAsset) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*a = JSAsset{URL: node.Value}
		return nil
	case yaml.MappingNode:
		var entry jsAssetEntry
		if err := node.Decode(&entry); err != nil {
			return err
		}
		return a.fromEntry(entry, node.Line)
	default:
		return fmt.Errorf("line %d: js asset must be a string or a mapping", node.Line)
	}
}

func (a *JSAsset) fromEntry(entry jsAssetEntry, line int) error {
	if entry.URL == nil || *entry.URL == "" {
		return &assetEntryError{line: line, missing: "url"}
	}
	if entry.Integrity == nil || *entry.Integrity == "" {
		return &assetEntryError{line: line, url: *entry.URL, missing: "integrity"}
	}
	if entry.CrossOrigin == nil || *entry.CrossOrigin == "" {
		return &assetEntryError{line: line, url: *entry.URL, missing: "crossorigin"}
	}
	*a = JSAsset{
		URL: *entry.URL,
		Attributes: &ScriptAttributes{
			Integrity:   *entry.Integrity,
			CrossOrigin: *entry.CrossOrigin,
		},
	}
	return nil
}

// MarshalYAML writes bare entries as strings so a loaded source round-trips.
func (a JSAsset) MarshalYAML() (any, error) {
	if a.Attributes == nil {
		return a.URL, nil
	}
	return struct {
		URL         string `yaml:"url"`
		Integrity   string `yaml:"integrity"`
		CrossOrigin string `yaml:"crossorigin"`
	}{a.URL, a.Attributes.Integrity, a.Attributes.CrossOrigin}, nil
}

// MarshalJSON mirrors MarshalYAML.
func (a JSAsset) MarshalJSON() ([]byte, error) {
	v, err := a.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// assetEntryError is raised while decoding; Parse turns it into a ConfigError.
type assetEntryError struct {
	line    int
	url     string
	missing string
}

func (e *assetEntryError) Error() string {
	if e.url == "" {
		return fmt.Sprintf("line %d: js asset entry is missing %q", e.line, e.missing)
	}
	return fmt.Sprintf("line %d: js asset %s is missing %q", e.line, e.url, e.missing)
}
