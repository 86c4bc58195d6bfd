package resolve

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/siteconf/internal/config"
	"git.home.luguber.info/inful/siteconf/internal/docs"
	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/registry"
	"git.home.luguber.info/inful/siteconf/internal/theme"
)

const validSRI = "sha384-+9wUXHfFUeGwAnEesSxSFwKwBHDbnc32jfpX3HN0aB9RHa4lbS1rqsSnM6DI9/LM"

// siteTree lays out a documentation source tree and returns its root.
type siteTree struct {
	t    *testing.T
	root string
}

func newSiteTree(t *testing.T) *siteTree {
	t.Helper()
	return &siteTree{t: t, root: t.TempDir()}
}

func (s *siteTree) file(rel, content string) *siteTree {
	s.t.Helper()
	p := filepath.Join(s.root, filepath.FromSlash(rel))
	require.NoError(s.t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(s.t, os.WriteFile(p, []byte(content), 0o644))
	return s
}

func (s *siteTree) dir(rel string) *siteTree {
	s.t.Helper()
	require.NoError(s.t, os.MkdirAll(filepath.Join(s.root, filepath.FromSlash(rel)), 0o755))
	return s
}

func (s *siteTree) load(source string) *config.BuildConfig {
	s.t.Helper()
	cfg, err := config.Parse([]byte(source), s.root, config.WithCurrentYear(func() int { return 2030 }))
	require.NoError(s.t, err)
	return cfg
}

// oxideTree mirrors a complete, valid documentation source tree.
func oxideTree(t *testing.T) *siteTree {
	return newSiteTree(t).
		file("sitemap.rst", "Sitemap\n=======\n").
		file("guides/install.md", "# Install\n").
		file("_themes/oxide/theme.yaml", "inherit: basic\nsidebars: [localtoc.html]\n").
		file("_themes/oxide/static/oxide.js", "//").
		file("_static/oxide.css", "body{}").
		dir("_templates")
}

func oxideSource(overrides map[string]string) string {
	fields := []struct{ key, value string }{
		{"project", "Oxide"},
		{"copyright", `"2021-{year}, Eeems"`},
		{"author", "Eeems"},
		{"theme_search_paths", "[_themes]"},
		{"static_asset_paths", "[_static]"},
		{"template_search_paths", "[_templates]"},
		{"title", "Oxide"},
		{"theme_name", "oxide"},
		{"master_document", "sitemap"},
		{"sidebar_layout", `{"**": [nav.html, sidefooter.html]}`},
		{"permalink_icon", `"#"`},
		{"css_assets", "[oxide.css]"},
		{"js_assets", "[https://peek.eeems.website/peek.js, oxide.js, " +
			"{url: https://browser.sentry-cdn.com/10.20.0/bundle.tracing.min.js, integrity: " + validSRI + ", crossorigin: anonymous}]"},
		{"enabled_extensions", "[sphinxcontrib.fulltoc, breathe]"},
	}
	var b strings.Builder
	for _, f := range fields {
		v := f.value
		if o, ok := overrides[f.key]; ok {
			v = o
		}
		if v == "" {
			continue
		}
		b.WriteString(f.key + ": " + v + "\n")
	}
	return b.String()
}

func requireResolutionError(t *testing.T, err error, field, ref string) {
	t.Helper()
	require.Error(t, err)
	require.True(t, ferrors.IsResolutionError(err), "want ResolutionError, got %v", err)
	ce, _ := ferrors.AsClassified(err)
	assert.Equal(t, field, ce.Field())
	assert.Equal(t, ref, ce.Reference())
	assert.Contains(t, err.Error(), ref)
}

func TestResolveCompleteSite(t *testing.T) {
	tree := oxideTree(t)
	cfg := tree.load(oxideSource(nil))

	res, err := Resolve(cfg)
	require.NoError(t, err)

	assert.Equal(t, []string{"oxide", "basic"}, res.Theme.Names())
	assert.Equal(t, []string{
		filepath.Join(tree.root, "_templates"),
		filepath.Join(tree.root, "_themes", "oxide"),
		theme.BuiltinPrefix + "basic",
	}, res.TemplateSearchOrder)
	assert.Equal(t, []string{"guides/install", "sitemap"}, res.Documents.Names())
	assert.Equal(t, []string{"sphinxcontrib.fulltoc", "breathe"}, res.Extensions)

	require.Len(t, res.Assets.Scripts, 3)
	assert.Equal(t, "_static/oxide.js", res.Assets.Scripts[1].Href)
	assert.Equal(t, validSRI, res.Assets.Scripts[2].Integrity)
}

func TestValidateMasterDocumentPresent(t *testing.T) {
	cfg := oxideTree(t).load(oxideSource(nil))
	assert.NoError(t, Validate(cfg))
}

func TestValidateMasterDocumentMissing(t *testing.T) {
	cfg := oxideTree(t).load(oxideSource(map[string]string{"master_document": "index"}))
	requireResolutionError(t, Validate(cfg), "master_document", "index")
}

func TestValidateUnknownTheme(t *testing.T) {
	tree := newSiteTree(t).
		file("sitemap.rst", "Sitemap\n=======\n").
		dir("_themes").dir("_static").dir("_templates").
		file("_static/oxide.css", "").
		file("_static/oxide.js", "")
	cfg := tree.load(oxideSource(nil))

	requireResolutionError(t, Validate(cfg), "theme_name", "oxide")
}

func TestValidateBuiltinTheme(t *testing.T) {
	cfg := oxideTree(t).load(oxideSource(map[string]string{
		"theme_name": "alabaster",
		"js_assets":  "[https://peek.eeems.website/peek.js]",
	}))

	res, err := Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"alabaster", "basic"}, res.Theme.Names())
}

func TestValidateMissingPathsFailFast(t *testing.T) {
	tree := newSiteTree(t).file("sitemap.rst", "Sitemap\n=======\n").dir("_themes")
	// static and template paths are both missing and the theme does not exist;
	// only the first violation is reported.
	cfg := tree.load(oxideSource(nil))

	err := Validate(cfg)
	requireResolutionError(t, err, "static_asset_paths", "_static")
	ce, _ := ferrors.AsClassified(err)
	p, _ := ce.Context().GetString(ferrors.ContextPath)
	assert.Equal(t, filepath.Join(tree.root, "_static"), p)
}

func TestValidatePathIsFile(t *testing.T) {
	tree := oxideTree(t).file("notadir", "")
	cfg := tree.load(oxideSource(map[string]string{"template_search_paths": "[_templates, notadir]"}))
	requireResolutionError(t, Validate(cfg), "template_search_paths", "notadir")
}

func TestValidateMissingAsset(t *testing.T) {
	cfg := oxideTree(t).load(oxideSource(map[string]string{"css_assets": "[oxide.css, print.css]"}))
	requireResolutionError(t, Validate(cfg), "css_assets", "print.css")
}

func TestValidateIntegrityFormat(t *testing.T) {
	tests := []struct {
		name      string
		integrity string
		ok        bool
	}{
		{"sha384", validSRI, true},
		{"sha512", "sha512-z4PhNX7vuL3xVChQ1m2AB9Yg5AULVxXcg/SpIdNs6c5H0NE8XYXysP+DGNKHfuwvY7kxvUdBeoGlODJ6+SfaPg==", false},
		{"truncated", "sha384-YWJj", false},
		{"no prefix", "+9wUXHfFUeGwAnEesSxSFwKwBHDbnc32jfpX3HN0aB9RHa4lbS1rqsSnM6DI9/LM", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := oxideTree(t).load(oxideSource(map[string]string{
				"js_assets": "[{url: https://cdn.example.com/a.js, integrity: '" + tt.integrity + "', crossorigin: anonymous}]",
			}))
			err := Validate(cfg)
			if tt.ok {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, ferrors.IsConfigError(err), "want ConfigError, got %v", err)
		})
	}
}

func TestValidateUnavailableExtension(t *testing.T) {
	cfg := oxideTree(t).load(oxideSource(map[string]string{"enabled_extensions": "[breathe, sphinxcontrib.unknown]"}))
	requireResolutionError(t, Validate(cfg), "enabled_extensions", "sphinxcontrib.unknown")

	reg := registry.Default()
	reg.RegisterExtension("sphinxcontrib.unknown")
	assert.NoError(t, Validate(cfg, WithRegistry(reg)))
}

func TestValidateWithInjectedDocuments(t *testing.T) {
	tree := oxideTree(t)
	cfg := tree.load(oxideSource(map[string]string{"master_document": "contents"}))

	requireResolutionError(t, Validate(cfg), "master_document", "contents")

	other := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(other, "contents.rst"), []byte("Contents\n========\n"), 0o644))
	set, err := docs.Discover(other, []string{".rst"}, nil)
	require.NoError(t, err)
	assert.NoError(t, Validate(cfg, WithDocuments(set)))
}

func TestSidebarDefaultPatternAppliesToEveryPage(t *testing.T) {
	cfg := oxideTree(t).load(oxideSource(map[string]string{"sidebar_layout": `{"**": [nav, sidefooter]}`}))
	res, err := Resolve(cfg)
	require.NoError(t, err)

	for _, page := range res.Documents.Names() {
		assert.Equal(t, []string{"nav", "sidefooter"}, res.Sidebar(page), page)
	}
}

func TestSidebarFallsBackToTheme(t *testing.T) {
	cfg := oxideTree(t).load(oxideSource(map[string]string{"sidebar_layout": ""}))
	res, err := Resolve(cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"localtoc.html"}, res.Sidebar("sitemap"))
}

func TestResolveNilConfig(t *testing.T) {
	_, err := Resolve(nil)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryInternal))
}
