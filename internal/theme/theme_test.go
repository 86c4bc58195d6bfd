package theme

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/registry"
)

func makeTheme(t *testing.T, root, name, manifest string) string {
	t.Helper()
	dir := filepath.Join(root, name)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "static"), 0o755))
	if manifest != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, ManifestFile), []byte(manifest), 0o644))
	}
	return dir
}

func TestResolveDirectoryThemeInheritsBasic(t *testing.T) {
	root := t.TempDir()
	dir := makeTheme(t, root, "oxide", "")

	chain, err := Resolve("oxide", []string{root}, registry.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{"oxide", "basic"}, chain.Names())
	assert.Equal(t, dir, chain[0].Dir)
	assert.True(t, chain[1].Builtin())
}

func TestResolveManifestInheritance(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "base", "inherit: none\nstylesheet: base.css\nsidebars: [localtoc.html]\n")
	makeTheme(t, root, "child", "inherit: base\nstylesheet: child.css\n")

	chain, err := Resolve("child", []string{root}, registry.New())
	require.NoError(t, err)

	assert.Equal(t, []string{"child", "base"}, chain.Names())
	assert.Equal(t, "child.css", chain.Stylesheet())
	assert.Equal(t, []string{"localtoc.html"}, chain.DefaultSidebars())
	assert.Equal(t, []string{
		filepath.Join(root, "base", "static"),
		filepath.Join(root, "child", "static"),
	}, chain.StaticDirs())
}

func TestResolveSearchPathOrder(t *testing.T) {
	first, second := t.TempDir(), t.TempDir()
	makeTheme(t, first, "shared", "inherit: none\n")
	makeTheme(t, second, "shared", "inherit: none\n")

	chain, err := Resolve("shared", []string{first, second}, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(first, "shared"), chain[0].Dir)
}

func TestResolveDirectoryShadowsBuiltin(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "alabaster", "")

	chain, err := Resolve("alabaster", []string{root}, registry.Default())
	require.NoError(t, err)
	assert.False(t, chain[0].Builtin())
	assert.Equal(t, []string{"alabaster", "basic"}, chain.Names())
}

func TestResolveBuiltin(t *testing.T) {
	chain, err := Resolve("default", nil, registry.Default())
	require.NoError(t, err)
	assert.Equal(t, []string{"default", "classic", "basic"}, chain.Names())
	assert.Empty(t, chain.StaticDirs())
}

func TestResolveUnknownTheme(t *testing.T) {
	_, err := Resolve("oxide", []string{t.TempDir()}, registry.Default())
	require.Error(t, err)
	assert.True(t, ferrors.IsResolutionError(err))

	ce, _ := ferrors.AsClassified(err)
	assert.Equal(t, "oxide", ce.Reference())
	assert.Equal(t, "theme_name", ce.Field())
	assert.Contains(t, err.Error(), "oxide")
}

func TestResolveUnknownParent(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "child", "inherit: ghost\n")

	_, err := Resolve("child", []string{root}, registry.Default())
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, "ghost", ce.Reference())
	by, _ := ce.Context().GetString("inherited_by")
	assert.Equal(t, "child", by)
}

func TestResolveCycle(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "a", "inherit: b\n")
	makeTheme(t, root, "b", "inherit: a\n")

	_, err := Resolve("a", []string{root}, nil)
	require.Error(t, err)
	assert.True(t, ferrors.IsResolutionError(err))
	assert.Contains(t, err.Error(), "cycle")
}

func TestResolveRejectsEscapingNames(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "_themes")
	require.NoError(t, os.MkdirAll(root, 0o755))
	makeTheme(t, parent, "outside", "inherit: none\n")
	makeTheme(t, root, "child", "inherit: ../outside\n")

	for _, name := range []string{"../outside", "child"} {
		_, err := Resolve(name, []string{root}, registry.Default())
		require.Error(t, err, name)
		assert.True(t, ferrors.IsResolutionError(err))
		ce, _ := ferrors.AsClassified(err)
		assert.Equal(t, "../outside", ce.Reference())
		assert.Contains(t, err.Error(), "escapes")
	}
}

func TestResolveMalformedManifest(t *testing.T) {
	root := t.TempDir()
	makeTheme(t, root, "bad", "inherit: [unterminated\n")

	_, err := Resolve("bad", []string{root}, nil)
	require.Error(t, err)
	assert.True(t, ferrors.IsConfigError(err))
}

func TestTemplateSearchOrder(t *testing.T) {
	root := t.TempDir()
	dir := makeTheme(t, root, "oxide", "")

	chain, err := Resolve("oxide", []string{root}, registry.Default())
	require.NoError(t, err)

	got := chain.TemplateSearchOrder([]string{"/docs/_templates"})
	assert.Equal(t, []string{"/docs/_templates", dir, BuiltinPrefix + "basic"}, got)
}
