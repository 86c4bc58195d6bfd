package docs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "sitemap.rst", "Sitemap\n=======\n\n.. toctree::\n")
	writeFile(t, root, "guides/install.md", "# Installing Oxide\n\nSteps.\n")
	writeFile(t, root, "guides/notes.txt", "not a document\n")
	writeFile(t, root, "_themes/oxide/layout.rst", "Layout\n======\n")
	writeFile(t, root, "_build/html/index.rst", "Stale\n=====\n")
	writeFile(t, root, ".git/HEAD.md", "# no\n")
	writeFile(t, root, ".hidden.rst", "Hidden\n======\n")

	set, err := Discover(root, []string{".rst", ".md"}, []string{filepath.Join(root, "_themes")})
	require.NoError(t, err)

	assert.Equal(t, []string{"guides/install", "sitemap"}, set.Names())
	assert.True(t, set.Has("sitemap"))
	assert.False(t, set.Has("layout"))
	assert.False(t, set.Has("html/index"))

	doc, ok := set.Get("guides/install")
	require.True(t, ok)
	assert.Equal(t, "Installing Oxide", doc.Title)
	assert.Equal(t, ".md", doc.Suffix)

	doc, ok = set.Get("sitemap")
	require.True(t, ok)
	assert.Equal(t, "Sitemap", doc.Title)
}

func TestDiscoverSuffixPreference(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md", "# From Markdown\n")
	writeFile(t, root, "index.rst", "From RST\n========\n")

	set, err := Discover(root, []string{".rst", ".md"}, nil)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())

	doc, _ := set.Get("index")
	assert.Equal(t, ".rst", doc.Suffix)
	assert.Equal(t, "From RST", doc.Title)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "missing"), []string{".rst"}, nil)
	assert.Error(t, err)
}

func TestNilSet(t *testing.T) {
	var s *Set
	assert.False(t, s.Has("index"))
	assert.Zero(t, s.Len())
	assert.Nil(t, s.Names())
}
