package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.True(t, r.HasTheme("alabaster"))
	assert.True(t, r.HasTheme("basic"))
	assert.False(t, r.HasTheme("oxide"))

	parent, ok := r.ThemeParent("alabaster")
	require.True(t, ok)
	assert.Equal(t, "basic", parent)

	parent, ok = r.ThemeParent("basic")
	require.True(t, ok)
	assert.Equal(t, NoParent, parent)

	assert.True(t, r.HasExtension("sphinx.ext.intersphinx"))
	assert.True(t, r.HasExtension("breathe"))
	assert.True(t, r.HasExtension("sphinxcontrib.fulltoc"))
	assert.False(t, r.HasExtension("sphinxcontrib.nonexistent"))
}

func TestRegisterAndClone(t *testing.T) {
	r := New()
	r.RegisterTheme("oxide", "basic")
	r.RegisterExtension("local.ext", "  ", "")

	assert.Equal(t, []string{"oxide"}, r.Themes())
	assert.Equal(t, []string{"local.ext"}, r.Extensions())

	c := r.Clone()
	c.RegisterExtension("other.ext")
	assert.False(t, r.HasExtension("other.ext"))
	assert.True(t, c.HasExtension("local.ext"))
}

func TestZeroAndNilRegistry(t *testing.T) {
	var zero Registry
	zero.RegisterTheme("t", NoParent)
	zero.RegisterExtension("e")
	assert.True(t, zero.HasTheme("t"))
	assert.True(t, zero.HasExtension("e"))

	var nilReg *Registry
	assert.False(t, nilReg.HasTheme("basic"))
	assert.False(t, nilReg.HasExtension("e"))
	assert.Empty(t, nilReg.Themes())
	assert.NotNil(t, nilReg.Clone())
}
