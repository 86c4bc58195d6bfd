package registry

// builtinThemes are the themes shipped with the build tool, keyed by name with
// their parent theme.
var builtinThemes = map[string]string{
	"basic":       NoParent,
	"alabaster":   "basic",
	"classic":     "basic",
	"default":     "classic",
	"sphinxdoc":   "basic",
	"scrolls":     "basic",
	"agogo":       "basic",
	"traditional": "basic",
	"nature":      "basic",
	"haiku":       "basic",
	"pyramid":     "basic",
	"bizstyle":    "basic",
	"epub":        "basic",
}

// builtinExtensions ship with the build tool itself.
var builtinExtensions = []string{
	"sphinx.ext.autodoc",
	"sphinx.ext.autosectionlabel",
	"sphinx.ext.autosummary",
	"sphinx.ext.coverage",
	"sphinx.ext.doctest",
	"sphinx.ext.duration",
	"sphinx.ext.extlinks",
	"sphinx.ext.githubpages",
	"sphinx.ext.graphviz",
	"sphinx.ext.ifconfig",
	"sphinx.ext.imgconverter",
	"sphinx.ext.imgmath",
	"sphinx.ext.inheritance_diagram",
	"sphinx.ext.intersphinx",
	"sphinx.ext.linkcode",
	"sphinx.ext.mathjax",
	"sphinx.ext.napoleon",
	"sphinx.ext.todo",
	"sphinx.ext.viewcode",
}

// commonExtensions are widely installed third-party packages.
var commonExtensions = []string{
	"breathe",
	"myst_parser",
	"sphinx_copybutton",
	"sphinx_design",
	"sphinxcontrib.fulltoc",
	"sphinxcontrib.mermaid",
	"sphinxcontrib.plantuml",
}

// Default returns a registry with the stock themes, the stock extensions and a
// catalogue of common third-party extensions.
func Default() *Registry {
	r := New()
	for name, parent := range builtinThemes {
		r.RegisterTheme(name, parent)
	}
	r.RegisterExtension(builtinExtensions...)
	r.RegisterExtension(commonExtensions...)
	return r
}
