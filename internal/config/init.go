package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// Example returns the configuration written by Init.
func Example() *BuildConfig {
	return &BuildConfig{
		Version:             string(CurrentSchema),
		Project:             "Example",
		Copyright:           "2024-" + YearPlaceholder + ", Example Authors",
		Author:              "Example Authors",
		ThemeSearchPaths:    []string{"_themes"},
		StaticAssetPaths:    []string{"_static"},
		TemplateSearchPaths: []string{"_templates"},
		Title:               "Example",
		ThemeName:           DefaultThemeName,
		MasterDocument:      "index",
		SidebarLayout:       SidebarLayout{DefaultSidebarPattern: {"nav.html", "sidefooter.html"}},
		PermalinkIcon:       "#",
		CSSAssets:           []string{"site.css"},
		JSAssets: []JSAsset{
			{URL: "site.js"},
		},
		EnabledExtensions: []string{"sphinx.ext.intersphinx"},
	}
}

// Init writes an example configuration source to path. An existing file is only
// replaced when force is set; the write is atomic either way.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return ferrors.ValidationError("configuration file already exists (use --force to overwrite)").
			WithPath(path).Build()
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "cannot stat configuration path").WithPath(path).Build()
	}

	data, err := yaml.Marshal(Example())
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to marshal example configuration").Build()
	}

	pending, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "create pending configuration file").WithPath(path).Build()
	}
	defer func() { _ = pending.Cleanup() }()

	if _, err := pending.Write(data); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "write configuration").WithPath(path).Build()
	}
	if err := pending.CloseAtomicallyReplace(); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryFileSystem, "replace configuration").WithPath(path).Build()
	}
	return nil
}
