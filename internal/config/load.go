package config

import (
	"bytes"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
)

// DefaultFileName is the well-known name of the configuration source inside a
// documentation source tree.
const DefaultFileName = "siteconf.yaml"

// YearPlaceholder is replaced in the copyright string by the current year.
const YearPlaceholder = "{year}"

type loadOptions struct {
	currentYear func() int
	logger      *slog.Logger
	envFile     bool
	envVars     map[string]string
}

// Option customises Load and Parse.
type Option func(*loadOptions)

// WithCurrentYear replaces the system clock as the source of the copyright year.
func WithCurrentYear(fn func() int) Option {
	return func(o *loadOptions) {
		if fn != nil {
			o.currentYear = fn
		}
	}
}

// WithLogger sets the logger used for warnings emitted while loading.
func WithLogger(l *slog.Logger) Option {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithoutEnvFile disables loading .env files next to the configuration source.
func WithoutEnvFile() Option {
	return func(o *loadOptions) { o.envFile = false }
}

func newLoadOptions(opts []Option) *loadOptions {
	o := &loadOptions{
		currentYear: func() int { return time.Now().Year() },
		logger:      slog.Default(),
		envFile:     true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Load reads and parses the configuration source at path. Relative paths in the
// result are left unresolved; Dir records the directory they are relative to.
func Load(path string, opts ...Option) (*BuildConfig, error) {
	o := newLoadOptions(opts)

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "cannot resolve configuration path").
			Fatal().WithPath(path).Build()
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		msg := "failed to read configuration"
		if errors.Is(err, fs.ErrNotExist) {
			msg = "configuration file not found"
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, msg).Fatal().WithPath(absPath).Build()
	}

	dir := filepath.Dir(absPath)
	if o.envFile {
		o.envVars = readEnvFiles(dir, o.logger)
	}

	cfg, err := parse(data, dir, o)
	if err != nil {
		return nil, err
	}
	cfg.Path = absPath
	o.logger.Debug("Configuration loaded",
		logfields.ConfigPath(absPath),
		logfields.Version(cfg.Version),
		logfields.Theme(cfg.ThemeName))
	return cfg, nil
}

// Parse builds a BuildConfig from source bytes. dir is the directory relative
// paths are interpreted against. ${VAR} references see only the process
// environment; .env files are read by Load.
func Parse(data []byte, dir string, opts ...Option) (*BuildConfig, error) {
	return parse(data, dir, newLoadOptions(opts))
}

func parse(data []byte, dir string, o *loadOptions) (*BuildConfig, error) {
	expanded := expandEnv(string(data), o.envVars)

	var cfg BuildConfig
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, decodeError(err)
	}

	version := NormalizeSchemaVersion(cfg.Version)
	if version == "" {
		return nil, ferrors.ConfigError("unsupported configuration version").
			WithField("version").WithReference(cfg.Version).Build()
	}
	cfg.Version = string(version)
	if version.Deprecated() {
		o.logger.Warn("Configuration uses a deprecated schema version",
			logfields.Version(cfg.Version),
			slog.String("current", string(CurrentSchema)))
	}

	if err := checkRequired(&cfg); err != nil {
		return nil, err
	}
	if err := checkAssetEntries(&cfg); err != nil {
		return nil, err
	}
	if err := checkSchemaFeatures(version, &cfg); err != nil {
		return nil, err
	}

	cfg.Year = o.currentYear()
	cfg.Copyright = strings.ReplaceAll(cfg.Copyright, YearPlaceholder, strconv.Itoa(cfg.Year))

	applyDefaults(&cfg)
	cfg.Dir = dir
	return &cfg, nil
}

// requiredFields lists the fields Load refuses to default, in check order.
var requiredFields = []struct {
	name string
	get  func(*BuildConfig) string
}{
	{"project", func(c *BuildConfig) string { return c.Project }},
	{"author", func(c *BuildConfig) string { return c.Author }},
	{"master_document", func(c *BuildConfig) string { return c.MasterDocument }},
}

func checkRequired(cfg *BuildConfig) error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.get(cfg)) == "" {
			return ferrors.ConfigError("required field is missing").WithField(f.name).Build()
		}
	}
	return nil
}

// checkAssetEntries rejects blank css/js entries, including YAML nulls.
func checkAssetEntries(cfg *BuildConfig) error {
	for i, ref := range cfg.CSSAssets {
		if strings.TrimSpace(ref) == "" {
			return ferrors.ConfigError("empty asset entry").WithField("css_assets").WithContext("index", i).Build()
		}
	}
	for i, js := range cfg.JSAssets {
		if strings.TrimSpace(js.URL) == "" {
			return ferrors.ConfigError("empty asset entry").WithField("js_assets").WithContext("index", i).Build()
		}
	}
	return nil
}

func decodeError(err error) error {
	var entryErr *assetEntryError
	if errors.As(err, &entryErr) {
		b := ferrors.WrapError(err, ferrors.CategoryConfig, "malformed integrity-attributed script entry").
			Fatal().WithField("js_assets").WithContext("missing", entryErr.missing)
		if entryErr.url != "" {
			b = b.WithReference(entryErr.url)
		}
		return b.Build()
	}
	return ferrors.WrapError(err, ferrors.CategoryConfig, "malformed configuration source").Fatal().Build()
}
