// Package commands implements the siteconf subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/siteconf/internal/config"
	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
	"git.home.luguber.info/inful/siteconf/internal/logfields"
	"git.home.luguber.info/inful/siteconf/internal/metrics"
	"git.home.luguber.info/inful/siteconf/internal/registry"
	"git.home.luguber.info/inful/siteconf/internal/resolve"
)

// Global is shared state passed to every command's Run.
type Global struct {
	Logger *slog.Logger
	Out    io.Writer
}

func (g *Global) out() io.Writer {
	if g == nil || g.Out == nil {
		return os.Stdout
	}
	return g.Out
}

// CLI definition & global flags.
type CLI struct {
	Config     string           `short:"c" help:"Configuration file path" default:"siteconf.yaml" env:"SITECONF_CONFIG"`
	Verbose    bool             `short:"v" help:"Enable verbose logging"`
	Version    kong.VersionFlag `name:"version" help:"Show version and exit"`
	Extensions []string         `name:"extension" help:"Register an additional available extension (repeatable)" env:"SITECONF_EXTENSIONS"`

	Validate ValidateCmd `cmd:"" help:"Load and validate the configuration"`
	Show     ShowCmd     `cmd:"" help:"Print the loaded configuration"`
	Docs     DocsCmd     `cmd:"" help:"List the authored documents with their titles"`
	Assets   AssetsCmd   `cmd:"" help:"Print the head tags for the resolved assets"`
	Sidebar  SidebarCmd  `cmd:"" help:"Print the sidebar fragments for a page"`
	Lookup   LookupCmd   `cmd:"" help:"Print a single configuration field"`
	Init     InitCmd     `cmd:"" help:"Write an example configuration file"`
	Watch    WatchCmd    `cmd:"" help:"Re-validate whenever the configuration changes"`

	runID string
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	c.runID = uuid.NewString()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(logfields.RunID(c.runID))
	slog.SetDefault(logger)
	return nil
}

// Registry returns the default registry extended with --extension names.
func (c *CLI) Registry() *registry.Registry {
	reg := registry.Default()
	reg.RegisterExtension(c.Extensions...)
	return reg
}

// runner performs the load and validate stages of one run.
type runner struct {
	configPath string
	registry   *registry.Registry
	recorder   metrics.Recorder
	logger     *slog.Logger
}

func (c *CLI) newRunner(rec metrics.Recorder) *runner {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	return &runner{
		configPath: c.Config,
		registry:   c.Registry(),
		recorder:   rec,
		logger:     slog.Default(),
	}
}

func (r *runner) load() (*config.BuildConfig, error) {
	start := time.Now()
	cfg, err := config.Load(r.configPath, config.WithLogger(r.logger))
	r.observe(metrics.StageLoad, start, err)
	return cfg, err
}

func (r *runner) resolve(cfg *config.BuildConfig) (*resolve.Resolution, error) {
	start := time.Now()
	res, err := resolve.Resolve(cfg, resolve.WithRegistry(r.registry), resolve.WithLogger(r.logger))
	r.observe(metrics.StageValidate, start, err)
	return res, err
}

// run loads and resolves the configuration.
func (r *runner) run() (*resolve.Resolution, error) {
	cfg, err := r.load()
	if err != nil {
		return nil, err
	}
	res, err := r.resolve(cfg)
	if err != nil {
		return nil, err
	}
	r.recorder.SetLastSuccess(time.Now())
	return res, nil
}

func (r *runner) observe(stage metrics.Stage, start time.Time, err error) {
	elapsed := time.Since(start)
	r.recorder.ObserveStageDuration(stage, elapsed)
	if err != nil {
		r.recorder.IncStageResult(stage, metrics.ResultFatal)
		r.recorder.IncFailure(stage, string(ferrors.GetCategory(err)))
		return
	}
	r.recorder.IncStageResult(stage, metrics.ResultSuccess)
	r.logger.Debug("Stage complete", logfields.Stage(string(stage)), logfields.DurationMS(float64(elapsed.Microseconds())/1000))
}
