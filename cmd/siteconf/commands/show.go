package commands

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// ShowCmd implements the 'show' command.
type ShowCmd struct {
	Format string `help:"Output format" enum:"yaml,json" default:"yaml"`
}

func (s *ShowCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.newRunner(nil).load()
	if err != nil {
		return err
	}

	switch s.Format {
	case "json":
		enc := json.NewEncoder(g.out())
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode configuration").Build()
		}
	default:
		enc := yaml.NewEncoder(g.out())
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode configuration").Build()
		}
		if err := enc.Close(); err != nil {
			return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode configuration").Build()
		}
	}
	return nil
}
