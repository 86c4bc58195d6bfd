package commands

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/siteconf/internal/config"
	ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"
)

// LookupCmd implements the 'lookup' command.
type LookupCmd struct {
	Field string `arg:"" help:"Source key of the field, e.g. theme_name"`
}

func (l *LookupCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.newRunner(nil).load()
	if err != nil {
		return err
	}

	value, ok := cfg.Lookup(l.Field)
	if !ok {
		return ferrors.ValidationError("unknown field (one of: "+strings.Join(config.FieldNames, ", ")+")").
			WithField(l.Field).Build()
	}

	if s, isString := value.(string); isString {
		_, _ = fmt.Fprintln(g.out(), s)
		return nil
	}
	data, err := yaml.Marshal(value)
	if err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode field").WithField(l.Field).Build()
	}
	_, _ = g.out().Write(data)
	return nil
}
