package commands

import (
	"fmt"
	"strings"
)

// ValidateCmd implements the 'validate' command.
type ValidateCmd struct{}

func (v *ValidateCmd) Run(g *Global, root *CLI) error {
	res, err := root.newRunner(nil).run()
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.out(), "ok: %s (theme %s, %d documents, %d extensions)\n",
		res.Config.Project,
		strings.Join(res.Theme.Names(), " -> "),
		res.Documents.Len(),
		len(res.Extensions))

	master, _ := res.Documents.Get(res.Config.MasterDocument)
	_, _ = fmt.Fprintf(g.out(), "master document: %s %q\n", master.Name, master.Title)
	return nil
}
