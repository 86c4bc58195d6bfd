package commands

import (
	"fmt"
	"text/tabwriter"
)

// DocsCmd implements the 'docs' command.
type DocsCmd struct{}

func (d *DocsCmd) Run(g *Global, root *CLI) error {
	res, err := root.newRunner(nil).run()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(g.out(), 0, 4, 2, ' ', 0)
	for _, name := range res.Documents.Names() {
		doc, _ := res.Documents.Get(name)
		marker := ""
		if name == res.Config.MasterDocument {
			marker = "*"
		}
		_, _ = fmt.Fprintf(tw, "%s%s\t%s\t%s\n", name, marker, doc.Suffix, doc.Title)
	}
	return tw.Flush()
}
