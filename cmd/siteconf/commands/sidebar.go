package commands

import "fmt"

// SidebarCmd implements the 'sidebar' command.
type SidebarCmd struct {
	Page string `arg:"" help:"Page name, e.g. guide/install"`
}

func (s *SidebarCmd) Run(g *Global, root *CLI) error {
	res, err := root.newRunner(nil).run()
	if err != nil {
		return err
	}
	for _, frag := range res.Sidebar(s.Page) {
		_, _ = fmt.Fprintln(g.out(), frag)
	}
	return nil
}
