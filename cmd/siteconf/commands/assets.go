package commands

import ferrors "git.home.luguber.info/inful/siteconf/internal/foundation/errors"

// AssetsCmd implements the 'assets' command.
type AssetsCmd struct{}

func (a *AssetsCmd) Run(g *Global, root *CLI) error {
	res, err := root.newRunner(nil).run()
	if err != nil {
		return err
	}
	if err := res.Assets.RenderHead(g.out()); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRuntime, "failed to render head tags").Build()
	}
	return nil
}
