package main

import (
	"github.com/revelaction/corefclean/balance"
	"github.com/revelaction/corefclean/render"
	"github.com/revelaction/corefclean/shell"
)

func shellCommand(opts ShellOptions, ui UI) error {
	hasColor, err := colorEnabled(opts.NoColor, ui.Out)
	if err != nil {
		return err
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = hasColor

	h := shell.NewHandler(balance.New(nil), r, ui.Out)
	return h.Run()
}
