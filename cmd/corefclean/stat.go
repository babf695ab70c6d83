package main

import (
	"fmt"

	"github.com/revelaction/corefclean/render"
	"github.com/revelaction/corefclean/stat"
	"github.com/revelaction/corefclean/storage"
)

func statCommand(opts StatOptions, db string, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewDocReader(&p, db)
	if err != nil {
		return err
	}

	run, err := selectRun(repo, opts.Run)
	if err != nil {
		return err
	}

	docs, err := repo.Read(run.Id)
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, doc := range docs {
		hdl.Aggregate(doc)
	}

	r := render.NewRenderer(ui.Out)
	r.Runs([]storage.Run{run})
	fmt.Fprintln(ui.Out)
	r.Stats(hdl.Get())

	return nil
}
