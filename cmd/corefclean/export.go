package main

import (
	"fmt"

	"github.com/revelaction/corefclean/storage/filesystem"
)

func exportCommand(opts ExportOptions, ui UI) error {
	var p Pool
	defer p.Close()

	repo, err := NewDocReader(&p, opts.From)
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

	dst, err := filesystem.NewTextStore(opts.To)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if err := dst.Write(doc); err != nil {
			dst.Close()
			return err
		}
	}

	if err := dst.Close(); err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "Successfully exported %d docs of run %s from %s to %s\n", len(docs), run.Id, opts.From, opts.To)
	return nil
}
