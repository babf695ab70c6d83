package main

import (
	"fmt"

	"github.com/revelaction/corefclean/storage"
	"github.com/revelaction/corefclean/storage/filesystem"
	"github.com/revelaction/corefclean/storage/sqlite/zombiezen"
)

// NewDocWriter returns the store for the output path: a new run of a SQLite
// database for database extensions, a text file otherwise. The run id is
// empty for text files.
func NewDocWriter(p *Pool, path, input, gold string) (storage.DocWriter, string, error) {
	if !zombiezen.IsDBPath(path) {
		w, err := filesystem.NewTextStore(path)
		return w, "", err
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, "", err
	}

	if err := zombiezen.CreateSchemas(pool, zombiezen.RunsSchema); err != nil {
		return nil, "", fmt.Errorf("failed to create runs tables: %w", err)
	}

	store := zombiezen.NewDocStore(pool)
	runId, err := store.Begin(input, gold)
	if err != nil {
		return nil, "", err
	}
	return store, runId, nil
}

// NewDocReader opens an existing SQLite output.
func NewDocReader(p *Pool, path string) (storage.DocReader, error) {
	if !zombiezen.IsDBPath(path) {
		return nil, fmt.Errorf("not a SQLite output: %s", path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// selectRun returns the run with id runId, or the last run if runId is
// empty.
func selectRun(repo storage.DocReader, runId string) (storage.Run, error) {
	runs, err := repo.Runs()
	if err != nil {
		return storage.Run{}, err
	}

	if len(runs) == 0 {
		return storage.Run{}, fmt.Errorf("no runs found")
	}

	if runId == "" {
		return runs[len(runs)-1], nil
	}

	for _, run := range runs {
		if run.Id == runId {
			return run, nil
		}
	}

	return storage.Run{}, fmt.Errorf("run not found: %s", runId)
}
