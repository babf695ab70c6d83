package main

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/corefclean/storage/sqlite/zombiezen"
)

// Pool holds the SQLite pool of the output database. stat and export open it
// for reading, clean for a new run; Close is safe when nothing was opened.
type Pool struct {
	path string
	p    *sqlitex.Pool
}

// Open opens the database at path once. Later calls must name the same path.
func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		if path != p.path {
			return nil, fmt.Errorf("database %s already open, cannot open %s", p.path, path)
		}
		return p.p, nil
	}

	pool, err := zombiezen.NewPool(path)
	if err != nil {
		return nil, err
	}
	p.path, p.p = path, pool
	return pool, nil
}

func (p *Pool) Close() error {
	if p.p == nil {
		return nil
	}
	err := p.p.Close()
	p.p = nil
	return err
}
