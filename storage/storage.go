package storage

import (
	"time"

	"github.com/revelaction/corefclean/clean"
)

// Run is one cleaning invocation: an input file cleaned against a gold file.
type Run struct {
	Id      string    `json:"id"`
	Input   string    `json:"input"`
	Gold    string    `json:"gold"`
	Created time.Time `json:"created"`
	NumDocs int       `json:"num_docs"`
}

// DocWriter defines write operations for cleaned documents
type DocWriter interface {
	// Write persists a cleaned document. Documents are written in input
	// order.
	Write(res clean.Result) error

	// Close flushes and releases the underlying resources.
	Close() error
}

// DocReader defines read operations for cleaned documents
type DocReader interface {
	// Runs returns the metadata of all runs, oldest first.
	Runs() ([]Run, error)

	// Read returns the cleaned documents of a run, in input order.
	Read(runId string) ([]clean.Result, error)
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
