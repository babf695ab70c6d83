package zombiezen

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/corefclean/clean"
	"github.com/revelaction/corefclean/storage"
)

var ErrNoRun = errors.New("no run started")

// DocStore persists cleaning runs in SQLite. Each Write belongs to the run
// started by the last call to Begin.
type DocStore struct {
	pool *sqlitex.Pool

	runId string
}

var _ storage.DocRepository = (*DocStore)(nil)

func NewDocStore(pool *sqlitex.Pool) *DocStore {
	return &DocStore{pool: pool}
}

// Begin records a new run and returns its id.
func (h *DocStore) Begin(input, gold string) (string, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return "", err
	}
	defer h.pool.Put(conn)

	id := uuid.NewString()
	err = sqlitex.Execute(conn, "INSERT INTO runs (id, input, gold, created) VALUES (?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{id, input, gold, time.Now().Unix()},
	})
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	h.runId = id
	return id, nil
}

func (h *DocStore) Write(res clean.Result) (err error) {
	if h.runId == "" {
		return ErrNoRun
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	// Start Transaction
	defer sqlitex.Save(conn)(&err)

	err = sqlitex.Execute(conn, "INSERT INTO docs (run_id, idx, gold_id, hash, text, inserts, replaces, deletes) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
		Args: []any{h.runId, res.Index, res.DocId, Hash(res.Noisy), res.Text, res.Ops.Insert, res.Ops.Replace, res.Ops.Delete},
	})
	if err != nil {
		return fmt.Errorf("failed to insert doc %d: %w", res.Index, err)
	}

	for i, s := range res.Sentences {
		err = sqlitex.Execute(conn, "INSERT INTO sentences (run_id, doc_idx, idx, text, words, repairs, dropped, abandoned) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", &sqlitex.ExecOptions{
			Args: []any{h.runId, res.Index, i, s.Text, s.Words, s.Repairs, s.Dropped, s.Abandoned},
		})
		if err != nil {
			return fmt.Errorf("failed to insert sentence %d of doc %d: %w", i, res.Index, err)
		}
	}

	return nil
}

// Close ends the current run. The pool belongs to the caller and stays open.
func (h *DocStore) Close() error {
	h.runId = ""
	return nil
}

func (h *DocStore) Runs() ([]storage.Run, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var runs []storage.Run
	err = sqlitex.Execute(conn, `SELECT r.id, r.input, r.gold, r.created, COUNT(d.idx)
		FROM runs r LEFT JOIN docs d ON d.run_id = r.id
		GROUP BY r.id ORDER BY r.created, r.rowid`, &sqlitex.ExecOptions{
		ResultFunc: func(stmt *sqlite.Stmt) error {
			runs = append(runs, storage.Run{
				Id:      stmt.ColumnText(0),
				Input:   stmt.ColumnText(1),
				Gold:    stmt.ColumnText(2),
				Created: time.Unix(stmt.ColumnInt64(3), 0),
				NumDocs: stmt.ColumnInt(4),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return runs, nil
}

func (h *DocStore) Read(runId string) ([]clean.Result, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var docs []clean.Result
	err = sqlitex.Execute(conn, "SELECT idx, gold_id, text, inserts, replaces, deletes FROM docs WHERE run_id = ? ORDER BY idx", &sqlitex.ExecOptions{
		Args: []any{runId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			res := clean.Result{
				Index: stmt.ColumnInt(0),
				DocId: stmt.ColumnText(1),
				Text:  stmt.ColumnText(2),
			}
			res.Ops.Insert = stmt.ColumnInt(3)
			res.Ops.Replace = stmt.ColumnInt(4)
			res.Ops.Delete = stmt.ColumnInt(5)
			docs = append(docs, res)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	if len(docs) == 0 {
		found := false
		err = sqlitex.Execute(conn, "SELECT 1 FROM runs WHERE id = ?", &sqlitex.ExecOptions{
			Args: []any{runId},
			ResultFunc: func(stmt *sqlite.Stmt) error {
				found = true
				return nil
			},
		})
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("run not found: %s", runId)
		}
		return docs, nil
	}

	// docs are ordered by idx, which runs from 0 without gaps
	err = sqlitex.Execute(conn, "SELECT doc_idx, text, words, repairs, dropped, abandoned FROM sentences WHERE run_id = ? ORDER BY doc_idx, idx", &sqlitex.ExecOptions{
		Args: []any{runId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			docIdx := stmt.ColumnInt(0)
			if docIdx < 0 || docIdx >= len(docs) {
				return fmt.Errorf("sentence of unknown doc %d", docIdx)
			}

			s := clean.Sentence{
				Text:  stmt.ColumnText(1),
				Words: stmt.ColumnInt(2),
			}
			s.Repairs = stmt.ColumnInt(3)
			s.Dropped = stmt.ColumnInt(4)
			s.Abandoned = stmt.ColumnInt(5)

			doc := &docs[docIdx]
			doc.Sentences = append(doc.Sentences, s)
			doc.Balance.Add(s.Result)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return docs, nil
}

// Hash returns the hex blake3 digest of a noisy document, used to find runs
// that cleaned the same input.
func Hash(noisy string) string {
	sum := blake3.Sum256([]byte(noisy))
	return hex.EncodeToString(sum[:])
}
