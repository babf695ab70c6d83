package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"

	"zombiezen.com/go/sqlite/sqlitex"
)

// RunsSchema creates the runs, docs and sentences tables. It is idempotent.
const RunsSchema = "runs.sql"

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchemas runs the embedded script schemaName in one transaction, so a
// failing statement leaves the database as it was.
func CreateSchemas(pool *sqlitex.Pool, schemaName string) (err error) {
	script, err := sqlFiles.ReadFile(path.Join("sql", schemaName))
	if err != nil {
		return fmt.Errorf("unknown schema %s: %w", schemaName, err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("schema %s: %w", schemaName, err)
	}

	return nil
}
