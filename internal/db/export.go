package db

import (
	"context"
	"database/sql"
	"fmt"
)

// catalogSchema is the subset of the Postgres schema the catalog loaders
// read. The SQLite export carries only these tables.
var catalogSchema = []string{
	`CREATE TABLE equipment (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		type TEXT NOT NULL,
		tonnage REAL NOT NULL,
		slots INTEGER NOT NULL,
		internal_name TEXT
	)`,
	`CREATE TABLE equipment_lookup (
		equipment_id INTEGER NOT NULL REFERENCES equipment(id) ON DELETE CASCADE,
		lookup_name TEXT NOT NULL PRIMARY KEY
	)`,
	`CREATE INDEX idx_equipment_internal_name ON equipment(internal_name)`,
}

// catalogTables lists what ExportCatalog copies, parents first.
var catalogTables = []struct {
	name   string
	sel    string
	insert string
	cols   int
}{
	{"equipment",
		"SELECT id, name, type, tonnage, slots, internal_name FROM equipment",
		"INSERT INTO equipment (id, name, type, tonnage, slots, internal_name) VALUES (?,?,?,?,?,?)", 6},
	{"equipment_lookup",
		"SELECT equipment_id, lookup_name FROM equipment_lookup",
		"INSERT INTO equipment_lookup (equipment_id, lookup_name) VALUES (?,?)", 2},
}

// CreateSQLite opens a writable SQLite file for an export. The file keeps a
// rollback journal so it stays a single file that ConnectSQLite can open
// read-only.
func CreateSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=DELETE",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}
	return db, nil
}

// CreateCatalogSchema creates the catalog tables in an empty database.
func CreateCatalogSchema(ctx context.Context, dst *sql.DB) error {
	for _, ddl := range catalogSchema {
		if _, err := dst.ExecContext(ctx, ddl); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}

// ExportCatalog copies the catalog tables from Postgres into dst, which must
// already carry the schema. It returns the row count per table.
func (s *Store) ExportCatalog(ctx context.Context, dst *sql.DB) (map[string]int, error) {
	counts := make(map[string]int, len(catalogTables))
	for _, t := range catalogTables {
		rows, err := s.Pool.Query(ctx, t.sel)
		if err != nil {
			return counts, fmt.Errorf("select %s: %w", t.name, err)
		}
		n, err := copyRows(ctx, rows, dst, t.name, t.insert, t.cols)
		rows.Close()
		if err != nil {
			return counts, err
		}
		counts[t.name] = n
	}
	return counts, nil
}

// sourceRows is the iteration surface shared by pgx.Rows and *sql.Rows.
type sourceRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// copyRows inserts every row of src into dst inside one transaction.
func copyRows(ctx context.Context, src sourceRows, dst *sql.DB, name, insert string, cols int) (int, error) {
	tx, err := dst.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin %s: %w", name, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return 0, fmt.Errorf("prepare %s: %w", name, err)
	}
	defer stmt.Close()

	count := 0
	vals := make([]any, cols)
	ptrs := make([]any, cols)
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	for src.Next() {
		if err := src.Scan(ptrs...); err != nil {
			return count, fmt.Errorf("scan %s: %w", name, err)
		}
		if _, err := stmt.ExecContext(ctx, vals...); err != nil {
			return count, fmt.Errorf("insert %s: %w", name, err)
		}
		count++
	}
	if err := src.Err(); err != nil {
		return count, fmt.Errorf("read %s: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return count, fmt.Errorf("commit %s: %w", name, err)
	}
	return count, nil
}
