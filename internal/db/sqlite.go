package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/JustinWhittecar/mekrules/internal/equipment"
)

// ConnectSQLite opens the exported mech database read-only.
func ConnectSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	for _, pragma := range []string{
		"PRAGMA query_only=ON",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("pragma %s: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

const lookupTableQuery = `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'equipment_lookup'`

// LoadCatalogSQLite reads the equipment and equipment_lookup tables.
func LoadCatalogSQLite(ctx context.Context, db *sql.DB) (*equipment.Catalog, error) {
	b := newCatalogBuilder()

	rows, err := db.QueryContext(ctx, equipmentQuery)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var r equipmentRow
		if err := rows.Scan(&r.id, &r.name, &r.internalName, &r.typ, &r.slots); err != nil {
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		b.add(r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read equipment: %w", err)
	}

	// Older exports carry no lookup table.
	var tables int
	if err := db.QueryRowContext(ctx, lookupTableQuery).Scan(&tables); err != nil {
		return nil, fmt.Errorf("check equipment_lookup: %w", err)
	}
	if tables == 0 {
		return b.catalog, nil
	}

	lookups, err := db.QueryContext(ctx, lookupQuery)
	if err != nil {
		return nil, fmt.Errorf("query equipment_lookup: %w", err)
	}
	defer lookups.Close()
	for lookups.Next() {
		var (
			id   int
			name string
		)
		if err := lookups.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan equipment_lookup: %w", err)
		}
		b.alias(id, name)
	}
	if err := lookups.Err(); err != nil {
		return nil, fmt.Errorf("read equipment_lookup: %w", err)
	}
	return b.catalog, nil
}
