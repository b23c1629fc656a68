package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/JustinWhittecar/mekrules/internal/equipment"
)

const (
	equipmentQuery = `SELECT id, name, internal_name, type, slots FROM equipment ORDER BY id`
	lookupQuery    = `SELECT equipment_id, lookup_name FROM equipment_lookup`
)

// Store reads the equipment catalog from the Postgres master database.
type Store struct {
	Pool *pgxpool.Pool
}

func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{Pool: pool}
}

// Connect opens a pool for dsn and verifies it.
func Connect(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return NewStore(pool), nil
}

func (s *Store) Close() {
	s.Pool.Close()
}

// LoadCatalog reads every equipment row and its lookup names.
func (s *Store) LoadCatalog(ctx context.Context) (*equipment.Catalog, error) {
	b := newCatalogBuilder()

	rows, err := s.Pool.Query(ctx, equipmentQuery)
	if err != nil {
		return nil, fmt.Errorf("query equipment: %w", err)
	}
	for rows.Next() {
		var r equipmentRow
		if err := rows.Scan(&r.id, &r.name, &r.internalName, &r.typ, &r.slots); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan equipment: %w", err)
		}
		b.add(r)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read equipment: %w", err)
	}

	lookups, err := s.Pool.Query(ctx, lookupQuery)
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

// ─── Row assembly ───────────────────────────────────────────────────────────

type equipmentRow struct {
	id           int
	name         string
	internalName *string
	typ          string
	slots        int
}

type catalogBuilder struct {
	catalog *equipment.Catalog
	byID    map[int]*equipment.Type
	builtin *equipment.Catalog
}

func newCatalogBuilder() *catalogBuilder {
	return &catalogBuilder{
		catalog: equipment.NewCatalog(),
		byID:    make(map[int]*equipment.Type),
		builtin: equipment.Builtin(),
	}
}

// add turns one row into a Type. The schema carries no ammunition counts, so
// shots come from the built-in entry of the same name when there is one.
func (b *catalogBuilder) add(r equipmentRow) {
	t := &equipment.Type{
		Name:      r.name,
		Category:  equipment.ParseCategory(r.typ),
		CritSlots: r.slots,
	}
	if r.internalName != nil {
		t.InternalName = *r.internalName
	}
	equipment.Classify(t)
	if t.Category == equipment.CategoryAmmo {
		if known, ok := b.builtin.Lookup(t.Name); ok {
			t.Shots = known.Shots
		}
	}
	b.catalog.Add(t)
	b.byID[r.id] = t
}

func (b *catalogBuilder) alias(id int, name string) {
	if t, ok := b.byID[id]; ok {
		b.catalog.Alias(name, t)
	}
}
