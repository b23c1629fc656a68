package db

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/JustinWhittecar/mekrules/internal/equipment"
)

// LoadCatalog prefers the SQLite export, then Postgres, then the built-in
// list when neither is configured.
func LoadCatalog(ctx context.Context, sqlitePath, postgresDSN string, log zerolog.Logger) (*equipment.Catalog, error) {
	switch {
	case sqlitePath != "":
		conn, err := ConnectSQLite(sqlitePath)
		if err != nil {
			return nil, err
		}
		defer conn.Close()
		c, err := LoadCatalogSQLite(ctx, conn)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", sqlitePath).Int("types", c.Len()).Msg("catalog loaded from sqlite")
		return c, nil
	case postgresDSN != "":
		store, err := Connect(ctx, postgresDSN)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		c, err := store.LoadCatalog(ctx)
		if err != nil {
			return nil, err
		}
		log.Debug().Int("types", c.Len()).Msg("catalog loaded from postgres")
		return c, nil
	}
	log.Debug().Msg("no catalog database configured, using built-in equipment")
	return equipment.Builtin(), nil
}
