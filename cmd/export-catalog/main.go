// Command export-catalog copies the equipment catalog from Postgres into a
// standalone SQLite file that mekcheck and mtfscan can read via db.sqlitePath.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/JustinWhittecar/mekrules/internal/config"
	"github.com/JustinWhittecar/mekrules/internal/db"
	"github.com/JustinWhittecar/mekrules/internal/logging"
)

func main() {
	cfgDir := flag.String("config", ".", "Directory holding "+config.FileName)
	dsn := flag.String("dsn", "", "Postgres DSN (default: db.postgresDSN from config, then DATABASE_URL)")
	out := flag.String("out", "catalog.db", "SQLite file to write; replaced if it exists")
	flag.Parse()

	cfg, err := config.Load(*cfgDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	if *dsn == "" {
		*dsn = cfg.DB.PostgresDSN
	}
	if *dsn == "" {
		*dsn = os.Getenv("DATABASE_URL")
	}
	if *dsn == "" {
		log.Fatal().Msg("no Postgres DSN: set -dsn, db.postgresDSN or DATABASE_URL")
	}

	ctx := context.Background()
	store, err := db.Connect(ctx, *dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("connecting to postgres")
	}
	defer store.Close()

	if err := os.Remove(*out); err != nil && !os.IsNotExist(err) {
		log.Fatal().Err(err).Str("path", *out).Msg("removing old export")
	}
	dst, err := db.CreateSQLite(*out)
	if err != nil {
		log.Fatal().Err(err).Str("path", *out).Msg("creating export")
	}
	defer dst.Close()

	if err := db.CreateCatalogSchema(ctx, dst); err != nil {
		log.Fatal().Err(err).Msg("creating schema")
	}
	counts, err := store.ExportCatalog(ctx, dst)
	if err != nil {
		log.Fatal().Err(err).Msg("exporting catalog")
	}
	for _, table := range []string{"equipment", "equipment_lookup"} {
		fmt.Printf("  %s: %d rows\n", table, counts[table])
	}
	log.Info().Str("path", *out).Msg("export complete")
}
