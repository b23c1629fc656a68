// Command mtfscan walks a mekfiles tree and builds every .mtf it finds,
// reporting files that fail and equipment names the catalog does not know.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rodaine/table"

	"github.com/JustinWhittecar/mekrules/internal/config"
	"github.com/JustinWhittecar/mekrules/internal/db"
	"github.com/JustinWhittecar/mekrules/internal/ingestion"
	"github.com/JustinWhittecar/mekrules/internal/logging"
	"github.com/JustinWhittecar/mekrules/internal/unit"
)

func main() {
	dir := flag.String("dir", ".", "Path to mekfiles directory")
	cfgDir := flag.String("config", ".", "Directory holding "+config.FileName)
	top := flag.Int("top", 20, "How many unknown equipment names and errors to list")
	verbose := flag.Bool("verbose", false, "Print each built unit")
	flag.Parse()

	cfg, err := config.Load(*cfgDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	log := logging.New(os.Stderr, cfg.LogLevel)

	var files []string
	err = filepath.Walk(*dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if !info.IsDir() && strings.HasSuffix(strings.ToLower(info.Name()), ".mtf") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		log.Fatal().Err(err).Str("dir", *dir).Msg("walking directory")
	}
	log.Info().Int("files", len(files)).Msg("found mtf files")

	catalog, err := db.LoadCatalog(context.Background(), cfg.DB.SQLitePath, cfg.DB.PostgresDSN, log)
	if err != nil {
		log.Fatal().Err(err).Msg("loading equipment catalog")
	}

	var built, failed int
	var errors []string
	unknown := map[string]int{}

	for i, f := range files {
		data, err := ingestion.ParseMTF(f)
		var missing []string
		if err == nil {
			var u *unit.Unit
			u, missing, err = ingestion.BuildUnit(data, catalog)
			if err == nil && *verbose {
				fmt.Printf("  %-50s %d unknown\n", u, len(missing))
			}
		}
		if err != nil {
			failed++
			errors = append(errors, fmt.Sprintf("  %s: %v", filepath.Base(f), err))
		} else {
			built++
			for _, name := range missing {
				unknown[name]++
			}
		}

		if (i+1)%500 == 0 {
			log.Info().Int("done", i+1).Int("total", len(files)).Msg("progress")
		}
	}

	fmt.Printf("\nResults:\n")
	if len(files) > 0 {
		fmt.Printf("  Built:    %d / %d (%.1f%%)\n", built, len(files), float64(built)/float64(len(files))*100)
	}
	fmt.Printf("  Failed:   %d\n", failed)
	fmt.Printf("  Unknown:  %d distinct equipment names\n", len(unknown))

	if len(unknown) > 0 {
		names := make([]string, 0, len(unknown))
		for name := range unknown {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			if unknown[names[i]] != unknown[names[j]] {
				return unknown[names[i]] > unknown[names[j]]
			}
			return names[i] < names[j]
		})
		fmt.Println()
		t := table.New("Equipment", "Slots Seen")
		for _, name := range names[:min(len(names), *top)] {
			t.AddRow(name, unknown[name])
		}
		t.Print()
	}

	if len(errors) > 0 {
		fmt.Printf("\nFirst %d errors:\n", min(len(errors), *top))
		for _, e := range errors[:min(len(errors), *top)] {
			fmt.Println(e)
		}
	}
}
