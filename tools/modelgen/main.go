// Command modelgen regenerates the save-table models under
// internal/adapter/repo/gorm/model from a migrated database.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gen"
	"gorm.io/gorm"
)

const defaultTables = "game_saves,game_save_history"

func main() {
	var dsn, out, tables string
	flag.StringVar(&dsn, "dsn", os.Getenv("IGUSA_DB_DSN"), "postgres dsn of a migrated database")
	flag.StringVar(&out, "out", "internal/adapter/repo/gorm/model", "output dir for generated models")
	flag.StringVar(&tables, "tables", defaultTables, "comma separated tables to generate")
	flag.Parse()

	if dsn == "" {
		log.Fatal("missing --dsn or IGUSA_DB_DSN")
	}
	names := splitTables(tables)
	if len(names) == 0 {
		log.Fatal("no tables to generate")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:      out,
		ModelPkgPath: "model",
		Mode:         gen.WithoutContext,
	})
	g.UseDB(db)
	for _, name := range names {
		g.GenerateModel(name)
	}
	g.Execute()

	fmt.Printf("generated %d gorm models at %s\n", len(names), out)
}

func splitTables(raw string) []string {
	var out []string
	for _, name := range strings.Split(raw, ",") {
		if name = strings.TrimSpace(name); name != "" {
			out = append(out, name)
		}
	}
	return out
}
