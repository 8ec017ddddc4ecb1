package main

import (
	"context"
	"flag"
	"log"

	"github.com/UnknownOlympus/demeter/internal/config"
	"github.com/UnknownOlympus/demeter/internal/repository"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
)

func main() {
	migrationsDir := flag.String("dir", "migrations", "directory with goose SQL migrations")
	command := flag.String("command", "up", "goose command: up, down, status")
	flag.Parse()

	cfg := config.MustLoad()

	dbpool, dbErr := repository.NewDatabase(context.Background(), cfg.Postgres.URL())
	if dbErr != nil {
		log.Fatalf("Failed to connect to DB: %v", dbErr)
	}
	defer dbpool.Close()

	dtb := stdlib.OpenDBFromPool(dbpool)
	defer dtb.Close()

	if migrationErr := goose.Run(*command, dtb, *migrationsDir); migrationErr != nil {
		log.Fatalf("goose %s: %v", *command, migrationErr)
	}

	log.Printf("✅ Migrations command %q applied successfully", *command)
}
