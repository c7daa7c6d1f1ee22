// Command migrate runs goose commands against the embedded migration set.
//
// Usage:
//
//	migrate [-d dsn] <command> [args]
//
// where command is any goose command (up, down, status, ...). The DSN can
// also come from DATABASE_DSN, including via a .env file.
package main

import (
	"database/sql"
	"flag"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/jruiz-dev/trendyshop/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()

	dsn := flag.String("d", os.Getenv("DATABASE_DSN"), "PostgreSQL DSN")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		log.Fatal("usage: migrate [-d dsn] <command> [args]")
	}
	if *dsn == "" {
		log.Fatal("database DSN is required (-d flag or DATABASE_DSN)")
	}

	db, err := sql.Open("pgx", *dsn)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer db.Close()

	if err := postgres.RunGooseCommand(db, args[0], args[1:]...); err != nil {
		log.Fatalf("migrate %s: %v", args[0], err)
	}
}
