package config

import (
	"flag"
	"os"

	"github.com/jruiz-dev/trendyshop/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   PostgreSQL DSN
//	-b string   store backend: postgres or memory
//	-a string   admin email used by the bootstrap routine
//	-l string   log level (debug, info, warn, error)
//
// os.Args is filtered to just these flags so the JSON-config flags (-c,
// -config) owned by another stage don't break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b", "-a", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "PostgreSQL DSN")
	fs.StringVar(&cfg.StoreBackend, "b", cfg.StoreBackend, "store backend: postgres or memory")
	fs.StringVar(&cfg.AdminEmail, "a", cfg.AdminEmail, "admin email for the bootstrap routine")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
