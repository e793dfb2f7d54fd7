package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/techmarket/internal/flagx"
)

// parseFlags overlays cfg with -d, -f and -l. Other arguments are ignored
// so the JSON selector flags can coexist.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-f", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "path to the SQLite database")
	fs.StringVar(&cfg.CatalogFile, "f", cfg.CatalogFile, "catalog file (yaml or json)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
