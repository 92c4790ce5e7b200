package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/memoryvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-d string   database file path
//	-m int      upload byte budget
//	-a string   viewer listen address
//	-l string   log level
//
// os.Args is filtered with flagx.FilterArgs so flags owned elsewhere
// (-c/-config) do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-m", "-a", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "database file path")
	fs.Int64Var(&cfg.MaxUploadBytes, "m", cfg.MaxUploadBytes, "maximum stored file size in bytes")
	fs.StringVar(&cfg.ViewerAddr, "a", cfg.ViewerAddr, "viewer listen address")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
