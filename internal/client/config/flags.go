package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/healthmate/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   sqlite database file (default from Config)
//	-t string   daily summary time, HH:MM (default from Config)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite database file")
	fs.StringVar(&cfg.SummaryTime, "t", cfg.SummaryTime, "daily summary time (HH:MM)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
