package config

import (
	"flag"
	"os"

	"github.com/framez-app/framez/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   path of the local database file (default from Config)
//	-s string   device secret for sealing and token signing
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "path of the local database file")
	fs.StringVar(&cfg.DeviceSecret, "s", cfg.DeviceSecret, "device secret for sealing and token signing")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
