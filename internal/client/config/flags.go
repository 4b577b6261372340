package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
)

var knownFlags = []string{"-u", "-s", "-d", "-r", "-t", "-i", "-l", "-f"}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-u string   catalog base URL
//	-s string   storage backend: sqlite, memory or redis
//	-d string   data directory for the SQLite file
//	-r string   redis address
//	-t int      catalog request timeout in seconds
//	-i int      online check interval in seconds
//	-l string   log level
//	-f string   log format: text or json
//
// args are filtered with flagx.FilterArgs first so flags owned by other
// loaders (-c, -e) do not fail the parse.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, knownFlags)

	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.CatalogBaseURL, "u", cfg.CatalogBaseURL, "catalog base URL")
	fs.StringVar(&cfg.StorageBackend, "s", cfg.StorageBackend, "storage backend (sqlite, memory, redis)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory")
	fs.StringVar(&cfg.RedisAddr, "r", cfg.RedisAddr, "redis address")
	requestTimeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "catalog request timeout (in seconds)")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFormat, "f", cfg.LogFormat, "log format (text, json)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	// only touch durations that were given, so sub-second values from
	// JSON or env survive
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			cfg.RequestTimeout = time.Duration(*requestTimeout) * time.Second
		case "i":
			cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
		}
	})
	return nil
}
