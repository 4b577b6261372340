package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
)

// Config holds runtime settings for the storefront CLI.
//
// Fields:
//   - CatalogBaseURL: base URL of the products API.
//   - StorageBackend: "sqlite", "memory" or "redis".
//   - DataDir, DatabaseFile: where the SQLite file lives.
//   - RedisAddr, RedisPassword, RedisDB: redis backend connection.
//   - RequestTimeout: per-request timeout of catalog calls.
//   - OnlineCheckInterval: how often the client probes catalog reachability.
//   - LogLevel, LogFormat: see logging.New.
type Config struct {
	CatalogBaseURL      string
	StorageBackend      string
	DataDir             string
	DatabaseFile        string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	LogLevel            string
	LogFormat           string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.CatalogBaseURL = catalog.DefaultBaseURL
	c.StorageBackend = storage.BackendSQLite
	c.DataDir = DefaultDataDir()
	c.DatabaseFile = "storefront.db"
	c.RedisAddr = "127.0.0.1:6379"
	c.RedisPassword = ""
	c.RedisDB = 0
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.LogLevel = "info"
	c.LogFormat = "text"
}

// DefaultDataDir is <user config dir>/storefront, or ./.storefront when the
// user config dir is unknown.
func DefaultDataDir() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ".storefront"
	}
	return filepath.Join(dir, "storefront")
}

// DatabasePath joins DataDir and DatabaseFile. An absolute DatabaseFile
// is returned as is.
func (c *Config) DatabasePath() string {
	if filepath.IsAbs(c.DatabaseFile) {
		return c.DatabaseFile
	}
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// StorageOptions converts the storage part of c for storage.Open.
// Path is left for the caller, which has to create DataDir first.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:       c.StorageBackend,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
	}
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, os.Args[1:]); err != nil {
		return nil, err
	}
	return cfg, nil
}
