package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/dmitrijs2005/storefront/internal/flagx"
	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// defaultEnvFile is loaded when present and no -e/-env flag is given.
const defaultEnvFile = ".env"

// EnvConfig is the environment view of Config. Unset variables keep the
// value the field had before decoding; a value that does not parse is an
// error.
type EnvConfig struct {
	CatalogBaseURL      string        `env:"STOREFRONT_CATALOG_URL"`
	StorageBackend      string        `env:"STOREFRONT_STORAGE"`
	DataDir             string        `env:"STOREFRONT_DATA_DIR"`
	DatabaseFile        string        `env:"STOREFRONT_DB_FILE"`
	RedisAddr           string        `env:"STOREFRONT_REDIS_ADDR"`
	RedisPassword       string        `env:"STOREFRONT_REDIS_PASSWORD"`
	RedisDB             int           `env:"STOREFRONT_REDIS_DB"`
	RequestTimeout      time.Duration `env:"STOREFRONT_REQUEST_TIMEOUT"`
	OnlineCheckInterval time.Duration `env:"STOREFRONT_ONLINE_CHECK_INTERVAL"`
	LogLevel            string        `env:"STOREFRONT_LOG_LEVEL"`
	LogFormat           string        `env:"STOREFRONT_LOG_FORMAT"`
}

// loadEnvFile reads a dotenv file into the process environment. Variables
// already set are not overridden. A missing default file is not an error,
// a missing explicit one is.
func loadEnvFile() error {
	path := flagx.EnvFileFlag()
	explicit := path != ""
	if !explicit {
		path = defaultEnvFile
	}

	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", path, err)
}

// parseEnv overlays Config with STOREFRONT_* environment variables.
func parseEnv(cfg *Config) error {
	if err := loadEnvFile(); err != nil {
		return err
	}

	ec := EnvConfig{
		CatalogBaseURL:      cfg.CatalogBaseURL,
		StorageBackend:      cfg.StorageBackend,
		DataDir:             cfg.DataDir,
		DatabaseFile:        cfg.DatabaseFile,
		RedisAddr:           cfg.RedisAddr,
		RedisPassword:       cfg.RedisPassword,
		RedisDB:             cfg.RedisDB,
		RequestTimeout:      cfg.RequestTimeout,
		OnlineCheckInterval: cfg.OnlineCheckInterval,
		LogLevel:            cfg.LogLevel,
		LogFormat:           cfg.LogFormat,
	}

	// StrictDecode reports an unset environment as ErrInvalidTarget; ec is
	// always a valid target, so that case only means nothing to overlay.
	if err := envdecode.StrictDecode(&ec); err != nil {
		if errors.Is(err, envdecode.ErrInvalidTarget) || errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
			return nil
		}
		return fmt.Errorf("decode environment: %w", err)
	}

	cfg.CatalogBaseURL = ec.CatalogBaseURL
	cfg.StorageBackend = ec.StorageBackend
	cfg.DataDir = ec.DataDir
	cfg.DatabaseFile = ec.DatabaseFile
	cfg.RedisAddr = ec.RedisAddr
	cfg.RedisPassword = ec.RedisPassword
	cfg.RedisDB = ec.RedisDB
	cfg.RequestTimeout = ec.RequestTimeout
	cfg.OnlineCheckInterval = ec.OnlineCheckInterval
	cfg.LogLevel = ec.LogLevel
	cfg.LogFormat = ec.LogFormat
	return nil
}
