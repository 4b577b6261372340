// Package config loads runtime configuration for the storefront CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables STOREFRONT_*, optionally read from a dotenv
//     file (-e/-env, or ./.env when present).
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-u string   catalog base URL
//	-s string   storage backend: sqlite, memory, redis
//	-d string   data directory
//	-r string   redis address
//	-t int      catalog request timeout (seconds)
//	-i int      online status check interval (seconds)
//	-l string   log level
//	-f string   log format
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "3s"
// or integer nanoseconds:
//
//	{
//	  "catalog_base_url": "https://dummyjson.com",
//	  "storage_backend": "sqlite",
//	  "data_dir": "/var/lib/storefront",
//	  "request_timeout": "10s",
//	  "online_check_interval": "3s",
//	  "log_level": "debug"
//	}
//
// # Environment
//
//	STOREFRONT_CATALOG_URL, STOREFRONT_STORAGE, STOREFRONT_DATA_DIR,
//	STOREFRONT_DB_FILE, STOREFRONT_REDIS_ADDR, STOREFRONT_REDIS_PASSWORD,
//	STOREFRONT_REDIS_DB, STOREFRONT_REQUEST_TIMEOUT,
//	STOREFRONT_ONLINE_CHECK_INTERVAL, STOREFRONT_LOG_LEVEL,
//	STOREFRONT_LOG_FORMAT
package config
