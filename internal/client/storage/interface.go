package storage

import (
	"context"
	"errors"
	"fmt"
)

// Keys used by the client.
const (
	// UserRecordKey holds the JSON-encoded user record written at signup.
	UserRecordKey = "signUpForm"
	// LegacyAuthKey is never written; logout still removes it so stale
	// data from older installs does not linger.
	LegacyAuthKey = "auth"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

var ErrUnknownBackend = errors.New("unknown storage backend")

// Store is an asynchronous-style key/value store. All methods may fail
// with an I/O error; a missing key is not an error.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, keys ...string) error
	Close() error
}

// Options selects and configures a backend.
type Options struct {
	Backend string

	// SQLite
	Path string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	KeyPrefix     string
}

// Open returns the Store selected by opts.Backend.
func Open(ctx context.Context, opts Options) (Store, error) {
	switch opts.Backend {
	case BackendSQLite, "":
		s, err := OpenSQLite(ctx, opts.Path)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendRedis:
		s, err := OpenRedis(ctx, opts.RedisAddr, opts.RedisPassword, opts.RedisDB, opts.KeyPrefix)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
