// Package storage is the client's persistence adapter: a tiny key/value
// store that holds the serialized user record.
//
// Three backends implement Store:
//
//   - SQLiteStore: default, a single-file database under the data dir,
//     schema managed by embedded goose migrations;
//   - MemoryStore: process-local map, used for ephemeral runs and tests;
//   - RedisStore: keys kept in Redis under a prefix.
//
// Get reports absence through its bool result, never through an error.
// Remove accepts several keys and treats missing ones as a no-op.
package storage
