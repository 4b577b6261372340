// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, local storage, the session, the auth and catalog
// services and the navigation shell into a REPL. On start the persisted
// session is restored, a background connectivity watcher is started and
// the current screen is rendered.
//
// Screens:
//   - Home: greeting and the category list
//   - Category: the products of one category
//   - SignUp / Login: form prompts, hidden while logged in
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App, StartOnlineStatusWatcher, and runREPL for details.
package cli
