package cli

import (
	"context"
	"fmt"
	"strings"
)

// getStatus renders the prompt status: current screen, then user name and
// connectivity mode in parentheses when known.
func (a *App) getStatus() string {
	var parts []string
	if snap := a.session.Snapshot(); snap.LoggedIn && snap.User.UserName != "" {
		parts = append(parts, snap.User.UserName)
	}
	if m := a.Mode(); m != "" {
		parts = append(parts, string(m))
	}

	s := a.nav.Current().String()
	if len(parts) > 0 {
		s += fmt.Sprintf(" (%s)", strings.Join(parts, " "))
	}
	return s
}

// Root starts the connectivity watcher, renders the current screen (Home
// restores the persisted session) and runs the REPL until the user exits.
func (a *App) Root(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	printlnFn("Welcome to Storefront CLI (type 'help' for commands)")

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	_ = a.renderCurrent(ctx)

	runREPL(ctx, a, a.getStatus, a.reader)
}
