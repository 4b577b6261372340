package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/storefront/internal/client/catalog"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/form"
	"github.com/dmitrijs2005/storefront/internal/client/navigation"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/filex"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// pingTimeout bounds a single connectivity probe.
const pingTimeout = 3 * time.Second

type App struct {
	config         *config.Config
	log            logging.Logger
	store          storage.Store
	session        *session.Store
	signup         *form.Signup
	authService    services.AuthService
	catalogService *services.CatalogService
	nav            *navigation.Shell
	reader         *bufio.Reader
	out            io.Writer

	mu   sync.Mutex
	mode Mode
}

// NewApp opens the configured storage backend and builds an App reading
// from stdin and writing to stdout.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	opts := c.StorageOptions()
	if opts.Backend == storage.BackendSQLite || opts.Backend == "" {
		if _, err := filex.EnsureDir(c.DataDir); err != nil {
			log.Error(ctx, "error preparing data directory", "error", err)
			return nil, err
		}
		opts.Path = c.DatabasePath()
	}

	store, err := storage.Open(ctx, opts)
	if err != nil {
		log.Error(ctx, "error initializing storage", "backend", opts.Backend, "error", err)
		return nil, fmt.Errorf("open storage: %w", err)
	}

	client := catalog.NewClient(c.CatalogBaseURL, c.RequestTimeout, log)
	return newApp(c, store, client, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, store storage.Store, cc services.CatalogClient, log logging.Logger, in io.Reader, out io.Writer) *App {
	sess := session.NewStore()
	return &App{
		config:         c,
		log:            log,
		store:          store,
		session:        sess,
		signup:         form.NewSignup(form.NewStore()),
		authService:    services.NewAuthService(store, sess, log),
		catalogService: services.NewCatalogService(cc, log),
		nav:            navigation.New(sess),
		reader:         bufio.NewReader(in),
		out:            out,
	}
}

// Mode returns the last observed connectivity mode, "" before the first probe.
func (a *App) Mode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.mode != mode {
		a.mode = mode
		a.log.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "error closing storage", "error", err)
		}
	}()
	a.Root(ctx)
}

// Close detaches the navigation shell and closes the store.
func (a *App) Close() error {
	a.nav.Close()
	return a.store.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().LoggedIn
}

// StartOnlineStatusWatcher probes the catalog right away and then every
// interval until ctx is done. A non-positive interval disables it.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	probe := func() {
		pctx, cancel := context.WithTimeout(ctx, pingTimeout)
		err := a.catalogService.Ping(pctx)
		cancel()

		if err != nil {
			a.log.Debug(ctx, "catalog unreachable", "error", err)
			a.setMode(ModeOffline)
			return
		}
		a.setMode(ModeOnline)
	}

	probe()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			probe()
		case <-ctx.Done():
			return
		}
	}
}
