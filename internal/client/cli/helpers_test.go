package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// ---- fake catalog ----

type fakeCatalog struct {
	cats    []models.Category
	catsErr error

	products    map[string][]models.Product
	productsErr error

	pingErr error

	lastCategory string
}

func (f *fakeCatalog) Categories(context.Context) ([]models.Category, error) {
	if f.catsErr != nil {
		return nil, f.catsErr
	}
	return f.cats, nil
}

func (f *fakeCatalog) ProductsByCategory(_ context.Context, category string) ([]models.Product, error) {
	f.lastCategory = category
	if f.productsErr != nil {
		return []models.Product{}, f.productsErr
	}
	if p, ok := f.products[category]; ok {
		return p, nil
	}
	return []models.Product{}, nil
}

func (f *fakeCatalog) Ping(context.Context) error { return f.pingErr }

func sampleCatalog() *fakeCatalog {
	return &fakeCatalog{
		cats: []models.Category{
			{Slug: "beauty", Name: "Beauty"},
			{Slug: "home-decoration", Name: "Home Decoration"},
		},
		products: map[string][]models.Product{
			"beauty": {{ID: 1, Title: "Mascara", Description: "Long lashes", Price: 9.99, Rating: 4.5, Stock: 5}},
		},
	}
}

// ---- app ----

func newTestApp(t *testing.T, st storage.Store, cc *fakeCatalog, input string) *App {
	t.Helper()
	if st == nil {
		st = storage.NewMemoryStore()
	}
	if cc == nil {
		cc = sampleCatalog()
	}
	a := newApp(&config.Config{}, st, cc, logging.Discard(), strings.NewReader(input), io.Discard)
	t.Cleanup(func() { _ = a.Close() })
	return a
}

// ---- output and input stubs ----

// captureOutput replaces printlnFn and returns a func joining all output.
func captureOutput(t *testing.T) func() string {
	t.Helper()
	orig := printlnFn
	var b strings.Builder
	printlnFn = func(args ...any) (int, error) { return fmt.Fprintln(&b, args...) }
	t.Cleanup(func() { printlnFn = orig })
	return b.String
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

// stubInputs feeds texts to getSimpleText and passwords to getPassword,
// in order. Running out returns io.EOF.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", io.EOF
		}
		v := texts[0]
		texts = texts[1:]
		return v, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, io.EOF
		}
		v := passwords[0]
		passwords = passwords[1:]
		return []byte(v), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}
