package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/navigation"
)

var (
	errUnknownCategory = errors.New("unknown category")
	errLoginRequired   = errors.New("login required")
)

const msgLoginRequired = "Please sign up or log in to browse categories."

// requireLogin prints the login hint and returns errLoginRequired when the
// session is logged out.
func (a *App) requireLogin() error {
	if a.isLoggedIn() {
		return nil
	}
	printlnFn(msgLoginRequired)
	return errLoginRequired
}

// renderCurrent prints the screen the shell is on.
func (a *App) renderCurrent(ctx context.Context) error {
	r := a.nav.Current()
	switch r.Name {
	case navigation.Home:
		return a.renderHome(ctx)
	case navigation.Category:
		return a.renderCategory(ctx, r.Category)
	case navigation.SignUp:
		printlnFn("Sign up: type 'signup' to create an account, or 'login' if you have one.")
	case navigation.Login:
		printlnFn("Log in: type 'login' to enter your email and password.")
	}
	return nil
}

// renderHome runs the login-status check (a no-op once checked) and shows
// the category list to a logged-in user, or the entry hint otherwise.
func (a *App) renderHome(ctx context.Context) error {
	a.authService.CheckLoginStatus(ctx)

	snap := a.session.Snapshot()
	if !snap.LoggedIn {
		printlnFn("Welcome! Sign up or log in to get started.")
		return nil
	}
	printlnFn(fmt.Sprintf("Welcome, %s!", snap.User.UserName))

	cats, err := a.catalogService.Categories(ctx)
	if err != nil {
		printlnFn("Failed to load categories:", err)
		return err
	}
	printCategories(cats)
	return nil
}

func printCategories(cats []models.Category) {
	if len(cats) == 0 {
		printlnFn("No categories.")
		return
	}
	printlnFn("Categories:")
	for i, c := range cats {
		printlnFn(fmt.Sprintf("  %2d. %s", i+1, c))
	}
}

func (a *App) renderCategory(ctx context.Context, c models.Category) error {
	printlnFn(fmt.Sprintf("== %s ==", c))

	products, err := a.catalogService.Products(ctx, c.Key())
	if err != nil {
		printlnFn("Failed to load products:", err)
		return err
	}
	if len(products) == 0 {
		printlnFn("No products in this category.")
		return nil
	}
	for _, p := range products {
		printlnFn("  " + p.String())
		if p.Description != "" {
			printlnFn("      " + p.Description)
		}
	}
	return nil
}

func (a *App) Home(ctx context.Context) error {
	if err := a.nav.Navigate(navigation.To(navigation.Home)); err != nil {
		return err
	}
	return a.renderHome(ctx)
}

// Categories prints the cached category list.
func (a *App) Categories(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	cats, err := a.catalogService.Categories(ctx)
	if err != nil {
		printlnFn("Failed to load categories:", err)
		return err
	}
	printCategories(cats)
	return nil
}

// Refresh refetches what the current screen shows: the products of an open
// category, the category list otherwise. A failed list refresh falls back
// to the last list fetched.
func (a *App) Refresh(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	if r := a.nav.Current(); r.Name == navigation.Category {
		return a.renderCategory(ctx, r.Category)
	}

	cats, err := a.catalogService.RefreshCategories(ctx)
	if err != nil {
		printlnFn("Failed to load categories:", err)
		if cached, ok := a.catalogService.Cached(); ok {
			printlnFn("Showing the last fetched list.")
			printCategories(cached)
		}
		return err
	}
	printCategories(cats)
	return nil
}

// findCategory resolves a 1-based list number, a slug or a display name.
func findCategory(cats []models.Category, arg string) (models.Category, error) {
	if n, err := strconv.Atoi(arg); err == nil {
		if n < 1 || n > len(cats) {
			return models.Category{}, fmt.Errorf("%w: number %d out of range", errUnknownCategory, n)
		}
		return cats[n-1], nil
	}
	for _, c := range cats {
		if strings.EqualFold(c.Key(), arg) || strings.EqualFold(c.Name, arg) {
			return c, nil
		}
	}
	return models.Category{}, fmt.Errorf("%w: %q", errUnknownCategory, arg)
}

// OpenCategory navigates to a category and lists its products.
func (a *App) OpenCategory(ctx context.Context, arg string) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	cats, err := a.catalogService.Categories(ctx)
	if err != nil {
		printlnFn("Failed to load categories:", err)
		return err
	}

	c, err := findCategory(cats, arg)
	if err != nil {
		printlnFn(fmt.Sprintf("Unknown category %q. Type 'categories' to see the list.", arg))
		return err
	}

	if err := a.nav.Navigate(navigation.ToCategory(c)); err != nil {
		return err
	}
	return a.renderCategory(ctx, c)
}

// Back returns to the previous screen and renders it.
func (a *App) Back(ctx context.Context) error {
	if !a.nav.Back() {
		printlnFn("Nothing to go back to.")
		return nil
	}
	return a.renderCurrent(ctx)
}
