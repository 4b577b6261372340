package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/form"
	"github.com/dmitrijs2005/storefront/internal/client/navigation"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

var fieldLabels = map[form.Field]string{
	form.UserName:        "User name",
	form.Email:           "Email",
	form.Password:        "Password",
	form.ConfirmPassword: "Confirm password",
	form.MobileNumber:    "Mobile number",
}

// readField prompts for one signup field. Password fields are read without echo.
func (a *App) readField(f form.Field) (string, error) {
	label := fieldLabels[f]
	if f == form.Password || f == form.ConfirmPassword {
		pw, err := getPassword(a.out, label)
		if err != nil {
			return "", err
		}
		defer common.WipeByteArray(pw)
		return string(pw), nil
	}
	return getSimpleText(a.reader, label, a.out)
}

func printFieldErrors(errs form.FieldErrors, fields ...form.Field) {
	for _, f := range fields {
		if msg := errs.Get(f); msg != "" {
			printlnFn("  " + msg)
		}
	}
}

// Signup opens the signup screen: every field is prompted in turn and
// validated as it is entered, then the whole form is submitted. On success
// the login screen follows.
func (a *App) Signup(ctx context.Context) error {
	if err := a.nav.Navigate(navigation.To(navigation.SignUp)); err != nil {
		printlnFn("You are already logged in.")
		return err
	}

	a.signup.Mount()
	for _, f := range form.Fields {
		value, err := a.readField(f)
		if err != nil {
			return err
		}
		msg, err := a.signup.Change(f, value)
		if err != nil {
			return err
		}
		if msg != "" {
			printlnFn("  " + msg)
		}
	}

	errs, err := a.authService.Signup(ctx, a.signup.Draft(), a.signup.Errors())
	a.signup.SetErrors(errs)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			printlnFn("Please fix the following and try again:")
			printFieldErrors(errs, form.Fields...)
			return err
		}
		printlnFn("Could not save your details, please try again.")
		return err
	}

	printlnFn("Account created. Please log in.")
	return a.Login(ctx)
}

// Login opens the login screen and authenticates against the stored
// record. On success the shell is on Home and it is rendered.
func (a *App) Login(ctx context.Context) error {
	if err := a.nav.Navigate(navigation.To(navigation.Login)); err != nil {
		printlnFn("You are already logged in.")
		return err
	}

	email, err := getSimpleText(a.reader, fieldLabels[form.Email], a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, fieldLabels[form.Password])
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	errs, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		printFieldErrors(errs, form.Email, form.Password)
		return err
	}

	// the shell has already left Login; this is a no-op unless it was
	// detached from the session
	if err := a.nav.Navigate(navigation.To(navigation.Home)); err != nil {
		return err
	}
	return a.renderHome(ctx)
}

// Logout clears the stored record and the session and returns to the
// signup screen. Storage failures are logged by the service only.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		printlnFn("You are not logged in.")
		return nil
	}

	_ = a.authService.Logout(ctx)

	printlnFn("Logged out.")
	if err := a.nav.Navigate(navigation.To(navigation.SignUp)); err != nil {
		return err
	}
	return a.renderCurrent(ctx)
}

func (a *App) WhoAmI(context.Context) error {
	snap := a.session.Snapshot()
	if !snap.LoggedIn {
		printlnFn("Not logged in.")
		return nil
	}
	u := snap.User
	printlnFn(fmt.Sprintf("%s <%s>, mobile %s", u.UserName, u.Email, u.MobileNumber))
	return nil
}
