// Package services contains the application services of the storefront
// client. This file holds the authentication service: the startup
// login-status check, login, signup and logout, all against the locally
// persisted user record.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/form"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/session"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// User-facing login messages, shown under the password field.
const (
	MsgNoUserFound        = "No user found. Please sign up first."
	MsgIncorrectLogin     = "Incorrect email or password."
	MsgLoginGenericFailed = "An error occurred while logging in."
)

// AuthService defines authentication operations for the UI.
//
// Contract:
//   - CheckLoginStatus: restore the session from storage, at most once per unchecked period.
//   - Login: compare credentials with the stored record and open the session.
//   - Signup: validate the draft and persist it as the user record.
//   - Logout: remove the record and reset the session.
//
// FieldErrors are returned alongside an error whenever there is something
// to show next to a field.
type AuthService interface {
	CheckLoginStatus(ctx context.Context)
	Login(ctx context.Context, email, password string) (form.FieldErrors, error)
	Signup(ctx context.Context, draft form.Draft, prior form.FieldErrors) (form.FieldErrors, error)
	Logout(ctx context.Context) error
}

type authService struct {
	store   storage.Store
	session *session.Store
	log     logging.Logger
}

// NewAuthService constructs an AuthService over the given store and session.
func NewAuthService(store storage.Store, sess *session.Store, log logging.Logger) AuthService {
	return &authService{store: store, session: sess, log: log.With("component", "auth")}
}

func (a *authService) loadRecord(ctx context.Context) (models.UserRecord, bool, error) {
	raw, found, err := a.store.Get(ctx, storage.UserRecordKey)
	if err != nil {
		return models.UserRecord{}, false, err
	}
	if !found {
		return models.UserRecord{}, false, nil
	}
	rec, err := models.DecodeUserRecord(raw)
	if err != nil {
		return models.UserRecord{}, false, err
	}
	return rec, true, nil
}

// CheckLoginStatus runs the startup check. A stored record logs the user
// in, no record logs them out. A read or decode failure is logged and
// leaves the logged-in flag untouched. The latch is closed in every case.
func (a *authService) CheckLoginStatus(ctx context.Context) {
	if !a.session.BeginCheck() {
		return
	}
	defer a.session.SetChecked(true)

	rec, found, err := a.loadRecord(ctx)
	if err != nil {
		a.log.Error(ctx, "error checking login status", "error", err)
		return
	}

	if !found {
		a.session.SetLoggedIn(false)
		return
	}

	a.session.SetUserData(rec.Profile())
	a.session.SetLoggedIn(true)
	a.log.Info(ctx, "session restored", "email", rec.Email)
}

// Login checks email and password against the stored record.
func (a *authService) Login(ctx context.Context, email, password string) (form.FieldErrors, error) {
	errs, ok := form.ValidateLogin(email, password)
	if !ok {
		return errs, ErrValidation
	}

	rec, found, err := a.loadRecord(ctx)
	if err != nil {
		a.log.Error(ctx, "error fetching data", "error", err)
		errs[form.Password] = MsgLoginGenericFailed
		return errs, fmt.Errorf("read user record: %w", err)
	}

	if !found {
		errs[form.Password] = MsgNoUserFound
		return errs, ErrUserNotFound
	}

	if email != rec.Email || password != rec.Password {
		errs[form.Password] = MsgIncorrectLogin
		return errs, ErrInvalidCredentials
	}

	// profile first so observers never see LoggedIn without a user
	a.session.SetUserData(rec.Profile())
	a.session.SetLoggedIn(true)
	a.log.Info(ctx, "login successful", "email", rec.Email)
	return errs, nil
}

// Signup validates the draft and overwrites the stored record with it.
// prior carries the errors currently shown, see form.ValidateForm.
func (a *authService) Signup(ctx context.Context, draft form.Draft, prior form.FieldErrors) (form.FieldErrors, error) {
	errs, ok := form.ValidateForm(draft, prior)
	if !ok {
		return errs, ErrValidation
	}

	rec := models.UserRecord{
		Email:        draft.Email,
		Password:     draft.Password,
		UserName:     draft.UserName,
		MobileNumber: draft.MobileNumber,
	}
	raw, err := rec.Encode()
	if err != nil {
		a.log.Error(ctx, "error saving user data", "error", err)
		return errs, err
	}

	if err := a.store.Set(ctx, storage.UserRecordKey, raw); err != nil {
		a.log.Error(ctx, "error saving user data", "error", err)
		return errs, fmt.Errorf("save user record: %w", err)
	}

	a.log.Info(ctx, "user signed up", "email", rec.Email)
	return errs, nil
}

// Logout removes the stored record (and the legacy auth key) and resets
// the session. The session is reset even when removal fails; the error is
// logged and returned for the caller to log as well.
func (a *authService) Logout(ctx context.Context) error {
	err := a.store.Remove(ctx, storage.LegacyAuthKey, storage.UserRecordKey)
	if err != nil {
		a.log.Error(ctx, "error logging out", "error", err)
		err = fmt.Errorf("remove user record: %w", err)
	}

	a.session.Reset()
	a.log.Info(ctx, "logged out")
	return err
}
