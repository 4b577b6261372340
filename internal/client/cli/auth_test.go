package cli

import (
	"context"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/client/form"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/navigation"
	"github.com/dmitrijs2005/storefront/internal/client/services"
	"github.com/dmitrijs2005/storefront/internal/client/storage"
	"github.com/stretchr/testify/require"
)

// signup prompts: user name, email, mobile (text) and password, confirm (hidden),
// followed by the login prompts email (text) and password (hidden).
func TestSignup_ThenLogin(t *testing.T) {
	out := captureOutput(t)
	st := storage.NewMemoryStore()
	a := newTestApp(t, st, nil, "")

	stubInputs(t,
		[]string{"alice", "a@b.com", "1234567890", "a@b.com"},
		[]string{"p1", "p1", "p1"},
	)

	require.NoError(t, a.Signup(context.Background()))

	require.True(t, a.isLoggedIn())
	require.Equal(t, navigation.To(navigation.Home), a.nav.Current())
	require.Equal(t,
		models.UserProfile{Email: "a@b.com", UserName: "alice", MobileNumber: "1234567890"},
		a.session.Snapshot().User)

	_, found, err := st.Get(context.Background(), storage.UserRecordKey)
	require.NoError(t, err)
	require.True(t, found)

	got := out()
	require.Contains(t, got, "Account created. Please log in.")
	require.Contains(t, got, "Welcome, alice!")
	require.Contains(t, got, "Beauty")
}

func TestSignup_InlineAndSubmitErrors(t *testing.T) {
	out := captureOutput(t)
	st := storage.NewMemoryStore()
	a := newTestApp(t, st, nil, "")

	stubInputs(t,
		[]string{"alice", "not-an-email", "123"},
		[]string{"p1", "p2"},
	)

	err := a.Signup(context.Background())
	require.ErrorIs(t, err, services.ErrValidation)

	got := out()
	require.Contains(t, got, form.MsgEmailInvalid)
	require.Contains(t, got, form.MsgPasswordsDoNotMatch)
	require.Contains(t, got, form.MsgMobileNumberTooShort)

	_, found, err := st.Get(context.Background(), storage.UserRecordKey)
	require.NoError(t, err)
	require.False(t, found)
	require.Equal(t, navigation.To(navigation.SignUp), a.nav.Current())
}

func TestLogin_NoUser(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, nil, nil, "")
	stubInputs(t, []string{"a@b.com"}, []string{"p1"})

	err := a.Login(context.Background())
	require.ErrorIs(t, err, services.ErrUserNotFound)
	require.Contains(t, out(), services.MsgNoUserFound)
	require.False(t, a.isLoggedIn())
	require.Equal(t, navigation.To(navigation.Login), a.nav.Current())
}

func TestLogin_EmptyFields(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, nil, nil, "")
	stubInputs(t, []string{""}, []string{""})

	err := a.Login(context.Background())
	require.ErrorIs(t, err, services.ErrValidation)
	require.Contains(t, out(), form.MsgLoginEmailRequired)
	require.Contains(t, out(), form.MsgLoginPasswordRequired)
}

func loggedInApp(t *testing.T, st storage.Store) *App {
	t.Helper()
	silencePrintln(t)
	a := newTestApp(t, st, nil, "")
	stubInputs(t,
		[]string{"alice", "a@b.com", "1234567890", "a@b.com"},
		[]string{"p1", "p1", "p1"},
	)
	require.NoError(t, a.Signup(context.Background()))
	require.True(t, a.isLoggedIn())
	return a
}

func TestLogin_WhenLoggedIn(t *testing.T) {
	a := loggedInApp(t, nil)

	err := a.Login(context.Background())
	require.ErrorIs(t, err, navigation.ErrRouteUnavailable)

	err = a.Signup(context.Background())
	require.ErrorIs(t, err, navigation.ErrRouteUnavailable)
}

func TestLogout(t *testing.T) {
	st := storage.NewMemoryStore()
	a := loggedInApp(t, st)

	require.NoError(t, a.Logout(context.Background()))

	require.False(t, a.isLoggedIn())
	require.True(t, a.session.Snapshot().User.IsZero())
	require.Equal(t, navigation.To(navigation.SignUp), a.nav.Current())

	_, found, err := st.Get(context.Background(), storage.UserRecordKey)
	require.NoError(t, err)
	require.False(t, found)
}

func TestLogout_NotLoggedIn(t *testing.T) {
	out := captureOutput(t)
	a := newTestApp(t, nil, nil, "")

	require.NoError(t, a.Logout(context.Background()))
	require.Contains(t, out(), "You are not logged in.")
}

func TestWhoAmI(t *testing.T) {
	a := loggedInApp(t, nil)
	out := captureOutput(t)

	require.NoError(t, a.WhoAmI(context.Background()))
	require.Contains(t, out(), "alice <a@b.com>, mobile 1234567890")
}
