package cli

import (
	"context"
	"fmt"

	"pathshala/internal/client/api"
	"pathshala/internal/client/session"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates, and persists the session.
// The session is saved only after a successful response; if persisting fails
// the login as a whole is reported as failed, so the store never holds a
// half-written session. On success the user is told which screen they land
// on, by role.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}

	res, err := a.api.Login(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "error", err.Error())
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	if err := a.sessions.SaveSession(res.Token, res.User); err != nil {
		a.logger.Error(ctx, "saving session failed", "error", err.Error())
		fmt.Fprintln(a.out, "could not save the session, please log in again")
		return err
	}

	fmt.Fprintf(a.out, "Welcome, %s! (landing: %s)\n", res.User.FirstName, session.RouteFor(res.User))
	return nil
}

// Register walks through the sign-up form and creates an account. The form
// is validated locally first; a validation failure is shown without any
// network traffic. A successful registration does not sign the user in —
// they are asked to log in, same as the app.
func (a *App) Register(ctx context.Context) error {
	form := api.RegisterRequest{}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter first name", &form.FirstName},
		{"Enter last name", &form.LastName},
		{"Enter email", &form.Email},
		{"Enter mobile number (10 digits)", &form.Mobile},
		{"Enter gender", &form.Gender},
	}
	for _, f := range fields {
		v, err := getSimpleText(a.reader, f.prompt, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}

	password, err := getPassword("Enter password", a.out)
	if err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password", a.out)
	if err != nil {
		return err
	}
	form.Password, form.ConfirmPassword = password, confirm

	if _, err := a.api.Register(ctx, form); err != nil {
		a.logger.Warn(ctx, "registration failed", "error", err.Error())
		fmt.Fprintln(a.out, err.Error())
		return err
	}

	fmt.Fprintln(a.out, "Registration successful! Please log in.")
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sessions.Logout(); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err.Error())
		return err
	}
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}

// WhoAmI prints the cached profile and the landing destination for its role.
func (a *App) WhoAmI(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}
	u := a.sessions.CurrentUser()
	fmt.Fprintf(a.out, "%s %s <%s> role=%s landing=%s\n",
		u.FirstName, u.LastName, u.Email, u.Role, session.RouteFor(u))
	return nil
}
