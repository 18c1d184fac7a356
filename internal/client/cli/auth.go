package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/healthmate/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Register prompts for a name, email and password and attempts to create a
// new account. A taken email is reported to the user, not treated as an
// error.
//
// The password byte slice is securely wiped before returning. Any I/O or
// store error is returned unchanged.
func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.auth.Signup(ctx, name, email, string(password))
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("An account with this email already exists.")
		return nil
	}

	printlnFn("Success!")
	a.enterDashboard(ctx)
	return nil
}

// Login prompts for credentials and tries to authenticate against the local
// account directory. Bad credentials are reported to the user, not treated
// as an error.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ok, err := a.auth.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	if !ok {
		printlnFn("Invalid email or password.")
		return nil
	}

	printlnFn("Logged in!")
	a.enterDashboard(ctx)
	return nil
}

// Logout clears the persisted session and disarms pending notifications.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.scheduler.Stop()
	a.speaker.Stop()
	printlnFn("Logged out.")
	return nil
}
