package cli

import (
	"context"
	"os"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// readCredentials prompts for email and password. The caller must wipe the
// returned password.
func (a *App) readCredentials() (string, []byte, error) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return "", nil, err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return "", nil, err
	}
	return email, password, nil
}

// Register prompts for an email and password and creates the account.
func (a *App) Register(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.authService.Register(ctx, email, string(password)); err != nil {
		return err
	}

	printlnFn("Registration successful, you can login now")
	return nil
}

// Login prompts for credentials and, on success, makes the account the
// current session. A failed attempt leaves the previous session in place.
func (a *App) Login(ctx context.Context) error {
	email, password, err := a.readCredentials()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.authService.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.session = session
	printlnFn("Logged in as", session.Email)
	return nil
}

// Logout forgets the remembered identity.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		return err
	}
	a.session = models.Session{}
	printlnFn("Logged out")
	return nil
}

// restoreSession picks up the identity remembered by an earlier run.
func (a *App) restoreSession(ctx context.Context) {
	email, ok, err := a.authService.CurrentIdentity(ctx)
	if err != nil {
		a.logger.Warn(ctx, "session restore failed", "error", err)
		return
	}
	if ok {
		a.session = models.Session{Email: email}
		printlnFn("Welcome back,", email)
	}
}
