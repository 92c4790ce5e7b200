package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/memoryvault/internal/common"
	"github.com/dmitrijs2005/memoryvault/internal/logging"
	"github.com/dmitrijs2005/memoryvault/internal/vault/models"
)

// AuthService defines account operations for the CLI.
//
// Contract:
//   - Register: create a user; an existing email fails with common.ErrDuplicateKey.
//   - Login: check credentials and remember the identity for later runs.
//   - Logout: forget the remembered identity.
//   - CurrentIdentity: report the remembered identity, if any.
type AuthService interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (models.Session, error)
	Logout(ctx context.Context) error
	CurrentIdentity(ctx context.Context) (string, bool, error)
}

type authService struct {
	store  UserStore
	logger logging.Logger
	now    func() time.Time
}

// NewAuthService constructs an AuthService over the given store.
func NewAuthService(store UserStore, logger logging.Logger) AuthService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &authService{store: store, logger: logger.With("component", "auth"), now: nowUTC}
}

func nowUTC() time.Time {
	return time.Now().UTC()
}

func hasCredentials(email, password string) bool {
	return email != "" && strings.TrimSpace(password) != ""
}

// Register stores a new account. Password is kept exactly as given.
func (a *authService) Register(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if !hasCredentials(email, password) {
		return common.ErrEmptyCredentials
	}

	u := &models.User{Email: email, Password: password, CreatedAt: a.now()}
	if err := a.store.AddUser(ctx, u); err != nil {
		return fmt.Errorf("register %s: %w", email, err)
	}

	a.logger.Info(ctx, "user registered", "email", email)
	return nil
}

// Login compares the credentials with the stored account and, on success,
// persists the identity so the next run starts logged in. An unknown email
// and a wrong password both return common.ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)
	if !hasCredentials(email, password) {
		return models.Session{}, common.ErrEmptyCredentials
	}

	u, err := a.store.GetUser(ctx, email)
	if err != nil {
		return models.Session{}, fmt.Errorf("login %s: %w", email, err)
	}
	if u == nil || subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) == 0 {
		a.logger.Warn(ctx, "login rejected", "email", email)
		return models.Session{}, common.ErrInvalidCredentials
	}

	if err := a.store.SetSession(ctx, u.Email); err != nil {
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	a.logger.Info(ctx, "user logged in", "email", u.Email)
	return models.Session{Email: u.Email}, nil
}

func (a *authService) Logout(ctx context.Context) error {
	if err := a.store.ClearSession(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentIdentity returns the remembered email and true, or "" and false
// when nobody is logged in.
func (a *authService) CurrentIdentity(ctx context.Context) (string, bool, error) {
	email, err := a.store.Session(ctx)
	if err != nil {
		return "", false, err
	}
	return email, email != "", nil
}
