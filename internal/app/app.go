// Package app ties the pieces together: it authenticates users and hands
// out UserSession values that carry all per-login state.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/shikshamitra/shikshamitra/internal/catalog"
	"github.com/shikshamitra/shikshamitra/internal/curriculum"
	"github.com/shikshamitra/shikshamitra/internal/llm"
	"github.com/shikshamitra/shikshamitra/internal/store"
	"github.com/shikshamitra/shikshamitra/internal/tutor"
)

// App is the composition root. All dependencies are injected; there is no
// package-level state.
type App struct {
	store    *store.Store
	catalog  *catalog.Catalog
	provider llm.Provider
	now      func() time.Time
}

// Option configures an App.
type Option func(*App)

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New builds an App over the given store, question catalog and model
// provider.
func New(st *store.Store, cat *catalog.Catalog, provider llm.Provider, opts ...Option) *App {
	a := &App{
		store:    st,
		catalog:  cat,
		provider: provider,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register creates a new account. The caller completes onboarding by
// saving a profile on the first session.
func (a *App) Register(ctx context.Context, username, password, email string) (*store.Account, error) {
	return a.store.CreateAccount(ctx, username, password, email)
}

// Login authenticates and opens a session. A successful login counts as
// the day's activity, so the streak advances here.
func (a *App) Login(ctx context.Context, username, password string) (*UserSession, error) {
	acct, err := a.store.Authenticate(ctx, username, password)
	if err != nil {
		return nil, err
	}

	stats, err := a.store.ApplyStreakUpdate(ctx, acct.ID, a.now())
	if err != nil {
		return nil, fmt.Errorf("apply streak: %w", err)
	}

	return &UserSession{
		app:     a,
		account: acct,
		stats:   stats,
		agent:   tutor.NewAgent(a.provider),
	}, nil
}

// Catalog exposes the question catalog.
func (a *App) Catalog() *catalog.Catalog {
	return a.catalog
}

// ValidateProfile checks a profile against the curriculum before it is
// saved: class in range, subjects non-empty and offered for that class.
func ValidateProfile(p store.Profile) error {
	if err := curriculum.ValidateClass(p.ClassNumber); err != nil {
		return err
	}
	return curriculum.ValidateSubjects(p.ClassNumber, p.Subjects)
}
