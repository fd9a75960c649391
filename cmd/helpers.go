package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shikshamitra/shikshamitra/internal/app"
	"github.com/shikshamitra/shikshamitra/internal/catalog"
	"github.com/shikshamitra/shikshamitra/internal/llm"
	"github.com/shikshamitra/shikshamitra/internal/store"
)

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// newProvider builds the model provider from SHIKSHA_* configuration,
// falling back to the providers' own key variables. Every call is logged
// to the store.
func newProvider(ctx context.Context, s *store.Store) (llm.Provider, error) {
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return llm.NewProvider(ctx, cfg, s)
}

func credentials(cmd *cobra.Command) (username, password string, err error) {
	username, _ = cmd.Flags().GetString("user")
	password, _ = cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("SHIKSHA_PASSWORD")
	}
	if username == "" || password == "" {
		return "", "", fmt.Errorf("credentials required: pass --user and --password (or SHIKSHA_PASSWORD)")
	}
	return username, password, nil
}

// openSession opens the store, builds the app and logs in. The returned
// cleanup closes everything.
func openSession(ctx context.Context, cmd *cobra.Command, withLLM bool) (*app.UserSession, func(), error) {
	s, err := openStore(cmd)
	if err != nil {
		return nil, nil, err
	}

	var provider llm.Provider = llm.NewMockProvider()
	if withLLM {
		provider, err = newProvider(ctx, s)
		if err != nil {
			s.Close()
			return nil, nil, err
		}
	}

	username, password, err := credentials(cmd)
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	a := app.New(s, catalog.Default(), provider)
	sess, err := a.Login(ctx, username, password)
	if err != nil {
		s.Close()
		return nil, nil, err
	}

	cleanup := func() {
		sess.Logout()
		s.Close()
	}
	return sess, cleanup, nil
}
