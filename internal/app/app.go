package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/renzovm/bancli/internal/config"
	"github.com/renzovm/bancli/internal/gateway"
	"github.com/renzovm/bancli/internal/guard"
	"github.com/renzovm/bancli/internal/session"
	"github.com/renzovm/bancli/internal/store"
)

type App struct {
	Session *session.Store
	Gateway *gateway.Client
	Guard   *guard.Guard
	Store   store.SessionRepository
}

// NewApp wires the session cache, the API gateway and the guard, restores
// any persisted session, and returns the App with a cleanup func. The
// session store and the gateway reference each other (token source one way,
// auth operations the other), so they are connected here rather than in
// either constructor.
func NewApp(cfg *config.Config, migrationsFS fs.FS) (*App, func(), error) {
	dbPathRaw := cfg.Database.Path

	if dbPathRaw == "" {
		appDir, _ := getAppDataDir()
		dbPathRaw = filepath.Join(appDir, "bancli.db")
	}

	dbStore, err := store.NewStore(dbPathRaw, migrationsFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize session cache: %w", err)
	}

	sess := session.New(dbStore)

	timeout := time.Duration(cfg.API.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	gw := gateway.NewClient(cfg.API.BaseURL, timeout, sess)
	sess.SetAuth(gw)

	if err := sess.Restore(); err != nil {
		dbStore.Close()
		return nil, nil, err
	}

	cleanup := func() {
		if err := dbStore.Close(); err != nil {
			fmt.Printf("Error closing session cache: %v\n", err)
		}
	}

	return &App{
		Session: sess,
		Gateway: gw,
		Guard:   guard.New(sess),
		Store:   dbStore,
	}, cleanup, nil
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bancli"), nil
	}

	return filepath.Join(configDir, "bancli"), nil
}
