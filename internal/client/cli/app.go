package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/framez-app/framez/internal/client/config"
	"github.com/framez-app/framez/internal/logging"
	"github.com/framez-app/framez/internal/securestore"
	"github.com/framez-app/framez/internal/session"

	_ "modernc.org/sqlite"
)

// sessionService is the slice of the session manager the CLI consumes.
type sessionService interface {
	Register(ctx context.Context, name, email, password string) error
	Login(ctx context.Context, email, password string) (*session.Session, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) *session.Session
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	UpdateAvatar(ctx context.Context, email, uri string) (string, error)
}

type App struct {
	config   *config.Config
	sessions sessionService
	store    *securestore.SQLiteStore
	log      logging.Logger
	reader   *bufio.Reader
	current  *session.Session
}

// NewApp opens the local secure store and wires the session manager.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	store, err := securestore.Open(ctx, cfg.DatabaseDSN, []byte(cfg.DeviceSecret))
	if err != nil {
		log.Error(ctx, "error initializing secure store", "error", err)
		return nil, err
	}

	mgr := session.NewManager(store, session.NewTokenIssuer([]byte(cfg.DeviceSecret)), log)

	return &App{
		config:   cfg,
		sessions: mgr,
		store:    store,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and enters the command loop.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if sess := a.sessions.Restore(ctx); sess != nil {
		a.current = sess
		fmt.Printf("Welcome back, %s!\n", sess.User.Name)
	}

	fmt.Println("Welcome to Framez (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

// Close releases the underlying store.
func (a *App) Close() {
	if a.store != nil {
		_ = a.store.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.current != nil
}

func (a *App) getStatus() string {
	if a.current == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", a.current.User.Email)
}
