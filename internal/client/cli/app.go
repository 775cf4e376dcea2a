// Package cli implements the interactive Pathshala client: a small REPL that
// signs the user in, keeps the session on disk, and moves study notes to and
// from the backend.
package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"pathshala/internal/client/api"
	"pathshala/internal/client/config"
	"pathshala/internal/client/session"
	"pathshala/internal/logging"
)

// apiClient is the surface of the REST client the commands need. The real
// api.Client satisfies it; tests substitute a fake.
type apiClient interface {
	Login(ctx context.Context, email, password string) (*api.AuthResult, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResult, error)
	Notes(ctx context.Context) ([]api.NoteEntry, error)
	UploadNote(ctx context.Context, title, filename string, r io.Reader) (*api.NoteEntry, error)
}

type App struct {
	config   *config.Config
	sessions *session.Manager
	api      apiClient
	logger   logging.Logger
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(cfg *config.Config, logger logging.Logger) *App {
	sessions := session.NewManager(session.NewFileStore(cfg.SessionFile))
	apiClient := api.NewClient(cfg.BaseURL, sessions, cfg.RequestTimeout)

	return &App{
		config:   cfg,
		sessions: sessions,
		api:      apiClient,
		logger:   logger,
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.sessions.IsAuthenticated()
}
