package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dmitrijs2005/gophauth/internal/client/client"
	"github.com/dmitrijs2005/gophauth/internal/client/config"
	"github.com/dmitrijs2005/gophauth/internal/client/services"
	"github.com/dmitrijs2005/gophauth/internal/filex"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	db          *sql.DB
	email       string
	reader      *bufio.Reader
	out         io.Writer
}

// NewApp opens the local cache under c.DataDir and binds it to an HTTP
// client for c.ServerURL.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, config.DatabaseFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(services.NewAuthService(apiClient, db), in, out)
	a.config = c
	a.db = db

	if a.email, err = a.authService.CachedEmail(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return a, nil
}

func newApp(as services.AuthService, in io.Reader, out io.Writer) *App {
	return &App{authService: as, reader: bufio.NewReader(in), out: out}
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) getStatus() string {
	if a.email == "" {
		return ""
	}
	return fmt.Sprintf("(%s)", a.email)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
