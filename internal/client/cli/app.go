package cli

import (
	"bufio"
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/akulinin/campusmarket/internal/client/api"
	"github.com/akulinin/campusmarket/internal/client/catalog"
	"github.com/akulinin/campusmarket/internal/client/config"
	"github.com/akulinin/campusmarket/internal/client/images"
	"github.com/akulinin/campusmarket/internal/client/search"
	"github.com/akulinin/campusmarket/internal/client/session"
	"github.com/akulinin/campusmarket/internal/client/snapshot"
	"github.com/akulinin/campusmarket/internal/logging"

	_ "modernc.org/sqlite"
)

// App holds the wired-up client: session and catalog stores plus the
// ephemeral search criteria the search command edits between runs.
type App struct {
	config   *config.Config
	session  *session.Store
	catalog  *catalog.Store
	criteria search.Criteria
	reader   *bufio.Reader
	log      logging.Logger
	db       *sql.DB
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, err := snapshot.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing local database", "error", err)
		return nil, err
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL)
	snapshots := snapshot.NewSQLiteRepository(db)
	validator := images.Validator{MaxCount: c.MaxImages, MaxSize: c.MaxImageSize}

	return &App{
		config:   c,
		session:  session.New(apiClient, snapshots, log),
		catalog:  catalog.New(apiClient, validator, log),
		criteria: search.DefaultCriteria(),
		reader:   bufio.NewReader(os.Stdin),
		log:      log,
		db:       db,
	}, nil
}

// Run restores the saved session and drives the REPL until exit.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	a.session.Restore(ctx)

	printlnFn("Campus Marketplace CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	if u := a.session.Current(); u != nil {
		return "(" + u.Name + ")"
	}
	return ""
}
