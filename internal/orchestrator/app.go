package orchestrator

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"candidate-search/internal/browser"
	"candidate-search/internal/fetcher"
	"candidate-search/internal/github"
	"candidate-search/internal/models"
	"candidate-search/internal/review"
	"candidate-search/internal/storage"
	"candidate-search/internal/ui"
)

// App wires the GitHub client, fetcher, review store and storage together
type App struct {
	config  models.Config
	logger  *zap.Logger
	db      *storage.DBStorage
	store   *storage.CandidateStorage
	client  *github.Client
	fetcher *fetcher.Fetcher
	browser *browser.Manager
}

// New creates a new App. The database is opened immediately.
func New(config models.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := storage.NewDBStorage(config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	client := github.New(config, logger)

	app := &App{
		config:  config,
		logger:  logger,
		db:      db,
		store:   storage.NewCandidateStorage(db.KVRepo),
		client:  client,
		fetcher: fetcher.New(client, config.FailurePolicy, logger),
	}
	if config.OpenInBrowser {
		app.browser = browser.NewManager(config.BrowserHeadless)
	}

	logger.Info("app initialized",
		zap.String("db", config.DBPath),
		zap.String("api", config.GitHubAPIURL),
		zap.String("failure_policy", string(config.FailurePolicy)),
		zap.Bool("browser", config.OpenInBrowser),
	)

	return app, nil
}

// NewSession builds a review store with persistence attached and the view over it
func (a *App) NewSession(ctx context.Context) (ui.Model, *review.Store) {
	reviewStore := review.NewStore()
	reviewStore.Subscribe(storage.PersistAccepted(ctx, a.store, a.logger.Named("storage")))

	var opener ui.Opener
	if a.browser != nil {
		opener = a.browser
	}

	return ui.New(ctx, reviewStore, a.fetcher, opener, a.logger), reviewStore
}

// Run starts the interactive review and blocks until the user quits
func (a *App) Run(ctx context.Context) error {
	model, reviewStore := a.NewSession(ctx)
	defer reviewStore.Close()

	_, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("review session failed: %w", err)
	}

	state := reviewStore.State()
	a.logger.Info("review session ended",
		zap.Stringer("status", state.Status()),
		zap.Int("accepted", state.AcceptedLen()),
		zap.Int("pending", state.PendingLen()),
	)
	return nil
}

// FetchOnce acquires one batch without the interactive view
func (a *App) FetchOnce(ctx context.Context) ([]models.Candidate, error) {
	return a.fetcher.AcquireCandidates(ctx)
}

// Saved returns the persisted accepted candidates
func (a *App) Saved(ctx context.Context) ([]models.Candidate, error) {
	return a.store.LoadAccepted(ctx)
}

// ClearSaved deletes the persisted accepted candidates
func (a *App) ClearSaved(ctx context.Context) error {
	if err := a.store.Clear(ctx); err != nil {
		return err
	}
	a.logger.Info("saved candidates cleared")
	return nil
}

// Close releases the browser, HTTP connections and database
func (a *App) Close() error {
	if a.browser != nil {
		a.browser.Close()
	}
	a.client.Close()
	return a.db.Close()
}
