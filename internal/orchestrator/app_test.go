package orchestrator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"candidate-search/internal/config"
	"candidate-search/internal/models"
	"candidate-search/internal/review"
)

// fakeGitHub serves a two-user listing; ghost users answer 404
func fakeGitHub(t *testing.T, ghost string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "login": "ada", "avatar_url": "a.png", "html_url": "u/ada"},
			{"id": 2, "login": "grace", "avatar_url": "g.png", "html_url": "u/grace"}
		]`))
	})
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		login := strings.TrimPrefix(r.URL.Path, "/users/")
		switch login {
		case ghost:
			http.NotFound(w, r)
		case "grace":
			w.Write([]byte(`{"name": "Grace Hopper", "company": "US Navy", "location": null}`))
		default:
			w.Write([]byte(`{}`))
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, apiURL string, mutate func(*models.Config)) *App {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.GitHubAPIURL = apiURL
	cfg.DBPath = filepath.Join(t.TempDir(), "candidates.db")
	if mutate != nil {
		mutate(&cfg)
	}

	app, err := New(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestApp_FetchOnce(t *testing.T) {
	app := newTestApp(t, fakeGitHub(t, "").URL, nil)

	got, err := app.FetchOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, models.Candidate{
		ID: 1, Name: "Unknown", Username: "ada", Location: "Unknown",
		Avatar: "a.png", Email: "Not Available", HTMLURL: "u/ada", Company: "Unknown",
	}, got[0])
	assert.Equal(t, "Grace Hopper", got[1].Name)
	assert.Equal(t, "Unknown", got[1].Location)
}

func TestApp_FetchOnce_FailBatch(t *testing.T) {
	app := newTestApp(t, fakeGitHub(t, "grace").URL, nil)

	got, err := app.FetchOnce(context.Background())
	assert.Nil(t, got)
	assert.EqualError(t, err, "Failed to load candidates. Please try again.")
}

func TestApp_FetchOnce_DropFailed(t *testing.T) {
	app := newTestApp(t, fakeGitHub(t, "grace").URL, func(cfg *models.Config) {
		cfg.FailurePolicy = models.DropFailed
	})

	got, err := app.FetchOnce(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ada", got[0].Username)
}

func TestApp_SessionPersistsAccepted(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, fakeGitHub(t, "").URL, nil)

	saved, err := app.Saved(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)

	model, reviewStore := app.NewSession(ctx)

	// run the fetch the way the program would, then review
	batch, err := app.FetchOnce(ctx)
	require.NoError(t, err)
	reviewStore.Dispatch(review.FetchResult(batch, nil))

	steps := []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("-")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("+")},
	}
	var next tea.Model = model
	for _, msg := range steps {
		next, _ = next.Update(msg)
	}

	assert.Equal(t, review.StatusExhausted, reviewStore.State().Status())

	saved, err = app.Saved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "grace", saved[0].Username)
}

func TestApp_SavedSurvivesRestart(t *testing.T) {
	ctx := context.Background()
	srv := fakeGitHub(t, "")
	dbPath := filepath.Join(t.TempDir(), "candidates.db")

	cfg := config.DefaultConfig()
	cfg.GitHubAPIURL = srv.URL
	cfg.DBPath = dbPath

	first, err := New(cfg, nil)
	require.NoError(t, err)
	_, reviewStore := first.NewSession(ctx)
	batch, err := first.FetchOnce(ctx)
	require.NoError(t, err)
	reviewStore.Dispatch(review.FetchResult(batch, nil))
	reviewStore.Dispatch(review.Accept)
	require.NoError(t, first.Close())

	second, err := New(cfg, nil)
	require.NoError(t, err)
	defer second.Close()

	saved, err := second.Saved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "ada", saved[0].Username)
}

func TestApp_ClearSaved(t *testing.T) {
	ctx := context.Background()
	app := newTestApp(t, fakeGitHub(t, "").URL, nil)

	_, reviewStore := app.NewSession(ctx)
	batch, err := app.FetchOnce(ctx)
	require.NoError(t, err)
	reviewStore.Dispatch(review.FetchResult(batch, nil))
	reviewStore.Dispatch(review.Accept)

	saved, err := app.Saved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 1)

	require.NoError(t, app.ClearSaved(ctx))
	saved, err = app.Saved(ctx)
	require.NoError(t, err)
	assert.Empty(t, saved)
}

func TestNew_BadDatabasePath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DBPath = filepath.Join(t.TempDir(), "missing", "dir", "candidates.db")

	_, err := New(cfg, nil)
	assert.Error(t, err)
}
