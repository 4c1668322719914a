// Package ui renders the candidate review queue as a Bubble Tea program.
//
// The model owns no review state of its own: every change goes through the
// review.Store, so persistence observers see each transition.
package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"candidate-search/internal/models"
	"candidate-search/internal/review"
)

const (
	loadingText   = "Loading candidates..."
	exhaustedText = "No more candidates available!"
)

// Fetcher acquires the batch to review
type Fetcher interface {
	AcquireCandidates(ctx context.Context) ([]models.Candidate, error)
}

// Opener shows a profile URL to the user
type Opener interface {
	OpenProfile(ctx context.Context, url string) error
}

type fetchResultMsg struct {
	candidates []models.Candidate
	err        error
}

type openResultMsg struct {
	username string
	err      error
}

// Model is the review view
type Model struct {
	ctx     context.Context
	store   *review.Store
	fetcher Fetcher
	opener  Opener
	logger  *zap.Logger

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	styles  Styles

	notice      string
	noticeStyle lipgloss.Style
	width       int
}

// New creates the review view. opener may be nil, which disables the open key.
func New(ctx context.Context, store *review.Store, fetcher Fetcher, opener Opener, logger *zap.Logger) Model {
	if logger == nil {
		logger = zap.NewNop()
	}
	styles := DefaultStyles()
	keys := defaultKeyMap()
	keys.Open.SetEnabled(opener != nil)

	return Model{
		ctx:     ctx,
		store:   store,
		fetcher: fetcher,
		opener:  opener,
		logger:  logger.Named("ui"),
		keys:    keys,
		help:    help.New(),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(styles.Spinner)),
		styles:  styles,
	}
}

// Init starts the fetch and the loading spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		candidates, err := m.fetcher.AcquireCandidates(m.ctx)
		return fetchResultMsg{candidates: candidates, err: err}
	}
}

func (m Model) openCmd(c models.Candidate) tea.Cmd {
	return func() tea.Msg {
		err := m.opener.OpenProfile(m.ctx, c.HTMLURL)
		return openResultMsg{username: c.Username, err: err}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fetchResultMsg:
		if msg.err != nil {
			m.logger.Error("fetch failed", zap.Error(msg.err))
		}
		m.store.Dispatch(review.FetchResult(msg.candidates, msg.err))
		return m, nil

	case openResultMsg:
		if msg.err != nil {
			m.logger.Warn("failed to open profile", zap.String("login", msg.username), zap.Error(msg.err))
			m.notice = fmt.Sprintf("Could not open %s's profile", msg.username)
			m.noticeStyle = m.styles.Error
		} else {
			m.notice = fmt.Sprintf("Opened %s's profile", msg.username)
			m.noticeStyle = m.styles.Muted
		}
		return m, nil

	case spinner.TickMsg:
		if m.store.State().Status() != review.StatusLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.store.Close()
		return m, tea.Quit
	}

	state := m.store.State()
	if state.Status() != review.StatusReviewing {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Accept):
		current, _ := state.Current()
		m.store.Dispatch(review.Accept)
		m.notice = fmt.Sprintf("Saved %s", current.Username)
		m.noticeStyle = m.styles.Accept
	case key.Matches(msg, m.keys.Reject):
		current, _ := state.Current()
		m.store.Dispatch(review.Reject)
		m.notice = fmt.Sprintf("Skipped %s", current.Username)
		m.noticeStyle = m.styles.Reject
	case key.Matches(msg, m.keys.Open):
		current, _ := state.Current()
		return m, m.openCmd(current)
	}

	return m, nil
}

// View renders exactly one of the loading, error, exhausted and reviewing views
func (m Model) View() string {
	state := m.store.State()

	switch state.Status() {
	case review.StatusLoading:
		return fmt.Sprintf("%s %s\n", m.spinner.View(), loadingText)
	case review.StatusError:
		return m.styles.Error.Render(state.Err()) + "\n"
	case review.StatusExhausted:
		return m.styles.Title.Render(exhaustedText) + "\n" +
			m.styles.Muted.Render(fmt.Sprintf("%d saved", state.AcceptedLen())) + "\n"
	}

	current, _ := state.Current()

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Candidate Review"))
	sb.WriteString("\n")
	sb.WriteString(m.renderCard(current))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d remaining · %d saved", state.PendingLen(), state.AcceptedLen())))
	if m.notice != "" {
		sb.WriteString("  ")
		sb.WriteString(m.noticeStyle.Render(m.notice))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

func (m Model) renderCard(c models.Candidate) string {
	row := func(label, value string) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, m.styles.Label.Render(label), m.styles.Value.Render(value))
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Name.Render(c.Name),
		"",
		row("Username", c.Username),
		row("Location", c.Location),
		row("Email", c.Email),
		row("Company", c.Company),
		row("Avatar", c.Avatar),
		row("Profile", c.HTMLURL),
	)

	return m.styles.Card.Render(body)
}
