package browser

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrClosed is returned by OpenProfile after Close
var ErrClosed = errors.New("browser manager closed")

// Manager opens candidate profile pages in a Chrome instance it owns.
// Chrome is started on the first OpenProfile call.
type Manager struct {
	headless bool

	mu         sync.Mutex
	browserCtx context.Context
	cancel     context.CancelFunc
	tabCancels []context.CancelFunc
	closed     bool
}

// NewManager creates a new Manager instance
func NewManager(headless bool) *Manager {
	return &Manager{headless: headless}
}

// allocatorOptions returns the Chrome flags the manager launches with
func (m *Manager) allocatorOptions() []chromedp.ExecAllocatorOption {
	return append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", m.headless),
		chromedp.Flag("disable-infobars", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
}

// createBrowserContext starts Chrome and returns its root context
func (m *Manager) createBrowserContext() (context.Context, context.CancelFunc, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), m.allocatorOptions()...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Running an empty task list launches the browser
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, nil, fmt.Errorf("failed to start browser: %w", err)
	}

	combinedCancel := func() {
		browserCancel()
		allocCancel()
	}

	return browserCtx, combinedCancel, nil
}

// OpenProfile opens url in a new tab and brings it to the front.
// The tab stays open until Close.
func (m *Manager) OpenProfile(ctx context.Context, url string) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if m.browserCtx == nil {
		browserCtx, cancel, err := m.createBrowserContext()
		if err != nil {
			m.mu.Unlock()
			return err
		}
		m.browserCtx, m.cancel = browserCtx, cancel
	}
	tabCtx, tabCancel := chromedp.NewContext(m.browserCtx)
	m.tabCancels = append(m.tabCancels, tabCancel)
	m.mu.Unlock()

	// Stop waiting when the caller gives up, without closing the tab
	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(tabCtx,
			chromedp.Navigate(url),
			page.BringToFront(),
		)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", url, err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close shuts the browser down
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closed = true
	for _, cancel := range m.tabCancels {
		cancel()
	}
	m.tabCancels = nil
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
		m.browserCtx = nil
	}
}
