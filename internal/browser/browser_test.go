package browser

import (
	"context"
	"testing"

	"github.com/chromedp/chromedp"
	"github.com/stretchr/testify/assert"
)

func TestOpenProfile_AfterClose(t *testing.T) {
	m := NewManager(true)
	m.Close()

	err := m.OpenProfile(context.Background(), "https://github.com/ada")
	assert.ErrorIs(t, err, ErrClosed)
}

func TestClose_WithoutBrowserIsSafe(t *testing.T) {
	m := NewManager(true)
	m.Close()
	m.Close()
}

func TestAllocatorOptions_IncludeDefaults(t *testing.T) {
	m := NewManager(false)
	opts := m.allocatorOptions()
	assert.Greater(t, len(opts), len(chromedp.DefaultExecAllocatorOptions))
}
