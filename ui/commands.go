package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybersky/showcase/types"
)

const loadTimeout = 15 * time.Second

// Message types for async operations

type catalogMsg struct {
	requestID int
	catalog   types.Catalog
	err       error
}

type clipboardMsg struct {
	text string
	err  error
}

type cacheClearSource interface {
	ClearCache()
}

type reloadSource interface {
	Reload(ctx context.Context) (types.Catalog, error)
}

// loadCatalog returns a tea.Cmd that reads the catalog asynchronously
func loadCatalog(source types.CatalogSource, requestID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		c, err := source.GetCatalog(ctx)
		return catalogMsg{requestID: requestID, catalog: c, err: err}
	}
}

// reloadCatalog bypasses the source's cache when it has one
func reloadCatalog(source types.CatalogSource, requestID int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		if r, ok := source.(reloadSource); ok {
			c, err := r.Reload(ctx)
			return catalogMsg{requestID: requestID, catalog: c, err: err}
		}
		if clearable, ok := source.(cacheClearSource); ok {
			clearable.ClearCache()
		}
		c, err := source.GetCatalog(ctx)
		return catalogMsg{requestID: requestID, catalog: c, err: err}
	}
}

func copyToClipboard(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return clipboardMsg{text: text, err: write(text)}
	}
}
