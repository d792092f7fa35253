package browser

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

// Loader fetches catalog and page data. *catalog.Loader satisfies it.
type Loader interface {
	FetchCatalog(ctx context.Context) ([]pokeapi.Pokemon, error)
	FetchPage(ctx context.Context, page int) ([]pokeapi.Pokemon, error)
}

// loadCatalogCmd fetches the catalog off the event loop
func loadCatalogCmd(ctx context.Context, loader Loader, token catalog.Token) tea.Cmd {
	return func() tea.Msg {
		entities, err := loader.FetchCatalog(ctx)
		return CatalogLoadedMsg{Token: token, Entities: entities, Err: err}
	}
}

// loadPageCmd fetches one page off the event loop
func loadPageCmd(ctx context.Context, loader Loader, token catalog.Token, page int) tea.Cmd {
	return func() tea.Msg {
		entities, err := loader.FetchPage(ctx, page)
		return PageLoadedMsg{Token: token, Page: page, Entities: entities, Err: err}
	}
}
