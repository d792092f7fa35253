package browser

import (
	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

// Load Messages

// CatalogLoadedMsg reports the outcome of a catalog fetch
type CatalogLoadedMsg struct {
	Token    catalog.Token
	Entities []pokeapi.Pokemon
	Err      error
}

// PageLoadedMsg reports the outcome of a page fetch
type PageLoadedMsg struct {
	Token    catalog.Token
	Page     int
	Entities []pokeapi.Pokemon
	Err      error
}
