// Package view derives what the browser shows from loader state, the search
// query and the page position. Nothing here performs I/O.
package view

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/pokebrowse/internal/catalog"
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

// Kind selects which screen to render.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindSearch
	KindPaginated
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindError:
		return "error"
	case KindSearch:
		return "search"
	default:
		return "paginated"
	}
}

// Input is the raw state a View is derived from.
type Input struct {
	CatalogState catalog.LoadState
	PageState    catalog.LoadState
	Catalog      []pokeapi.Pokemon
	Page         []pokeapi.Pokemon
	PageLoaded   bool
	Query        string
	CurrentPage  int
	TotalPages   int
}

// FromSession snapshots a session together with the current query.
func FromSession(s *catalog.Session, query string) Input {
	return Input{
		CatalogState: s.CatalogState(),
		PageState:    s.PageState(),
		Catalog:      s.Catalog(),
		Page:         s.Page(),
		PageLoaded:   s.PageLoaded(),
		Query:        query,
		CurrentPage:  s.CurrentPage(),
		TotalPages:   s.TotalPages(),
	}
}

// View is the derived screen. Only the fields relevant to Kind are set.
type View struct {
	Kind Kind

	// KindError
	Message   string
	RetryPage int

	// KindSearch and KindPaginated
	Entities      []pokeapi.Pokemon
	Refreshing    bool
	CatalogNotice string

	// KindSearch
	Query      string
	MatchCount int

	// KindPaginated
	CurrentPage    int
	TotalPages     int
	ShowPagination bool
	HasPrev        bool
	HasNext        bool
}

// Compose derives exactly one View from in.
func Compose(in Input) View {
	if !in.PageLoaded && !in.PageState.Failed() {
		return View{Kind: KindLoading}
	}

	if failure, ok := latestFailure(in.CatalogState, in.PageState); ok {
		return View{Kind: KindError, Message: failure.Message, RetryPage: in.CurrentPage}
	}

	notice := ""
	if in.CatalogState.Failed() {
		notice = "Search unavailable: " + in.CatalogState.Message
	}

	if in.Query != "" {
		matches := Filter(in.Catalog, in.Query)
		return View{
			Kind:          KindSearch,
			Entities:      matches,
			Query:         in.Query,
			MatchCount:    len(matches),
			Refreshing:    in.PageState.Loading(),
			CatalogNotice: notice,
		}
	}

	return View{
		Kind:           KindPaginated,
		Entities:       in.Page,
		CurrentPage:    in.CurrentPage,
		TotalPages:     in.TotalPages,
		ShowPagination: in.TotalPages > 1,
		HasPrev:        in.CurrentPage > 1,
		HasNext:        in.TotalPages > 0 && in.CurrentPage < in.TotalPages,
		Refreshing:     in.PageState.Loading(),
		CatalogNotice:  notice,
	}
}

// latestFailure picks the failure to show. A failed page always shows; a
// failed catalog shows only until the page loader moves on, so neither loader
// hides the other's newer outcome.
func latestFailure(catalogState, pageState catalog.LoadState) (catalog.LoadState, bool) {
	switch {
	case pageState.Failed() && catalogState.Failed():
		if catalogState.Seq > pageState.Seq {
			return catalogState, true
		}
		return pageState, true
	case pageState.Failed():
		return pageState, true
	case catalogState.Failed() && catalogState.Seq > pageState.Seq:
		return catalogState, true
	default:
		return catalog.LoadState{}, false
	}
}

// Filter returns the entities whose name contains query, ignoring case.
func Filter(entities []pokeapi.Pokemon, query string) []pokeapi.Pokemon {
	needle := strings.ToLower(query)
	matches := make([]pokeapi.Pokemon, 0)
	for _, e := range entities {
		if strings.Contains(strings.ToLower(e.Name), needle) {
			matches = append(matches, e)
		}
	}
	return matches
}

// Summary is the search result headline.
func (v View) Summary() string {
	return fmt.Sprintf("Found %d Pokémon matching %q", v.MatchCount, v.Query)
}

// Empty reports a search with no matches.
func (v View) Empty() bool {
	return v.Kind == KindSearch && v.MatchCount == 0
}

// EmptyMessage is the headline shown for a search with no matches.
func (v View) EmptyMessage() string {
	return fmt.Sprintf("No Pokémon found matching %q", v.Query)
}

// EmptyHint follows EmptyMessage.
const EmptyHint = "Try searching for a different Pokémon name"

// PageIndicator renders "Page X of Y".
func (v View) PageIndicator() string {
	return fmt.Sprintf("Page %d of %d", v.CurrentPage, v.TotalPages)
}
