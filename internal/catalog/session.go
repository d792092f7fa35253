package catalog

import (
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

// Token identifies one load request. Results carrying an older token than the
// loader's latest are stale and get dropped.
type Token uint64

// Session holds the browser's in-memory catalog, page and per-loader state.
// It is not safe for concurrent use: every call must come from the event
// loop, with fetches running elsewhere and reporting back through Finish*.
type Session struct {
	catalog      []pokeapi.Pokemon
	catalogState LoadState
	catalogGen   Token

	page          []pokeapi.Pokemon
	pageState     LoadState
	pageGen       Token
	pageLoaded    bool
	currentPage   int
	requestedPage int

	totalPages int
	seq        uint64
}

// NewSession returns an empty session positioned on page 1.
func NewSession() *Session {
	return &Session{currentPage: 1, requestedPage: 1}
}

func (s *Session) next() uint64 {
	s.seq++
	return s.seq
}

// BeginCatalog starts a catalog load. It refuses once the catalog is loaded
// and while a catalog load is already in flight.
func (s *Session) BeginCatalog() (Token, bool) {
	if s.catalogState.Ready() || s.catalogState.Loading() {
		return 0, false
	}
	s.catalogGen++
	s.catalogState = LoadState{Status: StatusLoading, Seq: s.next()}
	return s.catalogGen, true
}

// FinishCatalog commits a catalog result. It returns false when token is
// stale. A failure keeps any previous catalog.
func (s *Session) FinishCatalog(token Token, entities []pokeapi.Pokemon, err error) bool {
	if token != s.catalogGen {
		return false
	}
	if err != nil {
		s.catalogState = LoadState{Status: StatusFailed, Message: err.Error(), Seq: s.next()}
		return true
	}

	s.catalog = entities
	s.catalogState = LoadState{Status: StatusReady, Seq: s.next()}
	s.totalPages = TotalPages(CatalogCeiling, PageSize)
	return true
}

// BeginPage starts loading page. Out-of-range pages are rejected without any
// state change; the upper bound applies once TotalPages is known. A new
// request supersedes one still in flight.
func (s *Session) BeginPage(page int) (Token, bool) {
	if page < 1 || (s.totalPages > 0 && page > s.totalPages) {
		return 0, false
	}
	s.pageGen++
	s.requestedPage = page
	s.pageState = LoadState{Status: StatusLoading, Seq: s.next()}
	return s.pageGen, true
}

// FinishPage commits a page result. It returns false when token is stale. A
// failure keeps the previous page and page number so a retry can re-show it.
func (s *Session) FinishPage(token Token, entities []pokeapi.Pokemon, err error) bool {
	if token != s.pageGen {
		return false
	}
	if err != nil {
		s.pageState = LoadState{Status: StatusFailed, Message: err.Error(), Seq: s.next()}
		return true
	}

	s.page = entities
	s.pageLoaded = true
	s.currentPage = s.requestedPage
	s.pageState = LoadState{Status: StatusReady, Seq: s.next()}
	return true
}

// Retry reloads the current page. The catalog is not retried.
func (s *Session) Retry() (int, Token, bool) {
	page := s.currentPage
	token, ok := s.BeginPage(page)
	return page, token, ok
}

// ResetToFirstPage moves back to page 1, loading it unless page 1 is already
// shown or already being fetched.
func (s *Session) ResetToFirstPage() (Token, bool) {
	if s.pageState.Loading() {
		if s.requestedPage == 1 {
			return 0, false
		}
	} else if s.currentPage == 1 {
		return 0, false
	}
	return s.BeginPage(1)
}

// Catalog returns the loaded catalog; empty until the first success.
func (s *Session) Catalog() []pokeapi.Pokemon { return s.catalog }

// Page returns the entities of the last successfully loaded page.
func (s *Session) Page() []pokeapi.Pokemon { return s.page }

// CatalogState returns the catalog loader's state.
func (s *Session) CatalogState() LoadState { return s.catalogState }

// PageState returns the page loader's state.
func (s *Session) PageState() LoadState { return s.pageState }

// PageLoaded reports whether any page load has ever succeeded.
func (s *Session) PageLoaded() bool { return s.pageLoaded }

// CurrentPage is the page number of the data in Page.
func (s *Session) CurrentPage() int { return s.currentPage }

// RequestedPage is the page number of the latest page request.
func (s *Session) RequestedPage() int { return s.requestedPage }

// TotalPages is zero until the catalog has loaded.
func (s *Session) TotalPages() int { return s.totalPages }
