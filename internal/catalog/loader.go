package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/pokebrowse/internal/logger"
	"github.com/alexisbeaulieu97/pokebrowse/internal/pokeapi"
)

const (
	// PageSize is the number of entities shown per page.
	PageSize = 20
	// CatalogCeiling is how many entities the search catalog holds.
	CatalogCeiling = 124
)

// ErrPageOutOfRange is returned for page indexes below 1.
var ErrPageOutOfRange = errors.New("page out of range")

// Fetcher is the external API the loader expands index lists through.
type Fetcher interface {
	List(ctx context.Context, limit, offset int) ([]pokeapi.IndexEntry, error)
	Detail(ctx context.Context, url string) (pokeapi.Pokemon, error)
}

// ProgressFunc observes detail fetches completing. It is called from the
// fetching goroutines and must be safe for concurrent use.
type ProgressFunc func(done, total int)

// Loader fetches index lists and expands each entry into its detail record.
type Loader struct {
	fetcher  Fetcher
	log      *logger.Logger
	progress ProgressFunc
}

// LoaderOption customises a Loader.
type LoaderOption func(*Loader)

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) LoaderOption {
	return func(l *Loader) {
		l.log = log
	}
}

// WithProgress registers a progress observer for detail fetches.
func WithProgress(fn ProgressFunc) LoaderOption {
	return func(l *Loader) {
		l.progress = fn
	}
}

// NewLoader creates a Loader over fetcher.
func NewLoader(fetcher Fetcher, opts ...LoaderOption) *Loader {
	l := &Loader{fetcher: fetcher}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// TotalPages is ceil(count/size).
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// FetchCatalog loads the first CatalogCeiling entities with their details.
func (l *Loader) FetchCatalog(ctx context.Context) ([]pokeapi.Pokemon, error) {
	entries, err := l.fetcher.List(ctx, CatalogCeiling, 0)
	if err != nil {
		l.log.Warn(err, "catalog index fetch failed")
		return nil, fmt.Errorf("fetch catalog index: %w", err)
	}

	entities, err := l.expand(ctx, entries)
	if err != nil {
		l.log.Warn(err, "catalog detail fetch failed")
		return nil, fmt.Errorf("fetch catalog details: %w", err)
	}

	l.log.WithFields(map[string]any{"count": len(entities)}).Info("catalog loaded")
	return entities, nil
}

// FetchPage loads the 1-based page with its details.
func (l *Loader) FetchPage(ctx context.Context, page int) ([]pokeapi.Pokemon, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}

	offset := (page - 1) * PageSize
	log := l.log.WithFields(map[string]any{"page": page, "offset": offset})

	entries, err := l.fetcher.List(ctx, PageSize, offset)
	if err != nil {
		log.Warn(err, "page index fetch failed")
		return nil, fmt.Errorf("fetch page %d index: %w", page, err)
	}

	entities, err := l.expand(ctx, entries)
	if err != nil {
		log.Warn(err, "page detail fetch failed")
		return nil, fmt.Errorf("fetch page %d details: %w", page, err)
	}

	log.Debug("page loaded")
	return entities, nil
}

// expand fetches every entry's detail in parallel. The result is ordered like
// entries regardless of completion order. The first failure is returned
// immediately; fetches still in flight finish on their own and are dropped.
func (l *Loader) expand(ctx context.Context, entries []pokeapi.IndexEntry) ([]pokeapi.Pokemon, error) {
	results := make([]pokeapi.Pokemon, len(entries))
	if len(entries) == 0 {
		return results, nil
	}

	failed := make(chan error, 1)
	var completed atomic.Int64
	var g errgroup.Group

	for i, entry := range entries {
		g.Go(func() error {
			p, err := l.fetcher.Detail(ctx, entry.URL)
			if err != nil {
				select {
				case failed <- fmt.Errorf("%s: %w", entry.Name, err):
				default:
				}
				return err
			}
			results[i] = p
			if l.progress != nil {
				l.progress(int(completed.Add(1)), len(entries))
			}
			return nil
		})
	}

	waited := make(chan error, 1)
	go func() { waited <- g.Wait() }()

	select {
	case err := <-failed:
		return nil, err
	case err := <-waited:
		if err != nil {
			return nil, err
		}
		return results, nil
	}
}
