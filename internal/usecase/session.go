package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/opty-app/opty-search/internal/models"
	"github.com/opty-app/opty-search/internal/repo/sources"
)

const (
	failurePrefix     = "Falha na busca. Detalhe: "
	unknownFailure    = "Erro desconhecido ao comunicar com o servidor."
	notificationTitle = "Erro de Busca"
)

// Session is one user's search lifecycle: it owns the canonical product
// set, the fetch state and the active filter and sort criteria. Fetches
// run asynchronously; each SetQuery supersedes any fetch still in flight,
// and a superseded response is discarded when it lands.
type Session struct {
	source   sources.Source
	notifier Notifier

	mu         sync.Mutex
	generation uint64
	inflight   sync.WaitGroup

	state     models.SearchState
	query     string
	errMsg    string
	canonical []models.Product
	filters   models.FilterSpec
	sortKey   models.SortKey
}

func NewSession(source sources.Source, notifier Notifier) *Session {
	return &Session{
		source:   source,
		notifier: notifier,
		state:    models.StateIdle,
		filters:  models.DefaultFilterSpec(),
		sortKey:  models.SortLowestPrice,
	}
}

// SetQuery starts an asynchronous fetch for query. A blank query is
// ignored and the session keeps whatever it currently shows.
func (s *Session) SetQuery(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.state = models.StateLoading
	s.query = query
	s.errMsg = ""
	s.mu.Unlock()

	s.inflight.Add(1)
	go func() {
		defer s.inflight.Done()

		products, err := s.source.Search(ctx, query)
		if err != nil {
			s.applyFailure(ctx, generation, err)
			return
		}
		s.applySuccess(ctx, generation, products)
	}()
}

func (s *Session) applySuccess(ctx context.Context, generation uint64, products []models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if generation != s.generation {
		log.Debugw(ctx, "discarding superseded search response",
			"generation", generation, "current", s.generation)
		return
	}

	s.state = models.StateSuccess
	s.errMsg = ""
	s.canonical = products
}

func (s *Session) applyFailure(ctx context.Context, generation uint64, err error) {
	s.mu.Lock()
	if generation != s.generation {
		s.mu.Unlock()
		log.Debugw(ctx, "discarding superseded search failure",
			"generation", generation, "current", s.generation)
		return
	}

	detail := unknownFailure
	var searchErr *models.SearchError
	if errors.As(err, &searchErr) && searchErr.Detail != "" {
		detail = searchErr.Detail
	}

	s.state = models.StateError
	s.errMsg = failurePrefix + detail
	message := s.errMsg
	s.mu.Unlock()

	log.Errorw(ctx, "search failed", "error", err)

	if notifyErr := s.notifier.Notify(ctx, models.Notification{
		Title:       notificationTitle,
		Description: message,
		Severity:    models.SeverityError,
		CreatedAt:   time.Now().UTC(),
	}); notifyErr != nil {
		log.Warnw(ctx, "failed to publish search notification", "error", notifyErr)
	}
}

// SetFilters replaces the active filter criteria.
func (s *Session) SetFilters(filters models.FilterSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// ClearFilters restores the default filter criteria.
func (s *Session) ClearFilters() {
	s.SetFilters(models.DefaultFilterSpec())
}

// SetSort replaces the active sort key.
func (s *Session) SetSort(key models.SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sortKey = key
}

// Wait blocks until every fetch started so far has been applied or
// discarded, or until ctx is done.
func (s *Session) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns the current view of the session. The visible product
// set is recomputed from the canonical one on every call, so filter and
// sort changes take effect without refetching.
func (s *Session) Snapshot() models.SearchView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return models.SearchView{
		State:    s.state,
		Query:    s.query,
		Error:    s.errMsg,
		Products: SortProducts(ApplyFilters(s.canonical, s.filters), s.sortKey),
	}
}
