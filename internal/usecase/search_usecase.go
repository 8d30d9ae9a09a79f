package usecase

import (
	"context"
	"time"

	log "github.com/carousell/ct-go/pkg/logger/log_context"

	"github.com/opty-app/opty-search/internal/models"
	"github.com/opty-app/opty-search/internal/repo/sources"
)

// SearchRequest is one search to run end to end.
type SearchRequest struct {
	Query     string
	Source    string
	Filters   models.FilterSpec
	Sort      models.SortKey
	Normalize bool
}

// SearchUsecase runs a whole search lifecycle in one call: resolve the
// source, optionally normalize the query, fetch, then filter and sort.
type SearchUsecase interface {
	Search(ctx context.Context, req SearchRequest) (models.SearchView, error)
	NewSession(source string) (*Session, error)
}

type searchUsecase struct {
	registry   *sources.Registry
	notifier   Notifier
	history    SearchHistory
	normalizer QueryNormalizer
}

func NewSearchUsecase(
	registry *sources.Registry,
	notifier Notifier,
	history SearchHistory,
	normalizer QueryNormalizer,
) SearchUsecase {
	return &searchUsecase{
		registry:   registry,
		notifier:   notifier,
		history:    history,
		normalizer: normalizer,
	}
}

func (u *searchUsecase) NewSession(source string) (*Session, error) {
	src, err := u.registry.Get(source)
	if err != nil {
		return nil, err
	}
	return NewSession(src, u.notifier), nil
}

func (u *searchUsecase) Search(ctx context.Context, req SearchRequest) (models.SearchView, error) {
	session, err := u.NewSession(req.Source)
	if err != nil {
		return models.SearchView{}, err
	}

	query := req.Query
	if req.Normalize {
		normalized, err := u.normalizer.Normalize(ctx, query)
		if err != nil {
			log.Warnw(ctx, "query normalization failed, using raw query", "error", err)
		} else {
			query = normalized
		}
	}

	session.SetFilters(req.Filters)
	session.SetSort(req.Sort)

	started := time.Now()
	session.SetQuery(ctx, query)
	if err := session.Wait(ctx); err != nil {
		return models.SearchView{}, err
	}

	view := session.Snapshot()
	if view.State == models.StateSuccess {
		u.recordHistory(ctx, req.Source, query, len(view.Products), time.Since(started))
	}
	return view, nil
}

func (u *searchUsecase) recordHistory(ctx context.Context, source, query string, results int, took time.Duration) {
	record := models.SearchRecord{
		Query:       query,
		Source:      source,
		ResultCount: results,
		DurationMs:  took.Milliseconds(),
		CreatedAt:   time.Now().UTC(),
	}
	if err := u.history.Record(ctx, record); err != nil {
		log.Warnw(ctx, "failed to record search history", "error", err)
	}
}
