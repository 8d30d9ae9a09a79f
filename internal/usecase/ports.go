package usecase

import (
	"context"

	"github.com/opty-app/opty-search/internal/models"
)

// Notifier publishes transient user-facing notifications, such as the
// failure toast emitted when a search breaks.
type Notifier interface {
	Notify(ctx context.Context, notification models.Notification) error
}

// SearchHistory records completed searches. Implementations are
// best-effort; a failed write never fails the search.
type SearchHistory interface {
	Record(ctx context.Context, record models.SearchRecord) error
}

// QueryNormalizer rewrites a free-form query into cleaner search terms
// before it reaches the marketplace. Implementations fall back to the
// original query on any failure.
type QueryNormalizer interface {
	Normalize(ctx context.Context, query string) (string, error)
}
