package sources

import (
	"context"

	"github.com/opty-app/opty-search/internal/models"
)

// Source is implemented by each marketplace adapter. Search fetches the
// raw listings for a query and normalizes them into canonical products,
// so adding a marketplace means registering one more adapter instead of
// branching inside the pipeline.
type Source interface {
	// ID is the registry identifier, e.g. "mercadolivre".
	ID() string
	// DisplayName is the store name shown on offers, e.g. "Mercado Livre".
	DisplayName() string
	Search(ctx context.Context, query string) ([]models.Product, error)
}
