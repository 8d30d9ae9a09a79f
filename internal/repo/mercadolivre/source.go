package mercadolivre

import (
	"context"

	"github.com/opty-app/opty-search/internal/currency"
	"github.com/opty-app/opty-search/internal/models"
	"github.com/opty-app/opty-search/internal/repo/sources"
	"github.com/opty-app/opty-search/pkg/util"
)

const (
	SourceID    = "mercadolivre"
	displayName = "Mercado Livre"

	defaultCondition = "Novo"
	defaultShipping  = "Grátis"
)

// source adapts the listing client to the source registry: it fetches raw
// listings and normalizes each one into a single-offer product.
type source struct {
	client Client
}

func NewSource(client Client) sources.Source {
	return &source{client: client}
}

func (s *source) ID() string          { return SourceID }
func (s *source) DisplayName() string { return displayName }

func (s *source) Search(ctx context.Context, query string) ([]models.Product, error) {
	listings, err := s.client.SearchListings(ctx, query)
	if err != nil {
		return nil, err
	}

	return util.ConvertList(listings, normalize), nil
}

// normalize maps one raw listing to a product with one offer. Listing pages
// do not expose condition or shipping per card, so both carry defaults.
func normalize(listing models.RawListing) models.Product {
	return models.Product{
		Name:  listing.Title,
		Image: listing.Image,
		Offers: []models.Offer{
			{
				Store:     displayName,
				Price:     currency.ParseBRL(listing.Price),
				Condition: defaultCondition,
				Shipping:  defaultShipping,
				Link:      listing.Link,
			},
		},
	}
}
