package usecase

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/opty-app/opty-search/internal/models"
)

// SortProducts returns a sorted copy of products. Ordering is stable so
// that ties keep their relative source order. Rating and sales volume are
// not exposed by the listing pages yet, so best-rating and most-sold are
// accepted but leave the order untouched.
func SortProducts(products []models.Product, key models.SortKey) []models.Product {
	sorted := make([]models.Product, len(products))
	copy(sorted, products)

	switch key {
	case models.SortLowestPrice:
		sortByMinPrice(sorted)
	case models.SortHighestPrice:
		sortByMinPrice(sorted)
		reverse(sorted)
	case models.SortAlphabetical:
		c := collate.New(language.BrazilianPortuguese)
		sort.SliceStable(sorted, func(i, j int) bool {
			return c.CompareString(sorted[i].Name, sorted[j].Name) < 0
		})
	}

	return sorted
}

func sortByMinPrice(products []models.Product) {
	sort.SliceStable(products, func(i, j int) bool {
		return products[i].MinOfferPrice() < products[j].MinOfferPrice()
	})
}

func reverse(products []models.Product) {
	for i, j := 0, len(products)-1; i < j; i, j = i+1, j-1 {
		products[i], products[j] = products[j], products[i]
	}
}
