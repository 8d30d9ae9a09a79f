package usecase

import (
	"strings"

	"github.com/opty-app/opty-search/internal/models"
)

// usedConditionMarkers are the substrings that mark an offer as used.
var usedConditionMarkers = []string{"usado", "seminovo", "recondicionado"}

// ApplyFilters derives the visible product set from the canonical one.
// Products keep only the offers that pass every criterion; a product left
// with no offers is dropped entirely. The input is never mutated.
func ApplyFilters(products []models.Product, spec models.FilterSpec) []models.Product {
	filtered := make([]models.Product, 0, len(products))

	for _, product := range products {
		offers := make([]models.Offer, 0, len(product.Offers))
		for _, offer := range product.Offers {
			if offerPasses(offer, spec) {
				offers = append(offers, offer)
			}
		}
		if len(offers) == 0 {
			continue
		}

		filtered = append(filtered, models.Product{
			Name:   product.Name,
			Image:  product.Image,
			Offers: offers,
		})
	}

	return filtered
}

func offerPasses(offer models.Offer, spec models.FilterSpec) bool {
	if offer.Price < spec.PriceMin || offer.Price > spec.PriceMax {
		return false
	}
	return matchesCondition(offer.Condition, spec.Condition)
}

// matchesCondition does substring matching on the lowercased announced
// condition. "Seminovo" contains "novo", so it matches the new filter as
// well as the used one.
func matchesCondition(announced string, want models.Condition) bool {
	switch want {
	case models.ConditionNew:
		return strings.Contains(strings.ToLower(announced), "novo")
	case models.ConditionUsed:
		lowered := strings.ToLower(announced)
		for _, marker := range usedConditionMarkers {
			if strings.Contains(lowered, marker) {
				return true
			}
		}
		return false
	default:
		return true
	}
}
