package models

// RawListing is one listing exactly as a marketplace source returned it.
// The source owns this shape; the pipeline reads it once during
// normalization and never keeps a reference to it.
type RawListing struct {
	Title  string  `json:"title"`
	Price  string  `json:"price"` // locale-formatted text, e.g. "R$ 1.549,65"
	Link   string  `json:"link"`
	Image  *string `json:"image,omitempty"`
	Source string  `json:"source"`
}

// Offer is one purchasable listing for a product at one store.
type Offer struct {
	Store     string  `json:"store"`
	Price     float64 `json:"price"`
	Condition string  `json:"condition"`
	Shipping  string  `json:"shipping"`
	Link      string  `json:"link"`
}

// Product groups the offers found for a single product. Offers is
// non-empty at creation time; the filter pipeline may derive copies with
// fewer offers but drops any product left with none.
type Product struct {
	Name   string  `json:"name"`
	Image  *string `json:"image,omitempty"`
	Offers []Offer `json:"offers"`
}

// MinOfferPrice returns the lowest price among the product's offers,
// or 0 when the product has no offers.
func (p Product) MinOfferPrice() float64 {
	if len(p.Offers) == 0 {
		return 0
	}
	min := p.Offers[0].Price
	for _, o := range p.Offers[1:] {
		if o.Price < min {
			min = o.Price
		}
	}
	return min
}
