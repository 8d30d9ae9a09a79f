package models

// Condition narrows offers by the announced condition of the item.
type Condition string

const (
	ConditionAll  Condition = "all"
	ConditionNew  Condition = "new"
	ConditionUsed Condition = "used"
)

func (c Condition) Valid() bool {
	switch c {
	case ConditionAll, ConditionNew, ConditionUsed:
		return true
	}
	return false
}

// SortKey selects the ordering of the filtered products.
type SortKey string

const (
	SortLowestPrice  SortKey = "lowest-price"
	SortHighestPrice SortKey = "highest-price"
	SortBestRating   SortKey = "best-rating"
	SortMostSold     SortKey = "most-sold"
	SortAlphabetical SortKey = "alphabetical"
)

func (k SortKey) Valid() bool {
	switch k {
	case SortLowestPrice, SortHighestPrice, SortBestRating, SortMostSold, SortAlphabetical:
		return true
	}
	return false
}

// FilterSpec is the set of active filter criteria. Stores is collected
// from the client for upcoming multi-marketplace filtering but is not
// applied yet; only one marketplace is wired up today.
type FilterSpec struct {
	PriceMin  float64   `json:"price_min"`
	PriceMax  float64   `json:"price_max"`
	Stores    []string  `json:"stores"`
	Condition Condition `json:"condition"`
}

const defaultPriceMax = 10000

// DefaultFilterSpec returns the canonical "cleared" filter value.
func DefaultFilterSpec() FilterSpec {
	return FilterSpec{
		PriceMin:  0,
		PriceMax:  defaultPriceMax,
		Stores:    nil,
		Condition: ConditionAll,
	}
}
