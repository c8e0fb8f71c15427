// Package search implements the deterministic filter/sort pipeline applied
// on top of server-prefiltered ad lists.
//
// Keyword and category narrowing happen server-side; condition, price
// range and ordering are reapplied client-side on every criteria change.
package search

import (
	"context"
	"sort"

	"github.com/akulinin/campusmarket/internal/client/models"
)

// Sentinel criterion values meaning "no constraint".
const (
	CategoryAll  = "all"
	ConditionAny = "any"
)

// SortKey selects the ordering of results.
type SortKey string

const (
	SortNewest    SortKey = "newest"
	SortOldest    SortKey = "oldest"
	SortPriceLow  SortKey = "price-low"
	SortPriceHigh SortKey = "price-high"
	SortPopular   SortKey = "popular"
)

// SortKeys lists the valid sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortNewest, SortOldest, SortPriceLow, SortPriceHigh, SortPopular}
}

// Criteria is the ephemeral search state. Nil price bounds impose no
// constraint; Category/Condition sentinels are CategoryAll/ConditionAny.
type Criteria struct {
	Query     string
	Category  string
	Condition string
	MinPrice  *float64
	MaxPrice  *float64
	Sort      SortKey
}

// DefaultCriteria is the reset state: everything unconstrained,
// newest first.
func DefaultCriteria() Criteria {
	return Criteria{
		Category:  CategoryAll,
		Condition: ConditionAny,
		Sort:      SortNewest,
	}
}

// Searcher is the server-side stage: keyword/category prefiltering.
// *catalog.Store satisfies it.
type Searcher interface {
	SearchAds(ctx context.Context, query, category string) ([]models.Ad, error)
}

// Run executes the full pipeline: a fresh server round-trip for the
// query/category stage, then the client-side condition, price-range and
// sort stages. It must be re-run from the top whenever any criterion
// changes.
func Run(ctx context.Context, s Searcher, c Criteria) ([]models.Ad, error) {
	category := c.Category
	if category == CategoryAll {
		category = ""
	}

	ads, err := s.SearchAds(ctx, c.Query, category)
	if err != nil {
		return nil, err
	}

	ads = FilterCondition(ads, c.Condition)
	ads = FilterPriceRange(ads, c.MinPrice, c.MaxPrice)
	SortAds(ads, c.Sort)
	return ads, nil
}

// FilterCondition keeps ads whose condition equals cond exactly.
// The ConditionAny sentinel (or empty selection) returns the input
// unchanged.
func FilterCondition(ads []models.Ad, cond string) []models.Ad {
	if cond == "" || cond == ConditionAny {
		return ads
	}

	out := ads[:0]
	for _, ad := range ads {
		if string(ad.Condition) == cond {
			out = append(out, ad)
		}
	}
	return out
}

// FilterPriceRange keeps ads with min ≤ price ≤ max. Nil bounds impose
// no constraint.
func FilterPriceRange(ads []models.Ad, min, max *float64) []models.Ad {
	if min == nil && max == nil {
		return ads
	}

	out := ads[:0]
	for _, ad := range ads {
		if min != nil && ad.Price < *min {
			continue
		}
		if max != nil && ad.Price > *max {
			continue
		}
		out = append(out, ad)
	}
	return out
}

// SortAds orders ads in place by the given key. The sort is stable, so
// ties retain their relative input order. Unknown keys fall back to
// newest-first, the default ordering.
func SortAds(ads []models.Ad, key SortKey) {
	var less func(i, j int) bool

	switch key {
	case SortOldest:
		less = func(i, j int) bool { return ads[i].DatePosted.Before(ads[j].DatePosted) }
	case SortPriceLow:
		less = func(i, j int) bool { return ads[i].Price < ads[j].Price }
	case SortPriceHigh:
		less = func(i, j int) bool { return ads[i].Price > ads[j].Price }
	case SortPopular:
		less = func(i, j int) bool { return ads[i].Views > ads[j].Views }
	default: // SortNewest
		less = func(i, j int) bool { return ads[i].DatePosted.After(ads[j].DatePosted) }
	}

	sort.SliceStable(ads, less)
}
