package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/akulinin/campusmarket/internal/client/search"
)

// Search prompts for search criteria, runs the pipeline and prints the
// results. Criteria persist between invocations so the user can refine
// them step by step; when nothing matches, the filters are reset and the
// unfiltered catalog is shown instead.
func (a *App) Search(ctx context.Context) error {
	if err := a.promptCriteria(); err != nil {
		printlnFn(err.Error())
		return err
	}

	ads, err := search.Run(ctx, a.catalog, a.criteria)
	if err != nil {
		printlnFn("Search failed. Is the server running?")
		return err
	}

	if len(ads) == 0 {
		printlnFn("No ads matched your filters. Showing everything instead.")
		a.criteria = search.DefaultCriteria()
		ads, err = search.Run(ctx, a.catalog, a.criteria)
		if err != nil {
			return err
		}
	}

	printAdList(ads)
	return nil
}

// promptCriteria edits the stored criteria in place. Empty answers keep
// the sentinel ("all"/"any") or unset value.
func (a *App) promptCriteria() error {
	query, err := getSimpleText(a.reader, "Keyword (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	category, err := getSimpleText(a.reader, "Category id (empty for all)", os.Stdout)
	if err != nil {
		return err
	}

	condition, err := getSimpleText(a.reader, "Condition (New/Like New/Excellent/Good/Fair/Poor, empty for any)", os.Stdout)
	if err != nil {
		return err
	}

	minPrice, err := GetOptionalPrice(a.reader, "Min price (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	maxPrice, err := GetOptionalPrice(a.reader, "Max price (empty for none)", os.Stdout)
	if err != nil {
		return err
	}

	sortKey, err := getSimpleText(a.reader, fmt.Sprintf("Sort (%v, empty for newest)", search.SortKeys()), os.Stdout)
	if err != nil {
		return err
	}

	c := search.DefaultCriteria()
	c.Query = query
	if category != "" {
		c.Category = category
	}
	if condition != "" {
		c.Condition = condition
	}
	c.MinPrice = minPrice
	c.MaxPrice = maxPrice
	if sortKey != "" {
		c.Sort = search.SortKey(sortKey)
	}

	a.criteria = c
	return nil
}
