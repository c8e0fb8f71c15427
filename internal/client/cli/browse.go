package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/akulinin/campusmarket/internal/client/api"
)

// Home refreshes the catalog and shows the landing view: a handful of
// featured (most viewed) ads followed by the most recent ones.
func (a *App) Home(ctx context.Context) error {
	if err := a.catalog.FetchAds(ctx); err != nil {
		printlnFn("Could not load ads. Is the server running?")
		return err
	}

	printlnFn("— Featured —")
	printAdList(a.catalog.Featured(4))

	printlnFn("— Recently added —")
	printAdList(a.catalog.Recent(8))
	return nil
}

// List refreshes and prints the full catalog.
func (a *App) List(ctx context.Context) error {
	if err := a.catalog.FetchAds(ctx); err != nil {
		printlnFn("Could not load ads. Is the server running?")
		return err
	}
	printAdList(a.catalog.Ads())
	return nil
}

// Categories refreshes and prints the category list.
func (a *App) Categories(ctx context.Context) error {
	if err := a.catalog.FetchCategories(ctx); err != nil {
		printlnFn("Could not load categories.")
		return err
	}
	for _, c := range a.catalog.Categories() {
		printlnFn(fmt.Sprintf("%s  %s %s — %s", c.ID, c.Icon, c.Name, c.Description))
	}
	return nil
}

// Show fetches and displays a single ad by ID and registers a view.
// The view bump is fire-and-forget; the seller gets an ownership hint.
func (a *App) Show(ctx context.Context, id string) error {
	ad, err := a.catalog.FetchAdByID(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			printlnFn("Ad not found.")
		} else {
			printlnFn("Could not load the ad.")
		}
		return err
	}

	printAdDetails(ad)
	a.catalog.IncrementViews(ctx, id)

	if u := a.session.Current(); u != nil && ad.OwnedBy(u.ID) {
		printlnFn(fmt.Sprintf("This is your ad. You can 'edit %s', 'sold %s' or 'delete %s'.", id, id, id))
	}
	return nil
}

// My lists the logged-in user's own ads, sold ones included.
func (a *App) My(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}
	printAdList(a.catalog.AdsByUser(ctx, a.session.Current().ID))
	return nil
}
