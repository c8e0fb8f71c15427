package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/akulinin/campusmarket/internal/client/models"
	"github.com/akulinin/campusmarket/internal/common"
)

// ownedAd fetches the ad and enforces the seller-only guard shared by
// edit, sold and delete. The server enforces the same rule; the client
// check just gives a friendlier message.
func (a *App) ownedAd(ctx context.Context, id string) (*models.Ad, error) {
	if err := a.requireLogin(); err != nil {
		return nil, err
	}

	ad, err := a.catalog.FetchAdByID(ctx, id)
	if err != nil {
		printlnFn("Could not load the ad.")
		return nil, err
	}

	if !ad.OwnedBy(a.session.Current().ID) {
		printlnFn("You can only manage your own ads.")
		return nil, common.ErrNotOwner
	}
	return ad, nil
}

// Edit prompts for new field values (empty keeps the current one) and
// sends a partial update containing only the changed fields.
func (a *App) Edit(ctx context.Context, id string) error {
	ad, err := a.ownedAd(ctx, id)
	if err != nil {
		return err
	}

	printlnFn(fmt.Sprintf("Editing %q. Press Enter to keep a field.", ad.Title))

	patch, err := a.promptPatch(ad)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if patch.Empty() {
		printlnFn("Nothing to change.")
		return nil
	}

	if _, err := a.catalog.UpdateAd(ctx, id, *patch); err != nil {
		printlnFn("Could not update the ad.")
		return err
	}
	printlnFn("Ad updated.")
	return nil
}

func (a *App) promptPatch(ad *models.Ad) (*models.AdPatch, error) {
	patch := &models.AdPatch{}

	title, err := getSimpleText(a.reader, fmt.Sprintf("Title [%s]", ad.Title), os.Stdout)
	if err != nil {
		return nil, err
	}
	if title != "" {
		patch.Title = &title
	}

	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return nil, err
	}
	if description != "" {
		patch.Description = &description
	}

	priceText, err := getSimpleText(a.reader, fmt.Sprintf("Price [%.2f]", ad.Price), os.Stdout)
	if err != nil {
		return nil, err
	}
	if priceText != "" {
		price, err := strconv.ParseFloat(priceText, 64)
		if err != nil || price <= 0 {
			return nil, fmt.Errorf("invalid price %q", priceText)
		}
		patch.Price = &price
	}

	condText, err := getSimpleText(a.reader, fmt.Sprintf("Condition [%s]", ad.Condition), os.Stdout)
	if err != nil {
		return nil, err
	}
	if condText != "" {
		cond := models.Condition(condText)
		if !cond.Valid() {
			return nil, fmt.Errorf("unknown condition %q", condText)
		}
		patch.Condition = &cond
	}

	location, err := getSimpleText(a.reader, fmt.Sprintf("Location [%s]", ad.Location), os.Stdout)
	if err != nil {
		return nil, err
	}
	if location != "" {
		patch.Location = &location
	}

	return patch, nil
}

// MarkSold flips an owned ad's status to sold.
func (a *App) MarkSold(ctx context.Context, id string) error {
	if _, err := a.ownedAd(ctx, id); err != nil {
		return err
	}

	status := models.StatusSold
	if _, err := a.catalog.UpdateAd(ctx, id, models.AdPatch{Status: &status}); err != nil {
		printlnFn("Could not update the ad.")
		return err
	}
	printlnFn("Marked as sold.")
	return nil
}

// Delete removes an owned ad after a confirmation prompt.
func (a *App) Delete(ctx context.Context, id string) error {
	ad, err := a.ownedAd(ctx, id)
	if err != nil {
		return err
	}

	answer, err := getSimpleText(a.reader, fmt.Sprintf("Delete %q? (y/N)", ad.Title), os.Stdout)
	if err != nil {
		return err
	}
	if !strings.EqualFold(answer, "y") {
		printlnFn("Cancelled.")
		return nil
	}

	if err := a.catalog.DeleteAd(ctx, id); err != nil {
		printlnFn("Could not delete the ad.")
		return err
	}
	printlnFn("Ad deleted.")
	return nil
}
