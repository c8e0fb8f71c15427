package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/akulinin/campusmarket/internal/client/api"
	"github.com/akulinin/campusmarket/internal/client/models"
	"github.com/akulinin/campusmarket/internal/common"
)

// Post collects the new-ad form and image paths, validates everything
// locally and submits the multipart create request.
func (a *App) Post(ctx context.Context) error {
	if err := a.requireLogin(); err != nil {
		return err
	}

	ad, err := a.promptNewAd()
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	created, err := a.catalog.AddAd(ctx, *ad)
	if err != nil {
		a.explainPostError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Ad posted: %s", created.ID))
	return nil
}

func (a *App) promptNewAd() (*models.NewAd, error) {
	title, err := getSimpleText(a.reader, "Title", os.Stdout)
	if err != nil {
		return nil, err
	}
	description, err := getSimpleText(a.reader, "Description", os.Stdout)
	if err != nil {
		return nil, err
	}

	priceText, err := getSimpleText(a.reader, "Price", os.Stdout)
	if err != nil {
		return nil, err
	}
	price, err := strconv.ParseFloat(priceText, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", priceText)
	}

	category, err := getSimpleText(a.reader, "Category id (see 'categories')", os.Stdout)
	if err != nil {
		return nil, err
	}
	condition, err := getSimpleText(a.reader, fmt.Sprintf("Condition (%v)", models.Conditions()), os.Stdout)
	if err != nil {
		return nil, err
	}
	location, err := getSimpleText(a.reader, "Location", os.Stdout)
	if err != nil {
		return nil, err
	}

	paths, err := GetLines(a.reader, fmt.Sprintf("Image paths, up to %d", a.config.MaxImages), os.Stdout)
	if err != nil {
		return nil, err
	}

	ad := &models.NewAd{
		Title:       title,
		Description: description,
		Price:       price,
		CategoryID:  category,
		Condition:   models.Condition(condition),
		Location:    location,
		ImagePaths:  paths,
	}
	if u := a.session.Current(); u != nil {
		ad.College = u.College
	}
	return ad, nil
}

// explainPostError turns structured upload violations into the messages
// users see; anything else is shown as-is.
func (a *App) explainPostError(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case api.CodeFileTooLarge:
			printlnFn(fmt.Sprintf("File is too large. Maximum size is %dMB.", a.config.MaxImageSize>>20))
		case api.CodeTooManyFiles:
			printlnFn(fmt.Sprintf("You can upload up to %d images.", a.config.MaxImages))
		case api.CodeInvalidFileType:
			printlnFn("Only image files are allowed.")
		case api.CodeUploadError:
			printlnFn("Failed to process a file. Please try again.")
		default:
			printlnFn(apiErr.Message)
		}
		return
	}
	if errors.Is(err, common.ErrValidation) {
		printlnFn(err.Error())
		return
	}
	printlnFn("Could not post the ad. Please try again.")
}
