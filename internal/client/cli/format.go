package cli

import (
	"fmt"

	"github.com/akulinin/campusmarket/internal/client/models"
)

// adLine renders the one-line list representation of an ad.
func adLine(ad models.Ad) string {
	s := fmt.Sprintf("%s  $%.2f  %s", ad.ID, ad.Price, ad.Title)
	if ad.Status != models.StatusActive && ad.Status != "" {
		s += fmt.Sprintf(" [%s]", ad.Status)
	}
	return s
}

func printAdList(ads []models.Ad) {
	if len(ads) == 0 {
		printlnFn("No ads to show.")
		return
	}
	for _, ad := range ads {
		printlnFn(adLine(ad))
	}
}

func printAdDetails(ad *models.Ad) {
	printlnFn(ad.Title)
	printlnFn(fmt.Sprintf("Price:     $%.2f", ad.Price))
	printlnFn(fmt.Sprintf("Category:  %s", ad.Category.Name))
	printlnFn(fmt.Sprintf("Condition: %s", ad.Condition))
	printlnFn(fmt.Sprintf("Location:  %s", ad.Location))
	printlnFn(fmt.Sprintf("Seller:    %s", ad.Seller.Name))
	printlnFn(fmt.Sprintf("Posted:    %s", ad.DatePosted.Format("2006-01-02")))
	printlnFn(fmt.Sprintf("Views:     %d", ad.Views))
	if ad.Status != models.StatusActive && ad.Status != "" {
		printlnFn(fmt.Sprintf("Status:    %s", ad.Status))
	}
	printlnFn("")
	printlnFn(ad.Description)
	for _, img := range ad.Images {
		printlnFn("Image: " + img)
	}
}
