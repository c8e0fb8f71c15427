// Package api implements the HTTP client for the campusmarket backend.
// It owns the wire contract: endpoints, JSON/multipart encoding, bearer
// credentials and error mapping.
package api

import (
	"context"

	"github.com/akulinin/campusmarket/internal/client/models"
)

// Client is the remote API surface the stores depend on.
//
// SetToken arms the bearer credential carried on every subsequent request;
// ClearToken disarms it. All other methods must honor context
// cancellation and map failures to the package's sentinel errors.
type Client interface {
	SetToken(token string)
	ClearToken()

	Login(ctx context.Context, email, password string) (*models.User, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.User, error)

	ListAds(ctx context.Context, keyword, category string) ([]models.Ad, error)
	GetAd(ctx context.Context, id string) (*models.Ad, error)
	AdsByUser(ctx context.Context, userID string) ([]models.Ad, error)
	CreateAd(ctx context.Context, ad models.NewAd) (*models.Ad, error)
	UpdateAd(ctx context.Context, id string, patch models.AdPatch) (*models.Ad, error)
	IncrementViews(ctx context.Context, id string) error
	DeleteAd(ctx context.Context, id string) error

	ListCategories(ctx context.Context) ([]models.Category, error)
}
