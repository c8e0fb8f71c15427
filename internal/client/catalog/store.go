// Package catalog holds the client's single in-memory cache of ads and
// categories and mediates every mutation against the backend API.
//
// The cache is only ever fully replaced by FetchAds/FetchCategories or
// incrementally patched by AddAd/UpdateAd/DeleteAd; server data is never
// partially merged into stale entries. Concurrent operations are not
// sequenced against each other: the last response to resolve wins.
package catalog

import (
	"context"
	"sort"
	"sync"

	"github.com/akulinin/campusmarket/internal/client/api"
	"github.com/akulinin/campusmarket/internal/client/images"
	"github.com/akulinin/campusmarket/internal/client/models"
	"github.com/akulinin/campusmarket/internal/logging"
)

type Store struct {
	client    api.Client
	validator images.Validator
	log       logging.Logger

	mu         sync.RWMutex
	ads        []models.Ad
	categories []models.Category
	loading    int
}

func New(client api.Client, validator images.Validator, log logging.Logger) *Store {
	return &Store{client: client, validator: validator, log: log}
}

// Ads returns a copy of the cached ad list.
func (s *Store) Ads() []models.Ad {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Ad(nil), s.ads...)
}

// Categories returns a copy of the cached category list.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// Loading reports whether any bulk fetch is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

func (s *Store) startLoading() {
	s.mu.Lock()
	s.loading++
	s.mu.Unlock()
}

func (s *Store) stopLoading() {
	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
}

// FetchAds replaces the entire ad cache with the server's current
// collection. No pagination, no merging: stale entries absent from the
// response disappear.
func (s *Store) FetchAds(ctx context.Context) error {
	s.startLoading()
	defer s.stopLoading()

	ads, err := s.client.ListAds(ctx, "", "")
	if err != nil {
		s.log.Error(ctx, "loading ads failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.ads = ads
	s.mu.Unlock()
	return nil
}

// FetchCategories replaces the category cache with the server's set.
func (s *Store) FetchCategories(ctx context.Context) error {
	s.startLoading()
	defer s.stopLoading()

	cats, err := s.client.ListCategories(ctx)
	if err != nil {
		s.log.Error(ctx, "loading categories failed", "error", err)
		return err
	}

	s.mu.Lock()
	s.categories = cats
	s.mu.Unlock()
	return nil
}

// FetchAdByID fetches one ad without touching the bulk cache.
// api.ErrNotFound passes through for missing ads.
func (s *Store) FetchAdByID(ctx context.Context, id string) (*models.Ad, error) {
	ad, err := s.client.GetAd(ctx, id)
	if err != nil {
		s.log.Error(ctx, "fetching ad failed", "id", id, "error", err)
		return nil, err
	}
	return ad, nil
}

// AddAd validates the images locally, submits the new listing, and on
// success appends the server-returned ad (with its assigned id) to the
// cache. Errors are propagated untouched: callers need the structured
// *api.Error code to show specific validation feedback.
func (s *Store) AddAd(ctx context.Context, ad models.NewAd) (*models.Ad, error) {
	if err := ad.Validate(); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(ad.ImagePaths); err != nil {
		return nil, err
	}

	created, err := s.client.CreateAd(ctx, ad)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.ads = append(s.ads, *created)
	s.mu.Unlock()
	return created, nil
}

// UpdateAd sends a partial update. On success the cached entry is
// replaced with the server's representation; on failure the cache is left
// unchanged (nothing was mutated optimistically, so there is nothing to
// roll back).
func (s *Store) UpdateAd(ctx context.Context, id string, patch models.AdPatch) (*models.Ad, error) {
	updated, err := s.client.UpdateAd(ctx, id, patch)
	if err != nil {
		s.log.Error(ctx, "updating ad failed", "id", id, "error", err)
		return nil, err
	}

	s.mu.Lock()
	for i := range s.ads {
		if s.ads[i].ID == id {
			s.ads[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	return updated, nil
}

// DeleteAd requests deletion and, on success, drops the entry from the
// cache. On failure the cache is left unchanged.
func (s *Store) DeleteAd(ctx context.Context, id string) error {
	if err := s.client.DeleteAd(ctx, id); err != nil {
		s.log.Error(ctx, "deleting ad failed", "id", id, "error", err)
		return err
	}

	s.mu.Lock()
	kept := s.ads[:0]
	for _, ad := range s.ads {
		if ad.ID != id {
			kept = append(kept, ad)
		}
	}
	s.ads = kept
	s.mu.Unlock()
	return nil
}

// AdsByUser fetches one seller's listings without touching the shared
// cache. Read-only convenience path: failures are logged and an empty
// collection returned.
func (s *Store) AdsByUser(ctx context.Context, userID string) []models.Ad {
	ads, err := s.client.AdsByUser(ctx, userID)
	if err != nil {
		s.log.Error(ctx, "fetching user ads failed", "user", userID, "error", err)
		return []models.Ad{}
	}
	return ads
}

// SearchAds delegates keyword/category filtering to the server and
// returns the raw result set for further client-side refinement.
// Failures are logged and an empty collection returned.
func (s *Store) SearchAds(ctx context.Context, query, category string) ([]models.Ad, error) {
	ads, err := s.client.ListAds(ctx, query, category)
	if err != nil {
		s.log.Error(ctx, "search failed", "query", query, "error", err)
		return []models.Ad{}, nil
	}
	return ads, nil
}

// IncrementViews is fire-and-forget: failures are logged, never surfaced.
func (s *Store) IncrementViews(ctx context.Context, id string) {
	if err := s.client.IncrementViews(ctx, id); err != nil {
		s.log.Warn(ctx, "view counter bump failed", "id", id, "error", err)
	}
}

// Featured returns up to n most-viewed active ads from the cache.
func (s *Store) Featured(n int) []models.Ad {
	active := s.activeAds()
	sort.SliceStable(active, func(i, j int) bool { return active[i].Views > active[j].Views })
	return clip(active, n)
}

// Recent returns up to n newest active ads from the cache.
func (s *Store) Recent(n int) []models.Ad {
	active := s.activeAds()
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].DatePosted.After(active[j].DatePosted)
	})
	return clip(active, n)
}

func (s *Store) activeAds() []models.Ad {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Ad, 0, len(s.ads))
	for _, ad := range s.ads {
		if ad.Status == models.StatusActive {
			out = append(out, ad)
		}
	}
	return out
}

func clip(ads []models.Ad, n int) []models.Ad {
	if len(ads) > n {
		return ads[:n]
	}
	return ads
}
