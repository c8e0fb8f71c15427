// Package session manages the authenticated identity: login, registration,
// logout, and persistence of the session snapshot across process restarts.
package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/akulinin/campusmarket/internal/client/api"
	"github.com/akulinin/campusmarket/internal/client/models"
	"github.com/akulinin/campusmarket/internal/client/snapshot"
	"github.com/akulinin/campusmarket/internal/common"
	"github.com/akulinin/campusmarket/internal/logging"
	"github.com/golang-jwt/jwt/v5"
)

// Store owns the current user and their bearer token. A user is
// authenticated exactly when a token is held; all token arming and
// disarming on the API client goes through this type.
//
// Ready distinguishes "not yet known" from "known unauthenticated":
// it flips to true once Restore has run, whatever the outcome.
type Store struct {
	client    api.Client
	snapshots snapshot.Repository
	log       logging.Logger

	mu    sync.RWMutex
	user  *models.User
	ready bool
}

func New(client api.Client, snapshots snapshot.Repository, log logging.Logger) *Store {
	return &Store{client: client, snapshots: snapshots, log: log}
}

// Restore loads the persisted snapshot, if any, and establishes it as the
// current session. Malformed snapshots and snapshots whose JWT has already
// expired are discarded. Runs once at startup; failures only mean the
// session starts unauthenticated.
func (s *Store) Restore(ctx context.Context) {
	defer s.markReady()

	raw, err := s.snapshots.Get(ctx, common.SnapshotKey)
	if err != nil {
		s.log.Warn(ctx, "reading session snapshot failed", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil || u.Token == "" {
		s.log.Warn(ctx, "discarding unusable session snapshot", "error", common.ErrSnapshotCorrupted)
		s.discardSnapshot(ctx)
		return
	}

	if tokenExpired(u.Token) {
		s.log.Info(ctx, "stored session expired, signing out", "user", u.Email)
		s.discardSnapshot(ctx)
		return
	}

	s.client.SetToken(u.Token)

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()

	s.log.Info(ctx, "session restored", "user", u.Email)
}

// Login authenticates against the server. On success the session is
// established, persisted, and the bearer token armed. On any failure the
// error is logged, false is returned, and an existing session is left
// untouched.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	u, err := s.client.Login(ctx, email, password)
	if err != nil {
		s.log.Error(ctx, "login failed", "error", err)
		return false
	}
	s.establish(ctx, u)
	return true
}

// Register creates an account and signs the user in immediately, with the
// same contract as Login.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) bool {
	u, err := s.client.Register(ctx, req)
	if err != nil {
		s.log.Error(ctx, "registration failed", "error", err)
		return false
	}
	s.establish(ctx, u)
	return true
}

// Logout clears the current session, removes the persisted snapshot and
// disarms the bearer token. No server round-trip is made.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	s.client.ClearToken()
	s.discardSnapshot(ctx)
}

// Current returns the signed-in user, or nil.
func (s *Store) Current() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// IsAuthenticated reports whether a bearer token is held.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Token != ""
}

// Ready reports whether Restore has completed.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

func (s *Store) establish(ctx context.Context, u *models.User) {
	if raw, err := json.Marshal(u); err == nil {
		if err := s.snapshots.Set(ctx, common.SnapshotKey, raw); err != nil {
			// The session still works for this process; it just won't
			// survive a restart.
			s.log.Warn(ctx, "persisting session snapshot failed", "error", err)
		}
	}

	s.client.SetToken(u.Token)

	s.mu.Lock()
	s.user = u
	s.mu.Unlock()
}

func (s *Store) discardSnapshot(ctx context.Context) {
	if err := s.snapshots.Delete(ctx, common.SnapshotKey); err != nil {
		s.log.Warn(ctx, "removing session snapshot failed", "error", err)
	}
}

func (s *Store) markReady() {
	s.mu.Lock()
	s.ready = true
	s.mu.Unlock()
}

// tokenExpired inspects the token's exp claim without verifying the
// signature; verification is the server's job. Opaque or claim-less
// tokens are kept and left for the server to judge.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
