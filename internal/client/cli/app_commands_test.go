package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/akulinin/campusmarket/internal/client/catalog"
	"github.com/akulinin/campusmarket/internal/client/config"
	"github.com/akulinin/campusmarket/internal/client/images"
	"github.com/akulinin/campusmarket/internal/client/models"
	"github.com/akulinin/campusmarket/internal/client/search"
	"github.com/akulinin/campusmarket/internal/client/session"
	"github.com/akulinin/campusmarket/internal/common"
	"github.com/akulinin/campusmarket/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	Token      string
	SetCalls   int
	ClearCalls int

	LoginRet *models.User
	LoginErr error

	RegisterRet   *models.User
	RegisterErr   error
	RegisterCalls int

	GetAdRet *models.Ad
	GetAdErr error

	UpdateRet   *models.Ad
	UpdateErr   error
	UpdateCalls int
	LastPatch   models.AdPatch

	DeleteErr   error
	DeleteCalls int

	ViewBumps int
}

func (f *fakeClient) SetToken(token string) { f.Token = token; f.SetCalls++ }
func (f *fakeClient) ClearToken()           { f.Token = ""; f.ClearCalls++ }

func (f *fakeClient) Login(_ context.Context, email, password string) (*models.User, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(_ context.Context, req models.RegisterRequest) (*models.User, error) {
	f.RegisterCalls++
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) ListAds(_ context.Context, keyword, category string) ([]models.Ad, error) {
	return nil, nil
}

func (f *fakeClient) GetAd(_ context.Context, id string) (*models.Ad, error) {
	return f.GetAdRet, f.GetAdErr
}

func (f *fakeClient) AdsByUser(_ context.Context, userID string) ([]models.Ad, error) {
	return nil, nil
}

func (f *fakeClient) CreateAd(_ context.Context, ad models.NewAd) (*models.Ad, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeClient) UpdateAd(_ context.Context, id string, patch models.AdPatch) (*models.Ad, error) {
	f.UpdateCalls++
	f.LastPatch = patch
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) IncrementViews(_ context.Context, id string) error {
	f.ViewBumps++
	return nil
}

func (f *fakeClient) DeleteAd(_ context.Context, id string) error {
	f.DeleteCalls++
	return f.DeleteErr
}

func (f *fakeClient) ListCategories(_ context.Context) ([]models.Category, error) {
	return nil, nil
}

type mapRepo struct {
	m map[string][]byte
}

func (r *mapRepo) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.m[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (r *mapRepo) Set(_ context.Context, key string, value []byte) error {
	r.m[key] = append([]byte(nil), value...)
	return nil
}

func (r *mapRepo) Delete(_ context.Context, key string) error {
	delete(r.m, key)
	return nil
}

func newTestApp(fc *fakeClient) *App {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	cfg := &config.Config{}
	cfg.LoadDefaults()
	return &App{
		config:   cfg,
		session:  session.New(fc, &mapRepo{m: map[string][]byte{}}, log),
		catalog:  catalog.New(fc, images.NewValidator(), log),
		criteria: search.DefaultCriteria(),
		reader:   bufio.NewReader(strings.NewReader("")),
		log:      log,
	}
}

// stubInputs replaces the interactive helpers with queues of canned
// answers. Each call pops the next one.
func stubInputs(t *testing.T, texts []string, passwords []string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(texts) == 0 {
			return "", nil
		}
		s := texts[0]
		texts = texts[1:]
		return s, nil
	}
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, nil
		}
		p := passwords[0]
		passwords = passwords[1:]
		return []byte(p), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func silenceOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(args ...any) (int, error) {
		lines = append(lines, fmt.Sprintln(args...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestLogin_EstablishesSession(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.User{ID: "u1", Name: "Alice", Email: "alice@x.edu", Token: "tok"}}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"alice@x.edu"}, []string{"secret"})

	require.NoError(t, a.Login(context.Background()))
	require.True(t, a.isLoggedIn())
	require.Equal(t, "tok", fc.Token)
	require.Equal(t, "(Alice)", a.getStatus())
}

func TestLogin_FailureLeavesSessionEmpty(t *testing.T) {
	fc := &fakeClient{LoginErr: errors.New("bad credentials")}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"alice@x.edu"}, []string{"wrong"})

	require.NoError(t, a.Login(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Zero(t, fc.SetCalls)
}

func TestRegister_PasswordMismatchNeverReachesServer(t *testing.T) {
	fc := &fakeClient{}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"bob@x.edu", "Bob", "State"}, []string{"secret1", "secret2"})

	err := a.Register(context.Background())
	require.ErrorIs(t, err, common.ErrPasswordMismatch)
	require.Zero(t, fc.RegisterCalls)
	require.False(t, a.isLoggedIn())
}

func TestRegister_SignsIn(t *testing.T) {
	fc := &fakeClient{RegisterRet: &models.User{ID: "u2", Name: "Bob", Token: "tok2"}}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"bob@x.edu", "Bob", "State"}, []string{"secret", "secret"})

	require.NoError(t, a.Register(context.Background()))
	require.True(t, a.isLoggedIn())
	require.Equal(t, "tok2", fc.Token)
}

func TestLogout_ClearsEverything(t *testing.T) {
	fc := &fakeClient{LoginRet: &models.User{ID: "u1", Name: "Alice", Token: "tok"}}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"alice@x.edu"}, []string{"secret"})
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Logout(context.Background()))
	require.False(t, a.isLoggedIn())
	require.Equal(t, 1, fc.ClearCalls)
}

func TestShow_BumpsViewsAndHintsOwner(t *testing.T) {
	fc := &fakeClient{
		LoginRet: &models.User{ID: "u1", Name: "Alice", Token: "tok"},
		GetAdRet: &models.Ad{ID: "ad1", Title: "Desk", Seller: models.Seller{ID: "u1"}},
	}
	a := newTestApp(fc)
	lines := silenceOutput(t)
	stubInputs(t, []string{"alice@x.edu"}, []string{"secret"})
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Show(context.Background(), "ad1"))
	require.Equal(t, 1, fc.ViewBumps)
	require.Contains(t, strings.Join(*lines, ""), "This is your ad.")
}

func TestEdit_RejectsForeignAd(t *testing.T) {
	fc := &fakeClient{
		LoginRet: &models.User{ID: "u1", Name: "Alice", Token: "tok"},
		GetAdRet: &models.Ad{ID: "ad1", Title: "Desk", Seller: models.Seller{ID: "someone-else"}},
	}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"alice@x.edu"}, []string{"secret"})
	require.NoError(t, a.Login(context.Background()))

	err := a.Edit(context.Background(), "ad1")
	require.ErrorIs(t, err, common.ErrNotOwner)
	require.Zero(t, fc.UpdateCalls)
}

func TestEdit_RequiresLogin(t *testing.T) {
	fc := &fakeClient{}
	a := newTestApp(fc)
	silenceOutput(t)

	err := a.Edit(context.Background(), "ad1")
	require.ErrorIs(t, err, common.ErrNotAuthenticated)
}

func TestMarkSold_SendsStatusPatch(t *testing.T) {
	owned := &models.Ad{ID: "ad1", Title: "Desk", Seller: models.Seller{ID: "u1"}}
	fc := &fakeClient{
		LoginRet:  &models.User{ID: "u1", Name: "Alice", Token: "tok"},
		GetAdRet:  owned,
		UpdateRet: &models.Ad{ID: "ad1", Title: "Desk", Status: models.StatusSold},
	}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"alice@x.edu"}, []string{"secret"})
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.MarkSold(context.Background(), "ad1"))
	require.Equal(t, 1, fc.UpdateCalls)
	require.NotNil(t, fc.LastPatch.Status)
	require.Equal(t, models.StatusSold, *fc.LastPatch.Status)
}

func TestDelete_AsksForConfirmation(t *testing.T) {
	owned := &models.Ad{ID: "ad1", Title: "Desk", Seller: models.Seller{ID: "u1"}}
	fc := &fakeClient{
		LoginRet: &models.User{ID: "u1", Name: "Alice", Token: "tok"},
		GetAdRet: owned,
	}
	a := newTestApp(fc)
	silenceOutput(t)
	stubInputs(t, []string{"alice@x.edu", "n"}, []string{"secret"})
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.Delete(context.Background(), "ad1"))
	require.Zero(t, fc.DeleteCalls)

	stubInputs(t, []string{"y"}, nil)
	require.NoError(t, a.Delete(context.Background(), "ad1"))
	require.Equal(t, 1, fc.DeleteCalls)
}
