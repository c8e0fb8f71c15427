package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/akulinin/campusmarket/internal/client/models"
	"github.com/google/uuid"
)

// HTTPClient is the concrete Client over net/http.
//
// No client-side timeout is imposed: callers control deadlines through
// the request context. There is no retry and no backoff; a failed call
// is reported once and the caller decides what to show.
type HTTPClient struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	token string
}

// NewHTTPClient builds a client for the given API base URL,
// e.g. "http://localhost:5000/api". A trailing slash is tolerated.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *HTTPClient) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
}

func (c *HTTPClient) bearer() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if t := c.bearer(); t != "" {
		req.Header.Set("Authorization", "Bearer "+t)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	return req, nil
}

// do executes req and decodes a 2xx JSON body into out (skipped when out
// is nil). Transport failures map to ErrUnavailable, 401 to
// ErrUnauthorized, 404 to ErrNotFound; other error statuses are decoded
// into *Error, preserving the backend's structured code when present.
func (c *HTTPClient) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode >= 400:
		return decodeError(resp)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	var apiErr Error
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err := json.Unmarshal(body, &apiErr); err == nil && (apiErr.Code != "" || apiErr.Message != "") {
		return &apiErr
	}
	return &Error{Message: fmt.Sprintf("request failed: %s", resp.Status)}
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, "")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) sendJSON(ctx context.Context, method, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(body), "application/json")
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.User, error) {
	creds := map[string]string{"email": email, "password": password}
	var u models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/users/login", creds, &u); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &u, nil
}

func (c *HTTPClient) Register(ctx context.Context, r models.RegisterRequest) (*models.User, error) {
	var u models.User
	if err := c.sendJSON(ctx, http.MethodPost, "/users/register", r, &u); err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}
	return &u, nil
}

func (c *HTTPClient) ListAds(ctx context.Context, keyword, category string) ([]models.Ad, error) {
	q := url.Values{}
	if keyword != "" {
		q.Set("keyword", keyword)
	}
	if category != "" {
		q.Set("category", category)
	}
	path := "/ads"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var ads []models.Ad
	if err := c.getJSON(ctx, path, &ads); err != nil {
		return nil, fmt.Errorf("listing ads: %w", err)
	}
	return ads, nil
}

func (c *HTTPClient) GetAd(ctx context.Context, id string) (*models.Ad, error) {
	var ad models.Ad
	if err := c.getJSON(ctx, "/ads/"+url.PathEscape(id), &ad); err != nil {
		return nil, fmt.Errorf("fetching ad %s: %w", id, err)
	}
	return &ad, nil
}

func (c *HTTPClient) AdsByUser(ctx context.Context, userID string) ([]models.Ad, error) {
	var ads []models.Ad
	if err := c.getJSON(ctx, "/ads/user/"+url.PathEscape(userID), &ads); err != nil {
		return nil, fmt.Errorf("fetching ads for user %s: %w", userID, err)
	}
	return ads, nil
}

// CreateAd submits the text fields and image files as one multipart
// request. Image validation (count/size/type) is the caller's concern;
// here missing files simply fail the build step.
func (c *HTTPClient) CreateAd(ctx context.Context, ad models.NewAd) (*models.Ad, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":       ad.Title,
		"description": ad.Description,
		"price":       strconv.FormatFloat(ad.Price, 'f', -1, 64),
		"category":    ad.CategoryID,
		"condition":   string(ad.Condition),
		"location":    ad.Location,
		"college":     ad.College,
	}
	for name, value := range fields {
		if err := w.WriteField(name, value); err != nil {
			return nil, fmt.Errorf("writing field %s: %w", name, err)
		}
	}

	for _, path := range ad.ImagePaths {
		if err := attachFile(w, path); err != nil {
			return nil, err
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing multipart body: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, "/ads", &buf, w.FormDataContentType())
	if err != nil {
		return nil, err
	}

	var created models.Ad
	if err := c.do(req, &created); err != nil {
		return nil, fmt.Errorf("creating ad: %w", err)
	}
	return &created, nil
}

func attachFile(w *multipart.Writer, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening image %s: %w", path, err)
	}
	defer f.Close()

	part, err := w.CreateFormFile("images", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("attaching image %s: %w", path, err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading image %s: %w", path, err)
	}
	return nil
}

func (c *HTTPClient) UpdateAd(ctx context.Context, id string, patch models.AdPatch) (*models.Ad, error) {
	var updated models.Ad
	if err := c.sendJSON(ctx, http.MethodPut, "/ads/"+url.PathEscape(id), patch, &updated); err != nil {
		return nil, fmt.Errorf("updating ad %s: %w", id, err)
	}
	return &updated, nil
}

// IncrementViews bumps the view counter. The body uses the backend's
// update-operator form rather than a field patch, matching the contract
// the web client established.
func (c *HTTPClient) IncrementViews(ctx context.Context, id string) error {
	bump := map[string]map[string]int{"$inc": {"views": 1}}
	if err := c.sendJSON(ctx, http.MethodPut, "/ads/"+url.PathEscape(id), bump, nil); err != nil {
		return fmt.Errorf("incrementing views for %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) DeleteAd(ctx context.Context, id string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, "/ads/"+url.PathEscape(id), nil, "")
	if err != nil {
		return err
	}
	if err := c.do(req, nil); err != nil {
		return fmt.Errorf("deleting ad %s: %w", id, err)
	}
	return nil
}

func (c *HTTPClient) ListCategories(ctx context.Context) ([]models.Category, error) {
	var cats []models.Category
	if err := c.getJSON(ctx, "/categories", &cats); err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	return cats, nil
}
