// Package client is a Go SDK for the Student Budget API.
//
// Besides plain API calls it provides Screen, which models the data
// lifecycle of a single screen of an app.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	v1 "github.com/studentbudget/backend/internal/controllers/v1"
	"github.com/studentbudget/backend/internal/types"
)

// Client calls the API at a base URL.
type Client struct {
	baseURL  *url.URL
	http     *http.Client
	language string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithLanguage sets the Accept-Language header sent with every request.
// It decides the language of translated messages, e.g. the budget status.
func WithLanguage(acceptLanguage string) Option {
	return func(c *Client) {
		c.language = acceptLanguage
	}
}

// New returns a client for the API at baseURL, e.g. https://example.com/api.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", baseURL)
	}

	c := &Client{
		baseURL:  u,
		http:     http.DefaultClient,
		language: "ja",
	}

	for _, o := range opts {
		o(c)
	}

	return c, nil
}

// do sends a request and decodes the response body into target.
// Error responses are returned as *APIError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, target any) error {
	u := c.baseURL.JoinPath(path)
	u.RawQuery = query.Encode()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", c.language)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if res.StatusCode >= http.StatusBadRequest {
		return newAPIError(res.StatusCode, data)
	}

	if target == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := json.Unmarshal(data, target); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}

	return nil
}

// Month returns the spending summary of a user for a month.
func (c *Client) Month(ctx context.Context, user uuid.UUID, month types.Month) (v1.Month, error) {
	query := url.Values{}
	query.Set("user", user.String())
	query.Set("month", month.String())

	var r v1.MonthResponse
	if err := c.do(ctx, http.MethodGet, "v1/months", query, nil, &r); err != nil {
		return v1.Month{}, err
	}

	return *r.Data, nil
}

// Calendar returns the calendar grid for a month. The daily totals are
// only set when user is not uuid.Nil.
func (c *Client) Calendar(ctx context.Context, user uuid.UUID, month types.Month) (v1.Calendar, error) {
	query := url.Values{}
	if user != uuid.Nil {
		query.Set("user", user.String())
	}
	if !month.IsZero() {
		query.Set("month", month.String())
	}

	var r v1.CalendarResponse
	if err := c.do(ctx, http.MethodGet, "v1/calendar", query, nil, &r); err != nil {
		return v1.Calendar{}, err
	}

	return *r.Data, nil
}

// Categories returns all expense categories.
func (c *Client) Categories(ctx context.Context) ([]v1.Category, error) {
	var r v1.CategoryListResponse
	if err := c.do(ctx, http.MethodGet, "v1/categories", nil, nil, &r); err != nil {
		return nil, err
	}

	return r.Data, nil
}

// Expenses returns the expenses of a user in a month, newest first.
func (c *Client) Expenses(ctx context.Context, user uuid.UUID, month types.Month) ([]v1.Expense, error) {
	query := url.Values{}
	query.Set("user", user.String())
	query.Set("month", month.String())
	query.Set("limit", "-1")

	var r v1.ExpenseListResponse
	if err := c.do(ctx, http.MethodGet, "v1/expenses", query, nil, &r); err != nil {
		return nil, err
	}

	return r.Data, nil
}

// CreateExpenses creates expenses. When some of them fail, the created
// ones are returned together with an error for the others.
func (c *Client) CreateExpenses(ctx context.Context, expenses ...v1.ExpenseEditable) ([]v1.Expense, error) {
	var r v1.ExpenseCreateResponse
	err := c.do(ctx, http.MethodPost, "v1/expenses", nil, expenses, &r)

	var apiErr *APIError
	if errors.As(err, &apiErr) && len(apiErr.body) > 0 {
		// Partial failures carry the result for every expense
		if json.Unmarshal(apiErr.body, &r) != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	created := make([]v1.Expense, 0, len(r.Data))
	var errs []string
	for _, e := range r.Data {
		if e.Data != nil {
			created = append(created, *e.Data)
		}
		if e.Error != nil {
			errs = append(errs, *e.Error)
		}
	}

	if len(errs) > 0 && apiErr != nil {
		apiErr.Message = strings.Join(errs, "; ")
		return created, apiErr
	}

	return created, err
}

// DeleteExpense deletes an expense.
func (c *Client) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "v1/expenses/"+id.String(), nil, nil, nil)
}

// Profile returns the profile of a user.
func (c *Client) Profile(ctx context.Context, id uuid.UUID) (v1.Profile, error) {
	var r v1.ProfileResponse
	if err := c.do(ctx, http.MethodGet, "v1/profiles/"+id.String(), nil, nil, &r); err != nil {
		return v1.Profile{}, err
	}

	return *r.Data, nil
}

// SaveProfile creates or replaces the profile of a user.
func (c *Client) SaveProfile(ctx context.Context, id uuid.UUID, profile v1.ProfileEditable) (v1.Profile, error) {
	var r v1.ProfileResponse
	if err := c.do(ctx, http.MethodPut, "v1/profiles/"+id.String(), nil, profile, &r); err != nil {
		return v1.Profile{}, err
	}

	return *r.Data, nil
}

// Posts returns the newest posts. If viewer is set, the posts carry
// the viewer's like and bookmark state.
func (c *Client) Posts(ctx context.Context, viewer uuid.UUID) ([]v1.Post, error) {
	query := url.Values{}
	if viewer != uuid.Nil {
		query.Set("viewer", viewer.String())
	}

	var r v1.PostListResponse
	if err := c.do(ctx, http.MethodGet, "v1/posts", query, nil, &r); err != nil {
		return nil, err
	}

	return r.Data, nil
}

// CreatePost shares a tip.
func (c *Client) CreatePost(ctx context.Context, post v1.PostEditable) (v1.Post, error) {
	var r v1.PostResponse
	if err := c.do(ctx, http.MethodPost, "v1/posts", nil, post, &r); err != nil {
		return v1.Post{}, err
	}

	return *r.Data, nil
}

// ToggleLike likes or unlikes a post for a user.
func (c *Client) ToggleLike(ctx context.Context, post, user uuid.UUID) (v1.Reaction, error) {
	return c.toggle(ctx, post, user, "like")
}

// ToggleBookmark bookmarks a post for a user or removes the bookmark.
func (c *Client) ToggleBookmark(ctx context.Context, post, user uuid.UUID) (v1.Reaction, error) {
	return c.toggle(ctx, post, user, "bookmark")
}

func (c *Client) toggle(ctx context.Context, post, user uuid.UUID, reaction string) (v1.Reaction, error) {
	var r v1.ReactionResponse
	err := c.do(ctx, http.MethodPost, fmt.Sprintf("v1/posts/%s/%s", post, reaction), nil, v1.ReactionEditable{UserID: user}, &r)
	if err != nil {
		return v1.Reaction{}, err
	}

	return *r.Data, nil
}
