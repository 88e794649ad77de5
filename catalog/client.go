// Package catalog is the client side of the store: it aggregates the four
// collection endpoints into one product list and drives the browsing,
// filtering, pagination and admin flows over it.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/jolteer/pc-store/models"
)

// categories lists the category labels in the order the catalog shows them,
// each with the server collection it maps to.
var categories = []struct {
	Name       string
	Collection string
}{
	{"CPU", "CPUs"},
	{"GPU", "GPUs"},
	{"RAM", "RAM"},
	{"Storage", "Storage"},
}

// ErrUnknownCategory rejects an operation before any request is made: every
// category must map to one of the four collections.
var ErrUnknownCategory = errors.New("unknown category")

func collectionFor(category string) (string, error) {
	for _, c := range categories {
		if c.Name == category {
			return c.Collection, nil
		}
	}
	return "", ErrUnknownCategory
}

// Product is a catalog entry as the client sees it: the stored document plus
// the category label attached at fetch time. The server never stores the
// label; it is derived from the collection the item came from.
type Product struct {
	models.Product
	Category string `json:"category"`
}

// NewProduct is the payload of the create and edit forms.
type NewProduct struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// Session mirrors the token and username the browser keeps in local storage.
// Presence of both values alone drives the authenticated state; nothing
// revalidates the token client-side, and a server rejection does not clear
// the session.
type Session struct {
	Token    string
	Username string
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.Username != ""
}

// Client talks to the catalog API. The zero session is unauthenticated;
// Login or SetSession fills it in.
type Client struct {
	baseURL string
	httpc   *http.Client
	session Session
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpc:   &http.Client{},
	}
}

func (c *Client) Session() Session { return c.session }

// SetSession restores a previously persisted session without validating it.
func (c *Client) SetSession(s Session) { c.session = s }

func (c *Client) ClearSession() { c.session = Session{} }

// Load fetches all four collections concurrently, tags every item with its
// category and flattens the results in collection order, then server order.
// One failing fetch fails the whole load; there is no partial result and no
// retry.
func (c *Client) Load(ctx context.Context) ([]Product, error) {
	results := make([][]Product, len(categories))

	g, ctx := errgroup.WithContext(ctx)
	for i, cat := range categories {
		i, cat := i, cat
		g.Go(func() error {
			var items []models.Product
			if err := c.do(ctx, http.MethodGet, "/api/"+cat.Collection, nil, false, http.StatusOK, &items); err != nil {
				return err
			}
			tagged := make([]Product, len(items))
			for j, item := range items {
				tagged[j] = Product{Product: item, Category: cat.Name}
			}
			results[i] = tagged
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []Product
	for _, r := range results {
		all = append(all, r...)
	}
	return all, nil
}

// Login exchanges credentials for a session token and stores it together
// with the email as the displayed username.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var out struct {
		Token string `json:"token"`
	}
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, false, http.StatusOK, &out); err != nil {
		return err
	}
	c.session = Session{Token: out.Token, Username: email}
	return nil
}

// Register creates an account. It does not log in; the caller does that
// separately.
func (c *Client) Register(ctx context.Context, email, password string) error {
	body := map[string]string{"email": email, "password": password}
	return c.do(ctx, http.MethodPost, "/api/auth/register", body, false, http.StatusCreated, nil)
}

// Profile returns the id and email behind the current session token.
func (c *Client) Profile(ctx context.Context) (int, string, error) {
	var out struct {
		ID    int    `json:"id"`
		Email string `json:"email"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil, true, http.StatusOK, &out); err != nil {
		return 0, "", err
	}
	return out.ID, out.Email, nil
}

// SignOut tells the server (a stateless acknowledgment) and drops the local
// session, which is the actual invalidation.
func (c *Client) SignOut(ctx context.Context) error {
	err := c.do(ctx, http.MethodGet, "/api/auth/signout", nil, false, http.StatusOK, nil)
	c.session = Session{}
	return err
}

// Get fetches one product and tags it with the requested category.
func (c *Client) Get(ctx context.Context, category, id string) (Product, error) {
	coll, err := collectionFor(category)
	if err != nil {
		return Product{}, err
	}

	var stored models.Product
	if err := c.do(ctx, http.MethodGet, "/api/"+coll+"/"+id, nil, false, http.StatusOK, &stored); err != nil {
		return Product{}, err
	}
	return Product{Product: stored, Category: category}, nil
}

// Create posts a new product into the category's collection and returns the
// stored document, server-assigned id included.
func (c *Client) Create(ctx context.Context, category string, p NewProduct) (Product, error) {
	coll, err := collectionFor(category)
	if err != nil {
		return Product{}, err
	}

	var stored models.Product
	if err := c.do(ctx, http.MethodPost, "/api/"+coll, p, true, http.StatusCreated, &stored); err != nil {
		return Product{}, err
	}
	return Product{Product: stored, Category: category}, nil
}

// Update sends the edit form's full field set; the server merges it into the
// stored document.
func (c *Client) Update(ctx context.Context, category, id string, p NewProduct) error {
	coll, err := collectionFor(category)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPut, "/api/"+coll+"/"+id, p, true, http.StatusOK, nil)
}

// Delete asks confirm first, mirroring the browser's prompt, and reports
// whether the delete was actually issued. After a delete the caller reloads
// the full aggregate.
func (c *Client) Delete(ctx context.Context, category, id string, confirm func() bool) (bool, error) {
	coll, err := collectionFor(category)
	if err != nil {
		return false, err
	}
	if confirm != nil && !confirm() {
		return false, nil
	}
	if err := c.do(ctx, http.MethodDelete, "/api/"+coll+"/"+id, nil, true, http.StatusOK, nil); err != nil {
		return false, err
	}
	return true, nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, authed bool, wantStatus int, out interface{}) error {
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		rd = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+c.session.Token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return apiError(method, path, resp)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

func apiError(method, path string, resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("%s %s: %s: %s", method, path, resp.Status, body.Error)
	}
	return fmt.Errorf("%s %s: %s", method, path, resp.Status)
}
