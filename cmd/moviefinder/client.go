package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client wraps HTTP calls to the moviefinder server.
type Client struct {
	baseURL    string
	sessionID  string
	httpClient *http.Client
}

// NewClient creates a new moviefinder API client. A non-empty sessionID
// is sent as the session cookie so favorites persist across invocations.
func NewClient(serverURL, sessionID string) *Client {
	return &Client{
		baseURL:   serverURL,
		sessionID: sessionID,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) newRequest(method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("request creation failed: %w", err)
	}
	if c.sessionID != "" {
		req.AddCookie(&http.Cookie{Name: "mf.sid", Value: c.sessionID})
	}
	return req, nil
}

func (c *Client) get(path string, result any) error {
	req, err := c.newRequest(http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) post(path string, body any) error {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	req, err := c.newRequest(http.MethodPost, path, bytes.NewReader(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func (c *Client) delete(path string) error {
	req, err := c.newRequest(http.MethodDelete, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server error %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

// API response types (mirror server types)

type MovieItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Year      string `json:"year"`
	PosterURL string `json:"posterUrl"`
}

type PageResponse struct {
	Items []MovieItem `json:"items"`
	Page  int         `json:"page"`
	Total int         `json:"total"`
}

type DetailsResponse struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	Year      string   `json:"year"`
	Runtime   int      `json:"runtime"`
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Plot      string   `json:"plot"`
	PosterURL string   `json:"posterUrl"`
	Rating    float64  `json:"rating"`
}

type FavoriteItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title,omitempty"`
	Year      string `json:"year,omitempty"`
	PosterURL string `json:"posterUrl,omitempty"`
}

// API methods

func (c *Client) Search(query string, page int) (*PageResponse, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("page", strconv.Itoa(page))

	var result PageResponse
	if err := c.get("/api/movies?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Details(id int64) (*DetailsResponse, error) {
	var result DetailsResponse
	if err := c.get(fmt.Sprintf("/api/movies/%d", id), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListFavorites() ([]FavoriteItem, error) {
	var result []FavoriteItem
	if err := c.get("/api/favorites", &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) AddFavorite(fav FavoriteItem) error {
	return c.post("/api/favorites", fav)
}

func (c *Client) RemoveFavorite(id int64) error {
	return c.delete(fmt.Sprintf("/api/favorites/%d", id))
}
