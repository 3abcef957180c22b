package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"moviefinder/internal/movies"
)

const (
	defaultBaseURL      = "https://api.themoviedb.org"
	defaultImageBaseURL = "https://image.tmdb.org/t/p/w500"
	defaultTimeout      = 10 * time.Second
	maxActors           = 5
)

// Client is a TMDB API client. It implements movies.Gateway.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom API base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithImageBaseURL sets the base URL poster paths are joined onto.
func WithImageBaseURL(u string) Option {
	return func(c *Client) {
		c.imageBaseURL = strings.TrimRight(u, "/")
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		httpClient:   &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SearchMovies queries /search/movie and maps the results to summaries.
// An absent result page or total is normalized to the requested page and
// the number of items returned.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) (*movies.Page, error) {
	if page < 1 {
		page = 1
	}

	q := url.Values{}
	q.Set("query", strings.TrimSpace(query))
	q.Set("page", strconv.Itoa(page))
	q.Set("include_adult", "false")
	q.Set("language", "en-US")
	q.Set("api_key", c.apiKey)

	var body searchResponse
	if err := c.getJSON(ctx, "/3/search/movie", q, &body); err != nil {
		return nil, err
	}

	items := make([]movies.Summary, 0, len(body.Results))
	for _, r := range body.Results {
		items = append(items, movies.Summary{
			ID:        r.ID,
			Title:     r.Title,
			Year:      yearOf(r.ReleaseDate),
			PosterURL: c.posterURL(r.PosterPath),
		})
	}

	p := page
	if body.Page != nil && *body.Page >= 1 {
		p = *body.Page
	}
	total := len(items)
	if body.TotalResults != nil && *body.TotalResults >= 0 {
		total = *body.TotalResults
	}
	return &movies.Page{Items: items, Page: p, Total: total}, nil
}

// MovieDetails fetches /movie/{id} with credits appended and maps it to
// a full details record: non-blank genre names, up to five top-billed
// cast names, year, plot, poster URL, and rating.
func (c *Client) MovieDetails(ctx context.Context, id int64) (*movies.Details, error) {
	q := url.Values{}
	q.Set("append_to_response", "credits")
	q.Set("language", "en-US")
	q.Set("api_key", c.apiKey)

	var body movieDetails
	if err := c.getJSON(ctx, fmt.Sprintf("/3/movie/%d", id), q, &body); err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(body.Genres))
	for _, g := range body.Genres {
		if strings.TrimSpace(g.Name) != "" {
			genres = append(genres, g.Name)
		}
	}

	return &movies.Details{
		ID:        body.ID,
		Title:     body.Title,
		Year:      yearOf(body.ReleaseDate),
		Runtime:   body.Runtime,
		Genres:    genres,
		Actors:    topBilledCast(body.Credits),
		Plot:      body.Overview,
		PosterURL: c.posterURL(body.PosterPath),
		Rating:    body.VoteAverage,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("%w: create request: %v", movies.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", movies.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return movies.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: TMDB responded %s", movies.ErrUpstream, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", movies.ErrUpstream, err)
	}
	return nil
}

// topBilledCast returns up to five non-blank cast names sorted by billing
// order; members without an order sort last.
func topBilledCast(cr *credits) []string {
	if cr == nil {
		return []string{}
	}

	cast := make([]castMember, 0, len(cr.Cast))
	for _, m := range cr.Cast {
		if strings.TrimSpace(m.Name) != "" {
			cast = append(cast, m)
		}
	}
	sort.SliceStable(cast, func(i, j int) bool {
		return billingOrder(cast[i]) < billingOrder(cast[j])
	})
	if len(cast) > maxActors {
		cast = cast[:maxActors]
	}

	names := make([]string, len(cast))
	for i, m := range cast {
		names[i] = m.Name
	}
	return names
}

func billingOrder(m castMember) int {
	if m.Order == nil {
		return math.MaxInt
	}
	return *m.Order
}

func (c *Client) posterURL(path string) string {
	if path == "" || c.imageBaseURL == "" {
		return ""
	}
	return c.imageBaseURL + "/" + strings.TrimPrefix(path, "/")
}

func yearOf(releaseDate string) string {
	if len(releaseDate) < 4 {
		return ""
	}
	return releaseDate[:4]
}
