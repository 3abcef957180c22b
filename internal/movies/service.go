package movies

import (
	"context"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"moviefinder/internal/cache"
)

const (
	minQueryLen = 2
	resultTTL   = 60 * time.Second
)

// Service validates search and detail requests and memoizes gateway
// results for a bounded window. Search and details use independent cache
// instances so their key spaces cannot collide.
type Service struct {
	gw      Gateway
	search  *cache.Cache[string, *Page]
	details *cache.Cache[int64, *Details]
}

// ServiceOption configures a Service.
type ServiceOption func(*serviceConfig)

type serviceConfig struct {
	ttl time.Duration
}

// WithResultTTL overrides the result cache TTL (for testing).
func WithResultTTL(ttl time.Duration) ServiceOption {
	return func(c *serviceConfig) {
		c.ttl = ttl
	}
}

// NewService creates a service over the given gateway.
func NewService(gw Gateway, opts ...ServiceOption) *Service {
	cfg := serviceConfig{ttl: resultTTL}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Service{
		gw:      gw,
		search:  cache.New[string, *Page](cfg.ttl),
		details: cache.New[int64, *Details](cfg.ttl),
	}
}

// Search returns one page of results for query. The query must contain at
// least two characters after trimming; pages below 1 are clamped to 1.
func (s *Service) Search(ctx context.Context, query string, page int) (*Page, error) {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < minQueryLen {
		return nil, ErrQueryTooShort
	}
	if page < 1 {
		page = 1
	}

	key := strings.ToLower(q) + "::" + strconv.Itoa(page)
	return s.search.GetOrFetch(key, func() (*Page, error) {
		return s.gw.SearchMovies(ctx, q, page)
	})
}

// Details returns the full record for the movie with the given id.
func (s *Service) Details(ctx context.Context, id int64) (*Details, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}
	return s.details.GetOrFetch(id, func() (*Details, error) {
		return s.gw.MovieDetails(ctx, id)
	})
}
