// Package movies implements search and detail lookups over an external
// metadata gateway, shielding callers from upstream latency with
// short-lived result caches.
package movies

import (
	"context"
	"errors"
)

//go:generate mockgen -destination=mocks/gateway.go -package=mocks moviefinder/internal/movies Gateway

// Sentinel errors surfaced to the API layer.
var (
	// ErrQueryTooShort is returned when a trimmed search query is shorter
	// than two characters.
	ErrQueryTooShort = errors.New("query must contain at least 2 characters")

	// ErrInvalidID is returned when a movie id is not positive.
	ErrInvalidID = errors.New("movie id must be a positive number")

	// ErrNotFound is returned when the upstream provider has no such movie.
	ErrNotFound = errors.New("movie not found")

	// ErrUpstream wraps any other upstream HTTP, network, or decoding failure.
	ErrUpstream = errors.New("upstream metadata request failed")
)

// Summary is a compact movie item returned by search.
type Summary struct {
	ID        int64  `json:"id"`
	Title     string `json:"title,omitempty"`
	Year      string `json:"year,omitempty"`
	PosterURL string `json:"posterUrl,omitempty"`
}

// Page is one page of search results. Page numbers are 1-based.
type Page struct {
	Items []Summary `json:"items"`
	Page  int       `json:"page"`
	Total int       `json:"total"`
}

// Details is the full record for a single movie.
type Details struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title,omitempty"`
	Year      string   `json:"year,omitempty"`
	Runtime   int      `json:"runtime,omitempty"`
	Genres    []string `json:"genres"`
	Actors    []string `json:"actors"`
	Plot      string   `json:"plot,omitempty"`
	PosterURL string   `json:"posterUrl,omitempty"`
	Rating    float64  `json:"rating,omitempty"`
}

// Gateway fetches movie data from the upstream metadata provider.
type Gateway interface {
	SearchMovies(ctx context.Context, query string, page int) (*Page, error)
	MovieDetails(ctx context.Context, id int64) (*Details, error)
}
