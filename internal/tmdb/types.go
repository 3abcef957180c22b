// Package tmdb provides a client for The Movie Database API.
package tmdb

// Raw TMDB response shapes. Pointer fields distinguish absent values
// from zero values where the mapping depends on it.

type searchResponse struct {
	Page         *int          `json:"page"`
	Results      []movieResult `json:"results"`
	TotalResults *int          `json:"total_results"`
}

type movieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	ReleaseDate string `json:"release_date"` // "2010-07-15"
	PosterPath  string `json:"poster_path"`  // "/abc123.jpg"
}

type movieDetails struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	ReleaseDate string   `json:"release_date"`
	Runtime     int      `json:"runtime"` // minutes
	Overview    string   `json:"overview"`
	PosterPath  string   `json:"poster_path"`
	VoteAverage float64  `json:"vote_average"`
	Genres      []genre  `json:"genres"`
	Credits     *credits `json:"credits"`
}

type genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type credits struct {
	Cast []castMember `json:"cast"`
}

type castMember struct {
	Name  string `json:"name"`
	Order *int   `json:"order"` // billing order; absent sorts last
}
