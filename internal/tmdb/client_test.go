package tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moviefinder/internal/movies"
)

func TestClient_SearchMovies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("api_key"))
		assert.Equal(t, "Inception", r.URL.Query().Get("query"))
		assert.Equal(t, "1", r.URL.Query().Get("page"))
		assert.Equal(t, "false", r.URL.Query().Get("include_adult"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"page": 1,
			"results": [
				{"id": 27205, "title": "Inception", "release_date": "2010-07-15", "poster_path": "/inc.jpg"},
				{"id": 64956, "title": "Inception: The Cobol Job", "release_date": ""}
			],
			"total_results": 12
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithImageBaseURL("https://img.example/w500/"),
	)

	page, err := client.SearchMovies(context.Background(), "Inception", 1)
	require.NoError(t, err)

	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 12, page.Total)
	require.Len(t, page.Items, 2)

	assert.Equal(t, int64(27205), page.Items[0].ID)
	assert.Equal(t, "2010", page.Items[0].Year)
	assert.Equal(t, "https://img.example/w500/inc.jpg", page.Items[0].PosterURL)

	// No release date, no poster path
	assert.Empty(t, page.Items[1].Year)
	assert.Empty(t, page.Items[1].PosterURL)
}

func TestClient_SearchMovies_NormalizesAbsentFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"results": [{"id": 1, "title": "Solo Result"}]}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	page, err := client.SearchMovies(context.Background(), "solo", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page, "absent page falls back to the requested page")
	assert.Equal(t, 1, page.Total, "absent total falls back to the item count")
}

func TestClient_SearchMovies_EmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	page, err := client.SearchMovies(context.Background(), "nothing", 1)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Page)
	assert.Zero(t, page.Total)
}

func TestClient_MovieDetails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/movie/27205", r.URL.Path)
		assert.Equal(t, "credits", r.URL.Query().Get("append_to_response"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": 27205,
			"title": "Inception",
			"release_date": "2010-07-15",
			"runtime": 148,
			"overview": "A thief who steals corporate secrets...",
			"poster_path": "/inc.jpg",
			"vote_average": 8.4,
			"genres": [
				{"id": 28, "name": "Action"},
				{"id": 0, "name": "  "},
				{"id": 878, "name": "Science Fiction"}
			],
			"credits": {
				"cast": [
					{"name": "Elliot Page", "order": 2},
					{"name": "Leonardo DiCaprio", "order": 0},
					{"name": "No Order Actor"},
					{"name": "Joseph Gordon-Levitt", "order": 1},
					{"name": "  ", "order": 3},
					{"name": "Tom Hardy", "order": 4},
					{"name": "Ken Watanabe", "order": 5},
					{"name": "Cillian Murphy", "order": 6}
				]
			}
		}`))
	}))
	defer server.Close()

	client := NewClient("test-key",
		WithBaseURL(server.URL),
		WithImageBaseURL("https://img.example/w500"),
	)

	details, err := client.MovieDetails(context.Background(), 27205)
	require.NoError(t, err)

	assert.Equal(t, int64(27205), details.ID)
	assert.Equal(t, "Inception", details.Title)
	assert.Equal(t, "2010", details.Year)
	assert.Equal(t, 148, details.Runtime)
	assert.Equal(t, 8.4, details.Rating)
	assert.Equal(t, "https://img.example/w500/inc.jpg", details.PosterURL)

	assert.Equal(t, []string{"Action", "Science Fiction"}, details.Genres, "blank genre names are dropped")

	// Five names max, billing order ascending, blank names dropped.
	assert.Equal(t, []string{
		"Leonardo DiCaprio",
		"Joseph Gordon-Levitt",
		"Elliot Page",
		"Tom Hardy",
		"Ken Watanabe",
	}, details.Actors)
}

func TestClient_MovieDetails_NoCredits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id": 1, "title": "Obscure"}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	details, err := client.MovieDetails(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, details.Actors)
	assert.Empty(t, details.Genres)
}

func TestClient_MovieDetails_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	details, err := client.MovieDetails(context.Background(), 99999999)
	assert.Nil(t, details)
	assert.ErrorIs(t, err, movies.ErrNotFound)
}

func TestClient_ServerErrorIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.SearchMovies(context.Background(), "inception", 1)
	assert.ErrorIs(t, err, movies.ErrUpstream)

	_, err = client.MovieDetails(context.Background(), 550)
	assert.ErrorIs(t, err, movies.ErrUpstream)
}

func TestClient_BadJSONIsUpstream(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	client := NewClient("test-key", WithBaseURL(server.URL))

	_, err := client.SearchMovies(context.Background(), "inception", 1)
	assert.ErrorIs(t, err, movies.ErrUpstream)
}
