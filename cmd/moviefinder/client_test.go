package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/movies", r.URL.Path)
		assert.Equal(t, "inception", r.URL.Query().Get("query"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[{"id":27205,"title":"Inception","year":"2010"}],"page":2,"total":13}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	result, err := client.Search("inception", 2)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 13, result.Total)
	require.Len(t, result.Items, 1)
	assert.Equal(t, "Inception", result.Items[0].Title)
}

func TestClient_SessionCookieSent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("mf.sid")
		require.NoError(t, err)
		assert.Equal(t, "my-session", c.Value)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "my-session")
	favs, err := client.ListFavorites()
	require.NoError(t, err)
	assert.Empty(t, favs)
}

func TestClient_NoCookieWithoutSession(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := r.Cookie("mf.sid")
		assert.ErrorIs(t, err, http.ErrNoCookie)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ListFavorites()
	require.NoError(t, err)
}

func TestClient_AddFavorite_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"favorites limit exceeded","code":"LIMIT_EXCEEDED"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "full-session")
	err := client.AddFavorite(FavoriteItem{ID: 201})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LIMIT_EXCEEDED")
}

func TestClient_RemoveFavorite_NoContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/favorites/550", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "sid")
	require.NoError(t, client.RemoveFavorite(550))
}
