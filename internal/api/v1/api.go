// Package v1 implements the public REST API over the movie service and
// the favorites store.
package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"moviefinder/internal/favorites"
	"moviefinder/internal/movies"
)

// Server is the v1 API server.
type Server struct {
	movies    *movies.Service
	favorites *favorites.Store
	logger    *slog.Logger
}

// New creates a new API server.
func New(svc *movies.Service, favs *favorites.Store, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		movies:    svc,
		favorites: favs,
		logger:    logger,
	}
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	// Movies
	mux.HandleFunc("GET /api/movies", s.searchMovies)
	mux.HandleFunc("GET /api/movies/{id}", s.movieDetails)

	// Favorites
	mux.HandleFunc("GET /api/favorites", s.listFavorites)
	mux.HandleFunc("POST /api/favorites", s.addFavorite)
	mux.HandleFunc("DELETE /api/favorites/{id}", s.removeFavorite)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}

// pathID extracts an integer ID from the URL path.
func pathID(r *http.Request, name string) (int64, error) {
	idStr := r.PathValue(name)
	if idStr == "" {
		return 0, fmt.Errorf("missing path parameter: %s", name)
	}
	return strconv.ParseInt(idStr, 10, 64)
}

// queryInt extracts an optional integer from the query string.
func queryInt(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return i
}

// Handlers

func (s *Server) searchMovies(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	page := queryInt(r, "page", 1)

	result, err := s.movies.Search(r.Context(), query, page)
	if err != nil {
		s.writeMovieError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) movieDetails(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Path parameter 'id' must be a positive number")
		return
	}

	details, err := s.movies.Details(r.Context(), id)
	if err != nil {
		s.writeMovieError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (s *Server) listFavorites(w http.ResponseWriter, r *http.Request) {
	sid := s.sessionID(w, r)

	favs, err := s.favorites.List(sid)
	if err != nil {
		s.writeFavoritesError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, favs)
}

func (s *Server) addFavorite(w http.ResponseWriter, r *http.Request) {
	var fav favorites.Favorite
	if err := json.NewDecoder(r.Body).Decode(&fav); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_BODY", "Request body must be a valid favorite")
		return
	}

	sid := s.sessionID(w, r)
	if err := s.favorites.Add(sid, fav); err != nil {
		s.writeFavoritesError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/favorites/%d", fav.ID))
	w.WriteHeader(http.StatusCreated)
}

func (s *Server) removeFavorite(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Path parameter 'id' must be a positive number")
		return
	}

	sid := s.sessionID(w, r)
	if err := s.favorites.Remove(sid, id); err != nil {
		s.writeFavoritesError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeMovieError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, movies.ErrQueryTooShort), errors.Is(err, movies.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, movies.ErrNotFound):
		writeError(w, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, movies.ErrUpstream):
		s.logger.Error("upstream request failed", "error", err)
		writeError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Movie data is temporarily unavailable")
	default:
		s.logger.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}

func (s *Server) writeFavoritesError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, favorites.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "INVALID_REQUEST", err.Error())
	case errors.Is(err, favorites.ErrLimitExceeded):
		writeError(w, http.StatusBadRequest, "LIMIT_EXCEEDED", err.Error())
	case errors.Is(err, favorites.ErrMissingSession):
		s.logger.Error("session id missing for favorites call")
		writeError(w, http.StatusInternalServerError, "MISSING_SESSION", err.Error())
	default:
		s.logger.Error("unexpected error", "error", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Internal server error")
	}
}
