// Package favorites keeps anonymous, per-session favorite movies in memory.
// Each session owns a bucket that expires seven days after its last access
// and holds at most 200 distinct movies. Expired buckets are replaced lazily
// on the next access; there is no background sweep.
package favorites

import (
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const (
	sessionTTL    = 7 * 24 * time.Hour
	maxPerSession = 200
)

// Favorite is one bookmarked movie. Identity is ID alone; the remaining
// fields are display metadata. An empty Title is treated as missing.
type Favorite struct {
	ID        int64  `json:"id"`
	Title     string `json:"title,omitempty"`
	Year      string `json:"year,omitempty"`
	PosterURL string `json:"posterUrl,omitempty"`
}

type bucket struct {
	items     map[int64]Favorite
	expiresAt time.Time
}

// Store maps session ids to favorite buckets. A single mutex serializes
// bucket resolution and mutation, so a rotation can never race a write
// for the same session.
type Store struct {
	mu       sync.Mutex
	buckets  map[string]*bucket
	collator *collate.Collator
	now      func() time.Time
}

// NewStore creates an empty favorites store.
func NewStore() *Store {
	return &Store{
		buckets:  make(map[string]*bucket),
		collator: collate.New(language.Und, collate.IgnoreCase),
		now:      time.Now,
	}
}

// List returns the session's favorites ordered by title ascending
// (case-insensitive, missing titles last), then by id ascending.
func (s *Store) List(sessionID string) ([]Favorite, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.bucketFor(sessionID)
	if err != nil {
		return nil, err
	}

	out := make([]Favorite, 0, len(b.items))
	for _, f := range b.items {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool {
		fi, fj := out[i], out[j]
		if (fi.Title == "") != (fj.Title == "") {
			return fj.Title == ""
		}
		if c := s.collator.CompareString(fi.Title, fj.Title); c != 0 {
			return c < 0
		}
		return fi.ID < fj.ID
	})
	return out, nil
}

// Add stores a copy of fav under its id, overwriting any prior entry with
// the same id. Adding a new id to a full bucket fails with ErrLimitExceeded
// and leaves the bucket unchanged; re-adding an existing id always succeeds.
func (s *Store) Add(sessionID string, fav Favorite) error {
	if fav.ID <= 0 {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.bucketFor(sessionID)
	if err != nil {
		return err
	}

	if _, exists := b.items[fav.ID]; !exists && len(b.items) >= maxPerSession {
		return ErrLimitExceeded
	}
	b.items[fav.ID] = fav
	return nil
}

// Remove deletes the favorite with the given id. Removing an id that is
// not present is a no-op, not an error.
func (s *Store) Remove(sessionID string, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := s.bucketFor(sessionID)
	if err != nil {
		return err
	}

	delete(b.items, id)
	return nil
}

// bucketFor resolves the session's bucket, creating it on first access and
// rotating it (discarding prior contents) once its TTL has lapsed. Every
// resolution extends the bucket's expiry. Callers must hold s.mu.
func (s *Store) bucketFor(sessionID string) (*bucket, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	now := s.now()
	b, ok := s.buckets[sessionID]
	if !ok || !now.Before(b.expiresAt) {
		b = &bucket{items: make(map[int64]Favorite)}
		s.buckets[sessionID] = b
	}
	b.expiresAt = now.Add(sessionTTL)
	return b, nil
}
