package store

import (
	"context"
	"encoding/json"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/craftbar/mixology/pkg/cache"
	"github.com/craftbar/mixology/pkg/fileio"
	"github.com/craftbar/mixology/pkg/types"
)

// CocktailStore holds the cocktail collection. The ordered slice is the
// source of truth (encounter order is observable through sorting and
// distinct-value queries); the cache only serves as an id index with
// "cocktail:<id>" keys.
type CocktailStore struct {
	mu        sync.RWMutex
	cocktails []types.Cocktail
	cache     cache.Cache
	path      string
}

func newCocktailStore(c cache.Cache, path string) *CocktailStore {
	return &CocktailStore{
		cache: c,
		path:  path,
	}
}

// cocktailKey returns the prefixed cache key for a cocktail id.
func cocktailKey(id int) string {
	return "cocktail:" + strconv.Itoa(id)
}

// load reads the collection from disk. An absent file or a parse failure
// falls back to the builtin seed catalog, which is persisted immediately.
func (s *CocktailStore) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := fileio.Load(s.path)
	if err == nil {
		var cocktails []types.Cocktail
		if jsonErr := json.Unmarshal(data, &cocktails); jsonErr == nil {
			s.cocktails = cocktails
			s.reindexLocked(ctx)
			return
		}
		logrus.WithField("path", s.path).Warn("cocktails file is not valid JSON, seeding defaults")
	} else if err != fileio.ErrNotExist {
		logrus.WithField("path", s.path).WithError(err).Warn("failed to load cocktails, seeding defaults")
	}

	s.cocktails = seedCocktails()
	s.reindexLocked(ctx)
	s.persistLocked(ctx)
}

// List returns a defensive copy of all cocktails in encounter order.
func (s *CocktailStore) List(ctx context.Context) []types.Cocktail {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.Cocktail, 0, len(s.cocktails))
	for _, c := range s.cocktails {
		out = append(out, c.Clone())
	}
	return out
}

// GetByID returns the cocktail with the given id, or false if absent.
// The cache index is consulted first; a miss falls back to a linear scan
// and repopulates the index.
func (s *CocktailStore) GetByID(ctx context.Context, id int) (*types.Cocktail, bool) {
	if val, err := s.cache.Get(ctx, cocktailKey(id)); err == nil {
		var c types.Cocktail
		if jsonErr := json.Unmarshal([]byte(val.(string)), &c); jsonErr == nil {
			return &c, true
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.cocktails {
		if c.ID == id {
			found := c.Clone()
			s.indexOne(ctx, found)
			return &found, true
		}
	}
	return nil, false
}

// Add appends the cocktail and persists the full collection.
func (s *CocktailStore) Add(ctx context.Context, c types.Cocktail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cocktails = append(s.cocktails, c.Clone())
	s.indexOne(ctx, c)
	s.persistLocked(ctx)
}

// Update replaces the cocktail with a matching id in place, preserving its
// position. Updating an unknown id is a silent no-op.
func (s *CocktailStore) Update(ctx context.Context, c types.Cocktail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cocktails {
		if s.cocktails[i].ID == c.ID {
			s.cocktails[i] = c.Clone()
			s.indexOne(ctx, c)
			s.persistLocked(ctx)
			return
		}
	}
}

// Delete removes the cocktail with the given id and persists.
func (s *CocktailStore) Delete(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cocktails[:0]
	for _, c := range s.cocktails {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.cocktails = kept

	if err := s.cache.Delete(ctx, cocktailKey(id)); err != nil {
		logrus.WithField("id", id).WithError(err).Warn("failed to drop cocktail from cache index")
	}
	s.persistLocked(ctx)
}

// NextID returns max(existing ids)+1, or 1 for an empty collection.
func (s *CocktailStore) NextID(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	maxID := 0
	for _, c := range s.cocktails {
		if c.ID > maxID {
			maxID = c.ID
		}
	}
	return maxID + 1
}

// persistLocked rewrites the whole collection to disk. Must be called with
// the write lock held. A failure is logged, not propagated: the in-memory
// state stays authoritative.
func (s *CocktailStore) persistLocked(ctx context.Context) {
	data, err := json.MarshalIndent(s.cocktails, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("failed to marshal cocktails")
		return
	}
	if err := fileio.Save(s.path, data); err != nil {
		logrus.WithField("path", s.path).WithError(err).Error("failed to save cocktails")
	}
}

// indexOne writes one record into the cache index. Index failures only cost
// lookup speed, so they are logged and ignored.
func (s *CocktailStore) indexOne(ctx context.Context, c types.Cocktail) {
	data, err := json.Marshal(c)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, cocktailKey(c.ID), string(data), cache.NoExpiration); err != nil {
		logrus.WithField("id", c.ID).WithError(err).Warn("failed to index cocktail in cache")
	}
}

func (s *CocktailStore) reindexLocked(ctx context.Context) {
	for _, c := range s.cocktails {
		s.indexOne(ctx, c)
	}
}
