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

// UserStore holds the user collection, mirroring CocktailStore: ordered
// slice as source of truth, cache index under "user:<id>" keys, full-file
// rewrite on every mutation.
type UserStore struct {
	mu    sync.RWMutex
	users []types.User
	cache cache.Cache
	path  string
}

func newUserStore(c cache.Cache, path string) *UserStore {
	return &UserStore{
		cache: c,
		path:  path,
	}
}

// userKey returns the prefixed cache key for a user id.
func userKey(id int) string {
	return "user:" + strconv.Itoa(id)
}

// load reads the collection from disk. Unlike cocktails there is no seed
// data: an absent or unreadable file yields an empty collection.
func (s *UserStore) load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := fileio.Load(s.path)
	if err != nil {
		if err != fileio.ErrNotExist {
			logrus.WithField("path", s.path).WithError(err).Warn("failed to load users, starting empty")
		}
		return
	}

	var users []types.User
	if err := json.Unmarshal(data, &users); err != nil {
		logrus.WithField("path", s.path).Warn("users file is not valid JSON, starting empty")
		return
	}
	s.users = users
	for _, u := range s.users {
		s.indexOne(ctx, u)
	}
}

// List returns a defensive copy of all users in encounter order.
func (s *UserStore) List(ctx context.Context) []types.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]types.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u.Clone())
	}
	return out
}

// GetByID returns the user with the given id, or false if absent.
func (s *UserStore) GetByID(ctx context.Context, id int) (*types.User, bool) {
	if val, err := s.cache.Get(ctx, userKey(id)); err == nil {
		var u types.User
		if jsonErr := json.Unmarshal([]byte(val.(string)), &u); jsonErr == nil {
			return &u, true
		}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			found := u.Clone()
			s.indexOne(ctx, found)
			return &found, true
		}
	}
	return nil, false
}

// GetByUsername returns the first user with an exactly matching username.
// Usernames are unique by the account service's registration check, so at
// most one match exists.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*types.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Username == username {
			found := u.Clone()
			return &found, true
		}
	}
	return nil, false
}

// Add appends the user and persists the full collection.
func (s *UserStore) Add(ctx context.Context, u types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = append(s.users, u.Clone())
	s.indexOne(ctx, u)
	s.persistLocked(ctx)
}

// Update replaces the user with a matching id in place, preserving its
// position. Updating an unknown id is a silent no-op.
func (s *UserStore) Update(ctx context.Context, u types.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = u.Clone()
			s.indexOne(ctx, u)
			s.persistLocked(ctx)
			return
		}
	}
}

// Delete removes the user with the given id and persists.
func (s *UserStore) Delete(ctx context.Context, id int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.users[:0]
	for _, u := range s.users {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.users = kept

	if err := s.cache.Delete(ctx, userKey(id)); err != nil {
		logrus.WithField("id", id).WithError(err).Warn("failed to drop user from cache index")
	}
	s.persistLocked(ctx)
}

// NextID returns max(existing ids)+1, or 1 for an empty collection.
func (s *UserStore) NextID(ctx context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	maxID := 0
	for _, u := range s.users {
		if u.ID > maxID {
			maxID = u.ID
		}
	}
	return maxID + 1
}

// persistLocked rewrites the whole collection to disk. Must be called with
// the write lock held.
func (s *UserStore) persistLocked(ctx context.Context) {
	data, err := json.MarshalIndent(s.users, "", "  ")
	if err != nil {
		logrus.WithError(err).Error("failed to marshal users")
		return
	}
	if err := fileio.Save(s.path, data); err != nil {
		logrus.WithField("path", s.path).WithError(err).Error("failed to save users")
	}
}

func (s *UserStore) indexOne(ctx context.Context, u types.User) {
	data, err := json.Marshal(u)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, userKey(u.ID), string(data), cache.NoExpiration); err != nil {
		logrus.WithField("id", u.ID).WithError(err).Warn("failed to index user in cache")
	}
}
