package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserStore_StartsEmptyWhenFileAbsent(t *testing.T) {
	s, _ := newTestStore(t)
	assert.Empty(t, s.User.List(context.Background()))
}

func TestUserStore_AddAndGet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.User.Add(ctx, testUser(1, "alice"))

	u, ok := s.User.GetByID(ctx, 1)
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)

	_, ok = s.User.GetByID(ctx, 2)
	assert.False(t, ok)
}

func TestUserStore_GetByUsername(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.User.Add(ctx, testUser(1, "alice"))
	s.User.Add(ctx, testUser(2, "bob"))

	u, ok := s.User.GetByUsername(ctx, "bob")
	require.True(t, ok)
	assert.Equal(t, 2, u.ID)

	// exact match only
	_, ok = s.User.GetByUsername(ctx, "Bob")
	assert.False(t, ok)

	_, ok = s.User.GetByUsername(ctx, "carol")
	assert.False(t, ok)
}

func TestUserStore_UpdateMissingIDIsNoOp(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.User.Add(ctx, testUser(1, "alice"))
	s.User.Update(ctx, testUser(2, "ghost"))

	assert.Len(t, s.User.List(ctx), 1)
	_, ok := s.User.GetByUsername(ctx, "ghost")
	assert.False(t, ok)
}

func TestUserStore_Delete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.User.Add(ctx, testUser(1, "alice"))
	s.User.Delete(ctx, 1)

	assert.Empty(t, s.User.List(ctx))
	_, ok := s.User.GetByID(ctx, 1)
	assert.False(t, ok)
}

func TestUserStore_NextID(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assert.Equal(t, 1, s.User.NextID(ctx))

	s.User.Add(ctx, testUser(1, "alice"))
	s.User.Add(ctx, testUser(3, "bob"))
	assert.Equal(t, 4, s.User.NextID(ctx))

	s.User.Delete(ctx, 3)
	assert.Equal(t, 2, s.User.NextID(ctx))
}

func TestUserStore_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cocktailsPath := filepath.Join(dir, "cocktails.json")
	usersPath := filepath.Join(dir, "users.json")
	ctx := context.Background()

	s := New(ctx, newTestCache(t), cocktailsPath, usersPath)
	alice := testUser(1, "alice")
	alice.Ratings["2"] = 5
	s.User.Add(ctx, alice)
	before := s.User.List(ctx)

	reloaded := New(ctx, newTestCache(t), cocktailsPath, usersPath)
	assert.Equal(t, before, reloaded.User.List(ctx))
}

func TestUserStore_ListReturnsDefensiveCopy(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	s.User.Add(ctx, testUser(1, "alice"))
	list := s.User.List(ctx)
	list[0].Username = "mutated"
	list[0].Ratings["1"] = 5

	fresh := s.User.List(ctx)
	assert.Equal(t, "alice", fresh[0].Username)
	assert.Empty(t, fresh[0].Ratings)
}
