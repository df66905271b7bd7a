package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/craftbar/mixology/pkg/cache"
	"github.com/craftbar/mixology/pkg/cache/inmemory"
	"github.com/craftbar/mixology/pkg/types"
)

// newTestCache returns a fresh in-memory cache for store tests.
func newTestCache(t *testing.T) cache.Cache {
	t.Helper()
	c, err := inmemory.NewCache(&inmemory.Config{
		DefaultExpiration: 300,
		CleanupInterval:   600,
	})
	require.NoError(t, err)
	return c
}

// newTestStore builds a Store persisting into a temp directory. The
// cocktails file does not exist yet, so the store starts from seed data.
func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	s := New(context.Background(), newTestCache(t),
		filepath.Join(dir, "cocktails.json"),
		filepath.Join(dir, "users.json"))
	return s, dir
}

// testCocktail returns a minimal valid cocktail with the given id.
func testCocktail(id int, name string) types.Cocktail {
	return types.Cocktail{
		ID:              id,
		Name:            name,
		Description:     "test cocktail",
		AlcoholBase:     "Gin",
		Difficulty:      "MEDIUM",
		PreparationTime: 7,
		Ingredients: []types.Ingredient{
			{Name: "Gin", Quantity: 50, Unit: "ml"},
		},
		PreparationSteps: []types.PreparationStep{
			{StepNumber: 1, Description: "pour", Tips: "", Duration: 10},
		},
	}
}

// testUser returns a user record with the given id and username.
func testUser(id int, username string) types.User {
	return types.User{
		ID:           id,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hash",
		Ratings:      make(map[string]int),
	}
}
