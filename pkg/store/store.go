// Package store is the durable home for the cocktail and user collections.
// Records live in ordered in-memory slices, every mutation rewrites the
// whole collection to its JSON file, and a cache.Cache keeps a JSON-encoded
// id index for point lookups. Persistence failures are logged and swallowed:
// the store keeps serving the in-memory state.
package store

import (
	"context"

	"github.com/craftbar/mixology/pkg/cache"
)

// Store bundles the per-entity stores. The rating store mutates through the
// cocktail and user stores and has no collection of its own.
type Store struct {
	Cocktail CocktailStoreInterface
	User     UserStoreInterface
	Rating   RatingStoreInterface
}

// New creates a Store, loading both collections from their files. A missing
// or unreadable cocktails file is replaced with the builtin seed catalog; a
// missing users file yields an empty collection.
func New(ctx context.Context, c cache.Cache, cocktailsPath, usersPath string) *Store {
	cocktails := newCocktailStore(c, cocktailsPath)
	cocktails.load(ctx)

	users := newUserStore(c, usersPath)
	users.load(ctx)

	return &Store{
		Cocktail: cocktails,
		User:     users,
		Rating:   newRatingStore(users, cocktails),
	}
}

// Compile-time interface compliance checks
var (
	_ CocktailStoreInterface = (*CocktailStore)(nil)
	_ UserStoreInterface     = (*UserStore)(nil)
	_ RatingStoreInterface   = (*RatingStore)(nil)
)
