package store

import (
	"context"

	"github.com/craftbar/mixology/pkg/types"
)

// CocktailStoreInterface defines operations over the cocktail collection.
// This interface enables mocking in tests and follows the dependency
// inversion principle.
type CocktailStoreInterface interface {
	// List returns a defensive copy of all cocktails in encounter order.
	List(ctx context.Context) []types.Cocktail

	// GetByID returns the cocktail with the given id, or false if absent.
	GetByID(ctx context.Context, id int) (*types.Cocktail, bool)

	// Add appends the cocktail and persists the collection. The caller is
	// expected to have assigned the id via NextID.
	Add(ctx context.Context, c types.Cocktail)

	// Update replaces the cocktail with a matching id in place. Updating an
	// unknown id is a silent no-op.
	Update(ctx context.Context, c types.Cocktail)

	// Delete removes the cocktail with the given id and persists. Deleting
	// an unknown id is a silent no-op.
	Delete(ctx context.Context, id int)

	// NextID returns max(existing ids)+1, or 1 for an empty collection.
	// This is a function of current state, not a counter: after a deletion
	// an id below the current maximum may be handed out again.
	NextID(ctx context.Context) int
}

// UserStoreInterface defines operations over the user collection.
type UserStoreInterface interface {
	// List returns a defensive copy of all users in encounter order.
	List(ctx context.Context) []types.User

	// GetByID returns the user with the given id, or false if absent.
	GetByID(ctx context.Context, id int) (*types.User, bool)

	// GetByUsername returns the user with an exactly matching username,
	// or false if absent.
	GetByUsername(ctx context.Context, username string) (*types.User, bool)

	// Add appends the user and persists the collection.
	Add(ctx context.Context, u types.User)

	// Update replaces the user with a matching id in place. Updating an
	// unknown id is a silent no-op.
	Update(ctx context.Context, u types.User)

	// Delete removes the user with the given id and persists.
	Delete(ctx context.Context, id int)

	// NextID returns max(existing ids)+1, or 1 for an empty collection.
	NextID(ctx context.Context) int
}

// RatingStoreInterface keeps cocktail average ratings consistent with the
// per-user rating maps, which are the source of truth.
type RatingStoreInterface interface {
	// SaveUserRating records the user's rating for a cocktail and recomputes
	// the cocktail's average over the whole user population. Ratings outside
	// [1,5] and unknown user ids are ignored.
	SaveUserRating(ctx context.Context, userID, cocktailID, rating int)

	// GetUserRating returns the user's rating for a cocktail, or false when
	// the user is unknown or has not rated it.
	GetUserRating(ctx context.Context, userID, cocktailID int) (int, bool)

	// RemoveUserRating drops the user's rating entry for a cocktail. The
	// cocktail's stored average is not recomputed here; only the rating
	// write path triggers a recompute.
	RemoveUserRating(ctx context.Context, userID, cocktailID int)
}
