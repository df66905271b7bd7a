package store

import (
	"context"
	"sync"
)

// RatingStore keeps cocktail average ratings consistent with the per-user
// rating maps. It owns no collection; it reads and writes through the user
// and cocktail stores. A single mutex serializes the read-modify-write
// sequences so concurrent rating submissions cannot lose updates.
type RatingStore struct {
	mu        sync.Mutex
	users     *UserStore
	cocktails *CocktailStore
}

func newRatingStore(users *UserStore, cocktails *CocktailStore) *RatingStore {
	return &RatingStore{
		users:     users,
		cocktails: cocktails,
	}
}

// SaveUserRating records the user's rating for a cocktail, persists the
// user collection, then recomputes the cocktail's average over all users.
// The new rating is visible to the recompute because the user record is
// updated in memory before the scan runs. Out-of-range ratings and unknown
// user ids are ignored.
func (s *RatingStore) SaveUserRating(ctx context.Context, userID, cocktailID, rating int) {
	if rating < 1 || rating > 5 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.GetByID(ctx, userID)
	if !ok {
		return
	}
	user.Rate(cocktailID, rating)
	s.users.Update(ctx, *user)

	s.recomputeAverage(ctx, cocktailID)
}

// GetUserRating returns the user's rating for a cocktail, or false when the
// user is unknown or has not rated it.
func (s *RatingStore) GetUserRating(ctx context.Context, userID, cocktailID int) (int, bool) {
	user, ok := s.users.GetByID(ctx, userID)
	if !ok {
		return 0, false
	}
	return user.RatingFor(cocktailID)
}

// RemoveUserRating drops the user's rating entry for a cocktail, no-op if
// absent. The stored average is deliberately left untouched: only the
// rating write path triggers a recompute.
func (s *RatingStore) RemoveUserRating(ctx context.Context, userID, cocktailID int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.GetByID(ctx, userID)
	if !ok {
		return
	}
	user.Unrate(cocktailID)
	s.users.Update(ctx, *user)
}

// recomputeAverage scans every user's rating map for entries keyed by
// cocktailID and stores the mean on the cocktail, or 0 when no ratings
// reference it. O(total users) per call.
func (s *RatingStore) recomputeAverage(ctx context.Context, cocktailID int) {
	var sum float64
	count := 0
	for _, u := range s.users.List(ctx) {
		if r, ok := u.RatingFor(cocktailID); ok {
			sum += float64(r)
			count++
		}
	}

	cocktail, ok := s.cocktails.GetByID(ctx, cocktailID)
	if !ok {
		return
	}
	if count > 0 {
		cocktail.AverageRating = sum / float64(count)
	} else {
		cocktail.AverageRating = 0
	}
	s.cocktails.Update(ctx, *cocktail)
}
