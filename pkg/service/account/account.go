// Package account implements registration, authentication and the rating
// entry points on top of the record store.
package account

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/craftbar/mixology/pkg/auth"
	"github.com/craftbar/mixology/pkg/store"
	"github.com/craftbar/mixology/pkg/types"
	"github.com/craftbar/mixology/pkg/validation"
)

type Service struct {
	users   store.UserStoreInterface
	ratings store.RatingStoreInterface
}

func New(users store.UserStoreInterface, ratings store.RatingStoreInterface) *Service {
	return &Service{
		users:   users,
		ratings: ratings,
	}
}

// Register validates the inputs, refuses duplicate usernames and persists
// the new user. It reports success only; no partial state is written on any
// failure path.
func (s *Service) Register(ctx context.Context, username, email, password string) bool {
	if !validation.IsValidUsername(username) {
		return false
	}
	if !validation.IsValidEmail(email) {
		return false
	}
	if !validation.IsValidPassword(password) {
		return false
	}

	if _, exists := s.users.GetByUsername(ctx, username); exists {
		return false
	}

	user := types.User{
		ID:           s.users.NextID(ctx),
		Username:     username,
		Email:        email,
		PasswordHash: auth.HashPassword(password),
		Ratings:      make(map[string]int),
	}
	s.users.Add(ctx, user)

	logrus.WithField("username", username).Info("registered new user")
	return true
}

// Login returns the authenticated user, or false. Unknown usernames and
// wrong passwords produce the same failure shape, so callers cannot
// enumerate accounts.
func (s *Service) Login(ctx context.Context, username, password string) (*types.User, bool) {
	user, ok := s.users.GetByUsername(ctx, username)
	if ok && auth.VerifyPassword(password, user.PasswordHash) {
		return user, true
	}
	return nil, false
}

func (s *Service) GetUserByID(ctx context.Context, id int) (*types.User, bool) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) UserExists(ctx context.Context, username string) bool {
	_, ok := s.users.GetByUsername(ctx, username)
	return ok
}

// RateCocktail validates the range before delegating to the rating store,
// which checks it again. Both layers reject out-of-range values on their
// own.
func (s *Service) RateCocktail(ctx context.Context, userID, cocktailID, rating int) {
	if rating >= 1 && rating <= 5 {
		s.ratings.SaveUserRating(ctx, userID, cocktailID, rating)
	}
}

func (s *Service) GetUserRating(ctx context.Context, userID, cocktailID int) (int, bool) {
	return s.ratings.GetUserRating(ctx, userID, cocktailID)
}

func (s *Service) RemoveRating(ctx context.Context, userID, cocktailID int) {
	s.ratings.RemoveUserRating(ctx, userID, cocktailID)
}

func (s *Service) DeleteUser(ctx context.Context, id int) {
	s.users.Delete(ctx, id)
}

func (s *Service) UpdateProfile(ctx context.Context, u types.User) {
	s.users.Update(ctx, u)
}
