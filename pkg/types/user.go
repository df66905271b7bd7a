package types

import "strconv"

// User holds the account record plus the user's ratings keyed by
// string-encoded cocktail id, matching the durable JSON format.
type User struct {
	ID           int            `json:"id"`
	Username     string         `json:"username"`
	Email        string         `json:"email"`
	PasswordHash string         `json:"passwordHash"`
	Ratings      map[string]int `json:"ratings"`
}

// Rate sets or overwrites the user's rating for a cocktail.
func (u *User) Rate(cocktailID, rating int) {
	if u.Ratings == nil {
		u.Ratings = make(map[string]int)
	}
	u.Ratings[strconv.Itoa(cocktailID)] = rating
}

// Unrate removes the rating entry for a cocktail, no-op if absent.
func (u *User) Unrate(cocktailID int) {
	delete(u.Ratings, strconv.Itoa(cocktailID))
}

// RatingFor returns the user's rating for a cocktail and whether one exists.
func (u *User) RatingFor(cocktailID int) (int, bool) {
	r, ok := u.Ratings[strconv.Itoa(cocktailID)]
	return r, ok
}

// Clone returns a deep copy so callers can mutate the result without
// affecting stored state.
func (u User) Clone() User {
	out := u
	if u.Ratings != nil {
		out.Ratings = make(map[string]int, len(u.Ratings))
		for k, v := range u.Ratings {
			out.Ratings[k] = v
		}
	}
	return out
}
