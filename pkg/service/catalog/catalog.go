// Package catalog exposes the cocktail collection: CRUD pass-throughs to
// the record store plus the sorting and filtering operations.
package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/craftbar/mixology/pkg/store"
	"github.com/craftbar/mixology/pkg/types"
	"github.com/craftbar/mixology/pkg/validation"
)

type Service struct {
	cocktails store.CocktailStoreInterface
}

func New(cocktails store.CocktailStoreInterface) *Service {
	return &Service{cocktails: cocktails}
}

func (s *Service) GetAll(ctx context.Context) []types.Cocktail {
	return s.cocktails.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int) (*types.Cocktail, bool) {
	return s.cocktails.GetByID(ctx, id)
}

// AddNew stores the cocktail unless its name is empty. Returns whether the
// cocktail was accepted.
func (s *Service) AddNew(ctx context.Context, c types.Cocktail) bool {
	if !validation.IsNotEmpty(c.Name) {
		return false
	}
	s.cocktails.Add(ctx, c)
	return true
}

func (s *Service) Update(ctx context.Context, c types.Cocktail) {
	s.cocktails.Update(ctx, c)
}

func (s *Service) Delete(ctx context.Context, id int) {
	s.cocktails.Delete(ctx, id)
}

func (s *Service) NextID(ctx context.Context) int {
	return s.cocktails.NextID(ctx)
}

// SortByDifficulty orders by the difficulty tag with plain string
// comparison, so "EASY" < "HARD" < "MEDIUM". The tag is an open set, not an
// enum; there is no canonical ordering table.
func (s *Service) SortByDifficulty(ctx context.Context) []types.Cocktail {
	out := s.cocktails.List(ctx)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Difficulty < out[j].Difficulty
	})
	return out
}

func (s *Service) SortByPreparationTime(ctx context.Context) []types.Cocktail {
	out := s.cocktails.List(ctx)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PreparationTime < out[j].PreparationTime
	})
	return out
}

// SortByRating orders highest average first; ties keep encounter order.
func (s *Service) SortByRating(ctx context.Context) []types.Cocktail {
	out := s.cocktails.List(ctx)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AverageRating > out[j].AverageRating
	})
	return out
}

func (s *Service) FilterByDifficulty(ctx context.Context, difficulty string) []types.Cocktail {
	out := make([]types.Cocktail, 0)
	for _, c := range s.cocktails.List(ctx) {
		if strings.EqualFold(c.Difficulty, difficulty) {
			out = append(out, c)
		}
	}
	return out
}

func (s *Service) FilterByAlcoholBase(ctx context.Context, alcoholBase string) []types.Cocktail {
	out := make([]types.Cocktail, 0)
	for _, c := range s.cocktails.List(ctx) {
		if strings.EqualFold(c.AlcoholBase, alcoholBase) {
			out = append(out, c)
		}
	}
	return out
}

// FilterByMaxPreparationTime keeps cocktails that take maxTime minutes or
// less, inclusive.
func (s *Service) FilterByMaxPreparationTime(ctx context.Context, maxTime int) []types.Cocktail {
	out := make([]types.Cocktail, 0)
	for _, c := range s.cocktails.List(ctx) {
		if c.PreparationTime <= maxTime {
			out = append(out, c)
		}
	}
	return out
}
