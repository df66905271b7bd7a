// Package search implements the read-side query operations over the
// catalog. All operations return freshly materialized slices; an empty
// query means "no filter" and yields the full catalog, never an empty
// result.
package search

import (
	"context"
	"sort"
	"strings"

	"github.com/craftbar/mixology/pkg/store"
	"github.com/craftbar/mixology/pkg/types"
)

type Service struct {
	cocktails store.CocktailStoreInterface
}

func New(cocktails store.CocktailStoreInterface) *Service {
	return &Service{cocktails: cocktails}
}

// ByName matches the query as a case-insensitive substring of the name.
func (s *Service) ByName(ctx context.Context, query string) []types.Cocktail {
	if query == "" {
		return s.cocktails.List(ctx)
	}

	lowerQuery := strings.ToLower(query)
	out := make([]types.Cocktail, 0)
	for _, c := range s.cocktails.List(ctx) {
		if strings.Contains(strings.ToLower(c.Name), lowerQuery) {
			out = append(out, c)
		}
	}
	return out
}

// ByAlcoholBase matches the base tag exactly, ignoring case.
func (s *Service) ByAlcoholBase(ctx context.Context, alcoholBase string) []types.Cocktail {
	if alcoholBase == "" {
		return s.cocktails.List(ctx)
	}

	out := make([]types.Cocktail, 0)
	for _, c := range s.cocktails.List(ctx) {
		if strings.EqualFold(c.AlcoholBase, alcoholBase) {
			out = append(out, c)
		}
	}
	return out
}

// ByIngredient keeps cocktails where any ingredient name contains the query
// as a case-insensitive substring.
func (s *Service) ByIngredient(ctx context.Context, ingredientName string) []types.Cocktail {
	if ingredientName == "" {
		return s.cocktails.List(ctx)
	}

	lowerQuery := strings.ToLower(ingredientName)
	out := make([]types.Cocktail, 0)
	for _, c := range s.cocktails.List(ctx) {
		for _, ing := range c.Ingredients {
			if strings.Contains(strings.ToLower(ing.Name), lowerQuery) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Advanced returns cocktails satisfying all active predicates: name
// substring, alcohol base exact and difficulty exact. A predicate whose
// parameter is empty is skipped.
func (s *Service) Advanced(ctx context.Context, name, alcoholBase, difficulty string) []types.Cocktail {
	lowerName := strings.ToLower(name)
	out := make([]types.Cocktail, 0)
	for _, c := range s.cocktails.List(ctx) {
		nameMatch := name == "" || strings.Contains(strings.ToLower(c.Name), lowerName)
		alcoholMatch := alcoholBase == "" || strings.EqualFold(c.AlcoholBase, alcoholBase)
		difficultyMatch := difficulty == "" || strings.EqualFold(c.Difficulty, difficulty)
		if nameMatch && alcoholMatch && difficultyMatch {
			out = append(out, c)
		}
	}
	return out
}

// AvailableAlcoholBases returns the distinct base tags, sorted.
func (s *Service) AvailableAlcoholBases(ctx context.Context) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range s.cocktails.List(ctx) {
		if _, ok := seen[c.AlcoholBase]; !ok {
			seen[c.AlcoholBase] = struct{}{}
			out = append(out, c.AlcoholBase)
		}
	}
	sort.Strings(out)
	return out
}

// AvailableDifficulties returns the distinct difficulty tags in first-seen
// order. The asymmetry with AvailableAlcoholBases is deliberate.
func (s *Service) AvailableDifficulties(ctx context.Context) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, c := range s.cocktails.List(ctx) {
		if _, ok := seen[c.Difficulty]; !ok {
			seen[c.Difficulty] = struct{}{}
			out = append(out, c.Difficulty)
		}
	}
	return out
}
