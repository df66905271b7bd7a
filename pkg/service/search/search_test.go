package search

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftbar/mixology/pkg/cache/inmemory"
	"github.com/craftbar/mixology/pkg/store"
	"github.com/craftbar/mixology/pkg/types"
)

// setupSeededService builds the service over the builtin seed catalog:
// "Мартини" (Vodka, EASY) and "Дайкири" (Rum, EASY).
func setupSeededService(t *testing.T) *Service {
	t.Helper()
	c, err := inmemory.NewCache(&inmemory.Config{DefaultExpiration: 300, CleanupInterval: 600})
	require.NoError(t, err)

	dir := t.TempDir()
	s := store.New(context.Background(), c,
		filepath.Join(dir, "cocktails.json"),
		filepath.Join(dir, "users.json"))
	return New(s.Cocktail)
}

func names(cocktails []types.Cocktail) []string {
	out := make([]string, 0, len(cocktails))
	for _, c := range cocktails {
		out = append(out, c.Name)
	}
	return out
}

func TestService_ByName(t *testing.T) {
	svc := setupSeededService(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "empty query returns full catalog", query: "", want: []string{"Мартини", "Дайкири"}},
		{name: "case-insensitive substring", query: "мАрТ", want: []string{"Мартини"}},
		{name: "no match returns empty", query: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(svc.ByName(ctx, tt.query)))
		})
	}
}

func TestService_ByAlcoholBase(t *testing.T) {
	svc := setupSeededService(t)
	ctx := context.Background()

	assert.Equal(t, []string{"Дайкири"}, names(svc.ByAlcoholBase(ctx, "rum")))
	assert.Equal(t, []string{"Мартини", "Дайкири"}, names(svc.ByAlcoholBase(ctx, "")))
	assert.Empty(t, svc.ByAlcoholBase(ctx, "Tequila"))
}

func TestService_ByIngredient(t *testing.T) {
	svc := setupSeededService(t)
	ctx := context.Background()

	// "ром" matches "Белый ром" in the daiquiri
	assert.Equal(t, []string{"Дайкири"}, names(svc.ByIngredient(ctx, "ром")))
	assert.Equal(t, []string{"Мартини", "Дайкири"}, names(svc.ByIngredient(ctx, "")))
	assert.Empty(t, svc.ByIngredient(ctx, "ananas"))
}

func TestService_Advanced(t *testing.T) {
	svc := setupSeededService(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		query      string
		base       string
		difficulty string
		want       []string
	}{
		{
			name:  "name predicate only",
			query: "дай",
			want:  []string{"Дайкири"},
		},
		{
			name: "all predicates empty returns everything",
			want: []string{"Мартини", "Дайкири"},
		},
		{
			name:       "difficulty alone matches both",
			difficulty: "easy",
			want:       []string{"Мартини", "Дайкири"},
		},
		{
			name:       "conjunction narrows",
			base:       "Vodka",
			difficulty: "EASY",
			want:       []string{"Мартини"},
		},
		{
			name:  "conflicting predicates match nothing",
			query: "дай",
			base:  "Vodka",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Advanced(ctx, tt.query, tt.base, tt.difficulty)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestService_AvailableAlcoholBases_Sorted(t *testing.T) {
	svc := setupSeededService(t)

	// seed order is Vodka then Rum; the result is sorted and de-duplicated
	assert.Equal(t, []string{"Rum", "Vodka"}, svc.AvailableAlcoholBases(context.Background()))
}

func TestService_AvailableDifficulties_FirstSeenOrder(t *testing.T) {
	c, err := inmemory.NewCache(&inmemory.Config{DefaultExpiration: 300, CleanupInterval: 600})
	require.NoError(t, err)
	dir := t.TempDir()
	ctx := context.Background()
	s := store.New(ctx, c,
		filepath.Join(dir, "cocktails.json"),
		filepath.Join(dir, "users.json"))

	s.Cocktail.Add(ctx, types.Cocktail{ID: 3, Name: "Zombie", Difficulty: "HARD"})
	s.Cocktail.Add(ctx, types.Cocktail{ID: 4, Name: "Mule", Difficulty: "EASY"})
	s.Cocktail.Add(ctx, types.Cocktail{ID: 5, Name: "Sazerac", Difficulty: "ADVANCED"})

	svc := New(s.Cocktail)
	// first-seen order, not sorted: the two seeds are EASY, then HARD, ADVANCED
	assert.Equal(t, []string{"EASY", "HARD", "ADVANCED"}, svc.AvailableDifficulties(ctx))
}
