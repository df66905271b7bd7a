package catalog

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

func setupService(t *testing.T, cocktails ...types.Cocktail) *Service {
	t.Helper()
	c, err := inmemory.NewCache(&inmemory.Config{DefaultExpiration: 300, CleanupInterval: 600})
	require.NoError(t, err)

	dir := t.TempDir()
	s := store.New(context.Background(), c,
		filepath.Join(dir, "cocktails.json"),
		filepath.Join(dir, "users.json"))

	ctx := context.Background()
	// replace the seed catalog with the fixtures
	s.Cocktail.Delete(ctx, 1)
	s.Cocktail.Delete(ctx, 2)
	for _, cocktail := range cocktails {
		s.Cocktail.Add(ctx, cocktail)
	}
	return New(s.Cocktail)
}

func fixture(id int, name, base, difficulty string, prepTime int, rating float64) types.Cocktail {
	return types.Cocktail{
		ID:              id,
		Name:            name,
		AlcoholBase:     base,
		Difficulty:      difficulty,
		PreparationTime: prepTime,
		AverageRating:   rating,
	}
}

func names(cocktails []types.Cocktail) []string {
	out := make([]string, 0, len(cocktails))
	for _, c := range cocktails {
		out = append(out, c.Name)
	}
	return out
}

func TestService_AddNew(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	assert.False(t, svc.AddNew(ctx, fixture(1, "", "Gin", "EASY", 5, 0)))
	assert.False(t, svc.AddNew(ctx, fixture(1, "   ", "Gin", "EASY", 5, 0)))
	assert.Empty(t, svc.GetAll(ctx))

	assert.True(t, svc.AddNew(ctx, fixture(1, "Negroni", "Gin", "MEDIUM", 5, 0)))
	assert.Len(t, svc.GetAll(ctx), 1)
}

func TestService_SortByDifficulty_PlainStringOrder(t *testing.T) {
	svc := setupService(t,
		fixture(1, "A", "Gin", "MEDIUM", 5, 0),
		fixture(2, "B", "Gin", "HARD", 5, 0),
		fixture(3, "C", "Gin", "EASY", 5, 0),
	)

	sorted := svc.SortByDifficulty(context.Background())
	// lexicographic, so EASY < HARD < MEDIUM
	assert.Equal(t, []string{"C", "B", "A"}, names(sorted))
}

func TestService_SortByPreparationTime(t *testing.T) {
	svc := setupService(t,
		fixture(1, "Slow", "Gin", "EASY", 15, 0),
		fixture(2, "Fast", "Gin", "EASY", 3, 0),
		fixture(3, "Medium", "Gin", "EASY", 8, 0),
	)

	sorted := svc.SortByPreparationTime(context.Background())
	assert.Equal(t, []string{"Fast", "Medium", "Slow"}, names(sorted))
}

func TestService_SortByRating_DescendingStable(t *testing.T) {
	svc := setupService(t,
		fixture(1, "First", "Gin", "EASY", 5, 3.0),
		fixture(2, "Second", "Gin", "EASY", 5, 5.0),
		fixture(3, "Third", "Gin", "EASY", 5, 3.0),
	)

	sorted := svc.SortByRating(context.Background())
	// ties keep encounter order: First before Third
	assert.Equal(t, []string{"Second", "First", "Third"}, names(sorted))
}

func TestService_FilterByDifficulty_CaseInsensitive(t *testing.T) {
	svc := setupService(t,
		fixture(1, "A", "Gin", "EASY", 5, 0),
		fixture(2, "B", "Gin", "HARD", 5, 0),
	)

	assert.Equal(t, []string{"A"}, names(svc.FilterByDifficulty(context.Background(), "easy")))
	assert.Empty(t, svc.FilterByDifficulty(context.Background(), "MEDIUM"))
}

func TestService_FilterByAlcoholBase_CaseInsensitive(t *testing.T) {
	svc := setupService(t,
		fixture(1, "A", "Rum", "EASY", 5, 0),
		fixture(2, "B", "Vodka", "EASY", 5, 0),
	)

	assert.Equal(t, []string{"B"}, names(svc.FilterByAlcoholBase(context.Background(), "vodka")))
}

func TestService_FilterByMaxPreparationTime_Inclusive(t *testing.T) {
	svc := setupService(t,
		fixture(1, "Quick", "Gin", "EASY", 5, 0),
		fixture(2, "Exact", "Gin", "EASY", 10, 0),
		fixture(3, "Slow", "Gin", "EASY", 11, 0),
	)

	kept := svc.FilterByMaxPreparationTime(context.Background(), 10)
	assert.Equal(t, []string{"Quick", "Exact"}, names(kept))
}
