package types

import "slices"

// Ingredient is owned by exactly one cocktail and has no identity of its
// own beyond its position in the ingredient list.
type Ingredient struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

// PreparationStep numbers are caller-assigned; the store does not enforce
// contiguity or uniqueness.
type PreparationStep struct {
	StepNumber  int    `json:"stepNumber"`
	Description string `json:"description"`
	Tips        string `json:"tips"`
	Duration    int    `json:"duration"`
}

type Cocktail struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	AlcoholBase     string            `json:"alcoholBase"`
	Difficulty      string            `json:"difficulty"`
	PreparationTime int               `json:"preparationTime"`
	ImageURL        string            `json:"imageUrl"`
	AverageRating   float64           `json:"averageRating"`
	Ingredients     []Ingredient      `json:"ingredients"`
	PreparationSteps []PreparationStep `json:"preparationSteps"`
}

// Clone returns a deep copy so callers can mutate the result without
// affecting stored state.
func (c Cocktail) Clone() Cocktail {
	out := c
	out.Ingredients = slices.Clone(c.Ingredients)
	out.PreparationSteps = slices.Clone(c.PreparationSteps)
	return out
}
