package store

import "github.com/craftbar/mixology/pkg/types"

// seedCocktails returns the builtin catalog used when no cocktails file
// exists yet or the existing one cannot be parsed.
func seedCocktails() []types.Cocktail {
	return []types.Cocktail{
		{
			ID:              1,
			Name:            "Мартини",
			Description:     "Классический коктейль из водки и вермута",
			AlcoholBase:     "Vodka",
			Difficulty:      "EASY",
			PreparationTime: 5,
			ImageURL:        "resources/images/martini.png",
			Ingredients: []types.Ingredient{
				{Name: "Водка", Quantity: 60, Unit: "мл"},
				{Name: "Сухой вермут", Quantity: 10, Unit: "мл"},
				{Name: "Оливка", Quantity: 1, Unit: "шт"},
			},
			PreparationSteps: []types.PreparationStep{
				{StepNumber: 1, Description: "Охладить коктейльный стакан", Tips: "Заполните стакан льдом и холодной водой", Duration: 30},
				{StepNumber: 2, Description: "Добавить ингредиенты", Tips: "Налейте водку и вермут в стакан", Duration: 20},
				{StepNumber: 3, Description: "Перемешать", Tips: "Перемешивайте со льдом в течение 30 секунд", Duration: 30},
				{StepNumber: 4, Description: "Процедить", Tips: "Процедите в охлажденный бокал", Duration: 15},
			},
		},
		{
			ID:              2,
			Name:            "Дайкири",
			Description:     "Освежающий коктейль с ромом и лимоном",
			AlcoholBase:     "Rum",
			Difficulty:      "EASY",
			PreparationTime: 5,
			ImageURL:        "resources/images/daiquiri.png",
			Ingredients: []types.Ingredient{
				{Name: "Белый ром", Quantity: 45, Unit: "мл"},
				{Name: "Свежевыжатый лимонный сок", Quantity: 25, Unit: "мл"},
				{Name: "Сахарный сироп", Quantity: 15, Unit: "мл"},
			},
			PreparationSteps: []types.PreparationStep{
				{StepNumber: 1, Description: "Добавить ингредиенты в шейкер", Tips: "Используйте качественный свежий сок", Duration: 20},
				{StepNumber: 2, Description: "Заполнить льдом", Tips: "Добавьте лед и закройте шейкер", Duration: 15},
				{StepNumber: 3, Description: "Встряхнуть", Tips: "Встряхивайте в течение 10-15 секунд", Duration: 15},
				{StepNumber: 4, Description: "Процедить", Tips: "Процедите в охлажденный бокал", Duration: 10},
			},
		},
	}
}
