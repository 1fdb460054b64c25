package categories

import "github.com/saveup-dev/saveup/internal/model"

// Default returns the built-in categories in match order. Other is last and
// has no keywords.
func Default() []model.CategoryInfo {
	return []model.CategoryInfo{
		{Name: model.CategoryFood, Type: model.TypeExpense, Keywords: []string{"grocery", "supermarket", "food"}, Description: "Groceries and eating out"},
		{Name: model.CategoryTransportation, Type: model.TypeExpense, Keywords: []string{"gas", "fuel", "uber", "taxi"}, Description: "Fuel, rides and transit"},
		{Name: model.CategoryEntertainment, Type: model.TypeExpense, Keywords: []string{"netflix", "spotify", "movie"}, Description: "Streaming and leisure"},
		{Name: model.CategoryIncome, Type: model.TypeIncome, Keywords: []string{"salary", "payroll", "wage"}, Description: "Wages and salary"},
		{Name: model.CategoryUtilities, Type: model.TypeExpense, Keywords: []string{"electric", "water", "internet"}, Description: "Household utilities"},
		{Name: model.CategoryShopping, Type: model.TypeExpense, Keywords: []string{"amazon", "shop", "store"}, Description: "Retail purchases"},
		{Name: model.CategoryHealthcare, Type: model.TypeExpense, Keywords: []string{"hospital", "medical", "pharmacy"}, Description: "Medical costs"},
		{Name: model.CategoryOther, Description: "Anything unmatched"},
	}
}
