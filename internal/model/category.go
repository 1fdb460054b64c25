package model

// Category is one of the fixed spending/income buckets.
type Category string

const (
	CategoryFood           Category = "Food & Dining"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryIncome         Category = "Income"
	CategoryUtilities      Category = "Utilities"
	CategoryShopping       Category = "Shopping"
	CategoryHealthcare     Category = "Healthcare"
	CategoryOther          Category = "Other"
)

// CategoryInfo describes a category in the category list.
type CategoryInfo struct {
	Name        Category
	Type        TransactionType // the type a category usually carries; Other has none
	Keywords    []string
	Description string
}
