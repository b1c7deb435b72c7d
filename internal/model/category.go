package model

// Category is one of the fixed set of expense categories. The set is closed:
// classification always resolves to exactly one of these values.
type Category string

// Expense categories.
const (
	CategoryFoodDining     Category = "Food & Dining"
	CategoryGrocery        Category = "Grocery"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryBillsUtilities Category = "Bills & Utilities"
	CategoryHealthcare     Category = "Healthcare"
	CategoryEducation      Category = "Education"
	CategoryOther          Category = "Other"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{
		CategoryFoodDining,
		CategoryGrocery,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryBillsUtilities,
		CategoryHealthcare,
		CategoryEducation,
		CategoryOther,
	}
}
