package classify

import "github.com/jmhartley/utter/internal/model"

// defaultRules returns the keyword table in evaluation order. Order matters:
// earlier rules win when keyword sets overlap, so "taxi" must sit above any
// shopping keyword that could also match ride-hailing text.
func defaultRules() []rule {
	return []rule{
		{
			category: model.CategoryGrocery,
			keywords: []string{
				"grocery", "groceries", "supermarket", "hypermarket",
				"carrefour", "lulu", "spinneys", "waitrose", "aldi", "lidl",
				"walmart", "costco", "vegetables", "produce",
			},
		},
		{
			category: model.CategoryTransportation,
			keywords: []string{
				"taxi", "uber", "careem", "lyft", "metro", "bus fare", "train",
				"tram", "petrol", "fuel", "gas station", "parking", "toll",
				"salik", "flight", "ride",
			},
		},
		{
			category: model.CategoryFoodDining,
			keywords: []string{
				"restaurant", "lunch", "dinner", "breakfast", "brunch",
				"coffee", "cafe", "meal", "pizza", "burger", "shawarma",
				"starbucks", "mcdonald", "takeaway", "delivery", "food",
			},
		},
		{
			category: model.CategoryBillsUtilities,
			keywords: []string{
				"electricity", "water bill", "internet", "phone bill", "dewa",
				"utility", "utilities", "rent", "subscription", "netflix",
				"spotify", "bill",
			},
		},
		{
			category: model.CategoryHealthcare,
			keywords: []string{
				"pharmacy", "doctor", "hospital", "clinic", "medicine",
				"dental", "dentist", "checkup", "insurance",
			},
		},
		{
			category: model.CategoryEducation,
			keywords: []string{
				"school", "tuition", "course", "textbook", "university",
				"college", "training", "workshop",
			},
		},
		{
			category: model.CategoryEntertainment,
			keywords: []string{
				"movie", "cinema", "concert", "theme park", "bowling",
				"arcade", "game", "tickets", "entertainment",
			},
		},
		{
			category: model.CategoryShopping,
			keywords: []string{
				"shopping", "mall", "clothes", "shoes", "amazon", "noon",
				"electronics", "gift", "ikea", "furniture", "store",
			},
		},
	}
}
