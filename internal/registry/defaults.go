package registry

// DefaultCategories is the built-in keyword table.
var DefaultCategories = []Category{
	{Name: "food", Keywords: []string{
		"grocery", "groceries", "restaurant", "cafe", "coffee",
		"lunch", "dinner", "breakfast", "food", "meal", "eating",
		"dmart", "reliance", "bigbasket", "swiggy", "zomato",
		"biryani", "chai", "tea", "snack",
	}},
	{Name: "transportation", Keywords: []string{
		"uber", "lyft", "gas", "fuel", "parking", "taxi",
		"metro", "bus", "train", "travel", "trip", "flight",
		"car", "vehicle", "commute", "auto", "rickshaw",
		"ola", "rapido", "petrol", "diesel",
	}},
	{Name: "entertainment", Keywords: []string{
		"movie", "cinema", "netflix", "spotify", "game",
		"concert", "theater", "fun", "entertainment",
		"hotstar", "prime", "pvr", "inox", "gaming",
	}},
	{Name: "utilities", Keywords: []string{
		"electric", "electricity", "water", "internet", "phone",
		"mobile", "bill", "utility", "broadband", "wifi",
		"jio", "airtel", "vi", "bsnl", "gas", "lpg",
	}},
	{Name: "shopping", Keywords: []string{
		"amazon", "mall", "store", "shop", "clothing", "clothes",
		"purchase", "bought", "flipkart", "myntra", "ajio", "meesho",
		"shopping", "shirt", "shoes",
	}},
	{Name: "healthcare", Keywords: []string{
		"doctor", "pharmacy", "medicine", "hospital", "clinic",
		"medical", "health", "apollo", "fortis", "prescription",
	}},
	{Name: "other"},
}

// Default returns a registry built from DefaultCategories.
func Default() *CategoryRegistry {
	r, err := NewCategoryRegistry(DefaultCategories)
	if err != nil {
		// DefaultCategories is static and always valid.
		panic(err)
	}
	return r
}
