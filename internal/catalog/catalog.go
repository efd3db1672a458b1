package catalog

// Category identifies one of the six fixed menu groupings.
type Category string

const (
	Starters   Category = "starters"
	MeatCurry  Category = "meatCurry"
	Extras     Category = "extras"
	Starches   Category = "starches"
	Salads     Category = "salads"
	Vegetables Category = "vegetables"
)

// Catalog maps each category to its ordered list of item names.
// Immutable after load; item names are unique within a category.
type Catalog map[Category][]string

// Items returns a copy of the ordered item list for a category.
func (c Catalog) Items(cat Category) []string {
	items := c[cat]
	out := make([]string, len(items))
	copy(out, items)
	return out
}

// Contains reports whether an item belongs to a category's list.
func (c Catalog) Contains(cat Category, item string) bool {
	for _, it := range c[cat] {
		if it == item {
			return true
		}
	}
	return false
}

// Default returns the embedded Master Cookery menu.
func Default() Catalog {
	return Catalog{
		Starters: {
			"Charcuterie Boards", "Chicken Winglets", "Chicken Strips",
			"Fruit Platter", "Chicken Skewers", "French Toast With Tuna Topping",
			"Meat Balls", "Samosa", "Spring Rolls", "Chicken & Mayo Rolls",
		},
		MeatCurry: {
			"Beef Curry", "Chicken Curry", "Chicken Briyani", "Mutton Curry",
			"Roast Chicken", "Roast Beef", "Roast Pork", "Grilled Hake",
			"Roast Lamb",
		},
		Extras: {
			"Chicken & Prawn Curry", "Butter Chicken Curry", "Rich Oxtail",
			"Mutton Briyani", "Fish Curry", "Sushi Platter",
		},
		Starches: {
			"Creamy Chicken & Mushroom Pasta", "Creamy Samp", "Isigwaqane",
			"Jeqe", "Samp & Beans", "Savoury Rice", "Plain Rice", "Mealie Bread",
		},
		Salads: {
			"Coleslaw", "Chakalaka", "Beetroot Salad", "3 Bean Salad",
			"Green Beans & Smoked Chicken", "Pasta Salad", "Greek Salad",
			"Cous Cous Summer Salad",
		},
		Vegetables: {
			"Baby Potatoes in Garlic Sauce", "Creamy Spinach", "Roasted Potatoes",
			"Roast Vegetables", "Honey Glazed Baby Carrots & Green Beans",
			"Cauliflower & Broccoli in Cheese Sauce", "Creamy Potato Bake",
			"Sweet Potato & Veg Roast",
		},
	}
}
