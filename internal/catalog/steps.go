package catalog

// Step is the per-category wizard rule: selection limit, the
// included-in-full flag, and the copy shown to the customer.
type Step struct {
	Category    Category `json:"category"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Limit       *int     `json:"limit"` // nil = unbounded
	Included    bool     `json:"included"`
}

// The one fixed wizard ordering. Defined at build time, never at runtime.
var wizardSteps = []Step{
	{
		Category:    Starters,
		Title:       "Step 1: Starters (Included)",
		Description: "All starters are included with your menu",
		Included:    true,
	},
	{
		Category:    MeatCurry,
		Title:       "Step 2: Meat / Curry",
		Description: "Choose up to 3 options",
		Limit:       limit(3),
	},
	{
		Category:    Vegetables,
		Title:       "Step 3: Vegetables",
		Description: "Choose up to 2 options",
		Limit:       limit(2),
	},
	{
		Category:    Starches,
		Title:       "Step 4: Starches",
		Description: "Choose up to 3 options",
		Limit:       limit(3),
	},
	{
		Category:    Salads,
		Title:       "Step 5: Salads",
		Description: "Choose up to 4 options",
		Limit:       limit(4),
	},
	{
		Category:    Extras,
		Title:       "Step 6: Extras (Optional)",
		Description: "Optional premium add-ons for your menu",
	},
}

// Steps returns the wizard step sequence, one step per category.
func Steps() []Step {
	out := make([]Step, len(wizardSteps))
	copy(out, wizardSteps)
	return out
}

// SectionTitle is the display heading used on the quote PDF and in
// email summaries for each category.
func SectionTitle(cat Category) string {
	switch cat {
	case Starters:
		return "Starters (Included)"
	case MeatCurry:
		return "Meat / Curry"
	case Extras:
		return "Extras (Optional)"
	case Starches:
		return "Starches"
	case Salads:
		return "Salads"
	case Vegetables:
		return "Vegetables"
	}
	return string(cat)
}

func limit(n int) *int {
	return &n
}
