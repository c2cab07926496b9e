package model

// Category is an expense category from the fixed taxonomy.
type Category string

// The closed category taxonomy. Classification always resolves to exactly
// one of these; CategoryOther is the guaranteed default when nothing
// matches.
const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryShopping       Category = "Shopping"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealthcare     Category = "Healthcare"
	CategoryUtilities      Category = "Utilities"
	CategoryHousing        Category = "Housing"
	CategoryOther          Category = "Other"
)

// Categories returns the taxonomy in its canonical order. The order is
// behaviorally significant: classifiers break score ties in favor of the
// earlier category.
func Categories() []Category {
	return []Category{
		CategoryFood,
		CategoryTransportation,
		CategoryShopping,
		CategoryEntertainment,
		CategoryHealthcare,
		CategoryUtilities,
		CategoryHousing,
		CategoryOther,
	}
}

// IsValid reports whether c is a member of the taxonomy.
func (c Category) IsValid() bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}
