package classify

import "github.com/pcrisan/spendscan/internal/model"

// keywordSet binds a category to the keyword and brand tokens that vote
// for it. Tokens are lowercase and matched as literal substrings.
type keywordSet struct {
	Category model.Category
	Keywords []string
}

// taxonomyKeywords is the scoring table for the fixed taxonomy, in the
// canonical category order. Declaration order doubles as the tie-break:
// the earlier category wins an equal score.
var taxonomyKeywords = []keywordSet{
	{
		Category: model.CategoryFood,
		Keywords: []string{
			"grocery", "groceries", "restaurant", "food", "lunch", "dinner",
			"breakfast", "coffee", "pizza", "burger", "bakery", "patiserie",
			"auchan", "lidl", "kaufland", "carrefour", "mega image", "profi",
			"penny", "selgros", "metro", "mcdonald", "kfc", "subway",
			"starbucks", "glovo", "tazz",
		},
	},
	{
		Category: model.CategoryTransportation,
		Keywords: []string{
			"taxi", "uber", "bolt", "fuel", "gas", "petrol", "benzina",
			"motorina", "bus", "metrou", "metro ticket", "train", "cfr",
			"parking", "parcare", "omv", "petrom", "rompetrol", "mol",
			"lukoil", "socar", "flight", "wizz", "tarom",
		},
	},
	{
		Category: model.CategoryShopping,
		Keywords: []string{
			"mall", "clothes", "clothing", "shoes", "fashion", "emag",
			"altex", "flanco", "dedeman", "leroy merlin", "ikea", "jysk",
			"zara", "h&m", "bershka", "pepco", "sinsay", "amazon",
			"electronics", "decathlon",
		},
	},
	{
		Category: model.CategoryEntertainment,
		Keywords: []string{
			"cinema", "movie", "film", "netflix", "spotify", "hbo",
			"concert", "theatre", "teatru", "game", "steam", "playstation",
			"xbox", "bar", "club", "pub", "bowling",
		},
	},
	{
		Category: model.CategoryHealthcare,
		Keywords: []string{
			"pharmacy", "farmacia", "farmacie", "catena", "sensiblu",
			"helpnet", "dona", "doctor", "dentist", "dental", "hospital",
			"spital", "clinica", "medlife", "regina maria", "sanador",
			"medicine", "medicament",
		},
	},
	{
		Category: model.CategoryUtilities,
		Keywords: []string{
			"electric", "electricity", "enel", "hidroelectrica", "engie",
			"gaz", "water bill", "apa nova", "internet", "phone bill",
			"digi", "rcs", "rds", "orange", "vodafone", "telekom",
			"subscription", "abonament", "utilities", "factura",
		},
	},
	{
		Category: model.CategoryHousing,
		Keywords: []string{
			"rent", "chirie", "mortgage", "rata casa", "apartment",
			"apartament", "furniture", "mobila", "repair", "renovation",
			"intretinere", "administratie bloc",
		},
	},
}

// Keywords returns the scoring tokens for a category, or nil for
// CategoryOther and unknown categories.
func Keywords(category model.Category) []string {
	for _, set := range taxonomyKeywords {
		if set.Category == category {
			return set.Keywords
		}
	}
	return nil
}
