package parser

import "github.com/pcrisan/spendscan/internal/model"

// DefaultConfidenceThreshold is the confidence below which a chat parse is
// considered too weak to act on without guidance or escalation.
const DefaultConfidenceThreshold = 0.5

// Suggestions returns deterministic guidance strings for a low-confidence
// parse, one per missing field, in a fixed order. A parse at or above the
// threshold yields nil.
func Suggestions(parsed model.ParsedExpense) []string {
	if parsed.Confidence >= DefaultConfidenceThreshold {
		return nil
	}

	var suggestions []string
	if !parsed.HasAmount() {
		suggestions = append(suggestions, `Include the amount, for example "50 lei".`)
	}
	if parsed.Merchant == "" {
		suggestions = append(suggestions, `Mention the store, for example "from Auchan".`)
	}
	if parsed.Category == model.CategoryOther {
		suggestions = append(suggestions, `Add a word about what you bought, like "groceries" or "fuel".`)
	}
	return suggestions
}
