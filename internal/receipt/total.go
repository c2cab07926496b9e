package receipt

import (
	"regexp"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pcrisan/spendscan/internal/pattern"
)

// Plausibility windows for OCR amounts.
var (
	// Tier 1 accepts amounts in (0, 50000) exclusive.
	tier1MaxAmount = decimal.NewFromInt(50000)
	// Tier 3 considers candidates in [1.00, 5000.00] inclusive.
	tier3MinAmount = decimal.NewFromInt(1)
	tier3MaxAmount = decimal.NewFromInt(5000)
	// Tier 3 prefers the second-largest candidate when the largest
	// exceeds it by this factor (usually a VAT registration number the
	// OCR picked up).
	tier3OutlierFactor = decimal.NewFromInt(3)
)

const amountPattern = `(\d+[.,]\d{1,2})`

// Tier 1: "TOTAL ... <currency-word> ... <amount>" line layouts, most
// reliable first: amount anchored at end of line, then amount before the
// currency word, then anywhere on the line, then colon-separated.
var totalCurrencyRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?im)^.*total.*?(?:lei|ron)\b\D*?` + amountPattern + `\s*$`),
	regexp.MustCompile(`(?im)^.*total.*?` + amountPattern + `\s*(?:lei|ron)\b.*$`),
	regexp.MustCompile(`(?im)^.*total.*?(?:lei|ron)\b.*?` + amountPattern + `.*$`),
	regexp.MustCompile(`(?im)^.*total.*?(?:lei|ron)[^\n:]*:\s*` + amountPattern),
}

var (
	lineEndAmountRegex = regexp.MustCompile(amountPattern + `\s*$`)
	anyAmountRegex     = regexp.MustCompile(amountPattern)
	candidateRegex     = regexp.MustCompile(`\d+[.,]\d{2}`)
)

// totalTiers is the strict fallback order: a tier producing any result
// wins and lower tiers are never consulted.
var totalTiers = []pattern.Matcher[decimal.Decimal]{
	matchTotalWithCurrency,
	matchTotalLine,
	matchLargestPlausible,
}

// extractTotal runs the three-tier fallback chain over the full OCR text.
func extractTotal(rawText string) (decimal.Decimal, bool) {
	return pattern.FirstMatch(rawText, totalTiers)
}

// matchTotalWithCurrency is tier 1: locale patterns pairing "total" with a
// currency word. Out-of-window amounts are treated as non-matches so the
// search continues to the next candidate.
func matchTotalWithCurrency(rawText string) (decimal.Decimal, bool) {
	for _, re := range totalCurrencyRegexes {
		for _, groups := range re.FindAllStringSubmatch(rawText, -1) {
			amount, err := parseAmount(groups[1])
			if err != nil {
				continue
			}
			if amount.IsPositive() && amount.LessThan(tier1MaxAmount) {
				return amount, true
			}
		}
	}
	return decimal.Decimal{}, false
}

// matchTotalLine is tier 2: any line starting with "total", preferring an
// amount anchored at line end, then any amount on the line, then the
// immediately following line.
func matchTotalLine(rawText string) (decimal.Decimal, bool) {
	lines := strings.Split(rawText, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !strings.HasPrefix(strings.ToLower(trimmed), "total") {
			continue
		}

		candidates := [][]string{
			lineEndAmountRegex.FindStringSubmatch(trimmed),
			anyAmountRegex.FindStringSubmatch(trimmed),
		}
		if i+1 < len(lines) {
			candidates = append(candidates, anyAmountRegex.FindStringSubmatch(lines[i+1]))
		}
		for _, groups := range candidates {
			if groups == nil {
				continue
			}
			if amount, err := parseAmount(groups[1]); err == nil && amount.IsPositive() {
				return amount, true
			}
		}
	}
	return decimal.Decimal{}, false
}

// matchLargestPlausible is tier 3: collect every decimal-looking number in
// the plausible window and return the largest, unless it dwarfs the
// second-largest, in which case the second-largest is the safer guess.
func matchLargestPlausible(rawText string) (decimal.Decimal, bool) {
	var candidates []decimal.Decimal
	for _, raw := range candidateRegex.FindAllString(rawText, -1) {
		amount, err := parseAmount(raw)
		if err != nil {
			continue
		}
		if amount.GreaterThanOrEqual(tier3MinAmount) && amount.LessThanOrEqual(tier3MaxAmount) {
			candidates = append(candidates, amount)
		}
	}
	if len(candidates) == 0 {
		return decimal.Decimal{}, false
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].GreaterThan(candidates[j])
	})
	if len(candidates) >= 3 && candidates[0].GreaterThan(candidates[1].Mul(tier3OutlierFactor)) {
		return candidates[1], true
	}
	return candidates[0], true
}

// parseAmount parses a matched amount substring, normalizing a comma
// decimal mark.
func parseAmount(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}
