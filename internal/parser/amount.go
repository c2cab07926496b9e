package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pcrisan/spendscan/internal/model"
	"github.com/pcrisan/spendscan/internal/pattern"
)

// numberPattern accepts an integer or a decimal with 1-2 fraction digits.
// Comma is accepted as the decimal mark; thousands separators are not
// recognized.
const numberPattern = `(\d+(?:[.,]\d{1,2})?)`

// amountResult carries an extracted amount plus the currency text captured
// next to it, when the matching pattern had one.
type amountResult struct {
	currencyHint string
	amount       decimal.Decimal
}

// Amount patterns in priority order. The first pattern with a parseable
// match wins across the whole list; a message with several numbers yields
// only the first pattern's first match, by design.
var amountRegexes = []*regexp.Regexp{
	// "200 lei", "12.50 euros", "5 $"
	regexp.MustCompile(`(?i)` + numberPattern + `\s*(` + model.CurrencyAliasPattern() + `)(?:[^a-zA-Z]|$)`),
	// "value of 200", "cost is 45.99", "price 30"
	regexp.MustCompile(`(?i)\b(?:value|cost|price|worth)\s+(?:(?:of|is)\s+)?` + numberPattern),
	// "spent 120", "paid for 45", "bought for 12.5"
	regexp.MustCompile(`(?i)\b(?:spent|paid|buy|bought)\s+(?:for\s+)?` + numberPattern),
}

var amountMatchers = buildAmountMatchers()

func buildAmountMatchers() []pattern.Matcher[amountResult] {
	matchers := make([]pattern.Matcher[amountResult], 0, len(amountRegexes))
	for _, re := range amountRegexes {
		re := re
		matchers = append(matchers, func(text string) (amountResult, bool) {
			for _, groups := range re.FindAllStringSubmatch(text, -1) {
				amount, err := parseNumber(groups[1])
				if err != nil {
					// Malformed number: skip this candidate and keep looking.
					continue
				}
				result := amountResult{amount: amount}
				if len(groups) > 2 {
					result.currencyHint = groups[2]
				}
				return result, true
			}
			return amountResult{}, false
		})
	}
	return matchers
}

// extractAmount returns the first amount found by the ordered pattern
// chain, plus the currency text captured next to it (empty when the
// winning pattern carried none). A nil amount means not found.
func extractAmount(message string) (*decimal.Decimal, string) {
	result, ok := pattern.FirstMatch(message, amountMatchers)
	if !ok {
		return nil, ""
	}
	return &result.amount, result.currencyHint
}

// parseNumber parses a matched numeric substring, normalizing a comma
// decimal mark.
func parseNumber(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.Replace(s, ",", ".", 1))
}

// resolveCurrency resolves the currency for an extracted amount: the
// captured text next to the amount first, then any alias anywhere in the
// message, then the caller-supplied default.
func resolveCurrency(hint, message string, fallback model.Currency) model.Currency {
	if hint != "" {
		if code, ok := model.DetectCurrency(hint); ok {
			return code
		}
	}
	if code, ok := model.DetectCurrency(message); ok {
		return code
	}
	return fallback
}
