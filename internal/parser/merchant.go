package parser

import (
	"regexp"
	"strings"

	"github.com/pcrisan/spendscan/internal/pattern"
)

// maxChatMerchantLen caps the merchant name after cleaning.
const maxChatMerchantLen = 30

// stopWords end a merchant name in the preposition pattern and are never
// themselves merchant names.
var stopWords = map[string]bool{
	"from": true, "at": true, "in": true, "for": true, "on": true,
	"with": true, "value": true, "cost": true, "price": true,
}

// Merchant patterns in priority order: a name after a preposition, then a
// name before a venue word.
var merchantRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:from|at|in)\s+([a-z][a-z' ]*?)(?:\s+(?:for|in|on|with|value|cost|price)\b|\s*\d|\s*$)`),
	regexp.MustCompile(`(?i)\b([a-z][a-z' ]*?)\s+(?:store|shop|restaurant|market|mall|station)\b`),
}

var merchantMatchers = buildMerchantMatchers()

func buildMerchantMatchers() []pattern.Matcher[string] {
	matchers := make([]pattern.Matcher[string], 0, len(merchantRegexes))
	for _, re := range merchantRegexes {
		re := re
		matchers = append(matchers, func(text string) (string, bool) {
			for _, groups := range re.FindAllStringSubmatch(text, -1) {
				candidate := strings.TrimSpace(groups[1])
				if candidate == "" {
					continue
				}
				// A capture that begins with a stop word is the tail of a
				// valuation phrase, not a merchant.
				first := strings.ToLower(strings.Fields(candidate)[0])
				if stopWords[first] {
					continue
				}
				return candidate, true
			}
			return "", false
		})
	}
	return matchers
}

// extractMerchant returns the first merchant name found by the ordered
// pattern chain, title-cased and trimmed, or empty when none matched. No
// cleaning beyond trim and capitalization is applied here; the receipt
// pipeline has its own stricter cleaner.
func extractMerchant(message string) string {
	candidate, ok := pattern.FirstMatch(message, merchantMatchers)
	if !ok {
		return ""
	}
	name := titleCase(candidate)
	if len(name) > maxChatMerchantLen {
		name = strings.TrimSpace(name[:maxChatMerchantLen])
	}
	return name
}

// titleCase capitalizes the first letter of each word and lowercases the
// rest.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}
