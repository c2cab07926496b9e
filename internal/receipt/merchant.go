package receipt

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/pcrisan/spendscan/internal/pattern"
)

// maxMerchantLen caps the merchant name after cleaning.
const maxMerchantLen = 50

// maxHeaderLines is how far into the receipt the positional fallback
// looks for a store name.
const maxHeaderLines = 3

// Legal-entity-suffix patterns in priority order: a full line ending in a
// Romanian company suffix, the same shape inline, then a bare all-caps
// short line as the last resort of this tier. An optional "S.C." prefix is
// consumed but not captured.
var merchantRegexes = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*(?:S\.?C\.?\s+)?([A-ZĂÂÎȘȚ][^\n]*?)\s+(?:S\.?R\.?L\.?|S\.?A\.?)\s*$`),
	regexp.MustCompile(`(?:S\.?C\.?\s+)?([A-ZĂÂÎȘȚ][A-Za-z0-9ĂÂÎȘȚăâîșț&'. -]{1,39}?)\s+(?:S\.?R\.?L\.?|S\.?A\.?)(?:[^A-Za-zĂÂÎȘȚăâîșț]|$)`),
	regexp.MustCompile(`(?m)^\s*([A-ZĂÂÎȘȚ][A-ZĂÂÎȘȚ&'. -]{2,23})\s*$`),
}

// metadataWords mark receipt header lines that are not a store name.
var metadataWords = []string{"receipt", "bon", "fiscal", "nr", "data", "ora", "cui", "cif", "tel"}

var (
	merchantCleanRegex = regexp.MustCompile(`[^\p{L}&'. -]+`)
	whitespaceRegex    = regexp.MustCompile(`\s+`)
	priceShapeRegex    = regexp.MustCompile(`\d+[.,]\d{2}`)
)

var merchantTiers = []pattern.Matcher[string]{
	matchLegalSuffix,
	matchHeaderLine,
}

// extractMerchant returns a cleaned merchant name from raw OCR text, or
// an empty string when nothing qualifies. It never fails.
func extractMerchant(rawText string) string {
	name, ok := pattern.FirstMatch(rawText, merchantTiers)
	if !ok {
		return ""
	}
	return name
}

// matchLegalSuffix finds a company name next to a legal-entity suffix.
func matchLegalSuffix(rawText string) (string, bool) {
	for _, re := range merchantRegexes {
		if groups := re.FindStringSubmatch(rawText); groups != nil {
			if name := CleanMerchantName(groups[1]); name != "" {
				return name, true
			}
		}
	}
	return "", false
}

// matchHeaderLine is the positional fallback: the first of the opening
// non-empty lines that looks like a store name rather than receipt
// metadata, a price, or a numeric code.
func matchHeaderLine(rawText string) (string, bool) {
	seen := 0
	for _, line := range strings.Split(rawText, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		seen++
		if seen > maxHeaderLines {
			break
		}
		if len(trimmed) <= 3 || priceShapeRegex.MatchString(trimmed) {
			continue
		}
		if unicode.IsDigit([]rune(trimmed)[0]) {
			continue
		}
		if containsMetadataWord(strings.ToLower(trimmed)) {
			continue
		}
		if name := CleanMerchantName(trimmed); name != "" {
			return name, true
		}
	}
	return "", false
}

func containsMetadataWord(lower string) bool {
	for _, word := range metadataWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// CleanMerchantName strips everything except letters, spaces, and &'.-,
// collapses whitespace, trims, and truncates to the merchant length cap.
// Cleaning is idempotent: cleaning an already-clean name is a no-op.
func CleanMerchantName(raw string) string {
	cleaned := merchantCleanRegex.ReplaceAllString(raw, " ")
	cleaned = whitespaceRegex.ReplaceAllString(cleaned, " ")
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) > maxMerchantLen {
		cleaned = strings.TrimSpace(string(runes[:maxMerchantLen]))
	}
	return cleaned
}
