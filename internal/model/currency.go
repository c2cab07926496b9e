package model

import (
	"regexp"
	"strings"
)

// Currency is a canonical 3-letter currency code.
type Currency string

// Supported currencies.
const (
	CurrencyRON Currency = "RON"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
	CurrencyGBP Currency = "GBP"
)

// currencyAliases maps each supported currency to the textual and symbolic
// forms it may appear as in free text. Order is significant: resolution
// checks currencies in declaration order, and within a currency longer
// aliases precede their prefixes so regex alternation cannot stop at a
// partial word.
var currencyAliases = []struct {
	Code    Currency
	Aliases []string
}{
	{CurrencyRON, []string{"lei", "leu", "ron"}},
	{CurrencyEUR, []string{"euros", "euro", "eur", "€"}},
	{CurrencyUSD, []string{"dollars", "dollar", "bucks", "usd", "$"}},
	{CurrencyGBP, []string{"pounds", "pound", "gbp", "£"}},
}

// wordAliasRegex matches word-shaped aliases with non-letter boundaries on
// both sides. Symbol aliases ($, €, £) are matched by substring search
// since they carry no word boundary.
var wordAliasRegex = map[Currency]*regexp.Regexp{}

func init() {
	for _, entry := range currencyAliases {
		words := make([]string, 0, len(entry.Aliases))
		for _, alias := range entry.Aliases {
			if isWordAlias(alias) {
				words = append(words, alias)
			}
		}
		if len(words) > 0 {
			wordAliasRegex[entry.Code] = regexp.MustCompile(
				`(?i)(?:^|[^a-z])(?:` + strings.Join(words, "|") + `)(?:[^a-z]|$)`)
		}
	}
}

func isWordAlias(alias string) bool {
	for _, r := range alias {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Currencies returns the supported currency codes in canonical order.
func Currencies() []Currency {
	codes := make([]Currency, 0, len(currencyAliases))
	for _, entry := range currencyAliases {
		codes = append(codes, entry.Code)
	}
	return codes
}

// DetectCurrency scans text for any known currency alias and returns the
// canonical code of the first currency, in declaration order, whose alias
// appears. The boolean reports whether anything was found; an alias string
// is never returned.
func DetectCurrency(text string) (Currency, bool) {
	lower := strings.ToLower(text)
	for _, entry := range currencyAliases {
		if re, ok := wordAliasRegex[entry.Code]; ok && re.MatchString(lower) {
			return entry.Code, true
		}
		for _, alias := range entry.Aliases {
			if !isWordAlias(alias) && strings.Contains(lower, alias) {
				return entry.Code, true
			}
		}
	}
	return "", false
}

// CurrencyAliasPattern returns a regex alternation over every known alias,
// with symbols quoted. Callers embed it in larger patterns; it contains no
// capture groups of its own.
func CurrencyAliasPattern() string {
	var parts []string
	for _, entry := range currencyAliases {
		for _, alias := range entry.Aliases {
			parts = append(parts, regexp.QuoteMeta(alias))
		}
	}
	return strings.Join(parts, "|")
}
