// Package parser implements the chat pipeline: extraction of amount,
// currency, merchant, category, description, and an additive confidence
// score from a short natural-language expense message. All entry points
// are pure functions over the input text; the compiled pattern set is
// built once at package initialization and shared across calls.
package parser

import (
	"strings"

	"github.com/pcrisan/spendscan/internal/classify"
	"github.com/pcrisan/spendscan/internal/model"
)

// Confidence weights, one per extracted field. Confidence is purely
// additive: a field contributes its weight only when present, with no
// normalization beyond the fixed values.
const (
	confidenceAmount      = 0.4
	confidenceMerchant    = 0.3
	confidenceCategory    = 0.2
	confidenceDescription = 0.1
)

// maxDescriptionLen caps the raw-message fallback description.
const maxDescriptionLen = 50

// ParseChatExpense extracts a structured expense from a free-form message.
// Absent fields are represented as zero values, never as errors: the
// function always returns a usable ParsedExpense, with the confidence
// score reporting how much was actually found.
func ParseChatExpense(message string, defaultCurrency model.Currency) model.ParsedExpense {
	amount, currencyHint := extractAmount(message)
	merchant := extractMerchant(message)
	category := classify.Category(strings.ToLower(message), merchant)
	description := buildDescription(message, merchant, amount != nil)

	parsed := model.ParsedExpense{
		Amount:      amount,
		Merchant:    merchant,
		Category:    category,
		Description: description,
	}
	if amount != nil {
		parsed.Currency = resolveCurrency(currencyHint, message, defaultCurrency)
		parsed.Confidence += confidenceAmount
	}
	if merchant != "" {
		parsed.Confidence += confidenceMerchant
	}
	if category != model.CategoryOther {
		parsed.Confidence += confidenceCategory
	}
	if description != "" {
		parsed.Confidence += confidenceDescription
	}

	return parsed
}

// buildDescription synthesizes a human-readable description from the
// extracted fields, falling back to a prefix of the original message.
func buildDescription(message, merchant string, hasAmount bool) string {
	switch {
	case merchant != "" && hasAmount:
		return "Purchase at " + merchant
	case merchant != "":
		return "Expense at " + merchant
	case hasAmount:
		return "Expense via chat"
	}

	trimmed := strings.TrimSpace(message)
	runes := []rune(trimmed)
	if len(runes) > maxDescriptionLen {
		return strings.TrimSpace(string(runes[:maxDescriptionLen]))
	}
	return trimmed
}
