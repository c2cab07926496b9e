// Package model defines the value types shared by the chat and receipt
// parsing pipelines: parsed expense records and the fixed category and
// currency taxonomies.
package model

import "github.com/shopspring/decimal"

// ParsedExpense is the output of the chat (free-text) pipeline. Produced
// fresh per message, never mutated afterwards.
type ParsedExpense struct {
	// Amount is nil when no amount could be extracted.
	Amount *decimal.Decimal `json:"amount"`
	// Currency is empty when no amount was found; otherwise one of the
	// canonical codes, never an alias.
	Currency Currency `json:"currency,omitempty"`
	// Merchant is empty when no merchant could be extracted.
	Merchant    string   `json:"merchant,omitempty"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
	// Confidence is an additive score in [0,1] over the extracted fields.
	Confidence float64 `json:"confidence"`
}

// HasAmount reports whether an amount was extracted.
func (p ParsedExpense) HasAmount() bool {
	return p.Amount != nil
}

// ReceiptData is the output of the receipt (OCR text) pipeline.
type ReceiptData struct {
	Success bool `json:"success"`
	// Amount is zero when no total could be extracted.
	Amount       decimal.Decimal `json:"amount"`
	MerchantName string          `json:"merchant_name,omitempty"`
	Category     Category        `json:"category"`
	// RawText retains the full OCR text for diagnostics.
	RawText string `json:"raw_text,omitempty"`
	Error   string `json:"error,omitempty"`
}
