package parser

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcrisan/spendscan/internal/model"
)

// mockFallback records calls and returns a canned result.
type mockFallback struct {
	result model.ParsedExpense
	err    error
	calls  int
}

func (m *mockFallback) ParseExpense(_ context.Context, _ string, _ model.Currency) (model.ParsedExpense, error) {
	m.calls++
	return m.result, m.err
}

func TestSelectorConfidentParseSkipsFallback(t *testing.T) {
	fallback := &mockFallback{}
	selector := NewSelector(DefaultConfidenceThreshold, fallback)

	parsed := selector.Parse(context.Background(), "I bought groceries from Auchan for 200 lei", model.CurrencyRON)

	assert.Equal(t, 0, fallback.calls)
	assert.Equal(t, "Auchan", parsed.Merchant)
}

func TestSelectorEscalatesLowConfidence(t *testing.T) {
	amount := decimal.NewFromInt(42)
	fallback := &mockFallback{
		result: model.ParsedExpense{
			Amount:     &amount,
			Currency:   model.CurrencyRON,
			Category:   model.CategoryShopping,
			Confidence: 0.9,
		},
	}
	selector := NewSelector(DefaultConfidenceThreshold, fallback)

	parsed := selector.Parse(context.Background(), "asdkjaslkdj", model.CurrencyRON)

	assert.Equal(t, 1, fallback.calls)
	require.NotNil(t, parsed.Amount)
	assert.True(t, parsed.Amount.Equal(amount))
	assert.Equal(t, model.CategoryShopping, parsed.Category)
}

func TestSelectorKeepsChatParseOnFallbackError(t *testing.T) {
	fallback := &mockFallback{err: errors.New("upstream unavailable")}
	selector := NewSelector(DefaultConfidenceThreshold, fallback)

	parsed := selector.Parse(context.Background(), "asdkjaslkdj", model.CurrencyRON)

	assert.Equal(t, 1, fallback.calls)
	assert.Nil(t, parsed.Amount)
	assert.Equal(t, model.CategoryOther, parsed.Category)
}

func TestSelectorNilFallback(t *testing.T) {
	selector := NewSelector(DefaultConfidenceThreshold, nil)

	parsed := selector.Parse(context.Background(), "asdkjaslkdj", model.CurrencyRON)

	assert.Equal(t, model.CategoryOther, parsed.Category)
}
