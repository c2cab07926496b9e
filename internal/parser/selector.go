package parser

import (
	"context"

	"github.com/pcrisan/spendscan/internal/common"
	"github.com/pcrisan/spendscan/internal/model"
)

// Fallback is an external expense parser consulted when the chat parse is
// not confident enough, typically a remote model. Implementations may
// block and may fail; the selector degrades gracefully on both.
type Fallback interface {
	ParseExpense(ctx context.Context, message string, defaultCurrency model.Currency) (model.ParsedExpense, error)
}

// Selector composes the chat parser with an optional fallback: chat output
// wins when its confidence reaches the threshold, otherwise the fallback
// is consulted.
type Selector struct {
	fallback  Fallback
	threshold float64
}

// NewSelector creates a selector with the given confidence threshold. A
// nil fallback disables escalation.
func NewSelector(threshold float64, fallback Fallback) *Selector {
	return &Selector{
		threshold: threshold,
		fallback:  fallback,
	}
}

// Parse returns the chat parse when confident, otherwise the fallback's
// result. A fallback failure is logged and the chat parse returned; Parse
// itself never fails.
func (s *Selector) Parse(ctx context.Context, message string, defaultCurrency model.Currency) model.ParsedExpense {
	parsed := ParseChatExpense(message, defaultCurrency)
	if parsed.Confidence >= s.threshold || s.fallback == nil {
		return parsed
	}

	escalated, err := s.fallback.ParseExpense(ctx, message, defaultCurrency)
	if err != nil {
		common.LogDebug("fallback parser failed, keeping chat parse", common.Fields{
			"error":      err.Error(),
			"confidence": parsed.Confidence,
		})
		return parsed
	}
	return escalated
}
