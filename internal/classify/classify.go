// Package classify maps expense text onto the fixed category taxonomy
// using additive keyword scoring. Both scorers are total functions: they
// always return a taxonomy member, with Other as the zero-score default.
package classify

import (
	"strings"

	"github.com/pcrisan/spendscan/internal/model"
)

// Weights for the receipt-oriented weighted scorer.
const (
	weightTextMatch      = 2
	weightMerchantMatch  = 5
	weightMerchantStrong = 10
)

// Category classifies free text, optionally biased by a merchant hint.
// Every occurrence of a category keyword in the combined text counts one
// point; the highest total wins, ties going to the earlier category in
// taxonomy order.
func Category(text, merchantHint string) model.Category {
	combined := strings.ToLower(text)
	if merchantHint != "" {
		combined += " " + strings.ToLower(merchantHint)
	}

	best := model.CategoryOther
	bestScore := 0
	for _, set := range taxonomyKeywords {
		score := 0
		for _, keyword := range set.Keywords {
			score += strings.Count(combined, keyword)
		}
		if score > bestScore {
			best = set.Category
			bestScore = score
		}
	}

	return best
}

// WeightedCategory classifies receipt OCR text together with the extracted
// merchant name. Keyword hits in the raw text score low; hits inside the
// merchant name score higher; a merchant that equals or starts with the
// keyword scores higher still, on top of the substring score.
func WeightedCategory(rawText, merchant string) model.Category {
	textLower := strings.ToLower(rawText)
	merchantLower := strings.ToLower(strings.TrimSpace(merchant))

	best := model.CategoryOther
	bestScore := 0
	for _, set := range taxonomyKeywords {
		score := 0
		for _, keyword := range set.Keywords {
			if strings.Contains(textLower, keyword) {
				score += weightTextMatch
			}
			if merchantLower == "" {
				continue
			}
			if strings.Contains(merchantLower, keyword) {
				score += weightMerchantMatch
			}
			if merchantLower == keyword || strings.HasPrefix(merchantLower, keyword) {
				score += weightMerchantStrong
			}
		}
		if score > bestScore {
			best = set.Category
			bestScore = score
		}
	}

	return best
}
