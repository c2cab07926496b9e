// Package receipt implements the receipt pipeline: total amount, merchant
// name, and category extraction from raw OCR text. Extraction is a pure
// function over the text; the OCR step itself lives behind the
// TextRecognizer interface and never leaks image handling into the parser.
package receipt

import (
	"strings"

	"github.com/pcrisan/spendscan/internal/classify"
	"github.com/pcrisan/spendscan/internal/common"
	"github.com/pcrisan/spendscan/internal/model"
)

// ParseText extracts a ReceiptData from raw OCR text. Success reports
// whether a total amount was found; the merchant name and category are
// best-effort and populated either way. ParseText never fails: an
// unusable input yields Success=false with the reason in Error.
func ParseText(rawText string) model.ReceiptData {
	data := model.ReceiptData{
		RawText:  rawText,
		Category: model.CategoryOther,
	}
	if strings.TrimSpace(rawText) == "" {
		data.Error = common.ErrNoTextRecognized.Error()
		return data
	}

	data.MerchantName = extractMerchant(rawText)
	if amount, ok := extractTotal(rawText); ok {
		data.Amount = amount
		data.Success = true
	} else {
		data.Error = common.ErrTotalNotFound.Error()
	}
	data.Category = classify.WeightedCategory(rawText, data.MerchantName)

	return data
}
