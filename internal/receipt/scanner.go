package receipt

import (
	"context"
	"io"

	"github.com/pcrisan/spendscan/internal/common"
	"github.com/pcrisan/spendscan/internal/model"
)

// TextRecognizer converts a receipt image into raw text. It is an external
// collaborator (an OCR engine); this package never touches image bytes
// beyond passing them through.
type TextRecognizer interface {
	RecognizeText(ctx context.Context, image io.Reader) (string, error)
}

// Scanner composes a text recognizer with the receipt text parser.
type Scanner struct {
	recognizer TextRecognizer
}

// NewScanner creates a scanner backed by the given recognizer.
func NewScanner(recognizer TextRecognizer) *Scanner {
	return &Scanner{recognizer: recognizer}
}

// Scan recognizes text from an image and parses it. A recognition failure
// is surfaced as ReceiptData{Success: false, Error: ...}, not returned as
// an error: callers branch on Success.
func (s *Scanner) Scan(ctx context.Context, image io.Reader) model.ReceiptData {
	text, err := s.recognizer.RecognizeText(ctx, image)
	if err != nil {
		common.LogError(err, "text recognition failed", nil)
		return model.ReceiptData{
			Category: model.CategoryOther,
			Error:    err.Error(),
		}
	}
	return ParseText(text)
}
