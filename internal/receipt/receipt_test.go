package receipt

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pcrisan/spendscan/internal/model"
)

func TestParseText(t *testing.T) {
	tests := []struct {
		name         string
		rawText      string
		wantSuccess  bool
		wantAmount   string
		wantMerchant string
		wantCategory model.Category
	}{
		{
			name:         "store with total line",
			rawText:      "STORE SRL\nBon fiscal nr 12\nTOTAL Lei 123.45\n",
			wantSuccess:  true,
			wantAmount:   "123.45",
			wantMerchant: "STORE",
			wantCategory: model.CategoryOther,
		},
		{
			name:         "known grocery brand",
			rawText:      "AUCHAN ROMANIA SA\npaine 4.50\nTOTAL Lei 45.60\n",
			wantSuccess:  true,
			wantAmount:   "45.60",
			wantMerchant: "AUCHAN ROMANIA",
			wantCategory: model.CategoryFood,
		},
		{
			name:         "pharmacy receipt",
			rawText:      "Farmacia Catena SRL\nparacetamol 12.00\nTOTAL 12.00 lei\n",
			wantSuccess:  true,
			wantAmount:   "12.00",
			wantMerchant: "Farmacia Catena",
			wantCategory: model.CategoryHealthcare,
		},
		{
			name:         "no total found",
			rawText:      "STORE SRL\nbon fiscal\nmultumim\n",
			wantSuccess:  false,
			wantAmount:   "0",
			wantMerchant: "STORE",
			wantCategory: model.CategoryOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ParseText(tt.rawText)

			assert.Equal(t, tt.wantSuccess, data.Success)
			assert.True(t, data.Amount.Equal(decimal.RequireFromString(tt.wantAmount)),
				"want amount %s, got %s", tt.wantAmount, data.Amount.String())
			assert.Equal(t, tt.wantMerchant, data.MerchantName)
			assert.Equal(t, tt.wantCategory, data.Category)
			assert.Equal(t, tt.rawText, data.RawText)
			if tt.wantSuccess {
				assert.Empty(t, data.Error)
			} else {
				assert.NotEmpty(t, data.Error)
			}
		})
	}
}

func TestParseTextEmptyInput(t *testing.T) {
	for _, rawText := range []string{"", "   \n\t\n"} {
		data := ParseText(rawText)
		assert.False(t, data.Success)
		assert.NotEmpty(t, data.Error)
		assert.Equal(t, model.CategoryOther, data.Category)
		assert.Empty(t, data.MerchantName)
	}
}

// stubRecognizer returns canned OCR output.
type stubRecognizer struct {
	text string
	err  error
}

func (s *stubRecognizer) RecognizeText(_ context.Context, _ io.Reader) (string, error) {
	return s.text, s.err
}

func TestScannerScan(t *testing.T) {
	t.Run("recognition succeeds", func(t *testing.T) {
		scanner := NewScanner(&stubRecognizer{text: "STORE SRL\nTOTAL Lei 10.00\n"})

		data := scanner.Scan(context.Background(), strings.NewReader("image-bytes"))

		require.True(t, data.Success)
		assert.Equal(t, "STORE", data.MerchantName)
		assert.True(t, data.Amount.Equal(decimal.RequireFromString("10.00")))
	})

	t.Run("recognition fails", func(t *testing.T) {
		scanner := NewScanner(&stubRecognizer{err: errors.New("image unreadable")})

		data := scanner.Scan(context.Background(), strings.NewReader("image-bytes"))

		assert.False(t, data.Success)
		assert.Equal(t, "image unreadable", data.Error)
		assert.Equal(t, model.CategoryOther, data.Category)
	})
}
