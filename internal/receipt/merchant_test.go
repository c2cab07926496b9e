package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractMerchantFromReceipt(t *testing.T) {
	tests := []struct {
		name    string
		rawText string
		want    string
	}{
		{
			name:    "company with SRL suffix",
			rawText: "STORE SRL\nBon fiscal\nTOTAL Lei 123.45",
			want:    "STORE",
		},
		{
			name:    "dotted suffix with SC prefix",
			rawText: "S.C. Mega Image S.R.L.\nStr. Lunga 12",
			want:    "Mega Image",
		},
		{
			name:    "SA suffix",
			rawText: "Farmacia Catena SA\nCUI 445566",
			want:    "Farmacia Catena",
		},
		{
			name:    "bare all caps header line",
			rawText: "KAUFLAND\npaine 4.50\nTOTAL 10.00",
			want:    "KAUFLAND",
		},
		{
			name:    "positional fallback skips metadata",
			rawText: "Bon fiscal nr 12\nMega Image\nTOTAL 10.00",
			want:    "Mega Image",
		},
		{
			name:    "positional fallback skips price lines",
			rawText: "paine 4.50\nCafeteria Centrala\nTOTAL 10.00",
			want:    "Cafeteria Centrala",
		},
		{
			name:    "fallback gives up past the header",
			rawText: "1 x paine\n2 x lapte\n3 x oua\nCofetaria Dulce",
			want:    "",
		},
		{
			name:    "empty text",
			rawText: "",
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractMerchant(tt.rawText)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCleanMerchantName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "already clean",
			in:   "Mega Image",
			want: "Mega Image",
		},
		{
			name: "strips digits and symbols",
			in:   "Mega* Image #42",
			want: "Mega Image",
		},
		{
			name: "keeps ampersand and apostrophe",
			in:   "H&M O'Brien's",
			want: "H&M O'Brien's",
		},
		{
			name: "collapses whitespace",
			in:   "  Mega   Image  ",
			want: "Mega Image",
		},
		{
			name: "truncates long names",
			in:   "A Very Long Store Name That Keeps Going On And On Forever",
			want: "A Very Long Store Name That Keeps Going On And On",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanMerchantName(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, CleanMerchantName(got), "cleaning must be idempotent")
		})
	}
}
