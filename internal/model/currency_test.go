package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		want      Currency
		wantFound bool
	}{
		{
			name:      "romanian lei word",
			text:      "200 lei",
			want:      CurrencyRON,
			wantFound: true,
		},
		{
			name:      "singular leu",
			text:      "un leu",
			want:      CurrencyRON,
			wantFound: true,
		},
		{
			name:      "euro symbol",
			text:      "coffee for 3€",
			want:      CurrencyEUR,
			wantFound: true,
		},
		{
			name:      "dollar word plural",
			text:      "spent 20 dollars on lunch",
			want:      CurrencyUSD,
			wantFound: true,
		},
		{
			name:      "slang bucks",
			text:      "5 bucks",
			want:      CurrencyUSD,
			wantFound: true,
		},
		{
			name:      "pound symbol",
			text:      "£12 at the pub",
			want:      CurrencyGBP,
			wantFound: true,
		},
		{
			name:      "alias requires word boundary",
			text:      "leisure activities",
			wantFound: false,
		},
		{
			name:      "uppercase alias",
			text:      "TOTAL 45 RON",
			want:      CurrencyRON,
			wantFound: true,
		},
		{
			name:      "no alias",
			text:      "bought some snacks",
			wantFound: false,
		},
		{
			name:      "empty text",
			text:      "",
			wantFound: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, found := DetectCurrency(tt.text)
			assert.Equal(t, tt.wantFound, found)
			if tt.wantFound {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCurrenciesOrder(t *testing.T) {
	assert.Equal(t, []Currency{CurrencyRON, CurrencyEUR, CurrencyUSD, CurrencyGBP}, Currencies())
}

func TestCategoriesContainOther(t *testing.T) {
	categories := Categories()
	assert.Len(t, categories, 8)
	assert.Equal(t, CategoryFood, categories[0])
	assert.Equal(t, CategoryOther, categories[len(categories)-1])

	for _, category := range categories {
		assert.True(t, category.IsValid())
	}
	assert.False(t, Category("Groceries").IsValid())
}
