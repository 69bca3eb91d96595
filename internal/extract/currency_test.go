package extract

import "testing"

func TestDetectCurrency(t *testing.T) {
	tests := []struct {
		name     string
		pages    []Page
		expected string
	}{
		{
			name: "marker with code",
			pages: []Page{
				{Number: 1, Lines: []string{"TOTAL AMOUNT USD 1.234,56"}},
			},
			expected: "USD",
		},
		{
			name: "marker with other code",
			pages: []Page{
				{Number: 1, Lines: []string{"TOTAL AMOUNT EUR 999,00"}},
			},
			expected: "EUR",
		},
		{
			name: "fallback literal on same page",
			pages: []Page{
				{Number: 1, Lines: []string{
					"TOTAL AMOUNT",
					"1.234,56 USD",
				}},
			},
			expected: "USD",
		},
		{
			name: "no marker at all",
			pages: []Page{
				{Number: 1, Lines: []string{"JUST SOME TEXT"}},
			},
			expected: CurrencyUnknown,
		},
		{
			name: "literal without total amount marker",
			pages: []Page{
				{Number: 1, Lines: []string{"PRICES IN USD"}},
			},
			expected: CurrencyUnknown,
		},
		{
			name: "marker outside trailing window ignored",
			pages: []Page{
				{Number: 1, Lines: []string{"TOTAL AMOUNT USD 1,00"}},
				{Number: 2, Lines: []string{"page two"}},
				{Number: 3, Lines: []string{"page three"}},
				{Number: 4, Lines: []string{"page four"}},
			},
			expected: CurrencyUnknown,
		},
		{
			name: "marker on second to last page",
			pages: []Page{
				{Number: 1, Lines: []string{"intro"}},
				{Number: 2, Lines: []string{"TOTAL AMOUNT USD 5,00"}},
				{Number: 3, Lines: []string{"annex"}},
			},
			expected: "USD",
		},
		{
			name:     "no pages",
			pages:    nil,
			expected: CurrencyUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectCurrency(tt.pages); got != tt.expected {
				t.Errorf("DetectCurrency() = %q, want %q", got, tt.expected)
			}
		})
	}
}
