package scrape

import "testing"

func TestExtractPrice(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"dollar with decimals", "Buy now for $12.50 today", "$12.50"},
		{"euro comma separator normalized", "Nur €9,99 inkl. MwSt", "€9.99"},
		{"pound without decimals", "from £45 per bottle", "£45"},
		{"symbol with space", "Price: $ 30.00", "$30.00"},
		{"first match wins", "was $80.00 now $60.00", "$80.00"},
		{"whitespace runs collapsed", "price\n\t $ \n 19.95", "$19.95"},
		{"no currency symbol", "costs 12.50 dollars", ""},
		{"empty text", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractPrice(tt.text); got != tt.want {
				t.Fatalf("ExtractPrice(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}
