package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"($1,234.56)", "-1234.56"},
		{"₹500", "500"},
		{"abc", "0"},
		{"", "0"},
		{"100", "100"},
		{"-45.00", "-45"},
		{"1,234", "1234"},
		{"€ 12.5", "12.5"},
		{"£0.99", "0.99"},
		{"¥1000", "1000"},
		{"(500)", "-500"},
		{"12.50-", "-12.5"},
		{"+7", "7"},
		{"12abc", "12"},
		{"5.", "5"},
		{".5", "0.5"},
		{"--", "0"},
		{"1,23,456.78", "123456.78"},
		{"  42.10  ", "42.1"},
		{"1e3", "1"},
	}
	for _, tt := range tests {
		got := ParseAmount(tt.in)
		want := decimal.RequireFromString(tt.want)
		assert.True(t, want.Equal(got), "ParseAmount(%q) = %s, want %s", tt.in, got, want)
	}
}

func TestParseAmount_NeverNegativeZero(t *testing.T) {
	for _, in := range []string{"-", "(-)", "-abc", "(0.00)"} {
		assert.True(t, ParseAmount(in).IsZero(), "ParseAmount(%q)", in)
	}
}
