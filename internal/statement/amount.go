package statement

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// amountNoise holds characters dropped before parsing: currency symbols,
// thousands separators, parentheses and whitespace.
var amountNoise = strings.NewReplacer(
	"$", "", "£", "", "€", "", "¥", "", "₹", "",
	",", "",
	"(", "", ")", "",
	" ", "", "\t", "", "\u00a0", "",
)

// leadingNumber matches the numeric prefix a float parser would accept.
var leadingNumber = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)`)

// ParseAmount converts a statement amount field into a signed decimal.
// Unparseable input yields zero, which callers treat as an empty column.
func ParseAmount(s string) decimal.Decimal {
	if s == "" {
		return decimal.Zero
	}

	clean := amountNoise.Replace(s)
	clean = strings.TrimPrefix(clean, "-")
	clean = strings.TrimPrefix(clean, "+")

	m := leadingNumber.FindString(clean)
	if m == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.TrimSuffix(m, "."))
	if err != nil {
		return decimal.Zero
	}

	if isNegativeAmount(s) {
		return d.Neg()
	}
	return d
}

func isNegativeAmount(raw string) bool {
	if strings.Contains(raw, "-") {
		return true
	}
	t := strings.TrimSpace(raw)
	return strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")")
}
