package normalize

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	amountNoise   = strings.NewReplacer(",", "", "₹", "", "Rs.", "")
	amountPattern = regexp.MustCompile(`^-?\d*\.?\d*$`)
)

// Amount parses a statement amount. Thousands separators and rupee markers
// are ignored and a lone "-" means zero. Anything unparsable is zero.
func Amount(s string) decimal.Decimal {
	s = strings.TrimSpace(amountNoise.Replace(s))
	if s == "-" || !amountPattern.MatchString(s) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
