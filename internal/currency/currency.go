// Package currency renders rupee amounts for receipts and invoices.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/dukaan-labs/billing-api/internal/numerals"
)

// Symbol prefixes every formatted amount.
const Symbol = "₹"

// MajorUnit and MinorUnit name the currency units used by AmountInWords.
const (
	MajorUnit = "Rupees"
	MinorUnit = "Paise"
)

var hundred = decimal.NewFromInt(100)

// Format renders an amount as a symbol-prefixed, grouped, two-decimal string.
func Format(amount decimal.Decimal) string {
	return Symbol + numerals.Group(amount, 2)
}

// FormatString parses value and renders it via Format. Malformed input
// degrades to the zero amount rather than failing.
func FormatString(value string) string {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		parsed = decimal.Zero
	}
	return Format(parsed)
}

// AmountInWords spells an amount as rupees and paise. The fractional part is
// rounded to two digits half away from zero and the paise clause is emitted
// only when non-zero.
func AmountInWords(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	rupees := rounded.IntPart()
	paise := rounded.Sub(decimal.NewFromInt(rupees)).Mul(hundred).IntPart()

	out := numerals.ToWords(rupees) + " " + MajorUnit
	if paise != 0 {
		out += " and " + numerals.ToWords(paise) + " " + MinorUnit
	}
	return out
}
