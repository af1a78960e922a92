// Package numerals renders numbers in the Indian numbering system: digits
// grouped as thousand/lakh/crore and cardinal words built from the same
// magnitude ladder. The grouping rule is a contract of the billing domain,
// so it is implemented directly rather than delegated to a locale library.
package numerals

import (
	"strings"

	"github.com/shopspring/decimal"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// Group formats a decimal with Indian digit grouping and a fixed number of
// fractional digits, rounding half away from zero.
func Group(value decimal.Decimal, decimals int32) string {
	if decimals < 0 {
		decimals = 0
	}
	rounded := value.Round(decimals)
	fixed := rounded.Abs().StringFixed(decimals)

	intPart := fixed
	fracPart := ""
	if idx := strings.IndexByte(fixed, '.'); idx >= 0 {
		intPart = fixed[:idx]
		fracPart = fixed[idx:]
	}

	grouped := groupDigits(intPart)
	if rounded.IsNegative() {
		return "-" + grouped + fracPart
	}
	return grouped + fracPart
}

// FormatGrouped parses value and formats it via Group. Malformed input
// degrades to zero padded with the requested fractional digits.
func FormatGrouped(value string, decimals int32) string {
	parsed, err := decimal.NewFromString(strings.TrimSpace(value))
	if err != nil {
		parsed = decimal.Zero
	}
	return Group(parsed, decimals)
}

// groupDigits applies the Indian convention: the rightmost three digits form
// one group, every group to the left has two digits.
func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	groups := []string{digits[len(digits)-3:]}
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return strings.Join(groups, ",")
}

// ToWords expands an integer into cardinal words using crore, lakh, thousand
// and hundred groups with the irregular ten-to-nineteen table.
func ToWords(n int64) string {
	if n == 0 {
		return "Zero"
	}
	if n < 0 {
		return "Minus " + ToWords(-n)
	}
	return strings.TrimSpace(words(n))
}

func words(n int64) string {
	switch {
	case n < 20:
		return onesWords[n]
	case n < 100:
		out := tensWords[n/10]
		if rem := n % 10; rem != 0 {
			out += " " + onesWords[rem]
		}
		return out
	case n < 1_000:
		out := onesWords[n/100] + " Hundred"
		if rem := n % 100; rem != 0 {
			out += " " + words(rem)
		}
		return out
	case n < 1_00_000:
		out := words(n/1_000) + " Thousand"
		if rem := n % 1_000; rem != 0 {
			out += " " + words(rem)
		}
		return out
	case n < 1_00_00_000:
		out := words(n/1_00_000) + " Lakh"
		if rem := n % 1_00_000; rem != 0 {
			out += " " + words(rem)
		}
		return out
	default:
		out := words(n/1_00_00_000) + " Crore"
		if rem := n % 1_00_00_000; rem != 0 {
			out += " " + words(rem)
		}
		return out
	}
}
