package numerals_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/dukaan-labs/billing-api/internal/numerals"
)

func TestGroupIndianConvention(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value    string
		decimals int32
		want     string
	}{
		{"0", 0, "0"},
		{"7", 2, "7.00"},
		{"100", 0, "100"},
		{"999", 0, "999"},
		{"1000", 0, "1,000"},
		{"99999", 0, "99,999"},
		{"100000", 0, "1,00,000"},
		{"1234567", 2, "12,34,567.00"},
		{"12345678", 0, "1,23,45,678"},
		{"1234567890", 0, "1,23,45,67,890"},
		{"1234.5", 2, "1,234.50"},
		{"-1234567", 0, "-12,34,567"},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.value)
		require.NoError(t, err)
		require.Equal(t, tc.want, numerals.Group(d, tc.decimals), "value %s", tc.value)
	}
}

func TestGroupRoundsHalfAwayFromZero(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1.13", numerals.Group(decimal.RequireFromString("1.125"), 2))
	require.Equal(t, "-1.13", numerals.Group(decimal.RequireFromString("-1.125"), 2))
	require.Equal(t, "2.35", numerals.Group(decimal.RequireFromString("2.345"), 2))
}

func TestFormatGroupedMalformedInput(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0", numerals.FormatGrouped("not a number", 0))
	require.Equal(t, "0.00", numerals.FormatGrouped("", 2))
	require.Equal(t, "0.000", numerals.FormatGrouped("abc", 3))
}

func TestToWords(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n    int64
		want string
	}{
		{0, "Zero"},
		{1, "One"},
		{13, "Thirteen"},
		{19, "Nineteen"},
		{20, "Twenty"},
		{42, "Forty Two"},
		{100, "One Hundred"},
		{101, "One Hundred One"},
		{999, "Nine Hundred Ninety Nine"},
		{1000, "One Thousand"},
		{1005, "One Thousand Five"},
		{20_000, "Twenty Thousand"},
		{1_00_000, "One Lakh"},
		{1_23_456, "One Lakh Twenty Three Thousand Four Hundred Fifty Six"},
		{1_00_00_000, "One Crore"},
		{12_34_56_789, "Twelve Crore Thirty Four Lakh Fifty Six Thousand Seven Hundred Eighty Nine"},
		{2_00_00_005, "Two Crore Five"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, numerals.ToWords(tc.n), "n=%d", tc.n)
	}
}

func TestToWordsNegative(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Minus One", numerals.ToWords(-1))
	require.Equal(t, "Minus Twelve Lakh Thirty Four Thousand", numerals.ToWords(-12_34_000))
	for _, n := range []int64{7, 480, 12_34_567} {
		require.Equal(t, "Minus "+numerals.ToWords(n), numerals.ToWords(-n))
	}
}
