// Package gstin validates Indian GST identification numbers and exposes
// their structural parts. Validation is purely structural; the checksum
// digit is carried through but never verified.
package gstin

import "regexp"

// Length is the fixed size of a GSTIN.
const Length = 15

// UnknownState is returned for state codes missing from the registry.
const UnknownState = "Unknown"

// pattern: 2-digit state code, 10-character PAN (5 letters, 4 digits,
// 1 letter), entity code, the literal Z, and the check character.
var pattern = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)

var stateNames = map[string]string{
	"01": "Jammu and Kashmir",
	"02": "Himachal Pradesh",
	"03": "Punjab",
	"04": "Chandigarh",
	"05": "Uttarakhand",
	"06": "Haryana",
	"07": "Delhi",
	"08": "Rajasthan",
	"09": "Uttar Pradesh",
	"10": "Bihar",
	"11": "Sikkim",
	"12": "Arunachal Pradesh",
	"13": "Nagaland",
	"14": "Manipur",
	"15": "Mizoram",
	"16": "Tripura",
	"17": "Meghalaya",
	"18": "Assam",
	"19": "West Bengal",
	"20": "Jharkhand",
	"21": "Odisha",
	"22": "Chhattisgarh",
	"23": "Madhya Pradesh",
	"24": "Gujarat",
	"26": "Dadra and Nagar Haveli and Daman and Diu",
	"27": "Maharashtra",
	"29": "Karnataka",
	"30": "Goa",
	"31": "Lakshadweep",
	"32": "Kerala",
	"33": "Tamil Nadu",
	"34": "Puducherry",
	"35": "Andaman and Nicobar Islands",
	"36": "Telangana",
	"37": "Andhra Pradesh",
	"38": "Ladakh",
	"97": "Other Territory",
}

// Validate reports whether id is a structurally well-formed GSTIN.
func Validate(id string) bool {
	return len(id) == Length && pattern.MatchString(id)
}

// StateCode returns the two-digit state code prefix. It performs no
// structural validation beyond the length check.
func StateCode(id string) (string, bool) {
	if len(id) < 2 {
		return "", false
	}
	return id[:2], true
}

// PAN returns the ten-character identity block embedded in the GSTIN.
func PAN(id string) (string, bool) {
	if len(id) < 12 {
		return "", false
	}
	return id[2:12], true
}

// StateName resolves a state code to its name, falling back to UnknownState.
func StateName(code string) string {
	if name, ok := stateNames[code]; ok {
		return name
	}
	return UnknownState
}
