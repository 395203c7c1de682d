package normalizer

import "strings"

// stateCodes maps upper-cased full state names to their USPS codes.
var stateCodes = map[string]string{
	"ALABAMA": "AL", "ALASKA": "AK", "ARIZONA": "AZ", "ARKANSAS": "AR",
	"CALIFORNIA": "CA", "COLORADO": "CO", "CONNECTICUT": "CT", "DELAWARE": "DE",
	"FLORIDA": "FL", "GEORGIA": "GA", "HAWAII": "HI", "IDAHO": "ID",
	"ILLINOIS": "IL", "INDIANA": "IN", "IOWA": "IA", "KANSAS": "KS",
	"KENTUCKY": "KY", "LOUISIANA": "LA", "MAINE": "ME", "MARYLAND": "MD",
	"MASSACHUSETTS": "MA", "MICHIGAN": "MI", "MINNESOTA": "MN", "MISSISSIPPI": "MS",
	"MISSOURI": "MO", "MONTANA": "MT", "NEBRASKA": "NE", "NEVADA": "NV",
	"NEW HAMPSHIRE": "NH", "NEW JERSEY": "NJ", "NEW MEXICO": "NM", "NEW YORK": "NY",
	"NORTH CAROLINA": "NC", "NORTH DAKOTA": "ND", "OHIO": "OH", "OKLAHOMA": "OK",
	"OREGON": "OR", "PENNSYLVANIA": "PA", "RHODE ISLAND": "RI", "SOUTH CAROLINA": "SC",
	"SOUTH DAKOTA": "SD", "TENNESSEE": "TN", "TEXAS": "TX", "UTAH": "UT",
	"VERMONT": "VT", "VIRGINIA": "VA", "WASHINGTON": "WA", "WEST VIRGINIA": "WV",
	"WISCONSIN": "WI", "WYOMING": "WY",
}

// validCodes is the set of the 50 state codes.
var validCodes = func() map[string]struct{} {
	codes := make(map[string]struct{}, len(stateCodes))
	for _, code := range stateCodes {
		codes[code] = struct{}{}
	}

	return codes
}()

// NormalizeState maps a state name or code to its 2-letter code.
// Matching is exact apart from case and surrounding whitespace; it reports
// false for anything it does not recognize.
func NormalizeState(input string) (string, bool) {
	upper := strings.ToUpper(strings.TrimSpace(input))
	if upper == "" {
		return "", false
	}

	if _, ok := validCodes[upper]; ok {
		return upper, true
	}

	code, ok := stateCodes[upper]

	return code, ok
}

// StateCodes returns the 50 valid state codes.
func StateCodes() []string {
	codes := make([]string, 0, len(validCodes))
	for code := range validCodes {
		codes = append(codes, code)
	}

	return codes
}
