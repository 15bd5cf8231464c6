// Package countries maps ISO 3166-1 alpha-2 codes to display names for the
// regions that actually appear in pro player data.
package countries

import "strings"

var codeToName = map[string]string{
	"AR": "Argentina",
	"AU": "Australia",
	"AT": "Austria",
	"AZ": "Azerbaijan",
	"BY": "Belarus",
	"BE": "Belgium",
	"BO": "Bolivia",
	"BA": "Bosnia and Herzegovina",
	"BR": "Brazil",
	"BG": "Bulgaria",
	"KH": "Cambodia",
	"CA": "Canada",
	"CL": "Chile",
	"CN": "China",
	"CO": "Colombia",
	"HR": "Croatia",
	"CZ": "Czechia",
	"DK": "Denmark",
	"EC": "Ecuador",
	"EE": "Estonia",
	"FI": "Finland",
	"FR": "France",
	"GE": "Georgia",
	"DE": "Germany",
	"GR": "Greece",
	"HK": "Hong Kong",
	"HU": "Hungary",
	"ID": "Indonesia",
	"IR": "Iran",
	"IL": "Israel",
	"IT": "Italy",
	"JP": "Japan",
	"JO": "Jordan",
	"KZ": "Kazakhstan",
	"KG": "Kyrgyzstan",
	"LA": "Laos",
	"LV": "Latvia",
	"LB": "Lebanon",
	"LT": "Lithuania",
	"MO": "Macao",
	"MY": "Malaysia",
	"MX": "Mexico",
	"MD": "Moldova",
	"MN": "Mongolia",
	"MM": "Myanmar",
	"NL": "Netherlands",
	"NZ": "New Zealand",
	"MK": "North Macedonia",
	"NO": "Norway",
	"PK": "Pakistan",
	"PE": "Peru",
	"PH": "Philippines",
	"PL": "Poland",
	"PT": "Portugal",
	"RO": "Romania",
	"RU": "Russia",
	"RS": "Serbia",
	"SG": "Singapore",
	"SK": "Slovakia",
	"SI": "Slovenia",
	"KR": "South Korea",
	"ES": "Spain",
	"SE": "Sweden",
	"CH": "Switzerland",
	"TW": "Taiwan",
	"TH": "Thailand",
	"TR": "Turkey",
	"UA": "Ukraine",
	"AE": "United Arab Emirates",
	"GB": "United Kingdom",
	"US": "United States",
	"UY": "Uruguay",
	"UZ": "Uzbekistan",
	"VE": "Venezuela",
	"VN": "Vietnam",
}

// Name returns the display name for a country code, falling back to the
// upper-cased code itself when unknown.
func Name(code string) string {
	upper := strings.ToUpper(strings.TrimSpace(code))
	if name, ok := codeToName[upper]; ok {
		return name
	}
	return upper
}
