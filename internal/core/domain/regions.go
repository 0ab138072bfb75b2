package domain

// countryRegions maps each supported country to its selectable regions.
// Every region list starts with the "Any" wildcard.
var countryRegions = map[string][]string{
	Any:              {Any},
	"Australia":      {Any, "Melbourne", "Sydney", "Brisbane", "Perth", "Adelaide"},
	"United States":  {Any, "New York", "Los Angeles", "Chicago", "San Francisco"},
	"United Kingdom": {Any, "London", "Manchester", "Birmingham"},
	"Canada":         {Any, "Toronto", "Vancouver", "Montreal"},
	"India":          {Any, "Mumbai", "Delhi", "Bengaluru", "Chennai"},
}

// countryOrder fixes the display order of the catalogue.
var countryOrder = []string{
	Any,
	"Australia",
	"United States",
	"United Kingdom",
	"Canada",
	"India",
}

// Countries returns the supported countries in display order,
// starting with the "Any" wildcard.
func Countries() []string {
	out := make([]string, len(countryOrder))
	copy(out, countryOrder)
	return out
}

// RegionsFor returns the selectable regions for a country.
// Unknown countries yield just the "Any" wildcard.
func RegionsFor(country string) []string {
	regions, ok := countryRegions[country]
	if !ok {
		return []string{Any}
	}
	out := make([]string, len(regions))
	copy(out, regions)
	return out
}

// ValidCountry reports whether the country is in the catalogue.
func ValidCountry(country string) bool {
	_, ok := countryRegions[country]
	return ok
}

// ValidRegion reports whether the region is selectable for the country.
// "Any" is always valid.
func ValidRegion(country, region string) bool {
	if region == Any {
		return true
	}
	for _, r := range RegionsFor(country) {
		if r == region {
			return true
		}
	}
	return false
}
