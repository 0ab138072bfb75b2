package services

import (
	"strings"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

// MatchesLocation decides whether text satisfies a country/region
// preference:
//
//   - country == "Any": always true, no location constraint.
//   - region == "Any": the lower-cased country must occur as a
//     substring of the lower-cased text.
//   - both set: country OR region must occur; a page mentioning only
//     the region still matches.
func MatchesLocation(text, country, region string) bool {
	if country == domain.Any {
		return true
	}

	t := strings.ToLower(text)
	c := strings.ToLower(country)

	if region == domain.Any {
		return strings.Contains(t, c)
	}

	return strings.Contains(t, c) || strings.Contains(t, strings.ToLower(region))
}
