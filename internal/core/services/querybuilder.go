package services

import (
	"strings"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

// baseTerms are appended to every query after the topic.
var baseTerms = []string{"education", "course OR workshop OR webinar OR training"}

// BuildQueries constructs the ordered list of query candidates for a
// topic, applying progressively looser location constraints:
//
//  1. base + country + region (only when both are set)
//  2. base + country (only when country is set)
//  3. base alone (always present as the final fallback)
//
// Each candidate is built independently from the shared base; the base
// is never mutated between candidates.
func BuildQueries(topic string, filters domain.SearchFilters) []string {
	base := make([]string, 0, len(baseTerms)+4)
	base = append(base, topic)
	base = append(base, baseTerms...)

	switch filters.Type {
	case domain.TypeCourse:
		base = append(base, "course")
	case domain.TypeSeminar:
		base = append(base, "seminar OR workshop")
	case domain.TypeVideo:
		base = append(base, "video OR lecture")
	}

	switch filters.Mode {
	case domain.ModeOnline:
		base = append(base, "online")
	case domain.ModeInPerson:
		base = append(base, "in person OR on campus")
	}

	switch filters.Cost {
	case domain.CostFree:
		base = append(base, "free")
	case domain.CostPaid:
		base = append(base, "fee OR $")
	}

	var queries []string
	if filters.Country != domain.Any && filters.Region != domain.Any {
		queries = append(queries, join(base, filters.Country, filters.Region))
	}
	if filters.Country != domain.Any {
		queries = append(queries, join(base, filters.Country))
	}
	queries = append(queries, join(base))

	return queries
}

// join builds one candidate from the base terms plus a location suffix.
func join(base []string, suffix ...string) string {
	parts := make([]string, 0, len(base)+len(suffix))
	parts = append(parts, base...)
	parts = append(parts, suffix...)
	return strings.Join(parts, " ")
}
