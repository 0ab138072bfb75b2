package domain

import "fmt"

// Any is the universal wildcard for every categorical filter field
// and for the country/region fields.
const Any = "Any"

// ResourceType categorises an educational resource.
type ResourceType string

// Resource type values. The display strings double as the persisted
// representation inside content tag blocks.
const (
	TypeAny     ResourceType = Any
	TypeCourse  ResourceType = "Course"
	TypeSeminar ResourceType = "Seminar / Workshop"
	TypeVideo   ResourceType = "Video / Lecture"
	TypeArticle ResourceType = "Article / Other"
)

// DeliveryMode describes how a resource is delivered.
type DeliveryMode string

// Delivery mode values. ModeUnknown is a classification outcome only;
// it is never a valid filter value.
const (
	ModeAny      DeliveryMode = Any
	ModeOnline   DeliveryMode = "Online"
	ModeInPerson DeliveryMode = "In-person"
	ModeUnknown  DeliveryMode = "Unknown"
)

// CostBand describes the pricing of a resource.
type CostBand string

// Cost band values. CostUnknown is a classification outcome only;
// it is never a valid filter value.
const (
	CostAny     CostBand = Any
	CostFree    CostBand = "Free"
	CostPaid    CostBand = "Paid / Unknown"
	CostUnknown CostBand = "Unknown"
)

// SearchFilters holds the user's preferences for a single search run.
// Region is meaningful only relative to Country. The zero value is not
// valid; use DefaultFilters for an all-wildcard filter set.
type SearchFilters struct {
	// Type restricts results to a resource type.
	Type ResourceType

	// Mode restricts results to a delivery mode.
	Mode DeliveryMode

	// Cost restricts results to a cost band.
	Cost CostBand

	// Country restricts results to pages mentioning this country.
	Country string

	// Region further restricts (or, with Country, alternatively
	// satisfies) the location check.
	Region string
}

// DefaultFilters returns a filter set with every field set to the
// "Any" wildcard.
func DefaultFilters() SearchFilters {
	return SearchFilters{
		Type:    TypeAny,
		Mode:    ModeAny,
		Cost:    CostAny,
		Country: Any,
		Region:  Any,
	}
}

// ParseResourceType converts a user-supplied string to a ResourceType.
func ParseResourceType(s string) (ResourceType, error) {
	switch ResourceType(s) {
	case TypeAny, TypeCourse, TypeSeminar, TypeVideo, TypeArticle:
		return ResourceType(s), nil
	}
	return "", fmt.Errorf("%w: resource type %q", ErrInvalidInput, s)
}

// ParseDeliveryMode converts a user-supplied string to a DeliveryMode.
// "Unknown" is rejected: it is a classification outcome, not a filter.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch DeliveryMode(s) {
	case ModeAny, ModeOnline, ModeInPerson:
		return DeliveryMode(s), nil
	}
	return "", fmt.Errorf("%w: delivery mode %q", ErrInvalidInput, s)
}

// ParseCostBand converts a user-supplied string to a CostBand.
// "Unknown" is rejected: it is a classification outcome, not a filter.
func ParseCostBand(s string) (CostBand, error) {
	switch CostBand(s) {
	case CostAny, CostFree, CostPaid:
		return CostBand(s), nil
	}
	return "", fmt.Errorf("%w: cost band %q", ErrInvalidInput, s)
}
