package domain

// SearchOutcome is the terminal state of a pipeline run. It lets
// callers distinguish "the search returned nothing" from "the search
// returned hits but none survived filtering". Both are normal,
// reportable states, not errors.
type SearchOutcome struct {
	// Query is the query candidate that produced hits, or the final
	// fallback candidate when every candidate came back empty.
	Query string

	// HitsFound is the number of hits the provider returned for
	// Query.
	HitsFound int

	// Accepted are the hits that survived every check, in provider
	// order.
	Accepted []ClassifiedResult
}

// NoSearchResults reports that every query candidate returned empty.
func (o *SearchOutcome) NoSearchResults() bool {
	return o.HitsFound == 0
}

// NoneAccepted reports that the search found hits but none passed the
// filters.
func (o *SearchOutcome) NoneAccepted() bool {
	return o.HitsFound > 0 && len(o.Accepted) == 0
}
