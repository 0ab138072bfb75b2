package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MaxRawTextLen caps ClassifiedResult.RawText. Longer text is
	// hard-truncated at construction, never rejected.
	MaxRawTextLen = 2000

	// SnippetFallbackLen is how much page text stands in for an
	// empty provider snippet.
	SnippetFallbackLen = 300
)

// ClassifiedResult is a hit that passed the educational check, the
// location check, and every active filter. It is owned by the pipeline
// invocation that created it until persisted.
type ClassifiedResult struct {
	// Title is copied verbatim from the source hit.
	Title string

	// Link is copied verbatim from the source hit. Always non-empty.
	Link string

	// Snippet is the provider snippet, or the head of the page text
	// when the provider snippet was empty.
	Snippet string

	// Type is the classified resource type.
	Type ResourceType

	// Mode is the classified delivery mode.
	Mode DeliveryMode

	// Cost is the classified cost band.
	Cost CostBand

	// Country is the country preference active when the result was
	// accepted.
	Country string

	// Region is the region preference active when the result was
	// accepted.
	Region string

	// RawText is the combined title+snippet+page text, truncated to
	// MaxRawTextLen.
	RawText string
}

// NewClassifiedResult builds a result from an accepted hit. RawText is
// truncated to MaxRawTextLen and the snippet falls back to the head of
// pageText when the hit carried none.
func NewClassifiedResult(hit SearchHit, combined, pageText string, typ ResourceType, mode DeliveryMode, cost CostBand, country, region string) ClassifiedResult {
	snippet := hit.Snippet
	if snippet == "" {
		snippet = truncate(pageText, SnippetFallbackLen)
	}
	return ClassifiedResult{
		Title:   hit.Title,
		Link:    hit.Link,
		Snippet: snippet,
		Type:    typ,
		Mode:    mode,
		Cost:    cost,
		Country: country,
		Region:  region,
		RawText: truncate(combined, MaxRawTextLen),
	}
}

// Content renders the persisted form: a single-line tag block encoding
// type/mode/cost/country/region, a newline, then the raw text.
func (r ClassifiedResult) Content() string {
	return fmt.Sprintf("[TYPE:%s][MODE:%s][COST:%s][COUNTRY:%s][REGION:%s]\n%s",
		r.Type, r.Mode, r.Cost, r.Country, r.Region, r.RawText)
}

// ContentTags holds the five fields recovered from a stored content
// value's tag block.
type ContentTags struct {
	Type    ResourceType
	Mode    DeliveryMode
	Cost    CostBand
	Country string
	Region  string
}

// ParseContentTags recovers the tag block from a stored content value
// and returns the tags plus the raw text that follows the first
// newline. Content without a recognisable tag block yields
// ErrInvalidInput.
func ParseContentTags(content string) (ContentTags, string, error) {
	line, rest, _ := strings.Cut(content, "\n")

	fields := map[string]string{}
	for _, key := range []string{"TYPE", "MODE", "COST", "COUNTRY", "REGION"} {
		open := "[" + key + ":"
		start := strings.Index(line, open)
		if start < 0 {
			return ContentTags{}, "", fmt.Errorf("%w: content missing %s tag", ErrInvalidInput, key)
		}
		end := strings.Index(line[start:], "]")
		if end < 0 {
			return ContentTags{}, "", fmt.Errorf("%w: unterminated %s tag", ErrInvalidInput, key)
		}
		fields[key] = line[start+len(open) : start+end]
	}

	return ContentTags{
		Type:    ResourceType(fields["TYPE"]),
		Mode:    DeliveryMode(fields["MODE"]),
		Cost:    CostBand(fields["COST"]),
		Country: fields["COUNTRY"],
		Region:  fields["REGION"],
	}, rest, nil
}

// truncate returns at most n bytes of s, backing up so the cut never
// lands inside a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
