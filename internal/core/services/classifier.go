package services

import (
	"strings"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

// eduKeywords is the fixed keyword set for the educational check.
// Matching is pure substring containment on lower-cased text; embedded
// substrings ("classroom" matching "class") are accepted false
// positives.
var eduKeywords = []string{
	"course", "class", "workshop", "training", "tutorial",
	"webinar", "lecture", "program", "degree", "diploma",
	"certificate", "bootcamp", "seminar", "learn", "education", "study",
}

// typeGroups drive ClassifyType. First-match-wins: a text containing
// both "webinar" and "course" must classify as Seminar / Workshop, so
// the group order matters.
var typeGroups = []struct {
	keywords []string
	result   domain.ResourceType
}{
	{[]string{"webinar", "seminar", "workshop"}, domain.TypeSeminar},
	{[]string{"video", "youtube", "lecture"}, domain.TypeVideo},
	{[]string{"course", "short course", "bootcamp", "mooc"}, domain.TypeCourse},
}

// modeGroups drive ClassifyMode, same first-match-wins pattern.
var modeGroups = []struct {
	keywords []string
	result   domain.DeliveryMode
}{
	{[]string{"online", "virtual", "remote", "self-paced"}, domain.ModeOnline},
	{[]string{"campus", "in-person", "on campus", "classroom", "venue"}, domain.ModeInPerson},
}

// costGroups drive ClassifyCost, same first-match-wins pattern.
var costGroups = []struct {
	keywords []string
	result   domain.CostBand
}{
	{[]string{"free", "no cost"}, domain.CostFree},
	{[]string{"$", "aud", "fee", "per month", "per year"}, domain.CostPaid},
}

// IsEducational reports whether the text mentions any of the fixed
// educational keywords, case-insensitively.
func IsEducational(text string) bool {
	t := strings.ToLower(text)
	for _, word := range eduKeywords {
		if strings.Contains(t, word) {
			return true
		}
	}
	return false
}

// ClassifyType derives the resource type from text.
// Defaults to Article / Other when no keyword group matches.
func ClassifyType(text string) domain.ResourceType {
	t := strings.ToLower(text)
	for _, group := range typeGroups {
		if containsAny(t, group.keywords) {
			return group.result
		}
	}
	return domain.TypeArticle
}

// ClassifyMode derives the delivery mode from text.
// Defaults to Unknown when no keyword group matches.
func ClassifyMode(text string) domain.DeliveryMode {
	t := strings.ToLower(text)
	for _, group := range modeGroups {
		if containsAny(t, group.keywords) {
			return group.result
		}
	}
	return domain.ModeUnknown
}

// ClassifyCost derives the cost band from text.
// Defaults to Unknown when no keyword group matches.
func ClassifyCost(text string) domain.CostBand {
	t := strings.ToLower(text)
	for _, group := range costGroups {
		if containsAny(t, group.keywords) {
			return group.result
		}
	}
	return domain.CostUnknown
}

// containsAny reports whether lower-cased text contains any keyword.
func containsAny(lowered string, keywords []string) bool {
	for _, word := range keywords {
		if strings.Contains(lowered, word) {
			return true
		}
	}
	return false
}
