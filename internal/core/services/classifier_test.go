package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

func TestIsEducational_MatchesEveryKeyword(t *testing.T) {
	keywords := []string{
		"course", "class", "workshop", "training", "tutorial",
		"webinar", "lecture", "program", "degree", "diploma",
		"certificate", "bootcamp", "seminar", "learn", "education", "study",
	}

	for _, word := range keywords {
		assert.True(t, IsEducational("an excellent "+word+" for kids"), "keyword %q", word)
	}
}

func TestIsEducational_CaseInsensitive(t *testing.T) {
	assert.True(t, IsEducational("FREE ONLINE COURSE"))
	assert.True(t, IsEducational("WeBiNaR next week"))
}

func TestIsEducational_SubstringContainment(t *testing.T) {
	// No word-boundary checks: embedded substrings count.
	assert.True(t, IsEducational("classical music"))   // "class"
	assert.True(t, IsEducational("unlearnable"))       // "learn"
	assert.False(t, IsEducational("a page about cats"))
}

func TestIsEducational_EmptyText(t *testing.T) {
	assert.False(t, IsEducational(""))
}

func TestClassifyType(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.ResourceType
	}{
		{"webinar", "join our webinar", domain.TypeSeminar},
		{"seminar", "annual research seminar", domain.TypeSeminar},
		{"workshop", "hands-on workshop", domain.TypeSeminar},
		{"video", "watch the video series", domain.TypeVideo},
		{"youtube", "available on youtube", domain.TypeVideo},
		{"lecture", "guest lecture recording", domain.TypeVideo},
		{"course", "a 6-week course", domain.TypeCourse},
		{"bootcamp", "coding bootcamp", domain.TypeCourse},
		{"mooc", "a popular mooc", domain.TypeCourse},
		{"default", "a helpful guide", domain.TypeArticle},
		{"empty", "", domain.TypeArticle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyType(tt.text))
		})
	}
}

func TestClassifyType_PriorityOrder(t *testing.T) {
	// A text containing keywords from two groups resolves to the
	// higher-priority group.
	assert.Equal(t, domain.TypeSeminar, ClassifyType("a webinar about this course"))
	assert.Equal(t, domain.TypeVideo, ClassifyType("video course for beginners"))
	assert.Equal(t, domain.TypeSeminar, ClassifyType("workshop with video lectures on a course"))
}

func TestClassifyMode(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.DeliveryMode
	}{
		{"online", "fully online", domain.ModeOnline},
		{"virtual", "virtual sessions", domain.ModeOnline},
		{"remote", "remote friendly", domain.ModeOnline},
		{"self-paced", "self-paced modules", domain.ModeOnline},
		{"campus", "held on campus", domain.ModeInPerson},
		{"in-person", "in-person only", domain.ModeInPerson},
		{"classroom", "classroom based", domain.ModeInPerson},
		{"venue", "at our city venue", domain.ModeInPerson},
		{"default", "a learning resource", domain.ModeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyMode(tt.text))
		})
	}
}

func TestClassifyMode_PriorityOrder(t *testing.T) {
	// Online group beats in-person group.
	assert.Equal(t, domain.ModeOnline, ClassifyMode("online or on campus"))
}

func TestClassifyCost(t *testing.T) {
	tests := []struct {
		name string
		text string
		want domain.CostBand
	}{
		{"free", "completely free", domain.CostFree},
		{"no cost", "no cost to attend", domain.CostFree},
		{"dollar", "$49 enrolment", domain.CostPaid},
		{"aud", "199 aud", domain.CostPaid},
		{"fee", "a small fee applies", domain.CostPaid},
		{"per month", "billed per month", domain.CostPaid},
		{"default", "a learning resource", domain.CostUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyCost(tt.text))
		})
	}
}

func TestClassifyCost_PriorityOrder(t *testing.T) {
	// Free group beats paid group: "free trial, then $10/month".
	assert.Equal(t, domain.CostFree, ClassifyCost("free trial, then $10 per month"))
}

func TestClassifiers_Deterministic(t *testing.T) {
	text := "Free online robotics course for children"
	for i := 0; i < 3; i++ {
		assert.Equal(t, domain.TypeCourse, ClassifyType(text))
		assert.Equal(t, domain.ModeOnline, ClassifyMode(text))
		assert.Equal(t, domain.CostFree, ClassifyCost(text))
	}
}
