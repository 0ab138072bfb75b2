package domain

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClassifiedResult_CopiesHitFields(t *testing.T) {
	hit := SearchHit{
		Title:   "Kids Robotics Course",
		Link:    "http://x",
		Snippet: "Free online robotics course",
	}

	r := NewClassifiedResult(hit, "combined text", "page text",
		TypeCourse, ModeOnline, CostFree, "Australia", "Melbourne")

	assert.Equal(t, hit.Title, r.Title)
	assert.Equal(t, hit.Link, r.Link)
	assert.Equal(t, hit.Snippet, r.Snippet)
	assert.Equal(t, "combined text", r.RawText)
}

func TestNewClassifiedResult_SnippetFallsBackToPageText(t *testing.T) {
	hit := SearchHit{Title: "t", Link: "http://x"}
	long := strings.Repeat("p", SnippetFallbackLen+50)

	r := NewClassifiedResult(hit, "combined", long,
		TypeArticle, ModeUnknown, CostUnknown, Any, Any)

	assert.Len(t, r.Snippet, SnippetFallbackLen)
	assert.Equal(t, long[:SnippetFallbackLen], r.Snippet)
}

func TestNewClassifiedResult_TruncatesRawText(t *testing.T) {
	hit := SearchHit{Title: "t", Link: "http://x", Snippet: "s"}
	long := strings.Repeat("x", MaxRawTextLen+500)

	r := NewClassifiedResult(hit, long, "",
		TypeCourse, ModeOnline, CostFree, Any, Any)

	assert.Len(t, r.RawText, MaxRawTextLen)
}

func TestNewClassifiedResult_TruncationKeepsRuneBoundaries(t *testing.T) {
	hit := SearchHit{Title: "t", Link: "http://x"}
	// 3-byte runes that do not divide either limit evenly once offset.
	long := "a" + strings.Repeat("日", MaxRawTextLen)

	r := NewClassifiedResult(hit, long, long,
		TypeCourse, ModeOnline, CostFree, Any, Any)

	assert.True(t, utf8.ValidString(r.RawText))
	assert.LessOrEqual(t, len(r.RawText), MaxRawTextLen)
	assert.True(t, utf8.ValidString(r.Snippet))
	assert.LessOrEqual(t, len(r.Snippet), SnippetFallbackLen)
}

func TestContent_TagBlockRoundTrip(t *testing.T) {
	r := ClassifiedResult{
		Type:    TypeSeminar,
		Mode:    ModeInPerson,
		Cost:    CostPaid,
		Country: "Australia",
		Region:  "Melbourne",
		RawText: "A hands-on workshop in Melbourne.\nSecond line.",
	}

	tags, raw, err := ParseContentTags(r.Content())

	require.NoError(t, err)
	assert.Equal(t, TypeSeminar, tags.Type)
	assert.Equal(t, ModeInPerson, tags.Mode)
	assert.Equal(t, CostPaid, tags.Cost)
	assert.Equal(t, "Australia", tags.Country)
	assert.Equal(t, "Melbourne", tags.Region)
	assert.Equal(t, r.RawText, raw)
}

func TestContent_FirstLineIsTagBlock(t *testing.T) {
	r := ClassifiedResult{
		Type: TypeCourse, Mode: ModeOnline, Cost: CostFree,
		Country: Any, Region: Any, RawText: "body",
	}

	line, _, found := strings.Cut(r.Content(), "\n")

	require.True(t, found)
	assert.Equal(t, "[TYPE:Course][MODE:Online][COST:Free][COUNTRY:Any][REGION:Any]", line)
}

func TestParseContentTags_MissingTag(t *testing.T) {
	_, _, err := ParseContentTags("[TYPE:Course][MODE:Online]\nbody")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseContentTags_EmptyContent(t *testing.T) {
	_, _, err := ParseContentTags("")

	assert.ErrorIs(t, err, ErrInvalidInput)
}
