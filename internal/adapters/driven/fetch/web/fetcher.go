// Package web implements driven.PageFetcher over plain HTTP.
//
// Visible text is extracted with go-readability, falling back to a
// regex-based tag strip when readability cannot parse the page. Any
// failure is converted to a "(scrape error: ...)" placeholder string;
// a fetch failure is never fatal to the pipeline.
package web

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	readability "github.com/go-shiori/go-readability"

	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driven"
	"github.com/kidssmart-labs/edufind-cli/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.PageFetcher = (*Fetcher)(nil)

const (
	// DefaultTimeout bounds each page fetch.
	DefaultTimeout = 15 * time.Second

	// DefaultUserAgent identifies the fetcher to origin servers.
	DefaultUserAgent = "Mozilla/5.0 (compatible; edufind/1.0)"

	// maxBodyBytes caps how much of a response body is read. Pages
	// larger than this are truncated before extraction.
	maxBodyBytes = 1 << 20 // 1 MiB
)

// Fetcher retrieves pages over HTTP and extracts their visible text.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a page fetcher. A non-positive timeout uses
// DefaultTimeout; an empty userAgent uses DefaultUserAgent.
func New(timeout time.Duration, userAgent string) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Fetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch returns the page's visible text truncated to maxChars, or a
// placeholder string on any failure.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string, maxChars int) string {
	text, err := f.fetch(ctx, pageURL)
	if err != nil {
		logger.Debug("Fetch failed for %s: %v", pageURL, err)
		return fmt.Sprintf("(scrape error: %v)", err)
	}
	if maxChars > 0 && len(text) > maxChars {
		cut := maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}

func (f *Fetcher) fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading body: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(string(body)), nil)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return collapseWhitespace(article.TextContent), nil
	}

	// Readability refuses pages without article structure; fall back
	// to a plain tag strip.
	return collapseWhitespace(stripHTML(string(body))), nil
}

// Pre-compiled regular expressions for the tag-strip fallback.
var (
	scriptTag   = regexp.MustCompile(`(?is)<script[^>]*>.*?</script>`)
	styleTag    = regexp.MustCompile(`(?is)<style[^>]*>.*?</style>`)
	noscriptTag = regexp.MustCompile(`(?is)<noscript[^>]*>.*?</noscript>`)
	headTag     = regexp.MustCompile(`(?is)<head[^>]*>.*?</head>`)
	svgTag      = regexp.MustCompile(`(?is)<svg[^>]*>.*?</svg>`)
	comments    = regexp.MustCompile(`(?s)<!--.*?-->`)
	allTags     = regexp.MustCompile(`<[^>]+>`)
)

// stripHTML removes markup and returns the remaining text.
func stripHTML(content string) string {
	content = scriptTag.ReplaceAllString(content, "")
	content = styleTag.ReplaceAllString(content, "")
	content = noscriptTag.ReplaceAllString(content, "")
	content = headTag.ReplaceAllString(content, "")
	content = svgTag.ReplaceAllString(content, "")
	content = comments.ReplaceAllString(content, "")
	content = allTags.ReplaceAllString(content, " ")
	return html.UnescapeString(content)
}

// collapseWhitespace joins all runs of whitespace into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
