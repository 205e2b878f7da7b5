package scraper

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"go-career-watch/internal/config"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ExtractionError means the rendered page no longer carries the elements we
// expect. Distinct from a fetch failure: the page loaded, but its structure
// drifted.
type ExtractionError struct {
	Detail string
	Err    error
}

func (e *ExtractionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("extraction failed: %s: %v", e.Detail, e.Err)
	}
	return fmt.Sprintf("extraction failed: %s", e.Detail)
}

func (e *ExtractionError) Unwrap() error { return e.Err }

var (
	numberRegex = regexp.MustCompile(`\d[\d,]*`)

	//fallbacks tried after the configured count selector
	countSelectors = []string{
		"[data-testid*='count']",
		".job-count",
	}

	//selector cascade for posting titles, most specific first
	titleSelectors = []string{
		"h3[data-testid*='job-title'] a",
		"a[data-testid*='job-title']",
		".job-title a",
		"h3 a",
		"a[href*='/jobs/']",
		"h3",
	}

	skipWords = []string{"search", "filter", "sort", "apply", "browse", "view all"}
)

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// slugify turns a posting title into a stable id for postings without links.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range normalizeText(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// Extract parses rendered page HTML into a JobSnapshot. The count element is
// mandatory; postings are best-effort (a page with a count but no
// recognizable listings yields an empty top-jobs list).
func Extract(html string, target config.Target) (JobSnapshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return EmptySnapshot(), &ExtractionError{Detail: "could not parse rendered page", Err: err}
	}

	count, ok := extractCount(doc, target.CountSelector)
	if !ok {
		return EmptySnapshot(), &ExtractionError{Detail: "job count element not found"}
	}

	base, err := url.Parse(target.URL)
	if err != nil {
		base = nil
	}

	return JobSnapshot{
		TotalCount: count,
		TopJobs:    extractTopJobs(doc, base),
	}, nil
}

func firstNumber(text string) (int, bool) {
	match := numberRegex.FindString(text)
	if match == "" {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

func extractCount(doc *goquery.Document, selector string) (int, bool) {
	selectors := append([]string{selector}, countSelectors...)
	for _, sel := range selectors {
		if sel == "" {
			continue
		}
		count, found := -1, false
		doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if n, ok := firstNumber(s.Text()); ok {
				count, found = n, true
				return false
			}
			return true
		})
		if found {
			return count, true
		}
	}

	//last resort: scan short text nodes mentioning jobs for a number
	count, found := -1, false
	doc.Find("span, div, h1, h2, p").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		if text == "" || len(text) > 80 {
			return true
		}
		if !strings.Contains(text, "job") && !strings.Contains(text, "opening") && !strings.Contains(text, "position") {
			return true
		}
		if n, ok := firstNumber(text); ok {
			count, found = n, true
			return false
		}
		return true
	})
	return count, found
}

func validTitle(title string) bool {
	if len(title) <= 5 || len(title) >= 200 {
		return false
	}
	lower := strings.ToLower(title)
	for _, skip := range skipWords {
		if strings.Contains(lower, skip) {
			return false
		}
	}
	return true
}

func resolveLink(s *goquery.Selection, base *url.URL) string {
	href, ok := s.Attr("href")
	if !ok {
		href, ok = s.Find("a[href]").First().Attr("href")
	}
	if !ok {
		href, ok = s.Closest("a[href]").Attr("href")
	}
	if !ok || href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if base != nil {
		return base.ResolveReference(ref).String()
	}
	return ref.String()
}

func extractTopJobs(doc *goquery.Document, base *url.URL) []JobPosting {
	for _, sel := range titleSelectors {
		if jobs := collectJobs(doc, sel, base); len(jobs) > 0 {
			return jobs
		}
	}
	return []JobPosting{}
}

func collectJobs(doc *goquery.Document, sel string, base *url.URL) []JobPosting {
	jobs := []JobPosting{}
	seen := make(map[string]bool)
	doc.Find(sel).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		title := strings.Join(strings.Fields(s.Text()), " ")
		if !validTitle(title) {
			return true
		}
		link := resolveLink(s, base)
		id := link
		if id == "" {
			id = slugify(title)
		}
		if id == "" || seen[id] {
			return true
		}
		seen[id] = true
		jobs = append(jobs, JobPosting{ID: id, Title: title, Link: link})
		return len(jobs) < MaxTopJobs
	})
	return jobs
}
