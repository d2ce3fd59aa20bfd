package normalize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// LooksLikeHTML reports whether pasted text is markup rather than plain
// text. Job descriptions are frequently copied straight from job boards
// with their HTML intact.
func LooksLikeHTML(text string) bool {
	trimmed := strings.TrimSpace(text)
	if strings.HasPrefix(trimmed, "<!DOCTYPE") || strings.HasPrefix(trimmed, "<html") {
		return true
	}
	// A handful of paired tags is a stronger signal than a stray angle bracket
	tags := 0
	for _, t := range []string{"<div", "<p>", "<p ", "<li", "<ul", "<br", "<span", "</"} {
		tags += strings.Count(trimmed, t)
	}
	return tags >= 3
}

// FlattenHTML parses markup and returns the main body text. Noise elements
// (navigation, scripts, ads) are removed before text extraction.
func FlattenHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup").Remove()

	body := doc.Find("body")
	var text string
	if body.Length() > 0 {
		text = body.Text()
	} else {
		text = doc.Text()
	}

	return cleanWhitespace(text), nil
}

var (
	multiSpace   = regexp.MustCompile(`[ \t]+`)
	multiNewline = regexp.MustCompile(`\n{3,}`)
)

// cleanWhitespace collapses runs of spaces and blank lines while keeping
// line structure, which the heuristic extractor depends on.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
	}
	joined := strings.Join(lines, "\n")
	joined = multiNewline.ReplaceAllString(joined, "\n\n")
	return strings.TrimSpace(joined)
}
