package bootstrap

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PlainText extracts readable text from a job description. Feeds
// exported from hosted job boards wrap descriptions in HTML; the
// terminal view wants plain paragraphs.
func PlainText(description string) string {
	if !strings.Contains(description, "<") {
		return strings.TrimSpace(description)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(description))
	if err != nil {
		return strings.TrimSpace(description)
	}

	var parts []string
	doc.Find("p, li, h1, h2, h3, h4").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})
	if len(parts) == 0 {
		return strings.TrimSpace(doc.Text())
	}
	return strings.Join(parts, "\n")
}
