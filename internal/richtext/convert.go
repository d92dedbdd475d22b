package richtext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// LinesToHTML renders plain text lines as an unordered list, escaping each
// line. Blank lines are skipped; no lines yield an empty fragment.
func LinesToHTML(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.WriteString("<li>")
		b.WriteString(html.EscapeString(line))
		b.WriteString("</li>")
	}
	if b.Len() == 0 {
		return ""
	}
	return "<ul>" + b.String() + "</ul>"
}

// HTMLToLines extracts a line per content block from an HTML fragment.
// List items win when present, then paragraph and div blocks, then a plain
// newline split of the text. Blank results are dropped.
func HTMLToLines(fragment string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}

	var lines []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			lines = append(lines, s)
		}
	}

	if items := doc.Find("li"); items.Length() > 0 {
		items.Each(func(_ int, s *goquery.Selection) { add(s.Text()) })
		return lines, nil
	}
	if blocks := doc.Find("p, div"); blocks.Length() > 0 {
		blocks.Each(func(_ int, s *goquery.Selection) { add(s.Text()) })
		return lines, nil
	}
	for _, line := range strings.Split(doc.Text(), "\n") {
		add(line)
	}
	return lines, nil
}

// PreviewText flattens an HTML fragment to single-line text truncated to at
// most n runes, with an ellipsis when content was cut.
func PreviewText(fragment string, n int) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	text := strings.Join(strings.Fields(doc.Text()), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return strings.TrimSpace(string(runes[:n])) + "..."
}
