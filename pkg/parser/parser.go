package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// fallbackURL stands in for documents that were not fetched from the web.
const fallbackURL = "http://localhost/"

type Parser struct{}

// Document is the readable text of an HTML page.
type Document struct {
	Title string
	Text  string
}

// ExtractText finds the main article in html with go-readability and
// flattens it to plain text, one block per line. Pages readability cannot
// make sense of fall back to the text of the whole body.
func (p *Parser) ExtractText(rawURL, html string) (*Document, error) {
	if rawURL == "" {
		rawURL = fallbackURL
	}
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	readabilityParser := readability.NewParser()
	article, err := readabilityParser.Parse(strings.NewReader(html), parsedURL)
	if err == nil {
		text, err := blocksToText(article.Content)
		if err != nil {
			return nil, err
		}
		if text != "" {
			return &Document{Title: normalizeText(article.Title), Text: text}, nil
		}
	}

	return bodyText(html)
}

// blocksToText joins headings, paragraphs, list items and code blocks.
func blocksToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var lines []string
	doc.Find("h1,h2,h3,h4,p,li,pre").Each(func(i int, s *goquery.Selection) {
		var text string
		if goquery.NodeName(s) == "pre" {
			text = strings.TrimSpace(s.Text())
		} else {
			// Skip containers whose text is already collected from a child.
			if s.Find("p,li").Length() > 0 {
				return
			}
			text = normalizeText(s.Text())
		}
		if text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n"), nil
}

func bodyText(html string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script,style,noscript").Remove()

	return &Document{
		Title: normalizeText(doc.Find("title").First().Text()),
		Text:  normalizeText(doc.Find("body").Text()),
	}, nil
}

// normalizeText cleans up a string by trimming space and removing excess newlines.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
