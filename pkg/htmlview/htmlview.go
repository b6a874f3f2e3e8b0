// Package htmlview renders the dashboard state into a standalone HTML page
// that uses the same element identifiers as the browser client.
package htmlview

import (
	_ "embed"
	"fmt"
	"html"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/summarizer/pkg/ui"
)

//go:embed dashboard.html
var dashboardHTML string

// Render fills the dashboard template from state and returns the page.
func Render(state *ui.State) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(dashboardHTML))
	if err != nil {
		return "", fmt.Errorf("failed to parse dashboard template: %w", err)
	}

	d := &state.Dashboard
	byID(doc, d.TextInput.ID).SetText(d.TextInput.Value)
	selectOption(byID(doc, d.FormatSelect.ID), d.FormatSelect.Value)
	selectOption(byID(doc, d.LanguageSelect.ID), d.LanguageSelect.Value)
	byID(doc, d.LengthSlider.ID).SetAttr("value", d.LengthSlider.Value)

	btn := byID(doc, d.SummarizeBtn.ID).SetText(d.SummarizeBtn.Label)
	if d.SummarizeBtn.Disabled {
		btn.SetAttr("disabled", "disabled")
	}

	byID(doc, d.SummaryOutput.ID).SetText(d.SummaryOutput.Text)

	keywords := byID(doc, d.KeywordsOutput.ID)
	keywords.Empty()
	for _, tag := range d.KeywordsOutput.Tags {
		keywords.AppendHtml("<span>" + html.EscapeString(tag) + "</span>")
	}

	if state.Modal.Visible {
		byID(doc, ui.IDModal).AddClass("visible")
		byID(doc, ui.IDModalMessage).SetText(state.Modal.Message)
	}

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("failed to render dashboard: %w", err)
	}
	return out, nil
}

// Export writes the rendered page to w.
func Export(w io.Writer, state *ui.State) error {
	page, err := Render(state)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, page)
	return err
}

// ExportFile writes the rendered page to path, creating parent directories.
func ExportFile(path string, state *ui.State) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := Export(f, state); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

func byID(doc *goquery.Document, id string) *goquery.Selection {
	return doc.Find("#" + id)
}

func selectOption(sel *goquery.Selection, value string) {
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		if opt.AttrOr("value", "") == value {
			opt.SetAttr("selected", "selected")
		} else {
			opt.RemoveAttr("selected")
		}
	})
}
