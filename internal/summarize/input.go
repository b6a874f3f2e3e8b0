package summarize

import (
	"fmt"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dtnitsch/summarizer/internal/app"
	"github.com/dtnitsch/summarizer/internal/common"
	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/fetcher"
	"github.com/dtnitsch/summarizer/pkg/langdetect"
	"github.com/dtnitsch/summarizer/pkg/parser"
	"github.com/dtnitsch/summarizer/pkg/storage"
	"github.com/dtnitsch/summarizer/pkg/ui"
)

const languageAuto = "auto"

// fillInput loads --text, --file or --url into the dashboard inputs.
func fillInput(c *cli.Context, a *app.App, d *ui.Dashboard) error {
	d.TextInput.Value = c.String("text")

	if path := c.String("file"); path != "" {
		if err := loadFile(c.Bool("extract"), path, a, d); err != nil {
			return err
		}
	}

	if rawURL := c.String("url"); rawURL != "" {
		text, err := loadURL(c, a, rawURL)
		if err != nil {
			return err
		}
		d.TextInput.Value = text
	}
	return nil
}

func loadFile(extract bool, path string, a *app.App, d *ui.Dashboard) error {
	store := &storage.Storage{}
	stats, err := store.GetFileStats(path)
	if err != nil {
		return err
	}
	content, err := store.ReadFile(path)
	if err != nil {
		return err
	}
	a.Logger.Debug("file loaded", zap.String("name", stats.Name), zap.Int64("size_bytes", stats.SizeBytes))

	if extract && isHTML(path) {
		p := &parser.Parser{}
		doc, err := p.ExtractText("", string(content))
		if err != nil {
			return fmt.Errorf("failed to extract text from %s: %w", path, err)
		}
		d.TextInput.Value = doc.Text
		return nil
	}

	d.FileInput.File = &models.FileInput{Name: stats.Name, Content: content}
	return nil
}

func loadURL(c *cli.Context, a *app.App, rawURL string) (string, error) {
	pageURL, err := common.ValidateURL(rawURL)
	if err != nil {
		return "", err
	}

	f := fetcher.NewFetcher(a.Config.Timeout)
	page, err := f.GetHTMLBytes(c.Context, pageURL)
	if err != nil {
		return "", err
	}

	p := &parser.Parser{}
	doc, err := p.ExtractText(page.URL, string(page.HTML))
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", page.URL, err)
	}
	a.Logger.Info("page fetched",
		zap.String("url", page.URL),
		zap.String("title", doc.Title),
		zap.Int("chars", len(doc.Text)))
	return doc.Text, nil
}

func isHTML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}

// detectLanguage guesses the language of whatever will be sent: the file
// when it is readable text, otherwise the text input.
func detectLanguage(logger *zap.Logger, d *ui.Dashboard) string {
	sample := d.TextInput.Value
	if f := d.FileInput.File; f != nil && utf8.Valid(f.Content) {
		sample = string(f.Content)
	}

	code := langdetect.NewDetector().Resolve(sample)
	logger.Debug("language detected", zap.String("language", code))
	return code
}
