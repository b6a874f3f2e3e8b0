package summarize

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/dtnitsch/summarizer/internal/app"
	"github.com/dtnitsch/summarizer/internal/common"
	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/controller"
	"github.com/dtnitsch/summarizer/pkg/htmlview"
	"github.com/dtnitsch/summarizer/pkg/terminal"
	"github.com/dtnitsch/summarizer/pkg/ui"
)

// Command returns the summarize command.
func Command() *cli.Command {
	return &cli.Command{
		Name:  "summarize",
		Usage: "summarize text, a file or a web page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "text", Aliases: []string{"t"}, Usage: "text to summarize"},
			&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Usage: "file to upload, takes precedence over --text"},
			&cli.StringFlag{Name: "url", Usage: "web page to fetch and summarize"},
			&cli.BoolFlag{Name: "extract", Usage: "send the readable text of an .html file instead of the file"},
			&cli.StringFlag{Name: "format", Usage: "paragraph, bullet_points, one_liner or academic"},
			&cli.StringFlag{Name: "language", Aliases: []string{"l"}, Usage: "summary language code, or auto"},
			&cli.StringFlag{Name: "length", Usage: "1 (short), 2 (medium) or 3 (long)"},
			&cli.BoolFlag{Name: "copy", Usage: "copy the summary to the clipboard"},
			&cli.BoolFlag{Name: "download", Usage: "save the summary as summary.txt"},
			&cli.StringFlag{Name: "download-dir", Usage: "directory for --download"},
			&cli.StringFlag{Name: "html", Usage: "write the dashboard as an HTML page to this file"},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Value: "text", Usage: "text, json or yaml"},
		},
		Action: SummarizeAction,
	}
}

func SummarizeAction(c *cli.Context) error {
	startTime := time.Now()

	output := c.String("output")
	if output != "text" && output != "json" && output != "yaml" {
		return cli.Exit(fmt.Sprintf("invalid --output %q: must be text, json or yaml", output), app.ExitConfig)
	}
	if c.IsSet("url") && c.IsSet("text") {
		return cli.Exit("Cannot use both --url and --text", app.ExitConfig)
	}

	a, err := app.New(c, models.PageDashboard)
	if err != nil {
		return err
	}
	defer a.Close()
	defer a.Elapsed("summarize", startTime)

	d := &a.State.Dashboard
	if err := fillOptions(c, a.Config, d); err != nil {
		return cli.Exit(err.Error(), app.ExitConfig)
	}
	if err := fillInput(c, a, d); err != nil {
		a.Logger.Error("failed to prepare input", zap.Error(err))
		return cli.Exit(err.Error(), app.ExitFailure)
	}
	if strings.EqualFold(d.LanguageSelect.Value, languageAuto) {
		d.LanguageSelect.Value = detectLanguage(a.Logger, d)
	}

	err = a.Bus.Dispatch(c.Context, ui.IDSummarizeBtn, ui.EventClick)
	if errors.Is(err, controller.ErrNoInput) {
		return cli.Exit("", app.ExitFailure)
	}
	if err != nil {
		return err
	}
	res := a.Summarize.LastResult()

	if c.Bool("copy") {
		if err := a.Bus.Dispatch(c.Context, ui.IDCopyBtn, ui.EventClick); err != nil {
			return err
		}
	}
	if c.Bool("download") {
		if err := a.Bus.Dispatch(c.Context, ui.IDDownloadBtn, ui.EventClick); err != nil {
			return cli.Exit(err.Error(), app.ExitFailure)
		}
	}
	if path := c.String("html"); path != "" {
		if err := htmlview.ExportFile(path, a.State); err != nil {
			return cli.Exit(err.Error(), app.ExitFailure)
		}
		a.Logger.Info("dashboard written", zap.String("path", path))
	}

	if output == "text" {
		terminal.RenderSummary(a.Out, d)
	} else {
		data, err := common.MarshalOutput(res, output)
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(a.Out, string(data))
	}

	return app.ResultExit(res)
}

// fillOptions sets the format, language and length controls from flags,
// falling back to the configured defaults.
func fillOptions(c *cli.Context, cfg *models.Config, d *ui.Dashboard) error {
	format := cfg.Defaults.Format
	if c.IsSet("format") {
		f, err := models.ParseFormat(c.String("format"))
		if err != nil {
			return err
		}
		format = f
	}
	d.FormatSelect.Value = string(format)

	d.LanguageSelect.Value = cfg.Defaults.Language
	if c.IsSet("language") {
		d.LanguageSelect.Value = strings.TrimSpace(c.String("language"))
	}

	length := cfg.Defaults.Length
	if c.IsSet("length") {
		l, err := models.ParseLength(c.String("length"))
		if err != nil {
			return err
		}
		length = l
	}
	d.LengthSlider.Value = length.String()

	return nil
}
