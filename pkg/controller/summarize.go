package controller

import (
	"context"
	"errors"
	"fmt"

	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/ui"
	"go.uber.org/zap"
)

const (
	MsgNoInput      = "Please provide text or upload a file to summarize."
	MsgCritical     = "A critical error occurred while contacting the server."
	MsgCopied       = "Summary copied to clipboard!"
	MsgCopyFailed   = "Could not copy text."
	errorLinePrefix = "An error occurred: "

	DownloadName        = "summary.txt"
	DownloadContentType = "text/plain;charset=utf-8"
)

// ErrNoInput is returned by Summarize after alerting that the form was empty.
var ErrNoInput = errors.New("no text or file to summarize")

// SummarizeController handles the dashboard: summarize, copy and download.
type SummarizeController struct {
	state     *ui.State
	api       SummaryAPI
	alerter   Alerter
	clipboard Clipboard
	saver     Saver
	renderer  Renderer
	logger    *zap.Logger

	last models.ApiResult
}

func NewSummarizeController(state *ui.State, api SummaryAPI, alerter Alerter, clipboard Clipboard, saver Saver, logger *zap.Logger) *SummarizeController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SummarizeController{
		state:     state,
		api:       api,
		alerter:   alerter,
		clipboard: clipboard,
		saver:     saver,
		logger:    logger,
	}
}

// SetRenderer installs a renderer notified when the dashboard goes busy and idle.
func (c *SummarizeController) SetRenderer(r Renderer) {
	c.renderer = r
}

// LastResult is the result of the most recent summarize call.
func (c *SummarizeController) LastResult() models.ApiResult {
	return c.last
}

// Summarize reads the dashboard form, submits it and renders the outcome.
// Whatever happens after validation, the trigger button ends enabled with
// its original label.
func (c *SummarizeController) Summarize(ctx context.Context) error {
	d := &c.state.Dashboard

	req := c.readForm()
	if !req.HasInput() {
		c.alerter.Alert(MsgNoInput)
		return ErrNoInput
	}

	d.SummaryOutput.Text = ui.SummaryPending
	d.KeywordsOutput.Clear()
	d.SummarizeBtn.Disabled = true
	d.SummarizeBtn.Label = ui.BusyLabel
	c.render()

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Summarization error", zap.Any("panic", r))
			c.last = models.NewConnectFailure(MsgCritical)
			d.SummaryOutput.Text = MsgCritical
		}
		d.SummarizeBtn.Disabled = false
		d.SummarizeBtn.Label = ui.SummarizeLabel
		c.render()
	}()

	res := c.api.Summarize(ctx, req)
	c.last = res

	if !res.Success {
		d.SummaryOutput.Text = errorLinePrefix + res.Message
		return nil
	}
	d.SummaryOutput.Text = res.Summary
	if res.Keywords != nil {
		d.KeywordsOutput.Tags = append([]string(nil), res.Keywords...)
	}
	return nil
}

// Copy puts the current summary on the clipboard. It does nothing while the
// placeholder is showing.
func (c *SummarizeController) Copy(ctx context.Context) error {
	d := &c.state.Dashboard
	if !d.HasSummary() {
		return nil
	}

	if err := c.clipboard.WriteText(d.SummaryOutput.Text); err != nil {
		c.logger.Error("Failed to copy text", zap.Error(err))
		c.alerter.Alert(MsgCopyFailed)
		return nil
	}
	c.alerter.Alert(MsgCopied)
	return nil
}

// Download saves the current summary as summary.txt. It does nothing while
// the placeholder is showing.
func (c *SummarizeController) Download(ctx context.Context) error {
	d := &c.state.Dashboard
	if !d.HasSummary() {
		return nil
	}

	path, err := c.saver.Save(DownloadName, DownloadContentType, []byte(d.SummaryOutput.Text))
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", DownloadName, err)
	}
	c.logger.Info("summary saved", zap.String("path", path))
	return nil
}

func (c *SummarizeController) readForm() models.SummaryRequest {
	d := &c.state.Dashboard

	length, err := models.ParseLength(d.LengthSlider.Value)
	if err != nil {
		c.logger.Debug("invalid length, using medium", zap.String("value", d.LengthSlider.Value))
		length = models.LengthMedium
	}

	return models.SummaryRequest{
		Text:     d.TextInput.Value,
		File:     d.FileInput.File,
		Format:   models.Format(d.FormatSelect.Value),
		Language: d.LanguageSelect.Value,
		Length:   length,
	}
}

func (c *SummarizeController) render() {
	if c.renderer != nil {
		c.renderer.RenderDashboard(&c.state.Dashboard)
	}
}
