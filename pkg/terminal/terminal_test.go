package terminal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/ui"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestDialog_ShowModal(t *testing.T) {
	var buf bytes.Buffer
	Dialog{Out: &buf}.ShowModal(ui.Modal{Visible: true, Message: "Login successful!"})

	assert.Contains(t, buf.String(), "Login successful!")
	assert.Contains(t, buf.String(), "OK")
}

func TestDialog_HiddenModalPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	Dialog{Out: &buf}.ShowModal(ui.Modal{Message: "dismissed"})

	assert.Empty(t, buf.String())
}

func TestAlerter_Alert(t *testing.T) {
	var buf bytes.Buffer
	Alerter{Out: &buf}.Alert("Summary copied to clipboard!")

	assert.Equal(t, "Summary copied to clipboard!\n", buf.String())
}

func TestNavigator_Navigate(t *testing.T) {
	var buf bytes.Buffer
	n := &Navigator{Out: &buf, Current: models.PageSignup}

	n.Navigate(models.PageLogin)

	assert.Equal(t, models.PageLogin, n.Current)
	assert.Contains(t, buf.String(), "summarizer login")
}

func TestRenderKeywords_KeepsOrder(t *testing.T) {
	out := RenderKeywords([]string{"alpha", "beta", "gamma"})

	a := strings.Index(out, "alpha")
	b := strings.Index(out, "beta")
	g := strings.Index(out, "gamma")
	assert.True(t, a >= 0 && a < b && b < g, "tags out of order: %q", out)
}

func TestRenderSummary(t *testing.T) {
	var buf bytes.Buffer
	d := ui.NewState(models.PageDashboard).Dashboard
	d.SummaryOutput.Text = "Short."

	RenderSummary(&buf, &d)
	assert.Equal(t, "Short.\n", buf.String())

	buf.Reset()
	d.KeywordsOutput.Tags = []string{"AI"}
	RenderSummary(&buf, &d)
	assert.Contains(t, buf.String(), "AI")
}

func TestStatusRenderer_OnlyWhileBusy(t *testing.T) {
	var buf bytes.Buffer
	r := StatusRenderer{Out: &buf}
	d := ui.NewState(models.PageDashboard).Dashboard

	r.RenderDashboard(&d)
	assert.Empty(t, buf.String())

	d.SummarizeBtn.Disabled = true
	d.SummarizeBtn.Label = ui.BusyLabel
	r.RenderDashboard(&d)
	assert.Contains(t, buf.String(), ui.BusyLabel)
}
