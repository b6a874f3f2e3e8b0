// Package terminal presents the client's page state on a text terminal.
package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/ui"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("39")).
			Padding(1, 3).
			Align(lipgloss.Center)

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("231")).
		Background(lipgloss.Color("35")).
		Padding(0, 2)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("62")).
			Padding(0, 1).
			MarginRight(1)
)

// Dialog draws the modal as a bordered box.
type Dialog struct {
	Out io.Writer
}

func (d Dialog) ShowModal(m ui.Modal) {
	if !m.Visible {
		return
	}
	body := lipgloss.JoinVertical(lipgloss.Center, m.Message, "", okStyle.Render("OK"))
	fmt.Fprintln(d.Out, modalStyle.Render(body))
}

// Alerter prints alerts in yellow.
type Alerter struct {
	Out io.Writer
}

func (a Alerter) Alert(message string) {
	color.New(color.FgYellow, color.Bold).Fprintln(a.Out, message)
}

var nextSteps = map[models.Page]string{
	models.PageSignup:    "summarizer signup --username <name> --email <email>",
	models.PageLogin:     "summarizer login --email <email>",
	models.PageDashboard: `summarizer summarize --text "..."`,
}

// Navigator records the current page and tells the user which command
// opens it.
type Navigator struct {
	Out     io.Writer
	Current models.Page
}

func (n *Navigator) Navigate(page models.Page) {
	n.Current = page
	hint, ok := nextSteps[page]
	if !ok {
		return
	}
	color.New(color.FgCyan).Fprintf(n.Out, "Next: %s\n", hint)
}

// Clipboard writes to the system clipboard.
type Clipboard struct{}

func (Clipboard) WriteText(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard not supported on this system")
	}
	return clipboard.WriteAll(text)
}

// StatusRenderer prints the trigger label while a summarize request is
// outstanding.
type StatusRenderer struct {
	Out io.Writer
}

func (r StatusRenderer) RenderDashboard(d *ui.Dashboard) {
	if d.SummarizeBtn.Disabled {
		color.New(color.Faint).Fprintf(r.Out, "%s %s\n", d.SummarizeBtn.Label, d.SummaryOutput.Text)
	}
}

// RenderKeywords draws tags side by side, in order.
func RenderKeywords(tags []string) string {
	rendered := make([]string, len(tags))
	for i, t := range tags {
		rendered[i] = tagStyle.Render(t)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderSummary writes the summary region followed by the keyword tags.
func RenderSummary(w io.Writer, d *ui.Dashboard) {
	fmt.Fprintln(w, d.SummaryOutput.Text)
	if len(d.KeywordsOutput.Tags) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, RenderKeywords(d.KeywordsOutput.Tags))
	}
}

// PromptPassword asks for a password without echo, falling back to a plain
// line read when stdin is not a terminal.
func PromptPassword(out io.Writer, prompt string) (string, error) {
	fmt.Fprint(out, prompt)

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
