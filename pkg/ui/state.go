// Package ui holds the client's page state as plain values, so the
// controllers that read and write it can run without a terminal.
package ui

import "github.com/dtnitsch/summarizer/models"

// Element identifiers shared by the state, the CLI and the HTML export.
const (
	IDSignupForm     = "signup-form"
	IDLoginForm      = "login-form"
	IDUsername       = "username"
	IDEmail          = "email"
	IDPassword       = "password"
	IDTextInput      = "text-input"
	IDFileInput      = "file-input"
	IDFormatSelect   = "format-select"
	IDLanguageSelect = "language-select"
	IDLengthSlider   = "length-slider"
	IDSummarizeBtn   = "summarize-btn"
	IDSummaryOutput  = "summary-output"
	IDKeywordsOutput = "keywords-output"
	IDCopyBtn        = "copy-btn"
	IDDownloadBtn    = "download-btn"
	IDModal          = "custom-modal"
	IDModalMessage   = "modal-message"
)

// Fixed texts shown by the dashboard.
const (
	SummarizeLabel     = "Generate Summary"
	BusyLabel          = "Working..."
	SummaryPlaceholder = "Your summary will appear here..."
	SummaryPending     = "Summarizing... This may take a moment."
)

type Input struct {
	ID    string
	Value string
}

// FileField holds at most one selected file.
type FileField struct {
	ID   string
	File *models.FileInput
}

type Button struct {
	ID       string
	Label    string
	Disabled bool
}

// Output is a plain-text region.
type Output struct {
	ID   string
	Text string
}

// TagList is a region rendered as one inline tag per entry.
type TagList struct {
	ID   string
	Tags []string
}

// Clear removes all tags.
func (t *TagList) Clear() {
	t.Tags = nil
}

// Modal is the message overlay. It stays visible until dismissed.
type Modal struct {
	Visible bool
	Message string
}

func (m *Modal) Show(message string) {
	m.Message = message
	m.Visible = true
}

func (m *Modal) Dismiss() {
	m.Visible = false
}

// AuthForm backs both the signup and the login form; login leaves Username unused.
type AuthForm struct {
	ID       string
	Username Input
	Email    Input
	Password Input
}

// Credentials reads the current field values.
func (f *AuthForm) Credentials() models.Credentials {
	return models.Credentials{
		Username: f.Username.Value,
		Email:    f.Email.Value,
		Password: f.Password.Value,
	}
}

// Dashboard is the summarize page.
type Dashboard struct {
	TextInput      Input
	FileInput      FileField
	FormatSelect   Input
	LanguageSelect Input
	LengthSlider   Input
	SummarizeBtn   Button
	SummaryOutput  Output
	KeywordsOutput TagList
	CopyBtn        Button
	DownloadBtn    Button
}

// State is everything the controllers read and write.
type State struct {
	Location  models.Page
	Modal     Modal
	Signup    AuthForm
	Login     AuthForm
	Dashboard Dashboard
}

// NewState returns the state of freshly loaded pages, located at start.
func NewState(start models.Page) *State {
	return &State{
		Location: start,
		Signup:   newAuthForm(IDSignupForm),
		Login:    newAuthForm(IDLoginForm),
		Dashboard: Dashboard{
			TextInput:      Input{ID: IDTextInput},
			FileInput:      FileField{ID: IDFileInput},
			FormatSelect:   Input{ID: IDFormatSelect, Value: string(models.FormatParagraph)},
			LanguageSelect: Input{ID: IDLanguageSelect, Value: "en"},
			LengthSlider:   Input{ID: IDLengthSlider, Value: models.LengthMedium.String()},
			SummarizeBtn:   Button{ID: IDSummarizeBtn, Label: SummarizeLabel},
			SummaryOutput:  Output{ID: IDSummaryOutput, Text: SummaryPlaceholder},
			KeywordsOutput: TagList{ID: IDKeywordsOutput},
			CopyBtn:        Button{ID: IDCopyBtn, Label: "Copy"},
			DownloadBtn:    Button{ID: IDDownloadBtn, Label: "Download"},
		},
	}
}

func newAuthForm(id string) AuthForm {
	return AuthForm{
		ID:       id,
		Username: Input{ID: IDUsername},
		Email:    Input{ID: IDEmail},
		Password: Input{ID: IDPassword},
	}
}

// HasSummary reports whether the summary region holds real content rather
// than the initial placeholder.
func (d *Dashboard) HasSummary() bool {
	text := d.SummaryOutput.Text
	return text != "" && text != SummaryPlaceholder
}
