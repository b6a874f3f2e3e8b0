// Package controller binds the page state in package ui to the backend client.
//
// Controllers never talk to a terminal or a browser directly: everything they
// show goes through the small interfaces below, and everything they read
// comes from *ui.State.
package controller

import (
	"context"

	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/ui"
)

// AuthAPI is the part of the backend client used by the auth forms.
type AuthAPI interface {
	Signup(ctx context.Context, username, email, password string) models.ApiResult
	Login(ctx context.Context, email, password string) models.ApiResult
}

// SummaryAPI is the part of the backend client used by the dashboard.
type SummaryAPI interface {
	Summarize(ctx context.Context, req models.SummaryRequest) models.ApiResult
}

// Dialog presents the modal after its state changed.
type Dialog interface {
	ShowModal(m ui.Modal)
}

// Navigator moves the user to another page.
type Navigator interface {
	Navigate(page models.Page)
}

// Alerter shows a blocking one-line message.
type Alerter interface {
	Alert(message string)
}

type Clipboard interface {
	WriteText(text string) error
}

// Saver hands a synthesized file to the user and returns where it went.
type Saver interface {
	Save(name, contentType string, data []byte) (string, error)
}

// Renderer is told about dashboard changes while a request is outstanding.
type Renderer interface {
	RenderDashboard(d *ui.Dashboard)
}

// Bind subscribes the controllers' handlers on bus.
func Bind(bus *ui.Bus, auth *AuthController, sum *SummarizeController) {
	if auth != nil {
		bus.Subscribe(ui.IDSignupForm, ui.EventSubmit, auth.SubmitSignup)
		bus.Subscribe(ui.IDLoginForm, ui.EventSubmit, auth.SubmitLogin)
	}
	if sum != nil {
		bus.Subscribe(ui.IDSummarizeBtn, ui.EventClick, sum.Summarize)
		bus.Subscribe(ui.IDCopyBtn, ui.EventClick, sum.Copy)
		bus.Subscribe(ui.IDDownloadBtn, ui.EventClick, sum.Download)
	}
}
