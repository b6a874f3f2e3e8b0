package controller

import (
	"context"

	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/ui"
)

type fakeAuthAPI struct {
	result  models.ApiResult
	signups []models.Credentials
	logins  []models.Credentials
}

func (f *fakeAuthAPI) Signup(_ context.Context, username, email, password string) models.ApiResult {
	f.signups = append(f.signups, models.Credentials{Username: username, Email: email, Password: password})
	return f.result
}

func (f *fakeAuthAPI) Login(_ context.Context, email, password string) models.ApiResult {
	f.logins = append(f.logins, models.Credentials{Email: email, Password: password})
	return f.result
}

// fakeSummaryAPI calls during, when set, before returning result.
type fakeSummaryAPI struct {
	result   models.ApiResult
	during   func()
	requests []models.SummaryRequest
}

func (f *fakeSummaryAPI) Summarize(_ context.Context, req models.SummaryRequest) models.ApiResult {
	f.requests = append(f.requests, req)
	if f.during != nil {
		f.during()
	}
	return f.result
}

type fakeDialog struct {
	shown []ui.Modal
}

func (f *fakeDialog) ShowModal(m ui.Modal) {
	f.shown = append(f.shown, m)
}

type fakeNavigator struct {
	pages []models.Page
}

func (f *fakeNavigator) Navigate(p models.Page) {
	f.pages = append(f.pages, p)
}

type fakeAlerter struct {
	alerts []string
}

func (f *fakeAlerter) Alert(msg string) {
	f.alerts = append(f.alerts, msg)
}

type fakeClipboard struct {
	err     error
	written []string
}

func (f *fakeClipboard) WriteText(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

type savedFile struct {
	name, contentType string
	data              []byte
}

type fakeSaver struct {
	err   error
	saved []savedFile
}

func (f *fakeSaver) Save(name, contentType string, data []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, savedFile{name: name, contentType: contentType, data: data})
	return "/tmp/" + name, nil
}

type recordingRenderer struct {
	states []ui.Button
}

func (r *recordingRenderer) RenderDashboard(d *ui.Dashboard) {
	r.states = append(r.states, d.SummarizeBtn)
}
