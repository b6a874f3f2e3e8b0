package controller

import (
	"context"

	"github.com/dtnitsch/summarizer/models"
	"github.com/dtnitsch/summarizer/pkg/ui"
	"go.uber.org/zap"
)

// AuthController handles the signup and login forms.
//
// There is no guard against a second submit while the first is in flight;
// each submit issues its own request.
type AuthController struct {
	state     *ui.State
	api       AuthAPI
	dialog    Dialog
	navigator Navigator
	logger    *zap.Logger

	last models.ApiResult
}

func NewAuthController(state *ui.State, api AuthAPI, dialog Dialog, navigator Navigator, logger *zap.Logger) *AuthController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthController{
		state:     state,
		api:       api,
		dialog:    dialog,
		navigator: navigator,
		logger:    logger,
	}
}

// SubmitSignup sends the signup form and goes to the login page on success.
func (c *AuthController) SubmitSignup(ctx context.Context) error {
	creds := c.state.Signup.Credentials()
	c.logger.Debug("signup submitted", zap.String("email", creds.Email))

	res := c.api.Signup(ctx, creds.Username, creds.Email, creds.Password)
	c.finish(res, models.PageLogin)
	return nil
}

// SubmitLogin sends the login form and goes to the dashboard on success.
func (c *AuthController) SubmitLogin(ctx context.Context) error {
	creds := c.state.Login.Credentials()
	c.logger.Debug("login submitted", zap.String("email", creds.Email))

	res := c.api.Login(ctx, creds.Email, creds.Password)
	c.finish(res, models.PageDashboard)
	return nil
}

// LastResult is the result of the most recent submit.
func (c *AuthController) LastResult() models.ApiResult {
	return c.last
}

func (c *AuthController) finish(res models.ApiResult, next models.Page) {
	c.last = res

	c.state.Modal.Show(res.Message)
	c.dialog.ShowModal(c.state.Modal)

	if !res.Success {
		return
	}
	c.state.Location = next
	c.navigator.Navigate(next)
}
